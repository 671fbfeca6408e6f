// Package contactsheet builds contact sheets for directory trees.
//
// # Overview
//
// A run walks a directory tree. For every directory that directly contains
// JPEG or PNG files it writes one composite image, Result.tiff, into that
// directory. The composite holds every image of the directory, resized by
// a fixed rate and tiled row-major into a fixed number of columns with a
// uniform margin on a white background.
//
// # Quick Start
//
//	o, err := contactsheet.New(
//	    contactsheet.WithColumns(5),
//	    contactsheet.WithResizeRate(0.25),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := o.Run(ctx, "/photos")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d sheets in %s\n", report.Composites, report.Elapsed)
//
// # Layout
//
// All cells share one size: the largest width and the largest height among
// the directory's resized images. Images are placed at the top-left corner
// of their cell and are never scaled to fit it. For n images, margin m and
// c columns the canvas is
//
//	width  = (cellWidth  + m) * c          + m
//	height = (cellHeight + m) * ceil(n/c)  + m
//
// # Qualifying images
//
// Files with the extensions .jpg, .jpeg and .png (any case) qualify.
// Everything else, including a previous Result.tiff, is ignored. A
// symbolic link to a qualifying file counts as an image; linked
// directories are not descended into. Images are placed in name order.
//
// # Concurrency
//
// The Sequential strategy walks the tree depth-first on the calling
// goroutine. The Concurrent strategy processes sibling directories and the
// images of each directory in parallel, bounded by WithWorkers. Both
// compose every child directory before its parent and both are fail-fast:
// the first error aborts the run, and no composite is written for a
// directory with an unreadable image.
//
// # Errors
//
// Errors returned by Run carry a Kind (filesystem, decode, encode, config)
// that callers can test with IsKind to choose a message.
package contactsheet
