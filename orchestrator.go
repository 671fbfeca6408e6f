package contactsheet

import (
	"context"
	"path/filepath"
	"time"

	"github.com/gogpu/contactsheet/internal/fsys"
	"github.com/gogpu/contactsheet/internal/parallel"
)

// Report summarizes a finished run.
type Report struct {
	// Root is the directory the run started from, as resolved.
	Root string

	Strategy Strategy

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Directories is the number of directories listed.
	Directories int

	// Composites is the number of Result.tiff files written.
	Composites int

	// Images is the number of source images placed on composites.
	Images int
}

// Orchestrator drives contact sheet runs with a fixed configuration.
//
// An Orchestrator holds no per-run state; Run may be called repeatedly and
// from several goroutines.
type Orchestrator struct {
	opts options
}

// New creates an Orchestrator. It returns a KindConfig error if the
// configuration is invalid.
func New(opts ...Option) (*Orchestrator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	return &Orchestrator{opts: o}, nil
}

// Config returns the geometry configuration.
func (o *Orchestrator) Config() Config {
	return o.opts.cfg
}

// Strategy returns the execution strategy.
func (o *Orchestrator) Strategy() Strategy {
	return o.opts.strategy
}

// Run writes a composite into root and every descendant directory that
// directly contains qualifying images, and reports how long it took.
//
// Run is fail-fast: the first error aborts the run and is returned as an
// *Error (or the context's error on cancellation). Composites already
// written stay on disk. The returned Report is filled in either way.
func (o *Orchestrator) Run(ctx context.Context, root string) (Report, error) {
	start := time.Now()
	report := Report{Strategy: o.opts.strategy}

	fs, dir, display, err := o.resolve(root)
	report.Root = display
	if err != nil {
		report.Elapsed = time.Since(start)
		return report, err
	}

	p := &processor{
		fs:      fs,
		cfg:     o.opts.cfg,
		codec:   o.opts.codec,
		workers: o.opts.workers,
	}

	switch o.opts.strategy {
	case Concurrent:
		p.limiter = parallel.NewLimiter(o.opts.workers)
		err = p.runConcurrent(ctx, dir)
	default:
		err = p.runSequential(ctx, dir)
	}

	report.Elapsed = time.Since(start)
	report.Directories = int(p.stats.directories.Load())
	report.Composites = int(p.stats.composites.Load())
	report.Images = int(p.stats.images.Load())
	if err != nil {
		return report, err
	}

	Logger().Info("run finished",
		"root", report.Root,
		"strategy", report.Strategy.String(),
		"elapsed", report.Elapsed,
		"directories", report.Directories,
		"composites", report.Composites)
	return report, nil
}

// resolve picks the filesystem for a run. Without WithFilesystem the host
// filesystem is rooted at the absolute form of root.
func (o *Orchestrator) resolve(root string) (fs *fsys.FS, dir, display string, err error) {
	if o.opts.fs != nil {
		fs = fsys.New(o.opts.fs)
		dir = filepath.Clean(root)
		display = fs.Join(fs.Root(), dir)
	} else {
		abs, aerr := filepath.Abs(root)
		if aerr != nil {
			return nil, "", root, classify("resolve root", KindFilesystem, root, aerr)
		}
		fs = fsys.OS(abs)
		dir = "."
		display = abs
	}

	if cerr := fs.CheckDir(dir); cerr != nil {
		return nil, "", display, classify("resolve root", KindFilesystem, display, cerr)
	}
	return fs, dir, display, nil
}
