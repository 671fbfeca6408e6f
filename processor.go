package contactsheet

import (
	"bytes"
	"context"
	"image"
	"sync/atomic"

	"github.com/gogpu/contactsheet/internal/fsys"
	"github.com/gogpu/contactsheet/internal/grid"
	intImage "github.com/gogpu/contactsheet/internal/image"
	"github.com/gogpu/contactsheet/internal/parallel"
)

// counters accumulates report totals. Updated from concurrent tasks.
type counters struct {
	directories atomic.Int64
	composites  atomic.Int64
	images      atomic.Int64
}

// processor turns DirectoryNodes into composites for a single run.
type processor struct {
	fs    *fsys.FS
	cfg   Config
	codec Codec

	// limiter is nil for sequential runs. When set, it caps decodes across
	// every directory of the run.
	limiter *parallel.Limiter
	workers int

	stats counters
}

func (p *processor) scan(dir string, depth int) (*DirectoryNode, error) {
	node, err := scanDir(p.fs, dir, depth)
	if err != nil {
		return nil, err
	}
	p.stats.directories.Add(1)
	return node, nil
}

// process writes the composite for node. Directories without qualifying
// images are skipped without error.
func (p *processor) process(ctx context.Context, node *DirectoryNode) error {
	if len(node.Images) == 0 {
		return nil
	}
	if err := grid.Validate(len(node.Images), p.cfg.Margin, p.cfg.Columns); err != nil {
		return classify("layout", KindConfig, node.Path, err)
	}

	imgs, err := p.transformAll(ctx, node.Images)
	if err != nil {
		return err
	}

	sizes := make([]image.Point, len(imgs))
	for i, img := range imgs {
		sizes[i] = img.Size()
	}
	layout := grid.Compute(sizes, p.cfg.Margin, p.cfg.Columns)

	canvas, err := compose(imgs, layout)
	if err != nil {
		return classify("compose", KindEncode, node.Path, err)
	}

	out := p.fs.Join(node.Path, ResultName)
	if err := p.write(out, canvas); err != nil {
		return err
	}

	p.stats.composites.Add(1)
	p.stats.images.Add(int64(len(imgs)))
	Logger().Info("composite written",
		"dir", node.Path,
		"images", len(imgs),
		"width", layout.Canvas.X,
		"height", layout.Canvas.Y)
	return nil
}

// transformAll runs transform for every path and keeps input order.
// Concurrent runs fan out across the shared limiter; the first failure
// aborts the batch.
func (p *processor) transformAll(ctx context.Context, paths []string) ([]*intImage.ImageBuf, error) {
	imgs := make([]*intImage.ImageBuf, len(paths))

	if p.limiter == nil {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			img, err := p.transform(path)
			if err != nil {
				return nil, err
			}
			imgs[i] = img
		}
		return imgs, nil
	}

	err := parallel.Join(ctx, p.limiter.Size(), len(paths), func(ctx context.Context, i int) error {
		return p.limiter.Do(ctx, func() error {
			img, err := p.transform(paths[i])
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return imgs, nil
}

// transform reads path, then decodes, resizes and normalizes it.
func (p *processor) transform(path string) (*intImage.ImageBuf, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, classify("read image", KindFilesystem, path, err)
	}

	img, err := intImage.Transform(bytes.NewReader(data), p.cfg.ResizeRate, p.codec)
	if err != nil {
		return nil, classify("transform image", KindDecode, path, err)
	}
	return img, nil
}

// compose pastes imgs onto a white canvas at their layout offsets.
func compose(imgs []*intImage.ImageBuf, layout grid.Layout) (*intImage.ImageBuf, error) {
	canvas, err := intImage.NewImageBuf(layout.Canvas.X, layout.Canvas.Y)
	if err != nil {
		return nil, err
	}
	canvas.Fill(0xff, 0xff, 0xff)

	for i, img := range imgs {
		intImage.Paste(canvas, img, layout.Offset(i))
	}
	return canvas, nil
}

// write encodes canvas in memory and replaces path in a single write, so
// an encoding failure leaves no partial file behind.
func (p *processor) write(path string, canvas *intImage.ImageBuf) error {
	var buf bytes.Buffer
	if err := p.codec.Encode(&buf, canvas); err != nil {
		return classify("encode composite", KindEncode, path, err)
	}
	if err := p.fs.WriteFile(path, buf.Bytes()); err != nil {
		return classify("write composite", KindFilesystem, path, err)
	}
	return nil
}
