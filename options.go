package contactsheet

import (
	"runtime"

	"github.com/go-git/go-billy/v5"
)

// Option configures an Orchestrator during creation.
//
// Example:
//
//	// Defaults: sequential, margin 10, 4 columns, half size
//	o, err := contactsheet.New()
//
//	// Parallel run with a custom grid
//	o, err := contactsheet.New(
//	    contactsheet.WithStrategy(contactsheet.Concurrent),
//	    contactsheet.WithColumns(6),
//	    contactsheet.WithResizeRate(0.25),
//	)
type Option func(*options)

// options holds optional configuration for Orchestrator creation.
type options struct {
	cfg      Config
	strategy Strategy
	workers  int
	fs       billy.Filesystem
	codec    Codec
}

// defaultOptions returns the default orchestrator options.
func defaultOptions() options {
	return options{
		cfg:      DefaultConfig(),
		strategy: Sequential,
		workers:  runtime.GOMAXPROCS(0),
		fs:       nil, // host filesystem rooted at each Run's root
		codec:    DefaultCodec(),
	}
}

// WithConfig replaces the whole geometry configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithMargin sets the margin in pixels.
func WithMargin(margin int) Option {
	return func(o *options) {
		o.cfg.Margin = margin
	}
}

// WithColumns sets the number of images per row.
func WithColumns(columns int) Option {
	return func(o *options) {
		o.cfg.Columns = columns
	}
}

// WithResizeRate sets the scale factor applied to every image.
func WithResizeRate(rate float64) Option {
	return func(o *options) {
		o.cfg.ResizeRate = rate
	}
}

// WithStrategy selects sequential or concurrent execution.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithWorkers bounds concurrent execution: at most n directories are
// processed at once per tree level, and at most n images are decoded at
// once across the whole run. Values <= 0 select GOMAXPROCS.
// Ignored by the Sequential strategy.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithFilesystem runs against fs instead of the host filesystem. Root
// paths passed to Run are then interpreted inside fs.
//
// Example:
//
//	o, _ := contactsheet.New(contactsheet.WithFilesystem(osfs.New("/srv/photos")))
//	report, err := o.Run(ctx, "2024/summer")
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithCodec replaces the image codec. nil keeps the default.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}
