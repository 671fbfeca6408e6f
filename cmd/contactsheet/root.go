package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/contactsheet"
)

// flags holds the command line configuration.
type flags struct {
	margin     int
	columns    int
	resizeRate float64
	concurrent bool
	workers    int
	debug      bool
	lang       string
}

func bindFlags(fs *pflag.FlagSet, f *flags) {
	fs.IntVarP(&f.margin, "margin", "m", contactsheet.DefaultMargin, "gap in pixels around and between images")
	fs.IntVarP(&f.columns, "columns", "c", contactsheet.DefaultColumns, "images per row")
	fs.Float64VarP(&f.resizeRate, "resize-rate", "r", contactsheet.DefaultResizeRate, "scale factor applied to every image")
	fs.BoolVar(&f.concurrent, "concurrent", false, "process directories and images in parallel")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallelism bound for --concurrent (0 = number of CPUs)")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.StringVar(&f.lang, "lang", "", "message language: en|ru (default from $LANG)")
}

func (f *flags) options() []contactsheet.Option {
	strategy := contactsheet.Sequential
	if f.concurrent {
		strategy = contactsheet.Concurrent
	}
	return []contactsheet.Option{
		contactsheet.WithConfig(contactsheet.Config{
			Margin:     f.margin,
			Columns:    f.columns,
			ResizeRate: f.resizeRate,
		}),
		contactsheet.WithStrategy(strategy),
		contactsheet.WithWorkers(f.workers),
	}
}

func setupLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	contactsheet.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "contactsheet [path]",
		Short:        "Write a Result.tiff contact sheet into every directory with images",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(f.lang)
			if err != nil {
				return err
			}

			setupLogger(cmd.ErrOrStderr(), f.debug)
			defer contactsheet.SetLogger(nil)

			o, err := contactsheet.New(f.options()...)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				report, err := o.Run(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				printDone(cmd.OutOrStdout(), p, report)
				return nil
			}

			sh := &shell{
				in:    cmd.InOrStdin(),
				out:   cmd.OutOrStdout(),
				p:     p,
				run:   o.Run,
				pause: retryPause,
			}
			return sh.loop(cmd.Context())
		},
	}

	bindFlags(cmd.Flags(), &f)
	return cmd
}
