// Command contactsheet writes a Result.tiff contact sheet into every
// directory of a tree that contains JPEG or PNG images.
//
// Usage:
//
//	contactsheet [flags] [path]
//
// With a path it makes a single run. Without one it prompts for a path
// until a run succeeds or "exit" is entered.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
