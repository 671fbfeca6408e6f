// Package parallel provides bounded fan-out/join helpers.
//
// A join is all-or-nothing: the first task error cancels the context shared
// by its siblings and is the error the join returns. Sibling failures after
// the first are not reported.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Join runs fn for every i in [0, n) on at most limit goroutines and waits
// for all of them. If limit is 0 or negative, GOMAXPROCS is used.
//
// Tasks not yet started when the shared context is cancelled are skipped.
func Join(ctx context.Context, limit, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	started := 0
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if started < n {
		// The caller's context ended before every task was launched.
		return ctx.Err()
	}
	return nil
}
