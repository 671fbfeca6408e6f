package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Limiter caps how many units of work run at once across independent joins.
//
// Thread safety: Limiter is safe for concurrent use.
type Limiter struct {
	sem  *semaphore.Weighted
	size int
}

// NewLimiter creates a limiter admitting n concurrent calls.
// If n is 0 or negative, GOMAXPROCS is used.
func NewLimiter(n int) *Limiter {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Limiter{
		sem:  semaphore.NewWeighted(int64(n)),
		size: n,
	}
}

// Do waits for a free slot, runs fn and releases the slot.
// It returns ctx.Err() without running fn if ctx ends while waiting.
func (l *Limiter) Do(ctx context.Context, fn func() error) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.sem.Release(1)
	return fn()
}

// Size returns the number of concurrent slots.
func (l *Limiter) Size() int {
	return l.size
}
