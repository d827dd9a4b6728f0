package pipeline

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Pool runs tasks on a fixed number of goroutines.
type Pool struct {
	size      int
	keepGoing bool
}

// NewPool returns a pool of size workers, or one per CPU when size < 1.
// With keepGoing a failed task does not stop the others.
func NewPool(size int, keepGoing bool) *Pool {
	if size < 1 {
		size = runtime.NumCPU()
	}
	return &Pool{size: size, keepGoing: keepGoing}
}

// Size ...
func (p *Pool) Size() int {
	return p.size
}

// Run calls fn for every task and waits for all started calls to return.
//
// Without keepGoing the first error cancels the context passed to fn,
// tasks not yet started are dropped, and that error is returned. With
// keepGoing every task runs and the errors are combined with multierr.
// Cancelling ctx stops dispatch in both modes.
func (p *Pool) Run(ctx context.Context, tasks []Task, fn func(context.Context, Task) error) error {
	if p.keepGoing {
		return p.runAll(ctx, tasks, fn)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)
	for _, t := range tasks {
		if gctx.Err() != nil {
			break
		}
		t := t
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			return fn(gctx, t)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (p *Pool) runAll(ctx context.Context, tasks []Task, fn func(context.Context, Task) error) error {
	var (
		mu   sync.Mutex
		errs error
	)
	g := new(errgroup.Group)
	g.SetLimit(p.size)
	for _, t := range tasks {
		if ctx.Err() != nil {
			break
		}
		t := t
		g.Go(func() error {
			if err := fn(ctx, t); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return multierr.Append(errs, ctx.Err())
}
