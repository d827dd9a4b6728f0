package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func makeTasks(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{Src: fmt.Sprintf("src/%d.png", i), Dst: fmt.Sprintf("dst/%d.jpg", i)}
	}
	return tasks
}

func TestPoolRunsAll(t *testing.T) {
	var calls, running, peak atomic.Int64
	p := NewPool(3, false)
	assert.Equal(t, 3, p.Size())

	err := p.Run(context.Background(), makeTasks(50), func(_ context.Context, _ Task) error {
		n := running.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		calls.Add(1)
		running.Add(-1)
		return nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, 50, calls.Load())
	assert.LessOrEqual(t, peak.Load(), int64(3))
}

func TestPoolAbort(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int64
	tasks := makeTasks(10)

	err := NewPool(1, false).Run(context.Background(), tasks, func(_ context.Context, tk Task) error {
		calls.Add(1)
		if tk == tasks[2] {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 3, calls.Load())
}

func TestPoolKeepGoing(t *testing.T) {
	var calls atomic.Int64
	tasks := makeTasks(10)

	err := NewPool(4, true).Run(context.Background(), tasks, func(_ context.Context, tk Task) error {
		calls.Add(1)
		if tk == tasks[1] || tk == tasks[7] {
			return fmt.Errorf("bad %s", tk.Src)
		}
		return nil
	})
	assert.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.EqualValues(t, 10, calls.Load())
}

func TestPoolCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	for _, keepGoing := range []bool{false, true} {
		err := NewPool(2, keepGoing).Run(ctx, makeTasks(5), func(context.Context, Task) error {
			calls.Add(1)
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Zero(t, calls.Load())
}

func TestPoolDefaultSize(t *testing.T) {
	assert.Greater(t, NewPool(0, false).Size(), 0)
	assert.Greater(t, NewPool(-3, true).Size(), 0)
}
