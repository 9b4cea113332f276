// Package job runs named background tasks on a fixed interval. Each
// task runs once at start and then on every tick, with panics contained
// so a misbehaving task cannot take the service down.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

type Runner struct {
	wg    sync.WaitGroup
	tasks []task
}

type task struct {
	name     string
	interval time.Duration
	fn       Task
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Register(name string, interval time.Duration, fn Task) *Runner {
	r.tasks = append(r.tasks, task{name: name, interval: interval, fn: fn})
	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, t := range r.tasks {
		r.wg.Add(1)

		go func(t task) {
			defer r.wg.Done()
			r.run(ctx, t)
		}(t)
	}
}

func (r *Runner) run(ctx context.Context, t task) {
	l := slog.Default().With("job", t.name)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		err := safeCall(ctx, t.fn)
		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Wait blocks until all tasks have observed context cancellation.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func safeCall(ctx context.Context, fn Task) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
		}
	}()

	return fn(ctx)
}
