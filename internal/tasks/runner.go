package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/morozai/core/internal/logger"
	"golang.org/x/sync/errgroup"
)

// runs fire-and-forget side effects off the request path.
// task failures and panics are logged and swallowed; callers never observe them.
type Runner struct {
	group   errgroup.Group
	baseCtx context.Context
	timeout time.Duration
}

// creates a runner that executes at most concurrency tasks at once,
// each bounded by timeout (zero means no per-task timeout)
func NewRunner(concurrency int, timeout time.Duration) *Runner {
	r := &Runner{
		baseCtx: context.Background(),
		timeout: timeout,
	}

	r.group.SetLimit(concurrency)

	return r
}

// submits fn without blocking. returns false when the runner is saturated
// and the task was dropped.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) bool {
	started := r.group.TryGo(func() error {
		r.run(name, fn)
		return nil
	})

	if !started {
		logger.Warn("task runner saturated, dropping task", "task", name)
	}

	return started
}

func (r *Runner) run(name string, fn func(ctx context.Context) error) {
	ctx := r.baseCtx

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			logger.ErrorErr(fmt.Errorf("panic: %v", rec), "background task panicked", "task", name)
		}
	}()

	if err := fn(ctx); err != nil {
		logger.ErrorErr(err, "background task failed",
			"task", name,
			"duration", time.Since(start).String(),
		)
		return
	}

	logger.Debug("background task finished",
		"task", name,
		"duration", time.Since(start).String(),
	)
}

// waits for in-flight tasks until ctx is done
func (r *Runner) Shutdown(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		_ = r.group.Wait() //nolint:errcheck // tasks never return errors
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for background tasks: %w", ctx.Err())
	}
}
