package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/iterpar/internal/cpu"
	"github.com/utkarsh5026/iterpar/pool"
)

// Executor runs a set of independent tasks and returns once all of them have
// finished. Each task writes its own result slot, so an Executor never deals
// with results itself.
//
// Run returns nil, or the failure of the lowest-index failing task as a
// *pool.TaskError, or a pool error such as pool.ErrPoolClosed.
type Executor interface {
	Run(ctx context.Context, tasks []pool.Task) error
	Name() string
}

// threadExecutor starts one goroutine per task on every call.
type threadExecutor struct {
	lockOSThread bool
}

// Threads returns an Executor that starts a fresh goroutine per task and
// joins all of them before returning. Nothing is reused between calls.
func Threads() Executor {
	return threadExecutor{}
}

// OSThreads is like Threads but locks each goroutine to its own OS thread
// for the duration of its task.
func OSThreads() Executor {
	return threadExecutor{lockOSThread: true}
}

func (e threadExecutor) Name() string {
	if e.lockOSThread {
		return "os-threads"
	}
	return "threads"
}

func (e threadExecutor) Run(ctx context.Context, tasks []pool.Task) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", pool.ErrInterrupted, err)
	}

	errs := make([]error, len(tasks))
	var g errgroup.Group
	for i, t := range tasks {
		g.Go(func() error {
			if e.lockOSThread {
				defer cpu.LockThread()()
			}
			errs[i] = pool.SafeRun(i, t)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// pooledExecutor hands tasks to a shared worker pool.
type pooledExecutor struct {
	p *pool.WorkerPool
}

// Pooled returns an Executor that submits every call's tasks as one batch
// to p. The pool is not owned by the Executor; the caller closes it.
// Pooled panics if p is nil.
func Pooled(p *pool.WorkerPool) Executor {
	if p == nil {
		panic("parallel: Pooled called with a nil pool")
	}
	return pooledExecutor{p: p}
}

func (e pooledExecutor) Name() string {
	return fmt.Sprintf("pool(%d)", e.p.Workers())
}

func (e pooledExecutor) Run(ctx context.Context, tasks []pool.Task) error {
	return e.p.Submit(ctx, tasks...)
}
