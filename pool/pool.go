package pool

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	stateRunning int32 = iota
	stateTerminated
)

// WorkerPool owns a fixed number of long-lived workers and one shared task
// queue. Any number of goroutines may call Submit concurrently; each call
// blocks until its own batch has finished.
//
// The pool moves from running to terminated exactly once, in Close.
type WorkerPool struct {
	conf    *poolConfig
	workers int
	queue   *taskQueue
	state   atomic.Int32

	cancel context.CancelFunc
	done   chan struct{} // Closed when all workers have exited

	active    atomic.Int64
	completed atomic.Uint64
	failed    atomic.Uint64
}

// New creates a pool and starts threads workers immediately.
//
// Parameters:
//   - threads: Number of workers, must be positive
//   - opts: Variadic set of Option for rate limiting, thread locking, hooks, etc.
//
// Returns:
//   - *WorkerPool: A running pool (call Close to stop it)
//   - error: ErrInvalidThreadCount if threads <= 0
//
// Example:
//
//	p, err := pool.New(8, pool.WithShutdownTimeout(5*time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
func New(threads int, opts ...Option) (*WorkerPool, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreadCount, threads)
	}

	cfg := createConfig(opts...)
	ctx, cancel := context.WithCancel(context.Background())

	p := &WorkerPool{
		conf:    cfg,
		workers: threads,
		queue:   newTaskQueue(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	var g errgroup.Group
	for i := range threads {
		g.Go(func() error {
			p.worker(ctx, i)
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(p.done)
	}()

	debugLog("pool %q started with %d workers", cfg.name, threads)
	return p, nil
}

// Submit enqueues tasks as one batch and blocks until all of them have
// finished. Tasks of a batch may run in any order and on any worker.
//
// Parameters:
//   - ctx: Bounds how long the caller waits; it is not passed to tasks
//   - tasks: The units of work to run
//
// Returns:
//   - error: nil when every task succeeded, otherwise one of
//   - ErrPoolClosed: the pool was closed before or during the call
//   - *TaskError: the lowest-index task that failed (matches ErrTaskExecutionFailed)
//   - ErrInterrupted: ctx ended while waiting; tasks not yet started are skipped
//
// Example:
//
//	out := make([]int, len(items))
//	tasks := make([]pool.Task, len(items))
//	for i, item := range items {
//	    tasks[i] = func() error { out[i] = item * 2; return nil }
//	}
//	if err := p.Submit(ctx, tasks...); err != nil {
//	    return err
//	}
func (p *WorkerPool) Submit(ctx context.Context, tasks ...Task) error {
	if p.state.Load() == stateTerminated {
		p.conf.metrics.RecordTaskRejected(p.conf.name, ReasonClosed, len(tasks))
		return ErrPoolClosed
	}

	if len(tasks) == 0 {
		return nil
	}

	b := newBatch(len(tasks))
	queued := make([]*queuedTask, len(tasks))
	for i, t := range tasks {
		queued[i] = &queuedTask{index: i, task: t, batch: b}
	}

	if err := p.queue.pushAll(queued); err != nil {
		p.conf.metrics.RecordTaskRejected(p.conf.name, ReasonClosed, len(tasks))
		return err
	}
	p.conf.metrics.RecordQueueDepth(p.conf.name, p.queue.Len())

	return b.wait(ctx)
}

// Close stops the pool. Tasks already running finish; tasks still queued are
// dropped and their submitters receive ErrPoolClosed. Close returns once every
// worker has exited, or ErrShutdownTimeout if WithShutdownTimeout was set and
// a worker outlived it.
//
// Calling Close more than once returns ErrPoolClosed.
func (p *WorkerPool) Close() error {
	if !p.state.CompareAndSwap(stateRunning, stateTerminated) {
		return ErrPoolClosed
	}

	dropped := p.queue.close()
	for _, t := range dropped {
		p.conf.metrics.RecordTaskFailure(p.conf.name, ReasonClosed)
		t.batch.abort(t.index)
	}
	p.cancel()

	debugLog("pool %q closing, dropped %d queued tasks", p.conf.name, len(dropped))
	return waitUntil(p.done, p.conf.shutdownTimeout)
}

// Workers returns the number of workers owned by the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Stats returns a snapshot of the pool's counters.
func (p *WorkerPool) Stats() Stats {
	return Stats{
		Workers:   p.workers,
		Queued:    p.queue.Len(),
		Active:    int(p.active.Load()),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
		Closed:    p.state.Load() == stateTerminated,
	}
}

// Map applies fn to every item on the pool's workers and returns the results
// in the order of items. The first failure (by index) fails the whole call
// and no partial results are returned.
//
// Example:
//
//	lengths, err := pool.Map(ctx, p, words, func(w string) (int, error) {
//	    return len(w), nil
//	})
func Map[T, R any](ctx context.Context, p *WorkerPool, items []T, fn func(T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	tasks := make([]Task, len(items))
	for i, item := range items {
		tasks[i] = func() error {
			r, err := fn(item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		}
	}

	if err := p.Submit(ctx, tasks...); err != nil {
		return nil, err
	}
	return results, nil
}
