// Package pool provides a fixed-size worker pool that runs batches of
// caller-submitted tasks on a set of long-lived workers sharing one queue.
//
// The primary type is WorkerPool. Workers are started by New and live until
// Close. Each call to Submit enqueues a batch of tasks and blocks until every
// task of that batch has finished; results are written by the tasks into
// caller-owned slots, so completion order across workers never affects the
// order in which results are observed.
//
// # Basic Usage
//
//	p, err := pool.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	lengths, err := pool.Map(ctx, p, []string{"a", "bb", "ccc"}, func(s string) (int, error) {
//	    return len(s), nil
//	})
//	// lengths: [1 2 3]
//
// # Submitting Closures
//
// Submit accepts raw tasks. Each task writes into its own output slot:
//
//	out := make([]int, 3)
//	err := p.Submit(ctx,
//	    func() error { out[0] = 1; return nil },
//	    func() error { out[1] = 2; return nil },
//	    func() error { out[2] = 3; return nil },
//	)
//
// # Configuration Options
//
//   - WithRateLimit(tasksPerSecond, burst): throttle task starts across all workers
//   - WithOSThreads(): lock every worker to its own OS thread
//   - WithCPUAffinity(): lock every worker to an OS thread pinned to a CPU
//   - WithShutdownTimeout(d): bound how long Close waits for workers
//   - WithBeforeTaskStart / WithOnTaskEnd: per-task hooks
//   - WithMetrics(m), WithName(name): metrics sink and the label it sees
//
// # Error Handling
//
// A task fails by returning an error or by panicking. Workers recover from
// panics, so a failing task never takes a worker down. The batch it belongs
// to fails with a *TaskError for the lowest failing index, which matches
// ErrTaskExecutionFailed under errors.Is. Submitting to a closed pool fails
// with ErrPoolClosed, and a caller whose context ends while waiting gets
// ErrInterrupted.
package pool
