package pool

import (
	"context"
	"time"

	"github.com/utkarsh5026/iterpar/internal/cpu"
)

// worker is the loop run by each pool goroutine. It blocks on the queue
// while it is empty and exits once the queue is closed.
func (p *WorkerPool) worker(ctx context.Context, id int) {
	switch {
	case p.conf.pinCPU:
		defer cpu.SetupWorkerAffinity(id)()
	case p.conf.lockOSThread:
		defer cpu.LockThread()()
	}

	for {
		t, ok := p.queue.pop()
		if !ok {
			debugLog("worker %d exiting", id)
			return
		}
		p.execute(ctx, t)
	}
}

// execute runs one claimed task outside the queue lock and reports its
// outcome to the owning batch. Panics are recovered by SafeRun, so a failing
// task never stops the worker.
func (p *WorkerPool) execute(ctx context.Context, t *queuedTask) {
	if t.batch.interrupted.Load() {
		t.batch.finish(t.index, nil)
		return
	}

	if p.conf.rateLimiter != nil {
		if err := p.conf.rateLimiter.Wait(ctx); err != nil {
			// Only Close cancels ctx.
			p.conf.metrics.RecordTaskFailure(p.conf.name, ReasonClosed)
			t.batch.abort(t.index)
			return
		}
	}

	// Hooks run under the same recovery as tasks. A panicking
	// beforeTaskStart fails the task without running it; a panicking
	// onTaskEnd fails an otherwise successful task.
	var err error
	if p.conf.beforeTaskStart != nil {
		err = SafeRun(t.index, func() error {
			p.conf.beforeTaskStart(t.index)
			return nil
		})
	}

	var elapsed time.Duration
	if err == nil {
		p.active.Add(1)
		start := time.Now()
		err = SafeRun(t.index, t.task)
		elapsed = time.Since(start)
		p.active.Add(-1)
		p.conf.metrics.RecordTaskDuration(p.conf.name, elapsed)
	}

	if err != nil {
		p.failed.Add(1)
		p.conf.metrics.RecordTaskFailure(p.conf.name, failureReason(err))
		debugLog("task %d failed: %v", t.index, err)
	} else {
		p.completed.Add(1)
	}

	if p.conf.onTaskEnd != nil {
		hookErr := SafeRun(t.index, func() error {
			p.conf.onTaskEnd(t.index, elapsed, err)
			return nil
		})
		if hookErr != nil {
			debugLog("onTaskEnd hook for task %d failed: %v", t.index, hookErr)
			if err == nil {
				err = hookErr
			}
		}
	}

	t.batch.finish(t.index, err)
}
