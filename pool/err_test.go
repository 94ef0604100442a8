package pool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_TaskFailure(t *testing.T) {
	t.Run("returned error fails the batch", func(t *testing.T) {
		runConfigTest(t, 4, func(t *testing.T, p *WorkerPool) {
			boom := errors.New("error on task 5")
			var ran atomic.Int32

			tasks := make([]Task, 10)
			for i := range tasks {
				tasks[i] = func() error {
					ran.Add(1)
					if i == 5 {
						return boom
					}
					return nil
				}
			}

			err := submitWithin(t, 5*time.Second, p, tasks...)
			if !errors.Is(err, ErrTaskExecutionFailed) {
				t.Fatalf("Submit = %v, want ErrTaskExecutionFailed", err)
			}
			if !errors.Is(err, boom) {
				t.Errorf("Submit = %v, want it to wrap the task error", err)
			}

			var te *TaskError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TaskError, got %T", err)
			}
			if te.Index != 5 {
				t.Errorf("TaskError.Index = %d, want 5", te.Index)
			}
			if te.Panicked() {
				t.Error("TaskError should not report a panic")
			}

			// The rest of the batch still ran; the call just fails as a whole.
			if ran.Load() != 10 {
				t.Errorf("ran %d tasks, want 10", ran.Load())
			}
		})
	})

	t.Run("lowest failing index wins", func(t *testing.T) {
		runConfigTest(t, 4, func(t *testing.T, p *WorkerPool) {
			tasks := make([]Task, 20)
			for i := range tasks {
				tasks[i] = func() error {
					if i%3 == 2 {
						return fmt.Errorf("error on task %d", i)
					}
					return nil
				}
			}

			err := submitWithin(t, 5*time.Second, p, tasks...)
			var te *TaskError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TaskError, got %v", err)
			}
			if te.Index != 2 {
				t.Errorf("TaskError.Index = %d, want 2", te.Index)
			}
		})
	})

	t.Run("panic is recovered and worker survives", func(t *testing.T) {
		runConfigTest(t, 1, func(t *testing.T, p *WorkerPool) {
			err := submitWithin(t, 5*time.Second, p,
				func() error { return nil },
				func() error { panic("worker panic test") },
			)
			if !errors.Is(err, ErrTaskExecutionFailed) {
				t.Fatalf("Submit = %v, want ErrTaskExecutionFailed", err)
			}

			var te *TaskError
			if !errors.As(err, &te) || !te.Panicked() {
				t.Fatalf("expected a panicking *TaskError, got %v", err)
			}
			if te.Panic != "worker panic test" {
				t.Errorf("Panic = %v, want %q", te.Panic, "worker panic test")
			}
			if len(te.Stack) == 0 {
				t.Error("expected a captured stack")
			}

			// The only worker must still be alive.
			var ok atomic.Bool
			if err := submitWithin(t, 5*time.Second, p, func() error {
				ok.Store(true)
				return nil
			}); err != nil {
				t.Fatalf("Submit after panic failed: %v", err)
			}
			if !ok.Load() {
				t.Error("task after panic did not run")
			}
		})
	})

	t.Run("failure does not leak into the next batch", func(t *testing.T) {
		runConfigTest(t, 2, func(t *testing.T, p *WorkerPool) {
			_ = submitWithin(t, 5*time.Second, p, func() error { return errors.New("first") })

			if err := submitWithin(t, 5*time.Second, p, func() error { return nil }); err != nil {
				t.Errorf("second batch = %v, want nil", err)
			}
		})
	})
}

func TestWorkerPool_SubmitBeforeCancel(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Either the batch finishes first or the wait is interrupted; nothing else.
	err = p.Submit(ctx, func() error { return nil })
	if err != nil && !errors.Is(err, ErrInterrupted) {
		t.Errorf("Submit with cancelled context = %v", err)
	}
}
