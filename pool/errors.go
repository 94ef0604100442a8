package pool

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidThreadCount  = errors.New("thread count must be positive")
	ErrPoolClosed          = errors.New("pool is closed")
	ErrTaskExecutionFailed = errors.New("task execution failed")
	ErrInterrupted         = errors.New("interrupted while waiting")
	ErrShutdownTimeout     = errors.New("error in shutting down: timeout reached")
)

// TaskError describes the failure of a single task within a batch.
// It matches ErrTaskExecutionFailed under errors.Is, and the underlying
// error (if the task returned one) as well.
type TaskError struct {
	// Index is the task's position in the submitted batch.
	Index int
	// Err is the error returned by the task. Nil if the task panicked.
	Err error
	// Panic is the recovered panic value. Nil if the task returned an error.
	Panic any
	// Stack holds the goroutine stack captured at the panic site.
	Stack []byte
}

func (e *TaskError) Error() string {
	if e.Panicked() {
		return fmt.Sprintf("task %d panicked: %v\nstack trace:\n%s", e.Index, e.Panic, e.Stack)
	}
	return fmt.Sprintf("task %d failed: %v", e.Index, e.Err)
}

func (e *TaskError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTaskExecutionFailed}
	}
	return []error{ErrTaskExecutionFailed, e.Err}
}

// Panicked reports whether the task panicked rather than returning an error.
func (e *TaskError) Panicked() bool {
	return e.Panic != nil
}
