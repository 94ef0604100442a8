package pool

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// SafeRun executes t and converts both a returned error and a panic into a
// *TaskError carrying index. It returns nil when the task succeeds.
func SafeRun(index int, t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = &TaskError{Index: index, Panic: r, Stack: buf[:n]}
		}
	}()

	if taskErr := t(); taskErr != nil {
		return &TaskError{Index: index, Err: taskErr}
	}
	return nil
}

// waitUntil blocks until either the done channel is closed or the timeout is reached.
// It is used during shutdown to wait for workers to exit.
func waitUntil(d <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-d
		return nil
	}

	select {
	case <-d:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("%w after %v", ErrShutdownTimeout, timeout)
	}
}

func failureReason(err error) string {
	var te *TaskError
	if errors.As(err, &te) && te.Panicked() {
		return ReasonPanic
	}
	return ReasonError
}
