package pool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// batch tracks completion of the tasks enqueued by one Submit call.
// It is created per call and dropped once the call returns, so no
// completion state is shared between unrelated submissions.
type batch struct {
	remaining   atomic.Int64
	done        chan struct{}
	interrupted atomic.Bool

	mu       sync.Mutex
	err      error
	errIndex int
	closed   bool
}

func newBatch(n int) *batch {
	b := &batch{done: make(chan struct{})}
	b.remaining.Store(int64(n))
	return b
}

// finish marks the task at index as done. A non-nil err is kept if it is
// the lowest failing index seen so far.
func (b *batch) finish(index int, err error) {
	if err != nil {
		b.mu.Lock()
		if b.err == nil || index < b.errIndex {
			b.err = err
			b.errIndex = index
		}
		b.mu.Unlock()
	}

	if b.remaining.Add(-1) == 0 {
		close(b.done)
	}
}

// abort marks the task at index as never run because the pool closed.
func (b *batch) abort(index int) {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.finish(index, nil)
}

// wait blocks until every task of the batch has finished or ctx ends.
// Tasks of an interrupted batch that have not started yet are skipped
// by the workers.
func (b *batch) wait(ctx context.Context) error {
	select {
	case <-b.done:
		return b.failure()
	case <-ctx.Done():
		select {
		case <-b.done:
			return b.failure()
		default:
		}
		b.interrupted.Store(true)
		return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}
}

func (b *batch) failure() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrPoolClosed
	}
	return b.err
}
