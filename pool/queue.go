package pool

import "sync"

const (
	defaultQueueCap = 16
	compactMinCap   = 64 // Don't compact below this many consumed slots
)

// taskQueue is the unbounded FIFO shared by all workers of a pool and by
// every submitting caller. A single mutex guards both the slice and the
// condition variable, so a task removed by pop is never seen by another
// worker.
type taskQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []*queuedTask
	head   int
	closed bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{
		tasks: make([]*queuedTask, 0, defaultQueueCap),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// pushAll appends a whole batch atomically and wakes every waiting worker.
// Returns ErrPoolClosed once the queue has been closed.
func (q *taskQueue) pushAll(tasks []*queuedTask) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrPoolClosed
	}

	q.tasks = append(q.tasks, tasks...)
	q.cond.Broadcast()
	return nil
}

// pop blocks until a task is available or the queue is closed.
// The wait is re-checked in a loop so a spurious or stolen wakeup
// never returns an empty result while the queue is open.
func (q *taskQueue) pop() (*queuedTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.lenLocked() == 0 && !q.closed {
		q.cond.Wait()
	}

	if q.closed {
		return nil, false
	}

	t := q.tasks[q.head]
	q.tasks[q.head] = nil
	q.head++
	q.maybeCompactLocked()
	return t, true
}

// close marks the queue closed, wakes all waiters and hands back the tasks
// nobody claimed. Only the first call returns tasks.
func (q *taskQueue) close() []*queuedTask {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true

	remaining := make([]*queuedTask, q.lenLocked())
	copy(remaining, q.tasks[q.head:])
	q.tasks = nil
	q.head = 0

	q.cond.Broadcast()
	return remaining
}

func (q *taskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lenLocked()
}

func (q *taskQueue) lenLocked() int {
	return len(q.tasks) - q.head
}

func (q *taskQueue) maybeCompactLocked() {
	if q.head == len(q.tasks) {
		q.tasks = q.tasks[:0]
		q.head = 0
		return
	}

	if q.head < compactMinCap || q.head*2 < len(q.tasks) {
		return
	}

	n := copy(q.tasks, q.tasks[q.head:])
	clear(q.tasks[n:])
	q.tasks = q.tasks[:n]
	q.head = 0
}
