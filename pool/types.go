package pool

// Task is a unit of work executed by a pool worker. It takes no arguments and
// reports its outcome only through the returned error; results are written by
// the task into a slot owned by the submitting caller.
//
// A task fails by returning a non-nil error or by panicking.
type Task func() error

// Stats is a point-in-time snapshot of a pool's activity.
//
// Fields:
//   - Workers: Number of worker goroutines owned by the pool
//   - Queued: Tasks waiting in the shared queue
//   - Active: Tasks currently executing
//   - Completed: Tasks that finished without error
//   - Failed: Tasks that returned an error or panicked
//   - Closed: Whether Close has been called
type Stats struct {
	Workers   int
	Queued    int
	Active    int
	Completed uint64
	Failed    uint64
	Closed    bool
}

// queuedTask is a Task together with its position in the submitting batch.
type queuedTask struct {
	index int
	task  Task
	batch *batch
}
