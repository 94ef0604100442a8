package pool

import "time"

// Failure reasons reported to Metrics.
const (
	ReasonError  = "error"
	ReasonPanic  = "panic"
	ReasonClosed = "closed"
)

// Metrics receives measurements from a running pool. Implementations must be
// safe for concurrent use; every worker reports independently.
type Metrics interface {
	// RecordTaskDuration records how long a task ran.
	RecordTaskDuration(pool string, d time.Duration)

	// RecordTaskFailure records a task that failed, with ReasonError,
	// ReasonPanic or ReasonClosed.
	RecordTaskFailure(pool string, reason string)

	// RecordQueueDepth records the number of tasks waiting in the queue.
	RecordQueueDepth(pool string, depth int)

	// RecordTaskRejected records tasks refused at submission.
	RecordTaskRejected(pool string, reason string, count int)
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) RecordTaskDuration(string, time.Duration) {}
func (NopMetrics) RecordTaskFailure(string, string)         {}
func (NopMetrics) RecordQueueDepth(string, int)             {}
func (NopMetrics) RecordTaskRejected(string, string, int)   {}
