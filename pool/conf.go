package pool

import (
	"time"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the worker pool.
type Option func(*poolConfig)

type poolConfig struct {
	name            string
	rateLimiter     *rate.Limiter
	lockOSThread    bool
	pinCPU          bool
	shutdownTimeout time.Duration
	metrics         Metrics

	beforeTaskStart func(index int)
	onTaskEnd       func(index int, elapsed time.Duration, err error)
}

// WithName sets the name the pool reports to its Metrics sink.
// Defaults to "pool".
func WithName(name string) Option {
	return func(cfg *poolConfig) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithRateLimit sets a rate limiter shared by all workers.
// tasksPerSecond specifies the maximum number of tasks started per second.
// burst specifies the maximum number of tasks that can start in a burst.
// If not specified, no rate limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *poolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithOSThreads locks every worker goroutine to its own OS thread for the
// lifetime of the pool.
func WithOSThreads() Option {
	return func(cfg *poolConfig) {
		cfg.lockOSThread = true
	}
}

// WithCPUAffinity locks every worker to an OS thread and pins worker i to
// CPU i mod NumCPU where the platform supports it.
func WithCPUAffinity() Option {
	return func(cfg *poolConfig) {
		cfg.lockOSThread = true
		cfg.pinCPU = true
	}
}

// WithShutdownTimeout bounds how long Close waits for workers to exit.
// Zero (the default) waits forever.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(cfg *poolConfig) {
		if timeout >= 0 {
			cfg.shutdownTimeout = timeout
		}
	}
}

// WithMetrics sets the sink that receives task and queue measurements.
func WithMetrics(m Metrics) Option {
	return func(cfg *poolConfig) {
		if m != nil {
			cfg.metrics = m
		}
	}
}

// WithBeforeTaskStart registers a hook called by the worker right before a
// task runs. It receives the task's index within its batch. If fn panics,
// the task is not run and fails with a *TaskError.
func WithBeforeTaskStart(fn func(index int)) Option {
	return func(cfg *poolConfig) {
		cfg.beforeTaskStart = fn
	}
}

// WithOnTaskEnd registers a hook called after a task finishes, with the
// task's index, how long it ran and the failure (nil on success). If fn
// panics, a task that succeeded fails with a *TaskError instead.
func WithOnTaskEnd(fn func(index int, elapsed time.Duration, err error)) Option {
	return func(cfg *poolConfig) {
		cfg.onTaskEnd = fn
	}
}

func createConfig(opts ...Option) *poolConfig {
	cfg := &poolConfig{
		name:    "pool",
		metrics: NopMetrics{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
