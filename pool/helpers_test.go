package pool

import (
	"context"
	"testing"
	"time"
)

// poolConfigCase defines a named set of options a test is run against.
type poolConfigCase struct {
	name string
	opts []Option
}

// getAllConfigs returns every worker configuration to test.
func getAllConfigs() []poolConfigCase {
	return []poolConfigCase{
		{name: "Default"},
		{name: "OSThreads", opts: []Option{WithOSThreads()}},
		{name: "CPUAffinity", opts: []Option{WithCPUAffinity()}},
		{name: "RateLimited", opts: []Option{WithRateLimit(100000, 1000)}},
	}
}

// runConfigTest runs testFunc once per configuration on a fresh pool with
// workerCount workers. The pool is closed when the subtest ends unless the
// test already closed it.
func runConfigTest(t *testing.T, workerCount int, testFunc func(t *testing.T, p *WorkerPool), additionalOpts ...Option) {
	t.Helper()

	for _, c := range getAllConfigs() {
		t.Run(c.name, func(t *testing.T) {
			opts := append(append([]Option{}, c.opts...), additionalOpts...)
			p, err := New(workerCount, opts...)
			if err != nil {
				t.Fatalf("New(%d) failed: %v", workerCount, err)
			}
			t.Cleanup(func() { _ = p.Close() })
			testFunc(t, p)
		})
	}
}

// submitWithin fails the test if Submit does not return within timeout.
func submitWithin(t *testing.T, timeout time.Duration, p *WorkerPool, tasks ...Task) error {
	t.Helper()

	errc := make(chan error, 1)
	go func() { errc <- p.Submit(context.Background(), tasks...) }()

	select {
	case err := <-errc:
		return err
	case <-time.After(timeout):
		t.Fatalf("Submit did not return within %v", timeout)
		return nil
	}
}
