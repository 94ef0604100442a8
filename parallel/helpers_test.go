package parallel

import (
	"testing"

	"github.com/utkarsh5026/iterpar/pool"
)

// executorCase is a named Executor a test is run against.
type executorCase struct {
	name string
	ex   Executor
}

// getAllExecutors returns every dispatch strategy, backed by a pool with
// workerCount workers that is closed when the test ends.
func getAllExecutors(t *testing.T, workerCount int) []executorCase {
	t.Helper()

	p, err := pool.New(workerCount)
	if err != nil {
		t.Fatalf("pool.New(%d) failed: %v", workerCount, err)
	}
	t.Cleanup(func() { _ = p.Close() })

	return []executorCase{
		{name: "Threads", ex: Threads()},
		{name: "OSThreads", ex: OSThreads()},
		{name: "Pooled", ex: Pooled(p)},
	}
}

func runExecutorTest(t *testing.T, workerCount int, testFunc func(t *testing.T, ex Executor)) {
	t.Helper()

	for _, c := range getAllExecutors(t, workerCount) {
		t.Run(c.name, func(t *testing.T) {
			testFunc(t, c.ex)
		})
	}
}
