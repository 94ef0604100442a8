package listops

import (
	"testing"

	"github.com/utkarsh5026/iterpar/parallel"
	"github.com/utkarsh5026/iterpar/pool"
)

func runExecutorTest(t *testing.T, workerCount int, testFunc func(t *testing.T, ex parallel.Executor)) {
	t.Helper()

	p, err := pool.New(workerCount)
	if err != nil {
		t.Fatalf("pool.New(%d) failed: %v", workerCount, err)
	}
	t.Cleanup(func() { _ = p.Close() })

	executors := []parallel.Executor{parallel.Threads(), parallel.Pooled(p)}
	for _, ex := range executors {
		t.Run(ex.Name(), func(t *testing.T) {
			testFunc(t, ex)
		})
	}
}

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isEven(n int) bool { return n%2 == 0 }
