package benchmarks

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/utkarsh5026/iterpar/parallel"
	"github.com/utkarsh5026/iterpar/pool"
)

// strategyConfig is a named dispatch strategy under benchmark.
type strategyConfig struct {
	name string
	ex   parallel.Executor
}

// getAllStrategies returns every strategy. The pool behind the pooled ones
// is closed when the benchmark ends.
func getAllStrategies(b *testing.B, workerCount int) []strategyConfig {
	b.Helper()

	shared, err := pool.New(workerCount)
	if err != nil {
		b.Fatalf("pool.New failed: %v", err)
	}
	pinned, err := pool.New(workerCount, pool.WithCPUAffinity())
	if err != nil {
		b.Fatalf("pool.New failed: %v", err)
	}
	b.Cleanup(func() {
		_ = shared.Close()
		_ = pinned.Close()
	})

	return []strategyConfig{
		{name: "Threads", ex: parallel.Threads()},
		{name: "OSThreads", ex: parallel.OSThreads()},
		{name: "Pool", ex: parallel.Pooled(shared)},
		{name: "PinnedPool", ex: parallel.Pooled(pinned)},
	}
}

// runStrategyBenchmark runs fn for every strategy and input size.
func runStrategyBenchmark(b *testing.B, sizes []int, fn func(b *testing.B, ex parallel.Executor, threads int, data []int)) {
	b.Helper()

	threads := runtime.NumCPU()
	for _, strategy := range getAllStrategies(b, threads) {
		for _, size := range sizes {
			data := generateInput(size)
			b.Run(fmt.Sprintf("%s/n=%d", strategy.name, size), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				fn(b, strategy.ex, threads, data)
			})
		}
	}
}

func generateInput(size int) []int {
	rng := rand.New(rand.NewSource(int64(size)))
	data := make([]int, size)
	for i := range data {
		data[i] = rng.Intn(1_000_000)
	}
	return data
}

// cpuBoundWork simulates a CPU-intensive per-element operation.
func cpuBoundWork(iterations int) func(int) int {
	return func(v int) int {
		result := v
		for i := 0; i < iterations; i++ {
			result = result*31 + i
		}
		return result
	}
}

func intCmp(a, b int) int { return a - b }
