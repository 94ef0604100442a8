// Package benchmarks compares the dispatch strategies of package parallel:
// fresh goroutines per call, goroutines locked to OS threads and a shared
// worker pool.
//
//	go test -bench=. -benchmem ./benchmarks
package benchmarks
