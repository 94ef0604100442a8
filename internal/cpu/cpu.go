// Package cpu ties pool workers to operating system threads.
package cpu

import "runtime"

// LockThread wires the calling goroutine to its current OS thread.
// Returns a cleanup function that should be deferred.
func LockThread() func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

// NumCPU returns the number of logical CPUs available.
func NumCPU() int {
	return runtime.NumCPU()
}

func wrapCPU(cpuID int) int {
	n := runtime.NumCPU()
	if cpuID < 0 {
		cpuID = -cpuID
	}
	return cpuID % n
}
