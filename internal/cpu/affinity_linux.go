//go:build linux

package cpu

import (
	"golang.org/x/sys/unix"
)

// pinToCore pins the current OS thread to a CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(cpuID int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(wrapCPU(cpuID))

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}

// SetupWorkerAffinity locks the goroutine to an OS thread and pins that
// thread to CPU workerID mod NumCPU.
// Returns a cleanup function that should be deferred.
func SetupWorkerAffinity(workerID int) func() {
	unlock := LockThread()
	_ = pinToCore(workerID)
	return unlock
}
