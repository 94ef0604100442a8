//go:build !linux && !darwin && !windows

package cpu

// SetupWorkerAffinity locks the goroutine to an OS thread.
// CPU pinning is not supported on this platform.
func SetupWorkerAffinity(workerID int) func() {
	return LockThread()
}
