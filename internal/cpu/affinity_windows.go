//go:build windows

package cpu

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// pinToCore pins the current OS thread to a CPU core.
// Must be called after runtime.LockOSThread().
func pinToCore(cpuID int) error {
	mask := uintptr(1) << uint(wrapCPU(cpuID))
	prev, _, err := setThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if prev == 0 {
		return err
	}
	return nil
}

// SetupWorkerAffinity locks the goroutine to an OS thread and pins that
// thread to CPU workerID mod NumCPU.
// Returns a cleanup function that should be deferred.
func SetupWorkerAffinity(workerID int) func() {
	unlock := LockThread()
	_ = pinToCore(workerID)
	return unlock
}
