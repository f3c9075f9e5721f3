package syscore

import "time"

// KernelClock reads the kernel time counters.
type KernelClock interface {
	// BootTime returns the instant the kernel was started.
	//
	// Remarks:
	//  - The value is derived from the wall clock on most platforms, so a manual
	//    wall clock change shifts it.
	//  - Implementation should return status.StatusNotSupported if the platform
	//    can't provide the boot time.
	BootTime() (time.Time, error)

	// Uptime returns time elapsed since boot, zero if it can't be read.
	Uptime() time.Duration
}
