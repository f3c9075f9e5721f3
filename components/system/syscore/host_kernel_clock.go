package syscore

import (
	"context"
	"fmt"
	"time"

	"github.com/mackerelio/go-osstat/uptime"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/open-control-systems/clock-guard/components/core"
	"github.com/open-control-systems/clock-guard/components/status"
)

// HostKernelClock reads boot time and uptime of the host the process runs on.
//
// References:
//   - https://github.com/shirou/gopsutil
//   - https://github.com/mackerelio/go-osstat
type HostKernelClock struct {
	ctx context.Context
}

// NewHostKernelClock is an initialization of HostKernelClock.
func NewHostKernelClock(ctx context.Context) *HostKernelClock {
	return &HostKernelClock{
		ctx: ctx,
	}
}

// BootTime returns the host boot time with a second precision.
func (c *HostKernelClock) BootTime() (time.Time, error) {
	sec, err := host.BootTimeWithContext(c.ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("host-kernel-clock: failed to read boot time: %v: %w",
			err, status.StatusNotSupported)
	}

	if sec == 0 {
		return time.Time{}, fmt.Errorf("host-kernel-clock: boot time is zero: %w",
			status.StatusNotSupported)
	}

	return time.Unix(int64(sec), 0), nil
}

// Uptime returns the host uptime.
func (*HostKernelClock) Uptime() time.Duration {
	d, err := uptime.Get()
	if err != nil {
		core.LogWrn.Printf("host-kernel-clock: failed to read uptime, using 0: %v\n", err)

		return 0
	}

	return d
}
