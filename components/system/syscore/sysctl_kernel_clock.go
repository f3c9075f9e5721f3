//go:build darwin || freebsd || netbsd || openbsd

package syscore

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sys/unix"

	"github.com/open-control-systems/clock-guard/components/status"
)

// SysctlKernelClock reads kern.boottime directly, uptime is derived from it.
type SysctlKernelClock struct {
	clock clockwork.Clock
}

// NewSysctlKernelClock is an initialization of SysctlKernelClock.
func NewSysctlKernelClock(clock clockwork.Clock) *SysctlKernelClock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &SysctlKernelClock{
		clock: clock,
	}
}

// BootTime returns kern.boottime truncated to seconds.
func (*SysctlKernelClock) BootTime() (time.Time, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return time.Time{}, fmt.Errorf("sysctl-kernel-clock: failed to read kern.boottime: %v: %w",
			err, status.StatusNotSupported)
	}

	sec, _ := tv.Unix()

	return time.Unix(sec, 0), nil
}

// Uptime returns wall clock time elapsed since kern.boottime.
func (c *SysctlKernelClock) Uptime() time.Duration {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0
	}

	sec, _ := tv.Unix()

	return c.clock.Now().Truncate(time.Second).Sub(time.Unix(sec, 0))
}
