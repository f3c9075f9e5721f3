//go:build darwin || freebsd || netbsd || openbsd

package main

import (
	"context"

	"github.com/open-control-systems/clock-guard/components/system/syscore"
)

func newKernelClock(_ context.Context) syscore.KernelClock {
	return syscore.NewSysctlKernelClock(nil)
}
