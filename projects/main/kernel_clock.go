//go:build !(darwin || freebsd || netbsd || openbsd)

package main

import (
	"context"

	"github.com/open-control-systems/clock-guard/components/system/syscore"
)

func newKernelClock(ctx context.Context) syscore.KernelClock {
	return syscore.NewHostKernelClock(ctx)
}
