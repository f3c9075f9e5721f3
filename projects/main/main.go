package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	appContext, cancelFunc := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancelFunc()

	if err := newRootCommand().ExecuteContext(appContext); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		cancelFunc()
		os.Exit(1)
	}
}
