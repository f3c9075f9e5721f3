package main

import (
	"github.com/spf13/cobra"

	"github.com/open-control-systems/clock-guard/components/core"
	"github.com/open-control-systems/clock-guard/components/system/syssched"
	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

func newWatchCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Verify the local time periodically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd.Context(), root.cfg)
			if err != nil {
				return err
			}
			defer env.Close()

			runner := syssched.NewAsyncTaskRunner(
				cmd.Context(),
				tgcore.NewVerifyTask(cmd.Context(), env.checker),
				syssched.NewLogErrorHandler("time-watcher"),
				syssched.AsyncTaskRunnerParams{
					UpdateInterval: root.cfg.Watch.Interval,
					ExitOnSuccess:  root.cfg.Watch.ExitOnSuccess,
				},
			)
			if err := runner.Start(); err != nil {
				return err
			}

			core.LogInf.Printf("time-watcher: started: interval=%v exit_on_success=%t\n",
				root.cfg.Watch.Interval, root.cfg.Watch.ExitOnSuccess)

			select {
			case <-runner.Done():
			case <-cmd.Context().Done():
			}

			return runner.Stop()
		},
	}

	cmd.Flags().Duration("interval", 0, "verification interval, e.g. 30s")
	cmd.Flags().Bool("exit-on-success", false, "exit after the first successful verification")

	return cmd
}
