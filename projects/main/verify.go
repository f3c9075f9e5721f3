package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/clock-guard/components/status"
	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

type verifyOptions struct {
	tamperedOnly  bool
	reconcileOnly bool
}

func newVerifyCommand(root *rootOptions) *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the local time once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd.Context(), root.cfg)
			if err != nil {
				return err
			}
			defer env.Close()

			switch {
			case opts.tamperedOnly:
				tampered, err := env.checker.IsClockTampered()
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "tampered=%t\n", tampered)

				return nil

			case opts.reconcileOnly:
				ok, outcome := env.checker.ReconcileWithServer(cmd.Context())

				fmt.Fprintf(cmd.OutOrStdout(), "success=%t outcome=%s message=%q\n",
					ok, outcome, outcome.Message())

				if !ok {
					return fmt.Errorf("reconciliation failed: %s: %w", outcome, status.StatusError)
				}

				return nil
			}

			return runVerify(cmd, env.checker)
		},
	}

	cmd.Flags().BoolVar(&opts.tamperedOnly, "tampered", false,
		"only compare the boot time with the baseline, don't contact the time server")
	cmd.Flags().BoolVar(&opts.reconcileOnly, "reconcile", false,
		"only compare the local time with the time server, don't update the baseline")
	cmd.MarkFlagsMutuallyExclusive("tampered", "reconcile")

	return cmd
}

type verifyReply struct {
	success   bool
	timestamp time.Time
	message   string
}

func runVerify(cmd *cobra.Command, checker *tgcore.Checker) error {
	replyCh := make(chan verifyReply, 1)

	checker.GetVerifiedTime(cmd.Context(), func(success bool, timestamp time.Time, message string) {
		replyCh <- verifyReply{
			success:   success,
			timestamp: timestamp,
			message:   message,
		}
	})

	reply := <-replyCh

	fmt.Fprintf(cmd.OutOrStdout(), "success=%t time=%s message=%q\n",
		reply.success, reply.timestamp.Format(time.RFC3339), reply.message)

	if !reply.success {
		return fmt.Errorf("time verification failed: %w", status.StatusError)
	}

	return nil
}
