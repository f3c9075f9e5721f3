package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/clock-guard/components/status"
)

func newUptimeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uptime",
		Short: "Print the kernel uptime and the time anchored to the last verification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd.Context(), root.cfg)
			if err != nil {
				return err
			}
			defer env.Close()

			upTime := env.checker.UpTime()

			fmt.Fprintf(cmd.OutOrStdout(), "uptime=%v timestamp=%d\n",
				upTime.Sub(time.Unix(0, 0)), upTime.Unix())

			anchored, err := env.checker.AnchoredTime()
			if err != nil {
				if errors.Is(err, status.StatusNoData) {
					fmt.Fprintln(cmd.OutOrStdout(), "anchored=none")

					return nil
				}

				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "anchored=%s\n", anchored.Format(time.RFC3339))

			return nil
		},
	}
}
