package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/clock-guard/components/status"
	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

var baselineKeys = []string{
	tgcore.ActualBootTimeKey,
	tgcore.DefaultBootTimeKey,
}

func newBaselineCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Inspect or reset the persisted boot time baseline",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the persisted boot time baseline",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				env, err := newEnvironment(cmd.Context(), root.cfg)
				if err != nil {
					return err
				}
				defer env.Close()

				for _, key := range baselineKeys {
					value, err := env.store.GetValue(key)
					if err != nil {
						if errors.Is(err, status.StatusNoData) {
							fmt.Fprintf(cmd.OutOrStdout(), "%s=none\n", key)

							continue
						}

						return err
					}

					fmt.Fprintf(cmd.OutOrStdout(), "%s=%.3f (%s)\n", key, value,
						time.Unix(int64(value), 0).UTC().Format(time.RFC3339))
				}

				return nil
			},
		},
		&cobra.Command{
			Use:       "clear [key]",
			Short:     "Remove one or all baseline values",
			Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
			ValidArgs: baselineKeys,
			RunE: func(cmd *cobra.Command, args []string) error {
				env, err := newEnvironment(cmd.Context(), root.cfg)
				if err != nil {
					return err
				}
				defer env.Close()

				if len(args) == 1 {
					return env.store.ClearOne(args[0])
				}

				return env.store.ClearAll()
			},
		},
	)

	return cmd
}
