package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/clock-guard/components/config/cfgcore"
	"github.com/open-control-systems/clock-guard/components/core"
)

type rootOptions struct {
	configPath string
	cfg        *cfgcore.Config
}

// Command line flags overriding the config keys.
var flagKeys = map[string]string{
	"authority-url":   "authority.url",
	"timezone":        "timezone",
	"db-path":         "db.path",
	"log-path":        "log.path",
	"interval":        "watch.interval",
	"exit-on-success": "watch.exit_on_success",
	"host":            "server.host",
	"port":            "server.port",
	"mdns":            "mdns.enabled",
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "clock-guard",
		Short: "Detect manual changes of the system clock",
		Long: `clock-guard keeps the kernel boot time observed on the last successful
verification and compares it with the current one. The boot time is derived
from the wall clock, so a manual clock change moves it. When it moves, the
local time is checked against a remote time server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (yaml, json, toml)")
	flags.String("authority-url", "", "time server URL")
	flags.String("timezone", "", "IANA time zone sent to the time server, local one if empty")
	flags.String("db-path", "", "baseline database file, in-memory if empty")
	flags.String("log-path", "", "log file, stderr if empty")

	cmd.AddCommand(
		newVerifyCommand(opts),
		newWatchCommand(opts),
		newServeCommand(opts),
		newUptimeCommand(opts),
		newBaselineCommand(opts),
	)

	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	loader := cfgcore.NewLoader().WithConfigPath(o.configPath)

	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}

		if err := loader.BindFlag(key, flag); err != nil {
			return err
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	if err := core.SetLogFile(core.LogFileParams{
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}); err != nil {
		return fmt.Errorf("failed to setup log file: %w", err)
	}

	o.cfg = cfg

	return nil
}
