// Package cli implements the aomkin command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aomkin/config"
)

// RootOptions holds the persistent flags shared by every command.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// NewRootCommand returns the aomkin root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "aomkin",
		Short: "Steady-state kinetics of electrocatalytic oxidation mechanisms",
		Long: `aomkin computes steady-state surface coverages and reaction fluxes of the
ER and LH adsorbate-oxidation mechanisms over overpotential and pH sweeps,
with Butler-Volmer, Marcus or Marcus-Gerischer rate laws.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("invalid flags", err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "run file (YAML, TOML or JSON)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides log.level")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (text|json), overrides log.format")

	cmd.AddCommand(newSweepCommand(opts))
	cmd.AddCommand(newScanCommand(opts))
	cmd.AddCommand(newConfigCommand(opts))
	cmd.AddCommand(newRunsCommand(opts))

	return cmd
}

// load reads the run file named by --config and applies the log overrides.
func (o *RootOptions) load() (config.Config, error) {
	c, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, usageError("load configuration", err)
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Log.Format = o.LogFormat
	}

	return c, nil
}
