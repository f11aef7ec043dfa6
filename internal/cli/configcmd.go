package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aomkin/config"
)

func newConfigCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or check run files",
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand(root))

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		force    bool
		softplus bool
		network  string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default run file (stdout without a path)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.Default()
			if network != "" {
				c.Model.Network = network
			}
			if softplus {
				c.UseSoftplusDefaults()
			}
			if err := config.Validate(c); err != nil {
				return usageError("invalid defaults", err)
			}

			if len(args) == 0 {
				if err := config.WriteYAML(cmd.OutOrStdout(), c); err != nil {
					return failure("write configuration", err)
				}
				return nil
			}
			if err := config.WriteFile(args[0], c, force); err != nil {
				return failure("write configuration", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", args[0])

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&softplus, "softplus", false, "use Softplus barriers and their default γ")
	cmd.Flags().StringVar(&network, "network", "", "mechanism (ER|LH)")

	return cmd
}

func newConfigValidateCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a run file, including the step parameters the mechanism needs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			c, err := config.Load(path)
			if err != nil {
				return usageError("invalid configuration", err)
			}
			sc, err := c.SweepConfig()
			if err != nil {
				return usageError("invalid configuration", err)
			}
			if err := sc.Validate(); err != nil {
				return usageError("invalid configuration", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, %s, mode %s\n", sc.Network.Name(), sc.Kernel.String(), c.Sweep.Mode)

			return nil
		},
	}
}
