package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aomkin/export"
)

type sweepFlags struct {
	runFlags
	mode   string
	fixed  float64
	format string
}

func newSweepCommand(root *RootOptions) *cobra.Command {
	f := &sweepFlags{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a 1D sweep over η or pH and write the result table",
		Long: `Run a one-dimensional sweep. With --mode eta the overpotential follows
sweep.eta at the pH given by sweep.fixed_ph; with --mode ph the pH follows
sweep.ph at the overpotential sweep.fixed_eta. Every evaluated point is one
row; points whose rates degenerate are kept with NaN values and an error
message. A run file in 2d mode is swept over η.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, root, f)
		},
	}
	f.register(cmd)
	fl := cmd.Flags()
	fl.StringVar(&f.mode, "mode", "", "swept variable (eta|ph), overrides sweep.mode")
	fl.Float64Var(&f.fixed, "fixed", 0, "value of the variable held fixed, overrides sweep.fixed_ph / sweep.fixed_eta")
	fl.StringVarP(&f.format, "format", "f", "", "table format (csv|tsv|jsonl), overrides output.format")

	return cmd
}

func runSweep(cmd *cobra.Command, root *RootOptions, f *sweepFlags) error {
	c, err := root.load()
	if err != nil {
		return err
	}
	f.apply(cmd, &c)
	if cmd.Flags().Changed("mode") {
		c.Sweep.Mode = f.mode
	}
	if c.Is2D() {
		c.Sweep.Mode = "eta"
	}
	if cmd.Flags().Changed("fixed") {
		if c.Sweep.Mode == "ph" {
			c.Sweep.FixedEta = f.fixed
		} else {
			c.Sweep.FixedPH = f.fixed
		}
	}
	if cmd.Flags().Changed("format") {
		c.Output.Format = f.format
	}

	w, err := export.Lookup(c.Output.Format)
	if err != nil {
		return usageError("output format", err)
	}
	s, eng, err := prepare(cmd, c)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	res, err := eng.Run1D(ctx)
	if err != nil {
		_ = s.finish(ctx, "", nil)
		return runErr(err)
	}
	tab := res.Table()
	mode := "1d-" + res.Variable.String()

	if err := writeTo(cmd, c.Output.Path, func(out io.Writer) error {
		return w.WriteTable(out, tab)
	}); err != nil {
		return err
	}
	if err := s.finish(ctx, mode, &tab); err != nil {
		return err
	}
	if c.Output.Path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %d points, %d invalid, written to %s\n",
			res.RunID, len(res.Points), res.Invalid, c.Output.Path)
	}

	return nil
}
