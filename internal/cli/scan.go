package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aomkin/export"
)

type scanFlags struct {
	runFlags
	field string
	table string
}

func newScanCommand(root *RootOptions) *cobra.Command {
	f := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run the 2D pH × η scan and write a contour matrix",
		Long: `Run the two-dimensional scan over sweep.ph × sweep.eta and write one
contour matrix as CSV: the first row holds the η values, every following
row starts with its pH. --field lg selects lg|r_ref|, --field theta the
free-site occupancy. --table additionally writes the full per-point table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, root, f)
		},
	}
	f.register(cmd)
	fl := cmd.Flags()
	fl.StringVar(&f.field, "field", "lg", "matrix to write (lg|theta)")
	fl.StringVar(&f.table, "table", "", "also write the full table to this file in output.format")

	return cmd
}

func runScan(cmd *cobra.Command, root *RootOptions, f *scanFlags) error {
	c, err := root.load()
	if err != nil {
		return err
	}
	f.apply(cmd, &c)
	c.Sweep.Mode = "2d"
	if f.field != "lg" && f.field != "theta" {
		return usageError("field", fmt.Errorf("%w: %q", export.ErrUnknownField, f.field))
	}

	s, eng, err := prepare(cmd, c)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	res, err := eng.Run2D(ctx)
	if err != nil {
		_ = s.finish(ctx, "", nil)
		return runErr(err)
	}
	tab := res.Table()

	if err := writeTo(cmd, c.Output.Path, func(out io.Writer) error {
		return export.Matrix(out, res, f.field)
	}); err != nil {
		return err
	}
	if f.table != "" {
		w, err := export.Lookup(c.Output.Format)
		if err != nil {
			return usageError("output format", err)
		}
		if err := writeTo(cmd, f.table, func(out io.Writer) error {
			return w.WriteTable(out, tab)
		}); err != nil {
			return err
		}
	}
	if err := s.finish(ctx, "2d", &tab); err != nil {
		return err
	}
	h, w := res.Grid.Shape()
	s.logger.Info("scan written", "run", res.RunID, "rows", h, "cols", w, "invalid", res.Invalid, "field", f.field)

	return nil
}
