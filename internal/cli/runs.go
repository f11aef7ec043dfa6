package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aomkin/export"
	"github.com/katalvlaran/aomkin/store"
)

func newRunsCommand(root *RootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the run archive",
	}
	cmd.PersistentFlags().StringVar(&path, "store", "", "SQLite run archive, overrides output.store")

	open := func(cmd *cobra.Command) (*store.Store, error) {
		p := path
		if !cmd.Flags().Changed("store") {
			c, err := root.load()
			if err != nil {
				return nil, err
			}
			p = c.Output.Store
		}
		if p == "" {
			return nil, usageError("no run archive", fmt.Errorf("set --store or output.store"))
		}
		s, err := store.Open(p)
		if err != nil {
			return nil, failure("open run archive", err)
		}

		return s, nil
	}

	cmd.AddCommand(newRunsListCommand(open))
	cmd.AddCommand(newRunsShowCommand(open))

	return cmd
}

type opener func(*cobra.Command) (*store.Store, error)

func newRunsListCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.Runs(cmd.Context())
			if err != nil {
				return failure("list runs", err)
			}

			return writeRuns(cmd.OutOrStdout(), runs)
		},
	}
}

func writeRuns(w io.Writer, runs []store.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tMODEL\tKINETICS\tT\tMODE\tPOINTS\tINVALID")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\t%s\t%d\t%d\n",
			r.ID, r.Created.Format(time.RFC3339), r.Model, r.Kinetics, r.T, r.Mode, r.Points, r.Invalid)
	}

	return tw.Flush()
}

func newRunsShowCommand(open opener) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Re-export the table of an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := export.Lookup(format)
			if err != nil {
				return usageError("output format", err)
			}
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			tab, err := s.Table(cmd.Context(), args[0])
			if err != nil {
				return failure("load run", err)
			}

			return writeTo(cmd, out, func(dst io.Writer) error {
				return w.WriteTable(dst, tab)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "table format (csv|tsv|jsonl)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
