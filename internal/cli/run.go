package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aomkin/config"
	"github.com/katalvlaran/aomkin/metrics"
	"github.com/katalvlaran/aomkin/store"
	"github.com/katalvlaran/aomkin/sweep"
)

// runFlags override the run file for one invocation.
type runFlags struct {
	network string
	law     string
	barrier string
	workers int
	out     string
	store   string
	metrics string
}

func (f *runFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.network, "network", "", "mechanism (ER|LH), overrides model.network")
	fl.StringVar(&f.law, "law", "", "rate law (bv|marcus|marcus-gerischer), overrides model.law")
	fl.StringVar(&f.barrier, "barrier", "", "BV barrier (bep|softplus), overrides model.barrier")
	fl.IntVarP(&f.workers, "workers", "w", 0, "parallel point evaluations, overrides sweep.workers")
	fl.StringVarP(&f.out, "out", "o", "", "output file (default stdout), overrides output.path")
	fl.StringVar(&f.store, "store", "", "SQLite run archive, overrides output.store")
	fl.StringVar(&f.metrics, "metrics", "", "Prometheus textfile, overrides output.metrics")
}

func (f *runFlags) apply(cmd *cobra.Command, c *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("network") {
		c.Model.Network = f.network
	}
	if fl.Changed("law") {
		c.Model.Law = f.law
	}
	if fl.Changed("barrier") {
		c.Model.Barrier = f.barrier
	}
	if fl.Changed("workers") {
		c.Sweep.Workers = f.workers
	}
	if fl.Changed("out") {
		c.Output.Path = f.out
	}
	if fl.Changed("store") {
		c.Output.Store = f.store
	}
	if fl.Changed("metrics") {
		c.Output.Metrics = f.metrics
	}
}

// session holds what one sweep command needs besides the engine.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *metrics.Registry
}

// prepare revalidates c after flag overrides and builds the engine.
func prepare(cmd *cobra.Command, c config.Config) (*session, *sweep.Engine, error) {
	if err := config.Validate(c); err != nil {
		return nil, nil, usageError("invalid configuration", err)
	}
	logger, err := NewLogger(cmd.ErrOrStderr(), c.Log.Level, c.Log.Format)
	if err != nil {
		return nil, nil, usageError("logging", err)
	}
	sc, err := c.SweepConfig()
	if err != nil {
		return nil, nil, usageError("invalid configuration", err)
	}

	s := &session{cfg: c, logger: logger}
	opts := []sweep.Option{sweep.WithLogger(logger), sweep.WithWorkers(c.Sweep.Workers)}
	if c.Output.Metrics != "" {
		s.registry = metrics.NewRegistry()
		opts = append(opts, sweep.WithObserver(s.registry))
	}
	eng, err := sweep.New(sc, opts...)
	if err != nil {
		return nil, nil, usageError("invalid configuration", err)
	}

	return s, eng, nil
}

// runErr classifies an engine error.
func runErr(err error) error {
	if errors.Is(err, sweep.ErrInvalidConfig) {
		return usageError("invalid configuration", err)
	}

	return failure("sweep failed", err)
}

// finish archives the table and flushes metrics. Metrics are written even
// when the run failed.
func (s *session) finish(ctx context.Context, mode string, t *sweep.Table) error {
	var errs []error
	if t != nil && s.cfg.Output.Store != "" {
		errs = append(errs, s.save(ctx, mode, *t))
	}
	if s.registry != nil {
		if err := s.registry.WriteTextfile(s.cfg.Output.Metrics); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return failure("write results", err)
	}

	return nil
}

func (s *session) save(ctx context.Context, mode string, t sweep.Table) error {
	st, err := store.Open(s.cfg.Output.Store)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Save(ctx, mode, t); err != nil {
		return err
	}
	s.logger.Info("run archived", "run", t.RunID, "store", s.cfg.Output.Store)

	return nil
}

// output opens path, or returns stdout for "" or "-".
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, failure("create output", err)
	}

	return f, f.Close, nil
}

// writeTo writes through fn into path and reports close errors.
func writeTo(cmd *cobra.Command, path string, fn func(io.Writer) error) (err error) {
	w, closeFn, err := output(cmd, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = failure("close output", cerr)
		}
	}()
	if err := fn(w); err != nil {
		return failure(fmt.Sprintf("write %s", displayPath(path)), err)
	}

	return nil
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}

	return path
}
