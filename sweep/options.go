package sweep

import (
	"io"
	"log/slog"
	"time"
)

// Observer receives sweep lifecycle events. Implementations must be safe
// for concurrent use when workers > 1.
type Observer interface {
	SweepStarted(runID, mode string, points int)
	PointEvaluated(elapsed time.Duration, err error)
	SweepFinished(runID, mode string, invalid int, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) SweepStarted(string, string, int)                         {}
func (nopObserver) PointEvaluated(time.Duration, error)                      {}
func (nopObserver) SweepFinished(string, string, int, time.Duration, error) {}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithWorkers sets the number of concurrent point evaluations. Values ≤ 1
// evaluate sequentially.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithObserver attaches lifecycle hooks such as a metrics registry.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithRunID fixes the run identifier instead of generating a UUID per run.
func WithRunID(id string) Option {
	return func(e *Engine) { e.runID = id }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
