// Package metrics exposes sweep instrumentation as Prometheus collectors.
//
// A Registry implements sweep.Observer; attach it with sweep.WithObserver
// and dump it with WriteTextfile (node-exporter textfile format) when the
// run ends.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/aomkin/coverage"
	"github.com/katalvlaran/aomkin/kinetics"
)

const namespace = "aomkin"

// Point outcomes and failure reasons used as label values.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"

	ReasonDegenerate  = "degenerate"
	ReasonIntegration = "integration"
	ReasonNonFinite   = "non_finite"
	ReasonOther       = "other"

	StatusOK      = "ok"
	StatusAborted = "aborted"
)

// Registry holds the collectors of one process.
type Registry struct {
	PointsTotal    *prometheus.CounterVec
	PointFailures  *prometheus.CounterVec
	PointDuration  prometheus.Histogram
	SweepsTotal    *prometheus.CounterVec
	SweepDuration  *prometheus.HistogramVec
	SweepPoints    *prometheus.GaugeVec
	SweepInvalid   *prometheus.GaugeVec
	SweepsInFlight prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry returns a Registry backed by a fresh prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.PointsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Evaluated sweep points by outcome",
		},
		[]string{"outcome"},
	)
	r.PointFailures = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "point_failures_total",
			Help:      "Invalid sweep points by failure reason",
		},
		[]string{"reason"},
	)
	r.PointDuration = f.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "point_duration_seconds",
			Help:      "Wall time of one point evaluation",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
	)
	r.SweepsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Finished sweeps by mode and status",
		},
		[]string{"mode", "status"},
	)
	r.SweepDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Wall time of a sweep",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"mode"},
	)
	r.SweepPoints = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_points",
			Help:      "Points planned by the last sweep",
		},
		[]string{"mode"},
	)
	r.SweepInvalid = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_invalid_points",
			Help:      "Invalid points of the last finished sweep",
		},
		[]string{"mode"},
	)
	r.SweepsInFlight = f.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweeps_in_flight",
			Help:      "Sweeps currently iterating",
		},
	)

	return r
}

// Gatherer returns the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// SweepStarted implements sweep.Observer.
func (r *Registry) SweepStarted(_, mode string, points int) {
	r.SweepsInFlight.Inc()
	r.SweepPoints.WithLabelValues(mode).Set(float64(points))
}

// PointEvaluated implements sweep.Observer.
func (r *Registry) PointEvaluated(elapsed time.Duration, err error) {
	r.PointDuration.Observe(elapsed.Seconds())
	if err == nil {
		r.PointsTotal.WithLabelValues(OutcomeValid).Inc()
		return
	}
	r.PointsTotal.WithLabelValues(OutcomeInvalid).Inc()
	r.PointFailures.WithLabelValues(Reason(err)).Inc()
}

// SweepFinished implements sweep.Observer. A sweep aborted during
// validation never started, so the in-flight gauge is left alone for it.
func (r *Registry) SweepFinished(_, mode string, invalid int, elapsed time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusAborted
	}
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		r.SweepsInFlight.Dec()
	}
	r.SweepsTotal.WithLabelValues(mode, status).Inc()
	r.SweepDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if err == nil {
		r.SweepInvalid.WithLabelValues(mode).Set(float64(invalid))
	}
}

// Reason maps a point error to a failure label.
func Reason(err error) string {
	switch {
	case errors.Is(err, coverage.ErrDegenerateRates):
		return ReasonDegenerate
	case errors.Is(err, kinetics.ErrIntegrationDiverged):
		return ReasonIntegration
	case errors.Is(err, kinetics.ErrNonFiniteRate), errors.Is(err, coverage.ErrInvalidRate):
		return ReasonNonFinite
	default:
		return ReasonOther
	}
}

// WriteTextfile writes every collector to path in the Prometheus text
// format, atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
