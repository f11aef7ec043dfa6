package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/coverage"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/metrics"
	"github.com/katalvlaran/aomkin/sweep"
)

func TestReason(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("solve: %w", coverage.ErrDegenerateRates), metrics.ReasonDegenerate},
		{fmt.Errorf("k: %w", kinetics.ErrIntegrationDiverged), metrics.ReasonIntegration},
		{fmt.Errorf("k: %w", kinetics.ErrNonFiniteRate), metrics.ReasonNonFinite},
		{fmt.Errorf("table: %w", coverage.ErrInvalidRate), metrics.ReasonNonFinite},
		{errors.New("boom"), metrics.ReasonOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, metrics.Reason(tc.err), tc.err.Error())
	}
}

func TestObserverEvents(t *testing.T) {
	r := metrics.NewRegistry()

	r.SweepStarted("run", "1d-eta", 3)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SweepsInFlight))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.SweepPoints.WithLabelValues("1d-eta")))

	r.PointEvaluated(time.Millisecond, nil)
	r.PointEvaluated(time.Millisecond, nil)
	r.PointEvaluated(time.Millisecond, coverage.ErrDegenerateRates)
	r.SweepFinished("run", "1d-eta", 1, time.Second, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.PointsTotal.WithLabelValues(metrics.OutcomeValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.PointsTotal.WithLabelValues(metrics.OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.PointFailures.WithLabelValues(metrics.ReasonDegenerate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SweepInvalid.WithLabelValues("1d-eta")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.SweepsInFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(r.PointDuration))
}

func TestObserver_ValidationAbortKeepsInFlight(t *testing.T) {
	r := metrics.NewRegistry()
	r.SweepFinished("run", "2d", 0, time.Millisecond, sweep.ErrInvalidConfig)

	assert.Equal(t, 0.0, testutil.ToFloat64(r.SweepsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SweepsTotal.WithLabelValues("2d", metrics.StatusAborted)))

	r.SweepStarted("run", "2d", 4)
	r.SweepFinished("run", "2d", 0, time.Millisecond, context.Canceled)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.SweepsInFlight))
}

func TestRegistry_WithEngine(t *testing.T) {
	n, err := builder.ByName(builder.NameER)
	require.NoError(t, err)
	steps := map[string]kinetics.Step{}
	for _, id := range n.StepIDs() {
		steps[id] = kinetics.Step{DeltaG: 0.1, Z: 1, Gamma: 0.5, Beta: 0.5, Lambda: 1}
	}
	cfg := sweep.Config{
		Network:  n,
		Kernel:   kinetics.Kernel{Law: kinetics.ButlerVolmer, Barrier: kinetics.BEP},
		T:        298.15,
		DeltaGw:  0.8277,
		Ea0:      0.5,
		Steps:    steps,
		Variable: sweep.Eta,
		Eta:      sweep.Range{Start: -1, End: 1, Step: 0.5},
	}

	r := metrics.NewRegistry()
	eng, err := sweep.New(cfg, sweep.WithObserver(r), sweep.WithWorkers(2))
	require.NoError(t, err)
	_, err = eng.Run1D(context.Background())
	require.NoError(t, err)

	expected := `
# HELP aomkin_sweeps_total Finished sweeps by mode and status
# TYPE aomkin_sweeps_total counter
aomkin_sweeps_total{mode="1d-eta",status="ok"} 1
# HELP aomkin_points_total Evaluated sweep points by outcome
# TYPE aomkin_points_total counter
aomkin_points_total{outcome="valid"} 5
`
	require.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected),
		"aomkin_sweeps_total", "aomkin_points_total"))

	path := filepath.Join(t.TempDir(), "aomkin.prom")
	require.NoError(t, r.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `aomkin_sweep_invalid_points{mode="1d-eta"} 0`)
	assert.Contains(t, string(raw), "aomkin_sweep_duration_seconds_count{mode=\"1d-eta\"} 1")
}
