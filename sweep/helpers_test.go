package sweep_test

import (
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/network"
	"github.com/katalvlaran/aomkin/sweep"
	"github.com/stretchr/testify/require"
)

const roomT = 298.15

func mustNet(t testing.TB, name string) *network.Network {
	t.Helper()
	n, err := builder.ByName(name)
	require.NoError(t, err)
	return n
}

// uniformSteps gives every electrochemical step of n the same parameters.
func uniformSteps(n *network.Network, s kinetics.Step) map[string]kinetics.Step {
	out := make(map[string]kinetics.Step)
	for _, st := range n.StepsOfKind(network.Electrochemical) {
		out[st.ID] = s
	}
	return out
}

// erExample is the ER / BV-BEP reference scenario: η −1 → 1 step 0.5, pH 0.
func erExample(t testing.TB) sweep.Config {
	n := mustNet(t, builder.NameER)
	return sweep.Config{
		Network:  n,
		Kernel:   kinetics.Kernel{Law: kinetics.ButlerVolmer, Barrier: kinetics.BEP},
		T:        roomT,
		DeltaGw:  0.8277,
		Ea0:      0.5,
		Steps:    uniformSteps(n, kinetics.Step{DeltaG: 0.1, Z: 1, Gamma: 0.5, Beta: 0.5, Lambda: 1}),
		Variable: sweep.Eta,
		Fixed:    0,
		Eta:      sweep.Range{Start: -1, End: 1, Step: 0.5},
		PH:       sweep.Range{Start: 0, End: 14, Step: 7},
	}
}

// lhConfig is an LH configuration with the given kernel.
func lhConfig(t testing.TB, k kinetics.Kernel) sweep.Config {
	n := mustNet(t, builder.NameLH)
	gamma := 0.5
	if k.Barrier == kinetics.Softplus {
		gamma = 1.3863
	}
	return sweep.Config{
		Network: n,
		Kernel:  k,
		T:       roomT,
		DeltaGw: 0.8277,
		Ea0:     0.5,
		Steps:   uniformSteps(n, kinetics.Step{DeltaG: 0.1, Z: 1, Gamma: gamma, Beta: 0.5, Lambda: 1}),
		Chemical: map[string]kinetics.ChemicalStep{
			builder.Step5: {DeltaG: -0.2, Gamma: 0.5, Ea0: 0.5},
		},
		Variable: sweep.Eta,
		Eta:      sweep.Range{Start: -0.5, End: 0.5, Step: 0.25},
		PH:       sweep.Range{Start: 0, End: 14, Step: 3.5},
	}
}

// recorder is an Observer that counts events.
type recorder struct {
	mu       sync.Mutex
	started  int
	points   int
	failed   int
	finished int
	lastErr  error
	onStart  func()
}

func (r *recorder) SweepStarted(string, string, int) {
	r.mu.Lock()
	r.started++
	hook := r.onStart
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (r *recorder) PointEvaluated(_ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points++
	if err != nil {
		r.failed++
	}
}

func (r *recorder) SweepFinished(_, _ string, _ int, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++
	r.lastErr = err
}
