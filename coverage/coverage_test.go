package coverage_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/coverage"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/matrix"
	"github.com/katalvlaran/aomkin/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNet(t *testing.T, name string) *network.Network {
	t.Helper()
	n, err := builder.ByName(name)
	require.NoError(t, err)
	return n
}

// erTable: k1=2 k-1=0.5 k2=3 k-2=1 k3=0.7 k-3=4 k4=5 k-4=0.2
func erTable() kinetics.RateTable {
	return kinetics.RateTable{
		builder.Step1: {Forward: 2, Backward: 0.5},
		builder.Step2: {Forward: 3, Backward: 1},
		builder.Step3: {Forward: 0.7, Backward: 4},
		builder.Step4: {Forward: 5, Backward: 0.2},
	}
}

func lhTable() kinetics.RateTable {
	return kinetics.RateTable{
		builder.Step1:  {Forward: 1.3, Backward: 0.4},
		builder.Step21: {Forward: 2.2, Backward: 0.9},
		builder.Step22: {Forward: 0.6, Backward: 3.1},
		builder.Step31: {Forward: 4.0, Backward: 0.3},
		builder.Step32: {Forward: 1.7, Backward: 2.5},
		builder.Step4:  {Forward: 0.8, Backward: 1.1},
		builder.Step5:  {Forward: 3.6, Backward: 0.25},
	}
}

// erClosedForm is the 4-state cycle solution written out as sums of
// spanning in-tree weights.
func erClosedForm(tab kinetics.RateTable) []float64 {
	k1, km1 := tab["1"].Forward, tab["1"].Backward
	k2, km2 := tab["2"].Forward, tab["2"].Backward
	k3, km3 := tab["3"].Forward, tab["3"].Backward
	k4, km4 := tab["4"].Forward, tab["4"].Backward

	t := []float64{
		km1*km2*km3 + km1*km2*k4 + km1*k3*k4 + k2*k3*k4,
		k1*km2*km3 + k1*km2*k4 + k1*k3*k4 + km2*km3*km4,
		k1*k2*km3 + k1*k2*k4 + km1*km3*km4 + k2*km3*km4,
		k1*k2*k3 + km1*km2*km4 + km1*k3*km4 + k2*k3*km4,
	}
	var sum float64
	for _, v := range t {
		sum += v
	}
	for i := range t {
		t[i] /= sum
	}
	return t
}

// treeWeights enumerates, for every root, the spanning in-trees of the
// positive-rate arc graph and sums their rate products (Matrix-Tree theorem).
func treeWeights(n *network.Network, tab kinetics.RateTable) []float64 {
	size := n.NumStates()
	out := make([][]network.Arc, size)
	for _, a := range n.AllArcs() {
		out[a.FromIndex] = append(out[a.FromIndex], a)
	}
	rate := func(a network.Arc) float64 {
		if a.Forward {
			return tab[a.Step].Forward
		}
		return tab[a.Step].Backward
	}

	w := make([]float64, size)
	choice := make([]int, size)
	for root := 0; root < size; root++ {
		var rec func(s int)
		rec = func(s int) {
			if s == size {
				prod := 1.0
				for v := 0; v < size; v++ {
					if v == root {
						continue
					}
					// follow the chosen arcs; a tree reaches root within size hops
					cur, hops := v, 0
					for cur != root && hops <= size {
						cur = out[cur][choice[cur]].ToIndex
						hops++
					}
					if cur != root {
						return
					}
				}
				for v := 0; v < size; v++ {
					if v != root {
						prod *= rate(out[v][choice[v]])
					}
				}
				w[root] += prod
				return
			}
			if s == root {
				rec(s + 1)
				return
			}
			for c := range out[s] {
				choice[s] = c
				rec(s + 1)
			}
		}
		rec(0)
	}

	var sum float64
	for _, v := range w {
		sum += v
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

func TestSolve_ERMatchesClosedForm(t *testing.T) {
	n := mustNet(t, builder.NameER)
	cov, err := coverage.Solve(n, erTable())
	require.NoError(t, err)
	require.Equal(t, []string{"*", "*OH", "*O", "*OOH"}, cov.States)

	want := erClosedForm(erTable())
	for i := range want {
		assert.InEpsilon(t, want[i], cov.Theta[i], 1e-10, cov.States[i])
	}
	// 0.16084 0.24774 0.54542 0.04600
	assert.InDelta(t, 0.5454196274246208, cov.Theta[2], 1e-12)
	assert.InDelta(t, 1.0, cov.Sum(), 1e-12)
}

func TestSolve_LHMatchesTreeWeights(t *testing.T) {
	n := mustNet(t, builder.NameLH)
	cov, err := coverage.Solve(n, lhTable())
	require.NoError(t, err)

	want := treeWeights(n, lhTable())
	for i := range want {
		assert.InEpsilon(t, want[i], cov.Theta[i], 1e-10, cov.States[i])
	}

	theta, ok := cov.Of(builder.StateOO)
	require.True(t, ok)
	assert.InEpsilon(t, want[5], theta, 1e-10)
	_, ok = cov.Of("nope")
	assert.False(t, ok)
	assert.Len(t, cov.Map(), 6)
}

func TestSolve_ERTreeWeightsAgreeWithClosedForm(t *testing.T) {
	n := mustNet(t, builder.NameER)
	tw := treeWeights(n, erTable())
	cf := erClosedForm(erTable())
	for i := range cf {
		assert.InEpsilon(t, cf[i], tw[i], 1e-12)
	}
}

func TestSolve_EqualRatesAreUniform(t *testing.T) {
	n := mustNet(t, builder.NameER)
	tab := kinetics.RateTable{}
	for _, id := range n.StepIDs() {
		tab[id] = kinetics.Pair{Forward: 1e-7, Backward: 1e-7}
	}
	cov, err := coverage.Solve(n, tab)
	require.NoError(t, err)
	for _, v := range cov.Theta {
		assert.InDelta(t, 0.25, v, 1e-12)
	}
}

func TestSolve_Degenerate(t *testing.T) {
	lh := mustNet(t, builder.NameLH)

	zero := kinetics.RateTable{}
	for _, id := range lh.StepIDs() {
		zero[id] = kinetics.Pair{}
	}
	_, err := coverage.Solve(lh, zero)
	require.ErrorIs(t, err, coverage.ErrDegenerateRates)

	// Step 4 switched off in both directions isolates *O(O).
	cut := lhTable()
	cut[builder.Step4] = kinetics.Pair{}
	cut[builder.Step5] = kinetics.Pair{}
	_, err = coverage.Solve(lh, cut)
	require.ErrorIs(t, err, coverage.ErrDegenerateRates)

	// An irreversible cycle with one dead step cannot return.
	er := mustNet(t, builder.NameER)
	oneWay := kinetics.RateTable{
		builder.Step1: {Forward: 1},
		builder.Step2: {Forward: 1},
		builder.Step3: {Forward: 1},
		builder.Step4: {},
	}
	_, err = coverage.Solve(er, oneWay)
	require.ErrorIs(t, err, coverage.ErrDegenerateRates)
}

func TestSolve_IrreversibleCycle(t *testing.T) {
	er := mustNet(t, builder.NameER)
	tab := kinetics.RateTable{
		builder.Step1: {Forward: 1},
		builder.Step2: {Forward: 2},
		builder.Step3: {Forward: 4},
		builder.Step4: {Forward: 8},
	}
	cov, err := coverage.Solve(er, tab)
	require.NoError(t, err)
	// θ_i ∝ 1/k_i on a one-way cycle.
	sum := 1.0 + 0.5 + 0.25 + 0.125
	assert.InDelta(t, 1/sum, cov.Theta[0], 1e-12)
	assert.InDelta(t, 0.125/sum, cov.Theta[3], 1e-12)
}

func TestSolve_InputErrors(t *testing.T) {
	er := mustNet(t, builder.NameER)

	_, err := coverage.Solve(nil, erTable())
	require.ErrorIs(t, err, coverage.ErrNilNetwork)

	partial := erTable()
	delete(partial, builder.Step3)
	_, err = coverage.Solve(er, partial)
	require.ErrorIs(t, err, coverage.ErrIncompleteTable)

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		tab := erTable()
		tab[builder.Step2] = kinetics.Pair{Forward: bad, Backward: 1}
		_, err = coverage.Solve(er, tab)
		require.ErrorIs(t, err, coverage.ErrInvalidRate)
	}
}

func TestGenerator(t *testing.T) {
	er := mustNet(t, builder.NameER)
	g, err := coverage.Generator(er, erTable())
	require.NoError(t, err)

	// k1 feeds *OH from *, k-1 feeds * from *OH.
	v, err := g.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	v, err = g.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	v, err = g.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -(2 + 0.2), v, 1e-15)

	// Columns of a generator sum to zero.
	for j := 0; j < g.Cols(); j++ {
		var s float64
		for i := 0; i < g.Rows(); i++ {
			x, _ := g.At(i, j)
			s += x
		}
		assert.InDelta(t, 0, s, 1e-12)
	}

	cov, err := coverage.Solve(er, erTable())
	require.NoError(t, err)
	res, err := matrix.MatVec(g, cov.Theta)
	require.NoError(t, err)
	for _, r := range res {
		assert.InDelta(t, 0, r, 1e-12)
	}
}
