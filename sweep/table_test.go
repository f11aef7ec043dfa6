package sweep_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns_ER(t *testing.T) {
	cols := sweep.Columns(mustNet(t, builder.NameER), sweep.Eta)
	want := []string{
		"eta", "pH",
		"k1", "k-1", "k2", "k-2", "k3", "k-3", "k4", "k-4",
		"ka1", "k-a1", "kb1", "k-b1", "ka2", "k-a2", "kb2", "k-b2",
		"ka3", "k-a3", "kb3", "k-b3", "ka4", "k-a4", "kb4", "k-b4",
		"r1", "r2", "r3", "r4",
		"lg(r1)", "lg(r2)", "lg(r3)", "lg(r4)",
		"theta*", "theta*OH", "theta*O", "theta*OOH",
	}
	assert.Equal(t, want, cols)
}

func TestColumns_LH(t *testing.T) {
	cols := sweep.Columns(mustNet(t, builder.NameLH), sweep.PH)
	assert.Equal(t, []string{"pH", "eta"}, cols[:2])
	assert.Contains(t, cols, "k5")
	assert.Contains(t, cols, "k-5")
	assert.NotContains(t, cols, "ka5")
	for _, c := range []string{"r21", "r22", "r2", "r3", "lg(r5)", "lg(r2)", "lg(r3)", "theta*O(O)"} {
		assert.Contains(t, cols, c)
	}

	// every column name appears once
	seen := map[string]bool{}
	for _, c := range cols {
		assert.False(t, seen[c], c)
		seen[c] = true
	}
}

func TestTable_RowsMatchColumns(t *testing.T) {
	e, err := sweep.New(erExample(t))
	require.NoError(t, err)
	res, err := e.Run1D(context.Background())
	require.NoError(t, err)

	tab := res.Table()
	idx := map[string]int{}
	for i, c := range tab.Columns {
		idx[c] = i
	}
	for i, row := range tab.Rows {
		require.Len(t, row, len(tab.Columns))
		p := res.Points[i]
		assert.Equal(t, p.Eta, row[idx["eta"]])
		assert.Equal(t, p.Rates["4"].Backward, row[idx["k-4"]])
		assert.Equal(t, p.Elementary["2"].Kb, row[idx["kb2"]])
		assert.Equal(t, p.Fluxes.Ref(), row[idx["r4"]])
		assert.Equal(t, p.LgRef, row[idx["lg(r4)"]])
		assert.Equal(t, p.Coverage.Theta[3], row[idx["theta*OOH"]])
		assert.Empty(t, tab.Errors[i])
	}
}

func TestFloatJSON(t *testing.T) {
	in := sweep.Floats([]float64{1.5, math.NaN(), math.Inf(1), math.Inf(-1), 0})
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5,"NaN","+Inf","-Inf",0]`, string(b))

	var out []sweep.Float
	require.NoError(t, json.Unmarshal(b, &out))
	got := sweep.Unfloat(out)
	assert.Equal(t, 1.5, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.True(t, math.IsInf(got[2], 1))
	assert.True(t, math.IsInf(got[3], -1))

	var f sweep.Float
	require.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "iterating", sweep.Iterating.String())
	assert.Equal(t, "eta", sweep.Eta.String())
}
