package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aomkin/builder"
	"github.com/katalvlaran/aomkin/export"
	"github.com/katalvlaran/aomkin/grid"
	"github.com/katalvlaran/aomkin/kinetics"
	"github.com/katalvlaran/aomkin/sweep"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
}

func sample() sweep.Table {
	return sweep.Table{
		RunID:   "r1",
		Meta:    sweep.Meta{Model: "ER", Kinetics: "bv-bep", T: 298.15},
		Columns: []string{"eta", "pH", "r4", "lg(r4)"},
		Rows: [][]float64{
			{-1, 0, 2.5, 0.25},
			{0, 0, math.NaN(), math.NaN()},
		},
		Errors: []string{"", "coverage: degenerate rates"},
	}
}

func write(t *testing.T, format string, tab sweep.Table) []byte {
	t.Helper()
	w, err := export.Lookup(format)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, w.WriteTable(&buf, tab))
	return buf.Bytes()
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"csv", "jsonl", "tsv"}, export.Formats())
	for _, f := range []string{"csv", "TSV", " jsonl "} {
		w, err := export.Lookup(f)
		require.NoError(t, err, f)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(f)), w.Extension())
	}
	_, err := export.Lookup("xlsx")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestHeaders_Golden(t *testing.T) {
	er, err := builder.ByName(builder.NameER)
	require.NoError(t, err)
	lh, err := builder.ByName(builder.NameLH)
	require.NoError(t, err)

	g := newGoldie(t)
	g.Assert(t, "er_eta.csv", write(t, "csv", sweep.Table{Columns: sweep.Columns(er, sweep.Eta)}))
	g.Assert(t, "lh_ph.tsv", write(t, "tsv", sweep.Table{Columns: sweep.Columns(lh, sweep.PH)}))
}

func TestRows_Golden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "sample.csv", write(t, "csv", sample()))
	g.Assert(t, "sample.jsonl", write(t, "jsonl", sample()))
}

func TestJSONL_Decodes(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(string(write(t, "jsonl", sample()))), "\n")
	require.Len(t, lines, 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "ER", rec["Model"])
	assert.Equal(t, 2.5, rec["r4"])
	assert.Equal(t, "", rec["error"])
}

func TestWriteTable_RaggedRow(t *testing.T) {
	tab := sample()
	tab.Rows[1] = tab.Rows[1][:2]
	for _, f := range export.Formats() {
		w, err := export.Lookup(f)
		require.NoError(t, err)
		require.Error(t, w.WriteTable(&bytes.Buffer{}, tab), f)
	}
}

func TestWriteMatrix_Golden(t *testing.T) {
	ph, err := grid.NewAxis(0, 2, 1)
	require.NoError(t, err)
	eta, err := grid.NewAxis(-0.5, 0.5, 0.5)
	require.NoError(t, err)
	gr, err := grid.New(ph, eta)
	require.NoError(t, err)

	m := [][]float64{
		{1, 2, 3},
		{4.5, math.NaN(), math.Inf(-1)},
		{0.25, 1e-10, 7},
	}
	var buf bytes.Buffer
	require.NoError(t, export.WriteMatrix(&buf, gr, m))
	newGoldie(t).Assert(t, "matrix.csv", buf.Bytes())

	require.Error(t, export.WriteMatrix(&bytes.Buffer{}, gr, m[:2]))
	require.Error(t, export.WriteMatrix(&bytes.Buffer{}, gr, [][]float64{{1}, {2}, {3}}))
}

func TestMatrix_FromRun(t *testing.T) {
	n, err := builder.ByName(builder.NameER)
	require.NoError(t, err)
	cfg := sweep.Config{
		Network: n,
		T:       298.15,
		DeltaGw: 0.8277,
		Ea0:     0.5,
		Steps:   map[string]kinetics.Step{},
		Eta:     sweep.Range{Start: -0.5, End: 0.5, Step: 0.5},
		PH:      sweep.Range{Start: 0, End: 14, Step: 7},
	}
	for _, id := range n.StepIDs() {
		cfg.Steps[id] = kinetics.Step{DeltaG: 0.1, Z: 1, Gamma: 0.5, Beta: 0.5, Lambda: 1}
	}
	e, err := sweep.New(cfg)
	require.NoError(t, err)
	res, err := e.Run2D(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.Matrix(&buf, res, "theta"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "pH/eta,-0.5,0,0.5", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "7,"))

	require.ErrorIs(t, export.Matrix(&buf, res, "r9"), export.ErrUnknownField)
}
