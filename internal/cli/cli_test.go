package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aomkin/store"
)

const smallRun = `
sweep:
  eta: {start: -1, end: 1, step: 0.5}
  ph: {start: 0, end: 14, step: 7}
log:
  level: error
`

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeRunFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestCommandPresence(t *testing.T) {
	root := NewRootCommand()
	for _, path := range [][]string{
		{"sweep"}, {"scan"}, {"config", "init"}, {"config", "validate"}, {"runs", "list"}, {"runs", "show"},
	} {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			sub, _, err := root.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], sub.Name())
		})
	}
	assert.Equal(t, "c", root.PersistentFlags().Lookup("config").Shorthand)
}

func TestConfigInitAndValidate(t *testing.T) {
	out, _, err := execute(t, "config", "init", "--network", "LH", "--softplus")
	require.NoError(t, err)
	assert.Contains(t, out, "network: LH")
	assert.Contains(t, out, "barrier: softplus")

	p := filepath.Join(t.TempDir(), "aomkin.yaml")
	_, _, err = execute(t, "config", "init", p)
	require.NoError(t, err)
	_, _, err = execute(t, "config", "init", p)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))

	out, _, err = execute(t, "config", "validate", p)
	require.NoError(t, err)
	assert.Equal(t, "ok: ER, bv-bep, mode eta\n", out)

	bad := writeRunFile(t, "conditions:\n  temperature: -5\n")
	_, _, err = execute(t, "config", "validate", bad)
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestSweep_Stdout(t *testing.T) {
	out, _, err := execute(t, "sweep", "-c", writeRunFile(t, smallRun))
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 6)
	assert.True(t, strings.HasPrefix(ls[0], "Run,Model,Kinetics,T,eta,pH,k1,k-1,"), ls[0])
	assert.True(t, strings.HasSuffix(ls[0], ",theta*OOH,error"), ls[0])
	assert.Contains(t, ls[1], ",ER,bv-bep,298.15,-1,0,")
}

func TestSweep_PHModeJSONL(t *testing.T) {
	out, _, err := execute(t, "sweep", "-c", writeRunFile(t, smallRun),
		"--mode", "ph", "--fixed", "0.3", "--format", "jsonl", "--network", "LH", "--workers", "2")
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 3)
	assert.Contains(t, ls[0], `"Model":"LH"`)
	assert.Contains(t, ls[0], `"pH":0,"eta":0.3,`)
	assert.Contains(t, ls[2], `"pH":14,`)
}

func TestSweep_StoreMetricsAndRuns(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	prom := filepath.Join(dir, "aomkin.prom")
	table := filepath.Join(dir, "er.csv")

	_, errOut, err := execute(t, "sweep", "-c", writeRunFile(t, smallRun),
		"--store", db, "--metrics", prom, "-o", table)
	require.NoError(t, err)
	assert.Contains(t, errOut, "5 points, 0 invalid")

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `aomkin_points_total{outcome="valid"} 5`)

	s, err := store.Open(db)
	require.NoError(t, err)
	runs, err := s.Runs(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.Len(t, runs, 1)
	assert.Equal(t, "1d-eta", runs[0].Mode)

	out, _, err := execute(t, "runs", "list", "--store", db)
	require.NoError(t, err)
	require.Len(t, lines(out), 2)
	assert.Contains(t, out, runs[0].ID)

	out, _, err = execute(t, "runs", "show", runs[0].ID, "--store", db)
	require.NoError(t, err)
	want, err := os.ReadFile(table)
	require.NoError(t, err)
	assert.Equal(t, string(want), out)

	_, _, err = execute(t, "runs", "show", "nope", "--store", db)
	require.ErrorIs(t, err, store.ErrRunNotFound)
	assert.Equal(t, ExitFailure, ExitCode(err))

	_, _, err = execute(t, "runs", "list")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	matrix := filepath.Join(dir, "theta.csv")
	table := filepath.Join(dir, "grid.tsv")
	body := smallRun + "output:\n  format: tsv\n"

	_, _, err := execute(t, "scan", "-c", writeRunFile(t, body), "--field", "theta", "-o", matrix, "--table", table)
	require.NoError(t, err)

	raw, err := os.ReadFile(matrix)
	require.NoError(t, err)
	ls := lines(string(raw))
	require.Len(t, ls, 4)
	assert.Equal(t, "pH/eta,-1,-0.5,0,0.5,1", ls[0])
	assert.True(t, strings.HasPrefix(ls[3], "14,"))

	raw, err = os.ReadFile(table)
	require.NoError(t, err)
	assert.Len(t, lines(string(raw)), 1+15)

	_, _, err = execute(t, "scan", "-c", writeRunFile(t, smallRun), "--field", "r4")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))

	_, _, err := execute(t, "sweep", "--no-such-flag")
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, _, err = execute(t, "sweep", "-c", writeRunFile(t, smallRun), "--law", "eyring")
	assert.Equal(t, ExitUsage, ExitCode(err))

	// passes struct validation, rejected by the engine: Marcus needs λ > 0
	noLambda := smallRun + "model:\n  law: marcus\nsteps:\n  \"3\": {lambda: 0}\n"
	_, _, err = execute(t, "sweep", "-c", writeRunFile(t, noLambda))
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, _, err = execute(t, "sweep", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = NewLogger(&buf, "loud", "text")
	require.Error(t, err)
	_, err = NewLogger(&buf, "info", "xml")
	require.Error(t, err)
}
