package batch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichalRedm/evolutionary-computation/batch"
	"github.com/MichalRedm/evolutionary-computation/config"
	"github.com/MichalRedm/evolutionary-computation/nodeset"
	"github.com/MichalRedm/evolutionary-computation/tour"
)

// fixture writes two small instances and returns a config pointing at them.
func fixture(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()

	a := filepath.Join(dir, "TSPA.csv")
	require.NoError(t, os.WriteFile(a, []byte("0;0;1\n3;0;2\n3;4;3\n9;9;4\n"), 0o644))
	b := filepath.Join(dir, "TSPB.csv")
	require.NoError(t, os.WriteFile(b, []byte("0;0;5\n0;10;5\n"), 0o644))

	cfg := config.Default()
	cfg.Instances = map[string]string{"TSPA": a, "TSPB": b}
	cfg.Figure.WidthIn, cfg.Figure.HeightIn = 3, 3
	return cfg, dir
}

func writeResults(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "Greedy_2-regret_TSPA.png", batch.OutputName("Greedy 2-regret", "TSPA"))
	assert.Equal(t, "Random_TSPB.png", batch.OutputName("Random", "TSPB"))
}

func TestRun(t *testing.T) {
	cfg, dir := fixture(t)
	input := writeResults(t, dir, `{
		"TSPB": {"Random": {"best_solution": [1, 0]}},
		"TSPA": {"Greedy 2-regret": {"best_solution": [2, 0, 1], "min_value": 18}}
	}`)
	outDir := filepath.Join(dir, "plots", "nested")

	logger, hook := test.NewNullLogger()
	var progress bytes.Buffer
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&progress))
	require.NoError(t, err)

	sum, err := r.Run(input, outDir)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Rendered)

	wantA := filepath.Join(outDir, "Greedy_2-regret_TSPA.png")
	wantB := filepath.Join(outDir, "Random_TSPB.png")
	assert.Equal(t, []string{wantA, wantB}, sum.Outputs)
	assert.FileExists(t, wantA)
	assert.FileExists(t, wantB)

	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	assert.Equal(t, []string{
		"Generated plot for Greedy 2-regret on TSPA at " + wantA,
		"Generated plot for Random on TSPB at " + wantB,
	}, lines)

	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, e.Level, e.Message)
	}
}

func TestRun_EmptyResults(t *testing.T) {
	cfg, dir := fixture(t)
	input := writeResults(t, dir, `{}`)
	outDir := filepath.Join(dir, "out")

	logger, _ := test.NewNullLogger()
	var progress bytes.Buffer
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&progress))
	require.NoError(t, err)

	sum, err := r.Run(input, outDir)
	require.NoError(t, err)
	assert.Zero(t, sum.Rendered)
	assert.DirExists(t, outDir)
	assert.Empty(t, progress.String())
}

func TestRun_ObjectiveMismatchWarns(t *testing.T) {
	cfg, dir := fixture(t)
	input := writeResults(t, dir, `{"TSPA": {"Greedy": {"best_solution": "012", "min_value": 17}}}`)

	logger, hook := test.NewNullLogger()
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = r.Run(input, filepath.Join(dir, "out"))
	require.NoError(t, err, "a mismatch is reported, not fatal")

	var warned *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = e
		}
	}
	require.NotNil(t, warned)
	assert.Equal(t, 18.0, warned.Data["objective"])
	assert.Equal(t, "TSPA", warned.Data["instance"])
}

func TestRun_RepeatedNodesRenderAndWarn(t *testing.T) {
	cfg, dir := fixture(t)
	input := writeResults(t, dir, `{"TSPA": {"Greedy": {"best_solution": "1121", "min_value": 5}}}`)
	outDir := filepath.Join(dir, "out")

	logger, hook := test.NewNullLogger()
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	sum, err := r.Run(input, outDir)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Rendered)
	assert.FileExists(t, filepath.Join(outDir, "Greedy_TSPA.png"))

	var warned *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = e
		}
	}
	require.NotNil(t, warned)
	assert.Equal(t, "Solution visits a node more than once", warned.Message)
	assert.ErrorIs(t, warned.Data[logrus.ErrorKey].(error), tour.ErrDuplicateNode)
}

func TestRun_DecodeErrorStops(t *testing.T) {
	cfg, dir := fixture(t)
	input := writeResults(t, dir, `{
		"TSPA": {"A": {"best_solution": "1a2"}, "B": {"best_solution": [0, 1]}}
	}`)
	outDir := filepath.Join(dir, "out")

	logger, _ := test.NewNullLogger()
	var progress bytes.Buffer
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&progress))
	require.NoError(t, err)

	sum, err := r.Run(input, outDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, tour.ErrDecode)
	assert.Contains(t, err.Error(), "A on TSPA")
	assert.Zero(t, sum.Rendered)
	assert.NoFileExists(t, filepath.Join(outDir, "A_TSPA.png"))
	assert.NoFileExists(t, filepath.Join(outDir, "B_TSPA.png"), "entries after a failure are not processed")
	assert.Empty(t, progress.String())
}

func TestRun_UnknownInstance(t *testing.T) {
	cfg, dir := fixture(t)
	input := writeResults(t, dir, `{"TSPX": {"Greedy": {"best_solution": [0]}}}`)

	logger, _ := test.NewNullLogger()
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = r.Run(input, filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, batch.ErrUnknownInstance)
}

func TestRun_MissingNodeData(t *testing.T) {
	cfg, dir := fixture(t)
	cfg.Instances["TSPA"] = filepath.Join(dir, "absent.csv")
	input := writeResults(t, dir, `{"TSPA": {"Greedy": {"best_solution": [0]}}}`)

	logger, _ := test.NewNullLogger()
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = r.Run(input, filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("0;0\n"), 0o644))
	cfg.Instances["TSPA"] = bad
	_, err = r.Run(input, filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, nodeset.ErrInputFormat)
}

func TestRun_BadInput(t *testing.T) {
	cfg, dir := fixture(t)
	logger, _ := test.NewNullLogger()
	r, err := batch.NewRunner(cfg, batch.WithLogger(logger), batch.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = r.Run(filepath.Join(dir, "missing.json"), filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewRunner(t *testing.T) {
	_, err := batch.NewRunner(nil)
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg := config.Default()
	cfg.Figure.CostDivisor = -1
	_, err = batch.NewRunner(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)

	assert.Panics(t, func() { batch.WithLogger(nil) })
	assert.Panics(t, func() { batch.WithOutput(nil) })
	assert.Panics(t, func() { batch.WithRenderer(nil) })
}

func TestHostInfo_RAM(t *testing.T) {
	assert.Equal(t, "16 GB", batch.HostInfo{RAMBytes: 16 << 30}.RAM())
	assert.Equal(t, "0 GB", batch.HostInfo{}.RAM())
}
