package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichalRedm/evolutionary-computation/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"TSPA", "TSPB"}, cfg.InstanceNames())
	assert.Equal(t, "../data/TSPA.csv", cfg.Instances["TSPA"])
	assert.Equal(t, 8.0, cfg.Figure.WidthIn)
	assert.Equal(t, 8.0, cfg.Figure.HeightIn)
	assert.Equal(t, 4.0, cfg.Figure.CostDivisor)
	assert.True(t, cfg.Figure.ShowLegend())
	assert.False(t, cfg.Figure.Title)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
log_file = "logs/tspviz.log"

[instances]
TSPC = "data/TSPC.csv"

[figure]
width_in = 6
cost_divisor = 2
legend = false
title = true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "logs/tspviz.log", cfg.LogFile)
	assert.Equal(t, map[string]string{"TSPC": "data/TSPC.csv"}, cfg.Instances)
	assert.Equal(t, 6.0, cfg.Figure.WidthIn)
	assert.Equal(t, 8.0, cfg.Figure.HeightIn, "unset fields keep defaults")
	assert.Equal(t, 2.0, cfg.Figure.CostDivisor)
	assert.False(t, cfg.Figure.ShowLegend())
	assert.True(t, cfg.Figure.Title)
}

func TestLoad_DefaultInstances(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `log_level = "warn"`))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Instances, cfg.Instances)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeConfig(t, "[figure]\ncost_divisor = -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeConfig(t, "[figure]\nheight_in = -2\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeConfig(t, "[instances]\nTSPA = \"\"\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeConfig(t, "log_level = \n"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, fromFile, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Equal(t, config.Default(), cfg)

	cfg, fromFile, err = config.LoadOrDefault(writeConfig(t, `log_level = "error"`))
	require.NoError(t, err)
	assert.True(t, fromFile)
	assert.Equal(t, "error", cfg.LogLevel)

	_, _, err = config.LoadOrDefault(writeConfig(t, "[figure]\nwidth_in = 0.0\ncost_divisor = -3\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate_NoInstances(t *testing.T) {
	cfg := config.Default()
	cfg.Instances = nil
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
