package stlconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/stlconfig"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "monitor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
signals: [x, y]
formula: "ev_[0,bound] x > 0 and y < 5"
horizon: [0, 100]
parameters:
  bound: 10
trace: trace.csv
`)
	cfg, err := stlconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y", cfg.SignalNames())
	assert.Equal(t, [2]float64{0, 100}, cfg.Horizon())
	assert.Equal(t, 10.0, cfg.Parameters["bound"])
}

func TestLoad_MissingFormulaIsInvalid(t *testing.T) {
	path := writeConfig(t, `
signals: [x]
horizon: [0, 10]
trace: trace.csv
`)
	_, err := stlconfig.Load(path)
	require.ErrorIs(t, err, stlconfig.ErrInvalidConfig)
}

func TestLoad_BadHorizonIsInvalid(t *testing.T) {
	path := writeConfig(t, `
signals: [x]
formula: "x > 0"
horizon: [10, 0]
trace: trace.csv
`)
	_, err := stlconfig.Load(path)
	require.ErrorIs(t, err, stlconfig.ErrInvalidConfig)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := stlconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
