package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hashi.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, runtime.NumCPU(), c.Solver.Workers)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
logfile = "/tmp/hashi.log"
max_log_size = 5

[solver]
max_passes = 40
workers = 2

[metrics]
textfile = "/tmp/hashi.prom"
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "/tmp/hashi.log", c.Log.Logfile)
	assert.Equal(t, 5, c.Log.MaxSize)
	assert.Equal(t, 7, c.Log.MaxAge, "unset keys keep their default")
	assert.Equal(t, 40, c.Solver.MaxPasses)
	assert.Equal(t, 2, c.Solver.Workers)
	assert.Equal(t, "/tmp/hashi.prom", c.Metrics.Textfile)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":   "[log\n",
		"unknown":  "[solver]\nthreads = 3\n",
		"negative": "[solver]\nmax_passes = -1\n",
		"workers":  "[solver]\nworkers = 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, body)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
