package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/krisalay/objstats/config"
	"github.com/krisalay/objstats/emit"
	"github.com/krisalay/objstats/eviction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, eviction.LRU, cfg.Cache.Policy)
	assert.Equal(t, 1024.0, cfg.Cache.Capacity)
	assert.Equal(t, emit.Through, cfg.Output.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Store.Strict)
	assert.Empty(t, cfg.Replay.Traces)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
store:
  strict: true
  allowed_types: [0, 1, 2]
cache:
  capacity: 500
  policy: LFU
replay:
  traces: [a.csv, b.csv]
  workers: 2
output:
  dir: /tmp/out
  mode: back
  buffer: 64
log:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Store.Strict)
	assert.Equal(t, []int{0, 1, 2}, cfg.Store.AllowedTypes)
	assert.Equal(t, 500.0, cfg.Cache.Capacity)
	assert.Equal(t, eviction.LFU, cfg.Cache.Policy)
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Replay.Traces)
	assert.Equal(t, 2, cfg.Replay.Workers)
	assert.Equal(t, emit.Back, cfg.Output.Mode)
	assert.Equal(t, 64, cfg.Output.Buffer)
	assert.Equal(t, "json", cfg.Log.Format)

	// untouched keys keep their defaults
	assert.Equal(t, int64(100_000), cfg.Replay.Synthetic.Requests)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("OBJSTATS_LOG_LEVEL", "warn")

	cfg, err := config.Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero capacity", "cache:\n  capacity: 0\n", "cache.capacity"},
		{"bad policy", "cache:\n  policy: ARC\n", "cache.policy"},
		{"bad mode", "output:\n  mode: sideways\n", "output.mode"},
		{"negative workers", "replay:\n  workers: -1\n", "replay.workers"},
		{"nothing to replay", "replay:\n  synthetic:\n    requests: 0\n", "synthetic.requests"},
		{"write-back without buffer", "output:\n  mode: back\n  buffer: 0\n", "output.buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")

	_, err = config.Load(writeConfig(t, "cache: [not, a, map]\n"))
	assert.ErrorContains(t, err, "parse config")
}
