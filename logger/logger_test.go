package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/krisalay/objstats/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("loud"))
}

func TestJSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("warn", "json", &buf)

	log.Info("hidden")
	log.Warn("shown", "key", 5)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":5`)
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.log")

	log, closeFn, err := logger.New("info", "text", path)
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, closeFn())

	assert.FileExists(t, path)
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("dropped")
}
