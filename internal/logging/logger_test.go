package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	require.NoError(t, InitLogger(path, "debug"))
	t.Cleanup(Close)

	assert.Equal(t, path, Path())
	LogAppStart("test", "purego")
	LogHistory("write_history", "/tmp/h", 3, nil)
	LogError("boom", errors.New("failure"))
	require.NoError(t, Logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Logger initialized")
	assert.Contains(t, string(data), "App Started")
	assert.Contains(t, string(data), `"entries":3`)
	assert.Contains(t, string(data), "failure")
}

func TestInitLoggerBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, InitLogger(path, "loud"))
	t.Cleanup(Close)

	Logger.Debug("hidden")
	Logger.Info("shown")
	require.NoError(t, Logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestCloseResetsToNop(t *testing.T) {
	require.NoError(t, InitLogger(filepath.Join(t.TempDir(), "x.log"), "info"))
	Close()
	assert.Empty(t, Path())
	assert.NotPanics(t, func() { LogAppExit() })
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := expandPath("~/logs/a.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "a.log"), got)
}
