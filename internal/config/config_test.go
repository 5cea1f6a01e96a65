package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gnureadline", cfg.Readline.Name)
	assert.Equal(t, " \t\n\"\\'`@$><=;|&{(", cfg.Readline.WordBreakCharacters)
	assert.True(t, cfg.Readline.CompletionOver)
	assert.Equal(t, []string{"s", "zz"}, cfg.Completion.Suffixes)
	assert.Equal(t, 1000, cfg.History.MaxEntries)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := []byte(`
readline:
  name: demo
  prompt: "$ "
history:
  max_entries: 10
completion:
  fuzzy: true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Readline.Name)
	assert.Equal(t, "$ ", cfg.Readline.Prompt)
	assert.Equal(t, 10, cfg.History.MaxEntries)
	assert.True(t, cfg.Completion.Fuzzy)
	// fields missing from the file keep their defaults
	assert.Equal(t, "/usr/share/dict/words", cfg.Completion.Dictionary)
	assert.Equal(t, "~/.gnureadline_history", cfg.History.File)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("readline: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config file")
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestHistoryFileEnv(t *testing.T) {
	t.Setenv(HistoryFileEnv, "/tmp/custom_history")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("history:\n  file: /tmp/from_file\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom_history", cfg.History.File)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := DefaultConfig()
	cfg.Readline.Prompt = "rl> "
	cfg.Completion.Suffixes = []string{"ing"}

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.history")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".history"), got)

	got, err = ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)

	got, err = ExpandPath("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
