package machine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSystemInfo(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	t.Setenv("TERM", "xterm-256color")

	ctx := NewContext("8.2")
	info := ctx.GetSystemInfo()

	assert.Equal(t, runtime.GOOS, info["os"])
	assert.Equal(t, runtime.GOARCH, info["arch"])
	assert.Equal(t, "/bin/zsh", info["shell"])
	assert.Equal(t, "xterm-256color", info["term"])
	assert.Equal(t, "8.2", info["library"])
	assert.NotEmpty(t, info["num_cpu"])
	assert.Contains(t, []string{"true", "false"}, info["interactive"])
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
