//go:build !cgo || purego

package readline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPureGoVersion(t *testing.T) {
	assert.Equal(t, pureGoVersion, LibraryVersion())
	assert.Equal(t, 0, ReadlineVersion())
}

func TestCompletionBridge(t *testing.T) {
	t.Cleanup(func() { SetCompleter(nil) })

	var gotStart, gotEnd int
	SetCompleter(func(text string, start, end int) []string {
		gotStart, gotEnd = start, end
		return []string{text + "s", text + "zz"}
	})

	line := []rune("say app")
	newLine, length := completionBridge{}.Do(line, len(line))
	assert.Equal(t, 3, length)
	assert.Equal(t, [][]rune{[]rune("s"), []rune("zz")}, newLine)
	assert.Equal(t, 4, gotStart)
	assert.Equal(t, 7, gotEnd)
	assert.Equal(t, "say app", LineBuffer())
	assert.Equal(t, 7, Point())
}

func TestCompletionBridgeWithoutCompleter(t *testing.T) {
	SetCompleter(nil)
	newLine, length := completionBridge{}.Do([]rune("abc"), 3)
	assert.Nil(t, newLine)
	assert.Zero(t, length)
}

func TestSuffixesDropsNonExtending(t *testing.T) {
	got := suffixes("ap", matchList([]string{"apple", "grape", "apricot"}))
	assert.Equal(t, [][]rune{[]rune("ple"), []rune("ricot")}, got)
	assert.Nil(t, suffixes("x", nil))
}

func TestParseAndBindVariables(t *testing.T) {
	t.Cleanup(func() { variables["editing-mode"] = "emacs" })

	require.NoError(t, ParseAndBind("set editing-mode vi"))
	assert.Equal(t, "vi", variable("editing-mode"))
	require.NoError(t, ParseAndBind(`"\C-x:": complete`))
	assert.Equal(t, "complete", bindings[`"\C-x:"`])
	assert.Error(t, ParseAndBind("set"))
	assert.Error(t, ParseAndBind("no binding here"))
	assert.NoError(t, ParseAndBind("# comment"))
}

func TestReadInitFileConditionals(t *testing.T) {
	prevName := Name()
	t.Cleanup(func() {
		SetName(prevName)
		delete(variables, "bell-style")
		delete(variables, "show-all-if-ambiguous")
		delete(variables, "colored-stats")
	})
	SetName("gotest")

	dir := t.TempDir()
	included := filepath.Join(dir, "included")
	require.NoError(t, os.WriteFile(included, []byte("set colored-stats on\n"), 0o644))
	rc := "$if gotest\n" +
		"set bell-style none\n" +
		"$else\n" +
		"set bell-style audible\n" +
		"$endif\n" +
		"$if other-app\n" +
		"set show-all-if-ambiguous on\n" +
		"$endif\n" +
		"$include " + included + "\n"
	path := filepath.Join(dir, "inputrc")
	require.NoError(t, os.WriteFile(path, []byte(rc), 0o644))

	require.NoError(t, ReadInitFile(path))
	assert.Equal(t, "none", variable("bell-style"))
	assert.Equal(t, "", variable("show-all-if-ambiguous"))
	assert.Equal(t, "on", variable("colored-stats"))
}

func TestReadHistorySkipsTimestamps(t *testing.T) {
	resetHistory(t)
	path := filepath.Join(t.TempDir(), "stamped")
	require.NoError(t, os.WriteFile(path, []byte("#1700000000\nls\n#1700000001\npwd\n#not-a-stamp\n"), 0o600))

	require.NoError(t, ReadHistory(path))
	assert.Equal(t, []string{"ls", "pwd", "#not-a-stamp"}, HistoryList())
}
