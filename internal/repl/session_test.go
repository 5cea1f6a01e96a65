package repl

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warm3snow/gnureadline/internal/config"
	"github.com/warm3snow/gnureadline/internal/ui"
	"github.com/warm3snow/gnureadline/pkg/readline"
)

type fakeBackend struct {
	input   []string
	history []string

	name       string
	wordBreaks string
	over       bool
	completer  readline.Completer
	initFile   string
	bindings   []string
	stifled    int
	readPath   string
	readErr    error
	bindErr    error
	appended   int
	appendPath string
	appendErr  error
	truncated  int
	prompts    []string
	setCalls   int
}

func (f *fakeBackend) Readline(prompt string) (string, bool) {
	f.prompts = append(f.prompts, prompt)
	if len(f.input) == 0 {
		return "", false
	}
	line := f.input[0]
	f.input = f.input[1:]
	return line, true
}

func (f *fakeBackend) AddHistory(line string) bool {
	if line == "" || (len(f.history) > 0 && f.history[len(f.history)-1] == line) {
		return false
	}
	f.history = append(f.history, line)
	return true
}

func (f *fakeBackend) HistoryList() []string { return f.history }

func (f *fakeBackend) SetName(name string)                  { f.name = name }
func (f *fakeBackend) SetWordBreakCharacters(chars string)  { f.wordBreaks = chars }
func (f *fakeBackend) SetAttemptedCompletionOver(over bool) { f.over = over }
func (f *fakeBackend) StifleHistory(limit int)              { f.stifled = limit }

func (f *fakeBackend) SetCompleter(c readline.Completer) {
	f.setCalls++
	f.completer = c
}

func (f *fakeBackend) ReadInitFile(path string) error {
	f.initFile = path
	return nil
}

func (f *fakeBackend) ParseAndBind(line string) error {
	if f.bindErr != nil {
		return f.bindErr
	}
	f.bindings = append(f.bindings, line)
	return nil
}

func (f *fakeBackend) ReadHistory(path string) error {
	f.readPath = path
	return f.readErr
}

func (f *fakeBackend) AppendHistory(n int, path string) error {
	f.appended = n
	f.appendPath = path
	return f.appendErr
}

func (f *fakeBackend) TruncateHistoryFile(path string, n int) error {
	f.truncated = n
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.History.File = filepath.Join(t.TempDir(), "history")
	cfg.History.MaxEntries = 50
	cfg.History.FileLines = 20
	return cfg
}

func newTestSession(t *testing.T, cfg *config.Config, backend *fakeBackend) (*Session, *bytes.Buffer) {
	t.Helper()
	ui.SetColorEnabled(false)
	var out bytes.Buffer
	completer := func(text string, _, _ int) []string { return []string{text + "s"} }
	return NewSession(cfg, backend, completer, &out), &out
}

func TestSessionEchoesAndRecords(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{
		input:   []string{"hello", "hello", "world"},
		readErr: &readline.Error{Op: "read_history", Err: syscall.ENOENT},
	}
	s, out := newTestSession(t, cfg, backend)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, "hello\nhello\nworld\n\n", out.String())
	assert.Equal(t, []string{"hello", "world"}, backend.history)
	assert.Equal(t, 2, backend.appended)
	assert.Equal(t, cfg.History.File, backend.appendPath)
	assert.Equal(t, 20, backend.truncated)
	assert.Equal(t, []string{"> ", "> ", "> ", "> "}, backend.prompts)
}

func TestSessionAppliesConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Readline.Name = "demo"
	cfg.Readline.WordBreakCharacters = " "
	cfg.Readline.InitFile = "/etc/demo.inputrc"
	cfg.Readline.Bindings = []string{"set editing-mode vi", "TAB: complete"}
	backend := &fakeBackend{}
	s, _ := newTestSession(t, cfg, backend)

	require.NoError(t, s.Setup())

	assert.Equal(t, "demo", backend.name)
	assert.Equal(t, " ", backend.wordBreaks)
	assert.True(t, backend.over)
	assert.Equal(t, "/etc/demo.inputrc", backend.initFile)
	assert.Equal(t, cfg.Readline.Bindings, backend.bindings)
	assert.Equal(t, 50, backend.stifled)
	assert.Equal(t, cfg.History.File, backend.readPath)
	require.NotNil(t, backend.completer)
	assert.Equal(t, []string{"cats"}, backend.completer("cat", 0, 3))
}

func TestSessionBadBinding(t *testing.T) {
	cfg := testConfig(t)
	cfg.Readline.Bindings = []string{"nonsense"}
	backend := &fakeBackend{bindErr: &readline.Error{Op: "rl_parse_and_bind", Err: syscall.EINVAL}}
	s, _ := newTestSession(t, cfg, backend)

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EINVAL)
	assert.Contains(t, err.Error(), `"nonsense"`)
}

func TestSessionHistoryReadFailure(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{readErr: &readline.Error{Op: "read_history", Err: syscall.EACCES}}
	s, _ := newTestSession(t, cfg, backend)

	err := s.Setup()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestSessionExitCommand(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{input: []string{"one", "exit", "never"}}
	s, out := newTestSession(t, cfg, backend)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, "one\nGoodbye!\n", out.String())
	assert.Equal(t, []string{"never"}, backend.input)
	assert.Equal(t, 2, backend.appended)
}

func TestSessionSpecialCommands(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{input: []string{"first", "/history", "/help"}}
	s, out := newTestSession(t, cfg, backend)

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "    1  first\n")
	assert.Contains(t, out.String(), "    2  /history\n")
	assert.Contains(t, out.String(), "Available commands:")
}

func TestSessionCancelled(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{input: []string{"ignored"}}
	s, _ := newTestSession(t, cfg, backend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, backend.prompts)
	assert.Zero(t, backend.appended)
}

func TestSessionCloseWithoutHistoryFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.History.File = ""
	backend := &fakeBackend{input: []string{"line"}}
	s, _ := newTestSession(t, cfg, backend)

	require.NoError(t, s.Run(context.Background()))
	assert.Empty(t, backend.readPath)
	assert.Zero(t, backend.appended)
	assert.Equal(t, 1, s.Added())
}

func TestSessionAppendFailure(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{input: []string{"line"}, appendErr: errors.New("disk full")}
	s, _ := newTestSession(t, cfg, backend)

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Zero(t, backend.truncated)
}

func TestSessionUninstallsCompleter(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{}
	s, _ := newTestSession(t, cfg, backend)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 2, backend.setCalls)
	assert.Nil(t, backend.completer)
}

func TestSessionHandlesEveryCommand(t *testing.T) {
	cfg := testConfig(t)
	for _, command := range Commands {
		backend := &fakeBackend{}
		s, out := newTestSession(t, cfg, backend)
		assert.True(t, s.handleSpecialCommands(command), command)
		assert.NotEqual(t, command+"\n", out.String(), "%s is echoed", command)
	}
}
