//go:build !cgo || purego

package readline

import (
	"errors"
	"strings"
	"sync"

	chzyer "github.com/chzyer/readline"
	"github.com/warm3snow/gnureadline/internal/compentry"
	"go.uber.org/zap"
)

// purego reports itself under this version string.
const pureGoVersion = "purego (github.com/chzyer/readline)"

// goAllocator hands out Go strings; the garbage collector owns them.
type goAllocator struct{}

func (goAllocator) Dup(text string) string { return text }

func (goAllocator) Free(string) {}

var (
	entries   = compentry.NewProducer[string](goAllocator{})
	completer Completer

	completionOver bool

	name       = "other"
	wordBreaks = DefaultWordBreakCharacters

	// state of the line at the last completion request
	lineBuffer string
	point      int

	editorMu sync.Mutex
	editor   *chzyer.Instance

	promptMarkers = strings.NewReplacer("\001", "", "\002", "")
)

// instance returns the line editor, creating it on first use.
func instance() (*chzyer.Instance, error) {
	editorMu.Lock()
	defer editorMu.Unlock()
	if editor != nil {
		return editor, nil
	}
	rl, err := chzyer.NewEx(&chzyer.Config{
		AutoComplete:           completionBridge{},
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		VimMode:                variable("editing-mode") == "vi",
	})
	if err != nil {
		return nil, err
	}
	editor = rl
	for _, line := range hist.entries {
		rl.SaveHistory(line)
	}
	return editor, nil
}

func readLine(prompt string) (string, bool) {
	rl, err := instance()
	if err != nil {
		Logger().Error("line editor unavailable", zap.Error(err))
		return "", false
	}
	// readline's invisible-sequence markers; chzyer would print them
	rl.SetPrompt(promptMarkers.Replace(prompt))
	line, err := rl.Readline()
	switch {
	case errors.Is(err, chzyer.ErrInterrupt):
		// ^C discards the line; on an empty line it ends input
		return "", line != ""
	case err != nil:
		return "", false
	}
	lineBuffer, point = line, len(line)
	return mustValid("readline", line), true
}

func initialize() int {
	return 0
}

// LineBuffer returns the line gathered so far.
func LineBuffer() string { return lineBuffer }

// Point returns the cursor offset in LineBuffer.
func Point() int { return point }

// LibraryVersion returns the version string of the line editor.
func LibraryVersion() string { return pureGoVersion }

// ReadlineVersion is 0: no GNU Readline is linked.
func ReadlineVersion() int { return 0 }

// Name returns the application name used for $if in inputrc files.
func Name() string { return name }

// SetName sets the application name used for $if in inputrc files.
func SetName(n string) {
	if strings.IndexByte(n, 0) >= 0 {
		panic("readline: string contains a NUL byte")
	}
	name = n
}

// WordBreakCharacters returns the characters that separate words for
// completion.
func WordBreakCharacters() string { return wordBreaks }

// SetWordBreakCharacters sets the characters that separate words for
// completion.
func SetWordBreakCharacters(chars string) {
	if strings.IndexByte(chars, 0) >= 0 {
		panic("readline: string contains a NUL byte")
	}
	wordBreaks = chars
}

// SetAttemptedCompletionOver is recorded for parity with GNU Readline;
// this backend never falls back to filename completion.
func SetAttemptedCompletionOver(over bool) {
	completionOver = over
}

// SetCompleter installs c as the attempted completion function.
func SetCompleter(c Completer) {
	completer = c
}

// CompletionMatches runs the matching routine over the candidates
// source returns for text. The result is nil, the single match, or the
// common prefix followed by every match.
func CompletionMatches(text string, source func(text string) []string) ([]string, error) {
	var matches []string
	err := entries.Collect(text, source, func(m string) {
		matches = append(matches, m)
	})
	if err != nil {
		return nil, err
	}
	return matchList(matches), nil
}

// completionBridge feeds chzyer's completion through the Completer,
// the same way readline's attempted completion function is driven.
type completionBridge struct{}

func (completionBridge) Do(line []rune, pos int) ([][]rune, int) {
	lineBuffer, point = string(line), len(string(line[:pos]))
	c := completer
	if c == nil {
		return nil, 0
	}
	from := wordStart(line, pos, wordBreaks)
	text := string(line[from:pos])
	start, end := len(string(line[:from])), point

	matches, err := CompletionMatches(text, func(word string) []string {
		return c(word, start, end)
	})
	if err != nil {
		Logger().Warn("completion request rejected", zap.Error(err))
		return nil, 0
	}
	Logger().Debug("completion",
		zap.Int("start", start),
		zap.Int("end", end),
		zap.Int("matches", len(matches)))
	return suffixes(text, matches), len([]rune(text))
}

// suffixes turns full matches into the text chzyer inserts after the
// cursor. Matches that do not extend text cannot be inserted and are
// dropped.
func suffixes(text string, matches []string) [][]rune {
	if len(matches) > 1 {
		matches = matches[1:]
	}
	var out [][]rune
	for _, m := range matches {
		if strings.HasPrefix(m, text) {
			out = append(out, []rune(m[len(text):]))
		}
	}
	return out
}
