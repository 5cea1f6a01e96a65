// Package readline binds the GNU Readline line-editing and history
// library.
//
// Readline keeps its state per process, and so does this package: every
// function works on the single editor behind stdin and stdout. Builds
// without cgo, or with the purego tag, serve the same API from
// github.com/chzyer/readline and an in-process history list.
//
// See https://tiswww.case.edu/php/chet/readline/readline.html and
// https://tiswww.case.edu/php/chet/readline/history.html.
package readline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWordBreakCharacters is readline's default set of characters
// that separate words for completion.
const DefaultWordBreakCharacters = " \t\n\"\\'`@$><=;|&{("

// Completer returns the matches for text, the word between start and end
// in the line buffer.
type Completer func(text string, start, end int) []string

// Readline prints prompt and reads a line. ok is false when input hit
// EOF on an empty line.
func Readline(prompt string) (line string, ok bool) {
	return readLine(prompt)
}

// AddHistory places line at the end of the history list. Empty lines,
// lines starting with whitespace and repeats of the newest entry are
// discarded. It reports whether line was recorded.
func AddHistory(line string) bool {
	if line == "" {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(line); unicode.IsSpace(r) {
		return false
	}
	if prev, ok := HistoryGet(-1); ok && prev == line {
		return false
	}
	addHistory(line)
	return true
}

// HistoryGet returns the entry at index, counting from 0 for the oldest.
// A negative index counts back from the newest, -1 being the newest.
func HistoryGet(index int) (string, bool) {
	if index < 0 {
		index += HistoryLength()
	}
	if index < 0 || index >= HistoryLength() {
		return "", false
	}
	return historyGet(index + HistoryBase())
}

// HistoryList returns a copy of the whole history list, oldest first.
func HistoryList() []string {
	n := HistoryLength()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if line, ok := HistoryGet(i); ok {
			out = append(out, line)
		}
	}
	return out
}

// WriteHistory writes the history list to path, replacing its content.
// An empty path means ~/.history. Nothing is written for an empty list.
func WriteHistory(path string) error {
	if HistoryLength() == 0 {
		return nil
	}
	return statusError("write_history", path, writeHistory(path))
}

// AppendHistory appends the newest n entries to path, creating it if
// needed. An empty path means ~/.history. Nothing is written for an
// empty list.
func AppendHistory(n int, path string) error {
	if HistoryLength() == 0 {
		return nil
	}
	if err := touch(path); err != nil {
		return &Error{Op: "append_history", Path: path, Err: err}
	}
	return statusError("append_history", path, appendHistory(n, path))
}

// ReadHistory adds the lines of path to the history list.
// An empty path means ~/.history.
func ReadHistory(path string) error {
	return statusError("read_history", path, readHistory(path))
}

// TruncateHistoryFile keeps only the last n lines of path.
// An empty path means ~/.history.
func TruncateHistoryFile(path string, n int) error {
	return statusError("history_truncate_file", path, truncateHistoryFile(path, n))
}

// ReadInitFile reads key bindings and variable assignments from path.
func ReadInitFile(path string) error {
	return statusError("rl_read_init_file", path, readInitFile(path))
}

// ParseAndBind parses line as if it had been read from an inputrc file.
func ParseAndBind(line string) error {
	return statusError("rl_parse_and_bind", "", parseAndBind(line))
}

// Initialize initializes or re-initializes readline's internal state.
// Readline calls it itself before reading the first line.
func Initialize() error {
	return statusError("rl_initialize", "", initialize())
}

// touch creates the history file when it does not exist yet;
// append_history refuses to.
func touch(path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".history")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}

// wordStart returns the offset where the word ending at pos begins.
func wordStart(line []rune, pos int, breaks string) int {
	start := pos
	for start > 0 && !strings.ContainsRune(breaks, line[start-1]) {
		start--
	}
	return start
}

// longestCommonPrefix is readline's lowest common denominator of matches.
func longestCommonPrefix(matches []string) string {
	if len(matches) == 0 {
		return ""
	}
	prefix := matches[0]
	for _, m := range matches[1:] {
		i := 0
		for i < len(prefix) && i < len(m) && prefix[i] == m[i] {
			i++
		}
		prefix = prefix[:i]
	}
	// never split a multi-byte sequence
	for len(prefix) > 0 && !utf8.ValidString(prefix) {
		prefix = prefix[:len(prefix)-1]
	}
	return prefix
}

// matchList lays out matches the way rl_completion_matches does:
// nothing, the single match, or the common prefix followed by every match.
func matchList(matches []string) []string {
	switch len(matches) {
	case 0:
		return nil
	case 1:
		return []string{matches[0]}
	}
	out := make([]string, 0, len(matches)+1)
	out = append(out, longestCommonPrefix(matches))
	return append(out, matches...)
}

func mustValid(op, s string) string {
	if !utf8.ValidString(s) {
		panic(fmt.Sprintf("readline: %s returned invalid UTF-8", op))
	}
	return s
}
