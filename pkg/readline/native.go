//go:build cgo && !purego

package readline

/*
#cgo LDFLAGS: -lreadline
#include <stdio.h>
#include <stdlib.h>
#include <readline/readline.h>
#include <readline/history.h>

extern char *goCompletionEntry(char *text, int state);
extern char **goAttemptedCompletion(char *text, int start, int end);

static char *rlgo_history_line(int offset) {
	HIST_ENTRY *e = history_get(offset);
	return e == NULL ? NULL : e->line;
}

static char **rlgo_completion_matches(const char *text) {
	return rl_completion_matches(text, (rl_compentry_func_t *)goCompletionEntry);
}

static void rlgo_set_completion(int on) {
	rl_attempted_completion_function = on ? (rl_completion_func_t *)goAttemptedCompletion : NULL;
}

static char *rlgo_match_at(char **matches, int i) {
	return matches[i];
}
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/warm3snow/gnureadline/internal/compentry"
	"go.uber.org/zap"
)

// cAllocator duplicates candidates into malloc'd memory. Readline frees
// every string the entry function returns.
type cAllocator struct{}

func (cAllocator) Dup(text string) *C.char { return C.CString(text) }

func (cAllocator) Free(p *C.char) { C.free(unsafe.Pointer(p)) }

var (
	entries   = compentry.NewProducer[*C.char](cAllocator{})
	completer Completer

	completionOver bool

	// strings this package handed to readline globals
	ownedName       *C.char
	ownedWordBreaks *C.char
)

// The Go runtime owns signal handling; readline's handlers would
// crash it.
func init() {
	C.rl_catch_signals = 0
	C.rl_catch_sigwinch = 0
}

func cString(s string) *C.char {
	if strings.IndexByte(s, 0) >= 0 {
		panic("readline: string contains a NUL byte")
	}
	return C.CString(s)
}

// cPath returns nil for an empty path so readline picks ~/.history.
func cPath(path string) *C.char {
	if path == "" {
		return nil
	}
	return cString(path)
}

func free(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

func goString(op string, p *C.char) string {
	return mustValid(op, C.GoString(p))
}

func readLine(prompt string) (string, bool) {
	p := cString(prompt)
	defer free(p)
	ret := C.readline(p)
	if ret == nil {
		return "", false
	}
	defer free(ret)
	return goString("readline", ret), true
}

func initialize() int {
	return int(C.rl_initialize())
}

func readInitFile(path string) int {
	p := cPath(path)
	defer free(p)
	return int(C.rl_read_init_file(p))
}

func parseAndBind(line string) int {
	l := cString(line)
	defer free(l)
	return int(C.rl_parse_and_bind(l))
}

// LineBuffer returns the line gathered so far.
func LineBuffer() string {
	if C.rl_line_buffer == nil {
		return ""
	}
	return goString("rl_line_buffer", C.rl_line_buffer)
}

// Point returns the cursor offset in LineBuffer.
func Point() int {
	return int(C.rl_point)
}

// LibraryVersion returns the version string of the linked library.
func LibraryVersion() string {
	return C.GoString(C.rl_library_version)
}

// ReadlineVersion returns the library version encoded as 0xMMmm.
func ReadlineVersion() int {
	return int(C.rl_readline_version)
}

// Name returns the application name used for $if in inputrc files.
func Name() string {
	if C.rl_readline_name == nil {
		return ""
	}
	return goString("rl_readline_name", C.rl_readline_name)
}

// SetName sets the application name used for $if in inputrc files.
func SetName(name string) {
	p := cString(name)
	C.rl_readline_name = p
	free(ownedName)
	ownedName = p
}

// WordBreakCharacters returns the characters that separate words for
// completion.
func WordBreakCharacters() string {
	if C.rl_completer_word_break_characters == nil {
		return ""
	}
	return goString("rl_completer_word_break_characters", C.rl_completer_word_break_characters)
}

// SetWordBreakCharacters sets the characters that separate words for
// completion.
func SetWordBreakCharacters(chars string) {
	p := cString(chars)
	C.rl_completer_word_break_characters = p
	free(ownedWordBreaks)
	ownedWordBreaks = p
}

// SetAttemptedCompletionOver stops readline from falling back to
// filename completion when the Completer finds nothing.
func SetAttemptedCompletionOver(over bool) {
	completionOver = over
}

// SetCompleter installs c as the attempted completion function.
// A nil c restores readline's default filename completion.
func SetCompleter(c Completer) {
	completer = c
	if c == nil {
		C.rlgo_set_completion(0)
		return
	}
	C.rlgo_set_completion(1)
}

// CompletionMatches runs readline's matching routine over the
// candidates source returns for text. The result is nil, the single
// match, or the common prefix followed by every match.
func CompletionMatches(text string, source func(text string) []string) ([]string, error) {
	if err := entries.Begin(source); err != nil {
		return nil, err
	}
	defer entries.End()

	t := cString(text)
	defer free(t)
	return takeMatches(C.rlgo_completion_matches(t)), nil
}

// takeMatches copies and frees a NULL terminated match array.
func takeMatches(matches **C.char) []string {
	if matches == nil {
		return nil
	}
	var out []string
	for i := 0; ; i++ {
		m := C.rlgo_match_at(matches, C.int(i))
		if m == nil {
			break
		}
		out = append(out, goString("rl_completion_matches", m))
		free(m)
	}
	C.free(unsafe.Pointer(matches))
	return out
}

// completionMatches serves the attempted completion callback.
func completionMatches(text *C.char, start, end int) **C.char {
	c := completer
	if c == nil {
		return nil
	}
	if completionOver {
		C.rl_attempted_completion_over = 1
	}
	err := entries.Begin(func(word string) []string {
		return c(word, start, end)
	})
	if err != nil {
		Logger().Warn("completion request rejected", zap.Error(err))
		return nil
	}
	defer entries.End()

	matches := C.rlgo_completion_matches(text)
	Logger().Debug("completion",
		zap.Int("start", start),
		zap.Int("end", end),
		zap.Bool("matched", matches != nil))
	return matches
}

// attemptCompletion runs the attempted completion callback the way
// readline does on TAB and reports whether completion was marked over.
func attemptCompletion(text string, start, end int) ([]string, bool) {
	t := cString(text)
	defer free(t)
	C.rl_attempted_completion_over = 0
	matches := takeMatches(completionMatches(t, start, end))
	return matches, C.rl_attempted_completion_over != 0
}

func entry(text *C.char, state int) *C.char {
	h, ok := entries.Entry(goString("completion entry", text), state)
	if !ok {
		return nil
	}
	return h
}

// UsingHistory initializes the history variables.
func UsingHistory() {
	C.using_history()
}

func addHistory(line string) {
	l := cString(line)
	defer free(l)
	C.add_history(l)
}

func historyGet(offset int) (string, bool) {
	line := C.rlgo_history_line(C.int(offset))
	if line == nil {
		return "", false
	}
	return goString("history_get", line), true
}

// ClearHistory deletes every history entry.
func ClearHistory() {
	C.clear_history()
}

// StifleHistory keeps only the newest limit entries.
func StifleHistory(limit int) {
	C.stifle_history(C.int(limit))
}

// UnstifleHistory stops stifling and returns the previous maximum,
// positive if the history was stifled and negative if it was not.
func UnstifleHistory() int {
	return int(C.unstifle_history())
}

// HistoryIsStifled reports whether the history is stifled.
func HistoryIsStifled() bool {
	return C.history_is_stifled() != 0
}

// HistoryBase returns the logical offset of the oldest entry.
func HistoryBase() int {
	return int(C.history_base)
}

// HistoryLength returns the number of entries in the history list.
func HistoryLength() int {
	return int(C.history_length)
}

func readHistory(path string) int {
	p := cPath(path)
	defer free(p)
	return int(C.read_history(p))
}

func writeHistory(path string) int {
	p := cPath(path)
	defer free(p)
	return int(C.write_history(p))
}

func appendHistory(n int, path string) int {
	p := cPath(path)
	defer free(p)
	return int(C.append_history(C.int(n), p))
}

func truncateHistoryFile(path string, n int) int {
	p := cPath(path)
	defer free(p)
	return int(C.history_truncate_file(p, C.int(n)))
}
