//go:build !cgo || purego

package readline

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// historyList mirrors GNU history's list: offsets start at base, and
// stifling drops the oldest entries, moving base forward.
type historyList struct {
	entries []string
	base    int
	max     int
	stifled bool
}

var hist = &historyList{base: 1}

func (h *historyList) push(line string) {
	h.entries = append(h.entries, line)
	h.trim()
}

func (h *historyList) trim() {
	if !h.stifled || len(h.entries) <= h.max {
		return
	}
	drop := len(h.entries) - h.max
	h.entries = append([]string(nil), h.entries[drop:]...)
	h.base += drop
}

// syncEditor replays the list into the line editor's own history so
// the arrow keys see the same entries.
func syncEditor() {
	editorMu.Lock()
	rl := editor
	editorMu.Unlock()
	if rl == nil {
		return
	}
	rl.ResetHistory()
	for _, line := range hist.entries {
		rl.SaveHistory(line)
	}
}

// UsingHistory initializes the history variables.
func UsingHistory() {}

func addHistory(line string) {
	hist.push(line)
	editorMu.Lock()
	rl := editor
	editorMu.Unlock()
	if rl != nil {
		rl.SaveHistory(line)
	}
}

func historyGet(offset int) (string, bool) {
	i := offset - hist.base
	if i < 0 || i >= len(hist.entries) {
		return "", false
	}
	return hist.entries[i], true
}

// ClearHistory deletes every history entry.
func ClearHistory() {
	hist.entries = nil
	hist.base = 1
	syncEditor()
}

// StifleHistory keeps only the newest limit entries.
func StifleHistory(limit int) {
	if limit < 0 {
		limit = 0
	}
	hist.max = limit
	hist.stifled = true
	hist.trim()
	syncEditor()
}

// UnstifleHistory stops stifling and returns the previous maximum,
// positive if the history was stifled and negative if it was not.
func UnstifleHistory() int {
	if hist.stifled {
		hist.stifled = false
		return hist.max
	}
	return -hist.max
}

// HistoryIsStifled reports whether the history is stifled.
func HistoryIsStifled() bool { return hist.stifled }

// HistoryBase returns the logical offset of the oldest entry.
func HistoryBase() int { return hist.base }

// HistoryLength returns the number of entries in the history list.
func HistoryLength() int { return len(hist.entries) }

func historyFile(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".history"), nil
}

// errnoOf extracts the errno readline would have returned for err.
func errnoOf(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return int(syscall.EIO)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// isTimestamp matches the "#<seconds>" lines GNU history writes when
// history_write_timestamps is set.
func isTimestamp(line string) bool {
	if len(line) < 2 || line[0] != '#' {
		return false
	}
	return strings.Trim(line[1:], "0123456789") == ""
}

func readHistory(path string) int {
	path, err := historyFile(path)
	if err != nil {
		return errnoOf(err)
	}
	lines, err := readLines(path)
	if err != nil {
		return errnoOf(err)
	}
	for _, line := range lines {
		if isTimestamp(line) {
			continue
		}
		hist.push(line)
	}
	syncEditor()
	return 0
}

func writeLines(path string, flag int, lines []string) error {
	f, err := os.OpenFile(path, flag, 0o600)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeHistory(path string) int {
	path, err := historyFile(path)
	if err != nil {
		return errnoOf(err)
	}
	return errnoOf(writeLines(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, hist.entries))
}

func appendHistory(n int, path string) int {
	path, err := historyFile(path)
	if err != nil {
		return errnoOf(err)
	}
	lines := hist.entries
	if n >= 0 && n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return errnoOf(writeLines(path, os.O_WRONLY|os.O_APPEND, lines))
}

func truncateHistoryFile(path string, n int) int {
	path, err := historyFile(path)
	if err != nil {
		return errnoOf(err)
	}
	lines, err := readLines(path)
	if err != nil {
		return errnoOf(err)
	}
	if n < 0 {
		n = 0
	}
	if len(lines) <= n {
		return 0
	}
	return errnoOf(writeLines(path, os.O_WRONLY|os.O_TRUNC, lines[len(lines)-n:]))
}
