package repl

import (
	"github.com/warm3snow/gnureadline/pkg/readline"
)

// Backend is the part of the line editor a session drives
type Backend interface {
	Readline(prompt string) (string, bool)
	AddHistory(line string) bool
	HistoryList() []string

	SetName(name string)
	SetWordBreakCharacters(chars string)
	SetAttemptedCompletionOver(over bool)
	SetCompleter(c readline.Completer)
	ReadInitFile(path string) error
	ParseAndBind(line string) error

	StifleHistory(limit int)
	ReadHistory(path string) error
	AppendHistory(n int, path string) error
	TruncateHistoryFile(path string, n int) error
}

// Readline forwards to the process-wide readline binding
type Readline struct{}

func (Readline) Readline(prompt string) (string, bool) { return readline.Readline(prompt) }
func (Readline) AddHistory(line string) bool           { return readline.AddHistory(line) }
func (Readline) HistoryList() []string                 { return readline.HistoryList() }
func (Readline) SetName(name string)                   { readline.SetName(name) }
func (Readline) SetWordBreakCharacters(chars string)   { readline.SetWordBreakCharacters(chars) }
func (Readline) SetAttemptedCompletionOver(over bool)  { readline.SetAttemptedCompletionOver(over) }
func (Readline) SetCompleter(c readline.Completer)     { readline.SetCompleter(c) }
func (Readline) ReadInitFile(path string) error        { return readline.ReadInitFile(path) }
func (Readline) ParseAndBind(line string) error        { return readline.ParseAndBind(line) }
func (Readline) StifleHistory(limit int)               { readline.StifleHistory(limit) }
func (Readline) ReadHistory(path string) error         { return readline.ReadHistory(path) }

func (Readline) AppendHistory(n int, path string) error {
	return readline.AppendHistory(n, path)
}

func (Readline) TruncateHistoryFile(path string, n int) error {
	return readline.TruncateHistoryFile(path, n)
}
