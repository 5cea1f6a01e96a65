package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/warm3snow/gnureadline/internal/config"
	"github.com/warm3snow/gnureadline/internal/logging"
	"github.com/warm3snow/gnureadline/internal/ui"
	"github.com/warm3snow/gnureadline/pkg/readline"
	"go.uber.org/zap"
)

// Commands are the slash commands a session handles instead of echoing
var Commands = []string{"/help", "/history"}

// Session reads lines, records them in the history list and echoes them
// back until input ends
type Session struct {
	cfg       *config.Config
	backend   Backend
	completer readline.Completer
	out       io.Writer
	echo      func(string)
	notice    func(string)

	historyPath string
	added       int
}

// NewSession creates a session. A nil completer leaves readline's
// filename completion in place.
func NewSession(cfg *config.Config, backend Backend, completer readline.Completer, out io.Writer) *Session {
	echo, notice := ui.CreateColoredPrinters(out)
	return &Session{
		cfg:       cfg,
		backend:   backend,
		completer: completer,
		out:       out,
		echo:      echo,
		notice:    notice,
	}
}

// Added returns how many lines this session recorded in the history list
func (s *Session) Added() int {
	return s.added
}

// Setup hands the configuration to the line editor and loads the
// history file
func (s *Session) Setup() error {
	rc := s.cfg.Readline
	if rc.Name != "" {
		s.backend.SetName(rc.Name)
	}
	if rc.WordBreakCharacters != "" {
		s.backend.SetWordBreakCharacters(rc.WordBreakCharacters)
	}
	s.backend.SetAttemptedCompletionOver(rc.CompletionOver)

	if rc.InitFile != "" {
		path, err := config.ExpandPath(rc.InitFile)
		if err != nil {
			return fmt.Errorf("error expanding init file path: %w", err)
		}
		if err := s.backend.ReadInitFile(path); err != nil {
			return fmt.Errorf("error reading init file: %w", err)
		}
	}
	for _, binding := range rc.Bindings {
		if err := s.backend.ParseAndBind(binding); err != nil {
			return fmt.Errorf("invalid binding %q: %w", binding, err)
		}
	}

	if s.cfg.History.MaxEntries > 0 {
		s.backend.StifleHistory(s.cfg.History.MaxEntries)
	}

	path, err := s.cfg.HistoryPath()
	if err != nil {
		return fmt.Errorf("error expanding history path: %w", err)
	}
	s.historyPath = path
	if path != "" {
		err := s.backend.ReadHistory(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// first run
		case err != nil:
			logging.LogHistory("read_history", path, 0, err)
			return fmt.Errorf("error loading history: %w", err)
		default:
			logging.LogHistory("read_history", path, len(s.backend.HistoryList()), nil)
		}
	}

	s.backend.SetCompleter(s.completer)
	return nil
}

// Run sets the editor up and loops until EOF, exit or quit, or until ctx
// is cancelled between lines. History is saved on the way out.
func (s *Session) Run(ctx context.Context) (err error) {
	if err := s.Setup(); err != nil {
		return err
	}
	defer func() {
		if saveErr := s.Close(); saveErr != nil && err == nil {
			err = saveErr
		}
	}()

	prompt := ui.Prompt(s.cfg.Readline.Prompt)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, ok := s.backend.Readline(prompt)
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}

		if s.backend.AddHistory(line) {
			s.added++
		}

		input := strings.TrimSpace(line)
		if input == "exit" || input == "quit" {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		// Handle special commands
		if s.handleSpecialCommands(input) {
			continue
		}

		s.echo(line)
	}
}

// handleSpecialCommands handles /help and /history
func (s *Session) handleSpecialCommands(input string) bool {
	switch input {
	case "/help":
		s.showHelpMessage()
		return true
	case "/history":
		for i, line := range s.backend.HistoryList() {
			fmt.Fprintf(s.out, "%5d  %s\n", i+1, line)
		}
		return true
	}
	return false
}

// showHelpMessage displays the help message
func (s *Session) showHelpMessage() {
	fmt.Fprintln(s.out, "\nAvailable commands:")
	s.notice("  /help     - Show this help message")
	s.notice("  /history  - List the history of this session")
	s.notice("  exit      - End the session (or quit, or Ctrl-D)")
	ui.PrintHelp(s.out)
}

// Close appends the lines recorded by this session to the history file
// and truncates the file to the configured size
func (s *Session) Close() error {
	s.backend.SetCompleter(nil)
	if s.historyPath == "" || s.added == 0 {
		return nil
	}

	if err := s.backend.AppendHistory(s.added, s.historyPath); err != nil {
		logging.LogHistory("append_history", s.historyPath, s.added, err)
		return fmt.Errorf("error saving history: %w", err)
	}
	logging.LogHistory("append_history", s.historyPath, s.added, nil)

	if n := s.cfg.History.FileLines; n > 0 {
		if err := s.backend.TruncateHistoryFile(s.historyPath, n); err != nil {
			logging.LogError("Failed to truncate history file", err, zap.String("path", s.historyPath))
			return fmt.Errorf("error truncating history: %w", err)
		}
	}

	s.added = 0
	return nil
}
