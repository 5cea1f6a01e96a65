package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/warm3snow/gnureadline/internal/completion"
	"github.com/warm3snow/gnureadline/internal/logging"
	"github.com/warm3snow/gnureadline/internal/machine"
	"github.com/warm3snow/gnureadline/internal/repl"
	"github.com/warm3snow/gnureadline/internal/ui"
	"github.com/warm3snow/gnureadline/pkg/readline"
	"go.uber.org/zap"
)

// runSession starts an interactive session completing from registry
func runSession(cmd *cobra.Command, subcommand string, registry *completion.Registry) error {
	out := cmd.OutOrStdout()
	ui.PrintLogo(out, subcommand)

	if err := readline.Initialize(); err != nil {
		return fmt.Errorf("error initializing readline: %w", err)
	}
	readline.UsingHistory()
	ui.PrintLibraryInfo(out, readline.LibraryVersion())

	if !machine.IsTerminal(os.Stdin) {
		// Escapes in the prompt would end up in piped output
		ui.SetColorEnabled(false)
		logging.Logger.Info("stdin is not a terminal")
	} else {
		ui.PrintHelp(out)
	}

	registry.RegisterSource(completion.NewCommandCompleter(repl.Commands))
	for _, desc := range registry.GetSourceDescriptions() {
		logging.Logger.Debug("Completion source", zap.String("name", desc["name"]), zap.String("description", desc["description"]))
	}

	complete := completion.NewReadlineCompleter(registry).Func()
	traced := func(text string, start, end int) []string {
		logging.Logger.Debug("Completing",
			zap.String("line", readline.LineBuffer()),
			zap.Int("point", readline.Point()),
			zap.String("text", text))
		return complete(text, start, end)
	}

	session := repl.NewSession(Config, repl.Readline{}, traced, out)
	if err := session.Run(cmd.Context()); err != nil {
		logging.LogError("Interactive session failed", err, zap.String("command", subcommand))
		return err
	}
	logging.Logger.Info("Session ended", zap.String("command", subcommand), zap.Int("recorded", session.Added()))
	return nil
}
