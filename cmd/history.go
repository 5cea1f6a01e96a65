package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/warm3snow/gnureadline/internal/logging"
	"github.com/warm3snow/gnureadline/pkg/readline"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and maintain the history file",
	Long: `Inspect and maintain the history file the interactive sessions
write to. The file defaults to history.file in the configuration and can
be overridden with --file or $GNUREADLINE_HISTFILE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showHistory(cmd, 0)
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the entries of the history file",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("last")
		return showHistory(cmd, n)
	},
}

var historyTruncateCmd = &cobra.Command{
	Use:   "truncate <lines>",
	Short: "Keep only the newest lines of the history file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid line count %q", args[0])
		}
		path, err := historyPath(cmd)
		if err != nil {
			return err
		}

		err = readline.TruncateHistoryFile(path, n)
		logging.LogHistory("history_truncate_file", path, n, err)
		if err != nil {
			return fmt.Errorf("error truncating history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Kept at most %d lines of %s\n", n, path)
		return nil
	},
}

var historyAppendCmd = &cobra.Command{
	Use:   "append <file>",
	Short: "Append the entries of another history file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := historyPath(cmd)
		if err != nil {
			return err
		}

		readline.ClearHistory()
		if err := readline.ReadHistory(args[0]); err != nil {
			return fmt.Errorf("error reading %s: %w", args[0], err)
		}
		n := readline.HistoryLength()

		err = readline.AppendHistory(n, path)
		logging.LogHistory("append_history", path, n, err)
		if err != nil {
			return fmt.Errorf("error appending history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Appended %d entries to %s\n", n, path)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from the history file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := historyPath(cmd)
		if err != nil {
			return err
		}

		err = readline.TruncateHistoryFile(path, 0)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "No history in %s\n", path)
			return nil
		}
		logging.LogHistory("history_truncate_file", path, 0, err)
		if err != nil {
			return fmt.Errorf("error clearing history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", path)
		return nil
	},
}

// historyPath resolves --file, falling back to the configured file
func historyPath(cmd *cobra.Command) (string, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		return file, nil
	}
	path, err := Config.HistoryPath()
	if err != nil {
		return "", fmt.Errorf("error expanding history path: %w", err)
	}
	if path == "" {
		return "", errors.New("no history file configured")
	}
	return path, nil
}

// showHistory prints the history file, only the newest n entries when n > 0
func showHistory(cmd *cobra.Command, n int) error {
	path, err := historyPath(cmd)
	if err != nil {
		return err
	}

	readline.ClearHistory()
	err = readline.ReadHistory(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(cmd.OutOrStdout(), "No history in %s\n", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading history: %w", err)
	}

	entries := readline.HistoryList()
	first := 0
	if n > 0 && n < len(entries) {
		first = len(entries) - n
	}
	for i := first; i < len(entries); i++ {
		fmt.Fprintf(cmd.OutOrStdout(), "%5d  %s\n", i+1, entries[i])
	}
	return nil
}

func init() {
	historyCmd.PersistentFlags().String("file", "", "history file to operate on")
	historyShowCmd.Flags().IntP("last", "n", 0, "show only the newest n entries")

	historyCmd.AddCommand(historyShowCmd, historyTruncateCmd, historyAppendCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
