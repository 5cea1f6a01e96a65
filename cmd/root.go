package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/warm3snow/gnureadline/internal/config"
	"github.com/warm3snow/gnureadline/internal/logging"
	"github.com/warm3snow/gnureadline/internal/ui"
	"github.com/warm3snow/gnureadline/pkg/readline"
)

var (
	// Used for flags
	cfgFile  string
	logLevel string
	noColor  bool

	// Config is the configuration loaded before any subcommand runs
	Config *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gnureadline",
	Short: "GNU Readline for Go, with completion demos",
	Long: `gnureadline drives the GNU Readline library from Go. The demo
commands read lines with full line editing, complete the current word on
TAB from a Go callback, keep a history list and persist it to a file.`,
	SilenceUsage: true,
	// Add Run function to display logo when root command is executed
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintLogo(cmd.OutOrStdout(), "")
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	// Ensure logger is closed on exit
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		logging.LogError("Command execution failed", err)
		return err
	}

	logging.LogAppExit()
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gnureadline.yaml, then $HOME/.gnureadline/gnureadline.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// initConfig loads the configuration and sets up logging for cmd
func initConfig(cmd *cobra.Command) error {
	// Load config from file
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	Config = cfg

	if logLevel != "" {
		Config.UI.LogLevel = logLevel
	}
	ui.SetColorEnabled(Config.UI.ColorEnabled && !noColor)

	// Continue even if logging fails, just without file logging
	if err := logging.InitLogger(Config.UI.LogFile, Config.UI.LogLevel); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error initializing logger: %v\n", err)
	}
	readline.SetLogger(logging.Logger.Named("readline"))
	logging.LogAppStart(Version, readline.LibraryVersion())
	return nil
}
