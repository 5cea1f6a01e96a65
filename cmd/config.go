package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/warm3snow/gnureadline/internal/config"
	"github.com/warm3snow/gnureadline/internal/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gnureadline configuration",
	Long:  `View and write gnureadline configuration settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, show the current config
		ui.PrintLogo(cmd.OutOrStdout(), "Config")
		return showConfig(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

var configDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show how the effective configuration differs from the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, err := config.Diff(config.DefaultConfig(), Config)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !config.Changed(diff) {
			fmt.Fprintln(out, "Configuration matches the defaults.")
			return nil
		}

		added := color.New(color.FgGreen)
		removed := color.New(color.FgRed)
		for _, d := range diff {
			switch d.Op {
			case diffmatchpatch.DiffInsert:
				added.Fprintf(out, "+ %s\n", d.Text)
			case diffmatchpatch.DiffDelete:
				removed.Fprintf(out, "- %s\n", d.Text)
			default:
				fmt.Fprintf(out, "  %s\n", d.Text)
			}
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func showConfig(cmd *cobra.Command) error {
	data, err := Config.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd, configDiffCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
