package cmd

import (
	"github.com/spf13/cobra"
	"github.com/warm3snow/gnureadline/internal/completion"
)

// echoCmd represents the echo command
var echoCmd = &cobra.Command{
	Use:   "echo",
	Short: "Complete the current word with fixed suffixes",
	Long: `Start an interactive session where TAB offers the current word
with each configured suffix appended (by default "s" and "zz"). Every
line read is added to the history list and echoed back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		suffixes := Config.Completion.Suffixes
		if cmd.Flags().Changed("suffix") {
			suffixes, _ = cmd.Flags().GetStringSlice("suffix")
		}

		registry := completion.NewRegistry()
		registry.RegisterSource(completion.NewSuffixSource(suffixes))
		return runSession(cmd, "Echo", registry)
	},
}

func init() {
	rootCmd.AddCommand(echoCmd)

	// Add flags specific to echo
	echoCmd.Flags().StringSliceP("suffix", "s", nil, "suffixes to offer, replacing the configured ones")
}
