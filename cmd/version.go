package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/warm3snow/gnureadline/internal/machine"
	"github.com/warm3snow/gnureadline/internal/ui"
	"github.com/warm3snow/gnureadline/pkg/readline"
)

// Version information
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  `Display version information about gnureadline and the linked readline library.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		ui.PrintLogo(out, "Version")

		// Display version information
		fmt.Fprintln(out, "gnureadline - GNU Readline for Go")
		fmt.Fprintf(out, "Version: %s\n", Version)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "Readline: %s (0x%04x)\n", readline.LibraryVersion(), readline.ReadlineVersion())

		verbose, _ := cmd.Flags().GetBool("verbose")
		if !verbose {
			return
		}
		info := machine.NewContext(readline.LibraryVersion()).GetSystemInfo()
		keys := make([]string, 0, len(info))
		for k := range info {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(out)
		for _, k := range keys {
			fmt.Fprintf(out, "%-12s %s\n", k+":", info[k])
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "also show system information")
	rootCmd.AddCommand(versionCmd)
}
