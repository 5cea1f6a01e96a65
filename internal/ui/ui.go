package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	Logo = `
  __ _ _ __  _   _   _ __| (_)_ __   ___
 / _' | '_ \| | | | | '__| | | '_ \ / _ \
| (_| | | | | |_| | | |  | | | | | |  __/
 \__, |_| |_|\__,_| |_|  |_|_|_| |_|\___|
 |___/`
)

// SetColorEnabled turns colored output on or off globally
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// PrintLogo prints the logo with the given subcommand name
func PrintLogo(w io.Writer, subcommand string) {
	logoColor := color.New(color.FgCyan, color.Bold)
	logoColor.Fprintln(w, Logo)

	// Display subcommand name if it's not the default
	if subcommand != "" {
		fmt.Fprintf(w, "         %s\n", subcommand)
	}
	fmt.Fprintln(w)
}

// PrintLibraryInfo displays the linked line editing library
func PrintLibraryInfo(w io.Writer, library string) {
	info := color.New(color.FgCyan)
	info.Fprintf(w, "%s\n", library)
}

// PrintHelp tells the user how to drive a demo session
func PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Press TAB to complete the current word.")
	fmt.Fprintln(w, "Press Ctrl-D on an empty line to end the session.")
}

// Prompt renders the prompt string, colored when color is enabled.
// Escapes are wrapped in \001..\002 so readline does not count them
// toward the prompt width.
func Prompt(prompt string) string {
	if color.NoColor {
		return prompt
	}
	return "\001\033[32m\002" + prompt + "\001\033[0m\002"
}

// CreateColoredPrinters returns styled printer functions for echoed lines and notices
func CreateColoredPrinters(w io.Writer) (echoPrinter, noticePrinter func(string)) {
	echoStyle := color.New(color.FgGreen).Add(color.Bold)
	noticeStyle := color.New(color.FgYellow)

	echoPrinter = func(msg string) {
		echoStyle.Fprintln(w, msg)
	}

	noticePrinter = func(msg string) {
		noticeStyle.Fprintln(w, msg)
	}

	return
}
