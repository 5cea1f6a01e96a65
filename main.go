package main

import (
	"fmt"
	"os"

	"github.com/warm3snow/gnureadline/cmd"
)

func main() {
	// Execute the command
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
