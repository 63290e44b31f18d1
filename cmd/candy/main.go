// Command candy is the CLI front-end for the checker core: file
// reading, flag parsing, exit codes, and diagnostic rendering. None of
// this is part of the checker's pure core — it only drives it.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candy",
	Short: "Candy static checker",
	Long:  "Candy is a static checker for secret-typed, effect-tracked, protocol-aware programs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return &usageError{msg: "missing command"}
	},
}

// exitCode carries the process exit status decided by a subcommand's
// RunE once diagnostics are known. Any error a RunE *returns* is a
// usage mistake (exit code 2); everything else is communicated through
// this variable so Cobra's own error/usage printing stays reserved for
// genuine CLI misuse.
var exitCode int

func main() {
	rootCmd.AddCommand(checkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(exitCode)
}
