package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fern/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fern",
	Short: "Fern language lexer and tooling",
	Long:  `Fern is a small imperative scripting language; this tool turns fern source into its token stream`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
