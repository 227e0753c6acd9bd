package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "toolbridge",
	Short: "Tool-comparison tutorial catalog",
	Long: `Toolbridge is the reference-data registry behind the tool-comparison
tutorial catalog: two-tool migration guides (e.g. jj for git users) and
single-tool guides (e.g. tmux), each with a command glossary or cheat sheet.

It answers catalog queries from the command line and can serve the same
queries as a JSON API.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
