package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about catalog entries and categories",
	Long:  `Display information about tutorial entries, legacy pairing views, and category listings.`,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.AddCommand(entriesCmd)
	infoCmd.AddCommand(entryCmd)
	infoCmd.AddCommand(pairingsCmd)
	infoCmd.AddCommand(categoriesCmd)
}
