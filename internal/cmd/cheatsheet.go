package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/toolbridge/toolbridge/internal/tables"
	"github.com/toolbridge/toolbridge/internal/types"
)

var cheatsheetFormat string
var cheatsheetOutput string
var cheatsheetCategory string
var cheatsheetSearch string

var cheatsheetCmd = &cobra.Command{
	Use:   "cheatsheet [slug]",
	Short: "Show a single-tool cheat sheet",
	Long:  `Display the command cheat sheet for a single-tool entry, optionally filtered by category or a search query.`,
	Args:  cobra.ExactArgs(1),
	Run:   runCheatsheet,
}

func init() {
	rootCmd.AddCommand(cheatsheetCmd)
	setupOutputFlags(cheatsheetCmd, &cheatsheetFormat, &cheatsheetOutput)
	cheatsheetCmd.Flags().StringVarP(&cheatsheetCategory, "category", "c", "", "Only rows in this category")
	cheatsheetCmd.Flags().StringVarP(&cheatsheetSearch, "search", "s", "", "Only rows matching this query")
}

// CheatSheetResult is the output for the cheatsheet command
type CheatSheetResult struct {
	Slug string           `json:"slug"`
	Rows []types.CheatRow `json:"rows"`
}

func (r *CheatSheetResult) ToJSON() interface{} {
	return r
}

func (r *CheatSheetResult) ToText(w io.Writer) {
	lastCategory := ""
	for _, row := range r.Rows {
		if row.Category != lastCategory {
			fmt.Fprintf(w, "%s\n", styled(categoryStyle, row.Category))
			lastCategory = row.Category
		}
		fmt.Fprintf(w, "  %-36s %s\n", row.Command, row.Description)
		if row.Note != "" {
			fmt.Fprintf(w, "  %s\n", styled(mutedStyle, row.Note))
		}
	}
	fmt.Fprintf(w, "\n%d rows\n", len(r.Rows))
}

func runCheatsheet(cmd *cobra.Command, args []string) {
	slug := args[0]

	table, ok := loadTables().CheatSheet(slug)
	if !ok {
		log.Fatalf("No cheat sheet found for slug: %s", slug)
	}

	rows := table.Rows
	if cheatsheetCategory != "" {
		rows = tables.FilterByCategory(rows, cheatsheetCategory)
	}
	rows = tables.Search(rows, cheatsheetSearch)

	OutputToFile(&CheatSheetResult{Slug: slug, Rows: rows}, cheatsheetFormat, cheatsheetOutput)
}
