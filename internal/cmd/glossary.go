package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/toolbridge/toolbridge/internal/tables"
	"github.com/toolbridge/toolbridge/internal/types"
)

var glossaryFormat string
var glossaryOutput string
var glossaryCategory string
var glossarySearch string

var glossaryCmd = &cobra.Command{
	Use:   "glossary [slug]",
	Short: "Show a comparison glossary table",
	Long:  `Display the command glossary for a comparison entry, optionally filtered by category or a search query.`,
	Args:  cobra.ExactArgs(1),
	Run:   runGlossary,
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
	setupOutputFlags(glossaryCmd, &glossaryFormat, &glossaryOutput)
	glossaryCmd.Flags().StringVarP(&glossaryCategory, "category", "c", "", "Only rows in this category")
	glossaryCmd.Flags().StringVarP(&glossarySearch, "search", "s", "", "Only rows matching this query")
}

// GlossaryResult is the output for the glossary command
type GlossaryResult struct {
	Slug string              `json:"slug"`
	Rows []types.GlossaryRow `json:"rows"`
}

func (r *GlossaryResult) ToJSON() interface{} {
	return r
}

func (r *GlossaryResult) ToText(w io.Writer) {
	lastCategory := ""
	for _, row := range r.Rows {
		if row.Category != lastCategory {
			fmt.Fprintf(w, "%s\n", styled(categoryStyle, row.Category))
			lastCategory = row.Category
		}
		fmt.Fprintf(w, "  %-44s %s\n", row.From, row.To)
		if row.Note != "" {
			fmt.Fprintf(w, "  %s\n", styled(mutedStyle, row.Note))
		}
	}
	fmt.Fprintf(w, "\n%d rows\n", len(r.Rows))
}

func runGlossary(cmd *cobra.Command, args []string) {
	slug := args[0]

	table, ok := loadTables().Glossary(slug)
	if !ok {
		log.Fatalf("No glossary found for slug: %s", slug)
	}

	rows := table.Rows
	if glossaryCategory != "" {
		rows = tables.FilterByCategory(rows, glossaryCategory)
	}
	rows = tables.Search(rows, glossarySearch)

	OutputToFile(&GlossaryResult{Slug: slug, Rows: rows}, glossaryFormat, glossaryOutput)
}
