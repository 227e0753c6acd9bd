package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
)

var categoriesFormat string
var categoriesTable string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	Long: `List the catalog categories in use, with entry counts. With --table,
list the categories present in a reference table in its canonical order
instead.`,
	Run: runCategories,
}

func init() {
	setupFormatFlag(categoriesCmd, &categoriesFormat)
	categoriesCmd.Flags().StringVar(&categoriesTable, "table", "", "Show the categories of this table instead of the catalog's")
}

// CategoryCount is one catalog category with its entry count
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CatalogCategoriesResult is the output for catalog categories
type CatalogCategoriesResult struct {
	Categories []CategoryCount `json:"categories"`
}

func (r *CatalogCategoriesResult) ToJSON() interface{} {
	return r
}

func (r *CatalogCategoriesResult) ToText(w io.Writer) {
	for _, category := range r.Categories {
		fmt.Fprintf(w, "%-24s %d\n", category.Category, category.Count)
	}
}

// TableCategoriesResult is the output for one table's categories
type TableCategoriesResult struct {
	Slug       string   `json:"slug"`
	Categories []string `json:"categories"`
}

func (r *TableCategoriesResult) ToJSON() interface{} {
	return r
}

func (r *TableCategoriesResult) ToText(w io.Writer) {
	for _, category := range r.Categories {
		fmt.Fprintln(w, category)
	}
}

func runCategories(cmd *cobra.Command, args []string) {
	if categoriesTable != "" {
		store := loadTables()
		if table, ok := store.Glossary(categoriesTable); ok {
			Output(&TableCategoriesResult{Slug: categoriesTable, Categories: table.Categories()}, categoriesFormat)
			return
		}
		if table, ok := store.CheatSheet(categoriesTable); ok {
			Output(&TableCategoriesResult{Slug: categoriesTable, Categories: table.Categories()}, categoriesFormat)
			return
		}
		log.Fatalf("No table found for slug: %s", categoriesTable)
	}

	var categories []CategoryCount
	for _, group := range loadCatalog().EntriesByCategory() {
		categories = append(categories, CategoryCount{
			Category: string(group.Category),
			Count:    len(group.Entries),
		})
	}
	Output(&CatalogCategoriesResult{Categories: categories}, categoriesFormat)
}
