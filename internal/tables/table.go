// Package tables holds the glossary and cheat-sheet reference tables and the
// query layer over them. Tables are loaded once from embedded YAML documents
// and are immutable afterwards; every query is a pure function and safe for
// concurrent use.
package tables

import (
	"strings"

	"github.com/toolbridge/toolbridge/internal/types"
)

// Kind discriminates the two table shapes.
type Kind string

const (
	KindGlossary   Kind = "glossary"
	KindCheatSheet Kind = "cheatsheet"
)

// Table is an immutable ordered sequence of rows plus the table's canonical
// category order. CategoryOrder defines display order and is independent of
// the order rows were declared in.
type Table[R types.Row] struct {
	Slug          string
	Kind          Kind
	CategoryOrder []string
	Rows          []R
}

// Categories returns the categories actually present in the table's rows,
// ordered by the table's canonical sequence. Categories declared in the
// sequence but absent from the data are omitted.
func (t *Table[R]) Categories() []string {
	present := make(map[string]bool, len(t.Rows))
	for _, row := range t.Rows {
		present[row.RowCategory()] = true
	}

	categories := make([]string, 0, len(present))
	for _, category := range t.CategoryOrder {
		if present[category] {
			categories = append(categories, category)
		}
	}
	return categories
}

// FilterByCategory returns the rows whose category equals category, in table
// order. An unknown category yields an empty result, not an error.
func FilterByCategory[R types.Row](rows []R, category string) []R {
	filtered := make([]R, 0, len(rows))
	for _, row := range rows {
		if row.RowCategory() == category {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Search returns the rows with at least one textual field containing query,
// case-insensitively. An empty query returns rows unchanged.
func Search[R types.Row](rows []R, query string) []R {
	if query == "" {
		return rows
	}

	needle := strings.ToLower(query)
	matched := make([]R, 0, len(rows))
	for _, row := range rows {
		for _, field := range row.SearchFields() {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}
