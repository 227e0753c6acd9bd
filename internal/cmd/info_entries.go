package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/toolbridge/toolbridge/internal/types"
)

var entriesFormat string
var entriesOutput string
var entriesPublished bool
var entriesByCategory bool

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List tutorial entries",
	Long:  `List all tutorial entries in registry order, optionally restricted to published ones or grouped by category.`,
	Run:   runEntries,
}

func init() {
	setupOutputFlags(entriesCmd, &entriesFormat, &entriesOutput)
	entriesCmd.Flags().BoolVar(&entriesPublished, "published", false, "Show only published entries")
	entriesCmd.Flags().BoolVar(&entriesByCategory, "by-category", false, "Group entries by category")
}

// EntriesResult is the output for the entries command
type EntriesResult struct {
	Entries []types.EntryView `json:"entries"`
	Count   int               `json:"count"`
}

func (r *EntriesResult) ToJSON() interface{} {
	return r
}

func (r *EntriesResult) ToText(w io.Writer) {
	for _, entry := range r.Entries {
		fmt.Fprintf(w, "%-16s %s", entry.Slug, entry.Title)
		if entry.Status != types.StatusPublished {
			fmt.Fprintf(w, " %s", styled(statusStyle, "["+string(entry.Status)+"]"))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nTotal: %d entries\n", r.Count)
}

// GroupedEntriesResult is the output for --by-category
type GroupedEntriesResult struct {
	Groups []EntriesGroup `json:"groups"`
}

// EntriesGroup is one category's entries
type EntriesGroup struct {
	Category string            `json:"category"`
	Entries  []types.EntryView `json:"entries"`
}

func (r *GroupedEntriesResult) ToJSON() interface{} {
	return r
}

func (r *GroupedEntriesResult) ToText(w io.Writer) {
	for _, group := range r.Groups {
		fmt.Fprintf(w, "%s\n", styled(categoryStyle, "=== "+group.Category+" ==="))
		for _, entry := range group.Entries {
			fmt.Fprintf(w, "  %-16s %s\n", entry.Slug, entry.Title)
		}
		fmt.Fprintln(w)
	}
}

func runEntries(cmd *cobra.Command, args []string) {
	c := loadCatalog()

	if entriesByCategory {
		var groups []EntriesGroup
		for _, group := range c.EntriesByCategory() {
			entriesGroup := EntriesGroup{Category: string(group.Category)}
			for _, entry := range group.Entries {
				entriesGroup.Entries = append(entriesGroup.Entries, types.ViewOf(entry))
			}
			groups = append(groups, entriesGroup)
		}
		OutputToFile(&GroupedEntriesResult{Groups: groups}, entriesFormat, entriesOutput)
		return
	}

	entries := c.Entries()
	if entriesPublished {
		entries = c.PublishedEntries()
	}

	views := make([]types.EntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, types.ViewOf(entry))
	}

	result := &EntriesResult{Entries: views, Count: len(views)}
	OutputToFile(result, entriesFormat, entriesOutput)
}
