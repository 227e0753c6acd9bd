package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toolbridge/toolbridge/internal/types"
)

var entryFormat string

var entryCmd = &cobra.Command{
	Use:   "entry [slug]",
	Short: "Show details for a single tutorial entry",
	Long:  `Display the complete entry definition for a given slug, either variant.`,
	Args:  cobra.ExactArgs(1),
	Run:   runEntry,
}

func init() {
	setupFormatFlag(entryCmd, &entryFormat)
}

// EntryResult wraps one entry for output
type EntryResult struct {
	Entry types.Entry
}

func (r *EntryResult) ToJSON() interface{} {
	view := types.ViewOf(r.Entry)
	return &view
}

func (r *EntryResult) ToText(w io.Writer) {
	view := r.ToJSON().(*types.EntryView)

	fmt.Fprintf(w, "%s\n", styled(headingStyle, view.Title))
	fmt.Fprintf(w, "  slug:      %s\n", view.Slug)
	fmt.Fprintf(w, "  kind:      %s\n", view.Kind)
	fmt.Fprintf(w, "  category:  %s\n", view.Category)
	fmt.Fprintf(w, "  steps:     %d (%s)\n", view.Steps, view.EstimatedTime)
	fmt.Fprintf(w, "  status:    %s\n", view.Status)
	if view.Language != "" {
		fmt.Fprintf(w, "  language:  %s\n", view.Language)
	}
	if view.From != nil {
		fmt.Fprintf(w, "  from:      %s  %s\n", view.From.Name, styled(mutedStyle, view.From.Description))
	}
	if view.To != nil {
		fmt.Fprintf(w, "  to:        %s  %s\n", view.To.Name, styled(mutedStyle, view.To.Description))
	}
	if view.Tool != nil {
		fmt.Fprintf(w, "  tool:      %s  %s\n", view.Tool.Name, styled(mutedStyle, view.Tool.Description))
	}
}

func runEntry(cmd *cobra.Command, args []string) {
	slug := args[0]

	entry, ok := loadCatalog().Entry(slug)
	if !ok {
		fmt.Fprintf(os.Stderr, "Entry not found: %s\n", slug)
		os.Exit(1)
	}

	Output(&EntryResult{Entry: entry}, entryFormat)
}
