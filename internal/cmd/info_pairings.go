package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/toolbridge/toolbridge/internal/types"
)

var pairingsFormat string
var pairingsOutput string
var pairingsPublished bool

// Legacy view: comparison entries only, for callers that predate
// single-tool guides.
var pairingsCmd = &cobra.Command{
	Use:   "pairings",
	Short: "List tool pairings (comparison entries only)",
	Long:  `List the comparison-variant entries, the view callers used before single-tool guides existed.`,
	Run:   runPairings,
}

func init() {
	setupOutputFlags(pairingsCmd, &pairingsFormat, &pairingsOutput)
	pairingsCmd.Flags().BoolVar(&pairingsPublished, "published", false, "Show only published pairings")
}

// PairingsResult is the output for the pairings command
type PairingsResult struct {
	Pairings []types.EntryView `json:"pairings"`
	Count    int               `json:"count"`
}

func (r *PairingsResult) ToJSON() interface{} {
	return r
}

func (r *PairingsResult) ToText(w io.Writer) {
	for _, pairing := range r.Pairings {
		fmt.Fprintf(w, "%-16s %s", pairing.Slug, pairing.Title)
		if pairing.Status != types.StatusPublished {
			fmt.Fprintf(w, " %s", styled(statusStyle, "["+string(pairing.Status)+"]"))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nTotal: %d pairings\n", r.Count)
}

func runPairings(cmd *cobra.Command, args []string) {
	c := loadCatalog()

	entries := c.Entries()
	if pairingsPublished {
		entries = c.PublishedEntries()
	}

	var views []types.EntryView
	for _, entry := range entries {
		if pairing, ok := entry.(*types.Comparison); ok {
			views = append(views, types.ViewOf(pairing))
		}
	}

	result := &PairingsResult{Pairings: views, Count: len(views)}
	OutputToFile(result, pairingsFormat, pairingsOutput)
}
