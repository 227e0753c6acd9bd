package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/toolbridge/toolbridge/internal/config"
	"github.com/toolbridge/toolbridge/internal/tables"
)

var validatePatterns []string

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate content documents",
	Long: `Validate the embedded catalog and tables, or an external content
directory, against their schemas and invariants. Without an argument the
directory falls back to TOOLBRIDGE_CONTENT_DIR. Exits non-zero on the
first defect.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringSliceVar(&validatePatterns, "pattern", nil, "Glob patterns selecting table files (repeatable)")
}

func runValidate(cmd *cobra.Command, args []string) {
	dir, patterns := validateTarget(args, config.LoadSettings(), validatePatterns)

	if dir == "" {
		c := loadCatalog()
		store := loadTables()
		fmt.Printf("OK: %d entries, %d tables\n", len(c.Entries()), len(store.Slugs()))
		return
	}

	contentConfig, err := config.LoadContentConfig(dir)
	if err != nil {
		log.Fatalf("Failed to load content config: %v", err)
	}

	store, err := tables.LoadExternal(dir, contentConfig.MergePatterns(patterns))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d tables in %s\n", len(store.Slugs()), dir)
}

// validateTarget resolves what to validate: an explicit directory argument
// wins over TOOLBRIDGE_CONTENT_DIR, and flag patterns follow the configured
// ones. An empty directory means the embedded content.
func validateTarget(args []string, settings *config.Settings, flagPatterns []string) (string, []string) {
	dir := settings.ContentDir
	if len(args) > 0 {
		dir = args[0]
	}
	patterns := append([]string{}, settings.ContentPatterns...)
	return dir, append(patterns, flagPatterns...)
}
