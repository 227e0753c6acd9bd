package tables

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/toolbridge/toolbridge/internal/types"
	"github.com/toolbridge/toolbridge/internal/validation"
	"gopkg.in/yaml.v3"
)

//go:embed all:data
var tableFS embed.FS

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Store holds every loaded reference table, keyed by entry slug. One slug
// owns at most one table of either shape.
type Store struct {
	glossaries  map[string]*Table[types.GlossaryRow]
	cheatSheets map[string]*Table[types.CheatRow]
}

// Default returns the process-wide table store built from the embedded
// table documents. It is loaded once; the result is immutable.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = LoadEmbedded()
	})
	return defaultStore, defaultErr
}

// Glossary returns the glossary table for slug, if one exists.
func (s *Store) Glossary(slug string) (*Table[types.GlossaryRow], bool) {
	table, ok := s.glossaries[slug]
	return table, ok
}

// CheatSheet returns the cheat-sheet table for slug, if one exists.
func (s *Store) CheatSheet(slug string) (*Table[types.CheatRow], bool) {
	table, ok := s.cheatSheets[slug]
	return table, ok
}

// Slugs returns the slugs of all loaded tables, sorted.
func (s *Store) Slugs() []string {
	slugs := make([]string, 0, len(s.glossaries)+len(s.cheatSheets))
	for slug := range s.glossaries {
		slugs = append(slugs, slug)
	}
	for slug := range s.cheatSheets {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// LoadEmbedded loads all table documents from the embedded filesystem.
func LoadEmbedded() (*Store, error) {
	store := newStore()

	err := fs.WalkDir(tableFS, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isTableFile(path) {
			return nil
		}

		content, err := tableFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read table file %s: %w", path, err)
		}
		if err := store.addTable(content); err != nil {
			return fmt.Errorf("invalid table in %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded tables: %w", err)
	}

	return store, nil
}

// LoadExternal loads table documents from an external content directory,
// selecting files by doublestar glob patterns matched against the path
// relative to dir. Empty patterns default to every YAML file.
func LoadExternal(dir string, patterns []string) (*Store, error) {
	if len(patterns) == 0 {
		patterns = []string{"**/*.yaml", "**/*.yml"}
	}
	store := newStore()

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if !matchesAny(patterns, filepath.ToSlash(relPath)) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read table file %s: %w", path, err)
		}
		if err := store.addTable(content); err != nil {
			return fmt.Errorf("invalid table in %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk table directory: %w", err)
	}

	return store, nil
}

func newStore() *Store {
	return &Store{
		glossaries:  make(map[string]*Table[types.GlossaryRow]),
		cheatSheets: make(map[string]*Table[types.CheatRow]),
	}
}

func isTableFile(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

func matchesAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// addTable validates, decodes, and registers one table document.
func (s *Store) addTable(content []byte) error {
	var probe struct {
		Slug string `yaml:"slug"`
		Kind Kind   `yaml:"kind"`
	}
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return fmt.Errorf("failed to parse table document: %w", err)
	}

	if _, dup := s.glossaries[probe.Slug]; dup {
		return fmt.Errorf("duplicate table slug %q", probe.Slug)
	}
	if _, dup := s.cheatSheets[probe.Slug]; dup {
		return fmt.Errorf("duplicate table slug %q", probe.Slug)
	}

	switch probe.Kind {
	case KindGlossary:
		table, err := decodeTable[types.GlossaryRow](content, validation.SchemaGlossaryTable, KindGlossary)
		if err != nil {
			return err
		}
		s.glossaries[table.Slug] = table
	case KindCheatSheet:
		table, err := decodeTable[types.CheatRow](content, validation.SchemaCheatSheetTable, KindCheatSheet)
		if err != nil {
			return err
		}
		s.cheatSheets[table.Slug] = table
	default:
		return fmt.Errorf("unknown table kind %q", probe.Kind)
	}
	return nil
}

func decodeTable[R types.Row](content []byte, schemaName string, kind Kind) (*Table[R], error) {
	if err := validation.ValidateYAML(schemaName, content); err != nil {
		return nil, err
	}

	var doc struct {
		Slug       string   `yaml:"slug"`
		Categories []string `yaml:"categories"`
		Rows       []R      `yaml:"rows"`
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode table document: %w", err)
	}

	table := &Table[R]{
		Slug:          doc.Slug,
		Kind:          kind,
		CategoryOrder: doc.Categories,
		Rows:          doc.Rows,
	}
	if err := checkTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

// checkTable enforces the table invariants the schema cannot express:
// unique row ids within the table, no duplicate categories in the canonical
// order, and every row category a member of that order.
func checkTable[R types.Row](t *Table[R]) error {
	ordered := make(map[string]bool, len(t.CategoryOrder))
	for _, category := range t.CategoryOrder {
		if ordered[category] {
			return fmt.Errorf("table %q: duplicate category %q in canonical order", t.Slug, category)
		}
		ordered[category] = true
	}

	ids := make(map[string]bool, len(t.Rows))
	for _, row := range t.Rows {
		if ids[row.RowID()] {
			return fmt.Errorf("table %q: duplicate row id %q", t.Slug, row.RowID())
		}
		ids[row.RowID()] = true

		if !ordered[row.RowCategory()] {
			return fmt.Errorf("table %q: row %q has category %q not in canonical order",
				t.Slug, row.RowID(), row.RowCategory())
		}
	}
	return nil
}
