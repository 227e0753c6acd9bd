// Package catalog is the tutorial entry registry: an immutable, ordered set
// of comparison and single-tool entries built once from the embedded entry
// table. All lookups are pure reads over that snapshot and safe for
// concurrent use.
package catalog

import (
	"fmt"

	"github.com/toolbridge/toolbridge/internal/types"
)

// Catalog holds the entry registry. Entries keep their declaration order;
// that order is the display order everywhere.
type Catalog struct {
	entries []types.Entry
	bySlug  map[string]types.Entry
}

// New builds a catalog from entries, enforcing the registry invariants:
// unique slugs across both variants, known categories, known statuses.
// Violations are a content defect and fail construction.
func New(entries []types.Entry) (*Catalog, error) {
	bySlug := make(map[string]types.Entry, len(entries))
	for _, entry := range entries {
		meta := entry.Meta()
		if _, dup := bySlug[meta.Slug]; dup {
			return nil, fmt.Errorf("duplicate entry slug %q", meta.Slug)
		}
		if !meta.Category.IsValid() {
			return nil, fmt.Errorf("entry %q: unknown category %q", meta.Slug, meta.Category)
		}
		if !meta.Status.IsValid() {
			return nil, fmt.Errorf("entry %q: unknown status %q", meta.Slug, meta.Status)
		}
		bySlug[meta.Slug] = entry
	}

	return &Catalog{entries: entries, bySlug: bySlug}, nil
}

// Entry looks up an entry by slug over the full registry, both variants
// together. Absence is a normal outcome.
func (c *Catalog) Entry(slug string) (types.Entry, bool) {
	entry, ok := c.bySlug[slug]
	return entry, ok
}

// IsValidSlug reports whether slug names an entry in the registry.
func (c *Catalog) IsValidSlug(slug string) bool {
	_, ok := c.bySlug[slug]
	return ok
}

// Entries returns all entries in registry order.
func (c *Catalog) Entries() []types.Entry {
	entries := make([]types.Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// PublishedEntries returns the published entries in registry order.
func (c *Catalog) PublishedEntries() []types.Entry {
	published := make([]types.Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		if entry.Meta().Status == types.StatusPublished {
			published = append(published, entry)
		}
	}
	return published
}

// EntryGroup is one category's entries, in registry order.
type EntryGroup struct {
	Category types.Category `json:"category"`
	Entries  []types.Entry  `json:"entries"`
}

// EntriesByCategory groups all entries, any status, by category. Groups
// appear in first-seen order as the registry is scanned, not in any
// canonical category order.
func (c *Catalog) EntriesByCategory() []EntryGroup {
	index := make(map[types.Category]int)
	var groups []EntryGroup
	for _, entry := range c.entries {
		category := entry.Meta().Category
		i, seen := index[category]
		if !seen {
			i = len(groups)
			index[category] = i
			groups = append(groups, EntryGroup{Category: category})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	return groups
}
