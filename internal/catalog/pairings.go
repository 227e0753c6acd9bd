package catalog

import (
	"github.com/toolbridge/toolbridge/internal/types"
)

// Legacy pairing views. Callers that predate single-tool entries see the
// registry narrowed to the comparison variant. These are thin filters over
// the registry operations, never a second copy of the data.

// Pairing looks up a comparison entry by slug.
//
// Deprecated: use Entry and narrow with a type switch.
func (c *Catalog) Pairing(slug string) (*types.Comparison, bool) {
	entry, ok := c.bySlug[slug]
	if !ok {
		return nil, false
	}
	pairing, ok := entry.(*types.Comparison)
	return pairing, ok
}

// IsValidPairingSlug reports whether slug names a comparison entry.
//
// Deprecated: use IsValidSlug.
func (c *Catalog) IsValidPairingSlug(slug string) bool {
	_, ok := c.Pairing(slug)
	return ok
}

// PublishedPairings returns the published comparison entries in registry
// order.
//
// Deprecated: use PublishedEntries.
func (c *Catalog) PublishedPairings() []*types.Comparison {
	var pairings []*types.Comparison
	for _, entry := range c.PublishedEntries() {
		if pairing, ok := entry.(*types.Comparison); ok {
			pairings = append(pairings, pairing)
		}
	}
	return pairings
}

// PairingGroup is one category's comparison entries, in registry order.
type PairingGroup struct {
	Category types.Category      `json:"category"`
	Pairings []*types.Comparison `json:"pairings"`
}

// PairingsByCategory groups comparison entries by category, groups in
// first-seen order over the comparison subset.
//
// Deprecated: use EntriesByCategory.
func (c *Catalog) PairingsByCategory() []PairingGroup {
	var groups []PairingGroup
	for _, group := range c.EntriesByCategory() {
		var pairings []*types.Comparison
		for _, entry := range group.Entries {
			if pairing, ok := entry.(*types.Comparison); ok {
				pairings = append(pairings, pairing)
			}
		}
		if len(pairings) > 0 {
			groups = append(groups, PairingGroup{Category: group.Category, Pairings: pairings})
		}
	}
	return groups
}
