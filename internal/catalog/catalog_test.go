package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolbridge/toolbridge/internal/types"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err, "embedded catalog must load")
	require.NotEmpty(t, c.Entries())
}

func TestEntryLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	entry, ok := c.Entry("jj-git")
	require.True(t, ok, "jj-git must exist")
	assert.Equal(t, "jj-git", entry.Slug())
	assert.Equal(t, types.CategoryVersionControl, entry.Meta().Category)
	assert.Equal(t, 12, entry.Meta().Steps)
	assert.Equal(t, types.StatusPublished, entry.Meta().Status)

	comparison, ok := entry.(*types.Comparison)
	require.True(t, ok, "jj-git is a comparison entry")
	assert.Equal(t, "Git", comparison.From.Name)
	assert.Equal(t, "Jujutsu", comparison.To.Name)
}

func TestEntryLookupRoundTrip(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, entry := range c.Entries() {
		found, ok := c.Entry(entry.Slug())
		require.True(t, ok, "slug %s must resolve", entry.Slug())
		assert.Equal(t, entry.Slug(), found.Slug())
	}
}

func TestEntryNotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, ok := c.Entry("does-not-exist")
	assert.False(t, ok)
	assert.False(t, c.IsValidSlug("does-not-exist"))
}

func TestIsValidSlugMatchesLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	probes := []string{"jj-git", "tmux", "zio-cats", "does-not-exist", "", "JJ-GIT"}
	for _, slug := range probes {
		_, ok := c.Entry(slug)
		assert.Equal(t, ok, c.IsValidSlug(slug), "IsValidSlug(%q) must match Entry lookup", slug)
	}
}

func TestPublishedEntries(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	published := c.PublishedEntries()
	require.NotEmpty(t, published)

	for _, entry := range published {
		assert.Equal(t, types.StatusPublished, entry.Meta().Status)
	}

	// Registry order is preserved: published entries appear in the same
	// relative order as in the full registry.
	position := make(map[string]int)
	for i, entry := range c.Entries() {
		position[entry.Slug()] = i
	}
	for i := 1; i < len(published); i++ {
		assert.Less(t, position[published[i-1].Slug()], position[published[i].Slug()],
			"published entries out of registry order")
	}

	// And nothing published is missing.
	count := 0
	for _, entry := range c.Entries() {
		if entry.Meta().Status == types.StatusPublished {
			count++
		}
	}
	assert.Len(t, published, count)
}

func TestEntriesByCategoryPartition(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	groups := c.EntriesByCategory()
	require.NotEmpty(t, groups)

	seen := make(map[string]bool)
	total := 0
	for _, group := range groups {
		for _, entry := range group.Entries {
			assert.Equal(t, group.Category, entry.Meta().Category)
			assert.False(t, seen[entry.Slug()], "entry %s in two groups", entry.Slug())
			seen[entry.Slug()] = true
			total++
		}
	}
	assert.Equal(t, len(c.Entries()), total, "groups must partition the registry")
}

func TestEntriesByCategoryFirstSeenOrder(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	// Group order follows first occurrence in the registry, not any
	// canonical category order.
	firstSeen := []types.Category{}
	met := make(map[types.Category]bool)
	for _, entry := range c.Entries() {
		category := entry.Meta().Category
		if !met[category] {
			met[category] = true
			firstSeen = append(firstSeen, category)
		}
	}

	groups := c.EntriesByCategory()
	require.Len(t, groups, len(firstSeen))
	for i, group := range groups {
		assert.Equal(t, firstSeen[i], group.Category)
	}
}

func TestNewRejectsDuplicateSlug(t *testing.T) {
	a := &types.SingleTool{
		EntryMeta: types.EntryMeta{Slug: "dup", Category: types.CategoryOther, Steps: 1, EstimatedTime: "5 min", Status: types.StatusPublished},
		Tool:      types.Tool{Name: "A"},
	}
	b := &types.Comparison{
		EntryMeta: types.EntryMeta{Slug: "dup", Category: types.CategoryOther, Steps: 1, EstimatedTime: "5 min", Status: types.StatusPublished},
		From:      types.Tool{Name: "B"},
		To:        types.Tool{Name: "C"},
	}

	_, err := New([]types.Entry{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate entry slug")
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	entry := &types.SingleTool{
		EntryMeta: types.EntryMeta{Slug: "x", Category: "Databases", Steps: 1, EstimatedTime: "5 min", Status: types.StatusPublished},
		Tool:      types.Tool{Name: "X"},
	}

	_, err := New([]types.Entry{entry})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}
