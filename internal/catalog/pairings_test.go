package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolbridge/toolbridge/internal/types"
)

func TestPairingLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	pairing, ok := c.Pairing("jj-git")
	require.True(t, ok)
	assert.Equal(t, "jj-git", pairing.Slug())
	assert.Equal(t, "Jujutsu", pairing.To.Name)
}

func TestPairingExcludesSingleTool(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	// tmux exists in the registry but is not a pairing.
	require.True(t, c.IsValidSlug("tmux"))

	_, ok := c.Pairing("tmux")
	assert.False(t, ok)
	assert.False(t, c.IsValidPairingSlug("tmux"))
}

func TestPairingNotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, ok := c.Pairing("does-not-exist")
	assert.False(t, ok)
	assert.False(t, c.IsValidPairingSlug("does-not-exist"))
}

func TestPublishedPairingsDerivation(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	// The legacy view must be exactly the comparison subset of the
	// registry-wide result, in the same order.
	var want []string
	for _, entry := range c.PublishedEntries() {
		if _, ok := entry.(*types.Comparison); ok {
			want = append(want, entry.Slug())
		}
	}

	var got []string
	for _, pairing := range c.PublishedPairings() {
		got = append(got, pairing.Slug())
	}

	assert.Equal(t, want, got)
}

func TestPairingsByCategoryDerivation(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	groups := c.PairingsByCategory()
	require.NotEmpty(t, groups)

	for _, group := range groups {
		require.NotEmpty(t, group.Pairings, "empty groups are dropped")
		for _, pairing := range group.Pairings {
			assert.Equal(t, group.Category, pairing.Meta().Category)
			// Every pairing must be consistently present in the
			// registry-wide grouping as well.
			found, ok := c.Entry(pairing.Slug())
			require.True(t, ok)
			assert.Equal(t, types.KindComparison, found.Kind())
		}
	}
}
