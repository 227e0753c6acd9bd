package metadata

import (
	"time"
)

// APIVersion is the version of the JSON shapes served by the API and
// emitted by the CLI's structured formats. Bump on breaking changes.
const APIVersion = "0.1"

// CatalogMetadata describes the loaded content snapshot
type CatalogMetadata struct {
	Timestamp      string `json:"timestamp"`
	APIVersion     string `json:"api_version"`
	EntryCount     int    `json:"entry_count"`
	PublishedCount int    `json:"published_count"`
	TableCount     int    `json:"table_count"`
}

// NewCatalogMetadata creates a metadata record for the current snapshot
func NewCatalogMetadata(entryCount, publishedCount, tableCount int) *CatalogMetadata {
	return &CatalogMetadata{
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		APIVersion:     APIVersion,
		EntryCount:     entryCount,
		PublishedCount: publishedCount,
		TableCount:     tableCount,
	}
}
