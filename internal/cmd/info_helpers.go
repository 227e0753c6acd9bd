package cmd

import (
	"log"

	"github.com/toolbridge/toolbridge/internal/catalog"
	"github.com/toolbridge/toolbridge/internal/tables"
)

// loadCatalog loads the embedded entry registry
func loadCatalog() *catalog.Catalog {
	c, err := catalog.Default()
	if err != nil {
		log.Fatalf("Failed to load entry catalog: %v", err)
	}
	return c
}

// loadTables loads the embedded reference tables
func loadTables() *tables.Store {
	store, err := tables.Default()
	if err != nil {
		log.Fatalf("Failed to load reference tables: %v", err)
	}
	return store
}
