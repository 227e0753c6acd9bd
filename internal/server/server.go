// Package server exposes the entry registry and reference tables as a
// read-only JSON API. It holds no state beyond the immutable snapshots, so
// every handler is safe for concurrent requests.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/toolbridge/toolbridge/internal/catalog"
	"github.com/toolbridge/toolbridge/internal/tables"
)

// Server bundles the catalog and table snapshots behind HTTP handlers.
type Server struct {
	catalog *catalog.Catalog
	tables  *tables.Store
	logger  *slog.Logger
}

// New builds a server over the embedded content snapshots.
func New(logger *slog.Logger) (*Server, error) {
	store, err := tables.Default()
	if err != nil {
		return nil, err
	}
	return NewWithTables(logger, store)
}

// NewWithTables builds a server over the embedded entry catalog and an
// externally loaded table store.
func NewWithTables(logger *slog.Logger, store *tables.Store) (*Server, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return &Server{catalog: c, tables: store, logger: logger}, nil
}

// Routes returns the API router.
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/meta", s.handleMeta)
		r.Get("/entries", s.handleEntries)
		r.Get("/entries/by-category", s.handleEntriesByCategory)
		r.Get("/entries/{slug}", s.handleEntry)

		// Legacy comparison-only views
		r.Get("/pairings", s.handlePairings)
		r.Get("/pairings/{slug}", s.handlePairing)

		r.Get("/tables/{slug}", s.handleTable)
		r.Get("/tables/{slug}/categories", s.handleTableCategories)
	})

	return router
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
