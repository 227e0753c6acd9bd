package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/toolbridge/toolbridge/internal/metadata"
	"github.com/toolbridge/toolbridge/internal/tables"
	"github.com/toolbridge/toolbridge/internal/types"
)

type entriesResponse struct {
	Entries []types.EntryView `json:"entries"`
	Count   int               `json:"count"`
}

type groupResponse struct {
	Category string            `json:"category"`
	Entries  []types.EntryView `json:"entries"`
}

type tableResponse struct {
	Slug       string      `json:"slug"`
	Kind       tables.Kind `json:"kind"`
	Categories []string    `json:"categories"`
	Rows       interface{} `json:"rows"`
}

func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	meta := metadata.NewCatalogMetadata(
		len(s.catalog.Entries()),
		len(s.catalog.PublishedEntries()),
		len(s.tables.Slugs()),
	)
	s.writeJSON(w, http.StatusOK, meta)
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	var entries []types.Entry
	switch status := r.URL.Query().Get("status"); status {
	case "":
		entries = s.catalog.Entries()
	case string(types.StatusPublished):
		entries = s.catalog.PublishedEntries()
	default:
		s.writeError(w, http.StatusBadRequest, "unknown status filter: "+status)
		return
	}

	views := make([]types.EntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, types.ViewOf(entry))
	}
	s.writeJSON(w, http.StatusOK, entriesResponse{Entries: views, Count: len(views)})
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	entry, ok := s.catalog.Entry(slug)
	if !ok {
		s.writeError(w, http.StatusNotFound, "entry not found: "+slug)
		return
	}
	s.writeJSON(w, http.StatusOK, types.ViewOf(entry))
}

func (s *Server) handleEntriesByCategory(w http.ResponseWriter, r *http.Request) {
	var groups []groupResponse
	for _, group := range s.catalog.EntriesByCategory() {
		views := make([]types.EntryView, 0, len(group.Entries))
		for _, entry := range group.Entries {
			views = append(views, types.ViewOf(entry))
		}
		groups = append(groups, groupResponse{Category: string(group.Category), Entries: views})
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

func (s *Server) handlePairings(w http.ResponseWriter, r *http.Request) {
	var entries []types.Entry
	switch status := r.URL.Query().Get("status"); status {
	case "":
		entries = s.catalog.Entries()
	case string(types.StatusPublished):
		entries = s.catalog.PublishedEntries()
	default:
		s.writeError(w, http.StatusBadRequest, "unknown status filter: "+status)
		return
	}

	var views []types.EntryView
	for _, entry := range entries {
		if pairing, ok := entry.(*types.Comparison); ok {
			views = append(views, types.ViewOf(pairing))
		}
	}
	s.writeJSON(w, http.StatusOK, entriesResponse{Entries: views, Count: len(views)})
}

func (s *Server) handlePairing(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	pairing, ok := s.catalog.Pairing(slug)
	if !ok {
		s.writeError(w, http.StatusNotFound, "pairing not found: "+slug)
		return
	}
	s.writeJSON(w, http.StatusOK, types.ViewOf(pairing))
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	if table, ok := s.tables.Glossary(slug); ok {
		s.writeJSON(w, http.StatusOK, buildTableResponse(table, category, query))
		return
	}
	if table, ok := s.tables.CheatSheet(slug); ok {
		s.writeJSON(w, http.StatusOK, buildTableResponse(table, category, query))
		return
	}
	s.writeError(w, http.StatusNotFound, "table not found: "+slug)
}

func (s *Server) handleTableCategories(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if table, ok := s.tables.Glossary(slug); ok {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{"slug": slug, "categories": table.Categories()})
		return
	}
	if table, ok := s.tables.CheatSheet(slug); ok {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{"slug": slug, "categories": table.Categories()})
		return
	}
	s.writeError(w, http.StatusNotFound, "table not found: "+slug)
}

func buildTableResponse[R types.Row](t *tables.Table[R], category, query string) tableResponse {
	rows := t.Rows
	if category != "" {
		rows = tables.FilterByCategory(rows, category)
	}
	rows = tables.Search(rows, query)

	return tableResponse{
		Slug:       t.Slug,
		Kind:       t.Kind,
		Categories: t.Categories(),
		Rows:       rows,
	}
}
