package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolbridge/toolbridge/internal/config"
)

func TestBuildServerEmbedded(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := buildServer(&config.Settings{}, logger)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tables/jj-git", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBuildServerExternalContentDir(t *testing.T) {
	dir := t.TempDir()
	doc := []byte(`
slug: demo
kind: glossary
categories: [ONE]
rows:
  - id: one-1
    category: ONE
    from: a
    to: b
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.yaml"), doc, 0644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	settings := &config.Settings{ContentDir: dir}

	srv, err := buildServer(settings, logger)
	require.NoError(t, err)
	handler := srv.Routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tables/demo", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tables/jj-git", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
