// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortlewis-ir/summit/internal/config"
	"github.com/fortlewis-ir/summit/internal/view"
)

// newTestHandler builds a routed handler over a temp docs dir.
func newTestHandler(t *testing.T, opts config.Options) (http.Handler, string) {
	t.Helper()
	if opts.DocsDir == "" {
		opts.DocsDir = t.TempDir()
	}
	if opts.Title == "" {
		opts.Title = "Test Dashboard"
	}
	s, err := New(opts)
	require.NoError(t, err)
	return s.routes(), opts.DocsDir
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})
	rec := get(t, h, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestIndex_RendersShell(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{Title: "FLC Dashboard"})
	rec := get(t, h, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "FLC Dashboard")
	assert.Contains(t, rec.Body.String(), "cdn.plot.ly")
	assert.Contains(t, rec.Body.String(), "renderLayout")
}

func TestTabs_ListsAllInOrder(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})
	rec := get(t, h, "/api/tabs")
	require.Equal(t, http.StatusOK, rec.Code)

	var tabs []tabInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tabs))
	require.Len(t, tabs, 9)
	assert.Equal(t, "summary", tabs[0].ID)
	assert.Equal(t, "implementation", tabs[8].ID)
}

func TestTab_ReturnsLayout(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})
	rec := get(t, h, "/api/tabs/bcg")
	require.Equal(t, http.StatusOK, rec.Code)

	var layout view.Layout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))
	assert.Equal(t, "bcg", layout.Tab)
	assert.NotEmpty(t, layout.Blocks)
}

func TestTab_Unknown404(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})
	rec := get(t, h, "/api/tabs/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown tab")
}

func TestTab_DownloadAvailabilityStamped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "PESTLE_Executive_Summary.docx"), []byte("doc"), 0o600))

	h, _ := newTestHandler(t, config.Options{DocsDir: dir})
	rec := get(t, h, "/api/tabs/pestle")
	require.Equal(t, http.StatusOK, rec.Code)

	var layout view.Layout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))

	var downloads []view.Download
	for _, b := range layout.Blocks {
		if b.Type == view.BlockDownloads {
			downloads = b.Downloads
		}
	}
	require.Len(t, downloads, 2)
	assert.True(t, downloads[0].Available)  // file written above
	assert.False(t, downloads[1].Available) // pptx not generated
}

func TestDownloadList(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})
	rec := get(t, h, "/api/downloads")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 9)
}

func TestDownload_StreamsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SWOT_Matrix.pptx"), []byte("deck-bytes"), 0o600))

	h, _ := newTestHandler(t, config.Options{DocsDir: dir})
	rec := get(t, h, "/downloads/SWOT_Matrix.pptx")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deck-bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "presentationml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "10", rec.Header().Get("Content-Length"))
}

func TestDownload_UnknownAndMissing404(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})

	rec := get(t, h, "/downloads/not-registered.docx")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Registered but never generated.
	rec = get(t, h, "/downloads/SWOT_Matrix.pptx")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not generated")
}

func TestDownload_TraversalRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "..secret"), []byte("x"), 0o600))

	h, _ := newTestHandler(t, config.Options{DocsDir: dir})
	rec := get(t, h, "/downloads/..%2F..secret")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBasicAuth(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{Users: map[string]string{"admin": "flc2026"}})

	// No credentials.
	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")

	// Wrong password.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.SetBasicAuth("admin", "wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct credentials.
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.SetBasicAuth("admin", "flc2026")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNoAuthWhenNoUsers(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})
	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	h, _ := newTestHandler(t, config.Options{})
	rec := get(t, h, "/healthz")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
