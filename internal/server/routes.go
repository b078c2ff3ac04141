// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fortlewis-ir/summit/internal/docs"
	"github.com/fortlewis-ir/summit/internal/view"
)

// routes builds the full router with middleware applied.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	if len(s.opts.Users) > 0 {
		r.Use(basicAuth(s.opts.Users))
	}

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/tabs", s.handleTabs)
	r.Get("/api/tabs/{id}", s.handleTab)
	r.Get("/api/downloads", s.handleDownloadList)
	r.Get("/downloads/{name}", s.handleDownload)
	return r
}

// tabInfo is the listing entry for one tab.
type tabInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Phase string `json:"phase"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTabs(w http.ResponseWriter, _ *http.Request) {
	defs := view.Tabs()
	out := make([]tabInfo, len(defs))
	for i, d := range defs {
		out[i] = tabInfo{ID: d.ID, Label: d.Label, Phase: d.Phase}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	layout, err := view.Build(id)
	if err != nil {
		if errors.Is(err, view.ErrUnknownTab) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("unknown tab %q", id))
			return
		}
		writeError(w, http.StatusInternalServerError, "building tab layout")
		return
	}
	view.StampDownloads(layout, s.docs.Available)
	writeJSON(w, http.StatusOK, layout)
}

func (s *Server) handleDownloadList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.docs.List())
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rc, size, err := s.docs.Open(name)
	if err != nil {
		switch {
		case errors.Is(err, docs.ErrUnknownDeliverable):
			writeError(w, http.StatusNotFound, "unknown deliverable")
		case errors.Is(err, docs.ErrNotAvailable):
			writeError(w, http.StatusNotFound, "deliverable not generated yet")
		default:
			writeError(w, http.StatusInternalServerError, "opening deliverable")
		}
		return
	}
	defer rc.Close() //nolint:errcheck // best-effort close

	w.Header().Set("Content-Type", docs.ContentType(name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", size))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := io.Copy(w, rc); err != nil {
		slog.Warn("streaming deliverable", "name", name, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
