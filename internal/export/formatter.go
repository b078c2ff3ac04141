// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package export writes dashboard snapshots in various formats: a
// self-contained HTML page, raw JSON, or a Markdown briefing.
package export

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/fortlewis-ir/summit/internal/docs"
	"github.com/fortlewis-ir/summit/internal/view"
)

// Tab pairs a tab's listing info with its built layout.
type Tab struct {
	ID     string       `json:"id"`
	Label  string       `json:"label"`
	Phase  string       `json:"phase"`
	Layout *view.Layout `json:"layout"`
}

// Snapshot is a full dashboard capture: every tab's layout plus the
// deliverable inventory at generation time.
type Snapshot struct {
	Title       string       `json:"title"`
	GeneratedAt time.Time    `json:"generated_at"`
	Tabs        []Tab        `json:"tabs"`
	Downloads   []docs.Entry `json:"downloads"`
}

// Collect builds every registered tab and stamps deliverable availability
// from the store.
func Collect(store *docs.Store, title string, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{Title: title, GeneratedAt: now, Downloads: store.List()}
	for _, def := range view.Tabs() {
		layout, err := view.Build(def.ID)
		if err != nil {
			return nil, fmt.Errorf("building tab %s: %w", def.ID, err)
		}
		view.StampDownloads(layout, store.Available)
		snap.Tabs = append(snap.Tabs, Tab{ID: def.ID, Label: def.Label, Phase: def.Phase, Layout: layout})
	}
	return snap, nil
}

// Formatter writes a snapshot to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "html", "json", "markdown").
	Name() string

	// Ext returns the output file extension including the dot.
	Ext() string

	// Format writes the snapshot to w.
	Format(snap *Snapshot, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if
// not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// formatNames returns a comma-separated sorted list of registered formats.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	result := ""
	for i, n := range names {
		if i > 0 {
			result += ", "
		}
		result += n
	}
	return result
}
