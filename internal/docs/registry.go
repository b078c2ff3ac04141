// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package docs manages the pre-generated deliverable files (DOCX and PPTX
// reports) served by the download buttons. Deliverables are declared in a
// built-in registry; a manifest.toml in the docs directory can replace the
// registry for custom document sets. Files are only offered when they
// actually exist on disk.
package docs

import "errors"

// Deliverable is one downloadable report tied to a dashboard tab.
type Deliverable struct {
	Name  string `toml:"name"`  // file name inside the docs directory
	Label string `toml:"label"` // button text
	Tab   string `toml:"tab"`   // owning tab ID
}

// ErrUnknownDeliverable indicates a requested file is not in the registry.
var ErrUnknownDeliverable = errors.New("unknown deliverable")

// ErrNotAvailable indicates a registered deliverable has not been generated.
var ErrNotAvailable = errors.New("deliverable not generated")

// defaults is the built-in deliverable set matching the Phase 1 report
// pipeline's output names.
var defaults = []Deliverable{
	{Name: "PESTLE_Executive_Summary.docx", Label: "Executive Summary (DOCX)", Tab: "pestle"},
	{Name: "PESTLE_Slide_Deck.pptx", Label: "Slide Deck (PPTX)", Tab: "pestle"},
	{Name: "Porters_Executive_Summary.docx", Label: "Executive Summary (DOCX)", Tab: "porters"},
	{Name: "Porters_Slide_Deck.pptx", Label: "Slide Deck (PPTX)", Tab: "porters"},
	{Name: "Gray_Executive_Summary.docx", Label: "Executive Summary (DOCX)", Tab: "gray"},
	{Name: "Gray_Slide_Deck.pptx", Label: "Slide Deck (PPTX)", Tab: "gray"},
	{Name: "BCG_Executive_Summary.docx", Label: "Executive Summary (DOCX)", Tab: "bcg"},
	{Name: "BCG_Slide_Deck.pptx", Label: "Slide Deck (PPTX)", Tab: "bcg"},
	{Name: "SWOT_Matrix.pptx", Label: "SWOT Matrix (PPTX)", Tab: "swot"},
}

// Defaults returns a copy of the built-in deliverable registry.
func Defaults() []Deliverable {
	out := make([]Deliverable, len(defaults))
	copy(out, defaults)
	return out
}
