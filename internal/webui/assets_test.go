// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package webui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererJS_TableSortWiring(t *testing.T) {
	// Headers toggle sort direction on click.
	assert.Contains(t, RendererJS, `th.addEventListener("click"`)
	assert.Contains(t, RendererJS, "sortAsc = sortCol === i ? !sortAsc : true")

	// Numeric-aware comparison with formatted-cell cleanup.
	assert.Contains(t, RendererJS, "function cellSortValue")
	assert.Contains(t, RendererJS, "function compareCells")

	// Note rows are grouped with their data row so sorting keeps them
	// attached.
	assert.Contains(t, RendererJS, "group.trs.push(nr)")
}

func TestRendererJS_AppliesCellColors(t *testing.T) {
	assert.Contains(t, RendererJS, "row.colors[i]")
	assert.Contains(t, RendererJS, "td.style.color")
}

func TestCSS_MarksSortableHeaders(t *testing.T) {
	assert.Contains(t, CSS, "cursor: pointer")
	assert.Contains(t, CSS, "th.sort-asc::after")
	assert.Contains(t, CSS, "th.sort-desc::after")
}

func TestRendererJS_IsPlainES5(t *testing.T) {
	// The renderer is inlined into a Go raw string and served verbatim, so
	// it must avoid syntax older engines reject.
	assert.False(t, strings.Contains(RendererJS, "=>"), "arrow functions")
	assert.False(t, strings.Contains(RendererJS, "const "), "const declarations")
	assert.False(t, strings.Contains(RendererJS, "let "), "let declarations")
}
