// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortlewis-ir/summit/internal/docs"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SWOT_Matrix.pptx"), []byte("deck"), 0o600))

	store, err := docs.NewStore(dir)
	require.NoError(t, err)

	snap, err := Collect(store, "Test Dashboard", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return snap
}

func TestCollect_AllTabsWithAvailability(t *testing.T) {
	snap := testSnapshot(t)

	require.Len(t, snap.Tabs, 9)
	assert.Equal(t, "summary", snap.Tabs[0].ID)
	assert.Len(t, snap.Downloads, 9)

	// SWOT deliverable exists; availability must be stamped into the layout.
	var swot *Tab
	for i := range snap.Tabs {
		if snap.Tabs[i].ID == "swot" {
			swot = &snap.Tabs[i]
		}
	}
	require.NotNil(t, swot)
	found := false
	for _, b := range swot.Layout.Blocks {
		for _, d := range b.Downloads {
			if d.Name == "SWOT_Matrix.pptx" {
				found = true
				assert.True(t, d.Available)
			}
		}
	}
	assert.True(t, found)
}

func TestGetFormatter(t *testing.T) {
	for _, name := range []string{"html", "json", "markdown"} {
		f, err := GetFormatter(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.Name())
	}

	_, err := GetFormatter("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available:")
	assert.Contains(t, err.Error(), "markdown")
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(snap, &buf))

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Test Dashboard", decoded.Title)
	assert.Len(t, decoded.Tabs, 9)
}

func TestHTMLFormatter_SelfContainedPage(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, (&HTMLFormatter{}).Format(snap, &buf))
	out := buf.String()

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Test Dashboard")
	assert.Contains(t, out, "var SNAPSHOT =")
	assert.Contains(t, out, "cdn.plot.ly")
	// Layout data must be inlined, not fetched.
	assert.Contains(t, out, "Executive Summary")
	assert.NotContains(t, out, "api/tabs")
}

func TestMarkdownFormatter_Briefing(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Format(snap, &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Test Dashboard"))
	assert.Contains(t, out, "## Fort Lewis College | Academic Portfolio Optimization")
	assert.Contains(t, out, "Strategic Headlines")
	assert.Contains(t, out, "*Chart omitted:")
	// Table rendering with header separator.
	assert.Contains(t, out, "Program | Enrollment")
	assert.Contains(t, out, "--- | ---")
	// Deliverable states.
	assert.Contains(t, out, "`SWOT_Matrix.pptx` (available)")
	assert.Contains(t, out, "(not generated)")
}

func TestFormatterExtensions(t *testing.T) {
	assert.Equal(t, ".html", (&HTMLFormatter{}).Ext())
	assert.Equal(t, ".json", (&JSONFormatter{}).Ext())
	assert.Equal(t, ".md", (&MarkdownFormatter{}).Ext())
}
