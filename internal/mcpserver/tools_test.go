// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textOf extracts the text payload from a tool result.
func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestNew_RegistersTools(t *testing.T) {
	server := New("1.2.3", t.TempDir())
	assert.NotNil(t, server)
}

func TestHandleTabs(t *testing.T) {
	res, _, err := handleTabs(context.Background(), nil, TabsInput{})
	require.NoError(t, err)

	var tabs []map[string]string
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &tabs))
	require.Len(t, tabs, 9)
	assert.Equal(t, "summary", tabs[0]["id"])
}

func TestHandleTabs_PhaseFilter(t *testing.T) {
	res, _, err := handleTabs(context.Background(), nil, TabsInput{Phase: "phase 1"})
	require.NoError(t, err)

	var tabs []map[string]string
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &tabs))
	require.Len(t, tabs, 4)
	for _, tab := range tabs {
		assert.Equal(t, "Phase 1", tab["phase"])
	}
}

func TestHandleTab(t *testing.T) {
	res, _, err := handleTab(context.Background(), nil, TabInput{ID: "swot"})
	require.NoError(t, err)

	var layout map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &layout))
	assert.Equal(t, "swot", layout["tab"])
}

func TestHandleTab_Errors(t *testing.T) {
	_, _, err := handleTab(context.Background(), nil, TabInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")

	_, _, err = handleTab(context.Background(), nil, TabInput{ID: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available:")
	assert.Contains(t, err.Error(), "zonetowin")
}

func TestHandleKPIs(t *testing.T) {
	res, _, err := handleKPIs(context.Background(), nil, KPIsInput{})
	require.NoError(t, err)

	var kpis []map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &kpis))
	assert.Len(t, kpis, 12)
}

func TestHandleKPIs_CategoryFilter(t *testing.T) {
	res, _, err := handleKPIs(context.Background(), nil, KPIsInput{Category: "equity"})
	require.NoError(t, err)

	var kpis []map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &kpis))
	assert.Len(t, kpis, 2)

	_, _, err = handleKPIs(context.Background(), nil, KPIsInput{Category: "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no KPIs")
}

func TestHandleDeliverables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SWOT_Matrix.pptx"), []byte("deck"), 0o600))

	handler := makeHandleDeliverables(dir)
	res, _, err := handler(context.Background(), nil, DeliverablesInput{})
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &entries))
	require.Len(t, entries, 9)

	res, _, err = handler(context.Background(), nil, DeliverablesInput{Tab: "swot"})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0]["available"])
}

func TestHandleValidate_CleanData(t *testing.T) {
	res, _, err := handleValidate(context.Background(), nil, ValidateInput{})
	require.NoError(t, err)

	var out struct {
		Checked  int  `json:"checked"`
		Valid    bool `json:"valid"`
		Findings []any
	}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &out))
	assert.True(t, out.Valid)
	assert.Positive(t, out.Checked)
	assert.Empty(t, out.Findings)
}
