// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fortlewis-ir/summit/internal/data"
	"github.com/fortlewis-ir/summit/internal/docs"
	"github.com/fortlewis-ir/summit/internal/validate"
	"github.com/fortlewis-ir/summit/internal/view"
)

// TabsInput is the input schema for the tabs listing tool.
type TabsInput struct {
	Phase string `json:"phase,omitempty" jsonschema:"Filter tabs by project phase (e.g. Phase 1)"`
}

// TabInput is the input schema for the single-tab tool.
type TabInput struct {
	ID string `json:"id" jsonschema:"Tab ID (e.g. summary, pestle, bcg, roadmap)"`
}

// KPIsInput is the input schema for the KPI tool.
type KPIsInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter KPIs by category (Enrollment, Retention, Equity, Growth, Outcomes, Portfolio Health)"`
}

// DeliverablesInput is the input schema for the deliverables tool.
type DeliverablesInput struct {
	Tab string `json:"tab,omitempty" jsonschema:"Filter deliverables by owning tab ID"`
}

// ValidateInput is the input schema for the data check tool.
type ValidateInput struct{}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all summit tools to the MCP server.
func registerTools(server *mcp.Server, docsDir string) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tabs",
		Description: "List the dashboard tabs with their IDs, labels, and project phases.",
		Annotations: readOnly,
	}, handleTabs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tab",
		Description: "Return one tab's full layout (stat cards, chart configs, tables, insights) as JSON.",
		Annotations: readOnly,
	}, handleTab)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "kpis",
		Description: "Return the strategic KPIs with baseline, Year 1, Year 2, and stretch targets.",
		Annotations: readOnly,
	}, handleKPIs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "deliverables",
		Description: "List the downloadable report files and whether each has been generated.",
		Annotations: readOnly,
	}, makeHandleDeliverables(docsDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Run the data store consistency checks and report any findings.",
		Annotations: readOnly,
	}, handleValidate)
}

// textResult wraps marshaled JSON in an MCP text content result.
func textResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}, nil, nil
}

func handleTabs(_ context.Context, _ *mcp.CallToolRequest, input TabsInput) (*mcp.CallToolResult, any, error) {
	type tabInfo struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Phase string `json:"phase"`
	}
	var out []tabInfo
	for _, d := range view.Tabs() {
		if input.Phase != "" && !strings.EqualFold(d.Phase, input.Phase) {
			continue
		}
		out = append(out, tabInfo{ID: d.ID, Label: d.Label, Phase: d.Phase})
	}
	return textResult(out)
}

func handleTab(_ context.Context, _ *mcp.CallToolRequest, input TabInput) (*mcp.CallToolResult, any, error) {
	if input.ID == "" {
		return nil, nil, fmt.Errorf("id is required")
	}
	layout, err := view.Build(input.ID)
	if err != nil {
		ids := make([]string, 0, len(view.Tabs()))
		for _, d := range view.Tabs() {
			ids = append(ids, d.ID)
		}
		return nil, nil, fmt.Errorf("%v (available: %s)", err, strings.Join(ids, ", "))
	}
	return textResult(layout)
}

func handleKPIs(_ context.Context, _ *mcp.CallToolRequest, input KPIsInput) (*mcp.CallToolResult, any, error) {
	var out []data.RoadmapKPI
	for _, k := range data.RoadmapKPIs {
		if input.Category != "" && !strings.EqualFold(k.Category, input.Category) {
			continue
		}
		out = append(out, k)
	}
	if input.Category != "" && len(out) == 0 {
		return nil, nil, fmt.Errorf("no KPIs in category %q", input.Category)
	}
	return textResult(out)
}

func makeHandleDeliverables(docsDir string) func(context.Context, *mcp.CallToolRequest, DeliverablesInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DeliverablesInput) (*mcp.CallToolResult, any, error) {
		store, err := docs.NewStore(docsDir)
		if err != nil {
			return nil, nil, fmt.Errorf("docs store: %w", err)
		}
		if input.Tab != "" {
			return textResult(store.ForTab(input.Tab))
		}
		return textResult(store.List())
	}
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, _ ValidateInput) (*mcp.CallToolResult, any, error) {
	result := validate.DataStore()
	type finding struct {
		Record     string `json:"record"`
		Field      string `json:"field,omitempty"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion,omitempty"`
	}
	out := struct {
		Checked  int       `json:"checked"`
		Valid    bool      `json:"valid"`
		Findings []finding `json:"findings"`
	}{Checked: result.Checked, Valid: result.Valid(), Findings: []finding{}}
	for _, f := range result.Findings {
		out.Findings = append(out.Findings, finding{
			Record: f.Record, Field: f.Field, Message: f.Message, Suggestion: f.Suggestion,
		})
	}
	return textResult(out)
}
