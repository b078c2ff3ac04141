// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"strconv"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "implementation",
		Label: "Implementation",
		Phase: "Phase 2",
		Order: 9,
		Build: buildImplementation,
	})
}

func buildImplementation() *Layout {
	attr := data.Attributions["Implementation Tracking"]

	var totalAllocated, totalSpent int
	for _, b := range data.ResourceAllocation {
		totalAllocated += b.Allocated
		totalSpent += b.Spent
	}
	active := 0
	avgCompletion := 0
	for _, ini := range data.Initiatives {
		if ini.Status == data.StatusInProgress {
			active++
		}
		avgCompletion += ini.CompletionPct
	}
	avgCompletion /= len(data.Initiatives)

	return &Layout{
		Tab:   "implementation",
		Title: "Implementation",
		Blocks: []Block{
			{Type: BlockHeading, Text: "Phase 2 Implementation Tracking"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0]},
			{Type: BlockDescription, Text: "Live tracking of the fifteen strategic initiatives spun out of the Phase 1 " +
				"analyses: status, completion, checkpoint milestones, and budget burn by category."},
			{Type: BlockStatCards, Stats: []StatCard{
				{Label: "Initiatives", Value: strconv.Itoa(len(data.Initiatives)), Sub: fmt.Sprintf("%d in progress", active), Accent: Navy},
				{Label: "Avg Completion", Value: fmt.Sprintf("%d%%", avgCompletion), Accent: Blue},
				{Label: "Budget Allocated", Value: "$" + comma(totalAllocated), Accent: BlueLight},
				{Label: "Budget Spent", Value: "$" + comma(totalSpent), Sub: fmt.Sprintf("%.0f%% of allocation", 100*float64(totalSpent)/float64(totalAllocated)), Accent: Gold},
			}},
			{Type: BlockChartRow, Charts: []*Chart{initiativeCompletionChart(), budgetBurnChart()}},
			{Type: BlockTable, Title: "Initiative Register", Table: initiativeTable()},
			{Type: BlockTable, Title: "Implementation Checkpoints", Table: checkpointTable()},
		},
	}
}

func initiativeCompletionChart() *Chart {
	n := len(data.Initiatives)
	names := make([]string, n)
	pct := make([]float64, n)
	colors := make([]string, n)
	labels := make([]string, n)
	for i, ini := range data.Initiatives {
		j := n - 1 - i
		names[j] = fmt.Sprintf("%s %s", ini.ID, ini.Initiative)
		pct[j] = float64(ini.CompletionPct)
		labels[j] = fmt.Sprintf("%d%%", ini.CompletionPct)
		if c, ok := StatusColors[ini.Status]; ok {
			colors[j] = c
		} else {
			colors[j] = ColorNeutral // Planning and other interim statuses
		}
	}
	return &Chart{
		Title:  "Initiative Completion",
		Height: 520,
		Traces: []Trace{hbarTrace(names, pct, colors, labels)},
		Layout: map[string]any{
			"xaxis":  map[string]any{"range": []float64{0, 110}, "title": map[string]any{"text": "% Complete"}},
			"margin": map[string]any{"l": 380},
		},
	}
}

func budgetBurnChart() *Chart {
	n := len(data.ResourceAllocation)
	names := make([]string, n)
	allocated := make([]float64, n)
	spent := make([]float64, n)
	for i, b := range data.ResourceAllocation {
		j := n - 1 - i
		names[j] = b.Category
		allocated[j] = float64(b.Allocated)
		spent[j] = float64(b.Spent)
	}
	bar := func(name string, x []float64, color string) Trace {
		return Trace{
			"type":        "bar",
			"orientation": "h",
			"name":        name,
			"y":           names,
			"x":           x,
			"marker":      map[string]any{"color": color},
		}
	}
	return &Chart{
		Title:  "Budget: Allocated vs Spent",
		Height: 420,
		Traces: []Trace{
			bar("Allocated", allocated, BluePale),
			bar("Spent", spent, Navy),
		},
		Layout: map[string]any{
			"barmode": "overlay",
			"xaxis":   map[string]any{"title": map[string]any{"text": "USD"}},
			"margin":  map[string]any{"l": 220},
			"legend":  horizontalLegend(),
		},
	}
}

func initiativeTable() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "ID"},
			{Title: "Initiative"},
			{Title: "Framework"},
			{Title: "Priority", Align: "center"},
			{Title: "Status", Align: "center"},
			{Title: "Complete", Align: "right"},
			{Title: "Target", Align: "center"},
			{Title: "Owner"},
		},
	}
	for _, ini := range data.Initiatives {
		tbl.Rows = append(tbl.Rows, Row{Cells: []string{
			ini.ID,
			ini.Initiative,
			ini.Framework,
			ini.Priority,
			ini.Status,
			fmt.Sprintf("%d%%", ini.CompletionPct),
			ini.TargetDate,
			ini.Owner,
		}})
	}
	return tbl
}

func checkpointTable() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "ID"},
			{Title: "Milestone"},
			{Title: "Target", Align: "center"},
			{Title: "Status", Align: "center"},
			{Title: "Notes"},
		},
	}
	for _, m := range data.Phase2Milestones {
		tbl.Rows = append(tbl.Rows, Row{Cells: []string{m.ID, m.Milestone, m.TargetDate, m.Status, m.Notes}})
	}
	return tbl
}
