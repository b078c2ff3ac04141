// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "swot",
		Label: "SWOT Synthesis",
		Phase: "Phase 2",
		Order: 6,
		Build: buildSWOT,
	})
}

func buildSWOT() *Layout {
	attr := data.Attributions["SWOT Analysis"]

	cards := make([]Card, len(data.SWOT))
	for i, q := range data.SWOT {
		items := make([]CardItem, len(q.Items))
		for j, it := range q.Items {
			items[j] = CardItem{Title: it.Title, Detail: it.Detail, Source: it.Source}
		}
		cards[i] = Card{
			Title:  q.Name,
			Icon:   q.Icon,
			Tag:    fmt.Sprintf("%d findings", len(q.Items)),
			Accent: SWOTColors[q.Name],
			Items:  items,
		}
	}

	return &Layout{
		Tab:   "swot",
		Title: "SWOT Synthesis",
		Blocks: []Block{
			{Type: BlockHeading, Text: "SWOT Analysis: Phase 1 Synthesis"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0]},
			{Type: BlockDescription, Text: "This SWOT matrix consolidates findings from all Phase 1 frameworks. " +
				"Every entry carries an attribution to the analysis it came from, so each claim can be traced " +
				"back to PESTLE, Porter's, Gray Associates, the BCG Matrix, or institutional data."},
			{Type: BlockDownloads, Downloads: []Download{
				{Label: "SWOT Matrix (PPTX)", Name: "SWOT_Matrix.pptx"},
			}},
			{Type: BlockChartRow, Charts: []*Chart{swotBalanceChart()}},
			{Type: BlockCards, Cards: cards, Columns: 2},
			{Type: BlockInsights, Title: "Synthesis Takeaways", Items: []string{
				"The strongest strategic assets are mission-based (Native American mission, location, small classes) rather than program-based, so they are durable but hard to monetize directly.",
				"Weaknesses concentrate in enrollment trajectory and retention equity gaps, which the Productivity Zone investments target first.",
				"The largest opportunities (graduate growth, online delivery, AI Institute) all require capabilities the institution is still building.",
				"Threats are dominated by forces outside institutional control; scenario planning in Zone to Win hedges against them.",
			}},
		},
	}
}

func swotBalanceChart() *Chart {
	names := make([]string, len(data.SWOT))
	counts := make([]float64, len(data.SWOT))
	colors := make([]string, len(data.SWOT))
	labels := make([]string, len(data.SWOT))
	for i, q := range data.SWOT {
		names[i] = q.Name
		counts[i] = float64(len(q.Items))
		colors[i] = SWOTColors[q.Name]
		labels[i] = fmt.Sprintf("%d", len(q.Items))
	}
	return &Chart{
		Title:  "Findings per Quadrant",
		Height: 320,
		Traces: []Trace{barTrace(names, counts, colors, labels)},
		Layout: map[string]any{
			"yaxis": map[string]any{"title": map[string]any{"text": "Findings"}, "dtick": 1},
		},
	}
}
