// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "pestle",
		Label: "PESTLE Analysis",
		Phase: "Phase 1",
		Order: 2,
		Build: buildPESTLE,
	})
}

func buildPESTLE() *Layout {
	attr := data.Attributions["PESTLE Analysis"]

	cards := make([]Card, len(data.PESTLE))
	for i, cat := range data.PESTLE {
		cards[i] = Card{
			Title:  cat.Name,
			Tag:    fmt.Sprintf("%d factors", len(cat.Factors)),
			Accent: impactColor(cat.Impact),
			Badges: []Badge{
				{Text: "Impact: " + cat.Impact, Color: impactColor(cat.Impact)},
				{Text: "Trend: " + cat.Trend, Color: trendColor(cat.Trend)},
			},
			Lists: []TitledList{
				{Title: "Key Factors", Items: cat.Factors},
				{Title: "Opportunities", Color: ColorPositive, Items: cat.Opportunities},
			},
		}
	}

	return &Layout{
		Tab:   "pestle",
		Title: "PESTLE Analysis",
		Blocks: []Block{
			{Type: BlockHeading, Text: "PESTLE Analysis: External Macro-Environment"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0] + "; " + attr.Files[1]},
			{Type: BlockDescription, Text: data.FrameworkDescriptions["PESTLE"]},
			// Availability is stamped by the server from the deliverable
			// registry; builders only know the names.
			{Type: BlockDownloads, Downloads: []Download{
				{Label: "Executive Summary (DOCX)", Name: "PESTLE_Executive_Summary.docx"},
				{Label: "Slide Deck (PPTX)", Name: "PESTLE_Slide_Deck.pptx"},
			}},
			{Type: BlockChartRow, Charts: []*Chart{pestleRadarChart(), pestleImpactChart()}},
			{Type: BlockCards, Cards: cards, Columns: 2},
			{Type: BlockInsights, Title: "Key Takeaways", Items: []string{
				"Economic factors carry the highest impact (5/5): funding volatility and tuition sensitivity shape every other decision.",
				"Political and Social forces are High impact with unfavorable or mixed trends, requiring active mitigation.",
				"Technological and Environmental categories trend toward opportunity: the AI Institute and sustainability positioning are the clearest openings.",
			}},
		},
	}
}

func pestleRadarChart() *Chart {
	names := make([]string, len(data.PESTLE))
	scores := make([]float64, len(data.PESTLE))
	for i, cat := range data.PESTLE {
		names[i] = cat.Name
		scores[i] = float64(cat.ImpactScore)
	}
	return &Chart{
		Title:  "Impact Severity by Category (1-5)",
		Height: 420,
		Traces: []Trace{radarTrace(names, scores, Blue, "rgba(0,102,179,0.18)", Navy)},
		Layout: radarLayout(5),
	}
}

func pestleImpactChart() *Chart {
	names := make([]string, len(data.PESTLE))
	scores := make([]float64, len(data.PESTLE))
	colors := make([]string, len(data.PESTLE))
	labels := make([]string, len(data.PESTLE))
	for i, cat := range data.PESTLE {
		names[i] = cat.Name
		scores[i] = float64(cat.ImpactScore)
		colors[i] = impactColor(cat.Impact)
		labels[i] = cat.Impact
	}
	return &Chart{
		Title:  "Impact Rating by Category",
		Height: 420,
		Traces: []Trace{barTrace(names, scores, colors, labels)},
		Layout: map[string]any{
			"yaxis": map[string]any{"range": []float64{0, 5.5}, "title": map[string]any{"text": "Impact Score"}},
		},
	}
}
