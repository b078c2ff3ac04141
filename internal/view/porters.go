// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "porters",
		Label: "Porter's Five Forces",
		Phase: "Phase 1",
		Order: 3,
		Build: buildPorters,
	})
}

func buildPorters() *Layout {
	attr := data.Attributions["Porter's Five Forces"]

	cards := make([]Card, len(data.PorterForces))
	for i, f := range data.PorterForces {
		tbl := &Table{
			Columns: []Column{
				{Title: "Indicator"},
				{Title: "Value", Align: "right"},
				{Title: "Trend"},
			},
		}
		for _, ind := range f.Indicators {
			tbl.Rows = append(tbl.Rows, Row{
				Cells:  []string{ind.Name, ind.Value, trendGlyph(ind.Trend) + " " + ind.Trend},
				Colors: []string{"", "", trendColor(ind.Trend)},
			})
		}
		cards[i] = Card{
			Title:  f.Name,
			Accent: forceColor(f.Score),
			Badges: []Badge{
				{Text: fmt.Sprintf("%s (%.1f/5)", f.Rating, f.Score), Color: forceColor(f.Score)},
			},
			Body:  f.Description,
			Table: tbl,
		}
	}

	return &Layout{
		Tab:   "porters",
		Title: "Porter's Five Forces",
		Blocks: []Block{
			{Type: BlockHeading, Text: "Porter's Five Forces: Competitive Position"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0]},
			{Type: BlockDescription, Text: data.FrameworkDescriptions["Porters"]},
			{Type: BlockDownloads, Downloads: []Download{
				{Label: "Executive Summary (DOCX)", Name: "Porters_Executive_Summary.docx"},
				{Label: "Slide Deck (PPTX)", Name: "Porters_Slide_Deck.pptx"},
			}},
			{Type: BlockChartRow, Charts: []*Chart{porterRadarChart(), porterForceChart()}},
			{Type: BlockCards, Cards: cards},
			{Type: BlockInsights, Title: "Strategic Implications", Items: data.PorterInsights},
		},
	}
}

// forceColor grades a force score into the shared severity colors.
func forceColor(score float64) string {
	switch {
	case score >= 4.0:
		return ColorHigh
	case score >= 3.0:
		return ColorMedium
	}
	return ColorLow
}

func porterRadarChart() *Chart {
	names := make([]string, len(data.PorterForces))
	scores := make([]float64, len(data.PorterForces))
	for i, f := range data.PorterForces {
		names[i] = f.Name
		scores[i] = f.Score
	}
	return &Chart{
		Title:  "Competitive Pressure Profile",
		Height: 420,
		Traces: []Trace{radarTrace(names, scores, ColorHigh, "rgba(197,48,48,0.15)", Navy)},
		Layout: radarLayout(5),
	}
}

func porterForceChart() *Chart {
	// Reverse order so the strongest force renders at the top.
	n := len(data.PorterForces)
	names := make([]string, n)
	scores := make([]float64, n)
	labels := make([]string, n)
	colors := make([]string, n)
	for i, f := range data.PorterForces {
		j := n - 1 - i
		names[j] = f.Name
		scores[j] = f.Score
		labels[j] = fmt.Sprintf("%.1f - %s", f.Score, f.Rating)
		colors[j] = forceColor(f.Score)
	}
	return &Chart{
		Title:  "Force Intensity (1 = weak, 5 = intense)",
		Height: 380,
		Traces: []Trace{hbarTrace(names, scores, colors, labels)},
		Layout: map[string]any{
			"xaxis":  map[string]any{"range": []float64{0, 5.5}, "title": map[string]any{"text": "Intensity Score"}},
			"margin": map[string]any{"l": 220},
		},
	}
}
