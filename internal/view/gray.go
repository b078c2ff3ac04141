// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"strconv"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "gray",
		Label: "Gray Associates",
		Phase: "Phase 1",
		Order: 4,
		Build: buildGray,
	})
}

func buildGray() *Layout {
	attr := data.Attributions["Gray Associates Portfolio"]

	counts := map[string]int{}
	for _, p := range data.GrayPrograms {
		counts[p.Recommendation]++
	}
	stats := make([]StatCard, 0, len(data.GrayRecommendations))
	for _, rec := range data.GrayRecommendations {
		stats = append(stats, StatCard{
			Label:  rec,
			Value:  strconv.Itoa(counts[rec]),
			Sub:    "programs",
			Accent: RecommendationColors[rec],
		})
	}

	return &Layout{
		Tab:   "gray",
		Title: "Gray Associates",
		Blocks: []Block{
			{Type: BlockHeading, Text: "Gray Associates: Program Portfolio Evaluation"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0]},
			{Type: BlockDescription, Text: data.FrameworkDescriptions["Gray"]},
			{Type: BlockDownloads, Downloads: []Download{
				{Label: "Executive Summary (DOCX)", Name: "Gray_Executive_Summary.docx"},
				{Label: "Slide Deck (PPTX)", Name: "Gray_Slide_Deck.pptx"},
			}},
			{Type: BlockStatCards, Stats: stats},
			{Type: BlockChartRow, Charts: []*Chart{grayMatrixChart()}},
			{Type: BlockChartRow, Charts: []*Chart{grayCountChart(counts)}},
			{Type: BlockTable, Title: "Program Scorecard", Table: grayScorecard()},
			{Type: BlockInsights, Title: "Portfolio Classification", Items: data.GrayInsights},
		},
	}
}

func grayMatrixChart() *Chart {
	// One trace per recommendation so the legend doubles as a category key.
	traces := make([]Trace, 0, len(data.GrayRecommendations))
	for _, rec := range data.GrayRecommendations {
		var x, y, size []float64
		var names []string
		for _, p := range data.GrayPrograms {
			if p.Recommendation != rec {
				continue
			}
			x = append(x, float64(p.EconomicsScore))
			y = append(y, float64(p.MarketScore))
			size = append(size, float64(p.Enrollment)/5+8)
			names = append(names, p.Program)
		}
		if len(x) == 0 {
			continue
		}
		traces = append(traces, Trace{
			"type": "scatter",
			"mode": "markers",
			"name": rec,
			"x":    x,
			"y":    y,
			"text": names,
			"marker": map[string]any{
				"size":    size,
				"color":   RecommendationColors[rec],
				"opacity": 0.75,
				"line":    map[string]any{"width": 1, "color": "#ffffff"},
			},
			"hovertemplate": "%{text}<br>Economics: %{x}<br>Market: %{y}<extra></extra>",
		})
	}
	return &Chart{
		Title:  "Market Score vs Program Economics (bubble = enrollment)",
		Height: 520,
		Traces: traces,
		Layout: map[string]any{
			"xaxis":  map[string]any{"title": map[string]any{"text": "Program Economics Score"}, "range": []float64{10, 95}},
			"yaxis":  map[string]any{"title": map[string]any{"text": "Market Score"}, "range": []float64{25, 90}},
			"shapes": crosshair(55, 55),
			"annotations": []map[string]any{
				annotation(30, 80, "SUSTAIN", ColorNeutral, 14),
				annotation(80, 80, "GROW", ColorNeutral, 14),
				annotation(30, 30, "SUNSET REVIEW", ColorNeutral, 14),
				annotation(80, 30, "TRANSFORM", ColorNeutral, 14),
			},
			"legend": horizontalLegend(),
		},
	}
}

func grayCountChart(counts map[string]int) *Chart {
	names := make([]string, len(data.GrayRecommendations))
	values := make([]float64, len(data.GrayRecommendations))
	colors := make([]string, len(data.GrayRecommendations))
	labels := make([]string, len(data.GrayRecommendations))
	for i, rec := range data.GrayRecommendations {
		names[i] = rec
		values[i] = float64(counts[rec])
		colors[i] = RecommendationColors[rec]
		labels[i] = strconv.Itoa(counts[rec])
	}
	return &Chart{
		Title:  "Programs per Recommendation",
		Height: 340,
		Traces: []Trace{barTrace(names, values, colors, labels)},
		Layout: map[string]any{
			"yaxis": map[string]any{"title": map[string]any{"text": "Programs"}},
		},
	}
}

func grayScorecard() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "Program"},
			{Title: "Enrollment", Align: "right"},
			{Title: "Student Demand", Align: "right"},
			{Title: "Employment", Align: "right"},
			{Title: "Competition", Align: "right"},
			{Title: "Market Score", Align: "right"},
			{Title: "Economics", Align: "right"},
			{Title: "Mission Fit", Align: "center"},
			{Title: "Recommendation", Align: "center"},
		},
	}
	for _, p := range data.GrayPrograms {
		tbl.Rows = append(tbl.Rows, Row{
			Cells: []string{
				p.Program,
				comma(p.Enrollment),
				strconv.Itoa(p.StudentDemand),
				strconv.Itoa(p.Employment),
				strconv.Itoa(p.Competition),
				strconv.Itoa(p.MarketScore),
				strconv.Itoa(p.EconomicsScore),
				p.MissionAlignment,
				p.Recommendation,
			},
			Color: recommendationTints[p.Recommendation],
		})
	}
	return tbl
}
