// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"strconv"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "bcg",
		Label: "BCG Matrix",
		Phase: "Phase 1",
		Order: 5,
		Build: buildBCG,
	})
}

func buildBCG() *Layout {
	attr := data.Attributions["BCG Growth-Share Matrix"]

	counts := map[string]int{}
	for _, d := range data.BCGDepartments {
		counts[d.Quadrant]++
	}
	stats := make([]StatCard, 0, len(data.BCGQuadrants))
	for _, q := range data.BCGQuadrants {
		stats = append(stats, StatCard{
			Label:  q + "s",
			Value:  strconv.Itoa(counts[q]),
			Sub:    "departments",
			Accent: QuadrantColors[q],
		})
	}

	return &Layout{
		Tab:   "bcg",
		Title: "BCG Matrix",
		Blocks: []Block{
			{Type: BlockHeading, Text: "BCG Growth-Share Matrix: Department Portfolio"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0] + "; " + attr.Files[1]},
			{Type: BlockDescription, Text: data.FrameworkDescriptions["BCG"]},
			{Type: BlockDownloads, Downloads: []Download{
				{Label: "Executive Summary (DOCX)", Name: "BCG_Executive_Summary.docx"},
				{Label: "Slide Deck (PPTX)", Name: "BCG_Slide_Deck.pptx"},
			}},
			{Type: BlockStatCards, Stats: stats},
			{Type: BlockChartRow, Charts: []*Chart{bcgMatrixChart()}},
			{Type: BlockTable, Title: "Quadrant Summary", Table: bcgQuadrantSummary()},
			{Type: BlockTable, Title: "Department Placement", Table: bcgTable()},
			{Type: BlockInsights, Title: "Quadrant Analysis", Items: data.BCGInsights},
		},
	}
}

func bcgMatrixChart() *Chart {
	traces := make([]Trace, 0, len(data.BCGQuadrants))
	for _, q := range data.BCGQuadrants {
		var x, y, size []float64
		var names []string
		for _, d := range data.BCGDepartments {
			if d.Quadrant != q {
				continue
			}
			x = append(x, d.SCHPct)
			y = append(y, d.TwoYearChange)
			size = append(size, d.SCHPct*4+12)
			names = append(names, d.Department)
		}
		if len(x) == 0 {
			continue
		}
		traces = append(traces, Trace{
			"type": "scatter",
			"mode": "markers",
			"name": q,
			"x":    x,
			"y":    y,
			"text": names,
			"marker": map[string]any{
				"size":    size,
				"color":   QuadrantColors[q],
				"opacity": 0.75,
				"line":    map[string]any{"width": 1, "color": "#ffffff"},
			},
			"hovertemplate": "%{text}<br>SCH Share: %{x}%<br>2-Yr Change: %{y}%<extra></extra>",
		})
	}
	return &Chart{
		Title:  "SCH Share vs 2-Year Enrollment Change (bubble = share)",
		Height: 540,
		Traces: traces,
		Layout: map[string]any{
			"xaxis":  map[string]any{"title": map[string]any{"text": "% of Total Student Credit Hours"}, "range": []float64{0, 11.5}},
			"yaxis":  map[string]any{"title": map[string]any{"text": "2-Year Enrollment Change (%)"}, "range": []float64{-30, 16}},
			"shapes": crosshair(data.BCGShareThreshold, 0),
			"annotations": []map[string]any{
				annotation(1.5, 14, "QUESTION MARKS", ColorNeutral, 13),
				annotation(8, 14, "STARS", ColorNeutral, 13),
				annotation(1.5, -28, "CONCERNS", ColorNeutral, 13),
				annotation(8, -28, "CASH COWS", ColorNeutral, 13),
			},
			"legend": horizontalLegend(),
		},
	}
}

// bcgQuadrantSummary aggregates each quadrant's count and averages,
// rounded to one decimal.
func bcgQuadrantSummary() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "Quadrant"},
			{Title: "Departments", Align: "right"},
			{Title: "Avg SCH Share (%)", Align: "right"},
			{Title: "Avg 2-Year Change (%)", Align: "right"},
		},
	}
	for _, q := range data.BCGQuadrants {
		var n int
		var share, change float64
		for _, d := range data.BCGDepartments {
			if d.Quadrant != q {
				continue
			}
			n++
			share += d.SCHPct
			change += d.TwoYearChange
		}
		if n == 0 {
			continue
		}
		tbl.Rows = append(tbl.Rows, Row{
			Cells: []string{
				q,
				strconv.Itoa(n),
				strconv.FormatFloat(share/float64(n), 'f', 1, 64),
				signedPct(change / float64(n)),
			},
		})
	}
	return tbl
}

func bcgTable() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "Department"},
			{Title: "SCH Share (%)", Align: "right"},
			{Title: "2-Year Change (%)", Align: "right"},
			{Title: "Quadrant", Align: "center"},
		},
	}
	for _, d := range data.BCGDepartments {
		tbl.Rows = append(tbl.Rows, Row{
			Cells: []string{
				d.Department,
				strconv.FormatFloat(d.SCHPct, 'f', 1, 64),
				signedPct(d.TwoYearChange),
				d.Quadrant,
			},
		})
	}
	return tbl
}
