// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"time"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "roadmap",
		Label: "Strategic Roadmap",
		Phase: "Phase 3",
		Order: 8,
		Build: buildRoadmap,
	})
}

func buildRoadmap() *Layout {
	attr := data.Attributions["Strategic Roadmap"]

	return &Layout{
		Tab:   "roadmap",
		Title: "Strategic Roadmap",
		Blocks: []Block{
			{Type: BlockHeading, Text: "Strategic Roadmap: 2025-2027 Implementation"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0]},
			{Type: BlockDescription, Text: "The roadmap sequences twenty milestones across the three project phases, " +
				"tracks twelve KPIs from baseline to stretch target, and maintains a register of the eight " +
				"strategic risks with mitigation owners."},
			{Type: BlockChartRow, Charts: []*Chart{roadmapGanttChart()}},
			{Type: BlockChartRow, Charts: []*Chart{milestoneStatusChart(), milestoneZoneChart()}},
			{Type: BlockTable, Title: "Milestone Tracker", Table: milestoneTable()},
			{Type: BlockChartRow, Charts: []*Chart{kpiProgressChart()}},
			{Type: BlockTable, Title: "KPI Targets", Table: kpiTable()},
			{Type: BlockChartRow, Charts: []*Chart{riskMatrixChart()}},
			{Type: BlockTable, Title: "Risk Register", Table: riskTable()},
			{Type: BlockInsights, Title: "Roadmap Watch Items", Items: []string{
				"Q1 2026 is the crunch window: seven milestones land between February and May, most owned by the Provost's office.",
				"Retention and enrollment KPIs drive the scenario selection at the Year 1 review; everything else is secondary.",
				"One risk scores 9 of 9 on the matrix (political pressure on DEI); its mitigation is framing, not avoidance.",
			}},
		},
	}
}

func roadmapGanttChart() *Chart {
	// Horizontal bars with a date base render as a Gantt. Bar length is the
	// milestone duration in milliseconds.
	n := len(data.RoadmapMilestones)
	names := make([]string, n)
	starts := make([]string, n)
	durations := make([]float64, n)
	colors := make([]string, n)
	for i, m := range data.RoadmapMilestones {
		// Reverse so the earliest milestone renders at the top.
		j := n - 1 - i
		names[j] = fmt.Sprintf("%s %s", m.ID, m.Milestone)
		starts[j] = m.StartDate
		durations[j] = milestoneDurationMS(m.StartDate, m.TargetDate)
		colors[j] = StatusColors[m.Status]
	}
	return &Chart{
		Title:  "Milestone Timeline",
		Height: 640,
		Traces: []Trace{{
			"type":        "bar",
			"orientation": "h",
			"y":           names,
			"base":        starts,
			"x":           durations,
			"marker":      map[string]any{"color": colors},
			"hovertemplate": "%{y}<extra></extra>",
		}},
		Layout: map[string]any{
			"xaxis":  map[string]any{"type": "date"},
			"margin": map[string]any{"l": 360},
			"bargap": 0.35,
		},
	}
}

// milestoneDurationMS returns the milestone span in milliseconds, which is
// the unit Plotly expects for bar lengths on a date axis. Unparseable dates
// yield zero-length bars rather than an error.
func milestoneDurationMS(start, target string) float64 {
	s, err1 := time.Parse("2006-01-02", start)
	t, err2 := time.Parse("2006-01-02", target)
	if err1 != nil || err2 != nil || t.Before(s) {
		return 0
	}
	return float64(t.Sub(s) / time.Millisecond)
}

func milestoneStatusChart() *Chart {
	order := []string{data.StatusComplete, data.StatusInProgress, data.StatusNotStarted, data.StatusUpcoming}
	counts := map[string]int{}
	for _, m := range data.RoadmapMilestones {
		counts[m.Status]++
	}
	var labels []string
	var values []float64
	var colors []string
	for _, st := range order {
		if counts[st] == 0 {
			continue
		}
		labels = append(labels, st)
		values = append(values, float64(counts[st]))
		colors = append(colors, StatusColors[st])
	}
	return &Chart{
		Title:  "Milestone Status",
		Height: 360,
		Traces: []Trace{donutTrace(labels, values, colors, 0.5, "label+value")},
		Layout: map[string]any{"showlegend": false},
	}
}

func milestoneZoneChart() *Chart {
	order := []string{"Performance", "Productivity", "Incubation", "Transformation", "All"}
	counts := map[string]int{}
	for _, m := range data.RoadmapMilestones {
		counts[m.Zone]++
	}
	names := make([]string, 0, len(order))
	values := make([]float64, 0, len(order))
	colors := make([]string, 0, len(order))
	labels := make([]string, 0, len(order))
	for _, z := range order {
		if counts[z] == 0 {
			continue
		}
		names = append(names, z)
		values = append(values, float64(counts[z]))
		c, ok := ZoneColors[z]
		if !ok {
			c = Navy
		}
		colors = append(colors, c)
		labels = append(labels, fmt.Sprintf("%d", counts[z]))
	}
	return &Chart{
		Title:  "Milestones by Zone",
		Height: 360,
		Traces: []Trace{barTrace(names, values, colors, labels)},
		Layout: map[string]any{
			"yaxis": map[string]any{"title": map[string]any{"text": "Milestones"}},
		},
	}
}

func milestoneTable() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "ID"},
			{Title: "Milestone"},
			{Title: "Phase", Align: "center"},
			{Title: "Start", Align: "center"},
			{Title: "Target", Align: "center"},
			{Title: "Status", Align: "center"},
			{Title: "Zone", Align: "center"},
			{Title: "Owner"},
		},
	}
	for _, m := range data.RoadmapMilestones {
		tbl.Rows = append(tbl.Rows, Row{Cells: []string{
			m.ID,
			m.Milestone,
			m.Phase,
			m.StartDate,
			m.TargetDate,
			m.Status,
			m.Zone,
			m.Owner,
		}})
	}
	return tbl
}

// kpiProgressChart normalizes every KPI onto a 0-100 baseline-to-stretch
// scale so the twelve indicators share one chart despite different units.
func kpiProgressChart() *Chart {
	n := len(data.RoadmapKPIs)
	names := make([]string, n)
	y1 := make([]float64, n)
	y2 := make([]float64, n)
	stretch := make([]float64, n)
	for i, k := range data.RoadmapKPIs {
		j := n - 1 - i
		names[j] = k.KPI
		p1 := kpiProgressPct(k, k.Year1Target)
		p2 := kpiProgressPct(k, k.Year2Target)
		y1[j] = p1
		y2[j] = p2 - p1
		stretch[j] = 100 - p2
	}
	seg := func(name string, x []float64, color string) Trace {
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
		Title:  "Target Progression (% of baseline-to-stretch range)",
		Height: 420,
		Traces: []Trace{
			seg("Year 1", y1, Navy),
			seg("Year 2", y2, Blue),
			seg("Stretch", stretch, BlueLight),
		},
		Layout: map[string]any{
			"barmode": "stack",
			"xaxis":   map[string]any{"range": []float64{0, 100}, "title": map[string]any{"text": "% of range"}},
			"margin":  map[string]any{"l": 230},
			"legend":  horizontalLegend(),
		},
	}
}

// kpiProgressPct places a target on the 0-100 baseline-to-stretch scale,
// handling gap KPIs that improve downward.
func kpiProgressPct(k data.RoadmapKPI, target float64) float64 {
	span := k.StretchTarget - k.Baseline
	if span == 0 {
		return 0
	}
	pct := 100 * (target - k.Baseline) / span
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func kpiTable() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "KPI"},
			{Title: "Category"},
			{Title: "Baseline", Align: "right"},
			{Title: "Year 1", Align: "right"},
			{Title: "Year 2", Align: "right"},
			{Title: "Stretch", Align: "right"},
			{Title: "Measurement"},
		},
	}
	for _, k := range data.RoadmapKPIs {
		tbl.Rows = append(tbl.Rows, Row{Cells: []string{
			k.KPI,
			k.Category,
			kpiValue(k.Baseline, k.Unit),
			kpiValue(k.Year1Target, k.Unit),
			kpiValue(k.Year2Target, k.Unit),
			kpiValue(k.StretchTarget, k.Unit),
			k.Measurement,
		}})
	}
	return tbl
}

func riskMatrixChart() *Chart {
	n := len(data.Risks)
	x := make([]float64, n)
	y := make([]float64, n)
	size := make([]float64, n)
	colors := make([]string, n)
	names := make([]string, n)
	for i, r := range data.Risks {
		score := r.Score()
		x[i] = float64(data.RiskLevelScore(r.Probability))
		y[i] = float64(data.RiskLevelScore(r.Impact))
		size[i] = float64(score*8 + 10)
		colors[i] = riskColor(score)
		names[i] = r.Risk
	}
	levels := []string{"", "Low", "Medium", "High"}
	axis := func(title string) map[string]any {
		return map[string]any{
			"title":    map[string]any{"text": title},
			"range":    []float64{0.5, 3.5},
			"tickvals": []float64{1, 2, 3},
			"ticktext": levels[1:],
		}
	}
	return &Chart{
		Title:  "Risk Matrix (bubble = probability x impact)",
		Height: 440,
		Traces: []Trace{{
			"type": "scatter",
			"mode": "markers",
			"x":    x,
			"y":    y,
			"text": names,
			"marker": map[string]any{
				"size":    size,
				"color":   colors,
				"opacity": 0.7,
				"line":    map[string]any{"width": 1, "color": "#ffffff"},
			},
			"hovertemplate": "%{text}<extra></extra>",
		}},
		Layout: map[string]any{
			"xaxis":      axis("Probability"),
			"yaxis":      axis("Impact"),
			"showlegend": false,
		},
	}
}

// riskColor grades a 1-9 matrix score.
func riskColor(score int) string {
	switch {
	case score >= 6:
		return ColorHigh
	case score >= 3:
		return ColorMedium
	}
	return ColorLow
}

func riskTable() *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "Risk"},
			{Title: "Probability", Align: "center"},
			{Title: "Impact", Align: "center"},
			{Title: "Score", Align: "right"},
			{Title: "Mitigation"},
			{Title: "Owner"},
		},
	}
	for _, r := range data.Risks {
		tbl.Rows = append(tbl.Rows, Row{Cells: []string{
			r.Risk,
			r.Probability,
			r.Impact,
			fmt.Sprintf("%d", r.Score()),
			r.Mitigation,
			r.Owner,
		}})
	}
	return tbl
}
