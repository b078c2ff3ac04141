// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"sort"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "summary",
		Label: "Executive Summary",
		Phase: "Overview",
		Order: 1,
		Build: buildSummary,
	})
}

func buildSummary() *Layout {
	inst := data.FLC
	yoy := 100 * float64(inst.TotalEnrollmentF25-inst.TotalEnrollmentF24) / float64(inst.TotalEnrollmentF24)

	return &Layout{
		Tab:   "summary",
		Title: "Executive Summary",
		Blocks: []Block{
			{Type: BlockHeading, Text: fmt.Sprintf("%s | Academic Portfolio Optimization", inst.Name)},
			{Type: BlockDescription, Text: "Strategic analysis of the academic portfolio across three phases: " +
				"framework analyses (PESTLE, Porter's Five Forces, Gray Associates, BCG Matrix), SWOT synthesis, " +
				"and Zone to Win scenario planning with an implementation roadmap. " +
				"All findings draw on institutional records through the Fall 2025 census."},
			{Type: BlockStatCards, Stats: []StatCard{
				{Label: "Total Enrollment (F25)", Value: comma(inst.TotalEnrollmentF25), Sub: signedPct(yoy) + " YoY", Trend: "Declining", Accent: Navy},
				{Label: "Undergraduate", Value: comma(inst.UndergradF25), Sub: "degree-seeking", Accent: Blue},
				{Label: "Graduate", Value: comma(inst.GraduateF25), Sub: "16x growth since 2016", Trend: "Improving", Accent: Blue},
				{Label: "FTFT Retention (F24)", Value: pct1(inst.RetentionRateF24), Sub: fmt.Sprintf("National avg ~%.0f%%", data.NationalAvgRetention), Trend: "Declining", Accent: ColorHigh},
				{Label: "Student-Faculty Ratio", Value: inst.StudentFacultyRatio, Sub: fmt.Sprintf("avg class size %d", inst.AvgClassSize), Accent: BlueLight},
				{Label: "Native American Students", Value: fmt.Sprintf("%d%%", inst.NativeAmericanPct), Sub: "166 tribes represented", Accent: Gold},
			}},
			{Type: BlockChartRow, Charts: []*Chart{
				summaryEnrollmentChart(),
				summaryRetentionChart(),
			}},
			{Type: BlockChartRow, Charts: []*Chart{
				summaryRetentionGroupChart(),
				summaryGraduateChart(),
			}},
			{Type: BlockChartRow, Charts: []*Chart{
				summaryTopMajorsChart(),
				summaryDegreesChart(),
			}},
			{Type: BlockHeading, Text: "Project Phases"},
			{Type: BlockCards, Cards: phaseCards(), Columns: 3},
			{Type: BlockHeading, Text: "Framework Highlights"},
			{Type: BlockCards, Cards: frameworkCards(), Columns: 2},
			{Type: BlockInsights, Title: "Strategic Headlines", Items: []string{
				"Undergraduate enrollment is down 13.6% over ten years while graduate enrollment has grown 16x, pointing to credential diversification as the growth lever.",
				"Retention trails the national public four-year benchmark by roughly 7 points, with wider gaps for first-generation and Pell-eligible students.",
				"Business Administration and Psychology anchor the portfolio as Stars; nine departments sit in the Concern quadrant and face restructuring decisions.",
				"The Native American mission, outdoor location, and small-class experience remain the differentiators online competitors cannot replicate.",
			}},
			{Type: BlockNote, Text: "Navigate the tabs above for each framework analysis. Phase 1 covers external and portfolio analyses; Phase 2 synthesizes findings; Phase 3 sets strategy and tracks implementation."},
		},
	}
}

func phaseCards() []Card {
	return []Card{
		{
			Title:  "Phase 1: Framework Analyses",
			Tag:    "Complete",
			Accent: Blue,
			Body:   "External and portfolio analyses establishing the strategic baseline.",
			Lists: []TitledList{{Title: "Frameworks", Items: []string{
				"PESTLE Analysis",
				"Porter's Five Forces",
				"Gray Associates Portfolio",
				"BCG Growth-Share Matrix",
			}}},
		},
		{
			Title:  "Phase 2: Synthesis & Tracking",
			Tag:    "Complete",
			Accent: Gold,
			Body:   "Findings consolidated into a SWOT matrix and an initiative register with budgets and checkpoints.",
			Lists: []TitledList{{Title: "Deliverables", Items: []string{
				"SWOT synthesis",
				"Strategic initiative tracker",
				"Resource allocation",
			}}},
		},
		{
			Title:  "Phase 3: Strategy & Roadmap",
			Tag:    "In Progress",
			Accent: Navy,
			Body:   "Zone to Win scenario planning and the 2025-2027 implementation roadmap with KPIs and risks.",
			Lists: []TitledList{{Title: "Deliverables", Items: []string{
				"Zone to Win scenarios",
				"Strategic roadmap",
				"Risk register",
			}}},
		},
	}
}

func frameworkCards() []Card {
	return []Card{
		{
			Title:  "PESTLE",
			Tag:    "Phase 1",
			Accent: ColorHigh,
			Body:   "Economic factors rate 5/5 impact; Political and Social forces are High with unfavorable trends. Technological and Environmental categories hold the clearest opportunities.",
		},
		{
			Title:  "Porter's Five Forces",
			Tag:    "Phase 1",
			Accent: ColorMedium,
			Body:   "Competitive rivalry (4.5/5) and student bargaining power (4.0/5) dominate: online providers and price-sensitive students pressure the residential model.",
		},
		{
			Title:  "Gray Associates",
			Tag:    "Phase 1",
			Accent: ColorPositive,
			Body:   "Twenty-three programs scored on market and economics; Grow and Sustain recommendations cover the majority, with Sunset Review flagged for the weakest performers.",
		},
		{
			Title:  "BCG Matrix",
			Tag:    "Phase 1",
			Accent: Navy,
			Body:   "Business Administration and Psychology are the two Stars; nine Cash Cows fund the portfolio while nine Concern departments face restructuring decisions.",
		},
	}
}

func summaryEnrollmentChart() *Chart {
	years := make([]int, len(data.EnrollmentHistory))
	total := make([]float64, len(data.EnrollmentHistory))
	firstYear := make([]float64, len(data.EnrollmentHistory))
	for i, y := range data.EnrollmentHistory {
		years[i] = y.Year
		total[i] = float64(y.Headcount)
		firstYear[i] = float64(y.FirstYear)
	}
	totalTrace := lineTrace("Total Headcount", years, total, Navy, "#ffffff", "rgba(0,48,87,0.08)")
	fyTrace := lineTrace("First-Year Class", years, firstYear, BlueLight, "#ffffff", "rgba(42,143,212,0.08)")
	return &Chart{
		Title:  "Fall Enrollment Trend (2016-2025)",
		Source: "FLC enrollment overview, fall census",
		Height: 380,
		Traces: []Trace{totalTrace, fyTrace},
		Layout: map[string]any{
			"xaxis":  map[string]any{"title": map[string]any{"text": "Fall Census Year"}, "dtick": 1},
			"yaxis":  map[string]any{"title": map[string]any{"text": "Students"}},
			"legend": horizontalLegend(),
		},
	}
}

func summaryRetentionChart() *Chart {
	years := make([]int, len(data.RetentionHistory))
	rates := make([]float64, len(data.RetentionHistory))
	for i, y := range data.RetentionHistory {
		years[i] = y.Year
		rates[i] = y.Rate
	}
	return &Chart{
		Title:  "First-Time Full-Time Retention by Cohort",
		Source: "FLC institutional research",
		Height: 380,
		Traces: []Trace{lineTrace("FTFT Retention", years, rates, Blue, "#ffffff", "rgba(0,102,179,0.08)")},
		Layout: map[string]any{
			"xaxis": map[string]any{"title": map[string]any{"text": "Cohort Year"}, "dtick": 1},
			"yaxis": map[string]any{"title": map[string]any{"text": "Retention %"}, "range": []float64{50, 80}},
			"shapes": []map[string]any{{
				"type": "line", "xref": "paper", "x0": 0, "x1": 1,
				"y0": data.NationalAvgRetention, "y1": data.NationalAvgRetention,
				"line": map[string]any{"color": ColorHigh, "width": 1, "dash": "dash"},
			}},
			"annotations": []map[string]any{{
				"xref": "paper", "x": 0.98, "y": data.NationalAvgRetention + 1.2,
				"text": fmt.Sprintf("National Avg (%.0f%%)", data.NationalAvgRetention),
				"showarrow": false,
				"font":      map[string]any{"size": 11, "color": ColorHigh},
			}},
		},
	}
}

// summaryRetentionGroupChart breaks the Fall 2024 cohort retention down by
// demographic group, with the total population as the reference bar.
func summaryRetentionGroupChart() *Chart {
	n := len(data.RetentionByGroup)
	names := make([]string, n)
	rates := make([]float64, n)
	labels := make([]string, n)
	colors := make([]string, n)
	total := data.RetentionByGroup[0].Rate
	for i, g := range data.RetentionByGroup {
		names[i] = g.Group
		rates[i] = g.Rate
		labels[i] = pct1(g.Rate)
		if g.Rate < total {
			colors[i] = ColorMedium
		} else {
			colors[i] = Navy
		}
	}
	return &Chart{
		Title:  "Retention by Student Group (Fall 2024 Cohort)",
		Source: "FLC institutional research",
		Height: 380,
		Traces: []Trace{barTrace(names, rates, colors, labels)},
		Layout: map[string]any{
			"yaxis": map[string]any{"title": map[string]any{"text": "Retention %"}, "range": []float64{0, 80}},
		},
	}
}

func summaryTopMajorsChart() *Chart {
	// Reverse order so the largest program renders at the top.
	n := len(data.TopMajors)
	names := make([]string, n)
	counts := make([]float64, n)
	labels := make([]string, n)
	colors := make([]string, n)
	for i, m := range data.TopMajors {
		j := n - 1 - i
		names[j] = m.Program
		counts[j] = float64(m.Enrollment)
		labels[j] = comma(m.Enrollment)
		colors[j] = Colorway[i%len(Colorway)]
	}
	return &Chart{
		Title:  "Top 10 Majors by Enrollment (Fall 2025)",
		Source: "FLC fact sheet",
		Height: 420,
		Traces: []Trace{hbarTrace(names, counts, colors, labels)},
		Layout: map[string]any{
			"xaxis":  map[string]any{"title": map[string]any{"text": "Enrolled Students"}},
			"margin": map[string]any{"l": 230},
		},
	}
}

func summaryDegreesChart() *Chart {
	// Sort descending, then reverse so the largest program renders at the top.
	sorted := make([]data.ProgramDegrees, len(data.DegreesAwarded))
	copy(sorted, data.DegreesAwarded)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	n := len(sorted)
	names := make([]string, n)
	counts := make([]float64, n)
	labels := make([]string, n)
	colors := make([]string, n)
	for i, d := range sorted {
		j := n - 1 - i
		names[j] = d.Program
		counts[j] = float64(d.Count)
		labels[j] = comma(d.Count)
		colors[j] = Colorway[i%len(Colorway)]
	}
	return &Chart{
		Title:  "Degrees Awarded by Program (2024-25)",
		Source: "FLC fact sheet",
		Height: 560,
		Traces: []Trace{hbarTrace(names, counts, colors, labels)},
		Layout: map[string]any{
			"xaxis":  map[string]any{"title": map[string]any{"text": "Degrees Conferred"}},
			"margin": map[string]any{"l": 230},
		},
	}
}

func summaryGraduateChart() *Chart {
	years := make([]int, len(data.GraduateEnrollment))
	counts := make([]float64, len(data.GraduateEnrollment))
	for i, y := range data.GraduateEnrollment {
		years[i] = y.Year
		counts[i] = float64(y.Count)
	}
	return &Chart{
		Title:  "Graduate Enrollment Growth",
		Source: "FLC enrollment overview",
		Height: 420,
		Traces: []Trace{lineTrace("Graduate Students", years, counts, Gold, "#ffffff", "rgba(200,164,21,0.10)")},
		Layout: map[string]any{
			"xaxis": map[string]any{"title": map[string]any{"text": "Fall Census Year"}, "dtick": 1},
			"yaxis": map[string]any{"title": map[string]any{"text": "Students"}},
		},
	}
}
