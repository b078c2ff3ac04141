// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/fortlewis-ir/summit/internal/data"
)

func init() {
	Register(Definition{
		ID:    "zonetowin",
		Label: "Zone to Win",
		Phase: "Phase 3",
		Order: 7,
		Build: buildZone,
	})
}

func buildZone() *Layout {
	attr := data.Attributions["Zone to Win"]

	zoneCards := make([]Card, len(data.Zones))
	for i, z := range data.Zones {
		zoneCards[i] = Card{
			Title:  z.Name,
			Tag:    fmt.Sprintf("%d initiatives", len(z.Initiatives)),
			Accent: ZoneColors[z.Name],
			Body:   z.Description,
			Table:  zoneInitiativeTable(z),
		}
	}

	scenarioCards := make([]Card, len(data.Scenarios))
	for i, s := range data.Scenarios {
		scenarioCards[i] = Card{
			Title:  s.Name + " Scenario",
			Accent: ScenarioColors[s.Name],
			Body:   s.Description,
			Table:  scenarioTargetTable(s),
			Lists:  []TitledList{{Title: "Assumptions", Items: s.Assumptions}},
			Chart:  scenarioAllocationChart(s),
		}
	}

	return &Layout{
		Tab:   "zonetowin",
		Title: "Zone to Win",
		Blocks: []Block{
			{Type: BlockHeading, Text: "Zone to Win: Strategic Zones & Scenario Planning"},
			{Type: BlockSourceBadge, Source: attr.Source, Detail: attr.Files[0]},
			{Type: BlockDescription, Text: "Geoffrey Moore's Zone to Win framework organizes the strategy into four zones " +
				"with distinct management disciplines: Performance (run the core), Productivity (enable the core), " +
				"Incubation (nurture future options), and Transformation (make the big bets). Three planning scenarios " +
				"carry different resource allocations across the zones."},
			{Type: BlockCards, Cards: zoneCards, Columns: 2},
			{Type: BlockHeading, Text: "Planning Scenarios (2026-2028)"},
			{Type: BlockCards, Cards: scenarioCards, Columns: 3},
			{Type: BlockChartRow, Charts: []*Chart{scenarioComparisonChart()}},
			{Type: BlockInsights, Title: "Zone Discipline", Items: []string{
				"Performance Zone initiatives map one-to-one onto Gray Associates Grow programs; funding follows demonstrated demand.",
				"Productivity Zone spending concentrates on retention and advising, the highest-leverage fixes for the equity gaps.",
				"Incubation bets stay small until evidence arrives: online pilots and dual enrollment carry explicit exit criteria.",
				"Transformation commitments (Indigenous Education Hub, portfolio restructuring) need multi-year board-level sponsorship.",
			}},
		},
	}
}

func zoneInitiativeTable(z data.Zone) *Table {
	tbl := &Table{
		Columns: []Column{
			{Title: "Initiative"},
			{Title: "Action"},
			{Title: "Investment", Align: "center"},
		},
	}
	for _, ini := range z.Initiatives {
		row := Row{Cells: []string{ini.Name, ini.Action, ini.Investment}}
		if xref, ok := data.ZoneCrossReferences[ini.Name]; ok {
			row.Note = crossReferenceNote(xref)
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}

// crossReferenceNote flattens a cross-reference into the single commentary
// line rendered under the initiative row.
func crossReferenceNote(x data.ZoneCrossReference) string {
	out := ""
	for _, f := range x.Supporting {
		if out != "" {
			out += " | "
		}
		out += fmt.Sprintf("Supports: %s (%s)", f.Text, f.Source)
	}
	for _, f := range x.Risks {
		if out != "" {
			out += " | "
		}
		out += fmt.Sprintf("Risk: %s (%s)", f.Text, f.Source)
	}
	return out
}

func scenarioTargetTable(s data.Scenario) *Table {
	return &Table{
		Columns: []Column{{Title: "Target"}, {Title: "Value", Align: "right"}},
		Rows: []Row{
			{Cells: []string{"Total Enrollment", comma(s.EnrollmentTarget)}},
			{Cells: []string{"FTFT Retention", pct1(s.RetentionTarget)}},
			{Cells: []string{"Graduate Enrollment", comma(s.GraduateTarget)}},
			{Cells: []string{"Online Courses", comma(s.OnlineCourses)}},
			{Cells: []string{"New Programs", comma(s.NewPrograms)}},
		},
	}
}

// scenarioComparisonChart groups the headline targets per scenario. The
// log axis keeps enrollment from flattening the smaller counts.
func scenarioComparisonChart() *Chart {
	metrics := []string{"Total Enrollment", "Graduate Enrollment", "Online Courses", "New Programs"}
	traces := make([]Trace, len(data.Scenarios))
	for i, s := range data.Scenarios {
		values := []float64{
			float64(s.EnrollmentTarget),
			float64(s.GraduateTarget),
			float64(s.OnlineCourses),
			float64(s.NewPrograms),
		}
		labels := make([]string, len(values))
		for j, v := range values {
			labels[j] = comma(int(v))
		}
		t := barTrace(metrics, values, nil, labels)
		t["name"] = s.Name
		t["marker"] = map[string]any{"color": ScenarioColors[s.Name]}
		traces[i] = t
	}
	return &Chart{
		Title:  "Scenario Targets Compared (log scale)",
		Height: 380,
		Traces: traces,
		Layout: map[string]any{
			"barmode": "group",
			"yaxis":   map[string]any{"type": "log", "title": map[string]any{"text": "Target (log)"}},
			"legend":  horizontalLegend(),
		},
	}
}

func scenarioAllocationChart(s data.Scenario) *Chart {
	labels := []string{"Performance", "Productivity", "Incubation", "Transformation"}
	values := []float64{
		float64(s.Allocation.Performance),
		float64(s.Allocation.Productivity),
		float64(s.Allocation.Incubation),
		float64(s.Allocation.Transformation),
	}
	colors := make([]string, len(labels))
	for i, l := range labels {
		colors[i] = ZoneColors[l]
	}
	return &Chart{
		Title:  "Zone Allocation",
		Height: 300,
		Traces: []Trace{donutTrace(labels, values, colors, 0.4, "label+percent")},
		Layout: map[string]any{"showlegend": false},
	}
}
