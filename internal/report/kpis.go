// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fortlewis-ir/summit/internal/data"
)

// WriteKPIs renders the strategic KPI table. An empty category prints
// every indicator; an unknown category is an error naming the valid ones.
func WriteKPIs(w io.Writer, category string) error {
	kpis := data.RoadmapKPIs
	if category != "" {
		var filtered []data.RoadmapKPI
		for _, k := range kpis {
			if strings.EqualFold(k.Category, category) {
				filtered = append(filtered, k)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no KPIs in category %q (available: %s)",
				category, strings.Join(kpiCategories(), ", "))
		}
		kpis = filtered
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Strategic KPIs (2025-2027)")); err != nil {
		return err
	}

	t := NewTable(
		Column{Header: "KPI"},
		Column{Header: "Category"},
		Column{Header: "Baseline", Align: AlignRight},
		Column{Header: "Year 1", Align: AlignRight},
		Column{Header: "Year 2", Align: AlignRight},
		Column{Header: "Stretch", Align: AlignRight},
		Column{Header: "Y2 Delta", Align: AlignRight, Color: ColorDelta},
		Column{Header: "Measured"},
	)
	for _, k := range kpis {
		t.AddRow(
			k.KPI,
			k.Category,
			kpiNumber(k.Baseline, k.Unit),
			kpiNumber(k.Year1Target, k.Unit),
			kpiNumber(k.Year2Target, k.Unit),
			kpiNumber(k.StretchTarget, k.Unit),
			kpiDelta(k),
			k.Measurement,
		)
	}
	return t.Render(w)
}

// kpiNumber formats a KPI value for its unit. Percentages and gap points
// keep one decimal; counts print whole.
func kpiNumber(v float64, unit string) string {
	switch unit {
	case "%":
		return fmt.Sprintf("%.1f%%", v)
	case "pp":
		return fmt.Sprintf("%.1f pp", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// kpiDelta is the signed baseline-to-Year-2 movement, unit-suffixed so
// ColorDelta can tell gap KPIs apart.
func kpiDelta(k data.RoadmapKPI) string {
	d := k.Year2Target - k.Baseline
	switch k.Unit {
	case "%":
		return fmt.Sprintf("%+.1f%%", d)
	case "pp":
		return fmt.Sprintf("%+.1f pp", d)
	default:
		return fmt.Sprintf("%+.0f", d)
	}
}

func kpiCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range data.RoadmapKPIs {
		if !seen[k.Category] {
			seen[k.Category] = true
			out = append(out, k.Category)
		}
	}
	sort.Strings(out)
	return out
}
