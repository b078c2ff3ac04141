// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

// Trace is one Plotly trace. Values must stay JSON-primitive (strings,
// numbers, bools, or slices/maps of those) so the config passes to
// Plotly.newPlot unchanged.
type Trace map[string]any

// Chart is a Plotly chart config: traces plus layout overrides. The
// frontend merges Layout over the shared brand template.
type Chart struct {
	Title  string         `json:"title"`
	Source string         `json:"source,omitempty"` // annotation under the chart
	Height int            `json:"height,omitempty"`
	Traces []Trace        `json:"traces"`
	Layout map[string]any `json:"layout,omitempty"`
}

// lineTrace builds a markers+lines scatter trace with an area fill, the
// house style for trend charts.
func lineTrace(name string, x []int, y []float64, lineColor, markerColor, fillColor string) Trace {
	return Trace{
		"type":      "scatter",
		"mode":      "lines+markers",
		"name":      name,
		"x":         x,
		"y":         y,
		"line":      map[string]any{"color": lineColor, "width": 3},
		"marker":    map[string]any{"size": 8, "color": markerColor, "line": map[string]any{"width": 2, "color": lineColor}},
		"fill":      "tozeroy",
		"fillcolor": fillColor,
	}
}

// radarTrace builds a closed scatterpolar trace. The first point is
// repeated to close the polygon.
func radarTrace(categories []string, scores []float64, lineColor, fillColor, markerColor string) Trace {
	theta := append(append([]string{}, categories...), categories[0])
	r := append(append([]float64{}, scores...), scores[0])
	return Trace{
		"type":      "scatterpolar",
		"r":         r,
		"theta":     theta,
		"fill":      "toself",
		"fillcolor": fillColor,
		"line":      map[string]any{"color": lineColor, "width": 2},
		"marker":    map[string]any{"size": 8, "color": markerColor},
	}
}

// radarLayout is the polar layout shared by the PESTLE and Porter radars.
func radarLayout(maxScore float64) map[string]any {
	return map[string]any{
		"polar": map[string]any{
			"radialaxis": map[string]any{
				"visible":   true,
				"range":     []float64{0, maxScore},
				"gridcolor": BluePale,
				"linecolor": Border,
			},
			"angularaxis": map[string]any{"gridcolor": BluePale, "linecolor": Border},
			"bgcolor":     "rgba(0,0,0,0)",
		},
	}
}

// barTrace builds a vertical bar trace with per-bar colors and outside
// labels.
func barTrace(x []string, y []float64, colors []string, labels []string) Trace {
	t := Trace{
		"type":   "bar",
		"x":      x,
		"y":      y,
		"marker": map[string]any{"color": colors},
	}
	if labels != nil {
		t["text"] = labels
		t["textposition"] = "outside"
		t["textfont"] = map[string]any{"color": Navy, "size": 11}
	}
	return t
}

// hbarTrace builds a horizontal bar trace.
func hbarTrace(y []string, x []float64, colors []string, labels []string) Trace {
	t := Trace{
		"type":        "bar",
		"orientation": "h",
		"x":           x,
		"y":           y,
		"marker":      map[string]any{"color": colors},
	}
	if labels != nil {
		t["text"] = labels
		t["textposition"] = "outside"
		t["textfont"] = map[string]any{"color": Navy, "size": 11}
	}
	return t
}

// donutTrace builds a holed pie trace.
func donutTrace(labels []string, values []float64, colors []string, hole float64, textinfo string) Trace {
	return Trace{
		"type":     "pie",
		"labels":   labels,
		"values":   values,
		"marker":   map[string]any{"colors": colors},
		"hole":     hole,
		"textinfo": textinfo,
	}
}

// annotation places a free-floating quadrant label on a cartesian chart.
func annotation(x, y float64, text, color string, size int) map[string]any {
	return map[string]any{
		"x": x, "y": y, "text": text,
		"showarrow": false,
		"font":      map[string]any{"size": size, "color": color},
		"opacity":   0.55,
	}
}

// crosshair draws the dashed divider lines for a quadrant chart.
func crosshair(xDiv, yDiv float64) []map[string]any {
	dash := map[string]any{"color": "#aaaaaa", "width": 1, "dash": "dash"}
	return []map[string]any{
		{"type": "line", "x0": xDiv, "x1": xDiv, "yref": "paper", "y0": 0, "y1": 1, "line": dash},
		{"type": "line", "y0": yDiv, "y1": yDiv, "xref": "paper", "x0": 0, "x1": 1, "line": dash},
	}
}

// horizontalLegend is the legend placement shared by the matrix charts.
func horizontalLegend() map[string]any {
	return map[string]any{
		"orientation": "h",
		"yanchor":     "bottom",
		"y":           1.02,
		"xanchor":     "center",
		"x":           0.5,
	}
}
