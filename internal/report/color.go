// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Shared color printers for report tables.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// ColorLevel colors Low/Medium/High register labels.
func ColorLevel(val string) string {
	switch val {
	case "High":
		return colorRed.Sprint(val)
	case "Medium":
		return colorYellow.Sprint(val)
	case "Low":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// ColorScore colors a 1-9 risk score: 6+ red, 3+ yellow, below green.
func ColorScore(val string) string {
	n, err := strconv.Atoi(val)
	if err != nil {
		return val
	}
	switch {
	case n >= 6:
		return colorRed.Sprint(val)
	case n >= 3:
		return colorYellow.Sprint(val)
	default:
		return colorGreen.Sprint(val)
	}
}

// ColorDelta colors a signed target delta. Gap deltas carry a "pp"
// suffix and improve downward; everything else improves upward.
func ColorDelta(val string) string {
	improving := strings.HasPrefix(val, "+")
	if strings.HasSuffix(val, " pp") {
		improving = !improving
	}
	if improving {
		return colorGreen.Sprint(val)
	}
	return colorRed.Sprint(val)
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
