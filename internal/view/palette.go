package view

import "github.com/fortlewis-ir/summit/internal/data"

// FLC brand colors, matched to the official campus templates.
const (
	Navy      = "#003057"
	Blue      = "#0066b3"
	BlueLight = "#2a8fd4"
	Gold      = "#c8a415"
	Light     = "#f5f8fb"
	BluePale  = "#d6e8f7"
	BlueWash  = "#eaf2fa"
	Border    = "#c8daea"
)

// Colorway is the blue-family sequence applied to multi-series charts.
var Colorway = []string{Navy, Blue, BlueLight, "#5ba3d9", "#8cc0e8", "#b8d8f0"}

// Semantic colors for indicator text (muted, professional).
const (
	ColorHigh     = "#c53030"
	ColorMedium   = "#d69e2e"
	ColorLow      = "#276749"
	ColorPositive = "#2b6cb0"
	ColorNeutral  = "#718096"
)

// StatusColors maps milestone status labels to their blue-toned colors.
var StatusColors = map[string]string{
	data.StatusComplete:   "#2b6cb0",
	data.StatusInProgress: BlueLight,
	data.StatusNotStarted: "#a0aec0",
	data.StatusUpcoming:   "#4299e1",
}

// QuadrantColors maps BCG quadrants to their marker colors.
var QuadrantColors = map[string]string{
	data.QuadrantStar:         "#2ecc71",
	data.QuadrantCashCow:      "#3498db",
	data.QuadrantQuestionMark: "#f1c40f",
	data.QuadrantConcern:      "#e74c3c",
}

// RecommendationColors maps Gray Associates recommendations to marker
// colors.
var RecommendationColors = map[string]string{
	data.RecGrow:         "#2ecc71",
	data.RecSustain:      "#3498db",
	data.RecTransform:    "#f39c12",
	data.RecEvaluate:     "#e67e22",
	data.RecSunsetReview: "#e74c3c",
}

// recommendationTints are the pale row backgrounds in the Gray scorecard.
var recommendationTints = map[string]string{
	data.RecGrow:         BlueWash,
	data.RecSustain:      BluePale,
	data.RecTransform:    "#e8f0f8",
	data.RecEvaluate:     "#f0f4f8",
	data.RecSunsetReview: "#f5f0f0",
}

// SWOTColors maps quadrant names to their accent colors.
var SWOTColors = map[string]string{
	"Strengths":     "#2ecc71",
	"Weaknesses":    "#e74c3c",
	"Opportunities": "#3498db",
	"Threats":       "#e67e22",
}

// ZoneColors maps Zone to Win zone names to their accents. Short names
// (without the " Zone" suffix) are included for allocation charts.
var ZoneColors = map[string]string{
	"Performance Zone":    "#2ecc71",
	"Productivity Zone":   "#3498db",
	"Incubation Zone":     "#f39c12",
	"Transformation Zone": "#9b59b6",
	"Performance":         "#2ecc71",
	"Productivity":        "#3498db",
	"Incubation":          "#f39c12",
	"Transformation":      "#9b59b6",
}

// ScenarioColors maps scenario names to their accents.
var ScenarioColors = map[string]string{
	"Optimistic":   "#2ecc71",
	"Most Likely":  "#f39c12",
	"Conservative": "#e74c3c",
}

// impactColor returns the semantic color for an impact level.
func impactColor(impact string) string {
	switch impact {
	case data.ImpactHigh:
		return ColorHigh
	case data.ImpactMedium:
		return ColorMedium
	case data.ImpactLow:
		return ColorLow
	}
	return ColorNeutral
}

// trendColor returns the semantic color for a directional trend label.
func trendColor(trend string) string {
	switch trend {
	case "Negative", "Increasing", "Declining":
		return ColorHigh
	case "Mixed":
		return ColorMedium
	case "Stable":
		return Blue
	case "Opportunity", "Improving":
		return ColorPositive
	case "Decreasing":
		return ColorLow
	}
	return ColorNeutral
}

// trendGlyph marks an indicator's direction: ^ rising, v falling, - flat.
func trendGlyph(trend string) string {
	switch trend {
	case "Increasing", "Improving":
		return "^"
	case "Decreasing", "Declining":
		return "v"
	case "Stable":
		return "-"
	}
	return "?"
}

// investmentColor returns the semantic color for an investment level.
func investmentColor(level string) string {
	switch level {
	case data.InvestHigh:
		return ColorHigh
	case data.InvestMedium:
		return ColorMedium
	case data.InvestLow:
		return Blue
	}
	return ColorNeutral
}
