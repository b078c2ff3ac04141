// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortlewis-ir/summit/internal/data"
	"github.com/fortlewis-ir/summit/internal/docs"
)

// blocksOfType filters a layout's blocks by type.
func blocksOfType(l *Layout, bt BlockType) []Block {
	var out []Block
	for _, b := range l.Blocks {
		if b.Type == bt {
			out = append(out, b)
		}
	}
	return out
}

func TestBuildSummary_StatCards(t *testing.T) {
	l := buildSummary()

	stats := blocksOfType(l, BlockStatCards)
	require.Len(t, stats, 1)
	require.Len(t, stats[0].Stats, 6)

	assert.Equal(t, "3,457", stats[0].Stats[0].Value)
	assert.Equal(t, "-2.5% YoY", stats[0].Stats[0].Sub)
	assert.Equal(t, "66.1%", stats[0].Stats[3].Value)
}

func TestBuildSummary_RetentionChartHasBenchmarkLine(t *testing.T) {
	c := summaryRetentionChart()

	shapes, ok := c.Layout["shapes"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, shapes, 1)
	assert.Equal(t, data.NationalAvgRetention, shapes[0]["y0"])

	yaxis := c.Layout["yaxis"].(map[string]any)
	assert.Equal(t, []float64{50, 80}, yaxis["range"])
}

func TestBuildPESTLE_SixCategoryCards(t *testing.T) {
	l := buildPESTLE()

	cards := blocksOfType(l, BlockCards)
	require.Len(t, cards, 1)
	require.Len(t, cards[0].Cards, 6)
	assert.Equal(t, "Political", cards[0].Cards[0].Title)
	assert.Equal(t, "Environmental", cards[0].Cards[5].Title)

	// Each card carries impact and trend badges.
	for _, card := range cards[0].Cards {
		require.Len(t, card.Badges, 2, card.Title)
		assert.Len(t, card.Lists, 2, card.Title)
	}
}

func TestPESTLERadar_ClosesPolygon(t *testing.T) {
	c := pestleRadarChart()

	require.Len(t, c.Traces, 1)
	r := c.Traces[0]["r"].([]float64)
	theta := c.Traces[0]["theta"].([]string)
	require.Len(t, r, 7) // six categories plus the closing point
	assert.Equal(t, r[0], r[6])
	assert.Equal(t, theta[0], theta[6])
}

func TestBuildPorters_ForceChartRange(t *testing.T) {
	c := porterForceChart()

	xaxis := c.Layout["xaxis"].(map[string]any)
	assert.Equal(t, []float64{0, 5.5}, xaxis["range"])

	require.Len(t, c.Traces, 1)
	scores := c.Traces[0]["x"].([]float64)
	require.Len(t, scores, 5)
	// Reversed: Competitive Rivalry (4.5) renders last so it sits on top.
	assert.Equal(t, 4.5, scores[4])
}

func TestForceColor_Grades(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{4.5, ColorHigh},
		{4.0, ColorHigh},
		{3.5, ColorMedium},
		{2.9, ColorLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, forceColor(tt.score), "score %.1f", tt.score)
	}
}

func TestBuildGray_ScorecardCoversAllPrograms(t *testing.T) {
	l := buildGray()

	tables := blocksOfType(l, BlockTable)
	require.Len(t, tables, 1)
	tbl := tables[0].Table
	require.NotNil(t, tbl)
	assert.Len(t, tbl.Rows, len(data.GrayPrograms))
	assert.Equal(t, "Business Administration", tbl.Rows[0].Cells[0])
	assert.Equal(t, data.RecGrow, tbl.Rows[0].Cells[8])
}

func TestGrayMatrix_CrosshairAt55(t *testing.T) {
	c := grayMatrixChart()

	shapes := c.Layout["shapes"].([]map[string]any)
	require.Len(t, shapes, 2)
	assert.Equal(t, 55.0, shapes[0]["x0"])
	assert.Equal(t, 55.0, shapes[1]["y0"])

	// One trace per recommendation present in the portfolio.
	assert.Len(t, c.Traces, 5)
}

func TestBuildBCG_QuadrantCounts(t *testing.T) {
	l := buildBCG()

	stats := blocksOfType(l, BlockStatCards)
	require.Len(t, stats, 1)
	require.Len(t, stats[0].Stats, 4)
	assert.Equal(t, "Stars", stats[0].Stats[0].Label)
	assert.Equal(t, "2", stats[0].Stats[0].Value)
	assert.Equal(t, "9", stats[0].Stats[1].Value) // Cash Cows
}

func TestBCGMatrix_CrosshairAtShareThreshold(t *testing.T) {
	c := bcgMatrixChart()

	shapes := c.Layout["shapes"].([]map[string]any)
	require.Len(t, shapes, 2)
	assert.Equal(t, data.BCGShareThreshold, shapes[0]["x0"])
	assert.Equal(t, 0.0, shapes[1]["y0"])
}

func TestBuildSWOT_FourQuadrants(t *testing.T) {
	l := buildSWOT()

	cards := blocksOfType(l, BlockCards)
	require.Len(t, cards, 1)
	require.Len(t, cards[0].Cards, 4)

	names := []string{"Strengths", "Weaknesses", "Opportunities", "Threats"}
	for i, card := range cards[0].Cards {
		assert.Equal(t, names[i], card.Title)
		assert.NotEmpty(t, card.Items)
		for _, item := range card.Items {
			assert.NotEmpty(t, item.Source, "%s: %s", card.Title, item.Title)
		}
	}
}

func TestBuildZone_ScenarioAllocationsSum100(t *testing.T) {
	l := buildZone()

	blocks := blocksOfType(l, BlockCards)
	require.Len(t, blocks, 2) // zones then scenarios
	scenarios := blocks[1].Cards
	require.Len(t, scenarios, 3)

	for _, card := range scenarios {
		require.NotNil(t, card.Chart, card.Title)
		values := card.Chart.Traces[0]["values"].([]float64)
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		assert.Equal(t, 100.0, sum, card.Title)
	}
}

func TestBuildZone_CrossReferenceNotes(t *testing.T) {
	l := buildZone()

	zoneCards := blocksOfType(l, BlockCards)[0].Cards
	perf := zoneCards[0]
	require.Equal(t, "Performance Zone", perf.Title)

	// Business Administration has a cross-reference note; its row should
	// carry the flattened commentary.
	row := perf.Table.Rows[0]
	require.Equal(t, "Business Administration", row.Cells[0])
	assert.Contains(t, row.Note, "Supports:")
	assert.Contains(t, row.Note, "BCG Matrix")
	assert.Contains(t, row.Note, "Risk:")
}

func TestMilestoneDurationMS(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		target string
		want   float64
	}{
		{"one day", "2026-01-01", "2026-01-02", 86400000},
		{"inverted", "2026-02-01", "2026-01-01", 0},
		{"bad date", "not-a-date", "2026-01-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, milestoneDurationMS(tt.start, tt.target))
		})
	}
}

func TestKPIProgressPct(t *testing.T) {
	enrollment := data.RoadmapKPIs[0] // baseline 3457, stretch 3800
	assert.InDelta(t, 12.5, kpiProgressPct(enrollment, 3500), 0.2)
	assert.Equal(t, 100.0, kpiProgressPct(enrollment, 4000))
	assert.Equal(t, 0.0, kpiProgressPct(enrollment, 3000))

	gap := data.RoadmapKPIs[8] // First-Gen gap: baseline 5.2, stretch 2.0, improves downward
	assert.InDelta(t, 37.5, kpiProgressPct(gap, 4.0), 0.2)
}

func TestRiskMatrix_BubbleSizing(t *testing.T) {
	c := riskMatrixChart()

	require.Len(t, c.Traces, 1)
	marker := c.Traces[0]["marker"].(map[string]any)
	size := marker["size"].([]float64)
	require.Len(t, size, len(data.Risks))

	// First risk: Medium probability x High impact = 6, so 6*8+10.
	assert.Equal(t, 58.0, size[0])
}

func TestBuildImplementation_BudgetTotals(t *testing.T) {
	l := buildImplementation()

	stats := blocksOfType(l, BlockStatCards)
	require.Len(t, stats, 1)
	assert.Equal(t, "$1,925,000", stats[0].Stats[2].Value)
	assert.Equal(t, "$740,000", stats[0].Stats[3].Value)
}

func TestLayouts_MarshalToJSON(t *testing.T) {
	for _, tab := range Tabs() {
		layout, err := Build(tab.ID)
		require.NoError(t, err)
		raw, err := json.Marshal(layout)
		require.NoError(t, err, tab.ID)
		assert.NotEmpty(t, raw)
	}
}

func TestComma(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{3457, "3,457"},
		{1925000, "1,925,000"},
		{-12345, "-12,345"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, comma(tt.in))
	}
}

func TestPestleImpactChart(t *testing.T) {
	c := pestleImpactChart()

	require.Len(t, c.Traces, 1)
	assert.Len(t, c.Traces[0]["x"], 6)
	yaxis := c.Layout["yaxis"].(map[string]any)
	assert.Equal(t, []float64{0, 5.5}, yaxis["range"])
}

func TestPorterRadarChart_ClosesPolygon(t *testing.T) {
	c := porterRadarChart()

	require.Len(t, c.Traces, 1)
	r := c.Traces[0]["r"].([]float64)
	require.Len(t, r, 6)
	assert.Equal(t, r[0], r[5])
}

func TestGrayCountChart_SumsToPortfolio(t *testing.T) {
	counts := map[string]int{}
	for _, p := range data.GrayPrograms {
		counts[p.Recommendation]++
	}
	c := grayCountChart(counts)

	values := c.Traces[0]["y"].([]float64)
	var total float64
	for _, v := range values {
		total += v
	}
	assert.Equal(t, float64(len(data.GrayPrograms)), total)
}

func TestBCGQuadrantSummary(t *testing.T) {
	tbl := bcgQuadrantSummary()

	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, "Star", tbl.Rows[0].Cells[0])
	assert.Equal(t, "2", tbl.Rows[0].Cells[1])
	assert.Equal(t, "Cash Cow", tbl.Rows[1].Cells[0])
	assert.Equal(t, "9", tbl.Rows[1].Cells[1])
	// Star average share: (5.8 + 6.0) / 2.
	assert.Equal(t, "5.9", tbl.Rows[0].Cells[2])
}

func TestScenarioComparisonChart(t *testing.T) {
	c := scenarioComparisonChart()

	require.Len(t, c.Traces, 3)
	assert.Equal(t, "Optimistic", c.Traces[0]["name"])
	assert.Equal(t, "group", c.Layout["barmode"])
	yaxis := c.Layout["yaxis"].(map[string]any)
	assert.Equal(t, "log", yaxis["type"])
}

func TestMilestoneZoneChart_CoversAllMilestones(t *testing.T) {
	c := milestoneZoneChart()

	values := c.Traces[0]["y"].([]float64)
	var total float64
	for _, v := range values {
		total += v
	}
	assert.Equal(t, float64(len(data.RoadmapMilestones)), total)
}

func TestMilestoneTable(t *testing.T) {
	tbl := milestoneTable()

	require.Len(t, tbl.Rows, len(data.RoadmapMilestones))
	assert.Equal(t, "RM-001", tbl.Rows[0].Cells[0])
	assert.Equal(t, "Complete", tbl.Rows[0].Cells[5])
}

func TestSummaryPhaseAndFrameworkCards(t *testing.T) {
	assert.Len(t, phaseCards(), 3)
	assert.Len(t, frameworkCards(), 4)
	for _, card := range frameworkCards() {
		assert.NotEmpty(t, card.Body)
		assert.Equal(t, "Phase 1", card.Tag)
	}
}

func TestPorterIndicatorTrendGlyphs(t *testing.T) {
	l := buildPorters()

	cards := blocksOfType(l, BlockCards)
	require.Len(t, cards, 1)
	for _, card := range cards[0].Cards {
		require.NotNil(t, card.Table)
		for _, row := range card.Table.Rows {
			require.Len(t, row.Cells, 3)
			trend := row.Cells[2]
			switch {
			case strings.HasSuffix(trend, "Increasing"), strings.HasSuffix(trend, "Improving"):
				assert.Equal(t, "^", trend[:1], trend)
			case strings.HasSuffix(trend, "Decreasing"):
				assert.Equal(t, "v", trend[:1], trend)
			case strings.HasSuffix(trend, "Stable"):
				assert.Equal(t, "-", trend[:1], trend)
			default:
				t.Errorf("unexpected trend cell %q", trend)
			}
			require.Len(t, row.Colors, 3)
			assert.NotEmpty(t, row.Colors[2], trend)
		}
	}
}

func TestTrendGlyphColors(t *testing.T) {
	assert.Equal(t, ColorHigh, trendColor("Increasing"))
	assert.Equal(t, ColorLow, trendColor("Decreasing"))
	assert.Equal(t, Blue, trendColor("Stable"))
	assert.Equal(t, ColorPositive, trendColor("Improving"))
}

func TestSummaryRetentionGroupChart(t *testing.T) {
	c := summaryRetentionGroupChart()

	names := c.Traces[0]["x"].([]string)
	require.Len(t, names, len(data.RetentionByGroup))
	assert.Equal(t, "Total Population", names[0])

	// Groups trailing the total render in the attention color.
	colors := c.Traces[0]["marker"].(map[string]any)["color"].([]string)
	assert.Equal(t, Navy, colors[0])
	for _, col := range colors[1:] {
		assert.Equal(t, ColorMedium, col)
	}
}

func TestSummaryDegreesChart(t *testing.T) {
	c := summaryDegreesChart()

	names := c.Traces[0]["y"].([]string)
	values := c.Traces[0]["x"].([]float64)
	require.Len(t, names, len(data.DegreesAwarded))

	// Reversed descending order puts the largest conferral count last.
	assert.Equal(t, "Psychology", names[len(names)-1])
	assert.Equal(t, float64(59), values[len(values)-1])
	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, values[i-1], values[i])
	}
}

// TestDownloadNamesAreRegisteredDeliverables keeps builder download buttons
// and the deliverable registry on the same file names. A mismatch would
// render a generated file as permanently unavailable.
func TestDownloadNamesAreRegisteredDeliverables(t *testing.T) {
	registered := map[string]bool{}
	for _, d := range docs.Defaults() {
		registered[d.Name] = true
	}
	for _, def := range Tabs() {
		l := def.Build()
		for _, b := range blocksOfType(l, BlockDownloads) {
			for _, dl := range b.Downloads {
				assert.True(t, registered[dl.Name],
					"tab %s declares unregistered deliverable %s", def.ID, dl.Name)
			}
		}
	}
}
