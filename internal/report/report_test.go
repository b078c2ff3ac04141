// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestTable_AlignsColumns(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Name"},
		Column{Header: "Count", Align: AlignRight},
	)
	tbl.AddRow("short", "5")
	tbl.AddRow("a longer name", "1200")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "-------------")
	// Right-aligned count column lines up on the last character.
	assert.True(t, strings.HasSuffix(lines[2], "    5"))
	assert.True(t, strings.HasSuffix(lines[3], " 1200"))
}

func TestTable_MissingCellsRenderEmpty(t *testing.T) {
	tbl := NewTable(Column{Header: "A"}, Column{Header: "B"})
	tbl.AddRow("only")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Contains(t, buf.String(), "only")
}

func TestTable_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTable().Render(&buf))
	assert.Empty(t, buf.String())
}

func TestColorDelta_Direction(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	tests := []struct {
		val  string
		want string // ANSI color code
	}{
		{"+43", "32"},      // growth up is good
		{"-20", "31"},      // growth down is bad
		{"-2.2 pp", "32"},  // gap narrowing is good
		{"+1.0 pp", "31"},  // gap widening is bad
	}
	for _, tt := range tests {
		assert.Contains(t, ColorDelta(tt.val), "\x1b["+tt.want+"m", tt.val)
	}
}

func TestColorScore_Bands(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	assert.Contains(t, ColorScore("9"), "\x1b[31m")
	assert.Contains(t, ColorScore("4"), "\x1b[33m")
	assert.Contains(t, ColorScore("2"), "\x1b[32m")
	assert.Equal(t, "n/a", ColorScore("n/a"))
}

func TestWriteKPIs_AllCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKPIs(&buf, ""))
	out := buf.String()

	assert.Contains(t, out, "Strategic KPIs")
	assert.Contains(t, out, "Total Enrollment")
	assert.Contains(t, out, "66.1%")
	assert.Contains(t, out, "5.2 pp")
	// Twelve KPI rows plus title, blank, header, rule.
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 16)
}

func TestWriteKPIs_CategoryFilter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKPIs(&buf, "equity"))
	out := buf.String()

	assert.Contains(t, out, "First-Gen Retention Gap")
	assert.Contains(t, out, "Native American Retention Rate")
	assert.NotContains(t, out, "Total Enrollment")
}

func TestWriteKPIs_UnknownCategory(t *testing.T) {
	err := WriteKPIs(&bytes.Buffer{}, "vibes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"vibes"`)
	assert.Contains(t, err.Error(), "Equity")
	assert.Contains(t, err.Error(), "Portfolio Health")
}

func TestWriteRisks_SortedByScore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRisks(&buf))
	out := buf.String()

	assert.Contains(t, out, "Risk Register")
	// The High/High risk leads the register.
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	assert.Contains(t, lines[4], "Political pressure on DEI programs")
	assert.Contains(t, lines[4], "9")
}
