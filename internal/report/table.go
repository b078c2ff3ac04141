// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package report renders dashboard data as aligned, colored terminal
// tables for the CLI.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left, for numeric columns.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, the value is
// printed as-is.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are ignored;
// missing values render as empty cells.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	// Width is rune count; KPI names carry the occasional non-ASCII rune.
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(header, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	rule := make([]string, len(t.columns))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(rule, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			cell := pad(row[i], widths[i], col.Align)
			if col.Color != nil && row[i] != "" {
				// Color the padded cell so ANSI codes never skew widths.
				cell = strings.Replace(cell, row[i], col.Color(row[i]), 1)
			}
			parts[i] = cell
		}
		if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	return nil
}

func pad(val string, width int, align Alignment) string {
	gap := width - utf8.RuneCountInString(val)
	if gap < 0 {
		gap = 0
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + val
	}
	return val + strings.Repeat(" ", gap)
}
