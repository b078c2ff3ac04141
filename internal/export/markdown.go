// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fortlewis-ir/summit/internal/view"
)

func init() {
	RegisterFormatter(&MarkdownFormatter{})
}

// MarkdownFormatter writes the snapshot as a Markdown briefing. Charts
// have no Markdown rendering; their titles appear as omission notes so the
// reader knows what the live dashboard adds.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// Name returns the format name.
func (m *MarkdownFormatter) Name() string { return "markdown" }

// Ext returns the output file extension.
func (m *MarkdownFormatter) Ext() string { return ".md" }

// Format writes the snapshot to w.
func (m *MarkdownFormatter) Format(snap *Snapshot, w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", snap.Title)
	fmt.Fprintf(&b, "Generated %s\n\n", snap.GeneratedAt.Format("2006-01-02"))

	for _, tab := range snap.Tabs {
		fmt.Fprintf(&b, "---\n\n")
		for _, block := range tab.Layout.Blocks {
			writeBlock(&b, block)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBlock(b *strings.Builder, block view.Block) {
	switch block.Type {
	case view.BlockHeading:
		fmt.Fprintf(b, "## %s\n\n", block.Text)
	case view.BlockDescription, view.BlockNote:
		fmt.Fprintf(b, "%s\n\n", block.Text)
	case view.BlockSourceBadge:
		fmt.Fprintf(b, "> Source: %s", block.Source)
		if block.Detail != "" {
			fmt.Fprintf(b, " (%s)", block.Detail)
		}
		fmt.Fprint(b, "\n\n")
	case view.BlockDownloads:
		for _, d := range block.Downloads {
			state := "available"
			if !d.Available {
				state = "not generated"
			}
			fmt.Fprintf(b, "- %s: `%s` (%s)\n", d.Label, d.Name, state)
		}
		fmt.Fprint(b, "\n")
	case view.BlockStatCards:
		for _, s := range block.Stats {
			fmt.Fprintf(b, "- **%s:** %s", s.Label, s.Value)
			if s.Sub != "" {
				fmt.Fprintf(b, " (%s)", s.Sub)
			}
			fmt.Fprint(b, "\n")
		}
		fmt.Fprint(b, "\n")
	case view.BlockChartRow:
		for _, c := range block.Charts {
			fmt.Fprintf(b, "*Chart omitted: %s*\n\n", c.Title)
		}
	case view.BlockTable:
		if block.Title != "" {
			fmt.Fprintf(b, "### %s\n\n", block.Title)
		}
		writeTable(b, block.Table)
	case view.BlockCards:
		for _, card := range block.Cards {
			writeCard(b, card)
		}
	case view.BlockInsights:
		title := block.Title
		if title == "" {
			title = "Key Insights"
		}
		fmt.Fprintf(b, "### %s\n\n", title)
		for _, item := range block.Items {
			fmt.Fprintf(b, "- %s\n", item)
		}
		fmt.Fprint(b, "\n")
	}
}

func writeCard(b *strings.Builder, card view.Card) {
	fmt.Fprintf(b, "### %s", card.Title)
	if card.Tag != "" {
		fmt.Fprintf(b, " (%s)", card.Tag)
	}
	fmt.Fprint(b, "\n\n")
	for _, badge := range card.Badges {
		fmt.Fprintf(b, "`%s` ", badge.Text)
	}
	if len(card.Badges) > 0 {
		fmt.Fprint(b, "\n\n")
	}
	if card.Body != "" {
		fmt.Fprintf(b, "%s\n\n", card.Body)
	}
	for _, item := range card.Items {
		fmt.Fprintf(b, "- **%s** - %s", item.Title, item.Detail)
		if item.Source != "" {
			fmt.Fprintf(b, " _(Source: %s)_", item.Source)
		}
		fmt.Fprint(b, "\n")
	}
	if len(card.Items) > 0 {
		fmt.Fprint(b, "\n")
	}
	for _, list := range card.Lists {
		fmt.Fprintf(b, "**%s**\n\n", list.Title)
		for _, li := range list.Items {
			fmt.Fprintf(b, "- %s\n", li)
		}
		fmt.Fprint(b, "\n")
	}
	if card.Table != nil {
		writeTable(b, card.Table)
	}
	if card.Chart != nil {
		fmt.Fprintf(b, "*Chart omitted: %s*\n\n", card.Chart.Title)
	}
}

func writeTable(b *strings.Builder, tbl *view.Table) {
	if tbl == nil || len(tbl.Columns) == 0 {
		return
	}
	for i, col := range tbl.Columns {
		if i > 0 {
			fmt.Fprint(b, " | ")
		}
		fmt.Fprint(b, col.Title)
	}
	fmt.Fprint(b, "\n")
	for i := range tbl.Columns {
		if i > 0 {
			fmt.Fprint(b, " | ")
		}
		fmt.Fprint(b, "---")
	}
	fmt.Fprint(b, "\n")
	for _, row := range tbl.Rows {
		for i, cell := range row.Cells {
			if i > 0 {
				fmt.Fprint(b, " | ")
			}
			fmt.Fprint(b, strings.ReplaceAll(cell, "|", "\\|"))
		}
		fmt.Fprint(b, "\n")
		if row.Note != "" {
			fmt.Fprintf(b, "_%s_\n", row.Note)
		}
	}
	fmt.Fprint(b, "\n")
}
