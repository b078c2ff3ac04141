// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package view builds declarative tab layouts from the static data store.
// Each tab has one pure builder that transforms fixed records into a tree
// of blocks (stat cards, charts, tables, detail cards, insight lists). The
// browser renders the tree; nothing here touches the network or disk.
package view

// Layout is the full declarative content of one dashboard tab.
type Layout struct {
	Tab    string  `json:"tab"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// BlockType discriminates the block variants the frontend knows how to
// render.
type BlockType string

// Known block types.
const (
	BlockHeading     BlockType = "heading"
	BlockDescription BlockType = "description"
	BlockSourceBadge BlockType = "source_badge"
	BlockDownloads   BlockType = "downloads"
	BlockStatCards   BlockType = "stat_cards"
	BlockChartRow    BlockType = "chart_row"
	BlockTable       BlockType = "table"
	BlockCards       BlockType = "cards"
	BlockInsights    BlockType = "insights"
	BlockNote        BlockType = "note"
)

// Block is one renderable unit in a layout. Exactly the fields relevant to
// its Type are populated; everything else stays empty.
type Block struct {
	Type BlockType `json:"type"`

	// Heading, description, and note text.
	Text string `json:"text,omitempty"`

	// Source attribution: badge source name plus file detail, or a small
	// annotation under a chart/table.
	Source string `json:"source,omitempty"`
	Detail string `json:"detail,omitempty"`

	Stats     []StatCard `json:"stats,omitempty"`
	Charts    []*Chart   `json:"charts,omitempty"`
	Table     *Table     `json:"table,omitempty"`
	Cards     []Card     `json:"cards,omitempty"`
	Columns   int        `json:"columns,omitempty"` // card grid columns (0 = single column)
	Title     string     `json:"title,omitempty"`   // insights box title
	Items     []string   `json:"items,omitempty"`   // insights entries
	Downloads []Download `json:"downloads,omitempty"`
}

// StatCard is one headline metric tile.
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Sub    string `json:"sub,omitempty"`
	Trend  string `json:"trend,omitempty"`
	Accent string `json:"accent,omitempty"`
}

// Badge is a small colored pill next to a card title.
type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// TitledList is a labeled bullet list inside a card.
type TitledList struct {
	Title string   `json:"title"`
	Color string   `json:"color,omitempty"`
	Items []string `json:"items"`
}

// Card is a bordered detail card: a PESTLE category, a Porter force, a SWOT
// quadrant, a zone, or a scenario.
type Card struct {
	Title  string       `json:"title"`
	Tag    string       `json:"tag,omitempty"` // small gray suffix, e.g. "6 items"
	Accent string       `json:"accent,omitempty"`
	Icon   string       `json:"icon,omitempty"`
	Badges []Badge      `json:"badges,omitempty"`
	Body   string       `json:"body,omitempty"`
	Lists  []TitledList `json:"lists,omitempty"`
	Table  *Table       `json:"table,omitempty"`
	Chart  *Chart       `json:"chart,omitempty"`
	Items  []CardItem   `json:"items,omitempty"` // SWOT-style titled items
}

// CardItem is one attributed finding inside a card.
type CardItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Source string `json:"source,omitempty"`
}

// Column describes one table column.
type Column struct {
	Title string `json:"title"`
	Align string `json:"align,omitempty"` // "", "right", "center"
}

// Row is one table row. Note, when set, renders as a full-width commentary
// row beneath the cells.
type Row struct {
	Cells  []string `json:"cells"`
	Colors []string `json:"colors,omitempty"` // per-cell text color, aligned with Cells
	Note   string   `json:"note,omitempty"`
	Color  string   `json:"color,omitempty"` // row background tint
}

// Table is a column/row grid with optional per-row notes and tints.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Download describes one deliverable button. Unavailable downloads render
// disabled.
type Download struct {
	Label     string `json:"label"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// StampDownloads sets availability on every downloads block using the given
// check. Builders declare names only; callers decide what exists.
func StampDownloads(l *Layout, available func(name string) bool) {
	for bi := range l.Blocks {
		b := &l.Blocks[bi]
		if b.Type != BlockDownloads {
			continue
		}
		for di := range b.Downloads {
			b.Downloads[di].Available = available(b.Downloads[di].Name)
		}
	}
}
