// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fortlewis-ir/summit/internal/data"
)

// WriteRisks renders the strategic risk register, highest score first.
func WriteRisks(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Risk Register")); err != nil {
		return err
	}

	risks := make([]data.Risk, len(data.Risks))
	copy(risks, data.Risks)
	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Score() > risks[j].Score()
	})

	t := NewTable(
		Column{Header: "Risk"},
		Column{Header: "Probability", Color: ColorLevel},
		Column{Header: "Impact", Color: ColorLevel},
		Column{Header: "Score", Align: AlignRight, Color: ColorScore},
		Column{Header: "Owner"},
	)
	for _, r := range risks {
		t.AddRow(r.Risk, r.Probability, r.Impact, strconv.Itoa(r.Score()), r.Owner)
	}
	return t.Render(w)
}
