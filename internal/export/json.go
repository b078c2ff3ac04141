// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package export

import (
	"encoding/json"
	"fmt"
	"io"
)

func init() {
	RegisterFormatter(&JSONFormatter{})
}

// JSONFormatter writes the snapshot as indented JSON.
type JSONFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// Name returns the format name.
func (j *JSONFormatter) Name() string { return "json" }

// Ext returns the output file extension.
func (j *JSONFormatter) Ext() string { return ".json" }

// Format writes the snapshot to w.
func (j *JSONFormatter) Format(snap *Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
