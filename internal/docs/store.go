// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package docs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the optional registry override file inside the docs
// directory.
const ManifestName = "manifest.toml"

// manifest mirrors the on-disk manifest.toml structure.
type manifest struct {
	Deliverables []Deliverable `toml:"deliverable"`
}

// Store resolves deliverables against a docs directory on disk.
type Store struct {
	dir          string
	deliverables []Deliverable
	byName       map[string]Deliverable
}

// NewStore builds a store over dir. When dir contains a manifest.toml the
// manifest replaces the built-in registry; otherwise the defaults apply.
// The directory itself does not have to exist: every deliverable simply
// reports as unavailable.
func NewStore(dir string) (*Store, error) {
	dels := Defaults()

	raw, err := os.ReadFile(filepath.Join(dir, ManifestName)) //nolint:gosec // configured docs dir
	switch {
	case err == nil:
		var m manifest
		if err := toml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ManifestName, err)
		}
		if err := checkManifest(m.Deliverables); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ManifestName, err)
		}
		dels = m.Deliverables
	case errors.Is(err, fs.ErrNotExist):
		// no manifest, use the built-in set
	default:
		return nil, err
	}

	byName := make(map[string]Deliverable, len(dels))
	for _, d := range dels {
		byName[d.Name] = d
	}
	return &Store{dir: dir, deliverables: dels, byName: byName}, nil
}

// checkManifest rejects manifest entries that could never be served.
func checkManifest(dels []Deliverable) error {
	seen := make(map[string]bool, len(dels))
	for i, d := range dels {
		if d.Name == "" {
			return fmt.Errorf("deliverable %d: missing name", i)
		}
		if !SafeName(d.Name) {
			return fmt.Errorf("deliverable %q: name must be a bare file name", d.Name)
		}
		if d.Label == "" {
			return fmt.Errorf("deliverable %q: missing label", d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("deliverable %q: duplicate name", d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// SafeName reports whether name is a bare file name with no path
// components. Anything with a separator or a dot-dot segment is rejected
// before it ever reaches the filesystem.
func SafeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	return filepath.Base(name) == name
}

// Entry is one deliverable with its on-disk availability.
type Entry struct {
	Deliverable
	Available bool  `json:"available"`
	Size      int64 `json:"size,omitempty"`
}

// List returns every registered deliverable with availability stamped from
// the filesystem, in registry order.
func (s *Store) List() []Entry {
	out := make([]Entry, 0, len(s.deliverables))
	for _, d := range s.deliverables {
		e := Entry{Deliverable: d}
		if info, err := os.Stat(filepath.Join(s.dir, d.Name)); err == nil && info.Mode().IsRegular() {
			e.Available = true
			e.Size = info.Size()
		}
		out = append(out, e)
	}
	return out
}

// ForTab returns the deliverables belonging to one tab, with availability.
func (s *Store) ForTab(tab string) []Entry {
	var out []Entry
	for _, e := range s.List() {
		if e.Tab == tab {
			out = append(out, e)
		}
	}
	return out
}

// Available reports whether a registered deliverable exists on disk.
func (s *Store) Available(name string) bool {
	if _, ok := s.byName[name]; !ok {
		return false
	}
	info, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil && info.Mode().IsRegular()
}

// Open returns a reader over a deliverable's content. The name must be
// registered and safe; a registered but missing file returns
// ErrNotAvailable.
func (s *Store) Open(name string) (io.ReadCloser, int64, error) {
	if !SafeName(name) {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownDeliverable, name)
	}
	if _, ok := s.byName[name]; !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownDeliverable, name)
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotAvailable, name)
	}
	f, err := os.Open(path) //nolint:gosec // name checked against registry
	if err != nil {
		return nil, 0, err
	}
	return f, info.Size(), nil
}

// ContentType maps a deliverable extension to its MIME type.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}
