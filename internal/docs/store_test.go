// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package docs

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeliverable(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestNewStore_DefaultsWithoutManifest(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	entries := s.List()
	assert.Len(t, entries, len(Defaults()))
	for _, e := range entries {
		assert.False(t, e.Available, e.Name)
	}
}

// TestNewStore_DefaultsMatchGeneratorOutput writes every file the batch
// document generator produces and checks that each registered default picks
// it up. A registry name drifting from the generator's output would leave a
// generated file permanently "not available".
func TestNewStore_DefaultsMatchGeneratorOutput(t *testing.T) {
	generated := []string{
		"PESTLE_Executive_Summary.docx",
		"PESTLE_Slide_Deck.pptx",
		"Porters_Executive_Summary.docx",
		"Porters_Slide_Deck.pptx",
		"Gray_Executive_Summary.docx",
		"Gray_Slide_Deck.pptx",
		"BCG_Executive_Summary.docx",
		"BCG_Slide_Deck.pptx",
		"SWOT_Matrix.pptx",
	}
	dir := t.TempDir()
	for _, name := range generated {
		writeDeliverable(t, dir, name, "content")
	}

	s, err := NewStore(dir)
	require.NoError(t, err)

	entries := s.List()
	require.Len(t, entries, len(generated))
	for _, e := range entries {
		assert.True(t, e.Available, e.Name)
	}
}

func TestNewStore_MissingDirStillWorks(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.False(t, s.Available("SWOT_Matrix.pptx"))
}

func TestNewStore_ManifestOverridesRegistry(t *testing.T) {
	dir := t.TempDir()
	manifest := `
[[deliverable]]
name = "Custom_Report.docx"
label = "Custom Report"
tab = "summary"
`
	writeDeliverable(t, dir, ManifestName, manifest)
	writeDeliverable(t, dir, "Custom_Report.docx", "content")

	s, err := NewStore(dir)
	require.NoError(t, err)

	entries := s.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Custom_Report.docx", entries[0].Name)
	assert.True(t, entries[0].Available)
	assert.Equal(t, int64(7), entries[0].Size)
}

func TestNewStore_ManifestRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			"missing label",
			"[[deliverable]]\nname = \"a.docx\"\n",
			"missing label",
		},
		{
			"path traversal name",
			"[[deliverable]]\nname = \"../etc/passwd\"\nlabel = \"x\"\n",
			"bare file name",
		},
		{
			"duplicate",
			"[[deliverable]]\nname = \"a.docx\"\nlabel = \"x\"\n[[deliverable]]\nname = \"a.docx\"\nlabel = \"y\"\n",
			"duplicate",
		},
		{
			"bad toml",
			"[[deliverable\n",
			"parsing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeDeliverable(t, dir, ManifestName, tt.manifest)

			_, err := NewStore(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStore_AvailabilityTracksDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	assert.False(t, s.Available("SWOT_Matrix.pptx"))

	writeDeliverable(t, dir, "SWOT_Matrix.pptx", "deck")
	assert.True(t, s.Available("SWOT_Matrix.pptx"))
}

func TestStore_ForTab(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	pestle := s.ForTab("pestle")
	require.Len(t, pestle, 2)
	assert.Equal(t, "PESTLE_Executive_Summary.docx", pestle[0].Name)

	assert.Empty(t, s.ForTab("roadmap"))
}

func TestStore_Open(t *testing.T) {
	dir := t.TempDir()
	writeDeliverable(t, dir, "SWOT_Matrix.pptx", "deck-bytes")

	s, err := NewStore(dir)
	require.NoError(t, err)

	r, size, err := s.Open("SWOT_Matrix.pptx")
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, int64(10), size)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "deck-bytes", string(got))
}

func TestStore_OpenRejectsUnknownAndMissing(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	_, _, err = s.Open("not-registered.docx")
	assert.ErrorIs(t, err, ErrUnknownDeliverable)

	_, _, err = s.Open("../../../etc/passwd")
	assert.ErrorIs(t, err, ErrUnknownDeliverable)

	// Registered but not generated.
	_, _, err = s.Open("SWOT_Matrix.pptx")
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"report.docx", true},
		{"SWOT_Matrix.pptx", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../report.docx", false},
		{"a/b.docx", false},
		{"a\\b.docx", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeName(tt.name), tt.name)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		ContentType("report.docx"))
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		ContentType("deck.PPTX"))
	assert.Equal(t, "application/pdf", ContentType("doc.pdf"))
	assert.Equal(t, "application/octet-stream", ContentType("mystery.bin"))
}
