// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreTabs resets the registry and re-registers all init-registered tabs.
func restoreTabs() {
	resetForTesting()
	Register(Definition{ID: "summary", Label: "Executive Summary", Phase: "Overview", Order: 1, Build: buildSummary})
	Register(Definition{ID: "pestle", Label: "PESTLE Analysis", Phase: "Phase 1", Order: 2, Build: buildPESTLE})
	Register(Definition{ID: "porters", Label: "Porter's Five Forces", Phase: "Phase 1", Order: 3, Build: buildPorters})
	Register(Definition{ID: "gray", Label: "Gray Associates", Phase: "Phase 1", Order: 4, Build: buildGray})
	Register(Definition{ID: "bcg", Label: "BCG Matrix", Phase: "Phase 1", Order: 5, Build: buildBCG})
	Register(Definition{ID: "swot", Label: "SWOT Synthesis", Phase: "Phase 2", Order: 6, Build: buildSWOT})
	Register(Definition{ID: "zonetowin", Label: "Zone to Win", Phase: "Phase 3", Order: 7, Build: buildZone})
	Register(Definition{ID: "roadmap", Label: "Strategic Roadmap", Phase: "Phase 3", Order: 8, Build: buildRoadmap})
	Register(Definition{ID: "implementation", Label: "Implementation", Phase: "Phase 2", Order: 9, Build: buildImplementation})
}

func TestRegister_And_Get(t *testing.T) {
	resetForTesting()
	defer restoreTabs()

	Register(Definition{ID: "test-tab", Label: "Test Tab", Order: 1, Build: func() *Layout { return &Layout{Tab: "test-tab"} }})

	got, err := Get("test-tab")
	require.NoError(t, err)
	assert.Equal(t, "Test Tab", got.Label)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	resetForTesting()
	defer restoreTabs()

	Register(Definition{ID: "dup", Build: func() *Layout { return nil }})
	assert.Panics(t, func() {
		Register(Definition{ID: "dup", Build: func() *Layout { return nil }})
	})
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestTabs_OrderedByDisplayOrder(t *testing.T) {
	tabs := Tabs()
	require.Len(t, tabs, 9)

	wantIDs := []string{"summary", "pestle", "porters", "gray", "bcg", "swot", "zonetowin", "roadmap", "implementation"}
	for i, tab := range tabs {
		assert.Equal(t, wantIDs[i], tab.ID)
		assert.Equal(t, i+1, tab.Order)
	}
}

func TestBuild_UnknownTab(t *testing.T) {
	_, err := Build("nope")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestBuild_AllTabsProduceLayouts(t *testing.T) {
	for _, tab := range Tabs() {
		layout, err := Build(tab.ID)
		require.NoError(t, err, tab.ID)
		require.NotNil(t, layout, tab.ID)
		assert.Equal(t, tab.ID, layout.Tab)
		assert.NotEmpty(t, layout.Title, tab.ID)
		assert.NotEmpty(t, layout.Blocks, tab.ID)
	}
}
