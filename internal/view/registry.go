// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTab indicates a requested tab ID has no registered builder.
var ErrUnknownTab = errors.New("unknown tab")

// Definition is one registered dashboard tab: its stable ID, display label,
// project phase, display order, and the pure builder that produces its
// layout.
type Definition struct {
	ID    string
	Label string
	Phase string
	Order int
	Build func() *Layout
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Definition)
)

// Register adds a tab to the global registry.
// It panics if a tab with the same ID is already registered.
func Register(d Definition) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[d.ID]; exists {
		panic(fmt.Sprintf("tab already registered: %s", d.ID))
	}
	registry[d.ID] = d
}

// Get returns the tab with the given ID.
func Get(id string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownTab, id)
	}
	return d, nil
}

// Tabs returns all registered tabs sorted by display order. Registration
// happens in init funcs whose run order follows file names, so the explicit
// Order field is what callers rely on.
func Tabs() []Definition {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Definition, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Build looks up a tab and runs its builder.
func Build(id string) (*Layout, error) {
	d, err := Get(id)
	if err != nil {
		return nil, err
	}
	return d.Build(), nil
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Definition)
}
