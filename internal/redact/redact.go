// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package redact strips dashboard credentials from strings before they
// appear in error messages or logs.
package redact

import (
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	secrets []string
)

// Register records secret values to scrub from output. Values shorter
// than four characters are skipped so common substrings are never masked.
func Register(values ...string) {
	mu.Lock()
	defer mu.Unlock()
	for _, v := range values {
		if len(v) >= 4 {
			secrets = append(secrets, v)
		}
	}
}

// Users registers every password in a username-to-password map.
func Users(users map[string]string) {
	for _, pw := range users {
		Register(pw)
	}
}

// String replaces any registered secret with "[REDACTED]". Returns the
// input unchanged when no secrets match.
func String(s string) string {
	mu.RLock()
	defer mu.RUnlock()
	for _, secret := range secrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}

// resetForTesting clears registered secrets.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
}
