// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_ReplacesRegisteredSecrets(t *testing.T) {
	t.Cleanup(resetForTesting)
	Register("flc2026")

	assert.Equal(t, "bad credentials: [REDACTED]", String("bad credentials: flc2026"))
	assert.Equal(t, "no secrets here", String("no secrets here"))
}

func TestRegister_SkipsShortValues(t *testing.T) {
	t.Cleanup(resetForTesting)
	Register("ab", "")

	assert.Equal(t, "ab", String("ab"))
}

func TestUsers_RegistersPasswords(t *testing.T) {
	t.Cleanup(resetForTesting)
	Users(map[string]string{"admin": "hunter22"})

	assert.Equal(t, "[REDACTED]", String("hunter22"))
}
