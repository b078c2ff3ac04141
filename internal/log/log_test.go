// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    slog.Level
	}{
		{"default", false, false, slog.LevelInfo},
		{"verbose", true, false, slog.LevelDebug},
		{"quiet", false, true, slog.LevelWarn},
		{"quiet wins over verbose", true, true, slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.verbose, tt.quiet))
		})
	}
}

func TestSetup_DefaultLevel(t *testing.T) {
	Setup(false, false)

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo), "INFO should be enabled in default mode")
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn), "WARN should be enabled in default mode")
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug), "DEBUG should not be enabled in default mode")
}

func TestSetupWriter_CapturesStream(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, true, false)

	slog.Debug("serving tab", "tab", "summary")
	slog.Info("request complete", "status", 200)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "tab=summary")
	assert.Contains(t, out, "status=200")
}

func TestSetupWriter_QuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, false, true)

	slog.Info("dropped")
	slog.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestSetup_CalledMultipleTimes(t *testing.T) {
	ctx := context.Background()

	Setup(true, false)
	assert.True(t, slog.Default().Handler().Enabled(ctx, slog.LevelDebug))

	Setup(false, true)
	assert.False(t, slog.Default().Handler().Enabled(ctx, slog.LevelDebug))
	assert.True(t, slog.Default().Handler().Enabled(ctx, slog.LevelWarn))
}
