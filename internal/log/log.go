// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for summit using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level maps the CLI verbosity flags onto a slog level. Quiet wins when
// both flags are set:
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Setup installs the default logger at the level implied by the verbosity
// flags. Output goes to stderr via slog.TextHandler so request logs never
// mix with command output on stdout.
func Setup(verbose, quiet bool) {
	SetupWriter(os.Stderr, verbose, quiet)
}

// SetupWriter is Setup with an explicit destination. Tests use it to
// capture the log stream.
func SetupWriter(w io.Writer, verbose, quiet bool) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})
	slog.SetDefault(slog.New(handler))
}
