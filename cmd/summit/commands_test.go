// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores a command's flags and the global flags to their
// defaults so tests do not leak state into each other.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	t.Cleanup(func() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	})
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// runCommand executes the root command with args and returns captured
// stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "summit dev\n", out)
}

func TestKPIsCommand(t *testing.T) {
	out, _, err := runCommand(t, "kpis")
	require.NoError(t, err)
	assert.Contains(t, out, "Strategic KPIs")
	assert.Contains(t, out, "Total Enrollment")
	assert.NotContains(t, out, "Risk Register")
}

func TestKPIsCommand_CategoryAndRisks(t *testing.T) {
	resetFlags(t, kpisCmd)

	out, _, err := runCommand(t, "kpis", "--category", "equity", "--risks")
	require.NoError(t, err)
	assert.Contains(t, out, "First-Gen Retention Gap")
	assert.NotContains(t, out, "Total Enrollment")
	assert.Contains(t, out, "Risk Register")
}

func TestKPIsCommand_UnknownCategory(t *testing.T) {
	resetFlags(t, kpisCmd)

	_, _, err := runCommand(t, "kpis", "--category", "vibes")
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, ece.Error(), "vibes")
}

func TestValidateCommand_CleanData(t *testing.T) {
	out, _, err := runCommand(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "valid:")
	assert.Contains(t, out, "records checked")
}

func TestExportCommand_WritesSnapshot(t *testing.T) {
	resetFlags(t, exportCmd)

	dir := t.TempDir()
	outDir := filepath.Join(dir, "dist")

	out, _, err := runCommand(t, "export",
		"--config", dir,
		"--format", "json",
		"--output", outDir,
		"--docs-dir", filepath.Join(dir, "generated_docs"))
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(filepath.Join(outDir, "dashboard.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"generated_at"`)
	assert.Contains(t, string(data), `"tabs"`)
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	resetFlags(t, exportCmd)

	dir := t.TempDir()
	_, _, err := runCommand(t, "export", "--config", dir, "--format", "pdf")
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, ece.Error(), "pdf")
}

func TestServeCommand_RejectsBadConfig(t *testing.T) {
	resetFlags(t, serveCmd)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".summit.yaml"),
		[]byte("users:\n  \"\": nopass\n"), 0o600))

	_, _, err := runCommand(t, "serve", "--config", dir)
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
}

func TestExitError_SilentWhenEmpty(t *testing.T) {
	err := exitError(ExitValidation, "")
	assert.Equal(t, ExitValidation, err.ExitCode())
	assert.Empty(t, err.Error())
}
