// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fortlewis-ir/summit/internal/validate"
)

// validateCmd runs the data store consistency checks.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dashboard data for inconsistencies",
	Long: `Run consistency checks across the built-in data store: unique IDs,
parseable date ranges, scenario allocations summing to 100, BCG quadrant
labels matching their coordinates, monotonic KPI targets, and known
status and risk labels.

Exits 0 when the data is clean, 2 when any check fails.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	result := validate.DataStore()

	if result.Valid() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d records checked\n", result.Checked)
		return nil
	}

	for _, f := range result.Findings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s:", f.Record)
		if f.Field != "" {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), " %s:", f.Field)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), " %s\n", f.Message)
		if f.Suggestion != "" {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  fix: %s\n", f.Suggestion)
		}
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\n%d finding(s) in %d records\n",
		len(result.Findings), result.Checked)

	return exitError(ExitValidation, "")
}
