// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fortlewis-ir/summit/internal/report"
)

// KPI-specific flag values.
var (
	kpisCategory string
	kpisRisks    bool
)

// kpisCmd prints the strategic KPI table to the terminal.
var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Print the strategic KPI targets",
	Long: `Print the 2025-2027 KPI table: baseline, Year 1, Year 2, and stretch
targets for each tracked indicator. Deltas are colored by direction of
improvement; gap KPIs improve downward.`,
	Args: cobra.NoArgs,
	RunE: runKPIs,
}

func init() {
	kpisCmd.Flags().StringVarP(&kpisCategory, "category", "c", "", "show only one KPI category (e.g. Enrollment, Equity)")
	kpisCmd.Flags().BoolVar(&kpisRisks, "risks", false, "also print the risk register")
}

func runKPIs(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if err := report.WriteKPIs(w, kpisCategory); err != nil {
		return exitError(ExitInvalidArgs, "summit: %v", err)
	}
	if kpisRisks {
		_, _ = fmt.Fprintln(w)
		if err := report.WriteRisks(w); err != nil {
			return exitError(ExitServerFailure, "summit: %v", err)
		}
	}
	return nil
}
