// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fortlewis-ir/summit/internal/config"
	"github.com/fortlewis-ir/summit/internal/docs"
	"github.com/fortlewis-ir/summit/internal/export"
)

// Export-specific flag values.
var (
	exportFormat  string
	exportOutput  string
	exportDocsDir string
	exportTitle   string
)

// exportCmd renders the dashboard to static files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dashboard as a static snapshot",
	Long: `Render every tab to a static file without running the server.

The html format produces a self-contained page with all chart data
inlined, suitable for emailing to board members or archiving alongside a
planning cycle. json dumps the raw snapshot; markdown writes a text
briefing with tables but no charts.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "html", "output format (html, json, markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (default "+config.DefaultExportDir+")")
	exportCmd.Flags().StringVar(&exportDocsDir, "docs-dir", "", "directory holding generated deliverables (default "+config.DefaultDocsDir+")")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "dashboard title")
}

func runExport(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions(config.Options{
		Title:     exportTitle,
		DocsDir:   exportDocsDir,
		ExportDir: exportOutput,
	})
	if err != nil {
		return err
	}

	formatter, err := export.GetFormatter(exportFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "summit: %v", err)
	}

	store, err := docs.NewStore(opts.DocsDir)
	if err != nil {
		return exitError(ExitInvalidArgs, "summit: docs store: %v", err)
	}

	snap, err := export.Collect(store, opts.Title, time.Now())
	if err != nil {
		return exitError(ExitServerFailure, "summit: building snapshot: %v", err)
	}

	if err := os.MkdirAll(opts.ExportDir, 0o750); err != nil {
		return exitError(ExitInvalidArgs, "summit: cannot create output directory %q (%v)", opts.ExportDir, err)
	}

	outPath := filepath.Join(opts.ExportDir, "dashboard"+formatter.Ext())
	f, err := os.Create(outPath) //nolint:gosec // path derives from user-chosen output dir
	if err != nil {
		return exitError(ExitInvalidArgs, "summit: cannot create %q (%v)", outPath, err)
	}
	defer f.Close() //nolint:errcheck // best-effort close on output file

	if err := formatter.Format(snap, f); err != nil {
		return exitError(ExitServerFailure, "summit: formatting failed (%v)", err)
	}

	slog.Info("export complete", "format", formatter.Name(), "path", outPath, "tabs", len(snap.Tabs))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
	return nil
}
