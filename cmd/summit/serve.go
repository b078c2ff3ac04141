// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fortlewis-ir/summit/internal/config"
	"github.com/fortlewis-ir/summit/internal/redact"
	"github.com/fortlewis-ir/summit/internal/server"
)

// Serve-specific flag values.
var (
	serveListen  string
	serveTitle   string
	serveDocsDir string
	serveNoAuth  bool
)

// serveCmd runs the dashboard HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio dashboard",
	Long: `Start the dashboard web server. Tabs render in the browser as Plotly
charts over the built-in institutional data; generated briefing documents
are served from the docs directory when present.

Settings come from flags, falling back to .summit.yaml, then defaults.
Configuring users enables HTTP basic auth; --no-auth disables it.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default "+config.DefaultListen+")")
	serveCmd.Flags().StringVar(&serveTitle, "title", "", "dashboard title")
	serveCmd.Flags().StringVar(&serveDocsDir, "docs-dir", "", "directory holding generated deliverables (default "+config.DefaultDocsDir+")")
	serveCmd.Flags().BoolVar(&serveNoAuth, "no-auth", false, "serve without basic auth even when users are configured")
}

// loadOptions merges the config file under --config with CLI-provided
// options and registers any configured passwords for redaction.
func loadOptions(cli config.Options) (config.Options, error) {
	fileCfg, err := config.Load(configDir)
	if err != nil {
		return config.Options{}, exitError(ExitInvalidArgs, "summit: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return config.Options{}, exitError(ExitInvalidArgs, "summit: %v", err)
	}

	opts := config.Merge(fileCfg, cli)
	redact.Users(opts.Users)
	return opts, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions(config.Options{
		Listen:  serveListen,
		Title:   serveTitle,
		DocsDir: serveDocsDir,
		NoAuth:  serveNoAuth,
	})
	if err != nil {
		return err
	}

	srv, err := server.New(opts)
	if err != nil {
		return exitError(ExitInvalidArgs, "summit: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return exitError(ExitServerFailure, "summit: %v", err)
	}
	return nil
}
