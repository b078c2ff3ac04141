// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/fortlewis-ir/summit/internal/config"
	"github.com/fortlewis-ir/summit/internal/mcpserver"
)

// MCP-specific flag values.
var (
	mcpDocsDir string
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running summit as an MCP server, exposing the dashboard data to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing summit's data tools:
  - tabs:         List the dashboard tabs
  - tab:          Return one tab's full layout as JSON
  - kpis:         Return the strategic KPI targets
  - deliverables: List briefing documents and their availability
  - validate:     Run the data consistency checks

The server speaks the Model Context Protocol over stdio transport, so AI
agents can query the portfolio data directly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := loadOptions(config.Options{DocsDir: mcpDocsDir})
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, opts.DocsDir, &mcp.StdioTransport{})
	},
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpDocsDir, "docs-dir", "", "directory holding generated deliverables (default "+config.DefaultDocsDir+")")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
