// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package mcpserver exposes the dashboard's data over the Model Context
// Protocol so agents can query tabs, KPIs, and deliverables without
// scraping the web UI.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New creates a new MCP server with summit's tools registered. The docs
// directory anchors deliverable availability checks.
func New(version, docsDir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "summit",
		Title:   "Summit — Portfolio Strategy Dashboard",
		Version: version,
	}, nil)

	registerTools(server, docsDir)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version, docsDir string, transport mcp.Transport) error {
	server := New(version, docsDir)
	return server.Run(ctx, transport)
}
