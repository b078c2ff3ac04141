// Copyright 2026 The Summit Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard: the single-page UI, the JSON tab
// API, and the deliverable downloads.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fortlewis-ir/summit/internal/config"
	"github.com/fortlewis-ir/summit/internal/docs"
)

// Server is the dashboard HTTP server.
type Server struct {
	opts config.Options
	docs *docs.Store
}

// New builds a server from merged options. The docs store is resolved
// eagerly so a broken manifest fails at startup, not on first download.
func New(opts config.Options) (*Server, error) {
	store, err := docs.NewStore(opts.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("docs store: %w", err)
	}
	return &Server{opts: opts, docs: store}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Listen,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("dashboard listening", "addr", s.opts.Listen, "auth", len(s.opts.Users) > 0)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
