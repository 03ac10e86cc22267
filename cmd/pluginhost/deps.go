// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package main

import (
	"context"
	"log/slog"

	"github.com/chatgrid/chatgrid-plugin/internal/host"
	"github.com/chatgrid/chatgrid-plugin/internal/host/backend"
	"github.com/chatgrid/chatgrid-plugin/internal/host/kv"
	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
)

// ServeDeps contains injectable dependencies for the serve command.
// All fields with nil values will use their default implementations.
type ServeDeps struct {
	// StoreFactory creates the key-value store from a database URL.
	// Default: kv.NewPostgresStore, or kv.NewMemoryStore for an empty URL.
	StoreFactory func(ctx context.Context, databaseURL string) (kv.Store, error)

	// Migrate brings the key-value schema up to date.
	// Default: kv.NewMigrator + Up.
	Migrate func(databaseURL string) error

	// HostFactory creates the plugin runtime host.
	// Default: host.NewRunner.
	HostFactory func(cfg host.RunnerConfig, store kv.Store, world *backend.Backend, log *slog.Logger) plugin.Host

	// ObservabilityServerFactory creates an observability server.
	// Default: observability.NewServer.
	ObservabilityServerFactory func(addr string, readinessChecker observability.ReadinessChecker) ObservabilityServer
}

// ObservabilityServer interface wraps the methods used from observability.Server.
type ObservabilityServer interface {
	Start() (<-chan error, error)
	Stop(ctx context.Context) error
	Addr() string
	Metrics() *observability.Metrics
}
