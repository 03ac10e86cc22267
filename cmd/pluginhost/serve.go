// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatgrid/chatgrid-plugin/internal/host"
	"github.com/chatgrid/chatgrid-plugin/internal/host/backend"
	"github.com/chatgrid/chatgrid-plugin/internal/host/kv"
	"github.com/chatgrid/chatgrid-plugin/internal/hostconfig"
	"github.com/chatgrid/chatgrid-plugin/internal/logging"
	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the plugin host",
		Long: `Discover plugin bundles, launch each plugin as a supervised child
process, and dispatch hooks until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := hostconfig.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runServeWithDeps(cmd.Context(), cfg, cmd, nil)
		},
	}

	hostconfig.RegisterFlags(cmd.Flags())
	return cmd
}

// runServeWithDeps starts the plugin host with injectable dependencies.
// If deps is nil, default implementations are used.
func runServeWithDeps(ctx context.Context, cfg hostconfig.Config, cmd *cobra.Command, deps *ServeDeps) error {
	if deps == nil {
		deps = &ServeDeps{}
	}
	if deps.StoreFactory == nil {
		deps.StoreFactory = func(ctx context.Context, databaseURL string) (kv.Store, error) {
			if databaseURL == "" {
				return kv.NewMemoryStore(), nil
			}
			return kv.NewPostgresStore(ctx, databaseURL)
		}
	}
	if deps.Migrate == nil {
		deps.Migrate = func(databaseURL string) error {
			m, err := kv.NewMigrator(databaseURL)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := m.Close(); closeErr != nil {
					slog.Warn("error closing migrator", "error", closeErr)
				}
			}()
			return m.Up()
		}
	}
	if deps.HostFactory == nil {
		deps.HostFactory = func(cfg host.RunnerConfig, store kv.Store, world *backend.Backend, log *slog.Logger) plugin.Host {
			return host.NewRunner(cfg, store, world, log)
		}
	}
	if deps.ObservabilityServerFactory == nil {
		deps.ObservabilityServerFactory = func(addr string, readinessChecker observability.ReadinessChecker) ObservabilityServer {
			return observability.NewServer(addr, readinessChecker)
		}
	}

	log := logging.Setup("pluginhost", version, logging.Options{
		Format: cfg.LogFormat,
		Level:  parseLogLevel(cfg.LogLevel),
	})
	slog.SetDefault(log)

	log.Info("starting plugin host",
		"plugins_dir", cfg.PluginsDir,
		"api_addr", cfg.APIAddr,
	)

	if cfg.DatabaseURL != "" {
		if err := deps.Migrate(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to run key-value migrations: %w", err)
		}
		log.Info("key-value schema up to date")
	}

	store, err := deps.StoreFactory(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open key-value store: %w", err)
	}
	defer store.Close()

	world := backend.New(log, version)

	// The observability server is built before the runner so its metrics
	// can be threaded into hook dispatch and restart accounting. It is
	// not started until plugins are loaded.
	var obsServer ObservabilityServer
	var metrics *observability.Metrics
	if cfg.MetricsAddr != "" {
		obsServer = deps.ObservabilityServerFactory(cfg.MetricsAddr, func() bool { return true })
		metrics = obsServer.Metrics()
	}

	runner := deps.HostFactory(host.RunnerConfig{
		HookTimeout:         time.Duration(cfg.HookTimeoutSeconds) * time.Second,
		SocketDir:           cfg.SocketDir,
		ShutdownGrace:       time.Duration(cfg.ShutdownGraceSeconds) * time.Second,
		HealthCheckInterval: time.Duration(cfg.HealthCheckSeconds) * time.Second,
		LogLevel:            cfg.LogLevel,
		Metrics:             metrics,
	}, store, world, log)

	manager, err := plugin.NewManager(cfg.PluginsDir,
		plugin.WithHost(runner),
		plugin.WithLogger(log),
		plugin.WithEnablePatterns(cfg.Enable...))
	if err != nil {
		return fmt.Errorf("failed to create plugin manager: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := manager.LoadAll(ctx); err != nil {
		return fmt.Errorf("failed to load plugins: %w", err)
	}
	log.Info("plugins loaded", "plugins", manager.ListPlugins())

	// Start observability server if configured
	if obsServer != nil {
		obsErrChan, err := obsServer.Start()
		if err != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if closeErr := manager.Close(shutdownCtx); closeErr != nil {
				log.Warn("failed to close plugin manager during cleanup", "error", closeErr)
			}
			return fmt.Errorf("failed to start observability server: %w", err)
		}
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
		log.Info("observability server started", "addr", obsServer.Addr())
	}

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	cmd.Println("Plugin host started")
	log.Info("plugin host ready")

	select {
	case sig := <-sigChan:
		log.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
		log.Info("context cancelled, shutting down")
	}

	log.Info("shutting down...")

	grace := time.Duration(cfg.ShutdownGraceSeconds)*time.Second + 5*time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), grace)
	defer shutdownCancel()

	if err := manager.Close(shutdownCtx); err != nil {
		log.Warn("error closing plugin manager", "error", err)
	}

	if obsServer != nil {
		if err := obsServer.Stop(shutdownCtx); err != nil {
			log.Warn("error stopping observability server", "error", err)
		}
	}

	log.Info("shutdown complete")
	return nil
}

// parseLogLevel maps a config level string onto slog levels.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// monitorServerErrors monitors a server's error channel and cancels the context on error.
// This ensures that server failures trigger graceful shutdown of the entire process.
// It exits when either an error is received, the channel is closed, or the context is cancelled.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string) {
	select {
	case err, ok := <-errCh:
		if !ok {
			// Channel closed, server stopped gracefully
			return
		}
		if err != nil {
			slog.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
		// Context cancelled, exit monitoring
	}
}
