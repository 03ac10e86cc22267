// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// DefaultShutdownGrace bounds how long Serve waits for in-flight handlers
// after a termination signal before tearing the server down.
const DefaultShutdownGrace = 10 * time.Second

// healthServiceName is the per-service health entry the host probes after
// parsing the handshake.
const healthServiceName = "plugin"

// ServeConfig configures a plugin process.
type ServeConfig struct {
	// Plugin is the implementation whose exported methods become hook
	// handlers. Required.
	Plugin any
	// Logger overrides the default JSON logger on stderr.
	Logger *slog.Logger
	// Transport overrides the channel policy for both directions.
	Transport TransportOptions
	// ShutdownGrace overrides DefaultShutdownGrace.
	ShutdownGrace time.Duration
}

// Main runs Serve and exits the process with a non-zero status on failure.
// It is the one-liner for plugin main functions.
func Main(plugin any) {
	if err := Serve(ServeConfig{Plugin: plugin}); err != nil {
		fmt.Fprintf(os.Stderr, "plugin exited: %v\n", err)
		os.Exit(1)
	}
}

// Serve runs the plugin until the host disconnects or the process receives
// SIGINT or SIGTERM. It binds the hook listener, connects the host API
// client, writes the handshake line to stdout, and then blocks serving hook
// invocations.
//
// Stdout is reserved for the handshake; everything the plugin logs goes to
// stderr.
func Serve(cfg ServeConfig) error {
	if cfg.Plugin == nil {
		return fmt.Errorf("serve: no plugin implementation given")
	}
	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		return fmt.Errorf("serve: this binary is a ChatGrid plugin and must be launched by a plugin host")
	}

	envCfg := ConfigFromEnv(cfg.Logger)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: envCfg.LogLevel}))
	}
	logger = logger.With(slog.String("plugin_id", envCfg.PluginID))

	registry, err := NewRegistry(cfg.Plugin)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	apiClient := NewAPIClient(logger)
	if err := apiClient.Connect(envCfg.APIAddress, cfg.Transport); err != nil {
		return fmt.Errorf("serve: connecting host API: %w", err)
	}
	defer apiClient.Close()
	if setter, ok := cfg.Plugin.(apiSetter); ok {
		setter.SetAPI(apiClient)
	}

	endpoint := "127.0.0.1:0"
	if envCfg.SocketDir != "" {
		endpoint = filepath.Join(envCfg.SocketDir, fmt.Sprintf("plugin-%d.sock", os.Getpid()))
	}
	ln, err := Listen(endpoint)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	hooks := newHooksServer(registry, logger, envCfg.HookTimeout)
	server := grpc.NewServer(ServerOptions(cfg.Transport)...)
	pluginv1.RegisterPluginHooksServer(server, hooks)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(healthServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthSrv)

	network := NetworkTCP
	if _, ok := ln.(*net.UnixListener); ok {
		network = NetworkUnix
	}
	hs := newHandshake(network, ln.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	// The handshake is the only thing ever written to stdout, after the
	// listener is live so the host can dial immediately.
	fmt.Fprintln(os.Stdout, hs.String())
	logger.Info("plugin serving",
		slog.String("network", network),
		slog.String("addr", hs.Addr),
		slog.Any("hooks", registry.ImplementedHooks()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	grace := cfg.ShutdownGrace
	if grace <= 0 {
		grace = DefaultShutdownGrace
	}

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case sig := <-sigCh:
		logger.Info("shutting down on signal", slog.String("signal", sig.String()))
		stopServing(healthSrv, hooks, server, grace)
		return nil
	}
}

// stopServing runs the shutdown sequence: fail health probes, drain in-flight
// handlers, then stop the server, forcefully once grace runs out.
func stopServing(healthSrv *health.Server, hooks *hooksServer, server *grpc.Server, grace time.Duration) {
	// Shutdown flips every registered service, the overall "" entry
	// included, so no probe sees SERVING past this point.
	healthSrv.Shutdown()
	hooks.drain(grace)

	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(grace):
		server.Stop()
	}
}
