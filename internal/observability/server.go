// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package observability provides HTTP endpoints for metrics and health checks.
package observability

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/oops"
)

// ReadinessChecker returns whether the service is ready to accept connections.
type ReadinessChecker func() bool

// hookPanics is a package-level counter for recovered hook handler panics.
// This allows dispatch code to increment the metric without needing access
// to the Server instance.
var hookPanics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chatgrid_hook_panics_total",
		Help: "Total number of recovered panics in hook handlers by plugin and hook",
	},
	[]string{"plugin", "hook"},
)

// RecordHookPanic increments the hook panic counter.
func RecordHookPanic(plugin, hook string) {
	hookPanics.WithLabelValues(plugin, hook).Inc()
}

// Metrics contains custom Prometheus metrics for the plugin host.
type Metrics struct {
	HookInvocationsTotal *prometheus.CounterVec
	HookTimeoutsTotal    *prometheus.CounterVec
	HookDurationSeconds  *prometheus.HistogramVec
	KVOperationsTotal    *prometheus.CounterVec
	PluginRestartsTotal  *prometheus.CounterVec
	PluginsLoaded        prometheus.Gauge
}

// NewMetrics creates and registers custom plugin host metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HookInvocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatgrid_hook_invocations_total",
				Help: "Total number of hook invocations by plugin, hook, and outcome",
			},
			[]string{"plugin", "hook", "outcome"},
		),
		HookTimeoutsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatgrid_hook_timeouts_total",
				Help: "Total number of hook invocations abandoned at the deadline",
			},
			[]string{"plugin", "hook"},
		),
		HookDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatgrid_hook_duration_seconds",
				Help:    "Hook invocation latency by plugin and hook",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"plugin", "hook"},
		),
		KVOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatgrid_kv_operations_total",
				Help: "Total number of key-value store operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		PluginRestartsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatgrid_plugin_restarts_total",
				Help: "Total number of plugin process restarts",
			},
			[]string{"plugin"},
		),
		PluginsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "chatgrid_plugins_loaded",
				Help: "Number of plugins currently loaded",
			},
		),
	}

	reg.MustRegister(m.HookInvocationsTotal)
	reg.MustRegister(m.HookTimeoutsTotal)
	reg.MustRegister(m.HookDurationSeconds)
	reg.MustRegister(m.KVOperationsTotal)
	reg.MustRegister(m.PluginRestartsTotal)
	reg.MustRegister(m.PluginsLoaded)
	reg.MustRegister(hookPanics)

	return m
}

// The Observe methods tolerate a nil receiver so collaborators can record
// unconditionally whether or not metrics are enabled.

// ObserveHookInvocation records one hook dispatch and its latency.
func (m *Metrics) ObserveHookInvocation(plugin, hook, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.HookInvocationsTotal.WithLabelValues(plugin, hook, outcome).Inc()
	m.HookDurationSeconds.WithLabelValues(plugin, hook).Observe(d.Seconds())
}

// ObserveHookTimeout records a hook abandoned at its deadline.
func (m *Metrics) ObserveHookTimeout(plugin, hook string) {
	if m == nil {
		return
	}
	m.HookTimeoutsTotal.WithLabelValues(plugin, hook).Inc()
}

// ObserveKVOperation records one key-value store operation.
func (m *Metrics) ObserveKVOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.KVOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObservePluginRestart records one plugin process restart.
func (m *Metrics) ObservePluginRestart(plugin string) {
	if m == nil {
		return
	}
	m.PluginRestartsTotal.WithLabelValues(plugin).Inc()
}

// SetPluginsLoaded records the current loaded-plugin count.
func (m *Metrics) SetPluginsLoaded(n int) {
	if m == nil {
		return
	}
	m.PluginsLoaded.Set(float64(n))
}

// Server provides HTTP endpoints for observability (metrics and health probes).
type Server struct {
	addr       string
	listener   net.Listener
	httpServer *http.Server
	registry   *prometheus.Registry
	metrics    *Metrics
	isReady    ReadinessChecker
	running    atomic.Bool
}

// NewServer creates a new observability server.
// addr: listen address in "host:port" format (e.g., "127.0.0.1:9100", ":9100" for all interfaces).
func NewServer(addr string, readinessChecker ReadinessChecker) *Server {
	// Create a new registry to avoid polluting the global one
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics := NewMetrics(registry)

	return &Server{
		addr:     addr,
		registry: registry,
		metrics:  metrics,
		isReady:  readinessChecker,
	}
}

// Metrics returns the custom metrics for recording host events.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start begins serving observability endpoints.
// It returns an error channel that will receive any errors from the HTTP server
// after it starts. The channel is closed when the server stops gracefully.
// Callers should monitor this channel to detect server failures.
func (s *Server) Start() (<-chan error, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, oops.Errorf("observability server already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.running.Store(false)
		return nil, oops.With("addr", s.addr).Wrap(err)
	}
	s.listener = listener

	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	// Kubernetes-style health probes
	mux.HandleFunc("/healthz/liveness", s.handleLiveness)
	mux.HandleFunc("/healthz/readiness", s.handleReadiness)

	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpServer = httpSrv

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		// Use local httpSrv to avoid race with subsequent Start() calls
		if serveErr := httpSrv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			slog.Error("observability server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	slog.Info("observability server started", "addr", listener.Addr().String())
	return errCh, nil
}

// Stop gracefully shuts down the observability server.
func (s *Server) Stop(ctx context.Context) error {
	// Use CompareAndSwap to atomically transition from running to stopped.
	// This prevents a race where a concurrent Start() could succeed between
	// checking the running state and setting it to false.
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			// Restore running state on failure so the server can be stopped again
			s.running.Store(true)
			return oops.With("operation", "shutdown_observability_server").Wrap(err)
		}
	}

	slog.Info("observability server stopped")
	return nil
}

// Addr returns the address the server is listening on.
// Returns empty string if not running.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// handleLiveness returns 200 if the process is running.
func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // health check write error is acceptable, client may disconnect
	w.Write([]byte("ok\n"))
}

// handleReadiness returns 200 if the host is ready to accept connections,
// or 503 if not ready.
func (s *Server) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if s.isReady == nil || s.isReady() {
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck // health check write error is acceptable, client may disconnect
		w.Write([]byte("ok\n"))
		return
	}

	w.WriteHeader(http.StatusServiceUnavailable)
	//nolint:errcheck // health check write error is acceptable, client may disconnect
	w.Write([]byte("not ready\n"))
}
