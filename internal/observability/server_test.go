// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func startServer(t *testing.T, ready ReadinessChecker) *Server {
	t.Helper()
	server := NewServer("127.0.0.1:0", ready)
	if _, err := server.Start(); err != nil {
		t.Fatalf("failed to start server: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Stop(ctx)
	})
	if server.Addr() == "" {
		t.Fatal("server address is empty")
	}
	return server
}

func get(t *testing.T, addr, path string) (int, string) {
	t.Helper()
	resp, err := http.Get("http://" + addr + path)
	if err != nil {
		t.Fatalf("failed to GET %s: %v", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServer_Metrics(t *testing.T) {
	server := startServer(t, func() bool { return true })

	status, body := get(t, server.Addr(), "/metrics")
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}

	if !strings.Contains(body, "# HELP") {
		t.Error("expected Prometheus format with HELP comments")
	}
	if !strings.Contains(body, "go_") {
		t.Error("expected go_* metrics")
	}
	if !strings.Contains(body, "process_") {
		t.Error("expected process_* metrics")
	}

	// Increment custom metrics so they appear in output
	metrics := server.Metrics()
	metrics.HookInvocationsTotal.WithLabelValues("echo", "MessageWillBePosted", "ok").Inc()
	metrics.HookTimeoutsTotal.WithLabelValues("echo", "MessageWillBePosted").Inc()
	metrics.KVOperationsTotal.WithLabelValues("set", "ok").Inc()
	metrics.PluginRestartsTotal.WithLabelValues("echo").Inc()
	metrics.PluginsLoaded.Set(1)
	RecordHookPanic("echo", "MessageWillBePosted")

	_, body = get(t, server.Addr(), "/metrics")
	for _, want := range []string{
		"chatgrid_hook_invocations_total",
		"chatgrid_hook_timeouts_total",
		"chatgrid_kv_operations_total",
		"chatgrid_plugin_restarts_total",
		"chatgrid_plugins_loaded",
		"chatgrid_hook_panics_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s metric", want)
		}
	}
}

func TestServer_ObserveMethods(t *testing.T) {
	server := startServer(t, func() bool { return true })

	metrics := server.Metrics()
	metrics.ObserveHookInvocation("echo", "ExecuteCommand", "ok", 15*time.Millisecond)
	metrics.ObserveHookInvocation("echo", "ExecuteCommand", "timeout", time.Second)
	metrics.ObserveHookTimeout("echo", "ExecuteCommand")
	metrics.ObserveKVOperation("get", "error")
	metrics.ObservePluginRestart("echo")
	metrics.SetPluginsLoaded(2)

	_, body := get(t, server.Addr(), "/metrics")
	for _, want := range []string{
		`chatgrid_hook_invocations_total{hook="ExecuteCommand",outcome="ok",plugin="echo"} 1`,
		`chatgrid_hook_invocations_total{hook="ExecuteCommand",outcome="timeout",plugin="echo"} 1`,
		`chatgrid_hook_duration_seconds_count{hook="ExecuteCommand",plugin="echo"} 2`,
		`chatgrid_hook_timeouts_total{hook="ExecuteCommand",plugin="echo"} 1`,
		`chatgrid_kv_operations_total{operation="get",outcome="error"} 1`,
		`chatgrid_plugin_restarts_total{plugin="echo"} 1`,
		"chatgrid_plugins_loaded 2",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metric line %q", want)
		}
	}
}

func TestMetrics_ObserveOnNilReceiver(t *testing.T) {
	// Collaborators record unconditionally; a disabled metrics server
	// must not make them panic.
	var m *Metrics
	m.ObserveHookInvocation("echo", "ExecuteCommand", "ok", time.Millisecond)
	m.ObserveHookTimeout("echo", "ExecuteCommand")
	m.ObserveKVOperation("set", "ok")
	m.ObservePluginRestart("echo")
	m.SetPluginsLoaded(0)
}

func TestServer_LivenessReturns200(t *testing.T) {
	server := startServer(t, nil)

	status, body := get(t, server.Addr(), "/healthz/liveness")
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("expected 'ok' body, got %q", body)
	}
}

func TestServer_Readiness(t *testing.T) {
	ready := false
	server := startServer(t, func() bool { return ready })

	status, _ := get(t, server.Addr(), "/healthz/readiness")
	if status != http.StatusServiceUnavailable {
		t.Errorf("expected status 503 when not ready, got %d", status)
	}

	ready = true
	status, _ = get(t, server.Addr(), "/healthz/readiness")
	if status != http.StatusOK {
		t.Errorf("expected status 200 when ready, got %d", status)
	}
}

func TestServer_ReadinessNilCheckerIsReady(t *testing.T) {
	server := startServer(t, nil)

	status, _ := get(t, server.Addr(), "/healthz/readiness")
	if status != http.StatusOK {
		t.Errorf("expected status 200 with nil checker, got %d", status)
	}
}

func TestServer_StartTwiceFails(t *testing.T) {
	server := startServer(t, nil)

	if _, err := server.Start(); err == nil {
		t.Error("expected error starting an already-running server")
	}
}

func TestServer_StopIdempotent(t *testing.T) {
	server := NewServer("127.0.0.1:0", nil)
	if _, err := server.Start(); err != nil {
		t.Fatalf("failed to start server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		t.Fatalf("first stop failed: %v", err)
	}
	if err := server.Stop(ctx); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}
}
