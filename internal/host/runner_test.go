// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package host

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/chatgrid/chatgrid-plugin/internal/host/backend"
	"github.com/chatgrid/chatgrid-plugin/internal/host/kv"
	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// fakeSupervisor records lifecycle calls and captures the config it got.
type fakeSupervisor struct {
	cfg      SupervisorConfig
	startErr error
	stopErr  error
	started  bool
	stopped  bool
	healthy  bool
	hooks    *HookClient
}

func (f *fakeSupervisor) Start(context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeSupervisor) Stop(context.Context) error {
	f.stopped = true
	return f.stopErr
}

func (f *fakeSupervisor) Healthy(context.Context) bool { return f.healthy }
func (f *fakeSupervisor) Hooks() *HookClient           { return f.hooks }

func newTestRunner(t *testing.T) (*Runner, *fakeSupervisor, string) {
	t.Helper()

	store := kv.NewMemoryStore()
	t.Cleanup(store.Close)
	world := backend.New(testLogger(), "1.0.0")

	r := NewRunner(RunnerConfig{HookTimeout: 0}, store, world, testLogger())
	sup := &fakeSupervisor{healthy: true}
	r.newSupervisor = func(cfg SupervisorConfig, _ *slog.Logger) processSupervisor {
		sup.cfg = cfg
		return sup
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "echo"), []byte("dummy"), 0o600))
	return r, sup, dir
}

func runnerManifest() *plugin.Manifest {
	return &plugin.Manifest{
		ID:         "echo",
		Version:    "1.0.0",
		Executable: "echo",
	}
}

func TestRunner_Load(t *testing.T) {
	r, sup, dir := newTestRunner(t)

	require.NoError(t, r.Load(t.Context(), runnerManifest(), dir))
	assert.True(t, sup.started)
	assert.Equal(t, []string{"echo"}, r.Plugins())

	// SupervisorConfig is filled in from the manifest and runner config.
	assert.Equal(t, "echo", sup.cfg.PluginID)
	assert.Equal(t, filepath.Join(dir, "echo"), sup.cfg.Executable)
	assert.Equal(t, dir, sup.cfg.BundlePath)
	assert.NotEmpty(t, sup.cfg.APIAddress)

	// The plugin's API listener answers gRPC on the announced address with
	// the key-value namespace scoped to this plugin.
	conn, err := grpc.NewClient(sup.cfg.APIAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := pluginv1.NewPluginAPIClient(conn)
	setResp, err := client.KVSet(t.Context(), &pluginv1.KVSetRequest{Key: "k", Value: []byte("v")})
	require.NoError(t, err)
	require.Nil(t, setResp.GetError())

	got, err := client.KVGet(t.Context(), &pluginv1.KVGetRequest{Key: "k"})
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got.GetValue())
}

func TestRunner_Load_ManifestTimeoutOverride(t *testing.T) {
	r, sup, dir := newTestRunner(t)

	m := runnerManifest()
	m.HookTimeoutSeconds = 7
	require.NoError(t, r.Load(t.Context(), m, dir))

	assert.Equal(t, 7, int(sup.cfg.HookTimeout.Seconds()))
}

func TestRunner_Load_MissingExecutable(t *testing.T) {
	r, _, _ := newTestRunner(t)

	err := r.Load(t.Context(), runnerManifest(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executable not found")
}

func TestRunner_Load_AlreadyLoaded(t *testing.T) {
	r, _, dir := newTestRunner(t)

	require.NoError(t, r.Load(t.Context(), runnerManifest(), dir))
	require.ErrorIs(t, r.Load(t.Context(), runnerManifest(), dir), ErrPluginAlreadyLoaded)
}

func TestRunner_Load_StartFailureTearsDownListener(t *testing.T) {
	r, sup, dir := newTestRunner(t)
	sup.startErr = errors.New("no handshake")

	err := r.Load(t.Context(), runnerManifest(), dir)
	require.Error(t, err)
	assert.Empty(t, r.Plugins())

	// The API listener must be released on failure.
	lis, err := net.Listen("tcp", sup.cfg.APIAddress)
	require.NoError(t, err)
	require.NoError(t, lis.Close())
}

func TestRunner_Unload(t *testing.T) {
	r, sup, dir := newTestRunner(t)
	require.NoError(t, r.Load(t.Context(), runnerManifest(), dir))

	require.NoError(t, r.Unload(t.Context(), "echo"))
	assert.True(t, sup.stopped)
	assert.Empty(t, r.Plugins())

	require.ErrorIs(t, r.Unload(t.Context(), "echo"), ErrPluginNotLoaded)
}

func TestRunner_Healthy(t *testing.T) {
	r, sup, dir := newTestRunner(t)
	require.NoError(t, r.Load(t.Context(), runnerManifest(), dir))

	assert.True(t, r.Healthy(t.Context(), "echo"))
	sup.healthy = false
	assert.False(t, r.Healthy(t.Context(), "echo"))
	assert.False(t, r.Healthy(t.Context(), "ghost"))
}

// scriptedSupervisor answers health probes with a fixed verdict set at
// construction, so the watcher goroutine can read it without races.
type scriptedSupervisor struct {
	healthy bool
}

func (s *scriptedSupervisor) Start(context.Context) error  { return nil }
func (s *scriptedSupervisor) Stop(context.Context) error   { return nil }
func (s *scriptedSupervisor) Healthy(context.Context) bool { return s.healthy }
func (s *scriptedSupervisor) Hooks() *HookClient           { return nil }

func TestRunner_HealthWatcherRestartsUnhealthyPlugin(t *testing.T) {
	store := kv.NewMemoryStore()
	t.Cleanup(store.Close)
	world := backend.New(testLogger(), "1.0.0")
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	r := NewRunner(RunnerConfig{
		HealthCheckInterval: 5 * time.Millisecond,
		Metrics:             metrics,
	}, store, world, testLogger())

	var supervisors atomic.Int32
	r.newSupervisor = func(SupervisorConfig, *slog.Logger) processSupervisor {
		// The first process never answers its probes; its replacement does.
		return &scriptedSupervisor{healthy: supervisors.Add(1) > 1}
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "echo"), []byte("dummy"), 0o600))
	require.NoError(t, r.Load(t.Context(), runnerManifest(), dir))
	t.Cleanup(func() { _ = r.Close(context.Background()) })

	require.Eventually(t, func() bool {
		return supervisors.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond, "watcher never replaced the unhealthy process")

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.PluginRestartsTotal.WithLabelValues("echo")) >= 1
	}, 2*time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return r.Healthy(context.Background(), "echo")
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRunner_WatcherDisabledByDefaultConfig(t *testing.T) {
	r, _, dir := newTestRunner(t)

	require.NoError(t, r.Load(t.Context(), runnerManifest(), dir))

	// A zero interval means no watcher goroutine and no stop channel.
	r.mu.RLock()
	defer r.mu.RUnlock()
	assert.Nil(t, r.plugins["echo"].stopWatch)
}

func TestRunner_Close(t *testing.T) {
	r, sup, dir := newTestRunner(t)
	require.NoError(t, r.Load(t.Context(), runnerManifest(), dir))

	require.NoError(t, r.Close(t.Context()))
	assert.True(t, sup.stopped)
	assert.Nil(t, r.Plugins())

	require.ErrorIs(t, r.Load(t.Context(), runnerManifest(), dir), ErrRunnerClosed)
	_, err := r.Hooks("echo")
	require.ErrorIs(t, err, ErrRunnerClosed)
}
