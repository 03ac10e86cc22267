// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/chatgrid/chatgrid-plugin/internal/host/api"
	"github.com/chatgrid/chatgrid-plugin/internal/host/backend"
	"github.com/chatgrid/chatgrid-plugin/internal/host/kv"
	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// healthFailureLimit is how many consecutive failed probes it takes before
// the watcher replaces a plugin process.
const healthFailureLimit = 3

// Sentinel errors for programmatic error checking.
var (
	// ErrRunnerClosed is returned when operations are attempted on a closed runner.
	ErrRunnerClosed = errors.New("runner is closed")
	// ErrPluginNotLoaded is returned when operating on a plugin that isn't loaded.
	ErrPluginNotLoaded = errors.New("plugin not loaded")
	// ErrPluginAlreadyLoaded is returned when loading a plugin that's already loaded.
	ErrPluginAlreadyLoaded = errors.New("plugin already loaded")
)

// Compile-time interface check.
var _ plugin.Host = (*Runner)(nil)

// RunnerConfig carries host-wide settings applied to every supervised plugin.
type RunnerConfig struct {
	// APIHost is the interface per-plugin API listeners bind to.
	// Empty means loopback.
	APIHost string
	// HookTimeout is the default per-hook deadline; a manifest's
	// hook-timeout-seconds overrides it per plugin.
	HookTimeout time.Duration
	// SocketDir, when set, tells plugins to listen on unix sockets.
	SocketDir string
	// StartTimeout bounds launch-to-handshake per plugin.
	StartTimeout time.Duration
	// ShutdownGrace bounds deactivate-to-kill per plugin.
	ShutdownGrace time.Duration
	// LogLevel is forwarded to plugin processes.
	LogLevel string
	// HealthCheckInterval spaces the periodic health probes behind the
	// restart watcher. Zero disables the watcher.
	HealthCheckInterval time.Duration
	// Metrics records hook, key-value, and lifecycle metrics. Nil disables
	// recording.
	Metrics *observability.Metrics
}

// processSupervisor is the slice of Supervisor the runner drives.
type processSupervisor interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Healthy(ctx context.Context) bool
	Hooks() *HookClient
}

// Runner implements plugin.Host with supervised child processes. Each
// plugin gets its own host-API gRPC server so the key-value namespace is
// fixed by the listener, not by request metadata.
type Runner struct {
	cfg   RunnerConfig
	log   *slog.Logger
	store kv.Store
	world *backend.Backend

	// newSupervisor is a seam for tests.
	newSupervisor func(cfg SupervisorConfig, log *slog.Logger) processSupervisor

	mu      sync.RWMutex
	plugins map[string]*runningPlugin
	closed  bool
}

// runningPlugin holds state for one supervised plugin. supCfg is kept so the
// health watcher can build a replacement supervisor on the same listener.
type runningPlugin struct {
	manifest  *plugin.Manifest
	sup       processSupervisor
	supCfg    SupervisorConfig
	apiSrv    *grpc.Server
	lis       net.Listener
	stopWatch chan struct{}
}

// NewRunner creates a supervised-process plugin host. Panics if log, store,
// or world is nil.
func NewRunner(cfg RunnerConfig, store kv.Store, world *backend.Backend, log *slog.Logger) *Runner {
	if log == nil {
		panic("host: logger cannot be nil")
	}
	if store == nil {
		panic("host: store cannot be nil")
	}
	if world == nil {
		panic("host: backend cannot be nil")
	}
	return &Runner{
		cfg:   cfg,
		log:   log,
		store: store,
		world: world,
		newSupervisor: func(cfg SupervisorConfig, log *slog.Logger) processSupervisor {
			return NewSupervisor(cfg, log)
		},
		plugins: make(map[string]*runningPlugin),
	}
}

// hookTimeout resolves the per-hook deadline for a manifest.
func (r *Runner) hookTimeout(m *plugin.Manifest) time.Duration {
	if m.HookTimeoutSeconds > 0 {
		return time.Duration(m.HookTimeoutSeconds) * time.Second
	}
	return r.cfg.HookTimeout
}

// Load binds an API listener for the plugin, starts its child process, and
// activates it.
func (r *Runner) Load(ctx context.Context, manifest *plugin.Manifest, dir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}

	if _, ok := r.plugins[manifest.ID]; ok {
		return fmt.Errorf("%w: %s", ErrPluginAlreadyLoaded, manifest.ID)
	}

	execPath := filepath.Join(dir, manifest.Executable)
	if _, err := os.Stat(execPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("plugin executable not found: %s: %w", execPath, err)
		}
		return fmt.Errorf("cannot access plugin executable %s: %w", execPath, err)
	}

	apiHost := r.cfg.APIHost
	if apiHost == "" {
		apiHost = "127.0.0.1"
	}
	lis, err := net.Listen("tcp", net.JoinHostPort(apiHost, "0"))
	if err != nil {
		return fmt.Errorf("bind API listener for plugin %s: %w", manifest.ID, err)
	}

	apiSrv := grpc.NewServer()
	pluginv1.RegisterPluginAPIServer(apiSrv,
		api.NewServer(manifest.ID, r.store, r.world, r.log).WithMetrics(r.cfg.Metrics))
	go func() {
		if serveErr := apiSrv.Serve(lis); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			r.log.Error("plugin API server stopped",
				"plugin", manifest.ID,
				"error", serveErr)
		}
	}()

	supCfg := SupervisorConfig{
		PluginID:      manifest.ID,
		Executable:    execPath,
		BundlePath:    dir,
		APIAddress:    lis.Addr().String(),
		HookTimeout:   r.hookTimeout(manifest),
		SocketDir:     r.cfg.SocketDir,
		StartTimeout:  r.cfg.StartTimeout,
		ShutdownGrace: r.cfg.ShutdownGrace,
		LogLevel:      r.cfg.LogLevel,
		Metrics:       r.cfg.Metrics,
	}
	sup := r.newSupervisor(supCfg, r.log)

	if err := sup.Start(ctx); err != nil {
		// Stop alone races with the Serve goroutine registering the
		// listener; close it directly so the port is released either way.
		apiSrv.Stop()
		_ = lis.Close()
		return fmt.Errorf("start plugin %s: %w", manifest.ID, err)
	}

	p := &runningPlugin{
		manifest: manifest,
		sup:      sup,
		supCfg:   supCfg,
		apiSrv:   apiSrv,
		lis:      lis,
	}
	if r.cfg.HealthCheckInterval > 0 {
		p.stopWatch = make(chan struct{})
		go r.watchHealth(manifest.ID, p)
	}
	r.plugins[manifest.ID] = p
	r.cfg.Metrics.SetPluginsLoaded(len(r.plugins))

	return nil
}

// watchHealth probes one plugin until its watch channel closes and replaces
// the process after healthFailureLimit consecutive failed probes.
func (r *Runner) watchHealth(id string, p *runningPlugin) {
	ticker := time.NewTicker(r.cfg.HealthCheckInterval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-p.stopWatch:
			return
		case <-ticker.C:
		}

		r.mu.RLock()
		sup := p.sup
		r.mu.RUnlock()

		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.HealthCheckInterval)
		healthy := sup.Healthy(ctx)
		cancel()

		if healthy {
			failures = 0
			continue
		}
		failures++
		if failures < healthFailureLimit {
			continue
		}
		failures = 0
		if err := r.restart(id, p); err != nil {
			r.log.Error("plugin restart failed", "plugin", id, "error", err)
		}
	}
}

// restart replaces a failed plugin process in place. The API server and its
// listener stay up; only the supervisor is swapped.
func (r *Runner) restart(id string, p *runningPlugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.plugins[id] != p {
		return nil
	}

	r.log.Warn("plugin unhealthy, restarting", "plugin", id)

	grace := p.supCfg.ShutdownGrace
	if grace <= 0 {
		grace = DefaultShutdownGrace
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), grace)
	if err := p.sup.Stop(stopCtx); err != nil {
		r.log.Warn("stopping unhealthy plugin failed", "plugin", id, "error", err)
	}
	cancel()

	startTimeout := p.supCfg.StartTimeout
	if startTimeout <= 0 {
		startTimeout = DefaultStartTimeout
	}
	sup := r.newSupervisor(p.supCfg, r.log)
	startCtx, cancel := context.WithTimeout(context.Background(), 2*startTimeout)
	defer cancel()
	if err := sup.Start(startCtx); err != nil {
		return fmt.Errorf("restart plugin %s: %w", id, err)
	}

	p.sup = sup
	r.cfg.Metrics.ObservePluginRestart(id)
	return nil
}

// Unload deactivates a plugin, stops its process, and tears down its API
// listener.
func (r *Runner) Unload(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}

	p, ok := r.plugins[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPluginNotLoaded, id)
	}

	if p.stopWatch != nil {
		close(p.stopWatch)
	}
	err := p.sup.Stop(ctx)
	p.apiSrv.Stop()
	_ = p.lis.Close()
	delete(r.plugins, id)
	r.cfg.Metrics.SetPluginsLoaded(len(r.plugins))

	if err != nil {
		return fmt.Errorf("stop plugin %s: %w", id, err)
	}
	return nil
}

// Hooks returns the hook client for a loaded plugin.
func (r *Runner) Hooks(id string) (*HookClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrRunnerClosed
	}
	p, ok := r.plugins[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotLoaded, id)
	}
	return p.sup.Hooks(), nil
}

// Healthy reports whether a loaded plugin's health service answers.
func (r *Runner) Healthy(ctx context.Context, id string) bool {
	r.mu.RLock()
	p, ok := r.plugins[id]
	r.mu.RUnlock()

	return ok && p.sup.Healthy(ctx)
}

// Plugins returns IDs of all loaded plugins.
func (r *Runner) Plugins() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil
	}

	ids := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		ids = append(ids, id)
	}
	return ids
}

// Close stops all plugins and their API servers.
func (r *Runner) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for id, p := range r.plugins {
		if p.stopWatch != nil {
			close(p.stopWatch)
		}
		if err := p.sup.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop plugin %s: %w", id, err))
		}
		p.apiSrv.Stop()
		_ = p.lis.Close()
	}

	r.closed = true
	clear(r.plugins)
	r.cfg.Metrics.SetPluginsLoaded(0)
	return errors.Join(errs...)
}
