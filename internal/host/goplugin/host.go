// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package goplugin provides a plugin.Host implementation for Go-native
// plugins using HashiCorp's go-plugin system over gRPC. Plugins launched
// this way speak the same hooks service as supervisor-managed ones; only
// the process bootstrap differs.
package goplugin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	hashiplug "github.com/hashicorp/go-plugin"

	"github.com/chatgrid/chatgrid-plugin/internal/host"
	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
	"github.com/chatgrid/chatgrid-plugin/pkg/pluginsdk"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// Sentinel errors for programmatic error checking.
var (
	// ErrHostClosed is returned when operations are attempted on a closed host.
	ErrHostClosed = errors.New("host is closed")
	// ErrPluginNotLoaded is returned when operating on a plugin that isn't loaded.
	ErrPluginNotLoaded = errors.New("plugin not loaded")
	// ErrPluginAlreadyLoaded is returned when loading a plugin that's already loaded.
	ErrPluginAlreadyLoaded = errors.New("plugin already loaded")
)

// Compile-time interface check.
var _ plugin.Host = (*Host)(nil)

// PluginClient wraps go-plugin's client for testability.
type PluginClient interface {
	// Client returns the gRPC client protocol.
	Client() (hashiplug.ClientProtocol, error)
	// Kill terminates the plugin process.
	Kill()
}

// ClientFactory creates plugin clients.
type ClientFactory interface {
	// NewClient creates a client for the given executable path and
	// environment.
	NewClient(execPath string, env []string) PluginClient
}

// DefaultClientFactory creates real go-plugin clients.
type DefaultClientFactory struct{}

// NewClient creates a real go-plugin client.
func (f *DefaultClientFactory) NewClient(execPath string, env []string) PluginClient {
	cmd := exec.Command(execPath) // #nosec G204 -- execPath resolved from plugin manifest; manifests validated during discovery
	cmd.Env = append(os.Environ(), env...)
	return hashiplug.NewClient(&hashiplug.ClientConfig{
		HandshakeConfig:  pluginsdk.HandshakeConfig,
		Plugins:          PluginMap,
		Cmd:              cmd,
		AllowedProtocols: []hashiplug.Protocol{hashiplug.ProtocolGRPC},
	})
}

// Config carries host-wide settings applied to every loaded plugin.
type Config struct {
	// APIAddress is where the host-API gRPC service listens.
	APIAddress string
	// HookTimeout is the default per-hook deadline. Zero means the SDK
	// default; a manifest's hook-timeout-seconds overrides it per plugin.
	HookTimeout time.Duration
	// LogLevel is forwarded to plugin processes.
	LogLevel string
}

// Host manages Go-native plugins via HashiCorp go-plugin.
type Host struct {
	cfg           Config
	log           *slog.Logger
	clientFactory ClientFactory
	plugins       map[string]*loadedPlugin
	mu            sync.RWMutex
	closed        bool
}

// loadedPlugin holds state for a single loaded plugin.
type loadedPlugin struct {
	manifest *plugin.Manifest
	client   PluginClient
	hooks    *host.HookClient
}

// NewHost creates a go-plugin host. Panics if log is nil.
func NewHost(cfg Config, log *slog.Logger) *Host {
	if log == nil {
		panic("goplugin: logger cannot be nil")
	}
	return &Host{
		cfg:           cfg,
		log:           log,
		clientFactory: &DefaultClientFactory{},
		plugins:       make(map[string]*loadedPlugin),
	}
}

// NewHostWithFactory creates a host with a custom client factory (for testing).
// Panics if log or factory is nil.
func NewHostWithFactory(cfg Config, log *slog.Logger, factory ClientFactory) *Host {
	if log == nil {
		panic("goplugin: logger cannot be nil")
	}
	if factory == nil {
		panic("goplugin: factory cannot be nil")
	}
	return &Host{
		cfg:           cfg,
		log:           log,
		clientFactory: factory,
		plugins:       make(map[string]*loadedPlugin),
	}
}

// hookTimeout resolves the per-hook deadline for a manifest.
func (h *Host) hookTimeout(m *plugin.Manifest) time.Duration {
	if m.HookTimeoutSeconds > 0 {
		return time.Duration(m.HookTimeoutSeconds) * time.Second
	}
	return h.cfg.HookTimeout
}

// pluginEnv builds the enumerated config environment for a plugin process.
// The magic cookie is injected by go-plugin itself.
func (h *Host) pluginEnv(m *plugin.Manifest, dir string) []string {
	timeout := h.hookTimeout(m)
	if timeout <= 0 {
		timeout = pluginsdk.DefaultHookTimeout
	}
	env := []string{
		pluginsdk.EnvPluginID + "=" + m.ID,
		pluginsdk.EnvAPIAddress + "=" + h.cfg.APIAddress,
		pluginsdk.EnvPluginPath + "=" + dir,
		pluginsdk.EnvHookTimeoutSeconds + "=" + strconv.Itoa(int(timeout/time.Second)),
	}
	if h.cfg.LogLevel != "" {
		env = append(env, pluginsdk.EnvLogLevel+"="+h.cfg.LogLevel)
	}
	return env
}

// Load starts a plugin process, dispenses its hooks client, and activates it.
func (h *Host) Load(ctx context.Context, manifest *plugin.Manifest, dir string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	if _, ok := h.plugins[manifest.ID]; ok {
		return fmt.Errorf("%w: %s", ErrPluginAlreadyLoaded, manifest.ID)
	}

	execPath := filepath.Join(dir, manifest.Executable)
	if _, err := os.Stat(execPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("plugin executable not found: %s: %w", execPath, err)
		}
		return fmt.Errorf("cannot access plugin executable %s: %w", execPath, err)
	}

	client := h.clientFactory.NewClient(execPath, h.pluginEnv(manifest, dir))

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return fmt.Errorf("failed to connect to plugin %s: %w", manifest.ID, err)
	}

	raw, err := rpcClient.Dispense("plugin")
	if err != nil {
		client.Kill()
		return fmt.Errorf("failed to dispense plugin %s: %w", manifest.ID, err)
	}

	rpc, ok := raw.(pluginv1.PluginHooksClient)
	if !ok {
		client.Kill()
		return fmt.Errorf("plugin %s does not implement PluginHooksClient", manifest.ID)
	}

	hooks := host.NewHookClient(manifest.ID, rpc, h.log, h.hookTimeout(manifest))
	if _, err := hooks.Refresh(ctx); err != nil {
		client.Kill()
		return fmt.Errorf("failed to query implemented hooks for plugin %s: %w", manifest.ID, err)
	}
	if err := hooks.OnActivate(ctx); err != nil {
		client.Kill()
		return fmt.Errorf("plugin %s failed to activate: %w", manifest.ID, err)
	}

	h.plugins[manifest.ID] = &loadedPlugin{
		manifest: manifest,
		client:   client,
		hooks:    hooks,
	}

	return nil
}

// Unload deactivates and tears down a plugin.
func (h *Host) Unload(ctx context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	p, ok := h.plugins[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPluginNotLoaded, id)
	}

	// Deactivation is best-effort: the process is killed either way.
	if err := p.hooks.OnDeactivate(ctx); err != nil {
		h.log.Warn("plugin deactivation failed during unload",
			"plugin", id,
			"error", err)
	}

	if p.client != nil {
		p.client.Kill()
	}

	delete(h.plugins, id)
	return nil
}

// Hooks returns the hook client for a loaded plugin.
//
// Note: the RLock is released before callers make gRPC calls so plugin
// invocations are not serialized. If Close() or Unload() races, the gRPC
// call fails gracefully when the process is killed. This is the standard
// trade-off in go-plugin based systems.
func (h *Host) Hooks(id string) (*host.HookClient, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil, ErrHostClosed
	}
	p, ok := h.plugins[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotLoaded, id)
	}
	return p.hooks, nil
}

// Plugins returns IDs of all loaded plugins.
func (h *Host) Plugins() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	ids := make([]string, 0, len(h.plugins))
	for id := range h.plugins {
		ids = append(ids, id)
	}
	return ids
}

// Close shuts down the host and all plugins.
func (h *Host) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, p := range h.plugins {
		if err := p.hooks.OnDeactivate(ctx); err != nil {
			h.log.Warn("plugin deactivation failed during close",
				"plugin", id,
				"error", err)
		}
		if p.client != nil {
			p.client.Kill()
		}
	}

	h.closed = true
	clear(h.plugins)
	return nil
}
