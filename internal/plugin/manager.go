// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gobwas/glob"
)

// ManifestName is the manifest file each plugin bundle must carry.
const ManifestName = "plugin.yaml"

// Manager discovers plugin bundles and drives their lifecycle through a Host.
type Manager struct {
	pluginsDir string
	host       Host
	log        *slog.Logger
	enable     []glob.Glob
	loaded     map[string]*DiscoveredPlugin
	mu         sync.RWMutex
}

// ManagerOption configures the Manager.
type ManagerOption func(*Manager) error

// WithHost sets the plugin runtime host.
func WithHost(h Host) ManagerOption {
	return func(m *Manager) error {
		m.host = h
		return nil
	}
}

// WithLogger sets the manager's logger.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) error {
		m.log = log
		return nil
	}
}

// WithEnablePatterns restricts which plugin IDs are eligible for loading.
// Patterns use glob syntax; a plugin is enabled when its ID matches any
// pattern. No patterns means all plugins are enabled.
func WithEnablePatterns(patterns ...string) ManagerOption {
	return func(m *Manager) error {
		for _, p := range patterns {
			g, err := glob.Compile(p)
			if err != nil {
				return fmt.Errorf("invalid enable pattern %q: %w", p, err)
			}
			m.enable = append(m.enable, g)
		}
		return nil
	}
}

// NewManager creates a plugin manager rooted at pluginsDir.
func NewManager(pluginsDir string, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		pluginsDir: pluginsDir,
		log:        slog.Default(),
		loaded:     make(map[string]*DiscoveredPlugin),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// DiscoveredPlugin contains a manifest and its bundle directory.
type DiscoveredPlugin struct {
	Manifest *Manifest
	Dir      string
}

// enabled reports whether the plugin ID passes the enable patterns.
func (m *Manager) enabled(id string) bool {
	if len(m.enable) == 0 {
		return true
	}
	for _, g := range m.enable {
		if g.Match(id) {
			return true
		}
	}
	return false
}

// Discover finds all valid, enabled plugins in the plugins directory.
// Invalid bundles are logged and skipped; duplicate IDs keep the first
// bundle found.
func (m *Manager) Discover(_ context.Context) ([]*DiscoveredPlugin, error) {
	entries, err := os.ReadDir(m.pluginsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No plugins directory
		}
		return nil, fmt.Errorf("failed to read plugins directory: %w", err)
	}

	seen := make(map[string]string)
	var plugins []*DiscoveredPlugin
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pluginDir := filepath.Join(m.pluginsDir, entry.Name())
		manifestPath := filepath.Join(pluginDir, ManifestName)

		data, err := os.ReadFile(manifestPath) //nolint:gosec // manifestPath is constructed from ReadDir entries
		if err != nil {
			m.log.Warn("skipping bundle without manifest",
				"dir", entry.Name(),
				"error", err)
			continue
		}

		manifest, err := ParseManifest(data)
		if err != nil {
			m.log.Warn("skipping bundle with invalid manifest",
				"dir", entry.Name(),
				"error", err)
			continue
		}

		if prev, ok := seen[manifest.ID]; ok {
			m.log.Warn("skipping bundle with duplicate plugin id",
				"plugin", manifest.ID,
				"dir", entry.Name(),
				"kept", prev)
			continue
		}

		if !m.enabled(manifest.ID) {
			m.log.Debug("skipping disabled plugin",
				"plugin", manifest.ID,
				"dir", entry.Name())
			continue
		}

		seen[manifest.ID] = entry.Name()
		plugins = append(plugins, &DiscoveredPlugin{
			Manifest: manifest,
			Dir:      pluginDir,
		})
	}

	return plugins, nil
}

// LoadAll discovers and loads all enabled plugins.
//
// Individual plugin failures are logged and skipped so the host can come up
// even when some bundles are broken. Callers that need strict loading should
// use Discover and load each plugin individually.
func (m *Manager) LoadAll(ctx context.Context) error {
	discovered, err := m.Discover(ctx)
	if err != nil {
		return err
	}

	for _, dp := range discovered {
		if err := m.loadPlugin(ctx, dp); err != nil {
			m.log.Error("failed to load plugin",
				"plugin", dp.Manifest.ID,
				"error", err)
			continue
		}
	}

	return nil
}

// loadPlugin loads a single discovered plugin through the host.
func (m *Manager) loadPlugin(ctx context.Context, dp *DiscoveredPlugin) error {
	if m.host == nil {
		m.log.Warn("no plugin host configured, skipping plugin",
			"plugin", dp.Manifest.ID)
		return nil
	}

	if err := m.host.Load(ctx, dp.Manifest, dp.Dir); err != nil {
		return fmt.Errorf("load plugin %s: %w", dp.Manifest.ID, err)
	}

	m.mu.Lock()
	m.loaded[dp.Manifest.ID] = dp
	m.mu.Unlock()

	m.log.Info("loaded plugin",
		"plugin", dp.Manifest.ID,
		"version", dp.Manifest.Version)

	return nil
}

// Unload tears down a single loaded plugin.
func (m *Manager) Unload(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.loaded[id]
	delete(m.loaded, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("plugin %s is not loaded", id)
	}
	if m.host == nil {
		return nil
	}
	if err := m.host.Unload(ctx, id); err != nil {
		return fmt.Errorf("unload plugin %s: %w", id, err)
	}
	return nil
}

// ListPlugins returns IDs of all loaded plugins in sorted order.
func (m *Manager) ListPlugins() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.loaded))
	for id := range m.loaded {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids
}

// Close shuts down the manager and all loaded plugins.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Clear loaded map first to ensure consistent state even if close fails.
	m.loaded = make(map[string]*DiscoveredPlugin)

	if m.host != nil {
		if err := m.host.Close(ctx); err != nil {
			return fmt.Errorf("close plugin host: %w", err)
		}
	}

	return nil
}
