// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package hostconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatgrid/chatgrid-plugin/internal/hostconfig"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "host.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	hostconfig.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := hostconfig.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, hostconfig.Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
plugins-dir: /var/lib/chatgrid/plugins
api-addr: 127.0.0.1:6000
enable:
  - metrics-*
  - echo
hook-timeout-seconds: 12
log-format: text
`)

	cfg, err := hostconfig.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/chatgrid/plugins", cfg.PluginsDir)
	assert.Equal(t, "127.0.0.1:6000", cfg.APIAddr)
	assert.Equal(t, []string{"metrics-*", "echo"}, cfg.Enable)
	assert.Equal(t, 12, cfg.HookTimeoutSeconds)
	assert.Equal(t, "text", cfg.LogFormat)
	// Untouched keys keep their defaults.
	assert.Equal(t, hostconfig.DefaultMetricsAddr, cfg.MetricsAddr)
	assert.Equal(t, hostconfig.DefaultShutdownGraceSeconds, cfg.ShutdownGraceSeconds)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "api-addr: 127.0.0.1:6000\nlog-level: warn\n")
	fs := newFlags(t, "--api-addr", "127.0.0.1:7000")

	cfg, err := hostconfig.Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.APIAddr)
	// File value survives when the flag was not set.
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FlagsOnly(t *testing.T) {
	fs := newFlags(t,
		"--plugins-dir", "/opt/plugins",
		"--enable", "echo",
		"--database-url", "postgres://localhost/chatgrid")

	cfg, err := hostconfig.Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "/opt/plugins", cfg.PluginsDir)
	assert.Equal(t, []string{"echo"}, cfg.Enable)
	assert.Equal(t, "postgres://localhost/chatgrid", cfg.DatabaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := hostconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "api-addr: [")
	_, err := hostconfig.Load(path, nil)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*hostconfig.Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(*hostconfig.Config) {},
			wantErr: "",
		},
		{
			name:    "empty plugins dir",
			mutate:  func(c *hostconfig.Config) { c.PluginsDir = "" },
			wantErr: "plugins-dir",
		},
		{
			name:    "empty api addr",
			mutate:  func(c *hostconfig.Config) { c.APIAddr = "" },
			wantErr: "api-addr",
		},
		{
			name:    "zero hook timeout",
			mutate:  func(c *hostconfig.Config) { c.HookTimeoutSeconds = 0 },
			wantErr: "hook-timeout-seconds",
		},
		{
			name:    "negative grace",
			mutate:  func(c *hostconfig.Config) { c.ShutdownGraceSeconds = -1 },
			wantErr: "shutdown-grace-seconds",
		},
		{
			name:    "negative health interval",
			mutate:  func(c *hostconfig.Config) { c.HealthCheckSeconds = -1 },
			wantErr: "health-check-seconds",
		},
		{
			name:    "bad log format",
			mutate:  func(c *hostconfig.Config) { c.LogFormat = "logfmt" },
			wantErr: "log-format",
		},
		{
			name:    "bad log level",
			mutate:  func(c *hostconfig.Config) { c.LogLevel = "trace" },
			wantErr: "log-level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := hostconfig.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
