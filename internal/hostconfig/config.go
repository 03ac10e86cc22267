// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package hostconfig loads plugin host configuration from a YAML file and
// command-line flags. Flags take precedence over the file; both override
// the built-in defaults.
package hostconfig

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds plugin host settings.
type Config struct {
	// PluginsDir is the directory scanned for plugin bundles.
	PluginsDir string `koanf:"plugins-dir"`

	// Enable lists glob patterns of plugin IDs eligible for loading.
	// Empty means all discovered plugins.
	Enable []string `koanf:"enable"`

	// APIAddr is the base listen address for per-plugin host-API servers.
	APIAddr string `koanf:"api-addr"`

	// MetricsAddr is the metrics/health HTTP address. Empty disables it.
	MetricsAddr string `koanf:"metrics-addr"`

	// DatabaseURL is the Postgres connection string for the key-value
	// store. Empty selects the in-memory store.
	DatabaseURL string `koanf:"database-url"`

	// HookTimeoutSeconds is the default per-hook deadline.
	HookTimeoutSeconds int `koanf:"hook-timeout-seconds"`

	// ShutdownGraceSeconds bounds how long plugins get to drain on stop.
	ShutdownGraceSeconds int `koanf:"shutdown-grace-seconds"`

	// HealthCheckSeconds spaces the periodic plugin health probes that
	// drive restarts. Zero disables the watcher.
	HealthCheckSeconds int `koanf:"health-check-seconds"`

	// SocketDir, when set, switches plugin transports from loopback TCP
	// to unix sockets under this directory.
	SocketDir string `koanf:"socket-dir"`

	// LogFormat is "json" or "text".
	LogFormat string `koanf:"log-format"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `koanf:"log-level"`
}

// Default configuration values.
const (
	DefaultPluginsDir  = "plugins"
	DefaultAPIAddr     = "127.0.0.1:50051"
	DefaultMetricsAddr = "127.0.0.1:9100"
	DefaultLogFormat   = "json"
	DefaultLogLevel    = "info"

	DefaultHookTimeoutSeconds   = 30
	DefaultShutdownGraceSeconds = 10
	DefaultHealthCheckSeconds   = 30
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PluginsDir:           DefaultPluginsDir,
		APIAddr:              DefaultAPIAddr,
		MetricsAddr:          DefaultMetricsAddr,
		HookTimeoutSeconds:   DefaultHookTimeoutSeconds,
		ShutdownGraceSeconds: DefaultShutdownGraceSeconds,
		HealthCheckSeconds:   DefaultHealthCheckSeconds,
		LogFormat:            DefaultLogFormat,
		LogLevel:             DefaultLogLevel,
	}
}

// Load builds a Config from the optional YAML file at path and the given
// flag set. Either may be empty/nil. Precedence: flags > file > defaults.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.PluginsDir == "" {
		return fmt.Errorf("plugins-dir is required")
	}
	if c.APIAddr == "" {
		return fmt.Errorf("api-addr is required")
	}
	if c.HookTimeoutSeconds <= 0 {
		return fmt.Errorf("hook-timeout-seconds must be positive, got %d", c.HookTimeoutSeconds)
	}
	if c.ShutdownGraceSeconds < 0 {
		return fmt.Errorf("shutdown-grace-seconds must not be negative, got %d", c.ShutdownGraceSeconds)
	}
	if c.HealthCheckSeconds < 0 {
		return fmt.Errorf("health-check-seconds must not be negative, got %d", c.HealthCheckSeconds)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("log-format must be 'json' or 'text', got %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	return nil
}

// RegisterFlags adds the config's command-line flags to a flag set. The
// flag defaults mirror Default() so posflag merging never downgrades a
// file-set value.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String("plugins-dir", def.PluginsDir, "directory scanned for plugin bundles")
	fs.StringSlice("enable", nil, "glob patterns of plugin IDs to load (default: all)")
	fs.String("api-addr", def.APIAddr, "host-API gRPC listen address")
	fs.String("metrics-addr", def.MetricsAddr, "metrics/health HTTP address (empty = disabled)")
	fs.String("database-url", "", "Postgres URL for the key-value store (empty = in-memory)")
	fs.Int("hook-timeout-seconds", def.HookTimeoutSeconds, "default per-hook deadline in seconds")
	fs.Int("shutdown-grace-seconds", def.ShutdownGraceSeconds, "plugin drain window on shutdown in seconds")
	fs.Int("health-check-seconds", def.HealthCheckSeconds, "interval between plugin health probes in seconds (0 = disabled)")
	fs.String("socket-dir", "", "serve plugin transports on unix sockets under this directory")
	fs.String("log-format", def.LogFormat, "log format (json or text)")
	fs.String("log-level", def.LogLevel, "log level (debug, info, warn, error)")
}
