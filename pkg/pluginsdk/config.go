// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Environment variables the host sets before launching a plugin process.
const (
	EnvPluginID           = "CHATGRID_PLUGIN_ID"
	EnvAPIAddress         = "CHATGRID_PLUGIN_API_ADDRESS"
	EnvPluginPath         = "CHATGRID_PLUGIN_PATH"
	EnvHookTimeoutSeconds = "CHATGRID_PLUGIN_HOOK_TIMEOUT_SECONDS"
	EnvLogLevel           = "CHATGRID_PLUGIN_LOG_LEVEL"

	// EnvSocketDir, when set, switches the plugin listener from loopback
	// TCP to a UNIX socket created inside the given directory.
	EnvSocketDir = "CHATGRID_PLUGIN_SOCKET_DIR"
)

// Defaults for the enumerated configuration.
const (
	DefaultAPIAddress  = "127.0.0.1:50051"
	DefaultHookTimeout = 30 * time.Second
	DefaultLogLevel    = slog.LevelInfo
)

// Config is the runtime configuration of a plugin instance. It is populated
// once from the environment at start-up and never mutated afterwards.
type Config struct {
	// PluginID is the identifier the host assigned to this plugin.
	PluginID string
	// APIAddress is the endpoint of the host's PluginAPI service.
	APIAddress string
	// PluginPath is the filesystem location of the plugin bundle.
	PluginPath string
	// HookTimeout is the default per-invocation ceiling for hook handlers.
	HookTimeout time.Duration
	// LogLevel is the minimum level emitted to stderr.
	LogLevel slog.Level
	// SocketDir, when non-empty, selects UNIX-socket transport.
	SocketDir string
}

// ConfigFromEnv reads the enumerated environment variables. Malformed values
// never fail start-up: they fall back to defaults with a logged warning, so a
// misconfigured host still gets a running plugin it can talk to.
func ConfigFromEnv(logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := Config{
		PluginID:    os.Getenv(EnvPluginID),
		APIAddress:  os.Getenv(EnvAPIAddress),
		PluginPath:  os.Getenv(EnvPluginPath),
		HookTimeout: DefaultHookTimeout,
		LogLevel:    DefaultLogLevel,
		SocketDir:   os.Getenv(EnvSocketDir),
	}
	if cfg.APIAddress == "" {
		cfg.APIAddress = DefaultAPIAddress
	}

	if raw := os.Getenv(EnvHookTimeoutSeconds); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			logger.Warn("invalid hook timeout, using default",
				"value", raw,
				"default", DefaultHookTimeout)
		} else {
			cfg.HookTimeout = time.Duration(secs) * time.Second
		}
	}

	if raw := os.Getenv(EnvLogLevel); raw != "" {
		cfg.LogLevel = parseLogLevel(raw)
	}

	return cfg
}

// parseLogLevel maps the enumerated level names; unknown values mean info.
func parseLogLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
