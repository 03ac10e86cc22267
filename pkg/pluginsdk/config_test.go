// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvPluginID, "")
	t.Setenv(EnvAPIAddress, "")
	t.Setenv(EnvPluginPath, "")
	t.Setenv(EnvHookTimeoutSeconds, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvSocketDir, "")

	cfg := ConfigFromEnv(nil)

	assert.Empty(t, cfg.PluginID)
	assert.Equal(t, DefaultAPIAddress, cfg.APIAddress)
	assert.Equal(t, DefaultHookTimeout, cfg.HookTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.SocketDir)
}

func TestConfigFromEnv_FullEnvironment(t *testing.T) {
	t.Setenv(EnvPluginID, "echo")
	t.Setenv(EnvAPIAddress, "127.0.0.1:60606")
	t.Setenv(EnvPluginPath, "/srv/plugins/echo")
	t.Setenv(EnvHookTimeoutSeconds, "5")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSocketDir, "/run/chatgrid")

	cfg := ConfigFromEnv(nil)

	assert.Equal(t, "echo", cfg.PluginID)
	assert.Equal(t, "127.0.0.1:60606", cfg.APIAddress)
	assert.Equal(t, "/srv/plugins/echo", cfg.PluginPath)
	assert.Equal(t, 5*time.Second, cfg.HookTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/run/chatgrid", cfg.SocketDir)
}

func TestConfigFromEnv_BadTimeoutFallsBack(t *testing.T) {
	tests := []string{"banana", "-3", "0"}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Setenv(EnvHookTimeoutSeconds, raw)
			cfg := ConfigFromEnv(nil)
			assert.Equal(t, DefaultHookTimeout, cfg.HookTimeout)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("chatty"))
}
