// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package host runs plugin child processes and calls their hooks. The
// supervisor owns one process: launch with the magic-cookie environment,
// read the handshake line from stdout, dial the announced endpoint, probe
// health, then hand the connection to a HookClient.
package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	"github.com/chatgrid/chatgrid-plugin/pkg/pluginsdk"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// Supervisor timing defaults.
const (
	DefaultStartTimeout  = 15 * time.Second
	DefaultShutdownGrace = 10 * time.Second
	healthProbeBase      = 50 * time.Millisecond
	healthProbeTries     = 8
)

// SupervisorConfig describes one plugin process to run.
type SupervisorConfig struct {
	// PluginID names the plugin; it scopes logs, key/value data, and the
	// API listener.
	PluginID string
	// Executable is the plugin binary path.
	Executable string
	// BundlePath is the plugin's install directory, exported to the child.
	BundlePath string
	// APIAddress is the host API endpoint this plugin should dial.
	APIAddress string
	// HookTimeout caps each hook invocation.
	HookTimeout time.Duration
	// SocketDir, when set, tells the plugin to listen on a UNIX socket.
	SocketDir string
	// StartTimeout bounds launch-to-handshake.
	StartTimeout time.Duration
	// ShutdownGrace bounds deactivate-to-kill.
	ShutdownGrace time.Duration
	// LogLevel is forwarded to the child.
	LogLevel string
	// Metrics, when set, is attached to the hook client so dispatches are
	// recorded.
	Metrics *observability.Metrics
}

func (c *SupervisorConfig) withDefaults() {
	if c.StartTimeout <= 0 {
		c.StartTimeout = DefaultStartTimeout
	}
	if c.ShutdownGrace <= 0 {
		c.ShutdownGrace = DefaultShutdownGrace
	}
	if c.HookTimeout <= 0 {
		c.HookTimeout = pluginsdk.DefaultHookTimeout
	}
}

// Supervisor owns one plugin child process and its gRPC channel.
type Supervisor struct {
	cfg   SupervisorConfig
	log   *slog.Logger
	cmd   *exec.Cmd
	conn  *grpc.ClientConn
	hooks *HookClient
}

// NewSupervisor prepares a supervisor; nothing runs until Start.
func NewSupervisor(cfg SupervisorConfig, log *slog.Logger) *Supervisor {
	cfg.withDefaults()
	return &Supervisor{
		cfg: cfg,
		log: log.With("plugin_id", cfg.PluginID),
	}
}

// Hooks returns the hook caller. Nil before a successful Start.
func (s *Supervisor) Hooks() *HookClient { return s.hooks }

// Start launches the plugin process, completes the handshake, waits for the
// health service, caches the implemented hook set, and runs OnActivate. Any
// failure kills the child before returning.
func (s *Supervisor) Start(ctx context.Context) error {
	if _, err := os.Stat(s.cfg.Executable); err != nil {
		return fmt.Errorf("plugin executable %s: %w", s.cfg.Executable, err)
	}

	cmd := exec.Command(s.cfg.Executable) // #nosec G204 -- path comes from a validated plugin manifest
	cmd.Env = append(os.Environ(),
		pluginsdk.MagicCookieKey+"="+pluginsdk.MagicCookieValue,
		pluginsdk.EnvPluginID+"="+s.cfg.PluginID,
		pluginsdk.EnvAPIAddress+"="+s.cfg.APIAddress,
		pluginsdk.EnvPluginPath+"="+s.cfg.BundlePath,
		pluginsdk.EnvHookTimeoutSeconds+"="+strconv.Itoa(int(s.cfg.HookTimeout/time.Second)),
	)
	if s.cfg.SocketDir != "" {
		cmd.Env = append(cmd.Env, pluginsdk.EnvSocketDir+"="+s.cfg.SocketDir)
	}
	if s.cfg.LogLevel != "" {
		cmd.Env = append(cmd.Env, pluginsdk.EnvLogLevel+"="+s.cfg.LogLevel)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("plugin %s: stdout pipe: %w", s.cfg.PluginID, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("plugin %s: stderr pipe: %w", s.cfg.PluginID, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("plugin %s: start: %w", s.cfg.PluginID, err)
	}
	s.cmd = cmd

	go s.relayStderr(stderr)

	hs, err := waitHandshake(stdout, s.cfg.StartTimeout)
	if err != nil {
		s.kill()
		return fmt.Errorf("plugin %s: %w", s.cfg.PluginID, err)
	}
	// Anything the child writes to stdout after the handshake is noise;
	// drain it so the pipe never fills.
	go func() {
		_, _ = io.Copy(io.Discard, stdout)
	}()

	endpoint := hs.Addr
	if hs.Network == pluginsdk.NetworkUnix {
		endpoint = "unix://" + hs.Addr
	}
	conn, err := pluginsdk.Dial(endpoint, pluginsdk.TransportOptions{})
	if err != nil {
		s.kill()
		return fmt.Errorf("plugin %s: %w", s.cfg.PluginID, err)
	}
	s.conn = conn

	if err := s.waitHealthy(ctx); err != nil {
		s.kill()
		return fmt.Errorf("plugin %s: health: %w", s.cfg.PluginID, err)
	}

	hooks := NewHookClient(s.cfg.PluginID, pluginv1.NewPluginHooksClient(conn), s.log, s.cfg.HookTimeout).
		WithMetrics(s.cfg.Metrics)
	implemented, err := hooks.Refresh(ctx)
	if err != nil {
		s.kill()
		return fmt.Errorf("plugin %s: %w", s.cfg.PluginID, err)
	}
	s.log.Info("plugin connected",
		"network", hs.Network,
		"addr", hs.Addr,
		"hooks", len(implemented))

	if err := hooks.OnActivate(ctx); err != nil {
		s.kill()
		return fmt.Errorf("plugin %s: activation failed: %w", s.cfg.PluginID, err)
	}

	s.hooks = hooks
	return nil
}

// Stop deactivates the plugin and terminates the process: OnDeactivate,
// SIGTERM, grace window, SIGKILL.
func (s *Supervisor) Stop(ctx context.Context) error {
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}

	if s.hooks != nil {
		if err := s.hooks.OnDeactivate(ctx); err != nil {
			s.log.Warn("deactivation hook failed", "error", err)
		}
	}

	if err := s.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		s.log.Warn("signal plugin process", "error", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()

	select {
	case <-done:
	case <-time.After(s.cfg.ShutdownGrace):
		s.log.Warn("plugin did not exit in grace window, killing")
		_ = s.cmd.Process.Kill()
		<-done
	}

	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.cmd = nil
	s.hooks = nil
	return nil
}

// Healthy probes the plugin's health service once.
func (s *Supervisor) Healthy(ctx context.Context) bool {
	if s.conn == nil {
		return false
	}
	resp, err := healthpb.NewHealthClient(s.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: "plugin"})
	return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

func (s *Supervisor) waitHealthy(ctx context.Context) error {
	health := healthpb.NewHealthClient(s.conn)
	backoff := retry.WithMaxRetries(healthProbeTries, retry.NewFibonacci(healthProbeBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := health.Check(ctx, &healthpb.HealthCheckRequest{Service: "plugin"})
		if err != nil {
			return retry.RetryableError(err)
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return retry.RetryableError(fmt.Errorf("status %s", resp.GetStatus()))
		}
		return nil
	})
}

// relayStderr forwards the child's stderr lines into the host log. Plugins
// log structured JSON there; the host wraps each line without parsing it.
func (s *Supervisor) relayStderr(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s.log.Info("plugin stderr", "line", scanner.Text())
	}
}

func (s *Supervisor) kill() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		_ = s.cmd.Wait()
	}
	s.cmd = nil
}

// waitHandshake reads the plugin's announcement line from r, bounded by
// timeout. The child owning the write end keeps r open, so a missing line
// must time out rather than block forever.
func waitHandshake(r io.Reader, timeout time.Duration) (pluginsdk.Handshake, error) {
	type result struct {
		hs  pluginsdk.Handshake
		err error
	}
	ch := make(chan result, 1)

	go func() {
		scanner := bufio.NewScanner(r)
		if !scanner.Scan() {
			err := scanner.Err()
			if err == nil {
				err = fmt.Errorf("handshake: plugin closed stdout before announcing")
			}
			ch <- result{err: err}
			return
		}
		hs, err := pluginsdk.ParseHandshake(scanner.Text())
		if err == nil {
			err = hs.Validate()
		}
		ch <- result{hs: hs, err: err}
	}()

	select {
	case res := <-ch:
		return res.hs, res.err
	case <-time.After(timeout):
		return pluginsdk.Handshake{}, fmt.Errorf("handshake: no announcement within %s", timeout)
	}
}
