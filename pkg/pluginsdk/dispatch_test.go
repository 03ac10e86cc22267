// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHooksServer(t *testing.T, timeout time.Duration, register func(*Registry)) *hooksServer {
	t.Helper()
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	if register != nil {
		register(reg)
	}
	s := newHooksServer(reg, quietLogger(), timeout)
	t.Cleanup(func() { s.pool.Stop() })
	return s
}

func TestHooksServer_Implemented(t *testing.T) {
	s := newTestHooksServer(t, 0, func(reg *Registry) {
		require.NoError(t, reg.Register(HookOnActivate, func() error { return nil }))
		require.NoError(t, reg.Register(HookExecuteCommand,
			func(*Context, *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) { return nil, nil }))
	})

	resp, err := s.Implemented(t.Context(), &pluginv1.ImplementedRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{HookExecuteCommand, HookOnActivate}, resp.GetHooks())
}

func TestHooksServer_OnActivate_Vacuous(t *testing.T) {
	s := newTestHooksServer(t, 0, nil)

	resp, err := s.OnActivate(t.Context(), &pluginv1.OnActivateRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.GetError())
}

func TestHooksServer_OnActivate_HandlerError(t *testing.T) {
	s := newTestHooksServer(t, 0, func(reg *Registry) {
		require.NoError(t, reg.Register(HookOnActivate, func() error {
			return errors.New("license missing")
		}))
	})

	resp, err := s.OnActivate(t.Context(), &pluginv1.OnActivateRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.GetError())
	assert.Equal(t, "license missing", resp.GetError().GetMessage())
	assert.Equal(t, HookOnActivate, resp.GetError().GetWhere())
}

func TestHooksServer_MessageWillBePosted(t *testing.T) {
	s := newTestHooksServer(t, 0, func(reg *Registry) {
		require.NoError(t, reg.Register(HookMessageWillBePosted,
			func(_ *Context, post *pluginv1.Post) (*pluginv1.Post, string) {
				if post.GetMessage() == "forbidden" {
					return nil, DismissPostError
				}
				post.Message = post.GetMessage() + "!"
				return post, ""
			}))
	})

	resp, err := s.MessageWillBePosted(t.Context(), &pluginv1.MessageWillBePostedRequest{
		Post: &pluginv1.Post{Message: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello!", resp.GetModifiedPost().GetMessage())
	assert.Empty(t, resp.GetRejectionReason())

	resp, err = s.MessageWillBePosted(t.Context(), &pluginv1.MessageWillBePostedRequest{
		Post: &pluginv1.Post{Message: "forbidden"},
	})
	require.NoError(t, err)
	assert.Nil(t, resp.GetModifiedPost())
	assert.Equal(t, DismissPostError, resp.GetRejectionReason())
}

func TestHooksServer_UnimplementedHook(t *testing.T) {
	s := newTestHooksServer(t, 0, nil)

	_, err := s.MessageWillBePosted(t.Context(), &pluginv1.MessageWillBePostedRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestHooksServer_HandlerTimeout(t *testing.T) {
	release := make(chan struct{})
	s := newTestHooksServer(t, 50*time.Millisecond, func(reg *Registry) {
		require.NoError(t, reg.Register(HookExecuteCommand,
			func(*Context, *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) {
				<-release
				return nil, nil
			}))
	})
	defer close(release)

	// A stuck handler answers like a failed one, not like a broken wire:
	// the RPC succeeds and carries a timeout error envelope.
	resp, err := s.ExecuteCommand(t.Context(), &pluginv1.ExecuteCommandRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.GetError())
	assert.Equal(t, "plugin.hook.timeout", resp.GetError().GetId())
	assert.Equal(t, int32(http.StatusGatewayTimeout), resp.GetError().GetStatusCode())
	assert.Contains(t, resp.GetError().GetMessage(), HookExecuteCommand)
}

func TestHooksServer_GateTimeoutRejects(t *testing.T) {
	release := make(chan struct{})
	s := newTestHooksServer(t, 50*time.Millisecond, func(reg *Registry) {
		require.NoError(t, reg.Register(HookMessageWillBePosted,
			func(*Context, *pluginv1.Post) (*pluginv1.Post, string) {
				<-release
				return nil, ""
			}))
	})
	defer close(release)

	resp, err := s.MessageWillBePosted(t.Context(), &pluginv1.MessageWillBePostedRequest{
		Post: &pluginv1.Post{Message: "hello"},
	})
	require.NoError(t, err)
	assert.Nil(t, resp.GetModifiedPost())
	assert.Contains(t, resp.GetRejectionReason(), "timed out")
	assert.Contains(t, resp.GetRejectionReason(), HookMessageWillBePosted)
}

func TestHooksServer_OnActivateTimeout(t *testing.T) {
	release := make(chan struct{})
	s := newTestHooksServer(t, 50*time.Millisecond, func(reg *Registry) {
		require.NoError(t, reg.Register(HookOnActivate, func() error {
			<-release
			return nil
		}))
	})
	defer close(release)

	resp, err := s.OnActivate(t.Context(), &pluginv1.OnActivateRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.GetError())
	assert.Equal(t, "plugin.hook.timeout", resp.GetError().GetId())
	assert.Equal(t, HookOnActivate, resp.GetError().GetWhere())
}

func TestHooksServer_HandlerPanic(t *testing.T) {
	s := newTestHooksServer(t, 0, func(reg *Registry) {
		require.NoError(t, reg.Register(HookExecuteCommand,
			func(*Context, *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) {
				panic("nil map write")
			}))
	})

	_, err := s.ExecuteCommand(t.Context(), &pluginv1.ExecuteCommandRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, err.Error(), "nil map write")
}

func TestHooksServer_NotificationFailuresAreSwallowed(t *testing.T) {
	s := newTestHooksServer(t, 0, func(reg *Registry) {
		require.NoError(t, reg.Register(HookMessageHasBeenPosted,
			func(*Context, *pluginv1.Post) {
				panic("observer blew up")
			}))
	})

	_, err := s.MessageHasBeenPosted(t.Context(), &pluginv1.MessageHasBeenPostedRequest{
		Post: &pluginv1.Post{Message: "hi"},
	})
	assert.NoError(t, err)
}

func TestHooksServer_ContextCarriesRequestMetadata(t *testing.T) {
	var got *Context
	s := newTestHooksServer(t, 0, func(reg *Registry) {
		require.NoError(t, reg.Register(HookExecuteCommand,
			func(c *Context, _ *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) {
				got = c
				return &pluginv1.CommandResponse{Text: "ok"}, nil
			}))
	})

	resp, err := s.ExecuteCommand(t.Context(), &pluginv1.ExecuteCommandRequest{
		PluginContext: &pluginv1.PluginContext{
			SessionId: "sess-1",
			RequestId: "req-9",
			IpAddress: "203.0.113.7",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.GetResponse().GetText())
	require.NotNil(t, got)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, "req-9", got.RequestID)
	assert.Equal(t, "203.0.113.7", got.IPAddress)
	assert.NotNil(t, got.Context())
}

func TestHooksServer_OnDeactivateStartsDraining(t *testing.T) {
	deactivated := false
	s := newTestHooksServer(t, 0, func(reg *Registry) {
		require.NoError(t, reg.Register(HookOnDeactivate, func() error {
			deactivated = true
			return nil
		}))
		require.NoError(t, reg.Register(HookExecuteCommand,
			func(*Context, *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) {
				return &pluginv1.CommandResponse{}, nil
			}))
	})

	resp, err := s.OnDeactivate(t.Context(), &pluginv1.OnDeactivateRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.GetError())
	assert.True(t, deactivated)

	_, err = s.ExecuteCommand(t.Context(), &pluginv1.ExecuteCommandRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	// Notification hooks get the same refusal; drain errors are the one
	// category notify propagates.
	_, err = s.MessageHasBeenPosted(t.Context(), &pluginv1.MessageHasBeenPostedRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestHooksServer_DrainWaitsForInFlightHandlers(t *testing.T) {
	defer goleak.VerifyNone(t)

	started := make(chan struct{})
	finished := make(chan struct{})
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	require.NoError(t, reg.Register(HookExecuteCommand,
		func(*Context, *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) {
			close(started)
			time.Sleep(50 * time.Millisecond)
			close(finished)
			return &pluginv1.CommandResponse{}, nil
		}))
	s := newHooksServer(reg, quietLogger(), time.Second)

	go func() {
		_, _ = s.ExecuteCommand(context.Background(), &pluginv1.ExecuteCommandRequest{})
	}()
	<-started

	s.drain(time.Second)

	select {
	case <-finished:
	default:
		t.Fatal("drain returned before the in-flight handler finished")
	}
}

func TestAppErrorFrom(t *testing.T) {
	assert.Nil(t, appErrorFrom("X", nil))

	ae := appErrorFrom("ExecuteCommand", &APIError{
		ID:         "app.command.denied",
		Message:    "nope",
		StatusCode: http.StatusForbidden,
		Params:     map[string]string{"user": "u1"},
	})
	assert.Equal(t, "app.command.denied", ae.GetId())
	assert.Equal(t, int32(http.StatusForbidden), ae.GetStatusCode())
	assert.Equal(t, "ExecuteCommand", ae.GetWhere())
	assert.Equal(t, "u1", ae.GetParams()["user"])

	ae = appErrorFrom("OnActivate", errors.New("plain failure"))
	assert.Equal(t, "plugin.hook.app_error", ae.GetId())
	assert.Equal(t, "plain failure", ae.GetMessage())
	assert.Equal(t, int32(http.StatusInternalServerError), ae.GetStatusCode())
}
