// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package host

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	"github.com/chatgrid/chatgrid-plugin/pkg/pluginsdk"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHooks scripts PluginHooksClient responses. Unscripted methods panic
// via the embedded nil interface, which is the failure a test wants.
type fakeHooks struct {
	pluginv1.PluginHooksClient

	implementedResp *pluginv1.ImplementedResponse
	implementedErr  error

	activateResp *pluginv1.OnActivateResponse
	activateErr  error

	willBePostedResp *pluginv1.MessageWillBePostedResponse
	willBePostedErr  error

	hasBeenPostedCalls int
	hasBeenPostedErr   error

	executeResp *pluginv1.ExecuteCommandResponse
	executeErr  error
}

func (f *fakeHooks) Implemented(context.Context, *pluginv1.ImplementedRequest, ...grpc.CallOption) (*pluginv1.ImplementedResponse, error) {
	return f.implementedResp, f.implementedErr
}

func (f *fakeHooks) OnActivate(context.Context, *pluginv1.OnActivateRequest, ...grpc.CallOption) (*pluginv1.OnActivateResponse, error) {
	return f.activateResp, f.activateErr
}

func (f *fakeHooks) MessageWillBePosted(context.Context, *pluginv1.MessageWillBePostedRequest, ...grpc.CallOption) (*pluginv1.MessageWillBePostedResponse, error) {
	return f.willBePostedResp, f.willBePostedErr
}

func (f *fakeHooks) MessageHasBeenPosted(context.Context, *pluginv1.MessageHasBeenPostedRequest, ...grpc.CallOption) (*pluginv1.MessageHasBeenPostedResponse, error) {
	f.hasBeenPostedCalls++
	return &pluginv1.MessageHasBeenPostedResponse{}, f.hasBeenPostedErr
}

func (f *fakeHooks) ExecuteCommand(context.Context, *pluginv1.ExecuteCommandRequest, ...grpc.CallOption) (*pluginv1.ExecuteCommandResponse, error) {
	return f.executeResp, f.executeErr
}

func newTestHookClient(fake *fakeHooks, implemented ...string) *HookClient {
	c := NewHookClient("echo", fake, testLogger(), time.Second)
	set := make(map[string]struct{}, len(implemented))
	for _, name := range implemented {
		set[name] = struct{}{}
	}
	c.implemented = set
	return c
}

func TestHookClient_Refresh(t *testing.T) {
	fake := &fakeHooks{
		implementedResp: &pluginv1.ImplementedResponse{
			Hooks: []string{pluginsdk.HookMessageWillBePosted, pluginsdk.HookServeHTTP},
		},
	}
	c := NewHookClient("echo", fake, testLogger(), time.Second)

	hooks, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, hooks, 2)
	assert.True(t, c.Has(pluginsdk.HookMessageWillBePosted))
	assert.True(t, c.Has(pluginsdk.HookServeHTTP))
	assert.False(t, c.Has(pluginsdk.HookExecuteCommand))
}

func TestHookClient_Refresh_TransportError(t *testing.T) {
	fake := &fakeHooks{implementedErr: errors.New("connection refused")}
	c := NewHookClient("echo", fake, testLogger(), time.Second)

	_, err := c.Refresh(context.Background())
	require.Error(t, err)
}

func TestHookClient_OnActivate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{activateResp: &pluginv1.OnActivateResponse{}})
		require.NoError(t, c.OnActivate(context.Background()))
	})

	t.Run("handler failure surfaces", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{activateResp: &pluginv1.OnActivateResponse{
			Error: &pluginv1.AppError{Id: "plugin.hook.app_error", Message: "license missing", StatusCode: 500},
		}})
		err := c.OnActivate(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "license missing")
	})
}

func TestHookClient_MessageWillBePosted(t *testing.T) {
	post := &pluginv1.Post{Message: "original"}

	t.Run("unimplemented passes post through", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{})
		got, reason, err := c.MessageWillBePosted(context.Background(), nil, post)
		require.NoError(t, err)
		assert.Empty(t, reason)
		assert.Same(t, post, got)
	})

	t.Run("allow unchanged", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			willBePostedResp: &pluginv1.MessageWillBePostedResponse{},
		}, pluginsdk.HookMessageWillBePosted)
		got, reason, err := c.MessageWillBePosted(context.Background(), nil, post)
		require.NoError(t, err)
		assert.Empty(t, reason)
		assert.Same(t, post, got)
	})

	t.Run("modified post wins", func(t *testing.T) {
		modified := &pluginv1.Post{Message: "edited"}
		c := newTestHookClient(&fakeHooks{
			willBePostedResp: &pluginv1.MessageWillBePostedResponse{ModifiedPost: modified},
		}, pluginsdk.HookMessageWillBePosted)
		got, _, err := c.MessageWillBePosted(context.Background(), nil, post)
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Message)
	})

	t.Run("rejection", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			willBePostedResp: &pluginv1.MessageWillBePostedResponse{RejectionReason: "contains profanity"},
		}, pluginsdk.HookMessageWillBePosted)
		got, reason, err := c.MessageWillBePosted(context.Background(), nil, post)
		require.ErrorIs(t, err, ErrRejectedByPlugin)
		assert.Equal(t, "contains profanity", reason)
		assert.Nil(t, got)
	})

	t.Run("dismiss drops silently", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			willBePostedResp: &pluginv1.MessageWillBePostedResponse{RejectionReason: pluginsdk.DismissPostError},
		}, pluginsdk.HookMessageWillBePosted)
		got, reason, err := c.MessageWillBePosted(context.Background(), nil, post)
		require.NoError(t, err)
		assert.Empty(t, reason)
		assert.Nil(t, got)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			willBePostedErr: status.Error(codes.DeadlineExceeded, "hook timed out"),
		}, pluginsdk.HookMessageWillBePosted)
		_, _, err := c.MessageWillBePosted(context.Background(), nil, post)
		require.Error(t, err)
		assert.Equal(t, codes.DeadlineExceeded, status.Code(errors.Unwrap(err)))
	})
}

func TestHookClient_Notification_SwallowsFailure(t *testing.T) {
	fake := &fakeHooks{hasBeenPostedErr: status.Error(codes.Internal, "handler panicked")}
	c := newTestHookClient(fake, pluginsdk.HookMessageHasBeenPosted)

	// Must not panic or surface the error.
	c.MessageHasBeenPosted(context.Background(), nil, &pluginv1.Post{Message: "x"})
	assert.Equal(t, 1, fake.hasBeenPostedCalls)
}

func TestHookClient_Notification_SkipsUnimplemented(t *testing.T) {
	fake := &fakeHooks{}
	c := newTestHookClient(fake)

	c.MessageHasBeenPosted(context.Background(), nil, &pluginv1.Post{})
	assert.Zero(t, fake.hasBeenPostedCalls, "unimplemented notifications must not hit the wire")
}

func TestHookClient_RecordsMetrics(t *testing.T) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	t.Run("success counts as ok", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			executeResp: &pluginv1.ExecuteCommandResponse{
				Response: &pluginv1.CommandResponse{Text: "pong"},
			},
		}, pluginsdk.HookExecuteCommand).WithMetrics(metrics)

		_, err := c.ExecuteCommand(context.Background(), nil, &pluginv1.CommandArgs{Command: "/ping"})
		require.NoError(t, err)

		got := testutil.ToFloat64(metrics.HookInvocationsTotal.WithLabelValues("echo", pluginsdk.HookExecuteCommand, "ok"))
		assert.Equal(t, float64(1), got)
	})

	t.Run("deadline counts as timeout", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			willBePostedErr: status.Error(codes.DeadlineExceeded, "hook timed out"),
		}, pluginsdk.HookMessageWillBePosted).WithMetrics(metrics)

		_, _, err := c.MessageWillBePosted(context.Background(), nil, &pluginv1.Post{Message: "x"})
		require.Error(t, err)

		invocations := testutil.ToFloat64(metrics.HookInvocationsTotal.WithLabelValues("echo", pluginsdk.HookMessageWillBePosted, "timeout"))
		assert.Equal(t, float64(1), invocations)
		timeouts := testutil.ToFloat64(metrics.HookTimeoutsTotal.WithLabelValues("echo", pluginsdk.HookMessageWillBePosted))
		assert.Equal(t, float64(1), timeouts)
	})

	t.Run("notification failure counts as error", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			hasBeenPostedErr: status.Error(codes.Internal, "handler panicked"),
		}, pluginsdk.HookMessageHasBeenPosted).WithMetrics(metrics)

		c.MessageHasBeenPosted(context.Background(), nil, &pluginv1.Post{Message: "x"})

		got := testutil.ToFloat64(metrics.HookInvocationsTotal.WithLabelValues("echo", pluginsdk.HookMessageHasBeenPosted, "error"))
		assert.Equal(t, float64(1), got)
	})

	t.Run("nil metrics is a no-op", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			executeResp: &pluginv1.ExecuteCommandResponse{},
		}, pluginsdk.HookExecuteCommand)

		_, err := c.ExecuteCommand(context.Background(), nil, &pluginv1.CommandArgs{Command: "/ping"})
		require.NoError(t, err)
	})
}

func TestHookClient_ExecuteCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{
			executeResp: &pluginv1.ExecuteCommandResponse{
				Response: &pluginv1.CommandResponse{Text: "pong"},
			},
		}, pluginsdk.HookExecuteCommand)
		resp, err := c.ExecuteCommand(context.Background(), nil, &pluginv1.CommandArgs{Command: "/ping"})
		require.NoError(t, err)
		assert.Equal(t, "pong", resp.Text)
	})

	t.Run("unimplemented is an error", func(t *testing.T) {
		c := newTestHookClient(&fakeHooks{})
		_, err := c.ExecuteCommand(context.Background(), nil, &pluginv1.CommandArgs{Command: "/ping"})
		require.Error(t, err)
	})
}
