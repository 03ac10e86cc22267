// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatgrid/chatgrid-plugin/internal/host/backend"
	"github.com/chatgrid/chatgrid-plugin/internal/host/kv"
	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

func newTestServer(t *testing.T) (*Server, *backend.Backend, *kv.MemoryStore) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemoryStore()
	t.Cleanup(store.Close)
	world := backend.New(log, "9.4.0")
	return NewServer("echo", store, world, log), world, store
}

func TestServer_KVRoundTrip(t *testing.T) {
	s, _, _ := newTestServer(t)
	ctx := context.Background()

	setResp, err := s.KVSet(ctx, &pluginv1.KVSetRequest{Key: "greeting", Value: []byte("hello")})
	require.NoError(t, err)
	require.Nil(t, setResp.Error)

	getResp, err := s.KVGet(ctx, &pluginv1.KVGetRequest{Key: "greeting"})
	require.NoError(t, err)
	require.Nil(t, getResp.Error)
	assert.True(t, getResp.Present)
	assert.Equal(t, []byte("hello"), getResp.Value)

	delResp, err := s.KVDelete(ctx, &pluginv1.KVDeleteRequest{Key: "greeting"})
	require.NoError(t, err)
	require.Nil(t, delResp.Error)

	getResp, err = s.KVGet(ctx, &pluginv1.KVGetRequest{Key: "greeting"})
	require.NoError(t, err)
	assert.False(t, getResp.Present)
	assert.Nil(t, getResp.Value)
}

func TestServer_KVSet_InvalidKey(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.KVSet(context.Background(), &pluginv1.KVSetRequest{Key: "", Value: []byte("v")})
	require.NoError(t, err, "store failures ride the error envelope, not the gRPC status")
	require.NotNil(t, resp.Error)
	assert.Equal(t, "plugin_api.kv.invalid_key", resp.Error.Id)
	assert.Equal(t, int32(http.StatusBadRequest), resp.Error.StatusCode)
}

func TestServer_KVScopedToPlugin(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemoryStore()
	defer store.Close()
	world := backend.New(log, "9.4.0")

	echo := NewServer("echo", store, world, log)
	other := NewServer("jira", store, world, log)
	ctx := context.Background()

	_, err := echo.KVSet(ctx, &pluginv1.KVSetRequest{Key: "k", Value: []byte("echo data")})
	require.NoError(t, err)

	resp, err := other.KVGet(ctx, &pluginv1.KVGetRequest{Key: "k"})
	require.NoError(t, err)
	assert.False(t, resp.Present, "plugins must not see each other's keys")
}

func TestServer_KVRecordsMetrics(t *testing.T) {
	s, _, _ := newTestServer(t)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	s.WithMetrics(metrics)
	ctx := context.Background()

	_, err := s.KVSet(ctx, &pluginv1.KVSetRequest{Key: "k", Value: []byte("v")})
	require.NoError(t, err)
	_, err = s.KVGet(ctx, &pluginv1.KVGetRequest{Key: "k"})
	require.NoError(t, err)
	// invalid key rides the error envelope but still counts as an error
	_, err = s.KVSet(ctx, &pluginv1.KVSetRequest{Key: "", Value: []byte("v")})
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.KVOperationsTotal.WithLabelValues("set", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.KVOperationsTotal.WithLabelValues("get", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.KVOperationsTotal.WithLabelValues("set", "error")))
}

func TestServer_KVCompareAndSet(t *testing.T) {
	s, _, _ := newTestServer(t)
	ctx := context.Background()

	// set-if-absent
	resp, err := s.KVCompareAndSet(ctx, &pluginv1.KVCompareAndSetRequest{Key: "lock", NewValue: []byte("a")})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.True(t, resp.Succeeded)

	// second racer loses
	resp, err = s.KVCompareAndSet(ctx, &pluginv1.KVCompareAndSetRequest{Key: "lock", NewValue: []byte("b")})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.False(t, resp.Succeeded)

	// conditional delete
	delResp, err := s.KVCompareAndDelete(ctx, &pluginv1.KVCompareAndDeleteRequest{Key: "lock", OldValue: []byte("a")})
	require.NoError(t, err)
	assert.True(t, delResp.Succeeded)
}

func TestServer_KVSetWithOptions(t *testing.T) {
	s, _, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := s.KVSetWithOptions(ctx, &pluginv1.KVSetWithOptionsRequest{
		Key:    "opt",
		Value:  []byte("v"),
		Atomic: true,
	})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.True(t, resp.Succeeded)

	resp, err = s.KVSetWithOptions(ctx, &pluginv1.KVSetWithOptionsRequest{
		Key:      "opt",
		Value:    []byte("w"),
		Atomic:   true,
		OldValue: []byte("wrong"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Succeeded)
}

func TestServer_KVList(t *testing.T) {
	s, _, _ := newTestServer(t)
	ctx := context.Background()

	for _, key := range []string{"b", "a", "c"} {
		_, err := s.KVSet(ctx, &pluginv1.KVSetRequest{Key: key, Value: []byte("v")})
		require.NoError(t, err)
	}

	resp, err := s.KVList(ctx, &pluginv1.KVListRequest{Page: 0, PerPage: 10})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.Equal(t, []string{"a", "b", "c"}, resp.Keys)
}

func TestServer_KVSetWithExpiry(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore(kv.WithClock(func() time.Time { return now }))
	defer store.Close()
	world := backend.New(log, "9.4.0")
	s := NewServer("echo", store, world, log)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	resp, err := s.KVSetWithExpiry(ctx, &pluginv1.KVSetWithExpiryRequest{
		Key: "session", Value: []byte("token"), ExpireInSeconds: 60,
	})
	require.NoError(t, err)
	require.Nil(t, resp.Error)

	getResp, err := s.KVGet(ctx, &pluginv1.KVGetRequest{Key: "session"})
	require.NoError(t, err)
	assert.True(t, getResp.Present)

	now = now.Add(61 * time.Second)

	getResp, err = s.KVGet(ctx, &pluginv1.KVGetRequest{Key: "session"})
	require.NoError(t, err)
	assert.False(t, getResp.Present)
}

func TestServer_GetServerVersion(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.GetServerVersion(context.Background(), &pluginv1.GetServerVersionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "9.4.0", resp.Version)
}

func TestServer_UserLookups(t *testing.T) {
	s, world, _ := newTestServer(t)
	alice := world.AddUser(&pluginv1.User{Username: "alice"})
	ctx := context.Background()

	resp, err := s.GetUser(ctx, &pluginv1.GetUserRequest{UserId: alice.Id})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.Equal(t, "alice", resp.User.Username)

	byName, err := s.GetUserByUsername(ctx, &pluginv1.GetUserByUsernameRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, alice.Id, byName.User.Id)

	missing, err := s.GetUser(ctx, &pluginv1.GetUserRequest{UserId: "ghost"})
	require.NoError(t, err)
	require.NotNil(t, missing.Error)
	assert.Equal(t, "plugin_api.not_found", missing.Error.Id)
	assert.Equal(t, int32(http.StatusNotFound), missing.Error.StatusCode)
}

func TestServer_PostLifecycle(t *testing.T) {
	s, world, _ := newTestServer(t)
	town := world.AddChannel(&pluginv1.Channel{Name: "town-square"})
	ctx := context.Background()

	created, err := s.CreatePost(ctx, &pluginv1.CreatePostRequest{
		Post: &pluginv1.Post{ChannelId: town.Id, Message: "hi"},
	})
	require.NoError(t, err)
	require.Nil(t, created.Error)
	require.NotEmpty(t, created.Post.Id)

	got, err := s.GetPost(ctx, &pluginv1.GetPostRequest{PostId: created.Post.Id})
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Post.Message)

	deleted, err := s.DeletePost(ctx, &pluginv1.DeletePostRequest{PostId: created.Post.Id})
	require.NoError(t, err)
	require.Nil(t, deleted.Error)

	gone, err := s.GetPost(ctx, &pluginv1.GetPostRequest{PostId: created.Post.Id})
	require.NoError(t, err)
	require.NotNil(t, gone.Error)
	assert.Equal(t, "plugin_api.not_found", gone.Error.Id)
}

func TestServer_CreatePost_BadChannel(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.CreatePost(context.Background(), &pluginv1.CreatePostRequest{
		Post: &pluginv1.Post{Message: "no channel"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "plugin_api.invalid_request", resp.Error.Id)
}

func TestServer_SendEphemeralPost(t *testing.T) {
	s, world, _ := newTestServer(t)
	alice := world.AddUser(&pluginv1.User{Username: "alice"})

	resp, err := s.SendEphemeralPost(context.Background(), &pluginv1.SendEphemeralPostRequest{
		UserId: alice.Id,
		Post:   &pluginv1.Post{Message: "psst"},
	})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	assert.Equal(t, "system_ephemeral", resp.Post.Type)

	bad, err := s.SendEphemeralPost(context.Background(), &pluginv1.SendEphemeralPostRequest{UserId: alice.Id})
	require.NoError(t, err)
	require.NotNil(t, bad.Error)
}

func TestServer_PublishWebSocketEvent(t *testing.T) {
	s, world, _ := newTestServer(t)
	events := world.Events().Subscribe()
	defer world.Events().Unsubscribe(events)

	_, err := s.PublishWebSocketEvent(context.Background(), &pluginv1.PublishWebSocketEventRequest{
		Event:       "refresh",
		PayloadJson: []byte(`{}`),
	})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, "custom_echo_refresh", ev.Event)
	case <-time.After(time.Second):
		t.Fatal("event not broadcast")
	}
}

func TestServer_UploadFlow(t *testing.T) {
	s, _, _ := newTestServer(t)
	ctx := context.Background()

	created, err := s.CreateUploadSession(ctx, &pluginv1.CreateUploadSessionRequest{
		Session: &pluginv1.UploadSession{Filename: "notes.txt", FileSize: 4},
	})
	require.NoError(t, err)
	require.Nil(t, created.Error)

	up, err := s.UploadData(ctx, &pluginv1.UploadDataRequest{SessionId: created.Session.Id, Data: []byte("abcd")})
	require.NoError(t, err)
	require.Nil(t, up.Error)
	require.NotNil(t, up.FileInfo)

	info, err := s.GetFileInfo(ctx, &pluginv1.GetFileInfoRequest{FileId: up.FileInfo.Id})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", info.FileInfo.Name)
}

func TestServer_SendMail(t *testing.T) {
	s, world, _ := newTestServer(t)

	resp, err := s.SendMail(context.Background(), &pluginv1.SendMailRequest{
		To: "alice@example.com", Subject: "hi", HtmlBody: "<p>hi</p>",
	})
	require.NoError(t, err)
	require.Nil(t, resp.Error)
	require.Len(t, world.Mails(), 1)

	bad, err := s.SendMail(context.Background(), &pluginv1.SendMailRequest{To: "nope"})
	require.NoError(t, err)
	require.NotNil(t, bad.Error)
	assert.Equal(t, "plugin_api.invalid_request", bad.Error.Id)
}
