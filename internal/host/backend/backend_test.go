// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package backend

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, "9.4.0")
}

func TestBackend_UserLookups(t *testing.T) {
	b := newTestBackend(t)
	alice := b.AddUser(&pluginv1.User{Username: "alice", Email: "alice@example.com"})
	require.NotEmpty(t, alice.Id)

	got, err := b.User(alice.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	got, err = b.UserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.Id, got.Id)

	_, err = b.User("missing")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = b.UserByUsername("bob")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBackend_CreatePost(t *testing.T) {
	b := newTestBackend(t)
	alice := b.AddUser(&pluginv1.User{Username: "alice"})
	town := b.AddChannel(&pluginv1.Channel{Name: "town-square", Type: "O"})

	events := b.Events().Subscribe()
	defer b.Events().Unsubscribe(events)

	post, err := b.CreatePost(&pluginv1.Post{ChannelId: town.Id, UserId: alice.Id, Message: "hello"})
	require.NoError(t, err)
	require.NotEmpty(t, post.Id)
	assert.NotZero(t, post.CreateAt)
	assert.Equal(t, post.CreateAt, post.UpdateAt)

	got, err := b.Post(post.Id)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Message)

	select {
	case ev := <-events:
		assert.Equal(t, "posted", ev.Event)
		require.NotNil(t, ev.Broadcast)
		assert.Equal(t, town.Id, ev.Broadcast.ChannelId)
		var decoded pluginv1.Post
		require.NoError(t, json.Unmarshal(ev.Payload, &decoded))
		assert.Equal(t, post.Id, decoded.Id)
	case <-time.After(time.Second):
		t.Fatal("no posted event broadcast")
	}
}

func TestBackend_CreatePost_Validation(t *testing.T) {
	b := newTestBackend(t)
	town := b.AddChannel(&pluginv1.Channel{Name: "town-square"})

	_, err := b.CreatePost(&pluginv1.Post{Message: "no channel"})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = b.CreatePost(&pluginv1.Post{ChannelId: "missing", Message: "x"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = b.CreatePost(&pluginv1.Post{ChannelId: town.Id, UserId: "ghost", Message: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBackend_DeletePost(t *testing.T) {
	b := newTestBackend(t)
	town := b.AddChannel(&pluginv1.Channel{Name: "town-square"})
	post, err := b.CreatePost(&pluginv1.Post{ChannelId: town.Id, Message: "bye"})
	require.NoError(t, err)

	require.NoError(t, b.DeletePost(post.Id))

	_, err = b.Post(post.Id)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting twice reports not found.
	require.ErrorIs(t, b.DeletePost(post.Id), ErrNotFound)
}

func TestBackend_SendEphemeralPost(t *testing.T) {
	b := newTestBackend(t)
	alice := b.AddUser(&pluginv1.User{Username: "alice"})

	events := b.Events().Subscribe()
	defer b.Events().Unsubscribe(events)

	sent := b.SendEphemeralPost(alice.Id, &pluginv1.Post{Message: "only for you"})
	require.NotEmpty(t, sent.Id)
	assert.Equal(t, "system_ephemeral", sent.Type)

	// Ephemeral posts are not persisted.
	_, err := b.Post(sent.Id)
	require.ErrorIs(t, err, ErrNotFound)

	select {
	case ev := <-events:
		assert.Equal(t, "ephemeral_message", ev.Event)
		require.NotNil(t, ev.Broadcast)
		assert.Equal(t, alice.Id, ev.Broadcast.UserId)
	case <-time.After(time.Second):
		t.Fatal("no ephemeral event broadcast")
	}
}

func TestBackend_PublishWebSocketEvent_Namespacing(t *testing.T) {
	b := newTestBackend(t)
	events := b.Events().Subscribe()
	defer b.Events().Unsubscribe(events)

	b.PublishWebSocketEvent("echo", "status_change", []byte(`{"status":"busy"}`), nil)

	select {
	case ev := <-events:
		assert.Equal(t, "custom_echo_status_change", ev.Event)
		assert.Equal(t, "echo", ev.PluginID)
	case <-time.After(time.Second):
		t.Fatal("no event broadcast")
	}
}

func TestBackend_PublishClusterEvent(t *testing.T) {
	b := newTestBackend(t)

	err := b.PublishClusterEvent("echo", &pluginv1.ClusterEvent{Id: "sync", Data: []byte("x")}, "reliable")
	require.NoError(t, err)

	msgs := b.ClusterMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "echo", msgs[0].PluginID)
	assert.Equal(t, "reliable", msgs[0].SendType)

	require.ErrorIs(t, b.PublishClusterEvent("echo", nil, "reliable"), ErrInvalid)
	require.ErrorIs(t, b.PublishClusterEvent("echo", &pluginv1.ClusterEvent{Id: "x"}, "bogus"), ErrInvalid)
}

func TestBackend_OpenInteractiveDialog(t *testing.T) {
	b := newTestBackend(t)
	events := b.Events().Subscribe()
	defer b.Events().Unsubscribe(events)

	err := b.OpenInteractiveDialog([]byte(`{"trigger_id":"t1","url":"https://example.com/cb","dialog":{}}`))
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, "open_dialog", ev.Event)
	case <-time.After(time.Second):
		t.Fatal("no dialog event broadcast")
	}

	require.ErrorIs(t, b.OpenInteractiveDialog([]byte(`not json`)), ErrInvalid)
	require.ErrorIs(t, b.OpenInteractiveDialog([]byte(`{"url":"https://example.com"}`)), ErrInvalid)
}

func TestBackend_SendMail(t *testing.T) {
	b := newTestBackend(t)

	require.NoError(t, b.SendMail("alice@example.com", "Welcome", "<p>hi</p>"))
	require.ErrorIs(t, b.SendMail("not-an-address", "x", "y"), ErrInvalid)

	mails := b.Mails()
	require.Len(t, mails, 1)
	assert.Equal(t, "alice@example.com", mails[0].To)
	assert.Equal(t, "Welcome", mails[0].Subject)
}

func TestBackend_SendPushNotification(t *testing.T) {
	b := newTestBackend(t)
	alice := b.AddUser(&pluginv1.User{Username: "alice"})

	err := b.SendPushNotification(&pluginv1.PushNotification{Message: "ping"}, alice.Id)
	require.NoError(t, err)
	require.Len(t, b.PushNotifications(), 1)

	require.ErrorIs(t, b.SendPushNotification(&pluginv1.PushNotification{}, "ghost"), ErrNotFound)
	require.ErrorIs(t, b.SendPushNotification(nil, alice.Id), ErrInvalid)
}

func TestBackend_UploadLifecycle(t *testing.T) {
	b := newTestBackend(t)
	alice := b.AddUser(&pluginv1.User{Username: "alice"})

	session, err := b.CreateUploadSession(&pluginv1.UploadSession{
		UserId:   alice.Id,
		Filename: "report.pdf",
		FileSize: 10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Id)

	// Partial chunk: not finalized yet.
	info, err := b.UploadData(session.Id, []byte("12345"))
	require.NoError(t, err)
	assert.Nil(t, info)

	got, err := b.UploadSession(session.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.FileOffset)

	// Final chunk produces the file.
	info, err = b.UploadData(session.Id, []byte("67890"))
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "report.pdf", info.Name)
	assert.Equal(t, "pdf", info.Extension)
	assert.Equal(t, int64(10), info.Size)

	stored, err := b.FileInfo(info.Id)
	require.NoError(t, err)
	assert.Equal(t, info.Id, stored.Id)

	// Session is gone once finalized.
	_, err = b.UploadSession(session.Id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBackend_UploadData_Oversize(t *testing.T) {
	b := newTestBackend(t)
	session, err := b.CreateUploadSession(&pluginv1.UploadSession{Filename: "a.txt", FileSize: 3})
	require.NoError(t, err)

	_, err = b.UploadData(session.Id, []byte("too long"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestBackend_CreateUploadSession_Validation(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.CreateUploadSession(&pluginv1.UploadSession{FileSize: 10})
	require.ErrorIs(t, err, ErrInvalid)

	_, err = b.CreateUploadSession(&pluginv1.UploadSession{Filename: "a.txt"})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestBackend_EmojiLookups(t *testing.T) {
	b := newTestBackend(t)
	taco := b.AddEmoji(&pluginv1.Emoji{Name: "taco"})

	got, err := b.Emoji(taco.Id)
	require.NoError(t, err)
	assert.Equal(t, "taco", got.Name)

	got, err = b.EmojiByName("taco")
	require.NoError(t, err)
	assert.Equal(t, taco.Id, got.Id)

	_, err = b.EmojiByName("burrito")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBroadcaster_FullSubscriberDropsEvent(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	br := NewBroadcaster(log)
	ch := br.Subscribe()
	defer br.Unsubscribe(ch)

	// Fill the buffer and one more; the publisher must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 101; i++ {
			br.Broadcast(WebSocketEvent{Event: "tick"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on full subscriber")
	}
}
