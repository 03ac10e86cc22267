// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package backend holds the host's in-memory world state: users, channels,
// teams, posts, files, and the delivery fans for websocket, mail, push, and
// cluster traffic. The plugin API service is a thin gRPC shim over this
// package.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

var (
	// ErrNotFound reports a lookup for an object the backend does not have.
	ErrNotFound = errors.New("backend: not found")
	// ErrInvalid reports a request the backend refuses to act on.
	ErrInvalid = errors.New("backend: invalid")
)

// Mail is an outbound email captured by the backend's mail sink.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
	SentAt   time.Time
}

// ClusterMessage is a plugin cluster event queued for peer delivery.
type ClusterMessage struct {
	PluginID string
	Event    *pluginv1.ClusterEvent
	SendType string
}

// Backend is the in-memory server state. All methods are safe for concurrent
// use.
type Backend struct {
	log         *slog.Logger
	version     string
	broadcaster *Broadcaster
	now         func() time.Time

	mu       sync.RWMutex
	users    map[string]*pluginv1.User
	byName   map[string]string // username -> user ID
	channels map[string]*pluginv1.Channel
	teams    map[string]*pluginv1.Team
	posts    map[string]*pluginv1.Post
	files    map[string]*pluginv1.FileInfo
	emojis   map[string]*pluginv1.Emoji
	uploads  map[string]*uploadState
	mails    []Mail
	pushes   []*pluginv1.PushNotification
	cluster  []ClusterMessage
	dialogs  [][]byte
}

type uploadState struct {
	session *pluginv1.UploadSession
	buf     []byte
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock overrides the backend's time source.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// New creates an empty backend reporting the given server version.
func New(log *slog.Logger, version string, opts ...Option) *Backend {
	b := &Backend{
		log:         log,
		version:     version,
		broadcaster: NewBroadcaster(log),
		now:         time.Now,
		users:       make(map[string]*pluginv1.User),
		byName:      make(map[string]string),
		channels:    make(map[string]*pluginv1.Channel),
		teams:       make(map[string]*pluginv1.Team),
		posts:       make(map[string]*pluginv1.Post),
		files:       make(map[string]*pluginv1.FileInfo),
		emojis:      make(map[string]*pluginv1.Emoji),
		uploads:     make(map[string]*uploadState),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Version returns the server version advertised to plugins.
func (b *Backend) Version() string { return b.version }

// Events returns the websocket broadcaster.
func (b *Backend) Events() *Broadcaster { return b.broadcaster }

func (b *Backend) millis() int64 {
	return b.now().UnixMilli()
}

// AddUser seeds a user, assigning an ID when absent.
func (b *Backend) AddUser(user *pluginv1.User) *pluginv1.User {
	b.mu.Lock()
	defer b.mu.Unlock()

	if user.Id == "" {
		user.Id = NewID()
	}
	if user.CreateAt == 0 {
		user.CreateAt = b.millis()
	}
	b.users[user.Id] = user
	if user.Username != "" {
		b.byName[user.Username] = user.Id
	}
	return user
}

// AddChannel seeds a channel, assigning an ID when absent.
func (b *Backend) AddChannel(channel *pluginv1.Channel) *pluginv1.Channel {
	b.mu.Lock()
	defer b.mu.Unlock()

	if channel.Id == "" {
		channel.Id = NewID()
	}
	if channel.CreateAt == 0 {
		channel.CreateAt = b.millis()
	}
	b.channels[channel.Id] = channel
	return channel
}

// AddTeam seeds a team, assigning an ID when absent.
func (b *Backend) AddTeam(team *pluginv1.Team) *pluginv1.Team {
	b.mu.Lock()
	defer b.mu.Unlock()

	if team.Id == "" {
		team.Id = NewID()
	}
	if team.CreateAt == 0 {
		team.CreateAt = b.millis()
	}
	b.teams[team.Id] = team
	return team
}

// AddEmoji seeds a custom emoji, assigning an ID when absent.
func (b *Backend) AddEmoji(emoji *pluginv1.Emoji) *pluginv1.Emoji {
	b.mu.Lock()
	defer b.mu.Unlock()

	if emoji.Id == "" {
		emoji.Id = NewID()
	}
	if emoji.CreateAt == 0 {
		emoji.CreateAt = b.millis()
	}
	b.emojis[emoji.Id] = emoji
	return emoji
}

// AddFileInfo seeds file metadata, assigning an ID when absent.
func (b *Backend) AddFileInfo(info *pluginv1.FileInfo) *pluginv1.FileInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	if info.Id == "" {
		info.Id = NewID()
	}
	if info.CreateAt == 0 {
		info.CreateAt = b.millis()
	}
	b.files[info.Id] = info
	return info
}

// User returns the user with the given ID.
func (b *Backend) User(id string) (*pluginv1.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	user, ok := b.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return user, nil
}

// UserByUsername returns the user with the given username.
func (b *Backend) UserByUsername(username string) (*pluginv1.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	id, ok := b.byName[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return b.users[id], nil
}

// Channel returns the channel with the given ID.
func (b *Backend) Channel(id string) (*pluginv1.Channel, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	channel, ok := b.channels[id]
	if !ok {
		return nil, fmt.Errorf("channel %s: %w", id, ErrNotFound)
	}
	return channel, nil
}

// Team returns the team with the given ID.
func (b *Backend) Team(id string) (*pluginv1.Team, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	team, ok := b.teams[id]
	if !ok {
		return nil, fmt.Errorf("team %s: %w", id, ErrNotFound)
	}
	return team, nil
}

// CreatePost stores a new post and broadcasts it. The post's channel and
// author must exist.
func (b *Backend) CreatePost(post *pluginv1.Post) (*pluginv1.Post, error) {
	if post == nil || post.ChannelId == "" {
		return nil, fmt.Errorf("post requires a channel: %w", ErrInvalid)
	}

	b.mu.Lock()
	if _, ok := b.channels[post.ChannelId]; !ok {
		b.mu.Unlock()
		return nil, fmt.Errorf("channel %s: %w", post.ChannelId, ErrNotFound)
	}
	if post.UserId != "" {
		if _, ok := b.users[post.UserId]; !ok {
			b.mu.Unlock()
			return nil, fmt.Errorf("user %s: %w", post.UserId, ErrNotFound)
		}
	}

	stored := *post
	stored.Id = NewID()
	stored.CreateAt = b.millis()
	stored.UpdateAt = stored.CreateAt
	b.posts[stored.Id] = &stored
	b.mu.Unlock()

	payload, _ := json.Marshal(&stored)
	b.broadcaster.Broadcast(WebSocketEvent{
		Event:     "posted",
		Payload:   payload,
		Broadcast: &pluginv1.WebsocketBroadcast{ChannelId: stored.ChannelId},
	})
	return &stored, nil
}

// Post returns the post with the given ID. Deleted posts stay invisible.
func (b *Backend) Post(id string) (*pluginv1.Post, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	post, ok := b.posts[id]
	if !ok || post.DeleteAt != 0 {
		return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return post, nil
}

// DeletePost soft-deletes a post.
func (b *Backend) DeletePost(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	post, ok := b.posts[id]
	if !ok || post.DeleteAt != 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	post.DeleteAt = b.millis()
	return nil
}

// SendEphemeralPost delivers a post visible only to one user. Ephemeral
// posts are never persisted; they ride the websocket and vanish.
func (b *Backend) SendEphemeralPost(userID string, post *pluginv1.Post) *pluginv1.Post {
	sent := *post
	sent.Id = NewID()
	sent.CreateAt = b.millis()
	sent.UpdateAt = sent.CreateAt
	sent.Type = "system_ephemeral"

	payload, _ := json.Marshal(&sent)
	b.broadcaster.Broadcast(WebSocketEvent{
		Event:     "ephemeral_message",
		Payload:   payload,
		Broadcast: &pluginv1.WebsocketBroadcast{UserId: userID},
	})
	return &sent
}

// FileInfo returns metadata for the given file ID.
func (b *Backend) FileInfo(id string) (*pluginv1.FileInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	info, ok := b.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, ErrNotFound)
	}
	return info, nil
}

// Emoji returns the custom emoji with the given ID.
func (b *Backend) Emoji(id string) (*pluginv1.Emoji, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	emoji, ok := b.emojis[id]
	if !ok {
		return nil, fmt.Errorf("emoji %s: %w", id, ErrNotFound)
	}
	return emoji, nil
}

// EmojiByName returns the custom emoji with the given name.
func (b *Backend) EmojiByName(name string) (*pluginv1.Emoji, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, emoji := range b.emojis {
		if emoji.Name == name {
			return emoji, nil
		}
	}
	return nil, fmt.Errorf("emoji %q: %w", name, ErrNotFound)
}

// PublishWebSocketEvent fans a plugin event out to connected clients. Plugin
// event names are namespaced as custom_<pluginID>_<event>.
func (b *Backend) PublishWebSocketEvent(pluginID, event string, payload []byte, broadcast *pluginv1.WebsocketBroadcast) {
	b.broadcaster.Broadcast(WebSocketEvent{
		Event:     "custom_" + pluginID + "_" + event,
		Payload:   payload,
		Broadcast: broadcast,
		PluginID:  pluginID,
	})
}

// PublishClusterEvent queues a plugin event for delivery to cluster peers.
// On a single-node host the queue has no consumers but the contract holds:
// events are accepted and the sender never learns the cluster size.
func (b *Backend) PublishClusterEvent(pluginID string, event *pluginv1.ClusterEvent, sendType string) error {
	if event == nil || event.Id == "" {
		return fmt.Errorf("cluster event requires an id: %w", ErrInvalid)
	}
	switch sendType {
	case "", "reliable", "best_effort":
	default:
		return fmt.Errorf("unknown send type %q: %w", sendType, ErrInvalid)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.cluster = append(b.cluster, ClusterMessage{PluginID: pluginID, Event: event, SendType: sendType})
	return nil
}

// OpenInteractiveDialog validates and records a dialog request, then pushes
// it to the triggering client over the websocket.
func (b *Backend) OpenInteractiveDialog(dialogJSON []byte) error {
	var dialog struct {
		TriggerId string          `json:"trigger_id"`
		URL       string          `json:"url"`
		Dialog    json.RawMessage `json:"dialog"`
	}
	if err := json.Unmarshal(dialogJSON, &dialog); err != nil {
		return fmt.Errorf("malformed dialog: %w", ErrInvalid)
	}
	if dialog.TriggerId == "" {
		return fmt.Errorf("dialog requires a trigger_id: %w", ErrInvalid)
	}

	b.mu.Lock()
	b.dialogs = append(b.dialogs, dialogJSON)
	b.mu.Unlock()

	b.broadcaster.Broadcast(WebSocketEvent{Event: "open_dialog", Payload: dialogJSON})
	return nil
}

// SendMail queues an outbound email.
func (b *Backend) SendMail(to, subject, htmlBody string) error {
	if !strings.Contains(to, "@") {
		return fmt.Errorf("mail recipient %q: %w", to, ErrInvalid)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.mails = append(b.mails, Mail{To: to, Subject: subject, HTMLBody: htmlBody, SentAt: b.now()})
	return nil
}

// SendPushNotification queues a push notification for the user's devices.
func (b *Backend) SendPushNotification(notification *pluginv1.PushNotification, userID string) error {
	if notification == nil {
		return fmt.Errorf("nil notification: %w", ErrInvalid)
	}

	b.mu.Lock()
	if _, ok := b.users[userID]; !ok {
		b.mu.Unlock()
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	b.pushes = append(b.pushes, notification)
	b.mu.Unlock()
	return nil
}

// CreateUploadSession opens a resumable upload.
func (b *Backend) CreateUploadSession(session *pluginv1.UploadSession) (*pluginv1.UploadSession, error) {
	if session == nil || session.Filename == "" || session.FileSize <= 0 {
		return nil, fmt.Errorf("upload session requires a filename and size: %w", ErrInvalid)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	stored := *session
	stored.Id = NewID()
	stored.CreateAt = b.millis()
	stored.FileOffset = 0
	b.uploads[stored.Id] = &uploadState{session: &stored}
	return &stored, nil
}

// UploadSession returns the upload with the given ID.
func (b *Backend) UploadSession(id string) (*pluginv1.UploadSession, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	state, ok := b.uploads[id]
	if !ok {
		return nil, fmt.Errorf("upload %s: %w", id, ErrNotFound)
	}
	return state.session, nil
}

// UploadData appends a chunk to an upload. When the session reaches its
// declared size the file is finalized and its FileInfo returned; until then
// the return is nil.
func (b *Backend) UploadData(sessionID string, data []byte) (*pluginv1.FileInfo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, ok := b.uploads[sessionID]
	if !ok {
		return nil, fmt.Errorf("upload %s: %w", sessionID, ErrNotFound)
	}

	remaining := state.session.FileSize - state.session.FileOffset
	if int64(len(data)) > remaining {
		return nil, fmt.Errorf("upload %s: chunk exceeds declared size: %w", sessionID, ErrInvalid)
	}

	state.buf = append(state.buf, data...)
	state.session.FileOffset += int64(len(data))
	if state.session.FileOffset < state.session.FileSize {
		return nil, nil
	}

	ext := strings.TrimPrefix(filepath.Ext(state.session.Filename), ".")
	info := &pluginv1.FileInfo{
		Id:        NewID(),
		CreatorId: state.session.UserId,
		ChannelId: state.session.ChannelId,
		CreateAt:  b.millis(),
		Name:      state.session.Filename,
		Extension: ext,
		Size:      state.session.FileSize,
	}
	b.files[info.Id] = info
	delete(b.uploads, sessionID)
	return info, nil
}

// LogAuditRec writes a plugin audit record to the host's audit log.
func (b *Backend) LogAuditRec(pluginID string, record *pluginv1.AuditRecord, level string) {
	if record == nil {
		return
	}

	attrs := []any{
		"plugin_id", pluginID,
		"event_name", record.EventName,
		"status", record.Status,
	}
	if record.UserId != "" {
		attrs = append(attrs, "user_id", record.UserId)
	}
	if record.SessionId != "" {
		attrs = append(attrs, "session_id", record.SessionId)
	}
	if record.IpAddress != "" {
		attrs = append(attrs, "ip_address", record.IpAddress)
	}
	if len(record.MetaJson) > 0 {
		attrs = append(attrs, "meta", json.RawMessage(record.MetaJson))
	}

	switch level {
	case "error":
		b.log.Error("audit", attrs...)
	case "warn":
		b.log.Warn("audit", attrs...)
	case "debug":
		b.log.Debug("audit", attrs...)
	default:
		b.log.Info("audit", attrs...)
	}
}

// Mails returns the queued outbound mail. Used by the host's mail worker
// and by tests.
func (b *Backend) Mails() []Mail {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Mail(nil), b.mails...)
}

// PushNotifications returns queued push notifications.
func (b *Backend) PushNotifications() []*pluginv1.PushNotification {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*pluginv1.PushNotification(nil), b.pushes...)
}

// ClusterMessages returns queued cluster events.
func (b *Backend) ClusterMessages() []ClusterMessage {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]ClusterMessage(nil), b.cluster...)
}
