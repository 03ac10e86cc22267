// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package backend

import (
	"log/slog"
	"sync"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// WebSocketEvent is a server-pushed event bound for connected clients. The
// Broadcast field narrows delivery; nil means every connection.
type WebSocketEvent struct {
	Event     string
	Payload   []byte
	Broadcast *pluginv1.WebsocketBroadcast
	PluginID  string
}

// Broadcaster fans websocket events out to subscribers. Subscribers are
// typically client connection pumps; tests subscribe directly.
type Broadcaster struct {
	mu   sync.RWMutex
	log  *slog.Logger
	subs []chan WebSocketEvent
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster(log *slog.Logger) *Broadcaster {
	return &Broadcaster{log: log}
}

// Subscribe creates a channel receiving every broadcast event.
func (b *Broadcaster) Subscribe() chan WebSocketEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan WebSocketEvent, 100)
	b.subs = append(b.subs, ch)
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (b *Broadcaster) Unsubscribe(ch chan WebSocketEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub == ch {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			close(ch)
			return
		}
	}
}

// Broadcast delivers event to all subscribers. A subscriber with a full
// buffer misses the event rather than blocking the publisher.
func (b *Broadcaster) Broadcast(event WebSocketEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.log.Warn("websocket event dropped: subscriber buffer full",
				"event", event.Event,
				"plugin_id", event.PluginID,
			)
		}
	}
}
