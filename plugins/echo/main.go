// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Command echo is a small demonstration plugin. It rewrites posted messages,
// answers an /echo slash command, counts invocations in the host key-value
// store, and serves a tiny HTTP status page through the host's plugin router.
package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/chatgrid/chatgrid-plugin/pkg/pluginsdk"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

const counterKey = "echo_count"

// EchoPlugin echoes what it sees. Embedding ChatGridPlugin gives it a
// connected host API client before OnActivate runs.
type EchoPlugin struct {
	pluginsdk.ChatGridPlugin
}

func (p *EchoPlugin) OnActivate() error {
	if !p.API.Connected() {
		return fmt.Errorf("host API not connected")
	}
	return nil
}

// MessageWillBePosted tags every message and drops messages that ask to be
// dropped. Returning the dismiss sentinel makes the host silently discard
// the post.
func (p *EchoPlugin) MessageWillBePosted(c *pluginsdk.Context, post *pluginv1.Post) (*pluginv1.Post, string) {
	if strings.Contains(post.GetMessage(), "#silent") {
		return nil, pluginsdk.DismissPostError
	}
	if err := p.bump(c); err != nil {
		// Counting is best effort; never block the message on it.
		return post, ""
	}
	post.Message = post.GetMessage() + " (echoed)"
	return post, ""
}

// ExecuteCommand handles /echo by repeating its arguments back in-channel.
func (p *EchoPlugin) ExecuteCommand(c *pluginsdk.Context, args *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) {
	text := strings.TrimSpace(strings.TrimPrefix(args.GetCommand(), "/echo"))
	if text == "" {
		text = "echo: nothing to say"
	}
	if err := p.bump(c); err != nil {
		return nil, err
	}
	return &pluginv1.CommandResponse{
		ResponseType: "in_channel",
		Text:         text,
	}, nil
}

// ServeHTTP reports how many times the plugin has fired.
func (p *EchoPlugin) ServeHTTP(c *pluginsdk.Context, w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/status" {
		http.NotFound(w, r)
		return
	}
	count, err := p.count(c)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"plugin": "echo",
		"count":  count,
	})
}

// bump increments the invocation counter with a compare-and-set loop so
// concurrent hook invocations never lose an update.
func (p *EchoPlugin) bump(c *pluginsdk.Context) error {
	ctx := c.Context()
	for {
		old, err := p.API.KVGet(ctx, counterKey)
		if err != nil {
			return err
		}
		next := encodeCount(decodeCount(old) + 1)
		ok, err := p.API.KVCompareAndSet(ctx, counterKey, old, next)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
}

func (p *EchoPlugin) count(c *pluginsdk.Context) (uint64, error) {
	raw, err := p.API.KVGet(c.Context(), counterKey)
	if err != nil {
		return 0, err
	}
	return decodeCount(raw), nil
}

func decodeCount(raw []byte) uint64 {
	if len(raw) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}

func encodeCount(n uint64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, n)
	return out
}

func main() {
	pluginsdk.Main(&EchoPlugin{})
}
