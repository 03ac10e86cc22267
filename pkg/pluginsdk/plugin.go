// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package pluginsdk is the runtime a ChatGrid plugin process links against.
// A plugin is an ordinary Go value: exported methods whose names match the
// canonical hook catalog become that plugin's hook handlers, and Serve wires
// the value to the host over gRPC. Embed ChatGridPlugin to get a connected
// host API client for free:
//
//	type HelloPlugin struct {
//		pluginsdk.ChatGridPlugin
//	}
//
//	func (p *HelloPlugin) MessageHasBeenPosted(c *pluginsdk.Context, post *pluginv1.Post) {
//		_ = p.API.KVSet(c.Context(), "last_post", []byte(post.Id))
//	}
//
//	func main() {
//		pluginsdk.Main(&HelloPlugin{})
//	}
package pluginsdk

// ChatGridPlugin is the conventional base for plugin implementations. Serve
// injects the connected API client before announcing readiness, so handlers
// can use p.API from OnActivate onward.
type ChatGridPlugin struct {
	API *APIClient
}

// SetAPI installs the host API client. Serve calls this during start-up;
// tests may call it directly with a client of their own.
func (p *ChatGridPlugin) SetAPI(api *APIClient) {
	p.API = api
}

// apiSetter is satisfied by anything embedding ChatGridPlugin, and by
// plugins that manage the client themselves.
type apiSetter interface {
	SetAPI(*APIClient)
}
