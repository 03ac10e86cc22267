// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"context"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// Context carries per-invocation request metadata into hook handlers. It is
// the first argument of every context-bearing hook. The embedded
// context.Context is the invocation's deadline-bound context; long-running
// handlers should watch it for cancellation.
type Context struct {
	SessionID      string
	RequestID      string
	IPAddress      string
	AcceptLanguage string
	UserAgent      string

	ctx context.Context
}

// Context returns the invocation context. It is never nil.
func (c *Context) Context() context.Context {
	if c == nil || c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// contextFromProto builds a handler Context from the wire message, binding
// the RPC's deadline context.
func contextFromProto(ctx context.Context, pc *pluginv1.PluginContext) *Context {
	return &Context{
		SessionID:      pc.GetSessionId(),
		RequestID:      pc.GetRequestId(),
		IPAddress:      pc.GetIpAddress(),
		AcceptLanguage: pc.GetAcceptLanguage(),
		UserAgent:      pc.GetUserAgent(),
		ctx:            ctx,
	}
}

// contextToProto converts back to the wire shape. Paired with
// contextFromProto it round-trips every field.
func contextToProto(c *Context) *pluginv1.PluginContext {
	if c == nil {
		return nil
	}
	return &pluginv1.PluginContext{
		SessionId:      c.SessionID,
		RequestId:      c.RequestID,
		IpAddress:      c.IPAddress,
		AcceptLanguage: c.AcceptLanguage,
		UserAgent:      c.UserAgent,
	}
}
