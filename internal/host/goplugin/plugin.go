// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package goplugin

import (
	"context"
	"errors"

	hashiplug "github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// PluginMap is the map of plugins we can dispense.
var PluginMap = map[string]hashiplug.Plugin{
	"plugin": &GRPCPlugin{},
}

// GRPCPlugin implements go-plugin's Plugin interface for the hooks service.
type GRPCPlugin struct {
	hashiplug.NetRPCUnsupportedPlugin
	// Impl is used by the plugin-side (not used by host).
	Impl pluginv1.PluginHooksServer
}

// GRPCServer registers the hooks server (called by plugin process).
func (p *GRPCPlugin) GRPCServer(_ *hashiplug.GRPCBroker, s *grpc.Server) error {
	if p.Impl == nil {
		return errors.New("goplugin: plugin implementation is nil")
	}
	pluginv1.RegisterPluginHooksServer(s, p.Impl)
	return nil
}

// GRPCClient returns a hooks client (called by host process).
func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *hashiplug.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return pluginv1.NewPluginHooksClient(c), nil
}
