// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

func (f *fakeAPIClient) GetServerVersion(context.Context, *pluginv1.GetServerVersionRequest, ...grpc.CallOption) (*pluginv1.GetServerVersionResponse, error) {
	if f.rpcErr != nil {
		return nil, f.rpcErr
	}
	return &pluginv1.GetServerVersionResponse{Version: "1.2.3"}, nil
}

func (f *fakeAPIClient) GetUser(_ context.Context, req *pluginv1.GetUserRequest, _ ...grpc.CallOption) (*pluginv1.GetUserResponse, error) {
	if req.GetUserId() != "u1" {
		return &pluginv1.GetUserResponse{Error: &pluginv1.AppError{
			Id:         "app.user.missing",
			Message:    "no such user",
			StatusCode: 404,
		}}, nil
	}
	return &pluginv1.GetUserResponse{User: &pluginv1.User{Id: "u1", Username: "alice"}}, nil
}

func TestAPIClient_ConnectionLifecycle(t *testing.T) {
	c := NewAPIClient(quietLogger())
	assert.False(t, c.Connected())

	// grpc channels are lazy, so Connect succeeds without a live server.
	require.NoError(t, c.Connect("127.0.0.1:1", TransportOptions{}))
	assert.True(t, c.Connected())

	require.NoError(t, c.Close())
	assert.False(t, c.Connected())

	// Closing a disconnected client is a no-op.
	require.NoError(t, c.Close())
}

func TestAPIClient_GetServerVersion(t *testing.T) {
	c := newConnectedClient(newFakeAPIClient())

	version, err := c.GetServerVersion(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestAPIClient_GetUser(t *testing.T) {
	c := newConnectedClient(newFakeAPIClient())

	user, err := c.GetUser(t.Context(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.GetUsername())

	_, err = c.GetUser(t.Context(), "nobody")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, "app.user.missing", apiErr.ID)
}

func TestChatGridPlugin_SetAPI(t *testing.T) {
	var p ChatGridPlugin
	api := NewAPIClient(quietLogger())

	var setter apiSetter = &p
	setter.SetAPI(api)
	assert.Same(t, api, p.API)
}
