// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// fakeAPIClient scripts the KV surface of the host API. It embeds the nil
// generated interface so an unscripted call panics instead of silently
// succeeding.
type fakeAPIClient struct {
	pluginv1.PluginAPIClient

	store   map[string][]byte
	lastTTL int64
	rpcErr  error
	appErr  *pluginv1.AppError
}

func newFakeAPIClient() *fakeAPIClient {
	return &fakeAPIClient{store: make(map[string][]byte)}
}

func (f *fakeAPIClient) KVSet(_ context.Context, req *pluginv1.KVSetRequest, _ ...grpc.CallOption) (*pluginv1.KVSetResponse, error) {
	if f.rpcErr != nil {
		return nil, f.rpcErr
	}
	if f.appErr != nil {
		return &pluginv1.KVSetResponse{Error: f.appErr}, nil
	}
	if len(req.GetValue()) == 0 {
		delete(f.store, req.GetKey())
	} else {
		f.store[req.GetKey()] = req.GetValue()
	}
	return &pluginv1.KVSetResponse{}, nil
}

func (f *fakeAPIClient) KVGet(_ context.Context, req *pluginv1.KVGetRequest, _ ...grpc.CallOption) (*pluginv1.KVGetResponse, error) {
	if f.rpcErr != nil {
		return nil, f.rpcErr
	}
	value, ok := f.store[req.GetKey()]
	return &pluginv1.KVGetResponse{Value: value, Present: ok}, nil
}

func (f *fakeAPIClient) KVDelete(_ context.Context, req *pluginv1.KVDeleteRequest, _ ...grpc.CallOption) (*pluginv1.KVDeleteResponse, error) {
	delete(f.store, req.GetKey())
	return &pluginv1.KVDeleteResponse{}, nil
}

func (f *fakeAPIClient) KVDeleteAll(context.Context, *pluginv1.KVDeleteAllRequest, ...grpc.CallOption) (*pluginv1.KVDeleteAllResponse, error) {
	f.store = make(map[string][]byte)
	return &pluginv1.KVDeleteAllResponse{}, nil
}

func (f *fakeAPIClient) KVList(_ context.Context, req *pluginv1.KVListRequest, _ ...grpc.CallOption) (*pluginv1.KVListResponse, error) {
	keys := make([]string, 0, len(f.store))
	for k := range f.store {
		keys = append(keys, k)
	}
	return &pluginv1.KVListResponse{Keys: keys}, nil
}

func (f *fakeAPIClient) KVSetWithExpiry(_ context.Context, req *pluginv1.KVSetWithExpiryRequest, _ ...grpc.CallOption) (*pluginv1.KVSetWithExpiryResponse, error) {
	f.store[req.GetKey()] = req.GetValue()
	f.lastTTL = req.GetExpireInSeconds()
	return &pluginv1.KVSetWithExpiryResponse{}, nil
}

func (f *fakeAPIClient) KVCompareAndSet(_ context.Context, req *pluginv1.KVCompareAndSetRequest, _ ...grpc.CallOption) (*pluginv1.KVCompareAndSetResponse, error) {
	current := f.store[req.GetKey()]
	if string(current) != string(req.GetOldValue()) {
		return &pluginv1.KVCompareAndSetResponse{Succeeded: false}, nil
	}
	f.store[req.GetKey()] = req.GetNewValue()
	return &pluginv1.KVCompareAndSetResponse{Succeeded: true}, nil
}

func (f *fakeAPIClient) KVCompareAndDelete(_ context.Context, req *pluginv1.KVCompareAndDeleteRequest, _ ...grpc.CallOption) (*pluginv1.KVCompareAndDeleteResponse, error) {
	current, ok := f.store[req.GetKey()]
	if !ok || string(current) != string(req.GetOldValue()) {
		return &pluginv1.KVCompareAndDeleteResponse{Succeeded: false}, nil
	}
	delete(f.store, req.GetKey())
	return &pluginv1.KVCompareAndDeleteResponse{Succeeded: true}, nil
}

func (f *fakeAPIClient) KVSetWithOptions(_ context.Context, req *pluginv1.KVSetWithOptionsRequest, _ ...grpc.CallOption) (*pluginv1.KVSetWithOptionsResponse, error) {
	if req.GetAtomic() && string(f.store[req.GetKey()]) != string(req.GetOldValue()) {
		return &pluginv1.KVSetWithOptionsResponse{Succeeded: false}, nil
	}
	f.store[req.GetKey()] = req.GetValue()
	f.lastTTL = req.GetExpireInSeconds()
	return &pluginv1.KVSetWithOptionsResponse{Succeeded: true}, nil
}

func newConnectedClient(fake *fakeAPIClient) *APIClient {
	c := NewAPIClient(quietLogger())
	c.rpc = fake
	return c
}

func TestKVSetGet(t *testing.T) {
	fake := newFakeAPIClient()
	c := newConnectedClient(fake)
	ctx := t.Context()

	require.NoError(t, c.KVSet(ctx, "greeting", []byte("hello")))

	got, err := c.KVGet(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestKVGet_AbsentKey(t *testing.T) {
	c := newConnectedClient(newFakeAPIClient())

	got, err := c.KVGet(t.Context(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKVSet_EmptyValueDeletes(t *testing.T) {
	fake := newFakeAPIClient()
	c := newConnectedClient(fake)
	ctx := t.Context()

	require.NoError(t, c.KVSet(ctx, "k", []byte("v")))
	require.NoError(t, c.KVSet(ctx, "k", nil))

	got, err := c.KVGet(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKV_KeyValidation(t *testing.T) {
	c := newConnectedClient(newFakeAPIClient())
	ctx := t.Context()

	var apiErr *APIError

	err := c.KVSet(ctx, "", []byte("v"))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "plugin_api.kv.empty_key", apiErr.ID)

	longKey := strings.Repeat("k", MaxKVKeyLength+1)
	err = c.KVSet(ctx, longKey, []byte("v"))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "plugin_api.kv.key_too_long", apiErr.ID)

	_, err = c.KVGet(ctx, longKey)
	require.Error(t, err)
	_, err = c.KVCompareAndSet(ctx, "", nil, []byte("v"))
	require.Error(t, err)

	// A key at exactly the limit passes.
	require.NoError(t, c.KVSet(ctx, strings.Repeat("k", MaxKVKeyLength), []byte("v")))
}

func TestKV_NotConnected(t *testing.T) {
	c := NewAPIClient(quietLogger())

	err := c.KVSet(t.Context(), "k", []byte("v"))
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = c.KVGet(t.Context(), "k")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestKV_RPCErrorMapped(t *testing.T) {
	fake := newFakeAPIClient()
	fake.rpcErr = status.Error(codes.Unavailable, "host restarting")
	c := newConnectedClient(fake)

	err := c.KVSet(t.Context(), "k", []byte("v"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnavailable, apiErr.Kind)
}

func TestKV_AppErrorMapped(t *testing.T) {
	fake := newFakeAPIClient()
	fake.appErr = &pluginv1.AppError{Id: "app.kv.quota", Message: "quota exceeded", StatusCode: 429}
	c := newConnectedClient(fake)

	err := c.KVSet(t.Context(), "k", []byte("v"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnavailable, apiErr.Kind)
	assert.Equal(t, "app.kv.quota", apiErr.ID)
}

func TestKVCompareAndSet(t *testing.T) {
	fake := newFakeAPIClient()
	c := newConnectedClient(fake)
	ctx := t.Context()

	// Absent key: nil old value wins, stale old value loses.
	ok, err := c.KVCompareAndSet(ctx, "counter", []byte("stale"), []byte("1"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.KVCompareAndSet(ctx, "counter", nil, []byte("1"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.KVCompareAndSet(ctx, "counter", []byte("1"), []byte("2"))
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := c.KVGet(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestKVCompareAndDelete(t *testing.T) {
	fake := newFakeAPIClient()
	c := newConnectedClient(fake)
	ctx := t.Context()

	require.NoError(t, c.KVSet(ctx, "k", []byte("v")))

	ok, err := c.KVCompareAndDelete(ctx, "k", []byte("other"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.KVCompareAndDelete(ctx, "k", []byte("v"))
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := c.KVGet(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKVSetWithExpiry(t *testing.T) {
	fake := newFakeAPIClient()
	c := newConnectedClient(fake)

	require.NoError(t, c.KVSetWithExpiry(t.Context(), "session", []byte("tok"), 60))
	assert.Equal(t, int64(60), fake.lastTTL)
}

func TestKVSetWithOptions(t *testing.T) {
	fake := newFakeAPIClient()
	c := newConnectedClient(fake)
	ctx := t.Context()

	ok, err := c.KVSetWithOptions(ctx, "k", []byte("v1"), KVSetOptions{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.KVSetWithOptions(ctx, "k", []byte("v2"), KVSetOptions{Atomic: true, OldValue: []byte("wrong")})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.KVSetWithOptions(ctx, "k", []byte("v2"), KVSetOptions{
		Atomic:          true,
		OldValue:        []byte("v1"),
		ExpireInSeconds: 30,
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(30), fake.lastTTL)
}

func TestKVDeleteAllAndList(t *testing.T) {
	fake := newFakeAPIClient()
	c := newConnectedClient(fake)
	ctx := t.Context()

	require.NoError(t, c.KVSet(ctx, "a", []byte("1")))
	require.NoError(t, c.KVSet(ctx, "b", []byte("2")))

	keys, err := c.KVList(ctx, 0, 100)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)

	require.NoError(t, c.KVDeleteAll(ctx))

	keys, err = c.KVList(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
