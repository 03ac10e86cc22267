// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

type discoveredPlugin struct {
	ChatGridPlugin
}

func (p *discoveredPlugin) OnActivate() error { return nil }

func (p *discoveredPlugin) MessageWillBePosted(_ *Context, post *pluginv1.Post) (*pluginv1.Post, string) {
	return post, ""
}

func (p *discoveredPlugin) ServeHTTP(_ *Context, w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Helper is exported but not a canonical hook; discovery must skip it.
func (p *discoveredPlugin) Helper() {}

type badSignaturePlugin struct{}

func (p *badSignaturePlugin) OnActivate(extra string) error { return nil }

func TestNewRegistry_DiscoversHookMethods(t *testing.T) {
	reg, err := NewRegistry(&discoveredPlugin{})
	require.NoError(t, err)

	assert.Equal(t, []string{HookMessageWillBePosted, HookOnActivate, HookServeHTTP}, reg.ImplementedHooks())
	assert.True(t, reg.HasHook(HookOnActivate))
	assert.False(t, reg.HasHook(HookOnDeactivate))
}

func TestNewRegistry_NilPlugin(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	assert.Empty(t, reg.ImplementedHooks())
}

func TestNewRegistry_WrongSignatureFails(t *testing.T) {
	_, err := NewRegistry(&badSignaturePlugin{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHookSignature)
	assert.Contains(t, err.Error(), HookOnActivate)
}

func TestRegistry_Register(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	require.NoError(t, reg.Register(HookOnActivate, func() error { return nil }))
	assert.True(t, reg.HasHook(HookOnActivate))
}

func TestRegistry_Register_UnknownHook(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	err = reg.Register("OnWhatever", func() error { return nil })
	assert.ErrorIs(t, err, ErrHookUnknown)
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	reg, err := NewRegistry(&discoveredPlugin{})
	require.NoError(t, err)

	err = reg.Register(HookOnActivate, func() error { return nil })
	assert.ErrorIs(t, err, ErrHookDuplicate)
}

func TestRegistry_Register_NilHandler(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	err = reg.Register(HookOnActivate, nil)
	assert.ErrorIs(t, err, ErrHookSignature)
}

func TestRegistry_Register_SignatureMismatch(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	err = reg.Register(HookMessageWillBePosted, func() error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHookSignature)
}

func TestKnownHook(t *testing.T) {
	assert.True(t, KnownHook(HookExecuteCommand))
	assert.True(t, KnownHook(HookServeMetrics))
	assert.False(t, KnownHook("ExecuteCommands"))
	assert.False(t, KnownHook(""))
}

func TestHookNames_SortedAndClosed(t *testing.T) {
	names := HookNames()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	for _, name := range names {
		assert.True(t, KnownHook(name), name)
		_, ok := hookSignatures[name]
		assert.True(t, ok, "hook %s has no signature entry", name)
	}
	assert.Len(t, names, len(hookSignatures))
}
