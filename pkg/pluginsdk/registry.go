// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// Sentinel errors for registration failures. All of them are start-up
// failures: a plugin with a bad hook set never reaches the handshake.
var (
	// ErrHookUnknown is returned when a name is not in the closed hook set.
	ErrHookUnknown = errors.New("hook name is not a canonical hook")
	// ErrHookDuplicate is returned when a hook already has a handler.
	ErrHookDuplicate = errors.New("hook is already registered")
	// ErrHookSignature is returned when a handler's type does not match the
	// hook's expected signature.
	ErrHookSignature = errors.New("handler signature does not match hook")
)

// hookSignatures maps each canonical hook to its expected handler type.
// Typed nil funcs keep the table readable while giving reflect exact types.
var hookSignatures = map[string]reflect.Type{
	HookOnActivate:               reflect.TypeOf((func() error)(nil)),
	HookOnDeactivate:             reflect.TypeOf((func() error)(nil)),
	HookOnConfigurationChange:    reflect.TypeOf((func() error)(nil)),
	HookOnInstall:                reflect.TypeOf((func(*Context, *pluginv1.InstallEvent) error)(nil)),
	HookConfigurationWillBeSaved: reflect.TypeOf((func([]byte) ([]byte, error))(nil)),
	HookOnSendDailyTelemetry:     reflect.TypeOf((func())(nil)),
	HookRunDataRetention:         reflect.TypeOf((func(int64, int64) (int64, error))(nil)),
	HookOnCloudLimitsUpdated:     reflect.TypeOf((func(*pluginv1.ProductLimits))(nil)),

	HookMessageWillBePosted:         reflect.TypeOf((func(*Context, *pluginv1.Post) (*pluginv1.Post, string))(nil)),
	HookMessageWillBeUpdated:        reflect.TypeOf((func(*Context, *pluginv1.Post, *pluginv1.Post) (*pluginv1.Post, string))(nil)),
	HookMessageHasBeenPosted:        reflect.TypeOf((func(*Context, *pluginv1.Post))(nil)),
	HookMessageHasBeenUpdated:       reflect.TypeOf((func(*Context, *pluginv1.Post, *pluginv1.Post))(nil)),
	HookMessageHasBeenDeleted:       reflect.TypeOf((func(*Context, *pluginv1.Post))(nil)),
	HookMessagesWillBeConsumed:      reflect.TypeOf((func([]*pluginv1.Post) []*pluginv1.Post)(nil)),
	HookReactionHasBeenAdded:        reflect.TypeOf((func(*Context, *pluginv1.Reaction))(nil)),
	HookReactionHasBeenRemoved:      reflect.TypeOf((func(*Context, *pluginv1.Reaction))(nil)),
	HookNotificationWillBePushed:    reflect.TypeOf((func(*pluginv1.PushNotification, string) (*pluginv1.PushNotification, string))(nil)),
	HookEmailNotificationWillBeSent: reflect.TypeOf((func(*pluginv1.EmailNotification) (*pluginv1.EmailNotificationContent, string))(nil)),
	HookPreferencesHaveChanged:      reflect.TypeOf((func(*Context, []*pluginv1.Preference))(nil)),
	HookFileWillBeUploaded:          reflect.TypeOf((func(*Context, *pluginv1.FileInfo, []byte) (*pluginv1.FileInfo, []byte, string))(nil)),

	HookUserHasBeenCreated:     reflect.TypeOf((func(*Context, *pluginv1.User))(nil)),
	HookUserWillLogIn:          reflect.TypeOf((func(*Context, *pluginv1.User) string)(nil)),
	HookUserHasLoggedIn:        reflect.TypeOf((func(*Context, *pluginv1.User))(nil)),
	HookUserHasBeenDeactivated: reflect.TypeOf((func(*Context, *pluginv1.User))(nil)),
	HookOnSAMLLogin:            reflect.TypeOf((func(*Context, *pluginv1.User, []byte) error)(nil)),
	HookChannelHasBeenCreated:  reflect.TypeOf((func(*Context, *pluginv1.Channel))(nil)),
	HookUserHasJoinedChannel:   reflect.TypeOf((func(*Context, *pluginv1.ChannelMember, *pluginv1.User))(nil)),
	HookUserHasLeftChannel:     reflect.TypeOf((func(*Context, *pluginv1.ChannelMember, *pluginv1.User))(nil)),
	HookUserHasJoinedTeam:      reflect.TypeOf((func(*Context, *pluginv1.TeamMember, *pluginv1.User))(nil)),
	HookUserHasLeftTeam:        reflect.TypeOf((func(*Context, *pluginv1.TeamMember, *pluginv1.User))(nil)),

	HookExecuteCommand: reflect.TypeOf((func(*Context, *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error))(nil)),

	HookOnWebSocketConnect:            reflect.TypeOf((func(string, string))(nil)),
	HookOnWebSocketDisconnect:         reflect.TypeOf((func(string, string))(nil)),
	HookWebSocketMessageHasBeenPosted: reflect.TypeOf((func(string, string, *pluginv1.WebSocketRequest))(nil)),

	HookOnPluginClusterEvent: reflect.TypeOf((func(*Context, *pluginv1.ClusterEvent))(nil)),

	HookOnSharedChannelsSyncMsg:             reflect.TypeOf((func([]byte, *pluginv1.RemoteCluster) ([]byte, error))(nil)),
	HookOnSharedChannelsPing:                reflect.TypeOf((func(*pluginv1.RemoteCluster) bool)(nil)),
	HookOnSharedChannelsAttachmentSyncMsg:   reflect.TypeOf((func(*pluginv1.FileInfo, *pluginv1.Post, *pluginv1.RemoteCluster) error)(nil)),
	HookOnSharedChannelsProfileImageSyncMsg: reflect.TypeOf((func(*pluginv1.User, *pluginv1.RemoteCluster) error)(nil)),

	HookGenerateSupportData: reflect.TypeOf((func(*Context) ([]*pluginv1.FileData, error))(nil)),

	HookServeHTTP:    reflect.TypeOf((func(*Context, http.ResponseWriter, *http.Request))(nil)),
	HookServeMetrics: reflect.TypeOf((func(*Context, http.ResponseWriter, *http.Request))(nil)),
}

// Registry holds the hook handlers a plugin implements. It is built once at
// start-up and read-only afterwards, so concurrent dispatch needs no locking.
type Registry struct {
	handlers map[string]any
}

// NewRegistry discovers hook handlers on impl by walking its exported
// methods: any method whose identifier is a canonical hook name becomes that
// hook's handler. Promoted methods from embedded types are included, which is
// how shared behavior inherits into ImplementedHooks. A canonical name with
// the wrong signature is a start-up failure rather than a silent skip.
func NewRegistry(impl any) (*Registry, error) {
	r := &Registry{handlers: make(map[string]any)}
	if impl == nil {
		return r, nil
	}

	v := reflect.ValueOf(impl)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		if !KnownHook(name) {
			continue
		}
		m := v.Method(i)
		if m.Type() != hookSignatures[name] {
			return nil, fmt.Errorf("%w: %s has %s, want %s",
				ErrHookSignature, name, m.Type(), hookSignatures[name])
		}
		r.handlers[name] = m.Interface()
	}
	return r, nil
}

// Register adds an explicit handler for a canonical hook. It fails with
// ErrHookUnknown for names outside the closed set, ErrHookDuplicate when the
// hook already has a handler (discovered or registered), and
// ErrHookSignature on a type mismatch.
func (r *Registry) Register(name string, handler any) error {
	if !KnownHook(name) {
		return fmt.Errorf("%w: %q", ErrHookUnknown, name)
	}
	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %q", ErrHookDuplicate, name)
	}
	if handler == nil {
		return fmt.Errorf("%w: %s handler is nil", ErrHookSignature, name)
	}
	if reflect.TypeOf(handler) != hookSignatures[name] {
		return fmt.Errorf("%w: %s has %s, want %s",
			ErrHookSignature, name, reflect.TypeOf(handler), hookSignatures[name])
	}
	r.handlers[name] = handler
	return nil
}

// ImplementedHooks returns the sorted canonical names with a handler.
func (r *Registry) ImplementedHooks() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasHook reports whether the hook has a handler.
func (r *Registry) HasHook(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// handler returns the registered handler for dispatch. Callers assert it to
// the hook's concrete func type; the registry guaranteed the match at
// registration time.
func (r *Registry) handler(name string) (any, bool) {
	h, ok := r.handlers[name]
	return h, ok
}
