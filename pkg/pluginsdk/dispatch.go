// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/alitto/pond"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

const (
	// maxHookWorkers bounds concurrent handler executions; further
	// invocations queue in the pool buffer.
	maxHookWorkers = 64
	hookQueueSize  = 1024
)

// hooksServer implements chatgrid.plugin.v1.PluginHooks against a Registry.
// Handlers run on a worker pool so an abandoned handler (one that outlives
// its deadline) never wedges a gRPC server goroutine.
type hooksServer struct {
	pluginv1.UnimplementedPluginHooksServer

	registry *Registry
	log      *slog.Logger
	timeout  time.Duration
	pool     *pond.WorkerPool

	// draining flips after OnDeactivate completes; every later invocation
	// is refused so the host sees a deterministic shutdown edge.
	draining atomic.Bool
}

func newHooksServer(reg *Registry, logger *slog.Logger, hookTimeout time.Duration) *hooksServer {
	if hookTimeout <= 0 {
		hookTimeout = DefaultHookTimeout
	}
	return &hooksServer{
		registry: reg,
		log:      logger,
		timeout:  hookTimeout,
		pool:     pond.New(maxHookWorkers, hookQueueSize),
	}
}

// drain waits up to grace for in-flight handlers, then releases the pool.
func (s *hooksServer) drain(grace time.Duration) {
	s.draining.Store(true)
	s.pool.StopAndWaitFor(grace)
}

// hookUnavailable reports why a hook cannot run: FailedPrecondition once the
// plugin is draining, Unimplemented otherwise. Draining wins so the host sees
// the same refusal for every hook after OnDeactivate, registered or not.
func (s *hooksServer) hookUnavailable(name string) error {
	if s.draining.Load() {
		return status.Errorf(codes.FailedPrecondition, "plugin is deactivating, refusing %s", name)
	}
	return status.Errorf(codes.Unimplemented, "hook %s is not implemented", name)
}

// errHookTimeout marks a handler that outlived its deadline. Call sites map
// it onto their category's failure shape instead of surfacing a transport
// error: envelope hooks answer with an AppError, gates reject the operation.
var errHookTimeout = errors.New("hook handler timed out")

// timeoutError is the envelope-category shape for an abandoned handler.
func (s *hooksServer) timeoutError(where string) *pluginv1.AppError {
	return &pluginv1.AppError{
		Id:         "plugin.hook.timeout",
		Message:    fmt.Sprintf("hook %s timed out after %s", where, s.timeout),
		StatusCode: http.StatusGatewayTimeout,
		Where:      where,
	}
}

// timeoutReason is the gate-category shape: a rejection the host relays.
func (s *hooksServer) timeoutReason(where string) string {
	return fmt.Sprintf("hook %s timed out after %s", where, s.timeout)
}

// run executes fn on the pool and waits for completion or the deadline,
// whichever comes first. fn writes its results into closure variables; on
// timeout the caller must not read them, since the abandoned handler may
// still be writing. A handler panic is contained to its pool worker and
// surfaces as codes.Internal.
func (s *hooksServer) run(ctx context.Context, name string, fn func()) error {
	if s.draining.Load() {
		return status.Errorf(codes.FailedPrecondition, "plugin is deactivating, refusing %s", name)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan any, 1)
	s.pool.Submit(func() {
		defer func() {
			done <- recover()
		}()
		fn()
	})

	select {
	case recovered := <-done:
		if recovered != nil {
			s.log.Error("hook handler panicked",
				slog.String("hook", name),
				slog.Any("panic", recovered))
			return status.Errorf(codes.Internal, "hook %s panicked: %v", name, recovered)
		}
		return nil
	case <-ctx.Done():
		s.log.Warn("hook handler abandoned",
			slog.String("hook", name),
			slog.Duration("timeout", s.timeout))
		return fmt.Errorf("%w: %s exceeded %s", errHookTimeout, name, s.timeout)
	}
}

// notify runs a fire-and-forget handler. Failures are logged and swallowed:
// the host gets an empty success either way, matching the category's
// log-only fault policy. Only the drain refusal propagates.
func (s *hooksServer) notify(ctx context.Context, name string, fn func()) error {
	err := s.run(ctx, name, fn)
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.FailedPrecondition {
		return err
	}
	s.log.Warn("notification hook failed", slog.String("hook", name), slog.Any("error", err))
	return nil
}

// appErrorFrom converts a handler error into the wire error envelope.
// APIError values keep their identity; anything else becomes a generic
// internal error that still carries the handler's message.
func appErrorFrom(where string, err error) *pluginv1.AppError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &pluginv1.AppError{
			Id:            apiErr.ID,
			Message:       apiErr.Message,
			DetailedError: apiErr.DetailedError,
			StatusCode:    int32(apiErr.StatusCode),
			Where:         where,
			Params:        apiErr.Params,
		}
	}
	return &pluginv1.AppError{
		Id:         "plugin.hook.app_error",
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
		Where:      where,
	}
}

func (s *hooksServer) Implemented(context.Context, *pluginv1.ImplementedRequest) (*pluginv1.ImplementedResponse, error) {
	return &pluginv1.ImplementedResponse{Hooks: s.registry.ImplementedHooks()}, nil
}

func (s *hooksServer) OnActivate(ctx context.Context, _ *pluginv1.OnActivateRequest) (*pluginv1.OnActivateResponse, error) {
	h, ok := s.registry.handler(HookOnActivate)
	if !ok {
		// Activation succeeds vacuously for plugins without the hook.
		return &pluginv1.OnActivateResponse{}, nil
	}
	fn := h.(func() error)
	var hookErr error
	if err := s.run(ctx, HookOnActivate, func() { hookErr = fn() }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.OnActivateResponse{Error: s.timeoutError(HookOnActivate)}, nil
		}
		return nil, err
	}
	return &pluginv1.OnActivateResponse{Error: appErrorFrom(HookOnActivate, hookErr)}, nil
}

func (s *hooksServer) OnDeactivate(ctx context.Context, _ *pluginv1.OnDeactivateRequest) (*pluginv1.OnDeactivateResponse, error) {
	var hookErr error
	if h, ok := s.registry.handler(HookOnDeactivate); ok {
		fn := h.(func() error)
		if err := s.run(ctx, HookOnDeactivate, func() { hookErr = fn() }); err != nil {
			s.draining.Store(true)
			if errors.Is(err, errHookTimeout) {
				return &pluginv1.OnDeactivateResponse{Error: s.timeoutError(HookOnDeactivate)}, nil
			}
			return nil, err
		}
	}
	s.draining.Store(true)
	return &pluginv1.OnDeactivateResponse{Error: appErrorFrom(HookOnDeactivate, hookErr)}, nil
}

func (s *hooksServer) OnConfigurationChange(ctx context.Context, _ *pluginv1.OnConfigurationChangeRequest) (*pluginv1.OnConfigurationChangeResponse, error) {
	h, ok := s.registry.handler(HookOnConfigurationChange)
	if !ok {
		return &pluginv1.OnConfigurationChangeResponse{}, nil
	}
	fn := h.(func() error)
	var hookErr error
	if err := s.run(ctx, HookOnConfigurationChange, func() { hookErr = fn() }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.OnConfigurationChangeResponse{Error: s.timeoutError(HookOnConfigurationChange)}, nil
		}
		return nil, err
	}
	return &pluginv1.OnConfigurationChangeResponse{Error: appErrorFrom(HookOnConfigurationChange, hookErr)}, nil
}

func (s *hooksServer) OnInstall(ctx context.Context, req *pluginv1.OnInstallRequest) (*pluginv1.OnInstallResponse, error) {
	h, ok := s.registry.handler(HookOnInstall)
	if !ok {
		return nil, s.hookUnavailable(HookOnInstall)
	}
	fn := h.(func(*Context, *pluginv1.InstallEvent) error)
	c := contextFromProto(ctx, req.GetPluginContext())
	var hookErr error
	if err := s.run(ctx, HookOnInstall, func() { hookErr = fn(c, req.GetEvent()) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.OnInstallResponse{Error: s.timeoutError(HookOnInstall)}, nil
		}
		return nil, err
	}
	return &pluginv1.OnInstallResponse{Error: appErrorFrom(HookOnInstall, hookErr)}, nil
}

func (s *hooksServer) ConfigurationWillBeSaved(ctx context.Context, req *pluginv1.ConfigurationWillBeSavedRequest) (*pluginv1.ConfigurationWillBeSavedResponse, error) {
	h, ok := s.registry.handler(HookConfigurationWillBeSaved)
	if !ok {
		return nil, s.hookUnavailable(HookConfigurationWillBeSaved)
	}
	fn := h.(func([]byte) ([]byte, error))
	var (
		cfg     []byte
		hookErr error
	)
	if err := s.run(ctx, HookConfigurationWillBeSaved, func() { cfg, hookErr = fn(req.GetConfigJson()) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.ConfigurationWillBeSavedResponse{
				ConfigJson: req.GetConfigJson(),
				Error:      s.timeoutError(HookConfigurationWillBeSaved),
			}, nil
		}
		return nil, err
	}
	return &pluginv1.ConfigurationWillBeSavedResponse{
		ConfigJson: cfg,
		Error:      appErrorFrom(HookConfigurationWillBeSaved, hookErr),
	}, nil
}

func (s *hooksServer) OnSendDailyTelemetry(ctx context.Context, _ *pluginv1.OnSendDailyTelemetryRequest) (*pluginv1.OnSendDailyTelemetryResponse, error) {
	h, ok := s.registry.handler(HookOnSendDailyTelemetry)
	if !ok {
		return nil, s.hookUnavailable(HookOnSendDailyTelemetry)
	}
	fn := h.(func())
	if err := s.notify(ctx, HookOnSendDailyTelemetry, fn); err != nil {
		return nil, err
	}
	return &pluginv1.OnSendDailyTelemetryResponse{}, nil
}

func (s *hooksServer) RunDataRetention(ctx context.Context, req *pluginv1.RunDataRetentionRequest) (*pluginv1.RunDataRetentionResponse, error) {
	h, ok := s.registry.handler(HookRunDataRetention)
	if !ok {
		return nil, s.hookUnavailable(HookRunDataRetention)
	}
	fn := h.(func(int64, int64) (int64, error))
	var (
		deleted int64
		hookErr error
	)
	if err := s.run(ctx, HookRunDataRetention, func() {
		deleted, hookErr = fn(req.GetNowTime(), req.GetBatchSize())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.RunDataRetentionResponse{Error: s.timeoutError(HookRunDataRetention)}, nil
		}
		return nil, err
	}
	return &pluginv1.RunDataRetentionResponse{
		DeletedCount: deleted,
		Error:        appErrorFrom(HookRunDataRetention, hookErr),
	}, nil
}

func (s *hooksServer) OnCloudLimitsUpdated(ctx context.Context, req *pluginv1.OnCloudLimitsUpdatedRequest) (*pluginv1.OnCloudLimitsUpdatedResponse, error) {
	h, ok := s.registry.handler(HookOnCloudLimitsUpdated)
	if !ok {
		return nil, s.hookUnavailable(HookOnCloudLimitsUpdated)
	}
	fn := h.(func(*pluginv1.ProductLimits))
	if err := s.notify(ctx, HookOnCloudLimitsUpdated, func() { fn(req.GetLimits()) }); err != nil {
		return nil, err
	}
	return &pluginv1.OnCloudLimitsUpdatedResponse{}, nil
}

func (s *hooksServer) MessageWillBePosted(ctx context.Context, req *pluginv1.MessageWillBePostedRequest) (*pluginv1.MessageWillBePostedResponse, error) {
	h, ok := s.registry.handler(HookMessageWillBePosted)
	if !ok {
		return nil, s.hookUnavailable(HookMessageWillBePosted)
	}
	fn := h.(func(*Context, *pluginv1.Post) (*pluginv1.Post, string))
	c := contextFromProto(ctx, req.GetPluginContext())
	var (
		modified *pluginv1.Post
		reason   string
	)
	if err := s.run(ctx, HookMessageWillBePosted, func() { modified, reason = fn(c, req.GetPost()) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.MessageWillBePostedResponse{RejectionReason: s.timeoutReason(HookMessageWillBePosted)}, nil
		}
		return nil, err
	}
	return &pluginv1.MessageWillBePostedResponse{ModifiedPost: modified, RejectionReason: reason}, nil
}

func (s *hooksServer) MessageWillBeUpdated(ctx context.Context, req *pluginv1.MessageWillBeUpdatedRequest) (*pluginv1.MessageWillBeUpdatedResponse, error) {
	h, ok := s.registry.handler(HookMessageWillBeUpdated)
	if !ok {
		return nil, s.hookUnavailable(HookMessageWillBeUpdated)
	}
	fn := h.(func(*Context, *pluginv1.Post, *pluginv1.Post) (*pluginv1.Post, string))
	c := contextFromProto(ctx, req.GetPluginContext())
	var (
		modified *pluginv1.Post
		reason   string
	)
	if err := s.run(ctx, HookMessageWillBeUpdated, func() {
		modified, reason = fn(c, req.GetNewPost(), req.GetOldPost())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.MessageWillBeUpdatedResponse{RejectionReason: s.timeoutReason(HookMessageWillBeUpdated)}, nil
		}
		return nil, err
	}
	return &pluginv1.MessageWillBeUpdatedResponse{ModifiedPost: modified, RejectionReason: reason}, nil
}

func (s *hooksServer) MessageHasBeenPosted(ctx context.Context, req *pluginv1.MessageHasBeenPostedRequest) (*pluginv1.MessageHasBeenPostedResponse, error) {
	h, ok := s.registry.handler(HookMessageHasBeenPosted)
	if !ok {
		return nil, s.hookUnavailable(HookMessageHasBeenPosted)
	}
	fn := h.(func(*Context, *pluginv1.Post))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookMessageHasBeenPosted, func() { fn(c, req.GetPost()) }); err != nil {
		return nil, err
	}
	return &pluginv1.MessageHasBeenPostedResponse{}, nil
}

func (s *hooksServer) MessageHasBeenUpdated(ctx context.Context, req *pluginv1.MessageHasBeenUpdatedRequest) (*pluginv1.MessageHasBeenUpdatedResponse, error) {
	h, ok := s.registry.handler(HookMessageHasBeenUpdated)
	if !ok {
		return nil, s.hookUnavailable(HookMessageHasBeenUpdated)
	}
	fn := h.(func(*Context, *pluginv1.Post, *pluginv1.Post))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookMessageHasBeenUpdated, func() {
		fn(c, req.GetNewPost(), req.GetOldPost())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.MessageHasBeenUpdatedResponse{}, nil
}

func (s *hooksServer) MessageHasBeenDeleted(ctx context.Context, req *pluginv1.MessageHasBeenDeletedRequest) (*pluginv1.MessageHasBeenDeletedResponse, error) {
	h, ok := s.registry.handler(HookMessageHasBeenDeleted)
	if !ok {
		return nil, s.hookUnavailable(HookMessageHasBeenDeleted)
	}
	fn := h.(func(*Context, *pluginv1.Post))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookMessageHasBeenDeleted, func() { fn(c, req.GetPost()) }); err != nil {
		return nil, err
	}
	return &pluginv1.MessageHasBeenDeletedResponse{}, nil
}

func (s *hooksServer) MessagesWillBeConsumed(ctx context.Context, req *pluginv1.MessagesWillBeConsumedRequest) (*pluginv1.MessagesWillBeConsumedResponse, error) {
	h, ok := s.registry.handler(HookMessagesWillBeConsumed)
	if !ok {
		return nil, s.hookUnavailable(HookMessagesWillBeConsumed)
	}
	fn := h.(func([]*pluginv1.Post) []*pluginv1.Post)
	var posts []*pluginv1.Post
	if err := s.run(ctx, HookMessagesWillBeConsumed, func() { posts = fn(req.GetPosts()) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			// A stuck transform must not eat the batch; pass it through.
			return &pluginv1.MessagesWillBeConsumedResponse{Posts: req.GetPosts()}, nil
		}
		return nil, err
	}
	return &pluginv1.MessagesWillBeConsumedResponse{Posts: posts}, nil
}

func (s *hooksServer) ReactionHasBeenAdded(ctx context.Context, req *pluginv1.ReactionHasBeenAddedRequest) (*pluginv1.ReactionHasBeenAddedResponse, error) {
	h, ok := s.registry.handler(HookReactionHasBeenAdded)
	if !ok {
		return nil, s.hookUnavailable(HookReactionHasBeenAdded)
	}
	fn := h.(func(*Context, *pluginv1.Reaction))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookReactionHasBeenAdded, func() { fn(c, req.GetReaction()) }); err != nil {
		return nil, err
	}
	return &pluginv1.ReactionHasBeenAddedResponse{}, nil
}

func (s *hooksServer) ReactionHasBeenRemoved(ctx context.Context, req *pluginv1.ReactionHasBeenRemovedRequest) (*pluginv1.ReactionHasBeenRemovedResponse, error) {
	h, ok := s.registry.handler(HookReactionHasBeenRemoved)
	if !ok {
		return nil, s.hookUnavailable(HookReactionHasBeenRemoved)
	}
	fn := h.(func(*Context, *pluginv1.Reaction))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookReactionHasBeenRemoved, func() { fn(c, req.GetReaction()) }); err != nil {
		return nil, err
	}
	return &pluginv1.ReactionHasBeenRemovedResponse{}, nil
}

func (s *hooksServer) NotificationWillBePushed(ctx context.Context, req *pluginv1.NotificationWillBePushedRequest) (*pluginv1.NotificationWillBePushedResponse, error) {
	h, ok := s.registry.handler(HookNotificationWillBePushed)
	if !ok {
		return nil, s.hookUnavailable(HookNotificationWillBePushed)
	}
	fn := h.(func(*pluginv1.PushNotification, string) (*pluginv1.PushNotification, string))
	var (
		modified *pluginv1.PushNotification
		reason   string
	)
	if err := s.run(ctx, HookNotificationWillBePushed, func() {
		modified, reason = fn(req.GetNotification(), req.GetUserId())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.NotificationWillBePushedResponse{RejectionReason: s.timeoutReason(HookNotificationWillBePushed)}, nil
		}
		return nil, err
	}
	return &pluginv1.NotificationWillBePushedResponse{ModifiedNotification: modified, RejectionReason: reason}, nil
}

func (s *hooksServer) EmailNotificationWillBeSent(ctx context.Context, req *pluginv1.EmailNotificationWillBeSentRequest) (*pluginv1.EmailNotificationWillBeSentResponse, error) {
	h, ok := s.registry.handler(HookEmailNotificationWillBeSent)
	if !ok {
		return nil, s.hookUnavailable(HookEmailNotificationWillBeSent)
	}
	fn := h.(func(*pluginv1.EmailNotification) (*pluginv1.EmailNotificationContent, string))
	var (
		content *pluginv1.EmailNotificationContent
		reason  string
	)
	if err := s.run(ctx, HookEmailNotificationWillBeSent, func() {
		content, reason = fn(req.GetNotification())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.EmailNotificationWillBeSentResponse{RejectionReason: s.timeoutReason(HookEmailNotificationWillBeSent)}, nil
		}
		return nil, err
	}
	return &pluginv1.EmailNotificationWillBeSentResponse{Content: content, RejectionReason: reason}, nil
}

func (s *hooksServer) PreferencesHaveChanged(ctx context.Context, req *pluginv1.PreferencesHaveChangedRequest) (*pluginv1.PreferencesHaveChangedResponse, error) {
	h, ok := s.registry.handler(HookPreferencesHaveChanged)
	if !ok {
		return nil, s.hookUnavailable(HookPreferencesHaveChanged)
	}
	fn := h.(func(*Context, []*pluginv1.Preference))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookPreferencesHaveChanged, func() { fn(c, req.GetPreferences()) }); err != nil {
		return nil, err
	}
	return &pluginv1.PreferencesHaveChangedResponse{}, nil
}

func (s *hooksServer) FileWillBeUploaded(ctx context.Context, req *pluginv1.FileWillBeUploadedRequest) (*pluginv1.FileWillBeUploadedResponse, error) {
	h, ok := s.registry.handler(HookFileWillBeUploaded)
	if !ok {
		return nil, s.hookUnavailable(HookFileWillBeUploaded)
	}
	fn := h.(func(*Context, *pluginv1.FileInfo, []byte) (*pluginv1.FileInfo, []byte, string))
	c := contextFromProto(ctx, req.GetPluginContext())
	var (
		info   *pluginv1.FileInfo
		body   []byte
		reason string
	)
	if err := s.run(ctx, HookFileWillBeUploaded, func() {
		info, body, reason = fn(c, req.GetFileInfo(), req.GetBody())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.FileWillBeUploadedResponse{RejectionReason: s.timeoutReason(HookFileWillBeUploaded)}, nil
		}
		return nil, err
	}
	return &pluginv1.FileWillBeUploadedResponse{
		ModifiedFileInfo: info,
		ReplacementBody:  body,
		RejectionReason:  reason,
	}, nil
}

func (s *hooksServer) UserHasBeenCreated(ctx context.Context, req *pluginv1.UserHasBeenCreatedRequest) (*pluginv1.UserHasBeenCreatedResponse, error) {
	h, ok := s.registry.handler(HookUserHasBeenCreated)
	if !ok {
		return nil, s.hookUnavailable(HookUserHasBeenCreated)
	}
	fn := h.(func(*Context, *pluginv1.User))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookUserHasBeenCreated, func() { fn(c, req.GetUser()) }); err != nil {
		return nil, err
	}
	return &pluginv1.UserHasBeenCreatedResponse{}, nil
}

func (s *hooksServer) UserWillLogIn(ctx context.Context, req *pluginv1.UserWillLogInRequest) (*pluginv1.UserWillLogInResponse, error) {
	h, ok := s.registry.handler(HookUserWillLogIn)
	if !ok {
		return nil, s.hookUnavailable(HookUserWillLogIn)
	}
	fn := h.(func(*Context, *pluginv1.User) string)
	c := contextFromProto(ctx, req.GetPluginContext())
	var reason string
	if err := s.run(ctx, HookUserWillLogIn, func() { reason = fn(c, req.GetUser()) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.UserWillLogInResponse{RejectionReason: s.timeoutReason(HookUserWillLogIn)}, nil
		}
		return nil, err
	}
	return &pluginv1.UserWillLogInResponse{RejectionReason: reason}, nil
}

func (s *hooksServer) UserHasLoggedIn(ctx context.Context, req *pluginv1.UserHasLoggedInRequest) (*pluginv1.UserHasLoggedInResponse, error) {
	h, ok := s.registry.handler(HookUserHasLoggedIn)
	if !ok {
		return nil, s.hookUnavailable(HookUserHasLoggedIn)
	}
	fn := h.(func(*Context, *pluginv1.User))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookUserHasLoggedIn, func() { fn(c, req.GetUser()) }); err != nil {
		return nil, err
	}
	return &pluginv1.UserHasLoggedInResponse{}, nil
}

func (s *hooksServer) UserHasBeenDeactivated(ctx context.Context, req *pluginv1.UserHasBeenDeactivatedRequest) (*pluginv1.UserHasBeenDeactivatedResponse, error) {
	h, ok := s.registry.handler(HookUserHasBeenDeactivated)
	if !ok {
		return nil, s.hookUnavailable(HookUserHasBeenDeactivated)
	}
	fn := h.(func(*Context, *pluginv1.User))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookUserHasBeenDeactivated, func() { fn(c, req.GetUser()) }); err != nil {
		return nil, err
	}
	return &pluginv1.UserHasBeenDeactivatedResponse{}, nil
}

func (s *hooksServer) OnSAMLLogin(ctx context.Context, req *pluginv1.OnSAMLLoginRequest) (*pluginv1.OnSAMLLoginResponse, error) {
	h, ok := s.registry.handler(HookOnSAMLLogin)
	if !ok {
		return nil, s.hookUnavailable(HookOnSAMLLogin)
	}
	fn := h.(func(*Context, *pluginv1.User, []byte) error)
	c := contextFromProto(ctx, req.GetPluginContext())
	var hookErr error
	if err := s.run(ctx, HookOnSAMLLogin, func() {
		hookErr = fn(c, req.GetUser(), req.GetAssertionJson())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.OnSAMLLoginResponse{Error: s.timeoutError(HookOnSAMLLogin)}, nil
		}
		return nil, err
	}
	return &pluginv1.OnSAMLLoginResponse{Error: appErrorFrom(HookOnSAMLLogin, hookErr)}, nil
}

func (s *hooksServer) ChannelHasBeenCreated(ctx context.Context, req *pluginv1.ChannelHasBeenCreatedRequest) (*pluginv1.ChannelHasBeenCreatedResponse, error) {
	h, ok := s.registry.handler(HookChannelHasBeenCreated)
	if !ok {
		return nil, s.hookUnavailable(HookChannelHasBeenCreated)
	}
	fn := h.(func(*Context, *pluginv1.Channel))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookChannelHasBeenCreated, func() { fn(c, req.GetChannel()) }); err != nil {
		return nil, err
	}
	return &pluginv1.ChannelHasBeenCreatedResponse{}, nil
}

func (s *hooksServer) UserHasJoinedChannel(ctx context.Context, req *pluginv1.UserHasJoinedChannelRequest) (*pluginv1.UserHasJoinedChannelResponse, error) {
	h, ok := s.registry.handler(HookUserHasJoinedChannel)
	if !ok {
		return nil, s.hookUnavailable(HookUserHasJoinedChannel)
	}
	fn := h.(func(*Context, *pluginv1.ChannelMember, *pluginv1.User))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookUserHasJoinedChannel, func() {
		fn(c, req.GetChannelMember(), req.GetActor())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.UserHasJoinedChannelResponse{}, nil
}

func (s *hooksServer) UserHasLeftChannel(ctx context.Context, req *pluginv1.UserHasLeftChannelRequest) (*pluginv1.UserHasLeftChannelResponse, error) {
	h, ok := s.registry.handler(HookUserHasLeftChannel)
	if !ok {
		return nil, s.hookUnavailable(HookUserHasLeftChannel)
	}
	fn := h.(func(*Context, *pluginv1.ChannelMember, *pluginv1.User))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookUserHasLeftChannel, func() {
		fn(c, req.GetChannelMember(), req.GetActor())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.UserHasLeftChannelResponse{}, nil
}

func (s *hooksServer) UserHasJoinedTeam(ctx context.Context, req *pluginv1.UserHasJoinedTeamRequest) (*pluginv1.UserHasJoinedTeamResponse, error) {
	h, ok := s.registry.handler(HookUserHasJoinedTeam)
	if !ok {
		return nil, s.hookUnavailable(HookUserHasJoinedTeam)
	}
	fn := h.(func(*Context, *pluginv1.TeamMember, *pluginv1.User))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookUserHasJoinedTeam, func() {
		fn(c, req.GetTeamMember(), req.GetActor())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.UserHasJoinedTeamResponse{}, nil
}

func (s *hooksServer) UserHasLeftTeam(ctx context.Context, req *pluginv1.UserHasLeftTeamRequest) (*pluginv1.UserHasLeftTeamResponse, error) {
	h, ok := s.registry.handler(HookUserHasLeftTeam)
	if !ok {
		return nil, s.hookUnavailable(HookUserHasLeftTeam)
	}
	fn := h.(func(*Context, *pluginv1.TeamMember, *pluginv1.User))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookUserHasLeftTeam, func() {
		fn(c, req.GetTeamMember(), req.GetActor())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.UserHasLeftTeamResponse{}, nil
}

func (s *hooksServer) ExecuteCommand(ctx context.Context, req *pluginv1.ExecuteCommandRequest) (*pluginv1.ExecuteCommandResponse, error) {
	h, ok := s.registry.handler(HookExecuteCommand)
	if !ok {
		return nil, s.hookUnavailable(HookExecuteCommand)
	}
	fn := h.(func(*Context, *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error))
	c := contextFromProto(ctx, req.GetPluginContext())
	var (
		resp    *pluginv1.CommandResponse
		hookErr error
	)
	if err := s.run(ctx, HookExecuteCommand, func() { resp, hookErr = fn(c, req.GetArgs()) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.ExecuteCommandResponse{Error: s.timeoutError(HookExecuteCommand)}, nil
		}
		return nil, err
	}
	return &pluginv1.ExecuteCommandResponse{
		Response: resp,
		Error:    appErrorFrom(HookExecuteCommand, hookErr),
	}, nil
}

func (s *hooksServer) OnWebSocketConnect(ctx context.Context, req *pluginv1.OnWebSocketConnectRequest) (*pluginv1.OnWebSocketConnectResponse, error) {
	h, ok := s.registry.handler(HookOnWebSocketConnect)
	if !ok {
		return nil, s.hookUnavailable(HookOnWebSocketConnect)
	}
	fn := h.(func(string, string))
	if err := s.notify(ctx, HookOnWebSocketConnect, func() {
		fn(req.GetWebConnId(), req.GetUserId())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.OnWebSocketConnectResponse{}, nil
}

func (s *hooksServer) OnWebSocketDisconnect(ctx context.Context, req *pluginv1.OnWebSocketDisconnectRequest) (*pluginv1.OnWebSocketDisconnectResponse, error) {
	h, ok := s.registry.handler(HookOnWebSocketDisconnect)
	if !ok {
		return nil, s.hookUnavailable(HookOnWebSocketDisconnect)
	}
	fn := h.(func(string, string))
	if err := s.notify(ctx, HookOnWebSocketDisconnect, func() {
		fn(req.GetWebConnId(), req.GetUserId())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.OnWebSocketDisconnectResponse{}, nil
}

func (s *hooksServer) WebSocketMessageHasBeenPosted(ctx context.Context, req *pluginv1.WebSocketMessageHasBeenPostedRequest) (*pluginv1.WebSocketMessageHasBeenPostedResponse, error) {
	h, ok := s.registry.handler(HookWebSocketMessageHasBeenPosted)
	if !ok {
		return nil, s.hookUnavailable(HookWebSocketMessageHasBeenPosted)
	}
	fn := h.(func(string, string, *pluginv1.WebSocketRequest))
	if err := s.notify(ctx, HookWebSocketMessageHasBeenPosted, func() {
		fn(req.GetWebConnId(), req.GetUserId(), req.GetRequest())
	}); err != nil {
		return nil, err
	}
	return &pluginv1.WebSocketMessageHasBeenPostedResponse{}, nil
}

func (s *hooksServer) OnPluginClusterEvent(ctx context.Context, req *pluginv1.OnPluginClusterEventRequest) (*pluginv1.OnPluginClusterEventResponse, error) {
	h, ok := s.registry.handler(HookOnPluginClusterEvent)
	if !ok {
		return nil, s.hookUnavailable(HookOnPluginClusterEvent)
	}
	fn := h.(func(*Context, *pluginv1.ClusterEvent))
	c := contextFromProto(ctx, req.GetPluginContext())
	if err := s.notify(ctx, HookOnPluginClusterEvent, func() { fn(c, req.GetEvent()) }); err != nil {
		return nil, err
	}
	return &pluginv1.OnPluginClusterEventResponse{}, nil
}

func (s *hooksServer) OnSharedChannelsSyncMsg(ctx context.Context, req *pluginv1.OnSharedChannelsSyncMsgRequest) (*pluginv1.OnSharedChannelsSyncMsgResponse, error) {
	h, ok := s.registry.handler(HookOnSharedChannelsSyncMsg)
	if !ok {
		return nil, s.hookUnavailable(HookOnSharedChannelsSyncMsg)
	}
	fn := h.(func([]byte, *pluginv1.RemoteCluster) ([]byte, error))
	var (
		out     []byte
		hookErr error
	)
	if err := s.run(ctx, HookOnSharedChannelsSyncMsg, func() {
		out, hookErr = fn(req.GetSyncMsgJson(), req.GetRemoteCluster())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.OnSharedChannelsSyncMsgResponse{Error: s.timeoutError(HookOnSharedChannelsSyncMsg)}, nil
		}
		return nil, err
	}
	return &pluginv1.OnSharedChannelsSyncMsgResponse{
		ResponseJson: out,
		Error:        appErrorFrom(HookOnSharedChannelsSyncMsg, hookErr),
	}, nil
}

func (s *hooksServer) OnSharedChannelsPing(ctx context.Context, req *pluginv1.OnSharedChannelsPingRequest) (*pluginv1.OnSharedChannelsPingResponse, error) {
	h, ok := s.registry.handler(HookOnSharedChannelsPing)
	if !ok {
		return nil, s.hookUnavailable(HookOnSharedChannelsPing)
	}
	fn := h.(func(*pluginv1.RemoteCluster) bool)
	var healthy bool
	if err := s.run(ctx, HookOnSharedChannelsPing, func() { healthy = fn(req.GetRemoteCluster()) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			// A ping that cannot answer in time is not healthy.
			return &pluginv1.OnSharedChannelsPingResponse{Healthy: false}, nil
		}
		return nil, err
	}
	return &pluginv1.OnSharedChannelsPingResponse{Healthy: healthy}, nil
}

func (s *hooksServer) OnSharedChannelsAttachmentSyncMsg(ctx context.Context, req *pluginv1.OnSharedChannelsAttachmentSyncMsgRequest) (*pluginv1.OnSharedChannelsAttachmentSyncMsgResponse, error) {
	h, ok := s.registry.handler(HookOnSharedChannelsAttachmentSyncMsg)
	if !ok {
		return nil, s.hookUnavailable(HookOnSharedChannelsAttachmentSyncMsg)
	}
	fn := h.(func(*pluginv1.FileInfo, *pluginv1.Post, *pluginv1.RemoteCluster) error)
	var hookErr error
	if err := s.run(ctx, HookOnSharedChannelsAttachmentSyncMsg, func() {
		hookErr = fn(req.GetFileInfo(), req.GetPost(), req.GetRemoteCluster())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.OnSharedChannelsAttachmentSyncMsgResponse{
				Error: s.timeoutError(HookOnSharedChannelsAttachmentSyncMsg),
			}, nil
		}
		return nil, err
	}
	return &pluginv1.OnSharedChannelsAttachmentSyncMsgResponse{
		Error: appErrorFrom(HookOnSharedChannelsAttachmentSyncMsg, hookErr),
	}, nil
}

func (s *hooksServer) OnSharedChannelsProfileImageSyncMsg(ctx context.Context, req *pluginv1.OnSharedChannelsProfileImageSyncMsgRequest) (*pluginv1.OnSharedChannelsProfileImageSyncMsgResponse, error) {
	h, ok := s.registry.handler(HookOnSharedChannelsProfileImageSyncMsg)
	if !ok {
		return nil, s.hookUnavailable(HookOnSharedChannelsProfileImageSyncMsg)
	}
	fn := h.(func(*pluginv1.User, *pluginv1.RemoteCluster) error)
	var hookErr error
	if err := s.run(ctx, HookOnSharedChannelsProfileImageSyncMsg, func() {
		hookErr = fn(req.GetUser(), req.GetRemoteCluster())
	}); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.OnSharedChannelsProfileImageSyncMsgResponse{
				Error: s.timeoutError(HookOnSharedChannelsProfileImageSyncMsg),
			}, nil
		}
		return nil, err
	}
	return &pluginv1.OnSharedChannelsProfileImageSyncMsgResponse{
		Error: appErrorFrom(HookOnSharedChannelsProfileImageSyncMsg, hookErr),
	}, nil
}

func (s *hooksServer) GenerateSupportData(ctx context.Context, req *pluginv1.GenerateSupportDataRequest) (*pluginv1.GenerateSupportDataResponse, error) {
	h, ok := s.registry.handler(HookGenerateSupportData)
	if !ok {
		return nil, s.hookUnavailable(HookGenerateSupportData)
	}
	fn := h.(func(*Context) ([]*pluginv1.FileData, error))
	c := contextFromProto(ctx, req.GetPluginContext())
	var (
		files   []*pluginv1.FileData
		hookErr error
	)
	if err := s.run(ctx, HookGenerateSupportData, func() { files, hookErr = fn(c) }); err != nil {
		if errors.Is(err, errHookTimeout) {
			return &pluginv1.GenerateSupportDataResponse{Error: s.timeoutError(HookGenerateSupportData)}, nil
		}
		return nil, err
	}
	return &pluginv1.GenerateSupportDataResponse{
		Files: files,
		Error: appErrorFrom(HookGenerateSupportData, hookErr),
	}, nil
}
