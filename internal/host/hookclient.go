// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	"github.com/chatgrid/chatgrid-plugin/pkg/pluginsdk"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// ErrRejectedByPlugin wraps a gate hook's veto. The rejection reason is in
// the error message.
var ErrRejectedByPlugin = errors.New("rejected by plugin")

// HookClient is the host-side caller for a single plugin's hook service. It
// caches the plugin's Implemented set so unimplemented hooks short-circuit
// locally, and applies the per-category fault policy: gates propagate
// failures to the caller, notifications log and swallow them.
type HookClient struct {
	pluginID string
	log      *slog.Logger
	rpc      pluginv1.PluginHooksClient
	timeout  time.Duration
	metrics  *observability.Metrics

	implemented map[string]struct{}
}

// NewHookClient wraps a hooks RPC client. Call Refresh before the first
// dispatch so the Implemented cache is populated.
func NewHookClient(pluginID string, rpc pluginv1.PluginHooksClient, log *slog.Logger, timeout time.Duration) *HookClient {
	if timeout <= 0 {
		timeout = pluginsdk.DefaultHookTimeout
	}
	return &HookClient{
		pluginID:    pluginID,
		log:         log.With("plugin_id", pluginID),
		rpc:         rpc,
		timeout:     timeout,
		implemented: make(map[string]struct{}),
	}
}

// Refresh queries the plugin's implemented hook set and replaces the cache.
func (c *HookClient) Refresh(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rpc.Implemented(ctx, &pluginv1.ImplementedRequest{})
	if err != nil {
		return nil, fmt.Errorf("query implemented hooks: %w", err)
	}
	if respErr := resp.GetError(); respErr != nil && (respErr.Id != "" || respErr.Message != "") {
		return nil, fmt.Errorf("query implemented hooks: %s", respErr.Message)
	}

	set := make(map[string]struct{}, len(resp.GetHooks()))
	for _, name := range resp.GetHooks() {
		set[name] = struct{}{}
	}
	c.implemented = set
	return resp.GetHooks(), nil
}

// Has reports whether the plugin implements the named hook.
func (c *HookClient) Has(name string) bool {
	_, ok := c.implemented[name]
	return ok
}

// WithMetrics attaches host metrics to the client. Nil is fine; recording
// becomes a no-op.
func (c *HookClient) WithMetrics(m *observability.Metrics) *HookClient {
	c.metrics = m
	return c
}

func (c *HookClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// observe records one dispatch: outcome counter, latency, and the timeout
// counter when the deadline struck.
func (c *HookClient) observe(name string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case status.Code(err) == codes.DeadlineExceeded:
		outcome = "timeout"
		c.metrics.ObserveHookTimeout(c.pluginID, name)
	default:
		outcome = "error"
	}
	c.metrics.ObserveHookInvocation(c.pluginID, name, outcome, time.Since(start))
}

// hookError converts a hook response's AppError into a Go error, nil when
// the envelope is empty.
func hookError(name string, ae *pluginv1.AppError) error {
	if ae == nil || (ae.Id == "" && ae.Message == "") {
		return nil
	}
	return fmt.Errorf("%s: %s", name, ae.Message)
}

// notify runs a fire-and-forget hook. Failures are logged, never returned;
// a plugin refusing because it is draining is routine during shutdown.
func (c *HookClient) notify(ctx context.Context, name string, call func(context.Context) error) {
	if !c.Has(name) {
		return
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	err := call(ctx)
	c.observe(name, start, err)
	if err != nil {
		if status.Code(err) == codes.FailedPrecondition {
			c.log.Debug("notification refused: plugin draining", "hook", name)
			return
		}
		c.log.Warn("notification hook failed", "hook", name, "error", err)
	}
}

// OnActivate runs the plugin's activation hook. Unlike other hooks it is
// dispatched even when absent from the Implemented set; the plugin side
// answers vacuously.
func (c *HookClient) OnActivate(ctx context.Context) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.OnActivate(ctx, &pluginv1.OnActivateRequest{})
	c.observe(pluginsdk.HookOnActivate, start, err)
	if err != nil {
		return fmt.Errorf("OnActivate: %w", err)
	}
	return hookError("OnActivate", resp.GetError())
}

// OnDeactivate runs the plugin's deactivation hook.
func (c *HookClient) OnDeactivate(ctx context.Context) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.OnDeactivate(ctx, &pluginv1.OnDeactivateRequest{})
	c.observe(pluginsdk.HookOnDeactivate, start, err)
	if err != nil {
		return fmt.Errorf("OnDeactivate: %w", err)
	}
	return hookError("OnDeactivate", resp.GetError())
}

// OnConfigurationChange tells the plugin its configuration changed.
func (c *HookClient) OnConfigurationChange(ctx context.Context) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.OnConfigurationChange(ctx, &pluginv1.OnConfigurationChangeRequest{})
	c.observe(pluginsdk.HookOnConfigurationChange, start, err)
	if err != nil {
		return fmt.Errorf("OnConfigurationChange: %w", err)
	}
	return hookError("OnConfigurationChange", resp.GetError())
}

// MessageWillBePosted runs the pre-post gate. The returns are the post to
// store (possibly modified), a rejection reason when vetoed, and transport
// or handler failure. A nil returned post with an empty reason means the
// post was dismissed silently.
func (c *HookClient) MessageWillBePosted(ctx context.Context, pc *pluginv1.PluginContext, post *pluginv1.Post) (*pluginv1.Post, string, error) {
	if !c.Has(pluginsdk.HookMessageWillBePosted) {
		return post, "", nil
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.MessageWillBePosted(ctx, &pluginv1.MessageWillBePostedRequest{
		PluginContext: pc,
		Post:          post,
	})
	c.observe(pluginsdk.HookMessageWillBePosted, start, err)
	if err != nil {
		return nil, "", fmt.Errorf("MessageWillBePosted: %w", err)
	}

	if reason := resp.GetRejectionReason(); reason != "" {
		if reason == pluginsdk.DismissPostError {
			return nil, "", nil
		}
		return nil, reason, fmt.Errorf("%w: %s", ErrRejectedByPlugin, reason)
	}
	if modified := resp.GetModifiedPost(); modified != nil {
		return modified, "", nil
	}
	return post, "", nil
}

// MessageWillBeUpdated runs the pre-update gate with the same veto contract
// as MessageWillBePosted, minus the dismiss sentinel.
func (c *HookClient) MessageWillBeUpdated(ctx context.Context, pc *pluginv1.PluginContext, newPost, oldPost *pluginv1.Post) (*pluginv1.Post, string, error) {
	if !c.Has(pluginsdk.HookMessageWillBeUpdated) {
		return newPost, "", nil
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.MessageWillBeUpdated(ctx, &pluginv1.MessageWillBeUpdatedRequest{
		PluginContext: pc,
		NewPost:       newPost,
		OldPost:       oldPost,
	})
	c.observe(pluginsdk.HookMessageWillBeUpdated, start, err)
	if err != nil {
		return nil, "", fmt.Errorf("MessageWillBeUpdated: %w", err)
	}

	if reason := resp.GetRejectionReason(); reason != "" {
		return nil, reason, fmt.Errorf("%w: %s", ErrRejectedByPlugin, reason)
	}
	if modified := resp.GetModifiedPost(); modified != nil {
		return modified, "", nil
	}
	return newPost, "", nil
}

// MessageHasBeenPosted notifies the plugin after a post is stored.
func (c *HookClient) MessageHasBeenPosted(ctx context.Context, pc *pluginv1.PluginContext, post *pluginv1.Post) {
	c.notify(ctx, pluginsdk.HookMessageHasBeenPosted, func(ctx context.Context) error {
		_, err := c.rpc.MessageHasBeenPosted(ctx, &pluginv1.MessageHasBeenPostedRequest{
			PluginContext: pc,
			Post:          post,
		})
		return err
	})
}

// MessageHasBeenUpdated notifies the plugin after a post is edited.
func (c *HookClient) MessageHasBeenUpdated(ctx context.Context, pc *pluginv1.PluginContext, newPost, oldPost *pluginv1.Post) {
	c.notify(ctx, pluginsdk.HookMessageHasBeenUpdated, func(ctx context.Context) error {
		_, err := c.rpc.MessageHasBeenUpdated(ctx, &pluginv1.MessageHasBeenUpdatedRequest{
			PluginContext: pc,
			NewPost:       newPost,
			OldPost:       oldPost,
		})
		return err
	})
}

// MessageHasBeenDeleted notifies the plugin after a post is removed.
func (c *HookClient) MessageHasBeenDeleted(ctx context.Context, pc *pluginv1.PluginContext, post *pluginv1.Post) {
	c.notify(ctx, pluginsdk.HookMessageHasBeenDeleted, func(ctx context.Context) error {
		_, err := c.rpc.MessageHasBeenDeleted(ctx, &pluginv1.MessageHasBeenDeletedRequest{
			PluginContext: pc,
			Post:          post,
		})
		return err
	})
}

// ReactionHasBeenAdded notifies the plugin of a new reaction.
func (c *HookClient) ReactionHasBeenAdded(ctx context.Context, pc *pluginv1.PluginContext, reaction *pluginv1.Reaction) {
	c.notify(ctx, pluginsdk.HookReactionHasBeenAdded, func(ctx context.Context) error {
		_, err := c.rpc.ReactionHasBeenAdded(ctx, &pluginv1.ReactionHasBeenAddedRequest{
			PluginContext: pc,
			Reaction:      reaction,
		})
		return err
	})
}

// ReactionHasBeenRemoved notifies the plugin of a removed reaction.
func (c *HookClient) ReactionHasBeenRemoved(ctx context.Context, pc *pluginv1.PluginContext, reaction *pluginv1.Reaction) {
	c.notify(ctx, pluginsdk.HookReactionHasBeenRemoved, func(ctx context.Context) error {
		_, err := c.rpc.ReactionHasBeenRemoved(ctx, &pluginv1.ReactionHasBeenRemovedRequest{
			PluginContext: pc,
			Reaction:      reaction,
		})
		return err
	})
}

// UserHasBeenCreated notifies the plugin of a new user.
func (c *HookClient) UserHasBeenCreated(ctx context.Context, pc *pluginv1.PluginContext, user *pluginv1.User) {
	c.notify(ctx, pluginsdk.HookUserHasBeenCreated, func(ctx context.Context) error {
		_, err := c.rpc.UserHasBeenCreated(ctx, &pluginv1.UserHasBeenCreatedRequest{
			PluginContext: pc,
			User:          user,
		})
		return err
	})
}

// UserWillLogIn runs the login gate. A non-empty return rejects the login
// with that reason.
func (c *HookClient) UserWillLogIn(ctx context.Context, pc *pluginv1.PluginContext, user *pluginv1.User) (string, error) {
	if !c.Has(pluginsdk.HookUserWillLogIn) {
		return "", nil
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.UserWillLogIn(ctx, &pluginv1.UserWillLogInRequest{
		PluginContext: pc,
		User:          user,
	})
	c.observe(pluginsdk.HookUserWillLogIn, start, err)
	if err != nil {
		return "", fmt.Errorf("UserWillLogIn: %w", err)
	}
	return resp.GetRejectionReason(), nil
}

// UserHasLoggedIn notifies the plugin after a successful login.
func (c *HookClient) UserHasLoggedIn(ctx context.Context, pc *pluginv1.PluginContext, user *pluginv1.User) {
	c.notify(ctx, pluginsdk.HookUserHasLoggedIn, func(ctx context.Context) error {
		_, err := c.rpc.UserHasLoggedIn(ctx, &pluginv1.UserHasLoggedInRequest{
			PluginContext: pc,
			User:          user,
		})
		return err
	})
}

// ChannelHasBeenCreated notifies the plugin of a new channel.
func (c *HookClient) ChannelHasBeenCreated(ctx context.Context, pc *pluginv1.PluginContext, channel *pluginv1.Channel) {
	c.notify(ctx, pluginsdk.HookChannelHasBeenCreated, func(ctx context.Context) error {
		_, err := c.rpc.ChannelHasBeenCreated(ctx, &pluginv1.ChannelHasBeenCreatedRequest{
			PluginContext: pc,
			Channel:       channel,
		})
		return err
	})
}

// UserHasJoinedChannel notifies the plugin of a channel join.
func (c *HookClient) UserHasJoinedChannel(ctx context.Context, pc *pluginv1.PluginContext, member *pluginv1.ChannelMember, actor *pluginv1.User) {
	c.notify(ctx, pluginsdk.HookUserHasJoinedChannel, func(ctx context.Context) error {
		_, err := c.rpc.UserHasJoinedChannel(ctx, &pluginv1.UserHasJoinedChannelRequest{
			PluginContext: pc,
			ChannelMember: member,
			Actor:         actor,
		})
		return err
	})
}

// UserHasLeftChannel notifies the plugin of a channel leave.
func (c *HookClient) UserHasLeftChannel(ctx context.Context, pc *pluginv1.PluginContext, member *pluginv1.ChannelMember, actor *pluginv1.User) {
	c.notify(ctx, pluginsdk.HookUserHasLeftChannel, func(ctx context.Context) error {
		_, err := c.rpc.UserHasLeftChannel(ctx, &pluginv1.UserHasLeftChannelRequest{
			PluginContext: pc,
			ChannelMember: member,
			Actor:         actor,
		})
		return err
	})
}

// ExecuteCommand runs a slash command owned by the plugin. Command hooks
// propagate failures like gates: the caller shows the user an error.
func (c *HookClient) ExecuteCommand(ctx context.Context, pc *pluginv1.PluginContext, args *pluginv1.CommandArgs) (*pluginv1.CommandResponse, error) {
	if !c.Has(pluginsdk.HookExecuteCommand) {
		return nil, fmt.Errorf("ExecuteCommand: plugin %s registers no command hook", c.pluginID)
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.ExecuteCommand(ctx, &pluginv1.ExecuteCommandRequest{
		PluginContext: pc,
		Args:          args,
	})
	c.observe(pluginsdk.HookExecuteCommand, start, err)
	if err != nil {
		return nil, fmt.Errorf("ExecuteCommand: %w", err)
	}
	if hookErr := hookError("ExecuteCommand", resp.GetError()); hookErr != nil {
		return nil, hookErr
	}
	return resp.GetResponse(), nil
}

// OnPluginClusterEvent delivers a peer's cluster event.
func (c *HookClient) OnPluginClusterEvent(ctx context.Context, pc *pluginv1.PluginContext, event *pluginv1.ClusterEvent) {
	c.notify(ctx, pluginsdk.HookOnPluginClusterEvent, func(ctx context.Context) error {
		_, err := c.rpc.OnPluginClusterEvent(ctx, &pluginv1.OnPluginClusterEventRequest{
			PluginContext: pc,
			Event:         event,
		})
		return err
	})
}

// RunDataRetention asks the plugin to prune its data. Returns the count of
// deleted rows as reported by the plugin.
func (c *HookClient) RunDataRetention(ctx context.Context, nowTime, batchSize int64) (int64, error) {
	if !c.Has(pluginsdk.HookRunDataRetention) {
		return 0, nil
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.RunDataRetention(ctx, &pluginv1.RunDataRetentionRequest{
		NowTime:   nowTime,
		BatchSize: batchSize,
	})
	c.observe(pluginsdk.HookRunDataRetention, start, err)
	if err != nil {
		return 0, fmt.Errorf("RunDataRetention: %w", err)
	}
	if hookErr := hookError("RunDataRetention", resp.GetError()); hookErr != nil {
		return 0, hookErr
	}
	return resp.GetDeletedCount(), nil
}

// GenerateSupportData collects the plugin's support bundle files.
func (c *HookClient) GenerateSupportData(ctx context.Context, pc *pluginv1.PluginContext) ([]*pluginv1.FileData, error) {
	if !c.Has(pluginsdk.HookGenerateSupportData) {
		return nil, nil
	}

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.rpc.GenerateSupportData(ctx, &pluginv1.GenerateSupportDataRequest{PluginContext: pc})
	c.observe(pluginsdk.HookGenerateSupportData, start, err)
	if err != nil {
		return nil, fmt.Errorf("GenerateSupportData: %w", err)
	}
	if hookErr := hookError("GenerateSupportData", resp.GetError()); hookErr != nil {
		return nil, hookErr
	}
	return resp.GetFiles(), nil
}
