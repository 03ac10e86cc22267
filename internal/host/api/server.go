// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package api implements the host side of the plugin API service. Each
// running plugin gets its own Server instance bound to its own listener, so
// the plugin ID is fixed at construction and key/value data is scoped
// without inspecting request metadata.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/chatgrid/chatgrid-plugin/internal/host/backend"
	"github.com/chatgrid/chatgrid-plugin/internal/host/kv"
	"github.com/chatgrid/chatgrid-plugin/internal/observability"
	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// Server serves the plugin API for a single plugin.
type Server struct {
	pluginv1.UnimplementedPluginAPIServer

	pluginID string
	log      *slog.Logger
	store    kv.Store
	world    *backend.Backend
	metrics  *observability.Metrics
	now      func() time.Time
}

var _ pluginv1.PluginAPIServer = (*Server)(nil)

// NewServer creates the API service for the given plugin.
func NewServer(pluginID string, store kv.Store, world *backend.Backend, log *slog.Logger) *Server {
	return &Server{
		pluginID: pluginID,
		log:      log.With("plugin_id", pluginID),
		store:    store,
		world:    world,
		now:      time.Now,
	}
}

// WithMetrics attaches host metrics. Nil is fine; recording becomes a no-op.
func (s *Server) WithMetrics(m *observability.Metrics) *Server {
	s.metrics = m
	return s
}

// recordKV counts one key-value operation by outcome.
func (s *Server) recordKV(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ObserveKVOperation(operation, outcome)
}

func appError(id, message string, statusCode int32, where string) *pluginv1.AppError {
	return &pluginv1.AppError{
		Id:         id,
		Message:    message,
		StatusCode: statusCode,
		Where:      where,
	}
}

// kvError maps store failures onto the API error envelope.
func (s *Server) kvError(where string, err error) *pluginv1.AppError {
	if errors.Is(err, kv.ErrKeyInvalid) {
		return appError("plugin_api.kv.invalid_key", err.Error(), http.StatusBadRequest, where)
	}
	s.log.Error("kv operation failed", "where", where, "error", err)
	return appError("plugin_api.kv.store_error", "key/value store failure", http.StatusInternalServerError, where)
}

// worldError maps backend failures onto the API error envelope.
func (s *Server) worldError(where string, err error) *pluginv1.AppError {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return appError("plugin_api.not_found", err.Error(), http.StatusNotFound, where)
	case errors.Is(err, backend.ErrInvalid):
		return appError("plugin_api.invalid_request", err.Error(), http.StatusBadRequest, where)
	default:
		s.log.Error("backend operation failed", "where", where, "error", err)
		return appError("plugin_api.internal", "internal server error", http.StatusInternalServerError, where)
	}
}

func (s *Server) expireAt(seconds int64) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return s.now().Add(time.Duration(seconds) * time.Second)
}

func (s *Server) KVSet(ctx context.Context, req *pluginv1.KVSetRequest) (*pluginv1.KVSetResponse, error) {
	_, err := s.store.Set(ctx, s.pluginID, req.GetKey(), req.GetValue(), kv.SetOptions{})
	s.recordKV("set", err)
	if err != nil {
		return &pluginv1.KVSetResponse{Error: s.kvError("KVSet", err)}, nil
	}
	return &pluginv1.KVSetResponse{}, nil
}

func (s *Server) KVGet(ctx context.Context, req *pluginv1.KVGetRequest) (*pluginv1.KVGetResponse, error) {
	value, err := s.store.Get(ctx, s.pluginID, req.GetKey())
	s.recordKV("get", err)
	if err != nil {
		return &pluginv1.KVGetResponse{Error: s.kvError("KVGet", err)}, nil
	}
	return &pluginv1.KVGetResponse{Value: value, Present: value != nil}, nil
}

func (s *Server) KVDelete(ctx context.Context, req *pluginv1.KVDeleteRequest) (*pluginv1.KVDeleteResponse, error) {
	err := s.store.Delete(ctx, s.pluginID, req.GetKey())
	s.recordKV("delete", err)
	if err != nil {
		return &pluginv1.KVDeleteResponse{Error: s.kvError("KVDelete", err)}, nil
	}
	return &pluginv1.KVDeleteResponse{}, nil
}

func (s *Server) KVDeleteAll(ctx context.Context, _ *pluginv1.KVDeleteAllRequest) (*pluginv1.KVDeleteAllResponse, error) {
	err := s.store.DeleteAll(ctx, s.pluginID)
	s.recordKV("delete_all", err)
	if err != nil {
		return &pluginv1.KVDeleteAllResponse{Error: s.kvError("KVDeleteAll", err)}, nil
	}
	return &pluginv1.KVDeleteAllResponse{}, nil
}

func (s *Server) KVList(ctx context.Context, req *pluginv1.KVListRequest) (*pluginv1.KVListResponse, error) {
	keys, err := s.store.List(ctx, s.pluginID, int(req.GetPage()), int(req.GetPerPage()))
	s.recordKV("list", err)
	if err != nil {
		return &pluginv1.KVListResponse{Error: s.kvError("KVList", err)}, nil
	}
	return &pluginv1.KVListResponse{Keys: keys}, nil
}

func (s *Server) KVSetWithExpiry(ctx context.Context, req *pluginv1.KVSetWithExpiryRequest) (*pluginv1.KVSetWithExpiryResponse, error) {
	opts := kv.SetOptions{ExpireAt: s.expireAt(req.GetExpireInSeconds())}
	_, err := s.store.Set(ctx, s.pluginID, req.GetKey(), req.GetValue(), opts)
	s.recordKV("set_with_expiry", err)
	if err != nil {
		return &pluginv1.KVSetWithExpiryResponse{Error: s.kvError("KVSetWithExpiry", err)}, nil
	}
	return &pluginv1.KVSetWithExpiryResponse{}, nil
}

func (s *Server) KVCompareAndSet(ctx context.Context, req *pluginv1.KVCompareAndSetRequest) (*pluginv1.KVCompareAndSetResponse, error) {
	opts := kv.SetOptions{Atomic: true, OldValue: req.GetOldValue()}
	succeeded, err := s.store.Set(ctx, s.pluginID, req.GetKey(), req.GetNewValue(), opts)
	s.recordKV("compare_and_set", err)
	if err != nil {
		return &pluginv1.KVCompareAndSetResponse{Error: s.kvError("KVCompareAndSet", err)}, nil
	}
	return &pluginv1.KVCompareAndSetResponse{Succeeded: succeeded}, nil
}

func (s *Server) KVCompareAndDelete(ctx context.Context, req *pluginv1.KVCompareAndDeleteRequest) (*pluginv1.KVCompareAndDeleteResponse, error) {
	opts := kv.SetOptions{Atomic: true, OldValue: req.GetOldValue()}
	succeeded, err := s.store.Set(ctx, s.pluginID, req.GetKey(), nil, opts)
	s.recordKV("compare_and_delete", err)
	if err != nil {
		return &pluginv1.KVCompareAndDeleteResponse{Error: s.kvError("KVCompareAndDelete", err)}, nil
	}
	return &pluginv1.KVCompareAndDeleteResponse{Succeeded: succeeded}, nil
}

func (s *Server) KVSetWithOptions(ctx context.Context, req *pluginv1.KVSetWithOptionsRequest) (*pluginv1.KVSetWithOptionsResponse, error) {
	opts := kv.SetOptions{
		Atomic:   req.GetAtomic(),
		OldValue: req.GetOldValue(),
		ExpireAt: s.expireAt(req.GetExpireInSeconds()),
	}
	succeeded, err := s.store.Set(ctx, s.pluginID, req.GetKey(), req.GetValue(), opts)
	s.recordKV("set_with_options", err)
	if err != nil {
		return &pluginv1.KVSetWithOptionsResponse{Error: s.kvError("KVSetWithOptions", err)}, nil
	}
	return &pluginv1.KVSetWithOptionsResponse{Succeeded: succeeded}, nil
}

func (s *Server) GetServerVersion(context.Context, *pluginv1.GetServerVersionRequest) (*pluginv1.GetServerVersionResponse, error) {
	return &pluginv1.GetServerVersionResponse{Version: s.world.Version()}, nil
}

func (s *Server) GetUser(_ context.Context, req *pluginv1.GetUserRequest) (*pluginv1.GetUserResponse, error) {
	user, err := s.world.User(req.GetUserId())
	if err != nil {
		return &pluginv1.GetUserResponse{Error: s.worldError("GetUser", err)}, nil
	}
	return &pluginv1.GetUserResponse{User: user}, nil
}

func (s *Server) GetUserByUsername(_ context.Context, req *pluginv1.GetUserByUsernameRequest) (*pluginv1.GetUserByUsernameResponse, error) {
	user, err := s.world.UserByUsername(req.GetUsername())
	if err != nil {
		return &pluginv1.GetUserByUsernameResponse{Error: s.worldError("GetUserByUsername", err)}, nil
	}
	return &pluginv1.GetUserByUsernameResponse{User: user}, nil
}

func (s *Server) GetChannel(_ context.Context, req *pluginv1.GetChannelRequest) (*pluginv1.GetChannelResponse, error) {
	channel, err := s.world.Channel(req.GetChannelId())
	if err != nil {
		return &pluginv1.GetChannelResponse{Error: s.worldError("GetChannel", err)}, nil
	}
	return &pluginv1.GetChannelResponse{Channel: channel}, nil
}

func (s *Server) GetTeam(_ context.Context, req *pluginv1.GetTeamRequest) (*pluginv1.GetTeamResponse, error) {
	team, err := s.world.Team(req.GetTeamId())
	if err != nil {
		return &pluginv1.GetTeamResponse{Error: s.worldError("GetTeam", err)}, nil
	}
	return &pluginv1.GetTeamResponse{Team: team}, nil
}

func (s *Server) CreatePost(_ context.Context, req *pluginv1.CreatePostRequest) (*pluginv1.CreatePostResponse, error) {
	post, err := s.world.CreatePost(req.GetPost())
	if err != nil {
		return &pluginv1.CreatePostResponse{Error: s.worldError("CreatePost", err)}, nil
	}
	return &pluginv1.CreatePostResponse{Post: post}, nil
}

func (s *Server) GetPost(_ context.Context, req *pluginv1.GetPostRequest) (*pluginv1.GetPostResponse, error) {
	post, err := s.world.Post(req.GetPostId())
	if err != nil {
		return &pluginv1.GetPostResponse{Error: s.worldError("GetPost", err)}, nil
	}
	return &pluginv1.GetPostResponse{Post: post}, nil
}

func (s *Server) DeletePost(_ context.Context, req *pluginv1.DeletePostRequest) (*pluginv1.DeletePostResponse, error) {
	if err := s.world.DeletePost(req.GetPostId()); err != nil {
		return &pluginv1.DeletePostResponse{Error: s.worldError("DeletePost", err)}, nil
	}
	return &pluginv1.DeletePostResponse{}, nil
}

func (s *Server) SendEphemeralPost(_ context.Context, req *pluginv1.SendEphemeralPostRequest) (*pluginv1.SendEphemeralPostResponse, error) {
	if req.GetPost() == nil {
		return &pluginv1.SendEphemeralPostResponse{
			Error: appError("plugin_api.invalid_request", "ephemeral post requires a post", http.StatusBadRequest, "SendEphemeralPost"),
		}, nil
	}
	sent := s.world.SendEphemeralPost(req.GetUserId(), req.GetPost())
	return &pluginv1.SendEphemeralPostResponse{Post: sent}, nil
}

func (s *Server) GetFileInfo(_ context.Context, req *pluginv1.GetFileInfoRequest) (*pluginv1.GetFileInfoResponse, error) {
	info, err := s.world.FileInfo(req.GetFileId())
	if err != nil {
		return &pluginv1.GetFileInfoResponse{Error: s.worldError("GetFileInfo", err)}, nil
	}
	return &pluginv1.GetFileInfoResponse{FileInfo: info}, nil
}

func (s *Server) PublishWebSocketEvent(_ context.Context, req *pluginv1.PublishWebSocketEventRequest) (*pluginv1.PublishWebSocketEventResponse, error) {
	s.world.PublishWebSocketEvent(s.pluginID, req.GetEvent(), req.GetPayloadJson(), req.GetBroadcast())
	return &pluginv1.PublishWebSocketEventResponse{}, nil
}

func (s *Server) PublishPluginClusterEvent(_ context.Context, req *pluginv1.PublishPluginClusterEventRequest) (*pluginv1.PublishPluginClusterEventResponse, error) {
	if err := s.world.PublishClusterEvent(s.pluginID, req.GetEvent(), req.GetSendType()); err != nil {
		return &pluginv1.PublishPluginClusterEventResponse{Error: s.worldError("PublishPluginClusterEvent", err)}, nil
	}
	return &pluginv1.PublishPluginClusterEventResponse{}, nil
}

func (s *Server) OpenInteractiveDialog(_ context.Context, req *pluginv1.OpenInteractiveDialogRequest) (*pluginv1.OpenInteractiveDialogResponse, error) {
	if err := s.world.OpenInteractiveDialog(req.GetDialogJson()); err != nil {
		return &pluginv1.OpenInteractiveDialogResponse{Error: s.worldError("OpenInteractiveDialog", err)}, nil
	}
	return &pluginv1.OpenInteractiveDialogResponse{}, nil
}

func (s *Server) SendMail(_ context.Context, req *pluginv1.SendMailRequest) (*pluginv1.SendMailResponse, error) {
	if err := s.world.SendMail(req.GetTo(), req.GetSubject(), req.GetHtmlBody()); err != nil {
		return &pluginv1.SendMailResponse{Error: s.worldError("SendMail", err)}, nil
	}
	return &pluginv1.SendMailResponse{}, nil
}

func (s *Server) SendPushNotification(_ context.Context, req *pluginv1.SendPushNotificationRequest) (*pluginv1.SendPushNotificationResponse, error) {
	if err := s.world.SendPushNotification(req.GetNotification(), req.GetUserId()); err != nil {
		return &pluginv1.SendPushNotificationResponse{Error: s.worldError("SendPushNotification", err)}, nil
	}
	return &pluginv1.SendPushNotificationResponse{}, nil
}

func (s *Server) GetEmoji(_ context.Context, req *pluginv1.GetEmojiRequest) (*pluginv1.GetEmojiResponse, error) {
	emoji, err := s.world.Emoji(req.GetEmojiId())
	if err != nil {
		return &pluginv1.GetEmojiResponse{Error: s.worldError("GetEmoji", err)}, nil
	}
	return &pluginv1.GetEmojiResponse{Emoji: emoji}, nil
}

func (s *Server) GetEmojiByName(_ context.Context, req *pluginv1.GetEmojiByNameRequest) (*pluginv1.GetEmojiByNameResponse, error) {
	emoji, err := s.world.EmojiByName(req.GetName())
	if err != nil {
		return &pluginv1.GetEmojiByNameResponse{Error: s.worldError("GetEmojiByName", err)}, nil
	}
	return &pluginv1.GetEmojiByNameResponse{Emoji: emoji}, nil
}

func (s *Server) CreateUploadSession(_ context.Context, req *pluginv1.CreateUploadSessionRequest) (*pluginv1.CreateUploadSessionResponse, error) {
	session, err := s.world.CreateUploadSession(req.GetSession())
	if err != nil {
		return &pluginv1.CreateUploadSessionResponse{Error: s.worldError("CreateUploadSession", err)}, nil
	}
	return &pluginv1.CreateUploadSessionResponse{Session: session}, nil
}

func (s *Server) UploadData(_ context.Context, req *pluginv1.UploadDataRequest) (*pluginv1.UploadDataResponse, error) {
	info, err := s.world.UploadData(req.GetSessionId(), req.GetData())
	if err != nil {
		return &pluginv1.UploadDataResponse{Error: s.worldError("UploadData", err)}, nil
	}
	return &pluginv1.UploadDataResponse{FileInfo: info}, nil
}

func (s *Server) GetUploadSession(_ context.Context, req *pluginv1.GetUploadSessionRequest) (*pluginv1.GetUploadSessionResponse, error) {
	session, err := s.world.UploadSession(req.GetUploadId())
	if err != nil {
		return &pluginv1.GetUploadSessionResponse{Error: s.worldError("GetUploadSession", err)}, nil
	}
	return &pluginv1.GetUploadSessionResponse{Session: session}, nil
}

func (s *Server) LogAuditRec(_ context.Context, req *pluginv1.LogAuditRecRequest) (*pluginv1.LogAuditRecResponse, error) {
	s.world.LogAuditRec(s.pluginID, req.GetRecord(), req.GetLevel())
	return &pluginv1.LogAuditRecResponse{}, nil
}
