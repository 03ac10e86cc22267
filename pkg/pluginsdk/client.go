// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"context"
	"log/slog"
	"sync"

	"google.golang.org/grpc"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// APIClient is the plugin's handle on the host API. It is safe for
// concurrent use from any number of hook handlers; the connection is
// established once during start-up and survives until Close.
type APIClient struct {
	log *slog.Logger

	mu   sync.RWMutex
	conn *grpc.ClientConn
	rpc  pluginv1.PluginAPIClient
}

// NewAPIClient returns a disconnected client. Every call fails with
// ErrNotConnected until Connect succeeds.
func NewAPIClient(logger *slog.Logger) *APIClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIClient{log: logger}
}

// Connect dials the host API endpoint. Calling Connect on an already
// connected client replaces the connection and closes the old one.
func (c *APIClient) Connect(address string, opts TransportOptions) error {
	conn, err := Dial(address, opts)
	if err != nil {
		return newTransportUnavailable(err)
	}

	c.mu.Lock()
	old := c.conn
	c.conn = conn
	c.rpc = pluginv1.NewPluginAPIClient(conn)
	c.mu.Unlock()

	if old != nil {
		if cerr := old.Close(); cerr != nil {
			c.log.Warn("closing previous host API connection", slog.Any("error", cerr))
		}
	}
	c.log.Debug("connected to host API", slog.String("address", address))
	return nil
}

// Close tears down the connection. The client returns to the disconnected
// state and may be reconnected later.
func (c *APIClient) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.rpc = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Connected reports whether the client currently holds a connection.
func (c *APIClient) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rpc != nil
}

func (c *APIClient) api() (pluginv1.PluginAPIClient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.rpc == nil {
		return nil, ErrNotConnected
	}
	return c.rpc, nil
}

// GetServerVersion returns the host's semantic version string.
func (c *APIClient) GetServerVersion(ctx context.Context) (string, error) {
	api, err := c.api()
	if err != nil {
		return "", err
	}
	resp, err := api.GetServerVersion(ctx, &pluginv1.GetServerVersionRequest{})
	if err != nil {
		return "", fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return "", err
	}
	return resp.GetVersion(), nil
}

// GetUser fetches a user by identifier.
func (c *APIClient) GetUser(ctx context.Context, userID string) (*pluginv1.User, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetUser(ctx, &pluginv1.GetUserRequest{UserId: userID})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetUser(), nil
}

// GetUserByUsername fetches a user by login name.
func (c *APIClient) GetUserByUsername(ctx context.Context, username string) (*pluginv1.User, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetUserByUsername(ctx, &pluginv1.GetUserByUsernameRequest{Username: username})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetUser(), nil
}

// GetChannel fetches a channel by identifier.
func (c *APIClient) GetChannel(ctx context.Context, channelID string) (*pluginv1.Channel, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetChannel(ctx, &pluginv1.GetChannelRequest{ChannelId: channelID})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetChannel(), nil
}

// GetTeam fetches a team by identifier.
func (c *APIClient) GetTeam(ctx context.Context, teamID string) (*pluginv1.Team, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetTeam(ctx, &pluginv1.GetTeamRequest{TeamId: teamID})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetTeam(), nil
}

// CreatePost publishes a post and returns the stored version with its
// host-assigned identifiers filled in.
func (c *APIClient) CreatePost(ctx context.Context, post *pluginv1.Post) (*pluginv1.Post, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.CreatePost(ctx, &pluginv1.CreatePostRequest{Post: post})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetPost(), nil
}

// GetPost fetches a post by identifier.
func (c *APIClient) GetPost(ctx context.Context, postID string) (*pluginv1.Post, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetPost(ctx, &pluginv1.GetPostRequest{PostId: postID})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetPost(), nil
}

// DeletePost removes a post.
func (c *APIClient) DeletePost(ctx context.Context, postID string) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.DeletePost(ctx, &pluginv1.DeletePostRequest{PostId: postID})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// SendEphemeralPost shows a post to a single user without persisting it.
func (c *APIClient) SendEphemeralPost(ctx context.Context, userID string, post *pluginv1.Post) (*pluginv1.Post, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.SendEphemeralPost(ctx, &pluginv1.SendEphemeralPostRequest{UserId: userID, Post: post})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetPost(), nil
}

// GetFileInfo fetches metadata for an uploaded file.
func (c *APIClient) GetFileInfo(ctx context.Context, fileID string) (*pluginv1.FileInfo, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetFileInfo(ctx, &pluginv1.GetFileInfoRequest{FileId: fileID})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetFileInfo(), nil
}

// PublishWebSocketEvent broadcasts a custom event to connected clients. The
// payload must already be JSON-encoded.
func (c *APIClient) PublishWebSocketEvent(ctx context.Context, event string, payloadJSON []byte, broadcast *pluginv1.WebsocketBroadcast) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.PublishWebSocketEvent(ctx, &pluginv1.PublishWebSocketEventRequest{
		Event:       event,
		PayloadJson: payloadJSON,
		Broadcast:   broadcast,
	})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// PublishPluginClusterEvent relays an event to this plugin's instances on
// other cluster nodes.
func (c *APIClient) PublishPluginClusterEvent(ctx context.Context, event *pluginv1.ClusterEvent, sendType string) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.PublishPluginClusterEvent(ctx, &pluginv1.PublishPluginClusterEventRequest{
		Event:    event,
		SendType: sendType,
	})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// OpenInteractiveDialog pushes a dialog definition, given as JSON, to a
// user's client.
func (c *APIClient) OpenInteractiveDialog(ctx context.Context, dialogJSON []byte) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.OpenInteractiveDialog(ctx, &pluginv1.OpenInteractiveDialogRequest{DialogJson: dialogJSON})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// SendMail sends an HTML email through the host's mail pipeline.
func (c *APIClient) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.SendMail(ctx, &pluginv1.SendMailRequest{To: to, Subject: subject, HtmlBody: htmlBody})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// SendPushNotification delivers a push notification to a user's devices.
func (c *APIClient) SendPushNotification(ctx context.Context, notification *pluginv1.PushNotification, userID string) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.SendPushNotification(ctx, &pluginv1.SendPushNotificationRequest{
		Notification: notification,
		UserId:       userID,
	})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// GetEmoji fetches a custom emoji by identifier.
func (c *APIClient) GetEmoji(ctx context.Context, emojiID string) (*pluginv1.Emoji, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetEmoji(ctx, &pluginv1.GetEmojiRequest{EmojiId: emojiID})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetEmoji(), nil
}

// GetEmojiByName fetches a custom emoji by name.
func (c *APIClient) GetEmojiByName(ctx context.Context, name string) (*pluginv1.Emoji, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetEmojiByName(ctx, &pluginv1.GetEmojiByNameRequest{Name: name})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetEmoji(), nil
}

// CreateUploadSession starts a resumable upload.
func (c *APIClient) CreateUploadSession(ctx context.Context, session *pluginv1.UploadSession) (*pluginv1.UploadSession, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.CreateUploadSession(ctx, &pluginv1.CreateUploadSessionRequest{Session: session})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetSession(), nil
}

// UploadData appends data to an upload session. The returned FileInfo is
// non-nil once the final chunk lands.
func (c *APIClient) UploadData(ctx context.Context, sessionID string, data []byte) (*pluginv1.FileInfo, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.UploadData(ctx, &pluginv1.UploadDataRequest{SessionId: sessionID, Data: data})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetFileInfo(), nil
}

// GetUploadSession fetches the state of a resumable upload.
func (c *APIClient) GetUploadSession(ctx context.Context, uploadID string) (*pluginv1.UploadSession, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.GetUploadSession(ctx, &pluginv1.GetUploadSessionRequest{UploadId: uploadID})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetSession(), nil
}

// LogAuditRec writes an audit record through the host's audit log.
func (c *APIClient) LogAuditRec(ctx context.Context, record *pluginv1.AuditRecord, level string) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.LogAuditRec(ctx, &pluginv1.LogAuditRecRequest{Record: record, Level: level})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}
