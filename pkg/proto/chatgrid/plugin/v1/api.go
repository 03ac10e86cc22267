// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginv1

type KVSetRequest struct {
	Key   string `json:"key,omitempty"`
	Value []byte `json:"value,omitempty"`
}

func (x *KVSetRequest) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

func (x *KVSetRequest) GetValue() []byte {
	if x == nil {
		return nil
	}
	return x.Value
}

type KVSetResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *KVSetResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVGetRequest struct {
	Key string `json:"key,omitempty"`
}

func (x *KVGetRequest) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

type KVGetResponse struct {
	Value   []byte    `json:"value,omitempty"`
	Present bool      `json:"present,omitempty"`
	Error   *AppError `json:"error,omitempty"`
}

func (x *KVGetResponse) GetValue() []byte {
	if x == nil {
		return nil
	}
	return x.Value
}

func (x *KVGetResponse) GetPresent() bool {
	if x == nil {
		return false
	}
	return x.Present
}

func (x *KVGetResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVDeleteRequest struct {
	Key string `json:"key,omitempty"`
}

func (x *KVDeleteRequest) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

type KVDeleteResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *KVDeleteResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVDeleteAllRequest struct {
}

type KVDeleteAllResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *KVDeleteAllResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVListRequest struct {
	Page    int32 `json:"page,omitempty"`
	PerPage int32 `json:"per_page,omitempty"`
}

func (x *KVListRequest) GetPage() int32 {
	if x == nil {
		return 0
	}
	return x.Page
}

func (x *KVListRequest) GetPerPage() int32 {
	if x == nil {
		return 0
	}
	return x.PerPage
}

type KVListResponse struct {
	Keys  []string  `json:"keys,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *KVListResponse) GetKeys() []string {
	if x == nil {
		return nil
	}
	return x.Keys
}

func (x *KVListResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVSetWithExpiryRequest struct {
	Key             string `json:"key,omitempty"`
	Value           []byte `json:"value,omitempty"`
	ExpireInSeconds int64  `json:"expire_in_seconds,omitempty"`
}

func (x *KVSetWithExpiryRequest) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

func (x *KVSetWithExpiryRequest) GetValue() []byte {
	if x == nil {
		return nil
	}
	return x.Value
}

func (x *KVSetWithExpiryRequest) GetExpireInSeconds() int64 {
	if x == nil {
		return 0
	}
	return x.ExpireInSeconds
}

type KVSetWithExpiryResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *KVSetWithExpiryResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVCompareAndSetRequest struct {
	Key      string `json:"key,omitempty"`
	OldValue []byte `json:"old_value,omitempty"`
	NewValue []byte `json:"new_value,omitempty"`
}

func (x *KVCompareAndSetRequest) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

func (x *KVCompareAndSetRequest) GetOldValue() []byte {
	if x == nil {
		return nil
	}
	return x.OldValue
}

func (x *KVCompareAndSetRequest) GetNewValue() []byte {
	if x == nil {
		return nil
	}
	return x.NewValue
}

type KVCompareAndSetResponse struct {
	Succeeded bool      `json:"succeeded,omitempty"`
	Error     *AppError `json:"error,omitempty"`
}

func (x *KVCompareAndSetResponse) GetSucceeded() bool {
	if x == nil {
		return false
	}
	return x.Succeeded
}

func (x *KVCompareAndSetResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVCompareAndDeleteRequest struct {
	Key      string `json:"key,omitempty"`
	OldValue []byte `json:"old_value,omitempty"`
}

func (x *KVCompareAndDeleteRequest) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

func (x *KVCompareAndDeleteRequest) GetOldValue() []byte {
	if x == nil {
		return nil
	}
	return x.OldValue
}

type KVCompareAndDeleteResponse struct {
	Succeeded bool      `json:"succeeded,omitempty"`
	Error     *AppError `json:"error,omitempty"`
}

func (x *KVCompareAndDeleteResponse) GetSucceeded() bool {
	if x == nil {
		return false
	}
	return x.Succeeded
}

func (x *KVCompareAndDeleteResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type KVSetWithOptionsRequest struct {
	Key             string `json:"key,omitempty"`
	Value           []byte `json:"value,omitempty"`
	Atomic          bool   `json:"atomic,omitempty"`
	OldValue        []byte `json:"old_value,omitempty"`
	ExpireInSeconds int64  `json:"expire_in_seconds,omitempty"`
}

func (x *KVSetWithOptionsRequest) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

func (x *KVSetWithOptionsRequest) GetValue() []byte {
	if x == nil {
		return nil
	}
	return x.Value
}

func (x *KVSetWithOptionsRequest) GetAtomic() bool {
	if x == nil {
		return false
	}
	return x.Atomic
}

func (x *KVSetWithOptionsRequest) GetOldValue() []byte {
	if x == nil {
		return nil
	}
	return x.OldValue
}

func (x *KVSetWithOptionsRequest) GetExpireInSeconds() int64 {
	if x == nil {
		return 0
	}
	return x.ExpireInSeconds
}

type KVSetWithOptionsResponse struct {
	Succeeded bool      `json:"succeeded,omitempty"`
	Error     *AppError `json:"error,omitempty"`
}

func (x *KVSetWithOptionsResponse) GetSucceeded() bool {
	if x == nil {
		return false
	}
	return x.Succeeded
}

func (x *KVSetWithOptionsResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetServerVersionRequest struct {
}

type GetServerVersionResponse struct {
	Version string    `json:"version,omitempty"`
	Error   *AppError `json:"error,omitempty"`
}

func (x *GetServerVersionResponse) GetVersion() string {
	if x == nil {
		return ""
	}
	return x.Version
}

func (x *GetServerVersionResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetUserRequest struct {
	UserId string `json:"user_id,omitempty"`
}

func (x *GetUserRequest) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

type GetUserResponse struct {
	User  *User     `json:"user,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *GetUserResponse) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

func (x *GetUserResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetUserByUsernameRequest struct {
	Username string `json:"username,omitempty"`
}

func (x *GetUserByUsernameRequest) GetUsername() string {
	if x == nil {
		return ""
	}
	return x.Username
}

type GetUserByUsernameResponse struct {
	User  *User     `json:"user,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *GetUserByUsernameResponse) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

func (x *GetUserByUsernameResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetChannelRequest struct {
	ChannelId string `json:"channel_id,omitempty"`
}

func (x *GetChannelRequest) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

type GetChannelResponse struct {
	Channel *Channel  `json:"channel,omitempty"`
	Error   *AppError `json:"error,omitempty"`
}

func (x *GetChannelResponse) GetChannel() *Channel {
	if x == nil {
		return nil
	}
	return x.Channel
}

func (x *GetChannelResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetTeamRequest struct {
	TeamId string `json:"team_id,omitempty"`
}

func (x *GetTeamRequest) GetTeamId() string {
	if x == nil {
		return ""
	}
	return x.TeamId
}

type GetTeamResponse struct {
	Team  *Team     `json:"team,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *GetTeamResponse) GetTeam() *Team {
	if x == nil {
		return nil
	}
	return x.Team
}

func (x *GetTeamResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type CreatePostRequest struct {
	Post *Post `json:"post,omitempty"`
}

func (x *CreatePostRequest) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

type CreatePostResponse struct {
	Post  *Post     `json:"post,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *CreatePostResponse) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

func (x *CreatePostResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetPostRequest struct {
	PostId string `json:"post_id,omitempty"`
}

func (x *GetPostRequest) GetPostId() string {
	if x == nil {
		return ""
	}
	return x.PostId
}

type GetPostResponse struct {
	Post  *Post     `json:"post,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *GetPostResponse) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

func (x *GetPostResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type DeletePostRequest struct {
	PostId string `json:"post_id,omitempty"`
}

func (x *DeletePostRequest) GetPostId() string {
	if x == nil {
		return ""
	}
	return x.PostId
}

type DeletePostResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *DeletePostResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type SendEphemeralPostRequest struct {
	UserId string `json:"user_id,omitempty"`
	Post   *Post  `json:"post,omitempty"`
}

func (x *SendEphemeralPostRequest) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *SendEphemeralPostRequest) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

type SendEphemeralPostResponse struct {
	Post  *Post     `json:"post,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *SendEphemeralPostResponse) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

func (x *SendEphemeralPostResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetFileInfoRequest struct {
	FileId string `json:"file_id,omitempty"`
}

func (x *GetFileInfoRequest) GetFileId() string {
	if x == nil {
		return ""
	}
	return x.FileId
}

type GetFileInfoResponse struct {
	FileInfo *FileInfo `json:"file_info,omitempty"`
	Error    *AppError `json:"error,omitempty"`
}

func (x *GetFileInfoResponse) GetFileInfo() *FileInfo {
	if x == nil {
		return nil
	}
	return x.FileInfo
}

func (x *GetFileInfoResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type PublishWebSocketEventRequest struct {
	Event       string              `json:"event,omitempty"`
	PayloadJson []byte              `json:"payload_json,omitempty"`
	Broadcast   *WebsocketBroadcast `json:"broadcast,omitempty"`
}

func (x *PublishWebSocketEventRequest) GetEvent() string {
	if x == nil {
		return ""
	}
	return x.Event
}

func (x *PublishWebSocketEventRequest) GetPayloadJson() []byte {
	if x == nil {
		return nil
	}
	return x.PayloadJson
}

func (x *PublishWebSocketEventRequest) GetBroadcast() *WebsocketBroadcast {
	if x == nil {
		return nil
	}
	return x.Broadcast
}

type PublishWebSocketEventResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *PublishWebSocketEventResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type PublishPluginClusterEventRequest struct {
	Event    *ClusterEvent `json:"event,omitempty"`
	SendType string        `json:"send_type,omitempty"`
}

func (x *PublishPluginClusterEventRequest) GetEvent() *ClusterEvent {
	if x == nil {
		return nil
	}
	return x.Event
}

func (x *PublishPluginClusterEventRequest) GetSendType() string {
	if x == nil {
		return ""
	}
	return x.SendType
}

type PublishPluginClusterEventResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *PublishPluginClusterEventResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OpenInteractiveDialogRequest struct {
	DialogJson []byte `json:"dialog_json,omitempty"`
}

func (x *OpenInteractiveDialogRequest) GetDialogJson() []byte {
	if x == nil {
		return nil
	}
	return x.DialogJson
}

type OpenInteractiveDialogResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OpenInteractiveDialogResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type SendMailRequest struct {
	To       string `json:"to,omitempty"`
	Subject  string `json:"subject,omitempty"`
	HtmlBody string `json:"html_body,omitempty"`
}

func (x *SendMailRequest) GetTo() string {
	if x == nil {
		return ""
	}
	return x.To
}

func (x *SendMailRequest) GetSubject() string {
	if x == nil {
		return ""
	}
	return x.Subject
}

func (x *SendMailRequest) GetHtmlBody() string {
	if x == nil {
		return ""
	}
	return x.HtmlBody
}

type SendMailResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *SendMailResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type SendPushNotificationRequest struct {
	Notification *PushNotification `json:"notification,omitempty"`
	UserId       string            `json:"user_id,omitempty"`
}

func (x *SendPushNotificationRequest) GetNotification() *PushNotification {
	if x == nil {
		return nil
	}
	return x.Notification
}

func (x *SendPushNotificationRequest) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

type SendPushNotificationResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *SendPushNotificationResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetEmojiRequest struct {
	EmojiId string `json:"emoji_id,omitempty"`
}

func (x *GetEmojiRequest) GetEmojiId() string {
	if x == nil {
		return ""
	}
	return x.EmojiId
}

type GetEmojiResponse struct {
	Emoji *Emoji    `json:"emoji,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *GetEmojiResponse) GetEmoji() *Emoji {
	if x == nil {
		return nil
	}
	return x.Emoji
}

func (x *GetEmojiResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetEmojiByNameRequest struct {
	Name string `json:"name,omitempty"`
}

func (x *GetEmojiByNameRequest) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

type GetEmojiByNameResponse struct {
	Emoji *Emoji    `json:"emoji,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *GetEmojiByNameResponse) GetEmoji() *Emoji {
	if x == nil {
		return nil
	}
	return x.Emoji
}

func (x *GetEmojiByNameResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type CreateUploadSessionRequest struct {
	Session *UploadSession `json:"session,omitempty"`
}

func (x *CreateUploadSessionRequest) GetSession() *UploadSession {
	if x == nil {
		return nil
	}
	return x.Session
}

type CreateUploadSessionResponse struct {
	Session *UploadSession `json:"session,omitempty"`
	Error   *AppError      `json:"error,omitempty"`
}

func (x *CreateUploadSessionResponse) GetSession() *UploadSession {
	if x == nil {
		return nil
	}
	return x.Session
}

func (x *CreateUploadSessionResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type UploadDataRequest struct {
	SessionId string `json:"session_id,omitempty"`
	Data      []byte `json:"data,omitempty"`
}

func (x *UploadDataRequest) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

func (x *UploadDataRequest) GetData() []byte {
	if x == nil {
		return nil
	}
	return x.Data
}

type UploadDataResponse struct {
	FileInfo *FileInfo `json:"file_info,omitempty"`
	Error    *AppError `json:"error,omitempty"`
}

func (x *UploadDataResponse) GetFileInfo() *FileInfo {
	if x == nil {
		return nil
	}
	return x.FileInfo
}

func (x *UploadDataResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GetUploadSessionRequest struct {
	UploadId string `json:"upload_id,omitempty"`
}

func (x *GetUploadSessionRequest) GetUploadId() string {
	if x == nil {
		return ""
	}
	return x.UploadId
}

type GetUploadSessionResponse struct {
	Session *UploadSession `json:"session,omitempty"`
	Error   *AppError      `json:"error,omitempty"`
}

func (x *GetUploadSessionResponse) GetSession() *UploadSession {
	if x == nil {
		return nil
	}
	return x.Session
}

func (x *GetUploadSessionResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type LogAuditRecRequest struct {
	Record *AuditRecord `json:"record,omitempty"`
	Level  string       `json:"level,omitempty"`
}

func (x *LogAuditRecRequest) GetRecord() *AuditRecord {
	if x == nil {
		return nil
	}
	return x.Record
}

func (x *LogAuditRecRequest) GetLevel() string {
	if x == nil {
		return ""
	}
	return x.Level
}

type LogAuditRecResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *LogAuditRecResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}
