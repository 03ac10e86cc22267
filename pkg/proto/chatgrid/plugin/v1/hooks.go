// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginv1

type ImplementedRequest struct {
}

type ImplementedResponse struct {
	Hooks []string  `json:"hooks,omitempty"`
	Error *AppError `json:"error,omitempty"`
}

func (x *ImplementedResponse) GetHooks() []string {
	if x == nil {
		return nil
	}
	return x.Hooks
}

func (x *ImplementedResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnActivateRequest struct {
}

type OnActivateResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OnActivateResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnDeactivateRequest struct {
}

type OnDeactivateResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OnDeactivateResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnConfigurationChangeRequest struct {
}

type OnConfigurationChangeResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OnConfigurationChangeResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnInstallRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Event         *InstallEvent  `json:"event,omitempty"`
}

func (x *OnInstallRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *OnInstallRequest) GetEvent() *InstallEvent {
	if x == nil {
		return nil
	}
	return x.Event
}

type OnInstallResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OnInstallResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type ConfigurationWillBeSavedRequest struct {
	ConfigJson []byte `json:"config_json,omitempty"`
}

func (x *ConfigurationWillBeSavedRequest) GetConfigJson() []byte {
	if x == nil {
		return nil
	}
	return x.ConfigJson
}

type ConfigurationWillBeSavedResponse struct {
	ConfigJson []byte    `json:"config_json,omitempty"`
	Error      *AppError `json:"error,omitempty"`
}

func (x *ConfigurationWillBeSavedResponse) GetConfigJson() []byte {
	if x == nil {
		return nil
	}
	return x.ConfigJson
}

func (x *ConfigurationWillBeSavedResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnSendDailyTelemetryRequest struct {
}

type OnSendDailyTelemetryResponse struct {
}

type RunDataRetentionRequest struct {
	NowTime   int64 `json:"now_time,omitempty"`
	BatchSize int64 `json:"batch_size,omitempty"`
}

func (x *RunDataRetentionRequest) GetNowTime() int64 {
	if x == nil {
		return 0
	}
	return x.NowTime
}

func (x *RunDataRetentionRequest) GetBatchSize() int64 {
	if x == nil {
		return 0
	}
	return x.BatchSize
}

type RunDataRetentionResponse struct {
	DeletedCount int64     `json:"deleted_count,omitempty"`
	Error        *AppError `json:"error,omitempty"`
}

func (x *RunDataRetentionResponse) GetDeletedCount() int64 {
	if x == nil {
		return 0
	}
	return x.DeletedCount
}

func (x *RunDataRetentionResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnCloudLimitsUpdatedRequest struct {
	Limits *ProductLimits `json:"limits,omitempty"`
}

func (x *OnCloudLimitsUpdatedRequest) GetLimits() *ProductLimits {
	if x == nil {
		return nil
	}
	return x.Limits
}

type OnCloudLimitsUpdatedResponse struct {
}

type MessageWillBePostedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Post          *Post          `json:"post,omitempty"`
}

func (x *MessageWillBePostedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *MessageWillBePostedRequest) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

type MessageWillBePostedResponse struct {
	ModifiedPost    *Post  `json:"modified_post,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

func (x *MessageWillBePostedResponse) GetModifiedPost() *Post {
	if x == nil {
		return nil
	}
	return x.ModifiedPost
}

func (x *MessageWillBePostedResponse) GetRejectionReason() string {
	if x == nil {
		return ""
	}
	return x.RejectionReason
}

type MessageWillBeUpdatedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	NewPost       *Post          `json:"new_post,omitempty"`
	OldPost       *Post          `json:"old_post,omitempty"`
}

func (x *MessageWillBeUpdatedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *MessageWillBeUpdatedRequest) GetNewPost() *Post {
	if x == nil {
		return nil
	}
	return x.NewPost
}

func (x *MessageWillBeUpdatedRequest) GetOldPost() *Post {
	if x == nil {
		return nil
	}
	return x.OldPost
}

type MessageWillBeUpdatedResponse struct {
	ModifiedPost    *Post  `json:"modified_post,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

func (x *MessageWillBeUpdatedResponse) GetModifiedPost() *Post {
	if x == nil {
		return nil
	}
	return x.ModifiedPost
}

func (x *MessageWillBeUpdatedResponse) GetRejectionReason() string {
	if x == nil {
		return ""
	}
	return x.RejectionReason
}

type MessageHasBeenPostedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Post          *Post          `json:"post,omitempty"`
}

func (x *MessageHasBeenPostedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *MessageHasBeenPostedRequest) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

type MessageHasBeenPostedResponse struct {
}

type MessageHasBeenUpdatedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	NewPost       *Post          `json:"new_post,omitempty"`
	OldPost       *Post          `json:"old_post,omitempty"`
}

func (x *MessageHasBeenUpdatedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *MessageHasBeenUpdatedRequest) GetNewPost() *Post {
	if x == nil {
		return nil
	}
	return x.NewPost
}

func (x *MessageHasBeenUpdatedRequest) GetOldPost() *Post {
	if x == nil {
		return nil
	}
	return x.OldPost
}

type MessageHasBeenUpdatedResponse struct {
}

type MessageHasBeenDeletedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Post          *Post          `json:"post,omitempty"`
}

func (x *MessageHasBeenDeletedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *MessageHasBeenDeletedRequest) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

type MessageHasBeenDeletedResponse struct {
}

type MessagesWillBeConsumedRequest struct {
	Posts []*Post `json:"posts,omitempty"`
}

func (x *MessagesWillBeConsumedRequest) GetPosts() []*Post {
	if x == nil {
		return nil
	}
	return x.Posts
}

type MessagesWillBeConsumedResponse struct {
	Posts []*Post `json:"posts,omitempty"`
}

func (x *MessagesWillBeConsumedResponse) GetPosts() []*Post {
	if x == nil {
		return nil
	}
	return x.Posts
}

type ReactionHasBeenAddedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Reaction      *Reaction      `json:"reaction,omitempty"`
}

func (x *ReactionHasBeenAddedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *ReactionHasBeenAddedRequest) GetReaction() *Reaction {
	if x == nil {
		return nil
	}
	return x.Reaction
}

type ReactionHasBeenAddedResponse struct {
}

type ReactionHasBeenRemovedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Reaction      *Reaction      `json:"reaction,omitempty"`
}

func (x *ReactionHasBeenRemovedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *ReactionHasBeenRemovedRequest) GetReaction() *Reaction {
	if x == nil {
		return nil
	}
	return x.Reaction
}

type ReactionHasBeenRemovedResponse struct {
}

type NotificationWillBePushedRequest struct {
	Notification *PushNotification `json:"notification,omitempty"`
	UserId       string            `json:"user_id,omitempty"`
}

func (x *NotificationWillBePushedRequest) GetNotification() *PushNotification {
	if x == nil {
		return nil
	}
	return x.Notification
}

func (x *NotificationWillBePushedRequest) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

type NotificationWillBePushedResponse struct {
	ModifiedNotification *PushNotification `json:"modified_notification,omitempty"`
	RejectionReason      string            `json:"rejection_reason,omitempty"`
}

func (x *NotificationWillBePushedResponse) GetModifiedNotification() *PushNotification {
	if x == nil {
		return nil
	}
	return x.ModifiedNotification
}

func (x *NotificationWillBePushedResponse) GetRejectionReason() string {
	if x == nil {
		return ""
	}
	return x.RejectionReason
}

type EmailNotificationWillBeSentRequest struct {
	Notification *EmailNotification `json:"notification,omitempty"`
}

func (x *EmailNotificationWillBeSentRequest) GetNotification() *EmailNotification {
	if x == nil {
		return nil
	}
	return x.Notification
}

type EmailNotificationWillBeSentResponse struct {
	Content         *EmailNotificationContent `json:"content,omitempty"`
	RejectionReason string                    `json:"rejection_reason,omitempty"`
}

func (x *EmailNotificationWillBeSentResponse) GetContent() *EmailNotificationContent {
	if x == nil {
		return nil
	}
	return x.Content
}

func (x *EmailNotificationWillBeSentResponse) GetRejectionReason() string {
	if x == nil {
		return ""
	}
	return x.RejectionReason
}

type PreferencesHaveChangedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Preferences   []*Preference  `json:"preferences,omitempty"`
}

func (x *PreferencesHaveChangedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *PreferencesHaveChangedRequest) GetPreferences() []*Preference {
	if x == nil {
		return nil
	}
	return x.Preferences
}

type PreferencesHaveChangedResponse struct {
}

type FileWillBeUploadedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	FileInfo      *FileInfo      `json:"file_info,omitempty"`
	Body          []byte         `json:"body,omitempty"`
}

func (x *FileWillBeUploadedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *FileWillBeUploadedRequest) GetFileInfo() *FileInfo {
	if x == nil {
		return nil
	}
	return x.FileInfo
}

func (x *FileWillBeUploadedRequest) GetBody() []byte {
	if x == nil {
		return nil
	}
	return x.Body
}

type FileWillBeUploadedResponse struct {
	ModifiedFileInfo *FileInfo `json:"modified_file_info,omitempty"`
	ReplacementBody  []byte    `json:"replacement_body,omitempty"`
	RejectionReason  string    `json:"rejection_reason,omitempty"`
}

func (x *FileWillBeUploadedResponse) GetModifiedFileInfo() *FileInfo {
	if x == nil {
		return nil
	}
	return x.ModifiedFileInfo
}

func (x *FileWillBeUploadedResponse) GetReplacementBody() []byte {
	if x == nil {
		return nil
	}
	return x.ReplacementBody
}

func (x *FileWillBeUploadedResponse) GetRejectionReason() string {
	if x == nil {
		return ""
	}
	return x.RejectionReason
}

type UserHasBeenCreatedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	User          *User          `json:"user,omitempty"`
}

func (x *UserHasBeenCreatedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserHasBeenCreatedRequest) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

type UserHasBeenCreatedResponse struct {
}

type UserWillLogInRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	User          *User          `json:"user,omitempty"`
}

func (x *UserWillLogInRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserWillLogInRequest) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

type UserWillLogInResponse struct {
	RejectionReason string `json:"rejection_reason,omitempty"`
}

func (x *UserWillLogInResponse) GetRejectionReason() string {
	if x == nil {
		return ""
	}
	return x.RejectionReason
}

type UserHasLoggedInRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	User          *User          `json:"user,omitempty"`
}

func (x *UserHasLoggedInRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserHasLoggedInRequest) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

type UserHasLoggedInResponse struct {
}

type UserHasBeenDeactivatedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	User          *User          `json:"user,omitempty"`
}

func (x *UserHasBeenDeactivatedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserHasBeenDeactivatedRequest) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

type UserHasBeenDeactivatedResponse struct {
}

type OnSAMLLoginRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	User          *User          `json:"user,omitempty"`
	AssertionJson []byte         `json:"assertion_json,omitempty"`
}

func (x *OnSAMLLoginRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *OnSAMLLoginRequest) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

func (x *OnSAMLLoginRequest) GetAssertionJson() []byte {
	if x == nil {
		return nil
	}
	return x.AssertionJson
}

type OnSAMLLoginResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OnSAMLLoginResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type ChannelHasBeenCreatedRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Channel       *Channel       `json:"channel,omitempty"`
}

func (x *ChannelHasBeenCreatedRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *ChannelHasBeenCreatedRequest) GetChannel() *Channel {
	if x == nil {
		return nil
	}
	return x.Channel
}

type ChannelHasBeenCreatedResponse struct {
}

type UserHasJoinedChannelRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	ChannelMember *ChannelMember `json:"channel_member,omitempty"`
	Actor         *User          `json:"actor,omitempty"`
}

func (x *UserHasJoinedChannelRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserHasJoinedChannelRequest) GetChannelMember() *ChannelMember {
	if x == nil {
		return nil
	}
	return x.ChannelMember
}

func (x *UserHasJoinedChannelRequest) GetActor() *User {
	if x == nil {
		return nil
	}
	return x.Actor
}

type UserHasJoinedChannelResponse struct {
}

type UserHasLeftChannelRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	ChannelMember *ChannelMember `json:"channel_member,omitempty"`
	Actor         *User          `json:"actor,omitempty"`
}

func (x *UserHasLeftChannelRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserHasLeftChannelRequest) GetChannelMember() *ChannelMember {
	if x == nil {
		return nil
	}
	return x.ChannelMember
}

func (x *UserHasLeftChannelRequest) GetActor() *User {
	if x == nil {
		return nil
	}
	return x.Actor
}

type UserHasLeftChannelResponse struct {
}

type UserHasJoinedTeamRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	TeamMember    *TeamMember    `json:"team_member,omitempty"`
	Actor         *User          `json:"actor,omitempty"`
}

func (x *UserHasJoinedTeamRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserHasJoinedTeamRequest) GetTeamMember() *TeamMember {
	if x == nil {
		return nil
	}
	return x.TeamMember
}

func (x *UserHasJoinedTeamRequest) GetActor() *User {
	if x == nil {
		return nil
	}
	return x.Actor
}

type UserHasJoinedTeamResponse struct {
}

type UserHasLeftTeamRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	TeamMember    *TeamMember    `json:"team_member,omitempty"`
	Actor         *User          `json:"actor,omitempty"`
}

func (x *UserHasLeftTeamRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *UserHasLeftTeamRequest) GetTeamMember() *TeamMember {
	if x == nil {
		return nil
	}
	return x.TeamMember
}

func (x *UserHasLeftTeamRequest) GetActor() *User {
	if x == nil {
		return nil
	}
	return x.Actor
}

type UserHasLeftTeamResponse struct {
}

type ExecuteCommandRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Args          *CommandArgs   `json:"args,omitempty"`
}

func (x *ExecuteCommandRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *ExecuteCommandRequest) GetArgs() *CommandArgs {
	if x == nil {
		return nil
	}
	return x.Args
}

type ExecuteCommandResponse struct {
	Response *CommandResponse `json:"response,omitempty"`
	Error    *AppError        `json:"error,omitempty"`
}

func (x *ExecuteCommandResponse) GetResponse() *CommandResponse {
	if x == nil {
		return nil
	}
	return x.Response
}

func (x *ExecuteCommandResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnWebSocketConnectRequest struct {
	WebConnId string `json:"web_conn_id,omitempty"`
	UserId    string `json:"user_id,omitempty"`
}

func (x *OnWebSocketConnectRequest) GetWebConnId() string {
	if x == nil {
		return ""
	}
	return x.WebConnId
}

func (x *OnWebSocketConnectRequest) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

type OnWebSocketConnectResponse struct {
}

type OnWebSocketDisconnectRequest struct {
	WebConnId string `json:"web_conn_id,omitempty"`
	UserId    string `json:"user_id,omitempty"`
}

func (x *OnWebSocketDisconnectRequest) GetWebConnId() string {
	if x == nil {
		return ""
	}
	return x.WebConnId
}

func (x *OnWebSocketDisconnectRequest) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

type OnWebSocketDisconnectResponse struct {
}

type WebSocketMessageHasBeenPostedRequest struct {
	WebConnId string            `json:"web_conn_id,omitempty"`
	UserId    string            `json:"user_id,omitempty"`
	Request   *WebSocketRequest `json:"request,omitempty"`
}

func (x *WebSocketMessageHasBeenPostedRequest) GetWebConnId() string {
	if x == nil {
		return ""
	}
	return x.WebConnId
}

func (x *WebSocketMessageHasBeenPostedRequest) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *WebSocketMessageHasBeenPostedRequest) GetRequest() *WebSocketRequest {
	if x == nil {
		return nil
	}
	return x.Request
}

type WebSocketMessageHasBeenPostedResponse struct {
}

type OnPluginClusterEventRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
	Event         *ClusterEvent  `json:"event,omitempty"`
}

func (x *OnPluginClusterEventRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

func (x *OnPluginClusterEventRequest) GetEvent() *ClusterEvent {
	if x == nil {
		return nil
	}
	return x.Event
}

type OnPluginClusterEventResponse struct {
}

type OnSharedChannelsSyncMsgRequest struct {
	SyncMsgJson   []byte         `json:"sync_msg_json,omitempty"`
	RemoteCluster *RemoteCluster `json:"remote_cluster,omitempty"`
}

func (x *OnSharedChannelsSyncMsgRequest) GetSyncMsgJson() []byte {
	if x == nil {
		return nil
	}
	return x.SyncMsgJson
}

func (x *OnSharedChannelsSyncMsgRequest) GetRemoteCluster() *RemoteCluster {
	if x == nil {
		return nil
	}
	return x.RemoteCluster
}

type OnSharedChannelsSyncMsgResponse struct {
	ResponseJson []byte    `json:"response_json,omitempty"`
	Error        *AppError `json:"error,omitempty"`
}

func (x *OnSharedChannelsSyncMsgResponse) GetResponseJson() []byte {
	if x == nil {
		return nil
	}
	return x.ResponseJson
}

func (x *OnSharedChannelsSyncMsgResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnSharedChannelsPingRequest struct {
	RemoteCluster *RemoteCluster `json:"remote_cluster,omitempty"`
}

func (x *OnSharedChannelsPingRequest) GetRemoteCluster() *RemoteCluster {
	if x == nil {
		return nil
	}
	return x.RemoteCluster
}

type OnSharedChannelsPingResponse struct {
	Healthy bool `json:"healthy,omitempty"`
}

func (x *OnSharedChannelsPingResponse) GetHealthy() bool {
	if x == nil {
		return false
	}
	return x.Healthy
}

type OnSharedChannelsAttachmentSyncMsgRequest struct {
	FileInfo      *FileInfo      `json:"file_info,omitempty"`
	Post          *Post          `json:"post,omitempty"`
	RemoteCluster *RemoteCluster `json:"remote_cluster,omitempty"`
}

func (x *OnSharedChannelsAttachmentSyncMsgRequest) GetFileInfo() *FileInfo {
	if x == nil {
		return nil
	}
	return x.FileInfo
}

func (x *OnSharedChannelsAttachmentSyncMsgRequest) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

func (x *OnSharedChannelsAttachmentSyncMsgRequest) GetRemoteCluster() *RemoteCluster {
	if x == nil {
		return nil
	}
	return x.RemoteCluster
}

type OnSharedChannelsAttachmentSyncMsgResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OnSharedChannelsAttachmentSyncMsgResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type OnSharedChannelsProfileImageSyncMsgRequest struct {
	User          *User          `json:"user,omitempty"`
	RemoteCluster *RemoteCluster `json:"remote_cluster,omitempty"`
}

func (x *OnSharedChannelsProfileImageSyncMsgRequest) GetUser() *User {
	if x == nil {
		return nil
	}
	return x.User
}

func (x *OnSharedChannelsProfileImageSyncMsgRequest) GetRemoteCluster() *RemoteCluster {
	if x == nil {
		return nil
	}
	return x.RemoteCluster
}

type OnSharedChannelsProfileImageSyncMsgResponse struct {
	Error *AppError `json:"error,omitempty"`
}

func (x *OnSharedChannelsProfileImageSyncMsgResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type GenerateSupportDataRequest struct {
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
}

func (x *GenerateSupportDataRequest) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

type GenerateSupportDataResponse struct {
	Files []*FileData `json:"files,omitempty"`
	Error *AppError   `json:"error,omitempty"`
}

func (x *GenerateSupportDataResponse) GetFiles() []*FileData {
	if x == nil {
		return nil
	}
	return x.Files
}

func (x *GenerateSupportDataResponse) GetError() *AppError {
	if x == nil {
		return nil
	}
	return x.Error
}

type ServeHTTPRequestInit struct {
	Method        string         `json:"method,omitempty"`
	Url           string         `json:"url,omitempty"`
	Proto         string         `json:"proto,omitempty"`
	ProtoMajor    int32          `json:"proto_major,omitempty"`
	ProtoMinor    int32          `json:"proto_minor,omitempty"`
	Host          string         `json:"host,omitempty"`
	RemoteAddr    string         `json:"remote_addr,omitempty"`
	RequestUri    string         `json:"request_uri,omitempty"`
	ContentLength int64          `json:"content_length,omitempty"`
	Headers       []*HTTPHeader  `json:"headers,omitempty"`
	PluginContext *PluginContext `json:"plugin_context,omitempty"`
}

func (x *ServeHTTPRequestInit) GetMethod() string {
	if x == nil {
		return ""
	}
	return x.Method
}

func (x *ServeHTTPRequestInit) GetUrl() string {
	if x == nil {
		return ""
	}
	return x.Url
}

func (x *ServeHTTPRequestInit) GetProto() string {
	if x == nil {
		return ""
	}
	return x.Proto
}

func (x *ServeHTTPRequestInit) GetProtoMajor() int32 {
	if x == nil {
		return 0
	}
	return x.ProtoMajor
}

func (x *ServeHTTPRequestInit) GetProtoMinor() int32 {
	if x == nil {
		return 0
	}
	return x.ProtoMinor
}

func (x *ServeHTTPRequestInit) GetHost() string {
	if x == nil {
		return ""
	}
	return x.Host
}

func (x *ServeHTTPRequestInit) GetRemoteAddr() string {
	if x == nil {
		return ""
	}
	return x.RemoteAddr
}

func (x *ServeHTTPRequestInit) GetRequestUri() string {
	if x == nil {
		return ""
	}
	return x.RequestUri
}

func (x *ServeHTTPRequestInit) GetContentLength() int64 {
	if x == nil {
		return 0
	}
	return x.ContentLength
}

func (x *ServeHTTPRequestInit) GetHeaders() []*HTTPHeader {
	if x == nil {
		return nil
	}
	return x.Headers
}

func (x *ServeHTTPRequestInit) GetPluginContext() *PluginContext {
	if x == nil {
		return nil
	}
	return x.PluginContext
}

type ServeHTTPRequest struct {
	Init         *ServeHTTPRequestInit `json:"init,omitempty"`
	BodyChunk    []byte                `json:"body_chunk,omitempty"`
	BodyComplete bool                  `json:"body_complete,omitempty"`
}

func (x *ServeHTTPRequest) GetInit() *ServeHTTPRequestInit {
	if x == nil {
		return nil
	}
	return x.Init
}

func (x *ServeHTTPRequest) GetBodyChunk() []byte {
	if x == nil {
		return nil
	}
	return x.BodyChunk
}

func (x *ServeHTTPRequest) GetBodyComplete() bool {
	if x == nil {
		return false
	}
	return x.BodyComplete
}

type ServeHTTPResponseInit struct {
	StatusCode int32         `json:"status_code,omitempty"`
	Headers    []*HTTPHeader `json:"headers,omitempty"`
}

func (x *ServeHTTPResponseInit) GetStatusCode() int32 {
	if x == nil {
		return 0
	}
	return x.StatusCode
}

func (x *ServeHTTPResponseInit) GetHeaders() []*HTTPHeader {
	if x == nil {
		return nil
	}
	return x.Headers
}

type ServeHTTPResponse struct {
	Init         *ServeHTTPResponseInit `json:"init,omitempty"`
	BodyChunk    []byte                 `json:"body_chunk,omitempty"`
	BodyComplete bool                   `json:"body_complete,omitempty"`
	Flush        bool                   `json:"flush,omitempty"`
}

func (x *ServeHTTPResponse) GetInit() *ServeHTTPResponseInit {
	if x == nil {
		return nil
	}
	return x.Init
}

func (x *ServeHTTPResponse) GetBodyChunk() []byte {
	if x == nil {
		return nil
	}
	return x.BodyChunk
}

func (x *ServeHTTPResponse) GetBodyComplete() bool {
	if x == nil {
		return false
	}
	return x.BodyComplete
}

func (x *ServeHTTPResponse) GetFlush() bool {
	if x == nil {
		return false
	}
	return x.Flush
}

// ServeMetrics reuses the ServeHTTP frame shapes on the wire.
type (
	ServeMetricsRequest  = ServeHTTPRequest
	ServeMetricsResponse = ServeHTTPResponse
)
