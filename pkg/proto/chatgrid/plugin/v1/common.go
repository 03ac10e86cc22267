// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginv1

type PluginContext struct {
	SessionId      string `json:"session_id,omitempty"`
	RequestId      string `json:"request_id,omitempty"`
	IpAddress      string `json:"ip_address,omitempty"`
	AcceptLanguage string `json:"accept_language,omitempty"`
	UserAgent      string `json:"user_agent,omitempty"`
}

func (x *PluginContext) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

func (x *PluginContext) GetRequestId() string {
	if x == nil {
		return ""
	}
	return x.RequestId
}

func (x *PluginContext) GetIpAddress() string {
	if x == nil {
		return ""
	}
	return x.IpAddress
}

func (x *PluginContext) GetAcceptLanguage() string {
	if x == nil {
		return ""
	}
	return x.AcceptLanguage
}

func (x *PluginContext) GetUserAgent() string {
	if x == nil {
		return ""
	}
	return x.UserAgent
}

type AppError struct {
	Id            string            `json:"id,omitempty"`
	Message       string            `json:"message,omitempty"`
	DetailedError string            `json:"detailed_error,omitempty"`
	StatusCode    int32             `json:"status_code,omitempty"`
	Where         string            `json:"where,omitempty"`
	Params        map[string]string `json:"params,omitempty"`
}

func (x *AppError) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *AppError) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.Message
}

func (x *AppError) GetDetailedError() string {
	if x == nil {
		return ""
	}
	return x.DetailedError
}

func (x *AppError) GetStatusCode() int32 {
	if x == nil {
		return 0
	}
	return x.StatusCode
}

func (x *AppError) GetWhere() string {
	if x == nil {
		return ""
	}
	return x.Where
}

func (x *AppError) GetParams() map[string]string {
	if x == nil {
		return nil
	}
	return x.Params
}

type Post struct {
	Id            string   `json:"id,omitempty"`
	CreateAt      int64    `json:"create_at,omitempty"`
	UpdateAt      int64    `json:"update_at,omitempty"`
	EditAt        int64    `json:"edit_at,omitempty"`
	DeleteAt      int64    `json:"delete_at,omitempty"`
	UserId        string   `json:"user_id,omitempty"`
	ChannelId     string   `json:"channel_id,omitempty"`
	RootId        string   `json:"root_id,omitempty"`
	OriginalId    string   `json:"original_id,omitempty"`
	Message       string   `json:"message,omitempty"`
	Type          string   `json:"type,omitempty"`
	PropsJson     []byte   `json:"props_json,omitempty"`
	Hashtags      string   `json:"hashtags,omitempty"`
	FileIds       []string `json:"file_ids,omitempty"`
	PendingPostId string   `json:"pending_post_id,omitempty"`
	RemoteId      string   `json:"remote_id,omitempty"`
}

func (x *Post) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *Post) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *Post) GetUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.UpdateAt
}

func (x *Post) GetEditAt() int64 {
	if x == nil {
		return 0
	}
	return x.EditAt
}

func (x *Post) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *Post) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *Post) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *Post) GetRootId() string {
	if x == nil {
		return ""
	}
	return x.RootId
}

func (x *Post) GetOriginalId() string {
	if x == nil {
		return ""
	}
	return x.OriginalId
}

func (x *Post) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.Message
}

func (x *Post) GetType() string {
	if x == nil {
		return ""
	}
	return x.Type
}

func (x *Post) GetPropsJson() []byte {
	if x == nil {
		return nil
	}
	return x.PropsJson
}

func (x *Post) GetHashtags() string {
	if x == nil {
		return ""
	}
	return x.Hashtags
}

func (x *Post) GetFileIds() []string {
	if x == nil {
		return nil
	}
	return x.FileIds
}

func (x *Post) GetPendingPostId() string {
	if x == nil {
		return ""
	}
	return x.PendingPostId
}

func (x *Post) GetRemoteId() string {
	if x == nil {
		return ""
	}
	return x.RemoteId
}

type User struct {
	Id             string            `json:"id,omitempty"`
	CreateAt       int64             `json:"create_at,omitempty"`
	UpdateAt       int64             `json:"update_at,omitempty"`
	DeleteAt       int64             `json:"delete_at,omitempty"`
	Username       string            `json:"username,omitempty"`
	Email          string            `json:"email,omitempty"`
	EmailVerified  bool              `json:"email_verified,omitempty"`
	Nickname       string            `json:"nickname,omitempty"`
	FirstName      string            `json:"first_name,omitempty"`
	LastName       string            `json:"last_name,omitempty"`
	Position       string            `json:"position,omitempty"`
	Roles          string            `json:"roles,omitempty"`
	Locale         string            `json:"locale,omitempty"`
	IsBot          bool              `json:"is_bot,omitempty"`
	BotDescription string            `json:"bot_description,omitempty"`
	AuthService    string            `json:"auth_service,omitempty"`
	Props          map[string]string `json:"props,omitempty"`
	NotifyProps    map[string]string `json:"notify_props,omitempty"`
	RemoteId       string            `json:"remote_id,omitempty"`
}

func (x *User) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *User) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *User) GetUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.UpdateAt
}

func (x *User) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *User) GetUsername() string {
	if x == nil {
		return ""
	}
	return x.Username
}

func (x *User) GetEmail() string {
	if x == nil {
		return ""
	}
	return x.Email
}

func (x *User) GetEmailVerified() bool {
	if x == nil {
		return false
	}
	return x.EmailVerified
}

func (x *User) GetNickname() string {
	if x == nil {
		return ""
	}
	return x.Nickname
}

func (x *User) GetFirstName() string {
	if x == nil {
		return ""
	}
	return x.FirstName
}

func (x *User) GetLastName() string {
	if x == nil {
		return ""
	}
	return x.LastName
}

func (x *User) GetPosition() string {
	if x == nil {
		return ""
	}
	return x.Position
}

func (x *User) GetRoles() string {
	if x == nil {
		return ""
	}
	return x.Roles
}

func (x *User) GetLocale() string {
	if x == nil {
		return ""
	}
	return x.Locale
}

func (x *User) GetIsBot() bool {
	if x == nil {
		return false
	}
	return x.IsBot
}

func (x *User) GetBotDescription() string {
	if x == nil {
		return ""
	}
	return x.BotDescription
}

func (x *User) GetAuthService() string {
	if x == nil {
		return ""
	}
	return x.AuthService
}

func (x *User) GetProps() map[string]string {
	if x == nil {
		return nil
	}
	return x.Props
}

func (x *User) GetNotifyProps() map[string]string {
	if x == nil {
		return nil
	}
	return x.NotifyProps
}

func (x *User) GetRemoteId() string {
	if x == nil {
		return ""
	}
	return x.RemoteId
}

type Channel struct {
	Id          string `json:"id,omitempty"`
	CreateAt    int64  `json:"create_at,omitempty"`
	UpdateAt    int64  `json:"update_at,omitempty"`
	DeleteAt    int64  `json:"delete_at,omitempty"`
	TeamId      string `json:"team_id,omitempty"`
	Type        string `json:"type,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Name        string `json:"name,omitempty"`
	Header      string `json:"header,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	CreatorId   string `json:"creator_id,omitempty"`
}

func (x *Channel) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *Channel) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *Channel) GetUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.UpdateAt
}

func (x *Channel) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *Channel) GetTeamId() string {
	if x == nil {
		return ""
	}
	return x.TeamId
}

func (x *Channel) GetType() string {
	if x == nil {
		return ""
	}
	return x.Type
}

func (x *Channel) GetDisplayName() string {
	if x == nil {
		return ""
	}
	return x.DisplayName
}

func (x *Channel) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Channel) GetHeader() string {
	if x == nil {
		return ""
	}
	return x.Header
}

func (x *Channel) GetPurpose() string {
	if x == nil {
		return ""
	}
	return x.Purpose
}

func (x *Channel) GetCreatorId() string {
	if x == nil {
		return ""
	}
	return x.CreatorId
}

type Team struct {
	Id              string `json:"id,omitempty"`
	CreateAt        int64  `json:"create_at,omitempty"`
	UpdateAt        int64  `json:"update_at,omitempty"`
	DeleteAt        int64  `json:"delete_at,omitempty"`
	DisplayName     string `json:"display_name,omitempty"`
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	Email           string `json:"email,omitempty"`
	Type            string `json:"type,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	AllowOpenInvite bool   `json:"allow_open_invite,omitempty"`
}

func (x *Team) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *Team) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *Team) GetUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.UpdateAt
}

func (x *Team) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *Team) GetDisplayName() string {
	if x == nil {
		return ""
	}
	return x.DisplayName
}

func (x *Team) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Team) GetDescription() string {
	if x == nil {
		return ""
	}
	return x.Description
}

func (x *Team) GetEmail() string {
	if x == nil {
		return ""
	}
	return x.Email
}

func (x *Team) GetType() string {
	if x == nil {
		return ""
	}
	return x.Type
}

func (x *Team) GetCompanyName() string {
	if x == nil {
		return ""
	}
	return x.CompanyName
}

func (x *Team) GetAllowOpenInvite() bool {
	if x == nil {
		return false
	}
	return x.AllowOpenInvite
}

type ChannelMember struct {
	ChannelId    string            `json:"channel_id,omitempty"`
	UserId       string            `json:"user_id,omitempty"`
	Roles        string            `json:"roles,omitempty"`
	LastViewedAt int64             `json:"last_viewed_at,omitempty"`
	MsgCount     int64             `json:"msg_count,omitempty"`
	MentionCount int64             `json:"mention_count,omitempty"`
	NotifyProps  map[string]string `json:"notify_props,omitempty"`
	LastUpdateAt int64             `json:"last_update_at,omitempty"`
}

func (x *ChannelMember) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *ChannelMember) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *ChannelMember) GetRoles() string {
	if x == nil {
		return ""
	}
	return x.Roles
}

func (x *ChannelMember) GetLastViewedAt() int64 {
	if x == nil {
		return 0
	}
	return x.LastViewedAt
}

func (x *ChannelMember) GetMsgCount() int64 {
	if x == nil {
		return 0
	}
	return x.MsgCount
}

func (x *ChannelMember) GetMentionCount() int64 {
	if x == nil {
		return 0
	}
	return x.MentionCount
}

func (x *ChannelMember) GetNotifyProps() map[string]string {
	if x == nil {
		return nil
	}
	return x.NotifyProps
}

func (x *ChannelMember) GetLastUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.LastUpdateAt
}

type TeamMember struct {
	TeamId      string `json:"team_id,omitempty"`
	UserId      string `json:"user_id,omitempty"`
	Roles       string `json:"roles,omitempty"`
	DeleteAt    int64  `json:"delete_at,omitempty"`
	SchemeUser  bool   `json:"scheme_user,omitempty"`
	SchemeAdmin bool   `json:"scheme_admin,omitempty"`
}

func (x *TeamMember) GetTeamId() string {
	if x == nil {
		return ""
	}
	return x.TeamId
}

func (x *TeamMember) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *TeamMember) GetRoles() string {
	if x == nil {
		return ""
	}
	return x.Roles
}

func (x *TeamMember) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *TeamMember) GetSchemeUser() bool {
	if x == nil {
		return false
	}
	return x.SchemeUser
}

func (x *TeamMember) GetSchemeAdmin() bool {
	if x == nil {
		return false
	}
	return x.SchemeAdmin
}

type Reaction struct {
	UserId    string `json:"user_id,omitempty"`
	PostId    string `json:"post_id,omitempty"`
	EmojiName string `json:"emoji_name,omitempty"`
	CreateAt  int64  `json:"create_at,omitempty"`
	UpdateAt  int64  `json:"update_at,omitempty"`
	DeleteAt  int64  `json:"delete_at,omitempty"`
	RemoteId  string `json:"remote_id,omitempty"`
	ChannelId string `json:"channel_id,omitempty"`
}

func (x *Reaction) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *Reaction) GetPostId() string {
	if x == nil {
		return ""
	}
	return x.PostId
}

func (x *Reaction) GetEmojiName() string {
	if x == nil {
		return ""
	}
	return x.EmojiName
}

func (x *Reaction) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *Reaction) GetUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.UpdateAt
}

func (x *Reaction) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *Reaction) GetRemoteId() string {
	if x == nil {
		return ""
	}
	return x.RemoteId
}

func (x *Reaction) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

type Preference struct {
	UserId   string `json:"user_id,omitempty"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name,omitempty"`
	Value    string `json:"value,omitempty"`
}

func (x *Preference) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *Preference) GetCategory() string {
	if x == nil {
		return ""
	}
	return x.Category
}

func (x *Preference) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *Preference) GetValue() string {
	if x == nil {
		return ""
	}
	return x.Value
}

type FileInfo struct {
	Id              string `json:"id,omitempty"`
	CreatorId       string `json:"creator_id,omitempty"`
	PostId          string `json:"post_id,omitempty"`
	ChannelId       string `json:"channel_id,omitempty"`
	CreateAt        int64  `json:"create_at,omitempty"`
	UpdateAt        int64  `json:"update_at,omitempty"`
	DeleteAt        int64  `json:"delete_at,omitempty"`
	Name            string `json:"name,omitempty"`
	Extension       string `json:"extension,omitempty"`
	Size            int64  `json:"size,omitempty"`
	MimeType        string `json:"mime_type,omitempty"`
	Width           int32  `json:"width,omitempty"`
	Height          int32  `json:"height,omitempty"`
	HasPreviewImage bool   `json:"has_preview_image,omitempty"`
	RemoteId        string `json:"remote_id,omitempty"`
}

func (x *FileInfo) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *FileInfo) GetCreatorId() string {
	if x == nil {
		return ""
	}
	return x.CreatorId
}

func (x *FileInfo) GetPostId() string {
	if x == nil {
		return ""
	}
	return x.PostId
}

func (x *FileInfo) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *FileInfo) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *FileInfo) GetUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.UpdateAt
}

func (x *FileInfo) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *FileInfo) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *FileInfo) GetExtension() string {
	if x == nil {
		return ""
	}
	return x.Extension
}

func (x *FileInfo) GetSize() int64 {
	if x == nil {
		return 0
	}
	return x.Size
}

func (x *FileInfo) GetMimeType() string {
	if x == nil {
		return ""
	}
	return x.MimeType
}

func (x *FileInfo) GetWidth() int32 {
	if x == nil {
		return 0
	}
	return x.Width
}

func (x *FileInfo) GetHeight() int32 {
	if x == nil {
		return 0
	}
	return x.Height
}

func (x *FileInfo) GetHasPreviewImage() bool {
	if x == nil {
		return false
	}
	return x.HasPreviewImage
}

func (x *FileInfo) GetRemoteId() string {
	if x == nil {
		return ""
	}
	return x.RemoteId
}

type FileData struct {
	Filename string `json:"filename,omitempty"`
	Body     []byte `json:"body,omitempty"`
}

func (x *FileData) GetFilename() string {
	if x == nil {
		return ""
	}
	return x.Filename
}

func (x *FileData) GetBody() []byte {
	if x == nil {
		return nil
	}
	return x.Body
}

type CommandArgs struct {
	UserId    string `json:"user_id,omitempty"`
	ChannelId string `json:"channel_id,omitempty"`
	TeamId    string `json:"team_id,omitempty"`
	RootId    string `json:"root_id,omitempty"`
	TriggerId string `json:"trigger_id,omitempty"`
	Command   string `json:"command,omitempty"`
	SiteUrl   string `json:"site_url,omitempty"`
}

func (x *CommandArgs) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *CommandArgs) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *CommandArgs) GetTeamId() string {
	if x == nil {
		return ""
	}
	return x.TeamId
}

func (x *CommandArgs) GetRootId() string {
	if x == nil {
		return ""
	}
	return x.RootId
}

func (x *CommandArgs) GetTriggerId() string {
	if x == nil {
		return ""
	}
	return x.TriggerId
}

func (x *CommandArgs) GetCommand() string {
	if x == nil {
		return ""
	}
	return x.Command
}

func (x *CommandArgs) GetSiteUrl() string {
	if x == nil {
		return ""
	}
	return x.SiteUrl
}

type CommandResponse struct {
	ResponseType string `json:"response_type,omitempty"`
	Text         string `json:"text,omitempty"`
	Username     string `json:"username,omitempty"`
	ChannelId    string `json:"channel_id,omitempty"`
	IconUrl      string `json:"icon_url,omitempty"`
	GotoLocation string `json:"goto_location,omitempty"`
}

func (x *CommandResponse) GetResponseType() string {
	if x == nil {
		return ""
	}
	return x.ResponseType
}

func (x *CommandResponse) GetText() string {
	if x == nil {
		return ""
	}
	return x.Text
}

func (x *CommandResponse) GetUsername() string {
	if x == nil {
		return ""
	}
	return x.Username
}

func (x *CommandResponse) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *CommandResponse) GetIconUrl() string {
	if x == nil {
		return ""
	}
	return x.IconUrl
}

func (x *CommandResponse) GetGotoLocation() string {
	if x == nil {
		return ""
	}
	return x.GotoLocation
}

type WebSocketRequest struct {
	Seq      int64  `json:"seq,omitempty"`
	Action   string `json:"action,omitempty"`
	DataJson []byte `json:"data_json,omitempty"`
}

func (x *WebSocketRequest) GetSeq() int64 {
	if x == nil {
		return 0
	}
	return x.Seq
}

func (x *WebSocketRequest) GetAction() string {
	if x == nil {
		return ""
	}
	return x.Action
}

func (x *WebSocketRequest) GetDataJson() []byte {
	if x == nil {
		return nil
	}
	return x.DataJson
}

type WebsocketBroadcast struct {
	UserId           string `json:"user_id,omitempty"`
	ChannelId        string `json:"channel_id,omitempty"`
	TeamId           string `json:"team_id,omitempty"`
	ConnectionId     string `json:"connection_id,omitempty"`
	OmitConnectionId string `json:"omit_connection_id,omitempty"`
}

func (x *WebsocketBroadcast) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *WebsocketBroadcast) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *WebsocketBroadcast) GetTeamId() string {
	if x == nil {
		return ""
	}
	return x.TeamId
}

func (x *WebsocketBroadcast) GetConnectionId() string {
	if x == nil {
		return ""
	}
	return x.ConnectionId
}

func (x *WebsocketBroadcast) GetOmitConnectionId() string {
	if x == nil {
		return ""
	}
	return x.OmitConnectionId
}

type PushNotification struct {
	AckId       string `json:"ack_id,omitempty"`
	Platform    string `json:"platform,omitempty"`
	ServerId    string `json:"server_id,omitempty"`
	DeviceId    string `json:"device_id,omitempty"`
	PostId      string `json:"post_id,omitempty"`
	Category    string `json:"category,omitempty"`
	Sound       string `json:"sound,omitempty"`
	Message     string `json:"message,omitempty"`
	Badge       int32  `json:"badge,omitempty"`
	TeamId      string `json:"team_id,omitempty"`
	ChannelId   string `json:"channel_id,omitempty"`
	RootId      string `json:"root_id,omitempty"`
	SenderId    string `json:"sender_id,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`
	Type        string `json:"type,omitempty"`
	SenderName  string `json:"sender_name,omitempty"`
	IsIdLoaded  bool   `json:"is_id_loaded,omitempty"`
}

func (x *PushNotification) GetAckId() string {
	if x == nil {
		return ""
	}
	return x.AckId
}

func (x *PushNotification) GetPlatform() string {
	if x == nil {
		return ""
	}
	return x.Platform
}

func (x *PushNotification) GetServerId() string {
	if x == nil {
		return ""
	}
	return x.ServerId
}

func (x *PushNotification) GetDeviceId() string {
	if x == nil {
		return ""
	}
	return x.DeviceId
}

func (x *PushNotification) GetPostId() string {
	if x == nil {
		return ""
	}
	return x.PostId
}

func (x *PushNotification) GetCategory() string {
	if x == nil {
		return ""
	}
	return x.Category
}

func (x *PushNotification) GetSound() string {
	if x == nil {
		return ""
	}
	return x.Sound
}

func (x *PushNotification) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.Message
}

func (x *PushNotification) GetBadge() int32 {
	if x == nil {
		return 0
	}
	return x.Badge
}

func (x *PushNotification) GetTeamId() string {
	if x == nil {
		return ""
	}
	return x.TeamId
}

func (x *PushNotification) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *PushNotification) GetRootId() string {
	if x == nil {
		return ""
	}
	return x.RootId
}

func (x *PushNotification) GetSenderId() string {
	if x == nil {
		return ""
	}
	return x.SenderId
}

func (x *PushNotification) GetChannelName() string {
	if x == nil {
		return ""
	}
	return x.ChannelName
}

func (x *PushNotification) GetType() string {
	if x == nil {
		return ""
	}
	return x.Type
}

func (x *PushNotification) GetSenderName() string {
	if x == nil {
		return ""
	}
	return x.SenderName
}

func (x *PushNotification) GetIsIdLoaded() bool {
	if x == nil {
		return false
	}
	return x.IsIdLoaded
}

type EmailNotification struct {
	Post        *Post    `json:"post,omitempty"`
	Channel     *Channel `json:"channel,omitempty"`
	ChannelName string   `json:"channel_name,omitempty"`
	SenderName  string   `json:"sender_name,omitempty"`
}

func (x *EmailNotification) GetPost() *Post {
	if x == nil {
		return nil
	}
	return x.Post
}

func (x *EmailNotification) GetChannel() *Channel {
	if x == nil {
		return nil
	}
	return x.Channel
}

func (x *EmailNotification) GetChannelName() string {
	if x == nil {
		return ""
	}
	return x.ChannelName
}

func (x *EmailNotification) GetSenderName() string {
	if x == nil {
		return ""
	}
	return x.SenderName
}

type EmailNotificationContent struct {
	Subject  string `json:"subject,omitempty"`
	HtmlBody string `json:"html_body,omitempty"`
	TextBody string `json:"text_body,omitempty"`
}

func (x *EmailNotificationContent) GetSubject() string {
	if x == nil {
		return ""
	}
	return x.Subject
}

func (x *EmailNotificationContent) GetHtmlBody() string {
	if x == nil {
		return ""
	}
	return x.HtmlBody
}

func (x *EmailNotificationContent) GetTextBody() string {
	if x == nil {
		return ""
	}
	return x.TextBody
}

type RemoteCluster struct {
	RemoteId    string `json:"remote_id,omitempty"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	SiteUrl     string `json:"site_url,omitempty"`
	CreateAt    int64  `json:"create_at,omitempty"`
	LastPingAt  int64  `json:"last_ping_at,omitempty"`
	CreatorId   string `json:"creator_id,omitempty"`
	PluginId    string `json:"plugin_id,omitempty"`
}

func (x *RemoteCluster) GetRemoteId() string {
	if x == nil {
		return ""
	}
	return x.RemoteId
}

func (x *RemoteCluster) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *RemoteCluster) GetDisplayName() string {
	if x == nil {
		return ""
	}
	return x.DisplayName
}

func (x *RemoteCluster) GetSiteUrl() string {
	if x == nil {
		return ""
	}
	return x.SiteUrl
}

func (x *RemoteCluster) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *RemoteCluster) GetLastPingAt() int64 {
	if x == nil {
		return 0
	}
	return x.LastPingAt
}

func (x *RemoteCluster) GetCreatorId() string {
	if x == nil {
		return ""
	}
	return x.CreatorId
}

func (x *RemoteCluster) GetPluginId() string {
	if x == nil {
		return ""
	}
	return x.PluginId
}

type ProductLimits struct {
	MessagesHistoryLimit   int64 `json:"messages_history_limit,omitempty"`
	FilesTotalStorageLimit int64 `json:"files_total_storage_limit,omitempty"`
	TeamsActiveLimit       int32 `json:"teams_active_limit,omitempty"`
}

func (x *ProductLimits) GetMessagesHistoryLimit() int64 {
	if x == nil {
		return 0
	}
	return x.MessagesHistoryLimit
}

func (x *ProductLimits) GetFilesTotalStorageLimit() int64 {
	if x == nil {
		return 0
	}
	return x.FilesTotalStorageLimit
}

func (x *ProductLimits) GetTeamsActiveLimit() int32 {
	if x == nil {
		return 0
	}
	return x.TeamsActiveLimit
}

type UploadSession struct {
	Id         string `json:"id,omitempty"`
	Type       string `json:"type,omitempty"`
	CreateAt   int64  `json:"create_at,omitempty"`
	UserId     string `json:"user_id,omitempty"`
	ChannelId  string `json:"channel_id,omitempty"`
	Filename   string `json:"filename,omitempty"`
	FileSize   int64  `json:"file_size,omitempty"`
	FileOffset int64  `json:"file_offset,omitempty"`
}

func (x *UploadSession) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *UploadSession) GetType() string {
	if x == nil {
		return ""
	}
	return x.Type
}

func (x *UploadSession) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *UploadSession) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *UploadSession) GetChannelId() string {
	if x == nil {
		return ""
	}
	return x.ChannelId
}

func (x *UploadSession) GetFilename() string {
	if x == nil {
		return ""
	}
	return x.Filename
}

func (x *UploadSession) GetFileSize() int64 {
	if x == nil {
		return 0
	}
	return x.FileSize
}

func (x *UploadSession) GetFileOffset() int64 {
	if x == nil {
		return 0
	}
	return x.FileOffset
}

type Emoji struct {
	Id        string `json:"id,omitempty"`
	CreateAt  int64  `json:"create_at,omitempty"`
	UpdateAt  int64  `json:"update_at,omitempty"`
	DeleteAt  int64  `json:"delete_at,omitempty"`
	CreatorId string `json:"creator_id,omitempty"`
	Name      string `json:"name,omitempty"`
}

func (x *Emoji) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *Emoji) GetCreateAt() int64 {
	if x == nil {
		return 0
	}
	return x.CreateAt
}

func (x *Emoji) GetUpdateAt() int64 {
	if x == nil {
		return 0
	}
	return x.UpdateAt
}

func (x *Emoji) GetDeleteAt() int64 {
	if x == nil {
		return 0
	}
	return x.DeleteAt
}

func (x *Emoji) GetCreatorId() string {
	if x == nil {
		return ""
	}
	return x.CreatorId
}

func (x *Emoji) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

type ClusterEvent struct {
	Id   string `json:"id,omitempty"`
	Data []byte `json:"data,omitempty"`
}

func (x *ClusterEvent) GetId() string {
	if x == nil {
		return ""
	}
	return x.Id
}

func (x *ClusterEvent) GetData() []byte {
	if x == nil {
		return nil
	}
	return x.Data
}

type InstallEvent struct {
	UserId string `json:"user_id,omitempty"`
}

func (x *InstallEvent) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

type AuditRecord struct {
	EventName string `json:"event_name,omitempty"`
	Status    string `json:"status,omitempty"`
	UserId    string `json:"user_id,omitempty"`
	SessionId string `json:"session_id,omitempty"`
	IpAddress string `json:"ip_address,omitempty"`
	MetaJson  []byte `json:"meta_json,omitempty"`
}

func (x *AuditRecord) GetEventName() string {
	if x == nil {
		return ""
	}
	return x.EventName
}

func (x *AuditRecord) GetStatus() string {
	if x == nil {
		return ""
	}
	return x.Status
}

func (x *AuditRecord) GetUserId() string {
	if x == nil {
		return ""
	}
	return x.UserId
}

func (x *AuditRecord) GetSessionId() string {
	if x == nil {
		return ""
	}
	return x.SessionId
}

func (x *AuditRecord) GetIpAddress() string {
	if x == nil {
		return ""
	}
	return x.IpAddress
}

func (x *AuditRecord) GetMetaJson() []byte {
	if x == nil {
		return nil
	}
	return x.MetaJson
}

type HTTPHeader struct {
	Key    string   `json:"key,omitempty"`
	Values []string `json:"values,omitempty"`
}

func (x *HTTPHeader) GetKey() string {
	if x == nil {
		return ""
	}
	return x.Key
}

func (x *HTTPHeader) GetValues() []string {
	if x == nil {
		return nil
	}
	return x.Values
}
