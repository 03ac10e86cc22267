// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PluginHooks_Implemented_FullMethodName                         = "/chatgrid.plugin.v1.PluginHooks/Implemented"
	PluginHooks_OnActivate_FullMethodName                          = "/chatgrid.plugin.v1.PluginHooks/OnActivate"
	PluginHooks_OnDeactivate_FullMethodName                        = "/chatgrid.plugin.v1.PluginHooks/OnDeactivate"
	PluginHooks_OnConfigurationChange_FullMethodName               = "/chatgrid.plugin.v1.PluginHooks/OnConfigurationChange"
	PluginHooks_OnInstall_FullMethodName                           = "/chatgrid.plugin.v1.PluginHooks/OnInstall"
	PluginHooks_ConfigurationWillBeSaved_FullMethodName            = "/chatgrid.plugin.v1.PluginHooks/ConfigurationWillBeSaved"
	PluginHooks_OnSendDailyTelemetry_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/OnSendDailyTelemetry"
	PluginHooks_RunDataRetention_FullMethodName                    = "/chatgrid.plugin.v1.PluginHooks/RunDataRetention"
	PluginHooks_OnCloudLimitsUpdated_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/OnCloudLimitsUpdated"
	PluginHooks_MessageWillBePosted_FullMethodName                 = "/chatgrid.plugin.v1.PluginHooks/MessageWillBePosted"
	PluginHooks_MessageWillBeUpdated_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/MessageWillBeUpdated"
	PluginHooks_MessageHasBeenPosted_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/MessageHasBeenPosted"
	PluginHooks_MessageHasBeenUpdated_FullMethodName               = "/chatgrid.plugin.v1.PluginHooks/MessageHasBeenUpdated"
	PluginHooks_MessageHasBeenDeleted_FullMethodName               = "/chatgrid.plugin.v1.PluginHooks/MessageHasBeenDeleted"
	PluginHooks_MessagesWillBeConsumed_FullMethodName              = "/chatgrid.plugin.v1.PluginHooks/MessagesWillBeConsumed"
	PluginHooks_ReactionHasBeenAdded_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/ReactionHasBeenAdded"
	PluginHooks_ReactionHasBeenRemoved_FullMethodName              = "/chatgrid.plugin.v1.PluginHooks/ReactionHasBeenRemoved"
	PluginHooks_NotificationWillBePushed_FullMethodName            = "/chatgrid.plugin.v1.PluginHooks/NotificationWillBePushed"
	PluginHooks_EmailNotificationWillBeSent_FullMethodName         = "/chatgrid.plugin.v1.PluginHooks/EmailNotificationWillBeSent"
	PluginHooks_PreferencesHaveChanged_FullMethodName              = "/chatgrid.plugin.v1.PluginHooks/PreferencesHaveChanged"
	PluginHooks_FileWillBeUploaded_FullMethodName                  = "/chatgrid.plugin.v1.PluginHooks/FileWillBeUploaded"
	PluginHooks_UserHasBeenCreated_FullMethodName                  = "/chatgrid.plugin.v1.PluginHooks/UserHasBeenCreated"
	PluginHooks_UserWillLogIn_FullMethodName                       = "/chatgrid.plugin.v1.PluginHooks/UserWillLogIn"
	PluginHooks_UserHasLoggedIn_FullMethodName                     = "/chatgrid.plugin.v1.PluginHooks/UserHasLoggedIn"
	PluginHooks_UserHasBeenDeactivated_FullMethodName              = "/chatgrid.plugin.v1.PluginHooks/UserHasBeenDeactivated"
	PluginHooks_OnSAMLLogin_FullMethodName                         = "/chatgrid.plugin.v1.PluginHooks/OnSAMLLogin"
	PluginHooks_ChannelHasBeenCreated_FullMethodName               = "/chatgrid.plugin.v1.PluginHooks/ChannelHasBeenCreated"
	PluginHooks_UserHasJoinedChannel_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/UserHasJoinedChannel"
	PluginHooks_UserHasLeftChannel_FullMethodName                  = "/chatgrid.plugin.v1.PluginHooks/UserHasLeftChannel"
	PluginHooks_UserHasJoinedTeam_FullMethodName                   = "/chatgrid.plugin.v1.PluginHooks/UserHasJoinedTeam"
	PluginHooks_UserHasLeftTeam_FullMethodName                     = "/chatgrid.plugin.v1.PluginHooks/UserHasLeftTeam"
	PluginHooks_ExecuteCommand_FullMethodName                      = "/chatgrid.plugin.v1.PluginHooks/ExecuteCommand"
	PluginHooks_OnWebSocketConnect_FullMethodName                  = "/chatgrid.plugin.v1.PluginHooks/OnWebSocketConnect"
	PluginHooks_OnWebSocketDisconnect_FullMethodName               = "/chatgrid.plugin.v1.PluginHooks/OnWebSocketDisconnect"
	PluginHooks_WebSocketMessageHasBeenPosted_FullMethodName       = "/chatgrid.plugin.v1.PluginHooks/WebSocketMessageHasBeenPosted"
	PluginHooks_OnPluginClusterEvent_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/OnPluginClusterEvent"
	PluginHooks_OnSharedChannelsSyncMsg_FullMethodName             = "/chatgrid.plugin.v1.PluginHooks/OnSharedChannelsSyncMsg"
	PluginHooks_OnSharedChannelsPing_FullMethodName                = "/chatgrid.plugin.v1.PluginHooks/OnSharedChannelsPing"
	PluginHooks_OnSharedChannelsAttachmentSyncMsg_FullMethodName   = "/chatgrid.plugin.v1.PluginHooks/OnSharedChannelsAttachmentSyncMsg"
	PluginHooks_OnSharedChannelsProfileImageSyncMsg_FullMethodName = "/chatgrid.plugin.v1.PluginHooks/OnSharedChannelsProfileImageSyncMsg"
	PluginHooks_GenerateSupportData_FullMethodName                 = "/chatgrid.plugin.v1.PluginHooks/GenerateSupportData"
	PluginHooks_ServeHTTP_FullMethodName                           = "/chatgrid.plugin.v1.PluginHooks/ServeHTTP"
	PluginHooks_ServeMetrics_FullMethodName                        = "/chatgrid.plugin.v1.PluginHooks/ServeMetrics"
)

// PluginHooksClient is the client API for the PluginHooks service.
type PluginHooksClient interface {
	Implemented(ctx context.Context, in *ImplementedRequest, opts ...grpc.CallOption) (*ImplementedResponse, error)
	OnActivate(ctx context.Context, in *OnActivateRequest, opts ...grpc.CallOption) (*OnActivateResponse, error)
	OnDeactivate(ctx context.Context, in *OnDeactivateRequest, opts ...grpc.CallOption) (*OnDeactivateResponse, error)
	OnConfigurationChange(ctx context.Context, in *OnConfigurationChangeRequest, opts ...grpc.CallOption) (*OnConfigurationChangeResponse, error)
	OnInstall(ctx context.Context, in *OnInstallRequest, opts ...grpc.CallOption) (*OnInstallResponse, error)
	ConfigurationWillBeSaved(ctx context.Context, in *ConfigurationWillBeSavedRequest, opts ...grpc.CallOption) (*ConfigurationWillBeSavedResponse, error)
	OnSendDailyTelemetry(ctx context.Context, in *OnSendDailyTelemetryRequest, opts ...grpc.CallOption) (*OnSendDailyTelemetryResponse, error)
	RunDataRetention(ctx context.Context, in *RunDataRetentionRequest, opts ...grpc.CallOption) (*RunDataRetentionResponse, error)
	OnCloudLimitsUpdated(ctx context.Context, in *OnCloudLimitsUpdatedRequest, opts ...grpc.CallOption) (*OnCloudLimitsUpdatedResponse, error)
	MessageWillBePosted(ctx context.Context, in *MessageWillBePostedRequest, opts ...grpc.CallOption) (*MessageWillBePostedResponse, error)
	MessageWillBeUpdated(ctx context.Context, in *MessageWillBeUpdatedRequest, opts ...grpc.CallOption) (*MessageWillBeUpdatedResponse, error)
	MessageHasBeenPosted(ctx context.Context, in *MessageHasBeenPostedRequest, opts ...grpc.CallOption) (*MessageHasBeenPostedResponse, error)
	MessageHasBeenUpdated(ctx context.Context, in *MessageHasBeenUpdatedRequest, opts ...grpc.CallOption) (*MessageHasBeenUpdatedResponse, error)
	MessageHasBeenDeleted(ctx context.Context, in *MessageHasBeenDeletedRequest, opts ...grpc.CallOption) (*MessageHasBeenDeletedResponse, error)
	MessagesWillBeConsumed(ctx context.Context, in *MessagesWillBeConsumedRequest, opts ...grpc.CallOption) (*MessagesWillBeConsumedResponse, error)
	ReactionHasBeenAdded(ctx context.Context, in *ReactionHasBeenAddedRequest, opts ...grpc.CallOption) (*ReactionHasBeenAddedResponse, error)
	ReactionHasBeenRemoved(ctx context.Context, in *ReactionHasBeenRemovedRequest, opts ...grpc.CallOption) (*ReactionHasBeenRemovedResponse, error)
	NotificationWillBePushed(ctx context.Context, in *NotificationWillBePushedRequest, opts ...grpc.CallOption) (*NotificationWillBePushedResponse, error)
	EmailNotificationWillBeSent(ctx context.Context, in *EmailNotificationWillBeSentRequest, opts ...grpc.CallOption) (*EmailNotificationWillBeSentResponse, error)
	PreferencesHaveChanged(ctx context.Context, in *PreferencesHaveChangedRequest, opts ...grpc.CallOption) (*PreferencesHaveChangedResponse, error)
	FileWillBeUploaded(ctx context.Context, in *FileWillBeUploadedRequest, opts ...grpc.CallOption) (*FileWillBeUploadedResponse, error)
	UserHasBeenCreated(ctx context.Context, in *UserHasBeenCreatedRequest, opts ...grpc.CallOption) (*UserHasBeenCreatedResponse, error)
	UserWillLogIn(ctx context.Context, in *UserWillLogInRequest, opts ...grpc.CallOption) (*UserWillLogInResponse, error)
	UserHasLoggedIn(ctx context.Context, in *UserHasLoggedInRequest, opts ...grpc.CallOption) (*UserHasLoggedInResponse, error)
	UserHasBeenDeactivated(ctx context.Context, in *UserHasBeenDeactivatedRequest, opts ...grpc.CallOption) (*UserHasBeenDeactivatedResponse, error)
	OnSAMLLogin(ctx context.Context, in *OnSAMLLoginRequest, opts ...grpc.CallOption) (*OnSAMLLoginResponse, error)
	ChannelHasBeenCreated(ctx context.Context, in *ChannelHasBeenCreatedRequest, opts ...grpc.CallOption) (*ChannelHasBeenCreatedResponse, error)
	UserHasJoinedChannel(ctx context.Context, in *UserHasJoinedChannelRequest, opts ...grpc.CallOption) (*UserHasJoinedChannelResponse, error)
	UserHasLeftChannel(ctx context.Context, in *UserHasLeftChannelRequest, opts ...grpc.CallOption) (*UserHasLeftChannelResponse, error)
	UserHasJoinedTeam(ctx context.Context, in *UserHasJoinedTeamRequest, opts ...grpc.CallOption) (*UserHasJoinedTeamResponse, error)
	UserHasLeftTeam(ctx context.Context, in *UserHasLeftTeamRequest, opts ...grpc.CallOption) (*UserHasLeftTeamResponse, error)
	ExecuteCommand(ctx context.Context, in *ExecuteCommandRequest, opts ...grpc.CallOption) (*ExecuteCommandResponse, error)
	OnWebSocketConnect(ctx context.Context, in *OnWebSocketConnectRequest, opts ...grpc.CallOption) (*OnWebSocketConnectResponse, error)
	OnWebSocketDisconnect(ctx context.Context, in *OnWebSocketDisconnectRequest, opts ...grpc.CallOption) (*OnWebSocketDisconnectResponse, error)
	WebSocketMessageHasBeenPosted(ctx context.Context, in *WebSocketMessageHasBeenPostedRequest, opts ...grpc.CallOption) (*WebSocketMessageHasBeenPostedResponse, error)
	OnPluginClusterEvent(ctx context.Context, in *OnPluginClusterEventRequest, opts ...grpc.CallOption) (*OnPluginClusterEventResponse, error)
	OnSharedChannelsSyncMsg(ctx context.Context, in *OnSharedChannelsSyncMsgRequest, opts ...grpc.CallOption) (*OnSharedChannelsSyncMsgResponse, error)
	OnSharedChannelsPing(ctx context.Context, in *OnSharedChannelsPingRequest, opts ...grpc.CallOption) (*OnSharedChannelsPingResponse, error)
	OnSharedChannelsAttachmentSyncMsg(ctx context.Context, in *OnSharedChannelsAttachmentSyncMsgRequest, opts ...grpc.CallOption) (*OnSharedChannelsAttachmentSyncMsgResponse, error)
	OnSharedChannelsProfileImageSyncMsg(ctx context.Context, in *OnSharedChannelsProfileImageSyncMsgRequest, opts ...grpc.CallOption) (*OnSharedChannelsProfileImageSyncMsgResponse, error)
	GenerateSupportData(ctx context.Context, in *GenerateSupportDataRequest, opts ...grpc.CallOption) (*GenerateSupportDataResponse, error)
	ServeHTTP(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ServeHTTPRequest, ServeHTTPResponse], error)
	ServeMetrics(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ServeMetricsRequest, ServeMetricsResponse], error)
}

type pluginHooksClient struct {
	cc grpc.ClientConnInterface
}

// NewPluginHooksClient creates a client for the PluginHooks service.
func NewPluginHooksClient(cc grpc.ClientConnInterface) PluginHooksClient {
	return &pluginHooksClient{cc: cc}
}

func (c *pluginHooksClient) Implemented(ctx context.Context, in *ImplementedRequest, opts ...grpc.CallOption) (*ImplementedResponse, error) {
	out := new(ImplementedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_Implemented_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnActivate(ctx context.Context, in *OnActivateRequest, opts ...grpc.CallOption) (*OnActivateResponse, error) {
	out := new(OnActivateResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnActivate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnDeactivate(ctx context.Context, in *OnDeactivateRequest, opts ...grpc.CallOption) (*OnDeactivateResponse, error) {
	out := new(OnDeactivateResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnDeactivate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnConfigurationChange(ctx context.Context, in *OnConfigurationChangeRequest, opts ...grpc.CallOption) (*OnConfigurationChangeResponse, error) {
	out := new(OnConfigurationChangeResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnConfigurationChange_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnInstall(ctx context.Context, in *OnInstallRequest, opts ...grpc.CallOption) (*OnInstallResponse, error) {
	out := new(OnInstallResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnInstall_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) ConfigurationWillBeSaved(ctx context.Context, in *ConfigurationWillBeSavedRequest, opts ...grpc.CallOption) (*ConfigurationWillBeSavedResponse, error) {
	out := new(ConfigurationWillBeSavedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_ConfigurationWillBeSaved_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnSendDailyTelemetry(ctx context.Context, in *OnSendDailyTelemetryRequest, opts ...grpc.CallOption) (*OnSendDailyTelemetryResponse, error) {
	out := new(OnSendDailyTelemetryResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnSendDailyTelemetry_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) RunDataRetention(ctx context.Context, in *RunDataRetentionRequest, opts ...grpc.CallOption) (*RunDataRetentionResponse, error) {
	out := new(RunDataRetentionResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_RunDataRetention_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnCloudLimitsUpdated(ctx context.Context, in *OnCloudLimitsUpdatedRequest, opts ...grpc.CallOption) (*OnCloudLimitsUpdatedResponse, error) {
	out := new(OnCloudLimitsUpdatedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnCloudLimitsUpdated_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) MessageWillBePosted(ctx context.Context, in *MessageWillBePostedRequest, opts ...grpc.CallOption) (*MessageWillBePostedResponse, error) {
	out := new(MessageWillBePostedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_MessageWillBePosted_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) MessageWillBeUpdated(ctx context.Context, in *MessageWillBeUpdatedRequest, opts ...grpc.CallOption) (*MessageWillBeUpdatedResponse, error) {
	out := new(MessageWillBeUpdatedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_MessageWillBeUpdated_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) MessageHasBeenPosted(ctx context.Context, in *MessageHasBeenPostedRequest, opts ...grpc.CallOption) (*MessageHasBeenPostedResponse, error) {
	out := new(MessageHasBeenPostedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_MessageHasBeenPosted_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) MessageHasBeenUpdated(ctx context.Context, in *MessageHasBeenUpdatedRequest, opts ...grpc.CallOption) (*MessageHasBeenUpdatedResponse, error) {
	out := new(MessageHasBeenUpdatedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_MessageHasBeenUpdated_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) MessageHasBeenDeleted(ctx context.Context, in *MessageHasBeenDeletedRequest, opts ...grpc.CallOption) (*MessageHasBeenDeletedResponse, error) {
	out := new(MessageHasBeenDeletedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_MessageHasBeenDeleted_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) MessagesWillBeConsumed(ctx context.Context, in *MessagesWillBeConsumedRequest, opts ...grpc.CallOption) (*MessagesWillBeConsumedResponse, error) {
	out := new(MessagesWillBeConsumedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_MessagesWillBeConsumed_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) ReactionHasBeenAdded(ctx context.Context, in *ReactionHasBeenAddedRequest, opts ...grpc.CallOption) (*ReactionHasBeenAddedResponse, error) {
	out := new(ReactionHasBeenAddedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_ReactionHasBeenAdded_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) ReactionHasBeenRemoved(ctx context.Context, in *ReactionHasBeenRemovedRequest, opts ...grpc.CallOption) (*ReactionHasBeenRemovedResponse, error) {
	out := new(ReactionHasBeenRemovedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_ReactionHasBeenRemoved_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) NotificationWillBePushed(ctx context.Context, in *NotificationWillBePushedRequest, opts ...grpc.CallOption) (*NotificationWillBePushedResponse, error) {
	out := new(NotificationWillBePushedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_NotificationWillBePushed_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) EmailNotificationWillBeSent(ctx context.Context, in *EmailNotificationWillBeSentRequest, opts ...grpc.CallOption) (*EmailNotificationWillBeSentResponse, error) {
	out := new(EmailNotificationWillBeSentResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_EmailNotificationWillBeSent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) PreferencesHaveChanged(ctx context.Context, in *PreferencesHaveChangedRequest, opts ...grpc.CallOption) (*PreferencesHaveChangedResponse, error) {
	out := new(PreferencesHaveChangedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_PreferencesHaveChanged_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) FileWillBeUploaded(ctx context.Context, in *FileWillBeUploadedRequest, opts ...grpc.CallOption) (*FileWillBeUploadedResponse, error) {
	out := new(FileWillBeUploadedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_FileWillBeUploaded_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserHasBeenCreated(ctx context.Context, in *UserHasBeenCreatedRequest, opts ...grpc.CallOption) (*UserHasBeenCreatedResponse, error) {
	out := new(UserHasBeenCreatedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserHasBeenCreated_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserWillLogIn(ctx context.Context, in *UserWillLogInRequest, opts ...grpc.CallOption) (*UserWillLogInResponse, error) {
	out := new(UserWillLogInResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserWillLogIn_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserHasLoggedIn(ctx context.Context, in *UserHasLoggedInRequest, opts ...grpc.CallOption) (*UserHasLoggedInResponse, error) {
	out := new(UserHasLoggedInResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserHasLoggedIn_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserHasBeenDeactivated(ctx context.Context, in *UserHasBeenDeactivatedRequest, opts ...grpc.CallOption) (*UserHasBeenDeactivatedResponse, error) {
	out := new(UserHasBeenDeactivatedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserHasBeenDeactivated_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnSAMLLogin(ctx context.Context, in *OnSAMLLoginRequest, opts ...grpc.CallOption) (*OnSAMLLoginResponse, error) {
	out := new(OnSAMLLoginResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnSAMLLogin_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) ChannelHasBeenCreated(ctx context.Context, in *ChannelHasBeenCreatedRequest, opts ...grpc.CallOption) (*ChannelHasBeenCreatedResponse, error) {
	out := new(ChannelHasBeenCreatedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_ChannelHasBeenCreated_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserHasJoinedChannel(ctx context.Context, in *UserHasJoinedChannelRequest, opts ...grpc.CallOption) (*UserHasJoinedChannelResponse, error) {
	out := new(UserHasJoinedChannelResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserHasJoinedChannel_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserHasLeftChannel(ctx context.Context, in *UserHasLeftChannelRequest, opts ...grpc.CallOption) (*UserHasLeftChannelResponse, error) {
	out := new(UserHasLeftChannelResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserHasLeftChannel_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserHasJoinedTeam(ctx context.Context, in *UserHasJoinedTeamRequest, opts ...grpc.CallOption) (*UserHasJoinedTeamResponse, error) {
	out := new(UserHasJoinedTeamResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserHasJoinedTeam_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) UserHasLeftTeam(ctx context.Context, in *UserHasLeftTeamRequest, opts ...grpc.CallOption) (*UserHasLeftTeamResponse, error) {
	out := new(UserHasLeftTeamResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_UserHasLeftTeam_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) ExecuteCommand(ctx context.Context, in *ExecuteCommandRequest, opts ...grpc.CallOption) (*ExecuteCommandResponse, error) {
	out := new(ExecuteCommandResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_ExecuteCommand_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnWebSocketConnect(ctx context.Context, in *OnWebSocketConnectRequest, opts ...grpc.CallOption) (*OnWebSocketConnectResponse, error) {
	out := new(OnWebSocketConnectResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnWebSocketConnect_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnWebSocketDisconnect(ctx context.Context, in *OnWebSocketDisconnectRequest, opts ...grpc.CallOption) (*OnWebSocketDisconnectResponse, error) {
	out := new(OnWebSocketDisconnectResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnWebSocketDisconnect_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) WebSocketMessageHasBeenPosted(ctx context.Context, in *WebSocketMessageHasBeenPostedRequest, opts ...grpc.CallOption) (*WebSocketMessageHasBeenPostedResponse, error) {
	out := new(WebSocketMessageHasBeenPostedResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_WebSocketMessageHasBeenPosted_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnPluginClusterEvent(ctx context.Context, in *OnPluginClusterEventRequest, opts ...grpc.CallOption) (*OnPluginClusterEventResponse, error) {
	out := new(OnPluginClusterEventResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnPluginClusterEvent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnSharedChannelsSyncMsg(ctx context.Context, in *OnSharedChannelsSyncMsgRequest, opts ...grpc.CallOption) (*OnSharedChannelsSyncMsgResponse, error) {
	out := new(OnSharedChannelsSyncMsgResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnSharedChannelsSyncMsg_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnSharedChannelsPing(ctx context.Context, in *OnSharedChannelsPingRequest, opts ...grpc.CallOption) (*OnSharedChannelsPingResponse, error) {
	out := new(OnSharedChannelsPingResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnSharedChannelsPing_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnSharedChannelsAttachmentSyncMsg(ctx context.Context, in *OnSharedChannelsAttachmentSyncMsgRequest, opts ...grpc.CallOption) (*OnSharedChannelsAttachmentSyncMsgResponse, error) {
	out := new(OnSharedChannelsAttachmentSyncMsgResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnSharedChannelsAttachmentSyncMsg_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) OnSharedChannelsProfileImageSyncMsg(ctx context.Context, in *OnSharedChannelsProfileImageSyncMsgRequest, opts ...grpc.CallOption) (*OnSharedChannelsProfileImageSyncMsgResponse, error) {
	out := new(OnSharedChannelsProfileImageSyncMsgResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_OnSharedChannelsProfileImageSyncMsg_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) GenerateSupportData(ctx context.Context, in *GenerateSupportDataRequest, opts ...grpc.CallOption) (*GenerateSupportDataResponse, error) {
	out := new(GenerateSupportDataResponse)
	if err := c.cc.Invoke(ctx, PluginHooks_GenerateSupportData_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginHooksClient) ServeHTTP(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ServeHTTPRequest, ServeHTTPResponse], error) {
	stream, err := c.cc.NewStream(ctx, &PluginHooks_ServiceDesc.Streams[0], PluginHooks_ServeHTTP_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[ServeHTTPRequest, ServeHTTPResponse]{ClientStream: stream}, nil
}

func (c *pluginHooksClient) ServeMetrics(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ServeMetricsRequest, ServeMetricsResponse], error) {
	stream, err := c.cc.NewStream(ctx, &PluginHooks_ServiceDesc.Streams[1], PluginHooks_ServeMetrics_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[ServeMetricsRequest, ServeMetricsResponse]{ClientStream: stream}, nil
}

// PluginHooksServer is the server API for the PluginHooks service. Embed
// UnimplementedPluginHooksServer for forward compatibility.
type PluginHooksServer interface {
	Implemented(context.Context, *ImplementedRequest) (*ImplementedResponse, error)
	OnActivate(context.Context, *OnActivateRequest) (*OnActivateResponse, error)
	OnDeactivate(context.Context, *OnDeactivateRequest) (*OnDeactivateResponse, error)
	OnConfigurationChange(context.Context, *OnConfigurationChangeRequest) (*OnConfigurationChangeResponse, error)
	OnInstall(context.Context, *OnInstallRequest) (*OnInstallResponse, error)
	ConfigurationWillBeSaved(context.Context, *ConfigurationWillBeSavedRequest) (*ConfigurationWillBeSavedResponse, error)
	OnSendDailyTelemetry(context.Context, *OnSendDailyTelemetryRequest) (*OnSendDailyTelemetryResponse, error)
	RunDataRetention(context.Context, *RunDataRetentionRequest) (*RunDataRetentionResponse, error)
	OnCloudLimitsUpdated(context.Context, *OnCloudLimitsUpdatedRequest) (*OnCloudLimitsUpdatedResponse, error)
	MessageWillBePosted(context.Context, *MessageWillBePostedRequest) (*MessageWillBePostedResponse, error)
	MessageWillBeUpdated(context.Context, *MessageWillBeUpdatedRequest) (*MessageWillBeUpdatedResponse, error)
	MessageHasBeenPosted(context.Context, *MessageHasBeenPostedRequest) (*MessageHasBeenPostedResponse, error)
	MessageHasBeenUpdated(context.Context, *MessageHasBeenUpdatedRequest) (*MessageHasBeenUpdatedResponse, error)
	MessageHasBeenDeleted(context.Context, *MessageHasBeenDeletedRequest) (*MessageHasBeenDeletedResponse, error)
	MessagesWillBeConsumed(context.Context, *MessagesWillBeConsumedRequest) (*MessagesWillBeConsumedResponse, error)
	ReactionHasBeenAdded(context.Context, *ReactionHasBeenAddedRequest) (*ReactionHasBeenAddedResponse, error)
	ReactionHasBeenRemoved(context.Context, *ReactionHasBeenRemovedRequest) (*ReactionHasBeenRemovedResponse, error)
	NotificationWillBePushed(context.Context, *NotificationWillBePushedRequest) (*NotificationWillBePushedResponse, error)
	EmailNotificationWillBeSent(context.Context, *EmailNotificationWillBeSentRequest) (*EmailNotificationWillBeSentResponse, error)
	PreferencesHaveChanged(context.Context, *PreferencesHaveChangedRequest) (*PreferencesHaveChangedResponse, error)
	FileWillBeUploaded(context.Context, *FileWillBeUploadedRequest) (*FileWillBeUploadedResponse, error)
	UserHasBeenCreated(context.Context, *UserHasBeenCreatedRequest) (*UserHasBeenCreatedResponse, error)
	UserWillLogIn(context.Context, *UserWillLogInRequest) (*UserWillLogInResponse, error)
	UserHasLoggedIn(context.Context, *UserHasLoggedInRequest) (*UserHasLoggedInResponse, error)
	UserHasBeenDeactivated(context.Context, *UserHasBeenDeactivatedRequest) (*UserHasBeenDeactivatedResponse, error)
	OnSAMLLogin(context.Context, *OnSAMLLoginRequest) (*OnSAMLLoginResponse, error)
	ChannelHasBeenCreated(context.Context, *ChannelHasBeenCreatedRequest) (*ChannelHasBeenCreatedResponse, error)
	UserHasJoinedChannel(context.Context, *UserHasJoinedChannelRequest) (*UserHasJoinedChannelResponse, error)
	UserHasLeftChannel(context.Context, *UserHasLeftChannelRequest) (*UserHasLeftChannelResponse, error)
	UserHasJoinedTeam(context.Context, *UserHasJoinedTeamRequest) (*UserHasJoinedTeamResponse, error)
	UserHasLeftTeam(context.Context, *UserHasLeftTeamRequest) (*UserHasLeftTeamResponse, error)
	ExecuteCommand(context.Context, *ExecuteCommandRequest) (*ExecuteCommandResponse, error)
	OnWebSocketConnect(context.Context, *OnWebSocketConnectRequest) (*OnWebSocketConnectResponse, error)
	OnWebSocketDisconnect(context.Context, *OnWebSocketDisconnectRequest) (*OnWebSocketDisconnectResponse, error)
	WebSocketMessageHasBeenPosted(context.Context, *WebSocketMessageHasBeenPostedRequest) (*WebSocketMessageHasBeenPostedResponse, error)
	OnPluginClusterEvent(context.Context, *OnPluginClusterEventRequest) (*OnPluginClusterEventResponse, error)
	OnSharedChannelsSyncMsg(context.Context, *OnSharedChannelsSyncMsgRequest) (*OnSharedChannelsSyncMsgResponse, error)
	OnSharedChannelsPing(context.Context, *OnSharedChannelsPingRequest) (*OnSharedChannelsPingResponse, error)
	OnSharedChannelsAttachmentSyncMsg(context.Context, *OnSharedChannelsAttachmentSyncMsgRequest) (*OnSharedChannelsAttachmentSyncMsgResponse, error)
	OnSharedChannelsProfileImageSyncMsg(context.Context, *OnSharedChannelsProfileImageSyncMsgRequest) (*OnSharedChannelsProfileImageSyncMsgResponse, error)
	GenerateSupportData(context.Context, *GenerateSupportDataRequest) (*GenerateSupportDataResponse, error)
	ServeHTTP(grpc.BidiStreamingServer[ServeHTTPRequest, ServeHTTPResponse]) error
	ServeMetrics(grpc.BidiStreamingServer[ServeMetricsRequest, ServeMetricsResponse]) error
}

// UnimplementedPluginHooksServer returns Unimplemented for every method.
type UnimplementedPluginHooksServer struct{}

func (UnimplementedPluginHooksServer) Implemented(context.Context, *ImplementedRequest) (*ImplementedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Implemented not implemented")
}
func (UnimplementedPluginHooksServer) OnActivate(context.Context, *OnActivateRequest) (*OnActivateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnActivate not implemented")
}
func (UnimplementedPluginHooksServer) OnDeactivate(context.Context, *OnDeactivateRequest) (*OnDeactivateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnDeactivate not implemented")
}
func (UnimplementedPluginHooksServer) OnConfigurationChange(context.Context, *OnConfigurationChangeRequest) (*OnConfigurationChangeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnConfigurationChange not implemented")
}
func (UnimplementedPluginHooksServer) OnInstall(context.Context, *OnInstallRequest) (*OnInstallResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnInstall not implemented")
}
func (UnimplementedPluginHooksServer) ConfigurationWillBeSaved(context.Context, *ConfigurationWillBeSavedRequest) (*ConfigurationWillBeSavedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfigurationWillBeSaved not implemented")
}
func (UnimplementedPluginHooksServer) OnSendDailyTelemetry(context.Context, *OnSendDailyTelemetryRequest) (*OnSendDailyTelemetryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnSendDailyTelemetry not implemented")
}
func (UnimplementedPluginHooksServer) RunDataRetention(context.Context, *RunDataRetentionRequest) (*RunDataRetentionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunDataRetention not implemented")
}
func (UnimplementedPluginHooksServer) OnCloudLimitsUpdated(context.Context, *OnCloudLimitsUpdatedRequest) (*OnCloudLimitsUpdatedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnCloudLimitsUpdated not implemented")
}
func (UnimplementedPluginHooksServer) MessageWillBePosted(context.Context, *MessageWillBePostedRequest) (*MessageWillBePostedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MessageWillBePosted not implemented")
}
func (UnimplementedPluginHooksServer) MessageWillBeUpdated(context.Context, *MessageWillBeUpdatedRequest) (*MessageWillBeUpdatedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MessageWillBeUpdated not implemented")
}
func (UnimplementedPluginHooksServer) MessageHasBeenPosted(context.Context, *MessageHasBeenPostedRequest) (*MessageHasBeenPostedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MessageHasBeenPosted not implemented")
}
func (UnimplementedPluginHooksServer) MessageHasBeenUpdated(context.Context, *MessageHasBeenUpdatedRequest) (*MessageHasBeenUpdatedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MessageHasBeenUpdated not implemented")
}
func (UnimplementedPluginHooksServer) MessageHasBeenDeleted(context.Context, *MessageHasBeenDeletedRequest) (*MessageHasBeenDeletedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MessageHasBeenDeleted not implemented")
}
func (UnimplementedPluginHooksServer) MessagesWillBeConsumed(context.Context, *MessagesWillBeConsumedRequest) (*MessagesWillBeConsumedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MessagesWillBeConsumed not implemented")
}
func (UnimplementedPluginHooksServer) ReactionHasBeenAdded(context.Context, *ReactionHasBeenAddedRequest) (*ReactionHasBeenAddedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReactionHasBeenAdded not implemented")
}
func (UnimplementedPluginHooksServer) ReactionHasBeenRemoved(context.Context, *ReactionHasBeenRemovedRequest) (*ReactionHasBeenRemovedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReactionHasBeenRemoved not implemented")
}
func (UnimplementedPluginHooksServer) NotificationWillBePushed(context.Context, *NotificationWillBePushedRequest) (*NotificationWillBePushedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method NotificationWillBePushed not implemented")
}
func (UnimplementedPluginHooksServer) EmailNotificationWillBeSent(context.Context, *EmailNotificationWillBeSentRequest) (*EmailNotificationWillBeSentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EmailNotificationWillBeSent not implemented")
}
func (UnimplementedPluginHooksServer) PreferencesHaveChanged(context.Context, *PreferencesHaveChangedRequest) (*PreferencesHaveChangedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreferencesHaveChanged not implemented")
}
func (UnimplementedPluginHooksServer) FileWillBeUploaded(context.Context, *FileWillBeUploadedRequest) (*FileWillBeUploadedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FileWillBeUploaded not implemented")
}
func (UnimplementedPluginHooksServer) UserHasBeenCreated(context.Context, *UserHasBeenCreatedRequest) (*UserHasBeenCreatedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserHasBeenCreated not implemented")
}
func (UnimplementedPluginHooksServer) UserWillLogIn(context.Context, *UserWillLogInRequest) (*UserWillLogInResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserWillLogIn not implemented")
}
func (UnimplementedPluginHooksServer) UserHasLoggedIn(context.Context, *UserHasLoggedInRequest) (*UserHasLoggedInResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserHasLoggedIn not implemented")
}
func (UnimplementedPluginHooksServer) UserHasBeenDeactivated(context.Context, *UserHasBeenDeactivatedRequest) (*UserHasBeenDeactivatedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserHasBeenDeactivated not implemented")
}
func (UnimplementedPluginHooksServer) OnSAMLLogin(context.Context, *OnSAMLLoginRequest) (*OnSAMLLoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnSAMLLogin not implemented")
}
func (UnimplementedPluginHooksServer) ChannelHasBeenCreated(context.Context, *ChannelHasBeenCreatedRequest) (*ChannelHasBeenCreatedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChannelHasBeenCreated not implemented")
}
func (UnimplementedPluginHooksServer) UserHasJoinedChannel(context.Context, *UserHasJoinedChannelRequest) (*UserHasJoinedChannelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserHasJoinedChannel not implemented")
}
func (UnimplementedPluginHooksServer) UserHasLeftChannel(context.Context, *UserHasLeftChannelRequest) (*UserHasLeftChannelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserHasLeftChannel not implemented")
}
func (UnimplementedPluginHooksServer) UserHasJoinedTeam(context.Context, *UserHasJoinedTeamRequest) (*UserHasJoinedTeamResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserHasJoinedTeam not implemented")
}
func (UnimplementedPluginHooksServer) UserHasLeftTeam(context.Context, *UserHasLeftTeamRequest) (*UserHasLeftTeamResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UserHasLeftTeam not implemented")
}
func (UnimplementedPluginHooksServer) ExecuteCommand(context.Context, *ExecuteCommandRequest) (*ExecuteCommandResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExecuteCommand not implemented")
}
func (UnimplementedPluginHooksServer) OnWebSocketConnect(context.Context, *OnWebSocketConnectRequest) (*OnWebSocketConnectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnWebSocketConnect not implemented")
}
func (UnimplementedPluginHooksServer) OnWebSocketDisconnect(context.Context, *OnWebSocketDisconnectRequest) (*OnWebSocketDisconnectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnWebSocketDisconnect not implemented")
}
func (UnimplementedPluginHooksServer) WebSocketMessageHasBeenPosted(context.Context, *WebSocketMessageHasBeenPostedRequest) (*WebSocketMessageHasBeenPostedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WebSocketMessageHasBeenPosted not implemented")
}
func (UnimplementedPluginHooksServer) OnPluginClusterEvent(context.Context, *OnPluginClusterEventRequest) (*OnPluginClusterEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnPluginClusterEvent not implemented")
}
func (UnimplementedPluginHooksServer) OnSharedChannelsSyncMsg(context.Context, *OnSharedChannelsSyncMsgRequest) (*OnSharedChannelsSyncMsgResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnSharedChannelsSyncMsg not implemented")
}
func (UnimplementedPluginHooksServer) OnSharedChannelsPing(context.Context, *OnSharedChannelsPingRequest) (*OnSharedChannelsPingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnSharedChannelsPing not implemented")
}
func (UnimplementedPluginHooksServer) OnSharedChannelsAttachmentSyncMsg(context.Context, *OnSharedChannelsAttachmentSyncMsgRequest) (*OnSharedChannelsAttachmentSyncMsgResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnSharedChannelsAttachmentSyncMsg not implemented")
}
func (UnimplementedPluginHooksServer) OnSharedChannelsProfileImageSyncMsg(context.Context, *OnSharedChannelsProfileImageSyncMsgRequest) (*OnSharedChannelsProfileImageSyncMsgResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OnSharedChannelsProfileImageSyncMsg not implemented")
}
func (UnimplementedPluginHooksServer) GenerateSupportData(context.Context, *GenerateSupportDataRequest) (*GenerateSupportDataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateSupportData not implemented")
}
func (UnimplementedPluginHooksServer) ServeHTTP(grpc.BidiStreamingServer[ServeHTTPRequest, ServeHTTPResponse]) error {
	return status.Error(codes.Unimplemented, "method ServeHTTP not implemented")
}
func (UnimplementedPluginHooksServer) ServeMetrics(grpc.BidiStreamingServer[ServeMetricsRequest, ServeMetricsResponse]) error {
	return status.Error(codes.Unimplemented, "method ServeMetrics not implemented")
}

// RegisterPluginHooksServer registers srv on the gRPC server.
func RegisterPluginHooksServer(s grpc.ServiceRegistrar, srv PluginHooksServer) {
	s.RegisterService(&PluginHooks_ServiceDesc, srv)
}

func _PluginHooks_Implemented_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImplementedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).Implemented(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_Implemented_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).Implemented(ctx, req.(*ImplementedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnActivate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnActivateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnActivate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnActivate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnActivate(ctx, req.(*OnActivateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnDeactivate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnDeactivateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnDeactivate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnDeactivate_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnDeactivate(ctx, req.(*OnDeactivateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnConfigurationChange_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnConfigurationChangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnConfigurationChange(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnConfigurationChange_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnConfigurationChange(ctx, req.(*OnConfigurationChangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnInstall_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnInstallRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnInstall(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnInstall_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnInstall(ctx, req.(*OnInstallRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_ConfigurationWillBeSaved_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ConfigurationWillBeSavedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).ConfigurationWillBeSaved(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_ConfigurationWillBeSaved_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).ConfigurationWillBeSaved(ctx, req.(*ConfigurationWillBeSavedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnSendDailyTelemetry_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnSendDailyTelemetryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnSendDailyTelemetry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnSendDailyTelemetry_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnSendDailyTelemetry(ctx, req.(*OnSendDailyTelemetryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_RunDataRetention_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RunDataRetentionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).RunDataRetention(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_RunDataRetention_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).RunDataRetention(ctx, req.(*RunDataRetentionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnCloudLimitsUpdated_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnCloudLimitsUpdatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnCloudLimitsUpdated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnCloudLimitsUpdated_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnCloudLimitsUpdated(ctx, req.(*OnCloudLimitsUpdatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_MessageWillBePosted_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MessageWillBePostedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).MessageWillBePosted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_MessageWillBePosted_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).MessageWillBePosted(ctx, req.(*MessageWillBePostedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_MessageWillBeUpdated_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MessageWillBeUpdatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).MessageWillBeUpdated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_MessageWillBeUpdated_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).MessageWillBeUpdated(ctx, req.(*MessageWillBeUpdatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_MessageHasBeenPosted_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MessageHasBeenPostedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).MessageHasBeenPosted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_MessageHasBeenPosted_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).MessageHasBeenPosted(ctx, req.(*MessageHasBeenPostedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_MessageHasBeenUpdated_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MessageHasBeenUpdatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).MessageHasBeenUpdated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_MessageHasBeenUpdated_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).MessageHasBeenUpdated(ctx, req.(*MessageHasBeenUpdatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_MessageHasBeenDeleted_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MessageHasBeenDeletedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).MessageHasBeenDeleted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_MessageHasBeenDeleted_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).MessageHasBeenDeleted(ctx, req.(*MessageHasBeenDeletedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_MessagesWillBeConsumed_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MessagesWillBeConsumedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).MessagesWillBeConsumed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_MessagesWillBeConsumed_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).MessagesWillBeConsumed(ctx, req.(*MessagesWillBeConsumedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_ReactionHasBeenAdded_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReactionHasBeenAddedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).ReactionHasBeenAdded(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_ReactionHasBeenAdded_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).ReactionHasBeenAdded(ctx, req.(*ReactionHasBeenAddedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_ReactionHasBeenRemoved_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReactionHasBeenRemovedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).ReactionHasBeenRemoved(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_ReactionHasBeenRemoved_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).ReactionHasBeenRemoved(ctx, req.(*ReactionHasBeenRemovedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_NotificationWillBePushed_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NotificationWillBePushedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).NotificationWillBePushed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_NotificationWillBePushed_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).NotificationWillBePushed(ctx, req.(*NotificationWillBePushedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_EmailNotificationWillBeSent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EmailNotificationWillBeSentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).EmailNotificationWillBeSent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_EmailNotificationWillBeSent_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).EmailNotificationWillBeSent(ctx, req.(*EmailNotificationWillBeSentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_PreferencesHaveChanged_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PreferencesHaveChangedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).PreferencesHaveChanged(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_PreferencesHaveChanged_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).PreferencesHaveChanged(ctx, req.(*PreferencesHaveChangedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_FileWillBeUploaded_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FileWillBeUploadedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).FileWillBeUploaded(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_FileWillBeUploaded_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).FileWillBeUploaded(ctx, req.(*FileWillBeUploadedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserHasBeenCreated_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserHasBeenCreatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserHasBeenCreated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserHasBeenCreated_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserHasBeenCreated(ctx, req.(*UserHasBeenCreatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserWillLogIn_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserWillLogInRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserWillLogIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserWillLogIn_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserWillLogIn(ctx, req.(*UserWillLogInRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserHasLoggedIn_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserHasLoggedInRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserHasLoggedIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserHasLoggedIn_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserHasLoggedIn(ctx, req.(*UserHasLoggedInRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserHasBeenDeactivated_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserHasBeenDeactivatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserHasBeenDeactivated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserHasBeenDeactivated_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserHasBeenDeactivated(ctx, req.(*UserHasBeenDeactivatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnSAMLLogin_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnSAMLLoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnSAMLLogin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnSAMLLogin_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnSAMLLogin(ctx, req.(*OnSAMLLoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_ChannelHasBeenCreated_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChannelHasBeenCreatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).ChannelHasBeenCreated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_ChannelHasBeenCreated_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).ChannelHasBeenCreated(ctx, req.(*ChannelHasBeenCreatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserHasJoinedChannel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserHasJoinedChannelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserHasJoinedChannel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserHasJoinedChannel_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserHasJoinedChannel(ctx, req.(*UserHasJoinedChannelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserHasLeftChannel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserHasLeftChannelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserHasLeftChannel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserHasLeftChannel_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserHasLeftChannel(ctx, req.(*UserHasLeftChannelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserHasJoinedTeam_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserHasJoinedTeamRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserHasJoinedTeam(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserHasJoinedTeam_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserHasJoinedTeam(ctx, req.(*UserHasJoinedTeamRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_UserHasLeftTeam_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserHasLeftTeamRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).UserHasLeftTeam(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_UserHasLeftTeam_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).UserHasLeftTeam(ctx, req.(*UserHasLeftTeamRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_ExecuteCommand_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExecuteCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).ExecuteCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_ExecuteCommand_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).ExecuteCommand(ctx, req.(*ExecuteCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnWebSocketConnect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnWebSocketConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnWebSocketConnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnWebSocketConnect_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnWebSocketConnect(ctx, req.(*OnWebSocketConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnWebSocketDisconnect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnWebSocketDisconnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnWebSocketDisconnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnWebSocketDisconnect_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnWebSocketDisconnect(ctx, req.(*OnWebSocketDisconnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_WebSocketMessageHasBeenPosted_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(WebSocketMessageHasBeenPostedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).WebSocketMessageHasBeenPosted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_WebSocketMessageHasBeenPosted_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).WebSocketMessageHasBeenPosted(ctx, req.(*WebSocketMessageHasBeenPostedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnPluginClusterEvent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnPluginClusterEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnPluginClusterEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnPluginClusterEvent_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnPluginClusterEvent(ctx, req.(*OnPluginClusterEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnSharedChannelsSyncMsg_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnSharedChannelsSyncMsgRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnSharedChannelsSyncMsg(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnSharedChannelsSyncMsg_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnSharedChannelsSyncMsg(ctx, req.(*OnSharedChannelsSyncMsgRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnSharedChannelsPing_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnSharedChannelsPingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnSharedChannelsPing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnSharedChannelsPing_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnSharedChannelsPing(ctx, req.(*OnSharedChannelsPingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnSharedChannelsAttachmentSyncMsg_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnSharedChannelsAttachmentSyncMsgRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnSharedChannelsAttachmentSyncMsg(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnSharedChannelsAttachmentSyncMsg_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnSharedChannelsAttachmentSyncMsg(ctx, req.(*OnSharedChannelsAttachmentSyncMsgRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_OnSharedChannelsProfileImageSyncMsg_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OnSharedChannelsProfileImageSyncMsgRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).OnSharedChannelsProfileImageSyncMsg(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_OnSharedChannelsProfileImageSyncMsg_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).OnSharedChannelsProfileImageSyncMsg(ctx, req.(*OnSharedChannelsProfileImageSyncMsgRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_GenerateSupportData_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GenerateSupportDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginHooksServer).GenerateSupportData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginHooks_GenerateSupportData_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginHooksServer).GenerateSupportData(ctx, req.(*GenerateSupportDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginHooks_ServeHTTP_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(PluginHooksServer).ServeHTTP(&grpc.GenericServerStream[ServeHTTPRequest, ServeHTTPResponse]{ServerStream: stream})
}

func _PluginHooks_ServeMetrics_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(PluginHooksServer).ServeMetrics(&grpc.GenericServerStream[ServeMetricsRequest, ServeMetricsResponse]{ServerStream: stream})
}

// PluginHooks_ServiceDesc is the grpc.ServiceDesc for the PluginHooks service.
var PluginHooks_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chatgrid.plugin.v1.PluginHooks",
	HandlerType: (*PluginHooksServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Implemented", Handler: _PluginHooks_Implemented_Handler},
		{MethodName: "OnActivate", Handler: _PluginHooks_OnActivate_Handler},
		{MethodName: "OnDeactivate", Handler: _PluginHooks_OnDeactivate_Handler},
		{MethodName: "OnConfigurationChange", Handler: _PluginHooks_OnConfigurationChange_Handler},
		{MethodName: "OnInstall", Handler: _PluginHooks_OnInstall_Handler},
		{MethodName: "ConfigurationWillBeSaved", Handler: _PluginHooks_ConfigurationWillBeSaved_Handler},
		{MethodName: "OnSendDailyTelemetry", Handler: _PluginHooks_OnSendDailyTelemetry_Handler},
		{MethodName: "RunDataRetention", Handler: _PluginHooks_RunDataRetention_Handler},
		{MethodName: "OnCloudLimitsUpdated", Handler: _PluginHooks_OnCloudLimitsUpdated_Handler},
		{MethodName: "MessageWillBePosted", Handler: _PluginHooks_MessageWillBePosted_Handler},
		{MethodName: "MessageWillBeUpdated", Handler: _PluginHooks_MessageWillBeUpdated_Handler},
		{MethodName: "MessageHasBeenPosted", Handler: _PluginHooks_MessageHasBeenPosted_Handler},
		{MethodName: "MessageHasBeenUpdated", Handler: _PluginHooks_MessageHasBeenUpdated_Handler},
		{MethodName: "MessageHasBeenDeleted", Handler: _PluginHooks_MessageHasBeenDeleted_Handler},
		{MethodName: "MessagesWillBeConsumed", Handler: _PluginHooks_MessagesWillBeConsumed_Handler},
		{MethodName: "ReactionHasBeenAdded", Handler: _PluginHooks_ReactionHasBeenAdded_Handler},
		{MethodName: "ReactionHasBeenRemoved", Handler: _PluginHooks_ReactionHasBeenRemoved_Handler},
		{MethodName: "NotificationWillBePushed", Handler: _PluginHooks_NotificationWillBePushed_Handler},
		{MethodName: "EmailNotificationWillBeSent", Handler: _PluginHooks_EmailNotificationWillBeSent_Handler},
		{MethodName: "PreferencesHaveChanged", Handler: _PluginHooks_PreferencesHaveChanged_Handler},
		{MethodName: "FileWillBeUploaded", Handler: _PluginHooks_FileWillBeUploaded_Handler},
		{MethodName: "UserHasBeenCreated", Handler: _PluginHooks_UserHasBeenCreated_Handler},
		{MethodName: "UserWillLogIn", Handler: _PluginHooks_UserWillLogIn_Handler},
		{MethodName: "UserHasLoggedIn", Handler: _PluginHooks_UserHasLoggedIn_Handler},
		{MethodName: "UserHasBeenDeactivated", Handler: _PluginHooks_UserHasBeenDeactivated_Handler},
		{MethodName: "OnSAMLLogin", Handler: _PluginHooks_OnSAMLLogin_Handler},
		{MethodName: "ChannelHasBeenCreated", Handler: _PluginHooks_ChannelHasBeenCreated_Handler},
		{MethodName: "UserHasJoinedChannel", Handler: _PluginHooks_UserHasJoinedChannel_Handler},
		{MethodName: "UserHasLeftChannel", Handler: _PluginHooks_UserHasLeftChannel_Handler},
		{MethodName: "UserHasJoinedTeam", Handler: _PluginHooks_UserHasJoinedTeam_Handler},
		{MethodName: "UserHasLeftTeam", Handler: _PluginHooks_UserHasLeftTeam_Handler},
		{MethodName: "ExecuteCommand", Handler: _PluginHooks_ExecuteCommand_Handler},
		{MethodName: "OnWebSocketConnect", Handler: _PluginHooks_OnWebSocketConnect_Handler},
		{MethodName: "OnWebSocketDisconnect", Handler: _PluginHooks_OnWebSocketDisconnect_Handler},
		{MethodName: "WebSocketMessageHasBeenPosted", Handler: _PluginHooks_WebSocketMessageHasBeenPosted_Handler},
		{MethodName: "OnPluginClusterEvent", Handler: _PluginHooks_OnPluginClusterEvent_Handler},
		{MethodName: "OnSharedChannelsSyncMsg", Handler: _PluginHooks_OnSharedChannelsSyncMsg_Handler},
		{MethodName: "OnSharedChannelsPing", Handler: _PluginHooks_OnSharedChannelsPing_Handler},
		{MethodName: "OnSharedChannelsAttachmentSyncMsg", Handler: _PluginHooks_OnSharedChannelsAttachmentSyncMsg_Handler},
		{MethodName: "OnSharedChannelsProfileImageSyncMsg", Handler: _PluginHooks_OnSharedChannelsProfileImageSyncMsg_Handler},
		{MethodName: "GenerateSupportData", Handler: _PluginHooks_GenerateSupportData_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ServeHTTP", Handler: _PluginHooks_ServeHTTP_Handler, ServerStreams: true, ClientStreams: true},
		{StreamName: "ServeMetrics", Handler: _PluginHooks_ServeMetrics_Handler, ServerStreams: true, ClientStreams: true},
	},
	Metadata: "chatgrid/plugin/v1/pluginhooks.proto",
}
