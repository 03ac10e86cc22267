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
	PluginAPI_KVSet_FullMethodName                     = "/chatgrid.plugin.v1.PluginAPI/KVSet"
	PluginAPI_KVGet_FullMethodName                     = "/chatgrid.plugin.v1.PluginAPI/KVGet"
	PluginAPI_KVDelete_FullMethodName                  = "/chatgrid.plugin.v1.PluginAPI/KVDelete"
	PluginAPI_KVDeleteAll_FullMethodName               = "/chatgrid.plugin.v1.PluginAPI/KVDeleteAll"
	PluginAPI_KVList_FullMethodName                    = "/chatgrid.plugin.v1.PluginAPI/KVList"
	PluginAPI_KVSetWithExpiry_FullMethodName           = "/chatgrid.plugin.v1.PluginAPI/KVSetWithExpiry"
	PluginAPI_KVCompareAndSet_FullMethodName           = "/chatgrid.plugin.v1.PluginAPI/KVCompareAndSet"
	PluginAPI_KVCompareAndDelete_FullMethodName        = "/chatgrid.plugin.v1.PluginAPI/KVCompareAndDelete"
	PluginAPI_KVSetWithOptions_FullMethodName          = "/chatgrid.plugin.v1.PluginAPI/KVSetWithOptions"
	PluginAPI_GetServerVersion_FullMethodName          = "/chatgrid.plugin.v1.PluginAPI/GetServerVersion"
	PluginAPI_GetUser_FullMethodName                   = "/chatgrid.plugin.v1.PluginAPI/GetUser"
	PluginAPI_GetUserByUsername_FullMethodName         = "/chatgrid.plugin.v1.PluginAPI/GetUserByUsername"
	PluginAPI_GetChannel_FullMethodName                = "/chatgrid.plugin.v1.PluginAPI/GetChannel"
	PluginAPI_GetTeam_FullMethodName                   = "/chatgrid.plugin.v1.PluginAPI/GetTeam"
	PluginAPI_CreatePost_FullMethodName                = "/chatgrid.plugin.v1.PluginAPI/CreatePost"
	PluginAPI_GetPost_FullMethodName                   = "/chatgrid.plugin.v1.PluginAPI/GetPost"
	PluginAPI_DeletePost_FullMethodName                = "/chatgrid.plugin.v1.PluginAPI/DeletePost"
	PluginAPI_SendEphemeralPost_FullMethodName         = "/chatgrid.plugin.v1.PluginAPI/SendEphemeralPost"
	PluginAPI_GetFileInfo_FullMethodName               = "/chatgrid.plugin.v1.PluginAPI/GetFileInfo"
	PluginAPI_PublishWebSocketEvent_FullMethodName     = "/chatgrid.plugin.v1.PluginAPI/PublishWebSocketEvent"
	PluginAPI_PublishPluginClusterEvent_FullMethodName = "/chatgrid.plugin.v1.PluginAPI/PublishPluginClusterEvent"
	PluginAPI_OpenInteractiveDialog_FullMethodName     = "/chatgrid.plugin.v1.PluginAPI/OpenInteractiveDialog"
	PluginAPI_SendMail_FullMethodName                  = "/chatgrid.plugin.v1.PluginAPI/SendMail"
	PluginAPI_SendPushNotification_FullMethodName      = "/chatgrid.plugin.v1.PluginAPI/SendPushNotification"
	PluginAPI_GetEmoji_FullMethodName                  = "/chatgrid.plugin.v1.PluginAPI/GetEmoji"
	PluginAPI_GetEmojiByName_FullMethodName            = "/chatgrid.plugin.v1.PluginAPI/GetEmojiByName"
	PluginAPI_CreateUploadSession_FullMethodName       = "/chatgrid.plugin.v1.PluginAPI/CreateUploadSession"
	PluginAPI_UploadData_FullMethodName                = "/chatgrid.plugin.v1.PluginAPI/UploadData"
	PluginAPI_GetUploadSession_FullMethodName          = "/chatgrid.plugin.v1.PluginAPI/GetUploadSession"
	PluginAPI_LogAuditRec_FullMethodName               = "/chatgrid.plugin.v1.PluginAPI/LogAuditRec"
)

// PluginAPIClient is the client API for the PluginAPI service.
type PluginAPIClient interface {
	KVSet(ctx context.Context, in *KVSetRequest, opts ...grpc.CallOption) (*KVSetResponse, error)
	KVGet(ctx context.Context, in *KVGetRequest, opts ...grpc.CallOption) (*KVGetResponse, error)
	KVDelete(ctx context.Context, in *KVDeleteRequest, opts ...grpc.CallOption) (*KVDeleteResponse, error)
	KVDeleteAll(ctx context.Context, in *KVDeleteAllRequest, opts ...grpc.CallOption) (*KVDeleteAllResponse, error)
	KVList(ctx context.Context, in *KVListRequest, opts ...grpc.CallOption) (*KVListResponse, error)
	KVSetWithExpiry(ctx context.Context, in *KVSetWithExpiryRequest, opts ...grpc.CallOption) (*KVSetWithExpiryResponse, error)
	KVCompareAndSet(ctx context.Context, in *KVCompareAndSetRequest, opts ...grpc.CallOption) (*KVCompareAndSetResponse, error)
	KVCompareAndDelete(ctx context.Context, in *KVCompareAndDeleteRequest, opts ...grpc.CallOption) (*KVCompareAndDeleteResponse, error)
	KVSetWithOptions(ctx context.Context, in *KVSetWithOptionsRequest, opts ...grpc.CallOption) (*KVSetWithOptionsResponse, error)
	GetServerVersion(ctx context.Context, in *GetServerVersionRequest, opts ...grpc.CallOption) (*GetServerVersionResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	GetUserByUsername(ctx context.Context, in *GetUserByUsernameRequest, opts ...grpc.CallOption) (*GetUserByUsernameResponse, error)
	GetChannel(ctx context.Context, in *GetChannelRequest, opts ...grpc.CallOption) (*GetChannelResponse, error)
	GetTeam(ctx context.Context, in *GetTeamRequest, opts ...grpc.CallOption) (*GetTeamResponse, error)
	CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*CreatePostResponse, error)
	GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*GetPostResponse, error)
	DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*DeletePostResponse, error)
	SendEphemeralPost(ctx context.Context, in *SendEphemeralPostRequest, opts ...grpc.CallOption) (*SendEphemeralPostResponse, error)
	GetFileInfo(ctx context.Context, in *GetFileInfoRequest, opts ...grpc.CallOption) (*GetFileInfoResponse, error)
	PublishWebSocketEvent(ctx context.Context, in *PublishWebSocketEventRequest, opts ...grpc.CallOption) (*PublishWebSocketEventResponse, error)
	PublishPluginClusterEvent(ctx context.Context, in *PublishPluginClusterEventRequest, opts ...grpc.CallOption) (*PublishPluginClusterEventResponse, error)
	OpenInteractiveDialog(ctx context.Context, in *OpenInteractiveDialogRequest, opts ...grpc.CallOption) (*OpenInteractiveDialogResponse, error)
	SendMail(ctx context.Context, in *SendMailRequest, opts ...grpc.CallOption) (*SendMailResponse, error)
	SendPushNotification(ctx context.Context, in *SendPushNotificationRequest, opts ...grpc.CallOption) (*SendPushNotificationResponse, error)
	GetEmoji(ctx context.Context, in *GetEmojiRequest, opts ...grpc.CallOption) (*GetEmojiResponse, error)
	GetEmojiByName(ctx context.Context, in *GetEmojiByNameRequest, opts ...grpc.CallOption) (*GetEmojiByNameResponse, error)
	CreateUploadSession(ctx context.Context, in *CreateUploadSessionRequest, opts ...grpc.CallOption) (*CreateUploadSessionResponse, error)
	UploadData(ctx context.Context, in *UploadDataRequest, opts ...grpc.CallOption) (*UploadDataResponse, error)
	GetUploadSession(ctx context.Context, in *GetUploadSessionRequest, opts ...grpc.CallOption) (*GetUploadSessionResponse, error)
	LogAuditRec(ctx context.Context, in *LogAuditRecRequest, opts ...grpc.CallOption) (*LogAuditRecResponse, error)
}

type pluginAPIClient struct {
	cc grpc.ClientConnInterface
}

// NewPluginAPIClient creates a client for the PluginAPI service.
func NewPluginAPIClient(cc grpc.ClientConnInterface) PluginAPIClient {
	return &pluginAPIClient{cc: cc}
}

func (c *pluginAPIClient) KVSet(ctx context.Context, in *KVSetRequest, opts ...grpc.CallOption) (*KVSetResponse, error) {
	out := new(KVSetResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVSet_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVGet(ctx context.Context, in *KVGetRequest, opts ...grpc.CallOption) (*KVGetResponse, error) {
	out := new(KVGetResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVGet_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVDelete(ctx context.Context, in *KVDeleteRequest, opts ...grpc.CallOption) (*KVDeleteResponse, error) {
	out := new(KVDeleteResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVDelete_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVDeleteAll(ctx context.Context, in *KVDeleteAllRequest, opts ...grpc.CallOption) (*KVDeleteAllResponse, error) {
	out := new(KVDeleteAllResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVDeleteAll_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVList(ctx context.Context, in *KVListRequest, opts ...grpc.CallOption) (*KVListResponse, error) {
	out := new(KVListResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVList_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVSetWithExpiry(ctx context.Context, in *KVSetWithExpiryRequest, opts ...grpc.CallOption) (*KVSetWithExpiryResponse, error) {
	out := new(KVSetWithExpiryResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVSetWithExpiry_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVCompareAndSet(ctx context.Context, in *KVCompareAndSetRequest, opts ...grpc.CallOption) (*KVCompareAndSetResponse, error) {
	out := new(KVCompareAndSetResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVCompareAndSet_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVCompareAndDelete(ctx context.Context, in *KVCompareAndDeleteRequest, opts ...grpc.CallOption) (*KVCompareAndDeleteResponse, error) {
	out := new(KVCompareAndDeleteResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVCompareAndDelete_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) KVSetWithOptions(ctx context.Context, in *KVSetWithOptionsRequest, opts ...grpc.CallOption) (*KVSetWithOptionsResponse, error) {
	out := new(KVSetWithOptionsResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_KVSetWithOptions_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetServerVersion(ctx context.Context, in *GetServerVersionRequest, opts ...grpc.CallOption) (*GetServerVersionResponse, error) {
	out := new(GetServerVersionResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetServerVersion_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	out := new(GetUserResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetUser_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetUserByUsername(ctx context.Context, in *GetUserByUsernameRequest, opts ...grpc.CallOption) (*GetUserByUsernameResponse, error) {
	out := new(GetUserByUsernameResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetUserByUsername_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetChannel(ctx context.Context, in *GetChannelRequest, opts ...grpc.CallOption) (*GetChannelResponse, error) {
	out := new(GetChannelResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetChannel_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetTeam(ctx context.Context, in *GetTeamRequest, opts ...grpc.CallOption) (*GetTeamResponse, error) {
	out := new(GetTeamResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetTeam_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) CreatePost(ctx context.Context, in *CreatePostRequest, opts ...grpc.CallOption) (*CreatePostResponse, error) {
	out := new(CreatePostResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_CreatePost_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*GetPostResponse, error) {
	out := new(GetPostResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetPost_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) DeletePost(ctx context.Context, in *DeletePostRequest, opts ...grpc.CallOption) (*DeletePostResponse, error) {
	out := new(DeletePostResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_DeletePost_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) SendEphemeralPost(ctx context.Context, in *SendEphemeralPostRequest, opts ...grpc.CallOption) (*SendEphemeralPostResponse, error) {
	out := new(SendEphemeralPostResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_SendEphemeralPost_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetFileInfo(ctx context.Context, in *GetFileInfoRequest, opts ...grpc.CallOption) (*GetFileInfoResponse, error) {
	out := new(GetFileInfoResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetFileInfo_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) PublishWebSocketEvent(ctx context.Context, in *PublishWebSocketEventRequest, opts ...grpc.CallOption) (*PublishWebSocketEventResponse, error) {
	out := new(PublishWebSocketEventResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_PublishWebSocketEvent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) PublishPluginClusterEvent(ctx context.Context, in *PublishPluginClusterEventRequest, opts ...grpc.CallOption) (*PublishPluginClusterEventResponse, error) {
	out := new(PublishPluginClusterEventResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_PublishPluginClusterEvent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) OpenInteractiveDialog(ctx context.Context, in *OpenInteractiveDialogRequest, opts ...grpc.CallOption) (*OpenInteractiveDialogResponse, error) {
	out := new(OpenInteractiveDialogResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_OpenInteractiveDialog_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) SendMail(ctx context.Context, in *SendMailRequest, opts ...grpc.CallOption) (*SendMailResponse, error) {
	out := new(SendMailResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_SendMail_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) SendPushNotification(ctx context.Context, in *SendPushNotificationRequest, opts ...grpc.CallOption) (*SendPushNotificationResponse, error) {
	out := new(SendPushNotificationResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_SendPushNotification_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetEmoji(ctx context.Context, in *GetEmojiRequest, opts ...grpc.CallOption) (*GetEmojiResponse, error) {
	out := new(GetEmojiResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetEmoji_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetEmojiByName(ctx context.Context, in *GetEmojiByNameRequest, opts ...grpc.CallOption) (*GetEmojiByNameResponse, error) {
	out := new(GetEmojiByNameResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetEmojiByName_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) CreateUploadSession(ctx context.Context, in *CreateUploadSessionRequest, opts ...grpc.CallOption) (*CreateUploadSessionResponse, error) {
	out := new(CreateUploadSessionResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_CreateUploadSession_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) UploadData(ctx context.Context, in *UploadDataRequest, opts ...grpc.CallOption) (*UploadDataResponse, error) {
	out := new(UploadDataResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_UploadData_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) GetUploadSession(ctx context.Context, in *GetUploadSessionRequest, opts ...grpc.CallOption) (*GetUploadSessionResponse, error) {
	out := new(GetUploadSessionResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_GetUploadSession_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pluginAPIClient) LogAuditRec(ctx context.Context, in *LogAuditRecRequest, opts ...grpc.CallOption) (*LogAuditRecResponse, error) {
	out := new(LogAuditRecResponse)
	if err := c.cc.Invoke(ctx, PluginAPI_LogAuditRec_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PluginAPIServer is the server API for the PluginAPI service. Embed
// UnimplementedPluginAPIServer for forward compatibility.
type PluginAPIServer interface {
	KVSet(context.Context, *KVSetRequest) (*KVSetResponse, error)
	KVGet(context.Context, *KVGetRequest) (*KVGetResponse, error)
	KVDelete(context.Context, *KVDeleteRequest) (*KVDeleteResponse, error)
	KVDeleteAll(context.Context, *KVDeleteAllRequest) (*KVDeleteAllResponse, error)
	KVList(context.Context, *KVListRequest) (*KVListResponse, error)
	KVSetWithExpiry(context.Context, *KVSetWithExpiryRequest) (*KVSetWithExpiryResponse, error)
	KVCompareAndSet(context.Context, *KVCompareAndSetRequest) (*KVCompareAndSetResponse, error)
	KVCompareAndDelete(context.Context, *KVCompareAndDeleteRequest) (*KVCompareAndDeleteResponse, error)
	KVSetWithOptions(context.Context, *KVSetWithOptionsRequest) (*KVSetWithOptionsResponse, error)
	GetServerVersion(context.Context, *GetServerVersionRequest) (*GetServerVersionResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	GetUserByUsername(context.Context, *GetUserByUsernameRequest) (*GetUserByUsernameResponse, error)
	GetChannel(context.Context, *GetChannelRequest) (*GetChannelResponse, error)
	GetTeam(context.Context, *GetTeamRequest) (*GetTeamResponse, error)
	CreatePost(context.Context, *CreatePostRequest) (*CreatePostResponse, error)
	GetPost(context.Context, *GetPostRequest) (*GetPostResponse, error)
	DeletePost(context.Context, *DeletePostRequest) (*DeletePostResponse, error)
	SendEphemeralPost(context.Context, *SendEphemeralPostRequest) (*SendEphemeralPostResponse, error)
	GetFileInfo(context.Context, *GetFileInfoRequest) (*GetFileInfoResponse, error)
	PublishWebSocketEvent(context.Context, *PublishWebSocketEventRequest) (*PublishWebSocketEventResponse, error)
	PublishPluginClusterEvent(context.Context, *PublishPluginClusterEventRequest) (*PublishPluginClusterEventResponse, error)
	OpenInteractiveDialog(context.Context, *OpenInteractiveDialogRequest) (*OpenInteractiveDialogResponse, error)
	SendMail(context.Context, *SendMailRequest) (*SendMailResponse, error)
	SendPushNotification(context.Context, *SendPushNotificationRequest) (*SendPushNotificationResponse, error)
	GetEmoji(context.Context, *GetEmojiRequest) (*GetEmojiResponse, error)
	GetEmojiByName(context.Context, *GetEmojiByNameRequest) (*GetEmojiByNameResponse, error)
	CreateUploadSession(context.Context, *CreateUploadSessionRequest) (*CreateUploadSessionResponse, error)
	UploadData(context.Context, *UploadDataRequest) (*UploadDataResponse, error)
	GetUploadSession(context.Context, *GetUploadSessionRequest) (*GetUploadSessionResponse, error)
	LogAuditRec(context.Context, *LogAuditRecRequest) (*LogAuditRecResponse, error)
}

// UnimplementedPluginAPIServer returns Unimplemented for every method.
type UnimplementedPluginAPIServer struct{}

func (UnimplementedPluginAPIServer) KVSet(context.Context, *KVSetRequest) (*KVSetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVSet not implemented")
}
func (UnimplementedPluginAPIServer) KVGet(context.Context, *KVGetRequest) (*KVGetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVGet not implemented")
}
func (UnimplementedPluginAPIServer) KVDelete(context.Context, *KVDeleteRequest) (*KVDeleteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVDelete not implemented")
}
func (UnimplementedPluginAPIServer) KVDeleteAll(context.Context, *KVDeleteAllRequest) (*KVDeleteAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVDeleteAll not implemented")
}
func (UnimplementedPluginAPIServer) KVList(context.Context, *KVListRequest) (*KVListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVList not implemented")
}
func (UnimplementedPluginAPIServer) KVSetWithExpiry(context.Context, *KVSetWithExpiryRequest) (*KVSetWithExpiryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVSetWithExpiry not implemented")
}
func (UnimplementedPluginAPIServer) KVCompareAndSet(context.Context, *KVCompareAndSetRequest) (*KVCompareAndSetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVCompareAndSet not implemented")
}
func (UnimplementedPluginAPIServer) KVCompareAndDelete(context.Context, *KVCompareAndDeleteRequest) (*KVCompareAndDeleteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVCompareAndDelete not implemented")
}
func (UnimplementedPluginAPIServer) KVSetWithOptions(context.Context, *KVSetWithOptionsRequest) (*KVSetWithOptionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KVSetWithOptions not implemented")
}
func (UnimplementedPluginAPIServer) GetServerVersion(context.Context, *GetServerVersionRequest) (*GetServerVersionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetServerVersion not implemented")
}
func (UnimplementedPluginAPIServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedPluginAPIServer) GetUserByUsername(context.Context, *GetUserByUsernameRequest) (*GetUserByUsernameResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserByUsername not implemented")
}
func (UnimplementedPluginAPIServer) GetChannel(context.Context, *GetChannelRequest) (*GetChannelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetChannel not implemented")
}
func (UnimplementedPluginAPIServer) GetTeam(context.Context, *GetTeamRequest) (*GetTeamResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTeam not implemented")
}
func (UnimplementedPluginAPIServer) CreatePost(context.Context, *CreatePostRequest) (*CreatePostResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePost not implemented")
}
func (UnimplementedPluginAPIServer) GetPost(context.Context, *GetPostRequest) (*GetPostResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPost not implemented")
}
func (UnimplementedPluginAPIServer) DeletePost(context.Context, *DeletePostRequest) (*DeletePostResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePost not implemented")
}
func (UnimplementedPluginAPIServer) SendEphemeralPost(context.Context, *SendEphemeralPostRequest) (*SendEphemeralPostResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendEphemeralPost not implemented")
}
func (UnimplementedPluginAPIServer) GetFileInfo(context.Context, *GetFileInfoRequest) (*GetFileInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFileInfo not implemented")
}
func (UnimplementedPluginAPIServer) PublishWebSocketEvent(context.Context, *PublishWebSocketEventRequest) (*PublishWebSocketEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PublishWebSocketEvent not implemented")
}
func (UnimplementedPluginAPIServer) PublishPluginClusterEvent(context.Context, *PublishPluginClusterEventRequest) (*PublishPluginClusterEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PublishPluginClusterEvent not implemented")
}
func (UnimplementedPluginAPIServer) OpenInteractiveDialog(context.Context, *OpenInteractiveDialogRequest) (*OpenInteractiveDialogResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenInteractiveDialog not implemented")
}
func (UnimplementedPluginAPIServer) SendMail(context.Context, *SendMailRequest) (*SendMailResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMail not implemented")
}
func (UnimplementedPluginAPIServer) SendPushNotification(context.Context, *SendPushNotificationRequest) (*SendPushNotificationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendPushNotification not implemented")
}
func (UnimplementedPluginAPIServer) GetEmoji(context.Context, *GetEmojiRequest) (*GetEmojiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmoji not implemented")
}
func (UnimplementedPluginAPIServer) GetEmojiByName(context.Context, *GetEmojiByNameRequest) (*GetEmojiByNameResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmojiByName not implemented")
}
func (UnimplementedPluginAPIServer) CreateUploadSession(context.Context, *CreateUploadSessionRequest) (*CreateUploadSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUploadSession not implemented")
}
func (UnimplementedPluginAPIServer) UploadData(context.Context, *UploadDataRequest) (*UploadDataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadData not implemented")
}
func (UnimplementedPluginAPIServer) GetUploadSession(context.Context, *GetUploadSessionRequest) (*GetUploadSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUploadSession not implemented")
}
func (UnimplementedPluginAPIServer) LogAuditRec(context.Context, *LogAuditRecRequest) (*LogAuditRecResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LogAuditRec not implemented")
}

// RegisterPluginAPIServer registers srv on the gRPC server.
func RegisterPluginAPIServer(s grpc.ServiceRegistrar, srv PluginAPIServer) {
	s.RegisterService(&PluginAPI_ServiceDesc, srv)
}

func _PluginAPI_KVSet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVSetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVSet_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVSet(ctx, req.(*KVSetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVGet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVGetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVGet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVGet_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVGet(ctx, req.(*KVGetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVDelete_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVDeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVDelete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVDelete_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVDelete(ctx, req.(*KVDeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVDeleteAll_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVDeleteAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVDeleteAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVDeleteAll_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVDeleteAll(ctx, req.(*KVDeleteAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVList_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVList_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVList(ctx, req.(*KVListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVSetWithExpiry_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVSetWithExpiryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVSetWithExpiry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVSetWithExpiry_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVSetWithExpiry(ctx, req.(*KVSetWithExpiryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVCompareAndSet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVCompareAndSetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVCompareAndSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVCompareAndSet_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVCompareAndSet(ctx, req.(*KVCompareAndSetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVCompareAndDelete_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVCompareAndDeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVCompareAndDelete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVCompareAndDelete_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVCompareAndDelete(ctx, req.(*KVCompareAndDeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_KVSetWithOptions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KVSetWithOptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).KVSetWithOptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_KVSetWithOptions_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).KVSetWithOptions(ctx, req.(*KVSetWithOptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetServerVersion_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetServerVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetServerVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetServerVersion_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetServerVersion(ctx, req.(*GetServerVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetUser_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetUser(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetUserByUsername_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUserByUsernameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetUserByUsername(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetUserByUsername_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetUserByUsername(ctx, req.(*GetUserByUsernameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetChannel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetChannelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetChannel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetChannel_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetChannel(ctx, req.(*GetChannelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetTeam_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTeamRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetTeam(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetTeam_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetTeam(ctx, req.(*GetTeamRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_CreatePost_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreatePostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).CreatePost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_CreatePost_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).CreatePost(ctx, req.(*CreatePostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetPost_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetPostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetPost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetPost_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetPost(ctx, req.(*GetPostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_DeletePost_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeletePostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).DeletePost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_DeletePost_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).DeletePost(ctx, req.(*DeletePostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_SendEphemeralPost_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendEphemeralPostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).SendEphemeralPost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_SendEphemeralPost_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).SendEphemeralPost(ctx, req.(*SendEphemeralPostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetFileInfo_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetFileInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetFileInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetFileInfo_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetFileInfo(ctx, req.(*GetFileInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_PublishWebSocketEvent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PublishWebSocketEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).PublishWebSocketEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_PublishWebSocketEvent_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).PublishWebSocketEvent(ctx, req.(*PublishWebSocketEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_PublishPluginClusterEvent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PublishPluginClusterEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).PublishPluginClusterEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_PublishPluginClusterEvent_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).PublishPluginClusterEvent(ctx, req.(*PublishPluginClusterEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_OpenInteractiveDialog_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OpenInteractiveDialogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).OpenInteractiveDialog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_OpenInteractiveDialog_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).OpenInteractiveDialog(ctx, req.(*OpenInteractiveDialogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_SendMail_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendMailRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).SendMail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_SendMail_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).SendMail(ctx, req.(*SendMailRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_SendPushNotification_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendPushNotificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).SendPushNotification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_SendPushNotification_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).SendPushNotification(ctx, req.(*SendPushNotificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetEmoji_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetEmojiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetEmoji(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetEmoji_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetEmoji(ctx, req.(*GetEmojiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetEmojiByName_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetEmojiByNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetEmojiByName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetEmojiByName_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetEmojiByName(ctx, req.(*GetEmojiByNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_CreateUploadSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateUploadSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).CreateUploadSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_CreateUploadSession_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).CreateUploadSession(ctx, req.(*CreateUploadSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_UploadData_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UploadDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).UploadData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_UploadData_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).UploadData(ctx, req.(*UploadDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_GetUploadSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUploadSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).GetUploadSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_GetUploadSession_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).GetUploadSession(ctx, req.(*GetUploadSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PluginAPI_LogAuditRec_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LogAuditRecRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PluginAPIServer).LogAuditRec(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PluginAPI_LogAuditRec_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PluginAPIServer).LogAuditRec(ctx, req.(*LogAuditRecRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PluginAPI_ServiceDesc is the grpc.ServiceDesc for the PluginAPI service.
var PluginAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chatgrid.plugin.v1.PluginAPI",
	HandlerType: (*PluginAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "KVSet", Handler: _PluginAPI_KVSet_Handler},
		{MethodName: "KVGet", Handler: _PluginAPI_KVGet_Handler},
		{MethodName: "KVDelete", Handler: _PluginAPI_KVDelete_Handler},
		{MethodName: "KVDeleteAll", Handler: _PluginAPI_KVDeleteAll_Handler},
		{MethodName: "KVList", Handler: _PluginAPI_KVList_Handler},
		{MethodName: "KVSetWithExpiry", Handler: _PluginAPI_KVSetWithExpiry_Handler},
		{MethodName: "KVCompareAndSet", Handler: _PluginAPI_KVCompareAndSet_Handler},
		{MethodName: "KVCompareAndDelete", Handler: _PluginAPI_KVCompareAndDelete_Handler},
		{MethodName: "KVSetWithOptions", Handler: _PluginAPI_KVSetWithOptions_Handler},
		{MethodName: "GetServerVersion", Handler: _PluginAPI_GetServerVersion_Handler},
		{MethodName: "GetUser", Handler: _PluginAPI_GetUser_Handler},
		{MethodName: "GetUserByUsername", Handler: _PluginAPI_GetUserByUsername_Handler},
		{MethodName: "GetChannel", Handler: _PluginAPI_GetChannel_Handler},
		{MethodName: "GetTeam", Handler: _PluginAPI_GetTeam_Handler},
		{MethodName: "CreatePost", Handler: _PluginAPI_CreatePost_Handler},
		{MethodName: "GetPost", Handler: _PluginAPI_GetPost_Handler},
		{MethodName: "DeletePost", Handler: _PluginAPI_DeletePost_Handler},
		{MethodName: "SendEphemeralPost", Handler: _PluginAPI_SendEphemeralPost_Handler},
		{MethodName: "GetFileInfo", Handler: _PluginAPI_GetFileInfo_Handler},
		{MethodName: "PublishWebSocketEvent", Handler: _PluginAPI_PublishWebSocketEvent_Handler},
		{MethodName: "PublishPluginClusterEvent", Handler: _PluginAPI_PublishPluginClusterEvent_Handler},
		{MethodName: "OpenInteractiveDialog", Handler: _PluginAPI_OpenInteractiveDialog_Handler},
		{MethodName: "SendMail", Handler: _PluginAPI_SendMail_Handler},
		{MethodName: "SendPushNotification", Handler: _PluginAPI_SendPushNotification_Handler},
		{MethodName: "GetEmoji", Handler: _PluginAPI_GetEmoji_Handler},
		{MethodName: "GetEmojiByName", Handler: _PluginAPI_GetEmojiByName_Handler},
		{MethodName: "CreateUploadSession", Handler: _PluginAPI_CreateUploadSession_Handler},
		{MethodName: "UploadData", Handler: _PluginAPI_UploadData_Handler},
		{MethodName: "GetUploadSession", Handler: _PluginAPI_GetUploadSession_Handler},
		{MethodName: "LogAuditRec", Handler: _PluginAPI_LogAuditRec_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chatgrid/plugin/v1/pluginapi.proto",
}
