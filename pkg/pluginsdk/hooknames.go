// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import "sort"

// Canonical hook names. These are the only names the registry accepts and the
// only method names the dispatcher routes; they match the PluginHooks RPC
// names on the wire.
const (
	HookOnActivate               = "OnActivate"
	HookOnDeactivate             = "OnDeactivate"
	HookOnConfigurationChange    = "OnConfigurationChange"
	HookOnInstall                = "OnInstall"
	HookConfigurationWillBeSaved = "ConfigurationWillBeSaved"
	HookOnSendDailyTelemetry     = "OnSendDailyTelemetry"
	HookRunDataRetention         = "RunDataRetention"
	HookOnCloudLimitsUpdated     = "OnCloudLimitsUpdated"

	HookMessageWillBePosted         = "MessageWillBePosted"
	HookMessageWillBeUpdated        = "MessageWillBeUpdated"
	HookMessageHasBeenPosted        = "MessageHasBeenPosted"
	HookMessageHasBeenUpdated       = "MessageHasBeenUpdated"
	HookMessageHasBeenDeleted       = "MessageHasBeenDeleted"
	HookMessagesWillBeConsumed      = "MessagesWillBeConsumed"
	HookReactionHasBeenAdded        = "ReactionHasBeenAdded"
	HookReactionHasBeenRemoved      = "ReactionHasBeenRemoved"
	HookNotificationWillBePushed    = "NotificationWillBePushed"
	HookEmailNotificationWillBeSent = "EmailNotificationWillBeSent"
	HookPreferencesHaveChanged      = "PreferencesHaveChanged"
	HookFileWillBeUploaded          = "FileWillBeUploaded"

	HookUserHasBeenCreated     = "UserHasBeenCreated"
	HookUserWillLogIn          = "UserWillLogIn"
	HookUserHasLoggedIn        = "UserHasLoggedIn"
	HookUserHasBeenDeactivated = "UserHasBeenDeactivated"
	HookOnSAMLLogin            = "OnSAMLLogin"
	HookChannelHasBeenCreated  = "ChannelHasBeenCreated"
	HookUserHasJoinedChannel   = "UserHasJoinedChannel"
	HookUserHasLeftChannel     = "UserHasLeftChannel"
	HookUserHasJoinedTeam      = "UserHasJoinedTeam"
	HookUserHasLeftTeam        = "UserHasLeftTeam"

	HookExecuteCommand = "ExecuteCommand"

	HookOnWebSocketConnect            = "OnWebSocketConnect"
	HookOnWebSocketDisconnect         = "OnWebSocketDisconnect"
	HookWebSocketMessageHasBeenPosted = "WebSocketMessageHasBeenPosted"

	HookOnPluginClusterEvent = "OnPluginClusterEvent"

	HookOnSharedChannelsSyncMsg             = "OnSharedChannelsSyncMsg"
	HookOnSharedChannelsPing                = "OnSharedChannelsPing"
	HookOnSharedChannelsAttachmentSyncMsg   = "OnSharedChannelsAttachmentSyncMsg"
	HookOnSharedChannelsProfileImageSyncMsg = "OnSharedChannelsProfileImageSyncMsg"

	HookGenerateSupportData = "GenerateSupportData"

	HookServeHTTP    = "ServeHTTP"
	HookServeMetrics = "ServeMetrics"
)

// DismissPostError is the sentinel rejection reason a MessageWillBePosted
// handler returns to drop the message without surfacing an error to the user.
const DismissPostError = "plugin.message_will_be_posted.dismiss_post"

// hookSet is the closed set of canonical hook names.
var hookSet = map[string]struct{}{
	HookOnActivate:                          {},
	HookOnDeactivate:                        {},
	HookOnConfigurationChange:               {},
	HookOnInstall:                           {},
	HookConfigurationWillBeSaved:            {},
	HookOnSendDailyTelemetry:                {},
	HookRunDataRetention:                    {},
	HookOnCloudLimitsUpdated:                {},
	HookMessageWillBePosted:                 {},
	HookMessageWillBeUpdated:                {},
	HookMessageHasBeenPosted:                {},
	HookMessageHasBeenUpdated:               {},
	HookMessageHasBeenDeleted:               {},
	HookMessagesWillBeConsumed:              {},
	HookReactionHasBeenAdded:                {},
	HookReactionHasBeenRemoved:              {},
	HookNotificationWillBePushed:            {},
	HookEmailNotificationWillBeSent:         {},
	HookPreferencesHaveChanged:              {},
	HookFileWillBeUploaded:                  {},
	HookUserHasBeenCreated:                  {},
	HookUserWillLogIn:                       {},
	HookUserHasLoggedIn:                     {},
	HookUserHasBeenDeactivated:              {},
	HookOnSAMLLogin:                         {},
	HookChannelHasBeenCreated:               {},
	HookUserHasJoinedChannel:                {},
	HookUserHasLeftChannel:                  {},
	HookUserHasJoinedTeam:                   {},
	HookUserHasLeftTeam:                     {},
	HookExecuteCommand:                      {},
	HookOnWebSocketConnect:                  {},
	HookOnWebSocketDisconnect:               {},
	HookWebSocketMessageHasBeenPosted:       {},
	HookOnPluginClusterEvent:                {},
	HookOnSharedChannelsSyncMsg:             {},
	HookOnSharedChannelsPing:                {},
	HookOnSharedChannelsAttachmentSyncMsg:   {},
	HookOnSharedChannelsProfileImageSyncMsg: {},
	HookGenerateSupportData:                 {},
	HookServeHTTP:                           {},
	HookServeMetrics:                        {},
}

// KnownHook reports whether name is in the closed set of canonical hooks.
func KnownHook(name string) bool {
	_, ok := hookSet[name]
	return ok
}

// HookNames returns every canonical hook name, sorted.
func HookNames() []string {
	names := make([]string, 0, len(hookSet))
	for name := range hookSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
