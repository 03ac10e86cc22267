// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import hashiplug "github.com/hashicorp/go-plugin"

// HandshakeConfig is the go-plugin handshake shared by the host and by
// plugins served through hashicorp/go-plugin. It carries the same cookie
// and protocol version as the plain Serve path so either launch mechanism
// speaks the same wire contract.
var HandshakeConfig = hashiplug.HandshakeConfig{
	ProtocolVersion:  AppProtocolVersion,
	MagicCookieKey:   MagicCookieKey,
	MagicCookieValue: MagicCookieValue,
}
