// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"fmt"
	"strconv"
	"strings"
)

// Protocol versions announced in the handshake line. CoreProtocolVersion
// changes only when the handshake itself changes shape; AppProtocolVersion
// tracks the chatgrid.plugin.v1 service surface.
const (
	CoreProtocolVersion = 1
	AppProtocolVersion  = 1
)

// MagicCookieKey and MagicCookieValue are the environment handshake between
// the host and plugin processes. The host sets the variable before launching
// the child; Serve refuses to start without it so a plugin binary run by hand
// fails fast instead of hanging on a silent stdout read.
const (
	MagicCookieKey   = "CHATGRID_PLUGIN"
	MagicCookieValue = "chatgrid-plugin-v1"
)

// Handshake networks.
const (
	NetworkTCP  = "tcp"
	NetworkUnix = "unix"
)

// handshakeProtocol is the only wire framing this runtime speaks.
const handshakeProtocol = "grpc"

// Handshake is the single-line announcement a plugin writes to stdout once
// its listener is bound. Nothing else may be written to stdout before it;
// all logging goes to stderr.
type Handshake struct {
	CoreProtocol int
	AppProtocol  int
	Network      string // "tcp" or "unix"
	Addr         string // "127.0.0.1:<port>" or a socket path
	Protocol     string // always "grpc"
}

// String renders the pipe-delimited handshake line, without the trailing
// newline.
func (h Handshake) String() string {
	return fmt.Sprintf("%d|%d|%s|%s|%s", h.CoreProtocol, h.AppProtocol, h.Network, h.Addr, h.Protocol)
}

// ParseHandshake parses one handshake line. Any divergence from the expected
// tuple shape is an error; the host treats that as a fatal start-up failure.
func ParseHandshake(line string) (Handshake, error) {
	line = strings.TrimSuffix(line, "\n")
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return Handshake{}, fmt.Errorf("handshake: expected 5 fields, got %d in %q", len(parts), line)
	}

	core, err := strconv.Atoi(parts[0])
	if err != nil {
		return Handshake{}, fmt.Errorf("handshake: core protocol version %q is not numeric", parts[0])
	}
	app, err := strconv.Atoi(parts[1])
	if err != nil {
		return Handshake{}, fmt.Errorf("handshake: app protocol version %q is not numeric", parts[1])
	}

	network := parts[2]
	if network != NetworkTCP && network != NetworkUnix {
		return Handshake{}, fmt.Errorf("handshake: unsupported network %q", network)
	}
	if parts[3] == "" {
		return Handshake{}, fmt.Errorf("handshake: empty address")
	}
	if parts[4] != handshakeProtocol {
		return Handshake{}, fmt.Errorf("handshake: unsupported protocol %q", parts[4])
	}

	return Handshake{
		CoreProtocol: core,
		AppProtocol:  app,
		Network:      network,
		Addr:         parts[3],
		Protocol:     parts[4],
	}, nil
}

// Validate checks the version fields against what this runtime speaks.
func (h Handshake) Validate() error {
	if h.CoreProtocol != CoreProtocolVersion {
		return fmt.Errorf("handshake: core protocol %d not supported (want %d)", h.CoreProtocol, CoreProtocolVersion)
	}
	if h.AppProtocol != AppProtocolVersion {
		return fmt.Errorf("handshake: app protocol %d not supported (want %d)", h.AppProtocol, AppProtocolVersion)
	}
	return nil
}

// newHandshake builds the announcement for a bound listener.
func newHandshake(network, addr string) Handshake {
	return Handshake{
		CoreProtocol: CoreProtocolVersion,
		AppProtocol:  AppProtocolVersion,
		Network:      network,
		Addr:         addr,
		Protocol:     handshakeProtocol,
	}
}
