// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"fmt"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Transport defaults. The channel is local (loopback TCP or a UNIX socket),
// so keep-alives exist to detect a dead peer process, not a flaky network.
const (
	DefaultKeepaliveTime    = 10 * time.Second
	DefaultKeepaliveTimeout = 5 * time.Second

	// DefaultMaxMessageSize bounds a single frame in either direction.
	// File bodies ride inside messages, so the ceiling is generous.
	DefaultMaxMessageSize = 100 * 1024 * 1024
)

// TransportOptions are the enumerated knobs for a plugin channel. The zero
// value means "use defaults".
type TransportOptions struct {
	// KeepaliveTime is the idle ping interval.
	KeepaliveTime time.Duration
	// KeepaliveTimeout is how long to wait for a ping ack before tearing
	// the channel down.
	KeepaliveTimeout time.Duration
	// PermitWithoutStream allows pings while no call is active.
	PermitWithoutStream bool
	// MaxSendMsgSize and MaxRecvMsgSize are per-message ceilings in bytes.
	MaxSendMsgSize int
	MaxRecvMsgSize int
}

// withDefaults fills unset knobs.
func (o TransportOptions) withDefaults() TransportOptions {
	if o.KeepaliveTime == 0 {
		o.KeepaliveTime = DefaultKeepaliveTime
		// Idle pings default on only when the caller left the whole
		// keepalive section unset.
		o.PermitWithoutStream = true
	}
	if o.KeepaliveTimeout == 0 {
		o.KeepaliveTimeout = DefaultKeepaliveTimeout
	}
	if o.MaxSendMsgSize == 0 {
		o.MaxSendMsgSize = DefaultMaxMessageSize
	}
	if o.MaxRecvMsgSize == 0 {
		o.MaxRecvMsgSize = DefaultMaxMessageSize
	}
	return o
}

// SplitEndpoint turns an endpoint string into a (network, address) pair.
// Accepted shapes: "host:port", "unix:///path/to.sock", and a bare absolute
// path, which is treated as a UNIX socket.
func SplitEndpoint(endpoint string) (network, addr string, err error) {
	switch {
	case endpoint == "":
		return "", "", fmt.Errorf("transport: empty endpoint")
	case strings.HasPrefix(endpoint, "unix://"):
		return NetworkUnix, strings.TrimPrefix(endpoint, "unix://"), nil
	case strings.HasPrefix(endpoint, "/"):
		return NetworkUnix, endpoint, nil
	default:
		return NetworkTCP, endpoint, nil
	}
}

// Listen binds a listener for the given endpoint. For TCP, port 0 selects an
// ephemeral port; the bound address is recovered from the listener.
func Listen(endpoint string) (net.Listener, error) {
	network, addr, err := SplitEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	ln, err := net.Listen(network, addr)
	if err != nil {
		return nil, fmt.Errorf("transport: listen %s %s: %w", network, addr, err)
	}
	return ln, nil
}

// Dial opens a client channel to the given endpoint with the configured
// keep-alive and message-size policy. The returned connection is safe for
// concurrent use. Local transports carry no credentials.
func Dial(endpoint string, opts TransportOptions) (*grpc.ClientConn, error) {
	network, addr, err := SplitEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	target := addr
	if network == NetworkUnix {
		target = "unix://" + addr
	}

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                opts.KeepaliveTime,
			Timeout:             opts.KeepaliveTimeout,
			PermitWithoutStream: opts.PermitWithoutStream,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(opts.MaxSendMsgSize),
			grpc.MaxCallRecvMsgSize(opts.MaxRecvMsgSize),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", endpoint, err)
	}
	return conn, nil
}

// ServerOptions builds the grpc.ServerOption set matching opts, for the
// plugin-side listener.
func ServerOptions(opts TransportOptions) []grpc.ServerOption {
	opts = opts.withDefaults()
	return []grpc.ServerOption{
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    opts.KeepaliveTime,
			Timeout: opts.KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             opts.KeepaliveTime / 2,
			PermitWithoutStream: opts.PermitWithoutStream,
		}),
		grpc.MaxSendMsgSize(opts.MaxSendMsgSize),
		grpc.MaxRecvMsgSize(opts.MaxRecvMsgSize),
	}
}
