// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		endpoint    string
		wantNetwork string
		wantAddr    string
		wantErr     bool
	}{
		{name: "host port", endpoint: "127.0.0.1:50051", wantNetwork: NetworkTCP, wantAddr: "127.0.0.1:50051"},
		{name: "unix scheme", endpoint: "unix:///run/plugin.sock", wantNetwork: NetworkUnix, wantAddr: "/run/plugin.sock"},
		{name: "bare socket path", endpoint: "/run/plugin.sock", wantNetwork: NetworkUnix, wantAddr: "/run/plugin.sock"},
		{name: "empty", endpoint: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, addr, err := SplitEndpoint(tt.endpoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNetwork, network)
			assert.Equal(t, tt.wantAddr, addr)
		})
	}
}

func TestListen_TCPEphemeral(t *testing.T) {
	ln, err := Listen("127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	assert.NotEqual(t, "127.0.0.1:0", ln.Addr().String())
}

func TestListen_UnixSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.sock")
	ln, err := Listen(path)
	require.NoError(t, err)
	defer ln.Close()

	assert.Equal(t, path, ln.Addr().String())
}

func TestTransportOptions_WithDefaults(t *testing.T) {
	opts := TransportOptions{}.withDefaults()

	assert.Equal(t, DefaultKeepaliveTime, opts.KeepaliveTime)
	assert.Equal(t, DefaultKeepaliveTimeout, opts.KeepaliveTimeout)
	assert.Equal(t, DefaultMaxMessageSize, opts.MaxSendMsgSize)
	assert.Equal(t, DefaultMaxMessageSize, opts.MaxRecvMsgSize)
	assert.True(t, opts.PermitWithoutStream)
}

func TestTransportOptions_ExplicitKeepaliveKeepsStreamPolicy(t *testing.T) {
	opts := TransportOptions{KeepaliveTime: DefaultKeepaliveTime * 2}.withDefaults()

	assert.Equal(t, DefaultKeepaliveTime*2, opts.KeepaliveTime)
	assert.False(t, opts.PermitWithoutStream)
}

func TestDial_RejectsEmptyEndpoint(t *testing.T) {
	_, err := Dial("", TransportOptions{})
	require.Error(t, err)
}
