// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandshake_String(t *testing.T) {
	hs := newHandshake(NetworkTCP, "127.0.0.1:43211")
	assert.Equal(t, "1|1|tcp|127.0.0.1:43211|grpc", hs.String())

	hs = newHandshake(NetworkUnix, "/tmp/plugin-99.sock")
	assert.Equal(t, "1|1|unix|/tmp/plugin-99.sock|grpc", hs.String())
}

func TestParseHandshake(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Handshake
	}{
		{
			name: "tcp",
			line: "1|1|tcp|127.0.0.1:43211|grpc",
			want: Handshake{CoreProtocol: 1, AppProtocol: 1, Network: "tcp", Addr: "127.0.0.1:43211", Protocol: "grpc"},
		},
		{
			name: "unix",
			line: "1|1|unix|/run/plugins/echo.sock|grpc",
			want: Handshake{CoreProtocol: 1, AppProtocol: 1, Network: "unix", Addr: "/run/plugins/echo.sock", Protocol: "grpc"},
		},
		{
			name: "trailing newline",
			line: "1|1|tcp|127.0.0.1:50000|grpc\n",
			want: Handshake{CoreProtocol: 1, AppProtocol: 1, Network: "tcp", Addr: "127.0.0.1:50000", Protocol: "grpc"},
		},
		{
			name: "future versions parse",
			line: "2|7|tcp|127.0.0.1:50000|grpc",
			want: Handshake{CoreProtocol: 2, AppProtocol: 7, Network: "tcp", Addr: "127.0.0.1:50000", Protocol: "grpc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHandshake(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHandshake_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{name: "empty", line: "", wantErr: "expected 5 fields"},
		{name: "too few fields", line: "1|1|tcp|addr", wantErr: "expected 5 fields"},
		{name: "too many fields", line: "1|1|tcp|addr|grpc|extra", wantErr: "expected 5 fields"},
		{name: "core not numeric", line: "x|1|tcp|addr|grpc", wantErr: "not numeric"},
		{name: "app not numeric", line: "1|x|tcp|addr|grpc", wantErr: "not numeric"},
		{name: "bad network", line: "1|1|udp|addr|grpc", wantErr: "unsupported network"},
		{name: "empty address", line: "1|1|tcp||grpc", wantErr: "empty address"},
		{name: "bad protocol", line: "1|1|tcp|addr|netrpc", wantErr: "unsupported protocol"},
		{name: "log line on stdout", line: "plugin starting up", wantErr: "expected 5 fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHandshake(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHandshake_Validate(t *testing.T) {
	hs := newHandshake(NetworkTCP, "127.0.0.1:1")
	require.NoError(t, hs.Validate())

	hs.CoreProtocol = 2
	err := hs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "core protocol 2")

	hs = newHandshake(NetworkTCP, "127.0.0.1:1")
	hs.AppProtocol = 9
	err = hs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app protocol 9")
}
