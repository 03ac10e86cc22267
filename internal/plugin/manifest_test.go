// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package plugin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
)

func TestParseManifest_Valid(t *testing.T) {
	yaml := `
id: echo
name: Echo
description: Replies to every message.
version: 1.0.0
executable: bin/echo
`
	m, err := plugin.ParseManifest([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "echo", m.ID)
	assert.Equal(t, "Echo", m.Name)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, "bin/echo", m.Executable)
	assert.Empty(t, m.MinHostVersion)
	assert.Zero(t, m.HookTimeoutSeconds)
}

func TestParseManifest_AllFields(t *testing.T) {
	yaml := `
id: retention-sweeper
version: 2.1.0-rc.1
min-host-version: 1.4.0
executable: retention-sweeper
hook-timeout-seconds: 60
`
	m, err := plugin.ParseManifest([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "retention-sweeper", m.ID)
	assert.Equal(t, "2.1.0-rc.1", m.Version)
	assert.Equal(t, "1.4.0", m.MinHostVersion)
	assert.Equal(t, 60, m.HookTimeoutSeconds)
}

func TestParseManifest_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "uppercase not allowed",
			yaml: "id: Echo\nversion: 1.0.0\nexecutable: bin/echo",
		},
		{
			name: "underscore not allowed",
			yaml: "id: echo_bot\nversion: 1.0.0\nexecutable: bin/echo",
		},
		{
			name: "starts with number",
			yaml: "id: 1echo\nversion: 1.0.0\nexecutable: bin/echo",
		},
		{
			name: "starts with dash",
			yaml: "id: -echo\nversion: 1.0.0\nexecutable: bin/echo",
		},
		{
			name: "ends with dash",
			yaml: "id: echo-\nversion: 1.0.0\nexecutable: bin/echo",
		},
		{
			name: "empty id",
			yaml: "id: \"\"\nversion: 1.0.0\nexecutable: bin/echo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plugin.ParseManifest([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "id")
		})
	}
}

func TestParseManifest_IDTooLong(t *testing.T) {
	longID := "a" + strings.Repeat("b", 64)
	yaml := "id: " + longID + "\nversion: 1.0.0\nexecutable: bin/echo"

	_, err := plugin.ParseManifest([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "64 characters or less")
}

func TestParseManifest_SingleCharID(t *testing.T) {
	m, err := plugin.ParseManifest([]byte("id: x\nversion: 1.0.0\nexecutable: x"))
	require.NoError(t, err)
	assert.Equal(t, "x", m.ID)
}

func TestParseManifest_Version(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing",
			yaml:    "id: echo\nexecutable: bin/echo",
			wantErr: "version is required",
		},
		{
			name:    "not semver",
			yaml:    "id: echo\nversion: banana\nexecutable: bin/echo",
			wantErr: "semantic version",
		},
		{
			name:    "bad min-host-version",
			yaml:    "id: echo\nversion: 1.0.0\nmin-host-version: nope\nexecutable: bin/echo",
			wantErr: "min-host-version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plugin.ParseManifest([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseManifest_Executable(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing",
			yaml:    "id: echo\nversion: 1.0.0",
			wantErr: "executable is required",
		},
		{
			name:    "absolute path",
			yaml:    "id: echo\nversion: 1.0.0\nexecutable: /usr/bin/echo",
			wantErr: "relative path",
		},
		{
			name:    "escapes bundle",
			yaml:    "id: echo\nversion: 1.0.0\nexecutable: ../../bin/echo",
			wantErr: "relative path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plugin.ParseManifest([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseManifest_NegativeHookTimeout(t *testing.T) {
	yaml := "id: echo\nversion: 1.0.0\nexecutable: bin/echo\nhook-timeout-seconds: -1"

	_, err := plugin.ParseManifest([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hook-timeout-seconds")
}

func TestParseManifest_Empty(t *testing.T) {
	_, err := plugin.ParseManifest(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestParseManifest_InvalidYAML(t *testing.T) {
	_, err := plugin.ParseManifest([]byte("id: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestManifest_CompatibleWith(t *testing.T) {
	tests := []struct {
		name        string
		minHost     string
		hostVersion string
		want        bool
		wantErr     bool
	}{
		{name: "no constraint", minHost: "", hostVersion: "0.1.0", want: true},
		{name: "host newer", minHost: "1.2.0", hostVersion: "1.3.0", want: true},
		{name: "host equal", minHost: "1.2.0", hostVersion: "1.2.0", want: true},
		{name: "host older", minHost: "1.2.0", hostVersion: "1.1.9", want: false},
		{name: "garbage host version", minHost: "1.2.0", hostVersion: "dev", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &plugin.Manifest{
				ID:             "echo",
				Version:        "1.0.0",
				MinHostVersion: tt.minHost,
				Executable:     "bin/echo",
			}
			got, err := m.CompatibleWith(tt.hostVersion)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
