// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package plugin_test

import (
	"strings"
	"testing"

	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
)

func TestValidateSchema_ValidManifest(t *testing.T) {
	yaml := `
id: echo
name: Echo
description: Replies to every message.
version: 1.0.0
executable: bin/echo
`
	err := plugin.ValidateSchema([]byte(yaml))
	if err != nil {
		t.Errorf("ValidateSchema() error = %v, want nil", err)
	}
}

func TestValidateSchema_MinimalManifest(t *testing.T) {
	yaml := `
id: echo
version: 1.0.0
executable: echo
`
	err := plugin.ValidateSchema([]byte(yaml))
	if err != nil {
		t.Errorf("ValidateSchema() error = %v, want nil", err)
	}
}

func TestValidateSchema_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing id",
			yaml: "version: 1.0.0\nexecutable: bin/echo",
		},
		{
			name: "missing version",
			yaml: "id: echo\nexecutable: bin/echo",
		},
		{
			name: "missing executable",
			yaml: "id: echo\nversion: 1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plugin.ValidateSchema([]byte(tt.yaml))
			if err == nil {
				t.Errorf("ValidateSchema() expected error for %s", tt.name)
			}
		})
	}
}

func TestValidateSchema_UnknownField(t *testing.T) {
	yaml := `
id: echo
version: 1.0.0
executable: bin/echo
entrypoint: main.lua
`
	err := plugin.ValidateSchema([]byte(yaml))
	if err == nil {
		t.Error("ValidateSchema() expected error for unknown field")
	}
}

func TestValidateSchema_WrongType(t *testing.T) {
	yaml := `
id: echo
version: 1.0.0
executable: bin/echo
hook-timeout-seconds: soon
`
	err := plugin.ValidateSchema([]byte(yaml))
	if err == nil {
		t.Error("ValidateSchema() expected error for non-integer timeout")
	}
}

func TestValidateSchema_Empty(t *testing.T) {
	err := plugin.ValidateSchema(nil)
	if err == nil {
		t.Error("ValidateSchema() expected error for empty data")
	}
}

func TestGenerateSchema(t *testing.T) {
	plugin.ResetSchemaCache()

	data, err := plugin.GenerateSchema()
	if err != nil {
		t.Fatalf("GenerateSchema() error = %v", err)
	}

	schema := string(data)
	for _, want := range []string{plugin.GetSchemaID(), `"id"`, `"version"`, `"executable"`} {
		if !strings.Contains(schema, want) {
			t.Errorf("GenerateSchema() output missing %q", want)
		}
	}
}

func TestFormatSchemaError(t *testing.T) {
	if got := plugin.FormatSchemaError(nil); got != "" {
		t.Errorf("FormatSchemaError(nil) = %q, want empty", got)
	}

	err := plugin.ValidateSchema([]byte("id: echo"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := plugin.FormatSchemaError(err); strings.Contains(got, "schema validation failed:") {
		t.Errorf("FormatSchemaError() = %q, want prefix stripped", got)
	}
}
