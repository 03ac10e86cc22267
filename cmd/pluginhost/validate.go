// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plugin.yaml>",
		Short: "Validate a plugin manifest",
		Long: `Validate a plugin.yaml file against both the JSON Schema and the
manifest constraints the host enforces at load time.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0]) //nolint:gosec // path supplied by the operator
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	if err := plugin.ValidateSchema(data); err != nil {
		return fmt.Errorf("schema: %s", plugin.FormatSchemaError(err))
	}

	m, err := plugin.ParseManifest(data)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	cmd.Printf("%s %s: ok\n", m.ID, m.Version)
	return nil
}
