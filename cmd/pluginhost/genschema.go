// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chatgrid/chatgrid-plugin/internal/plugin"
)

// NewGenSchemaCmd creates the gen-schema subcommand.
func NewGenSchemaCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "gen-schema",
		Short: "Generate the plugin manifest JSON Schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenSchema(cmd, outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", filepath.Join("schemas", "plugin.schema.json"), "output file path")
	return cmd
}

func runGenSchema(cmd *cobra.Command, outPath string) error {
	schema, err := plugin.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outPath, schema, 0o600); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	cmd.Printf("Generated %s\n", outPath)
	return nil
}
