// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the plugin host CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pluginhost",
		Short: "ChatGrid plugin host",
		Long: `The ChatGrid plugin host runs plugins as supervised child processes,
dispatches server hooks to them over gRPC, and serves the host API they
call back into.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewGenSchemaCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
