// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package plugin

import "context"

// Host manages the runtime for loaded plugins.
type Host interface {
	// Load starts a plugin from its manifest and bundle directory, performs
	// the startup handshake, and activates it.
	Load(ctx context.Context, manifest *Manifest, dir string) error

	// Unload deactivates and tears down a plugin.
	Unload(ctx context.Context, id string) error

	// Plugins returns IDs of all loaded plugins.
	Plugins() []string

	// Close shuts down the host and all plugins.
	Close(ctx context.Context) error
}
