// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package plugin provides plugin manifest parsing and lifecycle management.
package plugin

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Manifest represents a plugin.yaml file at the root of a plugin bundle.
type Manifest struct {
	// ID uniquely identifies the plugin. It scopes the plugin's key-value
	// namespace and names it in logs and events.
	ID string `yaml:"id" json:"id"`

	// Name is a human-readable display name.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description explains what the plugin does.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Version is the plugin's semantic version.
	Version string `yaml:"version" json:"version"`

	// MinHostVersion constrains which host versions may load the plugin.
	// Empty means any host.
	MinHostVersion string `yaml:"min-host-version,omitempty" json:"min-host-version,omitempty"`

	// Executable is the path of the plugin binary, relative to the bundle
	// directory.
	Executable string `yaml:"executable" json:"executable"`

	// HookTimeoutSeconds overrides the host's per-hook deadline for this
	// plugin. Zero means the host default.
	HookTimeoutSeconds int `yaml:"hook-timeout-seconds,omitempty" json:"hook-timeout-seconds,omitempty"`
}

// maxIDLength is the maximum allowed length for plugin IDs.
const maxIDLength = 64

// idPattern validates plugin IDs: must start with a lowercase letter,
// followed by lowercase letters, digits, or hyphens.
// Cannot end with a hyphen. Single character IDs are allowed.
var idPattern = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

// ParseManifest parses and validates a plugin.yaml file.
func ParseManifest(data []byte) (*Manifest, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("manifest data is empty")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks manifest constraints.
func (m *Manifest) Validate() error {
	if m.ID == "" || !idPattern.MatchString(m.ID) {
		return fmt.Errorf("id %q must start with a-z, contain only a-z, 0-9, hyphens, and not end with a hyphen", m.ID)
	}
	if len(m.ID) > maxIDLength {
		return fmt.Errorf("id must be %d characters or less, got %d", maxIDLength, len(m.ID))
	}

	if m.Version == "" {
		return fmt.Errorf("version is required")
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		return fmt.Errorf("version %q is not a valid semantic version: %w", m.Version, err)
	}

	if m.MinHostVersion != "" {
		if _, err := semver.NewVersion(m.MinHostVersion); err != nil {
			return fmt.Errorf("min-host-version %q is not a valid semantic version: %w", m.MinHostVersion, err)
		}
	}

	if m.Executable == "" {
		return fmt.Errorf("executable is required")
	}
	if filepath.IsAbs(m.Executable) || !filepath.IsLocal(m.Executable) {
		return fmt.Errorf("executable %q must be a relative path inside the bundle", m.Executable)
	}

	if m.HookTimeoutSeconds < 0 {
		return fmt.Errorf("hook-timeout-seconds must not be negative, got %d", m.HookTimeoutSeconds)
	}

	return nil
}

// CompatibleWith reports whether the given host version satisfies the
// manifest's min-host-version constraint.
func (m *Manifest) CompatibleWith(hostVersion string) (bool, error) {
	if m.MinHostVersion == "" {
		return true, nil
	}

	hv, err := semver.NewVersion(hostVersion)
	if err != nil {
		return false, fmt.Errorf("host version %q is not a valid semantic version: %w", hostVersion, err)
	}

	minv, err := semver.NewVersion(m.MinHostVersion)
	if err != nil {
		return false, fmt.Errorf("min-host-version %q is not a valid semantic version: %w", m.MinHostVersion, err)
	}

	return !hv.LessThan(minv), nil
}
