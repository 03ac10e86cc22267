// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package pluginv1 contains the wire types and gRPC bindings for the
// chatgrid.plugin.v1 protocol: the PluginHooks service the host invokes on
// plugins, and the PluginAPI service plugins invoke on the host.
//
// The message definitions mirror proto/chatgrid/plugin/v1/*.proto. The Go
// bindings are hand-maintained against those sources so the module carries no
// codegen step; keep the two in sync when changing the protocol.
//
// TODO: replace these bindings with buf-generated code once the proto
// toolchain is wired into CI.
package pluginv1
