// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

// Package kv provides the host-side persistence behind the plugin key/value
// API. Every operation is scoped by plugin identifier; plugins can never see
// each other's keys.
package kv

import (
	"context"
	"errors"
	"time"
)

// MaxKeyLength mirrors the SDK-side key ceiling. The store enforces it too,
// so a misbehaving client cannot smuggle longer keys past the host.
const MaxKeyLength = 50

// Sentinel errors for programmatic checks.
var (
	// ErrKeyInvalid is returned for empty or over-long keys.
	ErrKeyInvalid = errors.New("kv: invalid key")
	// ErrStoreClosed is returned when operating on a closed store.
	ErrStoreClosed = errors.New("kv: store is closed")
)

// SetOptions selects the write mode for Set.
type SetOptions struct {
	// Atomic makes the write conditional: it succeeds only when the
	// current value equals OldValue, with a nil OldValue meaning "only if
	// absent".
	Atomic   bool
	OldValue []byte
	// ExpireAt attaches an absolute expiry; the zero time means none.
	ExpireAt time.Time
}

// Store is the persistence contract for plugin key/value data.
//
// Writing a nil or empty value deletes the key; Get reports an expired or
// deleted key as absent. Atomic writes report whether they took effect; a
// lost race is (false, nil), never an error.
type Store interface {
	Set(ctx context.Context, pluginID, key string, value []byte, opts SetOptions) (bool, error)
	Get(ctx context.Context, pluginID, key string) ([]byte, error)
	Delete(ctx context.Context, pluginID, key string) error
	DeleteAll(ctx context.Context, pluginID string) error
	List(ctx context.Context, pluginID string, page, perPage int) ([]string, error)
	Close()
}

func validateKey(key string) error {
	if key == "" || len(key) > MaxKeyLength {
		return ErrKeyInvalid
	}
	return nil
}
