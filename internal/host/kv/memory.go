// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package kv

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for single-node hosts and tests. The
// clock is injectable so expiry behavior is testable without sleeping.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string]map[string]memoryEntry
	now    func() time.Time
	closed bool
}

type memoryEntry struct {
	value    []byte
	expireAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expireAt.IsZero() && !now.Before(e.expireAt)
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		data: make(map[string]map[string]memoryEntry),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Store = (*MemoryStore)(nil)

// Set writes value under (pluginID, key) per opts.
func (s *MemoryStore) Set(_ context.Context, pluginID, key string, value []byte, opts SetOptions) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrStoreClosed
	}

	bucket := s.data[pluginID]
	var current []byte
	if entry, ok := bucket[key]; ok && !entry.expired(s.now()) {
		current = entry.value
	}

	if opts.Atomic && !bytes.Equal(current, opts.OldValue) {
		return false, nil
	}

	// Nil value is a delete in every mode.
	if len(value) == 0 {
		delete(bucket, key)
		return true, nil
	}

	if bucket == nil {
		bucket = make(map[string]memoryEntry)
		s.data[pluginID] = bucket
	}
	bucket[key] = memoryEntry{value: append([]byte(nil), value...), expireAt: opts.ExpireAt}
	return true, nil
}

// Get returns the live value for (pluginID, key), or nil when absent or
// expired.
func (s *MemoryStore) Get(_ context.Context, pluginID, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	entry, ok := s.data[pluginID][key]
	if !ok {
		return nil, nil
	}
	if entry.expired(s.now()) {
		delete(s.data[pluginID], key)
		return nil, nil
	}
	return append([]byte(nil), entry.value...), nil
}

// Delete removes (pluginID, key). Absent keys are fine.
func (s *MemoryStore) Delete(_ context.Context, pluginID, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	delete(s.data[pluginID], key)
	return nil
}

// DeleteAll removes every key the plugin has stored.
func (s *MemoryStore) DeleteAll(_ context.Context, pluginID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	delete(s.data, pluginID)
	return nil
}

// List returns a sorted page of the plugin's live keys.
func (s *MemoryStore) List(_ context.Context, pluginID string, page, perPage int) ([]string, error) {
	if page < 0 || perPage <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	now := s.now()
	keys := make([]string, 0, len(s.data[pluginID]))
	for key, entry := range s.data[pluginID] {
		if entry.expired(now) {
			delete(s.data[pluginID], key)
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	start := page * perPage
	if start >= len(keys) {
		return nil, nil
	}
	end := start + perPage
	if end > len(keys) {
		end = len(keys)
	}
	return keys[start:end], nil
}

// Close marks the store closed; subsequent operations fail.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.data = nil
}
