// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"context"
	"fmt"
	"net/http"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// MaxKVKeyLength is the longest key the store accepts, in bytes. Longer keys
// are refused locally so the limit holds regardless of host version.
const MaxKVKeyLength = 50

func validateKVKey(key string) error {
	if key == "" {
		return &APIError{
			Kind:       KindValidation,
			ID:         "plugin_api.kv.empty_key",
			Message:    "key must not be empty",
			StatusCode: http.StatusBadRequest,
		}
	}
	if len(key) > MaxKVKeyLength {
		return &APIError{
			Kind:       KindValidation,
			ID:         "plugin_api.kv.key_too_long",
			Message:    fmt.Sprintf("key exceeds %d bytes", MaxKVKeyLength),
			StatusCode: http.StatusBadRequest,
			Params:     map[string]string{"key": key},
		}
	}
	return nil
}

// KVSet stores value under key. Storing an empty or nil value deletes the
// key; KVGet will report it absent afterwards.
func (c *APIClient) KVSet(ctx context.Context, key string, value []byte) error {
	if err := validateKVKey(key); err != nil {
		return err
	}
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.KVSet(ctx, &pluginv1.KVSetRequest{Key: key, Value: value})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// KVGet retrieves the value stored under key. An absent key yields a nil
// value and a nil error; callers distinguish "missing" by the nil slice, not
// by an error.
func (c *APIClient) KVGet(ctx context.Context, key string) ([]byte, error) {
	if err := validateKVKey(key); err != nil {
		return nil, err
	}
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.KVGet(ctx, &pluginv1.KVGetRequest{Key: key})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	// An empty stored value is indistinguishable from absence to callers.
	if !resp.GetPresent() || len(resp.GetValue()) == 0 {
		return nil, nil
	}
	return resp.GetValue(), nil
}

// KVDelete removes key. Deleting an absent key is not an error.
func (c *APIClient) KVDelete(ctx context.Context, key string) error {
	if err := validateKVKey(key); err != nil {
		return err
	}
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.KVDelete(ctx, &pluginv1.KVDeleteRequest{Key: key})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// KVDeleteAll removes every key this plugin has stored.
func (c *APIClient) KVDeleteAll(ctx context.Context) error {
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.KVDeleteAll(ctx, &pluginv1.KVDeleteAllRequest{})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// KVList pages through this plugin's keys. Pages are zero-based.
func (c *APIClient) KVList(ctx context.Context, page, perPage int) ([]string, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}
	resp, err := api.KVList(ctx, &pluginv1.KVListRequest{Page: int32(page), PerPage: int32(perPage)})
	if err != nil {
		return nil, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return nil, err
	}
	return resp.GetKeys(), nil
}

// KVSetWithExpiry stores value under key with a time-to-live in seconds. A
// non-positive TTL stores the value without expiry.
func (c *APIClient) KVSetWithExpiry(ctx context.Context, key string, value []byte, expireInSeconds int64) error {
	if err := validateKVKey(key); err != nil {
		return err
	}
	api, err := c.api()
	if err != nil {
		return err
	}
	resp, err := api.KVSetWithExpiry(ctx, &pluginv1.KVSetWithExpiryRequest{
		Key:             key,
		Value:           value,
		ExpireInSeconds: expireInSeconds,
	})
	if err != nil {
		return fromRPCError(err)
	}
	return responseError(resp.GetError())
}

// KVCompareAndSet writes newValue only if the stored value equals oldValue.
// A nil oldValue means "only if absent". It reports whether the write took
// effect; a lost race is a false return, not an error.
func (c *APIClient) KVCompareAndSet(ctx context.Context, key string, oldValue, newValue []byte) (bool, error) {
	if err := validateKVKey(key); err != nil {
		return false, err
	}
	api, err := c.api()
	if err != nil {
		return false, err
	}
	resp, err := api.KVCompareAndSet(ctx, &pluginv1.KVCompareAndSetRequest{
		Key:      key,
		OldValue: oldValue,
		NewValue: newValue,
	})
	if err != nil {
		return false, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return false, err
	}
	return resp.GetSucceeded(), nil
}

// KVCompareAndDelete removes key only if the stored value equals oldValue.
func (c *APIClient) KVCompareAndDelete(ctx context.Context, key string, oldValue []byte) (bool, error) {
	if err := validateKVKey(key); err != nil {
		return false, err
	}
	api, err := c.api()
	if err != nil {
		return false, err
	}
	resp, err := api.KVCompareAndDelete(ctx, &pluginv1.KVCompareAndDeleteRequest{
		Key:      key,
		OldValue: oldValue,
	})
	if err != nil {
		return false, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return false, err
	}
	return resp.GetSucceeded(), nil
}

// KVSetOptions selects the write mode for KVSetWithOptions.
type KVSetOptions struct {
	// Atomic makes the write conditional on OldValue matching the stored
	// value, with nil meaning "only if absent".
	Atomic   bool
	OldValue []byte
	// ExpireInSeconds attaches a time-to-live; zero or negative stores
	// without expiry.
	ExpireInSeconds int64
}

// KVSetWithOptions is the general write primitive: plain set, conditional
// set, and expiring set in one call. It reports whether the write took
// effect, which for non-atomic writes is always true on success.
func (c *APIClient) KVSetWithOptions(ctx context.Context, key string, value []byte, opts KVSetOptions) (bool, error) {
	if err := validateKVKey(key); err != nil {
		return false, err
	}
	api, err := c.api()
	if err != nil {
		return false, err
	}
	resp, err := api.KVSetWithOptions(ctx, &pluginv1.KVSetWithOptionsRequest{
		Key:             key,
		Value:           value,
		Atomic:          opts.Atomic,
		OldValue:        opts.OldValue,
		ExpireInSeconds: opts.ExpireInSeconds,
	})
	if err != nil {
		return false, fromRPCError(err)
	}
	if err := responseError(resp.GetError()); err != nil {
		return false, err
	}
	return resp.GetSucceeded(), nil
}
