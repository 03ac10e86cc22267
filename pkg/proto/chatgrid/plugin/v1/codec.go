// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// codec replaces the default proto codec so the hand-maintained wire structs
// in this package can travel over gRPC. Messages that implement proto.Message
// (grpc-go health checking, go-plugin's controller and broker services) keep
// protobuf encoding; everything else is encoded as JSON. Both ends of a
// plugin connection link this package, so the substitution is symmetric.
type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

func (codec) Name() string { return "proto" }

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return proto.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, m)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}
