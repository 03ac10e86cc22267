// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

func TestFromRPCError_CodeMapping(t *testing.T) {
	tests := []struct {
		code codes.Code
		kind ErrorKind
	}{
		{codes.NotFound, KindNotFound},
		{codes.PermissionDenied, KindPermissionDenied},
		{codes.Unauthenticated, KindPermissionDenied},
		{codes.InvalidArgument, KindValidation},
		{codes.OutOfRange, KindValidation},
		{codes.FailedPrecondition, KindValidation},
		{codes.AlreadyExists, KindAlreadyExists},
		{codes.Unavailable, KindUnavailable},
		{codes.ResourceExhausted, KindUnavailable},
		{codes.DeadlineExceeded, KindUnavailable},
		{codes.Internal, KindGeneric},
		{codes.Unknown, KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			rpcErr := status.Error(tt.code, "boom")
			apiErr := fromRPCError(rpcErr)

			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, "boom", apiErr.Message)
			assert.ErrorIs(t, apiErr, rpcErr)
		})
	}
}

func TestFromRPCError_NonStatusError(t *testing.T) {
	cause := errors.New("socket closed")
	apiErr := fromRPCError(cause)

	// Plain errors still arrive as the unknown status, so the kind is generic.
	assert.Equal(t, KindGeneric, apiErr.Kind)
	assert.NotNil(t, apiErr.Unwrap())
}

func TestFromAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		status int32
		kind   ErrorKind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindPermissionDenied},
		{http.StatusForbidden, KindPermissionDenied},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindAlreadyExists},
		{http.StatusTooManyRequests, KindUnavailable},
		{http.StatusServiceUnavailable, KindUnavailable},
		{http.StatusInternalServerError, KindGeneric},
	}

	for _, tt := range tests {
		apiErr := fromAppError(&pluginv1.AppError{
			Id:         "app.some_error",
			Message:    "refused",
			StatusCode: tt.status,
			Where:      "KVSet",
			Params:     map[string]string{"key": "k"},
		})

		assert.Equal(t, tt.kind, apiErr.Kind, "status %d", tt.status)
		assert.Equal(t, "app.some_error", apiErr.ID)
		assert.Equal(t, "KVSet", apiErr.Where)
		assert.Equal(t, "k", apiErr.Params["key"])
	}
}

func TestResponseError(t *testing.T) {
	assert.NoError(t, responseError(nil))
	assert.NoError(t, responseError(&pluginv1.AppError{}))

	err := responseError(&pluginv1.AppError{Id: "app.refused", Message: "no", StatusCode: http.StatusForbidden})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindPermissionDenied, apiErr.Kind)
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Kind: KindNotFound, Message: "user does not exist", Where: "GetUser"}
	assert.Equal(t, "GetUser: user does not exist (not_found)", err.Error())

	err = &APIError{Kind: KindUnavailable, Message: "host unreachable"}
	assert.Equal(t, "host unreachable (unavailable)", err.Error())
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "permission_denied", KindPermissionDenied.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "already_exists", KindAlreadyExists.String())
	assert.Equal(t, "unavailable", KindUnavailable.String())
	assert.Equal(t, "api_error", KindGeneric.String())
}
