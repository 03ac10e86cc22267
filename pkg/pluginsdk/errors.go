// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pluginv1 "github.com/chatgrid/chatgrid-plugin/pkg/proto/chatgrid/plugin/v1"
)

// ErrNotConnected is returned when an API call is made before Connect or
// after Close.
var ErrNotConnected = errors.New("plugin API client is not connected")

// ErrorKind classifies an APIError so callers can branch without string
// matching. Transport status codes and app-error status codes both map into
// the same set.
type ErrorKind int

// Error kinds, ordered roughly by how often callers check them.
const (
	// KindGeneric is the catch-all for faults with no better classification.
	KindGeneric ErrorKind = iota
	// KindNotFound means the referenced entity does not exist.
	KindNotFound
	// KindPermissionDenied covers authentication and authorization refusals.
	KindPermissionDenied
	// KindValidation means the request was malformed or violated a precondition.
	KindValidation
	// KindAlreadyExists means a uniqueness constraint was violated.
	KindAlreadyExists
	// KindUnavailable covers transient failures worth retrying: the host is
	// overloaded, unreachable, or the call timed out.
	KindUnavailable
)

// String returns a stable lowercase name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindValidation:
		return "validation"
	case KindAlreadyExists:
		return "already_exists"
	case KindUnavailable:
		return "unavailable"
	default:
		return "api_error"
	}
}

// APIError is the single error type surfaced by the host-API client. It
// carries the host's structured envelope when one was returned, and the
// classification Kind in every case. Raw transport errors never escape the
// client; they arrive here with the original error wrapped.
type APIError struct {
	Kind          ErrorKind
	ID            string
	Message       string
	DetailedError string
	StatusCode    int
	Where         string
	Params        map[string]string

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Where, e.Message, e.Kind)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Kind)
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// newTransportUnavailable wraps a local connectivity failure.
func newTransportUnavailable(err error) *APIError {
	return &APIError{
		Kind:       KindUnavailable,
		ID:         "plugin_api.transport_unavailable",
		Message:    "plugin API transport is unavailable",
		StatusCode: http.StatusServiceUnavailable,
		cause:      err,
	}
}

// fromRPCError maps a failed gRPC call to the local taxonomy. The original
// error stays reachable through Unwrap for observability.
func fromRPCError(err error) *APIError {
	st, ok := status.FromError(err)
	if !ok {
		return &APIError{
			Kind:    KindGeneric,
			Message: err.Error(),
			cause:   err,
		}
	}

	var kind ErrorKind
	switch st.Code() {
	case codes.NotFound:
		kind = KindNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		kind = KindPermissionDenied
	case codes.InvalidArgument, codes.OutOfRange, codes.FailedPrecondition:
		kind = KindValidation
	case codes.AlreadyExists:
		kind = KindAlreadyExists
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded:
		kind = KindUnavailable
	default:
		kind = KindGeneric
	}

	return &APIError{
		Kind:       kind,
		ID:         "plugin_api.rpc_error",
		Message:    st.Message(),
		StatusCode: httpStatusForCode(st.Code()),
		cause:      err,
	}
}

// fromAppError maps the host's structured refusal to the local taxonomy,
// preserving every envelope field.
func fromAppError(ae *pluginv1.AppError) *APIError {
	var kind ErrorKind
	switch ae.GetStatusCode() {
	case http.StatusBadRequest:
		kind = KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindPermissionDenied
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusConflict:
		kind = KindAlreadyExists
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		kind = KindUnavailable
	default:
		kind = KindGeneric
	}

	return &APIError{
		Kind:          kind,
		ID:            ae.GetId(),
		Message:       ae.GetMessage(),
		DetailedError: ae.GetDetailedError(),
		StatusCode:    int(ae.GetStatusCode()),
		Where:         ae.GetWhere(),
		Params:        ae.GetParams(),
	}
}

// httpStatusForCode gives a rough HTTP equivalent for observability fields.
func httpStatusForCode(c codes.Code) int {
	switch c {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		return http.StatusForbidden
	case codes.InvalidArgument, codes.OutOfRange, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// responseError inspects a unary API response's app-error field and returns
// the mapped local error, or nil when the call succeeded. An envelope with an
// empty identifier counts as success; hosts always stamp refusals.
func responseError(ae *pluginv1.AppError) error {
	if ae == nil || ae.GetId() == "" && ae.GetMessage() == "" {
		return nil
	}
	return fromAppError(ae)
}
