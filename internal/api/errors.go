// File: internal/api/errors.go
package api

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeAuth       ErrorType = "AUTH"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeServer     ErrorType = "SERVER"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeData       ErrorType = "DATA"
)

// Error is a failed backend call. Detail carries the server-provided message
// (FastAPI's "detail" field) when one was present.
type Error struct {
	Type   ErrorType
	Status int
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api %s error: %s (caused by: %v)", e.Type, e.Detail, e.Cause)
	}
	if e.Status != 0 {
		return fmt.Sprintf("api %s error (%d): %s", e.Type, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s error: %s", e.Type, e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// asError extracts an *Error from err's chain.
func asError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 from the backend. Callers treat
// it as terminal: clear the session, never retry.
func IsUnauthorized(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Type == ErrTypeAuth
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Type == ErrTypeNotFound
}

// IsRetryableStatus reports whether err is a transient server failure
// (500 or 503) worth retrying.
func IsRetryableStatus(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Type == ErrTypeServer && (apiErr.Status == 500 || apiErr.Status == 503)
}

// IsNetwork reports whether err is a network-level failure, including a
// deadline-aborted request.
func IsNetwork(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Type == ErrTypeNetwork
}

// IsInvalidData reports whether the backend answered with a body the client
// could not decode into the expected shape.
func IsInvalidData(err error) bool {
	apiErr, ok := asError(err)
	return ok && apiErr.Type == ErrTypeData
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if apiErr, ok := asError(err); ok {
		return apiErr.Status
	}
	return 0
}

// DetailOf returns the server-provided detail message carried by err, or "".
func DetailOf(err error) string {
	if apiErr, ok := asError(err); ok {
		return apiErr.Detail
	}
	return ""
}
