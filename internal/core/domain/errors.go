package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed prediction call.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindTimeout    ErrorKind = "timeout"
	KindValidation ErrorKind = "validation"
	KindServer     ErrorKind = "server"
	KindUnknown    ErrorKind = "unknown"
)

// PredictionError is the typed error produced by the transport and schema
// layers. Retryable is fixed at construction: transient network, timeout
// and 5xx/429 conditions are worth re-attempting, validation rejections
// and malformed bodies are not.
type PredictionError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Retryable  bool
	Err        error
}

func (e *PredictionError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// NewNetworkError wraps a connectivity failure seen before any response.
func NewNetworkError(err error) *PredictionError {
	return &PredictionError{
		Kind:      KindNetwork,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewTimeoutError wraps an elapsed request deadline.
func NewTimeoutError(err error) *PredictionError {
	return &PredictionError{
		Kind:      KindTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewValidationError reports a request the remote service rejected as invalid.
func NewValidationError(status int, message string) *PredictionError {
	return &PredictionError{
		Kind:       KindValidation,
		StatusCode: status,
		Message:    message,
	}
}

// NewServerError reports a non-success status. Only 5xx and 429 are
// retryable; other 4xx responses will deterministically fail again.
func NewServerError(status int, message string) *PredictionError {
	return &PredictionError{
		Kind:       KindServer,
		StatusCode: status,
		Message:    message,
		Retryable:  status >= 500 || status == 429,
	}
}

// NewUnknownError covers everything else, including malformed success bodies.
func NewUnknownError(message string, err error) *PredictionError {
	return &PredictionError{
		Kind:    KindUnknown,
		Message: message,
		Err:     err,
	}
}

// KindOf extracts the error kind, defaulting to unknown for untyped errors.
func KindOf(err error) ErrorKind {
	var perr *PredictionError
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindUnknown
}

// IsRetryable reports whether re-attempting the failed operation has a
// reasonable chance of succeeding. Untyped errors are not retried.
func IsRetryable(err error) bool {
	var perr *PredictionError
	if errors.As(err, &perr) {
		return perr.Retryable
	}
	return false
}
