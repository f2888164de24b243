package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeRateLimit   ErrorType = "rate_limit"
	ErrorTypeAuth        ErrorType = "auth"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeUnknown     ErrorType = "unknown"

	ErrorTypeMissingCredential ErrorType = "missing_credential"
	ErrorTypeStorageAbsent     ErrorType = "storage_absent"
	ErrorTypeStorage           ErrorType = "storage"
	ErrorTypeRemoteCallFailed  ErrorType = "remote_call_failed"
)

// Error represents an error with type information. Code carries the HTTP
// status for remote failures and is 0 otherwise.
type Error struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error (code %d): %s: %v", e.Type, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given type
func New(errorType ErrorType, code int, message string) *Error {
	return &Error{Type: errorType, Message: message, Code: code}
}

// Wrap creates an error of the given type around a cause
func Wrap(errorType ErrorType, err error, message string) *Error {
	return &Error{Type: errorType, Message: message, Err: err}
}

// TypeOf returns the type of err if it is (or wraps) an *Error
func TypeOf(err error) (ErrorType, bool) {
	var typed *Error
	if stderrors.As(err, &typed) {
		return typed.Type, true
	}
	return "", false
}

// IsType reports whether err is (or wraps) an *Error of the given type
func IsType(err error, errorType ErrorType) bool {
	t, ok := TypeOf(err)
	return ok && t == errorType
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var typed *Error
	if stderrors.As(err, &typed) {
		return typed.Code
	}
	return 0
}

// IsRemoteFailure reports whether err came from a call to the remote service
func IsRemoteFailure(err error) bool {
	t, ok := TypeOf(err)
	if !ok {
		return false
	}
	switch t {
	case ErrorTypeNetwork, ErrorTypeRateLimit, ErrorTypeAuth, ErrorTypeNotFound,
		ErrorTypeServerError, ErrorTypeRemoteCallFailed:
		return true
	}
	return false
}

// TypeForStatus classifies a non-200 HTTP status code
func TypeForStatus(statusCode int) ErrorType {
	switch {
	case statusCode == 401 || statusCode == 403:
		return ErrorTypeAuth
	case statusCode == 404:
		return ErrorTypeNotFound
	case statusCode == 429:
		return ErrorTypeRateLimit
	case statusCode >= 500:
		return ErrorTypeServerError
	default:
		return ErrorTypeRemoteCallFailed
	}
}
