package api

import (
	"errors"
	"fmt"
)

// RequestError is the single failure kind surfaced by the client. It covers
// transport failures, non-2xx responses, and undecodable bodies.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func newRequestError(method, path string, status int, msg string, err error) *RequestError {
	return &RequestError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    msg,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	s := fmt.Sprintf("%s %s", e.Method, e.Path)
	if e.StatusCode != 0 {
		s += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	s += ": " + e.Message
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError returns true if the error is a 5xx server error.
func (e *RequestError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsTransport returns true when no HTTP response was received.
func (e *RequestError) IsTransport() bool {
	return e.StatusCode == 0
}

// AsRequestError reports whether err is (or wraps) a RequestError.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	ok := errors.As(err, &reqErr)
	return reqErr, ok
}
