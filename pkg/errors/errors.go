package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered to a client.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
	// Fields holds per-field messages for validation failures.
	Fields map[string][]string
	// Data is echoed back in the response body (e.g. submitted form values).
	Data any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code mirrors the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// NewValidationError creates a 422 HTTPError carrying field messages and the submitted values.
func NewValidationError(message string, fields map[string][]string, submitted any) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       http.StatusUnprocessableEntity,
		Message:    message,
		Fields:     fields,
		Data:       submitted,
	}
}

// WithData returns a copy of e carrying data.
func (e *HTTPError) WithData(data any) *HTTPError {
	cp := *e
	cp.Data = data
	return &cp
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrRequestTooLarge     = NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError unwraps err into an HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// Wrap prefixes err with a formatted message, keeping it unwrappable.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsRequestTooLarge reports whether err came from reading past a capped request body.
func IsRequestTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
