package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status code it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewInternalError wraps err as a 500, keeping its text in the detail.
func NewInternalError(err error) *HTTPError {
	return &HTTPError{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("Internal server error: %v", err),
	}
}

// AsHTTPError reports whether err is (or wraps) an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
