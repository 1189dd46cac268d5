package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WrapHTTPError creates an HTTPError that keeps err in its chain.
func WrapHTTPError(code int, err error) *HTTPError {
	return &HTTPError{Code: code, Message: err.Error(), Err: err}
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http error %d", e.Code)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusCode returns the status carried by err, or 400 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) && httpErr.Code != 0 {
		return httpErr.Code
	}
	return http.StatusBadRequest
}

// ErrInternalServerError is the generic 500 error.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
