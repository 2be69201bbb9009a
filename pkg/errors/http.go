package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError is a domain error translated for the delivery layer.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and client-facing message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// StatusOf returns the HTTP status carried by err, or 400 when err is not an HTTPError.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) && httpErr.Code > 0 {
		return httpErr.Code
	}
	return http.StatusBadRequest
}
