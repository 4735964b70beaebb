package errors

import "net/http"

// HTTPError is an error that already knows its HTTP status and client-facing message.
type HTTPError struct {
	Code    int
	Message string
	Details any
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewBadRequestError creates a 400 HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// WithDetails attaches a structured payload rendered under "errors".
func (e *HTTPError) WithDetails(details any) *HTTPError {
	e.Details = details
	return e
}

func (e *HTTPError) Error() string {
	return e.Message
}
