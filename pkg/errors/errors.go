package errors

import "fmt"

// HTTPError is a boundary-level error that carries the HTTP status code a
// failed request should respond with.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// ErrInternalServerError is the catch-all boundary error. Handlers return it
// for any failure that must not leak internal detail to clients.
var ErrInternalServerError = NewHTTPError(500, "internal server error")
