package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
// Delivery layers map domain errors into these.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
