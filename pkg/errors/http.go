package errors

import "net/http"

// HTTPError represents an HTTP error with a status code and message.
type HTTPError struct {
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError. A zero statusCode defaults to 400.
func NewHTTPError(statusCode int, message string) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewBadRequestHTTPError returns a 400 error with the given message.
func NewBadRequestHTTPError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedHTTPError returns a 401 error carrying the given cause.
func NewUnauthorizedHTTPError(cause string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, cause)
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
