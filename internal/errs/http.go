package errs

import (
	"net/http"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewValidationError creates a 400 error carrying field-level details.
func NewValidationError(details []FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_FAILED",
		Kind:    KindInvalidData,
		Details: details,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Code:    statusCode(http.StatusNotFound),
		Message: message,
	}
}

// NewMethodNotAllowedError creates a 405 for a route that exists under another verb.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusMethodNotAllowed,
		Code:    statusCode(http.StatusMethodNotAllowed),
		Message: http.StatusText(http.StatusMethodNotAllowed),
	}
}

// NewStatusError creates an error for any other status, using the status text
// as message.
func NewStatusError(status int) *HTTPError {
	return &HTTPError{
		Status:  status,
		Code:    statusCode(status),
		Message: http.StatusText(status),
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The payload never carries the underlying error; the global error handler
// logs that separately.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status: http.StatusInternalServerError,
		Code:   statusCode(http.StatusInternalServerError),
		Kind:   KindInternal,
	}
}
