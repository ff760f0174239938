package errs

import (
	"net/http"
	"strings"
)

// Response kinds rendered in the "error" key of an error payload.
const (
	KindInvalidData = "Invalid data"
	KindInternal    = "Internal Server Error"
)

// FieldError represents a single field-level validation issue.
//
// Field is kept for logging only; clients receive the rendered message:
//
//	{ "message": "title is required" }
type FieldError struct {
	Field   string `json:"-"`
	Message string `json:"message"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface and serializes directly into the
// response body. Status and Code never reach the client; Code is a
// machine-friendly label (e.g. "BAD_REQUEST", "SHOP_ALREADY_EXISTS") used in
// logs. Empty payload fields are omitted, so the three shapes clients see are:
//
//	400 {"error": "Invalid data", "details": [{"message": "..."}]}
//	404 {"message": "Shop not found"}
//	500 {"error": "Internal Server Error"}
type HTTPError struct {
	Status int    `json:"-"`
	Code   string `json:"-"`

	Kind    string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Details) > 0 {
		msgs := make([]string, 0, len(e.Details))
		for _, d := range e.Details {
			msgs = append(msgs, d.Message)
		}
		return e.Kind + ": " + strings.Join(msgs, "; ")
	}
	if e.Kind != "" {
		return e.Kind
	}
	return http.StatusText(e.Status)
}

// Is reports whether target is also a *HTTPError.
//
// It does not compare Code/Status; errors.Is(err, &HTTPError{}) only asks
// "is this an application error at all".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Code:    e.Code,
		Kind:    e.Kind,
		Message: message,
		Details: e.Details,
	}
}

// WithCode returns a copy of this HTTPError with Code replaced.
func (e *HTTPError) WithCode(code string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Code:    code,
		Kind:    e.Kind,
		Message: e.Message,
		Details: e.Details,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
