package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/deppfellow/go-shops/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types.
//
// Schemas returns the schemas the raw body and the path parameters must
// satisfy before the payload is bound. A nil schema skips that check, which
// is how routes opt out of validation.
type Validatable interface {
	Schemas() (body Schema, params Schema)
}

// BindAndValidate validates the raw request against the payload's schemas
// and then binds the request into payload.
//
// Flow:
//  1. Read the body once and restore it for later readers.
//  2. Validate path params and body against their schemas.
//  3. Bind path params (`param` tags) and the JSON body into payload.
//
// Input problems come back as a 400 *errs.HTTPError. A failure of the
// validator itself comes back as a plain error, which the global error
// handler turns into a 500.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	bodySchema, paramSchema := payload.Schemas()

	var issues Errors

	if paramSchema != nil {
		params := make(map[string]any, len(c.ParamNames()))
		for _, name := range c.ParamNames() {
			params[name] = c.Param(name)
		}
		if err := collect(&issues, Validate(paramSchema, params)); err != nil {
			return err
		}
	}

	if bodySchema != nil {
		candidate, err := ParseObject(body)
		if err == nil {
			err = Validate(bodySchema, candidate)
		}
		if err := collect(&issues, err); err != nil {
			return err
		}
	}

	if len(issues) > 0 {
		return errs.NewValidationError(issues.FieldErrors())
	}

	return bind(c, body, payload)
}

// collect appends validation issues and returns any other error unchanged.
func collect(issues *Errors, err error) error {
	if err == nil {
		return nil
	}
	var found Errors
	if errors.As(err, &found) {
		*issues = append(*issues, found...)
		return nil
	}
	return err
}

func readBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}

// bind fills payload from path params and the JSON body using echo's
// binder.
//
// The body is always read as JSON whatever Content-Type the client sent, so
// routes that skip validation still reject malformed JSON and wrong field
// types.
func bind(c echo.Context, body []byte, payload any) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewValidationError([]errs.FieldError{{Field: "params", Message: "params are invalid"}})
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	req := c.Request()
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.ContentLength = int64(len(body))
	req.Body = io.NopCloser(bytes.NewReader(body))
	defer func() { req.Body = io.NopCloser(bytes.NewReader(body)) }()

	if err := binder.BindBody(c, payload); err != nil {
		return errs.NewValidationError([]errs.FieldError{bindFieldError(err)})
	}

	return nil
}

// bindFieldError unwraps the decoder error echo attaches as the internal
// error of its 400 response.
func bindFieldError(err error) errs.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		issue := Issue{
			Field:  field,
			Reason: fmt.Sprintf("expected %s, received %s", goTypeName(typeErr.Type), typeErr.Value),
		}
		return errs.FieldError{Field: issue.Field, Message: issue.Message()}
	}

	issue := Issue{Field: "body", Reason: "malformed JSON"}
	return errs.FieldError{Field: issue.Field, Message: issue.Message()}
}

// goTypeName names a Go destination type the way JSON clients think of it.
func goTypeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "value"
	}

	switch t.Kind() {
	case reflect.String:
		return String.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer.String()
	case reflect.Float32, reflect.Float64:
		return Number.String()
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return t.String()
}
