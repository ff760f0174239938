package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/deppfellow/go-shops/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrInternal marks a failure of the validator itself rather than of the input.
var ErrInternal = errors.New("validator internal failure")

// validate is shared; validator instances are safe for concurrent use and
// cache parsed tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// The built-in uuid tag only matches lowercase hex.
	_ = v.RegisterValidation("uuid_any", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		_, err := uuid.Parse(s)
		return err == nil && len(s) == 36
	})
	return v
}

// Type is the JSON type a field must carry.
type Type int

const (
	String Type = iota + 1
	Number
	Integer
)

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Integer:
		return "integer"
	default:
		return "unknown"
	}
}

// Field declares one key of a schema.
//
// Rules is a validator tag string applied to the typed value once the type
// check passed, e.g. "required", "min=1", "uuid".
type Field struct {
	Name     string
	Type     Type
	Optional bool
	Rules    string
}

// Schema is an ordered list of fields. Issues are reported in this order.
type Schema []Field

// Issue is a single field-level failure.
type Issue struct {
	Field  string
	Reason string
}

// Message renders the issue as "<field> is <reason>".
func (i Issue) Message() string {
	return i.Field + " is " + i.Reason
}

// Errors is the ordered list of issues returned when a candidate does not
// match its schema.
type Errors []Issue

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, issue := range e {
		msgs = append(msgs, issue.Message())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// FieldErrors converts the issues into the API error detail shape.
func (e Errors) FieldErrors() []errs.FieldError {
	out := make([]errs.FieldError, 0, len(e))
	for _, issue := range e {
		out = append(out, errs.FieldError{Field: issue.Field, Message: issue.Message()})
	}
	return out
}

// Validate checks candidate against schema.
//
// It returns nil when the candidate conforms, Errors when one or more fields
// do not, and an error wrapping ErrInternal when the rules engine itself
// fails. Keys not declared in the schema are ignored.
func Validate(schema Schema, candidate map[string]any) (err error) {
	defer func() {
		// validator panics on malformed tags.
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	var issues Errors

	for _, field := range schema {
		raw, present := candidate[field.Name]
		if !present {
			if !field.Optional {
				issues = append(issues, Issue{Field: field.Name, Reason: "required"})
			}
			continue
		}

		value, reason := coerce(field.Type, raw)
		if reason != "" {
			issues = append(issues, Issue{Field: field.Name, Reason: reason})
			continue
		}

		if field.Rules == "" {
			continue
		}

		if verr := validate.Var(value, field.Rules); verr != nil {
			var fieldErrors validator.ValidationErrors
			if !errors.As(verr, &fieldErrors) || len(fieldErrors) == 0 {
				return fmt.Errorf("%w: field %s: %v", ErrInternal, field.Name, verr)
			}
			issues = append(issues, Issue{Field: field.Name, Reason: ruleReason(fieldErrors[0])})
		}
	}

	if len(issues) > 0 {
		return issues
	}
	return nil
}

// ParseObject decodes a request body into a candidate map.
//
// An empty body is an empty object. Malformed JSON and non-object values are
// reported as issues on the pseudo-field "body".
func ParseObject(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, Errors{{Field: "body", Reason: "malformed JSON"}}
	}
	if dec.More() {
		return nil, Errors{{Field: "body", Reason: "malformed JSON"}}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, Errors{{Field: "body", Reason: "expected object, received " + jsonType(raw)}}
	}
	return obj, nil
}

func coerce(t Type, raw any) (any, string) {
	mismatch := func() (any, string) {
		return nil, fmt.Sprintf("expected %s, received %s", t, jsonType(raw))
	}

	switch t {
	case String:
		s, ok := raw.(string)
		if !ok {
			return mismatch()
		}
		return s, ""

	case Number:
		f, ok := toFloat(raw)
		if !ok {
			if _, isNumber := raw.(json.Number); isNumber {
				return nil, "out of range"
			}
			return mismatch()
		}
		return f, ""

	case Integer:
		// Only integer literals decode into Go integers, so 1.0 and 1e3
		// are rejected here as well.
		if n, ok := raw.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				return i, ""
			}
			if strings.ContainsAny(n.String(), ".eE") {
				return nil, "not an integer"
			}
			return nil, "out of range"
		}
		f, ok := toFloat(raw)
		if !ok {
			return mismatch()
		}
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, "not an integer"
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, "out of range"
		}
		return int64(f), ""
	}

	return nil, "of an unknown type"
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// jsonType names the JSON type of a decoded value.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	return reflect.TypeOf(v).String()
}

// ruleReason converts a validator failure into a reason that reads after
// "<field> is".
func ruleReason(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "required"

	case "min", "gte":
		if isString {
			return fmt.Sprintf("too short (minimum %s characters)", fe.Param())
		}
		return fmt.Sprintf("too small (minimum %s)", fe.Param())

	case "max", "lte":
		if isString {
			return fmt.Sprintf("too long (maximum %s characters)", fe.Param())
		}
		return fmt.Sprintf("too large (maximum %s)", fe.Param())

	case "oneof":
		return fmt.Sprintf("not one of: %s", fe.Param())

	case "email":
		return "not a valid email address"

	case "uuid", "uuid4", "uuid_any":
		return "not a valid UUID"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("invalid (%s:%s)", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("invalid (%s)", fe.Tag())
	}
}
