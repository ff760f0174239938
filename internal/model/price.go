package model

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// Price is an exact decimal amount. It is written to JSON as a bare number
// and accepts only JSON numbers on input.
//
// The embedded decimal provides database/sql Scan and Value, so prices
// round-trip through a numeric column without float rounding.
type Price struct {
	decimal.Decimal
}

// NewPrice parses s, e.g. "12.5" or "1e3".
func NewPrice(s string) (*Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &Price{Decimal: d}, nil
}

// PriceFromInt returns a whole-unit price.
func PriceFromInt(v int64) *Price {
	return &Price{Decimal: decimal.NewFromInt(v)}
}

// MarshalJSON writes the price unquoted.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON rejects every JSON kind except numbers.
func (p *Price) UnmarshalJSON(data []byte) error {
	if kind := jsonKind(data); kind != "number" {
		return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(float64(0))}
	}
	return p.Decimal.UnmarshalJSON(data)
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "value"
	}
	switch data[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	case '{':
		return "object"
	case '[':
		return "array"
	}
	return "number"
}
