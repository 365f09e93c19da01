package dto

import (
	"encoding/json"
	"strings"

	"debt-tracker/internal/analysis"

	"github.com/shopspring/decimal"
)

// Number is a lenient decimal for request bodies. It accepts JSON numbers
// and numeric strings; null, blanks and anything unparsable decode to zero
// instead of failing the request.
type Number struct {
	decimal.Decimal
}

// NewNumber wraps d
func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

// UnmarshalJSON never returns an error
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		n.Decimal = analysis.Coerce(s)
		return nil
	}

	if raw == "null" {
		n.Decimal = decimal.Zero
		return nil
	}

	n.Decimal = analysis.Coerce(raw)
	return nil
}

// valueOr returns the wrapped value, or fallback when n is nil
func (n *Number) valueOr(fallback decimal.Decimal) decimal.Decimal {
	if n == nil {
		return fallback
	}
	return n.Decimal
}
