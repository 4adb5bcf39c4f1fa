package validator

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation: plain decimal notation only, no exponent.
var numericRegex = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

var amountReplacer = strings.NewReplacer(",", "", "_", "", " ", "", "₹", "")

// ParseAmount turns free-text form input into a non-negative amount.
// Group separators and the rupee sign are ignored. Anything that is not a
// plain decimal number after that, including exponent forms like 1e9, and
// any negative value, becomes zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Rs.")
	s = amountReplacer.Replace(s)
	if !IsNumeric(s) {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Amount is a money field that accepts a JSON number, a JSON string or
// null. It never fails to decode; malformed content decodes to zero.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if IsEmpty(raw) || raw == "null" {
		a.Decimal = decimal.Zero
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		raw = s
	}

	a.Decimal = ParseAmount(raw)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}
