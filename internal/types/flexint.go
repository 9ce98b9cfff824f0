package types

import (
	"encoding/json"
	"strconv"
	"unicode"
)

// FlexInt is an integer that survives models returning numbers as
// formatted strings. Unmarshalling attempts a strict integer parse first
// and only then falls back to the digit-strip coercion rule: every
// non-digit rune is dropped and the remainder parsed, so "₹9,50,000"
// becomes 950000. A value with no digits at all becomes 0.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	// Strict pass: a plain JSON number.
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	// A JSON float like 85.0 still counts as a number.
	var fl float64
	if err := json.Unmarshal(data, &fl); err == nil {
		*f = FlexInt(int(fl))
		return nil
	}

	// Coercion pass: a string containing digits somewhere.
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Not a number and not a string. Treat as missing rather than
		// failing the whole payload; the schema pass reports shape errors.
		*f = 0
		return nil
	}

	*f = FlexInt(CoerceInt(s))
	return nil
}

// MarshalJSON implements json.Marshaler. FlexInt always serializes as a
// plain integer, which is what makes normalization idempotent.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}

// Int returns the value as a plain int.
func (f FlexInt) Int() int {
	return int(f)
}

// CoerceInt applies the defined string-to-number coercion rule: strip
// every non-digit character and parse what remains. Returns 0 when no
// digits remain.
func CoerceInt(s string) int {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
