// Package phone normalizes customer phone numbers entered on the booking forms.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when a number is written without a country code (e.g. "0532 123 45 67").
const DefaultRegion = "TR"

// Normalize parses raw and returns it in E.164 form.
// The second return value is false when raw is not a valid phone number.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// Valid reports whether raw can be normalized.
func Valid(raw string) bool {
	_, ok := Normalize(raw)
	return ok
}
