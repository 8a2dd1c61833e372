package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	minCardDigits = 12
	maxCardDigits = 19
)

// NormalizeCardNumber drops the spaces and dashes people type between digit groups.
func NormalizeCardNumber(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

// IsCardNumber reports whether s is a plausible payment card number that
// passes the Luhn check.
func IsCardNumber(s string) bool {
	s = NormalizeCardNumber(s)
	if len(s) < minCardDigits || len(s) > maxCardDigits {
		return false
	}
	return goluhn.Validate(s) == nil
}

// MaskCardNumber keeps the last four digits only.
func MaskCardNumber(s string) string {
	s = NormalizeCardNumber(s)
	if len(s) <= 4 {
		return s
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
