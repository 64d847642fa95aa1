// Package geo normalizes user-typed country codes.
package geo

import "strings"

// NormalizeISO2 trims and uppercases an ASCII two-letter country code.
//
// Only the shape is checked; whether an IBAN registry entry exists for the
// code is up to the caller.
func NormalizeISO2(code string) (string, bool) {
	c := strings.TrimSpace(code)
	if len(c) != 2 {
		return "", false
	}

	var out [2]byte
	for i := 0; i < 2; i++ {
		b := c[i]
		switch {
		case b >= 'A' && b <= 'Z':
			out[i] = b
		case b >= 'a' && b <= 'z':
			out[i] = b - ('a' - 'A')
		default:
			return "", false
		}
	}
	return string(out[:]), true
}

// IsValidISO2 reports whether code normalizes to a two-letter code.
func IsValidISO2(code string) bool {
	_, ok := NormalizeISO2(code)
	return ok
}
