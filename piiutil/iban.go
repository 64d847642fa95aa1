// Package piiutil masks account numbers before they reach logs.
package piiutil

import (
	"strings"

	"github.com/vortex-fintech/go-iban/iban"
)

const keepTrailing = 4

// MaskIBAN hides an account number for display in logs.
//
// Values that pass format and checksum are rendered in paper form keeping the
// country code and the last four characters. Anything else keeps only its
// last four letters or digits, so a malformed paste never leaks in full.
//
//	"DE44500105175407324931"      -> "DE** **** **** **** **49 31"
//	"DE4450010234607324931"       -> "*****************4931"
//	"ZZ07 2739 1263 1298 461"     -> "ZZ** **** **** ***8 461"
//	"abc"                         -> "abc"
func MaskIBAN(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	basic, err := iban.ParseBasic(s)
	if err != nil {
		if len(s) <= keepTrailing {
			return s
		}
		return maskLettersAndDigitsKeepLast([]rune(s), keepTrailing)
	}
	return maskPaper(basic.String())
}

func maskPaper(paper string) string {
	b := []byte(paper)
	kept := 0
	for i := len(b) - 1; i >= 2; i-- {
		if b[i] == ' ' {
			continue
		}
		if kept < keepTrailing {
			kept++
			continue
		}
		b[i] = '*'
	}
	return string(b)
}
