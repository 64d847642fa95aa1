// Package logutil prepares account numbers for log output.
package logutil

import (
	"regexp"
	"strings"

	"github.com/vortex-fintech/go-iban/piiutil"
)

var defaultIBANKeyRe = regexp.MustCompile(`(?i)(iban|account|input)`)

// Verbose reports whether env shows account numbers in the clear.
func Verbose(env string) bool {
	e := strings.ToLower(strings.TrimSpace(env))
	return e == "development" || e == "debug"
}

// IBAN returns value as-is in development and debug, masked otherwise.
func IBAN(env, value string) string {
	if Verbose(env) {
		return value
	}
	return piiutil.MaskIBAN(value)
}

// RedactIBANFields masks the values of IBAN-bearing keys. Keys matching
// iban, account or input (case-insensitive) are masked, plus any listed in
// extraKeys. The input map is never modified.
func RedactIBANFields(fields map[string]string, env string, extraKeys ...string) map[string]string {
	if fields == nil {
		return nil
	}
	if Verbose(env) {
		return fields
	}

	extra := make(map[string]struct{}, len(extraKeys))
	for _, k := range extraKeys {
		extra[strings.ToLower(k)] = struct{}{}
	}

	out := make(map[string]string, len(fields))
	for k, v := range fields {
		lk := strings.ToLower(k)
		if _, ok := extra[lk]; ok || defaultIBANKeyRe.MatchString(lk) {
			out[k] = piiutil.MaskIBAN(v)
			continue
		}
		out[k] = v
	}
	return out
}
