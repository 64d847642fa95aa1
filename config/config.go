// Package config loads ibancheck settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/vortex-fintech/go-iban/batch"
	ierrors "github.com/vortex-fintech/go-iban/errors"
	"github.com/vortex-fintech/go-iban/validator"
)

// Environment variables read by FromEnv.
const (
	EnvName        = "IBANCHECK_ENV"
	EnvConcurrency = "IBANCHECK_CONCURRENCY"
	EnvMetricsAddr = "IBANCHECK_METRICS_ADDR"
	EnvMaskOutput  = "IBANCHECK_MASK_OUTPUT"
)

const defaultEnv = "production"

type Config struct {
	// Env selects the logger profile and whether logs show account numbers.
	Env         string `validate:"required,oneof=development debug production"`
	Concurrency int    `validate:"min=1,max=1024"`
	// MetricsAddr, when set, serves /metrics and /health while the command runs.
	MetricsAddr string `validate:"omitempty,hostname_port"`
	// MaskOutput masks account numbers in command output too, not only in logs.
	MaskOutput bool
}

// ErrInvalid is matched by every error FromEnv returns.
var ErrInvalid = errors.New("config: invalid")

// ValidationError lists the offending settings as field -> reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%v: %s", ErrInvalid, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Response renders the error for transports.
func (e *ValidationError) Response() ierrors.ErrorResponse {
	return ierrors.ValidationFields(e.Fields)
}

func Default() Config {
	return Config{Env: defaultEnv, Concurrency: batch.DefaultConcurrency}
}

func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	bad := map[string]string{}

	if v, ok := lookupTrimmed(lookup, EnvName); ok {
		cfg.Env = strings.ToLower(v)
	}
	if v, ok := lookupTrimmed(lookup, EnvConcurrency); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			bad["Concurrency"] = "only_numbers_allowed"
		} else {
			cfg.Concurrency = n
		}
	}
	if v, ok := lookupTrimmed(lookup, EnvMetricsAddr); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := lookupTrimmed(lookup, EnvMaskOutput); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			bad["MaskOutput"] = "invalid_boolean"
		} else {
			cfg.MaskOutput = b
		}
	}

	for field, reason := range validator.Validate(cfg) {
		if _, seen := bad[field]; !seen {
			bad[field] = reason
		}
	}
	if len(bad) > 0 {
		return Config{}, &ValidationError{Fields: bad}
	}
	return cfg, nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
