package errors

import (
	"errors"

	"github.com/vortex-fintech/go-iban/iban"
)

// Reasons reported for IBAN validation failures.
const (
	ReasonInvalidFormat   = "invalid_iban_format"
	ReasonInvalidChecksum = "invalid_iban_checksum"
	ReasonUnknownCountry  = "unknown_iban_country"
	ReasonInvalidBBAN     = "invalid_iban_bban"
)

// IBANReason maps an error returned by the iban package to its reason code.
func IBANReason(err error) (string, bool) {
	switch {
	case errors.Is(err, iban.ErrInvalidFormat):
		return ReasonInvalidFormat, true
	case errors.Is(err, iban.ErrInvalidChecksum):
		return ReasonInvalidChecksum, true
	case errors.Is(err, iban.ErrUnknownCountry):
		return ReasonUnknownCountry, true
	case errors.Is(err, iban.ErrInvalidBBAN):
		return ReasonInvalidBBAN, true
	default:
		return "", false
	}
}

// FromIBAN converts an iban validation error into InvalidArgument with a
// field violation. When the error still carries a basic address, its country
// code is added to the details; the account number itself never is.
func FromIBAN(field string, err error) ErrorResponse {
	reason, ok := IBANReason(err)
	if !ok {
		return Internal().WithReason("unexpected_error")
	}

	resp := InvalidArgument().WithReason(reason).WithMessage("Invalid IBAN")
	if field != "" {
		resp = resp.WithDetail(field, reason).WithViolations([]FieldViolation{{
			Field:       field,
			Reason:      reason,
			Description: describeIBAN(reason),
		}})
	}
	if basic, ok := iban.BasicFrom(err); ok {
		resp = resp.WithDetail("country_code", basic.CountryCode())
	}
	return resp
}

func describeIBAN(reason string) string {
	switch reason {
	case ReasonInvalidFormat:
		return "the value is not an IBAN in electronic or paper format"
	case ReasonInvalidChecksum:
		return "the IBAN check digits do not match"
	case ReasonUnknownCountry:
		return "the IBAN country is not supported"
	case ReasonInvalidBBAN:
		return "the account number does not match the country format"
	default:
		return ""
	}
}
