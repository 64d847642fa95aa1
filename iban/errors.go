package iban

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat means the input is not an IBAN in electronic or paper
	// form: wrong characters, wrong length, misplaced spaces or reserved
	// check digits.
	ErrInvalidFormat = errors.New("iban: the string doesn't conform to the IBAN format")
	// ErrInvalidChecksum means the input is well formed but fails MOD 97-10.
	ErrInvalidChecksum = errors.New("iban: invalid checksum")
	// ErrUnknownCountry means the country code is not in the registry.
	ErrUnknownCountry = errors.New("iban: country code not recognized")
	// ErrInvalidBBAN means the BBAN does not follow the country's grammar.
	ErrInvalidBBAN = errors.New("iban: BBAN doesn't match the country format")
)

// CountryError is returned when an address passes the basic checks but fails
// country validation. Address stays usable for country-agnostic accessors.
type CountryError struct {
	Base    error
	Address BasicAddress
}

func (e CountryError) Error() string {
	if e.Base == nil {
		return fmt.Sprintf("iban: country validation failed for %s", e.Address.CountryCode())
	}
	return fmt.Sprintf("%v: %s", e.Base, e.Address.CountryCode())
}

// Unwrap supports errors.Is / errors.As
func (e CountryError) Unwrap() error {
	return e.Base
}

// BasicFrom extracts the basic address carried by a country validation error.
func BasicFrom(err error) (BasicAddress, bool) {
	var ce CountryError
	if !errors.As(err, &ce) {
		return BasicAddress{}, false
	}
	return ce.Address, true
}
