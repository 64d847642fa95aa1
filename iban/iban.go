// Package iban validates International Bank Account Numbers (ISO 13616).
//
// Validation happens in two stages. ParseBasic normalizes the electronic or
// paper representation and verifies the MOD 97-10 checksum, producing a
// BasicAddress. ValidateCountry checks the BBAN of a BasicAddress against the
// registry grammar of its country, producing an Iban. Parse runs both.
//
// All values are small fixed-size structs: they can be copied and compared
// with == freely, and are safe for concurrent use.
package iban

import "strings"

// BasicAddress is an IBAN that passed the format and checksum checks. Its
// BBAN has not been checked against the country registry.
type BasicAddress struct {
	c canonical
}

// ParseBasic parses s in electronic or paper form. It returns
// ErrInvalidFormat or ErrInvalidChecksum on failure.
func ParseBasic(s string) (BasicAddress, error) {
	c, err := normalize(s)
	if err != nil {
		return BasicAddress{}, err
	}
	if err := verifyChecksum(c); err != nil {
		return BasicAddress{}, err
	}
	return BasicAddress{c: c}, nil
}

// IsZero reports whether b was never successfully parsed.
func (b BasicAddress) IsZero() bool { return b.c.n == 0 }

// Electronic returns the canonical form without whitespace.
func (b BasicAddress) Electronic() string { return b.c.String() }

// String returns the paper form: groups of four separated by single spaces.
func (b BasicAddress) String() string {
	n := int(b.c.n)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n + (n-1)/paperGroupSize)
	for i := 0; i < n; i++ {
		if i != 0 && i%paperGroupSize == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(b.c.buf[i])
	}
	return sb.String()
}

// CountryCode returns the two-letter country code.
func (b BasicAddress) CountryCode() string {
	if b.IsZero() {
		return ""
	}
	return string(b.c.buf[0:2])
}

// CheckDigitsString returns the two check digits as written.
func (b BasicAddress) CheckDigitsString() string {
	if b.IsZero() {
		return ""
	}
	return string(b.c.buf[2:4])
}

// CheckDigits returns the check digits as an integer in [2, 98].
func (b BasicAddress) CheckDigits() int {
	if b.IsZero() {
		return 0
	}
	return int(b.c.buf[2]-'0')*10 + int(b.c.buf[3]-'0')
}

// BBANUnchecked returns everything after the check digits. It is only
// guaranteed to follow the country format when obtained from an Iban.
func (b BasicAddress) BBANUnchecked() string {
	if b.IsZero() {
		return ""
	}
	return string(b.c.buf[4:b.c.n])
}

// Iban is a fully validated IBAN: format, checksum and country BBAN grammar.
type Iban struct {
	basic BasicAddress
}

// ValidateCountry checks the BBAN of b against its country's grammar. On
// failure the returned CountryError wraps ErrUnknownCountry or ErrInvalidBBAN
// and carries b.
func ValidateCountry(b BasicAddress) (Iban, error) {
	grammar, ok := LookupGrammar(b.CountryCode())
	if !ok {
		return Iban{}, CountryError{Base: ErrUnknownCountry, Address: b}
	}
	if !grammar.Match(b.BBANUnchecked()) {
		return Iban{}, CountryError{Base: ErrInvalidBBAN, Address: b}
	}
	return Iban{basic: b}, nil
}

// Parse runs ParseBasic followed by ValidateCountry.
func Parse(s string) (Iban, error) {
	b, err := ParseBasic(s)
	if err != nil {
		return Iban{}, err
	}
	return ValidateCountry(b)
}

// MustParse is like Parse but panics on error. It is meant for literals in
// tests and static configuration.
func MustParse(s string) Iban {
	i, err := Parse(s)
	if err != nil {
		panic("iban: MustParse(" + s + "): " + err.Error())
	}
	return i
}

// IsValid reports whether s is a fully valid IBAN.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Basic returns the underlying basic address.
func (i Iban) Basic() BasicAddress { return i.basic }

func (i Iban) IsZero() bool { return i.basic.IsZero() }

func (i Iban) Electronic() string { return i.basic.Electronic() }

// String returns the paper form.
func (i Iban) String() string { return i.basic.String() }

func (i Iban) CountryCode() string { return i.basic.CountryCode() }

func (i Iban) CheckDigitsString() string { return i.basic.CheckDigitsString() }

func (i Iban) CheckDigits() int { return i.basic.CheckDigits() }

// BBAN returns the country specific part, which is known to follow the
// registry grammar.
func (i Iban) BBAN() string { return i.basic.BBANUnchecked() }

// BankIdentifier returns the bank identifier, if the registry defines one
// for the country.
func (i Iban) BankIdentifier() (string, bool) {
	c, ok := Lookup(i.CountryCode())
	if !ok {
		return "", false
	}
	return i.slice(c.BankRange())
}

// BranchIdentifier returns the branch identifier, if the registry defines
// one for the country.
func (i Iban) BranchIdentifier() (string, bool) {
	c, ok := Lookup(i.CountryCode())
	if !ok {
		return "", false
	}
	return i.slice(c.BranchRange())
}

func (i Iban) slice(s Span, ok bool) (string, bool) {
	bban := i.BBAN()
	if !ok || s.End > len(bban) {
		return "", false
	}
	return bban[s.Start:s.End], true
}
