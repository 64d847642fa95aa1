package iban

import (
	"sort"

	"github.com/vortex-fintech/go-iban/geo"
)

// Span is a half-open byte range [Start, End) inside a BBAN.
type Span struct {
	Start int
	End   int
}

func (s Span) defined() bool { return s.End > s.Start }

// Country is a registry entry for one IBAN country code.
type Country struct {
	code    string
	grammar Grammar
	bank    Span
	branch  Span
	quirks  []Quirk
}

// Code returns the two-letter country code.
func (c Country) Code() string { return c.code }

// Grammar returns the BBAN grammar for the country.
func (c Country) Grammar() Grammar { return c.grammar }

// Length returns the full IBAN length for the country.
func (c Country) Length() int { return 4 + c.grammar.Len() }

// BankRange returns the position of the bank identifier within the BBAN.
func (c Country) BankRange() (Span, bool) { return c.bank, c.bank.defined() }

// BranchRange returns the position of the branch identifier within the BBAN.
func (c Country) BranchRange() (Span, bool) { return c.branch, c.branch.defined() }

// Quirks returns the known registry inconsistencies for the country.
func (c Country) Quirks() []Quirk { return append([]Quirk(nil), c.quirks...) }

// Lookup returns the registry entry for an exact, uppercase country code.
func Lookup(code string) (Country, bool) {
	c, ok := registry[code]
	return c, ok
}

// LookupGrammar returns the BBAN grammar for code. A false result means the
// country is not in the registry, not that the code is malformed.
func LookupGrammar(code string) (Grammar, bool) {
	c, ok := registry[code]
	if !ok {
		return Grammar{}, false
	}
	return c.grammar, true
}

// LookupISO2 is Lookup for user-typed codes: surrounding whitespace and case
// are normalized first.
func LookupISO2(code string) (Country, bool) {
	norm, ok := geo.NormalizeISO2(code)
	if !ok {
		return Country{}, false
	}
	return Lookup(norm)
}

// Countries returns all registry country codes in ascending order.
func Countries() []string {
	return append([]string(nil), registryCodes...)
}

var (
	registry      map[string]Country
	registryCodes []string
)

func init() {
	registry = make(map[string]Country, len(countryTable))
	registryCodes = make([]string, 0, len(countryTable))
	for _, e := range countryTable {
		registry[e.code] = Country{
			code:    e.code,
			grammar: newGrammar(e.grammar...),
			bank:    e.bank,
			branch:  e.branch,
			quirks:  quirksFor(e.code),
		}
		registryCodes = append(registryCodes, e.code)
	}
	sort.Strings(registryCodes)
}

func quirksFor(code string) []Quirk {
	var out []Quirk
	for _, q := range registryQuirks {
		if q.Country == code {
			out = append(out, q)
		}
	}
	return out
}
