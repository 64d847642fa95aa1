package iban

// QuirkField names the part of a registry entry a Quirk concerns.
type QuirkField string

const (
	QuirkBankIdentifier   QuirkField = "bank_identifier"
	QuirkBranchIdentifier QuirkField = "branch_identifier"
)

// Quirk records a known inconsistency in the published registry and how the
// table above resolves it. Quirks are informational; matching never consults
// them.
type Quirk struct {
	Country string
	Field   QuirkField
	Note    string
}

var registryQuirks = []Quirk{
	{
		Country: "AL",
		Field:   QuirkBankIdentifier,
		Note:    "registry range 1-3 disagrees with the 8 character identifier length; the length is used",
	},
	{
		Country: "AL",
		Field:   QuirkBranchIdentifier,
		Note:    "registry range is one character longer than the example \"1100\"; the example length is used",
	},
	{
		Country: "JO",
		Field:   QuirkBankIdentifier,
		Note:    "registry range points at the branch; the bank identifier is taken from positions 1-4",
	},
	{
		Country: "JO",
		Field:   QuirkBranchIdentifier,
		Note:    "registry provides no branch identifier example",
	},
	{
		Country: "MK",
		Field:   QuirkBankIdentifier,
		Note:    "bank identifier example does not appear in the example BBAN; only its length is consistent",
	},
	{
		Country: "SE",
		Field:   QuirkBankIdentifier,
		Note:    "bank identifier example does not appear in the example BBAN; only its length is consistent",
	},
	{
		Country: "ST",
		Field:   QuirkBankIdentifier,
		Note:    "bank identifier example matches the PDF registry but not the text registry BBAN",
	},
}

// Quirks returns every known registry inconsistency, ordered by country.
func Quirks() []Quirk {
	return append([]Quirk(nil), registryQuirks...)
}
