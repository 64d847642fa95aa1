package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vortex-fintech/go-iban/iban"
)

type countryOutput struct {
	Code   string      `json:"code"`
	Length int         `json:"length"`
	BBAN   string      `json:"bban"`
	Bank   *spanOutput `json:"bank_identifier,omitempty"`
	Branch *spanOutput `json:"branch_identifier,omitempty"`
	Quirks []string    `json:"quirks,omitempty"`
}

type spanOutput struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func newSpanOutput(s iban.Span, ok bool) *spanOutput {
	if !ok {
		return nil
	}
	return &spanOutput{Start: s.Start, End: s.End}
}

func (s *spanOutput) String() string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

func describeCountry(c iban.Country) countryOutput {
	out := countryOutput{
		Code:   c.Code(),
		Length: c.Length(),
		BBAN:   c.Grammar().String(),
		Bank:   newSpanOutput(c.BankRange()),
		Branch: newSpanOutput(c.BranchRange()),
	}
	for _, q := range c.Quirks() {
		out.Quirks = append(out.Quirks, string(q.Field)+": "+q.Note)
	}
	return out
}

func runCountry(args []string, e env) int {
	fs := flag.NewFlagSet("country", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	asJSON := fs.Bool("json", false, "print the entry as JSON")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(e.stderr, "Error: expected exactly one country code")
		return exitUsage
	}

	code := fs.Arg(0)
	c, ok := iban.LookupISO2(code)
	if !ok {
		fmt.Fprintf(e.stderr, "Error: %q is not in the IBAN registry\n", code)
		return exitInvalid
	}

	out := describeCountry(c)
	if *asJSON {
		if err := json.NewEncoder(e.stdout).Encode(out); err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return exitUsage
		}
		return exitSuccess
	}
	printCountry(e.stdout, out)
	return exitSuccess
}

func printCountry(w io.Writer, out countryOutput) {
	fmt.Fprintf(w, "Country: %s\n", out.Code)
	fmt.Fprintf(w, "Length:  %d\n", out.Length)
	fmt.Fprintf(w, "BBAN:    %s\n", out.BBAN)
	fmt.Fprintf(w, "Bank:    %s\n", out.Bank.String())
	fmt.Fprintf(w, "Branch:  %s\n", out.Branch.String())
	if len(out.Quirks) > 0 {
		fmt.Fprintf(w, "Quirks:\n  %s\n", strings.Join(out.Quirks, "\n  "))
	}
}

func runCountries(args []string, e env) int {
	if len(args) != 0 {
		fmt.Fprintln(e.stderr, "Error: countries takes no arguments")
		return exitUsage
	}
	for _, code := range iban.Countries() {
		c, _ := iban.Lookup(code)
		fmt.Fprintf(e.stdout, "%s  %2d  %s\n", code, c.Length(), c.Grammar())
	}
	return exitSuccess
}
