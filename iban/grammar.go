package iban

import (
	"strconv"
	"strings"
)

// Segment is a run of Count characters of the same class.
type Segment struct {
	Count int
	Class CharClass
}

// Grammar describes the shape of a country's BBAN as a fixed-width
// concatenation of homogeneous segments. Grammars come from the registry and
// are never modified; the zero value matches nothing but the empty string.
type Grammar struct {
	segments []Segment
	length   int
}

func newGrammar(segments ...Segment) Grammar {
	n := 0
	for _, s := range segments {
		n += s.Count
	}
	return Grammar{segments: segments, length: n}
}

// Len returns the BBAN length the grammar accepts.
func (g Grammar) Len() int { return g.length }

// Segments returns a copy of the grammar's segments.
func (g Grammar) Segments() []Segment {
	return append([]Segment(nil), g.segments...)
}

// Match reports whether bban has exactly the grammar's length and every
// position satisfies the class of the segment covering it.
func (g Grammar) Match(bban string) bool {
	if len(bban) != g.length {
		return false
	}
	pos := 0
	for _, seg := range g.segments {
		for end := pos + seg.Count; pos < end; pos++ {
			if !seg.Class.Matches(bban[pos]) {
				return false
			}
		}
	}
	return true
}

// String renders the grammar in registry notation, e.g. "8!n10!n".
func (g Grammar) String() string {
	var b strings.Builder
	for _, seg := range g.segments {
		b.WriteString(strconv.Itoa(seg.Count))
		b.WriteByte('!')
		b.WriteString(seg.Class.String())
	}
	return b.String()
}
