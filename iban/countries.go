package iban

// Country table derived from the SWIFT IBAN registry. Identifier spans are
// zero-based, half-open offsets into the BBAN.
var countryTable = []struct {
	code    string
	grammar []Segment
	bank    Span
	branch  Span
}{
	{"AD", []Segment{digit(4), digit(4), alnum(12)}, span(0, 4), span(4, 8)},
	{"AE", []Segment{digit(3), digit(16)}, span(0, 3), noSpan},
	{"AL", []Segment{digit(8), alnum(16)}, span(0, 8), span(3, 7)},
	{"AT", []Segment{digit(5), digit(11)}, span(0, 5), noSpan},
	{"AZ", []Segment{alpha(4), alnum(20)}, span(0, 4), noSpan},
	{"BA", []Segment{digit(3), digit(3), digit(8), digit(2)}, span(0, 3), span(3, 6)},
	{"BE", []Segment{digit(3), digit(7), digit(2)}, span(0, 3), noSpan},
	{"BG", []Segment{alpha(4), digit(4), digit(2), alnum(8)}, span(0, 4), span(4, 8)},
	{"BH", []Segment{alpha(4), alnum(14)}, span(0, 4), noSpan},
	{"BI", []Segment{digit(5), digit(5), digit(11), digit(2)}, span(0, 5), span(5, 10)},
	{"BR", []Segment{digit(8), digit(5), digit(10), alpha(1), alnum(1)}, span(0, 8), span(8, 13)},
	{"BY", []Segment{alnum(4), digit(4), alnum(16)}, span(0, 4), noSpan},
	{"CH", []Segment{digit(5), alnum(12)}, span(0, 5), noSpan},
	{"CR", []Segment{digit(4), digit(14)}, span(0, 4), noSpan},
	{"CY", []Segment{digit(3), digit(5), alnum(16)}, span(0, 3), span(3, 8)},
	{"CZ", []Segment{digit(4), digit(6), digit(10)}, span(0, 4), noSpan},
	{"DE", []Segment{digit(8), digit(10)}, span(0, 8), noSpan},
	{"DJ", []Segment{digit(5), digit(5), digit(11), digit(2)}, span(0, 5), span(5, 10)},
	{"DK", []Segment{digit(4), digit(9), digit(1)}, span(0, 4), noSpan},
	{"DO", []Segment{alnum(4), digit(20)}, span(0, 4), noSpan},
	{"EE", []Segment{digit(2), digit(2), digit(11), digit(1)}, span(0, 2), noSpan},
	{"EG", []Segment{digit(4), digit(4), digit(17)}, span(0, 4), span(4, 8)},
	{"ES", []Segment{digit(4), digit(4), digit(1), digit(1), digit(10)}, span(0, 4), span(4, 8)},
	{"FI", []Segment{digit(3), digit(11)}, span(0, 3), noSpan},
	{"FK", []Segment{alpha(2), digit(12)}, span(0, 2), noSpan},
	{"FO", []Segment{digit(4), digit(9), digit(1)}, span(0, 4), noSpan},
	{"FR", []Segment{digit(5), digit(5), alnum(11), digit(2)}, span(0, 5), noSpan},
	{"GB", []Segment{alpha(4), digit(6), digit(8)}, span(0, 4), span(4, 10)},
	{"GE", []Segment{alpha(2), digit(16)}, span(0, 2), noSpan},
	{"GI", []Segment{alpha(4), alnum(15)}, span(0, 4), noSpan},
	{"GL", []Segment{digit(4), digit(9), digit(1)}, span(0, 4), noSpan},
	{"GR", []Segment{digit(3), digit(4), alnum(16)}, span(0, 3), span(3, 7)},
	{"GT", []Segment{alnum(4), alnum(20)}, span(0, 4), noSpan},
	{"HR", []Segment{digit(7), digit(10)}, span(0, 7), noSpan},
	{"HU", []Segment{digit(3), digit(4), digit(1), digit(15), digit(1)}, span(0, 3), span(3, 7)},
	{"IE", []Segment{alpha(4), digit(6), digit(8)}, span(0, 4), span(4, 10)},
	{"IL", []Segment{digit(3), digit(3), digit(13)}, span(0, 3), span(3, 6)},
	{"IQ", []Segment{alpha(4), digit(3), digit(12)}, span(0, 4), span(4, 7)},
	{"IS", []Segment{digit(4), digit(2), digit(6), digit(10)}, span(0, 2), span(2, 4)},
	{"IT", []Segment{alpha(1), digit(5), digit(5), alnum(12)}, span(1, 6), span(6, 11)},
	{"JO", []Segment{alpha(4), digit(4), alnum(18)}, span(0, 4), span(4, 8)},
	{"KW", []Segment{alpha(4), alnum(22)}, span(0, 4), noSpan},
	{"KZ", []Segment{digit(3), alnum(13)}, span(0, 3), noSpan},
	{"LB", []Segment{digit(4), alnum(20)}, span(0, 4), noSpan},
	{"LC", []Segment{alpha(4), alnum(24)}, span(0, 4), noSpan},
	{"LI", []Segment{digit(5), alnum(12)}, span(0, 5), noSpan},
	{"LT", []Segment{digit(5), digit(11)}, span(0, 5), noSpan},
	{"LU", []Segment{digit(3), alnum(13)}, span(0, 3), noSpan},
	{"LV", []Segment{alpha(4), alnum(13)}, span(0, 4), noSpan},
	{"LY", []Segment{digit(3), digit(3), digit(15)}, span(0, 3), span(3, 6)},
	{"MC", []Segment{digit(5), digit(5), alnum(11), digit(2)}, span(0, 5), span(5, 10)},
	{"MD", []Segment{alnum(2), alnum(18)}, span(0, 2), noSpan},
	{"ME", []Segment{digit(3), digit(13), digit(2)}, span(0, 3), noSpan},
	{"MK", []Segment{digit(3), alnum(10), digit(2)}, span(0, 3), noSpan},
	{"MN", []Segment{digit(4), digit(12)}, span(0, 4), noSpan},
	{"MR", []Segment{digit(5), digit(5), digit(11), digit(2)}, span(0, 5), span(5, 10)},
	{"MT", []Segment{alpha(4), digit(5), alnum(18)}, span(0, 4), span(4, 9)},
	{"MU", []Segment{alpha(4), digit(2), digit(2), digit(12), digit(3), alpha(3)}, span(0, 6), span(6, 8)},
	{"NI", []Segment{alpha(4), digit(20)}, span(0, 4), noSpan},
	{"NL", []Segment{alpha(4), digit(10)}, span(0, 4), noSpan},
	{"NO", []Segment{digit(4), digit(6), digit(1)}, span(0, 4), noSpan},
	{"OM", []Segment{digit(3), alnum(16)}, span(0, 3), noSpan},
	{"PL", []Segment{digit(8), digit(16)}, noSpan, span(0, 8)},
	{"PS", []Segment{alpha(4), alnum(21)}, span(0, 4), noSpan},
	{"PT", []Segment{digit(4), digit(4), digit(11), digit(2)}, span(0, 4), span(4, 8)},
	{"QA", []Segment{alpha(4), alnum(21)}, span(0, 4), noSpan},
	{"RO", []Segment{alpha(4), alnum(16)}, span(0, 4), noSpan},
	{"RS", []Segment{digit(3), digit(13), digit(2)}, span(0, 3), noSpan},
	{"RU", []Segment{digit(9), digit(5), alnum(15)}, span(0, 9), span(9, 14)},
	{"SA", []Segment{digit(2), alnum(18)}, span(0, 2), noSpan},
	{"SC", []Segment{alpha(4), digit(2), digit(2), digit(16), alpha(3)}, span(0, 6), span(6, 8)},
	{"SD", []Segment{digit(2), digit(12)}, span(0, 2), noSpan},
	{"SE", []Segment{digit(3), digit(16), digit(1)}, span(0, 3), noSpan},
	{"SI", []Segment{digit(5), digit(8), digit(2)}, span(0, 5), noSpan},
	{"SK", []Segment{digit(4), digit(6), digit(10)}, span(0, 4), noSpan},
	{"SM", []Segment{alpha(1), digit(5), digit(5), alnum(12)}, span(1, 6), span(6, 11)},
	{"SO", []Segment{digit(4), digit(3), digit(12)}, span(0, 4), span(4, 7)},
	{"ST", []Segment{digit(4), digit(4), digit(11), digit(2)}, span(0, 4), span(4, 8)},
	{"SV", []Segment{alpha(4), digit(20)}, span(0, 4), noSpan},
	{"TL", []Segment{digit(3), digit(14), digit(2)}, span(0, 3), noSpan},
	{"TN", []Segment{digit(2), digit(3), digit(13), digit(2)}, span(0, 2), span(2, 5)},
	{"TR", []Segment{digit(5), digit(1), alnum(16)}, span(0, 5), noSpan},
	{"UA", []Segment{digit(6), alnum(19)}, span(0, 6), noSpan},
	{"VA", []Segment{digit(3), digit(15)}, span(0, 3), noSpan},
	{"VG", []Segment{alpha(4), digit(16)}, span(0, 4), noSpan},
	{"XK", []Segment{digit(4), digit(10), digit(2)}, span(0, 2), span(2, 4)},
	{"YE", []Segment{alpha(4), digit(4), alnum(18)}, span(0, 4), span(4, 8)},
}

var noSpan = Span{}

func span(start, end int) Span { return Span{Start: start, End: end} }

func alpha(n int) Segment { return Segment{Count: n, Class: Alpha} }
func digit(n int) Segment { return Segment{Count: n, Class: Digit} }
func alnum(n int) Segment { return Segment{Count: n, Class: AlphaNum} }
