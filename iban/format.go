package iban

const (
	// MaxLength is the ISO 13616 upper bound for an IBAN in electronic form.
	MaxLength = 34
	// MinLength is the shortest accepted electronic form: country code,
	// check digits and at least one BBAN character.
	MinLength = 5

	paperGroupSize = 4
)

// canonical is the electronic form held in a fixed-size buffer so that
// parsing never allocates. The zero value is empty.
type canonical struct {
	buf [MaxLength]byte
	n   uint8
}

func (c *canonical) push(b byte) bool {
	if int(c.n) >= MaxLength {
		return false
	}
	c.buf[c.n] = b
	c.n++
	return true
}

func (c *canonical) bytes() []byte { return c.buf[:c.n] }

func (c canonical) String() string { return string(c.buf[:c.n]) }

// normalize turns either representation into the canonical electronic form.
// The electronic reading is tried first; the paper reading only runs when it
// fails.
func normalize(s string) (canonical, error) {
	if c, ok := parseElectronic(s); ok {
		return c, nil
	}
	if c, ok := parsePaper(s); ok {
		return c, nil
	}
	return canonical{}, ErrInvalidFormat
}

func parseElectronic(s string) (canonical, bool) {
	return scan(s, false)
}

// parsePaper accepts groups of four separated by single spaces. A length
// divisible by five would end in a separator, which is never valid.
func parsePaper(s string) (canonical, bool) {
	if len(s)%(paperGroupSize+1) == 0 {
		return canonical{}, false
	}
	return scan(s, true)
}

// scan walks s byte by byte. With paper set, every fifth byte must be a
// space and is dropped. Country code and check digits must already be
// uppercase letters and digits; the BBAN is uppercased.
func scan(s string, paper bool) (canonical, bool) {
	var c canonical
	for i := 0; i < len(s); i++ {
		b := s[i]
		if paper && i%(paperGroupSize+1) == paperGroupSize {
			if b != ' ' {
				return canonical{}, false
			}
			continue
		}

		switch pos := int(c.n); {
		case pos < 2:
			if !isUpper(b) {
				return canonical{}, false
			}
		case pos < 4:
			if !isDigit(b) {
				return canonical{}, false
			}
		default:
			if !isUpper(b) && !isLower(b) && !isDigit(b) {
				return canonical{}, false
			}
			b = toUpperASCII(b)
		}

		if !c.push(b) {
			return canonical{}, false
		}
	}
	if int(c.n) < MinLength {
		return canonical{}, false
	}
	return c, true
}
