package iban

const checksumModulus = 97

// verifyChecksum applies ISO 7064 MOD 97-10 to a canonical address.
// Check digits "00" and "01" can never be produced by the check digit
// computation, so they are rejected as a format violation before the
// remainder is looked at.
func verifyChecksum(c canonical) error {
	if reservedCheckDigits(c.buf[2], c.buf[3]) {
		return ErrInvalidFormat
	}
	if mod97(c.bytes()) != 1 {
		return ErrInvalidChecksum
	}
	return nil
}

func reservedCheckDigits(d0, d1 byte) bool {
	return d0 == '0' && (d1 == '0' || d1 == '1')
}

// mod97 computes the remainder of the address with its first four bytes
// moved to the end. Letters count as two decimal digits (A=10 .. Z=35).
// The input must hold only uppercase letters and digits and be at least
// four bytes long.
func mod97(s []byte) int {
	r := 0
	for _, b := range s[4:] {
		r = mod97Step(r, b)
	}
	for _, b := range s[:4] {
		r = mod97Step(r, b)
	}
	return r
}

func mod97Step(r int, b byte) int {
	if isDigit(b) {
		return (r*10 + int(b-'0')) % checksumModulus
	}
	return (r*100 + int(b-'A') + 10) % checksumModulus
}
