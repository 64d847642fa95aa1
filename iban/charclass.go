package iban

// CharClass is the character class of a single BBAN position.
type CharClass uint8

const (
	// Alpha matches an ASCII uppercase letter ("a" in the registry notation).
	Alpha CharClass = iota + 1
	// Digit matches an ASCII digit ("n").
	Digit
	// AlphaNum matches an ASCII uppercase letter or digit ("c").
	AlphaNum
)

// Matches reports whether b belongs to the class.
func (c CharClass) Matches(b byte) bool {
	switch c {
	case Alpha:
		return isUpper(b)
	case Digit:
		return isDigit(b)
	case AlphaNum:
		return isUpper(b) || isDigit(b)
	default:
		return false
	}
}

// String returns the registry notation for the class.
func (c CharClass) String() string {
	switch c {
	case Alpha:
		return "a"
	case Digit:
		return "n"
	case AlphaNum:
		return "c"
	default:
		return "?"
	}
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func toUpperASCII(b byte) byte {
	if isLower(b) {
		return b - ('a' - 'A')
	}
	return b
}
