// Package convert implements conversion of 32-bit integers between their
// hexadecimal and decimal text forms.
package convert

// Mode selects the direction of a conversion.
type Mode string

const (
	// H2D converts hexadecimal text to decimal text.
	H2D Mode = "H2D"
	// D2H converts decimal text to lowercase hexadecimal text.
	D2H Mode = "D2H"
)

// DefaultMode is used when no mode is given.
const DefaultMode = H2D

// Modes returns the recognized modes in declaration order.
func Modes() []Mode {
	return []Mode{H2D, D2H}
}

// String returns the mode literal.
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	return m == H2D || m == D2H
}

// Description returns a one-line, human-readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case H2D:
		return "Hexadecimal to Decimal Converter"
	case D2H:
		return "Decimal to Hexadecimal Converter"
	default:
		return "unknown"
	}
}

// ParseMode parses s into a Mode. Matching is exact and case-sensitive.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", &ErrInvalidMode{Value: s}
	}
	return m, nil
}
