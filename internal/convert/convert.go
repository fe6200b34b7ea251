package convert

import "strconv"

// bitSize is the width of the native integer values are parsed into.
const bitSize = 32

// Convert converts value according to mode.
// An unrecognized mode converts nothing and returns an empty string.
func Convert(mode Mode, value string) (string, error) {
	switch mode {
	case H2D:
		return HexToDecimal(value)
	case D2H:
		return DecimalToHex(value)
	default:
		return "", nil
	}
}

// HexToDecimal parses s as a signed base-16 integer and returns its base-10 form.
// Digits may be upper or lower case; a leading sign is accepted, a 0x prefix is not.
func HexToDecimal(s string) (string, error) {
	v, err := strconv.ParseInt(s, 16, bitSize)
	if err != nil {
		return "", &ErrMalformedValue{Mode: H2D, Value: s, Err: err}
	}
	return strconv.FormatInt(v, 10), nil
}

// DecimalToHex parses s as a signed base-10 integer and returns its lowercase
// base-16 form without prefix. Negative values are rendered in two's complement.
func DecimalToHex(s string) (string, error) {
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return "", &ErrMalformedValue{Mode: D2H, Value: s, Err: err}
	}
	return strconv.FormatUint(uint64(uint32(v)), 16), nil
}
