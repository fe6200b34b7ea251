package convert

import (
	"errors"
	"fmt"
)

// ErrInvalidMode indicates a mode outside the recognized set.
// It is a configuration error: it is raised before any conversion runs.
type ErrInvalidMode struct {
	Value string
}

func (e *ErrInvalidMode) Error() string {
	return fmt.Sprintf("validation failed, %s not a valid type, expected: %v", e.Value, Modes())
}

// ErrMalformedValue indicates that a value is not a valid 32-bit integer
// in the base required by the mode.
type ErrMalformedValue struct {
	Mode  Mode   // Mode the value was parsed under
	Value string // Raw input
	Err   error  // Underlying parse error
}

func (e *ErrMalformedValue) Error() string {
	base := "decimal"
	if e.Mode == H2D {
		base = "hexadecimal"
	}
	msg := fmt.Sprintf("%s: cannot parse %q as a %s integer", e.Mode, e.Value, base)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrMalformedValue) Unwrap() error {
	return e.Err
}

// IsConfigError returns true if the error was raised while validating options.
func IsConfigError(err error) bool {
	var modeErr *ErrInvalidMode
	return errors.As(err, &modeErr)
}

// IsParseError returns true if the error was raised while parsing a value.
func IsParseError(err error) bool {
	var parseErr *ErrMalformedValue
	return errors.As(err, &parseErr)
}
