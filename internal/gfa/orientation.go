package gfa

import "fmt"

// Orientation is the strand of a segment reference
type Orientation uint8

const (
	// Forward is the "+" strand
	Forward Orientation = iota

	// Backward is the "-" strand
	Backward
)

// DefaultOrientation is used when records are built in code without an explicit strand.
// It is never substituted for a missing orientation while parsing.
const DefaultOrientation = Forward

// ParseOrientation accepts exactly "+" or "-"
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("failed to parse orientation %q (was not + or -): %w", s, ErrInvalidOrientation)
	}
}

// IsReverse is true only for Backward
func (o Orientation) IsReverse() bool {
	return o == Backward
}

// Flip returns the opposite strand
func (o Orientation) Flip() Orientation {
	if o == Backward {
		return Forward
	}
	return Backward
}

func (o Orientation) String() string {
	if o == Backward {
		return "-"
	}
	return "+"
}
