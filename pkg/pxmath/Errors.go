package pxmath

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrDegenerateBasis = errors.New("degenerate basis")
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Check names the test a basis column failed.
type Check int

const (
	// CheckLength: the column is not unit length.
	CheckLength Check = iota
	// CheckW: the column's fourth component is not zero.
	CheckW
	// CheckZero: the column has no usable length to normalize.
	CheckZero
)

func (c Check) String() string {
	switch c {
	case CheckLength:
		return "non-unit length"
	case CheckW:
		return "nonzero w"
	case CheckZero:
		return "zero length"
	default:
		return fmt.Sprintf("check(%d)", int(c))
	}
}

// AxisError reports which basis column of a matrix was rejected and why.
// It unwraps to ErrInvalidInput or ErrDegenerateBasis.
type AxisError struct {
	Axis  Axis
	Check Check
	// Value is the column length for length and zero checks, the w component
	// for the w check.
	Value float32
	Err   error
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%v: %s axis failed %s check (%g)", e.Err, e.Axis, e.Check, e.Value)
}

func (e *AxisError) Unwrap() error {
	return e.Err
}
