package pxmath

import (
	"strings"

	"github.com/pkg/errors"
)

// Policy decides what Decompose does with basis columns that are not already
// unit length with a zero w component.
type Policy int

const (
	// TruncateRenormalize drops each column's w then normalizes the xyz part.
	TruncateRenormalize Policy = iota
	// Renormalize normalizes each column as a 4-vector and then zeroes w.
	// A stale w shortens the resulting xyz.
	Renormalize
	// Strict rejects any column that is not unit length or has a nonzero w.
	Strict
)

const DefaultPolicy = TruncateRenormalize

// DefaultTolerance bounds |len^2 - 1| for a column to count as unit length
// under Strict.
const DefaultTolerance float32 = 2e-4

// degenerateLength is the shortest column the lenient policies will normalize.
const degenerateLength float32 = 1e-12

func (p Policy) String() string {
	switch p {
	case TruncateRenormalize:
		return "truncate-renormalize"
	case Renormalize:
		return "renormalize"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate-renormalize", "truncate":
		return TruncateRenormalize, nil
	case "renormalize":
		return Renormalize, nil
	case "strict":
		return Strict, nil
	}
	return DefaultPolicy, errors.Errorf("unknown normalization policy '%s'", s)
}

type Options struct {
	Policy    Policy
	Tolerance float32
}

type Option func(*Options)

func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithTolerance overrides DefaultTolerance. Only Strict reads it.
func WithTolerance(tolerance float32) Option {
	return func(o *Options) { o.Tolerance = tolerance }
}

func defaultOptions() Options {
	return Options{
		Policy:    DefaultPolicy,
		Tolerance: DefaultTolerance,
	}
}
