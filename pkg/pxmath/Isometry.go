package pxmath

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Isometry is a transform split into a pure rotation and a pure translation,
// such that Translation * Rotation gives back the rigid transform.
type Isometry struct {
	Translation mgl32.Mat4
	Rotation    mgl32.Mat4
}

// FromMat4 decomposes m with DefaultPolicy.
func FromMat4(m mgl32.Mat4) (Isometry, error) {
	return Decompose(m)
}

// Decompose extracts the rotation basis (columns 0-2) and the translation
// (column 3) of m. What happens to basis columns that are not unit length
// with w == 0 depends on the Policy; see WithPolicy.
//
// Errors are *AxisError values wrapping ErrInvalidInput (Strict) or
// ErrDegenerateBasis (lenient policies, zero or non-finite column).
func Decompose(m mgl32.Mat4, opts ...Option) (Isometry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var basis [3]mgl32.Vec4
	var err error
	switch o.Policy {
	case Strict:
		basis, err = strictBasis(m, o.Tolerance)
	case Renormalize:
		basis, err = renormalizedBasis(m)
	case TruncateRenormalize:
		basis, err = truncatedBasis(m)
	default:
		return Isometry{}, errors.Wrapf(ErrInvalidInput, "unknown normalization policy %d", int(o.Policy))
	}
	if err != nil {
		return Isometry{}, err
	}

	var iso Isometry
	iso.Rotation = mgl32.Mat4FromCols(basis[0], basis[1], basis[2], mgl32.Vec4{0, 0, 0, 1})
	t := m.Col(3).Vec3()
	iso.Translation = mgl32.Translate3D(t.X(), t.Y(), t.Z())
	return iso, nil
}

// Mat4 recombines the parts as Translation * Rotation.
func (iso Isometry) Mat4() mgl32.Mat4 {
	return iso.Translation.Mul4(iso.Rotation)
}

func (iso Isometry) String() string {
	return fmt.Sprintf("translation: %v rotation: %v", iso.Translation.Col(3).Vec3(), iso.Rotation)
}

// All lengths are checked before any w so a scaled column is reported as a
// length failure even when its w is also off.
func strictBasis(m mgl32.Mat4, tolerance float32) (basis [3]mgl32.Vec4, err error) {
	for i := 0; i < 3; i++ {
		l := m.Col(i).Vec3().Len()
		if !(math32.Abs(l*l-1) <= tolerance) {
			return basis, &AxisError{Axis: Axis(i), Check: CheckLength, Value: l, Err: ErrInvalidInput}
		}
	}
	for i := 0; i < 3; i++ {
		col := m.Col(i)
		if col.W() != 0 {
			return basis, &AxisError{Axis: Axis(i), Check: CheckW, Value: col.W(), Err: ErrInvalidInput}
		}
		basis[i] = col
	}
	return basis, nil
}

func renormalizedBasis(m mgl32.Mat4) (basis [3]mgl32.Vec4, err error) {
	for i := 0; i < 3; i++ {
		col := m.Col(i)
		l := col.Len()
		if !usableLength(l) {
			return basis, &AxisError{Axis: Axis(i), Check: CheckZero, Value: l, Err: ErrDegenerateBasis}
		}
		col = col.Mul(1 / l)
		col[3] = 0
		// a column that was all w has nothing left once w is dropped
		if n := col.Vec3().Len(); !usableLength(n) {
			return basis, &AxisError{Axis: Axis(i), Check: CheckZero, Value: n, Err: ErrDegenerateBasis}
		}
		basis[i] = col
	}
	return basis, nil
}

func truncatedBasis(m mgl32.Mat4) (basis [3]mgl32.Vec4, err error) {
	for i := 0; i < 3; i++ {
		v := m.Col(i).Vec3()
		l := v.Len()
		if !usableLength(l) {
			return basis, &AxisError{Axis: Axis(i), Check: CheckZero, Value: l, Err: ErrDegenerateBasis}
		}
		basis[i] = v.Mul(1 / l).Vec4(0)
	}
	return basis, nil
}

// usableLength is false for zero, NaN and infinite lengths.
func usableLength(l float32) bool {
	return l > degenerateLength && !math32.IsInf(l, 0)
}
