package helpers

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func WrapFloat32(val, min, length float32) float32 {
	for val >= length {
		val -= length
	}
	for val < min {
		val += length
	}
	return val
}

func WrapAngle(val float32) float32 {
	return WrapFloat32(val, 0, 360)
}

// EulerDegToMat4 composes Ry * Rx * Rz from angles in degrees.
func EulerDegToMat4(x, y, z float32) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(WrapAngle(x)))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(WrapAngle(y)))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(WrapAngle(z)))
	return ry.Mul4(rx).Mul4(rz)
}

// PoseToMat4 builds T(translation) * Ry * Rx * Rz.
func PoseToMat4(translation, euler mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	return t.Mul4(EulerDegToMat4(euler.X(), euler.Y(), euler.Z()))
}

// MaxDrift is the largest absolute component difference between a and b.
func MaxDrift(a, b mgl32.Mat4) float32 {
	var drift float32
	for i := range a {
		drift = math32.Max(drift, math32.Abs(a[i]-b[i]))
	}
	return drift
}
