// Package pxmath converts between engine value types from package px and the
// mgl32 types used everywhere else.
//
// Conversions are named FromPxX / ToPxX. A px.Transform, which is a
// (quaternion, position) pair, corresponds to an mgl32.Mat4.
package pxmath

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-physx-glue/pkg/px"
)

func FromPxVec3(v px.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func ToPxVec3(v mgl32.Vec3) px.Vec3 {
	return newPxVec3(v.X(), v.Y(), v.Z())
}
