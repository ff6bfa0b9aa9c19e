package pxmath

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-physx-glue/pkg/px"
)

// FromPxQuat copies the components as is. Unit length is the caller's concern.
func FromPxQuat(q px.Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func ToPxQuat(q mgl32.Quat) px.Quat {
	return newPxQuat(q.X(), q.Y(), q.Z(), q.W)
}
