package pxmath

import (
	"go-physx-glue/pkg/px"
)

// Every call into the engine's constructors goes through one of these. They
// take fully built arguments, do no work besides the call, and return the
// engine value by copy.

func newPxVec3(x, y, z float32) px.Vec3 {
	return px.NewVec3(x, y, z)
}

func newPxQuat(x, y, z, w float32) px.Quat {
	return px.NewQuat(x, y, z, w)
}

func newPxTransform(x, y, z float32, q px.Quat) px.Transform {
	return px.NewTransform(x, y, z, q)
}

func newPxIdentityTransform() px.Transform {
	return px.NewTransformIdentity(px.Identity)
}
