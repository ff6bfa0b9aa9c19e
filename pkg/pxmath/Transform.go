package pxmath

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-physx-glue/pkg/px"
)

// IdentityTransform returns the engine's own identity transform.
func IdentityTransform() px.Transform {
	return newPxIdentityTransform()
}

// FromPxTransform builds T(p) * R(q).
func FromPxTransform(t px.Transform) mgl32.Mat4 {
	p := FromPxVec3(t.P)
	q := FromPxQuat(t.Q)
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(q.Mat4())
}

func ToPxTransform(m mgl32.Mat4) px.Transform {
	return ToPxTransformRef(&m)
}

// ToPxTransformRef reads the rotation from the upper 3x3 block and the
// translation from the fourth column. The block is assumed to be a pure
// rotation; scale ends up folded into the quaternion.
func ToPxTransformRef(m *mgl32.Mat4) px.Transform {
	q := ToPxQuat(mgl32.Mat4ToQuat(*m))
	p := m.Col(3).Vec3()
	return newPxTransform(p.X(), p.Y(), p.Z(), q)
}
