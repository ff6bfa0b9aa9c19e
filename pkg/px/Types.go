// Package px holds the value types of the native physics engine as they appear
// across its C ABI. Field order and widths match PxVec3, PxQuat, PxTransform and
// PxBounds3 so values can be copied to and from the engine without translation.
package px

import (
	"fmt"
)

type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// Quat is stored x, y, z, w like the engine. It is not required to be unit length.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Transform is a rigid body pose. The engine lays out the rotation first.
type Transform struct {
	Q Quat
	P Vec3
}

type Bounds3 struct {
	Minimum Vec3
	Maximum Vec3
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%f, %f, %f)", v.X, v.Y, v.Z)
}

func (q Quat) String() string {
	return fmt.Sprintf("(%f, %f, %f, %f)", q.X, q.Y, q.Z, q.W)
}

func (t Transform) String() string {
	return fmt.Sprintf("p: %v q: %v", t.P, t.Q)
}
