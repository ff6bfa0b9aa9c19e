package px

// IdentityTag selects the identity overload of the engine constructors,
// mirroring PxIdentity.
type IdentityTag int

const Identity IdentityTag = 0

func NewVec3(x, y, z float32) Vec3 {
	var v Vec3
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

func NewQuat(x, y, z, w float32) Quat {
	var q Quat
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
	return q
}

func NewTransform(x, y, z float32, q Quat) Transform {
	var t Transform
	t.P = NewVec3(x, y, z)
	t.Q = q
	return t
}

func NewTransformFromQuat(q Quat) Transform {
	var t Transform
	t.Q = q
	return t
}

// NewTransformIdentity is the engine's canonical "no transform": zero
// translation and the (0, 0, 0, 1) rotation.
func NewTransformIdentity(_ IdentityTag) Transform {
	var t Transform
	t.Q = NewQuat(0, 0, 0, 1)
	return t
}

func NewBounds3(minimum, maximum Vec3) Bounds3 {
	var b Bounds3
	b.Minimum = minimum
	b.Maximum = maximum
	return b
}
