package pxmath

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"go-physx-glue/pkg/px"
)

// Bounds is an axis aligned box read back from the engine.
type Bounds struct {
	MinSize mgl32.Vec3
	MaxSize mgl32.Vec3
}

func BoundsFromPx(b px.Bounds3) Bounds {
	var r Bounds
	r.MinSize = FromPxVec3(b.Minimum)
	r.MaxSize = FromPxVec3(b.Maximum)
	return r
}

func (b Bounds) Size() mgl32.Vec3 {
	return b.MaxSize.Sub(b.MinSize)
}

func (b Bounds) Center() mgl32.Vec3 {
	return b.MinSize.Add(b.MaxSize).Mul(0.5)
}

// Extents is half of Size.
func (b Bounds) Extents() mgl32.Vec3 {
	return b.Size().Mul(0.5)
}

// Contains is inclusive on every face.
func (b Bounds) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.MinSize[i] || p[i] > b.MaxSize[i] {
			return false
		}
	}
	return true
}

// Overlap returns the volume shared by both boxes, 0 when they are disjoint.
func (b Bounds) Overlap(o Bounds) float32 {
	volume := float32(1)
	for i := 0; i < 3; i++ {
		lo := math32.Max(b.MinSize[i], o.MinSize[i])
		hi := math32.Min(b.MaxSize[i], o.MaxSize[i])
		if hi <= lo {
			return 0
		}
		volume *= hi - lo
	}
	return volume
}

func (b Bounds) String() string {
	return fmt.Sprintf("min: %v max: %v", b.MinSize, b.MaxSize)
}
