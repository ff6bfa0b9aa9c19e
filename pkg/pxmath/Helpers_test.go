package pxmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-6

// mgl64 is the independent reference for everything computed in float32 here.

func requireMat4Near(t *testing.T, expected mgl64.Mat4, actual mgl32.Mat4, delta float64) {
	t.Helper()
	for i := range expected {
		require.InDeltaf(t, expected[i], float64(actual[i]), delta, "component %d (col %d row %d)", i, i/4, i%4)
	}
}

func requireMat4Equalish(t *testing.T, expected, actual mgl32.Mat4, delta float64) {
	t.Helper()
	for i := range expected {
		require.InDeltaf(t, float64(expected[i]), float64(actual[i]), delta, "component %d (col %d row %d)", i, i/4, i%4)
	}
}

// rotYXZ is Ry(y) * Rx(x) * Rz(z), angles in degrees.
func rotYXZ(x, y, z float32) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(x))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(y))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(z))
	return ry.Mul4(rx).Mul4(rz)
}

func rotYXZ64(x, y, z float64) mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(mgl64.DegToRad(x))
	ry := mgl64.HomogRotate3DY(mgl64.DegToRad(y))
	rz := mgl64.HomogRotate3DZ(mgl64.DegToRad(z))
	return ry.Mul4(rx).Mul4(rz)
}
