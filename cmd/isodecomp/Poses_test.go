package main

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-physx-glue/internal/helpers"
	"go-physx-glue/internal/log"
)

const posesYAML = `
poses:
  - name: arm
    translation: [1, 2, 3]
    euler: [20, 30, 40]
  - matrix: [2, 0, 0, 0,  0, 1, 0, 0,  0, 0, 1, 0,  5, 6, 7, 1]
  - name: broken
    translation: [1, 2]
`

func TestLoadPoses(t *testing.T) {
	poses, err := LoadPoses(strings.NewReader(posesYAML))
	require.NoError(t, err)
	require.Len(t, poses, 3)

	assert.Equal(t, "arm", poses[0].Name)
	_, err = uuid.Parse(poses[1].Name)
	assert.NoError(t, err, "unnamed pose gets an id")

	m, err := poses[0].Mat4()
	require.NoError(t, err)
	assert.Equal(t, helpers.PoseToMat4(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{20, 30, 40}), m)

	m, err = poses[1].Mat4()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec4{5, 6, 7, 1}, m.Col(3))
	assert.Equal(t, float32(2), m[0])

	_, err = poses[2].Mat4()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translation needs 3 values")
}

func TestPoseMat4_Exclusive(t *testing.T) {
	p := Pose{Name: "both", Matrix: make([]float32, 16), Euler: []float32{0, 0, 0}}
	_, err := p.Mat4()
	require.Error(t, err)

	p = Pose{Name: "short", Matrix: []float32{1, 2, 3}}
	_, err = p.Mat4()
	require.Error(t, err)
}

func TestProcessPose(t *testing.T) {
	poses, err := LoadPoses(strings.NewReader(posesYAML))
	require.NoError(t, err)

	tests := []struct {
		policy string
		ok     []bool
	}{
		{"truncate-renormalize", []bool{true, true, false}},
		{"renormalize", []bool{true, true, false}},
		{"strict", []bool{true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			cfg, err := loadConfig("", tt.policy)
			require.NoError(t, err)

			core, logs := observer.New(zapcore.InfoLevel)
			logger := log.NewWithZap(zap.New(core))

			for i, p := range poses {
				assert.Equal(t, tt.ok[i], processPose(logger, p, cfg), "pose %d", i)
			}

			decomposed := logs.FilterMessage("decomposed").AllUntimed()
			for _, e := range decomposed {
				drift, ok := e.ContextMap()["round_trip_drift"].(float32)
				require.True(t, ok)
				assert.Less(t, drift, float32(1e-5))
			}
		})
	}
}

func TestLoadConfig_BadPolicy(t *testing.T) {
	_, err := loadConfig("", "gram-schmidt")
	require.Error(t, err)
}
