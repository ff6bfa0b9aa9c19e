package main

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go-physx-glue/internal/helpers"
)

type PoseFile struct {
	Poses []Pose `yaml:"poses"`
}

// Pose is either a full column-major matrix or a translation plus Ry*Rx*Rz
// euler angles in degrees.
type Pose struct {
	Name        string    `yaml:"name"`
	Matrix      []float32 `yaml:"matrix"`
	Translation []float32 `yaml:"translation"`
	Euler       []float32 `yaml:"euler"`
}

func LoadPoses(r io.Reader) ([]Pose, error) {
	var f PoseFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to decode poses")
	}

	for i := range f.Poses {
		if f.Poses[i].Name == "" {
			f.Poses[i].Name = uuid.NewString()
		}
	}
	return f.Poses, nil
}

func (p Pose) Mat4() (mgl32.Mat4, error) {
	if len(p.Matrix) > 0 {
		if len(p.Matrix) != 16 {
			return mgl32.Mat4{}, errors.Errorf("pose '%s': matrix needs 16 values, got %d", p.Name, len(p.Matrix))
		}
		if len(p.Translation) > 0 || len(p.Euler) > 0 {
			return mgl32.Mat4{}, errors.Errorf("pose '%s': matrix and translation/euler are exclusive", p.Name)
		}
		var m mgl32.Mat4
		copy(m[:], p.Matrix)
		return m, nil
	}

	translation, err := vec3Field(p.Name, "translation", p.Translation)
	if err != nil {
		return mgl32.Mat4{}, err
	}
	euler, err := vec3Field(p.Name, "euler", p.Euler)
	if err != nil {
		return mgl32.Mat4{}, err
	}
	return helpers.PoseToMat4(translation, euler), nil
}

// vec3Field treats a missing field as zero.
func vec3Field(pose, field string, vals []float32) (mgl32.Vec3, error) {
	switch len(vals) {
	case 0:
		return mgl32.Vec3{}, nil
	case 3:
		return mgl32.Vec3{vals[0], vals[1], vals[2]}, nil
	}
	return mgl32.Vec3{}, errors.Errorf("pose '%s': %s needs 3 values, got %d", pose, field, len(vals))
}
