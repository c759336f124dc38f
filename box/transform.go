package box

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the pose of one rigid part. Rotation holds Euler angles in
// radians, applied X then Y then Z.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// Identity is the transform that leaves a part where it is.
func Identity() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// Quat returns the rotation as a quaternion.
func (t Transform) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(t.Rotation[0], t.Rotation[1], t.Rotation[2], mgl64.XYZ)
}

// Mat4 composes translation * rotation * scale.
func (t Transform) Mat4() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.Quat().Mat4()).
		Mul4(mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Finite reports whether every component is a real number.
func (t Transform) Finite() bool {
	for _, v := range []mgl64.Vec3{t.Position, t.Rotation, t.Scale} {
		for _, f := range v {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
		}
	}
	return true
}

// Then applies d on top of t: positions and rotations add, scales multiply.
func (t Transform) Then(d Transform) Transform {
	return Transform{
		Position: t.Position.Add(d.Position),
		Rotation: t.Rotation.Add(d.Rotation),
		Scale: mgl64.Vec3{
			t.Scale[0] * d.Scale[0],
			t.Scale[1] * d.Scale[1],
			t.Scale[2] * d.Scale[2],
		},
	}
}
