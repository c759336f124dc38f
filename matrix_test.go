package gosiebox

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRotationMatrices(t *testing.T) {
	testCases := []struct {
		name     string
		axis     int
		in       mgl64.Vec3
		expected mgl64.Vec3
	}{
		{"X axis quarter turn", ROTX, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"Y axis quarter turn", ROTY, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{"Z axis quarter turn", ROTZ, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewRotationMatrix(tc.axis, math.Pi/2).RotateVector3(tc.in)
			if !almostEqualVec(got, tc.expected) {
				t.Errorf("rotate %v = %v, want %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestRotationMatchesMathgl(t *testing.T) {
	theta := 0.83
	testCases := []struct {
		name string
		axis int
		mgl  mgl64.Mat4
	}{
		{"X", ROTX, mgl64.HomogRotate3DX(theta)},
		{"Y", ROTY, mgl64.HomogRotate3DY(theta)},
		{"Z", ROTZ, mgl64.HomogRotate3DZ(theta)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ours := NewRotationMatrix(tc.axis, theta)
			theirs := ToGoSieMatrix(tc.mgl)
			for c := 0; c < 4; c++ {
				for r := 0; r < 4; r++ {
					if !almostEqual(ours.ThisMatrix[c][r], theirs.ThisMatrix[c][r]) {
						t.Fatalf("mismatch\n%v\nvs\n%v", ours, theirs)
					}
				}
			}
		})
	}
}

func TestMultiplyByOrder(t *testing.T) {
	m := TransMatrix(5, 0, 0).MultiplyBy(NewRotationMatrix(ROTZ, math.Pi/2))
	got := m.TransformPoint(mgl64.Vec3{1, 0, 0})
	if !almostEqualVec(got, mgl64.Vec3{5, 1, 0}) {
		t.Errorf("rotate then translate = %v", got)
	}

	id := IdentMatrix().MultiplyBy(m)
	if *id != *m {
		t.Errorf("identity product changed the matrix")
	}

	s := ScaleMatrix(2, 3, 4).TransformPoint(mgl64.Vec3{1, 1, 1})
	if !almostEqualVec(s, mgl64.Vec3{2, 3, 4}) {
		t.Errorf("scale = %v", s)
	}
}

func TestToGoSieMatrix(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).
		Mul4(mgl64.HomogRotate3DY(0.7)).
		Mul4(mgl64.Scale3D(1.5, 0.5, 2))
	p := mgl64.Vec3{0.3, -1, 2}

	want := m.Mul4x1(p.Vec4(1)).Vec3()
	got := ToGoSieMatrix(m).TransformPoint(p)
	if !almostEqualVec(got, want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestCameraLookAt(t *testing.T) {
	c := NewCameraLookAt(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	view := c.GetMatrix()

	centre := view.TransformPoint(mgl64.Vec3{})
	if !almostEqualVec(centre, mgl64.Vec3{0, 0, 5}) {
		t.Fatalf("target in view space = %v", centre)
	}

	w, h := 800.0, 600.0
	right := view.TransformPoint(mgl64.Vec3{1, 0, 0})
	if x := ConvertToScreenX(w, h, right[0], right[2]); x <= float32(w/2) {
		t.Errorf("+x projected left of centre: %f", x)
	}
	up := view.TransformPoint(mgl64.Vec3{0, 1, 0})
	if y := ConvertToScreenY(w, h, up[1], up[2]); y >= float32(h/2) {
		t.Errorf("+y projected below centre: %f", y)
	}

	c.Pan(1, 0, 0)
	if !almostEqualVec(c.GetPosition(), mgl64.Vec3{1, 0, 5}) || !almostEqualVec(c.Target(), mgl64.Vec3{1, 0, 0}) {
		t.Errorf("pan moved camera to %v looking at %v", c.GetPosition(), c.Target())
	}
	if moved := c.GetMatrix().TransformPoint(mgl64.Vec3{1, 0, 0}); !almostEqualVec(moved, mgl64.Vec3{0, 0, 5}) {
		t.Errorf("new target in view space = %v", moved)
	}
}
