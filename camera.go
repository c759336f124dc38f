package gosiebox

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps world space into view space: x right, y up, z forward.
type Camera struct {
	camMatrix *Matrix
	position  mgl64.Vec3
	target    mgl64.Vec3
	up        mgl64.Vec3
}

// NewCameraLookAt places the camera at camPos facing lookAt.
func NewCameraLookAt(camPos, lookAt, up mgl64.Vec3) *Camera {
	c := &Camera{position: camPos, target: lookAt, up: up}
	c.update()
	return c
}

func (c *Camera) update() {
	fwd := c.target.Sub(c.position)
	if fwd.Len() == 0 {
		fwd = mgl64.Vec3{0, 0, -1}
	}
	fwd = fwd.Normalize()
	right := fwd.Cross(c.up)
	if right.Len() == 0 {
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	camUp := right.Cross(fwd)

	m := IdentMatrix()
	for i := 0; i < 3; i++ {
		m.ThisMatrix[i][0] = right[i]
		m.ThisMatrix[i][1] = camUp[i]
		m.ThisMatrix[i][2] = fwd[i]
	}
	m.ThisMatrix[3][0] = -right.Dot(c.position)
	m.ThisMatrix[3][1] = -camUp.Dot(c.position)
	m.ThisMatrix[3][2] = -fwd.Dot(c.position)
	c.camMatrix = m
}

// GetMatrix returns the world to view transform.
func (c *Camera) GetMatrix() *Matrix {
	return c.camMatrix
}

func (c *Camera) GetPosition() mgl64.Vec3 {
	return c.position
}

func (c *Camera) Target() mgl64.Vec3 {
	return c.target
}

// Pan moves the camera and its target together.
func (c *Camera) Pan(dx, dy, dz float64) {
	d := mgl64.Vec3{dx, dy, dz}
	c.position = c.position.Add(d)
	c.target = c.target.Add(d)
	c.update()
}
