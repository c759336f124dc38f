package gosiebox

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 affine transform. ThisMatrix[i] is column i, so the
// translation lives in ThisMatrix[3][0..2].
type Matrix struct {
	ThisMatrix [4][4]float64
}

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func IdentMatrix() *Matrix {
	m := &Matrix{}
	m.ThisMatrix[0][0], m.ThisMatrix[1][1], m.ThisMatrix[2][2], m.ThisMatrix[3][3] = 1, 1, 1, 1
	return m
}

func NewRotationMatrix(aRotation int, theta float64) *Matrix {
	m := IdentMatrix()
	c, s := math.Cos(theta), math.Sin(theta)
	switch aRotation {
	case ROTX:
		m.ThisMatrix[1][1] = c
		m.ThisMatrix[2][1] = -s
		m.ThisMatrix[1][2] = s
		m.ThisMatrix[2][2] = c
	case ROTY:
		m.ThisMatrix[0][0] = c
		m.ThisMatrix[2][0] = s
		m.ThisMatrix[0][2] = -s
		m.ThisMatrix[2][2] = c
	case ROTZ:
		m.ThisMatrix[0][0] = c
		m.ThisMatrix[1][0] = -s
		m.ThisMatrix[0][1] = s
		m.ThisMatrix[1][1] = c
	}
	return m
}

func TransMatrix(x, y, z float64) *Matrix {
	m := IdentMatrix()
	m.ThisMatrix[3][0] = x
	m.ThisMatrix[3][1] = y
	m.ThisMatrix[3][2] = z
	return m
}

func ScaleMatrix(x, y, z float64) *Matrix {
	m := IdentMatrix()
	m.ThisMatrix[0][0] = x
	m.ThisMatrix[1][1] = y
	m.ThisMatrix[2][2] = z
	return m
}

// MultiplyBy returns m*a: a is applied first.
func (m *Matrix) MultiplyBy(a *Matrix) *Matrix {
	out := &Matrix{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out.ThisMatrix[col][row] = m.ThisMatrix[0][row]*a.ThisMatrix[col][0] +
				m.ThisMatrix[1][row]*a.ThisMatrix[col][1] +
				m.ThisMatrix[2][row]*a.ThisMatrix[col][2] +
				m.ThisMatrix[3][row]*a.ThisMatrix[col][3]
		}
	}
	return out
}

// TransformPoint applies the full transform, translation included.
func (m *Matrix) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return m.RotateVector3(p).Add(mgl64.Vec3{m.ThisMatrix[3][0], m.ThisMatrix[3][1], m.ThisMatrix[3][2]})
}

// RotateVector3 applies the 3x3 part only. Use it for directions.
func (m *Matrix) RotateVector3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		m.ThisMatrix[0][0]*v[0] + m.ThisMatrix[1][0]*v[1] + m.ThisMatrix[2][0]*v[2],
		m.ThisMatrix[0][1]*v[0] + m.ThisMatrix[1][1]*v[1] + m.ThisMatrix[2][1]*v[2],
		m.ThisMatrix[0][2]*v[0] + m.ThisMatrix[1][2]*v[1] + m.ThisMatrix[2][2]*v[2],
	}
}

// ToGoSieMatrix converts a column-major mathgl matrix.
func ToGoSieMatrix(m mgl64.Mat4) *Matrix {
	out := &Matrix{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out.ThisMatrix[col][row] = m[col*4+row]
		}
	}
	return out
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i, col := range m.ThisMatrix {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range col {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
