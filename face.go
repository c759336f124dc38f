package gosiebox

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is a flat convex polygon in object space.
type Face struct {
	Points []mgl64.Vec3
	Col    color.RGBA
	// Normal points out of the solid. It only fixes which side is the
	// front; the exact direction is recomputed after transforming.
	Normal mgl64.Vec3
}

// NewFace builds a face whose outward side is given by normal. A zero
// normal is derived from the winding of the first three points.
func NewFace(pnts []mgl64.Vec3, col color.RGBA, normal mgl64.Vec3) *Face {
	f := &Face{Points: pnts, Col: col, Normal: normal}
	if normal.Len() == 0 {
		f.Normal = polygonNormal(pnts)
	}
	return f
}

// GetMidPoint is the vertex average.
func (f *Face) GetMidPoint() mgl64.Vec3 {
	return midpoint(f.Points)
}

func midpoint(pts []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(pts) == 0 {
		return sum
	}
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

// polygonNormal uses the first three points, like the winding of a DXF face.
func polygonNormal(pts []mgl64.Vec3) mgl64.Vec3 {
	if len(pts) < 3 {
		return mgl64.Vec3{0, 0, 1}
	}
	u := pts[1].Sub(pts[0])
	v := pts[2].Sub(pts[1])
	n := u.Cross(v)
	if n.Len() == 0 {
		return mgl64.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

// ParseHexColor reads "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("gosiebox: bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("gosiebox: bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustHexColor is ParseHexColor for constants.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
