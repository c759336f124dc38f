package gosiebox

import (
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a list of faces sharing one object space.
type Mesh struct {
	Faces []*Face
}

func NewMesh() *Mesh {
	return &Mesh{}
}

func (m *Mesh) AddFace(f *Face) {
	m.Faces = append(m.Faces, f)
}

// SetColor repaints every face.
func (m *Mesh) SetColor(col color.RGBA) {
	for _, f := range m.Faces {
		f.Col = col
	}
}

// Copy duplicates the mesh so the copy can be recoloured on its own.
func (m *Mesh) Copy() *Mesh {
	out := &Mesh{Faces: make([]*Face, len(m.Faces))}
	for i, f := range m.Faces {
		pts := make([]mgl64.Vec3, len(f.Points))
		copy(pts, f.Points)
		out.Faces[i] = &Face{Points: pts, Col: f.Col, Normal: f.Normal}
	}
	return out
}

// Extents returns the axis-aligned bounding box.
func (m *Mesh) Extents() (lo, hi mgl64.Vec3) {
	first := true
	for _, f := range m.Faces {
		for _, p := range f.Points {
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			for i := 0; i < 3; i++ {
				lo[i] = math.Min(lo[i], p[i])
				hi[i] = math.Max(hi[i], p[i])
			}
		}
	}
	return lo, hi
}

// NewCuboid returns a box of the given size centred on the origin.
func NewCuboid(sx, sy, sz float64, col color.RGBA) *Mesh {
	hx, hy, hz := sx/2, sy/2, sz/2
	v := func(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

	m := NewMesh()
	m.AddFace(NewFace([]mgl64.Vec3{v(hx, -hy, -hz), v(hx, hy, -hz), v(hx, hy, hz), v(hx, -hy, hz)}, col, v(1, 0, 0)))
	m.AddFace(NewFace([]mgl64.Vec3{v(-hx, -hy, hz), v(-hx, hy, hz), v(-hx, hy, -hz), v(-hx, -hy, -hz)}, col, v(-1, 0, 0)))
	m.AddFace(NewFace([]mgl64.Vec3{v(-hx, hy, -hz), v(-hx, hy, hz), v(hx, hy, hz), v(hx, hy, -hz)}, col, v(0, 1, 0)))
	m.AddFace(NewFace([]mgl64.Vec3{v(-hx, -hy, hz), v(-hx, -hy, -hz), v(hx, -hy, -hz), v(hx, -hy, hz)}, col, v(0, -1, 0)))
	m.AddFace(NewFace([]mgl64.Vec3{v(-hx, -hy, hz), v(hx, -hy, hz), v(hx, hy, hz), v(-hx, hy, hz)}, col, v(0, 0, 1)))
	m.AddFace(NewFace([]mgl64.Vec3{v(hx, -hy, -hz), v(-hx, -hy, -hz), v(-hx, hy, -hz), v(hx, hy, -hz)}, col, v(0, 0, -1)))
	return m
}

// NewUVSphere builds a sphere from latitude bands. Faces alternate between
// col1 and col2 every stripe slices.
func NewUVSphere(radius float64, slices, stacks int, col1, col2 color.RGBA, stripe int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	if stripe < 1 {
		stripe = 1
	}

	at := func(i, j int) mgl64.Vec3 {
		lat := -math.Pi/2 + math.Pi*float64(i)/float64(stacks)
		lon := 2 * math.Pi * float64(j) / float64(slices)
		return mgl64.Vec3{
			radius * math.Cos(lat) * math.Cos(lon),
			radius * math.Sin(lat),
			radius * math.Cos(lat) * math.Sin(lon),
		}
	}

	m := NewMesh()
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			quad := []mgl64.Vec3{at(i, j), at(i, j+1), at(i+1, j+1), at(i+1, j)}
			pts := dedupe(quad)
			if len(pts) < 3 {
				continue
			}
			col := col1
			if (j/stripe)%2 == 1 {
				col = col2
			}
			m.AddFace(NewFace(pts, col, midpoint(pts).Normalize()))
		}
	}
	log.Printf("gosiebox: sphere r=%.2f with %d faces", radius, len(m.Faces))
	return m
}

// dedupe drops repeated neighbouring points, as found at the poles.
func dedupe(pts []mgl64.Vec3) []mgl64.Vec3 {
	const eps = 1e-12
	out := make([]mgl64.Vec3, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && p.Sub(out[len(out)-1]).Len() < eps {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0].Sub(out[len(out)-1]).Len() < eps {
		out = out[:len(out)-1]
	}
	return out
}
