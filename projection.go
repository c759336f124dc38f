package gosiebox

import "github.com/go-gl/mathgl/mgl64"

// nearPlaneZ is the closest view depth that is drawn.
const nearPlaneZ = 0.1

// focalScale is the focal length as a multiple of the screen height,
// roughly a 45 degree vertical field of view.
const focalScale = 1.2

// Point is a screen position in pixels.
type Point struct {
	X, Y float32
}

func focalLength(height float64) float64 {
	return height * focalScale
}

func ConvertToScreenX(width, height, x, z float64) float32 {
	return float32(width/2 + focalLength(height)*x/z)
}

func ConvertToScreenY(width, height, y, z float64) float32 {
	return float32(height/2 - focalLength(height)*y/z)
}

// ConvertFromScreen is the inverse projection at view depth z.
func ConvertFromScreen(width, height, sx, sy, z float64) (float64, float64) {
	f := focalLength(height)
	return (sx - width/2) * z / f, (height/2 - sy) * z / f
}

// clipPolygonAgainstNearPlane keeps the part of a view-space polygon at or
// beyond nearPlaneZ.
func clipPolygonAgainstNearPlane(points []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(points)+2)
	if len(points) == 0 {
		return out
	}
	prev := points[len(points)-1]
	prevIn := prev[2] >= nearPlaneZ
	for _, cur := range points {
		curIn := cur[2] >= nearPlaneZ
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, intersectNearPlane(prev, cur), cur)
		case !curIn && prevIn:
			out = append(out, intersectNearPlane(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// intersectNearPlane returns where p1-p2 crosses the near plane, or p1 when
// the segment is parallel to it.
func intersectNearPlane(p1, p2 mgl64.Vec3) mgl64.Vec3 {
	dz := p2[2] - p1[2]
	if dz == 0 {
		return p1
	}
	t := (nearPlaneZ - p1[2]) / dz
	return p1.Add(p2.Sub(p1).Mul(t))
}

// clipPolygon clips a screen polygon to the window, one pixel past the
// right and bottom edges.
func clipPolygon(points []Point, width, height float32) []Point {
	type edge struct {
		inside func(Point) bool
		cross  func(a, b Point) Point
	}
	atX := func(x float32) func(a, b Point) Point {
		return func(a, b Point) Point {
			t := (x - a.X) / (b.X - a.X)
			return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
		}
	}
	atY := func(y float32) func(a, b Point) Point {
		return func(a, b Point) Point {
			t := (y - a.Y) / (b.Y - a.Y)
			return Point{X: a.X + t*(b.X-a.X), Y: y}
		}
	}
	maxX, maxY := width+1, height+1
	edges := []edge{
		{func(p Point) bool { return p.X >= 0 }, atX(0)},
		{func(p Point) bool { return p.X <= maxX }, atX(maxX)},
		{func(p Point) bool { return p.Y >= 0 }, atY(0)},
		{func(p Point) bool { return p.Y <= maxY }, atY(maxY)},
	}

	out := append([]Point{}, points...)
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
