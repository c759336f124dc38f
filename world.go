package gosiebox

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Rect is a screen-space bounding box.
type Rect struct {
	Min, Max Point
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// Object is a named scene tree placed in the world.
type Object struct {
	Name     string
	Root     *Node
	Position mgl64.Vec3
	// Highlight brightens the whole object, nominally 0 to 1.
	Highlight float64

	bounds  Rect
	visible bool
	depth   float64
}

// Polygon is a projected, shaded face ready to fill.
type Polygon struct {
	X, Y   []float32
	Col    color.RGBA
	Depth  float64
	Object string
}

// World holds objects, lights and the active camera.
type World struct {
	objects []*Object
	camera  *Camera
	lights  []*PointLight
	// Outline strokes every face when its alpha is non-zero.
	Outline color.RGBA

	polys []Polygon
}

func NewWorld() *World {
	return &World{Outline: color.RGBA{R: 50, G: 50, B: 50, A: 25}}
}

// AddObject places root at x, y, z under name.
func (w *World) AddObject(name string, root *Node, x, y, z float64) *Object {
	o := &Object{Name: name, Root: root, Position: mgl64.Vec3{x, y, z}}
	w.objects = append(w.objects, o)
	return o
}

// Object returns the named object or nil.
func (w *World) Object(name string) *Object {
	for _, o := range w.objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

func (w *World) Objects() []*Object {
	return w.objects
}

func (w *World) AddCamera(c *Camera) {
	w.camera = c
}

func (w *World) Camera() *Camera {
	return w.camera
}

func (w *World) AddLight(l *PointLight) {
	w.lights = append(w.lights, l)
}

// Prepare transforms every visible face into screen space for a width by
// height target. It culls back faces, clips to the near plane and the
// window, shades, and sorts far to near. The result is reused by the next
// call.
func (w *World) Prepare(width, height int) []Polygon {
	w.polys = w.polys[:0]
	if w.camera == nil {
		return w.polys
	}
	fw, fh := float64(width), float64(height)
	view := w.camera.GetMatrix()

	lightPos := make([]mgl64.Vec3, len(w.lights))
	for i, l := range w.lights {
		lightPos[i] = view.TransformPoint(l.Position)
	}

	for _, o := range w.objects {
		o.visible = false
		o.bounds = Rect{}
		base := view.MultiplyBy(TransMatrix(o.Position[0], o.Position[1], o.Position[2]))
		o.depth = base.TransformPoint(mgl64.Vec3{})[2]

		o.Root.Walk(base, func(n *Node, m *Matrix) {
			if n.Mesh == nil {
				return
			}
			for _, f := range n.Mesh.Faces {
				if len(f.Points) < 3 {
					continue
				}
				pts := make([]mgl64.Vec3, len(f.Points))
				for i, p := range f.Points {
					pts[i] = m.TransformPoint(p)
				}
				normal := facingNormal(pts, m.RotateVector3(f.Normal))
				if normal.Dot(pts[0]) >= 0 {
					continue
				}

				clipped := clipPolygonAgainstNearPlane(pts)
				if len(clipped) < 3 {
					continue
				}
				screen := make([]Point, len(clipped))
				for i, p := range clipped {
					screen[i] = Point{
						X: ConvertToScreenX(fw, fh, p[0], p[2]),
						Y: ConvertToScreenY(fw, fh, p[1], p[2]),
					}
				}
				screen = clipPolygon(screen, float32(width), float32(height))
				if len(screen) < 3 {
					continue
				}

				mid := midpoint(pts)
				col := f.Col
				if n.Tint != nil {
					col = *n.Tint
				}
				if n.Emissive {
					col = emissiveColor(col, n.Glow)
				} else {
					col = w.shade(col, mid, normal, lightPos, o.Highlight)
				}

				poly := Polygon{
					X:      make([]float32, len(screen)),
					Y:      make([]float32, len(screen)),
					Col:    col,
					Depth:  mid.Len(),
					Object: o.Name,
				}
				for i, p := range screen {
					poly.X[i], poly.Y[i] = p.X, p.Y
				}
				o.grow(screen)
				w.polys = append(w.polys, poly)
			}
		})
	}

	sort.SliceStable(w.polys, func(i, j int) bool {
		return w.polys[i].Depth > w.polys[j].Depth
	})
	return w.polys
}

func (w *World) shade(col color.RGBA, p, n mgl64.Vec3, lightPos []mgl64.Vec3, highlight float64) color.RGBA {
	extra := highlight * highlightBoost
	var tint float64
	var tintCol color.RGBA
	for i, l := range w.lights {
		a := pointLightAmount(l, lightPos[i], p, n)
		extra += a
		if a > tint {
			tint, tintCol = a, l.Col
		}
	}
	out := calcColor(p, n, col, extra)
	if tint > 0 {
		out = mixColor(out, tintCol, tint*0.5)
	}
	return out
}

// facingNormal is the unit normal of a transformed polygon, turned to agree
// with the transformed reference normal.
func facingNormal(pts []mgl64.Vec3, ref mgl64.Vec3) mgl64.Vec3 {
	n := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[1]))
	if n.Len() < 1e-12 {
		if ref.Len() == 0 {
			return mgl64.Vec3{0, 0, -1}
		}
		return ref.Normalize()
	}
	n = n.Normalize()
	if n.Dot(ref) < 0 {
		n = n.Mul(-1)
	}
	return n
}

func (o *Object) grow(pts []Point) {
	for _, p := range pts {
		if !o.visible {
			o.bounds = Rect{Min: p, Max: p}
			o.visible = true
			continue
		}
		o.bounds.Min.X = float32(math.Min(float64(o.bounds.Min.X), float64(p.X)))
		o.bounds.Min.Y = float32(math.Min(float64(o.bounds.Min.Y), float64(p.Y)))
		o.bounds.Max.X = float32(math.Max(float64(o.bounds.Max.X), float64(p.X)))
		o.bounds.Max.Y = float32(math.Max(float64(o.bounds.Max.Y), float64(p.Y)))
	}
}

// Bounds is the screen rectangle the named object covered in the last
// Prepare. It reports false when the object was not drawn.
func (w *World) Bounds(name string) (Rect, bool) {
	o := w.Object(name)
	if o == nil || !o.visible {
		return Rect{}, false
	}
	return o.bounds, true
}

// ObjectAt returns the nearest object whose last drawn bounds contain the
// screen point, or "".
func (w *World) ObjectAt(x, y float32) string {
	best := ""
	bestDepth := math.Inf(1)
	for _, o := range w.objects {
		if o.visible && o.bounds.Contains(x, y) && o.depth < bestDepth {
			best, bestDepth = o.Name, o.depth
		}
	}
	return best
}

// PaintObjects draws the world onto screen.
func (w *World) PaintObjects(screen *ebiten.Image) {
	b := screen.Bounds()
	for _, p := range w.Prepare(b.Dx(), b.Dy()) {
		fillConvexPolygon(screen, p.X, p.Y, p.Col)
		if w.Outline.A > 0 {
			drawPolygonOutline(screen, p.X, p.Y, 1, w.Outline)
		}
	}
}
