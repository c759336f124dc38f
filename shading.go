package gosiebox

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ambientLight = 0.65
	// Higher values give a tighter cone for the headlight.
	spotlightConePower   = 10.0
	spotlightLightAmount = 1.0 - ambientLight
	minChannel           = 7

	highlightBoost = 0.15
	pointLightGain = 0.35
)

// PointLight is a coloured light in world space. Strength halves at Range.
type PointLight struct {
	Position  mgl64.Vec3
	Intensity float64
	Col       color.RGBA
	Range     float64
}

// calcColor shades a face at view-space point p with a normal facing the
// camera. The camera carries a spotlight along its view axis; extra is
// added to the final brightness.
func calcColor(p, n mgl64.Vec3, col color.RGBA, extra float64) color.RGBA {
	diffuse := math.Max(0, -n[2])

	spotlight := 1.0
	if l := p.Len(); l > 0 {
		spotlight = math.Pow(math.Max(0, p[2]/l), spotlightConePower)
	}

	brightness := ambientLight + diffuse*spotlight*spotlightLightAmount + extra
	c := 240 - int(brightness*240)
	return color.RGBA{
		R: uint8(clampInt(int(col.R)-c, minChannel, 255)),
		G: uint8(clampInt(int(col.G)-c, minChannel, 255)),
		B: uint8(clampInt(int(col.B)-c, minChannel, 255)),
		A: col.A,
	}
}

// pointLightAmount is how strongly a view-space light at lp reaches a face.
func pointLightAmount(l *PointLight, lp, p, n mgl64.Vec3) float64 {
	if l.Intensity <= 0 {
		return 0
	}
	d := lp.Sub(p)
	dist := d.Len()
	if dist == 0 {
		return l.Intensity * pointLightGain
	}
	lambert := n.Dot(d.Mul(1 / dist))
	if lambert <= 0 {
		return 0
	}
	r := l.Range
	if r <= 0 {
		r = 1
	}
	return l.Intensity * pointLightGain * lambert / (1 + (dist/r)*(dist/r))
}

// emissiveColor lifts col toward white as glow grows.
func emissiveColor(col color.RGBA, glow float64) color.RGBA {
	t := math.Min(1, math.Max(0, glow)/2.5) * 0.6
	return mixColor(col, color.RGBA{R: 255, G: 255, B: 255, A: col.A}, t)
}

func mixColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Min(1, math.Max(0, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
