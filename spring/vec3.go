package spring

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 animates three components with shared params. Each component keeps
// its own velocity.
type Vec3 struct {
	c [3]*Value
}

func NewVec3(p Params, m Method, initial mgl64.Vec3) *Vec3 {
	v := &Vec3{}
	for i := range v.c {
		v.c[i] = New(p, m, initial[i])
	}
	return v
}

func (v *Vec3) SetTarget(t mgl64.Vec3) {
	for i := range v.c {
		v.c[i].SetTarget(t[i])
	}
}

func (v *Vec3) Target() mgl64.Vec3 {
	return mgl64.Vec3{v.c[0].Target(), v.c[1].Target(), v.c[2].Target()}
}

func (v *Vec3) Current() mgl64.Vec3 {
	return mgl64.Vec3{v.c[0].Current(), v.c[1].Current(), v.c[2].Current()}
}

func (v *Vec3) Update(dt time.Duration) mgl64.Vec3 {
	for i := range v.c {
		v.c[i].Update(dt)
	}
	return v.Current()
}

func (v *Vec3) Settled(eps float64) bool {
	for i := range v.c {
		if !v.c[i].Settled(eps) {
			return false
		}
	}
	return true
}

// Set jumps every component to x and stops.
func (v *Vec3) Set(x mgl64.Vec3) {
	for i := range v.c {
		v.c[i].Set(x[i])
	}
}
