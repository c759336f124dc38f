// Package spring advances scalar and vector values toward a target using
// damped harmonic oscillator dynamics.
//
// The model is the one used by most UI spring libraries:
//
//	a = (Tension*(target-x) - Friction*v) / Mass
//	v += a*dt
//	x += v*dt
package spring

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Params are the physical constants of a spring.
type Params struct {
	Mass     float64 `json:"mass"`
	Tension  float64 `json:"tension"`
	Friction float64 `json:"friction"`
}

// Default is used whenever a spring is configured with unusable params.
var Default = Params{Mass: 1, Tension: 170, Friction: 26}

// Part profiles. Lid, Flap, Inner and Light sit slightly above critical
// damping so a part released from rest settles without overshoot. Glow is
// underdamped on purpose: the hover pop is allowed a small bounce.
var (
	Lid   = Params{Mass: 1, Tension: 160, Friction: 26}
	Flap  = Params{Mass: 1, Tension: 180, Friction: 28}
	Inner = Params{Mass: 0.6, Tension: 220, Friction: 24}
	Light = Params{Mass: 1, Tension: 120, Friction: 22}
	Glow  = Params{Mass: 2, Tension: 200, Friction: 25}
)

const (
	// MaxFrame caps a single frame delta; longer gaps (a hidden window,
	// a debugger pause) are treated as this much time.
	MaxFrame = 250 * time.Millisecond

	// MaxSubsteps bounds the work done by one Euler update.
	MaxSubsteps = 64

	maxStep = 1.0 / 60.0

	// MinDampingRatio is the least damping a usable spring may have.
	// Below it a part rings for many seconds after the target stops.
	MinDampingRatio = 0.05
)

// Valid reports whether p describes a spring that can be integrated and
// comes to rest: every constant positive and finite, and the damping ratio
// at least MinDampingRatio.
func (p Params) Valid() bool {
	return finite(p.Mass) && finite(p.Tension) && finite(p.Friction) &&
		p.Mass > 0 && p.Tension > 0 && p.Friction > 0 &&
		p.DampingRatio() >= MinDampingRatio
}

// Sanitize returns p, or Default if p is not Valid.
func (p Params) Sanitize() Params {
	if p.Valid() {
		return p
	}
	return Default
}

// AngularFrequency is the undamped natural frequency sqrt(T/M).
func (p Params) AngularFrequency() float64 {
	return math.Sqrt(p.Tension / p.Mass)
}

// DampingRatio is F / (2*sqrt(T*M)). 1 is critical damping.
func (p Params) DampingRatio() float64 {
	return p.Friction / (2 * math.Sqrt(p.Tension*p.Mass))
}

func (p Params) String() string {
	return fmt.Sprintf("{mass:%g tension:%g friction:%g}", p.Mass, p.Tension, p.Friction)
}

// Method selects how a Value is integrated.
type Method int

const (
	// Euler is semi-implicit Euler with stability-bounded sub-steps.
	Euler Method = iota
	// Analytic uses the closed-form oscillator solution from harmonica.
	Analytic
)

func (m Method) String() string {
	switch m {
	case Euler:
		return "euler"
	case Analytic:
		return "analytic"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "euler" or "analytic" to a Method. The empty string is Euler.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "euler":
		return Euler, nil
	case "analytic", "harmonica":
		return Analytic, nil
	}
	return Euler, fmt.Errorf("spring: unknown integrator %q", s)
}

// Value is a single animated scalar.
type Value struct {
	params Params
	method Method
	x, v   float64
	target float64

	// cached closed-form coefficients for the last dt seen
	hs   harmonica.Spring
	hsDt float64
}

// New returns a Value at rest at initial. Invalid params fall back to Default.
func New(p Params, m Method, initial float64) *Value {
	if !p.Valid() {
		log.Printf("spring: invalid params %v, using default %v", p, Default)
		p = Default
	}
	if !finite(initial) {
		initial = 0
	}
	return &Value{
		params: p,
		method: m,
		x:      initial,
		target: initial,
	}
}

// Params returns the params in use after sanitizing.
func (s *Value) Params() Params {
	return s.params
}

// SetTarget retargets the spring. Non-finite targets are ignored.
func (s *Value) SetTarget(t float64) {
	if !finite(t) {
		return
	}
	s.target = t
}

func (s *Value) Target() float64 {
	return s.target
}

func (s *Value) Current() float64 {
	return s.x
}

func (s *Value) Velocity() float64 {
	return s.v
}

// Set jumps to x and stops.
func (s *Value) Set(x float64) {
	if !finite(x) {
		return
	}
	s.x = x
	s.v = 0
}

// Settled reports whether the spring is within eps of its target and
// moving slower than eps.
func (s *Value) Settled(eps float64) bool {
	return math.Abs(s.x-s.target) <= eps && math.Abs(s.v) <= eps
}

// Update advances the spring by dt and returns the new value. A result
// that is not finite is discarded: the last valid value is kept and the
// spring is stopped.
func (s *Value) Update(dt time.Duration) float64 {
	if dt <= 0 {
		return s.x
	}
	if dt > MaxFrame {
		dt = MaxFrame
	}
	secs := dt.Seconds()

	var x, v float64
	switch s.method {
	case Analytic:
		x, v = s.stepAnalytic(secs)
	default:
		x, v = StepEuler(s.params, s.x, s.v, s.target, secs)
	}

	if !finite(x) || !finite(v) {
		s.v = 0
		return s.x
	}
	s.x, s.v = x, v
	return s.x
}

func (s *Value) stepAnalytic(secs float64) (float64, float64) {
	if s.hsDt != secs {
		s.hs = harmonica.NewSpring(secs, s.params.AngularFrequency(), s.params.DampingRatio())
		s.hsDt = secs
	}
	return s.hs.Update(s.x, s.v, s.target)
}

// StepEuler integrates one frame of secs seconds with semi-implicit Euler.
// The frame is split into sub-steps no longer than 1/60 s, 0.5/omega and
// mass/friction, which keeps the discrete system stable for any valid
// params. If more than MaxSubsteps would be needed, the remaining time is
// dropped rather than taking larger steps.
func StepEuler(p Params, x, v, target, secs float64) (float64, float64) {
	h := maxStep
	if w := p.AngularFrequency(); w > 0 && 0.5/w < h {
		h = 0.5 / w
	}
	if p.Friction > 0 && p.Mass/p.Friction < h {
		h = p.Mass / p.Friction
	}

	n := int(math.Ceil(secs / h))
	if n > MaxSubsteps {
		n = MaxSubsteps
	} else if n > 0 {
		h = secs / float64(n)
	}

	for i := 0; i < n; i++ {
		a := (p.Tension*(target-x) - p.Friction*v) / p.Mass
		v += a * h
		x += v * h
	}
	return x, v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
