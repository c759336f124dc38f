package box

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/gosiebox/spring"
)

const (
	// DefaultSensitivity converts wheel deltaY into open amount. It is
	// positive, so a positive deltaY (scrolling down in browser convention)
	// opens the box.
	DefaultSensitivity = 0.01
	// MaxScrollValue is the fully open amount.
	MaxScrollValue = 1.0

	revealBelow = 0.1
	closeAbove  = 0.9
)

// Options configure a Scrollable.
type Options struct {
	// Sensitivity multiplies every wheel deltaY. A positive value opens the
	// box on positive deltaY (scrolling down in browser convention); a
	// negative value opens it on scrolling up.
	Sensitivity float64
	// MaxOpen is the upper clamp for the open amount, at most 1.
	MaxOpen float64
	Method  spring.Method
	// Springs overrides the per-part profiles.
	Springs map[Part]spring.Params
	// Light and Glow override the scalar profiles when non-zero.
	Light spring.Params
	Glow  spring.Params
}

// DefaultOptions returns the stock choreography settings.
func DefaultOptions() Options {
	return Options{
		Sensitivity: DefaultSensitivity,
		MaxOpen:     MaxScrollValue,
		Method:      spring.Euler,
	}
}

// DefaultProfile is the spring profile each part uses unless overridden.
func DefaultProfile(p Part) spring.Params {
	switch p {
	case Lid:
		return spring.Lid
	case Inner:
		return spring.Inner
	default:
		return spring.Flap
	}
}

// State is the authoritative input state of a Scrollable.
type State struct {
	OpenAmount    float64
	Hovering      bool
	LastDirection float64
}

type partSpring struct {
	pos, rot, scale *spring.Vec3
}

func newPartSpring(p spring.Params, m spring.Method) *partSpring {
	rest := Identity()
	return &partSpring{
		pos:   spring.NewVec3(p, m, rest.Position),
		rot:   spring.NewVec3(p, m, rest.Rotation),
		scale: spring.NewVec3(p, m, rest.Scale),
	}
}

func (ps *partSpring) retarget(t Transform) {
	ps.pos.SetTarget(t.Position)
	ps.rot.SetTarget(t.Rotation)
	ps.scale.SetTarget(t.Scale)
}

// set moves every channel to t and holds it there.
func (ps *partSpring) set(t Transform) {
	ps.retarget(t)
	ps.pos.Set(t.Position)
	ps.rot.Set(t.Rotation)
	ps.scale.Set(t.Scale)
}

func (ps *partSpring) update(dt time.Duration) {
	ps.pos.Update(dt)
	ps.rot.Update(dt)
	ps.scale.Update(dt)
}

func (ps *partSpring) current() Transform {
	return Transform{
		Position: ps.pos.Current(),
		Rotation: ps.rot.Current(),
		Scale:    ps.scale.Current(),
	}
}

func (ps *partSpring) settled(eps float64) bool {
	return ps.pos.Settled(eps) && ps.rot.Settled(eps) && ps.scale.Settled(eps)
}

// Scrollable is a box opened by scrolling the wheel while the pointer is
// over it. A single open amount drives every part; each part follows its
// target through its own spring, so parts lag the input by different
// amounts.
type Scrollable struct {
	opts  Options
	state State

	parts [numParts]*partSpring
	light *spring.Value
	glow  *spring.Value

	// last frame's output; held when integration produces a bad value
	pose    [numParts]Transform
	elapsed time.Duration
}

// NewScrollable returns a closed box. Zero-valued options take defaults.
func NewScrollable(opts Options) *Scrollable {
	if opts.Sensitivity == 0 || math.IsNaN(opts.Sensitivity) || math.IsInf(opts.Sensitivity, 0) {
		opts.Sensitivity = DefaultSensitivity
	}
	if !(opts.MaxOpen > 0) || opts.MaxOpen > MaxScrollValue {
		opts.MaxOpen = MaxScrollValue
	}

	s := &Scrollable{opts: opts}
	for _, p := range Parts {
		params, ok := opts.Springs[p]
		if !ok {
			params = DefaultProfile(p)
		}
		s.parts[p] = newPartSpring(params, opts.Method)
		s.pose[p] = Identity()
	}
	s.pose[Inner].Scale = mgl64.Vec3{InnerMinScale, InnerMinScale, InnerMinScale}
	s.parts[Inner].scale.Set(s.pose[Inner].Scale)

	lightParams := spring.Light
	if opts.Light != (spring.Params{}) {
		lightParams = opts.Light
	}
	glowParams := spring.Glow
	if opts.Glow != (spring.Params{}) {
		glowParams = opts.Glow
	}
	s.light = spring.New(lightParams, opts.Method, 0)
	s.glow = spring.New(glowParams, opts.Method, 0)

	s.retarget()
	return s
}

// OnHover sets whether the pointer is over the box.
func (s *Scrollable) OnHover(hovering bool) {
	s.state.Hovering = hovering
	if hovering {
		s.glow.SetTarget(1)
	} else {
		s.glow.SetTarget(0)
	}
}

// OnWheel applies one wheel event. Events that arrive while the pointer is
// elsewhere are ignored. The return value reports whether the event was
// consumed; the host must then stop the page from scrolling.
func (s *Scrollable) OnWheel(deltaY float64) bool {
	if !s.state.Hovering {
		return false
	}
	if math.IsNaN(deltaY) || math.IsInf(deltaY, 0) {
		deltaY = 0
	}
	s.state.OpenAmount = clamp(s.state.OpenAmount+deltaY*s.opts.Sensitivity, 0, s.opts.MaxOpen)
	if deltaY != 0 {
		s.state.LastDirection = math.Copysign(1, deltaY)
	}
	s.retarget()
	return true
}

// SetOpenAmount moves the open amount directly, clamped to range.
func (s *Scrollable) SetOpenAmount(p float64) {
	s.state.OpenAmount = clamp(p, 0, s.opts.MaxOpen)
	s.retarget()
}

func (s *Scrollable) retarget() {
	t := DeriveTargets(s.state.OpenAmount)
	for _, p := range Parts {
		s.parts[p].retarget(t.Parts[p])
	}
	s.light.SetTarget(t.Light)
}

// OnFrame advances every spring by dt of wall-clock time.
func (s *Scrollable) OnFrame(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	for _, p := range Parts {
		s.parts[p].update(dt)
		if t := s.parts[p].current(); t.Finite() {
			s.pose[p] = t
		}
	}
	s.light.Update(dt)
	s.glow.Update(dt)
}

// Stop is a no-op; a Scrollable owns no timers.
func (s *Scrollable) Stop() {}

// OnClick is ignored; a Scrollable opens by wheel only.
func (s *Scrollable) OnClick() {}

func (s *Scrollable) OpenAmount() float64 {
	return s.state.OpenAmount
}

func (s *Scrollable) Hovering() bool {
	return s.state.Hovering
}

func (s *Scrollable) LastDirection() float64 {
	return s.state.LastDirection
}

func (s *Scrollable) State() State {
	return s.state
}

// Elapsed is the frame time seen since creation.
func (s *Scrollable) Elapsed() time.Duration {
	return s.elapsed
}

// Idle is the clock of the idle float. It never pauses.
func (s *Scrollable) Idle() time.Duration {
	return s.elapsed
}

// Transform returns the current delta pose of one part.
func (s *Scrollable) Transform(p Part) Transform {
	return s.pose[p]
}

// Transforms returns the current delta pose of every part.
func (s *Scrollable) Transforms() map[Part]Transform {
	out := make(map[Part]Transform, numParts)
	for _, p := range Parts {
		out[p] = s.pose[p]
	}
	return out
}

// Pose is Transforms keyed by part name.
func (s *Scrollable) Pose() map[string]Transform {
	out := make(map[string]Transform, numParts)
	for _, p := range Parts {
		out[p.String()] = s.pose[p]
	}
	return out
}

// Light is the current emitted light intensity.
func (s *Scrollable) Light() float64 {
	return math.Max(0, s.light.Current())
}

// Glow is the current hover highlight, nominally 0 to 1.
func (s *Scrollable) Glow() float64 {
	return s.glow.Current()
}

// Settled reports whether every part has reached its target.
func (s *Scrollable) Settled(eps float64) bool {
	for _, p := range Parts {
		if !s.parts[p].settled(eps) {
			return false
		}
	}
	return s.light.Settled(eps)
}

// Hint returns the instruction overlay for the current state. Both strings
// are empty while the pointer is elsewhere.
func (s *Scrollable) Hint() (primary, secondary string) {
	if !s.state.Hovering {
		return "", ""
	}
	openDir, closeDir := "down", "up"
	if s.opts.Sensitivity < 0 {
		openDir, closeDir = "up", "down"
	}
	switch {
	case s.state.OpenAmount < revealBelow:
		return "Scroll " + openDir + " to reveal", "Our most stunning packaging design"
	case s.state.OpenAmount > closeAbove:
		return "Scroll " + closeDir + " to close", ""
	}
	return "Keep scrolling for magic!", ""
}
