package box

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/gosiebox/spring"
)

const (
	// ModularSides is the number of side panels of a Modular box.
	ModularSides = 4
	// ModularModules is the number of corner modules of a Modular box.
	ModularModules = 8

	expandedBodyScale   = 1.2
	expandedLift        = 0.5
	expandedSpread      = 1.5
	closedTopHeight     = 0.5
	expandedTopHeight   = 0.7
	moduleOffset        = 0.4
	closedModuleScale   = 0.2
	expandedModuleScale = 0.3
	minResize           = 0.8
	maxResize           = 1.2
)

// Spring profiles of the Modular parts.
var (
	ModularBody   = spring.Params{Mass: 2, Tension: 400, Friction: 30}
	ModularTop    = spring.Params{Mass: 1, Tension: 180, Friction: 12}
	ModularSide   = spring.Params{Mass: 1, Tension: 400, Friction: 35}
	ModularModule = spring.Params{Mass: 0.8, Tension: 380, Friction: 25}
)

// ModularOptions configure a Modular.
type ModularOptions struct {
	// Dimensions is the base size of the body. Zero means a unit cube.
	Dimensions mgl64.Vec3
	// Adaptive resizes the body to a random 0.8 to 1.2 of Dimensions every
	// ResizeInterval while it is neither hovered nor expanded.
	Adaptive       bool
	ResizeInterval time.Duration
	// ExpandDelay is the hover time before the box expands, CollapseDelay
	// the time after the pointer leaves before it collapses.
	ExpandDelay   time.Duration
	CollapseDelay time.Duration
	Method        spring.Method
	Rand          *rand.Rand
}

// DefaultModularOptions returns the showcase timings for a unit box.
func DefaultModularOptions() ModularOptions {
	return ModularOptions{
		Dimensions:     mgl64.Vec3{1, 1, 1},
		ResizeInterval: 5 * time.Second,
		ExpandDelay:    300 * time.Millisecond,
		CollapseDelay:  500 * time.Millisecond,
	}
}

type modularPart struct {
	name   string
	spring *partSpring
	last   Transform
}

// Modular is a body wrapped in a top panel, four side panels and eight
// corner modules. Hovering expands it after a delay, leaving collapses it,
// and a click toggles it at once.
type Modular struct {
	opts     ModularOptions
	dims     mgl64.Vec3
	expanded bool
	hovering bool
	elapsed  time.Duration
	idle     time.Duration

	parts   []*modularPart
	sched   Scheduler
	pending *Task
	resize  *Task
}

// NewModular returns a collapsed box at rest. Zero fields of opts take the
// DefaultModularOptions values.
func NewModular(opts ModularOptions) *Modular {
	def := DefaultModularOptions()
	if opts.Dimensions == (mgl64.Vec3{}) {
		opts.Dimensions = def.Dimensions
	}
	if opts.ResizeInterval <= 0 {
		opts.ResizeInterval = def.ResizeInterval
	}
	if opts.ExpandDelay <= 0 {
		opts.ExpandDelay = def.ExpandDelay
	}
	if opts.CollapseDelay <= 0 {
		opts.CollapseDelay = def.CollapseDelay
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Modular{opts: opts, dims: opts.Dimensions}
	targets := ModularTargets(m.dims, false)
	for i, name := range modularNames {
		ps := newPartSpring(modularParams(i), opts.Method)
		ps.set(targets[i])
		m.parts = append(m.parts, &modularPart{name: name, spring: ps, last: targets[i]})
	}
	if opts.Adaptive {
		m.resize = m.sched.Every(opts.ResizeInterval, m.randomize)
	}
	return m
}

var modularNames = func() []string {
	names := []string{RootPart, "body", "top"}
	for i := 0; i < ModularSides; i++ {
		names = append(names, fmt.Sprintf("side-%d", i))
	}
	for i := 0; i < ModularModules; i++ {
		names = append(names, fmt.Sprintf("module-%d", i))
	}
	return names
}()

// ModularNames lists the Pose keys of a Modular in a fixed order.
func ModularNames() []string {
	return append([]string(nil), modularNames...)
}

func modularParams(i int) spring.Params {
	switch {
	case i < 2:
		return ModularBody
	case i == 2:
		return ModularTop
	case i < 3+ModularSides:
		return ModularSide
	}
	return ModularModule
}

// ModularTargets returns the rest pose of every part for body dimensions d,
// in ModularNames order. The root carries the lift, the body the scale, and
// panels and modules are placed relative to the root.
func ModularTargets(d mgl64.Vec3, expanded bool) []Transform {
	out := make([]Transform, 0, len(modularNames))

	root := Identity()
	body := Identity()
	body.Scale = d
	top := Identity()
	top.Position[1] = d[1] * closedTopHeight
	top.Scale = mgl64.Vec3{d[0], 1, d[2]}
	spread := 1.0
	moduleScale := closedModuleScale
	if expanded {
		root.Position[1] = expandedLift
		body.Scale = d.Mul(expandedBodyScale)
		top.Position[1] = d[1] * expandedTopHeight
		top.Rotation[1] = math.Pi / 2
		spread = expandedSpread
		moduleScale = expandedModuleScale
	}
	out = append(out, root, body, top)

	for i := 0; i < ModularSides; i++ {
		angle := math.Pi / 2 * float64(i)
		side := Identity()
		side.Position = mgl64.Vec3{
			math.Sin(angle) * d[0] * 0.5 * spread,
			0,
			math.Cos(angle) * d[2] * 0.5 * spread,
		}
		side.Rotation[1] = angle
		if expanded {
			side.Rotation[2] = math.Pi / 4
		}
		side.Scale = mgl64.Vec3{d[0], d[1], 1}
		out = append(out, side)
	}

	for i := 0; i < ModularModules; i++ {
		x, y, z := -1.0, -1.0, -1.0
		if i%2 == 1 {
			x = 1
		}
		if i >= 4 {
			y = 1
		}
		if i >= 2 && i != 4 && i != 5 {
			z = 1
		}
		mod := Identity()
		mod.Position = mgl64.Vec3{
			x * d[0] * moduleOffset * spread,
			y * d[1] * moduleOffset * spread,
			z * d[2] * moduleOffset * spread,
		}
		if expanded {
			mod.Rotation = mgl64.Vec3{
				math.Mod(math.Pi*0.5*float64(i), 3),
				math.Mod(math.Pi*0.25*float64(i), 4),
				0,
			}
		}
		mod.Scale = mgl64.Vec3{moduleScale, moduleScale, moduleScale}
		out = append(out, mod)
	}
	return out
}

// OnHover handles pointer enter and leave.
func (m *Modular) OnHover(hovering bool) {
	if hovering == m.hovering {
		return
	}
	m.hovering = hovering
	m.reconcile()
}

// OnWheel never consumes the event.
func (m *Modular) OnWheel(float64) bool {
	return false
}

// OnClick toggles between collapsed and expanded.
func (m *Modular) OnClick() {
	m.SetExpanded(!m.expanded)
}

// SetExpanded moves to the expanded or collapsed layout.
func (m *Modular) SetExpanded(expanded bool) {
	if expanded == m.expanded {
		return
	}
	m.expanded = expanded
	m.retarget()
	m.reconcile()
}

// reconcile replaces the pending delayed transition after any change of
// hover or layout.
func (m *Modular) reconcile() {
	m.pending.Stop()
	m.pending = nil
	switch {
	case m.hovering && !m.expanded:
		m.pending = m.sched.After(m.opts.ExpandDelay, func() { m.SetExpanded(true) })
	case !m.hovering && m.expanded:
		m.pending = m.sched.After(m.opts.CollapseDelay, func() { m.SetExpanded(false) })
	}
}

func (m *Modular) randomize() {
	if m.expanded || m.hovering {
		return
	}
	for i := range m.dims {
		m.dims[i] = m.opts.Dimensions[i] * (minResize + m.opts.Rand.Float64()*(maxResize-minResize))
	}
	m.retarget()
}

func (m *Modular) retarget() {
	for i, t := range ModularTargets(m.dims, m.expanded) {
		m.parts[i].spring.retarget(t)
	}
}

// OnFrame fires due timers, then advances every part.
func (m *Modular) OnFrame(dt time.Duration) {
	if dt <= 0 {
		return
	}
	m.elapsed += dt
	if !m.expanded {
		m.idle += dt
	}
	m.sched.Advance(dt)
	for _, p := range m.parts {
		p.spring.update(dt)
		if t := p.spring.current(); t.Finite() {
			p.last = t
		}
	}
}

// Stop cancels every timer. The box keeps its last pose.
func (m *Modular) Stop() {
	m.sched.Stop()
	m.pending, m.resize = nil, nil
}

func (m *Modular) Expanded() bool {
	return m.expanded
}

func (m *Modular) Hovering() bool {
	return m.hovering
}

// Dimensions is the current target body size.
func (m *Modular) Dimensions() mgl64.Vec3 {
	return m.dims
}

func (m *Modular) Elapsed() time.Duration {
	return m.elapsed
}

// Idle is the clock of the idle float. It stands still while expanded.
func (m *Modular) Idle() time.Duration {
	return m.idle
}

// Pose returns the current pose of every part by name. RootPart holds the
// lift of the whole box.
func (m *Modular) Pose() map[string]Transform {
	out := make(map[string]Transform, len(m.parts))
	for _, p := range m.parts {
		out[p.name] = p.last
	}
	return out
}

// Settled reports whether every part has reached its target.
func (m *Modular) Settled(eps float64) bool {
	for _, p := range m.parts {
		if !p.spring.settled(eps) {
			return false
		}
	}
	return true
}

// Light is always zero.
func (m *Modular) Light() float64 {
	return 0
}
