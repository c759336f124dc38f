package box

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/gosiebox/spring"
)

// LidState is the state of a two-state box.
type LidState int

const (
	Closed LidState = iota
	Open
)

func (s LidState) String() string {
	switch s {
	case Closed:
		return "CLOSED"
	case Open:
		return "OPEN"
	}
	return fmt.Sprintf("LidState(%d)", int(s))
}

// Mode selects what drives a Toggle between its states.
type Mode int

const (
	// ModeHover opens on pointer enter and closes on leave.
	ModeHover Mode = iota
	// ModeAuto flips state every Interval and ignores hover.
	ModeAuto
	// ModeHoverAuto flips every Interval until hovered. Hover opens the box
	// and pauses the timer; leaving closes it and resumes the timer after
	// ResumeDelay.
	ModeHoverAuto
	// ModeClick flips state on every click. Hover only drives the hover
	// scale.
	ModeClick
)

// Trigger selects which signal a hinge follows.
type Trigger int

const (
	// FollowState moves the hinge with the box state.
	FollowState Trigger = iota
	// FollowHover moves the hinge with the pointer, regardless of state.
	FollowHover
)

// Pose is an absolute part position and rotation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// Hinge is one moving part of a Toggle with its two endpoint poses.
type Hinge struct {
	Name    string
	Closed  Pose
	Open    Pose
	Params  spring.Params
	Trigger Trigger
}

// ToggleOptions configure a Toggle.
type ToggleOptions struct {
	Mode        Mode
	Interval    time.Duration
	ResumeDelay time.Duration
	Method      spring.Method
	Hinges      []Hinge

	// AccentInterval cycles Accent through AccentCount values while the box
	// is not hovered. Zero disables cycling.
	AccentInterval time.Duration
	AccentCount    int
	Rand           *rand.Rand

	// Grow scales the whole box in from nothing when it is created. Zero
	// params start the box at full size.
	Grow spring.Params
	// HoverScale is the extra scale reached while hovered, 0.05 for 5%.
	HoverScale float64
	// Hover drives Glow and the hover scale. Zero means spring.Glow.
	Hover spring.Params
	// PauseIdle stops the idle clock while the box is hovered or open.
	PauseIdle bool
}

type hingeSpring struct {
	hinge Hinge
	pos   *spring.Vec3
	rot   *spring.Vec3
	last  Transform
}

// Toggle is a box that is either closed or open. Each transition retargets
// the hinge springs between two fixed poses.
type Toggle struct {
	opts     ToggleOptions
	state    LidState
	hovering bool
	elapsed  time.Duration
	idle     time.Duration

	grow  *spring.Value
	hover *spring.Value
	root  Transform

	hinges []*hingeSpring
	sched  Scheduler
	auto   *Task
	resume *Task
	accent int
	cycle  *Task
}

// NewToggle returns a closed box. Auto modes start their timer immediately.
func NewToggle(opts ToggleOptions) *Toggle {
	t := &Toggle{opts: opts}
	if opts.Grow == (spring.Params{}) {
		t.grow = spring.New(spring.Default, opts.Method, 1)
	} else {
		t.grow = spring.New(opts.Grow, opts.Method, 0)
		t.grow.SetTarget(1)
	}
	hover := opts.Hover
	if hover == (spring.Params{}) {
		hover = spring.Glow
	}
	t.hover = spring.New(hover, opts.Method, 0)
	t.root = t.rootPose()
	for _, h := range opts.Hinges {
		hs := &hingeSpring{
			hinge: h,
			pos:   spring.NewVec3(h.Params, opts.Method, h.Closed.Position),
			rot:   spring.NewVec3(h.Params, opts.Method, h.Closed.Rotation),
			last: Transform{
				Position: h.Closed.Position,
				Rotation: h.Closed.Rotation,
				Scale:    mgl64.Vec3{1, 1, 1},
			},
		}
		t.hinges = append(t.hinges, hs)
	}
	if opts.Mode == ModeAuto || opts.Mode == ModeHoverAuto {
		t.startAuto()
	}
	t.startAccent()
	return t
}

func (t *Toggle) startAuto() {
	t.auto.Stop()
	t.auto = t.sched.Every(t.opts.Interval, t.Flip)
}

func (t *Toggle) startAccent() {
	if t.opts.AccentInterval <= 0 || t.opts.AccentCount <= 1 || t.cycle.Active() {
		return
	}
	t.cycle = t.sched.Every(t.opts.AccentInterval, func() {
		if t.opts.Rand != nil {
			t.accent = t.opts.Rand.Intn(t.opts.AccentCount)
			return
		}
		t.accent = (t.accent + 1) % t.opts.AccentCount
	})
}

// OnHover handles pointer enter and leave.
func (t *Toggle) OnHover(hovering bool) {
	if hovering == t.hovering {
		return
	}
	t.hovering = hovering
	if hovering {
		t.hover.SetTarget(1)
	} else {
		t.hover.SetTarget(0)
	}

	if hovering {
		t.cycle.Stop()
	} else {
		t.startAccent()
	}

	switch t.opts.Mode {
	case ModeHover:
		t.SetOpen(hovering)
	case ModeHoverAuto:
		if hovering {
			t.auto.Stop()
			t.resume.Stop()
			t.SetOpen(true)
		} else {
			t.SetOpen(false)
			t.resume.Stop()
			t.resume = t.sched.After(t.opts.ResumeDelay, t.startAuto)
			if !t.resume.Active() {
				t.startAuto()
			}
		}
	}
	t.retarget()
}

// OnWheel never consumes the event.
func (t *Toggle) OnWheel(float64) bool {
	return false
}

// OnClick flips the state in ModeClick and is ignored otherwise.
func (t *Toggle) OnClick() {
	if t.opts.Mode == ModeClick {
		t.Flip()
	}
}

// SetOpen moves to Open or Closed.
func (t *Toggle) SetOpen(open bool) {
	if open {
		t.state = Open
	} else {
		t.state = Closed
	}
	t.retarget()
}

// Open moves to Open.
func (t *Toggle) Open() {
	t.SetOpen(true)
}

// Close moves to Closed.
func (t *Toggle) Close() {
	t.SetOpen(false)
}

// Flip moves to the other state.
func (t *Toggle) Flip() {
	t.SetOpen(t.state == Closed)
}

func (t *Toggle) retarget() {
	for _, hs := range t.hinges {
		active := t.state == Open
		if hs.hinge.Trigger == FollowHover {
			active = t.hovering
		}
		pose := hs.hinge.Closed
		if active {
			pose = hs.hinge.Open
		}
		hs.pos.SetTarget(pose.Position)
		hs.rot.SetTarget(pose.Rotation)
	}
}

// OnFrame fires due timers, then advances the hinge springs.
func (t *Toggle) OnFrame(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.elapsed += dt
	if !t.opts.PauseIdle || (!t.hovering && t.state == Closed) {
		t.idle += dt
	}
	t.sched.Advance(dt)
	t.grow.Update(dt)
	t.hover.Update(dt)
	if r := t.rootPose(); r.Finite() {
		t.root = r
	}
	for _, hs := range t.hinges {
		hs.pos.Update(dt)
		hs.rot.Update(dt)
		tr := Transform{
			Position: hs.pos.Current(),
			Rotation: hs.rot.Current(),
			Scale:    mgl64.Vec3{1, 1, 1},
		}
		if tr.Finite() {
			hs.last = tr
		}
	}
}

// Stop cancels every timer. The box keeps its last pose.
func (t *Toggle) Stop() {
	t.sched.Stop()
	t.auto, t.resume, t.cycle = nil, nil, nil
}

func (t *Toggle) State() LidState {
	return t.state
}

func (t *Toggle) Hovering() bool {
	return t.hovering
}

func (t *Toggle) Elapsed() time.Duration {
	return t.elapsed
}

// Idle is the clock of the idle float. It equals Elapsed unless PauseIdle
// is set.
func (t *Toggle) Idle() time.Duration {
	return t.idle
}

// Grow is the current grow-in scale, 0 at creation and 1 at rest.
func (t *Toggle) Grow() float64 {
	return t.grow.Current()
}

// Glow is the current hover highlight, nominally 0 to 1.
func (t *Toggle) Glow() float64 {
	return t.hover.Current()
}

func (t *Toggle) rootPose() Transform {
	s := t.grow.Current() * (1 + t.opts.HoverScale*t.hover.Current())
	tr := Identity()
	tr.Scale = mgl64.Vec3{s, s, s}
	return tr
}

// Accent is the current accent index for boxes that cycle colours.
func (t *Toggle) Accent() int {
	return t.accent
}

// AutoActive reports whether the auto timer is running.
func (t *Toggle) AutoActive() bool {
	return t.auto.Active()
}

// Pose returns the current absolute pose of every hinge by name, plus the
// whole-box scale under RootPart.
func (t *Toggle) Pose() map[string]Transform {
	out := make(map[string]Transform, len(t.hinges)+1)
	out[RootPart] = t.root
	for _, hs := range t.hinges {
		out[hs.hinge.Name] = hs.last
	}
	return out
}

// Hinge returns the current pose of the named hinge.
func (t *Toggle) Hinge(name string) (Transform, bool) {
	for _, hs := range t.hinges {
		if hs.hinge.Name == name {
			return hs.last, true
		}
	}
	return Transform{}, false
}

// Settled reports whether every hinge and the box scale have reached their
// targets.
func (t *Toggle) Settled(eps float64) bool {
	if !t.grow.Settled(eps) || !t.hover.Settled(eps) {
		return false
	}
	for _, hs := range t.hinges {
		if !hs.pos.Settled(eps) || !hs.rot.Settled(eps) {
			return false
		}
	}
	return true
}

// Light is always zero; two-state boxes carry no inner light.
func (t *Toggle) Light() float64 {
	return 0
}
