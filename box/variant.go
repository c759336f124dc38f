package box

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/gosiebox/spring"
)

// ErrUnknownVariant is returned by NewVariant for names it does not know.
var ErrUnknownVariant = errors.New("box: unknown variant")

// RootPart is the Pose key of the whole-box transform. Hosts compose it
// with the idle float rather than looking up a part node.
const RootPart = "box"

// Animator is the contract every box exposes to the host: input and frame
// callbacks in, named part poses out.
type Animator interface {
	OnFrame(dt time.Duration)
	OnHover(hovering bool)
	OnWheel(deltaY float64) bool
	OnClick()
	Pose() map[string]Transform
	Light() float64
	Elapsed() time.Duration
	// Idle is the clock that drives Float for this box.
	Idle() time.Duration
	Stop()
}

var (
	_ Animator = (*Scrollable)(nil)
	_ Animator = (*Toggle)(nil)
	_ Animator = (*Modular)(nil)
)

// FloatStyle describes the idle motion of a whole box. Rates are radians
// per second, speeds are radians of phase per second.
type FloatStyle struct {
	BobAmp, BobSpeed     float64
	YawRate              float64
	YawSwing, SwingSpeed float64
	PitchAmp, PitchSpeed float64
	RollAmp, RollSpeed   float64
	RollCos              bool
}

// Float returns the idle offset of a box group after t.
func Float(t time.Duration, s FloatStyle) Transform {
	secs := t.Seconds()
	tr := Identity()
	tr.Position[1] = math.Sin(secs*s.BobSpeed) * s.BobAmp
	tr.Rotation[0] = math.Sin(secs*s.PitchSpeed) * s.PitchAmp
	tr.Rotation[1] = secs*s.YawRate + math.Sin(secs*s.SwingSpeed)*s.YawSwing
	if s.RollCos {
		tr.Rotation[2] = math.Cos(secs*s.RollSpeed) * s.RollAmp
	} else {
		tr.Rotation[2] = math.Sin(secs*s.RollSpeed) * s.RollAmp
	}
	return tr
}

// VariantOptions tune NewVariant.
type VariantOptions struct {
	Method spring.Method
	Rand   *rand.Rand
	// Scrollable is used for the "scrollable" variant.
	Scrollable Options
}

type variantSpec struct {
	float FloatStyle
	build func(VariantOptions) Animator
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}

var variants = map[string]variantSpec{
	"scrollable": {
		float: FloatStyle{BobAmp: 0.06, BobSpeed: 0.5, YawRate: 0.06},
		build: func(o VariantOptions) Animator {
			opts := o.Scrollable
			if opts.Sensitivity == 0 {
				opts = DefaultOptions()
			}
			opts.Method = o.Method
			return NewScrollable(opts)
		},
	},
	"luxury": {
		float: FloatStyle{YawRate: 0.12, RollAmp: 0.02, RollSpeed: 0.3},
		build: func(o VariantOptions) Animator {
			return NewToggle(ToggleOptions{
				Mode:   ModeHover,
				Grow:   spring.Params{Mass: 5, Tension: 400, Friction: 50},
				Method: o.Method,
				Hinges: []Hinge{{
					Name:   "lid",
					Closed: Pose{Position: mgl64.Vec3{0, 0.9, 0}},
					Open:   Pose{Position: mgl64.Vec3{0, 1.6, -0.9}, Rotation: mgl64.Vec3{deg(-90), 0, 0}},
					Params: spring.Params{Mass: 2, Tension: 200, Friction: 40},
				}},
			})
		},
	},
	"neon": {
		float: FloatStyle{YawRate: 0.3},
		build: func(o VariantOptions) Animator {
			return NewToggle(ToggleOptions{
				Mode:   ModeHover,
				Grow:   spring.Params{Mass: 2, Tension: 350, Friction: 40},
				Method: o.Method,
				Hinges: []Hinge{{
					Name:   "lid",
					Closed: Pose{Position: mgl64.Vec3{0, 0.6, 0}},
					Open:   Pose{Position: mgl64.Vec3{0, 0.6, 0}, Rotation: mgl64.Vec3{0, deg(180), 0}},
					Params: spring.Params{Mass: 0.8, Tension: 500, Friction: 15},
				}},
				AccentInterval: 4500 * time.Millisecond,
				AccentCount:    len(NeonPalette),
				Rand:           o.Rand,
			})
		},
	},
	"holographic": {
		float: FloatStyle{YawRate: 0.42, RollAmp: 0.07, RollSpeed: 0.8},
		build: func(o VariantOptions) Animator {
			interval := 3*time.Second + time.Duration(o.Rand.Float64()*float64(4*time.Second))
			return NewToggle(ToggleOptions{
				Mode:     ModeAuto,
				Interval: interval,
				Grow:     spring.Params{Mass: 3, Tension: 380, Friction: 40},
				Method:   o.Method,
				Hinges: []Hinge{{
					Name:   "lid",
					Closed: Pose{Position: mgl64.Vec3{0, 0.65, 0}},
					Open:   Pose{Position: mgl64.Vec3{0, 0.7, 0}, Rotation: mgl64.Vec3{0, deg(180), 0}},
					Params: spring.Params{Mass: 0.5, Tension: 300, Friction: 20},
				}},
			})
		},
	},
	"wooden": {
		float: FloatStyle{YawSwing: 0.05, SwingSpeed: 0.2, PitchAmp: 0.02, PitchSpeed: 0.3},
		build: func(o VariantOptions) Animator {
			return NewToggle(ToggleOptions{
				Mode:     ModeAuto,
				Interval: 7 * time.Second,
				Grow:     spring.Params{Mass: 4, Tension: 300, Friction: 70},
				Method:   o.Method,
				Hinges: []Hinge{{
					Name:   "lid",
					Closed: Pose{Position: mgl64.Vec3{0, 0.5, 0}},
					Open:   Pose{Position: mgl64.Vec3{0, 0.7, -0.45}, Rotation: mgl64.Vec3{deg(-110), 0, 0}},
					Params: spring.Params{Mass: 5, Tension: 100, Friction: 30},
				}},
			})
		},
	},
	"glass": {
		float: FloatStyle{YawSwing: 0.1, SwingSpeed: 0.2, RollAmp: 0.03, RollSpeed: 0.4},
		build: func(o VariantOptions) Animator {
			return NewToggle(ToggleOptions{
				Mode:     ModeAuto,
				Interval: 6 * time.Second,
				Grow:     spring.Params{Mass: 2, Tension: 300, Friction: 30},
				Method:   o.Method,
				Hinges: []Hinge{{
					Name:   "lid",
					Closed: Pose{Position: mgl64.Vec3{0, 0.575, 0}},
					Open:   Pose{Position: mgl64.Vec3{0, 0.8, -0.3}, Rotation: mgl64.Vec3{deg(-80), 0, 0}},
					Params: spring.Params{Mass: 0.8, Tension: 280, Friction: 20},
				}},
			})
		},
	},
	"basic": {
		float: FloatStyle{YawRate: 0.3, RollAmp: 0.05, RollSpeed: 0.5, PitchAmp: 0.1, PitchSpeed: 0.3},
		build: func(o VariantOptions) Animator {
			corner := spring.Params{Mass: 1, Tension: 240, Friction: 30}
			split := func(name string, x, z, yaw float64) Hinge {
				return Hinge{
					Name:    name,
					Open:    Pose{Position: mgl64.Vec3{x, 0, z}, Rotation: mgl64.Vec3{0, deg(yaw), 0}},
					Params:  corner,
					Trigger: FollowHover,
				}
			}
			return NewToggle(ToggleOptions{
				Mode:        ModeHoverAuto,
				Interval:    4 * time.Second,
				ResumeDelay: 2 * time.Second,
				Grow:        spring.Params{Mass: 4, Tension: 400, Friction: 50},
				Method:      o.Method,
				Hinges: []Hinge{
					{
						Name:   "lid",
						Closed: Pose{Position: mgl64.Vec3{0, 0.45, 0}},
						Open:   Pose{Position: mgl64.Vec3{0, 0.8, -0.4}, Rotation: mgl64.Vec3{0, 0, deg(-105)}},
						Params: spring.Params{Mass: 1, Tension: 280, Friction: 60},
					},
					split("top-left", -0.5, -0.5, -15),
					split("top-right", 0.5, -0.5, 15),
					split("bottom-left", -0.5, 0.5, -15),
					split("bottom-right", 0.5, 0.5, 15),
				},
			})
		},
	},
	"geometric": {
		float: FloatStyle{YawSwing: 0.05, SwingSpeed: 0.2, BobAmp: 0.05, BobSpeed: 0.4},
		build: func(o VariantOptions) Animator {
			return NewModular(ModularOptions{
				Adaptive: true,
				Method:   o.Method,
				Rand:     o.Rand,
			})
		},
	},
	"product": {
		float: FloatStyle{YawRate: 0.12},
		build: func(o VariantOptions) Animator {
			return NewToggle(ToggleOptions{
				Mode:   ModeClick,
				Method: o.Method,
				Hinges: []Hinge{{
					Name:   "lid",
					Closed: Pose{Position: mgl64.Vec3{0, 0.6, 0}},
					Open:   Pose{Position: mgl64.Vec3{0, 0.05, -0.75}, Rotation: mgl64.Vec3{deg(-90), 0, 0}},
					Params: spring.Params{Mass: 1, Tension: 200, Friction: 20},
				}},
				HoverScale: 0.05,
				Hover:      spring.Params{Mass: 1, Tension: 350, Friction: 30},
				PauseIdle:  true,
			})
		},
	},
}

// NeonPalette is the accent cycle of the neon box.
var NeonPalette = []string{"#00FFFF", "#FF00FF", "#FFFF00", "#FF3300", "#00FF66"}

// Variants lists the known variant names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for n := range variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewVariant builds the named showcase box. A nil Rand is replaced with a
// time-seeded one.
func NewVariant(name string, o VariantOptions) (Animator, error) {
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return v.build(o), nil
}

// FloatFor returns the idle motion style of the named variant.
func FloatFor(name string) FloatStyle {
	return variants[name].float
}
