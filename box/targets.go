package box

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Choreography constants. Rotations are multiples of the open amount p.
const (
	LidRise       = 0.8
	InnerRise     = 1.2
	InnerSpins    = 4
	InnerMinScale = 0.2
	MaxLight      = 2.5
)

// Targets is the pose every part is pulled toward for one open amount.
// Part transforms are deltas on top of the part's rest pose.
type Targets struct {
	Parts [numParts]Transform
	Light float64
}

func (t Targets) Part(p Part) Transform {
	return t.Parts[p]
}

// DeriveTargets maps an open amount to part targets. It has no state: the
// same p always gives the same Targets. p is clamped to [0, 1] and NaN is
// read as 0.
func DeriveTargets(p float64) Targets {
	p = clamp(p, 0, 1)

	var t Targets
	for i := range t.Parts {
		t.Parts[i] = Identity()
	}

	t.Parts[Lid].Rotation[0] = -p * (math.Pi / 2)
	t.Parts[Lid].Position[1] = p * LidRise

	t.Parts[LeftFlap].Rotation[2] = p * (math.Pi / 3)
	t.Parts[RightFlap].Rotation[2] = -p * (math.Pi / 3)
	t.Parts[FrontFlap].Rotation[0] = p * (math.Pi / 2.5)
	t.Parts[BackFlap].Rotation[0] = -p * (math.Pi / 2.5)

	s := InnerMinScale + p*(1-InnerMinScale)
	t.Parts[Inner].Rotation[1] = p * InnerSpins * math.Pi
	t.Parts[Inner].Position[1] = p * InnerRise
	t.Parts[Inner].Scale = mgl64.Vec3{s, s, s}

	t.Light = p * MaxLight
	return t
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
