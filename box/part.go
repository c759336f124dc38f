package box

import "fmt"

// Part names a rigid sub-part of the scrollable box.
type Part int

const (
	Lid Part = iota
	LeftFlap
	RightFlap
	FrontFlap
	BackFlap
	Inner

	numParts
)

// Parts lists every part in render order.
var Parts = [numParts]Part{Lid, LeftFlap, RightFlap, FrontFlap, BackFlap, Inner}

var partNames = [numParts]string{
	Lid:       "lid",
	LeftFlap:  "left-flap",
	RightFlap: "right-flap",
	FrontFlap: "front-flap",
	BackFlap:  "back-flap",
	Inner:     "inner",
}

func (p Part) String() string {
	if p < 0 || p >= numParts {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// ParsePart is the inverse of Part.String.
func ParsePart(s string) (Part, bool) {
	for i, n := range partNames {
		if n == s {
			return Part(i), true
		}
	}
	return 0, false
}
