package motion

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Facing is the coarse direction an entity looks in, for animation only.
type Facing uint8

const (
	FacingSouth Facing = iota
	FacingWest
	FacingNorth
	FacingEast
)

func (f Facing) String() string {
	switch f {
	case FacingWest:
		return "west"
	case FacingNorth:
		return "north"
	case FacingEast:
		return "east"
	default:
		return "south"
	}
}

// FacingOf picks a facing from the dominant axis of v. It returns false for
// a zero vector so callers can keep the previous facing.
func FacingOf(v cp.Vector) (Facing, bool) {
	ax, ay := math.Abs(v.X), math.Abs(v.Y)
	switch {
	case ax == 0 && ay == 0:
		return FacingSouth, false
	case ax > ay:
		if v.X > 0 {
			return FacingEast, true
		}
		return FacingWest, true
	default:
		if v.Y > 0 {
			return FacingSouth, true
		}
		return FacingNorth, true
	}
}
