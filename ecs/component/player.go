package component

import "github.com/jakecoffman/cp"

type Player struct {
	MoveSpeed float64
	ShotDelay float64
	// ShotCooldown counts down to the next allowed shot.
	ShotCooldown float64
	BulletSpeed  float64
	Experience   int
	// LastDir is the last non-zero move direction. Shots fall back to it
	// when there is no aim.
	LastDir cp.Vector
}

var PlayerComponent = NewComponent[Player]()
