package component

import "github.com/jakecoffman/cp"

// Input stores per-tick input state for the player.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
	// Aim is a world-space direction. Zero means fire along the last
	// movement direction.
	Aim cp.Vector
}

var InputComponent = NewComponent[Input]()
