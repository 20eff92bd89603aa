package component

import "github.com/jakecoffman/cp"

// Velocity is the planar velocity in world units per second. Planning
// systems write the desired value; the movement system overwrites it with
// what was actually applied after collision.
type Velocity struct {
	Value cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
