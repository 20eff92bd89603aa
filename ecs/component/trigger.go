package component

import "github.com/milk9111/isometric/common"

// Trigger sends the player to another map when it comes within Radius.
type Trigger struct {
	ID             string
	TargetMap      string
	TargetPosition common.Vec3
	Radius         float64
}

var TriggerComponent = NewComponent[Trigger]()
