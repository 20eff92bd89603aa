package component

import "github.com/milk9111/isometric/common"

// LevelChangeRequest is a one-shot request emitted by TriggerSystem to ask
// the outer game loop to load a different map.
//
// Systems only emit data; the Game loop owns IO and world reinitialization.
type LevelChangeRequest struct {
	TargetMap      string
	TargetPosition common.Vec3
	FromTrigger    string
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
