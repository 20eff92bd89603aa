package component

import "github.com/milk9111/isometric/common"

// Transform is an entity's continuous world position. Z selects the layer.
type Transform struct {
	Position common.Vec3
}

var TransformComponent = NewComponent[Transform]()
