package component

import "github.com/milk9111/isometric/motion"

// Pathfinding holds an entity's chase state. The controller owns the current
// path and the re-plan timer.
type Pathfinding struct {
	Nav *motion.Controller
}

var PathfindingComponent = NewComponent[Pathfinding]()
