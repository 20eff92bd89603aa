package system

import (
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/grid"
	"github.com/milk9111/isometric/pathfind"
)

// PathfindingSystem steers every chasing entity toward the player. It only
// writes velocities; MovementSystem applies them.
type PathfindingSystem struct {
	MaxNodes int
	Margin   int
}

func NewPathfindingSystem(maxNodes, margin int) *PathfindingSystem {
	return &PathfindingSystem{MaxNodes: maxNodes, Margin: margin}
}

func (s *PathfindingSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	finder := pathfind.NewFinder(grid.Headroom{Querier: w.SolidTiles()})
	if s.MaxNodes > 0 {
		finder.MaxNodes = s.MaxNodes
	}
	finder.Margin = s.Margin

	target := playerTarget(w)
	ecs.ForEach3(w,
		component.PathfindingComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, pf *component.Pathfinding, tr *component.Transform, vel *component.Velocity) {
			if pf.Nav == nil {
				return
			}
			vel.Value = pf.Nav.Update(dt, tr.Position, target, finder)
		},
	)
}
