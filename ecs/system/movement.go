package system

import (
	"github.com/milk9111/isometric/collision"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

// MovementSystem integrates velocities against the solid tiles. It runs
// after every planning system so all entities see the same tick state.
// The stored velocity becomes the one actually applied.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	solids := w.SolidTiles()
	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ColliderComponent.Kind(),
		func(_ ecs.Entity, tr *component.Transform, vel *component.Velocity, col *component.Collider) {
			tr.Position, vel.Value = collision.Step(solids, tr.Position, vel.Value, col.HalfExtent, dt)
		},
	)
}
