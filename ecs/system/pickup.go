package system

import (
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

// gemStepScale converts the gem's speed into world units per second.
const gemStepScale = 0.05

// PickupSystem pulls gems toward the player and credits collected ones.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	pe, ptr, ok := findPlayer(w)
	if !ok {
		return
	}
	player, ok := ecs.Get(w, pe, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	target := ptr.Position

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Pickup, tr *component.Transform) {
		if !isActive(w, e) {
			return
		}
		before := common.PlanarDistance(tr.Position, target)
		if before >= p.MagnetRadius && !p.Magnetized {
			return
		}
		p.Magnetized = true
		p.Speed = min(p.Speed+p.Acceleration*dt*60, p.MaxSpeed)
		tr.Position = tr.Position.Offset(common.Direction(tr.Position, target).Mult(p.Speed * dt * gemStepScale))

		if before < p.CollectRadius || common.PlanarDistance(tr.Position, target) < p.CollectRadius {
			player.Experience += p.Value
			markDead(w, e)
			w.Events().Push(ecs.Event{Type: ecs.EventGemCollected, Data: p.Value})
		}
	})
}
