package system

import (
	"math"

	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

// triggerZTolerance is how far apart in Z the player and a trigger may be.
const triggerZTolerance = 0.1

// TriggerSystem queues a LevelChangeRequest on the player when it steps into
// a trigger. The host performs the swap between ticks.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (s *TriggerSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	pe, ptr, ok := findPlayer(w)
	if !ok || ecs.Has(w, pe, component.LevelChangeRequestComponent.Kind()) {
		return
	}
	pos := ptr.Position

	var fired bool
	ecs.ForEach2(w, component.TriggerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tr *component.Trigger, t *component.Transform) {
		if fired || tr.TargetMap == "" {
			return
		}
		if math.Abs(pos.Z-t.Position.Z) >= triggerZTolerance {
			return
		}
		dx, dy := pos.X-t.Position.X, pos.Y-t.Position.Y
		if dx*dx+dy*dy > tr.Radius*tr.Radius {
			return
		}
		fired = ecs.Add(w, pe, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{
			TargetMap:      tr.TargetMap,
			TargetPosition: tr.TargetPosition,
			FromTrigger:    tr.ID,
		}) == nil
	})
}
