package entity

import (
	"fmt"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

func NewGem(w *ecs.World, cat *Catalog, pos common.Vec3, value int) (ecs.Entity, error) {
	spec := cat.Gem
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{
		Value:         value,
		MagnetRadius:  spec.MagnetRadius,
		CollectRadius: spec.CollectRadius,
		Acceleration:  spec.Acceleration,
		MaxSpeed:      spec.MaxSpeed,
	}); err != nil {
		return 0, fmt.Errorf("gem: add pickup: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("gem: add transform: %w", err)
	}
	return entity, nil
}

// ClearDynamic destroys enemies, bullets and gems. Map changes call it so
// nothing from the previous map follows the player.
func ClearDynamic(w *ecs.World) int {
	removed := 0
	destroy := func(e ecs.Entity) {
		if ecs.DestroyEntity(w, e) {
			removed++
		}
	}
	ecs.ForEach(w, component.EnemyTagComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag) { destroy(e) })
	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, _ *component.Bullet) { destroy(e) })
	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, _ *component.Pickup) { destroy(e) })
	return removed
}
