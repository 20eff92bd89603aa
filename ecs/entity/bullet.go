package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

// NewBullet fires a projectile from pos along dir. A zero dir is rejected.
func NewBullet(w *ecs.World, cat *Catalog, owner component.Faction, pos common.Vec3, dir cp.Vector, speed float64) (ecs.Entity, error) {
	if dir.LengthSq() == 0 {
		return 0, fmt.Errorf("bullet: zero direction")
	}
	spec := cat.Bullet
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.BulletComponent.Kind(), &component.Bullet{
		Owner:      owner,
		Damage:     spec.Damage,
		Radius:     spec.Radius,
		HalfExtent: spec.Collider.HalfExtent,
		Velocity:   dir.Normalize().Mult(speed),
	}); err != nil {
		return 0, fmt.Errorf("bullet: add bullet: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return 0, fmt.Errorf("bullet: add transform: %w", err)
	}
	if spec.Lifetime > 0 {
		if err := ecs.Add(w, entity, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.Lifetime}); err != nil {
			return 0, fmt.Errorf("bullet: add ttl: %w", err)
		}
	}
	return entity, nil
}
