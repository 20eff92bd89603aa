package entity

import (
	"fmt"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

func NewPlayer(w *ecs.World, cat *Catalog, pos common.Vec3) (ecs.Entity, error) {
	spec := cat.Player
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:   spec.MoveSpeed,
		ShotDelay:   spec.ShotDelay,
		BulletSpeed: spec.BulletSpeed,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := addBody(w, entity, pos, spec.Collider.HalfExtent); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current:         spec.Health.Max,
		Max:             spec.Health.Max,
		InvulnerableFor: spec.Health.Invulnerable,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	return entity, nil
}

// addBody attaches what the movement integration needs.
func addBody(w *ecs.World, e ecs.Entity, pos common.Vec3, halfExtent float64) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return fmt.Errorf("add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{HalfExtent: halfExtent}); err != nil {
		return fmt.Errorf("add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{}); err != nil {
		return fmt.Errorf("add facing: %w", err)
	}
	return nil
}
