package entity

import (
	"fmt"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/motion"
)

// NewEnemy spawns a chasing enemy. speedScale multiplies the prefab speed.
func NewEnemy(w *ecs.World, cat *Catalog, pos common.Vec3, speedScale float64) (ecs.Entity, error) {
	spec := cat.Enemy
	if speedScale <= 0 {
		speedScale = 1
	}
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	speed := spec.MoveSpeed * speedScale
	if err := ecs.Add(w, entity, component.AIComponent.Kind(), &component.AI{
		MoveSpeed:     speed,
		Weight:        spec.Weight,
		BulletSpeed:   spec.BulletSpeed,
		ContactRadius: spec.ContactRadius,
		GemValue:      spec.GemValue,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}

	nav := motion.NewController(speed)
	nav.Interval = firstPositive(spec.Pathfinding.RepathInterval, cat.Nav.RepathInterval, motion.DefaultRepathInterval)
	nav.Threshold = firstPositive(spec.Pathfinding.NodeReached, cat.Nav.NodeReached, motion.DefaultNodeReached)
	if err := ecs.Add(w, entity, component.PathfindingComponent.Kind(), &component.Pathfinding{Nav: nav}); err != nil {
		return 0, fmt.Errorf("enemy: add pathfinding: %w", err)
	}

	if err := addBody(w, entity, pos, spec.Collider.HalfExtent); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health.Max,
		Max:     spec.Health.Max,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}
	return entity, nil
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
