package system

import (
	"math"

	"github.com/milk9111/isometric/collision"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

// BulletSystem moves projectiles in a straight line. A bullet dies on the
// first solid tile or once it is far outside the map.
type BulletSystem struct {
	Level LevelSource
}

func NewBulletSystem(level LevelSource) *BulletSystem {
	return &BulletSystem{Level: level}
}

// OutOfBoundsFactor scales the larger map dimension into the distance from
// the origin past which bullets are discarded.
const OutOfBoundsFactor = 1.5

func (s *BulletSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	limit := math.Inf(1)
	if s.Level != nil {
		if lvl := s.Level.Current(); lvl != nil {
			limit = float64(max(lvl.Width, lvl.Height)) * OutOfBoundsFactor
		}
	}

	solids := w.SolidTiles()
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, tr *component.Transform) {
		if !isActive(w, e) {
			return
		}
		next := tr.Position.Offset(b.Velocity.Mult(dt))
		if collision.IsBlockedAt(solids, next, b.HalfExtent) {
			markDead(w, e)
			return
		}
		tr.Position = next
		if math.Abs(next.X) > limit || math.Abs(next.Y) > limit {
			markDead(w, e)
		}
	})
}
