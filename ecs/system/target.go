package system

import (
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/levels"
	"github.com/milk9111/isometric/motion"
)

// LevelSource exposes the loaded map. levels.Manager satisfies it.
type LevelSource interface {
	Current() *levels.Level
}

// entityTarget lets motion.Controller chase an entity without holding a
// pointer to its components.
type entityTarget struct {
	w *ecs.World
	e ecs.Entity
}

func (t entityTarget) Position() common.Vec3 {
	tr, ok := ecs.Get(t.w, t.e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}
	}
	return tr.Position
}

func (t entityTarget) Alive() bool {
	return isActive(t.w, t.e) && ecs.Has(t.w, t.e, component.TransformComponent.Kind())
}

// playerTarget returns nil when there is no live player.
func playerTarget(w *ecs.World) motion.Target {
	e, _, ok := findPlayer(w)
	if !ok {
		return nil
	}
	return entityTarget{w: w, e: e}
}

// findPlayer returns the first live player and its transform.
func findPlayer(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	var (
		found ecs.Entity
		tr    *component.Transform
	)
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		if tr == nil && isActive(w, e) {
			found, tr = e, t
		}
	})
	return found, tr, tr != nil
}

// isActive reports whether e is alive and not waiting for cleanup.
func isActive(w *ecs.World, e ecs.Entity) bool {
	return ecs.IsAlive(w, e) && !ecs.Has(w, e, component.DeadTagComponent.Kind())
}

func markDead(w *ecs.World, e ecs.Entity) {
	_ = ecs.Add(w, e, component.DeadTagComponent.Kind(), &component.DeadTag{})
}
