package system

import (
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/motion"
)

// FacingSystem keeps the last facing while an entity stands still.
type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

func (s *FacingSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.FacingComponent.Kind(), func(_ ecs.Entity, vel *component.Velocity, f *component.Facing) {
		if dir, ok := motion.FacingOf(vel.Value); ok {
			f.Dir = dir
		}
	})
}
