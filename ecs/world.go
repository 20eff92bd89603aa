package ecs

import (
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/grid"
)

// World owns entities, their components, and the solid tiles of the loaded
// map. Systems receive it explicitly; nothing here is global.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	solids *grid.SolidSet
}

// NewWorld creates an empty ECS world with an empty solid tile set.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		solids: grid.NewSolidSet(),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities lists every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// SolidTiles returns the blocking cells of the loaded map.
func (w *World) SolidTiles() *grid.SolidSet {
	if w == nil {
		return nil
	}
	return w.solids
}

// SetSolidTiles attaches the blocking cells built by a map load.
func (w *World) SetSolidTiles(s *grid.SolidSet) {
	if w == nil {
		return
	}
	if s == nil {
		s = grid.NewSolidSet()
	}
	w.solids = s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
