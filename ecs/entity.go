package ecs

import "fmt"

// Entity packs a slot index in the low 32 bits and the slot's generation in
// the high 32 bits. A handle goes stale once its slot is recycled.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// String renders the handle as id.generation for logs.
func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.id(), e.generation())
}

// Valid reports whether e was ever handed out. It says nothing about
// liveness; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() != 0
}
