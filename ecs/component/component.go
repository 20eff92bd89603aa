package component

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component store inside a World. Zero is never
// handed out.
type ComponentID uint32

var (
	lastID atomic.Uint32
	names  sync.Map // ComponentID -> string
)

// ComponentKind is a typed key for one component store.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind registers a new store for T. Two calls with the same T
// yield two independent kinds.
func NewComponentKind[T any]() ComponentKind[T] {
	id := ComponentID(lastID.Add(1))
	names.Store(id, reflect.TypeFor[T]().String())
	return ComponentKind[T]{id: id}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// Name returns the Go type name the kind was registered with.
func (k ComponentKind[T]) Name() string {
	return NameOf(k.id)
}

// NameOf returns the registered type name of id, or "" for unknown ids.
func NameOf(id ComponentID) string {
	if v, ok := names.Load(id); ok {
		return v.(string)
	}
	return ""
}

// ComponentHandle is what component files export, e.g.
//
//	var TransformComponent = NewComponent[Transform]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
