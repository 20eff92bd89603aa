package ecs

import "github.com/milk9111/isometric/ecs/component"

// ForEach calls fn for every live entity carrying kind. Iteration works on a
// snapshot so fn may add or remove components.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	s := w.store(a.ID(), false)
	for _, e := range s.Entities() {
		va, ok := Get(w, e, a)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	s := w.store(a.ID(), false)
	if s == nil || w.store(b.ID(), false) == nil {
		return
	}
	for _, e := range s.Entities() {
		va, ok := Get(w, e, a)
		if !ok {
			continue
		}
		vb, ok := Get(w, e, b)
		if !ok {
			continue
		}
		fn(e, va, vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		if vc, ok := Get(w, e, c); ok {
			fn(e, va, vb, vc)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	ForEach3(w, a, b, c, func(e Entity, va *A, vb *B, vc *C) {
		if vd, ok := Get(w, e, d); ok {
			fn(e, va, vb, vc, vd)
		}
	})
}

// First returns the earliest-stored live entity carrying kind.
func First[A any](w *World, a component.ComponentKind[A]) (Entity, bool) {
	for _, e := range w.store(a.ID(), false).Entities() {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many live entities carry kind.
func Count[A any](w *World, a component.ComponentKind[A]) int {
	return w.store(a.ID(), false).Len()
}
