package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/grid"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldReusedIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("reused entity must differ from the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("components of destroyed entity leaked to reused id")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e2, h1.Kind(), intPtr(7)) },
			check: func(t *testing.T) {
				if err := Add(w, e2, h1.Kind(), intPtr(8)); err != nil {
					t.Fatalf("second add failed: %v", err)
				}
				v, _ := Get(w, e2, h1.Kind())
				if *v != 8 {
					t.Fatalf("expected replaced value 8, got %d", *v)
				}
				if Count(w, h1.Kind()) != 1 {
					t.Fatalf("replace should not grow the store")
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil_value", Add(w, e, h.Kind(), nil), component.ErrNilComponent},
		{"zero_kind", Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
		{"dead_entity", Add(w, Entity(0), h.Kind(), intPtr(1)), component.ErrEntityNotAlive},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, tc.err)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachToleratesDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited++
		if *v == 0 {
			DestroyEntity(w, ents[3])
		}
	})
	if visited != 3 {
		t.Fatalf("expected 3 visits after destroying one mid-iteration, got %d", visited)
	}
}

func TestForEach3(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	e4 := CreateEntity(w)

	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()

	adds := []struct {
		e Entity
		k component.ComponentKind[int]
		v int
	}{
		{e1, ka, 1},
		{e2, ka, 2},
		{e2, kb, 3},
		{e2, kc, 5},
		{e3, kb, 4},
		{e4, kc, 6},
	}
	for _, a := range adds {
		if err := Add(w, a.e, a.k, intPtr(a.v)); err != nil {
			t.Fatal(err)
		}
	}

	var res []Entity
	ForEach3(w, ka, kb, kc, func(e Entity, a, b, c *int) {
		res = append(res, e)
		if *a+*b+*c != 10 {
			t.Fatalf("unexpected values %d %d %d", *a, *b, *c)
		}
	})
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("expected no entity in empty world")
	}
	CreateEntity(w)
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	got, ok := First(w, h.Kind())
	if !ok || got != e {
		t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
	}
}

func TestSolidTiles(t *testing.T) {
	w := NewWorld()
	if w.SolidTiles() == nil || w.SolidTiles().Len() != 0 {
		t.Fatalf("new world should own an empty solid set")
	}

	s := grid.NewSolidSet()
	s.Add(grid.Cell{X: 1, Y: 2})
	w.SetSolidTiles(s)
	if !w.SolidTiles().IsSolid(grid.Cell{X: 1, Y: 2}) {
		t.Fatalf("expected attached solid set to be used")
	}

	w.SetSolidTiles(nil)
	if w.SolidTiles() == nil {
		t.Fatalf("nil solid set should be replaced by an empty one")
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World, dt float64) {
	*s.log = append(*s.log, s.name)
	w.Events().Push(Event{Type: EventWaveSpawned})
}

func TestSchedulerOrderAndEventFlush(t *testing.T) {
	w := NewWorld()
	var log []string
	sched := NewScheduler(recordSystem{"plan", &log}, nil, recordSystem{"move", &log})
	sched.Add(recordSystem{"cleanup", &log})

	sched.Update(w, 1.0/60)

	want := []string{"plan", "move", "cleanup"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if n := len(w.Events().Peek()); n != 0 {
		t.Fatalf("expected events flushed after tick, got %d", n)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventEnemyKilled})
	q.Push(Event{Type: EventGemCollected})

	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventEnemyKilled {
		t.Fatalf("unexpected drain result %v", got)
	}
	if q.Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if got := e.String(); got != "1.0" {
		t.Fatalf("expected 1.0, got %s", got)
	}
	DestroyEntity(w, e)
	again := CreateEntity(w)
	if got := again.String(); got != "1.1" {
		t.Fatalf("expected 1.1, got %s", got)
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity must not be valid")
	}
}
