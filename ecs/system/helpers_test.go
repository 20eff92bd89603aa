package system

import (
	"testing"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/ecs/entity"
	"github.com/milk9111/isometric/grid"
	"github.com/milk9111/isometric/levels"
	"github.com/milk9111/isometric/prefabs"
)

const tick = 1.0 / 60

func testCatalog() *entity.Catalog {
	return &entity.Catalog{
		Player: prefabs.PlayerSpec{
			MoveSpeed:   6,
			ShotDelay:   0.25,
			BulletSpeed: 10,
			Collider:    prefabs.ColliderSpec{HalfExtent: 0.35},
			Health:      prefabs.HealthSpec{Max: 3, Invulnerable: 1},
		},
		Enemy: prefabs.EnemySpec{
			MoveSpeed:     3,
			Weight:        1,
			BulletSpeed:   10,
			ContactRadius: 0.8,
			GemValue:      1,
			Collider:      prefabs.ColliderSpec{HalfExtent: 0.35},
			Health:        prefabs.HealthSpec{Max: 1},
		},
		Bullet: prefabs.BulletSpec{
			Damage:   1,
			Radius:   0.3,
			Lifetime: 5,
			Collider: prefabs.ColliderSpec{HalfExtent: 0.1},
		},
		Gem: prefabs.GemSpec{
			MagnetRadius:  3.5,
			CollectRadius: 0.5,
			Acceleration:  15,
			MaxSpeed:      400,
		},
	}
}

type levelStub struct {
	lvl *levels.Level
}

func (l levelStub) Current() *levels.Level {
	return l.lvl
}

func openLevel(w, h int) levelStub {
	return levelStub{lvl: &levels.Level{Width: w, Height: h}}
}

func newWorld(solid ...grid.Cell) *ecs.World {
	w := ecs.NewWorld()
	s := grid.NewSolidSet()
	for _, c := range solid {
		s.Add(c)
	}
	w.SetSolidTiles(s)
	return w
}

func spawnPlayer(t *testing.T, w *ecs.World, cat *entity.Catalog, pos common.Vec3) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, cat, pos)
	if err != nil {
		t.Fatalf("spawn player: %v", err)
	}
	return e
}

func spawnEnemy(t *testing.T, w *ecs.World, cat *entity.Catalog, pos common.Vec3) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(w, cat, pos, 1)
	if err != nil {
		t.Fatalf("spawn enemy: %v", err)
	}
	return e
}

func position(t *testing.T, w *ecs.World, e ecs.Entity) common.Vec3 {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr.Position
}

func velocity(t *testing.T, w *ecs.World, e ecs.Entity) *component.Velocity {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v
}

func isDead(w *ecs.World, e ecs.Entity) bool {
	return !ecs.IsAlive(w, e) || ecs.Has(w, e, component.DeadTagComponent.Kind())
}

func near(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
