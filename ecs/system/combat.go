package system

import (
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/ecs/entity"
	"go.uber.org/zap"
)

// DefaultPlayerHitRadius is the player's body radius for bullet and contact
// hits.
const DefaultPlayerHitRadius = 0.6

// CombatSystem resolves hits: player bullets against enemies, enemy bullets
// and enemy bodies against the player. Killed enemies drop a gem.
type CombatSystem struct {
	Catalog      *entity.Catalog
	PlayerRadius float64
	Log          *zap.Logger
}

func NewCombatSystem(cat *entity.Catalog, log *zap.Logger) *CombatSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CombatSystem{Catalog: cat, PlayerRadius: DefaultPlayerHitRadius, Log: log}
}

type liveBullet struct {
	e   ecs.Entity
	b   *component.Bullet
	pos common.Vec3
}

func (s *CombatSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		inv.Seconds -= dt
		if inv.Seconds <= 0 {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})

	var bullets []liveBullet
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, tr *component.Transform) {
		if isActive(w, e) {
			bullets = append(bullets, liveBullet{e: e, b: b, pos: tr.Position})
		}
	})

	s.hitEnemies(w, bullets)
	s.hitPlayer(w, bullets)
}

func (s *CombatSystem) hitEnemies(w *ecs.World, bullets []liveBullet) {
	ecs.ForEach3(w,
		component.AIComponent.Kind(),
		component.TransformComponent.Kind(),
		component.HealthComponent.Kind(),
		func(e ecs.Entity, ai *component.AI, tr *component.Transform, hp *component.Health) {
			for _, lb := range bullets {
				if !isActive(w, e) {
					return
				}
				if lb.b.Owner != component.FactionPlayer || !isActive(w, lb.e) {
					continue
				}
				if !within(tr.Position, lb.pos, ai.ContactRadius+lb.b.Radius) {
					continue
				}
				markDead(w, lb.e)
				hp.Current -= lb.b.Damage
				if hp.Current <= 0 {
					s.killEnemy(w, e, ai, tr.Position)
				}
			}
		},
	)
}

func (s *CombatSystem) killEnemy(w *ecs.World, e ecs.Entity, ai *component.AI, pos common.Vec3) {
	markDead(w, e)
	w.Events().Push(ecs.Event{Type: ecs.EventEnemyKilled, Data: ecs.EnemyKilled{Entity: e, Position: pos, Value: ai.GemValue}})
	if s.Catalog == nil || ai.GemValue <= 0 {
		return
	}
	if _, err := entity.NewGem(w, s.Catalog, pos, ai.GemValue); err != nil {
		s.Log.Error("gem drop failed", zap.Error(err))
	}
}

func (s *CombatSystem) hitPlayer(w *ecs.World, bullets []liveBullet) {
	pe, ptr, ok := findPlayer(w)
	if !ok {
		return
	}
	hp, ok := ecs.Get(w, pe, component.HealthComponent.Kind())
	if !ok {
		return
	}
	radius := s.PlayerRadius
	if radius <= 0 {
		radius = DefaultPlayerHitRadius
	}

	for _, lb := range bullets {
		if lb.b.Owner != component.FactionEnemy || !isActive(w, lb.e) {
			continue
		}
		if within(ptr.Position, lb.pos, radius+lb.b.Radius) {
			markDead(w, lb.e)
			s.hurtPlayer(w, pe, hp, lb.b.Damage)
		}
	}

	ecs.ForEach2(w, component.AIComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ai *component.AI, tr *component.Transform) {
		if !isActive(w, e) || !isActive(w, pe) {
			return
		}
		if within(ptr.Position, tr.Position, radius+ai.ContactRadius) {
			markDead(w, e)
			s.hurtPlayer(w, pe, hp, 1)
		}
	})
}

// hurtPlayer applies damage unless the player is invulnerable, then grants
// the post-hit invulnerability window.
func (s *CombatSystem) hurtPlayer(w *ecs.World, pe ecs.Entity, hp *component.Health, damage int) {
	if !isActive(w, pe) || ecs.Has(w, pe, component.InvulnerableComponent.Kind()) {
		return
	}
	hp.Current -= damage
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: hp.Current})
	if hp.Current <= 0 {
		markDead(w, pe)
		s.Log.Info("player died")
		return
	}
	if hp.InvulnerableFor > 0 {
		_ = ecs.Add(w, pe, component.InvulnerableComponent.Kind(), &component.Invulnerable{Seconds: hp.InvulnerableFor})
	}
}

func within(a, b common.Vec3, r float64) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy < r*r
}
