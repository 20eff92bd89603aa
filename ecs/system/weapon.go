package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/ecs/entity"
	"go.uber.org/zap"
)

// enemyShotOdds is the 1-in-N chance per tick that an enemy of weight 1
// fires. Heavier enemies roll more often with better odds.
const enemyShotOdds = 500

// WeaponSystem fires bullets for the player (on input, rate limited) and for
// enemies (at random, toward the player).
type WeaponSystem struct {
	Catalog *entity.Catalog
	Rand    *rand.Rand
	Log     *zap.Logger
}

func NewWeaponSystem(cat *entity.Catalog, rng *rand.Rand, log *zap.Logger) *WeaponSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &WeaponSystem{Catalog: cat, Rand: rng, Log: log}
}

func (s *WeaponSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.Catalog == nil {
		return
	}
	s.playerShots(w, dt)
	s.enemyShots(w)
}

func (s *WeaponSystem) playerShots(w *ecs.World, dt float64) {
	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, tr *component.Transform) {
			if p.ShotCooldown > 0 {
				p.ShotCooldown -= dt
			}
			if !in.Fire || p.ShotCooldown > 0 || !isActive(w, e) {
				return
			}
			dir := in.Aim
			if dir.LengthSq() == 0 {
				dir = p.LastDir
			}
			if dir.LengthSq() == 0 {
				dir = isoDown
			}
			if _, err := entity.NewBullet(w, s.Catalog, component.FactionPlayer, tr.Position, dir, p.BulletSpeed); err != nil {
				s.Log.Error("player shot failed", zap.Error(err))
				return
			}
			p.ShotCooldown = p.ShotDelay
		},
	)
}

func (s *WeaponSystem) enemyShots(w *ecs.World) {
	if s.Rand == nil {
		return
	}
	_, player, ok := findPlayer(w)
	if !ok {
		return
	}
	target := player.Position

	ecs.ForEach2(w, component.AIComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ai *component.AI, tr *component.Transform) {
		if !isActive(w, e) {
			return
		}
		weight := max(ai.Weight, 1)
		odds := max(enemyShotOdds/weight, 1)
		for range weight {
			if s.Rand.Intn(odds) >= 1 {
				continue
			}
			dir := common.Direction(tr.Position, target)
			if dir == (cp.Vector{}) {
				return
			}
			if _, err := entity.NewBullet(w, s.Catalog, component.FactionEnemy, tr.Position, dir, ai.BulletSpeed); err != nil {
				s.Log.Error("enemy shot failed", zap.Error(err))
				return
			}
		}
	})
}
