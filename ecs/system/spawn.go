package system

import (
	"math/rand"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/ecs/entity"
	"github.com/milk9111/isometric/grid"
	"github.com/milk9111/isometric/waves"
	"go.uber.org/zap"
)

const (
	DefaultSpawnAttempts    = 50
	DefaultSpawnMinDistance = 5.0
)

// WavePlanner decides how many enemies a wave has. *waves.Script satisfies
// it.
type WavePlanner interface {
	Plan(wave int) (waves.Plan, error)
}

// SpawnSystem starts the next wave once no enemy is left. Enemies appear on
// random free cells away from the player.
type SpawnSystem struct {
	Catalog     *entity.Catalog
	Waves       WavePlanner
	Level       LevelSource
	Rand        *rand.Rand
	Log         *zap.Logger
	Attempts    int
	MinDistance float64

	wave   int
	repeat bool
}

func NewSpawnSystem(cat *entity.Catalog, planner WavePlanner, level LevelSource, rng *rand.Rand, log *zap.Logger) *SpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &SpawnSystem{
		Catalog:     cat,
		Waves:       planner,
		Level:       level,
		Rand:        rng,
		Log:         log,
		Attempts:    DefaultSpawnAttempts,
		MinDistance: DefaultSpawnMinDistance,
	}
}

// Wave returns the number of the last spawned wave.
func (s *SpawnSystem) Wave() int {
	return s.wave
}

// RepeatWave makes the next spawn reuse the current wave number. Map
// changes use it so walking through a door does not count as clearing a
// wave.
func (s *SpawnSystem) RepeatWave() {
	s.repeat = true
}

func (s *SpawnSystem) Update(w *ecs.World, _ float64) {
	if w == nil || s.Catalog == nil || s.Rand == nil || s.Level == nil {
		return
	}
	lvl := s.Level.Current()
	if lvl == nil {
		return
	}
	if ecs.Count(w, component.EnemyTagComponent.Kind()) > 0 {
		return
	}
	_, ptr, ok := findPlayer(w)
	if !ok {
		return
	}
	playerPos := ptr.Position

	if !s.repeat || s.wave == 0 {
		s.wave++
	}
	s.repeat = false

	plan := s.plan()
	solids := w.SolidTiles()
	spawned := 0
	for range plan.Count {
		pos, ok := s.pickCell(lvl.Width, lvl.Height, solids, playerPos)
		if !ok {
			continue
		}
		if _, err := entity.NewEnemy(w, s.Catalog, pos, plan.SpeedScale); err != nil {
			s.Log.Error("spawn enemy failed", zap.Error(err))
			continue
		}
		spawned++
	}
	if spawned == 0 && plan.Count > 0 {
		s.repeat = true
		s.Log.Warn("no free cell for wave", zap.Int("wave", s.wave))
		return
	}

	w.Events().Push(ecs.Event{Type: ecs.EventWaveSpawned, Data: ecs.WaveSpawned{Wave: s.wave, Spawned: spawned}})
	s.Log.Info("wave spawned",
		zap.Int("wave", s.wave),
		zap.Int("planned", plan.Count),
		zap.Int("spawned", spawned),
		zap.Float64("speed_scale", plan.SpeedScale),
	)
}

func (s *SpawnSystem) plan() waves.Plan {
	if s.Waves == nil {
		return waves.Fixed(s.wave, waves.DefaultBaseCount)
	}
	plan, err := s.Waves.Plan(s.wave)
	if err != nil {
		s.Log.Warn("wave script failed, using fixed plan", zap.Int("wave", s.wave), zap.Error(err))
		return waves.Fixed(s.wave, waves.DefaultBaseCount)
	}
	return plan
}

// pickCell tries random cells on the player's layer. A cell qualifies when
// it and the cell above are free and it is far enough from the player.
func (s *SpawnSystem) pickCell(width, height int, solids grid.Querier, player common.Vec3) (common.Vec3, bool) {
	z := grid.CellOf(player).Z
	for range max(s.Attempts, 1) {
		c := grid.Cell{X: s.Rand.Intn(width), Y: s.Rand.Intn(height), Z: z}
		if solids.IsSolid(c) || solids.IsSolid(c.Above()) {
			continue
		}
		pos := c.Center()
		if common.PlanarDistance(pos, player) <= s.MinDistance {
			continue
		}
		return pos, true
	}
	return common.Vec3{}, false
}
