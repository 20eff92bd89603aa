package system

import (
	"github.com/milk9111/isometric/ecs"
	"go.uber.org/zap"
)

// ScoreSystem drains the tick's events into running totals for the HUD.
type ScoreSystem struct {
	Kills    int
	Gems     int
	Hits     int
	LastWave int
	Log      *zap.Logger
}

func NewScoreSystem(log *zap.Logger) *ScoreSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScoreSystem{Log: log}
}

func (s *ScoreSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventEnemyKilled:
			s.Kills++
		case ecs.EventGemCollected:
			if v, ok := evt.Data.(int); ok {
				s.Gems += v
			}
		case ecs.EventPlayerHit:
			s.Hits++
			s.Log.Debug("player hit", zap.Any("health", evt.Data))
		case ecs.EventWaveSpawned:
			if ws, ok := evt.Data.(ecs.WaveSpawned); ok {
				s.LastWave = ws.Wave
			}
		}
	}
}
