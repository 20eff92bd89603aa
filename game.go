package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/config"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/ecs/entity"
	"github.com/milk9111/isometric/ecs/system"
	"github.com/milk9111/isometric/levels"
	"github.com/milk9111/isometric/prefabs"
	"github.com/milk9111/isometric/waves"
	"go.uber.org/zap"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	debug bool

	catalog *entity.Catalog
	script  *waves.Script
	watcher *prefabs.Watcher
	cam     *camera

	world   *ecs.World
	sched   *ecs.Scheduler
	levels  *levels.Manager
	spawner *system.SpawnSystem
	score   *system.ScoreSystem
	player  ecs.Entity

	tiles    []levels.Tile
	tilesFor *levels.Level

	// loadLevel parses maps for level changes and reloads.
	loadLevel func(name string) (*levels.Level, error)

	frames int
	runs   int
}

func NewGame(cfg *config.Config, log *zap.Logger, debug bool) (*Game, error) {
	cat, err := entity.LoadCatalog()
	if err != nil {
		return nil, err
	}
	cat.Nav = entity.NavDefaults{
		RepathInterval: cfg.Pathfinding.RepathInterval,
		NodeReached:    cfg.Pathfinding.NodeReached,
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		debug:   debug,
		catalog:   cat,
		cam:       newCamera(baseWidth, baseHeight),
		loadLevel: levels.LoadLevel,
	}

	script, err := waves.Load(waves.DefaultScript)
	if err != nil {
		log.Warn("wave script unavailable, using fixed waves", zap.Error(err))
	} else {
		g.script = script
	}

	if cfg.Game.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"), levels.Dir)
		if err != nil {
			log.Warn("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}

	if err := g.start(cfg.Game.StartMap); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

// start builds a fresh world on the named map with a new player at its
// spawn point.
func (g *Game) start(mapName string) error {
	g.runs++
	seed := g.cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed + int64(g.runs) - 1))

	world := ecs.NewWorld()
	mgr := levels.NewManager(g.log)
	if err := mgr.Load(world, mapName); err != nil {
		return err
	}

	player, err := entity.NewPlayer(world, g.catalog, mgr.Current().Spawn)
	if err != nil {
		return err
	}

	var planner system.WavePlanner
	if g.script != nil {
		planner = g.script
	}
	g.spawner = system.NewSpawnSystem(g.catalog, planner, mgr, rng, g.log)
	g.score = system.NewScoreSystem(g.log)

	g.sched = ecs.NewScheduler(
		system.NewInputSystem(g.cam),
		system.NewPlayerControllerSystem(),
		system.NewPathfindingSystem(g.cfg.Pathfinding.MaxNodes, g.cfg.Pathfinding.Margin),
		system.NewWeaponSystem(g.catalog, rng, g.log),
		system.NewFacingSystem(),
		system.NewMovementSystem(),
		system.NewBulletSystem(mgr),
		system.NewCombatSystem(g.catalog, g.log),
		system.NewPickupSystem(),
		system.NewTriggerSystem(),
		g.spawner,
		system.NewTTLSystem(),
		g.score,
		system.NewCleanupSystem(),
	)

	g.world, g.levels, g.player = world, mgr, player
	g.cam.snap(mgr.Current().Spawn)
	g.log.Info("game started", zap.String("map", mapName), zap.Int64("seed", seed))
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.drainWatcher()

	dt := g.cfg.Game.SpeedMultiplier / float64(ebiten.TPS())
	g.sched.Update(g.world, dt)

	if err := g.afterTick(); err != nil {
		return err
	}

	if tr, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		g.cam.follow(tr.Position, 0.1)
	}
	return nil
}

// afterTick applies a queued level change and restarts the run once the
// player is gone.
func (g *Game) afterTick() error {
	if err := g.changeLevel(); err != nil {
		g.log.Error("level change failed, keeping current map", zap.Error(err))
	}

	if ecs.IsAlive(g.world, g.player) {
		return nil
	}
	g.log.Info("run over",
		zap.Int("wave", g.score.LastWave),
		zap.Int("kills", g.score.Kills),
		zap.Int("gems", g.score.Gems),
	)
	if err := g.start(g.cfg.Game.StartMap); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	return nil
}

func (g *Game) parseLevel(name string) (*levels.Level, error) {
	if g.loadLevel == nil {
		return levels.LoadLevel(name)
	}
	return g.loadLevel(name)
}

// changeLevel swaps maps when the trigger system queued a request on the
// player. Enemies, bullets and gems do not follow. A target that fails to
// parse leaves the world untouched.
func (g *Game) changeLevel() error {
	req, ok := ecs.Get(g.world, g.player, component.LevelChangeRequestComponent.Kind())
	if !ok {
		return nil
	}
	target := *req
	ecs.Remove(g.world, g.player, component.LevelChangeRequestComponent.Kind())

	lvl, err := g.parseLevel(target.TargetMap)
	if err != nil {
		return fmt.Errorf("load %q from trigger %q: %w", target.TargetMap, target.FromTrigger, err)
	}

	removed := entity.ClearDynamic(g.world)
	if err := g.levels.Install(g.world, levels.NameOf(target.TargetMap), lvl); err != nil {
		return err
	}
	if tr, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		tr.Position = target.TargetPosition
	}
	if v, ok := ecs.Get(g.world, g.player, component.VelocityComponent.Kind()); ok {
		v.Value = cp.Vector{}
	}
	g.spawner.RepeatWave()
	g.cam.snap(target.TargetPosition)

	g.log.Info("level changed",
		zap.String("map", target.TargetMap),
		zap.String("trigger", target.FromTrigger),
		zap.Int("cleared", removed),
	)
	return nil
}

// drainWatcher applies queued file changes between ticks.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("watcher error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	log := g.log.With(zap.String("file", change.Path))
	switch change.Kind {
	case prefabs.KindSpec:
		if err := g.catalog.Reload(); err != nil {
			log.Warn("prefab reload failed", zap.Error(err))
			return
		}
		log.Info("prefabs reloaded")
	case prefabs.KindScript:
		script, err := waves.Load(waves.DefaultScript)
		if err != nil {
			log.Warn("wave script reload failed", zap.Error(err))
			return
		}
		g.script = script
		g.spawner.Waves = script
		log.Info("wave script reloaded")
	case prefabs.KindLevel:
		name := g.levels.Name()
		if levels.NameOf(change.Path) != name {
			return
		}
		lvl, err := g.parseLevel(name)
		if err != nil {
			log.Warn("map reload failed, keeping current map", zap.Error(err))
			return
		}
		if err := g.levels.Install(g.world, name, lvl); err != nil {
			log.Error("map install failed", zap.Error(err))
			return
		}
		log.Info("map reloaded")
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
