package levels

import (
	"fmt"

	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/grid"
	"go.uber.org/zap"
)

// Manager owns the currently loaded map. Loading replaces the world's solid
// tiles and trigger entities; it must only be called between ticks.
type Manager struct {
	log     *zap.Logger
	name    string
	current *Level
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{log: log}
}

// Load parses name and replaces the current map with it. A map that fails
// to read or parse leaves the current one installed.
func (m *Manager) Load(w *ecs.World, name string) error {
	if name == "" {
		return errEmptyName
	}
	lvl, err := LoadLevel(name)
	if err != nil {
		m.log.Error("level load failed", zap.String("level", name), zap.Error(err))
		return err
	}
	return m.Install(w, NameOf(name), lvl)
}

// Install loads an already parsed map.
func (m *Manager) Install(w *ecs.World, name string, lvl *Level) error {
	m.Unload(w)
	return m.install(w, name, lvl)
}

func (m *Manager) install(w *ecs.World, name string, lvl *Level) error {
	tiles, unknown := lvl.Tiles()
	for _, u := range unknown {
		m.log.Warn("unknown tile id",
			zap.String("level", name),
			zap.String("layer", u.Layer),
			zap.Int("id", u.ID),
			zap.Stringer("cell", u.Cell),
		)
	}

	solids := grid.NewSolidSet()
	for _, t := range tiles {
		if t.Solid {
			solids.Add(t.Cell)
		}
	}
	w.SetSolidTiles(solids)

	for _, tr := range lvl.Triggers {
		if err := spawnTrigger(w, tr); err != nil {
			m.Unload(w)
			return fmt.Errorf("level %s: trigger %q: %w", name, tr.ID, err)
		}
	}

	m.name = name
	m.current = lvl
	m.log.Info("level loaded",
		zap.String("level", name),
		zap.Int("tiles", len(tiles)),
		zap.Int("solid", solids.Len()),
		zap.Int("triggers", len(lvl.Triggers)),
	)
	return nil
}

// Unload clears the solid tiles and destroys every map-owned entity.
func (m *Manager) Unload(w *ecs.World) {
	if w != nil {
		if s := w.SolidTiles(); s != nil {
			s.Clear()
		}
		ecs.ForEach(w, component.LevelTagComponent.Kind(), func(e ecs.Entity, _ *component.LevelTag) {
			ecs.DestroyEntity(w, e)
		})
	}
	if m.current != nil {
		m.log.Debug("level unloaded", zap.String("level", m.name))
	}
	m.name = ""
	m.current = nil
}

// Name returns the loaded map name, or "" when none is loaded.
func (m *Manager) Name() string {
	return m.name
}

// Current returns the loaded map, or nil.
func (m *Manager) Current() *Level {
	return m.current
}

// Triggers returns the loaded map's triggers.
func (m *Manager) Triggers() []Trigger {
	if m.current == nil {
		return nil
	}
	return m.current.Triggers
}

func spawnTrigger(w *ecs.World, tr Trigger) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		ID:             tr.ID,
		TargetMap:      tr.TargetMap,
		TargetPosition: tr.TargetPosition,
		Radius:         tr.Radius,
	}); err != nil {
		return fmt.Errorf("add trigger: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: tr.Position}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.LevelTagComponent.Kind(), &component.LevelTag{}); err != nil {
		return fmt.Errorf("add level tag: %w", err)
	}
	return nil
}
