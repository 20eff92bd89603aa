package levels

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/grid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const smallMap = `{
  "width": 3,
  "height": 2,
  "tileMapping": [
    {"id": 1, "assetName": "grass_01"},
    {"id": 2, "assetName": "water_deep"},
    {"id": 3, "assetName": "rock", "solid": true},
    {"id": 4, "assetName": "wall"}
  ],
  "layers": [
    {"name": "ground", "zLevel": 0, "data": [1, 2, 3, 1, 9, 1]},
    {"name": "upper", "zLevel": 1, "data": [0, 0, 0, 4, 0, 0]}
  ],
  "triggers": [
    {"id": "door", "position": {"X": 2, "Y": 1, "Z": 0}, "targetMap": "crypt", "targetPosition": {"x": 1, "y": 1, "z": 0}}
  ]
}`

func TestParse(t *testing.T) {
	lvl, err := Parse([]byte(smallMap))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(lvl.Triggers) != 1 {
		t.Fatalf("expected 1 trigger, got %d", len(lvl.Triggers))
	}
	tr := lvl.Triggers[0]
	if tr.Radius != DefaultTriggerRadius {
		t.Fatalf("expected default radius, got %v", tr.Radius)
	}
	if tr.Position != common.V3(2, 1, 0) || tr.TargetPosition != common.V3(1, 1, 0) {
		t.Fatalf("unexpected trigger positions %+v", tr)
	}

	tiles, unknown := lvl.Tiles()
	if len(tiles) != 6 {
		t.Fatalf("expected 6 tiles, got %d", len(tiles))
	}
	if len(unknown) != 1 || unknown[0].ID != 9 || unknown[0].Cell != (grid.Cell{X: 1, Y: 1}) {
		t.Fatalf("unexpected unknown tiles %+v", unknown)
	}

	want := map[grid.Cell]bool{
		{X: 1, Y: 0}:       true, // water on ground
		{X: 2, Y: 0}:       true, // flagged solid
		{X: 0, Y: 1, Z: 1}: true, // above ground
	}
	got := lvl.SolidCells()
	if len(got) != len(want) {
		t.Fatalf("expected %d solid cells, got %v", len(want), got)
	}
	for _, c := range got {
		if !want[c] {
			t.Fatalf("unexpected solid cell %v", c)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad_json", `{"width": 3,`, "unmarshal level"},
		{"zero_size", `{"width": 0, "height": 4}`, "invalid level dimensions"},
		{"duplicate_ids", `{"width": 1, "height": 1, "tileMapping": [{"id": 1}, {"id": 1}]}`, "duplicate tile mapping id 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestIsSolidTile(t *testing.T) {
	tests := []struct {
		name string
		m    TileMapping
		z    int
		want bool
	}{
		{"grass_ground", TileMapping{AssetName: "grass_01"}, 0, false},
		{"water_ground", TileMapping{AssetName: "water_still"}, 0, true},
		{"flag", TileMapping{AssetName: "crate", Solid: true}, 0, true},
		{"any_upper", TileMapping{AssetName: "grass_01"}, 1, true},
		{"water_below_ground", TileMapping{AssetName: "water_still"}, -1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSolidTile(tc.m, tc.z); got != tc.want {
				t.Fatalf("IsSolidTile = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEmbeddedLevels(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) < 2 {
		t.Fatalf("expected embedded maps, got %v", names)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevel(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			solids := grid.NewSolidSet()
			solids.Replace(lvl.SolidCells())
			if solids.IsSolid(grid.CellOf(lvl.Spawn)) {
				t.Fatalf("spawn %v is solid", lvl.Spawn)
			}
			for _, tr := range lvl.Triggers {
				if _, err := LoadLevel(tr.TargetMap); err != nil {
					t.Fatalf("trigger %s targets missing map: %v", tr.ID, err)
				}
			}
		})
	}
}

func TestLoadLevelMissing(t *testing.T) {
	_, err := LoadLevel("does_not_exist")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"arena", "arena.json"},
		{"arena.json", "arena.json"},
		{"levels/crypt.json", "crypt.json"},
	}
	for _, tc := range tests {
		if got := FileName(tc.in); got != tc.want {
			t.Fatalf("FileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestManagerLoadUnload(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := NewManager(zap.New(core))
	w := ecs.NewWorld()

	lvl, err := Parse([]byte(smallMap))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Install(w, "small", lvl); err != nil {
		t.Fatalf("install: %v", err)
	}
	if m.Name() != "small" || m.Current() != lvl {
		t.Fatalf("manager did not record the map")
	}
	if w.SolidTiles().Len() != 3 {
		t.Fatalf("expected 3 solid tiles, got %d", w.SolidTiles().Len())
	}
	if logs.FilterMessage("unknown tile id").Len() != 1 {
		t.Fatalf("expected unknown tile warning, got %v", logs.All())
	}
	if n := ecs.Count(w, component.TriggerComponent.Kind()); n != 1 {
		t.Fatalf("expected 1 trigger entity, got %d", n)
	}

	// Loading another map replaces the previous one entirely.
	if err := m.Load(w, "crypt"); err != nil {
		t.Fatalf("load crypt: %v", err)
	}
	if w.SolidTiles().IsSolid(grid.Cell{X: 2, Y: 0}) {
		t.Fatalf("solid tile of the previous map survived")
	}
	triggers := 0
	ecs.ForEach(w, component.TriggerComponent.Kind(), func(_ ecs.Entity, tr *component.Trigger) {
		triggers++
		if tr.ID == "door" {
			t.Fatalf("trigger of the previous map survived")
		}
	})
	if triggers != len(m.Triggers()) {
		t.Fatalf("expected %d trigger entities, got %d", len(m.Triggers()), triggers)
	}

	m.Unload(w)
	if w.SolidTiles().Len() != 0 || m.Current() != nil || m.Triggers() != nil {
		t.Fatalf("unload left state behind")
	}
	if ecs.Count(w, component.TriggerComponent.Kind()) != 0 {
		t.Fatalf("unload left trigger entities")
	}
}

func TestManagerLoadFailureKeepsMap(t *testing.T) {
	m := NewManager(nil)
	w := ecs.NewWorld()
	if err := m.Load(w, "arena"); err != nil {
		t.Fatalf("load arena: %v", err)
	}
	before := m.Current()
	solids := w.SolidTiles().Len()
	triggers := ecs.Count(w, component.TriggerComponent.Kind())

	tests := []struct {
		name string
		target string
	}{
		{name: "missing", target: "no_such_map"},
		{name: "empty name", target: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := m.Load(w, tc.target); err == nil {
				t.Fatalf("expected error")
			}
			if m.Current() != before || m.Name() != "arena" {
				t.Fatalf("failed load replaced the map: %q", m.Name())
			}
			if got := w.SolidTiles().Len(); got != solids {
				t.Fatalf("expected %d solid tiles, got %d", solids, got)
			}
			if got := ecs.Count(w, component.TriggerComponent.Kind()); got != triggers {
				t.Fatalf("expected %d trigger entities, got %d", triggers, got)
			}
		})
	}

	if err := m.Load(w, ""); !errors.Is(err, errEmptyName) {
		t.Fatalf("expected errEmptyName, got %v", err)
	}
}
