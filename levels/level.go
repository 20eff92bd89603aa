package levels

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/grid"
)

// DefaultTriggerRadius applies to triggers that leave radius unset.
const DefaultTriggerRadius = 0.5

// Level is a map file: stacked layers of tile ids plus level triggers.
type Level struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Spawn       common.Vec3   `json:"spawn"`
	TileMapping []TileMapping `json:"tileMapping"`
	Layers      []Layer       `json:"layers"`
	Triggers    []Trigger     `json:"triggers,omitempty"`

	tiles map[int]TileMapping
}

type TileMapping struct {
	ID        int    `json:"id"`
	AssetName string `json:"assetName"`
	Solid     bool   `json:"solid"`
}

// Layer holds one Z slice. Data is row-major, index = y*width + x, and id 0
// is an empty cell.
type Layer struct {
	Name   string `json:"name"`
	ZLevel int    `json:"zLevel"`
	Data   []int  `json:"data"`
}

type Trigger struct {
	ID             string      `json:"id"`
	Position       common.Vec3 `json:"position"`
	TargetMap      string      `json:"targetMap"`
	TargetPosition common.Vec3 `json:"targetPosition"`
	Radius         float64     `json:"radius"`
}

// Tile is a non-empty cell of a layer.
type Tile struct {
	Cell  grid.Cell
	Asset string
	Solid bool
}

// Parse decodes and validates a map. Duplicate tile mapping ids are an
// error; unknown ids in layers are reported by Tiles.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}

	lvl.tiles = make(map[int]TileMapping, len(lvl.TileMapping))
	for _, m := range lvl.TileMapping {
		if _, dup := lvl.tiles[m.ID]; dup {
			return nil, fmt.Errorf("duplicate tile mapping id %d", m.ID)
		}
		lvl.tiles[m.ID] = m
	}

	for i := range lvl.Triggers {
		if lvl.Triggers[i].Radius <= 0 {
			lvl.Triggers[i].Radius = DefaultTriggerRadius
		}
	}
	return &lvl, nil
}

// Mapping looks up a tile id.
func (l *Level) Mapping(id int) (TileMapping, bool) {
	m, ok := l.tiles[id]
	return m, ok
}

// IsSolidTile applies the blocking rules: an explicit solid flag, any tile
// above the ground layer, or ground water.
func IsSolidTile(m TileMapping, z int) bool {
	switch {
	case m.Solid:
		return true
	case z > 0:
		return true
	case z == 0 && strings.Contains(m.AssetName, "water_"):
		return true
	}
	return false
}

// Tiles expands every layer into cells. Ids missing from the tile mapping
// are skipped and returned separately so the caller can report them.
func (l *Level) Tiles() (tiles []Tile, unknown []UnknownTile) {
	for _, layer := range l.Layers {
		for i, id := range layer.Data {
			if id == 0 {
				continue
			}
			cell := grid.Cell{X: i % l.Width, Y: i / l.Width, Z: layer.ZLevel}
			m, ok := l.tiles[id]
			if !ok {
				unknown = append(unknown, UnknownTile{Layer: layer.Name, Cell: cell, ID: id})
				continue
			}
			tiles = append(tiles, Tile{Cell: cell, Asset: m.AssetName, Solid: IsSolidTile(m, layer.ZLevel)})
		}
	}
	return tiles, unknown
}

type UnknownTile struct {
	Layer string
	Cell  grid.Cell
	ID    int
}

// SolidCells returns the blocking cells of the map.
func (l *Level) SolidCells() []grid.Cell {
	tiles, _ := l.Tiles()
	cells := make([]grid.Cell, 0, len(tiles))
	for _, t := range tiles {
		if t.Solid {
			cells = append(cells, t.Cell)
		}
	}
	return cells
}

// Contains reports whether a planar position lies within the map rectangle.
func (l *Level) Contains(p common.Vec3) bool {
	return p.X >= -0.5 && p.Y >= -0.5 && p.X < float64(l.Width)-0.5 && p.Y < float64(l.Height)-0.5
}
