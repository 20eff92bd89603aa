package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/milk9111/isometric/common"
)

// Cell is an integer tile coordinate. It is comparable and used directly as
// a map key.
type Cell struct {
	X int
	Y int
	Z int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Above returns the cell one layer up.
func (c Cell) Above() Cell {
	return Cell{X: c.X, Y: c.Y, Z: c.Z + 1}
}

// Add offsets c on the ground plane.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy, Z: c.Z}
}

// Center returns the world position of the cell.
func (c Cell) Center() common.Vec3 {
	return common.Vec3{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}

// CellOf rounds each axis of p to the nearest integer, halves away from zero.
func CellOf(p common.Vec3) Cell {
	return Cell{
		X: int(math.Round(p.X)),
		Y: int(math.Round(p.Y)),
		Z: int(math.Round(p.Z)),
	}
}

// Querier answers "is this cell blocked". Absence means free.
type Querier interface {
	IsSolid(c Cell) bool
}

// Headroom blocks a cell when it or the cell above it is solid, matching
// what a collider standing on the cell would hit.
type Headroom struct {
	Querier
}

func (h Headroom) IsSolid(c Cell) bool {
	if h.Querier == nil {
		return false
	}
	return h.Querier.IsSolid(c) || h.Querier.IsSolid(c.Above())
}

// SolidSet is the set of blocking cells of the loaded map. It is rebuilt on
// map load/unload and only read during a tick.
type SolidSet struct {
	cells map[Cell]struct{}
}

func NewSolidSet() *SolidSet {
	return &SolidSet{cells: make(map[Cell]struct{}, 256)}
}

// IsSolid reports whether c blocks movement. A nil set blocks nothing.
func (s *SolidSet) IsSolid(c Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

func (s *SolidSet) Add(c Cell) {
	if s == nil {
		return
	}
	if s.cells == nil {
		s.cells = make(map[Cell]struct{}, 256)
	}
	s.cells[c] = struct{}{}
}

func (s *SolidSet) Remove(c Cell) {
	if s == nil {
		return
	}
	delete(s.cells, c)
}

// Clear drops every cell.
func (s *SolidSet) Clear() {
	if s == nil {
		return
	}
	clear(s.cells)
}

func (s *SolidSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Cells returns the solid cells sorted by Z, Y, X.
func (s *SolidSet) Cells() []Cell {
	if s == nil || len(s.cells) == 0 {
		return nil
	}
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// Replace swaps the contents of s for cells.
func (s *SolidSet) Replace(cells []Cell) {
	if s == nil {
		return
	}
	s.Clear()
	for _, c := range cells {
		s.Add(c)
	}
}
