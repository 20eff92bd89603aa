package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/grid"
)

// DefaultHalfExtent is the collider half size shared by the player and
// enemies.
const DefaultHalfExtent = 0.35

// Corners returns the cells under the four corners of a square collider
// centered on pos, on pos' layer.
func Corners(pos common.Vec3, halfExtent float64) [4]grid.Cell {
	bb := cp.NewBBForExtents(pos.XY(), halfExtent, halfExtent)
	z := int(math.Round(pos.Z))
	cell := func(x, y float64) grid.Cell {
		return grid.Cell{X: int(math.Round(x)), Y: int(math.Round(y)), Z: z}
	}
	return [4]grid.Cell{
		cell(bb.L, bb.B),
		cell(bb.R, bb.B),
		cell(bb.L, bb.T),
		cell(bb.R, bb.T),
	}
}

// IsBlockedAt reports whether a collider at pos overlaps a solid cell on its
// own layer or on the layer above it. The layer above blocks walking under
// overhanging tiles.
func IsBlockedAt(q grid.Querier, pos common.Vec3, halfExtent float64) bool {
	if q == nil {
		return false
	}
	for _, c := range Corners(pos, halfExtent) {
		if q.IsSolid(c) || q.IsSolid(c.Above()) {
			return true
		}
	}
	return false
}

// Resolve clamps displacement per axis. The X and Y moves are tested
// independently from pos so a blocked axis does not stop sliding along the
// other one.
func Resolve(q grid.Querier, pos common.Vec3, displacement cp.Vector, halfExtent float64) cp.Vector {
	out := displacement
	if displacement.X != 0 && IsBlockedAt(q, pos.Offset(cp.Vector{X: displacement.X}), halfExtent) {
		out.X = 0
	}
	if displacement.Y != 0 && IsBlockedAt(q, pos.Offset(cp.Vector{Y: displacement.Y}), halfExtent) {
		out.Y = 0
	}
	return out
}

// Step integrates velocity over dt against q and returns the new position
// and the velocity that was actually applied.
func Step(q grid.Querier, pos common.Vec3, velocity cp.Vector, halfExtent, dt float64) (common.Vec3, cp.Vector) {
	if dt <= 0 {
		return pos, cp.Vector{}
	}
	moved := Resolve(q, pos, velocity.Mult(dt), halfExtent)
	return pos.Offset(moved), moved.Mult(1 / dt)
}
