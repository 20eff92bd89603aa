package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Vec3 is a continuous world position. X and Y span the ground plane, Z is
// the tile layer the entity stands on.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// XY returns the planar part of v.
func (v Vec3) XY() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Offset moves v on the ground plane, keeping Z.
func (v Vec3) Offset(d cp.Vector) Vec3 {
	return Vec3{X: v.X + d.X, Y: v.Y + d.Y, Z: v.Z}
}

// PlanarDistance is the XY euclidean distance between a and b.
func PlanarDistance(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Direction returns the unit vector from a to b on the ground plane, or the
// zero vector when the two points coincide.
func Direction(a, b Vec3) cp.Vector {
	d := cp.Vector{X: b.X - a.X, Y: b.Y - a.Y}
	if d.LengthSq() == 0 {
		return cp.Vector{}
	}
	return d.Normalize()
}
