package common

import "github.com/jakecoffman/cp"

// Iso projects world positions onto the screen as 2:1 diamonds. Screen Y
// grows downward and each Z level lifts a tile by LayerH pixels.
type Iso struct {
	TileW  float64
	TileH  float64
	LayerH float64
}

func (p Iso) ToScreen(v Vec3) (x, y float64) {
	x = (v.X - v.Y) * p.TileW / 2
	y = (v.X+v.Y)*p.TileH/2 - v.Z*p.LayerH
	return x, y
}

// ToWorld inverts ToScreen for a point known to lie on layer z.
func (p Iso) ToWorld(sx, sy, z float64) Vec3 {
	if p.TileW == 0 || p.TileH == 0 {
		return Vec3{Z: z}
	}
	a := sx / (p.TileW / 2)
	b := (sy + z*p.LayerH) / (p.TileH / 2)
	return Vec3{X: (a + b) / 2, Y: (b - a) / 2, Z: z}
}

// Direction converts a screen-space direction to a unit world direction.
func (p Iso) Direction(dx, dy float64) cp.Vector {
	return Direction(p.ToWorld(0, 0, 0), p.ToWorld(dx, dy, 0))
}
