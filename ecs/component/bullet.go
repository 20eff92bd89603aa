package component

import "github.com/jakecoffman/cp"

type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionEnemy {
		return "enemy"
	}
	return "player"
}

// Bullet flies in a straight line and dies on the first solid tile. It is
// moved by BulletSystem, not by the sliding movement integration.
type Bullet struct {
	Owner      Faction
	Damage     int
	Radius     float64
	HalfExtent float64
	Velocity   cp.Vector
}

var BulletComponent = NewComponent[Bullet]()
