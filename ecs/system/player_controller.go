package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

// Screen directions expressed on the world grid.
var (
	isoUp    = cp.Vector{X: -1, Y: -1}
	isoDown  = cp.Vector{X: 1, Y: 1}
	isoLeft  = cp.Vector{X: -1, Y: 1}
	isoRight = cp.Vector{X: 1, Y: -1}
)

// MoveDirection maps held keys to a unit world direction. Opposing keys
// cancel out.
func MoveDirection(in component.Input) cp.Vector {
	var dir cp.Vector
	if in.Up {
		dir = dir.Add(isoUp)
	}
	if in.Down {
		dir = dir.Add(isoDown)
	}
	if in.Left {
		dir = dir.Add(isoLeft)
	}
	if in.Right {
		dir = dir.Add(isoRight)
	}
	if dir.LengthSq() == 0 {
		return cp.Vector{}
	}
	return dir.Normalize()
}

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, vel *component.Velocity) {
			if !isActive(w, e) {
				vel.Value = cp.Vector{}
				return
			}
			dir := MoveDirection(*in)
			vel.Value = dir.Mult(p.MoveSpeed)
			if dir.LengthSq() > 0 {
				p.LastDir = dir
			}
		},
	)
}
