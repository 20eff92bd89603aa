package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
)

const stickDeadzone = 0.2

// Viewport converts screen coordinates to the world grid.
type Viewport interface {
	ScreenToWorld(sx, sy, z float64) common.Vec3
	ScreenDirection(dx, dy float64) cp.Vector
}

// InputSystem polls keyboard, mouse and the first gamepad into every Input
// component.
type InputSystem struct {
	View Viewport
}

func NewInputSystem(view Viewport) *InputSystem {
	return &InputSystem{View: view}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	in := component.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Fire = true
		if _, ptr, ok := findPlayer(w); ok && i.View != nil {
			cx, cy := ebiten.CursorPosition()
			at := i.View.ScreenToWorld(float64(cx), float64(cy), ptr.Position.Z)
			in.Aim = common.Direction(ptr.Position, at)
		}
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		in.Left = in.Left || lx < -stickDeadzone
		in.Right = in.Right || lx > stickDeadzone
		in.Up = in.Up || ly < -stickDeadzone
		in.Down = in.Down || ly > stickDeadzone

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone && i.View != nil {
			in.Fire = true
			in.Aim = i.View.ScreenDirection(rx, ry)
		}
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}
