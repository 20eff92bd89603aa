package main

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/ecs"
	"github.com/milk9111/isometric/ecs/component"
	"github.com/milk9111/isometric/levels"
	"github.com/milk9111/isometric/prefabs"
	"golang.org/x/image/colornames"
)

var defaultIso = common.Iso{TileW: 64, TileH: 32, LayerH: 16}

// camera keeps the followed point at the centre of the screen.
type camera struct {
	iso  common.Iso
	w, h float64
	x, y float64
}

func newCamera(w, h float64) *camera {
	return &camera{iso: defaultIso, w: w, h: h}
}

func (c *camera) snap(p common.Vec3) {
	c.x, c.y = c.iso.ToScreen(p)
}

func (c *camera) follow(p common.Vec3, t float64) {
	tx, ty := c.iso.ToScreen(p)
	c.x = common.Lerp(c.x, tx, t)
	c.y = common.Lerp(c.y, ty, t)
}

func (c *camera) project(p common.Vec3) (float32, float32) {
	sx, sy := c.iso.ToScreen(p)
	return float32(sx - c.x + c.w/2), float32(sy - c.y + c.h/2)
}

func (c *camera) ScreenToWorld(sx, sy, z float64) common.Vec3 {
	return c.iso.ToWorld(sx+c.x-c.w/2, sy+c.y-c.h/2, z)
}

func (c *camera) ScreenDirection(dx, dy float64) cp.Vector {
	return c.iso.Direction(dx, dy)
}

// pixels converts a world distance to screen pixels along the X axis.
func (c *camera) pixels(d float64) float32 {
	return float32(d * c.iso.TileW / 2)
}

func tileColor(asset string) color.Color {
	switch asset {
	case "grass_01":
		return colornames.Forestgreen
	case "water_still":
		return colornames.Steelblue
	case "stone_wall":
		return colornames.Slategray
	case "stone_floor":
		return colornames.Darkgray
	case "crate":
		return colornames.Saddlebrown
	}
	return colornames.Dimgray
}

func debugColor(spec prefabs.DebugSpec, fallback color.Color) color.Color {
	if spec.Color == nil || spec.Color.Color == nil {
		return fallback
	}
	return spec.Color.Color
}

// sortedTiles orders tiles back to front.
func sortedTiles(lvl *levels.Level) []levels.Tile {
	tiles, _ := lvl.Tiles()
	slices.SortFunc(tiles, func(a, b levels.Tile) int {
		if c := cmp.Compare(a.Cell.Z, b.Cell.Z); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Cell.X+a.Cell.Y, b.Cell.X+b.Cell.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.Cell.X, b.Cell.X)
	})
	return tiles
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	if lvl := g.levels.Current(); lvl != nil {
		if g.tilesFor != lvl {
			g.tiles, g.tilesFor = sortedTiles(lvl), lvl
		}
		for _, t := range g.tiles {
			g.drawTile(screen, t)
		}
	}

	g.drawTriggers(screen)
	g.drawBodies(screen)
	g.drawBullets(screen)
	if g.debug {
		g.drawPaths(screen)
		g.drawColliders(screen)
	}
	g.drawHUD(screen)
}

func (g *Game) diamond(screen *ebiten.Image, center common.Vec3, half float64, width float32, clr color.Color) {
	pts := [4]common.Vec3{
		{X: center.X - half, Y: center.Y - half, Z: center.Z},
		{X: center.X + half, Y: center.Y - half, Z: center.Z},
		{X: center.X + half, Y: center.Y + half, Z: center.Z},
		{X: center.X - half, Y: center.Y + half, Z: center.Z},
	}
	for i := range pts {
		x0, y0 := g.cam.project(pts[i])
		x1, y1 := g.cam.project(pts[(i+1)%len(pts)])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

func (g *Game) drawTile(screen *ebiten.Image, t levels.Tile) {
	clr := tileColor(t.Asset)
	center := t.Cell.Center()
	g.diamond(screen, center, 0.5, 1, clr)
	if !t.Solid {
		return
	}
	// Raised block: a second outline one layer up joined by vertical edges.
	top := center
	top.Z++
	g.diamond(screen, top, 0.5, 1, clr)
	for _, d := range []cp.Vector{{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}} {
		x0, y0 := g.cam.project(center.Offset(d))
		x1, y1 := g.cam.project(top.Offset(d))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, true)
	}
}

func (g *Game) drawTriggers(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.TriggerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tr *component.Trigger, t *component.Transform) {
		x, y := g.cam.project(t.Position)
		vector.StrokeCircle(screen, x, y, g.cam.pixels(tr.Radius), 2, colornames.Violet, true)
	})
}

type sprite struct {
	pos    common.Vec3
	radius float64
	clr    color.Color
}

// drawBodies draws the player, enemies and gems back to front.
func (g *Game) drawBodies(screen *ebiten.Image) {
	var sprites []sprite

	playerClr := debugColor(g.catalog.Player.Debug, colornames.Limegreen)
	ecs.ForEach2(g.world, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		if inv, ok := ecs.Get(g.world, e, component.InvulnerableComponent.Kind()); ok && int(inv.Seconds*10)%2 == 0 {
			return
		}
		sprites = append(sprites, sprite{pos: t.Position, radius: 0.35, clr: playerClr})
	})

	enemyClr := debugColor(g.catalog.Enemy.Debug, colornames.Crimson)
	ecs.ForEach2(g.world, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.EnemyTag, t *component.Transform) {
		sprites = append(sprites, sprite{pos: t.Position, radius: 0.35, clr: enemyClr})
	})

	gemClr := debugColor(g.catalog.Gem.Debug, colornames.Gold)
	ecs.ForEach2(g.world, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Pickup, t *component.Transform) {
		sprites = append(sprites, sprite{pos: t.Position, radius: 0.15, clr: gemClr})
	})

	slices.SortFunc(sprites, func(a, b sprite) int {
		if c := cmp.Compare(a.pos.Z, b.pos.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.pos.X+a.pos.Y, b.pos.X+b.pos.Y)
	})
	for _, s := range sprites {
		x, y := g.cam.project(s.pos)
		r := g.cam.pixels(s.radius)
		vector.DrawFilledCircle(screen, x, y-r, r, s.clr, true)
	}
}

func (g *Game) drawBullets(screen *ebiten.Image) {
	playerClr := debugColor(g.catalog.Bullet.Debug, colornames.White)
	ecs.ForEach2(g.world, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Bullet, t *component.Transform) {
		clr := playerClr
		if b.Owner == component.FactionEnemy {
			clr = colornames.Orangered
		}
		x, y := g.cam.project(t.Position)
		vector.DrawFilledCircle(screen, x, y, g.cam.pixels(b.Radius)/2, clr, true)
	})
}

func (g *Game) drawPaths(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.PathfindingComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pf *component.Pathfinding, t *component.Transform) {
		if pf.Nav == nil {
			return
		}
		x0, y0 := g.cam.project(t.Position)
		for _, c := range pf.Nav.Path() {
			x1, y1 := g.cam.project(c.Center())
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Yellow, true)
			x0, y0 = x1, y1
		}
	})
}

func (g *Game) drawColliders(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
		g.diamond(screen, t.Position, c.HalfExtent, 1, colornames.Cyan)
	})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hp, maxHP := 0, 0
	if h, ok := ecs.Get(g.world, g.player, component.HealthComponent.Kind()); ok {
		hp, maxHP = h.Current, h.Max
	}
	xp := 0
	if p, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind()); ok {
		xp = p.Experience
	}
	msg := fmt.Sprintf("Map: %s  Wave: %d  HP: %d/%d  Kills: %d  XP: %d",
		g.levels.Name(), g.spawner.Wave(), hp, maxHP, g.score.Kills, xp)
	if g.debug {
		msg += fmt.Sprintf("\nFrames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, msg)
}
