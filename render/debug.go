package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformcore/camera"
	"github.com/milk9111/platformcore/physics"
	"github.com/milk9111/platformcore/sim"
	"golang.org/x/image/colornames"
)

// CameraGeoM returns the transform that maps world space onto the screen
// for the camera's rendered (shaken) position.
func CameraGeoM(cam *camera.Camera) ebiten.GeoM {
	var m ebiten.GeoM
	if cam == nil {
		return m
	}
	p := cam.Position()
	m.Translate(-p.X, -p.Y)
	return m
}

func obstacleColors(k physics.Kind) (fill, stroke color.Color) {
	switch k {
	case physics.KindHazard:
		return withAlpha(colornames.Crimson, 64), colornames.Crimson
	default:
		return withAlpha(colornames.Steelblue, 160), colornames.Lightsteelblue
	}
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// colors are premultiplied
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}

// DrawObstacles draws every obstacle the camera can see.
func DrawObstacles(screen *ebiten.Image, cam *camera.Camera, obstacles []physics.Obstacle) {
	if screen == nil || cam == nil {
		return
	}
	for _, o := range obstacles {
		if !cam.IsVisible(o) {
			continue
		}
		fill, stroke := obstacleColors(o.Kind)
		drawBox(screen, cam, o.Bounds, fill, stroke)
	}
}

// DrawBodies draws each body, tinted while it is on the ground.
func DrawBodies(screen *ebiten.Image, cam *camera.Camera, bodies []physics.Mover) {
	if screen == nil || cam == nil {
		return
	}
	for _, m := range bodies {
		if m == nil {
			continue
		}
		b := m.PhysicsBody()
		if b == nil || !cam.IsVisible(b) {
			continue
		}
		fill := colornames.Gold
		if b.OnGround {
			fill = colornames.Limegreen
		}
		drawBox(screen, cam, b.Box(), fill, colornames.White)
	}
}

// DrawDeadZone outlines the camera dead zone around the follow offset.
func DrawDeadZone(screen *ebiten.Image, cam *camera.Camera) {
	if screen == nil || cam == nil {
		return
	}
	off := cam.FollowOffset()
	dz := cam.DeadZone()
	x := off.X - dz.W/2
	y := off.Y - dz.H/2
	vector.StrokeRect(screen, float32(x), float32(y), float32(dz.W), float32(dz.H), 1, colornames.Lightgrey, false)
}

// DrawDebugText prints the followed body's state and the engine constants.
func DrawDebugText(screen *ebiten.Image, w *sim.World, b *physics.Body) {
	if screen == nil || w == nil || b == nil {
		return
	}
	c := w.Engine.Constants()
	text := fmt.Sprintf("Pos: %.1f, %.1f\nVel: %.1f, %.1f\nGrounded: %v\nGravity: %.0f  Terminal: %.0f\nFriction: %.2f  Air: %.2f\nTicks: %d  FPS: %.1f",
		b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, b.OnGround,
		c.Gravity, c.TerminalVelocity, c.Friction, c.AirResistance,
		w.Ticks(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

func drawBox(screen *ebiten.Image, cam *camera.Camera, b physics.Box, fill, stroke color.Color) {
	x, y := cam.WorldToScreen(b.Pos.X, b.Pos.Y)
	vector.FillRect(screen, float32(x), float32(y), float32(b.Size.W), float32(b.Size.H), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(b.Size.W), float32(b.Size.H), 1, stroke, false)
}
