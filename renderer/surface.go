// Package renderer provides the raylib-backed drawing surface.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/enead-quan/multi-flow/sim"
)

// background is the clear color between frames.
var background = rl.Color{R: 8, G: 12, B: 20, A: 255}

// RaylibSurface implements sim.Surface on top of the raylib window.
// Draw calls must happen between rl.BeginDrawing and rl.EndDrawing;
// the main loop owns that bracket.
type RaylibSurface struct {
	width  float32
	height float32
}

// NewRaylibSurface creates a surface matching the current window size.
func NewRaylibSurface() *RaylibSurface {
	return &RaylibSurface{
		width:  float32(rl.GetScreenWidth()),
		height: float32(rl.GetScreenHeight()),
	}
}

// Size returns the surface dimensions.
func (s *RaylibSurface) Size() (float32, float32) {
	return s.width, s.height
}

// Resize updates the surface dimensions after a window resize.
func (s *RaylibSurface) Resize(w, h float32) {
	s.width = w
	s.height = h
}

// Clear erases the frame.
func (s *RaylibSurface) Clear() {
	rl.ClearBackground(background)
}

// DrawDisc draws a filled disc.
func (s *RaylibSurface) DrawDisc(x, y, radius float32, c sim.Color) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, toRaylib(c))
}

// DrawGlowDisc draws a disc with a soft additive halo, used for vapor.
func (s *RaylibSurface) DrawGlowDisc(x, y, radius float32, c sim.Color) {
	center := rl.Vector2{X: x, Y: y}
	col := toRaylib(c)

	rl.BeginBlendMode(rl.BlendAdditive)
	halo := col
	halo.A = uint8(uint16(col.A) / 3)
	rl.DrawCircleV(center, radius*2.2, halo)
	halo.A = uint8(uint16(col.A) / 2)
	rl.DrawCircleV(center, radius*1.5, halo)
	rl.EndBlendMode()

	rl.DrawCircleV(center, radius, col)
}

// DrawLine draws a stroke of the given thickness.
func (s *RaylibSurface) DrawLine(x1, y1, x2, y2, thickness float32, c sim.Color) {
	rl.DrawLineEx(
		rl.Vector2{X: x1, Y: y1},
		rl.Vector2{X: x2, Y: y2},
		thickness,
		toRaylib(c),
	)
}

func toRaylib(c sim.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
