// Flow field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/flowpreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// FlowParams holds the sinusoidal field parameters. The defaults match
// the field the simulation ships with.
type FlowParams struct {
	TimeScale    float32
	SpaceScale   float32
	Strength     float32
	ArrowSpacing int
}

func defaultParams() FlowParams {
	return FlowParams{
		TimeScale:    0.01,
		SpaceScale:   0.01,
		Strength:     0.1,
		ArrowSpacing: 32,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	gridSize := 256
	magnitudes := make([]float32, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var tick float32 = 0
	animating := true

	generateField(magnitudes, gridSize, params, tick)
	updateTexture(texture, magnitudes, gridSize, params.Strength)

	needsRegen := false

	for !rl.WindowShouldClose() {
		if animating {
			tick += rl.GetFrameTime() * 60
			needsRegen = true
		}

		if needsRegen {
			generateField(magnitudes, gridSize, params, tick)
			updateTexture(texture, magnitudes, gridSize, params.Strength)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Magnitude heat map
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		drawArrows(params, tick)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		var minMag, maxMag float32 = math.MaxFloat32, 0
		for _, m := range magnitudes {
			if m < minMag {
				minMag = m
			}
			if m > maxMag {
				maxMag = m
			}
		}
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Mag min: %.4f  max: %.4f", minMag, maxMag), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Tick: %.0f", tick), 15, statsY+20, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.TimeScale, panelY = slider(panelX, panelY, "Time scale (phase advance per tick)",
			params.TimeScale, 0.001, 0.05, "%.3f", &needsRegen)
		params.SpaceScale, panelY = slider(panelX, panelY, "Space scale (phase change per pixel)",
			params.SpaceScale, 0.001, 0.05, "%.3f", &needsRegen)
		params.Strength, panelY = slider(panelX, panelY, "Strength (velocity added per tick)",
			params.Strength, 0.01, 1.0, "%.2f", &needsRegen)

		newSpacing, newY := slider(panelX, panelY, "Arrow spacing (pixels)",
			float32(params.ArrowSpacing), 16, 96, "%.0f", &needsRegen)
		params.ArrowSpacing = int(newSpacing)
		panelY = newY

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Pause", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			tick = 0
			needsRegen = true
		}
		panelY += 45
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			tick = 0
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// slider draws a labeled slider row and returns the new value and panel Y.
func slider(x, y float32, label string, value, min, max float32, format string, changed *bool) (float32, float32) {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, min), fmt.Sprintf(format, max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+float32(panelWidth-70)), int32(y+2), 16, rl.DarkGray)
	if next != value {
		*changed = true
	}
	return next, y + 35
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// flowVec evaluates the field at a point in preview space.
func flowVec(params FlowParams, tick, x, y float32) (float32, float32) {
	phase := tick * params.TimeScale
	vx := float32(math.Sin(float64(phase+y*params.SpaceScale))) * params.Strength
	vy := float32(math.Cos(float64(phase+x*params.SpaceScale))) * params.Strength
	return vx, vy
}

// generateField fills the grid with field magnitudes. Grid cells map onto
// preview pixels so the heat map lines up with the arrow overlay.
func generateField(grid []float32, size int, params FlowParams, tick float32) {
	scale := float32(previewSize) / float32(size)
	for gy := 0; gy < size; gy++ {
		y := (float32(gy) + 0.5) * scale
		for gx := 0; gx < size; gx++ {
			x := (float32(gx) + 0.5) * scale
			vx, vy := flowVec(params, tick, x, y)
			grid[gy*size+gx] = float32(math.Hypot(float64(vx), float64(vy)))
		}
	}
}

// drawArrows overlays direction arrows on the preview.
func drawArrows(params FlowParams, tick float32) {
	spacing := params.ArrowSpacing
	if spacing < 8 {
		spacing = 8
	}
	arrowLen := float32(spacing) * 0.4

	for py := spacing / 2; py < previewSize; py += spacing {
		for px := spacing / 2; px < previewSize; px += spacing {
			vx, vy := flowVec(params, tick, float32(px), float32(py))
			mag := float32(math.Hypot(float64(vx), float64(vy)))
			if mag < 1e-6 {
				continue
			}
			x0 := float32(10 + px)
			y0 := float32(10 + py)
			x1 := x0 + vx/mag*arrowLen
			y1 := y0 + vy/mag*arrowLen
			rl.DrawLineV(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, rl.White)
			rl.DrawCircleV(rl.Vector2{X: x1, Y: y1}, 1.5, rl.White)
		}
	}
}

// updateTexture updates the GPU texture from the magnitude grid.
func updateTexture(texture rl.Texture2D, grid []float32, size int, strength float32) {
	// Peak magnitude of the field is strength*sqrt(2)
	peak := strength * float32(math.Sqrt2)
	if peak <= 0 {
		peak = 1
	}

	pixels := make([]color.RGBA, size*size)
	for i, m := range grid {
		v := m / peak
		if v > 1 {
			v = 1
		}
		// Dark blue -> cyan -> yellow -> white
		var r, g, b uint8
		if v < 0.25 {
			t := v / 0.25
			r = uint8(10 + t*30)
			g = uint8(20 + t*60)
			b = uint8(60 + t*100)
		} else if v < 0.5 {
			t := (v - 0.25) / 0.25
			r = uint8(40 + t*20)
			g = uint8(80 + t*120)
			b = uint8(160 + t*40)
		} else if v < 0.75 {
			t := (v - 0.5) / 0.25
			r = uint8(60 + t*140)
			g = uint8(200 - t*40)
			b = uint8(200 - t*150)
		} else {
			t := (v - 0.75) / 0.25
			r = uint8(200 + t*55)
			g = uint8(160 + t*95)
			b = uint8(50 + t*205)
		}
		pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}
