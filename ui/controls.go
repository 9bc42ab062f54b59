package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/enead-quan/multi-flow/sim"
)

// ControlsPanel renders sliders and run-control buttons bound to the
// simulation's live mutators.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Draw renders the panel and applies any slider or button changes to the
// simulation. Returns the Y position below the panel.
func (c *ControlsPanel) Draw(s *sim.Simulation) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	panelHeight := lineHeight*3 + 35*3 + padding*4
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := c.x + padding
	y := c.y + padding
	sliderWidth := float32(c.width - padding*2 - 50)

	rl.DrawText("Simulation", x, y, 16, rl.White)
	y += lineHeight + 6

	y = c.slider(x, y, sliderWidth, "Flow speed", float32(s.FlowSpeed()), 0, 5, func(v float32) {
		s.SetFlowSpeed(float64(v))
	})
	y = c.slider(x, y, sliderWidth, "Turbulence", float32(s.Turbulence()), 0, 1, func(v float32) {
		s.SetTurbulence(float64(v))
	})
	y = c.slider(x, y, sliderWidth, "Temperature (K)", float32(s.Temperature()), 250, 450, func(v float32) {
		s.SetTemperature(float64(v))
	})

	// Run controls
	buttonWidth := float32(c.width-padding*2-10) / 3
	bx := float32(x)
	by := float32(y)

	if s.Running() {
		if gui.Button(rl.Rectangle{X: bx, Y: by, Width: buttonWidth, Height: 22}, "Stop") {
			s.Stop()
		}
	} else {
		if gui.Button(rl.Rectangle{X: bx, Y: by, Width: buttonWidth, Height: 22}, "Start") {
			s.Start()
		}
	}
	bx += buttonWidth + 5
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: buttonWidth, Height: 22}, "Reset") {
		s.Reset()
	}

	return y + 22 + padding
}

// slider draws one labeled slider row and invokes apply when the value
// changed this frame.
func (c *ControlsPanel) slider(x, y int32, width float32, label string, value, min, max float32, apply func(float32)) int32 {
	r := c.renderer

	rl.DrawText(label, x, y, r.Theme.FontSize, rl.Gray)
	y += r.Theme.LineHeight

	newValue := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: width, Height: 16},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", value), x+int32(width)+6, y+2, r.Theme.FontSize, rl.LightGray)
	if newValue != value {
		apply(newValue)
	}

	return y + 19
}
