package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/enead-quan/multi-flow/components"
	"github.com/enead-quan/multi-flow/sim"
)

// QuickStatsPanel renders pool composition and frame rate.
type QuickStatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewQuickStatsPanel creates a new quick stats panel.
func NewQuickStatsPanel(x, y, width int32) *QuickStatsPanel {
	return &QuickStatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the quick stats panel. Returns the Y position below it.
func (q *QuickStatsPanel) Draw(s *sim.Simulation) int32 {
	r := q.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	dist := s.PhaseDistribution()

	panelHeight := lineHeight*int32(3+len(components.Phases)) + padding*2
	r.DrawPanel(q.x, q.y, q.width, panelHeight)

	x := q.x + padding
	y := q.y + padding

	rl.DrawText("Quick Stats", x, y, 14, rl.White)
	y += lineHeight + 2

	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", s.ParticleCount()))
	for _, phase := range components.Phases {
		y = r.DrawLabelValue(x, y, phase.String(), fmt.Sprintf("%d", dist[phase]))
	}
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", rl.GetFPS()))

	return y + padding
}
