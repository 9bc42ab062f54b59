package sim

import "github.com/enead-quan/multi-flow/components"

// Style holds the per-phase kinematic and presentation constants.
type Style struct {
	SizeMult   float32 // applied to the particle's current size on creation and transition
	Buoyancy   float32 // vertical velocity added each tick (negative = rises)
	AlphaScale float32 // alpha = density * AlphaScale
	R, G, B    uint8
}

// phaseStyles is the fixed phase table.
var phaseStyles = map[components.Phase]Style{
	components.PhaseGas:    {SizeMult: 0.8, Buoyancy: -0.02, AlphaScale: 0.3, R: 140, G: 180, B: 220},
	components.PhaseLiquid: {SizeMult: 1.2, Buoyancy: 0.01, AlphaScale: 0.7, R: 60, G: 120, B: 200},
	components.PhaseVapor:  {SizeMult: 0.6, Buoyancy: -0.05, AlphaScale: 0.2, R: 200, G: 220, B: 235},
}

// StyleFor returns the style constants for a phase.
func StyleFor(p components.Phase) Style {
	return phaseStyles[p]
}

// ColorFor derives the display color for a phase and density.
// Alpha scales with density, clamped to [0, 1].
func ColorFor(p components.Phase, density float32) Color {
	st := phaseStyles[p]
	a := density * st.AlphaScale
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return Color{R: st.R, G: st.G, B: st.B, A: uint8(a * 255)}
}
