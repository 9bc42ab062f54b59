package sim

import "math"

// Flow field constants. The same formula perturbs particle velocity each
// tick and orients the ambient direction arrows.
const (
	flowTimeScale  = 0.01
	flowSpaceScale = 0.01
	flowStrength   = 0.1
)

// FlowAt samples the deterministic sinusoidal flow field at a position.
// tick is the integer frame counter, incremented once per tick.
func FlowAt(tick int64, x, y float32) (fx, fy float32) {
	t := float64(tick) * flowTimeScale
	fx = float32(math.Sin(t+float64(y)*flowSpaceScale) * flowStrength)
	fy = float32(math.Cos(t+float64(x)*flowSpaceScale) * flowStrength)
	return fx, fy
}

// wrap maps v into [0, max) by wraparound on one axis.
func wrap(v, max float32) float32 {
	if max <= 0 {
		return 0
	}
	v = float32(math.Mod(float64(v), float64(max)))
	if v < 0 {
		v += max
	}
	// float32 rounding can land exactly on the upper bound
	if v >= max {
		v -= max
	}
	return v
}
