package components

// Position represents a particle's position on the drawing surface.
// After boundary wraparound it always lies in [0, width) x [0, height).
type Position struct {
	X, Y float32
}

// Velocity represents a particle's velocity in pixels per tick.
// Magnitude is unbounded but damped every tick.
type Velocity struct {
	X, Y float32
}
