package sim

// Color is a premultiplied-free RGBA display color.
// Kept free of any render backend so the core stays headless-testable.
type Color struct {
	R, G, B, A uint8
}

// Surface is the minimal drawing capability the simulation renders onto.
// Implementations own their pixel backing; the simulation only issues
// draw commands once per tick.
type Surface interface {
	// Size returns the current surface dimensions in pixels.
	Size() (w, h float32)
	// Clear erases the full surface before a frame is drawn.
	Clear()
	// DrawDisc draws a filled disc of the given radius.
	DrawDisc(x, y, radius float32, c Color)
	// DrawGlowDisc draws a filled disc with a soft halo around it.
	DrawGlowDisc(x, y, radius float32, c Color)
	// DrawLine draws a stroke of the given thickness.
	DrawLine(x1, y1, x2, y2, thickness float32, c Color)
}

// NullSurface is a Surface that records nothing. Used for headless runs
// and tests where only the particle dynamics matter.
type NullSurface struct {
	W, H float32
}

// NewNullSurface creates a headless surface with fixed dimensions.
func NewNullSurface(w, h float32) *NullSurface {
	return &NullSurface{W: w, H: h}
}

// Size returns the surface dimensions.
func (s *NullSurface) Size() (float32, float32) { return s.W, s.H }

// Clear is a no-op.
func (s *NullSurface) Clear() {}

// DrawDisc is a no-op.
func (s *NullSurface) DrawDisc(x, y, radius float32, c Color) {}

// DrawGlowDisc is a no-op.
func (s *NullSurface) DrawGlowDisc(x, y, radius float32, c Color) {}

// DrawLine is a no-op.
func (s *NullSurface) DrawLine(x1, y1, x2, y2, thickness float32, c Color) {}
