package components

// Matter bundles phase-dependent particle state.
// Size and Buoyancy are re-derived from the phase table whenever the
// particle transitions between liquid and vapor.
type Matter struct {
	Phase    Phase
	Density  float32 // fixed at creation, in [0.5, 1.0]
	Size     float32 // display radius, already phase-scaled
	Buoyancy float32 // vertical velocity added per tick
}

// Thermal tracks a particle's temperature in Kelvin.
// Drifts by a small random walk each tick; the configured ambient
// temperature only seeds initial and respawn values.
type Thermal struct {
	Temperature float32
}

// Lifetime tracks the normalized remaining lifespan.
// Life decreases by exactly 1/MaxLife per tick; at <= 0 the particle is
// respawned in place, never removed from the pool.
type Lifetime struct {
	Life    float32 // (0, 1] after a respawn
	MaxLife float32 // ticks of full life, fixed at creation
}
