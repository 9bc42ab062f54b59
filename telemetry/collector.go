package telemetry

import "github.com/enead-quan/multi-flow/components"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	evaporations  int
	condensations int
	respawns      int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTransition records a phase transition event.
func (c *Collector) RecordTransition(from, to components.Phase) {
	switch {
	case from == components.PhaseLiquid && to == components.PhaseVapor:
		c.evaporations++
	case from == components.PhaseVapor && to == components.PhaseLiquid:
		c.condensations++
	}
}

// RecordRespawn records a life-depleted particle reset.
func (c *Collector) RecordRespawn() {
	c.respawns++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the current tick, the phase distribution of the pool,
// and per-particle temperature and speed samples.
func (c *Collector) Flush(
	currentTick int64,
	phaseCounts map[components.Phase]int,
	temperatures, speeds []float64,
) WindowStats {
	total := 0
	for _, n := range phaseCounts {
		total += n
	}

	tempMean, tempStd, tempP10, tempP50, tempP90 := ComputeDistribution(temperatures)
	speedMean, _, _, _, speedP90 := ComputeDistribution(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		ParticleCount: total,
		GasCount:      phaseCounts[components.PhaseGas],
		LiquidCount:   phaseCounts[components.PhaseLiquid],
		VaporCount:    phaseCounts[components.PhaseVapor],

		Evaporations:  c.evaporations,
		Condensations: c.condensations,
		Respawns:      c.respawns,

		TempMean: tempMean,
		TempStd:  tempStd,
		TempP10:  tempP10,
		TempP50:  tempP50,
		TempP90:  tempP90,

		SpeedMean: speedMean,
		SpeedP90:  speedP90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.evaporations = 0
	c.condensations = 0
	c.respawns = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
