// Package sim implements the phase-flow particle simulation: a fixed-size
// pool of particles advanced once per tick and drawn onto a Surface.
package sim

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/enead-quan/multi-flow/components"
	"github.com/enead-quan/multi-flow/config"
	"github.com/enead-quan/multi-flow/telemetry"
)

// Kinematic constants of the tick update.
const (
	velocityDamping     = 0.98
	transitionThreshold = 373.15 // Kelvin, liquid <-> vapor
)

// ErrNilSurface is returned when the simulation is constructed without a
// drawing surface.
var ErrNilSurface = errors.New("sim: drawing surface must not be nil")

// Options configures optional simulation collaborators.
type Options struct {
	Seed      int64 // 0 = time-based
	Scheduler Scheduler
	Collector *telemetry.Collector
	Perf      *telemetry.PerfCollector
	Output    *telemetry.OutputManager
	LogStats  bool
}

// Simulation owns the particle pool and the tick/render loop.
// All mutation happens on the tick step; external callers interact only
// through the control, mutator, and query surface.
type Simulation struct {
	world *ecs.World
	rng   *rand.Rand
	surf  Surface
	sched Scheduler
	cfg   *config.Config

	mapper *ecs.Map5[components.Position, components.Velocity, components.Matter, components.Thermal, components.Lifetime]
	filter *ecs.Filter5[components.Position, components.Velocity, components.Matter, components.Thermal, components.Lifetime]

	// Live-mutable parameters. Turbulence and temperature feed the tick
	// update directly; flow speed only seeds velocity at particle
	// creation (reserved beyond that). Pressure is stored, unused.
	flowSpeed   float32
	turbulence  float32
	temperature float32
	pressure    float32

	phases        []components.Phase
	particleCount int

	width, height float32

	// Atomic: the ticker scheduler runs step on its own goroutine while
	// callers poll Tick and flip the run state.
	tick    atomic.Int64
	running atomic.Bool

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool
}

// New creates a simulation over the given surface and populates the
// particle pool. Fails fast if the surface is absent or a configured
// phase label is unknown.
func New(surf Surface, cfg *config.Config, opts Options) (*Simulation, error) {
	if surf == nil {
		return nil, ErrNilSurface
	}

	phases := make([]components.Phase, 0, len(cfg.Simulation.PhaseTypes))
	for _, label := range cfg.Simulation.PhaseTypes {
		p, err := components.ParsePhase(label)
		if err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sched := opts.Scheduler
	if sched == nil {
		sched = NewFrameScheduler()
	}

	w, h := surf.Size()

	world := ecs.NewWorld()
	s := &Simulation{
		world: world,
		rng:   rand.New(rand.NewSource(seed)),
		surf:  surf,
		sched: sched,
		cfg:   cfg,

		mapper: ecs.NewMap5[components.Position, components.Velocity, components.Matter, components.Thermal, components.Lifetime](world),
		filter: ecs.NewFilter5[components.Position, components.Velocity, components.Matter, components.Thermal, components.Lifetime](world),

		flowSpeed:   float32(cfg.Simulation.FlowSpeed),
		turbulence:  float32(cfg.Simulation.Turbulence),
		temperature: float32(cfg.Simulation.Temperature),
		pressure:    float32(cfg.Simulation.Pressure),

		phases: phases,

		width:  w,
		height: h,

		collector: opts.Collector,
		perf:      opts.Perf,
		output:    opts.Output,
		logStats:  opts.LogStats,
	}

	s.populate()

	return s, nil
}

// populate fills the pool to the configured particle count.
func (s *Simulation) populate() {
	count := s.cfg.Simulation.ParticleCount
	for i := 0; i < count; i++ {
		s.spawnParticle()
	}
	s.particleCount = count
}

// spawnParticle creates one particle with creation-time randomization.
func (s *Simulation) spawnParticle() {
	pc := s.cfg.Particle

	phase := s.phases[s.rng.Intn(len(s.phases))]
	style := StyleFor(phase)

	density := 0.5 + s.rng.Float32()*0.5
	baseSize := float32(pc.MinSize) + s.rng.Float32()*float32(pc.MaxSize-pc.MinSize)

	lifeSpread := pc.MaxLifeTicks - pc.MinLifeTicks
	maxLife := float32(pc.MinLifeTicks)
	if lifeSpread > 0 {
		maxLife += float32(s.rng.Intn(lifeSpread + 1))
	}

	pos := components.Position{
		X: s.rng.Float32() * s.width,
		Y: s.rng.Float32() * s.height,
	}
	// Flow speed seeds initial velocity; it is not consumed by the
	// per-tick update math.
	vel := components.Velocity{
		X: (s.rng.Float32() - 0.5) * s.flowSpeed,
		Y: (s.rng.Float32() - 0.5) * s.flowSpeed,
	}
	matter := components.Matter{
		Phase:    phase,
		Density:  density,
		Size:     baseSize * style.SizeMult,
		Buoyancy: style.Buoyancy,
	}
	thermal := components.Thermal{
		Temperature: s.randomTemperature(),
	}
	life := components.Lifetime{
		Life:    1.0,
		MaxLife: maxLife,
	}

	s.mapper.NewEntity(&pos, &vel, &matter, &thermal, &life)
}

// randomTemperature samples around the configured mean.
func (s *Simulation) randomTemperature() float32 {
	jitter := float32(s.cfg.Particle.RespawnTempJitter)
	return s.temperature + (s.rng.Float32()*2-1)*jitter
}

// Start begins the recurring tick schedule. Idempotent: calling while
// already running is a no-op, never a second schedule.
func (s *Simulation) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.sched.Start(s.step)
}

// Stop cancels the pending tick schedule. Idempotent.
func (s *Simulation) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.sched.Stop()
}

// Reset stops the simulation, recreates the full particle pool from the
// current configuration, and starts again.
func (s *Simulation) Reset() {
	s.Stop()
	s.clearPool()
	s.populate()
	s.tick.Store(0)
	s.Start()
}

// clearPool removes every particle entity.
func (s *Simulation) clearPool() {
	var entities []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		entities = append(entities, query.Entity())
	}
	for _, e := range entities {
		s.mapper.Remove(e)
	}
	s.particleCount = 0
}

// Running reports whether a tick schedule is active.
func (s *Simulation) Running() bool {
	return s.running.Load()
}

// Tick returns the current tick counter. Safe to call while a ticker
// scheduler is driving the simulation.
func (s *Simulation) Tick() int64 {
	return s.tick.Load()
}

// SetFlowSpeed updates the flow speed used to seed velocity at particle
// creation. Takes effect on the next respawn; any numeric value accepted.
func (s *Simulation) SetFlowSpeed(v float64) {
	s.flowSpeed = float32(v)
}

// SetTurbulence updates the turbulence amplitude. Takes effect on the
// next tick; any numeric value accepted.
func (s *Simulation) SetTurbulence(v float64) {
	s.turbulence = float32(v)
}

// SetTemperature updates the ambient temperature that seeds respawned
// particles. Takes effect on the next respawn; any numeric value accepted.
func (s *Simulation) SetTemperature(v float64) {
	s.temperature = float32(v)
}

// FlowSpeed returns the current flow speed setting.
func (s *Simulation) FlowSpeed() float64 { return float64(s.flowSpeed) }

// Turbulence returns the current turbulence setting.
func (s *Simulation) Turbulence() float64 { return float64(s.turbulence) }

// Temperature returns the current ambient temperature setting.
func (s *Simulation) Temperature() float64 { return float64(s.temperature) }

// ParticleCount returns the current pool size.
func (s *Simulation) ParticleCount() int {
	return s.particleCount
}

// PhaseDistribution counts particles per phase by scanning the pool.
func (s *Simulation) PhaseDistribution() map[components.Phase]int {
	dist := make(map[components.Phase]int, len(components.Phases))
	query := s.filter.Query()
	for query.Next() {
		_, _, matter, _, _ := query.Get()
		dist[matter.Phase]++
	}
	return dist
}

// Resize updates the simulation bounds after the host surface changed
// dimensions. In-flight particle positions are left as-is; wraparound
// corrects them on the next tick.
func (s *Simulation) Resize(w, h float32) {
	s.width = w
	s.height = h
}

// Bounds returns the current simulation dimensions.
func (s *Simulation) Bounds() (w, h float32) {
	return s.width, s.height
}

// Render draws the current frame without advancing the simulation.
// The window loop uses it to keep the display fresh while stopped.
func (s *Simulation) Render() {
	s.render()
}

// step runs one tick plus render. A panic from a broken surface stops
// the schedule instead of ticking against it again.
func (s *Simulation) step() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("tick failed, stopping simulation", "tick", s.tick.Load(), "panic", r)
			s.Stop()
		}
	}()

	if s.perf != nil {
		s.perf.StartTick()
		s.perf.StartPhase(telemetry.PhaseUpdate)
	}

	s.update()

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseRender)
	}

	s.render()

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseTelemetry)
	}

	s.flushTelemetry()

	if s.perf != nil {
		s.perf.EndTick()
	}

	s.tick.Add(1)
}

// update advances every particle one tick.
func (s *Simulation) update() {
	turb := s.turbulence
	drift := float32(s.cfg.Particle.TempDrift)
	tick := s.tick.Load()

	query := s.filter.Query()
	for query.Next() {
		pos, vel, matter, thermal, life := query.Get()

		// Turbulence perturbation, uniform in [-turb/2, turb/2] per axis
		vel.X += (s.rng.Float32() - 0.5) * turb
		vel.Y += (s.rng.Float32() - 0.5) * turb

		// Buoyancy
		vel.Y += matter.Buoyancy

		// Deterministic flow field
		fx, fy := FlowAt(tick, pos.X, pos.Y)
		vel.X += fx
		vel.Y += fy

		// Damping keeps velocity bounded
		vel.X *= velocityDamping
		vel.Y *= velocityDamping

		// Phase transition on the fixed temperature threshold.
		// Gas never transitions. The size multiplier is applied to the
		// already-scaled size, so repeated transitions compound it;
		// pinned behavior, see the regression test.
		switch matter.Phase {
		case components.PhaseLiquid:
			if thermal.Temperature > transitionThreshold {
				s.transition(matter, components.PhaseVapor)
			}
		case components.PhaseVapor:
			if thermal.Temperature < transitionThreshold {
				s.transition(matter, components.PhaseLiquid)
			}
		}

		// Integrate and wrap into [0, width) x [0, height)
		pos.X = wrap(pos.X+vel.X, s.width)
		pos.Y = wrap(pos.Y+vel.Y, s.height)

		// Life decay and in-place respawn
		life.Life -= 1 / life.MaxLife
		if life.Life <= 0 {
			pos.X = s.rng.Float32() * s.width
			pos.Y = s.rng.Float32() * s.height
			life.Life = 1.0
			thermal.Temperature = s.randomTemperature()
			if s.collector != nil {
				s.collector.RecordRespawn()
			}
		}

		// Temperature random walk, independent of the configured ambient
		thermal.Temperature += (s.rng.Float32()*2 - 1) * drift
	}
}

// transition flips the phase and re-derives the phase-dependent state.
func (s *Simulation) transition(matter *components.Matter, to components.Phase) {
	from := matter.Phase
	style := StyleFor(to)
	matter.Phase = to
	matter.Size *= style.SizeMult
	matter.Buoyancy = style.Buoyancy
	if s.collector != nil {
		s.collector.RecordTransition(from, to)
	}
}

// render redraws the full frame: particles first, then the ambient
// flow-direction arrows. The arrows are purely decorative and never feed
// back into the particle update.
func (s *Simulation) render() {
	s.surf.Clear()

	query := s.filter.Query()
	for query.Next() {
		pos, _, matter, _, life := query.Get()

		radius := matter.Size * life.Life
		if radius <= 0 {
			continue
		}

		c := ColorFor(matter.Phase, matter.Density)
		if matter.Phase == components.PhaseVapor {
			s.surf.DrawGlowDisc(pos.X, pos.Y, radius, c)
		} else {
			s.surf.DrawDisc(pos.X, pos.Y, radius, c)
		}
	}

	s.renderFlowArrows()
}

// Arrow overlay presentation constants.
var arrowColor = Color{R: 120, G: 140, B: 160, A: 70}

// renderFlowArrows draws short directional strokes with arrowheads on a
// fixed-spacing grid, sampling the same flow field as the particle update.
func (s *Simulation) renderFlowArrows() {
	spacing := float32(s.cfg.Field.ArrowSpacing)
	if spacing <= 0 {
		return
	}
	length := float32(s.cfg.Field.ArrowLength)
	tick := s.tick.Load()

	for y := spacing / 2; y < s.height; y += spacing {
		for x := spacing / 2; x < s.width; x += spacing {
			fx, fy := FlowAt(tick, x, y)
			mag := float32(math.Hypot(float64(fx), float64(fy)))
			if mag == 0 {
				continue
			}

			dx := fx / mag * length
			dy := fy / mag * length
			ex := x + dx
			ey := y + dy

			s.surf.DrawLine(x, y, ex, ey, 1, arrowColor)

			// Arrowhead: two short strokes swept back from the tip
			angle := math.Atan2(float64(dy), float64(dx))
			headLen := float64(length) * 0.35
			for _, da := range [2]float64{2.6, -2.6} {
				hx := ex + float32(math.Cos(angle+da)*headLen)
				hy := ey + float32(math.Sin(angle+da)*headLen)
				s.surf.DrawLine(ex, ey, hx, hy, 1, arrowColor)
			}
		}
	}
}

// flushTelemetry flushes the stats window when due.
func (s *Simulation) flushTelemetry() {
	tick := s.tick.Load()
	if s.collector == nil || !s.collector.ShouldFlush(tick) {
		return
	}

	phaseCounts := make(map[components.Phase]int, len(components.Phases))
	var temps, speeds []float64

	query := s.filter.Query()
	for query.Next() {
		_, vel, matter, thermal, _ := query.Get()
		phaseCounts[matter.Phase]++
		temps = append(temps, float64(thermal.Temperature))
		speeds = append(speeds, math.Hypot(float64(vel.X), float64(vel.Y)))
	}

	stats := s.collector.Flush(tick, phaseCounts, temps, speeds)

	var perfStats telemetry.PerfStats
	if s.perf != nil {
		perfStats = s.perf.Stats()
	}

	if s.logStats {
		stats.LogStats()
		if s.perf != nil {
			perfStats.LogStats()
		}
	}

	if s.output != nil {
		if err := s.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if s.perf != nil {
			if err := s.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
				slog.Error("failed to write perf", "error", err)
			}
		}
	}
}
