// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Particle   ParticleConfig   `yaml:"particle"`
	Field      FieldConfig      `yaml:"field"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds the user-facing simulation parameters.
// Pressure is stored and snapshotted but not consumed by the particle
// dynamics yet (reserved).
type SimulationConfig struct {
	ParticleCount int      `yaml:"particle_count"`
	FlowSpeed     float64  `yaml:"flow_speed"`
	Turbulence    float64  `yaml:"turbulence"`
	PhaseTypes    []string `yaml:"phase_types"` // subset of gas, liquid, vapor
	Temperature   float64  `yaml:"temperature"` // Kelvin, seeds particle temperature
	Pressure      float64  `yaml:"pressure"`    // Pascal, reserved
}

// ParticleConfig holds particle creation parameters.
type ParticleConfig struct {
	MinSize           float64 `yaml:"min_size"`            // base radius before phase multiplier
	MaxSize           float64 `yaml:"max_size"`            // base radius before phase multiplier
	MinLifeTicks      int     `yaml:"min_life_ticks"`      // lower bound for maxLife
	MaxLifeTicks      int     `yaml:"max_life_ticks"`      // upper bound for maxLife
	RespawnTempJitter float64 `yaml:"respawn_temp_jitter"` // +/- Kelvin around configured mean
	TempDrift         float64 `yaml:"temp_drift"`          // +/- Kelvin random walk per tick
}

// FieldConfig holds the flow-direction arrow overlay parameters.
type FieldConfig struct {
	ArrowSpacing int     `yaml:"arrow_spacing"` // grid spacing in pixels
	ArrowLength  float64 `yaml:"arrow_length"`  // stroke length in pixels
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	DT        float64 // seconds per tick at target FPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot be built from.
// Numeric ranges are deliberately unchecked; extreme values are allowed
// and simply produce visually extreme behavior.
func (c *Config) validate() error {
	if c.Simulation.ParticleCount <= 0 {
		return fmt.Errorf("config: particle_count must be positive, got %d", c.Simulation.ParticleCount)
	}
	if len(c.Simulation.PhaseTypes) == 0 {
		return fmt.Errorf("config: phase_types must not be empty")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)

	// A zero life bound would make the per-tick decay 1/0
	if c.Particle.MinLifeTicks < 1 {
		c.Particle.MinLifeTicks = 1
	}
	if c.Particle.MaxLifeTicks < c.Particle.MinLifeTicks {
		c.Particle.MaxLifeTicks = c.Particle.MinLifeTicks
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
