package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Simulation.ParticleCount != 100 {
		t.Errorf("particle_count = %d, want 100", cfg.Simulation.ParticleCount)
	}
	if cfg.Simulation.Temperature != 293.15 {
		t.Errorf("temperature = %v, want 293.15", cfg.Simulation.Temperature)
	}
	if len(cfg.Simulation.PhaseTypes) == 0 {
		t.Error("expected default phase_types to be non-empty")
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen = %dx%d, want positive dimensions", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	body := "simulation:\n  particle_count: 250\n  flow_speed: 2.5\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	// Overridden fields
	if cfg.Simulation.ParticleCount != 250 {
		t.Errorf("particle_count = %d, want 250", cfg.Simulation.ParticleCount)
	}
	if cfg.Simulation.FlowSpeed != 2.5 {
		t.Errorf("flow_speed = %v, want 2.5", cfg.Simulation.FlowSpeed)
	}

	// Untouched fields keep defaults
	if cfg.Simulation.Temperature != 293.15 {
		t.Errorf("temperature = %v, want default 293.15", cfg.Simulation.Temperature)
	}
	if cfg.Particle.MaxSize != 4 {
		t.Errorf("max_size = %v, want default 4", cfg.Particle.MaxSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero particle count", "simulation:\n  particle_count: 0\n"},
		{"negative particle count", "simulation:\n  particle_count: -5\n"},
		{"empty phase types", "simulation:\n  phase_types: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("ScreenW32 = %v, want %v", cfg.Derived.ScreenW32, float32(cfg.Screen.Width))
	}
	wantDT := 1.0 / float64(cfg.Screen.TargetFPS)
	if cfg.Derived.DT != wantDT {
		t.Errorf("DT = %v, want %v", cfg.Derived.DT, wantDT)
	}
}

func TestLifeBoundsClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	body := "particle:\n  min_life_ticks: 500\n  max_life_ticks: 100\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Particle.MaxLifeTicks != cfg.Particle.MinLifeTicks {
		t.Errorf("max_life_ticks = %d, want clamped to min %d",
			cfg.Particle.MaxLifeTicks, cfg.Particle.MinLifeTicks)
	}
}

func TestZeroLifeTicksClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	body := "particle:\n  min_life_ticks: 0\n  max_life_ticks: 0\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Particle.MinLifeTicks < 1 || cfg.Particle.MaxLifeTicks < 1 {
		t.Errorf("life ticks = [%d, %d], want both >= 1",
			cfg.Particle.MinLifeTicks, cfg.Particle.MaxLifeTicks)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Simulation.Turbulence = 0.42

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if back.Simulation.Turbulence != 0.42 {
		t.Errorf("turbulence = %v, want 0.42", back.Simulation.Turbulence)
	}
}
