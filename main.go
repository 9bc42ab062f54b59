package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/enead-quan/multi-flow/config"
	"github.com/enead-quan/multi-flow/renderer"
	"github.com/enead-quan/multi-flow/sim"
	"github.com/enead-quan/multi-flow/telemetry"
	"github.com/enead-quan/multi-flow/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	realtime := flag.Bool("realtime", false, "Pace headless ticks at the target FPS instead of free-running")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Use config stats window if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	opts := sim.Options{
		Seed:      rngSeed,
		Collector: telemetry.NewCollector(statsWindowSec, cfg.Derived.DT),
		Perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		Output:    output,
		LogStats:  *logStats,
	}

	if *headless {
		runHeadless(cfg, opts, rngSeed, *realtime, *maxTicks, *stepsPerUpdate)
	} else {
		runWindow(cfg, opts, *maxTicks)
	}
}

// runHeadless drives the simulation without raylib.
func runHeadless(cfg *config.Config, opts sim.Options, rngSeed int64, realtime bool, maxTicks, stepsPerUpdate int) {
	surface := sim.NewNullSurface(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)

	slog.Info("starting headless simulation",
		"seed", rngSeed,
		"realtime", realtime,
		"max_ticks", maxTicks,
		"steps_per_update", stepsPerUpdate,
	)

	if realtime {
		// Ticker-paced run at the configured frame cadence
		opts.Scheduler = sim.NewTickerScheduler(time.Duration(float64(time.Second) * cfg.Derived.DT))
		s, err := sim.New(surface, cfg, opts)
		if err != nil {
			slog.Error("failed to create simulation", "error", err)
			os.Exit(1)
		}
		s.Start()
		defer s.Stop()

		for {
			time.Sleep(100 * time.Millisecond)
			if maxTicks > 0 && int(s.Tick()) >= maxTicks {
				slog.Info("max ticks reached", "tick", s.Tick())
				return
			}
		}
	}

	// Free-running soak loop
	frames := sim.NewFrameScheduler()
	opts.Scheduler = frames
	s, err := sim.New(surface, cfg, opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	s.Start()

	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}
	for {
		for i := 0; i < stepsPerUpdate; i++ {
			frames.Tick()
		}
		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			return
		}
	}
}

// runWindow drives the simulation inside a raylib window.
func runWindow(cfg *config.Config, opts sim.Options, maxTicks int) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Multi-Flow")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetWindowState(rl.FlagWindowResizable)

	surface := renderer.NewRaylibSurface()
	frames := sim.NewFrameScheduler()
	opts.Scheduler = frames

	s, err := sim.New(surface, cfg, opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	s.Start()

	controls := ui.NewControlsPanel(10, 10, 230)
	stats := ui.NewQuickStatsPanel(10, 260, 230)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			w := float32(rl.GetScreenWidth())
			h := float32(rl.GetScreenHeight())
			surface.Resize(w, h)
			s.Resize(w, h)
		}

		// Keyboard shortcuts mirror the panel buttons
		if rl.IsKeyPressed(rl.KeySpace) {
			if s.Running() {
				s.Stop()
			} else {
				s.Start()
			}
		}
		if rl.IsKeyPressed(rl.KeyR) {
			s.Reset()
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			controls.Toggle()
		}

		if opts.Perf != nil {
			opts.Perf.RecordFrame()
		}

		rl.BeginDrawing()

		if s.Running() {
			frames.Tick()
		} else {
			s.Render()
		}

		controls.Draw(s)
		stats.Draw(s)

		rl.EndDrawing()

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			break
		}
	}
}
