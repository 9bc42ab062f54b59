// Snapshot tool - advances the simulation offscreen and exports one frame
// to a PNG file for inspection.
//
// Usage: go run ./cmd/snapshot -ticks 600 -out frame.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/enead-quan/multi-flow/config"
	"github.com/enead-quan/multi-flow/renderer"
	"github.com/enead-quan/multi-flow/sim"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML (empty = embedded defaults)")
	outPath := flag.String("out", "frame.png", "Output PNG path")
	ticks := flag.Int("ticks", 600, "Ticks to advance before capturing")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	width := int32(cfg.Screen.Width)
	height := int32(cfg.Screen.Height)

	// Hidden window; all drawing goes to a render texture
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(width, height, "Snapshot")
	defer rl.CloseWindow()

	surf := renderer.NewRaylibSurface()
	frames := sim.NewFrameScheduler()
	s, err := sim.New(surf, cfg, sim.Options{Seed: *seed, Scheduler: frames})
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation: %v\n", err)
		os.Exit(1)
	}
	s.Start()

	target := rl.LoadRenderTexture(width, height)
	defer rl.UnloadRenderTexture(target)

	// Each tick clears and redraws, so the texture ends up holding the
	// final frame only.
	rl.BeginTextureMode(target)
	for i := 0; i < *ticks; i++ {
		frames.Tick()
	}
	rl.EndTextureMode()

	// Flip for OpenGL texture convention
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintf(os.Stderr, "failed to export image\n")
		os.Exit(1)
	}
	fmt.Printf("Frame at tick %d rendered to: %s (%dx%d)\n", s.Tick(), *outPath, width, height)
}
