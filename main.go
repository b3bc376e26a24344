package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"meshdrift/config"
	"meshdrift/engine"
	"meshdrift/telemetry"
	"meshdrift/viewer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	seed := flag.Uint("seed", 0, "RNG seed (0 = use config)")
	points := flag.Int("points", 0, "Point count (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited; headless default 1000)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV perf logs and config snapshot")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := uint32(*seed)
	if rngSeed == 0 {
		rngSeed = cfg.Simulation.Seed
	}
	pointCount := *points
	if pointCount == 0 {
		pointCount = cfg.Simulation.PointCount
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	slog.Info("starting simulation",
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"points", pointCount,
		"seed", rngSeed,
		"headless", *headless,
	)

	if *headless {
		runHeadless(cfg, perf, out, pointCount, rngSeed, *maxTicks)
		return
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "meshdrift")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	sim := engine.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), pointCount, rngSeed)
	sim.SetPerfCollector(perf)

	v := viewer.New(sim, cfg, perf, out)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			sim.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}

		v.Update()
		v.Draw()

		if *maxTicks > 0 && v.Frame() >= *maxTicks {
			break
		}
	}

	slog.Info("stopped", "frames", v.Frame(), "triangles", sim.TriangleCount())
}

// runHeadless drives the engine with a synthetic orbiting pointer and
// periodic shockwaves, reporting perf windows instead of rendering.
func runHeadless(cfg *config.Config, perf *telemetry.PerfCollector, out *telemetry.OutputManager, pointCount int, seed uint32, maxTicks int) {
	if maxTicks <= 0 {
		maxTicks = 1000
	}

	width := float32(cfg.Screen.Width)
	height := float32(cfg.Screen.Height)

	sim := engine.New(width, height, pointCount, seed)
	sim.SetPerfCollector(perf)

	for tick := 1; tick <= maxTicks; tick++ {
		angle := float64(tick) * 0.02
		mx := width/2 + float32(math.Cos(angle))*width/4
		my := height/2 + float32(math.Sin(angle))*height/4

		if tick%180 == 0 {
			sim.TriggerShockwave(mx, my, 300)
		}

		sim.Tick(1.0, 1.0, mx, my, true, cfg.Mouse.Radius, cfg.Mouse.Strength, 0)

		if tick%cfg.Telemetry.PerfWindow == 0 {
			ws := telemetry.Summarize(perf, tick, sim.TriangleCount(), sim.PointCount())
			if err := out.WritePerf(ws); err != nil {
				slog.Error("failed to write perf window", "error", err)
			}
			slog.Info("perf window",
				"tick", tick,
				"frame_mean_ms", ws.FrameMean,
				"frame_p90_ms", ws.FrameP90,
				"triangles", ws.Triangles,
			)
		}
	}

	slog.Info("headless run complete", "ticks", maxTicks, "triangles", sim.TriangleCount())
}
