// Package viewer is the interactive raylib host for the engine: it routes
// pointer and keyboard input into the simulation and draws the three
// output buffers each frame.
package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"meshdrift/config"
	"meshdrift/engine"
	"meshdrift/telemetry"
)

// Viewer drives one simulation from raylib input.
type Viewer struct {
	sim  *engine.Simulation
	cfg  *config.Config
	perf *telemetry.PerfCollector
	out  *telemetry.OutputManager

	frame     int
	triangles int

	// Host-side interaction settings, edited by the controls panel
	mode           uint32
	radius         float32
	strength       float32
	speed          float32
	noiseScale     float32
	noiseIntensity float32

	wireframe   bool
	markers     bool
	panelOpen   bool
	gravityOn   bool
	gravityPull bool
}

// New creates a viewer around an existing simulation.
func New(sim *engine.Simulation, cfg *config.Config, perf *telemetry.PerfCollector, out *telemetry.OutputManager) *Viewer {
	return &Viewer{
		sim:            sim,
		cfg:            cfg,
		perf:           perf,
		out:            out,
		radius:         cfg.Mouse.Radius,
		strength:       cfg.Mouse.Strength,
		speed:          1.0,
		noiseScale:     cfg.Noise.Scale,
		noiseIntensity: cfg.Noise.Intensity,
		markers:        true,
		gravityPull:    true,
	}
}

// Frame returns the number of completed frames.
func (v *Viewer) Frame() int {
	return v.frame
}

// Update handles input and advances the simulation one frame.
func (v *Viewer) Update() {
	v.handleInput()

	mouse := rl.GetMousePosition()
	inBounds := rl.IsCursorOnScreen()

	v.triangles = v.sim.Tick(rl.GetFrameTime()*60, v.speed,
		mouse.X, mouse.Y, inBounds, v.radius, v.strength, v.mode)
	v.frame++

	if v.out != nil && v.perf != nil && v.frame%v.cfg.Telemetry.PerfWindow == 0 {
		ws := telemetry.Summarize(v.perf, v.frame, v.triangles, v.sim.PointCount())
		_ = v.out.WritePerf(ws)
	}
}

func (v *Viewer) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		v.mode = 0
	case rl.IsKeyPressed(rl.KeyTwo):
		v.mode = 1
	case rl.IsKeyPressed(rl.KeyThree):
		v.mode = 2
	}

	if rl.IsKeyPressed(rl.KeyW) {
		v.wireframe = !v.wireframe
	}
	if rl.IsKeyPressed(rl.KeyP) {
		v.markers = !v.markers
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		v.panelOpen = !v.panelOpen
	}

	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !v.panelHit(mouse) {
		v.sim.TriggerShockwave(mouse.X, mouse.Y, v.strength*3)
	}

	if rl.IsKeyPressed(rl.KeyG) {
		v.gravityOn = !v.gravityOn
		v.sim.SetGravityWell(mouse.X, mouse.Y, v.gravityOn, v.gravityPull)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.gravityPull = !v.gravityPull
		if v.gravityOn {
			v.sim.SetGravityWell(mouse.X, mouse.Y, true, v.gravityPull)
		}
	}
	if v.gravityOn && rl.IsMouseButtonDown(rl.MouseButtonRight) {
		v.sim.UpdateGravityWellPosition(mouse.X, mouse.Y)
	}
}

// Draw renders the current mesh.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(12, 14, 22, 255))

	v.drawTriangles()
	if v.wireframe {
		v.drawStrokes()
	}
	if v.markers {
		v.drawMarkers()
	}
	if v.panelOpen {
		v.drawControls()
	}

	v.drawHUD()
	rl.EndDrawing()
}

func (v *Viewer) drawTriangles() {
	buf := v.sim.TriangleVertices()
	for i := 0; i+18 <= len(buf); i += 18 {
		p0 := rl.NewVector2(buf[i], buf[i+1])
		p1 := rl.NewVector2(buf[i+6], buf[i+7])
		p2 := rl.NewVector2(buf[i+12], buf[i+13])

		// raylib only fills counter-clockwise vertex order
		if (p1.X-p0.X)*(p2.Y-p0.Y)-(p2.X-p0.X)*(p1.Y-p0.Y) > 0 {
			p1, p2 = p2, p1
		}

		rl.DrawTriangle(p0, p1, p2, heightColor(buf[i+2]))
	}
}

func (v *Viewer) drawStrokes() {
	buf := v.sim.StrokeVertices()
	stroke := rl.NewColor(90, 110, 150, 70)
	for i := 0; i+4 <= len(buf); i += 4 {
		rl.DrawLineV(rl.NewVector2(buf[i], buf[i+1]), rl.NewVector2(buf[i+2], buf[i+3]), stroke)
	}
}

func (v *Viewer) drawMarkers() {
	buf := v.sim.PointVertices()
	marker := rl.NewColor(200, 215, 240, 160)
	for i := 0; i+2 <= len(buf); i += 2 {
		rl.DrawCircleV(rl.NewVector2(buf[i], buf[i+1]), 1.5, marker)
	}
}

func (v *Viewer) drawHUD() {
	rl.DrawFPS(10, 10)
	modeNames := [3]string{"push", "pull", "swirl"}
	rl.DrawText("mode: "+modeNames[v.mode]+"  [1/2/3]  W wireframe  P points  G well  TAB panel",
		10, 34, 10, rl.Gray)
}

// heightColor maps a static height to a shading color.
func heightColor(h float32) rl.Color {
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}
	base := uint8(30 + h*180)
	return rl.NewColor(base/3, base/2, base, 255)
}
