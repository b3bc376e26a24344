package viewer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controls panel layout.
const (
	panelX      = float32(10)
	panelY      = float32(60)
	panelWidth  = float32(250)
	panelHeight = float32(250)
	sliderW     = panelWidth - 90
)

// panelHit reports whether a screen position lands on the open panel, so
// clicks on controls do not also trigger shockwaves.
func (v *Viewer) panelHit(pos rl.Vector2) bool {
	if !v.panelOpen {
		return false
	}
	return pos.X >= panelX && pos.X <= panelX+panelWidth &&
		pos.Y >= panelY && pos.Y <= panelY+panelHeight
}

// drawControls renders the tuning panel and pushes any edits into the
// simulation.
func (v *Viewer) drawControls() {
	rl.DrawRectangle(int32(panelX), int32(panelY), int32(panelWidth), int32(panelHeight),
		rl.NewColor(20, 24, 34, 230))

	x := panelX + 10
	y := panelY + 8

	rl.DrawText("Tuning", int32(x), int32(y), 16, rl.RayWhite)
	y += 26

	y = v.slider(x, y, "radius", &v.radius, 30, 400, "%.0f")
	y = v.slider(x, y, "strength", &v.strength, 0, 200, "%.0f")
	y = v.slider(x, y, "speed", &v.speed, 0, 5, "%.1f")

	scale := v.noiseScale
	intensity := v.noiseIntensity
	y = v.slider(x, y, "noise scale", &scale, 0.0005, 0.02, "%.4f")
	y = v.slider(x, y, "height", &intensity, 0, 2, "%.2f")

	if scale != v.noiseScale || intensity != v.noiseIntensity {
		v.noiseScale = scale
		v.noiseIntensity = intensity
		v.sim.SetNoiseParams(scale, intensity)
	}

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 24},
		toggleText(v.wireframe, "Mesh only", "Wireframe")) {
		v.wireframe = !v.wireframe
	}
}

// slider draws one labeled SliderBar row and returns the next row's y.
func (v *Viewer) slider(x, y float32, label string, value *float32, min, max float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(y), 12, rl.Gray)
	y += 16

	*value = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 16},
		"", "",
		*value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, *value), int32(x+sliderW+8), int32(y), 14, rl.LightGray)

	return y + 22
}

func toggleText(state bool, on, off string) string {
	if state {
		return on
	}
	return off
}
