package physics

import (
	"math"
	"testing"

	"meshdrift/effects"
	"meshdrift/particle"
	"meshdrift/spatial"
)

// setup builds a grid with every point inserted.
func setup(points []particle.Point) *spatial.Grid {
	g := spatial.NewGrid(800, 600, 75)
	for i := range points {
		g.Insert(i, points[i].X, points[i].Y)
	}
	return g
}

func mouseAt(x, y float32, mode effects.MouseMode) *effects.MouseState {
	m := effects.NewMouseState(150, 80)
	m.X = x
	m.Y = y
	m.InBounds = true
	m.Mode = mode
	return &m
}

func TestMousePushMovesOutward(t *testing.T) {
	points := []particle.Point{{X: 450, Y: 300, BaseX: 450, BaseY: 300}}
	grid := setup(points)

	ApplyMouse(points, mouseAt(400, 300, effects.ModePush), 0.3, grid, nil)

	if points[0].DX <= 0 {
		t.Errorf("push right of cursor: DX = %v, want > 0", points[0].DX)
	}
	if math.Abs(float64(points[0].DY)) > 1e-5 {
		t.Errorf("push along x axis: DY = %v, want ~0", points[0].DY)
	}
}

func TestMousePullMovesInwardAtHalfStrength(t *testing.T) {
	push := []particle.Point{{X: 450, Y: 300}}
	pull := []particle.Point{{X: 450, Y: 300}}
	grid := setup(push)

	ApplyMouse(push, mouseAt(400, 300, effects.ModePush), 0, grid, nil)
	ApplyMouse(pull, mouseAt(400, 300, effects.ModePull), 0, grid, nil)

	if pull[0].DX >= 0 {
		t.Errorf("pull right of cursor: DX = %v, want < 0", pull[0].DX)
	}
	ratio := -pull[0].DX / push[0].DX
	if math.Abs(float64(ratio-0.5)) > 1e-4 {
		t.Errorf("pull/push ratio = %v, want 0.5", ratio)
	}
}

func TestMouseSwirlIsMostlyTangential(t *testing.T) {
	points := []particle.Point{{X: 450, Y: 300}}
	grid := setup(points)

	ApplyMouse(points, mouseAt(400, 300, effects.ModeSwirl), 0, grid, nil)

	// Point is along +x from the cursor: tangent is +y, outward is +x.
	// Tangential (0.7x) must dominate the outward drift (0.2x).
	if points[0].DY <= 0 {
		t.Errorf("swirl tangent: DY = %v, want > 0", points[0].DY)
	}
	if points[0].DX <= 0 {
		t.Errorf("swirl outward drift: DX = %v, want > 0", points[0].DX)
	}
	if points[0].DY <= points[0].DX {
		t.Errorf("tangential %v must exceed outward %v", points[0].DY, points[0].DX)
	}
}

func TestMouseSkipsOutOfRangeAndCoincident(t *testing.T) {
	points := []particle.Point{
		{X: 400, Y: 300},   // coincident with cursor
		{X: 700, Y: 300},   // beyond radius 150
		{X: 400.5, Y: 300}, // inside the min-distance guard
	}
	grid := setup(points)

	ApplyMouse(points, mouseAt(400, 300, effects.ModePush), 0, grid, nil)

	for i, p := range points {
		if p.DX != 0 || p.DY != 0 {
			t.Errorf("point %d must be untouched, got (%v, %v)", i, p.DX, p.DY)
		}
	}
}

func TestMouseOutOfBoundsIsNoop(t *testing.T) {
	points := []particle.Point{{X: 450, Y: 300}}
	grid := setup(points)

	m := mouseAt(400, 300, effects.ModePush)
	m.InBounds = false
	ApplyMouse(points, m, 0.3, grid, nil)

	if points[0].DX != 0 || points[0].DY != 0 {
		t.Errorf("out-of-bounds mouse applied force: (%v, %v)", points[0].DX, points[0].DY)
	}
}

func TestMouseVelocityBoost(t *testing.T) {
	still := []particle.Point{{X: 450, Y: 300}}
	moving := []particle.Point{{X: 450, Y: 300}}
	grid := setup(still)

	ApplyMouse(still, mouseAt(400, 300, effects.ModePush), 0.3, grid, nil)

	m := mouseAt(400, 300, effects.ModePush)
	m.VX = 10
	ApplyMouse(moving, m, 0.3, grid, nil)

	if moving[0].DX <= still[0].DX {
		t.Errorf("velocity boost missing: moving %v <= still %v", moving[0].DX, still[0].DX)
	}
}

func TestGravityAttractAndRepel(t *testing.T) {
	params := GravityParams{MinDist: 20, MaxRange: 1000}

	attract := []particle.Point{{X: 500, Y: 300}}
	grid := setup(attract)
	ApplyGravity(attract, effects.NewGravityWell(400, 300, 3), params, grid, nil)
	if attract[0].DX >= 0 {
		t.Errorf("attract: DX = %v, want < 0 (toward well)", attract[0].DX)
	}

	repel := []particle.Point{{X: 500, Y: 300}}
	ApplyGravity(repel, effects.NewGravityWell(400, 300, -5), params, grid, nil)
	if repel[0].DX <= 0 {
		t.Errorf("repel: DX = %v, want > 0 (away from well)", repel[0].DX)
	}
}

func TestGravityClampsNearCenter(t *testing.T) {
	params := GravityParams{MinDist: 20, MaxRange: 1000}
	points := []particle.Point{
		{X: 400, Y: 300}, // exactly on the well
		{X: 410, Y: 300}, // dist 10, inside the floor
	}
	grid := setup(points)

	ApplyGravity(points, effects.NewGravityWell(400, 300, 3), params, grid, nil)

	for i, p := range points {
		if math.IsNaN(float64(p.DX)) || math.IsInf(float64(p.DX), 0) {
			t.Fatalf("point %d: force near center not finite: %v", i, p.DX)
		}
	}

	// dist clamped to 20: force = 3/(20*0.1) = 1.5, direction scaled by
	// the true offset over the floor: 1.5 * 10/20 = 0.75 toward the well
	if math.Abs(float64(points[1].DX+0.75)) > 1e-3 {
		t.Errorf("clamped force DX = %v, want -0.75", points[1].DX)
	}
}

func TestGravitySkipsBeyondRange(t *testing.T) {
	params := GravityParams{MinDist: 20, MaxRange: 50}
	points := []particle.Point{{X: 500, Y: 300}}
	grid := setup(points)

	ApplyGravity(points, effects.NewGravityWell(400, 300, 3), params, grid, nil)
	if points[0].DX != 0 {
		t.Errorf("point beyond max range must be skipped, got DX = %v", points[0].DX)
	}
}

func TestShockwaveRingOnly(t *testing.T) {
	wave := effects.Shockwave{X: 400, Y: 300, Radius: 100, Strength: 200}
	points := []particle.Point{
		{X: 500, Y: 300}, // dist 100: ring center
		{X: 410, Y: 300}, // dist 10: inside the ring
		{X: 700, Y: 300}, // dist 300: outside the ring
	}
	grid := setup(points)

	ApplyShockwave(points, wave, 60, grid, nil)

	if points[0].DX <= 0 {
		t.Errorf("ring-center point: DX = %v, want > 0 (outward)", points[0].DX)
	}
	if points[1].DX != 0 || points[2].DX != 0 {
		t.Errorf("points off the ring must be untouched: inner %v, outer %v",
			points[1].DX, points[2].DX)
	}
}

func TestShockwaveFalloffAtRingEdge(t *testing.T) {
	wave := effects.Shockwave{X: 400, Y: 300, Radius: 100, Strength: 200}
	center := []particle.Point{{X: 500, Y: 300}}   // ringDist 0
	nearEdge := []particle.Point{{X: 550, Y: 300}} // ringDist 50 of width 60
	grid := setup(center)

	ApplyShockwave(center, wave, 60, grid, nil)
	ApplyShockwave(nearEdge, wave, 60, grid, nil)

	if nearEdge[0].DX >= center[0].DX {
		t.Errorf("falloff missing: edge %v >= center %v", nearEdge[0].DX, center[0].DX)
	}
}
