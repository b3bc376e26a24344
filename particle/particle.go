// Package particle defines the single-point state and its integration steps.
package particle

import (
	"math"

	"meshdrift/noise"
	"meshdrift/rng"
)

// Point is one simulation particle.
//
// X/Y is the rendered position, BaseX/BaseY the drifting rest position,
// DX/DY the spring-restorable displacement from interactions. After each
// integration step X = BaseX + DX and Y = BaseY + DY.
type Point struct {
	X, Y         float32
	Z            float32 // static height for shading, generated from noise
	BaseX, BaseY float32
	VX, VY       float32 // constant drift velocity
	DX, DY       float32 // displacement velocity from interactions
}

// NewRandom places a point uniformly in bounds with a random drift velocity
// in [-baseVelocity, baseVelocity] per axis and a static noise height.
func NewRandom(r *rng.Source, width, height float32, field *noise.Field, noiseScale, intensity, baseVelocity float32) Point {
	x := r.Float32() * width
	y := r.Float32() * height
	vx := (r.Float32() - 0.5) * baseVelocity * 2
	vy := (r.Float32() - 0.5) * baseVelocity * 2

	return Point{
		X: x, Y: y,
		Z:     Height(x, y, width, height, field, noiseScale, intensity),
		BaseX: x, BaseY: y,
		VX: vx, VY: vy,
	}
}

// Height computes the static shading height at a position: normalized
// fractal noise with a radial falloff from the bounds center.
func Height(x, y, width, height float32, field *noise.Field, scale, intensity float32) float32 {
	cx := width / 2
	cy := height / 2
	maxDist := float32(math.Sqrt(float64(cx*cx + cy*cy)))

	z := float32(field.Sample(float64(x*scale), float64(y*scale), 0))

	// Normalize from [-1, 1] to [0, 1]
	z = (z + 1) / 2

	dx := x - cx
	dy := y - cy
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	falloff := 1 - (dist/maxDist)*0.3
	z *= falloff

	return z * intensity
}

// RegenerateHeight recomputes Z from the current rest position.
func (p *Point) RegenerateHeight(width, height float32, field *noise.Field, scale, intensity float32) {
	p.Z = Height(p.BaseX, p.BaseY, width, height, field, scale, intensity)
}

// Advance applies drift to the rest position and wraps each axis once if
// out of bounds. A single add/subtract per step is sufficient because
// per-frame displacement is bounded by the clamped dt and speed; a modulo
// would behave differently for positions exactly on the boundary.
func (p *Point) Advance(dt, speed, width, height float32) {
	p.BaseX += p.VX * speed * dt
	p.BaseY += p.VY * speed * dt

	if p.BaseX < 0 {
		p.BaseX += width
	}
	if p.BaseX > width {
		p.BaseX -= width
	}
	if p.BaseY < 0 {
		p.BaseY += height
	}
	if p.BaseY > height {
		p.BaseY -= height
	}
}

// ApplySpring pulls the displacement back toward zero, damps it, then
// recomputes the rendered position. Accumulate before damping: the spring
// pull of this frame is damped along with prior displacement.
func (p *Point) ApplySpring(springBack, damping float32) {
	p.DX += (0 - (p.X - p.BaseX)) * springBack
	p.DY += (0 - (p.Y - p.BaseY)) * springBack

	p.DX *= damping
	p.DY *= damping

	p.X = p.BaseX + p.DX
	p.Y = p.BaseY + p.DY
}

// Rescale scales positions (not velocities) when the bounds change.
func (p *Point) Rescale(sx, sy float32) {
	p.X *= sx
	p.Y *= sy
	p.BaseX *= sx
	p.BaseY *= sy
}
