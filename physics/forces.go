// Package physics applies the interactive force kernels to points.
//
// Every kernel follows the same two-phase shape: gather candidates from
// the spatial grid (broad phase), then confirm with an exact squared
// distance before committing force (narrow phase). Forces accumulate into
// the displacement velocity, never directly into position.
package physics

import (
	"math"

	"meshdrift/effects"
	"meshdrift/particle"
	"meshdrift/spatial"
)

// minDistSq guards the kernels against division blow-up when a point sits
// nearly on top of a force origin.
const minDistSq = 1.0

// Kernel strength scales, tuned against the spring/damping defaults.
const (
	mouseScale = 0.08
	waveScale  = 0.15
)

// GravityParams bounds the gravity well kernel.
type GravityParams struct {
	MinDist  float32 // distance floor near the well center
	MaxRange float32 // influence cutoff
}

// ApplyMouse pushes, pulls or swirls points within the pointer radius.
// Returns the query scratch slice for reuse.
func ApplyMouse(points []particle.Point, mouse *effects.MouseState, velocityInfluence float32, grid *spatial.Grid, scratch []int) []int {
	if !mouse.InBounds {
		return scratch
	}

	radius := mouse.Radius
	radiusSq := radius * radius
	boost := 1 + mouse.Speed()*velocityInfluence

	scratch = grid.QueryRadiusInto(scratch[:0], mouse.X, mouse.Y, radius)

	for _, idx := range scratch {
		p := &points[idx]
		dx := p.X - mouse.X
		dy := p.Y - mouse.Y
		distSq := dx*dx + dy*dy

		if distSq >= radiusSq || distSq < minDistSq {
			continue
		}

		dist := float32(math.Sqrt(float64(distSq)))
		t := 1 - dist/radius
		falloff := t * t * (3 - 2*t) // smoothstep

		push := mouse.Strength * falloff * boost * mouseScale
		invDist := 1 / dist
		nx := dx * invDist
		ny := dy * invDist

		switch mouse.Mode {
		case effects.ModePush:
			p.DX += nx * push
			p.DY += ny * push
		case effects.ModePull:
			p.DX -= nx * push * 0.5
			p.DY -= ny * push * 0.5
		case effects.ModeSwirl:
			// Tangential orbit plus a slight outward drift
			p.DX += -dy * invDist * push * 0.7
			p.DY += dx * invDist * push * 0.7
			p.DX += nx * push * 0.2
			p.DY += ny * push * 0.2
		}
	}

	return scratch
}

// ApplyGravity draws points toward (or away from) the well. Unlike the
// other kernels the distance is clamped to a floor rather than skipped,
// so points near the center keep a finite, stable force.
func ApplyGravity(points []particle.Point, well effects.GravityWell, params GravityParams, grid *spatial.Grid, scratch []int) []int {
	minSq := params.MinDist * params.MinDist
	maxSq := params.MaxRange * params.MaxRange

	scratch = grid.QueryRadiusInto(scratch[:0], well.X, well.Y, params.MaxRange)

	for _, idx := range scratch {
		p := &points[idx]
		dx := well.X - p.X
		dy := well.Y - p.Y
		distSq := dx*dx + dy*dy

		if distSq > maxSq {
			continue
		}

		var dist float32
		if distSq < minSq {
			dist = params.MinDist
		} else {
			dist = float32(math.Sqrt(float64(distSq)))
		}

		force := well.Strength / (dist * 0.1)
		invDist := 1 / dist
		p.DX += dx * invDist * force
		p.DY += dy * invDist * force
	}

	return scratch
}

// ApplyShockwave pushes points outward within the wave's ring.
func ApplyShockwave(points []particle.Point, wave effects.Shockwave, waveWidth float32, grid *spatial.Grid, scratch []int) []int {
	minRadius := wave.Radius - waveWidth
	if minRadius < 0 {
		minRadius = 0
	}
	maxRadius := wave.Radius + waveWidth
	minSq := minRadius * minRadius
	maxSq := maxRadius * maxRadius

	scratch = grid.QueryRadiusInto(scratch[:0], wave.X, wave.Y, maxRadius)

	for _, idx := range scratch {
		p := &points[idx]
		dx := p.X - wave.X
		dy := p.Y - wave.Y
		distSq := dx*dx + dy*dy

		if distSq < minSq || distSq > maxSq || distSq < minDistSq {
			continue
		}

		dist := float32(math.Sqrt(float64(distSq)))
		ringDist := float32(math.Abs(float64(dist - wave.Radius)))

		if ringDist < waveWidth {
			falloff := 1 - ringDist/waveWidth
			push := wave.Strength * falloff * waveScale

			invDist := 1 / dist
			p.DX += dx * invDist * push
			p.DY += dy * invDist * push
		}
	}

	return scratch
}
