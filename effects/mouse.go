// Package effects holds the interactive force sources: pointer state,
// expanding shockwaves and the optional gravity well.
package effects

import "math"

// MouseMode selects the pointer force behavior. The set is closed; force
// dispatch switches exhaustively over it.
type MouseMode uint8

const (
	ModePush MouseMode = iota
	ModePull
	ModeSwirl
)

// ModeFromCode maps a host-side integer code to a mode. Unrecognized
// codes fall back to Push.
func ModeFromCode(code uint32) MouseMode {
	switch code {
	case 1:
		return ModePull
	case 2:
		return ModeSwirl
	default:
		return ModePush
	}
}

// MouseState tracks the pointer with a smoothed velocity estimate.
type MouseState struct {
	X, Y         float32
	PrevX, PrevY float32
	VX, VY       float32
	InBounds     bool
	Radius       float32
	Strength     float32
	Mode         MouseMode
}

// NewMouseState creates a pointer state with the given default reach.
func NewMouseState(radius, strength float32) MouseState {
	return MouseState{Radius: radius, Strength: strength, Mode: ModePush}
}

// Update records a pointer report. Velocity is exponentially blended
// (0.4 new / 0.6 old) while in bounds and decays by 0.9 per update
// otherwise, so force falls off smoothly when the pointer leaves.
func (m *MouseState) Update(x, y float32, inBounds bool, radius, strength float32, mode uint32) {
	m.PrevX = m.X
	m.PrevY = m.Y
	m.X = x
	m.Y = y
	m.InBounds = inBounds
	m.Radius = radius
	m.Strength = strength

	if inBounds {
		newVX := x - m.PrevX
		newVY := y - m.PrevY
		m.VX = newVX*0.4 + m.VX*0.6
		m.VY = newVY*0.4 + m.VY*0.6
	} else {
		m.VX *= 0.9
		m.VY *= 0.9
	}

	m.Mode = ModeFromCode(mode)
}

// Speed returns the magnitude of the smoothed pointer velocity.
func (m *MouseState) Speed() float32 {
	return float32(math.Sqrt(float64(m.VX*m.VX + m.VY*m.VY)))
}
