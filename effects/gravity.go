package effects

// GravityWell attracts (positive strength) or repels (negative strength)
// points toward its origin. At most one well exists at a time.
type GravityWell struct {
	X, Y     float32
	Strength float32
}

// NewGravityWell creates a well with the given signed strength.
func NewGravityWell(x, y, strength float32) GravityWell {
	return GravityWell{X: x, Y: y, Strength: strength}
}

// SetPosition moves the well without touching its strength.
func (w *GravityWell) SetPosition(x, y float32) {
	w.X = x
	w.Y = y
}
