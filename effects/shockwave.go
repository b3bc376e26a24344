package effects

// Shockwave is an expanding ring force. The radius grows by a fixed speed
// per update while the strength decays exponentially.
type Shockwave struct {
	X, Y     float32
	Radius   float32
	Strength float32
	Speed    float32
}

// Active reports whether the wave still exerts meaningful force.
func (w *Shockwave) Active(minStrength float32) bool {
	return w.Strength > minStrength
}

// Shockwaves is a FIFO-bounded collection of live waves.
type Shockwaves struct {
	waves       []Shockwave
	maxCount    int
	speed       float32
	decay       float32
	minStrength float32
	maxStrength float32
}

// NewShockwaves creates an empty collection with the given behavior.
func NewShockwaves(maxCount int, speed, decay, minStrength, maxStrength float32) *Shockwaves {
	if maxCount < 1 {
		maxCount = 1
	}
	return &Shockwaves{
		waves:       make([]Shockwave, 0, maxCount),
		maxCount:    maxCount,
		speed:       speed,
		decay:       decay,
		minStrength: minStrength,
		maxStrength: maxStrength,
	}
}

// Trigger spawns a wave at a position, clamping strength to the legal
// range and evicting the oldest wave when at capacity.
func (s *Shockwaves) Trigger(x, y, strength float32) {
	if strength < 0 {
		strength = 0
	}
	if strength > s.maxStrength {
		strength = s.maxStrength
	}

	if len(s.waves) >= s.maxCount {
		copy(s.waves, s.waves[1:])
		s.waves = s.waves[:len(s.waves)-1]
	}

	s.waves = append(s.waves, Shockwave{X: x, Y: y, Strength: strength, Speed: s.speed})
}

// Update advances every wave and prunes the inactive ones in place.
func (s *Shockwaves) Update() {
	live := s.waves[:0]
	for i := range s.waves {
		w := &s.waves[i]
		w.Radius += w.Speed
		w.Strength *= s.decay
		if w.Active(s.minStrength) {
			live = append(live, *w)
		}
	}
	s.waves = live
}

// Active returns the live waves. The slice is owned by the collection and
// valid until the next Trigger or Update.
func (s *Shockwaves) Active() []Shockwave {
	return s.waves
}

// Len returns the number of live waves.
func (s *Shockwaves) Len() int {
	return len(s.waves)
}

// MaxRadius returns the widest outer ring edge among live waves, used to
// size the spatial grid.
func (s *Shockwaves) MaxRadius(waveWidth float32) float32 {
	var max float32
	for i := range s.waves {
		if r := s.waves[i].Radius + waveWidth; r > max {
			max = r
		}
	}
	return max
}
