// Package noise provides the seeded fractal noise field used for static
// point heights.
package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Field samples fractal brownian motion over a seeded simplex generator.
// Output is deterministic for a given seed and octave parameters.
type Field struct {
	gen         opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
}

// New creates a noise field. octaves below 1 is coerced to 1.
func New(seed int64, octaves int, persistence, lacunarity float64) *Field {
	if octaves < 1 {
		octaves = 1
	}
	return &Field{
		gen:         opensimplex.New(seed),
		octaves:     octaves,
		persistence: persistence,
		lacunarity:  lacunarity,
	}
}

// Sample returns fractal noise at (x, y, z) in [-1, 1].
func (f *Field) Sample(x, y, z float64) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0

	for i := 0; i < f.octaves; i++ {
		value += amplitude * f.gen.Eval3(x*frequency, y*frequency, z*frequency)
		maxValue += amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}

	return value / maxValue
}
