package particle

import (
	"math"
	"testing"

	"meshdrift/noise"
	"meshdrift/rng"
)

func testField() *noise.Field {
	return noise.New(42, 4, 0.5, 2.0)
}

func TestNewRandomInBounds(t *testing.T) {
	r := rng.New(42)
	f := testField()
	for i := 0; i < 200; i++ {
		p := NewRandom(r, 800, 600, f, 0.003, 0.6, 0.5)
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Fatalf("point %d out of bounds: (%v, %v)", i, p.X, p.Y)
		}
		if p.VX < -0.5 || p.VX > 0.5 || p.VY < -0.5 || p.VY > 0.5 {
			t.Fatalf("point %d drift out of range: (%v, %v)", i, p.VX, p.VY)
		}
		if p.X != p.BaseX || p.Y != p.BaseY {
			t.Fatalf("point %d rendered position must start at rest position", i)
		}
	}
}

func TestIntegrationInvariant(t *testing.T) {
	r := rng.New(7)
	f := testField()
	p := NewRandom(r, 800, 600, f, 0.003, 0.6, 0.5)
	p.DX = 12
	p.DY = -8

	for i := 0; i < 100; i++ {
		p.Advance(0.016, 1.0, 800, 600)
		p.ApplySpring(0.06, 0.92)

		if p.X != p.BaseX+p.DX || p.Y != p.BaseY+p.DY {
			t.Fatalf("step %d: position invariant broken: x=%v base=%v dx=%v", i, p.X, p.BaseX, p.DX)
		}
	}
}

func TestAdvanceWraps(t *testing.T) {
	tests := []struct {
		name           string
		baseX, baseY   float32
		vx, vy         float32
		wantX0, wantY0 bool // expect in [0, dim) after advance
	}{
		{"right edge", 799.9, 300, 50, 0, true, true},
		{"left edge", 0.05, 300, -50, 0, true, true},
		{"bottom edge", 400, 599.9, 0, 50, true, true},
		{"top edge", 400, 0.05, 0, -50, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Point{BaseX: tt.baseX, BaseY: tt.baseY, VX: tt.vx, VY: tt.vy}
			p.Advance(0.016, 1.0, 800, 600)
			if p.BaseX < 0 || p.BaseX >= 800 {
				t.Errorf("BaseX = %v, want [0, 800)", p.BaseX)
			}
			if p.BaseY < 0 || p.BaseY >= 600 {
				t.Errorf("BaseY = %v, want [0, 600)", p.BaseY)
			}
		})
	}
}

func TestSpringConverges(t *testing.T) {
	p := Point{X: 100, Y: 100, BaseX: 100, BaseY: 100, DX: 40, DY: -40}
	p.X = p.BaseX + p.DX
	p.Y = p.BaseY + p.DY

	for i := 0; i < 500; i++ {
		p.ApplySpring(0.06, 0.92)
	}

	if math.Abs(float64(p.X-p.BaseX)) > 0.01 || math.Abs(float64(p.Y-p.BaseY)) > 0.01 {
		t.Errorf("displacement did not decay: dx=%v dy=%v", p.X-p.BaseX, p.Y-p.BaseY)
	}
}

func TestRescale(t *testing.T) {
	p := Point{X: 100, Y: 50, BaseX: 90, BaseY: 45, VX: 0.2, VY: -0.3}
	p.Rescale(2, 3)

	if p.X != 200 || p.Y != 150 || p.BaseX != 180 || p.BaseY != 135 {
		t.Errorf("positions not scaled: %+v", p)
	}
	if p.VX != 0.2 || p.VY != -0.3 {
		t.Errorf("velocities must not scale: vx=%v vy=%v", p.VX, p.VY)
	}
}

func TestHeightRangeAndFalloff(t *testing.T) {
	f := testField()
	for i := 0; i < 100; i++ {
		x := float32(i) * 8
		y := float32(i) * 6
		h := Height(x, y, 800, 600, f, 0.003, 0.6)
		// [0,1] noise x max falloff 1.0 x intensity 0.6
		if h < 0 || h > 0.6 {
			t.Fatalf("Height(%v, %v) = %v, want [0, 0.6]", x, y, h)
		}
	}
}
