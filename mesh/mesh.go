// Package mesh turns the wrap-around point cloud into renderable vertex
// buffers via ghost-point synthesis and Delaunay triangulation.
package mesh

import (
	"github.com/fogleman/delaunay"

	"meshdrift/particle"
)

// vert is a triangulation input point with its shading height.
type vert struct {
	x, y, z float32
}

// Buffers holds the three per-frame outputs. All slices are rebuilt in
// place on every Triangulate call; internal scratch is reused too, so a
// long-lived Buffers allocates only while the mesh is still growing.
type Buffers struct {
	// Triangles holds 6 floats per vertex, 18 per triangle:
	// x, y, avgHeight, centroidY, centroidX, centroidY.
	Triangles []float32
	// Strokes holds 4 floats per edge, 12 per triangle: x1, y1, x2, y2.
	Strokes []float32
	// Points holds 2 floats per genuine (non-ghost, non-anchor) point.
	Points []float32

	ghosts  []vert
	all     []vert
	dpoints []delaunay.Point
}

// NewBuffers creates an empty buffer set.
func NewBuffers() *Buffers {
	return &Buffers{}
}

// TriangleCount returns the number of triangles in the current buffers.
func (b *Buffers) TriangleCount() int {
	return len(b.Triangles) / 18
}

// StrokeVertexCount returns the number of stroke endpoints (x,y pairs).
func (b *Buffers) StrokeVertexCount() int {
	return len(b.Strokes) / 2
}

// appendGhosts mirrors every near-edge point across the wrap boundary:
// up to 4 edge copies, plus up to 4 diagonal copies for corner regions.
// Ghosts carry the source point's height so shading stays continuous.
func appendGhosts(dst []vert, points []particle.Point, width, height, threshold float32) []vert {
	thresholdX := width * threshold
	thresholdY := height * threshold

	for i := range points {
		p := &points[i]
		nearLeft := p.X < thresholdX
		nearRight := p.X > width-thresholdX
		nearTop := p.Y < thresholdY
		nearBottom := p.Y > height-thresholdY

		if nearLeft {
			dst = append(dst, vert{p.X + width, p.Y, p.Z})
		}
		if nearRight {
			dst = append(dst, vert{p.X - width, p.Y, p.Z})
		}
		if nearTop {
			dst = append(dst, vert{p.X, p.Y + height, p.Z})
		}
		if nearBottom {
			dst = append(dst, vert{p.X, p.Y - height, p.Z})
		}

		if nearLeft && nearTop {
			dst = append(dst, vert{p.X + width, p.Y + height, p.Z})
		}
		if nearLeft && nearBottom {
			dst = append(dst, vert{p.X + width, p.Y - height, p.Z})
		}
		if nearRight && nearTop {
			dst = append(dst, vert{p.X - width, p.Y + height, p.Z})
		}
		if nearRight && nearBottom {
			dst = append(dst, vert{p.X - width, p.Y - height, p.Z})
		}
	}

	return dst
}

// Triangulate rebuilds all three buffers from the current points and
// returns the triangle count. On a triangulation failure the buffers are
// left untouched (the previous frame's mesh remains valid) and the error
// is returned.
func (b *Buffers) Triangulate(points []particle.Point, width, height, ghostThreshold float32) (int, error) {
	b.ghosts = appendGhosts(b.ghosts[:0], points, width, height, ghostThreshold)

	// Corner anchors just outside the bounds guarantee full rectangular
	// coverage regardless of where the points have drifted.
	const margin = 1.0
	corners := [4]vert{
		{-margin, -margin, 0},
		{width + margin, -margin, 0},
		{width + margin, height + margin, 0},
		{-margin, height + margin, 0},
	}

	b.all = b.all[:0]
	for i := range points {
		b.all = append(b.all, vert{points[i].X, points[i].Y, points[i].Z})
	}
	b.all = append(b.all, b.ghosts...)
	b.all = append(b.all, corners[:]...)

	b.dpoints = b.dpoints[:0]
	for _, v := range b.all {
		b.dpoints = append(b.dpoints, delaunay.Point{X: float64(v.x), Y: float64(v.y)})
	}

	tri, err := delaunay.Triangulate(b.dpoints)
	if err != nil {
		return 0, err
	}

	b.buildTriangles(tri.Triangles)
	b.buildStrokes(tri.Triangles)
	b.buildPoints(points)

	return len(tri.Triangles) / 3, nil
}

func (b *Buffers) buildTriangles(triangles []int) {
	b.Triangles = b.Triangles[:0]

	for i := 0; i < len(triangles); i += 3 {
		p0 := b.all[triangles[i]]
		p1 := b.all[triangles[i+1]]
		p2 := b.all[triangles[i+2]]

		centroidX := (p0.x + p1.x + p2.x) / 3
		centroidY := (p0.y + p1.y + p2.y) / 3
		avgHeight := (p0.z + p1.z + p2.z) / 3

		for _, p := range [3]vert{p0, p1, p2} {
			b.Triangles = append(b.Triangles,
				p.x, p.y, avgHeight, centroidY, centroidX, centroidY)
		}
	}
}

func (b *Buffers) buildStrokes(triangles []int) {
	b.Strokes = b.Strokes[:0]

	for i := 0; i < len(triangles); i += 3 {
		p0 := b.all[triangles[i]]
		p1 := b.all[triangles[i+1]]
		p2 := b.all[triangles[i+2]]

		b.Strokes = append(b.Strokes,
			p0.x, p0.y, p1.x, p1.y,
			p1.x, p1.y, p2.x, p2.y,
			p2.x, p2.y, p0.x, p0.y)
	}
}

func (b *Buffers) buildPoints(points []particle.Point) {
	b.Points = b.Points[:0]
	for i := range points {
		b.Points = append(b.Points, points[i].X, points[i].Y)
	}
}
