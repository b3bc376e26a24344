// Package spatial provides a uniform bucket grid over the simulation
// bounds for broad-phase radius queries.
package spatial

import "math"

// Grid partitions the bounds into cols x rows cells and stores point
// indices per cell. It is rebuilt every frame; cell storage is reused
// across rebuilds to avoid allocation churn.
type Grid struct {
	cells    [][]int
	cellSize float32
	cols     int
	rows     int
	width    float32
	height   float32
}

// NewGrid creates a grid. cellSize is floored at 1 to avoid degenerate
// division; cols and rows are at least 1.
func NewGrid(width, height, cellSize float32) *Grid {
	g := &Grid{}
	g.configure(width, height, cellSize)
	g.cells = make([][]int, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = make([]int, 0, 8)
	}
	return g
}

func (g *Grid) configure(width, height, cellSize float32) {
	if cellSize < 1 {
		cellSize = 1
	}
	cols := int(math.Ceil(float64(width / cellSize)))
	rows := int(math.Ceil(float64(height / cellSize)))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.width = width
	g.height = height
	g.cellSize = cellSize
	g.cols = cols
	g.rows = rows
}

// CellSize returns the current cell side length.
func (g *Grid) CellSize() float32 { return g.cellSize }

// Width returns the covered width.
func (g *Grid) Width() float32 { return g.width }

// Height returns the covered height.
func (g *Grid) Height() float32 { return g.height }

// Clear empties all cells, keeping their capacity.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Resize reconfigures the grid for new bounds or cell size and clears it.
// Cell storage is only grown when the new layout needs more cells.
func (g *Grid) Resize(width, height, cellSize float32) {
	g.configure(width, height, cellSize)

	need := g.cols * g.rows
	for len(g.cells) < need {
		g.cells = append(g.cells, make([]int, 0, 8))
	}
	g.cells = g.cells[:need]
	g.Clear()
}

// cellIndex returns the flat cell index for a position, clamped into the
// grid so out-of-bounds points land in an edge cell.
func (g *Grid) cellIndex(x, y float32) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)

	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return row*g.cols + col
}

// Insert adds a point index at the given position.
func (g *Grid) Insert(index int, x, y float32) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], index)
}

// QueryRadiusInto appends the indices of every cell intersecting the
// bounding square of the disk at (cx, cy) to dst and returns it. This is
// a conservative superset: callers must re-check exact distance. Reuse
// dst across calls to avoid allocations.
func (g *Grid) QueryRadiusInto(dst []int, cx, cy, radius float32) []int {
	minCol := int(math.Floor(float64((cx - radius) / g.cellSize)))
	maxCol := int(math.Ceil(float64((cx + radius) / g.cellSize)))
	minRow := int(math.Floor(float64((cy - radius) / g.cellSize)))
	maxRow := int(math.Ceil(float64((cy + radius) / g.cellSize)))

	if minCol < 0 {
		minCol = 0
	}
	if maxCol > g.cols {
		maxCol = g.cols
	}
	if minRow < 0 {
		minRow = 0
	}
	if maxRow > g.rows {
		maxRow = g.rows
	}

	for row := minRow; row < maxRow; row++ {
		base := row * g.cols
		for col := minCol; col < maxCol; col++ {
			dst = append(dst, g.cells[base+col]...)
		}
	}

	return dst
}
