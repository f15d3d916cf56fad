package routing

import (
	"sort"

	"orthoroute/geometry"
)

// Grid is a dense table of rectangular cells partitioning the working region
// along the ruler lines. Duplicate rulers are legal and produce zero-size
// cells, which downstream stages must tolerate.
type Grid struct {
	rows, cols int
	cells      map[gridIndex]geometry.Rect
}

type gridIndex struct {
	row, col int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[gridIndex]geometry.Rect)}
}

// Set stores a cell and grows the tracked extent.
func (g *Grid) Set(row, col int, r geometry.Rect) {
	if row >= g.rows {
		g.rows = row + 1
	}
	if col >= g.cols {
		g.cols = col + 1
	}
	g.cells[gridIndex{row, col}] = r
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (geometry.Rect, bool) {
	r, ok := g.cells[gridIndex{row, col}]
	return r, ok
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// Rectangles returns every cell in row-major order.
func (g *Grid) Rectangles() []geometry.Rect {
	out := make([]geometry.Rect, 0, len(g.cells))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if r, ok := g.cells[gridIndex{row, col}]; ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// rulers holds the sorted partition lines of the working region.
type rulers struct {
	verticals   []float64
	horizontals []float64
}

// makeRulers derives the ruler lines from the (possibly inflated) scene
// shapes and the two anchors. Vertical rulers take the left and right edge
// of each shape plus the anchor x for vertically oriented sides; horizontal
// rulers are symmetric. Obstacle edges participate so detour lines exist
// around a blocked corridor. Values outside the working bounds are dropped,
// the rest sorted ascending. Duplicates are tolerated.
func makeRulers(a, b ConnectorPoint, shapes []geometry.Rect, bounds geometry.Rect) rulers {
	var v, h []float64

	for _, cp := range []ConnectorPoint{a, b} {
		p := computePoint(cp)
		if cp.Side.IsVertical() {
			v = append(v, p.X)
		} else {
			h = append(h, p.Y)
		}
	}

	for _, shape := range shapes {
		v = append(v, shape.Left, shape.Right())
		h = append(h, shape.Top, shape.Bottom())
	}

	v = clampRulers(v, bounds.Left, bounds.Right())
	h = clampRulers(h, bounds.Top, bounds.Bottom())
	sort.Float64s(v)
	sort.Float64s(h)
	return rulers{verticals: v, horizontals: h}
}

func clampRulers(values []float64, lo, hi float64) []float64 {
	kept := values[:0]
	for _, x := range values {
		if x >= lo && x <= hi {
			kept = append(kept, x)
		}
	}
	return kept
}

// rulersToGrid partitions the working bounds into a dense cell table.
// Consecutive ruler pairs bound each cell; the final row and column extend
// to the working bounds' bottom and right edges.
func rulersToGrid(r rulers, bounds geometry.Rect) *Grid {
	grid := NewGrid()

	lastX, lastY := bounds.Left, bounds.Top
	row := 0

	for _, y := range r.horizontals {
		col := 0
		lastX = bounds.Left
		for _, x := range r.verticals {
			grid.Set(row, col, geometry.RectFromLTRB(lastX, lastY, x, y))
			lastX = x
			col++
		}
		grid.Set(row, col, geometry.RectFromLTRB(lastX, lastY, bounds.Right(), y))
		lastY = y
		row++
	}

	col := 0
	lastX = bounds.Left
	for _, x := range r.verticals {
		grid.Set(row, col, geometry.RectFromLTRB(lastX, lastY, x, bounds.Bottom()))
		lastX = x
		col++
	}
	grid.Set(row, col, geometry.RectFromLTRB(lastX, lastY, bounds.Right(), bounds.Bottom()))

	return grid
}
