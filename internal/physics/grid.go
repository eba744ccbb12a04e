package physics

import "math"

// SpatialGrid buckets item indices by position in a wrapping world, so a
// query only visits the 3x3 cells around a point.
//
// The cell size must be at least the largest interaction distance, or pairs
// straddling two cells apart are missed.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int // Reused between frames
}

// NewSpatialGrid creates a grid covering worldW x worldH.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := max(1, int(math.Ceil(worldW/cellSize)))
	rows := max(1, int(math.Ceil(worldH/cellSize)))
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear empties every cell, keeping their capacity.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert records index at (x, y).
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.cell(x, y)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], index)
}

// QueryAround calls fn for every index in the 3x3 neighbourhood of (x, y),
// wrapping at the world edges. Returning true from fn stops the query.
// With fewer than three columns or rows a cell may be visited twice.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.cell(x, y)
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			c := (col + dc + g.cols) % g.cols
			for _, idx := range g.cells[r*g.cols+c] {
				if fn(idx) {
					return
				}
			}
		}
	}
}

// cell maps a position to its cell, wrapping positions outside the world.
func (g *SpatialGrid) cell(x, y float64) (col, row int) {
	col = int(math.Floor(x*g.invCellSize)) % g.cols
	if col < 0 {
		col += g.cols
	}
	row = int(math.Floor(y*g.invCellSize)) % g.rows
	if row < 0 {
		row += g.rows
	}
	return col, row
}
