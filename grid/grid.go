package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular canvas of cells addressed as (row, col) with
// 0-based coordinates. Reads outside the bounds yield Empty; writes
// outside the bounds are dropped.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// New returns an empty rows×cols canvas. Negative dimensions clamp to 0.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) addresses a cell of the canvas.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell at (r, c), or an Empty cell when the coordinate
// lies outside the canvas.
func (g *Grid) At(r, c int) Cell {
	if !g.InBounds(r, c) {
		return Cell{}
	}
	return g.cells[r][c]
}

// Set overwrites the cell at (r, c). Out-of-bounds writes are dropped.
func (g *Grid) Set(r, c int, cell Cell) {
	if !g.InBounds(r, c) {
		return
	}
	g.cells[r][c] = cell
}

// Clear empties the cell at (r, c).
func (g *Grid) Clear(r, c int) { g.Set(r, c, Cell{}) }

// AddNode stamps a site of the given weight onto (r, c):
//
//	Empty            → Occupied
//	Occupied (same w) → Doubled
//
// Any other state, or an Occupied cell of a different weight, returns
// ErrCellConflict. Out-of-bounds stamps are dropped silently so callers
// can emit arm cells without re-checking canvas extents.
func (g *Grid) AddNode(r, c, weight int) error {
	if !g.InBounds(r, c) {
		return nil
	}
	cur := g.cells[r][c]
	switch cur.State {
	case Empty:
		g.cells[r][c] = Cell{State: Occupied, Weight: weight}
		return nil
	case Occupied:
		if cur.Weight != weight {
			return fmt.Errorf("%w: weights %d and %d at (%d,%d)",
				ErrCellConflict, cur.Weight, weight, r, c)
		}
		g.cells[r][c] = Cell{State: Doubled, Weight: weight}
		return nil
	default:
		return fmt.Errorf("%w: cell (%d,%d) already doubled or connected",
			ErrCellConflict, r, c)
	}
}

// Connect flags the Occupied cell at (r, c) as a junction, keeping its
// weight. Cells in any other state, and out-of-bounds coordinates, are
// left untouched.
func (g *Grid) Connect(r, c int) {
	if !g.InBounds(r, c) {
		return
	}
	if g.cells[r][c].State == Occupied {
		g.cells[r][c].State = Connected
	}
}

// OccupiedCoords lists the coordinates of every non-empty cell in
// row-major order.
func (g *Grid) OccupiedCoords() [][2]int {
	var coords [][2]int
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].State != Empty {
				coords = append(coords, [2]int{r, c})
			}
		}
	}
	return coords
}

// DoubledCells lists the coordinates of every Doubled cell in row-major
// order. The mapping pipeline snapshots these to credit crossing sites
// during configuration read-back.
func (g *Grid) DoubledCells() [][2]int {
	var coords [][2]int
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].State == Doubled {
				coords = append(coords, [2]int{r, c})
			}
		}
	}
	return coords
}

// String renders the canvas one row per line with cells
// space-separated, using the Cell debug glyphs. Rows are joined with
// newlines without a trailing one.
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		parts := make([]string, g.cols)
		for c := 0; c < g.cols; c++ {
			parts[c] = g.cells[r][c].String()
		}
		lines[r] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

// CrossAt returns the canvas coordinate where the horizontal run of a
// line in horizontal slot hslot meets the vertical run of a line in
// vertical slot vslot, for the given lattice spacing and padding.
func CrossAt(spacing, padding, hslot, vslot int) (row, col int) {
	return (hslot-1)*spacing + 1 + padding, (vslot-1)*spacing + padding
}
