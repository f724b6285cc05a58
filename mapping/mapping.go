package mapping

import (
	"fmt"

	"github.com/lattice-systems/gridmorph/copyline"
	"github.com/lattice-systems/gridmorph/gadget"
	"github.com/lattice-systems/gridmorph/graph"
	"github.com/lattice-systems/gridmorph/grid"
	"github.com/lattice-systems/gridmorph/gridgraph"
	"github.com/lattice-systems/gridmorph/pathdecomp"
)

// Map embeds g into a weighted unit-disk grid graph whose maximum
// (weighted) independent set encodes the maximum independent set of g:
// the optimum of the produced grid equals the optimum of g plus
// Result.Overhead, and ConfigBack pulls an optimal grid configuration
// back to an optimal configuration of g.
//
// The pipeline runs in three stages: order the vertices by path
// decomposition (unless WithOrder/WithLines overrides), materialize one
// L-shaped copy line per vertex on the lattice, then rewrite every line
// crossing with a gadget from the mode's catalog and contract the
// leftover chains.
func Map(g *graph.Simple, opts ...Option) (*Result, error) {
	if g == nil || g.N() == 0 {
		return nil, fmt.Errorf("%w: empty input graph", ErrConfiguration)
	}
	o := options{method: pathdecomp.MethodAuto{}}
	for _, fn := range opts {
		fn(&o)
	}
	lines, err := buildLines(g, o)
	if err != nil {
		return nil, err
	}
	if o.mode == TriangularWeighted {
		return mapTriangular(g, lines)
	}
	return mapSquare(g, lines, o.mode)
}

// buildLines resolves the copy lines from the options: explicit lines
// win over an explicit order, which wins over path decomposition.
// Explicit lines are validated against g and re-indexed by vertex.
func buildLines(g *graph.Simple, o options) ([]copyline.Line, error) {
	edges := g.Edges()
	if o.lines != nil {
		if err := copyline.Validate(g.N(), edges, o.lines); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		lines := make([]copyline.Line, g.N())
		for _, l := range o.lines {
			lines[l.Vertex] = l
		}
		return lines, nil
	}
	order := o.order
	if order == nil {
		var err error
		order, err = pathdecomp.VertexOrder(g, o.method)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
	}
	lines, err := copyline.Create(g.N(), edges, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return lines, nil
}

func mapSquare(g *graph.Simple, lines []copyline.Line, mode Mode) (*Result, error) {
	const spacing, padding = SquareSpacing, Padding

	// --- 1. Materialize the copy lines on a fresh canvas. ---
	maxHSlot := 0
	for _, l := range lines {
		if l.HSlot > maxHSlot {
			maxHSlot = l.HSlot
		}
	}
	rows := maxHSlot*spacing + 2 + 2*padding
	cols := (len(lines)-1)*spacing + 2 + 2*padding
	cv, err := embed(g, lines, rows, cols, spacing, padding)
	if err != nil {
		return nil, err
	}

	// Doubled cells are snapshotted before the rewrites erase them;
	// configuration read-back credits them separately.
	doubled := cv.DoubledCells()

	// --- 2. Rewrite crossings, then contract leftover chains. ---
	weighted := mode == Weighted
	cat := mode.catalog()
	tape, applied := applyCrossings(cv, cat, lines, spacing, padding, weighted)
	if err := checkEdgesMatched(g, lines, applied, spacing, padding); err != nil {
		return nil, err
	}
	tape = append(tape, applySimplifiers(cv, cat, weighted)...)

	// --- 3. Sum the overhead and lift the canvas to a grid graph. ---
	overhead := 0
	for _, l := range lines {
		if weighted {
			overhead += l.MISOverheadWeighted(spacing, padding)
		} else {
			overhead += l.MISOverhead(spacing, padding)
		}
	}
	for _, e := range tape {
		overhead += cat.OverheadAt(e.Index)
	}

	gg := gridgraph.New(mode.kind(), rows, cols, siteNodes(cv), mode.radius())
	return &Result{
		Grid:     gg,
		Lines:    lines,
		Mode:     mode,
		Spacing:  spacing,
		Padding:  padding,
		Overhead: overhead,
		Tape:     tape,
		Doubled:  doubled,
	}, nil
}

// embed materializes the copy lines on a fresh canvas and marks the
// cells adjoining each edge crossing as Connected, so the crossing
// rewrites can tell edges from non-edges.
func embed(g *graph.Simple, lines []copyline.Line, rows, cols, spacing, padding int) (*grid.Grid, error) {
	cv := grid.New(rows, cols)
	for _, l := range lines {
		for _, loc := range l.Locations(spacing, padding) {
			if err := cv.AddNode(loc.Row, loc.Col, loc.Weight); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
			}
		}
	}
	for _, e := range g.Edges() {
		row, col := crossPoint(lines, e[0], e[1], spacing, padding)
		if col > 0 {
			cv.Connect(row, col-1)
		}
		switch {
		case row > 0 && !cv.At(row-1, col).IsEmpty():
			cv.Connect(row-1, col)
		case row+1 < rows && !cv.At(row+1, col).IsEmpty():
			cv.Connect(row+1, col)
		}
	}
	return cv, nil
}

// crossPoint returns the canvas coordinate where the copy lines of u
// and v cross: the horizontal run of the line with the smaller vertical
// slot meets the vertical run of the other.
func crossPoint(lines []copyline.Line, u, v, spacing, padding int) (row, col int) {
	a, b := lines[u], lines[v]
	if b.VSlot < a.VSlot {
		a, b = b, a
	}
	return grid.CrossAt(spacing, padding, a.HSlot, b.VSlot)
}

// applyCrossings aligns every crossing pattern window on every pair's
// crossing point (and each line's own bend) and applies the first
// pattern that matches. Each application is recorded on the tape with
// the window origin, and in the returned set under the crossing point
// the window was aligned on.
func applyCrossings(cv *grid.Grid, cat *gadget.Catalog, lines []copyline.Line, spacing, padding int, weighted bool) ([]gadget.Entry, map[[2]int]bool) {
	n := len(lines)
	applied := make(map[[2]int]bool)
	var tape []gadget.Entry
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			row, col := crossPoint(lines, i, j, spacing, padding)
			for _, p := range cat.Crossings {
				if row+1 < p.Cross[0] || col+1 < p.Cross[1] {
					continue
				}
				x := row + 1 - p.Cross[0]
				y := col + 1 - p.Cross[1]
				if weighted {
					if !p.MatchesWeighted(cv, x, y) {
						continue
					}
					p.ApplyWeighted(cv, x, y)
				} else {
					if !p.Matches(cv, x, y) {
						continue
					}
					p.Apply(cv, x, y)
				}
				tape = append(tape, gadget.Entry{Index: p.Index, Row: x, Col: y})
				applied[[2]int{row, col}] = true
				break
			}
		}
	}
	return tape, applied
}

// checkEdgesMatched verifies a crossing rewrite landed on every input
// edge's crossing point. The catalogs cover every window the line
// construction can produce, so a miss indicates an edge whose crossing
// was clobbered by an overlapping rewrite.
func checkEdgesMatched(g *graph.Simple, lines []copyline.Line, applied map[[2]int]bool, spacing, padding int) error {
	for _, e := range g.Edges() {
		row, col := crossPoint(lines, e[0], e[1], spacing, padding)
		if !applied[[2]int{row, col}] {
			return fmt.Errorf("%w: no crossing rewrite for edge (%d, %d)", ErrGadgetMismatch, e[0], e[1])
		}
	}
	return nil
}

// applySimplifiers sweeps the chain-contraction patterns over the whole
// canvas. Two sweeps suffice on the square lattices; the loop stops
// early once a sweep applies nothing.
func applySimplifiers(cv *grid.Grid, cat *gadget.Catalog, weighted bool) []gadget.Entry {
	var tape []gadget.Entry
	for rep := 0; rep < 2; rep++ {
		applied := false
		for _, p := range cat.Simplifiers {
			for j := 0; j < cv.Cols(); j++ {
				for i := 0; i < cv.Rows(); i++ {
					if weighted {
						if !p.MatchesWeighted(cv, i, j) {
							continue
						}
						p.ApplyWeighted(cv, i, j)
					} else {
						if !p.MatchesRelaxed(cv, i, j) {
							continue
						}
						p.Apply(cv, i, j)
					}
					tape = append(tape, gadget.Entry{Index: p.Index, Row: i, Col: j})
					applied = true
				}
			}
		}
		if !applied {
			break
		}
	}
	return tape
}

// siteNodes lists the canvas's populated sites with positive weight in
// row-major order.
func siteNodes(cv *grid.Grid) []gridgraph.Node {
	coords := cv.OccupiedCoords()
	nodes := make([]gridgraph.Node, 0, len(coords))
	for _, rc := range coords {
		if c := cv.At(rc[0], rc[1]); c.Weight > 0 {
			nodes = append(nodes, gridgraph.Node{Row: rc[0], Col: rc[1], Weight: float64(c.Weight)})
		}
	}
	return nodes
}
