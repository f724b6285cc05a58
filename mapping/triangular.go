package mapping

import (
	"github.com/lattice-systems/gridmorph/copyline"
	"github.com/lattice-systems/gridmorph/gadget"
	"github.com/lattice-systems/gridmorph/graph"
	"github.com/lattice-systems/gridmorph/grid"
	"github.com/lattice-systems/gridmorph/gridgraph"
)

func mapTriangular(g *graph.Simple, lines []copyline.Line) (*Result, error) {
	const spacing, padding = TriangularSpacing, Padding

	// --- 1. Materialize the copy lines on a fresh canvas. ---
	span := 0
	for _, l := range lines {
		if l.HSlot > span {
			span = l.HSlot
		}
		if l.VStop > span {
			span = l.VStop
		}
	}
	rows := span*spacing + 2 + 2*padding
	cols := (len(lines)-1)*spacing + 2 + 2*padding
	cv, err := embed(g, lines, rows, cols, spacing, padding)
	if err != nil {
		return nil, err
	}

	// --- 2. Rewrite crossings, then contract the dangling legs. ---
	cat := TriangularWeighted.catalog()
	tape, applied := applyCrossingsTriangular(cv, cat, lines, spacing, padding)
	if err := checkEdgesMatched(g, lines, applied, spacing, padding); err != nil {
		return nil, err
	}
	tape = append(tape, applyLegs(cv, cat.Legs)...)

	// The triangular read-back inspects doubled cells on the rewritten
	// canvas, so the snapshot comes after the rewrites.
	doubled := cv.DoubledCells()

	// --- 3. Sum the overhead and lift the canvas to a grid graph. ---
	overhead := 0
	for _, l := range lines {
		overhead += l.MISOverheadTriangular(spacing)
	}
	for _, e := range tape {
		overhead += cat.OverheadAt(e.Index)
	}

	gg := gridgraph.New(gridgraph.Triangular, rows, cols, siteNodes(cv), gridgraph.TriangularRadius)
	return &Result{
		Grid:     gg,
		Lines:    lines,
		Mode:     TriangularWeighted,
		Spacing:  spacing,
		Padding:  padding,
		Overhead: overhead,
		Tape:     tape,
		Doubled:  doubled,
	}, nil
}

// applyCrossingsTriangular mirrors applyCrossings for the triangular
// catalog: the matchers compare exact weights, and each canvas point is
// rewritten at most once.
func applyCrossingsTriangular(cv *grid.Grid, cat *gadget.Catalog, lines []copyline.Line, spacing, padding int) ([]gadget.Entry, map[[2]int]bool) {
	n := len(lines)
	applied := make(map[[2]int]bool)
	var tape []gadget.Entry
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			row, col := crossPoint(lines, i, j, spacing, padding)
			if applied[[2]int{row, col}] {
				continue
			}
			for _, p := range cat.Crossings {
				if row < p.Cross[0] || col < p.Cross[1] {
					continue
				}
				x := row - p.Cross[0] + 1
				y := col - p.Cross[1] + 1
				if !p.MatchesTriangular(cv, x, y) {
					continue
				}
				p.ApplyTriangular(cv, x, y)
				tape = append(tape, gadget.Entry{Index: p.Index, Row: x, Col: y})
				applied[[2]int{row, col}] = true
				break
			}
		}
	}
	return tape, applied
}

// applyLegs sweeps the four dangling-leg contractions over the canvas,
// each leg tried independently at every cell, until a sweep applies
// nothing. Ten sweeps bound the longest chains the line construction
// produces.
func applyLegs(cv *grid.Grid, legs []gadget.Leg) []gadget.Entry {
	var tape []gadget.Entry
	for rep := 0; rep < 10; rep++ {
		applied := false
		for j := 0; j < cv.Cols(); j++ {
			for i := 0; i < cv.Rows(); i++ {
				for _, l := range legs {
					if !l.Matches(cv, i, j) {
						continue
					}
					l.Apply(cv, i, j)
					tape = append(tape, gadget.Entry{Index: l.Index, Row: i, Col: j})
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
