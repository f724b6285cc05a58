package copyline

// Center returns the 0-indexed grid cell at the bend of the line, one column
// left of the cell that carries the vertex's membership bit.
func (l Line) Center(spacing, padding int) (row, col int) {
	return spacing*(l.HSlot-1) + padding + 1, spacing*(l.VSlot-1) + padding
}

// Locations materializes the dense cell list of the line at the given
// lattice constants. The same rule serves the square and triangular
// lattices.
//
// The list is emitted in chain order: up-arm from the bend outward, then
// down-arm, then right-arm, center cell last. Back-mapping relies on that
// order.
// Weights are 2 along the arms, 1 at each arm tip, and the center carries
// one unit per arm (minimum 1). The first down-arm cell is offset by (1,1)
// so the bend stays independent-set-friendly.
func (l Line) Locations(spacing, padding int) []Loc {
	var locs []Loc
	nline := 0

	i := spacing*(l.HSlot-1) + padding + 1
	j := spacing*(l.VSlot-1) + padding

	// Up-arm: rows start..i in column j, emitted top-down from i.
	start := i + spacing*(l.VStart-l.HSlot) + 1
	if l.VStart < l.HSlot {
		nline++
	}
	for row := i; row >= start; row-- {
		if row < 0 {
			continue
		}
		w := 2
		if row == start {
			w = 1
		}
		locs = append(locs, Loc{Row: row, Col: j, Weight: w})
	}

	// Down-arm: rows i..stop, first cell shifted to (i+1, j+1).
	stop := i + spacing*(l.VStop-l.HSlot) - 1
	if l.VStop > l.HSlot {
		nline++
	}
	for row := i; row <= stop; row++ {
		if row < 0 {
			continue
		}
		if row == i {
			locs = append(locs, Loc{Row: row + 1, Col: j + 1, Weight: 2})
			continue
		}
		w := 2
		if row == stop {
			w = 1
		}
		locs = append(locs, Loc{Row: row, Col: j, Weight: w})
	}

	// Right-arm: columns j+2..stopCol in row i.
	stopCol := j + spacing*(l.HStop-l.VSlot) - 1
	if l.HStop > l.VSlot {
		nline++
	}
	for col := j + 2; col <= stopCol; col++ {
		if col < 0 {
			continue
		}
		w := 2
		if col == stopCol {
			w = 1
		}
		locs = append(locs, Loc{Row: i, Col: col, Weight: w})
	}

	// Center cell, one unit of weight per arm.
	if nline < 1 {
		nline = 1
	}
	locs = append(locs, Loc{Row: i, Col: j + 1, Weight: nline})

	return locs
}

// MISOverhead is the line's own contribution to the unweighted overhead:
// half the dense cell count, rounded down (the count is always odd).
func (l Line) MISOverhead(spacing, padding int) int {
	return len(l.Locations(spacing, padding)) / 2
}

// MISOverheadWeighted is the weighted-lattice counterpart: every selected
// chain cell carries weight 2 instead of 1.
func (l Line) MISOverheadWeighted(spacing, padding int) int {
	return 2 * (len(l.Locations(spacing, padding)) / 2)
}

// MISOverheadTriangular is the closed-form triangular-lattice contribution.
func (l Line) MISOverheadTriangular(spacing int) int {
	right := (l.HStop-l.VSlot)*spacing - 2
	if right < 0 {
		right = 0
	}

	return (l.HSlot-l.VStart)*spacing + (l.VStop-l.HSlot)*spacing + right
}
