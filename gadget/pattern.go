package gadget

import "github.com/lattice-systems/gridmorph/grid"

// SourceMatrix renders the source shape as a window of cell states:
// repeated cells become Doubled, and junction cells (ConnectedNodes)
// override to Connected. Cells outside the window are dropped.
func (p Pattern) SourceMatrix() [][]grid.State {
	m := p.emptyMatrix()
	for _, n := range p.Source {
		r, c := n.Row-1, n.Col-1
		if r < 0 || r >= p.Rows || c < 0 || c >= p.Cols {
			continue
		}
		if m[r][c] == grid.Empty {
			m[r][c] = grid.Occupied
		} else {
			m[r][c] = grid.Doubled
		}
	}
	if p.Connected {
		for _, idx := range p.ConnectedNodes {
			if idx < 0 || idx >= len(p.Source) {
				continue
			}
			n := p.Source[idx]
			r, c := n.Row-1, n.Col-1
			if r >= 0 && r < p.Rows && c >= 0 && c < p.Cols {
				m[r][c] = grid.Connected
			}
		}
	}
	return m
}

// MappedMatrix renders the mapped shape the same way, without junction
// marks.
func (p Pattern) MappedMatrix() [][]grid.State {
	m := p.emptyMatrix()
	for _, n := range p.Mapped {
		r, c := n.Row-1, n.Col-1
		if r < 0 || r >= p.Rows || c < 0 || c >= p.Cols {
			continue
		}
		if m[r][c] == grid.Empty {
			m[r][c] = grid.Occupied
		} else {
			m[r][c] = grid.Doubled
		}
	}
	return m
}

func (p Pattern) emptyMatrix() [][]grid.State {
	m := make([][]grid.State, p.Rows)
	for r := range m {
		m[r] = make([]grid.State, p.Cols)
	}
	return m
}

// Matches reports whether the grid window with top-left (row, col)
// equals the source shape state for state. Cells beyond the grid bounds
// read as Empty.
func (p Pattern) Matches(g *grid.Grid, row, col int) bool {
	src := p.SourceMatrix()
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if g.At(row+r, col+c).State != src[r][c] {
				return false
			}
		}
	}
	return true
}

// MatchesRelaxed is Matches with junction cells treated as plain sites:
// Connected and Occupied satisfy each other. Chain contractions run
// after the crossing pass, where leftover junction marks no longer
// carry meaning.
func (p Pattern) MatchesRelaxed(g *grid.Grid, row, col int) bool {
	src := p.SourceMatrix()
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			got := g.At(row+r, col+c).State
			want := src[r][c]
			if got == want {
				continue
			}
			if want == grid.Connected && got == grid.Occupied {
				continue
			}
			if want == grid.Occupied && got == grid.Connected {
				continue
			}
			return false
		}
	}
	return true
}

// MatchesWeighted is Matches plus an exact weight comparison at every
// source cell.
func (p Pattern) MatchesWeighted(g *grid.Grid, row, col int) bool {
	if !p.Matches(g, row, col) {
		return false
	}
	return p.weightsMatch(g, row, col)
}

// MatchesTriangular applies the triangular catalog's two-pass check:
// window cells holding a source site must be non-empty (junction cells
// must be Connected specifically, everything else may hold any state),
// the rest must be empty, and every source cell must carry exactly its
// declared weight. Source cells beyond the grid bounds fail the match.
func (p Pattern) MatchesTriangular(g *grid.Grid, row, col int) bool {
	src := p.SourceMatrix()
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			cell := g.At(row+r, col+c)
			switch src[r][c] {
			case grid.Empty:
				if !cell.IsEmpty() {
					return false
				}
			case grid.Connected:
				if cell.State != grid.Connected {
					return false
				}
			default:
				if cell.IsEmpty() {
					return false
				}
			}
		}
	}
	for _, n := range p.Source {
		r, c := row+n.Row-1, col+n.Col-1
		if !g.InBounds(r, c) || g.At(r, c).Weight != n.Weight {
			return false
		}
	}
	return true
}

func (p Pattern) weightsMatch(g *grid.Grid, row, col int) bool {
	for _, n := range p.Source {
		r, c := row+n.Row-1, col+n.Col-1
		if !g.InBounds(r, c) {
			continue
		}
		if g.At(r, c).Weight != n.Weight {
			return false
		}
	}
	return true
}

// Apply overwrites the window with the mapped shape at unit weights:
// plain sites weight 1, doubled sites weight 2.
func (p Pattern) Apply(g *grid.Grid, row, col int) {
	writeMatrix(g, p.MappedMatrix(), row, col)
}

// Unapply overwrites the window with the source shape at unit weights,
// undoing Apply cell for cell.
func (p Pattern) Unapply(g *grid.Grid, row, col int) {
	writeMatrix(g, p.SourceMatrix(), row, col)
}

func writeMatrix(g *grid.Grid, m [][]grid.State, row, col int) {
	for r := range m {
		for c := range m[r] {
			var cell grid.Cell
			switch m[r][c] {
			case grid.Occupied:
				cell = grid.Cell{State: grid.Occupied, Weight: 1}
			case grid.Doubled:
				cell = grid.Cell{State: grid.Doubled, Weight: 2}
			case grid.Connected:
				cell = grid.Cell{State: grid.Connected, Weight: 1}
			}
			g.Set(row+r, col+c, cell)
		}
	}
}

// ApplyWeighted clears the window and writes the mapped shape with its
// declared weights, summing cells that repeat.
func (p Pattern) ApplyWeighted(g *grid.Grid, row, col int) {
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			g.Clear(row+r, col+c)
		}
	}
	sum := make(map[[2]int]int, len(p.Mapped))
	count := make(map[[2]int]int, len(p.Mapped))
	for _, n := range p.Mapped {
		at := [2]int{n.Row, n.Col}
		sum[at] += n.Weight
		count[at]++
	}
	for at, w := range sum {
		cell := grid.Cell{State: grid.Occupied, Weight: w}
		if count[at] > 1 {
			cell.State = grid.Doubled
		}
		g.Set(row+at[0]-1, col+at[1]-1, cell)
	}
}

// ApplyTriangular clears exactly the source cells and stamps the mapped
// cells with their declared weights. Mapped cells outside the window
// are dropped.
func (p Pattern) ApplyTriangular(g *grid.Grid, row, col int) {
	src := p.SourceMatrix()
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if src[r][c] != grid.Empty {
				g.Clear(row+r, col+c)
			}
		}
	}
	for _, n := range p.Mapped {
		if n.Row < 1 || n.Row > p.Rows || n.Col < 1 || n.Col > p.Cols {
			continue
		}
		// The window was just cleared under every mapped cell, so the
		// stamp cannot conflict.
		_ = g.AddNode(row+n.Row-1, col+n.Col-1, n.Weight)
	}
}

// ConfigBack rewrites a selection matrix through the template in
// reverse: it reads the selection at the mapped boundary pins, resolves
// an equivalent source-side selection via the boundary tables, zeroes
// the window, and writes that selection onto the source cells. Offsets
// are the 0-based window origin used when the pattern was applied.
func (p Pattern) ConfigBack(config [][]int, row, col int) {
	at := func(r, c int) int {
		if r < 0 || r >= len(config) || c < 0 || c >= len(config[r]) {
			return 0
		}
		return config[r][c]
	}

	// --- 1. Boundary bitmask from the mapped pins ---
	bc := 0
	for i, pin := range p.MappedPins {
		if pin < 0 || pin >= len(p.Mapped) {
			continue
		}
		n := p.Mapped[pin]
		if at(row+n.Row-1, col+n.Col-1) > 0 {
			bc |= 1 << i
		}
	}

	// --- 2. Resolve a source configuration for that boundary ---
	var chosen string
	if configs := p.CompactToConfigs[p.EntryToCompact[bc]]; len(configs) > 0 {
		chosen = configs[0]
	}

	// --- 3. Replace the window contents ---
	for r := row; r < row+p.Rows; r++ {
		for c := col; c < col+p.Cols; c++ {
			if r >= 0 && r < len(config) && c >= 0 && c < len(config[r]) {
				config[r][c] = 0
			}
		}
	}
	for k, n := range p.Source {
		if k >= len(chosen) || chosen[k] != '1' {
			continue
		}
		r, c := row+n.Row-1, col+n.Col-1
		if r >= 0 && r < len(config) && c >= 0 && c < len(config[r]) {
			config[r][c]++
		}
	}
}
