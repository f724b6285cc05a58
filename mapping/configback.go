package mapping

import (
	"fmt"

	"github.com/lattice-systems/gridmorph/copyline"
)

// ConfigBack pulls a configuration of the grid graph back to a
// configuration of the input graph, indexed by input vertex. Config is
// flat and parallel to Grid.Nodes; an optimal grid configuration pulls
// back to an optimal input configuration.
//
// Square-lattice results replay the tape backwards, unwriting each
// rewrite on a canvas-shaped matrix, then read each line's membership
// bit off its cells. Triangular results read the bit at each line's
// traced center instead.
func (r *Result) ConfigBack(config []int) ([]int, error) {
	if len(config) != len(r.Grid.Nodes) {
		return nil, fmt.Errorf("%w: config has %d entries, grid has %d nodes", ErrDimension, len(config), len(r.Grid.Nodes))
	}
	if r.Mode == TriangularWeighted {
		return r.configBackViaCenters(config), nil
	}

	// --- 1. Spread the flat config onto a canvas-shaped matrix. ---
	rows, cols := r.Grid.Rows, r.Grid.Cols
	c2 := make([][]int, rows)
	for i := range c2 {
		c2[i] = make([]int, cols)
	}
	for k, node := range r.Grid.Nodes {
		if node.Row >= 0 && node.Row < rows && node.Col >= 0 && node.Col < cols {
			c2[node.Row][node.Col] = config[k]
		}
	}

	// --- 2. Replay the tape backwards, unwriting each rewrite. ---
	cat := r.Mode.catalog()
	for k := len(r.Tape) - 1; k >= 0; k-- {
		e := r.Tape[k]
		p, ok := cat.ByIndex(e.Index)
		if !ok {
			return nil, fmt.Errorf("%w: tape entry references unknown catalog index %d", ErrGadgetMismatch, e.Index)
		}
		p.ConfigBack(c2, e.Row, e.Col)
	}

	// --- 3. Read each line's membership bit off its cells. ---
	doubled := make(map[[2]int]bool, len(r.Doubled))
	for _, rc := range r.Doubled {
		doubled[[2]int{rc[0], rc[1]}] = true
	}
	out := make([]int, len(r.Lines))
	for _, l := range r.Lines {
		out[l.Vertex] = copyback(l, c2, doubled, r.Spacing, r.Padding)
	}
	return out, nil
}

// copyback counts the selected cells along one line's chain, crediting
// doubled cells once when their selection survives in either overlap,
// and subtracts the chain's own independent-set contribution.
func copyback(l copyline.Line, c2 [][]int, doubled map[[2]int]bool, spacing, padding int) int {
	locs := l.Locations(spacing, padding)
	at := func(k int) int {
		loc := locs[k]
		if loc.Row < 0 || loc.Row >= len(c2) || loc.Col < 0 || loc.Col >= len(c2[loc.Row]) {
			return 0
		}
		return c2[loc.Row][loc.Col]
	}

	count := 0
	for k, loc := range locs {
		ci := at(k)
		if doubled[[2]int{loc.Row, loc.Col}] {
			prevZero := k == 0 || at(k-1) == 0
			nextZero := k == len(locs)-1 || at(k+1) == 0
			if ci == 2 {
				count++
			} else if ci == 1 && prevZero && nextZero {
				count++
			}
		} else if loc.Weight >= 1 {
			count += ci
		}
	}

	count -= len(locs) / 2
	if count < 0 {
		count = 0
	}
	return count
}

// ConfigBackViaCenters pulls a configuration back by reading the bit at
// each vertex's traced center, with no tape replay. The weighted modes
// are calibrated so every optimum agrees with its centers, which makes
// this exact there; on the unweighted square lattice optimal
// configurations can drift off the centers, so prefer ConfigBack.
func (r *Result) ConfigBackViaCenters(config []int) ([]int, error) {
	if len(config) != len(r.Grid.Nodes) {
		return nil, fmt.Errorf("%w: config has %d entries, grid has %d nodes", ErrDimension, len(config), len(r.Grid.Nodes))
	}
	return r.configBackViaCenters(config), nil
}

// configBackViaCenters reads the membership bit at each line's traced
// center. Centers moved by chain contractions are followed through the
// tape first; centers without a surviving node read as 0.
func (r *Result) configBackViaCenters(config []int) []int {
	byPos := make(map[[2]int]int, len(r.Grid.Nodes))
	for k, node := range r.Grid.Nodes {
		byPos[[2]int{node.Row, node.Col}] = k
	}
	centers := r.Centers()
	out := make([]int, len(centers))
	for v, c := range centers {
		if k, ok := byPos[c]; ok {
			out[v] = config[k]
		}
	}
	return out
}
