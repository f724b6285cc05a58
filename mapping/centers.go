package mapping

import (
	"fmt"

	"github.com/lattice-systems/gridmorph/gadget"
)

// Centers returns the canvas coordinate carrying each vertex's
// membership bit on the rewritten grid, indexed by input vertex. The
// initial center sits one column right of each line's bend; chain
// contractions drag it along as they shorten the line, so the tape is
// replayed to follow the moves.
func (r *Result) Centers() [][2]int {
	centers := make([][2]int, len(r.Lines))
	for i, l := range r.Lines {
		row, col := l.Center(r.Spacing, r.Padding)
		centers[i] = [2]int{row, col + 1}
	}

	for _, e := range r.Tape {
		m, n, src, dst, ok := r.centerMove(e.Index)
		if !ok {
			continue
		}
		for k, c := range centers {
			if c[0] < e.Row || c[0] >= e.Row+m || c[1] < e.Col || c[1] >= e.Col+n {
				continue
			}
			// 1-based window coordinates of the center.
			if c[0]-e.Row+1 == src[0] && c[1]-e.Col+1 == src[1] {
				centers[k] = [2]int{e.Row + dst[0] - 1, e.Col + dst[1] - 1}
			}
		}
	}

	out := make([][2]int, len(centers))
	for i, l := range r.Lines {
		out[l.Vertex] = centers[i]
	}
	return out
}

// centerMove returns the window size and the source/destination cells,
// in 1-based window coordinates, for a tape entry that can move a line
// center. ok is false for entries that never move centers: crossing
// rewrites keep the bend in place on the square lattices, as do the
// junction rewrites on the triangular lattice.
func (r *Result) centerMove(idx int) (m, n int, src, dst [2]int, ok bool) {
	if r.Mode == TriangularWeighted {
		return triangularCenterMove(idx)
	}
	switch idx {
	case 100:
		return 4, 3, [2]int{2, 2}, [2]int{4, 2}, true
	case 101:
		return 3, 4, [2]int{2, 2}, [2]int{2, 4}, true
	case 102:
		return 4, 3, [2]int{3, 2}, [2]int{1, 2}, true
	case 103:
		return 3, 4, [2]int{2, 3}, [2]int{2, 1}, true
	case 104, 105:
		return 4, 3, [2]int{2, 2}, [2]int{4, 2}, true
	}
	return 0, 0, [2]int{}, [2]int{}, false
}

func triangularCenterMove(idx int) (m, n int, src, dst [2]int, ok bool) {
	cat := gadget.Triangular()
	switch idx {
	case 7, 8, 12:
		src, dst = [2]int{2, 3}, [2]int{1, 2}
	case 9:
		src, dst = [2]int{2, 3}, [2]int{2, 3}
	case 10, 11:
		src, dst = [2]int{2, 3}, [2]int{3, 2}
	case 100, 101, 102, 103:
		for _, l := range cat.Legs {
			if l.Index == idx {
				m, n = l.Rows, l.Cols
				break
			}
		}
		switch idx {
		case 100:
			src, dst = [2]int{2, 2}, [2]int{4, 2}
		case 101:
			src, dst = [2]int{3, 2}, [2]int{1, 2}
		case 102:
			src, dst = [2]int{2, 3}, [2]int{2, 1}
		case 103:
			src, dst = [2]int{2, 2}, [2]int{2, 4}
		}
		return m, n, src, dst, m > 0
	default:
		return 0, 0, [2]int{}, [2]int{}, false
	}
	p, found := cat.ByIndex(idx)
	if !found {
		return 0, 0, [2]int{}, [2]int{}, false
	}
	return p.Rows, p.Cols, src, dst, true
}

// MapWeights lifts per-vertex problem weights onto the grid graph: each
// node keeps its structural weight, and the node at a vertex's center
// additionally carries that vertex's weight. Weights must lie in [0, 1]
// so the lifted optimum tracks the structural one.
//
// The returned slice is parallel to Grid.Nodes.
func (r *Result) MapWeights(src []float64) ([]float64, error) {
	for _, w := range src {
		if w < 0 || w > 1 {
			return nil, fmt.Errorf("%w: weight %v outside [0, 1]", ErrConfiguration, w)
		}
	}
	if len(src) != len(r.Lines) {
		return nil, fmt.Errorf("%w: %d weights for %d vertices", ErrDimension, len(src), len(r.Lines))
	}

	weights := make([]float64, len(r.Grid.Nodes))
	byPos := make(map[[2]int]int, len(r.Grid.Nodes))
	for k, node := range r.Grid.Nodes {
		weights[k] = node.Weight
		byPos[[2]int{node.Row, node.Col}] = k
	}
	for v, c := range r.Centers() {
		if k, ok := byPos[c]; ok {
			weights[k] += src[v]
		}
	}
	return weights, nil
}
