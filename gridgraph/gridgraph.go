package gridgraph

import (
	"math"

	"github.com/lattice-systems/gridmorph/graph"
)

// Position returns the physical position of node i as (x, y), where x
// runs along rows and y along columns.
//
// Square lattices embed (row, col) as (row, col). Triangular lattices
// use y = col*sqrt(3)/2 and x = row + 0.5 for odd columns, so that the
// six nearest sites of a node sit at distance exactly 1.
// Complexity: O(1).
func (g *GridGraph) Position(i int) (x, y float64) {
	n := g.Nodes[i]

	return g.physicalPosition(n.Row, n.Col)
}

// physicalPosition embeds a lattice coordinate in the plane per Kind.
func (g *GridGraph) physicalPosition(row, col int) (x, y float64) {
	switch g.Kind {
	case Triangular:
		y = float64(col) * (math.Sqrt(3) / 2)
		x = float64(row)
		if col%2 != 0 {
			x += 0.5
		}

		return x, y
	default:
		return float64(row), float64(col)
	}
}

// dist returns the Euclidean distance between the physical positions of
// nodes i and j.
func (g *GridGraph) dist(i, j int) float64 {
	xi, yi := g.Position(i)
	xj, yj := g.Position(j)

	return math.Hypot(xi-xj, yi-yj)
}

// Edges enumerates all unit-disk edges as index pairs (i, j) with i < j,
// ordered lexicographically. An edge exists exactly when the physical
// distance is strictly below Radius.
// Complexity: O(n²) time, O(E) memory.
func (g *GridGraph) Edges() [][2]int {
	var edges [][2]int
	for i := 0; i < len(g.Nodes); i++ {
		for j := i + 1; j < len(g.Nodes); j++ {
			if g.dist(i, j) < g.Radius {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges
}

// NeighborIndices returns the indices of all nodes adjacent to node i,
// in ascending order.
// Complexity: O(n).
func (g *GridGraph) NeighborIndices(i int) []int {
	var adj []int
	for j := range g.Nodes {
		if j == i {
			continue
		}
		if g.dist(i, j) < g.Radius {
			adj = append(adj, j)
		}
	}

	return adj
}

// ToSimple converts the unit-disk graph into a *graph.Simple on the same
// vertex indices, dropping weights. Useful for running generic graph
// algorithms (independent sets, degree counts) on the embedded topology.
// Complexity: O(n² + E).
func (g *GridGraph) ToSimple() *graph.Simple {
	s := graph.New(len(g.Nodes))
	for _, e := range g.Edges() {
		// Indices come from Edges, always in range.
		_ = s.AddEdge(e[0], e[1])
	}

	return s
}
