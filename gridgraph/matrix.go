package gridgraph

import (
	"gonum.org/v1/gonum/mat"
)

// AdjacencyMatrix returns the n×n symmetric 0/1 adjacency matrix of the
// unit-disk graph, indexed like Nodes. Returns nil for an empty graph.
// Complexity: O(n²) time and memory.
func (g *GridGraph) AdjacencyMatrix() *mat.SymDense {
	n := len(g.Nodes)
	if n == 0 {
		return nil
	}
	adj := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		adj.SetSym(e[0], e[1], 1)
	}

	return adj
}

// DistanceMatrix returns the n×n matrix of pairwise Euclidean distances
// between node positions, with zeros on the diagonal. Returns nil for an
// empty graph.
// Complexity: O(n²) time and memory.
func (g *GridGraph) DistanceMatrix() *mat.Dense {
	n := len(g.Nodes)
	if n == 0 {
		return nil
	}
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := g.dist(i, j)
			d.Set(i, j, v)
			d.Set(j, i, v)
		}
	}

	return d
}
