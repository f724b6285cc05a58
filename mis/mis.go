package mis

import (
	"errors"
	"fmt"
	"math"

	"github.com/lattice-systems/gridmorph/graph"
)

// Sentinel errors for mis operations.
var (
	// ErrWeightCount indicates a weight slice whose length differs from
	// the graph's vertex count.
	ErrWeightCount = errors.New("mis: weight count mismatch")
)

// Solve returns the size of a maximum independent set of g.
func Solve(g *graph.Simple) int {
	s := newSolver(g, ones(g.N()))
	return int(math.Round(s.solve(allOf(g.N()))))
}

// SolveSet returns the vertices of one maximum independent set of g in
// ascending order. Ties between optima are broken deterministically.
func SolveSet(g *graph.Simple) []int {
	set, _, _ := SolveWeightedSet(g, ones(g.N()))
	return set
}

// SolveWeighted returns the maximum total weight of an independent set
// of g under the given per-vertex weights. Vertices with non-positive
// weight are never forced into the set, so the result is always ≥ 0.
//
// Returns ErrWeightCount when len(weights) != g.N().
func SolveWeighted(g *graph.Simple, weights []float64) (float64, error) {
	if len(weights) != g.N() {
		return 0, fmt.Errorf("%w: got %d weights for %d vertices",
			ErrWeightCount, len(weights), g.N())
	}
	s := newSolver(g, weights)
	return s.solve(allOf(g.N())), nil
}

// SolveWeightedSet returns one maximum-weight independent set together
// with its total weight.
//
// Returns ErrWeightCount when len(weights) != g.N().
func SolveWeightedSet(g *graph.Simple, weights []float64) ([]int, float64, error) {
	if len(weights) != g.N() {
		return nil, 0, fmt.Errorf("%w: got %d weights for %d vertices",
			ErrWeightCount, len(weights), g.N())
	}
	s := newSolver(g, weights)
	active := allOf(g.N())
	take := newVset(g.N())
	s.reconstruct(active, take)

	var set []int
	take.forEach(func(v int) bool {
		set = append(set, v)
		return true
	})
	return set, sum(weights, set), nil
}

// SolveWithPins solves the maximum-weight independent set with boundary
// conditions: every vertex in forcedIn must belong to the set, every
// vertex in forcedOut must not. A nil weights slice means unit weights.
//
// The second return is false when the pins are infeasible - a repeated
// or out-of-range vertex, a vertex pinned both ways, or two adjacent
// pinned-in vertices.
func SolveWithPins(g *graph.Simple, weights []float64, forcedIn, forcedOut []int) (float64, bool) {
	n := g.N()
	if weights == nil {
		weights = ones(n)
	}
	if len(weights) != n {
		return 0, false
	}

	// --- 1. Check pin feasibility. ---
	in := newVset(n)
	out := newVset(n)
	for _, v := range forcedIn {
		if v < 0 || v >= n || in.has(v) {
			return 0, false
		}
		in.set(v)
	}
	for _, v := range forcedOut {
		if v < 0 || v >= n || out.has(v) || in.has(v) {
			return 0, false
		}
		out.set(v)
	}
	base := 0.0
	feasible := true
	in.forEach(func(v int) bool {
		base += weights[v]
		if in.countIn(gAdj(g, v)) > 0 {
			feasible = false
			return false
		}
		return true
	})
	if !feasible {
		return 0, false
	}

	// --- 2. Solve the residual graph. ---
	remove := out.clone()
	remove.unionWith(in)
	in.forEach(func(v int) bool {
		remove.unionWith(gAdj(g, v))
		return true
	})
	active := allOf(n)
	active.subtract(remove)
	s := newSolver(g, weights)
	return base + s.solve(active), true
}

// IsIndependent reports whether the nonzero entries of config (one
// entry per vertex) form an independent set of g. A config of the
// wrong length is never independent.
func IsIndependent(g *graph.Simple, config []int) bool {
	if len(config) != g.N() {
		return false
	}
	for _, e := range g.Edges() {
		if config[e[0]] != 0 && config[e[1]] != 0 {
			return false
		}
	}
	return true
}

// allOf returns the full vertex set {0,…,n-1}.
func allOf(n int) vset {
	s := newVset(n)
	for v := 0; v < n; v++ {
		s.set(v)
	}
	return s
}

// gAdj materialises v's neighbourhood as a vset.
func gAdj(g *graph.Simple, v int) vset {
	s := newVset(g.N())
	for _, u := range g.Neighbors(v) {
		s.set(u)
	}
	return s
}
