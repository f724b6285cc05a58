package pathdecomp

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/lattice-systems/gridmorph/graph"
)

// Empty returns the layout with nothing placed: every vertex of an
// n-vertex graph still disconnected.
func Empty(n int) Layout {
	disc := make([]int, n)
	for v := range disc {
		disc[v] = v
	}
	return Layout{disconnected: disc}
}

// FromOrder builds the layout obtained by placing the given vertices in
// order. The order must list distinct vertices of g.
func FromOrder(g *graph.Simple, order []int) Layout {
	adj := adjacency(g)
	l := Empty(g.N())
	for _, v := range order {
		l = l.extend(adj, v)
	}
	return l
}

// Decompose computes a path decomposition of g. A nil method means
// MethodAuto.
func Decompose(g *graph.Simple, m Method) (Layout, error) {
	switch method := m.(type) {
	case nil:
		return Decompose(g, MethodAuto{})
	case MethodAuto:
		if g.N() > autoExactLimit {
			return Decompose(g, MethodGreedy{NRepeat: autoGreedyRestarts})
		}
		return Decompose(g, MethodExact{})
	case MethodGreedy:
		return Greedy(g, method.NRepeat, method.Seed)
	case MethodExact:
		return BranchAndBound(g), nil
	default:
		return Layout{}, fmt.Errorf("%w: %T", ErrMethod, m)
	}
}

// VertexOrder computes the copy-line vertex order for g: the vertex
// sequence of its path decomposition.
func VertexOrder(g *graph.Simple, m Method) ([]int, error) {
	l, err := Decompose(g, m)
	if err != nil {
		return nil, err
	}
	return slices.Clone(l.Vertices), nil
}

// Greedy repeats the randomized greedy decomposition nrepeat times and
// returns the narrowest layout found. Runs with the same seed are
// reproducible.
func Greedy(g *graph.Simple, nrepeat int, seed uint64) (Layout, error) {
	if nrepeat < 1 {
		return Layout{}, ErrRestarts
	}
	adj := adjacency(g)
	rng := rand.New(rand.NewPCG(seed, seed))
	best := greedyOnce(adj, g.N(), rng)
	for i := 1; i < nrepeat; i++ {
		if l := greedyOnce(adj, g.N(), rng); l.VSep < best.VSep {
			best = l
		}
	}
	return best, nil
}

// greedyOnce alternates the width-neutral closure with one randomized
// min-width step until every vertex is placed. Frontier vertices take
// priority over disconnected ones.
func greedyOnce(adj [][]int, n int, rng *rand.Rand) Layout {
	l := Empty(n)
	for {
		l = greedyExact(adj, l)
		switch {
		case len(l.neighbors) > 0:
			l = greedyStep(adj, l, slices.Clone(l.neighbors), rng)
		case len(l.disconnected) > 0:
			l = greedyStep(adj, l, slices.Clone(l.disconnected), rng)
		default:
			return l
		}
	}
}

// greedyExact repeatedly applies the two placements that never widen
// the layout: a vertex with no unseen neighbors, and a frontier vertex
// bringing in exactly one unseen neighbor.
func greedyExact(adj [][]int, l Layout) Layout {
	for again := true; again; {
		again = false
		for _, list := range [][]int{slices.Clone(l.disconnected), slices.Clone(l.neighbors)} {
			for _, v := range list {
				if l.fresh(adj, v) == 0 {
					l = l.extend(adj, v)
					again = true
				}
			}
		}
		for _, v := range slices.Clone(l.neighbors) {
			if l.fresh(adj, v) == 1 {
				l = l.extend(adj, v)
				again = true
			}
		}
	}
	return l
}

// greedyStep extends the layout by one vertex chosen uniformly among
// the candidates yielding the smallest separation.
func greedyStep(adj [][]int, l Layout, candidates []int, rng *rand.Rand) Layout {
	extended := make([]Layout, len(candidates))
	best := math.MaxInt
	for i, v := range candidates {
		extended[i] = l.extend(adj, v)
		if extended[i].VSep < best {
			best = extended[i].VSep
		}
	}
	var picks []int
	for i := range extended {
		if extended[i].VSep == best {
			picks = append(picks, i)
		}
	}
	return extended[picks[rng.IntN(len(picks))]]
}

// BranchAndBound returns a minimum-separation layout of g.
//
// The search follows Coudert, Mazauric and Nisse, "Experimental
// evaluation of a branch and bound algorithm for computing pathwidth"
// (2014): prefixes are closed under the width-neutral placements,
// children are explored in order of their separation bound, and an
// ordered memo of explored prefixes prunes revisits.
func BranchAndBound(g *graph.Simple) Layout {
	n := g.N()
	identity := make([]int, n)
	for v := range identity {
		identity[v] = v
	}
	best := FromOrder(g, identity)
	visited := redblacktree.NewWith(comparePrefix)
	return bnb(adjacency(g), n, Empty(n), best, visited)
}

func bnb(adj [][]int, n int, p, best Layout, visited *redblacktree.Tree) Layout {
	if p.VSep >= best.VSep {
		return best
	}
	if _, seen := visited.Get(p.Vertices); seen {
		return best
	}
	p2 := greedyExact(adj, p)
	if len(p2.Vertices) == n && p2.VSep < best.VSep {
		return p2
	}

	current := best.VSep
	remaining := append(slices.Clone(p2.neighbors), p2.disconnected...)
	type cand struct{ cost, v int }
	order := make([]cand, len(remaining))
	for i, v := range remaining {
		order[i] = cand{p2.grownVSep(adj, v), v}
	}
	slices.SortStableFunc(order, func(a, b cand) int { return a.cost - b.cost })
	for _, c := range order {
		if c.cost < best.VSep {
			if l3 := bnb(adj, n, p2.extend(adj, c.v), best, visited); l3.VSep < best.VSep {
				best = l3
			}
		}
	}

	// Presence alone is what later visits check; the flag records
	// whether the prefix was cut off while the bound still equaled it.
	visited.Put(slices.Clone(p.Vertices), !(best.VSep < current && p.VSep == best.VSep))
	return best
}

// comparePrefix orders vertex prefixes lexicographically, shorter
// first on ties.
func comparePrefix(a, b interface{}) int {
	x, y := a.([]int), b.([]int)
	for i := 0; i < len(x) && i < len(y); i++ {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return len(x) - len(y)
}

// extend places v, moving it out of the frontier or the disconnected
// pool and pulling its unseen neighbors into the frontier.
func (l Layout) extend(adj [][]int, v int) Layout {
	next := Layout{
		Vertices:     append(slices.Clone(l.Vertices), v),
		VSep:         l.VSep,
		neighbors:    slices.Clone(l.neighbors),
		disconnected: slices.Clone(l.disconnected),
	}
	vs := len(l.neighbors)
	if i := slices.Index(next.neighbors, v); i >= 0 {
		next.neighbors = slices.Delete(next.neighbors, i, i+1)
		vs--
	} else if i := slices.Index(next.disconnected, v); i >= 0 {
		next.disconnected = slices.Delete(next.disconnected, i, i+1)
	}

	placed := make([]bool, len(adj))
	for _, u := range l.Vertices {
		placed[u] = true
	}
	front := make([]bool, len(adj))
	for _, u := range next.neighbors {
		front[u] = true
	}
	for _, w := range adj[v] {
		if placed[w] || front[w] {
			continue
		}
		vs++
		next.neighbors = append(next.neighbors, w)
		front[w] = true
		if i := slices.Index(next.disconnected, w); i >= 0 {
			next.disconnected = slices.Delete(next.disconnected, i, i+1)
		}
	}
	next.VSep = max(next.VSep, vs)
	return next
}

// fresh counts the neighbors of v that are neither placed nor already
// on the frontier.
func (l Layout) fresh(adj [][]int, v int) int {
	known := make([]bool, len(adj))
	for _, u := range l.Vertices {
		known[u] = true
	}
	for _, u := range l.neighbors {
		known[u] = true
	}
	n := 0
	for _, w := range adj[v] {
		if !known[w] {
			n++
		}
	}
	return n
}

// grownVSep bounds the separation after placing v without building the
// extended layout.
func (l Layout) grownVSep(adj [][]int, v int) int {
	vs := len(l.neighbors)
	if slices.Contains(l.neighbors, v) {
		vs--
	}
	return max(l.VSep, vs+l.fresh(adj, v))
}

func adjacency(g *graph.Simple) [][]int {
	adj := make([][]int, g.N())
	for v := range adj {
		adj[v] = g.Neighbors(v)
	}
	return adj
}
