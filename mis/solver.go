package mis

import (
	"math/bits"

	"github.com/lattice-systems/gridmorph/graph"
)

// tolerance for comparing accumulated float64 weights during set
// reconstruction; solve sums the same weights in a different order.
const weightEps = 1e-9

// vset is a fixed-capacity vertex bitset. All sets handled by one
// solver share the same word count, so bitwise ops never reallocate.
type vset []uint64

func newVset(n int) vset { return make(vset, (n+63)/64) }

func (s vset) clone() vset {
	c := make(vset, len(s))
	copy(c, s)
	return c
}

func (s vset) set(v int)      { s[v>>6] |= 1 << (uint(v) & 63) }
func (s vset) unset(v int)    { s[v>>6] &^= 1 << (uint(v) & 63) }
func (s vset) has(v int) bool { return s[v>>6]&(1<<(uint(v)&63)) != 0 }

func (s vset) empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// subtract removes every vertex of o from s in place.
func (s vset) subtract(o vset) {
	for i := range s {
		s[i] &^= o[i]
	}
}

// unionWith adds every vertex of o to s in place.
func (s vset) unionWith(o vset) {
	for i := range s {
		s[i] |= o[i]
	}
}

// countIn returns |s ∩ o|.
func (s vset) countIn(o vset) int {
	n := 0
	for i := range s {
		n += bits.OnesCount64(s[i] & o[i])
	}
	return n
}

// forEach visits set vertices in ascending order; the callback returns
// false to stop early.
func (s vset) forEach(fn func(v int) bool) {
	for i, w := range s {
		for w != 0 {
			v := i<<6 + bits.TrailingZeros64(w)
			if !fn(v) {
				return
			}
			w &= w - 1
		}
	}
}

// key packs the set into a map key.
func (s vset) key() string {
	b := make([]byte, len(s)*8)
	for i, w := range s {
		for j := 0; j < 8; j++ {
			b[i*8+j] = byte(w >> (8 * j))
		}
	}
	return string(b)
}

// solver runs the branch-and-bound over one graph with fixed weights.
type solver struct {
	n       int
	adj     []vset // open neighbourhoods
	weights []float64
	memo    map[string]float64 // connected component → optimal weight
}

func newSolver(g *graph.Simple, weights []float64) *solver {
	n := g.N()
	s := &solver{
		n:       n,
		adj:     make([]vset, n),
		weights: weights,
		memo:    make(map[string]float64),
	}
	for v := 0; v < n; v++ {
		s.adj[v] = newVset(n)
		for _, u := range g.Neighbors(v) {
			s.adj[v].set(u)
		}
	}
	return s
}

// solve returns the optimal weight over the active vertex set,
// splitting into connected components first.
func (s *solver) solve(active vset) float64 {
	total := 0.0
	for _, comp := range s.components(active) {
		total += s.component(comp)
	}
	return total
}

// components partitions active into its connected components.
func (s *solver) components(active vset) []vset {
	var comps []vset
	seen := newVset(s.n)
	active.forEach(func(v int) bool {
		if seen.has(v) {
			return true
		}
		comp := newVset(s.n)
		stack := []int{v}
		seen.set(v)
		comp.set(v)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			s.adj[u].forEach(func(w int) bool {
				if active.has(w) && !seen.has(w) {
					seen.set(w)
					comp.set(w)
					stack = append(stack, w)
				}
				return true
			})
		}
		comps = append(comps, comp)
		return true
	})
	return comps
}

// branchVertex picks the vertex of maximum degree within comp, lowest
// index on ties. Reconstruction replays the same choice, so this must
// stay deterministic.
func (s *solver) branchVertex(comp vset) int {
	best, bestDeg := -1, -1
	comp.forEach(func(v int) bool {
		if d := s.adj[v].countIn(comp); d > bestDeg {
			best, bestDeg = v, d
		}
		return true
	})
	return best
}

// component solves one connected component, memoised.
func (s *solver) component(comp vset) float64 {
	k := comp.key()
	if val, ok := s.memo[k]; ok {
		return val
	}
	v := s.branchVertex(comp)

	// Exclude v.
	rest := comp.clone()
	rest.unset(v)
	val := s.solve(rest)

	// Include v: drop its whole closed neighbourhood.
	rest.subtract(s.adj[v])
	if with := s.weights[v] + s.solve(rest); with > val {
		val = with
	}

	s.memo[k] = val
	return val
}

// reconstruct replays solve's branching to recover one optimal set.
func (s *solver) reconstruct(active vset, take vset) {
	for _, comp := range s.components(active) {
		opt := s.component(comp)
		v := s.branchVertex(comp)
		if v < 0 {
			continue
		}
		without := comp.clone()
		without.unset(v)
		rest := without.clone()
		rest.subtract(s.adj[v])
		if s.weights[v]+s.solve(rest) >= opt-weightEps && s.weights[v] > 0 {
			take.set(v)
			s.reconstruct(rest, take)
		} else {
			s.reconstruct(without, take)
		}
	}
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func sum(weights []float64, set []int) float64 {
	t := 0.0
	for _, v := range set {
		t += weights[v]
	}
	return t
}
