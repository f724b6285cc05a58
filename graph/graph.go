package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrVertexRange indicates an edge endpoint outside the vertex range 0..n-1.
// Usage: if errors.Is(err, ErrVertexRange) { /* reject the edge list */ }.
var ErrVertexRange = errors.New("graph: vertex out of range")

// Simple is an undirected simple graph over vertices 0..n-1.
// Self-loops and duplicate edges are silently dropped on insertion, so the
// stored edge set is always simple. The zero value is an empty 0-vertex
// graph; use New to size it.
type Simple struct {
	n   int
	adj []map[int]struct{}
	m   int
}

// New returns an empty graph with n vertices and no edges.
// A negative n is treated as 0.
func New(n int) *Simple {
	if n < 0 {
		n = 0
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Simple{n: n, adj: adj}
}

// FromEdges builds a graph with n vertices from an edge list.
// Returns ErrVertexRange (wrapped with the offending pair) on the first
// endpoint outside 0..n-1.
func FromEdges(n int, edges [][2]int) (*Simple, error) {
	g := New(n)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// N returns the vertex count.
func (g *Simple) N() int { return g.n }

// M returns the edge count.
func (g *Simple) M() int { return g.m }

// AddEdge inserts the undirected edge {u,v}. Self-loops and duplicates are
// ignored. Returns ErrVertexRange if either endpoint is outside 0..n-1.
func (g *Simple) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("%w: edge (%d,%d) with n=%d", ErrVertexRange, u, v, g.n)
	}
	if u == v {
		return nil
	}
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.m++

	return nil
}

// HasEdge reports whether {u,v} is present. Out-of-range endpoints report false.
func (g *Simple) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of v (0 for out-of-range v).
func (g *Simple) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the neighbors of v in ascending order.
// The slice is freshly allocated on every call.
func (g *Simple) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	ns := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		ns = append(ns, u)
	}
	sort.Ints(ns)

	return ns
}

// Edges returns all edges as {u,v} pairs with u < v, sorted lexicographically.
func (g *Simple) Edges() [][2]int {
	es := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			if u < v {
				es = append(es, [2]int{u, v})
			}
		}
	}
	sort.Slice(es, func(i, j int) bool {
		if es[i][0] != es[j][0] {
			return es[i][0] < es[j][0]
		}

		return es[i][1] < es[j][1]
	})

	return es
}

// Clone returns an independent deep copy of g.
func (g *Simple) Clone() *Simple {
	c := New(g.n)
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			c.adj[u][v] = struct{}{}
		}
	}
	c.m = g.m

	return c
}
