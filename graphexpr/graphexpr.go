// Package graphexpr parses compact edge-run expressions into graphs.
//
// An expression is a list of runs separated by "," or ";". A run is one or
// more vertex indices joined by "-"; consecutive indices become edges, and a
// lone index just declares the vertex:
//
//	"0-1-2-0, 1-3"  →  triangle {0,1,2} plus the edge {1,3}
//	"4"             →  five vertices (0..4), no edges
//
// The vertex count of the result is one past the highest index mentioned.
package graphexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/lattice-systems/gridmorph/graph"
)

// ErrSyntax indicates the expression text did not parse.
// Usage: if errors.Is(err, ErrSyntax) { /* report malformed input */ }.
var ErrSyntax = errors.New("graphexpr: malformed expression")

type expression struct {
	Runs []*edgeRun `parser:"(@@ ((\",\" | \";\") @@)*)?"`
}

type edgeRun struct {
	Head int   `parser:"@Int"`
	Tail []int `parser:"(\"-\" @Int)*"`
}

var exprParser = participle.MustBuild[expression]()

// Parse builds a graph.Simple from an edge-run expression.
// Empty (or all-whitespace) input yields the empty 0-vertex graph.
func Parse(src string) (*graph.Simple, error) {
	if strings.TrimSpace(src) == "" {
		return graph.New(0), nil
	}
	expr, err := exprParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	// First sweep: vertex range. One past the highest mentioned index.
	n := 0
	for _, run := range expr.Runs {
		if run.Head+1 > n {
			n = run.Head + 1
		}
		for _, v := range run.Tail {
			if v+1 > n {
				n = v + 1
			}
		}
	}

	// Second sweep: consecutive run entries become edges.
	g := graph.New(n)
	for _, run := range expr.Runs {
		prev := run.Head
		for _, v := range run.Tail {
			if err = g.AddEdge(prev, v); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			prev = v
		}
	}

	return g, nil
}

// Format renders g as a normalized expression: one run per edge, sorted,
// joined by ", ". Isolated vertices are not listed except for the highest
// one, which pins the vertex count.
func Format(g *graph.Simple) string {
	edges := g.Edges()
	runs := make([]string, 0, len(edges)+1)
	seen := 0
	for _, e := range edges {
		runs = append(runs, fmt.Sprintf("%d-%d", e[0], e[1]))
		if e[1]+1 > seen {
			seen = e[1] + 1
		}
	}
	if g.N() > seen {
		runs = append(runs, fmt.Sprintf("%d", g.N()-1))
	}

	return strings.Join(runs, ", ")
}
