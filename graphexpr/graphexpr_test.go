package graphexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-systems/gridmorph/graph"
	"github.com/lattice-systems/gridmorph/graphexpr"
)

func TestParse_TriangleWithTail(t *testing.T) {
	g, err := graphexpr.Parse("0-1-2-0, 1-3")
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}}, g.Edges())
}

func TestParse_SemicolonSeparator(t *testing.T) {
	g, err := graphexpr.Parse("0-1; 2-3")
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, 2, g.M())
}

func TestParse_LoneVertexDeclaresRange(t *testing.T) {
	g, err := graphexpr.Parse("4")
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 0, g.M())
}

func TestParse_EmptyInput(t *testing.T) {
	g, err := graphexpr.Parse("   ")
	require.NoError(t, err)
	require.Equal(t, 0, g.N())
}

func TestParse_DuplicateEdgesCollapse(t *testing.T) {
	g, err := graphexpr.Parse("0-1, 1-0, 0-1")
	require.NoError(t, err)
	require.Equal(t, 1, g.M())
}

func TestParse_SyntaxError(t *testing.T) {
	for _, src := range []string{"0-", "-1", "0--1", "a-b", "0-1,,2"} {
		_, err := graphexpr.Parse(src)
		require.ErrorIs(t, err, graphexpr.ErrSyntax, "input %q", src)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	g := graph.Petersen()
	text := graphexpr.Format(g)
	back, err := graphexpr.Parse(text)
	require.NoError(t, err)
	require.Equal(t, g.N(), back.N())
	require.Equal(t, g.Edges(), back.Edges())
}

func TestFormat_IsolatedTail(t *testing.T) {
	g := graph.New(6)
	require.NoError(t, g.AddEdge(0, 1))
	require.Equal(t, "0-1, 5", graphexpr.Format(g))
}
