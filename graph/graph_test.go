package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-systems/gridmorph/graph"
)

func TestNew_NegativeClampsToEmpty(t *testing.T) {
	g := graph.New(-3)
	require.Equal(t, 0, g.N())
	require.Equal(t, 0, g.M())
}

func TestAddEdge_RangeAndDedup(t *testing.T) {
	g := graph.New(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0)) // duplicate, reversed
	require.NoError(t, g.AddEdge(1, 1)) // self-loop dropped
	require.Equal(t, 1, g.M())

	err := g.AddEdge(0, 3)
	require.ErrorIs(t, err, graph.ErrVertexRange)
	err = g.AddEdge(-1, 2)
	require.ErrorIs(t, err, graph.ErrVertexRange)
}

func TestEdges_SortedCanonical(t *testing.T) {
	g, err := graph.FromEdges(4, [][2]int{{3, 1}, {2, 0}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}}, g.Edges())
}

func TestNeighbors_SortedAndFresh(t *testing.T) {
	g, err := graph.FromEdges(5, [][2]int{{2, 4}, {2, 0}, {2, 3}, {2, 1}})
	require.NoError(t, err)
	ns := g.Neighbors(2)
	require.Equal(t, []int{0, 1, 3, 4}, ns)

	// Mutating the returned slice must not corrupt the graph.
	ns[0] = 99
	require.Equal(t, []int{0, 1, 3, 4}, g.Neighbors(2))

	require.Nil(t, g.Neighbors(17))
}

func TestDegreeAndHasEdge(t *testing.T) {
	g := graph.Diamond()
	require.Equal(t, 3, g.Degree(1))
	require.Equal(t, 2, g.Degree(0))
	require.True(t, g.HasEdge(2, 3))
	require.False(t, g.HasEdge(0, 3))
	require.False(t, g.HasEdge(0, 42))
}

func TestClone_Independent(t *testing.T) {
	g := graph.Cycle(4)
	c := g.Clone()
	require.NoError(t, c.AddEdge(0, 2))
	require.False(t, g.HasEdge(0, 2))
	require.True(t, c.HasEdge(0, 2))
}

func TestNamed_SizesAndEdgeCounts(t *testing.T) {
	cases := []struct {
		name string
		g    *graph.Simple
		n, m int
	}{
		{"path5", graph.Path(5), 5, 4},
		{"cycle6", graph.Cycle(6), 6, 6},
		{"complete4", graph.Complete(4), 4, 6},
		{"k23", graph.CompleteBipartite(2, 3), 5, 6},
		{"star5", graph.Star(5), 5, 4},
		{"bull", graph.Bull(), 5, 5},
		{"diamond", graph.Diamond(), 4, 5},
		{"house", graph.House(), 5, 6},
		{"cubical", graph.Cubical(), 8, 12},
		{"petersen", graph.Petersen(), 10, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.n, tc.g.N())
			require.Equal(t, tc.m, tc.g.M())
		})
	}
}

func TestPetersen_ThreeRegular(t *testing.T) {
	g := graph.Petersen()
	for v := 0; v < g.N(); v++ {
		require.Equal(t, 3, g.Degree(v), "vertex %d", v)
	}
}
