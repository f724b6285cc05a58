package pathdecomp_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-systems/gridmorph/graph"
	"github.com/lattice-systems/gridmorph/pathdecomp"
)

func TestEmpty(t *testing.T) {
	l := pathdecomp.Empty(5)
	assert.Empty(t, l.Vertices)
	assert.Zero(t, l.VSep)
}

func TestFromOrder(t *testing.T) {
	cases := []struct {
		name  string
		g     *graph.Simple
		order []int
		want  int
	}{
		{"path3", graph.Path(3), []int{0, 1, 2}, 1},
		{"path3-middle-first", graph.Path(3), []int{1, 0, 2}, 2},
		{"star4", graph.Star(4), []int{0, 1, 2, 3}, 3},
		{"cycle5", graph.Cycle(5), []int{0, 1, 2, 3, 4}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := pathdecomp.FromOrder(tc.g, tc.order)
			assert.Equal(t, tc.order, l.Vertices)
			assert.Equal(t, tc.want, l.VSep)
		})
	}
}

func TestGreedy_KnownWidths(t *testing.T) {
	cases := []struct {
		name string
		g    *graph.Simple
		want int
	}{
		{"path3", graph.Path(3), 1},
		{"path5", graph.Path(5), 1},
		{"triangle", graph.Cycle(3), 2},
		{"complete4", graph.Complete(4), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := pathdecomp.Greedy(tc.g, 10, 1)
			require.NoError(t, err)
			assert.Len(t, l.Vertices, tc.g.N())
			assert.Equal(t, tc.want, l.VSep)
		})
	}
}

func TestGreedy_Reproducible(t *testing.T) {
	g := graph.Petersen()
	a, err := pathdecomp.Greedy(g, 5, 42)
	require.NoError(t, err)
	b, err := pathdecomp.Greedy(g, 5, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGreedy_NeedsRestarts(t *testing.T) {
	_, err := pathdecomp.Greedy(graph.Path(3), 0, 0)
	require.ErrorIs(t, err, pathdecomp.ErrRestarts)
}

func TestBranchAndBound_KnownWidths(t *testing.T) {
	twoEdges, err := graph.FromEdges(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	cases := []struct {
		name string
		g    *graph.Simple
		want int
	}{
		{"empty5", graph.New(5), 0},
		{"path3", graph.Path(3), 1},
		{"two-components", twoEdges, 1},
		{"triangle", graph.Cycle(3), 2},
		{"cycle5", graph.Cycle(5), 2},
		{"complete4", graph.Complete(4), 3},
		{"petersen", graph.Petersen(), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := pathdecomp.BranchAndBound(tc.g)
			assert.Len(t, l.Vertices, tc.g.N())
			assert.Equal(t, tc.want, l.VSep)
		})
	}
}

func TestGreedyNeverBeatsExact(t *testing.T) {
	for _, g := range []*graph.Simple{
		graph.Path(6), graph.Cycle(6), graph.Bull(), graph.Diamond(),
		graph.House(), graph.Cubical(), graph.Petersen(),
	} {
		exact := pathdecomp.BranchAndBound(g)
		greedy, err := pathdecomp.Greedy(g, 10, 7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, greedy.VSep, exact.VSep)
	}
}

func TestVertexOrder_IsPermutation(t *testing.T) {
	for _, m := range []pathdecomp.Method{
		pathdecomp.MethodExact{},
		pathdecomp.MethodGreedy{NRepeat: 3, Seed: 9},
		pathdecomp.MethodAuto{},
		nil,
	} {
		order, err := pathdecomp.VertexOrder(graph.Petersen(), m)
		require.NoError(t, err)
		sorted := slices.Clone(order)
		slices.Sort(sorted)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
	}
}

func TestDecompose_AutoDispatch(t *testing.T) {
	// Small graphs go through the exact search.
	small, err := pathdecomp.Decompose(graph.Cycle(5), pathdecomp.MethodAuto{})
	require.NoError(t, err)
	assert.Equal(t, 2, small.VSep)

	// Beyond 30 vertices the greedy path takes over; on a long path it
	// still lands the optimum.
	large, err := pathdecomp.Decompose(graph.Path(40), pathdecomp.MethodAuto{})
	require.NoError(t, err)
	assert.Len(t, large.Vertices, 40)
	assert.Equal(t, 1, large.VSep)
}

func TestDecompose_GreedyZeroRestarts(t *testing.T) {
	_, err := pathdecomp.Decompose(graph.Path(3), pathdecomp.MethodGreedy{})
	require.ErrorIs(t, err, pathdecomp.ErrRestarts)
}
