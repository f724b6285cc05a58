package gadget_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-systems/gridmorph/gadget"
	"github.com/lattice-systems/gridmorph/graph"
	"github.com/lattice-systems/gridmorph/grid"
	"github.com/lattice-systems/gridmorph/mis"
)

func TestSquareCatalogShape(t *testing.T) {
	cat := gadget.Square()
	require.Len(t, cat.Crossings, 13)
	require.Len(t, cat.Simplifiers, 6)
	for i, p := range cat.Crossings {
		assert.Equal(t, i, p.Index, p.Name)
	}
	for i, p := range cat.Simplifiers {
		assert.Equal(t, 100+i, p.Index, p.Name)
	}
	for _, p := range append(cat.Crossings, cat.Simplifiers...) {
		checkGeometry(t, p)
		require.NotEmpty(t, p.EntryToCompact, p.Name)
		require.Len(t, p.EntryToCompact, 1<<len(p.MappedPins), p.Name)
	}
}

func TestSquareWeightedMirrorsUnweighted(t *testing.T) {
	plain, wtd := gadget.Square(), gadget.SquareWeighted()
	require.Len(t, wtd.Crossings, len(plain.Crossings))
	require.Len(t, wtd.Simplifiers, len(plain.Simplifiers))
	pairsOf := func(a, b []gadget.Pattern) {
		for i := range a {
			p, q := a[i], b[i]
			assert.Equal(t, p.Index, q.Index)
			assert.Equal(t, [2]int{p.Rows, p.Cols}, [2]int{q.Rows, q.Cols}, p.Name)
			assert.Equal(t, p.Cross, q.Cross, p.Name)
			assert.Equal(t, coords(p.Source), coords(q.Source), p.Name)
			assert.Equal(t, coords(p.Mapped), coords(q.Mapped), p.Name)
			assert.Equal(t, p.SourcePins, q.SourcePins, p.Name)
			assert.Equal(t, p.MappedPins, q.MappedPins, p.Name)
			assert.Equal(t, 2*p.Overhead, q.Overhead, p.Name)
			for _, n := range append(q.Source, q.Mapped...) {
				assert.Positive(t, n.Weight, q.Name)
			}
		}
	}
	pairsOf(plain.Crossings, wtd.Crossings)
	pairsOf(plain.Simplifiers, wtd.Simplifiers)
}

func TestTriangularCatalogShape(t *testing.T) {
	cat := gadget.Triangular()
	require.Len(t, cat.Crossings, 13)
	require.Len(t, cat.Legs, 4)

	// The connected crossing is matched first but keeps tape index 1.
	assert.Equal(t, []int{1, 0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, indices(cat.Crossings))
	for i, l := range cat.Legs {
		assert.Equal(t, 100+i, l.Index)
		assert.Equal(t, -2, l.Overhead)
	}
	for _, p := range cat.Crossings {
		checkGeometry(t, p)
		assert.Empty(t, p.EntryToCompact, p.Name)
		assert.Empty(t, p.CompactToConfigs, p.Name)
	}
}

// checkGeometry asserts the structural invariants every template obeys:
// nodes inside the window, pins and edges in range, matching pin counts
// and an in-window cross location.
func checkGeometry(t *testing.T, p gadget.Pattern) {
	t.Helper()
	for _, n := range p.Source {
		require.True(t, n.Row >= 1 && n.Row <= p.Rows && n.Col >= 1 && n.Col <= p.Cols,
			"%s: source node %v outside %dx%d", p.Name, n, p.Rows, p.Cols)
	}
	for _, n := range p.Mapped {
		require.True(t, n.Row >= 1 && n.Row <= p.Rows && n.Col >= 1 && n.Col <= p.Cols,
			"%s: mapped node %v outside %dx%d", p.Name, n, p.Rows, p.Cols)
	}
	require.Equal(t, len(p.SourcePins), len(p.MappedPins), p.Name)
	for _, v := range p.SourcePins {
		require.Less(t, v, len(p.Source), p.Name)
	}
	for _, v := range p.MappedPins {
		require.Less(t, v, len(p.Mapped), p.Name)
	}
	for _, e := range p.SourceEdges {
		require.Less(t, e[0], len(p.Source), p.Name)
		require.Less(t, e[1], len(p.Source), p.Name)
	}
	require.True(t, p.Cross[0] >= 1 && p.Cross[0] <= p.Rows, p.Name)
	require.True(t, p.Cross[1] >= 1 && p.Cross[1] <= p.Cols, p.Name)
	if p.Connected {
		require.NotEmpty(t, p.ConnectedNodes, p.Name)
	}
}

func TestBoundaryTables(t *testing.T) {
	for _, cat := range []*gadget.Catalog{gadget.Square(), gadget.SquareWeighted()} {
		for _, p := range append(cat.Crossings, cat.Simplifiers...) {
			t.Run(p.Name, func(t *testing.T) {
				src, err := graph.FromEdges(len(p.Source), p.SourceEdges)
				require.NoError(t, err)
				for bc, compact := range p.EntryToCompact {
					require.Less(t, bc, 1<<len(p.MappedPins))
					_, ok := p.CompactToConfigs[compact]
					require.True(t, ok, "compact %d missing", compact)
				}
				for compact, configs := range p.CompactToConfigs {
					for _, cfg := range configs {
						require.Len(t, cfg, len(p.Source))
						sel := make([]int, len(cfg))
						for i, ch := range cfg {
							require.Contains(t, "01", string(ch))
							if ch == '1' {
								sel[i] = 1
							}
						}
						// Each configuration realises exactly the boundary its
						// compact key encodes, independently.
						require.True(t, mis.IsIndependent(src, sel),
							"config %s not independent", cfg)
						for i, v := range p.SourcePins {
							bit := (compact >> i) & 1
							require.Equal(t, bit, sel[v],
								"config %s pin %d vs compact %d", cfg, i, compact)
						}
					}
				}
			})
		}
	}
}

func TestRotationReflectionInvolutions(t *testing.T) {
	for _, p := range gadget.Square().Crossings {
		full := gadget.Rotated(gadget.Rotated(gadget.Rotated(gadget.Rotated(p, 1), 1), 1), 1)
		assert.Equal(t, p.Source, full.Source, p.Name)
		assert.Equal(t, p.Mapped, full.Mapped, p.Name)
		assert.Equal(t, p.Cross, full.Cross, p.Name)
		assert.Equal(t, [2]int{p.Rows, p.Cols}, [2]int{full.Rows, full.Cols}, p.Name)

		for _, ax := range []gadget.Axis{gadget.AxisX, gadget.AxisY, gadget.AxisDiag, gadget.AxisOffDiag} {
			twice := gadget.Reflected(gadget.Reflected(p, ax), ax)
			assert.Equal(t, p.Source, twice.Source, p.Name)
			assert.Equal(t, p.Cross, twice.Cross, p.Name)
		}
	}
}

func TestRotatedQuarterTurn(t *testing.T) {
	turn := gadget.Square().Crossings[6] // two adjacent line ends
	q := gadget.Rotated(turn, 1)
	assert.Equal(t, []gadget.Node{{Row: 1, Col: 1, Weight: 1}, {Row: 2, Col: 2, Weight: 1}}, q.Source)
	assert.Equal(t, [2]int{1, 2}, q.Cross)
	assert.Equal(t, [2]int{2, 2}, [2]int{q.Rows, q.Cols})

	// Tables and pins ride along unchanged.
	assert.Equal(t, turn.SourcePins, q.SourcePins)
	assert.Equal(t, turn.EntryToCompact, q.EntryToCompact)
}

func TestSquareRoundTrip(t *testing.T) {
	for _, p := range append(gadget.Square().Crossings, gadget.Square().Simplifiers...) {
		t.Run(p.Name, func(t *testing.T) {
			g := grid.New(p.Rows, p.Cols)
			p.Unapply(g, 0, 0)
			before := g.String()
			require.True(t, p.Matches(g, 0, 0), "source picture must match:\n%s", before)

			p.Apply(g, 0, 0)
			for _, n := range p.Mapped {
				cell := g.At(n.Row-1, n.Col-1)
				require.False(t, cell.IsEmpty(), "mapped site %v missing", n)
			}

			p.Unapply(g, 0, 0)
			require.Equal(t, before, g.String())
		})
	}
}

func TestWeightedApplyProducesDeclaredPicture(t *testing.T) {
	for _, p := range append(gadget.SquareWeighted().Crossings, gadget.SquareWeighted().Simplifiers...) {
		t.Run(p.Name, func(t *testing.T) {
			g := grid.New(p.Rows, p.Cols)
			stampSource(t, g, p)
			require.True(t, p.MatchesWeighted(g, 0, 0), "source picture must match:\n%s", g)

			p.ApplyWeighted(g, 0, 0)
			want := make(map[[2]int]int, len(p.Mapped))
			for _, n := range p.Mapped {
				want[[2]int{n.Row, n.Col}] += n.Weight
			}
			for r := 1; r <= p.Rows; r++ {
				for c := 1; c <= p.Cols; c++ {
					cell := g.At(r-1, c-1)
					assert.Equal(t, want[[2]int{r, c}], cell.Weight, "cell (%d,%d)", r, c)
				}
			}
		})
	}
}

func TestTriangularApplyProducesDeclaredPicture(t *testing.T) {
	for _, p := range gadget.Triangular().Crossings {
		t.Run(p.Name, func(t *testing.T) {
			g := grid.New(p.Rows, p.Cols)
			stampSource(t, g, p)
			require.True(t, p.MatchesTriangular(g, 0, 0), "source picture must match:\n%s", g)

			p.ApplyTriangular(g, 0, 0)
			want := make(map[[2]int]int, len(p.Mapped))
			for _, n := range p.Mapped {
				want[[2]int{n.Row, n.Col}] = n.Weight
			}
			for r := 1; r <= p.Rows; r++ {
				for c := 1; c <= p.Cols; c++ {
					cell := g.At(r-1, c-1)
					assert.Equal(t, want[[2]int{r, c}], cell.Weight, "cell (%d,%d)", r, c)
				}
			}
		})
	}
}

func TestTriangularMatchRejectsWrongWeight(t *testing.T) {
	p := gadget.Triangular().Crossings[0] // connected crossing
	g := grid.New(p.Rows, p.Cols)
	stampSource(t, g, p)
	require.True(t, p.MatchesTriangular(g, 0, 0))

	n := p.Source[len(p.Source)-1]
	g.Set(n.Row-1, n.Col-1, grid.Cell{State: grid.Occupied, Weight: n.Weight + 1})
	require.False(t, p.MatchesTriangular(g, 0, 0))
}

func TestLegContraction(t *testing.T) {
	for _, l := range gadget.Triangular().Legs {
		t.Run(l.Name, func(t *testing.T) {
			g := grid.New(l.Rows+2, l.Cols+2)
			weights := []int{1, 2, 2}
			for k, off := range l.Chain {
				require.NoError(t, g.AddNode(1+off[0], 1+off[1], weights[k]))
			}
			require.True(t, l.Matches(g, 1, 1))
			require.False(t, l.Matches(g, 0, 0), "shifted window must not match")

			l.Apply(g, 1, 1)
			keep := [2]int{1 + l.Chain[2][0], 1 + l.Chain[2][1]}
			require.Equal(t, [][2]int{keep}, g.OccupiedCoords())
			require.Equal(t, 1, g.At(keep[0], keep[1]).Weight)
		})
	}
}

func TestLegRejectsOccupiedFlank(t *testing.T) {
	l := gadget.Triangular().Legs[0]
	g := grid.New(l.Rows+2, l.Cols+2)
	weights := []int{1, 2, 2}
	for k, off := range l.Chain {
		require.NoError(t, g.AddNode(1+off[0], 1+off[1], weights[k]))
	}
	require.NoError(t, g.AddNode(1, 1, 2))
	require.False(t, l.Matches(g, 1, 1))
}

// Every square rewrite must preserve the constrained independent-set
// optimum: over all boundary-pin assignments, the best achievable
// values of the source and mapped windows select the same boundaries
// and differ by exactly the declared overhead.
func TestSquareOverheads(t *testing.T) {
	for _, tc := range []struct {
		name string
		cat  *gadget.Catalog
	}{
		{"unweighted", gadget.Square()},
		{"weighted", gadget.SquareWeighted()},
	} {
		for _, p := range append(tc.cat.Crossings, tc.cat.Simplifiers...) {
			t.Run(tc.name+"/"+p.Name, func(t *testing.T) {
				verifyOverhead(t, p)
			})
		}
	}
}

func verifyOverhead(t *testing.T, p gadget.Pattern) {
	t.Helper()
	src, err := graph.FromEdges(len(p.Source), p.SourceEdges)
	require.NoError(t, err)
	mapped := kingGraph(p.Mapped)

	// Pins are shared with the neighbouring windows, so both sides
	// count them at weight-1 to avoid double counting.
	srcW := pinDiscounted(p.Source, p.SourcePins)
	mapW := pinDiscounted(p.Mapped, p.MappedPins)

	srcBest, mapBest := math.Inf(-1), math.Inf(-1)
	var srcArg, mapArg []int
	for mask := 0; mask < 1<<len(p.SourcePins); mask++ {
		in, out := split(p.SourcePins, mask)
		if sv, ok := mis.SolveWithPins(src, srcW, in, out); ok {
			srcBest, srcArg = fold(srcBest, srcArg, sv, mask)
		}
		in, out = split(p.MappedPins, mask)
		if mv, ok := mis.SolveWithPins(mapped, mapW, in, out); ok {
			mapBest, mapArg = fold(mapBest, mapArg, mv, mask)
		}
	}
	require.Equal(t, srcArg, mapArg, "optimal boundary sets differ")
	require.Equal(t, float64(p.Overhead), mapBest-srcBest)
}

// kingGraph connects mapped nodes lying within Euclidean distance 1.5,
// the adjacency of the square lattice output.
func kingGraph(nodes []gadget.Node) *graph.Simple {
	g := graph.New(len(nodes))
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			dr := nodes[i].Row - nodes[j].Row
			dc := nodes[i].Col - nodes[j].Col
			if dr*dr+dc*dc <= 2 {
				_ = g.AddEdge(i, j)
			}
		}
	}
	return g
}

func pinDiscounted(nodes []gadget.Node, pins []int) []float64 {
	w := make([]float64, len(nodes))
	for i, n := range nodes {
		w[i] = float64(n.Weight)
	}
	for _, v := range pins {
		w[v]--
	}
	return w
}

func split(pins []int, mask int) (in, out []int) {
	for i, v := range pins {
		if mask>>i&1 == 1 {
			in = append(in, v)
		} else {
			out = append(out, v)
		}
	}
	return in, out
}

func fold(best float64, arg []int, v float64, mask int) (float64, []int) {
	const eps = 1e-9
	switch {
	case v > best+eps:
		return v, []int{mask}
	case v > best-eps:
		return best, append(arg, mask)
	}
	return best, arg
}

// stampSource writes a template's source picture the way the pipeline
// would: stacked AddNode stamps plus junction marks.
func stampSource(t *testing.T, g *grid.Grid, p gadget.Pattern) {
	t.Helper()
	for _, n := range p.Source {
		require.NoError(t, g.AddNode(n.Row-1, n.Col-1, n.Weight))
	}
	if p.Connected {
		for _, k := range p.ConnectedNodes {
			n := p.Source[k]
			g.Connect(n.Row-1, n.Col-1)
		}
	}
}

func coords(nodes []gadget.Node) [][2]int {
	out := make([][2]int, len(nodes))
	for i, n := range nodes {
		out[i] = [2]int{n.Row, n.Col}
	}
	return out
}

func indices(ps []gadget.Pattern) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Index
	}
	return out
}
