package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lattice-systems/gridmorph/gridgraph"
)

// Glyph counts survive any terminal styling, so the assertions below
// hold with or without ANSI escapes in the rendered string.
func TestRenderGrid(t *testing.T) {
	g := gridgraph.New(gridgraph.Square, 2, 3, []gridgraph.Node{
		{Row: 0, Col: 0, Weight: 1},
		{Row: 1, Col: 2, Weight: 2},
	}, gridgraph.SquareRadius)

	out := renderGrid(g, nil, false)
	assert.Len(t, strings.Split(out, "\n"), 2)
	assert.Equal(t, 2, strings.Count(out, "●"))
	assert.Equal(t, 4, strings.Count(out, "⋅"))
}

func TestRenderGridConfigOverlay(t *testing.T) {
	g := gridgraph.New(gridgraph.Square, 1, 2, []gridgraph.Node{
		{Row: 0, Col: 0, Weight: 1},
		{Row: 0, Col: 1, Weight: 1},
	}, gridgraph.SquareRadius)

	out := renderGrid(g, []int{1, 0}, false)
	assert.Equal(t, 1, strings.Count(out, "●"))
	assert.Equal(t, 1, strings.Count(out, "○"))
}

func TestRenderGridHeat(t *testing.T) {
	g := gridgraph.New(gridgraph.Square, 1, 3, []gridgraph.Node{
		{Row: 0, Col: 0, Weight: 1},
		{Row: 0, Col: 2, Weight: 2},
	}, gridgraph.SquareRadius)

	out := renderGrid(g, nil, true)
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
	assert.Equal(t, 1, strings.Count(out, "⋅"))
}

func TestRenderGridEmpty(t *testing.T) {
	g := gridgraph.New(gridgraph.Square, 3, 3, nil, gridgraph.SquareRadius)
	assert.Equal(t, "(empty grid graph)", renderGrid(g, nil, false))
}
