package gridgraph

import (
	"strconv"
	"strings"
)

// Glyphs used by the text renderers.
const (
	glyphEmpty      = "⋅"
	glyphNode       = "●"
	glyphUnselected = "○"
)

// String renders the full Rows×Cols lattice with ● at node sites and ⋅
// elsewhere. Cells are space-separated, rows newline-separated, with no
// trailing newline. An empty graph renders as "(empty grid graph)".
func (g *GridGraph) String() string {
	return g.render(func(int) string { return glyphNode })
}

// Render draws a vertex configuration on the lattice: ● for selected
// nodes (config value > 0), ○ for unselected ones. Nodes beyond the end
// of config count as unselected.
func (g *GridGraph) Render(config []int) string {
	return g.render(func(idx int) string {
		if idx < len(config) && config[idx] > 0 {
			return glyphNode
		}

		return glyphUnselected
	})
}

// RenderWeights renders each node as its weight when that formats to a
// single character (unit and single-digit weights), and as ● otherwise.
func (g *GridGraph) RenderWeights() string {
	return g.render(func(idx int) string {
		s := strconv.FormatFloat(g.Nodes[idx].Weight, 'g', -1, 64)
		if len(s) == 1 {
			return s
		}

		return glyphNode
	})
}

// render walks the full lattice extent and emits one glyph per cell.
func (g *GridGraph) render(glyph func(idx int) string) string {
	if len(g.Nodes) == 0 {
		return "(empty grid graph)"
	}

	// Later nodes win on coordinate collisions, matching index lookups
	// that scan Nodes back to front.
	at := make(map[[2]int]int, len(g.Nodes))
	for idx, n := range g.Nodes {
		at[[2]int{n.Row, n.Col}] = idx
	}

	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if idx, ok := at[[2]int{r, c}]; ok {
				sb.WriteString(glyph(idx))
			} else {
				sb.WriteString(glyphEmpty)
			}
		}
	}

	return sb.String()
}
