package gadget

import "github.com/lattice-systems/gridmorph/grid"

// Triangular returns the catalog for the triangular-lattice mapping.
// Crossing templates are listed in match order and carry their tape
// index explicitly; the connected crossing is tried before the plain
// one because the plain window would also match it. Triangular
// templates have no boundary tables: configurations map back through
// traced centers instead.
func Triangular() *Catalog { return &triangularCatalog }

var triangularCatalog = buildTriangular()

func buildTriangular() Catalog {
	cross := []Pattern{
		triCrossConnected(),
		triCrossUnconnected(),
		triTConLeft(),
		triTConUp(),
		triTConDown(),
		triTrivialTurnLeft(),
		triTrivialTurnRight(),
		triEndTurn(),
		triTurn(),
		triWTurn(),
		triBranchFix(),
		triBranchFixB(),
		triBranch(),
	}
	return Catalog{Crossings: cross, Legs: triLegs()}
}

// Leg is a directional dangling-chain contraction for the triangular
// lattice: a weight 1-2-2 dead-end chain, alone in its window,
// collapses to a single weight-1 site at the attached end. Chain lists
// the three cell offsets starting from the dangling end.
type Leg struct {
	Name     string
	Index    int
	Rows     int
	Cols     int
	Chain    [3][2]int
	Overhead int
}

// Chain cell weights, dangling end first.
var legWeights = [3]int{1, 2, 2}

func triLegs() []Leg {
	return []Leg{
		{Name: "leg-down", Index: 100, Rows: 4, Cols: 3, Chain: [3][2]int{{1, 1}, {2, 1}, {3, 1}}, Overhead: -2},
		{Name: "leg-up", Index: 101, Rows: 4, Cols: 3, Chain: [3][2]int{{2, 1}, {1, 1}, {0, 1}}, Overhead: -2},
		{Name: "leg-right", Index: 102, Rows: 3, Cols: 4, Chain: [3][2]int{{1, 2}, {1, 1}, {1, 0}}, Overhead: -2},
		{Name: "leg-left", Index: 103, Rows: 3, Cols: 4, Chain: [3][2]int{{1, 1}, {1, 2}, {1, 3}}, Overhead: -2},
	}
}

// Matches reports whether the window at (row, col) holds exactly the
// leg's chain. The whole window must be in bounds and every cell
// outside the chain empty.
func (l Leg) Matches(g *grid.Grid, row, col int) bool {
	if row < 0 || col < 0 || row+l.Rows > g.Rows() || col+l.Cols > g.Cols() {
		return false
	}
	for dr := 0; dr < l.Rows; dr++ {
		for dc := 0; dc < l.Cols; dc++ {
			cell := g.At(row+dr, col+dc)
			k := l.chainIndex(dr, dc)
			if k < 0 {
				if !cell.IsEmpty() {
					return false
				}
				continue
			}
			if cell.IsEmpty() || cell.Weight != legWeights[k] {
				return false
			}
		}
	}
	return true
}

// Apply contracts the chain in place.
func (l Leg) Apply(g *grid.Grid, row, col int) {
	g.Clear(row+l.Chain[0][0], col+l.Chain[0][1])
	g.Clear(row+l.Chain[1][0], col+l.Chain[1][1])
	g.Set(row+l.Chain[2][0], col+l.Chain[2][1], grid.Cell{State: grid.Occupied, Weight: 1})
}

func (l Leg) chainIndex(dr, dc int) int {
	for k, off := range l.Chain {
		if off[0] == dr && off[1] == dc {
			return k
		}
	}
	return -1
}

// wnodes builds nodes from flattened (row, col) pairs and a parallel
// weight vector.
func wnodes(ws []int, rc ...int) []Node {
	out := make([]Node, len(ws))
	for i := range out {
		out[i] = Node{Row: rc[2*i], Col: rc[2*i+1], Weight: ws[i]}
	}
	return out
}

func triCrossConnected() Pattern {
	return Pattern{
		Name:           "tri-cross-con",
		Index:          1,
		Rows:           6,
		Cols:           4,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 4},
		Source: wnodes(twos(10),
			2, 1, 2, 2, 2, 3, 2, 4, 1, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2),
		SourceEdges: pairs(0, 1, 1, 2, 2, 3, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 0, 4),
		SourcePins:  []int{0, 4, 9, 3},
		Mapped: wnodes([]int{3, 2, 3, 3, 2, 2, 2, 2, 2, 2, 2},
			1, 2, 2, 1, 2, 2, 2, 3, 1, 4, 3, 3, 4, 2, 4, 3, 5, 1, 6, 1, 6, 2),
		MappedPins: []int{1, 0, 10, 4},
		Overhead:   1,
	}
}

func triCrossUnconnected() Pattern {
	return Pattern{
		Name:  "tri-cross",
		Index: 0,
		Rows:  6,
		Cols:  6,
		Cross: [2]int{2, 4},
		Source: wnodes(twos(12),
			2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 1, 4, 2, 4, 3, 4, 4, 4, 5, 4, 6, 4, 2, 1),
		SourceEdges: pairs(0, 1, 1, 2, 2, 3, 3, 4, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 11, 0),
		SourcePins:  []int{11, 5, 10, 4},
		Mapped: wnodes([]int{3, 3, 2, 4, 2, 2, 2, 4, 3, 2, 2, 2, 2, 2, 2, 2},
			1, 4, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 3, 2, 3, 3, 3, 4, 3, 5, 4, 2, 4, 3, 5, 2, 6, 3, 6, 4, 2, 1),
		MappedPins: []int{15, 0, 14, 5},
		Overhead:   3,
	}
}

func triTConLeft() Pattern {
	return Pattern{
		Name:           "tri-tcon-left",
		Index:          2,
		Rows:           6,
		Cols:           5,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 1},
		Source: wnodes([]int{2, 1, 2, 2, 2, 2, 2},
			1, 2, 2, 1, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2),
		SourceEdges: pairs(0, 1, 0, 2, 2, 3, 3, 4, 4, 5, 5, 6),
		SourcePins:  []int{0, 1, 6},
		Mapped: wnodes([]int{3, 2, 3, 3, 1, 3, 2, 2, 2, 2, 2},
			1, 2, 2, 1, 2, 2, 2, 3, 2, 4, 3, 3, 4, 2, 4, 3, 5, 1, 6, 1, 6, 2),
		MappedPins: []int{0, 1, 10},
		Overhead:   4,
	}
}

func triTConUp() Pattern {
	return Pattern{
		Name:           "tri-tcon-up",
		Index:          3,
		Rows:           3,
		Cols:           3,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 1},
		Source:         wnodes([]int{1, 2, 2, 2}, 1, 2, 2, 1, 2, 2, 2, 3),
		SourceEdges:    pairs(0, 1, 1, 2, 2, 3),
		SourcePins:     []int{1, 0, 3},
		Mapped:         wnodes([]int{3, 2, 2, 2}, 1, 2, 2, 1, 2, 2, 2, 3),
		MappedPins:     []int{1, 0, 3},
		Overhead:       0,
	}
}

func triTConDown() Pattern {
	return Pattern{
		Name:           "tri-tcon-down",
		Index:          4,
		Rows:           3,
		Cols:           3,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 3},
		Source:         wnodes([]int{2, 2, 2, 1}, 2, 1, 2, 2, 2, 3, 3, 2),
		SourceEdges:    pairs(0, 1, 1, 2, 0, 3),
		SourcePins:     []int{0, 3, 2},
		Mapped:         wnodes([]int{2, 2, 3, 2}, 2, 2, 3, 1, 3, 2, 3, 3),
		MappedPins:     []int{1, 2, 3},
		Overhead:       0,
	}
}

func triTrivialTurnLeft() Pattern {
	return Pattern{
		Name:           "tri-trivialturn-left",
		Index:          5,
		Rows:           2,
		Cols:           2,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 1},
		Source:         wnodes([]int{1, 1}, 1, 2, 2, 1),
		SourceEdges:    pairs(0, 1),
		SourcePins:     []int{0, 1},
		Mapped:         wnodes([]int{1, 1}, 1, 2, 2, 1),
		MappedPins:     []int{0, 1},
		Overhead:       0,
	}
}

func triTrivialTurnRight() Pattern {
	return Pattern{
		Name:           "tri-trivialturn-right",
		Index:          6,
		Rows:           2,
		Cols:           2,
		Cross:          [2]int{1, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 1},
		Source:         wnodes([]int{1, 1}, 1, 1, 2, 2),
		SourceEdges:    pairs(0, 1),
		SourcePins:     []int{0, 1},
		Mapped:         wnodes([]int{1, 1}, 2, 1, 2, 2),
		MappedPins:     []int{0, 1},
		Overhead:       0,
	}
}

func triEndTurn() Pattern {
	return Pattern{
		Name:        "tri-endturn",
		Index:       7,
		Rows:        3,
		Cols:        4,
		Cross:       [2]int{2, 2},
		Source:      wnodes([]int{2, 2, 1}, 1, 2, 2, 2, 2, 3),
		SourceEdges: pairs(0, 1, 1, 2),
		SourcePins:  []int{0},
		Mapped:      wnodes([]int{1}, 1, 2),
		MappedPins:  []int{0},
		Overhead:    -2,
	}
}

func triTurn() Pattern {
	return Pattern{
		Name:        "tri-turn",
		Index:       8,
		Rows:        3,
		Cols:        4,
		Cross:       [2]int{2, 2},
		Source:      wnodes(twos(4), 1, 2, 2, 2, 2, 3, 2, 4),
		SourceEdges: pairs(0, 1, 1, 2, 2, 3),
		SourcePins:  []int{0, 3},
		Mapped:      wnodes(twos(4), 1, 2, 2, 2, 3, 3, 2, 4),
		MappedPins:  []int{0, 3},
		Overhead:    0,
	}
}

func triWTurn() Pattern {
	return Pattern{
		Name:        "tri-wturn",
		Index:       9,
		Rows:        4,
		Cols:        4,
		Cross:       [2]int{2, 2},
		Source:      wnodes(twos(5), 2, 3, 2, 4, 3, 2, 3, 3, 4, 2),
		SourceEdges: pairs(0, 1, 0, 3, 2, 3, 2, 4),
		SourcePins:  []int{1, 4},
		Mapped:      wnodes(twos(5), 1, 4, 2, 3, 3, 2, 3, 3, 4, 2),
		MappedPins:  []int{0, 4},
		Overhead:    0,
	}
}

func triBranchFix() Pattern {
	return Pattern{
		Name:        "tri-branchfix",
		Index:       10,
		Rows:        4,
		Cols:        4,
		Cross:       [2]int{2, 2},
		Source:      wnodes(twos(6), 1, 2, 2, 2, 2, 3, 3, 3, 3, 2, 4, 2),
		SourceEdges: pairs(0, 1, 1, 2, 2, 3, 3, 4, 4, 5),
		SourcePins:  []int{0, 5},
		Mapped:      wnodes(twos(4), 1, 2, 2, 2, 3, 2, 4, 2),
		MappedPins:  []int{0, 3},
		Overhead:    -2,
	}
}

func triBranchFixB() Pattern {
	return Pattern{
		Name:        "tri-branchfixb",
		Index:       11,
		Rows:        4,
		Cols:        4,
		Cross:       [2]int{2, 2},
		Source:      wnodes(twos(4), 2, 3, 3, 2, 3, 3, 4, 2),
		SourceEdges: pairs(0, 2, 1, 2, 1, 3),
		SourcePins:  []int{0, 3},
		Mapped:      wnodes(twos(2), 3, 2, 4, 2),
		MappedPins:  []int{0, 1},
		Overhead:    -2,
	}
}

func triBranch() Pattern {
	return Pattern{
		Name:  "tri-branch",
		Index: 12,
		Rows:  6,
		Cols:  4,
		Cross: [2]int{2, 2},
		Source: wnodes([]int{2, 2, 3, 2, 2, 2, 2, 2, 2},
			1, 2, 2, 2, 2, 3, 2, 4, 3, 3, 3, 2, 4, 2, 5, 2, 6, 2),
		SourceEdges: pairs(0, 1, 1, 2, 2, 3, 2, 4, 4, 5, 5, 6, 6, 7, 7, 8),
		SourcePins:  []int{0, 3, 8},
		Mapped: wnodes([]int{2, 2, 2, 3, 2, 2, 2, 2, 2},
			1, 2, 2, 2, 2, 4, 3, 3, 4, 2, 4, 3, 5, 1, 6, 1, 6, 2),
		MappedPins: []int{0, 2, 8},
		Overhead:   0,
	}
}
