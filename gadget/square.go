package gadget

// Square returns the crossing and simplifier catalog for the
// unweighted square (king-move) lattice. The returned catalog is
// shared immutable data.
func Square() *Catalog { return &squareCatalog }

var squareCatalog = buildSquare()

func buildSquare() Catalog {
	cross := []Pattern{
		crossUnconnected(),
		turn(),
		wTurn(),
		branch(),
		branchFix(),
		tCon(),
		trivialTurn(),
		Rotated(tCon(), 1),
		Reflected(crossConnected(), AxisY),
		Reflected(trivialTurn(), AxisY),
		branchFixB(),
		endTurn(),
		Reflected(Rotated(tCon(), 1), AxisY),
	}
	for i := range cross {
		cross[i].Index = i
	}
	simp := danglingLegs(danglingLeg())
	return Catalog{Crossings: cross, Simplifiers: simp}
}

// danglingLegs lists the base chain contraction and its five distinct
// orientations, indexed from 100 in tape order.
func danglingLegs(base Pattern) []Pattern {
	legs := []Pattern{
		base,
		Rotated(base, 1),
		Rotated(base, 2),
		Rotated(base, 3),
		Reflected(base, AxisX),
		Reflected(base, AxisY),
	}
	for i := range legs {
		legs[i].Index = 100 + i
	}
	return legs
}

// unit builds weight-1 nodes from flattened (row, col) pairs.
func unit(rc ...int) []Node {
	out := make([]Node, len(rc)/2)
	for i := range out {
		out[i] = Node{Row: rc[2*i], Col: rc[2*i+1], Weight: 1}
	}
	return out
}

// pairs builds an edge list from flattened endpoint indices.
func pairs(uv ...int) [][2]int {
	out := make([][2]int, len(uv)/2)
	for i := range out {
		out[i] = [2]int{uv[2*i], uv[2*i+1]}
	}
	return out
}

// crossConnected resolves a crossing of two lines that share an input
// edge. Only its AxisY reflection appears in the ruleset.
func crossConnected() Pattern {
	return Pattern{
		Name:           "cross-con",
		Rows:           3,
		Cols:           3,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 5},
		Source:         unit(2, 1, 2, 2, 2, 3, 1, 2, 2, 2, 3, 2),
		SourceEdges:    pairs(0, 1, 1, 2, 3, 4, 4, 5, 0, 5),
		SourcePins:     []int{0, 3, 5, 2},
		Mapped:         unit(2, 1, 2, 2, 2, 3, 1, 2, 3, 2),
		MappedPins:     []int{0, 3, 4, 2},
		Overhead:       -1,
		EntryToCompact: map[int]int{
			0: 0, 1: 0, 2: 0, 3: 3, 4: 0, 5: 5, 6: 6, 7: 7,
			8: 0, 9: 9, 10: 10, 11: 11, 12: 12, 13: 13, 14: 14, 15: 15,
		},
		CompactToConfigs: map[int][]string{
			0:  {"010010"},
			1:  {"100010"},
			2:  {"010100"},
			3:  {"100100"},
			4:  {"010001"},
			5:  {},
			6:  {"010101"},
			7:  {},
			8:  {"001010"},
			9:  {"101010"},
			10: {"001100"},
			11: {"101100"},
			12: {"001001"},
			13: {},
			14: {"001101"},
			15: {},
		},
	}
}

// crossUnconnected resolves a crossing of two unrelated lines.
func crossUnconnected() Pattern {
	return Pattern{
		Name:        "cross",
		Rows:        4,
		Cols:        5,
		Cross:       [2]int{2, 3},
		Source:      unit(2, 1, 2, 2, 2, 3, 2, 4, 2, 5, 1, 3, 2, 3, 3, 3, 4, 3),
		SourceEdges: pairs(0, 1, 1, 2, 2, 3, 3, 4, 5, 6, 6, 7, 7, 8),
		SourcePins:  []int{0, 5, 8, 4},
		Mapped:      unit(2, 1, 2, 2, 2, 3, 2, 4, 2, 5, 1, 3, 3, 3, 4, 3, 3, 2, 3, 4),
		MappedPins:  []int{0, 5, 7, 4},
		Overhead:    -1,
		EntryToCompact: map[int]int{
			0: 0, 1: 0, 2: 2, 3: 2, 4: 4, 5: 4, 6: 0, 7: 2,
			8: 0, 9: 9, 10: 2, 11: 11, 12: 4, 13: 13, 14: 2, 15: 11,
		},
		CompactToConfigs: map[int][]string{
			0:  {"010100010", "010100100"},
			1:  {},
			2:  {"010101010"},
			3:  {},
			4:  {"010100101"},
			5:  {},
			6:  {},
			7:  {},
			8:  {},
			9:  {"101010010", "101010100"},
			10: {},
			11: {"101011010"},
			12: {},
			13: {"101010101"},
			14: {},
			15: {},
		},
	}
}

// turn rewrites the right-angle bend of a line into a diagonal.
func turn() Pattern {
	return Pattern{
		Name:           "turn",
		Rows:           4,
		Cols:           4,
		Cross:          [2]int{3, 2},
		Source:         unit(1, 2, 2, 2, 3, 2, 3, 3, 3, 4),
		SourceEdges:    pairs(0, 1, 1, 2, 2, 3, 3, 4),
		SourcePins:     []int{0, 4},
		Mapped:         unit(1, 2, 2, 3, 3, 4),
		MappedPins:     []int{0, 2},
		Overhead:       -1,
		EntryToCompact: map[int]int{0: 0, 1: 0, 2: 0, 3: 3},
		CompactToConfigs: map[int][]string{
			0: {"01010"},
			1: {"10100", "10010"},
			2: {"01001", "00101"},
			3: {"10101"},
		},
	}
}

// wTurn rewrites a double bend.
func wTurn() Pattern {
	return Pattern{
		Name:           "wturn",
		Rows:           4,
		Cols:           4,
		Cross:          [2]int{2, 2},
		Source:         unit(2, 3, 2, 4, 3, 2, 3, 3, 4, 2),
		SourceEdges:    pairs(0, 1, 0, 3, 2, 3, 2, 4),
		SourcePins:     []int{1, 4},
		Mapped:         unit(2, 4, 3, 3, 4, 2),
		MappedPins:     []int{0, 2},
		Overhead:       -1,
		EntryToCompact: map[int]int{0: 0, 1: 0, 2: 0, 3: 3},
		CompactToConfigs: map[int][]string{
			0: {"10100"},
			1: {"01010", "01100"},
			2: {"00011", "10001"},
			3: {"01011"},
		},
	}
}

// branch rewrites a T junction where one line forks.
func branch() Pattern {
	return Pattern{
		Name:        "branch",
		Rows:        5,
		Cols:        4,
		Cross:       [2]int{3, 2},
		Source:      unit(1, 2, 2, 2, 3, 2, 3, 3, 3, 4, 4, 3, 4, 2, 5, 2),
		SourceEdges: pairs(0, 1, 1, 2, 2, 3, 3, 4, 3, 5, 5, 6, 6, 7),
		SourcePins:  []int{0, 4, 7},
		Mapped:      unit(1, 2, 2, 3, 3, 2, 3, 4, 4, 3, 5, 2),
		MappedPins:  []int{0, 3, 5},
		Overhead:    -1,
		EntryToCompact: map[int]int{
			0: 0, 1: 0, 2: 0, 3: 3, 4: 0, 5: 5, 6: 6, 7: 7,
		},
		CompactToConfigs: map[int][]string{
			0: {"01010010"},
			1: {},
			2: {},
			3: {"10101010", "10101100"},
			4: {},
			5: {"10100101"},
			6: {"00101101", "01001101"},
			7: {"10101101"},
		},
	}
}

// branchFix straightens the leftover zig after a branch rewrite.
func branchFix() Pattern {
	return Pattern{
		Name:           "branchfix",
		Rows:           4,
		Cols:           4,
		Cross:          [2]int{2, 2},
		Source:         unit(1, 2, 2, 2, 2, 3, 3, 3, 3, 2, 4, 2),
		SourceEdges:    pairs(0, 1, 1, 2, 2, 3, 3, 4, 4, 5),
		SourcePins:     []int{0, 5},
		Mapped:         unit(1, 2, 2, 2, 3, 2, 4, 2),
		MappedPins:     []int{0, 3},
		Overhead:       -1,
		EntryToCompact: map[int]int{0: 0, 1: 1, 2: 2, 3: 1},
		CompactToConfigs: map[int][]string{
			0: {"010100", "010010", "001010"},
			1: {"101010"},
			2: {"010101"},
			3: {"100101", "101001"},
		},
	}
}

// tCon rewrites a T junction whose lines share an input edge.
func tCon() Pattern {
	return Pattern{
		Name:           "tcon",
		Rows:           3,
		Cols:           4,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 1},
		Source:         unit(1, 2, 2, 1, 2, 2, 3, 2),
		SourceEdges:    pairs(0, 1, 0, 2, 2, 3),
		SourcePins:     []int{0, 1, 3},
		Mapped:         unit(1, 2, 2, 1, 2, 3, 3, 2),
		MappedPins:     []int{0, 1, 3},
		Overhead:       0,
		EntryToCompact: map[int]int{
			0: 0, 1: 0, 2: 2, 3: 3, 4: 0, 5: 5, 6: 6, 7: 7,
		},
		CompactToConfigs: map[int][]string{
			0: {"0010"},
			1: {"1000"},
			2: {"0110"},
			3: {},
			4: {"0001"},
			5: {"1001"},
			6: {"0101"},
			7: {},
		},
	}
}

// trivialTurn resolves a bend formed by two adjacent line ends.
func trivialTurn() Pattern {
	return Pattern{
		Name:           "trivialturn",
		Rows:           2,
		Cols:           2,
		Cross:          [2]int{2, 2},
		Connected:      true,
		ConnectedNodes: []int{0, 1},
		Source:         unit(1, 2, 2, 1),
		SourceEdges:    pairs(0, 1),
		SourcePins:     []int{0, 1},
		Mapped:         unit(1, 2, 2, 1),
		MappedPins:     []int{0, 1},
		Overhead:       0,
		EntryToCompact: map[int]int{0: 0, 1: 1, 2: 2, 3: 3},
		CompactToConfigs: map[int][]string{
			0: {"00"},
			1: {"10"},
			2: {"01"},
			3: {},
		},
	}
}

// endTurn trims a line end that stops right after its bend.
func endTurn() Pattern {
	return Pattern{
		Name:           "endturn",
		Rows:           3,
		Cols:           4,
		Cross:          [2]int{2, 2},
		Source:         unit(1, 2, 2, 2, 2, 3),
		SourceEdges:    pairs(0, 1, 1, 2),
		SourcePins:     []int{0},
		Mapped:         unit(1, 2),
		MappedPins:     []int{0},
		Overhead:       -1,
		EntryToCompact: map[int]int{0: 0, 1: 1},
		CompactToConfigs: map[int][]string{
			0: {"001", "010"},
			1: {"101"},
		},
	}
}

// branchFixB straightens the alternate branch leftover.
func branchFixB() Pattern {
	return Pattern{
		Name:           "branchfixb",
		Rows:           4,
		Cols:           4,
		Cross:          [2]int{2, 2},
		Source:         unit(2, 3, 3, 2, 3, 3, 4, 2),
		SourceEdges:    pairs(0, 2, 1, 2, 1, 3),
		SourcePins:     []int{0, 3},
		Mapped:         unit(3, 2, 4, 2),
		MappedPins:     []int{0, 1},
		Overhead:       -1,
		EntryToCompact: map[int]int{0: 0, 1: 1, 2: 2, 3: 3},
		CompactToConfigs: map[int][]string{
			0: {"0010", "0100"},
			1: {"1100"},
			2: {"0011"},
			3: {"1001"},
		},
	}
}

// danglingLeg contracts a three-cell dead-end chain to its endpoint.
func danglingLeg() Pattern {
	return Pattern{
		Name:           "danglingleg",
		Rows:           4,
		Cols:           3,
		Cross:          [2]int{2, 1},
		Source:         unit(2, 2, 3, 2, 4, 2),
		SourceEdges:    pairs(0, 1, 1, 2),
		SourcePins:     []int{2},
		Mapped:         unit(4, 2),
		MappedPins:     []int{0},
		Overhead:       -1,
		EntryToCompact: map[int]int{0: 0, 1: 1},
		CompactToConfigs: map[int][]string{
			0: {"100", "010"},
			1: {"101"},
		},
	}
}
