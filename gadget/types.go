package gadget

// Node is one pattern cell in 1-based in-window coordinates. Weight is
// the site weight the weighted lattices assign to the cell; the
// unweighted square catalog carries 1 everywhere.
type Node struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Weight int `json:"weight"`
}

// Axis selects a mirror line for Reflected.
type Axis uint8

const (
	// AxisX mirrors columns (left-right flip).
	AxisX Axis = iota
	// AxisY mirrors rows (top-bottom flip).
	AxisY
	// AxisDiag mirrors across the main diagonal, swapping the window
	// dimensions.
	AxisDiag
	// AxisOffDiag mirrors across the anti-diagonal, swapping the window
	// dimensions.
	AxisOffDiag
)

// Pattern is one rewrite template: the source sub-grid shape that line
// embedding produces, and the mapped sub-grid that replaces it.
//
// Source and Mapped list the occupied cells of the two shapes. Pins are
// indices into those lists marking the boundary cells through which the
// template couples to the rest of the grid; SourceEdges lists the
// adjacency of the source cells. EntryToCompact and CompactToConfigs
// are the boundary-configuration tables consumed by ConfigBack.
type Pattern struct {
	// Name identifies the template in debug output.
	Name string
	// Index is the catalog index recorded on tape entries.
	Index int
	// Rows, Cols give the window size.
	Rows, Cols int
	// Cross is the 1-based in-window coordinate of the crossing cell the
	// rewrite engine aligns the window on.
	Cross [2]int
	// Connected marks templates whose crossing lines share an input
	// edge; ConnectedNodes indexes the Source cells flagged as junctions.
	Connected      bool
	ConnectedNodes []int

	Source      []Node
	SourceEdges [][2]int
	SourcePins  []int
	Mapped      []Node
	MappedPins  []int

	// Overhead is the independent-set size change the rewrite
	// contributes to the mapping total.
	Overhead int

	// EntryToCompact maps a mapped boundary-pin bitmask (bit i set when
	// the cell at MappedPins[i] is selected) to a compact class.
	EntryToCompact map[int]int
	// CompactToConfigs maps a compact class to the source configurations
	// realizing it, preferred first. Each string has one byte per Source
	// cell, '1' marking a selected cell.
	CompactToConfigs map[int][]string
}

// Entry records one applied rewrite: the catalog index of the pattern
// and the 0-based window origin on the grid.
type Entry struct {
	Index int `json:"index"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// Catalog bundles the rewrite rules of one lattice flavor in the order
// the engine tries them. Crossings resolve line crossings at aligned
// windows; Simplifiers contract leftover chains anywhere on the grid.
// The triangular catalog carries its chain contractions as Legs instead
// of Simplifiers. Catalogs are immutable shared data.
type Catalog struct {
	Crossings   []Pattern
	Simplifiers []Pattern
	Legs        []Leg
}

// ByIndex returns the pattern recorded on tape entries under idx.
func (c *Catalog) ByIndex(idx int) (Pattern, bool) {
	for _, p := range c.Crossings {
		if p.Index == idx {
			return p, true
		}
	}
	for _, p := range c.Simplifiers {
		if p.Index == idx {
			return p, true
		}
	}
	return Pattern{}, false
}

// OverheadAt returns the independent-set overhead contributed by a tape
// entry with the given catalog index, covering Legs as well.
func (c *Catalog) OverheadAt(idx int) int {
	if p, ok := c.ByIndex(idx); ok {
		return p.Overhead
	}
	for _, l := range c.Legs {
		if l.Index == idx {
			return l.Overhead
		}
	}
	return 0
}
