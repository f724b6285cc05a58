package copyline

import "errors"

// Sentinel errors for copy-line construction and validation.
var (
	// ErrNotPermutation indicates the vertex order is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("copyline: order is not a permutation of the vertices")
	// ErrSlotClash indicates duplicate vertical slots, overlapping horizontal
	// runs on a shared slot, or malformed extents.
	ErrSlotClash = errors.New("copyline: conflicting slot assignment")
	// ErrMissingCrossing indicates an input edge whose two lines never cross.
	ErrMissingCrossing = errors.New("copyline: edge without a crossing")
	// ErrExtraCrossing indicates a crossing between two non-adjacent vertices.
	ErrExtraCrossing = errors.New("copyline: crossing without a matching edge")
)

// Line is the L-shaped grid path representing one input vertex.
//
// Slots are 1-based logical coordinates, mapped to grid cells by
// spacing/padding at materialization time. The vertical segment occupies
// rows VStart..VStop in vertical slot VSlot; the horizontal segment runs in
// horizontal slot HSlot from VSlot out to HStop. The vertex's "center" cell
// sits at the bend.
type Line struct {
	Vertex int `json:"vertex"`
	VSlot  int `json:"vslot"`
	HSlot  int `json:"hslot"`
	VStart int `json:"vstart"`
	VStop  int `json:"vstop"`
	HStop  int `json:"hstop"`
}

// Loc is one materialized cell of a line: grid coordinates plus the weight
// the weighted lattices assign to it.
type Loc struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Weight int `json:"weight"`
}
