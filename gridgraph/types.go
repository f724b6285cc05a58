package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrUnknownKind indicates a lattice kind outside Square/Triangular.
	ErrUnknownKind = errors.New("gridgraph: unknown lattice kind")
)

// Default unit-disk radii per lattice kind. Square embeddings connect
// king-move neighbours (distance at most sqrt(2) < 1.5); triangular
// embeddings connect the six nearest lattice sites (distance 1 < 1.1,
// while the next shell sits at sqrt(3) ≈ 1.73).
const (
	// SquareRadius is the unit-disk radius for Square lattices.
	SquareRadius = 1.5
	// TriangularRadius is the unit-disk radius for Triangular lattices.
	TriangularRadius = 1.1
)

// Kind selects the lattice geometry used to embed nodes in the plane.
type Kind int

const (
	// Square places a node at physical position (row, col).
	Square Kind = iota
	// Triangular compresses columns to a pitch of sqrt(3)/2 and shifts
	// odd columns down by half a row, producing a triangular lattice.
	Triangular
)

// String returns the lowercase name of the lattice kind.
func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Triangular:
		return "triangular"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler so that Kind serializes
// as a readable string in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Square, Triangular:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the
// strings produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "square":
		*k = Square
	case "triangular":
		*k = Triangular
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(text))
	}

	return nil
}

// Node is a weighted site on the integer lattice. Row and Col are grid
// coordinates; the physical position depends on the lattice Kind.
type Node struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Weight float64 `json:"weight"`
}

// GridGraph is a weighted unit-disk graph on a 2D integer lattice.
// Two nodes are adjacent exactly when the Euclidean distance between
// their physical positions is strictly below Radius. Vertex indices
// follow the order of Nodes. The zero value is an empty graph.
//
// All fields are exported so a GridGraph round-trips through JSON; the
// edge set is derived, never stored.
type GridGraph struct {
	Kind   Kind    `json:"kind"`
	Rows   int     `json:"rows"`
	Cols   int     `json:"cols"`
	Radius float64 `json:"radius"`
	Nodes  []Node  `json:"nodes"`
}

// New constructs a GridGraph over the given nodes. The node slice is
// copied, so later mutation of the argument does not affect the graph.
// Complexity: O(n) time and memory.
func New(kind Kind, rows, cols int, nodes []Node, radius float64) *GridGraph {
	owned := make([]Node, len(nodes))
	copy(owned, nodes)

	return &GridGraph{
		Kind:   kind,
		Rows:   rows,
		Cols:   cols,
		Radius: radius,
		Nodes:  owned,
	}
}
