package mapping

import (
	"errors"
	"fmt"

	"github.com/lattice-systems/gridmorph/copyline"
	"github.com/lattice-systems/gridmorph/gadget"
	"github.com/lattice-systems/gridmorph/gridgraph"
	"github.com/lattice-systems/gridmorph/pathdecomp"
)

// Sentinel errors for the mapping pipeline.
var (
	// ErrConfiguration indicates invalid input: an empty graph, a bad
	// vertex order, inconsistent copy lines, or cells colliding during
	// embedding.
	ErrConfiguration = errors.New("mapping: invalid configuration")
	// ErrGadgetMismatch indicates the rewrite engine could not resolve a
	// crossing, or a tape entry references an unknown catalog index.
	ErrGadgetMismatch = errors.New("mapping: gadget mismatch")
	// ErrDimension indicates a configuration or weight vector whose
	// length does not match the expected count.
	ErrDimension = errors.New("mapping: dimension mismatch")
)

// Lattice layout constants. Copy lines materialize on a lattice whose
// slot pitch is the spacing and whose border margin is the padding.
const (
	// SquareSpacing is the slot pitch of the square lattices.
	SquareSpacing = 4
	// TriangularSpacing is the slot pitch of the triangular lattice.
	TriangularSpacing = 6
	// Padding is the empty border margin around the embedded lines.
	Padding = 2
)

// Mode selects the target lattice and weight discipline of a mapping.
type Mode int

const (
	// Unweighted targets the square lattice with unit node weights.
	Unweighted Mode = iota
	// Weighted targets the square lattice with weighted rewrite rules;
	// node weights carry the problem weights after MapWeights.
	Weighted
	// TriangularWeighted targets the triangular lattice, always
	// weighted.
	TriangularWeighted
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case Unweighted:
		return "unweighted"
	case Weighted:
		return "weighted"
	case TriangularWeighted:
		return "triangular"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unweighted":
		*m = Unweighted
	case "weighted":
		*m = Weighted
	case "triangular":
		*m = TriangularWeighted
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrConfiguration, text)
	}
	return nil
}

// Spacing returns the slot pitch of the mode's lattice.
func (m Mode) Spacing() int {
	if m == TriangularWeighted {
		return TriangularSpacing
	}
	return SquareSpacing
}

func (m Mode) kind() gridgraph.Kind {
	if m == TriangularWeighted {
		return gridgraph.Triangular
	}
	return gridgraph.Square
}

func (m Mode) radius() float64 {
	if m == TriangularWeighted {
		return gridgraph.TriangularRadius
	}
	return gridgraph.SquareRadius
}

func (m Mode) catalog() *gadget.Catalog {
	switch m {
	case Weighted:
		return gadget.SquareWeighted()
	case TriangularWeighted:
		return gadget.Triangular()
	default:
		return gadget.Square()
	}
}

// Result is the output of Map: the produced unit-disk grid graph plus
// everything needed to pull solutions back to the input graph.
type Result struct {
	// Grid is the produced weighted unit-disk grid graph.
	Grid *gridgraph.GridGraph `json:"grid"`
	// Lines are the copy lines, indexed by input vertex.
	Lines []copyline.Line `json:"lines"`
	// Mode is the lattice and weight discipline the mapping used.
	Mode Mode `json:"mode"`
	// Spacing and Padding record the lattice layout parameters.
	Spacing int `json:"spacing"`
	Padding int `json:"padding"`
	// Overhead is the additive independent-set overhead: the optimum of
	// Grid equals the optimum of the input plus Overhead.
	Overhead int `json:"overhead"`
	// Tape records every gadget application in order; ConfigBack
	// replays it backwards.
	Tape []gadget.Entry `json:"tape"`
	// Doubled lists cells where two line segments overlapped during
	// embedding, in row-major order.
	Doubled [][2]int `json:"doubled,omitempty"`
}

type options struct {
	mode   Mode
	method pathdecomp.Method
	order  []int
	lines  []copyline.Line
}

// Option customizes Map.
type Option func(*options)

// WithMode selects the target lattice and weight discipline.
// The default is Unweighted.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithMethod selects the path-decomposition method used to order the
// copy lines. The default is pathdecomp.MethodAuto.
func WithMethod(m pathdecomp.Method) Option {
	return func(o *options) { o.method = m }
}

// WithOrder bypasses path decomposition and lays the copy lines out in
// the given vertex order. The order must be a permutation of 0..n-1.
func WithOrder(order []int) Option {
	return func(o *options) { o.order = append([]int(nil), order...) }
}

// WithLines bypasses line construction entirely and embeds the given
// copy lines. The lines are validated against the input graph first.
// WithLines takes precedence over WithOrder.
func WithLines(lines []copyline.Line) Option {
	return func(o *options) { o.lines = append([]copyline.Line(nil), lines...) }
}
