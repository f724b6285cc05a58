package pathdecomp

import "errors"

// Sentinel errors for decomposition configuration.
var (
	// ErrRestarts indicates a greedy run was requested with a
	// non-positive restart count.
	ErrRestarts = errors.New("pathdecomp: greedy needs a positive restart count")
	// ErrMethod indicates an unrecognized decomposition method.
	ErrMethod = errors.New("pathdecomp: unknown method")
)

// Layout is a (partial) path decomposition: an ordered vertex prefix
// and the largest frontier the prefix ever exposed. The frontier after
// placing a prefix is the set of unplaced vertices adjacent to it; the
// maximum frontier size over all prefixes of a complete layout is the
// vertex separation number, equal to the pathwidth.
type Layout struct {
	// Vertices is the ordered prefix placed so far.
	Vertices []int
	// VSep is the maximum frontier size seen while placing Vertices.
	VSep int

	neighbors    []int
	disconnected []int
}

// Method selects how a vertex order is computed.
type Method interface{ method() }

// MethodGreedy repeats the randomized greedy decomposition NRepeat
// times from the given seed and keeps the narrowest layout.
type MethodGreedy struct {
	NRepeat int
	Seed    uint64
}

// MethodExact runs the branch-and-bound search for a minimum-width
// layout.
type MethodExact struct{}

// MethodAuto picks MethodExact up to 30 vertices and ten greedy
// restarts beyond that.
type MethodAuto struct{}

func (MethodGreedy) method() {}
func (MethodExact) method()  {}
func (MethodAuto) method()   {}

const (
	autoExactLimit     = 30
	autoGreedyRestarts = 10
)
