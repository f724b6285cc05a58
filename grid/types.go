package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrCellConflict indicates AddNode hit a cell that cannot absorb
	// another site: a weight mismatch, or a cell already Doubled or
	// Connected.
	ErrCellConflict = errors.New("grid: conflicting cell occupancy")
)

// State enumerates what a single cell holds.
type State uint8

const (
	// Empty marks an unoccupied cell.
	Empty State = iota
	// Occupied marks a single weighted site.
	Occupied
	// Doubled marks two coincident sites of equal weight.
	Doubled
	// Connected marks an Occupied site flagged as a junction.
	Connected
)

// Cell is one canvas cell. Weight is 0 exactly when State is Empty.
type Cell struct {
	State  State
	Weight int
}

// IsEmpty reports whether the cell holds no site.
func (c Cell) IsEmpty() bool { return c.State == Empty }

// String renders the cell for debug pictures: "⋅" empty, "●" a plain
// site ("▴" when its weight reaches 3), "◉" doubled, and "◆"/"◇" for
// connected sites of weight ≥2 / 1.
func (c Cell) String() string {
	switch c.State {
	case Empty:
		return "⋅"
	case Occupied:
		if c.Weight >= 3 {
			return "▴"
		}
		return "●"
	case Doubled:
		return "◉"
	default:
		if c.Weight == 1 {
			return "◇"
		}
		return "◆"
	}
}
