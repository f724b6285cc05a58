package copyline_test

import (
	"fmt"

	"github.com/lattice-systems/gridmorph/copyline"
)

// ExampleCreate lays out a three-vertex path and prints the slot
// assignment of each copy line.
func ExampleCreate() {
	edges := [][2]int{{0, 1}, {1, 2}}
	lines, _ := copyline.Create(3, edges, []int{0, 1, 2})
	for _, ln := range lines {
		fmt.Printf("vertex=%d vslot=%d hslot=%d vstart=%d vstop=%d hstop=%d\n",
			ln.Vertex, ln.VSlot, ln.HSlot, ln.VStart, ln.VStop, ln.HStop)
	}
	// Output:
	// vertex=0 vslot=1 hslot=1 vstart=1 vstop=1 hstop=2
	// vertex=1 vslot=2 hslot=2 vstart=1 vstop=2 hstop=3
	// vertex=2 vslot=3 hslot=1 vstart=1 vstop=2 hstop=3
}

// ExampleLine_Locations shows the single weight-1 cell an isolated
// vertex occupies once no arm needs to grow toward a neighbour.
func ExampleLine_Locations() {
	lines, _ := copyline.Create(1, nil, []int{0})
	for _, loc := range lines[0].Locations(4, 2) {
		fmt.Printf("(%d,%d) weight=%d\n", loc.Row, loc.Col, loc.Weight)
	}
	// Output:
	// (3,3) weight=1
}
