package pathdecomp_test

import (
	"fmt"

	"github.com/lattice-systems/gridmorph/graph"
	"github.com/lattice-systems/gridmorph/pathdecomp"
)

func ExampleDecompose() {
	layout, err := pathdecomp.Decompose(graph.Cycle(5), pathdecomp.MethodExact{})
	if err != nil {
		panic(err)
	}
	fmt.Println(layout.Vertices)
	fmt.Println(layout.VSep)
	// Output:
	// [0 1 2 3 4]
	// 2
}

func ExampleVertexOrder() {
	order, err := pathdecomp.VertexOrder(graph.Path(5), pathdecomp.MethodExact{})
	if err != nil {
		panic(err)
	}
	fmt.Println(order)
	// Output:
	// [0 1 2 3 4]
}
