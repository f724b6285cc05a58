package graph

// Named graphs with their conventional vertex numbering. Every constructor
// returns a fresh Simple; edge lists follow the standard catalogs so that
// independent-set sizes are the textbook values (noted per graph).

// Path returns the path graph P_n: 0-1-...-(n-1).
func Path(n int) *Simple {
	g := New(n)
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i)
	}

	return g
}

// Cycle returns the cycle graph C_n (n ≥ 3 for a proper cycle; smaller n
// degenerates to a path).
func Cycle(n int) *Simple {
	g := Path(n)
	if n >= 3 {
		_ = g.AddEdge(n-1, 0)
	}

	return g
}

// Complete returns the complete graph K_n.
func Complete(n int) *Simple {
	g := New(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			_ = g.AddEdge(u, v)
		}
	}

	return g
}

// CompleteBipartite returns K_{a,b}: parts {0..a-1} and {a..a+b-1}.
func CompleteBipartite(a, b int) *Simple {
	g := New(a + b)
	for u := 0; u < a; u++ {
		for v := a; v < a+b; v++ {
			_ = g.AddEdge(u, v)
		}
	}

	return g
}

// Star returns the star S_{n-1}: center 0 joined to 1..n-1.
func Star(n int) *Simple {
	g := New(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(0, v)
	}

	return g
}

// Bull returns the bull graph (triangle with two horns); MIS size 2.
func Bull() *Simple {
	g, _ := FromEdges(5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 4}})

	return g
}

// Diamond returns the diamond graph K_4 minus one edge; MIS size 2.
func Diamond() *Simple {
	g, _ := FromEdges(4, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}})

	return g
}

// House returns the house graph (square with a roof); MIS size 2.
func House() *Simple {
	g, _ := FromEdges(5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}})

	return g
}

// Cubical returns the 3-cube graph Q_3; MIS size 4.
func Cubical() *Simple {
	g, _ := FromEdges(8, [][2]int{
		{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 7}, {2, 3},
		{2, 6}, {3, 5}, {4, 5}, {4, 7}, {5, 6}, {6, 7},
	})

	return g
}

// Petersen returns the Petersen graph; MIS size 4.
func Petersen() *Simple {
	g, _ := FromEdges(10, [][2]int{
		{0, 1}, {0, 4}, {0, 5}, {1, 2}, {1, 6}, {2, 3}, {2, 7}, {3, 4},
		{3, 8}, {4, 9}, {5, 7}, {5, 8}, {6, 8}, {6, 9}, {7, 9},
	})

	return g
}
