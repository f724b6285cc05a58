package gadget

// SquareWeighted returns the catalog for the weight-preserving square
// mapping. Geometry, pins and boundary tables match the unweighted
// catalog; node weights carry the QUBO-style coefficients and every
// overhead doubles.
func SquareWeighted() *Catalog { return &squareWeightedCatalog }

var squareWeightedCatalog = buildSquareWeighted()

func buildSquareWeighted() Catalog {
	cross := []Pattern{
		weighted(crossUnconnected(), twos(9), twos(10)),
		weighted(turn(), twos(5), twos(3)),
		weighted(wTurn(), twos(5), twos(3)),
		weighted(branch(), []int{2, 2, 2, 3, 2, 2, 2, 2}, []int{2, 3, 2, 2, 2, 2}),
		weighted(branchFix(), twos(6), twos(4)),
		weighted(tCon(), []int{2, 1, 2, 2}, []int{2, 1, 2, 2}),
		weighted(trivialTurn(), []int{1, 1}, []int{1, 1}),
		Rotated(weighted(tCon(), []int{2, 1, 2, 2}, []int{2, 1, 2, 2}), 1),
		Reflected(weighted(crossConnected(), twos(6), twos(5)), AxisY),
		Reflected(weighted(trivialTurn(), []int{1, 1}, []int{1, 1}), AxisY),
		weighted(branchFixB(), []int{1, 2, 2, 2}, []int{1, 2}),
		weighted(endTurn(), []int{2, 2, 1}, []int{1}),
		Reflected(Rotated(weighted(tCon(), []int{2, 1, 2, 2}, []int{2, 1, 2, 2}), 1), AxisY),
	}
	for i := range cross {
		cross[i].Index = i
	}
	simp := danglingLegs(weighted(danglingLeg(), []int{1, 2, 2}, []int{1}))
	return Catalog{Crossings: cross, Simplifiers: simp}
}

// weighted copies a base template, attaching source and mapped weight
// vectors and doubling the MIS overhead.
func weighted(p Pattern, sw, mw []int) Pattern {
	src := make([]Node, len(p.Source))
	for i, n := range p.Source {
		n.Weight = sw[i]
		src[i] = n
	}
	mapped := make([]Node, len(p.Mapped))
	for i, n := range p.Mapped {
		n.Weight = mw[i]
		mapped[i] = n
	}
	p.Source = src
	p.Mapped = mapped
	p.Overhead *= 2
	return p
}

// twos builds an all-2 weight vector of length n.
func twos(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 2
	}
	return out
}
