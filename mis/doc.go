// Package mis provides exact maximum-independent-set solvers used to
// certify grid embeddings and gadget rewrite rules.
//
// What:
//
//	Solve / SolveSet compute a maximum independent set of a simple
//	graph; SolveWeighted / SolveWeightedSet maximise total vertex
//	weight instead of cardinality. SolveWithPins additionally forces
//	chosen vertices in or out, which is how gadget boundary tables are
//	checked against brute force.
//
// Why:
//
//	The mapping pipeline promises that the optimum of the produced grid
//	graph equals the optimum of the input graph plus a computable
//	offset. That promise is only testable with an exact solver, so this
//	package trades generality for certainty: branch-and-bound over
//	bitset adjacency, splitting on connected components and memoising
//	solved components. Copy-line arms are long induced paths, and the
//	component split turns those into quadratically many memoised
//	intervals instead of an exponential branch tree.
//
// Complexity:
//
//	Worst case exponential, as it must be. On the path-heavy unit-disk
//	graphs this repository produces, component memoisation keeps solves
//	of a few hundred vertices well under a second.
//
// Errors:
//
//	ErrWeightCount - weight slice length differs from the vertex count.
package mis
