// Package grid implements the mutable cell canvas the mapping pipeline
// draws on before the final unit-disk graph is extracted.
//
// What:
//
//	A rectangular field of cells, each Empty or holding a weighted site.
//	Copy-line arms are stamped with AddNode, which records a second visit
//	to the same cell as Doubled (the signature of two lines crossing).
//	Connect marks a site as a weight-preserving junction so later gadget
//	matching can distinguish T-junction geometry from plain arms.
//
// Why:
//
//	Gadget rewriting is pattern matching over small windows of this
//	canvas. Keeping the canvas dumb - no geometry, no graph semantics -
//	lets the rewrite engine treat out-of-bounds reads as Empty and write
//	replacement patterns without bookkeeping.
//
// Cell states:
//
//	Empty     - nothing here; weight 0 by construction.
//	Occupied  - a single site with weight ≥ 1.
//	Doubled   - two coincident sites of equal weight (a line crossing).
//	Connected - an Occupied site flagged as a junction; weight unchanged.
//
// Errors:
//
//	ErrCellConflict - AddNode on a cell that cannot absorb another site.
package grid
