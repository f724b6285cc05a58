// Package copyline builds the per-vertex "copy lines" that embed a graph
// into a grid lattice.
//
// What:
//
//   - Line: one L-shaped grid path per input vertex, described by five slot
//     numbers (vertical slot, horizontal slot, start/stop extents).
//   - Create: assigns slots from a vertex order so that two lines cross
//     exactly when their vertices are adjacent — once, and never otherwise.
//   - Validate: checks an externally supplied assignment for the same
//     1:1 crossing/edge correspondence.
//   - Locations: the dense cell list of a line at a given spacing/padding,
//     with the weight profile used by the weighted lattices.
//   - Self-overheads: closed-form contributions of one line to the total
//     independent-set overhead (plain, weighted, triangular).
//
// Why:
//
//   - Every input edge must become exactly one grid crossing; the slot-reuse
//     strategy keeps the grid height proportional to the order's vertex
//     separation instead of the vertex count.
//
// Errors:
//
//   - ErrNotPermutation: the supplied order is not a permutation of 0..n-1.
//   - ErrSlotClash: duplicate or overlapping slot assignment.
//   - ErrMissingCrossing: an edge whose two lines never cross.
//   - ErrExtraCrossing: a crossing between non-adjacent vertices.
//
// All errors are configuration mistakes by the caller: deterministic,
// non-retryable, and raised before any grid is touched.
package copyline
