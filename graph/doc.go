// Package graph provides the simple undirected graphs consumed by the
// grid-mapping pipeline, plus the named graphs used throughout the test
// properties.
//
// What:
//
//   - Simple: an undirected simple graph over vertices 0..n-1 with
//     deterministic, sorted edge and neighbor enumeration.
//   - Named constructors: Path, Cycle, Complete, CompleteBipartite, Star,
//     Bull, Diamond, House, Cubical, Petersen.
//
// Why:
//
//   - The mapper only needs (vertex count, edge enumeration); Simple is the
//     smallest structure that provides both deterministically.
//   - Named graphs pin down the catalog's correctness properties against
//     known independent-set sizes.
//
// Errors:
//
//   - ErrVertexRange: an edge endpoint lies outside 0..n-1.
//
// Determinism: Edges() and Neighbors() are sorted ascending, so every
// downstream computation sees one canonical enumeration order.
package graph
