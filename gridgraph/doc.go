// Package gridgraph models weighted unit-disk graphs on 2D integer
// lattices, the output geometry of graph-to-grid embeddings.
//
// What:
//
//   - GridGraph holds weighted nodes at (row, col) lattice coordinates
//     plus a unit-disk Radius; edges are derived, never stored.
//   - Two lattice kinds: Square (position = (row, col), radius 1.5
//     connects king-move neighbours) and Triangular (column pitch
//     sqrt(3)/2, odd columns shifted half a row, radius 1.1 connects
//     the six nearest sites).
//   - Converts to a *graph.Simple for arbitrary graph algorithms, and
//     to gonum adjacency/distance matrices for numeric inspection.
//   - Text renderers draw the lattice, a vertex configuration, or the
//     node weights.
//
// Why:
//
//   - Grid embeddings of general graphs land on exactly this geometry:
//     hardware and solvers consume nodes-plus-radius, not edge lists.
//   - Deriving edges from positions keeps the structure JSON-friendly
//     and immune to node/edge inconsistency.
//
// Complexity:
//
//   - Edges, ToSimple, AdjacencyMatrix, DistanceMatrix: O(n²) time.
//   - Position, NeighborIndices: O(1) / O(n).
//   - Renderers: O(Rows×Cols).
//
// Errors:
//
//   - ErrUnknownKind: a lattice kind outside Square/Triangular.
package gridgraph
