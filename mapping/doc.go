// Package mapping embeds arbitrary graphs into weighted unit-disk grid
// graphs that preserve the maximum independent set up to a reported
// additive overhead.
//
// What:
//
//   - Map runs the full pipeline: order the vertices by path
//     decomposition, materialize one L-shaped copy line per vertex on
//     the lattice, rewrite every line crossing with a gadget from the
//     mode's catalog, and contract the leftover chains.
//   - Three modes: Unweighted and Weighted target the square lattice
//     (radius 1.5), TriangularWeighted targets the triangular lattice
//     (radius 1.1). The optimum of the produced grid equals the
//     optimum of the input plus Result.Overhead in every mode.
//   - Result carries the grid graph, the copy lines, the rewrite tape
//     and the doubled-cell snapshot, everything needed to come back:
//     ConfigBack pulls a grid configuration to an input configuration,
//     Centers locates each vertex's membership bit on the grid, and
//     MapWeights lifts per-vertex problem weights onto the nodes.
//   - WithMode, WithMethod, WithOrder and WithLines tune the pipeline;
//     defaults reproduce the plain unweighted square embedding.
//
// Why:
//
//   - Unit-disk hardware and solvers only accept geometric instances;
//     embedding a general graph with a certified overhead turns any
//     independent-set problem into such an instance and back.
//   - The rewrite tape makes the transformation reversible, so optimal
//     grid solutions certify optimal input solutions.
//
// Complexity:
//
//   - Map: O(n²) crossing probes over a O(n·pathwidth) × O(n) canvas,
//     after the chosen path-decomposition step (exact is exponential,
//     greedy polynomial).
//   - ConfigBack, Centers, MapWeights: linear in tape plus canvas.
//
// Errors:
//
//   - ErrConfiguration: empty input, bad order or lines, weight range.
//   - ErrGadgetMismatch: a crossing no catalog pattern resolves, or a
//     tape entry referencing an unknown pattern.
//   - ErrDimension: configuration or weight vectors of the wrong length.
package mapping
