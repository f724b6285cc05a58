// Package gridmorph turns arbitrary graphs into unit-disk grid graphs
// while preserving the maximum independent set — up to a constant,
// precomputed additive overhead that the mapping reports back to you.
//
// 🚀 What is gridmorph?
//
//	A deterministic graph-to-grid transformation engine:
//		• Copy lines: one L-shaped grid path per input vertex
//		• Crossing gadgets: a fixed catalog of local rewrite templates
//		• Three lattices: king grid, weighted king grid, triangular
//		• Closed-form overhead: MIS(grid) = MIS(input) + overhead, always
//		• Back-mapping: any optimal grid solution → optimal input solution
//
// ✨ Why choose gridmorph?
//
//   - Provable – the overhead identity is checked against an exact solver
//   - Deterministic – same graph, same order, same grid, bit for bit
//   - Self-contained – pure in-memory computation, no I/O in the core
//   - Inspectable – render any mapping as an ANSI/ASCII lattice
//
// The pipeline, in reading order:
//
//	graph/       — simple undirected input graphs + named test graphs
//	graphexpr/   — "0-1-2-0, 1-3" edge-run expressions
//	pathdecomp/  — vertex ordering via path decompositions
//	copyline/    — per-vertex copy lines and their self-overheads
//	grid/        — the mutable cell lattice the rewriter works on
//	gadget/      — the static crossing/simplifier pattern catalogs
//	mapping/     — embed → rewrite to fixpoint → extract → map back
//	gridgraph/   — the resulting unit-disk graph, adjacency + rendering
//	mis/         — exact independent-set solver (verification only)
//
// Quick ASCII example — a triangle mapped onto the king grid:
//
//	⋅ ⋅ ⋅ ● ⋅ ⋅
//	⋅ ● ● ⋅ ● ⋅
//	⋅ ⋅ ● ● ⋅ ⋅
//
//	three copy lines, one resolved crossing, constant bookkeeping overhead.
//
// See examples/ for end-to-end scenarios and cmd/gridmorph for the CLI
// (map, render, expr, catalog).
//
//	go get github.com/lattice-systems/gridmorph
package gridmorph
