// Package pathdecomp computes vertex orders from path decompositions.
//
// What:
//
//   - Layout: an ordered vertex prefix plus its vertex separation - the
//     largest set of unplaced vertices adjacent to the prefix at any
//     point. A complete layout's separation is the pathwidth.
//   - Greedy: randomized greedy search with restarts; width-neutral
//     placements are applied eagerly, everything else picks a random
//     minimum-width extension.
//   - BranchAndBound: exact minimum-width search after Coudert,
//     Mazauric and Nisse (2014), with a memo of explored prefixes.
//   - VertexOrder: the layout sequence, consumed by the copy-line
//     builder.
//
// Why:
//
//	The embedding stacks one horizontal slot per "live" copy line, so
//	grid height tracks the vertex separation of the chosen order, not
//	the vertex count. A good order shrinks every downstream artifact:
//	canvas, gadget count and final node count.
//
// Complexity:
//
//	Greedy is polynomial per restart. BranchAndBound is exponential in
//	the worst case; MethodAuto caps it at 30 vertices and falls back to
//	ten greedy restarts beyond that.
package pathdecomp
