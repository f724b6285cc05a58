// Package gadget holds the rewrite-rule catalogs that turn a stamped
// copy-line canvas into a crossing-free lattice.
//
// What:
//
//   - Pattern: one local rewrite. A source window (the cell picture a
//     crossing or junction leaves on the canvas), a mapped window (its
//     crossing-free replacement) and the independent-set overhead the
//     swap adds. Patterns match strictly, leniently (junction marks
//     count as plain sites) or weight-aware, and apply in both
//     directions.
//   - Boundary tables: for square patterns, EntryToCompact and
//     CompactToConfigs translate a mapped-side pin selection back into
//     a source-side configuration, so a solution on the rewritten
//     lattice lifts to the original picture cell by cell.
//   - Rotated, Reflected: derive the symmetry variants that the
//     rulesets list explicitly.
//   - Square, SquareWeighted, Triangular: the three shipped catalogs.
//     Square rulesets pair 13 crossing rules with 6 dangling-leg
//     simplifiers; the triangular ruleset carries its own 13 rules and
//     4 directional Leg contractions.
//
// Why:
//
//   - Every rule is pure data: geometry, pins, weights, tables. The
//     mapping engine stays a dumb scan loop, and each catalog entry can
//     be verified in isolation against a brute-force independent-set
//     solve of its two windows.
//
// Indexing convention: node lists are 1-indexed within their window,
// pin and edge lists are 0-indexed into the node lists. Tape indices
// below 100 are crossing rules, 100 and above are simplifiers.
package gadget
