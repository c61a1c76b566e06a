// Package feature computes the fixed vocabulary of abstract structural
// features over a core.Structure: recursive decomposability, linear chain,
// tree, cycle, and bipartite shape.
//
// What:
//
//   - Detect: returns the satisfied subset of the feature vocabulary in
//     canonical order. Pure, deterministic, no shared state, total over
//     any well-formed Structure (dangling relation endpoints contribute
//     no adjacency).
//   - Has: single-feature check; unknown names are simply false.
//
// Why:
//   - Pattern matching ranks stored solution patterns by how many of
//     their precondition labels a problem satisfies. Structural features
//     are the detected half of that label set (the other half is the
//     problem's free-form tags).
//
// Decision rules (deliberately syntactic, kept bug-compatible):
//
//   - recursive_decomposability: some entity-type label occurs on two or
//     more entities.
//   - linear_chain: #relations typed "ordered_before" == #entities − 1.
//   - tree: #relations typed "contains" == #entities − 1.
//   - cycle: a directed cycle exists over ALL relations regardless of
//     type, found by depth-first search with an on-stack marker; an
//     empty relation list has no cycle.
//   - bipartite: exactly 2 distinct entity-type labels.
//
// The tree and linear_chain rules are edge-count coincidences, not real
// connectivity or acyclicity proofs, and bipartite is a type-count
// approximation. These imprecisions are part of the contract: detectors
// across implementations must agree label-for-label, so the rules are
// reproduced exactly rather than corrected.
//
// Complexity:
//
//   - Detect / Has(cycle): Time O(V+E), Memory O(V)
//   - all other single checks: Time O(V+E), Memory O(V)
//
// Errors: none. Every function in this package is total.
package feature
