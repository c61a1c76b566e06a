// Package store implements the PatternStore: an in-memory, insertion-ordered
// collection of core.Pattern records with lookup, tag/domain search,
// structural matching, and JSON/YAML persistence.
//
// What:
//
//   - PatternStore: keyed by pattern ID, one live copy per ID, last write
//     wins. An explicit, constructible value — never process-global state —
//     so multiple independent stores can coexist in one process.
//   - Match: the scoring algorithm. A problem's feature set is its detected
//     structural features united with its free-form tags; each stored
//     pattern is scored by the fraction of its solution's precondition
//     labels found in that set, and results come back sorted by score.
//   - Save/Load: serialize the full pattern set as a record list. Load is
//     all-or-nothing: records are parsed and validated into a buffer and
//     committed only when the entire document decodes cleanly, so a failed
//     load never corrupts the receiving store.
//
// Why:
//   - The store is the knowledge base of the library: it answers "which of
//     the solution shapes I already know could apply to this new problem,
//     and how completely?".
//
// Matching contract:
//
//   - empty precondition list ⇒ unconditional weak match at WeakMatchScore
//     (0.1), bypassing the threshold entirely — a pattern that states no
//     requirements is a universal fallback;
//   - otherwise score = |required ∩ features| / |required| ∈ [0,1],
//     included iff score ≥ threshold (so threshold 0 admits score-0 hits);
//   - results sort by score descending, stable over insertion order, and
//     carry sorted matched/unmatched label lists.
//
// Errors:
//
//   - ErrDecode     any Load failure; concrete cause is a *DecodeError
//     naming the offending record and field
//   - absence (Get/Remove on a missing ID) is a bool, never an error
//
// Concurrency: the store performs no synchronization of its own. It is
// designed for a single owning goroutine; callers that share a store must
// serialize Add/Remove/Load against concurrent reads themselves.
package store
