// Package mapping provides bidirectional label translation between a
// concrete domain's vocabulary and the abstract vocabulary of the core
// types: the abstraction functor (concrete → abstract) and the
// instantiation functor (abstract → concrete).
//
// What:
//
//   - DomainMapping: a domain name plus two label dictionaries
//     (concrete type → abstract type, concrete operation → abstract
//     operation) and an open axiom bag. Both dictionaries support reverse
//     lookup; when two concrete labels map to the same abstract label the
//     reverse direction resolves last-write-wins over a sorted iteration
//     of the forward keys, so the winner is reproducible rather than an
//     accident of map order. Ambiguity is documented behavior, not an
//     error.
//   - Abstract: substitutes abstract labels into a concrete problem
//     description, passing unmapped labels through unchanged (identity
//     fallback — an unmapped label is not an error).
//   - Instantiate: renders an abstract solution's steps into concrete
//     operation labels via the reverse dictionary, again with identity
//     fallback; every produced step keeps both the concrete and the
//     original abstract operation label.
//
// Why:
//   - Patterns live in the abstract vocabulary so they transfer across
//     domains; mappings are the thin adapters at the boundary that let a
//     sorting problem enter and a management plan leave.
//
// Errors: Instantiate is total. Abstract fails only on goal or constraint
// kind tags outside their closed sets (wrapping the core enum sentinels).
package mapping
