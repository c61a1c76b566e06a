// Package catalog ships a stock library of canonical abstract patterns
// and domain mappings, ready to seed a pattern store.
//
// What:
//
//   - DivideAndConquer, Reduction, FixedPoint: factory functions, each
//     returning a fully formed core.Pattern — abstract problem, abstract
//     solution, and concrete instantiations drawn from algorithms,
//     mathematics, management, compilers, machine learning, economics,
//     and cryptography.
//   - All: every stock pattern, in catalog order.
//   - Seed: inserts the whole stock library into a store.
//   - Mappings: the stock domain mappings (algorithms, linear_algebra,
//     software_engineering) keyed by domain name.
//
// Why:
//   - The stock patterns double as living documentation of the data model
//     and as a useful starting knowledge base: a fresh store seeded from
//     this catalog can already recognize divide-and-conquer, reduction,
//     and fixed-point shapes in incoming problems.
//
// Every factory returns a fresh value on each call, so callers may mutate
// their copy freely.
package catalog
