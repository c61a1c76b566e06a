// Package praxis is your in-memory library for capturing, matching, and
// reusing abstract solution patterns — the recurring shapes behind
// divide-and-conquer, reduction, fixed-point iteration and friends.
//
// 🚀 What is praxis?
//
//	A small, dependency-light toolkit that brings together:
//		• Core primitives: entities, relations, problems, solutions, patterns
//		• Feature analysis: structural properties of a problem's shape
//		• Pattern store: ranked matching of problems against a library
//		• Domain mappings: lift concrete problems to abstract form, and
//		  render abstract solutions back into a concrete vocabulary
//		• Persistence: JSON and YAML round-trips of the whole library
//
// ✨ Why choose praxis?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable rankings, reproducible mapping inverses
//   - Pure Go core – the library itself carries no runtime services
//   - Extensible – domain mappings and the pattern catalog are plain data
//
// Everything is organized under a handful of subpackages:
//
//	core/    — Entity, Relation, Problem, Solution, Pattern types
//	feature/ — structural feature detection over core.Structure
//	store/   — PatternStore, matching, JSON/YAML persistence
//	mapping/ — DomainMapping plus the Abstract/Instantiate functors
//	catalog/ — the stock pattern library and domain mappings
//	cmd/     — the praxis command line tool
//
// Quick sketch:
//
//	problem ──feature.Detect──▶ features ──store.Match──▶ ranked patterns
//	pattern.Solution ──mapping.Instantiate──▶ concrete steps
//
// Dive into examples/cross_domain for a full walkthrough that matches two
// problems against the stock library and renders the winners in three
// different domains.
//
//	go get github.com/katalvlaran/praxis
package praxis
