// SPDX-License-Identifier: MIT
// Package: praxis/feature
//
// feature.go — the feature vocabulary and the Detect/Has entry points.
// Cycle detection lives in cycle.go.

package feature

import "github.com/katalvlaran/praxis/core"

// Name is one abstract structural feature from the fixed vocabulary.
type Name string

// The feature vocabulary. Detect reports features in exactly this order.
const (
	// RecursiveDecomposability: entities of the same type recur, so the
	// structure plausibly contains smaller instances of itself.
	RecursiveDecomposability Name = "recursive_decomposability"

	// LinearChain: "ordered_before" relations count to #entities − 1.
	LinearChain Name = "linear_chain"

	// Tree: "contains" relations count to #entities − 1.
	Tree Name = "tree"

	// Cycle: a directed cycle exists over all relations.
	Cycle Name = "cycle"

	// Bipartite: exactly two distinct entity-type labels.
	Bipartite Name = "bipartite"
)

// Vocabulary returns the fixed feature vocabulary in canonical order.
// The returned slice is fresh on every call; callers may mutate it.
func Vocabulary() []Name {
	return []Name{RecursiveDecomposability, LinearChain, Tree, Cycle, Bipartite}
}

// Detect computes the subset of the feature vocabulary satisfied by s,
// in canonical vocabulary order. Pure and deterministic.
//
// Complexity: Time O(V+E), Memory O(V).
func Detect(s *core.Structure) []Name {
	var out []Name
	for _, name := range Vocabulary() {
		if Has(s, name) {
			out = append(out, name)
		}
	}

	return out
}

// Has reports whether s satisfies the single named feature. Names outside
// the vocabulary are simply false, never an error.
func Has(s *core.Structure, name Name) bool {
	switch name {
	case RecursiveDecomposability:
		return hasDuplicateEntityType(s)
	case LinearChain:
		return s.CountRelations(core.RelTypeOrderedBefore) == len(s.Entities)-1
	case Tree:
		return s.CountRelations(core.RelTypeContains) == len(s.Entities)-1
	case Cycle:
		return hasCycle(s)
	case Bipartite:
		return len(s.EntityTypes()) == 2
	}

	return false
}

// Strings converts a feature list to plain labels, ready to union with a
// problem's free-form tags.
func Strings(names []Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}

	return out
}

// hasDuplicateEntityType reports whether any entity-type label is shared
// by two or more entities (a duplicate in the type multiset).
func hasDuplicateEntityType(s *core.Structure) bool {
	seen := make(map[string]struct{}, len(s.Entities))
	for _, e := range s.Entities {
		if _, dup := seen[e.Type]; dup {
			return true
		}
		seen[e.Type] = struct{}{}
	}

	return false
}
