// SPDX-License-Identifier: MIT
// Package: praxis/core
//
// methods.go — read-only query methods on Structure. All methods are pure,
// deterministic, and total over any well-formed Structure: dangling
// relation endpoints simply contribute nothing.

package core

import "sort"

// Entity returns the first entity with the given ID and true, or the zero
// Entity and false when no such entity exists. Absence is not an error.
//
// Complexity: O(V).
func (s *Structure) Entity(id string) (Entity, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}

	return Entity{}, false
}

// Neighbors returns the IDs of entities connected to id by any relation,
// in relation insertion order, treating relations as undirected for the
// purpose of adjacency (both endpoints see each other). Pass relType == ""
// to accept every relation type, or a label to filter.
//
// IDs referenced by relations but absent from Entities still appear in the
// result: no referential integrity is assumed anywhere in this package.
//
// Complexity: O(E).
func (s *Structure) Neighbors(id, relType string) []string {
	var out []string
	for _, r := range s.Relations {
		if relType != "" && r.Type != relType {
			continue
		}
		if r.Source == id {
			out = append(out, r.Target)
		}
		if r.Target == id {
			out = append(out, r.Source)
		}
	}

	return out
}

// EntityTypes returns the distinct entity type labels, sorted for
// deterministic output.
//
// Complexity: O(V log V).
func (s *Structure) EntityTypes() []string {
	seen := make(map[string]struct{}, len(s.Entities))
	for _, e := range s.Entities {
		seen[e.Type] = struct{}{}
	}

	return sortedKeys(seen)
}

// RelationTypes returns the distinct relation type labels, sorted for
// deterministic output.
//
// Complexity: O(E log E).
func (s *Structure) RelationTypes() []string {
	seen := make(map[string]struct{}, len(s.Relations))
	for _, r := range s.Relations {
		seen[r.Type] = struct{}{}
	}

	return sortedKeys(seen)
}

// CountRelations returns the number of relations carrying the given type
// label. The feature detector leans on this for its edge-count rules.
//
// Complexity: O(E).
func (s *Structure) CountRelations(relType string) int {
	n := 0
	for _, r := range s.Relations {
		if r.Type == relType {
			n++
		}
	}

	return n
}

// sortedKeys extracts and sorts the keys of a string set.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
