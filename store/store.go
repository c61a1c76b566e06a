// SPDX-License-Identifier: MIT
// Package: praxis/store
//
// store.go — the PatternStore container: construction, insertion, lookup,
// removal, snapshots, and tag/domain search. Matching lives in match.go,
// persistence in persist.go.

package store

import "github.com/katalvlaran/praxis/core"

// PatternStore holds abstract patterns keyed by ID and retrieves them by
// structural matching. The zero value is not usable; construct with New.
//
// Iteration over stored patterns follows insertion order. Re-inserting an
// existing ID replaces the record in place without changing its position,
// so snapshots and match tie-breaks stay reproducible across overwrites.
type PatternStore struct {
	patterns map[string]core.Pattern
	order    []string // pattern IDs in first-insertion order
}

// New creates an empty PatternStore.
//
// Complexity: O(1).
func New() *PatternStore {
	return &PatternStore{patterns: make(map[string]core.Pattern)}
}

// Add inserts pattern p, replacing any existing pattern with the same ID
// (last write wins). Add is total: it has no failure modes.
//
// Complexity: O(1) amortized.
func (ps *PatternStore) Add(p core.Pattern) {
	if _, exists := ps.patterns[p.ID]; !exists {
		ps.order = append(ps.order, p.ID)
	}
	ps.patterns[p.ID] = p
}

// Get returns the pattern stored under id. Absence is reported through the
// second return value, never as an error.
//
// Complexity: O(1).
func (ps *PatternStore) Get(id string) (core.Pattern, bool) {
	p, ok := ps.patterns[id]

	return p, ok
}

// Remove deletes the pattern stored under id and reports whether anything
// was removed.
//
// Complexity: O(n) for the order-slice compaction.
func (ps *PatternStore) Remove(id string) bool {
	if _, ok := ps.patterns[id]; !ok {
		return false
	}
	delete(ps.patterns, id)
	for i, oid := range ps.order {
		if oid == id {
			ps.order = append(ps.order[:i], ps.order[i+1:]...)
			break
		}
	}

	return true
}

// Len returns the number of stored patterns.
func (ps *PatternStore) Len() int { return len(ps.patterns) }

// Patterns returns a snapshot of all stored patterns in insertion order.
// The slice is fresh on every call; mutating it does not affect the store.
//
// Complexity: O(n).
func (ps *PatternStore) Patterns() []core.Pattern {
	out := make([]core.Pattern, 0, len(ps.order))
	for _, id := range ps.order {
		out = append(out, ps.patterns[id])
	}

	return out
}

// SearchByTag returns all patterns whose tag set is a superset of the
// given tags, in insertion order. An empty query matches every pattern.
//
// Complexity: O(n · |tags|).
func (ps *PatternStore) SearchByTag(tags ...string) []core.Pattern {
	var out []core.Pattern
	for _, id := range ps.order {
		if p := ps.patterns[id]; p.HasTags(tags...) {
			out = append(out, p)
		}
	}

	return out
}

// SearchByDomain returns all patterns having at least one instantiation in
// the given domain, in insertion order.
//
// Complexity: O(n · instantiations).
func (ps *PatternStore) SearchByDomain(domain string) []core.Pattern {
	var out []core.Pattern
	for _, id := range ps.order {
		if p := ps.patterns[id]; p.CoversDomain(domain) {
			out = append(out, p)
		}
	}

	return out
}
