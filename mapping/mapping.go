// SPDX-License-Identifier: MIT
// Package: praxis/mapping
//
// mapping.go — the DomainMapping record and its reverse dictionaries.

package mapping

import "sort"

// DomainMapping is a bidirectional mapping between one concrete domain
// and the abstract vocabulary. It acts as both the abstraction functor
// (forward dictionaries) and the instantiation functor (reverse lookup).
type DomainMapping struct {
	// Domain names the concrete domain ("algorithms", "economics", ...).
	Domain string `json:"domain" yaml:"domain"`

	// Types maps concrete type labels to abstract type labels.
	Types map[string]string `json:"types" yaml:"types"`

	// Ops maps concrete operation labels to abstract operation labels.
	Ops map[string]string `json:"ops" yaml:"ops"`

	// Axioms is an open bag of domain-specific axioms and notes.
	Axioms map[string]any `json:"axioms,omitempty" yaml:"axioms,omitempty"`
}

// InverseTypes returns the abstract → concrete type dictionary.
//
// When several concrete labels map to one abstract label, the reverse
// entry is the lexicographically last concrete label: inversion iterates
// the forward keys in sorted order and lets later writes win, so the
// resolution is identical on every run and every implementation.
//
// Complexity: O(n log n).
func (m *DomainMapping) InverseTypes() map[string]string {
	return invert(m.Types)
}

// InverseOps returns the abstract → concrete operation dictionary, with
// the same reproducible last-write-wins collision rule as InverseTypes.
//
// Complexity: O(n log n).
func (m *DomainMapping) InverseOps() map[string]string {
	return invert(m.Ops)
}

// invert flips a forward dictionary deterministically: keys are visited
// in sorted order, so on collisions the greatest concrete label wins.
func invert(forward map[string]string) map[string]string {
	keys := make([]string, 0, len(forward))
	for k := range forward {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(forward))
	for _, k := range keys {
		out[forward[k]] = k
	}

	return out
}
