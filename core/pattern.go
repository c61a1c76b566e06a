// SPDX-License-Identifier: MIT
// Package: praxis/core
//
// pattern.go — Instantiation and Pattern: the unit of storage.
// Pattern = Problem + Solution + known concrete Instantiations.

package core

import "sort"

// Instantiation records one known concrete realization of an abstract
// pattern in a specific domain. Purely informational: matching never
// consults instantiations, only domain search does.
type Instantiation struct {
	// Domain names the concrete domain ("algorithms", "economics", ...).
	Domain string `json:"domain" yaml:"domain"`

	// ConcreteProblem describes the concrete problem in domain terms.
	ConcreteProblem string `json:"concrete_problem" yaml:"concrete_problem"`

	// ConcreteSolution describes the concrete solution in domain terms.
	ConcreteSolution string `json:"concrete_solution" yaml:"concrete_solution"`

	// MappingNotes are free-form notes on the abstraction mapping.
	MappingNotes string `json:"mapping_notes,omitempty" yaml:"mapping_notes,omitempty"`
}

// Pattern is a reusable abstract pattern: an abstract problem class paired
// with its abstract solution and known concrete instantiations.
//
// Lifecycle: constructed fully formed by a caller, inserted into a store
// by ID (last write wins), optionally removed. There is no update-in-place
// API; replacement is re-insertion.
type Pattern struct {
	// ID uniquely identifies the pattern and keys it in a store.
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Description explains the pattern in prose.
	Description string `json:"description" yaml:"description"`

	// Problem is the abstract problem class.
	Problem Problem `json:"problem" yaml:"problem"`

	// Solution is the abstract solution template.
	Solution Solution `json:"solution" yaml:"solution"`

	// Instantiations are the known concrete realizations.
	Instantiations []Instantiation `json:"instantiations" yaml:"instantiations"`

	// RelatedPatterns links to other pattern IDs.
	RelatedPatterns []string `json:"related_patterns" yaml:"related_patterns"`

	// Tags are free-form pattern-level labels used by tag search.
	Tags []string `json:"tags" yaml:"tags"`
}

// AddInstantiation records a new concrete instance of this pattern.
func (p *Pattern) AddInstantiation(inst Instantiation) {
	p.Instantiations = append(p.Instantiations, inst)
}

// DomainsCovered returns the distinct instantiation domains, sorted for
// deterministic output.
//
// Complexity: O(n log n) over the instantiation count.
func (p *Pattern) DomainsCovered() []string {
	seen := make(map[string]struct{}, len(p.Instantiations))
	for _, inst := range p.Instantiations {
		seen[inst.Domain] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)

	return out
}

// CoversDomain reports whether at least one instantiation belongs to the
// given domain.
func (p *Pattern) CoversDomain(domain string) bool {
	for _, inst := range p.Instantiations {
		if inst.Domain == domain {
			return true
		}
	}

	return false
}

// HasTags reports whether the pattern's tag list contains every given tag.
// An empty query matches any pattern.
func (p *Pattern) HasTags(tags ...string) bool {
	for _, want := range tags {
		found := false
		for _, have := range p.Tags {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
