// SPDX-License-Identifier: MIT
// Package: praxis/store
//
// match.go — the matching algorithm: score every stored pattern's
// precondition labels against a problem's feature/tag set and rank the
// survivors.

package store

import (
	"sort"

	"github.com/katalvlaran/praxis/core"
	"github.com/katalvlaran/praxis/feature"
)

// DefaultThreshold is the minimum match score used when callers have no
// opinion of their own.
const DefaultThreshold = 0.5

// WeakMatchScore is the fixed score assigned to patterns whose solutions
// state no preconditions at all. Such patterns claim universal (but weak)
// applicability and are included regardless of the threshold.
const WeakMatchScore = 0.1

// MatchResult pairs a stored pattern with its relevance to a problem.
type MatchResult struct {
	// Pattern is the matched pattern record.
	Pattern core.Pattern

	// Score is the fraction of the solution's preconditions satisfied by
	// the problem's feature/tag set, in [0,1]; WeakMatchScore for
	// patterns without preconditions.
	Score float64

	// Matched lists the satisfied precondition labels, sorted.
	Matched []string

	// Unmatched lists the unsatisfied precondition labels, sorted; empty
	// for an exact match.
	Unmatched []string
}

// Exact reports whether every precondition was satisfied.
func (r MatchResult) Exact() bool { return r.Score == 1.0 }

// Match ranks the stored patterns against problem.
//
// The algorithm:
//  1. Compute the problem's feature set: detected structural features
//     united with the problem's free-form tags.
//  2. For each stored pattern, take its solution's precondition labels as
//     the required set. An empty required set matches unconditionally at
//     WeakMatchScore (this deliberately bypasses the threshold). Otherwise
//     score = |required ∩ features| / |required|, and the pattern is
//     included iff score ≥ threshold — so threshold 0 also admits
//     patterns scoring exactly 0.
//  3. Sort results by score descending. The sort is stable over the
//     store's insertion order, which is the documented tie-break.
//
// Complexity: O(P · L + F) where P = stored patterns, L = preconditions
// per pattern, F = V+E of the problem structure.
func (ps *PatternStore) Match(problem *core.Problem, threshold float64) []MatchResult {
	// 1) Assemble the problem's feature set: structural features ∪ tags.
	features := make(map[string]struct{})
	for _, f := range feature.Detect(&problem.Structure) {
		features[string(f)] = struct{}{}
	}
	for _, tag := range problem.Tags {
		features[tag] = struct{}{}
	}

	// 2) Score every stored pattern in insertion order.
	var results []MatchResult
	for _, id := range ps.order {
		p := ps.patterns[id]
		required := p.Solution.Preconditions

		if len(required) == 0 {
			// Unconditional weak fallback: no threshold comparison at all.
			results = append(results, MatchResult{
				Pattern: p,
				Score:   WeakMatchScore,
			})
			continue
		}

		var matched, unmatched []string
		for _, label := range dedupe(required) {
			if _, ok := features[label]; ok {
				matched = append(matched, label)
			} else {
				unmatched = append(unmatched, label)
			}
		}
		score := float64(len(matched)) / float64(len(matched)+len(unmatched))
		if score < threshold {
			continue
		}
		sort.Strings(matched)
		sort.Strings(unmatched)
		results = append(results, MatchResult{
			Pattern:   p,
			Score:     score,
			Matched:   matched,
			Unmatched: unmatched,
		})
	}

	// 3) Rank by score, ties resolved by insertion order (stable sort).
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// dedupe removes duplicate labels preserving first occurrence, so a
// repeated precondition cannot inflate or deflate the score.
func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}
