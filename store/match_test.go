package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/praxis/core"
	"github.com/katalvlaran/praxis/store"
)

// taggedProblem builds a structure-less problem carrying only tags, so the
// feature set under test is exactly the tag set.
func taggedProblem(tags ...string) core.Problem {
	return core.Problem{ID: "prob", Name: "tagged", Tags: tags}
}

// TestMatch_ExactMatch: all preconditions satisfied yields score 1.0 with
// sorted matched labels and no unmatched labels.
func TestMatch_ExactMatch(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-fix", []string{"iterative", "convergent"}, nil, nil))

	problem := taggedProblem("iterative", "convergent", "has_contractive_map")
	results := ps.Match(&problem, store.DefaultThreshold)

	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Score)
	assert.True(t, results[0].Exact())
	assert.Equal(t, []string{"convergent", "iterative"}, results[0].Matched)
	assert.Empty(t, results[0].Unmatched)
}

// TestMatch_PartialMatch_ThresholdBoundary: one of two preconditions gives
// score 0.5 — excluded at threshold 0.6, included at 0.5 (score ≥ threshold).
func TestMatch_PartialMatch_ThresholdBoundary(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-dac",
		[]string{"recursive_decomposability", "independent_subproblems"}, nil, nil))

	problem := taggedProblem("recursive_decomposability")

	assert.Empty(t, ps.Match(&problem, 0.6))

	results := ps.Match(&problem, 0.5)
	require.Len(t, results, 1)
	assert.Equal(t, 0.5, results[0].Score)
	assert.Equal(t, []string{"recursive_decomposability"}, results[0].Matched)
	assert.Equal(t, []string{"independent_subproblems"}, results[0].Unmatched)
}

// TestMatch_EmptyPreconditions_WeakFallback: a pattern without
// preconditions always matches at exactly WeakMatchScore. Inclusion is
// unconditional by design — the threshold comparison is bypassed, so even
// a threshold above 0.1 keeps the universal fallback in the results.
func TestMatch_EmptyPreconditions_WeakFallback(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-any", nil, nil, nil))

	problem := taggedProblem() // nothing in common, nothing required

	for _, threshold := range []float64{0, 0.1, 0.5, 0.99, 1} {
		results := ps.Match(&problem, threshold)
		require.Len(t, results, 1, "threshold %v", threshold)
		assert.Equal(t, store.WeakMatchScore, results[0].Score)
		assert.Empty(t, results[0].Matched)
		assert.Empty(t, results[0].Unmatched)
	}
}

// TestMatch_ZeroThreshold_IncludesZeroScores: 0 ≥ 0 holds, so fully
// unsatisfied patterns are included at threshold 0.
func TestMatch_ZeroThreshold_IncludesZeroScores(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-miss", []string{"bipartite"}, nil, nil))

	problem := taggedProblem("iterative")
	results := ps.Match(&problem, 0)

	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Score)
	assert.Equal(t, []string{"bipartite"}, results[0].Unmatched)
}

// TestMatch_RankingAndTieBreak: results sort by score descending; equal
// scores come back in store insertion order.
func TestMatch_RankingAndTieBreak(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-half-a", []string{"iterative", "bipartite"}, nil, nil))
	ps.Add(fixture("pat-full", []string{"iterative"}, nil, nil))
	ps.Add(fixture("pat-half-b", []string{"iterative", "tree"}, nil, nil))

	problem := taggedProblem("iterative")
	results := ps.Match(&problem, 0.5)

	require.Len(t, results, 3)
	assert.Equal(t, "pat-full", results[0].Pattern.ID)
	assert.Equal(t, "pat-half-a", results[1].Pattern.ID) // inserted first
	assert.Equal(t, "pat-half-b", results[2].Pattern.ID)
}

// TestMatch_StructuralFeaturesParticipate: detected features join the tag
// set, so an untagged problem can still match on structure alone.
func TestMatch_StructuralFeaturesParticipate(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-structural",
		[]string{"recursive_decomposability", "tree"}, nil, nil))

	problem := core.Problem{
		ID:   "prob-split",
		Name: "three collections under containment",
		Structure: core.Structure{
			Entities: []core.Entity{
				{ID: "whole", Type: "collection"},
				{ID: "left", Type: "collection"},
				{ID: "right", Type: "collection"},
			},
			Relations: []core.Relation{
				{Source: "whole", Target: "left", Type: core.RelTypeContains},
				{Source: "whole", Target: "right", Type: core.RelTypeContains},
			},
		},
	}

	results := ps.Match(&problem, store.DefaultThreshold)
	require.Len(t, results, 1)
	assert.True(t, results[0].Exact())
}

// TestMatch_DuplicatePreconditionsCollapse: a repeated label counts once,
// so the score stays a true fraction of the distinct required set.
func TestMatch_DuplicatePreconditionsCollapse(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-dup",
		[]string{"iterative", "iterative", "convergent"}, nil, nil))

	problem := taggedProblem("iterative")
	results := ps.Match(&problem, 0.5)

	require.Len(t, results, 1)
	assert.Equal(t, 0.5, results[0].Score)
}
