package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/praxis/core"
	"github.com/katalvlaran/praxis/store"
)

// fixture builds a minimal pattern with the given id, preconditions, tags,
// and instantiation domains.
func fixture(id string, pre, tags, domains []string) core.Pattern {
	p := core.Pattern{
		ID:   id,
		Name: id,
		Problem: core.Problem{
			ID:   "prob-" + id,
			Name: "problem " + id,
		},
		Solution: core.Solution{
			ID:            "sol-" + id,
			Name:          "solution " + id,
			Preconditions: pre,
			Transformation: core.Transformation{
				Steps: []core.Step{
					{Op: core.OpTransform, Rationale: "do the thing"},
				},
				Composition: core.Sequential,
			},
		},
		Tags: tags,
	}
	for _, d := range domains {
		p.AddInstantiation(core.Instantiation{
			Domain:          d,
			ConcreteProblem: "a problem in " + d,
		})
	}

	return p
}

// TestStore_AddGetRemove covers insertion, lookup, overwrite, and removal.
func TestStore_AddGetRemove(t *testing.T) {
	ps := store.New()
	assert.Equal(t, 0, ps.Len())

	ps.Add(fixture("pat-a", nil, nil, nil))
	got, ok := ps.Get("pat-a")
	assert.True(t, ok)
	assert.Equal(t, "pat-a", got.ID)

	// Overwrite by re-insertion: last write wins, size unchanged.
	replacement := fixture("pat-a", nil, []string{"replaced"}, nil)
	ps.Add(replacement)
	assert.Equal(t, 1, ps.Len())
	got, _ = ps.Get("pat-a")
	assert.Equal(t, []string{"replaced"}, got.Tags)

	// Remove on an absent ID: false, size untouched.
	assert.False(t, ps.Remove("pat-missing"))
	assert.Equal(t, 1, ps.Len())

	// Remove on a present ID: true, size decreases by exactly 1.
	assert.True(t, ps.Remove("pat-a"))
	assert.Equal(t, 0, ps.Len())

	_, ok = ps.Get("pat-a")
	assert.False(t, ok)
}

// TestStore_Patterns_InsertionOrder verifies snapshot ordering, including
// position retention on overwrite.
func TestStore_Patterns_InsertionOrder(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-1", nil, nil, nil))
	ps.Add(fixture("pat-2", nil, nil, nil))
	ps.Add(fixture("pat-3", nil, nil, nil))
	ps.Add(fixture("pat-2", nil, []string{"v2"}, nil)) // overwrite keeps slot

	ids := make([]string, 0, 3)
	for _, p := range ps.Patterns() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"pat-1", "pat-2", "pat-3"}, ids)
}

// TestStore_SearchByTag: empty query matches everything; otherwise the
// pattern's tag list must contain every queried tag.
func TestStore_SearchByTag(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-x", nil, []string{"structural", "recursive"}, nil))
	ps.Add(fixture("pat-y", nil, []string{"structural"}, nil))
	ps.Add(fixture("pat-z", nil, nil, nil))

	assert.Len(t, ps.SearchByTag(), 3)

	hits := ps.SearchByTag("structural")
	assert.Len(t, hits, 2)

	hits = ps.SearchByTag("structural", "recursive")
	assert.Len(t, hits, 1)
	assert.Equal(t, "pat-x", hits[0].ID)

	assert.Empty(t, ps.SearchByTag("numerical"))
}

// TestStore_SearchByDomain matches on instantiation domains.
func TestStore_SearchByDomain(t *testing.T) {
	ps := store.New()
	ps.Add(fixture("pat-m", nil, nil, []string{"mathematics", "algorithms"}))
	ps.Add(fixture("pat-n", nil, nil, []string{"economics"}))

	hits := ps.SearchByDomain("algorithms")
	assert.Len(t, hits, 1)
	assert.Equal(t, "pat-m", hits[0].ID)

	assert.Empty(t, ps.SearchByDomain("management"))
}
