package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/praxis/core"
)

// chainStructure builds A -ordered_before-> B -ordered_before-> C.
func chainStructure() core.Structure {
	return core.Structure{
		Entities: []core.Entity{
			{ID: "A", Type: "element"},
			{ID: "B", Type: "element"},
			{ID: "C", Type: "element"},
		},
		Relations: []core.Relation{
			{Source: "A", Target: "B", Type: core.RelTypeOrderedBefore},
			{Source: "B", Target: "C", Type: core.RelTypeOrderedBefore},
		},
	}
}

// TestStructure_Entity verifies lookup hits and misses.
func TestStructure_Entity(t *testing.T) {
	s := chainStructure()

	e, ok := s.Entity("B")
	assert.True(t, ok)
	assert.Equal(t, "element", e.Type)

	_, ok = s.Entity("nope")
	assert.False(t, ok) // absence is signaled, never an error
}

// TestStructure_Neighbors covers undirected adjacency and type filtering.
func TestStructure_Neighbors(t *testing.T) {
	s := chainStructure()
	s.Relations = append(s.Relations,
		core.Relation{Source: "B", Target: "C", Type: core.RelTypeContains})

	// B sees A (incoming) and C twice (two parallel relations).
	assert.Equal(t, []string{"A", "C", "C"}, s.Neighbors("B", ""))

	// Filtered by relation type.
	assert.Equal(t, []string{"C"}, s.Neighbors("B", core.RelTypeContains))
}

// TestStructure_Neighbors_DanglingEndpoint verifies that a relation whose
// endpoint is absent from the entity list still contributes adjacency.
// Referential integrity is deliberately not enforced.
func TestStructure_Neighbors_DanglingEndpoint(t *testing.T) {
	s := core.Structure{
		Relations: []core.Relation{
			{Source: "ghost", Target: "phantom", Type: "maps_to"},
		},
	}

	assert.Equal(t, []string{"phantom"}, s.Neighbors("ghost", ""))
	assert.Empty(t, s.Neighbors("unrelated", ""))
}

// TestStructure_TypeSets verifies distinct, sorted type label sets.
func TestStructure_TypeSets(t *testing.T) {
	s := core.Structure{
		Entities: []core.Entity{
			{ID: "w", Type: "collection"},
			{ID: "p1", Type: "collection"},
			{ID: "op", Type: "operation"},
		},
		Relations: []core.Relation{
			{Source: "w", Target: "p1", Type: "contains"},
			{Source: "op", Target: "w", Type: "maps_to"},
			{Source: "op", Target: "p1", Type: "maps_to"},
		},
	}

	assert.Equal(t, []string{"collection", "operation"}, s.EntityTypes())
	assert.Equal(t, []string{"contains", "maps_to"}, s.RelationTypes())
	assert.Equal(t, 2, s.CountRelations("maps_to"))
	assert.Equal(t, 0, s.CountRelations("ordered_before"))
}

// TestPattern_DomainsCovered verifies deduplication and sorting.
func TestPattern_DomainsCovered(t *testing.T) {
	p := core.Pattern{
		Instantiations: []core.Instantiation{
			{Domain: "mathematics"},
			{Domain: "algorithms"},
			{Domain: "mathematics"},
		},
	}

	assert.Equal(t, []string{"algorithms", "mathematics"}, p.DomainsCovered())
	assert.True(t, p.CoversDomain("algorithms"))
	assert.False(t, p.CoversDomain("economics"))
}

// TestPattern_AddInstantiation verifies append semantics.
func TestPattern_AddInstantiation(t *testing.T) {
	var p core.Pattern
	p.AddInstantiation(core.Instantiation{Domain: "compilers"})

	assert.Len(t, p.Instantiations, 1)
	assert.Equal(t, []string{"compilers"}, p.DomainsCovered())
}

// TestPattern_HasTags verifies the superset check, including the empty query.
func TestPattern_HasTags(t *testing.T) {
	p := core.Pattern{Tags: []string{"structural", "recursive"}}

	assert.True(t, p.HasTags())
	assert.True(t, p.HasTags("recursive"))
	assert.True(t, p.HasTags("structural", "recursive"))
	assert.False(t, p.HasTags("structural", "numerical"))
}
