package feature_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/praxis/core"
	"github.com/katalvlaran/praxis/feature"
)

// cyc is shorthand for the cycle check on a built structure.
func cyc(s core.Structure) bool {
	return feature.Has(&s, feature.Cycle)
}

// TestCycle_EmptyRelations has no cycle by definition.
func TestCycle_EmptyRelations(t *testing.T) {
	s := core.Structure{Entities: entities("element", "element")}
	assert.False(t, cyc(s))
}

// TestCycle_DirectedChain has no cycle.
func TestCycle_DirectedChain(t *testing.T) {
	s := core.Structure{
		Entities: entities("element", "element", "element"),
		Relations: []core.Relation{
			{Source: "A", Target: "B", Type: "maps_to"},
			{Source: "B", Target: "C", Type: "maps_to"},
		},
	}
	assert.False(t, cyc(s))
}

// TestCycle_TwoNode detects A→B→A.
func TestCycle_TwoNode(t *testing.T) {
	s := core.Structure{
		Entities: entities("element", "element"),
		Relations: []core.Relation{
			{Source: "A", Target: "B", Type: "maps_to"},
			{Source: "B", Target: "A", Type: "depends_on"},
		},
	}
	// Relation types are irrelevant to the cycle check.
	assert.True(t, cyc(s))
}

// TestCycle_SelfLoop detects A→A and terminates.
func TestCycle_SelfLoop(t *testing.T) {
	s := core.Structure{
		Entities:  entities("element"),
		Relations: []core.Relation{{Source: "A", Target: "A", Type: "maps_to"}},
	}
	assert.True(t, cyc(s))
}

// TestCycle_ParallelEdges terminates on duplicated relations and finds no
// cycle when none exists.
func TestCycle_ParallelEdges(t *testing.T) {
	s := core.Structure{
		Entities: entities("element", "element"),
		Relations: []core.Relation{
			{Source: "A", Target: "B", Type: "maps_to"},
			{Source: "A", Target: "B", Type: "contains"},
			{Source: "A", Target: "B", Type: "maps_to"},
		},
	}
	assert.False(t, cyc(s))
}

// TestCycle_DisconnectedComponents finds a cycle hidden in a component far
// from the first DFS root.
func TestCycle_DisconnectedComponents(t *testing.T) {
	s := core.Structure{
		Entities: []core.Entity{
			{ID: "A", Type: "element"},
			{ID: "B", Type: "element"},
			{ID: "X", Type: "element"},
			{ID: "Y", Type: "element"},
			{ID: "Z", Type: "element"},
		},
		Relations: []core.Relation{
			{Source: "A", Target: "B", Type: "maps_to"}, // acyclic component
			{Source: "X", Target: "Y", Type: "maps_to"},
			{Source: "Y", Target: "Z", Type: "maps_to"},
			{Source: "Z", Target: "X", Type: "maps_to"}, // cyclic component
		},
	}
	assert.True(t, cyc(s))
}

// TestCycle_DanglingEndpoints stays total when relations reference IDs
// absent from the entity list.
func TestCycle_DanglingEndpoints(t *testing.T) {
	s := core.Structure{
		Entities: entities("element"),
		Relations: []core.Relation{
			{Source: "A", Target: "ghost", Type: "maps_to"},
			{Source: "ghost", Target: "phantom", Type: "maps_to"},
		},
	}
	assert.False(t, cyc(s))
}

// TestCycle_EdgeOrderInvariance: the verdict must not depend on the order
// relations are listed in. Exercise every rotation of a mixed relation set.
func TestCycle_EdgeOrderInvariance(t *testing.T) {
	base := []core.Relation{
		{Source: "A", Target: "B", Type: "maps_to"},
		{Source: "B", Target: "C", Type: "maps_to"},
		{Source: "C", Target: "A", Type: "maps_to"},
		{Source: "C", Target: "D", Type: "maps_to"},
	}
	ents := entities("element", "element", "element", "element")

	for shift := range base {
		rotated := append(append([]core.Relation{}, base[shift:]...), base[:shift]...)
		s := core.Structure{Entities: ents, Relations: rotated}
		assert.True(t, cyc(s), fmt.Sprintf("rotation %d", shift))
	}
}
