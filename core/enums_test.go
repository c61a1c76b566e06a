package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/praxis/core"
)

// TestParseOp_Catalog verifies every catalog member parses to itself and
// an unknown tag fails with the sentinel.
func TestParseOp_Catalog(t *testing.T) {
	for _, tag := range []string{
		"decompose", "compose", "transform", "reduce", "search",
		"fix", "dualize", "lift", "project", "classify",
	} {
		op, err := core.ParseOp(tag)
		assert.NoError(t, err, tag)
		assert.Equal(t, tag, string(op))
		assert.True(t, op.Valid())
	}

	_, err := core.ParseOp("summon")
	assert.ErrorIs(t, err, core.ErrUnknownOp)
}

// TestParseComposition covers all four tags plus the failure path.
func TestParseComposition(t *testing.T) {
	for _, tag := range []string{"sequential", "parallel", "conditional", "iterative"} {
		c, err := core.ParseComposition(tag)
		assert.NoError(t, err, tag)
		assert.Equal(t, tag, string(c))
	}

	_, err := core.ParseComposition("recursive")
	assert.ErrorIs(t, err, core.ErrUnknownComposition)

	// Casing matters: tags are lowercase by contract.
	_, err = core.ParseComposition("Sequential")
	assert.ErrorIs(t, err, core.ErrUnknownComposition)
}

// TestParseConstraintKind covers all kinds plus the failure path.
func TestParseConstraintKind(t *testing.T) {
	for _, tag := range []string{"invariant", "precondition", "boundary"} {
		k, err := core.ParseConstraintKind(tag)
		assert.NoError(t, err, tag)
		assert.Equal(t, tag, string(k))
	}

	_, err := core.ParseConstraintKind("postcondition")
	assert.ErrorIs(t, err, core.ErrUnknownConstraintKind)
}

// TestParseGoalKind covers all kinds plus the failure path.
func TestParseGoalKind(t *testing.T) {
	for _, tag := range []string{"find", "transform", "prove", "optimize", "construct"} {
		k, err := core.ParseGoalKind(tag)
		assert.NoError(t, err, tag)
		assert.Equal(t, tag, string(k))
	}

	_, err := core.ParseGoalKind("refute")
	assert.ErrorIs(t, err, core.ErrUnknownGoalKind)
}
