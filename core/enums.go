// SPDX-License-Identifier: MIT
// Package: praxis/core
//
// enums.go — closed enumerations and their parse functions.
//
// Error policy (explicit and strict):
//   • Enumerations are string-typed so they serialize as their lowercase tag.
//   • ParseX functions are the only decode path; unknown tags return a
//     sentinel-wrapped error, never a silent default value.
//   • Callers MUST branch with errors.Is(err, ErrUnknownX).

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for enumeration decoding.
var (
	// ErrUnknownOp indicates an operation tag outside the closed catalog.
	ErrUnknownOp = errors.New("core: unknown operation")

	// ErrUnknownComposition indicates an unrecognized composition tag.
	ErrUnknownComposition = errors.New("core: unknown composition type")

	// ErrUnknownConstraintKind indicates an unrecognized constraint kind tag.
	ErrUnknownConstraintKind = errors.New("core: unknown constraint kind")

	// ErrUnknownGoalKind indicates an unrecognized goal kind tag.
	ErrUnknownGoalKind = errors.New("core: unknown goal kind")
)

// Op is one abstract operation from the closed catalog of morphisms.
type Op string

// The operation catalog. Closed set: decoding any other tag fails.
const (
	OpDecompose Op = "decompose"
	OpCompose   Op = "compose"
	OpTransform Op = "transform"
	OpReduce    Op = "reduce"
	OpSearch    Op = "search"
	OpFix       Op = "fix"
	OpDualize   Op = "dualize"
	OpLift      Op = "lift"
	OpProject   Op = "project"
	OpClassify  Op = "classify"
)

// Valid reports whether op is a member of the closed operation catalog.
func (op Op) Valid() bool {
	switch op {
	case OpDecompose, OpCompose, OpTransform, OpReduce, OpSearch,
		OpFix, OpDualize, OpLift, OpProject, OpClassify:
		return true
	}

	return false
}

// ParseOp converts a lowercase tag into an Op, or returns an error
// wrapping ErrUnknownOp.
func ParseOp(tag string) (Op, error) {
	op := Op(tag)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, tag)
	}

	return op, nil
}

// Composition describes how the steps of a Transformation relate at
// execution time. Purely descriptive; nothing in this library executes steps.
type Composition string

// Composition tags. Closed set.
const (
	Sequential  Composition = "sequential"
	Parallel    Composition = "parallel"
	Conditional Composition = "conditional"
	Iterative   Composition = "iterative"
)

// Valid reports whether c is a recognized composition tag.
func (c Composition) Valid() bool {
	switch c {
	case Sequential, Parallel, Conditional, Iterative:
		return true
	}

	return false
}

// ParseComposition converts a lowercase tag into a Composition, or returns
// an error wrapping ErrUnknownComposition.
func ParseComposition(tag string) (Composition, error) {
	c := Composition(tag)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownComposition, tag)
	}

	return c, nil
}

// ConstraintKind classifies a Constraint.
type ConstraintKind string

// Constraint kinds. Closed set.
const (
	// Invariant must hold throughout a transformation.
	Invariant ConstraintKind = "invariant"

	// Precondition must hold at the start.
	Precondition ConstraintKind = "precondition"

	// Boundary limits the problem space.
	Boundary ConstraintKind = "boundary"
)

// Valid reports whether k is a recognized constraint kind.
func (k ConstraintKind) Valid() bool {
	switch k {
	case Invariant, Precondition, Boundary:
		return true
	}

	return false
}

// ParseConstraintKind converts a lowercase tag into a ConstraintKind, or
// returns an error wrapping ErrUnknownConstraintKind.
func ParseConstraintKind(tag string) (ConstraintKind, error) {
	k := ConstraintKind(tag)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownConstraintKind, tag)
	}

	return k, nil
}

// GoalKind classifies what a problem asks for.
type GoalKind string

// Goal kinds. Closed set.
const (
	// GoalFind asks for an element satisfying a condition.
	GoalFind GoalKind = "find"

	// GoalTransform asks to change a structure from state A to state B.
	GoalTransform GoalKind = "transform"

	// GoalProve asks to show that a property holds.
	GoalProve GoalKind = "prove"

	// GoalOptimize asks for the best element by some metric.
	GoalOptimize GoalKind = "optimize"

	// GoalConstruct asks to build a new structure satisfying constraints.
	GoalConstruct GoalKind = "construct"
)

// Valid reports whether k is a recognized goal kind.
func (k GoalKind) Valid() bool {
	switch k {
	case GoalFind, GoalTransform, GoalProve, GoalOptimize, GoalConstruct:
		return true
	}

	return false
}

// ParseGoalKind converts a lowercase tag into a GoalKind, or returns an
// error wrapping ErrUnknownGoalKind.
func ParseGoalKind(tag string) (GoalKind, error) {
	k := GoalKind(tag)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGoalKind, tag)
	}

	return k, nil
}
