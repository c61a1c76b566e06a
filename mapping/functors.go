// SPDX-License-Identifier: MIT
// Package: praxis/mapping
//
// functors.go — the abstraction and instantiation functors.
// Both substitute labels through a DomainMapping with identity fallback:
// a label absent from the dictionary passes through unchanged.

package mapping

import (
	"fmt"

	"github.com/katalvlaran/praxis/core"
)

// ProblemDesc is the plain record form of a concrete problem, written in
// a domain's own vocabulary. It mirrors core.Problem field for field but
// with open labels everywhere, ready to be abstracted.
type ProblemDesc struct {
	// ID and Name carry over to the abstract problem unchanged.
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Entities and Relations use concrete type labels.
	Entities  []core.Entity   `json:"entities" yaml:"entities"`
	Relations []core.Relation `json:"relations" yaml:"relations"`

	// Constraints use the closed constraint-kind tags; an empty kind
	// defaults to "invariant".
	Constraints []core.Constraint `json:"constraints" yaml:"constraints"`

	// Goal is optional.
	Goal *core.Goal `json:"goal" yaml:"goal"`

	// Tags carry over unchanged.
	Tags []string `json:"tags" yaml:"tags"`
}

// ConcreteStep is one rendered solution step in a target domain. It keeps
// the original abstract operation label alongside the concrete one so a
// reader can always trace the rendering back.
type ConcreteStep struct {
	// Op is the concrete operation label (or the abstract label when the
	// mapping has no reverse entry for it — identity fallback).
	Op string `json:"operation" yaml:"operation"`

	// AbstractOp is the abstract operation the step came from.
	AbstractOp core.Op `json:"abstract_operation" yaml:"abstract_operation"`

	// Args, Binds, and Rationale carry over from the abstract step
	// unchanged.
	Args      map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
	Binds     string         `json:"binds,omitempty" yaml:"binds,omitempty"`
	Rationale string         `json:"rationale,omitempty" yaml:"rationale,omitempty"`

	// Domain names the target domain the step was rendered for.
	Domain string `json:"domain" yaml:"domain"`
}

// Abstract is the abstraction functor: it lifts a concrete problem
// description into an abstract core.Problem by substituting, per entity
// and relation, the mapped abstract type label when the forward
// dictionary has one, and passing the original label through otherwise.
//
// Abstract fails only when the description carries a goal kind or
// constraint kind outside its closed set; the error wraps the matching
// core sentinel.
//
// Complexity: O(V + E + C).
func Abstract(desc ProblemDesc, m DomainMapping) (core.Problem, error) {
	// 1) Map entity types forward, identity fallback on unmapped labels.
	entities := make([]core.Entity, len(desc.Entities))
	for i, e := range desc.Entities {
		if abs, ok := m.Types[e.Type]; ok {
			e.Type = abs
		}
		entities[i] = e
	}

	// 2) Map relation types the same way.
	relations := make([]core.Relation, len(desc.Relations))
	for i, r := range desc.Relations {
		if abs, ok := m.Types[r.Type]; ok {
			r.Type = abs
		}
		relations[i] = r
	}

	// 3) Constraints carry over; kinds are validated (empty defaults to
	//    invariant, unknown tags are hard errors).
	constraints := make([]core.Constraint, len(desc.Constraints))
	for i, c := range desc.Constraints {
		if c.Kind == "" {
			c.Kind = core.Invariant
		}
		if !c.Kind.Valid() {
			return core.Problem{}, fmt.Errorf(
				"mapping: abstract %q constraint %d: %w: %q",
				desc.ID, i, core.ErrUnknownConstraintKind, c.Kind)
		}
		constraints[i] = c
	}

	// 4) The goal, when present, must carry a recognized kind.
	var goal *core.Goal
	if desc.Goal != nil {
		if !desc.Goal.Kind.Valid() {
			return core.Problem{}, fmt.Errorf(
				"mapping: abstract %q goal: %w: %q",
				desc.ID, core.ErrUnknownGoalKind, desc.Goal.Kind)
		}
		g := *desc.Goal
		goal = &g
	}

	return core.Problem{
		ID:          desc.ID,
		Name:        desc.Name,
		Structure:   core.Structure{Entities: entities, Relations: relations},
		Constraints: constraints,
		Goal:        goal,
		Tags:        desc.Tags,
	}, nil
}

// Instantiate is the instantiation functor: it renders an abstract
// solution's transformation into an ordered sequence of concrete step
// descriptions for the mapping's domain. Each step's abstract operation
// label is replaced through the reverse operation dictionary, with
// identity fallback when the domain has no concrete counterpart.
//
// Instantiate is total: it never fails for any well-formed solution.
//
// Complexity: O(n log n) for the reverse dictionary plus O(steps).
func Instantiate(sol core.Solution, m DomainMapping) []ConcreteStep {
	inv := m.InverseOps()

	out := make([]ConcreteStep, 0, len(sol.Transformation.Steps))
	for _, step := range sol.Transformation.Steps {
		op := string(step.Op)
		if concrete, ok := inv[op]; ok {
			op = concrete
		}
		out = append(out, ConcreteStep{
			Op:         op,
			AbstractOp: step.Op,
			Args:       step.Args,
			Binds:      step.Binds,
			Rationale:  step.Rationale,
			Domain:     m.Domain,
		})
	}

	return out
}
