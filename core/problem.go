// SPDX-License-Identifier: MIT
// Package: praxis/core
//
// problem.go — Constraint, Goal, and Problem.
// Problem = (Structure, Constraints, Goal): the abstract, domain-independent
// statement of what is involved and what must be achieved.

package core

// Constraint is a predicate that must hold over part of a structure.
// Predicates are opaque labels; nothing in this library evaluates them.
type Constraint struct {
	// Predicate is a human-readable, machine-opaque condition label.
	Predicate string `json:"predicate" yaml:"predicate"`

	// Over lists the entity IDs the predicate ranges over.
	Over []string `json:"over" yaml:"over"`

	// Kind classifies the constraint; serialized under the "type" key.
	Kind ConstraintKind `json:"type" yaml:"type"`
}

// Goal states what a problem asks us to achieve.
type Goal struct {
	// Kind classifies the request; serialized under the "type" key.
	Kind GoalKind `json:"type" yaml:"type"`

	// Target is the entity ID (or abstract name) the goal concerns.
	Target string `json:"target" yaml:"target"`

	// Predicate is the opaque success-condition label.
	Predicate string `json:"predicate" yaml:"predicate"`
}

// Problem is an abstract problem: structure + constraints + goal.
//
// A sorting problem, a matrix decomposition, and an organizational
// restructuring can all be represented as Problems with the same abstract
// structure; only the free-form tags and labels differ.
type Problem struct {
	// ID uniquely identifies the problem.
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Structure is the entity/relation graph.
	Structure Structure `json:"structure" yaml:"structure"`

	// Constraints is purely descriptive metadata over the structure.
	Constraints []Constraint `json:"constraints" yaml:"constraints"`

	// Goal is optional; nil means the problem states no explicit goal.
	Goal *Goal `json:"goal" yaml:"goal"`

	// Tags are free-form labels that participate in pattern matching
	// alongside the detected structural features.
	Tags []string `json:"tags" yaml:"tags"`
}
