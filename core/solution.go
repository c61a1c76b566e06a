// SPDX-License-Identifier: MIT
// Package: praxis/core
//
// solution.go — Step, Transformation, Postcondition, and Solution.
// Solution = (Preconditions, Transformation, Postconditions): what to do
// at an abstract level, never how to do it in any specific domain.

package core

// Step is a single step in an abstract transformation.
type Step struct {
	// Op is the abstract operation; serialized under the "operation" key.
	Op Op `json:"operation" yaml:"operation"`

	// Args is an open argument bag for the operation.
	Args map[string]any `json:"args,omitempty" yaml:"args,omitempty"`

	// Binds optionally names the result of this step for later steps.
	Binds string `json:"binds,omitempty" yaml:"binds,omitempty"`

	// Rationale explains the step to a human reader.
	Rationale string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
}

// Transformation is an ordered collection of abstract steps plus the
// composition mode relating them. Purely descriptive: steps are data,
// not executable units.
type Transformation struct {
	// Steps in order.
	Steps []Step `json:"steps" yaml:"steps"`

	// Composition describes how the steps relate at execution time;
	// serialized under the "composition_type" key.
	Composition Composition `json:"composition_type" yaml:"composition_type"`
}

// Postcondition is a guarantee a solution provides once applied.
type Postcondition struct {
	// Predicate is the opaque condition label that holds afterwards.
	Predicate string `json:"predicate" yaml:"predicate"`

	// Guarantees describes the guarantee in prose.
	Guarantees string `json:"guarantees" yaml:"guarantees"`
}

// Solution is an abstract solution template.
//
// Preconditions name the structural features and tags a target problem
// must exhibit; the pattern store scores candidate problems by the
// fraction of these labels they satisfy.
type Solution struct {
	// ID uniquely identifies the solution.
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Preconditions lists required feature/tag labels. An empty list
	// means the solution claims universal (but weak) applicability.
	Preconditions []string `json:"preconditions" yaml:"preconditions"`

	// Transformation is the abstract recipe.
	Transformation Transformation `json:"transformation" yaml:"transformation"`

	// Postconditions are the guarantees on completion.
	Postconditions []Postcondition `json:"postconditions" yaml:"postconditions"`

	// Metadata is an open bag for solution-level annotations.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
