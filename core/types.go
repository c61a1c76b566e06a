// SPDX-License-Identifier: MIT
// Package: praxis/core
//
// types.go — Entity, Relation, and Structure: the structural graph of a
// problem. Declares the graph record types and nothing else; traversal and
// lookup methods live in methods.go.

package core

// Entity is a typed node in a problem's structural graph.
//
// ID uniquely identifies the entity within its Structure. Type is an open
// label ("collection", "element", "operation", ...) — open by design, so
// domain mappings can pass unmapped labels through unchanged. Properties
// is an open bag of arbitrary scalar or nested values.
type Entity struct {
	// ID is the unique identifier of this entity within its Structure.
	ID string `json:"id" yaml:"id"`

	// Type is the abstract type label. Open vocabulary.
	Type string `json:"type" yaml:"type"`

	// Properties stores arbitrary user data. May be nil.
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Relation is a typed directed edge between two entities.
//
// Source and Target are entity IDs; they are not required to resolve to
// entities present in the Structure. Parallel relations between the same
// pair (including different types) and self-loops are permitted.
type Relation struct {
	// Source is the origin entity ID.
	Source string `json:"source" yaml:"source"`

	// Target is the destination entity ID.
	Target string `json:"target" yaml:"target"`

	// Type is the relation label ("contains", "maps_to",
	// "ordered_before", ...). Open vocabulary.
	Type string `json:"type" yaml:"type"`

	// Properties stores arbitrary user data. May be nil.
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Structure is the structural graph of a problem: an ordered sequence of
// entities plus an ordered sequence of relations, forming a labeled
// directed multigraph.
//
// Invariant (deliberate): relations may reference entity IDs absent from
// Entities. Consumers must treat a missing adjacency as contributing no
// neighbors rather than as an error.
type Structure struct {
	// Entities are the nodes, in insertion order.
	Entities []Entity `json:"entities" yaml:"entities"`

	// Relations are the edges, in insertion order.
	Relations []Relation `json:"relations" yaml:"relations"`
}

// RelTypeOrderedBefore and RelTypeContains are the relation labels the
// feature detector counts for the linear_chain and tree checks. They are
// conventions, not a closed set.
const (
	RelTypeOrderedBefore = "ordered_before"
	RelTypeContains      = "contains"
)
