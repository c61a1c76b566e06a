// Package core defines the central record types of the praxis library:
// Entity, Relation, Structure, Constraint, Goal, Problem, Step,
// Transformation, Postcondition, Solution, Instantiation, and Pattern.
//
// What:
//
//   - Structure: a labeled directed multigraph of Entities (typed nodes)
//     and Relations (typed edges). Self-loops and parallel edges of any
//     type mix are permitted, and relations may reference entity IDs that
//     are absent from the entity list — structures are built incrementally
//     and no referential integrity is enforced.
//   - Problem = (Structure, Constraints, Goal): a domain-independent
//     description of what is involved in a problem and what it asks for.
//   - Solution = (Preconditions, Transformation, Postconditions): an
//     abstract recipe whose preconditions name the structural features
//     and tags a target problem must exhibit.
//   - Pattern = (Problem, Solution, Instantiations): the unit of storage
//     in a pattern store, linking an abstract problem class to its
//     abstract solution and the concrete realizations known for it.
//
// Why:
//   - A sorting routine, a matrix factorization, and an organizational
//     restructuring can share one abstract shape. Encoding that shape as
//     plain typed records lets a store rank known solution patterns
//     against brand-new problems by structure alone.
//
// Key Types & Enumerations:
//
//   - Op: the closed catalog of abstract operations
//     (decompose, compose, transform, reduce, search, fix,
//     dualize, lift, project, classify)
//   - Composition: sequential, parallel, conditional, iterative
//   - ConstraintKind: invariant, precondition, boundary
//   - GoalKind: find, transform, prove, optimize, construct
//
// Entity/Relation type labels are deliberately open strings, not a closed
// enum: domain mappings substitute labels with identity fallback, so an
// unmapped label must survive round-trips unchanged.
//
// Errors:
//
//   - ErrUnknownOp              unrecognized operation tag
//   - ErrUnknownComposition     unrecognized composition tag
//   - ErrUnknownConstraintKind  unrecognized constraint kind tag
//   - ErrUnknownGoalKind        unrecognized goal kind tag
//
// All records serialize to lowercase snake_case JSON and YAML fields;
// enumerations serialize as their lowercase string tag. Decoding an
// unknown enum tag is a hard error, never a silent default.
//
// Records are immutable by convention after construction; the only
// mutating helper is Pattern.AddInstantiation.
package core
