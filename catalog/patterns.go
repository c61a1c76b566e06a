// SPDX-License-Identifier: MIT
// Package: praxis/catalog
//
// patterns.go — the stock pattern factories. Each factory builds its
// pattern from scratch on every call; nothing here is shared state.

package catalog

import (
	"github.com/katalvlaran/praxis/core"
	"github.com/katalvlaran/praxis/store"
)

// Stock pattern identifiers.
const (
	IDDivideAndConquer = "pat-divide-conquer"
	IDReduction        = "pat-reduction"
	IDFixedPoint       = "pat-fixedpoint"
)

// DivideAndConquer returns the divide-and-conquer pattern: recursively
// decompose into independent sub-problems of the same type, solve, and
// combine.
func DivideAndConquer() core.Pattern {
	problem := core.Problem{
		ID:   "prob-dac",
		Name: "Recursively Decomposable Problem",
		Structure: core.Structure{
			Entities: []core.Entity{
				{ID: "whole", Type: "collection", Properties: map[string]any{"size": "n"}},
				{ID: "part_1", Type: "collection", Properties: map[string]any{"size": "n/2"}},
				{ID: "part_2", Type: "collection", Properties: map[string]any{"size": "n/2"}},
			},
			Relations: []core.Relation{
				{Source: "whole", Target: "part_1", Type: core.RelTypeContains},
				{Source: "whole", Target: "part_2", Type: core.RelTypeContains},
			},
		},
		Constraints: []core.Constraint{
			{Predicate: "parts are independent", Over: []string{"part_1", "part_2"}, Kind: core.Invariant},
			{Predicate: "parts cover whole", Over: []string{"whole", "part_1", "part_2"}, Kind: core.Invariant},
		},
		Goal: &core.Goal{Kind: core.GoalTransform, Target: "whole", Predicate: "whole is in solved state"},
		Tags: []string{"recursive_decomposability", "independent_subproblems"},
	}

	solution := core.Solution{
		ID:            "sol-dac",
		Name:          "Divide and Conquer",
		Preconditions: []string{"recursive_decomposability", "independent_subproblems"},
		Transformation: core.Transformation{
			Steps: []core.Step{
				{Op: core.OpDecompose, Args: map[string]any{"predicate": "recursive_split"}, Binds: "parts",
					Rationale: "Break into smaller instances of the same problem type"},
				{Op: core.OpTransform, Args: map[string]any{"morphism": "solve", "condition": "is_base_case"}, Binds: "base_solutions",
					Rationale: "Solve base cases directly"},
				{Op: core.OpCompose, Args: map[string]any{"rule": "merge"}, Binds: "full_solution",
					Rationale: "Combine sub-solutions into complete solution"},
			},
			Composition: core.Sequential,
		},
		Postconditions: []core.Postcondition{
			{Predicate: "whole is in solved state", Guarantees: "Solution covers all parts"},
		},
	}

	return core.Pattern{
		ID:   IDDivideAndConquer,
		Name: "Divide and Conquer",
		Description: "When a problem can be recursively decomposed into independent " +
			"sub-problems of the same type, solve each sub-problem independently " +
			"and combine the results.",
		Problem:  problem,
		Solution: solution,
		Instantiations: []core.Instantiation{
			{Domain: "algorithms",
				ConcreteProblem:  "Sort a list of n elements",
				ConcreteSolution: "Merge sort: split in half, sort each, merge sorted halves",
				MappingNotes:     "decompose=split at midpoint, base_case=single element, compose=merge"},
			{Domain: "mathematics",
				ConcreteProblem:  "Compute Fourier transform of signal with n samples",
				ConcreteSolution: "FFT: decompose into even/odd indices, recurse, combine with twiddle factors",
				MappingNotes:     "decompose=even/odd split, base_case=single point DFT, compose=butterfly"},
			{Domain: "management",
				ConcreteProblem:  "Execute large project with many deliverables",
				ConcreteSolution: "WBS: decompose into work packages, assign teams, integrate results",
				MappingNotes:     "decompose=WBS, base_case=atomic task, compose=integration"},
			{Domain: "mathematics",
				ConcreteProblem:  "Multiply two n-digit numbers",
				ConcreteSolution: "Karatsuba: split digits, 3 recursive multiplications instead of 4, combine",
				MappingNotes:     "decompose=split digits, base_case=single digit multiply, compose=shift and add"},
		},
		RelatedPatterns: []string{IDReduction, "pat-incremental"},
		Tags:            []string{"structural", "recursive", "parallelizable"},
	}
}

// Reduction returns the reduction pattern: transform a hard problem into
// an easier equivalent, solve that, and map the answer back.
func Reduction() core.Pattern {
	problem := core.Problem{
		ID:   "prob-reduction",
		Name: "Problem Reducible to Known Form",
		Structure: core.Structure{
			Entities: []core.Entity{
				{ID: "problem_A", Type: "problem", Properties: map[string]any{"difficulty": "hard"}},
				{ID: "problem_B", Type: "problem", Properties: map[string]any{"difficulty": "easier"}},
			},
			Relations: []core.Relation{
				{Source: "problem_A", Target: "problem_B", Type: "maps_to",
					Properties: map[string]any{"preserves": "solution"}},
			},
		},
		Goal: &core.Goal{Kind: core.GoalTransform, Target: "problem_A", Predicate: "problem_A is solved"},
		Tags: []string{"reducible", "has_known_equivalent"},
	}

	solution := core.Solution{
		ID:            "sol-reduction",
		Name:          "Reduction to Known Problem",
		Preconditions: []string{"reducible", "has_known_equivalent"},
		Transformation: core.Transformation{
			Steps: []core.Step{
				{Op: core.OpTransform, Args: map[string]any{"morphism": "encode"}, Binds: "reduced_form",
					Rationale: "Transform problem into equivalent easier form"},
				{Op: core.OpSearch, Args: map[string]any{"predicate": "is_solved"}, Binds: "reduced_solution",
					Rationale: "Solve the easier problem"},
				{Op: core.OpTransform, Args: map[string]any{"morphism": "decode"}, Binds: "original_solution",
					Rationale: "Map solution back to original problem space"},
			},
			Composition: core.Sequential,
		},
		Postconditions: []core.Postcondition{
			{Predicate: "problem_A is solved",
				Guarantees: "If encode/decode are correct and B is solved, A is solved"},
		},
	}

	return core.Pattern{
		ID:   IDReduction,
		Name: "Reduction to Known Problem",
		Description: "When a hard problem can be transformed into an equivalent problem " +
			"that we already know how to solve, transform, solve, and map back.",
		Problem:  problem,
		Solution: solution,
		Instantiations: []core.Instantiation{
			{Domain: "algorithms",
				ConcreteProblem:  "Find shortest path with negative edge weights",
				ConcreteSolution: "Reduce to Bellman-Ford by reweighting edges (Johnson's algorithm)",
				MappingNotes:     "encode=reweight edges, solve=Bellman-Ford, decode=adjust distances"},
			{Domain: "mathematics",
				ConcreteProblem:  "Solve differential equation",
				ConcreteSolution: "Laplace transform: convert to algebraic equation, solve, inverse transform",
				MappingNotes:     "encode=Laplace transform, solve=algebra, decode=inverse Laplace"},
			{Domain: "software_engineering",
				ConcreteProblem:  "Complex data format conversion (A→C)",
				ConcreteSolution: "Convert to intermediate canonical form (A→B→C) using existing A→B and B→C converters",
				MappingNotes:     "encode=convert to canonical, solve=identity, decode=convert from canonical"},
			{Domain: "cryptography",
				ConcreteProblem:  "Break cipher by finding structure",
				ConcreteSolution: "Reduce to known algebraic problem (e.g., discrete log, factoring)",
				MappingNotes:     "encode=algebraic formulation, solve=known algorithm, decode=extract key"},
		},
		RelatedPatterns: []string{IDDivideAndConquer, "pat-dualization"},
		Tags:            []string{"transformational", "equivalence", "mapping"},
	}
}

// FixedPoint returns the fixed-point pattern: repeatedly apply a
// contractive transformation until the state stops changing.
func FixedPoint() core.Pattern {
	problem := core.Problem{
		ID:   "prob-fixedpoint",
		Name: "Convergent Iterative Process",
		Structure: core.Structure{
			Entities: []core.Entity{
				{ID: "state", Type: "element", Properties: map[string]any{"mutable": true}},
				{ID: "transform", Type: "operation", Properties: map[string]any{"contractive": true}},
			},
			Relations: []core.Relation{
				{Source: "transform", Target: "state", Type: "maps_to"},
			},
		},
		Constraints: []core.Constraint{
			{Predicate: "transform is contractive", Over: []string{"transform"}, Kind: core.Precondition},
		},
		Goal: &core.Goal{Kind: core.GoalFind, Target: "state", Predicate: "f(state) = state"},
		Tags: []string{"iterative", "convergent", "has_contractive_map"},
	}

	solution := core.Solution{
		ID:            "sol-fixedpoint",
		Name:          "Fixed Point Iteration",
		Preconditions: []string{"iterative", "has_contractive_map"},
		Transformation: core.Transformation{
			Steps: []core.Step{
				{Op: core.OpSearch, Args: map[string]any{"predicate": "initial_guess"}, Binds: "x0",
					Rationale: "Start with an initial approximation"},
				{Op: core.OpFix, Args: map[string]any{"morphism": "apply_transform_repeatedly"}, Binds: "x_star",
					Rationale: "Iterate x_{n+1} = f(x_n) until convergence"},
			},
			Composition: core.Iterative,
		},
		Postconditions: []core.Postcondition{
			{Predicate: "f(x_star) = x_star", Guarantees: "Converges to fixed point if f is contractive"},
		},
	}

	return core.Pattern{
		ID:   IDFixedPoint,
		Name: "Fixed Point Iteration",
		Description: "When you have a transformation that is contractive (brings things " +
			"closer together), repeatedly applying it will converge to a unique stable point.",
		Problem:  problem,
		Solution: solution,
		Instantiations: []core.Instantiation{
			{Domain: "mathematics",
				ConcreteProblem:  "Find root of f(x) = 0",
				ConcreteSolution: "Newton's method: x_{n+1} = x_n - f(x_n)/f'(x_n)",
				MappingNotes:     "transform=Newton update, convergence=quadratic near root"},
			{Domain: "compilers",
				ConcreteProblem:  "Compute reaching definitions in dataflow analysis",
				ConcreteSolution: "Iterate dataflow equations over CFG until no changes",
				MappingNotes:     "transform=transfer functions, convergence=monotone on finite lattice"},
			{Domain: "machine_learning",
				ConcreteProblem:  "Train model parameters",
				ConcreteSolution: "Gradient descent: θ_{n+1} = θ_n - α∇L(θ_n) until convergence",
				MappingNotes:     "transform=gradient update, convergence=with proper learning rate"},
			{Domain: "economics",
				ConcreteProblem:  "Find market equilibrium price",
				ConcreteSolution: "Tatonnement: adjust price based on excess demand until supply=demand",
				MappingNotes:     "transform=price adjustment, convergence=under gross substitutability"},
			{Domain: "software_engineering",
				ConcreteProblem:  "Resolve dependency versions",
				ConcreteSolution: "SAT solver / iterative constraint propagation until consistent assignment",
				MappingNotes:     "transform=propagate constraints, convergence=finite domain"},
		},
		RelatedPatterns: []string{IDReduction, "pat-invariance"},
		Tags:            []string{"iterative", "convergent", "numerical"},
	}
}

// All returns every stock pattern in catalog order.
func All() []core.Pattern {
	return []core.Pattern{DivideAndConquer(), Reduction(), FixedPoint()}
}

// Seed inserts the whole stock library into st.
func Seed(st *store.PatternStore) {
	for _, p := range All() {
		st.Add(p)
	}
}
