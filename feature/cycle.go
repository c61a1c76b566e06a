// SPDX-License-Identifier: MIT
// Package: praxis/feature
//
// cycle.go — directed cycle detection over a core.Structure via
// depth-first search with three-color marking (White unvisited, Gray on
// the recursion stack, Black fully explored). Every relation participates
// regardless of its type label; self-loops and parallel relations are
// handled without special cases; disconnected components are covered by
// restarting the search from every unvisited entity.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) state map + recursion depth

package feature

import "github.com/katalvlaran/praxis/core"

// Visitation states for cycle detection.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// hasCycle reports whether the directed multigraph induced by all
// relations of s contains a cycle. An empty relation list never has one.
func hasCycle(s *core.Structure) bool {
	// 1) Trivial case: no relations, no cycle.
	if len(s.Relations) == 0 {
		return false
	}

	// 2) Build directed adjacency defensively. Every entity gets an entry
	//    up front; relation sources absent from the entity list are added
	//    on the fly, and targets need no entry at all (a missing key just
	//    means no further neighbors).
	adj := make(map[string][]string, len(s.Entities))
	for _, e := range s.Entities {
		adj[e.ID] = nil
	}
	for _, r := range s.Relations {
		adj[r.Source] = append(adj[r.Source], r.Target)
	}

	// 3) Run DFS from every unvisited entity so disconnected components
	//    are covered. Roots are the declared entities, matching the
	//    contract that purely dangling relation clusters stay invisible.
	state := make(map[string]int, len(adj))
	for _, e := range s.Entities {
		if state[e.ID] == white && visit(e.ID, adj, state) {
			return true
		}
	}

	return false
}

// visit performs the recursive DFS step from id. A Gray neighbor means a
// back-edge onto the current recursion stack, hence a cycle; this also
// catches self-loops (id sees itself Gray) without any special case.
func visit(id string, adj map[string][]string, state map[string]int) bool {
	state[id] = gray
	for _, nbr := range adj[id] {
		switch state[nbr] {
		case gray:
			return true
		case white:
			if visit(nbr, adj, state) {
				return true
			}
		}
	}
	state[id] = black

	return false
}
