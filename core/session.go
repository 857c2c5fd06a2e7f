// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Traversal-scoped bookkeeping (visited flags, aggregate costs).
//
// A Session is created by the algorithm that needs it and dropped when that
// algorithm returns, so vertices never carry traversal residue and two
// traversals over the same graph never share state.

package core

import "github.com/google/uuid"

// Session holds the scratch state of one traversal or search.
// The zero value is not usable; call NewSession.
type Session[K comparable] struct {
	// ID is unique per session and only used for diagnostics.
	ID string

	visited map[K]bool
	cost    map[K]float64
}

// NewSession mints a session with a fresh UUID and capacity hint n.
func NewSession[K comparable](n int) *Session[K] {
	return &Session[K]{
		ID:      uuid.NewString(),
		visited: make(map[K]bool, n),
		cost:    make(map[K]float64, n),
	}
}

// Visited reports whether id was marked visited; absent means false.
func (s *Session[K]) Visited(id K) bool { return s.visited[id] }

// SetVisited records the visited flag of id.
func (s *Session[K]) SetVisited(id K, visited bool) { s.visited[id] = visited }

// ResetVisited forgets the visited flag of id.
func (s *Session[K]) ResetVisited(id K) { delete(s.visited, id) }

// AggregateCost returns the recorded cost of id; absent means 0.
func (s *Session[K]) AggregateCost(id K) float64 { return s.cost[id] }

// HasAggregateCost reports whether a cost was recorded for id.
func (s *Session[K]) HasAggregateCost(id K) bool {
	_, ok := s.cost[id]

	return ok
}

// SetAggregateCost records the aggregate cost of id.
func (s *Session[K]) SetAggregateCost(id K, c float64) { s.cost[id] = c }

// ResetAggregateCost forgets the recorded cost of id.
func (s *Session[K]) ResetAggregateCost(id K) { delete(s.cost, id) }

// VisitedCount returns how many vertices are currently marked visited.
func (s *Session[K]) VisitedCount() int {
	n := 0
	for _, v := range s.visited {
		if v {
			n++
		}
	}

	return n
}

// Reset clears every flag and cost.
func (s *Session[K]) Reset() {
	clear(s.visited)
	clear(s.cost)
}
