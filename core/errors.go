// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors shared by every navgraph package.
//
// All pathfinding failure kinds wrap ErrPathfinding, so callers may test either the
// precise kind or the whole family:
//
//	errors.Is(err, core.ErrDisjointGraph) // precise
//	errors.Is(err, core.ErrPathfinding)   // any pathfinding failure

package core

import (
	"errors"
	"fmt"
)

// ErrPathfinding is the root of the pathfinding error family.
var ErrPathfinding = errors.New("navgraph: pathfinding failed")

// Pathfinding error kinds.
var (
	// ErrVertexNotFound indicates a supplied key does not exist in the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrPathfinding)

	// ErrDisjointGraph indicates start and end lie in different sections, or the
	// search frontier ran dry before reaching the goal.
	ErrDisjointGraph = fmt.Errorf("%w: vertices are not connected", ErrPathfinding)

	// ErrInvalidRequest indicates degenerate inputs (graph too small, start == end).
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrPathfinding)

	// ErrIncompletePath indicates the search stopped before confirming arrival at the goal.
	ErrIncompletePath = fmt.Errorf("%w: search stopped before reaching the goal", ErrPathfinding)

	// ErrNotOnPath indicates a vertex is not part of a Path.
	ErrNotOnPath = fmt.Errorf("%w: vertex is not on the path", ErrPathfinding)

	// ErrEndOfPath indicates a step was requested past the end of a Path.
	ErrEndOfPath = fmt.Errorf("%w: already at the end of the path", ErrPathfinding)
)

// Structural errors.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an algorithm.
	ErrNilGraph = errors.New("navgraph: graph is nil")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("navgraph: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("navgraph: edge weight must be finite")

	// ErrNegativeWeight indicates a negative edge weight or vertex heuristic where
	// a cost search requires non-negative costs.
	ErrNegativeWeight = errors.New("navgraph: negative cost encountered")
)
