// Package dfs defines types and options for depth-first search traversal,
// including cancellation, visit hooks, depth limiting, neighbor filtering
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = fmt.Errorf("dfs: %w", core.ErrNilGraph)

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start: %w", core.ErrVertexNotFound)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option[K comparable] func(*DFSOptions[K])

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions[K comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is popped for the first time.
	// Returning an error aborts traversal with that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each outgoing edge before it is pushed.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(e core.Edge[K]) bool

	// FullTraversal, if true, restarts from every unvisited vertex in insertion
	// order, covering disconnected sections (forest traversal). Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions[K comparable]() DFSOptions[K] {
	return DFSOptions[K]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *DFSOptions[K]) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *DFSOptions[K]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *DFSOptions[K]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters outgoing edges.
func WithFilterNeighbor[K comparable](fn func(e core.Edge[K]) bool) Option[K] {
	return func(o *DFSOptions[K]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS will restart from each unvisited vertex, covering disconnected sections.
func WithFullTraversal[K comparable]() Option[K] {
	return func(o *DFSOptions[K]) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[K comparable] struct {
	// Order records vertices in the sequence they were visited (pre-order).
	Order []K

	// Depth maps each vertex ID to its distance (#edges) from its tree start.
	Depth map[K]int

	// Parent maps each vertex ID to the ID of the vertex from which it was visited.
	// Tree starts do not appear in this map.
	Parent map[K]K

	// Starts lists the vertex that opened each DFS tree.
	Starts []K
}
