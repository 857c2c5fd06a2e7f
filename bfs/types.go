// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start: %w", core.ErrVertexNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("bfs: %w", core.ErrNilGraph)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K comparable] func(*BFSOptions[K])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called whenever a vertex is pushed onto the queue.
	// A vertex may be enqueued several times before its first visit.
	OnEnqueue func(id K, depth int)

	// OnVisit is called when a vertex is dequeued for the first time. If it
	// returns an error, BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(e core.Edge[K]) bool

	// IncludeAll restarts from the first unvisited vertex (insertion order)
	// whenever the queue runs dry, so every vertex is visited.
	IncludeAll bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks
//   - single-source traversal
func DefaultOptions[K comparable]() BFSOptions[K] {
	return BFSOptions[K]{
		Ctx:            context.Background(),
		OnEnqueue:      func(K, int) {},
		OnVisit:        func(K, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(core.Edge[K]) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *BFSOptions[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *BFSOptions[K]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips edges when fn returns false.
func WithFilterNeighbor[K comparable](fn func(e core.Edge[K]) bool) Option[K] {
	return func(o *BFSOptions[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithIncludeAll enables full-graph coverage across disconnected sections.
func WithIncludeAll[K comparable]() Option[K] {
	return func(o *BFSOptions[K]) {
		o.IncludeAll = true
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from its start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
//   - Starts: the vertex that opened each traversal tree (more than one with IncludeAll).
type BFSResult[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
	Starts []K
}

// PathTo reconstructs the fewest-hop path from the tree start to dest.
// Returns an error if dest was not reached.
func (r *BFSResult[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v: %w", dest, core.ErrDisjointGraph)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
