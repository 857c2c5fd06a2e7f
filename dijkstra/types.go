// Package dijkstra defines core types and configuration options
// for Dijkstra's cost search on a core.Graph.
//
// The cost of stepping u→v is the edge weight plus v's Heuristic, the same
// charge A* applies, so a Dijkstra distance equals the cost A* reports for the
// same pair of vertices.
//
// Options:
//
//	– Source:           ID of the starting vertex (required, must exist in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on costs to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: steps costing >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was never supplied.
//	– ErrNilGraph        if the provided graph pointer is nil (wraps core.ErrNilGraph).
//	– ErrVertexNotFound  if the source vertex does not exist (wraps core.ErrVertexNotFound).
//	– core.ErrNegativeWeight if a negative weight or heuristic is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = fmt.Errorf("dijkstra: %w", core.ErrNilGraph)

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = fmt.Errorf("dijkstra: source: %w", core.ErrVertexNotFound)

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every step (including free ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// MemoryMode controls how predecessor information is stored during Dijkstra's execution.
//
// MemoryModeFull    – track predecessors for every settled vertex.
// MemoryModeCompact – skip predecessor tracking unless ReturnPath is requested.
type MemoryMode int

const (
	// MemoryModeFull stores all predecessors to allow direct path recovery.
	MemoryModeFull MemoryMode = iota

	// MemoryModeCompact drops the predecessor map when the caller does not need it.
	MemoryModeCompact
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance must be ≥ 0; default +Inf (no cap).
// InfEdgeThreshold must be > 0; default +Inf (no obstacles).
type Options[K comparable] struct {
	Source           K          // The ID of the source vertex
	MemoryMode       MemoryMode // Controls how predecessors are stored (Full or Compact)
	ReturnPath       bool       // Whether to return the predecessor map
	MaxDistance      float64    // Maximum cost to explore
	InfEdgeThreshold float64    // Step cost at or above which a step is non-traversable

	hasSource bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
// Invalid values are recorded and surfaced by Dijkstra instead of panicking.
type Option[K comparable] func(*Options[K])

// WithMemoryMode sets the memory mode for storing predecessor information.
func WithMemoryMode[K comparable](mode MemoryMode) Option[K] {
	return func(o *Options[K]) {
		o.MemoryMode = mode
	}
}

// Source sets the starting vertex ID. Required.
func Source[K comparable](id K) Option[K] {
	return func(o *Options[K]) {
		o.Source = id
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath[K comparable]() Option[K] {
	return func(o *Options[K]) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum cost threshold.
// Vertices whose cheapest cost would exceed this value are not explored.
func WithMaxDistance[K comparable](limit float64) Option[K] {
	return func(o *Options[K]) {
		if limit < 0 || math.IsNaN(limit) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a step cost at or above which a step is
// considered non-traversable (treated as a wall).
func WithInfEdgeThreshold[K comparable](threshold float64) Option[K] {
	return func(o *Options[K]) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:           unset (Dijkstra fails with ErrNoSource until Source is applied).
//   - MemoryMode:       MemoryModeFull.
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (no cost limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no step treated as impassable).
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		MemoryMode:       MemoryModeFull,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
