package astar

import (
	"context"
	"math"

	"github.com/kataras/golog"
)

// Option configures Search via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds Search parameters.
type Options[K comparable] struct {
	// Ctx allows cancellation; a cancelled search fails with core.ErrIncompletePath.
	Ctx context.Context

	// Estimate is a lower bound of the remaining cost from v to goal, added to the
	// queue priority. Settled vertices are never reopened, so the estimate must be
	// consistent: Estimate(u, goal) ≤ step(u→v) + Estimate(v, goal) for every edge,
	// where step is the edge weight plus v's heuristic. An estimate that is only
	// admissible may return a path that is not the cheapest.
	// Default: 0 everywhere (uniform-cost search).
	Estimate func(v, goal K) float64

	// MaxCost stops the search once the cheapest open vertex costs more.
	MaxCost float64

	// Logger receives debug traces; defaults to golog.Default.
	Logger *golog.Logger
}

// DefaultOptions returns Options with no estimate, no cost cap and golog.Default.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:      context.Background(),
		Estimate: func(K, K) float64 { return 0 },
		MaxCost:  math.Inf(1),
		Logger:   golog.Default,
	}
}

// WithEstimate installs a goal-directed estimate.
func WithEstimate[K comparable](fn func(v, goal K) float64) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.Estimate = fn
		}
	}
}

// WithMaxCost bounds the cost the search may explore; reaching the bound
// without settling the goal is reported as core.ErrIncompletePath.
func WithMaxCost[K comparable](limit float64) Option[K] {
	return func(o *Options[K]) {
		if limit >= 0 {
			o.MaxCost = limit
		}
	}
}

// WithContext sets a cancellation context.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug traces to l.
func WithLogger[K comparable](l *golog.Logger) Option[K] {
	return func(o *Options[K]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// openItem is one entry of the open set.
type openItem[K comparable] struct {
	id       K
	priority float64 // cost so far + estimate
	seq      uint64
}

// openSet is a min-heap of *openItem ordered by priority, then push order.
type openSet[K comparable] []*openItem[K]

func (q openSet[K]) Len() int { return len(q) }

func (q openSet[K]) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q openSet[K]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openSet[K]) Push(x any) { *q = append(*q, x.(*openItem[K])) }

func (q *openSet[K]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
