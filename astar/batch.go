package astar

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/navgraph/core"
)

// Query is one start/end pair for SearchMany.
type Query[K comparable] struct {
	Start, End K
}

// Outcome is the result of one Query: a Path, or the error Search returned for it.
type Outcome[K comparable] struct {
	Query Query[K]
	Path  *Path[K]
	Err   error
}

// SearchMany runs Search for every query with at most workers searches in flight
// (workers ≤ 0 means GOMAXPROCS). Outcomes are returned in query order.
//
// A failing query does not stop the others; its error is kept in its Outcome.
// The returned error is non-nil only when ctx ends before every query ran, in which
// case unstarted queries carry ctx.Err().
//
// The graph must not be mutated while SearchMany runs.
func SearchMany[K comparable](ctx context.Context, g *core.Graph[K], queries []Query[K], workers int, opts ...Option[K]) ([]Outcome[K], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome[K], len(queries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, q := range queries {
		out[i].Query = q
		if err := egCtx.Err(); err != nil {
			out[i].Err = err
			continue
		}
		eg.Go(func() error {
			qopts := append(append([]Option[K](nil), opts...), WithContext[K](egCtx))
			out[i].Path, out[i].Err = Search(g, q.Start, q.End, qopts...)
			return nil
		})
	}
	_ = eg.Wait()

	return out, ctx.Err()
}
