// Package walk enumerates a core.Graph in a caller-chosen core.Mode.
//
// The mode is an explicit argument of every call; nothing about the enumeration
// is stored on the graph, so interleaved walks in different modes never observe
// each other.
package walk

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/navgraph/bfs"
	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/dfs"
)

// ErrUnknownMode is returned for a core.Mode other than BreadthFirst or DepthFirst.
var ErrUnknownMode = errors.New("walk: unknown enumeration mode")

// ParseMode maps "bfs"/"dfs" (as printed by core.Mode.String) to a core.Mode.
func ParseMode(s string) (core.Mode, error) {
	for _, m := range []core.Mode{core.BreadthFirst, core.DepthFirst} {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Option configures a walk independently of the key type.
type Option func(*options)

type options struct {
	ctx        context.Context
	includeAll bool
	maxDepth   int
}

// WithIncludeAll continues into every section once the start's section is exhausted.
func WithIncludeAll() Option {
	return func(o *options) { o.includeAll = true }
}

// WithContext stops the walk when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth bounds the hop distance from the start (0 = unlimited).
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d >= 0 {
			o.maxDepth = d
		}
	}
}

func build(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func bfsOptions[K comparable](o options) []bfs.Option[K] {
	out := []bfs.Option[K]{bfs.WithContext[K](o.ctx), bfs.WithMaxDepth[K](o.maxDepth)}
	if o.includeAll {
		out = append(out, bfs.WithIncludeAll[K]())
	}

	return out
}

func dfsOptions[K comparable](o options) []dfs.Option[K] {
	out := []dfs.Option[K]{dfs.WithContext[K](o.ctx)}
	if o.maxDepth > 0 {
		out = append(out, dfs.WithMaxDepth[K](o.maxDepth))
	}
	if o.includeAll {
		out = append(out, dfs.WithFullTraversal[K]())
	}

	return out
}

// Vertices enumerates vertices reachable from start in the given mode.
func Vertices[K comparable](g *core.Graph[K], mode core.Mode, start K, opts ...Option) (iter.Seq[K], error) {
	o := build(opts)
	switch mode {
	case core.BreadthFirst:
		return bfs.Vertices(g, start, bfsOptions[K](o)...)
	case core.DepthFirst:
		return dfs.Vertices(g, start, dfsOptions[K](o)...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
}

// Edges enumerates the traversal tree edges from start in the given mode.
func Edges[K comparable](g *core.Graph[K], mode core.Mode, start K, opts ...Option) (iter.Seq[core.Edge[K]], error) {
	o := build(opts)
	switch mode {
	case core.BreadthFirst:
		return bfs.Edges(g, start, bfsOptions[K](o)...)
	case core.DepthFirst:
		return dfs.Edges(g, start, dfsOptions[K](o)...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
}

// FromRoot enumerates vertices starting at g.Root(). A graph without a root
// yields an empty sequence.
func FromRoot[K comparable](g *core.Graph[K], mode core.Mode, opts ...Option) (iter.Seq[K], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	root, ok := g.Root()
	if !ok {
		return func(func(K) bool) {}, nil
	}

	return Vertices(g, mode, root, opts...)
}

// EdgesFromRoot is FromRoot for tree edges.
func EdgesFromRoot[K comparable](g *core.Graph[K], mode core.Mode, opts ...Option) (iter.Seq[core.Edge[K]], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	root, ok := g.Root()
	if !ok {
		return func(func(core.Edge[K]) bool) {}, nil
	}

	return Edges(g, mode, root, opts...)
}

// Traces returns the edge trace of a full-coverage breadth-first walk from the
// root, for debug overlays. It yields the same edges as
// bfs.Edges(g, root, bfs.WithIncludeAll()).
func Traces[K comparable](g *core.Graph[K]) iter.Seq[core.Edge[K]] {
	seq, err := EdgesFromRoot(g, core.BreadthFirst, WithIncludeAll())
	if err != nil {
		return func(func(core.Edge[K]) bool) {}
	}

	return seq
}
