// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// The traversal is iterative over an explicit LIFO stack. A vertex is marked
// visited when popped; it may be pushed several times but is visited once.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the stack (duplicates bounded by E) and the session.
package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/navgraph/core"
)

// frame is one pending stack entry.
type frame[K comparable] struct {
	id        K
	depth     int
	via       core.Edge[K]
	hasParent bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[K comparable] struct {
	graph   *core.Graph[K]
	opts    DFSOptions[K]
	stack   []frame[K]
	session *core.Session[K]
	all     []K
	cursor  int
}

func prepare[K comparable](g *core.Graph[K], startID K, opts []Option[K]) (DFSOptions[K], error) {
	dopts := DefaultOptions[K]()
	// 1. Validate input graph
	if g == nil {
		return dopts, ErrGraphNil
	}
	// 2. Apply options
	for _, fn := range opts {
		fn(&dopts)
	}
	// 3. Verify startID; forest mode starts there too
	if !g.HasVertex(startID) {
		return dopts, fmt.Errorf("%w: %v", ErrStartVertexNotFound, startID)
	}

	return dopts, nil
}

func newWalker[K comparable](g *core.Graph[K], startID K, o DFSOptions[K]) *dfsWalker[K] {
	n := g.Len()
	w := &dfsWalker[K]{
		graph:   g,
		opts:    o,
		stack:   make([]frame[K], 0, n),
		session: core.NewSession[K](n),
	}
	if o.FullTraversal {
		w.all = g.Vertices()
	}
	w.stack = append(w.stack, frame[K]{id: startID})

	return w
}

func (w *dfsWalker[K]) close() {
	w.session.Reset()
	w.stack = nil
}

func (w *dfsWalker[K]) restart() bool {
	for ; w.cursor < len(w.all); w.cursor++ {
		id := w.all[w.cursor]
		if !w.session.Visited(id) && w.graph.HasVertex(id) {
			w.stack = append(w.stack, frame[K]{id: id})
			return true
		}
	}

	return false
}

// next pops until an unvisited vertex surfaces, marks it, pushes its neighbors
// and returns it. ok is false once the stack (and every restart) is exhausted.
func (w *dfsWalker[K]) next() (f frame[K], ok bool, err error) {
	for {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return f, false, w.opts.Ctx.Err()
		default:
		}

		// 2. Refill on empty stack in forest mode
		if len(w.stack) == 0 {
			if !w.opts.FullTraversal || !w.restart() {
				return f, false, nil
			}
		}

		// 3. Pop; skip stale duplicates
		f = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.session.Visited(f.id) {
			continue
		}
		w.session.SetVisited(f.id, true)

		// 4. Push neighbors in reverse so the first neighbor is explored first
		if w.opts.MaxDepth < 0 || f.depth < w.opts.MaxDepth {
			nbs, err := w.graph.Neighbors(f.id)
			if err != nil {
				return f, false, fmt.Errorf("dfs: neighbors of %v: %w", f.id, err)
			}
			for i := len(nbs) - 1; i >= 0; i-- {
				e := nbs[i]
				if w.session.Visited(e.To) {
					continue
				}
				if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e) {
					continue
				}
				w.stack = append(w.stack, frame[K]{id: e.To, depth: f.depth + 1, via: e, hasParent: true})
			}
		}

		return f, true, nil
	}
}

// DFS performs depth-first search on graph g from startID. If opts include
// WithFullTraversal, it continues into every disconnected section.
// Returns DFSResult (possibly partial) and an error if aborted by context or hook.
func DFS[K comparable](g *core.Graph[K], startID K, opts ...Option[K]) (*DFSResult[K], error) {
	dopts, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}

	// Initialize result with capacity hint
	n := g.Len()
	res := &DFSResult[K]{
		Order:  make([]K, 0, n),
		Depth:  make(map[K]int, n),
		Parent: make(map[K]K, n),
	}

	w := newWalker(g, startID, dopts)
	defer w.close()
	for {
		f, ok, err := w.next()
		if err != nil {
			return res, err
		}
		if !ok {
			return res, nil
		}
		res.Order = append(res.Order, f.id)
		res.Depth[f.id] = f.depth
		if f.hasParent {
			res.Parent[f.id] = f.via.From
		} else {
			res.Starts = append(res.Starts, f.id)
		}
		if dopts.OnVisit != nil {
			if err = dopts.OnVisit(f.id, f.depth); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %v: %w", f.id, err)
			}
		}
	}
}

// Vertices returns a lazy, restartable sequence of vertices in DFS pre-order.
// Breaking out of a range loop releases the traversal session.
func Vertices[K comparable](g *core.Graph[K], startID K, opts ...Option[K]) (iter.Seq[K], error) {
	dopts, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(K) bool) {
		w := newWalker(g, startID, dopts)
		defer w.close()
		for {
			f, ok, err := w.next()
			if err != nil || !ok || !yield(f.id) {
				return
			}
		}
	}, nil
}

// Edges returns a lazy sequence of DFS tree edges, one per visited non-start vertex.
func Edges[K comparable](g *core.Graph[K], startID K, opts ...Option[K]) (iter.Seq[core.Edge[K]], error) {
	dopts, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(core.Edge[K]) bool) {
		w := newWalker(g, startID, dopts)
		defer w.close()
		for {
			f, ok, err := w.next()
			if err != nil || !ok {
				return
			}
			if f.hasParent && !yield(f.via) {
				return
			}
		}
	}, nil
}
