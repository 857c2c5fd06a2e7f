// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order,
// either eagerly (BFS) or as lazy sequences (Vertices, Edges).
//
// A vertex is marked visited when it is dequeued, not when it is enqueued:
// it may sit in the queue several times, but it is visited and yielded once.
package bfs

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/navgraph/core"
)

// queueItem pairs a vertex ID with its BFS depth and the edge that reached it.
type queueItem[K comparable] struct {
	id        K
	depth     int
	via       core.Edge[K] // incoming tree edge; meaningless when !hasParent
	hasParent bool
}

// walker encapsulates mutable BFS state for one traversal.
type walker[K comparable] struct {
	graph   *core.Graph[K]
	opts    BFSOptions[K]
	ctx     context.Context
	queue   []queueItem[K]
	session *core.Session[K]

	// restart cursor over all vertices (IncludeAll)
	all    []K
	cursor int
}

// prepare validates input and folds options; shared by every entry point.
func prepare[K comparable](g *core.Graph[K], startID K, opts []Option[K]) (BFSOptions[K], error) {
	o := DefaultOptions[K]()
	if g == nil {
		return o, ErrGraphNil
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if !g.HasVertex(startID) {
		return o, fmt.Errorf("%w: %v", ErrStartVertexNotFound, startID)
	}

	return o, nil
}

// newWalker allocates a walker with a fresh session seeded at startID.
func newWalker[K comparable](g *core.Graph[K], startID K, o BFSOptions[K]) *walker[K] {
	n := g.Len()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		session: core.NewSession[K](n),
	}
	if o.IncludeAll {
		w.all = g.Vertices()
	}
	w.enqueue(queueItem[K]{id: startID})

	return w
}

// close releases the session state; called on every exit path.
func (w *walker[K]) close() {
	w.session.Reset()
	w.queue = nil
}

// enqueue calls OnEnqueue and appends item to the queue.
func (w *walker[K]) enqueue(item queueItem[K]) {
	w.opts.OnEnqueue(item.id, item.depth)
	w.queue = append(w.queue, item)
}

// restart seeds the queue with the next unvisited vertex; false when none is left.
func (w *walker[K]) restart() bool {
	for ; w.cursor < len(w.all); w.cursor++ {
		id := w.all[w.cursor]
		if !w.session.Visited(id) && w.graph.HasVertex(id) {
			w.enqueue(queueItem[K]{id: id})
			return true
		}
	}

	return false
}

// next returns the next vertex to visit, already marked visited and with its
// neighbors enqueued. ok is false when the traversal is exhausted.
func (w *walker[K]) next() (item queueItem[K], ok bool, err error) {
	for {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return item, false, w.ctx.Err()
		default:
		}

		if len(w.queue) == 0 {
			if !w.opts.IncludeAll || !w.restart() {
				return item, false, nil
			}
		}
		item = w.queue[0]
		w.queue = w.queue[1:]
		if w.session.Visited(item.id) {
			continue // stale duplicate
		}
		w.session.SetVisited(item.id, true)
		if err = w.enqueueNeighbors(item); err != nil {
			return item, false, err
		}

		return item, true, nil
	}
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues every
// neighbor that has not been visited yet.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.id, err)
	}
	for _, e := range neighbors {
		if w.session.Visited(e.To) || !w.opts.FilterNeighbor(e) {
			continue
		}
		w.enqueue(queueItem[K]{id: e.To, depth: nextDepth, via: e, hasParent: true})
	}

	return nil
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// The partial result is returned alongside hook and context errors.
func BFS[K comparable](g *core.Graph[K], startID K, opts ...Option[K]) (*BFSResult[K], error) {
	o, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}

	w := newWalker(g, startID, o)
	defer w.close()

	n := g.Len()
	res := &BFSResult[K]{
		Order:  make([]K, 0, n),
		Depth:  make(map[K]int, n),
		Parent: make(map[K]K, n),
	}
	for {
		item, ok, err := w.next()
		if err != nil {
			return res, err
		}
		if !ok {
			return res, nil
		}
		res.Order = append(res.Order, item.id)
		res.Depth[item.id] = item.depth
		if item.hasParent {
			res.Parent[item.id] = item.via.From
		} else {
			res.Starts = append(res.Starts, item.id)
		}
		if err = o.OnVisit(item.id, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
	}
}

// Vertices returns a lazy, finite, forward-only sequence of vertices in BFS order.
//
// Every range over the sequence starts a fresh traversal with its own session, so
// the sequence is restartable. Breaking out of the loop early releases the session
// immediately. Cancellation or a structural change mid-walk ends the sequence.
func Vertices[K comparable](g *core.Graph[K], startID K, opts ...Option[K]) (iter.Seq[K], error) {
	o, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(K) bool) {
		w := newWalker(g, startID, o)
		defer w.close()
		for {
			item, ok, err := w.next()
			if err != nil || !ok {
				return
			}
			if !yield(item.id) {
				return
			}
		}
	}, nil
}

// Edges returns a lazy sequence of BFS tree edges: for every visited vertex other
// than a traversal start, the edge through which it was first visited.
func Edges[K comparable](g *core.Graph[K], startID K, opts ...Option[K]) (iter.Seq[core.Edge[K]], error) {
	o, err := prepare(g, startID, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(core.Edge[K]) bool) {
		w := newWalker(g, startID, o)
		defer w.close()
		for {
			item, ok, err := w.next()
			if err != nil || !ok {
				return
			}
			if !item.hasParent {
				continue
			}
			if !yield(item.via) {
				return
			}
		}
	}, nil
}
