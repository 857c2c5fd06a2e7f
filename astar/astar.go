// Package astar finds the cheapest route between two vertices of a core.Graph and
// returns it as a navigable Path.
//
// Entering a vertex costs the weight of the edge used plus the vertex's Heuristic.
// An optional Estimate steers the queue toward the goal.
//
// Preconditions, checked in order:
//  1. start and end exist                      (core.ErrVertexNotFound)
//  2. the graph has ≥ 2 vertices, start ≠ end  (core.ErrInvalidRequest)
//  3. with current section stamps, start and end share a section (core.ErrDisjointGraph)
//  4. no negative weight or heuristic          (core.ErrNegativeWeight)
//
// Outcomes: a Path on success; core.ErrDisjointGraph when the frontier runs dry or
// only unreachable (infinite priority) vertices remain; core.ErrIncompletePath when
// MaxCost or the context stops the search first. A partial Path is never returned.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/dijkstra"
)

// Search runs A* from start to end.
func Search[K comparable](g *core.Graph[K], start, end K, opts ...Option[K]) (*Path[K], error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	s := &searcher[K]{
		g:       g,
		end:     end,
		opts:    o,
		session: core.NewSession[K](g.Len()),
		prev:    make(map[K]K),
	}
	defer s.session.Reset()
	o.Logger.Debugf("astar: session %s: %v → %v", s.session.ID, start, end)

	if err := s.run(start); err != nil {
		o.Logger.Debugf("astar: session %s: %v", s.session.ID, err)
		return nil, err
	}
	p := newPath(g, start, end, s.prev, s.session.AggregateCost(end))
	o.Logger.Debugf("astar: session %s: cost %g over %d settled vertices",
		s.session.ID, p.Cost(), s.session.VisitedCount())

	return p, nil
}

// validate applies the preconditions in their documented order.
func validate[K comparable](g *core.Graph[K], start, end K) error {
	if g == nil {
		return core.ErrNilGraph
	}
	for _, id := range []K{start, end} {
		if !g.HasVertex(id) {
			return fmt.Errorf("astar: %w: %v", core.ErrVertexNotFound, id)
		}
	}
	if g.Len() < 2 {
		return fmt.Errorf("astar: %w: graph has %d vertices", core.ErrInvalidRequest, g.Len())
	}
	if start == end {
		return fmt.Errorf("astar: %w: start equals end (%v)", core.ErrInvalidRequest, start)
	}
	if g.SectionsValid() {
		a, _ := g.Section(start)
		b, _ := g.Section(end)
		if a != b {
			return fmt.Errorf("astar: %w: %v in section %q, %v in section %q",
				core.ErrDisjointGraph, start, a, end, b)
		}
	}
	if err := dijkstra.CheckNonNegative(g); err != nil {
		return fmt.Errorf("astar: %w", err)
	}

	return nil
}

// searcher holds the mutable state of one search.
type searcher[K comparable] struct {
	g       *core.Graph[K]
	end     K
	opts    Options[K]
	session *core.Session[K] // visited = closed set, aggregate cost = g-score
	prev    map[K]K
	open    openSet[K]
	seq     uint64
}

func (s *searcher[K]) push(id K, cost float64) {
	heap.Push(&s.open, &openItem[K]{id: id, priority: cost + s.opts.Estimate(id, s.end), seq: s.seq})
	s.seq++
}

// run drives the main loop until end is settled or the search fails.
func (s *searcher[K]) run(start K) error {
	s.session.SetAggregateCost(start, 0)
	s.push(start, 0)

	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(*openItem[K])
		u := item.id
		if s.session.Visited(u) {
			continue // stale entry
		}
		if math.IsInf(item.priority, 1) || math.IsNaN(item.priority) {
			return fmt.Errorf("astar: %w: %v has infinite priority", core.ErrDisjointGraph, u)
		}
		if u == s.end {
			return nil
		}
		if err := s.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("astar: %w: %w", core.ErrIncompletePath, err)
		}
		cost := s.session.AggregateCost(u)
		if cost > s.opts.MaxCost {
			return fmt.Errorf("astar: %w: cost %g exceeds limit %g at %v",
				core.ErrIncompletePath, cost, s.opts.MaxCost, u)
		}
		s.session.SetVisited(u, true)
		if err := s.relax(u, cost); err != nil {
			return err
		}
	}

	return fmt.Errorf("astar: %w: frontier exhausted before %v", core.ErrDisjointGraph, s.end)
}

// relax updates every open neighbor of u. On an exact cost tie the predecessor
// with the strictly lower recorded cost wins.
func (s *searcher[K]) relax(u K, cost float64) error {
	neighbors, err := s.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %v: %w", u, err)
	}
	for _, e := range neighbors {
		v := e.To
		if s.session.Visited(v) {
			continue
		}
		h, err := s.g.Heuristic(v)
		if err != nil {
			return fmt.Errorf("astar: %w", err)
		}
		cand := cost + e.Weight + h
		switch {
		case !s.session.HasAggregateCost(v) || cand < s.session.AggregateCost(v):
			s.session.SetAggregateCost(v, cand)
			s.prev[v] = u
			s.push(v, cand)
		case cand == s.session.AggregateCost(v):
			if p, ok := s.prev[v]; ok && cost < s.session.AggregateCost(p) {
				s.prev[v] = u
			}
		}
	}

	return nil
}
