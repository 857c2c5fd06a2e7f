package astar

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/navgraph/core"
)

// Path is a route found by Search. It is a chain of vertices from Start to End,
// stored as predecessor and successor links, and stays bound to the graph it was
// found in: costs and edges are read from that graph on demand.
//
// A Path is not safe for concurrent use while Intersect runs.
type Path[K comparable] struct {
	graph      *core.Graph[K]
	start, end K
	cost       float64
	prev       map[K]K // vertex → predecessor (absent for start)
	next       map[K]K // vertex → successor (absent for end)
}

// newPath extracts the start→end chain from a search's predecessor map.
func newPath[K comparable](g *core.Graph[K], start, end K, searchPrev map[K]K, cost float64) *Path[K] {
	p := &Path[K]{
		graph: g,
		start: start,
		end:   end,
		cost:  cost,
		prev:  make(map[K]K),
		next:  make(map[K]K),
	}
	for cur := end; cur != start; {
		from := searchPrev[cur]
		p.prev[cur] = from
		p.next[from] = cur
		cur = from
	}

	return p
}

// Start returns the first vertex.
func (p *Path[K]) Start() K { return p.start }

// End returns the last vertex.
func (p *Path[K]) End() K { return p.end }

// Cost returns the total cost: every edge weight plus the heuristic of every
// vertex entered after Start.
func (p *Path[K]) Cost() float64 { return p.cost }

// Graph returns the graph the path was found in.
func (p *Path[K]) Graph() *core.Graph[K] { return p.graph }

// Contains reports whether k lies on the path.
func (p *Path[K]) Contains(k K) bool {
	if k == p.start {
		return true
	}
	_, ok := p.prev[k]

	return ok
}

// Predecessor returns the vertex before k.
func (p *Path[K]) Predecessor(k K) (K, error) {
	var zero K
	if !p.Contains(k) {
		return zero, fmt.Errorf("%w: %v", core.ErrNotOnPath, k)
	}
	if k == p.start {
		return zero, fmt.Errorf("%w: %v is the start", core.ErrEndOfPath, k)
	}

	return p.prev[k], nil
}

// Next returns the vertex after k.
func (p *Path[K]) Next(k K) (K, error) {
	var zero K
	if !p.Contains(k) {
		return zero, fmt.Errorf("%w: %v", core.ErrNotOnPath, k)
	}
	if k == p.end {
		return zero, fmt.Errorf("%w: %v", core.ErrEndOfPath, k)
	}

	return p.next[k], nil
}

// NextN steps forward up to steps times, stopping early at End. It returns the
// vertex reached and the number of steps actually taken.
func (p *Path[K]) NextN(k K, steps int) (K, int, error) {
	if !p.Contains(k) {
		return k, 0, fmt.Errorf("%w: %v", core.ErrNotOnPath, k)
	}
	taken := 0
	for ; taken < steps && k != p.end; taken++ {
		k = p.next[k]
	}

	return k, taken, nil
}

// NextCost steps forward while the heuristic of the next vertex fits in what is
// left of maxCost. It returns the vertex reached, the cost consumed and the steps taken.
// A negative or NaN maxCost is core.ErrInvalidRequest.
func (p *Path[K]) NextCost(k K, maxCost float64) (K, float64, int, error) {
	if !p.Contains(k) {
		return k, 0, 0, fmt.Errorf("%w: %v", core.ErrNotOnPath, k)
	}
	if !(maxCost >= 0) {
		return k, 0, 0, fmt.Errorf("%w: budget %v", core.ErrInvalidRequest, maxCost)
	}
	used, taken := 0.0, 0
	for k != p.end {
		nxt := p.next[k]
		h, err := p.graph.Heuristic(nxt)
		if err != nil {
			return k, used, taken, err
		}
		if used+h > maxCost {
			break
		}
		used += h
		taken++
		k = nxt
	}

	return k, used, taken, nil
}

// span checks that from and to are on the path with from not after to.
func (p *Path[K]) span(from, to K) error {
	for _, k := range []K{from, to} {
		if !p.Contains(k) {
			return fmt.Errorf("%w: %v", core.ErrNotOnPath, k)
		}
	}
	for cur := from; cur != to; cur = p.next[cur] {
		if cur == p.end {
			return fmt.Errorf("%w: %v comes after %v on the path", core.ErrInvalidRequest, from, to)
		}
	}

	return nil
}

// Length returns the number of vertices from from to to, both included.
func (p *Path[K]) Length(from, to K) (int, error) {
	if err := p.span(from, to); err != nil {
		return 0, err
	}
	n := 1
	for cur := from; cur != to; cur = p.next[cur] {
		n++
	}

	return n, nil
}

// Vertices returns a restartable sequence of the vertices from from to to, both included.
func (p *Path[K]) Vertices(from, to K) (iter.Seq[K], error) {
	if err := p.span(from, to); err != nil {
		return nil, err
	}

	return func(yield func(K) bool) {
		for cur := from; ; cur = p.next[cur] {
			if !yield(cur) || cur == to {
				return
			}
		}
	}, nil
}

// Edges returns a restartable sequence of the graph edges from from to to.
func (p *Path[K]) Edges(from, to K) (iter.Seq[core.Edge[K]], error) {
	if err := p.span(from, to); err != nil {
		return nil, err
	}

	return func(yield func(core.Edge[K]) bool) {
		for cur := from; cur != to; cur = p.next[cur] {
			if !yield(p.graph.Edge(cur, p.next[cur])) {
				return
			}
		}
	}, nil
}

// All is Vertices(Start, End).
func (p *Path[K]) All() iter.Seq[K] {
	seq, _ := p.Vertices(p.start, p.end)
	return seq
}

// AllEdges is Edges(Start, End).
func (p *Path[K]) AllEdges() iter.Seq[core.Edge[K]] {
	seq, _ := p.Edges(p.start, p.end)
	return seq
}

// Intersect collapses every vertex strictly between left and right into a single
// edge left→right whose weight is the sum of the bypassed edge weights and
// intermediate heuristics. The graph edge is written (and mirrored on a symmetric
// graph) and the intermediates leave the path; Cost is unchanged. The bypassed
// vertices stay in the graph.
func (p *Path[K]) Intersect(left, right K) error {
	if err := p.span(left, right); err != nil {
		return err
	}
	if left == right || p.next[left] == right {
		return nil
	}

	var (
		weight float64
		inner  []K
	)
	for cur := left; cur != right; cur = p.next[cur] {
		nxt := p.next[cur]
		e := p.graph.Edge(cur, nxt)
		if !e.IsValid() {
			return fmt.Errorf("%w: %v→%v", core.ErrEdgeNotFound, cur, nxt)
		}
		weight += e.Weight
		if nxt != right {
			h, err := p.graph.Heuristic(nxt)
			if err != nil {
				return err
			}
			weight += h
			inner = append(inner, nxt)
		}
	}
	if err := p.graph.AddEdge(left, right, weight); err != nil {
		return err
	}
	for _, k := range inner {
		delete(p.prev, k)
		delete(p.next, k)
	}
	p.next[left] = right
	p.prev[right] = left

	return nil
}

// ToGraph materializes the path as a standalone directed graph rooted at Start,
// carrying the original edge weights and heuristics.
func (p *Path[K]) ToGraph() (*core.Graph[K], error) {
	out, err := core.NewGraphFromPredecessors(p.prev, func(from, to K) float64 {
		return p.graph.Edge(from, to).Weight
	}, core.WithRoot(p.start))
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	for id := range p.All() {
		h, err := p.graph.Heuristic(id)
		if err != nil {
			return nil, err
		}
		if err = out.SetHeuristic(id, h); err != nil {
			return nil, err
		}
	}

	return out, nil
}
