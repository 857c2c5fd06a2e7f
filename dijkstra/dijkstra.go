// Package dijkstra implements Dijkstra's cost search on a core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), lazy decrease-key keeps up to E entries in the heap.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges and heuristics (O(V+E)) fails fast on negative costs.
//   - Any step costing ≥ InfEdgeThreshold is an impassable wall.
//   - Exploration stops once the minimum cost in the heap exceeds MaxDistance.
//   - Heap ties resolve by push order, so results are deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
)

// Dijkstra computes the cheapest cost from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum cost (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath is set (nil otherwise). Only reached,
//     non-source vertices have an entry.
//   - err:  invalid input or a negative weight/heuristic.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be supplied (ErrNoSource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge weight or heuristic may be negative (ErrNegativeWeight).
func Dijkstra[K comparable](g *core.Graph[K], opts ...Option[K]) (map[K]float64, map[K]K, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, cfg.Source)
	}
	if err := CheckNonNegative(g); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 2) Run.
	r := newRunner(g, cfg)
	defer r.session.Reset()
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Affordable returns every vertex reachable from start with a total cost of at
// most budget, mapped to that cost. start itself is included at cost 0.
func Affordable[K comparable](g *core.Graph[K], start K, budget float64) (map[K]float64, error) {
	dist, _, err := Dijkstra(g, Source(start), WithMaxDistance[K](budget), WithMemoryMode[K](MemoryModeCompact))
	if err != nil {
		return nil, err
	}
	out := make(map[K]float64, len(dist))
	for id, d := range dist {
		if d <= budget {
			out[id] = d
		}
	}

	return out, nil
}

// CheckNonNegative reports the first negative edge weight or vertex heuristic of g
// as core.ErrNegativeWeight. Shared with package astar.
func CheckNonNegative[K comparable](g *core.Graph[K]) error {
	for _, id := range g.Vertices() {
		h, err := g.Heuristic(id)
		if err != nil {
			return err
		}
		if h < 0 || math.IsNaN(h) {
			return fmt.Errorf("%w: heuristic of %v is %v", core.ErrNegativeWeight, id, h)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", core.ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[K comparable] struct {
	g       *core.Graph[K]   // The input graph; read-only within Dijkstra.
	options Options[K]       // Configuration options (Source, thresholds, etc.).
	dist    map[K]float64    // Maps vertex ID → current best cost from Source.
	prev    map[K]K          // Maps vertex ID → predecessor on the cheapest path.
	session *core.Session[K] // Settled flags.
	pq      nodePQ[K]        // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64           // push counter for tie-breaking
}

func newRunner[K comparable](g *core.Graph[K], cfg Options[K]) *runner[K] {
	n := g.Len()
	r := &runner[K]{
		g:       g,
		options: cfg,
		dist:    make(map[K]float64, n),
		session: core.NewSession[K](n),
		pq:      make(nodePQ[K], 0, n),
	}
	if cfg.ReturnPath || cfg.MemoryMode == MemoryModeFull {
		r.prev = make(map[K]K, n)
	}

	return r
}

// init sets dist[v] = +Inf for all v, dist[Source] = 0 and seeds the heap.
func (r *runner[K]) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner[K]) push(id K, cost float64) {
	heap.Push(&r.pq, &nodeItem[K]{id: id, dist: cost, seq: r.seq})
	r.seq++
}

// process is the core loop: extract the cheapest unsettled vertex, relax its edges.
// Terminates when the heap is empty or its minimum exceeds MaxDistance.
func (r *runner[K]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[K])
		if r.session.Visited(item.id) {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.session.SetVisited(item.id, true)
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the cost of every neighbor of the settled vertex u.
func (r *runner[K]) relax(u K) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}
	for _, e := range neighbors {
		h, err := r.g.Heuristic(e.To)
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		step := e.Weight + h
		if step >= r.options.InfEdgeThreshold {
			continue // wall
		}
		cand := r.dist[u] + step
		if cand > r.options.MaxDistance || cand >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = cand
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, cand)
	}

	return nil
}

// nodeItem represents a vertex and its tentative cost from the source.
type nodeItem[K comparable] struct {
	id   K
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
type nodePQ[K comparable] []*nodeItem[K]

func (pq nodePQ[K]) Len() int { return len(pq) }

func (pq nodePQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[K]) Push(x any) { *pq = append(*pq, x.(*nodeItem[K])) }

func (pq *nodePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
