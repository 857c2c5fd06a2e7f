// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption and the NewGraph constructor.
// Concurrency:
//   - Graph guards its vertex catalog, adjacency and section stamps with one sync.RWMutex.
//   - Vertex values handed out by Graph.Vertex are live; treat them as read-only.

package core

import (
	"math"
	"sync"
)

// Vertex is a node of a Graph identified by a comparable key.
//
// Heuristic is an additive per-vertex cost charged whenever a search enters
// the vertex (terrain cost, danger, congestion...). It defaults to 0.
// Outgoing edges live in an insertion-ordered adjacency map.
type Vertex[K comparable] struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID K

	// Heuristic is added to the weight of every edge entering this vertex.
	Heuristic float64

	adjacent map[K]float64 // neighbor ID → edge weight
	order    []K           // neighbor IDs in first-insertion order
	section  string        // section stamp, "" when never analyzed
}

// NewVertex returns a detached vertex with no edges.
// Attach it to a graph with Graph.AddVertex.
func NewVertex[K comparable](id K, heuristic float64) *Vertex[K] {
	return &Vertex[K]{
		ID:        id,
		Heuristic: heuristic,
		adjacent:  make(map[K]float64),
	}
}

// Degree returns the number of outgoing adjacency entries (self-loops count once).
func (v *Vertex[K]) Degree() int { return len(v.adjacent) }

// Weight returns the weight of the edge v→to and whether it exists.
func (v *Vertex[K]) Weight(to K) (float64, bool) {
	w, ok := v.adjacent[to]

	return w, ok
}

// Section returns the section stamp written by the last section detection,
// or "" if the vertex was never analyzed.
func (v *Vertex[K]) Section() string { return v.section }

// NeighborIDs returns a copy of the outgoing neighbor IDs in insertion order.
func (v *Vertex[K]) NeighborIDs() []K {
	out := make([]K, len(v.order))
	copy(out, v.order)

	return out
}

// link sets v→to = w, keeping the order slice free of duplicates.
func (v *Vertex[K]) link(to K, w float64) {
	if v.adjacent == nil {
		v.adjacent = make(map[K]float64)
	}
	if _, exists := v.adjacent[to]; !exists {
		v.order = append(v.order, to)
	}
	v.adjacent[to] = w
}

// unlink removes v→to and reports whether it existed.
func (v *Vertex[K]) unlink(to K) bool {
	if _, exists := v.adjacent[to]; !exists {
		return false
	}
	delete(v.adjacent, to)
	for i, id := range v.order {
		if id == to {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}

	return true
}

// Edge describes a directed weighted connection From→To.
//
// Edge is an immutable value. The zero-endpoint, NaN-weight sentinel returned by
// InvalidEdge marks "no such edge"; IsValid reports whether the weight is finite.
type Edge[K comparable] struct {
	// From is the source vertex ID.
	From K

	// To is the destination vertex ID.
	To K

	// Weight is the traversal cost of the edge.
	Weight float64
}

// InvalidEdge returns the canonical invalid edge: zero endpoints, NaN weight.
func InvalidEdge[K comparable]() Edge[K] {
	return Edge[K]{Weight: math.NaN()}
}

// IsValid reports whether e carries a finite weight.
func (e Edge[K]) IsValid() bool {
	return !math.IsNaN(e.Weight) && !math.IsInf(e.Weight, 0)
}

// Equal compares endpoints only; weights are ignored.
func (e Edge[K]) Equal(other Edge[K]) bool {
	return e.From == other.From && e.To == other.To
}

// Reverse returns the edge To→From with the same weight.
func (e Edge[K]) Reverse() Edge[K] {
	return Edge[K]{From: e.To, To: e.From, Weight: e.Weight}
}

// Mode selects the frontier discipline of a traversal.
type Mode int

const (
	// BreadthFirst explores with a FIFO queue.
	BreadthFirst Mode = iota
	// DepthFirst explores with a LIFO stack.
	DepthFirst
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return "unknown"
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption[K comparable] func(g *Graph[K])

// WithSymmetric makes every AddEdge(from, to, w) also write to→from.
// Without it the graph is directed and callers mirror edges themselves.
func WithSymmetric[K comparable]() GraphOption[K] {
	return func(g *Graph[K]) { g.symmetric = true }
}

// WithRoot pre-creates the vertex root and marks it as the traversal root.
func WithRoot[K comparable](root K) GraphOption[K] {
	return func(g *Graph[K]) {
		g.insert(NewVertex(root, 0))
		g.root = root
		g.hasRoot = true
	}
}

// Graph is the weighted, directed pathfinding graph.
//
// Vertices are owned exclusively by the Graph; adjacency targets always name
// vertices of the same graph. root is the first vertex added unless reassigned
// and serves as the default traversal start.
type Graph[K comparable] struct {
	mu sync.RWMutex // guards every field below

	symmetric bool // mirror every AddEdge

	vertices map[K]*Vertex[K] // vertex ID → Vertex
	order    []K              // vertex IDs in insertion order

	root    K
	hasRoot bool

	// sectioned is true while section stamps reflect the current connectivity.
	sectioned bool
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(len(opts)).
func NewGraph[K comparable](opts ...GraphOption[K]) *Graph[K] {
	g := &Graph[K]{
		vertices: make(map[K]*Vertex[K]),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// insert registers v without locking; the caller holds mu (or owns g exclusively).
func (g *Graph[K]) insert(v *Vertex[K]) {
	if _, exists := g.vertices[v.ID]; !exists {
		g.order = append(g.order, v.ID)
	}
	if v.adjacent == nil {
		v.adjacent = make(map[K]float64)
	}
	g.vertices[v.ID] = v
	if !g.hasRoot {
		g.root = v.ID
		g.hasRoot = true
	}
}
