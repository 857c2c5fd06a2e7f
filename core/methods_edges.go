// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeBoth/RemoveEdge/Edge/Edges/Neighbors,
//       plus RemoveSelfPaths.
// Determinism:
//   - Edges() and Neighbors() follow vertex insertion order, then neighbor insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge sets the directed adjacency entry from→to = weight.
//
// Steps:
//  1. Reject NaN/±Inf weights (ErrBadWeight).
//  2. Auto-create missing endpoints so no adjacency entry ever dangles.
//  3. Write from→to (last write wins); mirror to→from on symmetric graphs.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrBadWeight, from, to, weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.linkLocked(from, to, weight)
	if g.symmetric && from != to {
		g.linkLocked(to, from, weight)
	}

	return nil
}

// AddEdgeBoth writes a→b and b→a with the same weight regardless of WithSymmetric.
func (g *Graph[K]) AddEdgeBoth(a, b K, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v↔%v weight=%v", ErrBadWeight, a, b, weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.linkLocked(a, b, weight)
	if a != b {
		g.linkLocked(b, a, weight)
	}

	return nil
}

// linkLocked writes from→to, creating endpoints as needed; the caller holds mu.
// Section stamps survive only when the edge joins two vertices of the same section.
func (g *Graph[K]) linkLocked(from, to K, weight float64) {
	src, okFrom := g.vertices[from]
	if !okFrom {
		src = NewVertex(from, 0)
		g.insert(src)
	}
	dst, okTo := g.vertices[to]
	if !okTo {
		dst = NewVertex(to, 0)
		g.insert(dst)
	}
	if !okFrom || !okTo || src.section == "" || src.section != dst.section {
		g.sectioned = false
	}
	src.link(to, weight)
}

// RemoveEdge deletes the directed entry from→to.
// Returns ErrVertexNotFound if from is missing, ErrEdgeNotFound if the entry is absent.
func (g *Graph[K]) RemoveEdge(from, to K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.vertices[from]
	if !exists {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, from)
	}
	if !v.unlink(to) {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	g.sectioned = false

	return nil
}

// HasEdge reports whether the entry from→to exists.
func (g *Graph[K]) HasEdge(from, to K) bool {
	return g.Edge(from, to).IsValid()
}

// Edge returns the edge from→to, or InvalidEdge when it does not exist.
// Complexity: O(1).
func (g *Graph[K]) Edge(from, to K) Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, exists := g.vertices[from]
	if !exists {
		return InvalidEdge[K]()
	}
	w, ok := v.adjacent[to]
	if !ok {
		return InvalidEdge[K]()
	}

	return Edge[K]{From: from, To: to, Weight: w}
}

// Neighbors returns the outgoing edges of id in neighbor insertion order.
// Complexity: O(deg(id)).
func (g *Graph[K]) Neighbors(id K) ([]Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, exists := g.vertices[id]
	if !exists {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	out := make([]Edge[K], 0, len(v.order))
	for _, to := range v.order {
		out = append(out, Edge[K]{From: id, To: to, Weight: v.adjacent[to]})
	}

	return out, nil
}

// Edges returns every directed adjacency entry of g.
// Complexity: O(V + E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge[K]
	for _, id := range g.order {
		v := g.vertices[id]
		for _, to := range v.order {
			out = append(out, Edge[K]{From: id, To: to, Weight: v.adjacent[to]})
		}
	}

	return out
}

// EdgeCount returns the number of directed adjacency entries.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, v := range g.vertices {
		n += len(v.adjacent)
	}

	return n
}

// RemoveSelfPaths drops zero-weight self-loops and returns how many were removed.
// Self-loops with a non-zero weight are kept.
func (g *Graph[K]) RemoveSelfPaths() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for id, v := range g.vertices {
		if w, ok := v.adjacent[id]; ok && w == 0 {
			v.unlink(id)
			removed++
		}
	}

	return removed
}
