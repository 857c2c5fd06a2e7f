// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; every traversal inherits that order.
//
// Concurrency:
//   - Mutations take the write lock, queries the read lock.

package core

import "fmt"

// AddVertex inserts v, or replaces the vertex with the same ID.
//
// Steps:
//  1. Auto-create every adjacency target of v that is missing from the graph.
//  2. Register v (insertion order is kept for replacements).
//  3. Set root if the graph had none.
//
// A replacement adopts v's adjacency and heuristic; edges from other vertices that
// point at v.ID stay valid because the ID is unchanged. Section stamps are
// invalidated either way: v carries no stamp and its adjacency may differ.
// Complexity: O(deg(v)).
func (g *Graph[K]) AddVertex(v *Vertex[K]) {
	if v == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, to := range v.order {
		if _, exists := g.vertices[to]; !exists && to != v.ID {
			g.insert(NewVertex(to, 0))
		}
	}
	g.insert(v)
	g.sectioned = false
}

// AddVertexID inserts an empty vertex with the given ID unless it already exists.
// Returns the live vertex.
func (g *Graph[K]) AddVertexID(id K) *Vertex[K] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if v, exists := g.vertices[id]; exists {
		return v
	}
	v := NewVertex(id, 0)
	g.insert(v)
	g.sectioned = false

	return v
}

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the live vertex for id, or ErrVertexNotFound.
func (g *Graph[K]) Vertex(id K) (*Vertex[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, exists := g.vertices[id]
	if !exists {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return v, nil
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Len returns the number of vertices.
func (g *Graph[K]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Heuristic returns the per-vertex cost of id, or ErrVertexNotFound.
func (g *Graph[K]) Heuristic(id K) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, exists := g.vertices[id]
	if !exists {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return v.Heuristic, nil
}

// SetHeuristic replaces the per-vertex cost of id.
func (g *Graph[K]) SetHeuristic(id K, h float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, exists := g.vertices[id]
	if !exists {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	v.Heuristic = h

	return nil
}

// Degree returns the outgoing degree of id.
func (g *Graph[K]) Degree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, exists := g.vertices[id]
	if !exists {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return v.Degree(), nil
}

// Root returns the default traversal start and whether one is set.
func (g *Graph[K]) Root() (K, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.root, g.hasRoot
}

// SetRoot reassigns the default traversal start.
func (g *Graph[K]) SetRoot(id K) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	g.root = id
	g.hasRoot = true

	return nil
}

// TrimVertices removes every vertex of degree 0 and returns the removed IDs.
//
// A zero-degree vertex that is still the target of another vertex's edge is kept,
// otherwise its removal would leave a dangling adjacency entry. If the root is
// removed, the first remaining vertex (insertion order) becomes root.
// Complexity: O(V + E).
func (g *Graph[K]) TrimVertices() []K {
	g.mu.Lock()
	defer g.mu.Unlock()

	targeted := make(map[K]bool, len(g.vertices))
	for _, v := range g.vertices {
		for to := range v.adjacent {
			targeted[to] = true
		}
	}

	var removed []K
	for _, id := range g.order {
		if g.vertices[id].Degree() == 0 && !targeted[id] {
			removed = append(removed, id)
		}
	}
	g.removeLocked(removed)

	return removed
}

// RemoveVertices deletes the given vertices together with every edge pointing at them.
// Unknown IDs are ignored. Returns the number of vertices removed.
// Complexity: O(V + E).
func (g *Graph[K]) RemoveVertices(ids []K) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.removeLocked(ids)
	if n > 0 {
		// removing a cut vertex may split a section
		g.sectioned = false
	}

	return n
}

// removeLocked implements RemoveVertices; the caller holds the write lock.
func (g *Graph[K]) removeLocked(ids []K) int {
	if len(ids) == 0 {
		return 0
	}
	doomed := make(map[K]bool, len(ids))
	for _, id := range ids {
		if _, exists := g.vertices[id]; exists {
			doomed[id] = true
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	// 1) Drop incoming edges of doomed vertices from the survivors.
	for id, v := range g.vertices {
		if doomed[id] {
			continue
		}
		for to := range doomed {
			v.unlink(to)
		}
	}

	// 2) Drop the vertices and compact the order slice.
	kept := g.order[:0]
	for _, id := range g.order {
		if doomed[id] {
			delete(g.vertices, id)
			continue
		}
		kept = append(kept, id)
	}
	g.order = kept

	// 3) Reassign root when it was removed.
	if g.hasRoot && doomed[g.root] {
		var zero K
		g.root, g.hasRoot = zero, false
		if len(g.order) > 0 {
			g.root, g.hasRoot = g.order[0], true
		}
	}

	return len(doomed)
}
