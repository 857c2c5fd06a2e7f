// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: alternate constructors, configuration getters, section
//       bookkeeping and the Stats snapshot.
// Policy:
//   - No algorithms here; traversal and search live in their own packages.

package core

import "fmt"

// NewGraphFromPredecessors builds a graph from a predecessor map, adding one directed
// edge prev[v]→v per entry. weight supplies the edge cost; nil means unit weights.
//
// Typical input is the predecessor map of a finished search, which turns the
// search tree (or a single path) into a standalone graph.
// Complexity: O(len(prev)).
func NewGraphFromPredecessors[K comparable](prev map[K]K, weight func(from, to K) float64, opts ...GraphOption[K]) (*Graph[K], error) {
	g := NewGraph(opts...)
	for to, from := range prev {
		w := 1.0
		if weight != nil {
			w = weight(from, to)
		}
		if err := g.AddEdge(from, to, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Symmetric reports whether AddEdge mirrors every edge.
func (g *Graph[K]) Symmetric() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.symmetric
}

// Asymmetric returns every edge from→to whose mirror to→from is missing.
// Section detection and reachability queries follow outgoing edges only, so an
// empty result is what makes their answers symmetric.
// Complexity: O(V + E).
func (g *Graph[K]) Asymmetric() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge[K]
	for _, id := range g.order {
		v := g.vertices[id]
		for _, to := range v.order {
			if _, ok := g.vertices[to].adjacent[id]; !ok {
				out = append(out, Edge[K]{From: id, To: to, Weight: v.adjacent[to]})
			}
		}
	}

	return out
}

// SetSections stamps section IDs onto vertices and marks the stamps as current.
// Vertices missing from stamps get "" (unanalyzed).
func (g *Graph[K]) SetSections(stamps map[K]string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, v := range g.vertices {
		v.section = stamps[id]
	}
	g.sectioned = true
}

// Section returns the section stamp of id.
func (g *Graph[K]) Section(id K) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, exists := g.vertices[id]
	if !exists {
		return "", fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return v.section, nil
}

// SectionsValid reports whether section stamps still describe the current connectivity.
// Any mutation that may join or split sections clears the flag.
func (g *Graph[K]) SectionsValid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sectioned
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int  // number of vertices
	EdgeCount     int  // number of directed adjacency entries
	SelfLoops     int  // adjacency entries v→v
	Isolated      int  // vertices with no outgoing edges
	Symmetric     bool // WithSymmetric policy
	SectionsValid bool // section stamps are current
}

// Stats returns a snapshot of counts and policies.
// Complexity: O(V + E).
func (g *Graph[K]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount:   len(g.vertices),
		Symmetric:     g.symmetric,
		SectionsValid: g.sectioned,
	}
	for id, v := range g.vertices {
		stats.EdgeCount += len(v.adjacent)
		if _, ok := v.adjacent[id]; ok {
			stats.SelfLoops++
		}
		if len(v.adjacent) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}
