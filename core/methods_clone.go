// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones keep vertex and neighbor insertion order, so traversals of a clone
//     visit vertices in the same sequence as the source.
// Concurrency:
//   - Read lock on the source for snapshotting; the clone is fresh and unshared.

package core

// CloneEmpty returns a new Graph with the same policy, vertices, heuristics and root,
// but no edges. Section stamps are not carried over.
// Complexity: O(V).
func (g *Graph[K]) CloneEmpty() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneLocked(false)
}

// Clone returns a deep copy of the Graph: policy, vertices, adjacency, root and
// section stamps. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneLocked(true)
}

func (g *Graph[K]) cloneLocked(withEdges bool) *Graph[K] {
	clone := &Graph[K]{
		symmetric: g.symmetric,
		vertices:  make(map[K]*Vertex[K], len(g.vertices)),
		order:     make([]K, 0, len(g.order)),
		root:      g.root,
		hasRoot:   g.hasRoot,
	}
	for _, id := range g.order {
		v := g.vertices[id]
		nv := NewVertex(id, v.Heuristic)
		if withEdges {
			for _, to := range v.order {
				nv.link(to, v.adjacent[to])
			}
			nv.section = v.section
		}
		clone.vertices[id] = nv
		clone.order = append(clone.order, id)
	}
	clone.sectioned = withEdges && g.sectioned

	return clone
}

// Clear removes every vertex and edge while preserving the symmetric policy.
// Complexity: O(1).
func (g *Graph[K]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero K
	g.vertices = make(map[K]*Vertex[K])
	g.order = nil
	g.root, g.hasRoot = zero, false
	g.sectioned = false
}
