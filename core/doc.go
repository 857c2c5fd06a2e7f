// Package core provides the generic weighted graph used by every navgraph algorithm.
//
// The Graph G = (V,E) is keyed by any comparable type K supplied by the caller
// (grid cells, waypoint names, tile indices...):
//
//   - Directed adjacency: AddEdge(from,to,w) writes from→to only, last write wins.
//   - Symmetric graphs: WithSymmetric() mirrors every AddEdge; AddEdgeBoth mirrors one pair.
//   - Auto-insertion: endpoints missing from the graph are created on AddEdge, so no
//     adjacency entry ever names a vertex outside the graph.
//   - Per-vertex Heuristic: an additive cost charged when a search enters the vertex.
//   - Deterministic iteration: vertices and neighbors keep their insertion order.
//   - Section stamps: written by package sections, consulted by package astar.
//   - One sync.RWMutex guards the catalog; reads and writes are race-free, but a
//     traversal in flight still expects the structure to stay put.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v *Vertex[K])            // O(deg v), insert or replace by ID
//	AddVertexID(id K) *Vertex[K]       // O(1), idempotent
//	TrimVertices() []K                 // O(V+E), drop degree-0 vertices
//	RemoveVertices(ids []K) int        // O(V+E), drop vertices and incoming edges
//
//	// Edge lifecycle
//	AddEdge(from, to K, w float64) error // O(1)
//	AddEdgeBoth(a, b K, w float64) error // O(1)
//	RemoveEdge(from, to K) error         // O(deg from)
//	RemoveSelfPaths() int                // O(V), zero-weight loops only
//
//	// Query
//	Vertex(id K) (*Vertex[K], error)
//	Neighbors(id K) ([]Edge[K], error)
//	Edge(from, to K) Edge[K]           // InvalidEdge when absent
//	Vertices() []K, Edges() []Edge[K]
//	Root() (K, bool), SetRoot(id K) error
//
// Traversal state lives in a Session, a call-owned context holding visited flags
// and aggregate costs. Nothing traversal-specific is ever written to a Vertex.
//
// Errors:
//
//	ErrPathfinding    – root of every pathfinding failure kind
//	ErrVertexNotFound – missing vertex
//	ErrDisjointGraph  – endpoints in different sections / frontier exhausted
//	ErrInvalidRequest – degenerate search request
//	ErrIncompletePath – search stopped before reaching the goal
//	ErrNotOnPath, ErrEndOfPath – Path stepping failures
//	ErrEdgeNotFound, ErrBadWeight, ErrNegativeWeight, ErrNilGraph – structural
package core
