// Package bfs provides a breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - BFS returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from its traversal start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Starts: every vertex that opened a traversal tree
//   - Vertices and Edges return lazy iter.Seq values for range-over-func loops.
//   - Hooks: OnEnqueue (every push) and OnVisit (first dequeue; may abort with an error).
//   - WithFilterNeighbor prunes individual edges, WithMaxDepth bounds the layers.
//   - WithIncludeAll restarts from the next unvisited vertex until the whole graph is covered.
//
// Visit discipline
//
//	A vertex is marked visited when it is dequeued. It can be enqueued from several
//	parents before that, but it is visited and yielded exactly once. Visited flags live
//	in a core.Session owned by the traversal and released when it ends, including when
//	a range loop over Vertices/Edges breaks early.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order and IncludeAll restarts follow
//	vertex insertion order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (duplicates in the queue are bounded by E)
//
// Usage
//
//	res, err := bfs.BFS(g, "start")
//
//	seq, err := bfs.Vertices(g, "start", bfs.WithIncludeAll[string]())
//	for id := range seq {
//	    // ...
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist (wraps core.ErrVertexNotFound).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit; context errors.
package bfs
