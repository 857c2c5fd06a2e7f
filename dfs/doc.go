// Package dfs implements depth‑first search traversal on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Visit hook (OnVisit) that may abort with an error
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over disconnected sections (WithFullTraversal)
//   - Vertices / Edges: the same traversal as lazy iter.Seq values.
//
// Why:
//   - Flood-fill style reachability where visit order does not matter but
//     memory locality does (the frontier stays narrow on corridor-like maps).
//   - Alternative enumeration mode for package walk.
//
// Visit discipline:
//
//	Vertices are marked visited when popped from the stack, never on push.
//	Neighbors are pushed in reverse adjacency order so the first neighbor is
//	explored first, which makes the order match the classic recursive DFS.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (wraps core.ErrVertexNotFound).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
