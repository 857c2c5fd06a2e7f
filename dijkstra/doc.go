// Package dijkstra provides single-source cost search over a core.Graph with
// non-negative weights and heuristics.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from one source vertex to every reachable
//     vertex in O((V + E) log V), expanding the cheapest unsettled vertex first.
//   - The step cost u→v is weight(u,v) + Heuristic(v), identical to package astar.
//   - Affordable answers "where can I get with this budget": every vertex whose
//     cheapest cost is within the budget, the start included at 0.
//
// Key features:
//
//   - ReturnPath: returns a predecessor map so each cheapest path can be rebuilt.
//   - MaxDistance: stops exploring beyond a cost cap.
//   - InfEdgeThreshold: any step costing ≥ threshold is impassable.
//   - MemoryMode: MemoryModeCompact skips predecessor bookkeeping when not returned.
//   - Invalid option values are reported as errors, never panics.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("A"),
//	    dijkstra.WithReturnPath[string](),
//	)
//
//	reach, err := dijkstra.Affordable(g, "camp", 12)
package dijkstra
