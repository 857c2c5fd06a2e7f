// Package navgraph is an in-memory engine for weighted navigation graphs:
// route planning where both trails (edges) and the places they lead to
// (vertex entry costs) carry a price.
//
// What it brings together:
//
//	• Core primitives: vertices with entry costs, weighted edges, sections, safe under locks
//	• Traversals: BFS and DFS with hooks, include-all walks and edge traces
//	• Sections: connected-area detection with optional trimming to the largest area
//	• Affordable areas: Dijkstra-style reachability within a budget
//	• A* search: cheapest routes with pluggable estimates, returned as walkable Paths
//	• Grids: 2D terrain to graph conversion, Manhattan/octile estimates
//	• I/O: YAML graph documents and a navgraph command line tool
//
// Layout:
//
//	core/          Graph, Vertex, Edge, Session and the shared error family
//	bfs/, dfs/     traversals with visit hooks
//	walk/          mode-selected traversal sequences and root traces
//	sections/      section detection, trimming and connectivity queries
//	dijkstra/      cost maps and affordable areas
//	astar/         Search, SearchMany and the Path type
//	gridgraph/     grids of terrain values
//	graphio/       YAML documents
//	builder/       deterministic synthetic graphs
//	cmd/navgraph/  the command line tool
//
// Quick ASCII example:
//
//	camp ──2── bridge ──1── tower
//	  └──────────5───────────┘
//
// With a zero entry cost everywhere the route camp → bridge → tower costs 3.
// Raise bridge's entry cost to 3 and the direct trail (5) wins.
package navgraph
