// Package sections partitions a core.Graph into connected sections and answers
// reachability questions.
//
// Detect walks the graph breadth-first from the first vertex not yet assigned,
// stamps every vertex it reaches with a freshly minted section ID, and repeats
// until every vertex belongs to a section. Section IDs are UUIDs written back onto
// the graph with core.Graph.SetSections; package astar consults them to reject
// cross-section requests before searching.
//
// With WithTrim only the largest section survives (the first one found wins ties);
// the vertices of every other section are removed from the graph.
//
// Sections ignore edge direction: on a directed graph they are the weakly
// connected components, so the partition does not depend on the root. Vertices
// of different sections can never reach each other; vertices of one section may
// still lack a directed route. Detect warns when it sees an edge without a mirror.
//
// VerticesConnected and PathExists run their own BFS session and never touch
// graph-wide state, so they are safe to interleave with other traversals.
//
// Complexity: O(V + E) for every entry point.
package sections
