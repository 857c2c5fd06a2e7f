// Package builder assembles deterministic navigation graphs for tests,
// benchmarks and the navgraph generate command.
//
// A graph is built by BuildGraph from core graph options, builder options and an
// ordered list of Constructors (Cycle, Path, Star, Complete, Grid, RandomSparse).
// Constructors add vertices through the configured ID scheme, weights through the
// weight function and, when WithHeuristicFn is set, an entry cost per vertex.
//
// Determinism: the same options, seed and constructor order always produce the
// same graph, insertion order included.
//
// Edge direction follows the graph: on a symmetric graph every AddEdge is
// mirrored; on a directed graph Cycle and Path run one way, Grid, Star and
// Complete always link both ways, and RandomSparse draws ordered pairs.
package builder
