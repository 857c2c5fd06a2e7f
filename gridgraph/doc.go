// Package gridgraph treats a 2D grid of terrain values as a navigation map.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - ToCoreGraph builds a symmetric *core.Graph[Cell] over land cells: terrain
//     value − LandThreshold becomes the vertex Heuristic (entry cost), steps cost
//     StepCost orthogonally and DiagonalCost diagonally.
//   - ConnectedComponents lists the islands of land cells directly on the grid.
//   - Estimate supplies a Manhattan/octile lower bound for astar.WithEstimate.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a Cell outside the grid was queried.
package gridgraph
