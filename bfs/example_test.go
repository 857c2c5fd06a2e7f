package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/navgraph/bfs"
	"github.com/katalvlaran/navgraph/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	// Build a 3×3 undirected grid: vertices "i_j" for 0 ≤ i,j < 3
	g := core.NewGraph(core.WithSymmetric[string]())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// connect to right neighbor
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			// connect to down neighbor
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleVertices ranges over a lazy traversal and stops early.
func ExampleVertices() {
	g := core.NewGraph(core.WithSymmetric[int]())
	for i := 0; i < 100; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}

	seq, err := bfs.Vertices(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for id := range seq {
		if id > 3 {
			break // releases the traversal session
		}
		fmt.Print(id, " ")
	}
	fmt.Println()
	// Output:
	// 0 1 2 3
}
