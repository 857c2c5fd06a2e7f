package dijkstra_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/dijkstra"
)

// ExampleDijkstra_triangle computes cheapest costs on a symmetric triangle.
func ExampleDijkstra_triangle() {
	g := core.NewGraph(core.WithSymmetric[string]())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_returnPath rebuilds a route from the predecessor map.
func ExampleDijkstra_returnPath() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 1)
	_ = g.AddEdge("B", "D", 3)
	_ = g.AddEdge("C", "D", 5)

	dist, prev, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath[string]())
	route := []string{"D"}
	for cur := "D"; cur != "A"; {
		cur = prev[cur]
		route = append(route, cur)
	}
	slices.Reverse(route)
	fmt.Println(route, dist["D"])
	// Output: [A B D] 5
}

// ExampleAffordable lists what a unit can reach with 4 movement points.
func ExampleAffordable() {
	g := core.NewGraph(core.WithSymmetric[string]())
	_ = g.AddEdge("camp", "road", 1)
	_ = g.AddEdge("road", "gate", 1)
	_ = g.AddEdge("camp", "marsh", 1)
	_ = g.SetHeuristic("marsh", 4)

	reach, _ := dijkstra.Affordable(g, "camp", 4)
	for _, id := range g.Vertices() {
		if c, ok := reach[id]; ok {
			fmt.Printf("%s:%g ", id, c)
		}
	}
	fmt.Println()
	// Output: camp:0 road:1 gate:2
}
