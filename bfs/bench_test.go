package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/navgraph/bfs"
	"github.com/katalvlaran/navgraph/core"
)

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, ≈4*M*(M−1) directed entries).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	g := core.NewGraph(core.WithSymmetric[[2]int]())
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			if i+1 < M {
				_ = g.AddEdge([2]int{i, j}, [2]int{i + 1, j}, 1)
			}
			if j+1 < M {
				_ = g.AddEdge([2]int{i, j}, [2]int{i, j + 1}, 1)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, [2]int{0, 0})
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph[string]()
	for k := 0; k < E; k++ {
		u := fmt.Sprintf("n%d", rnd.Intn(V))
		v := fmt.Sprintf("n%d", rnd.Intn(V))
		_ = g.AddEdge(u, v, 1)
	}
	start := g.Vertices()[0]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start, bfs.WithIncludeAll[string]())
	}
}
