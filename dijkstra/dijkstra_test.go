package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NoSource(t *testing.T) {
	g := core.NewGraph[string]()
	_, _, err := dijkstra.Dijkstra(g)
	if !errors.Is(err, dijkstra.ErrNoSource) {
		t.Fatalf("Expected ErrNoSource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra[string](nil, dijkstra.Source("X"))
	if !errors.Is(err, core.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph[string]()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrPathfinding)
}

func TestDijkstra_NegativeCosts(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", -1))
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, core.ErrNegativeWeight)

	h := core.NewGraph[string]()
	require.NoError(t, h.AddEdge("A", "B", 1))
	require.NoError(t, h.SetHeuristic("B", -2))
	_, _, err = dijkstra.Dijkstra(h, dijkstra.Source("A"))
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertexID("A")
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance[string](-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold[string](0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold[string](math.NaN()))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// ------------------------------------------------------------------------
// 2. Costs
// ------------------------------------------------------------------------

// triangle: A→B(1), B→C(1), A→C(5)
func triangle(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithReturnPath[string]())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 2}, dist)
	assert.Equal(t, "B", prev["C"])
	_, hasSource := prev["A"]
	assert.False(t, hasSource)
}

func TestDijkstra_HeuristicIsCharged(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.SetHeuristic("B", 10)) // swamp
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath[string]())
	require.NoError(t, err)
	assert.Equal(t, 11.0, dist["B"])
	assert.Equal(t, 5.0, dist["C"])
	assert.Equal(t, "A", prev["C"])
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := triangle(t)
	g.AddVertexID("Z")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["C"])
	assert.True(t, math.IsInf(dist["A"], 1), "directed edges must not be walked backwards")
	assert.True(t, math.IsInf(dist["Z"], 1))
}

func TestDijkstra_NoPathMapByDefault(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithMaxDistance[string](1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddEdge("B", "C", 100))
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold[string](50))
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist["C"], "wall forces the direct edge")
}

func TestDijkstra_ZeroSelfLoopAndSingleVertex(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 1, 0))
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 0}, dist)
}

// ------------------------------------------------------------------------
// 3. Affordable
// ------------------------------------------------------------------------

func TestAffordable(t *testing.T) {
	g := core.NewGraph(core.WithSymmetric[string]())
	require.NoError(t, g.AddEdge("camp", "ford", 2))
	require.NoError(t, g.AddEdge("ford", "hill", 3))
	require.NoError(t, g.AddEdge("camp", "swamp", 1))
	require.NoError(t, g.SetHeuristic("swamp", 6))

	got, err := dijkstra.Affordable(g, "camp", 5)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"camp": 0, "ford": 2, "hill": 5}, got)

	got, err = dijkstra.Affordable(g, "camp", 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"camp": 0}, got)

	_, err = dijkstra.Affordable(g, "nowhere", 5)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = dijkstra.Affordable(g, "camp", -1)
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}
