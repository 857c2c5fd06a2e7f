package astar_test

import (
	"bytes"
	"context"
	"math"
	"slices"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/sections"
)

// detour: A→B(1), B→C(1), A→C(5)
func detour(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

func TestSearchPrefersCheaperDetour(t *testing.T) {
	p, err := astar.Search(detour(t), "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, slices.Collect(p.All()))
	assert.Equal(t, 2.0, p.Cost())
}

func TestSearchChargesHeuristic(t *testing.T) {
	g := detour(t)
	require.NoError(t, g.SetHeuristic("B", 10))
	p, err := astar.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, slices.Collect(p.All()))
	assert.Equal(t, 5.0, p.Cost())
}

func TestSearchTwoVertices(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 3.5))
	p, err := astar.Search(g, 1, 2)
	require.NoError(t, err)
	n, err := p.Length(p.Start(), p.End())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3.5, p.Cost())
}

func TestSearchPreconditions(t *testing.T) {
	g := detour(t)
	tests := []struct {
		name       string
		g          *core.Graph[string]
		start, end string
		want       error
	}{
		{"missing start", g, "Z", "C", core.ErrVertexNotFound},
		{"missing end", g, "A", "Z", core.ErrVertexNotFound},
		{"start equals end", g, "A", "A", core.ErrInvalidRequest},
		{"nil graph", nil, "A", "C", core.ErrNilGraph},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := astar.Search(tc.g, tc.start, tc.end)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	single := core.NewGraph[string]()
	single.AddVertexID("A")
	_, err := astar.Search(single, "A", "A")
	assert.ErrorIs(t, err, core.ErrInvalidRequest)
}

func TestSearchNegativeCost(t *testing.T) {
	g := detour(t)
	require.NoError(t, g.AddEdge("B", "C", -1))
	_, err := astar.Search(g, "A", "C")
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestSearchDisjoint(t *testing.T) {
	g := detour(t)
	require.NoError(t, g.AddEdgeBoth("X", "Y", 1))

	// frontier runs dry
	_, err := astar.Search(g, "A", "X")
	assert.ErrorIs(t, err, core.ErrDisjointGraph)

	// rejected up front once sections are stamped
	_, err = sections.Detect(g, sections.WithLogger(golog.New()))
	require.NoError(t, err)
	_, err = astar.Search(g, "A", "Y")
	assert.ErrorIs(t, err, core.ErrDisjointGraph)
	assert.ErrorIs(t, err, core.ErrPathfinding)

	_, err = astar.Search(g, "A", "C")
	assert.NoError(t, err, "same section still searches")
}

func TestSearchInfinitePriority(t *testing.T) {
	_, err := astar.Search(detour(t), "A", "C", astar.WithEstimate(func(v, goal string) float64 {
		return math.Inf(1)
	}))
	assert.ErrorIs(t, err, core.ErrDisjointGraph)
}

func TestSearchIncomplete(t *testing.T) {
	_, err := astar.Search(detour(t), "A", "C", astar.WithMaxCost[string](0.5))
	assert.ErrorIs(t, err, core.ErrIncompletePath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = astar.Search(detour(t), "A", "C", astar.WithContext[string](ctx))
	assert.ErrorIs(t, err, core.ErrIncompletePath)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchTiePrefersCheaperPredecessor(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("S", "B", 2))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("B", "C", 1))

	// the estimate settles B before A; both reach C at cost 3
	est := map[string]float64{"A": 1.5}
	p, err := astar.Search(g, "S", "C", astar.WithEstimate(func(v, _ string) float64 { return est[v] }))
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Cost())
	assert.Equal(t, []string{"S", "A", "C"}, slices.Collect(p.All()))
}

func TestSearchEstimateOnGrid(t *testing.T) {
	type cell struct{ x, y int }
	g := core.NewGraph(core.WithSymmetric[cell]())
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if x+1 < 6 {
				require.NoError(t, g.AddEdge(cell{x, y}, cell{x + 1, y}, 1))
			}
			if y+1 < 6 {
				require.NoError(t, g.AddEdge(cell{x, y}, cell{x, y + 1}, 1))
			}
		}
	}
	manhattan := func(v, goal cell) float64 {
		return math.Abs(float64(v.x-goal.x)) + math.Abs(float64(v.y-goal.y))
	}
	plain, err := astar.Search(g, cell{0, 0}, cell{5, 5})
	require.NoError(t, err)
	guided, err := astar.Search(g, cell{0, 0}, cell{5, 5}, astar.WithEstimate(manhattan))
	require.NoError(t, err)
	assert.Equal(t, 10.0, plain.Cost())
	assert.Equal(t, plain.Cost(), guided.Cost())
}

func TestSearchLogs(t *testing.T) {
	var buf bytes.Buffer
	l := golog.New()
	l.SetOutput(&buf)
	l.SetLevel("debug")
	_, err := astar.Search(detour(t), "A", "C", astar.WithLogger[string](l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "cost 2")
}

func TestSearchLeavesGraphUntouched(t *testing.T) {
	g := detour(t)
	before := g.Edges()
	_, err := astar.Search(g, "A", "C")
	require.NoError(t, err)
	_, err = astar.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}

func TestSearchAfterVertexReplacement(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdgeBoth("A", "B", 1))
	require.NoError(t, g.AddEdgeBoth("B", "C", 1))
	_, err := sections.Detect(g)
	require.NoError(t, err)

	g.AddVertex(core.NewVertex("C", 3))
	p, err := astar.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.Cost())
}

// Sections of a directed chain ignore edge direction, so a root at the sink
// does not split the chain.
func TestSearchDirectedChainRootedAtSink(t *testing.T) {
	g := core.NewGraph(core.WithRoot("C"))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	quiet := golog.New()
	quiet.SetOutput(&bytes.Buffer{})
	res, err := sections.Detect(g, sections.WithLogger(quiet))
	require.NoError(t, err)
	require.Len(t, res.Sections, 1)

	p, err := astar.Search(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, slices.Collect(p.All()))

	_, err = astar.Search(g, "C", "A")
	assert.ErrorIs(t, err, core.ErrDisjointGraph)
}
