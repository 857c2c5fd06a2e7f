package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/navgraph/core"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// GraphSuite covers vertex/edge lifecycle on a fresh string-keyed graph.
type GraphSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string]()
}

func (s *GraphSuite) TestAddVertexSetsRoot() {
	s.g.AddVertex(core.NewVertex("A", 2))
	s.g.AddVertex(core.NewVertex("B", 0))

	root, ok := s.g.Root()
	s.True(ok)
	s.Equal("A", root)
	h, err := s.g.Heuristic("A")
	s.NoError(err)
	s.Equal(2.0, h)
}

func (s *GraphSuite) TestAddVertexOverwrites() {
	s.Require().NoError(s.g.AddEdge("A", "B", 1))
	replacement := core.NewVertex("A", 7)
	s.g.AddVertex(replacement)

	s.Equal(2, s.g.Len())
	s.Equal([]string{"A", "B"}, s.g.Vertices())
	deg, err := s.g.Degree("A")
	s.NoError(err)
	s.Equal(0, deg)
}

func (s *GraphSuite) TestAddEdgeAutoCreatesEndpoints() {
	s.Require().NoError(s.g.AddEdge("A", "B", 3))

	s.True(s.g.HasVertex("A"))
	s.True(s.g.HasVertex("B"))
	s.True(s.g.HasEdge("A", "B"))
	s.False(s.g.HasEdge("B", "A"), "directed graph must not mirror")
}

func (s *GraphSuite) TestAddEdgeLastWriteWins() {
	s.Require().NoError(s.g.AddEdge("A", "B", 3))
	s.Require().NoError(s.g.AddEdge("A", "B", 5))

	s.Equal(5.0, s.g.Edge("A", "B").Weight)
	s.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeRejectsNonFinite() {
	s.ErrorIs(s.g.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	s.ErrorIs(s.g.AddEdge("A", "B", math.Inf(1)), core.ErrBadWeight)
	s.Equal(0, s.g.Len())
}

func (s *GraphSuite) TestRemoveEdge() {
	s.Require().NoError(s.g.AddEdgeBoth("A", "B", 1))
	s.NoError(s.g.RemoveEdge("A", "B"))
	s.True(s.g.HasEdge("B", "A"))
	s.ErrorIs(s.g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
	s.ErrorIs(s.g.RemoveEdge("Z", "B"), core.ErrVertexNotFound)
}

func (s *GraphSuite) TestNeighborsKeepInsertionOrder() {
	for _, to := range []string{"D", "B", "C"} {
		s.Require().NoError(s.g.AddEdge("A", to, 1))
	}
	nbs, err := s.g.Neighbors("A")
	s.Require().NoError(err)
	var ids []string
	for _, e := range nbs {
		ids = append(ids, e.To)
	}
	s.Equal([]string{"D", "B", "C"}, ids)

	_, err = s.g.Neighbors("missing")
	s.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestTrimVertices() {
	s.Require().NoError(s.g.AddEdgeBoth("B", "C", 1))
	s.g.AddVertexID("A") // root, isolated
	s.g.AddVertexID("E") // isolated
	s.Require().NoError(s.g.SetRoot("A"))

	removed := s.g.TrimVertices()
	s.ElementsMatch([]string{"A", "E"}, removed)
	s.Equal(2, s.g.Len())
	root, ok := s.g.Root()
	s.True(ok)
	s.Equal("B", root)
}

func (s *GraphSuite) TestTrimVerticesKeepsTargetedSinks() {
	s.Require().NoError(s.g.AddEdge("A", "B", 1)) // B has degree 0 but is a target
	removed := s.g.TrimVertices()
	s.Empty(removed)
	s.True(s.g.HasVertex("B"))
}

func (s *GraphSuite) TestTrimVerticesEmptiesRoot() {
	s.g.AddVertexID("A")
	s.g.TrimVertices()
	_, ok := s.g.Root()
	s.False(ok)
	s.Equal(0, s.g.Len())
}

func (s *GraphSuite) TestRemoveSelfPaths() {
	s.Require().NoError(s.g.AddEdge("A", "A", 0))
	s.Require().NoError(s.g.AddEdge("B", "B", 2))
	s.Require().NoError(s.g.AddEdge("A", "B", 1))

	s.Equal(1, s.g.RemoveSelfPaths())
	s.False(s.g.HasEdge("A", "A"))
	s.True(s.g.HasEdge("B", "B"), "non-zero self-loop must survive")
}

func (s *GraphSuite) TestRemoveVerticesDropsIncomingEdges() {
	s.Require().NoError(s.g.AddEdgeBoth("A", "B", 1))
	s.Require().NoError(s.g.AddEdgeBoth("B", "C", 1))

	s.Equal(1, s.g.RemoveVertices([]string{"B", "missing"}))
	s.False(s.g.HasEdge("A", "B"))
	s.False(s.g.HasEdge("C", "B"))
	s.Equal(0, s.g.EdgeCount())
}

func (s *GraphSuite) TestSectionValidity() {
	s.Require().NoError(s.g.AddEdgeBoth("A", "B", 1))
	s.False(s.g.SectionsValid())

	s.g.SetSections(map[string]string{"A": "s1", "B": "s1"})
	s.True(s.g.SectionsValid())

	// an edge inside one section keeps stamps current
	s.Require().NoError(s.g.AddEdge("A", "B", 4))
	s.True(s.g.SectionsValid())

	// a new vertex invalidates them
	s.Require().NoError(s.g.AddEdge("B", "C", 1))
	s.False(s.g.SectionsValid())
	sec, err := s.g.Section("C")
	s.NoError(err)
	s.Empty(sec)
}

func (s *GraphSuite) TestReplaceVertexInvalidatesSections() {
	s.Require().NoError(s.g.AddEdgeBoth("A", "B", 1))
	s.Require().NoError(s.g.AddEdgeBoth("B", "C", 1))
	s.g.SetSections(map[string]string{"A": "s1", "B": "s1", "C": "s1"})
	s.Require().True(s.g.SectionsValid())

	// a bare replacement only changes the entry cost
	s.g.AddVertex(core.NewVertex("C", 3))
	s.False(s.g.SectionsValid())
	h, err := s.g.Heuristic("C")
	s.NoError(err)
	s.Equal(3.0, h)
	s.True(s.g.HasEdge("B", "C"))

	// dropping B's outgoing edges may split the section
	s.g.SetSections(map[string]string{"A": "s1", "B": "s1", "C": "s1"})
	s.g.AddVertex(core.NewVertex("B", 0))
	s.False(s.g.SectionsValid())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	s.Require().NoError(s.g.AddEdgeBoth("A", "B", 1))
	clone := s.g.Clone()
	s.Require().NoError(clone.AddEdge("B", "C", 1))

	s.False(s.g.HasVertex("C"))
	s.Equal(s.g.Vertices(), clone.Vertices()[:2])

	empty := s.g.CloneEmpty()
	s.Equal(2, empty.Len())
	s.Equal(0, empty.EdgeCount())
}

func (s *GraphSuite) TestClear() {
	s.Require().NoError(s.g.AddEdgeBoth("A", "B", 1))
	s.g.Clear()
	s.Equal(0, s.g.Len())
	_, ok := s.g.Root()
	s.False(ok)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestNoDanglingAdjacency checks that every adjacency target is a vertex of the
// graph after an arbitrary sequence of public mutations.
func TestNoDanglingAdjacency(t *testing.T) {
	g := core.NewGraph[int](core.WithSymmetric[int]())
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(i, (i*7+3)%61, float64(i%5)))
	}
	g.AddVertex(core.NewVertex(100, 0))
	v := core.NewVertex(200, 0)
	g.AddVertex(v)
	require.NoError(t, g.AddEdge(200, 300, 1))
	g.RemoveVertices([]int{3, 10, 17})
	g.TrimVertices()
	g.RemoveSelfPaths()

	for _, e := range g.Edges() {
		require.Truef(t, g.HasVertex(e.To), "dangling edge %d→%d", e.From, e.To)
	}
}

func TestSymmetricGraph(t *testing.T) {
	g := core.NewGraph[string](core.WithSymmetric[string]())
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.True(t, g.Symmetric())
	require.Equal(t, 2.0, g.Edge("B", "A").Weight)
	require.Empty(t, g.Asymmetric())

	d := core.NewGraph[string]()
	require.NoError(t, d.AddEdge("A", "B", 2))
	asym := d.Asymmetric()
	require.Len(t, asym, 1)
	require.True(t, asym[0].Equal(core.Edge[string]{From: "A", To: "B"}))
}

func TestWithRoot(t *testing.T) {
	g := core.NewGraph(core.WithRoot("home"))
	require.NoError(t, g.AddEdge("X", "Y", 1))
	root, ok := g.Root()
	require.True(t, ok)
	require.Equal(t, "home", root)
	require.ErrorIs(t, g.SetRoot("nowhere"), core.ErrVertexNotFound)
}

func TestEdgeSentinel(t *testing.T) {
	inv := core.InvalidEdge[string]()
	require.False(t, inv.IsValid())
	require.True(t, math.IsNaN(inv.Weight))

	g := core.NewGraph[string]()
	require.False(t, g.Edge("A", "B").IsValid())

	a := core.Edge[string]{From: "A", To: "B", Weight: 1}
	b := core.Edge[string]{From: "A", To: "B", Weight: 9}
	require.True(t, a.Equal(b), "equality ignores weight")
	require.False(t, a.Equal(a.Reverse()))
}

func TestNewGraphFromPredecessors(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B"}
	g, err := core.NewGraphFromPredecessors(prev, func(from, to string) float64 {
		if to == "C" {
			return 4
		}
		return 1
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	require.Equal(t, 1.0, g.Edge("A", "B").Weight)
	require.Equal(t, 4.0, g.Edge("B", "C").Weight)

	unit, err := core.NewGraphFromPredecessors(prev, nil)
	require.NoError(t, err)
	require.Equal(t, 1.0, unit.Edge("B", "C").Weight)
}

func TestErrorFamily(t *testing.T) {
	for _, err := range []error{
		core.ErrVertexNotFound, core.ErrDisjointGraph, core.ErrInvalidRequest,
		core.ErrIncompletePath, core.ErrNotOnPath, core.ErrEndOfPath,
	} {
		require.Truef(t, errors.Is(err, core.ErrPathfinding), "%v must wrap ErrPathfinding", err)
	}
	require.False(t, errors.Is(core.ErrBadWeight, core.ErrPathfinding))

	g := core.NewGraph[string]()
	_, err := g.Vertex("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrPathfinding)
}

func TestStats(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdgeBoth("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "A", 3))
	g.AddVertexID("C")

	st := g.Stats()
	require.Equal(t, 3, st.VertexCount)
	require.Equal(t, 3, st.EdgeCount)
	require.Equal(t, 1, st.SelfLoops)
	require.Equal(t, 1, st.Isolated)
	require.False(t, st.Symmetric)
}
