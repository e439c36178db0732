package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/covermax/satflow/dgraph"
	"github.com/covermax/satflow/maxflow"
)

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// diamond builds s -> a -> t and s -> b -> t, each hop capacity 5 except
// a->t which is capacity 10, so the min cut is s's two outgoing edges.
func diamond() (*dgraph.Graph, *dgraph.CapacityMap[int], maxflow.NodeID, maxflow.NodeID, map[string]maxflow.EdgeID) {
	g := dgraph.New(4)
	s, a, b, t := maxflow.NodeID(0), maxflow.NodeID(1), maxflow.NodeID(2), maxflow.NodeID(3)
	cap := dgraph.NewCapacityMap[int](0)

	ids := map[string]maxflow.EdgeID{}
	ids["sa"] = g.AddEdge(s, a)
	cap.Set(ids["sa"], 5)
	ids["at"] = g.AddEdge(a, t)
	cap.Set(ids["at"], 10)
	ids["sb"] = g.AddEdge(s, b)
	cap.Set(ids["sb"], 5)
	ids["bt"] = g.AddEdge(b, t)
	cap.Set(ids["bt"], 5)

	return g, cap, s, t, ids
}

func (s *EngineSuite) TestSimplePath() {
	g := dgraph.New(2)
	cap := dgraph.NewCapacityMap[int](0)
	e := g.AddEdge(0, 1)
	cap.Set(e, 5)

	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 5, eng.MaxFlow(0, 1))
}

func (s *EngineSuite) TestMultiPathSums() {
	g, cap, s0, t, _ := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))
}

func (s *EngineSuite) TestCacheHitDoesNoSearch() {
	g, cap, s0, t, _ := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))
	before := eng.BFSInvocations()
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))
	require.Equal(s.T(), before, eng.BFSInvocations(), "unchanged graph must not trigger a new search")
}

func (s *EngineSuite) TestIncrementalAdditionSaturatesNewPath() {
	g := dgraph.New(2)
	cap := dgraph.NewCapacityMap[int](0)
	e1 := g.AddEdge(0, 1)
	cap.Set(e1, 3)

	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 3, eng.MaxFlow(0, 1))

	e2 := g.AddEdge(0, 1)
	cap.Set(e2, 4)
	require.Equal(s.T(), 7, eng.MaxFlow(0, 1))
}

func (s *EngineSuite) TestEdgeDeletionFullyReroutable() {
	// s->a->t (cap 5) and s->a->b->t give the flow through a->t a detour
	// through b once a->t is disabled.
	g := dgraph.New(4)
	cap := dgraph.NewCapacityMap[int](0)
	sNode, a, b, t := maxflow.NodeID(0), maxflow.NodeID(1), maxflow.NodeID(2), maxflow.NodeID(3)
	sa := g.AddEdge(sNode, a)
	cap.Set(sa, 5)
	at := g.AddEdge(a, t)
	cap.Set(at, 5)
	ab := g.AddEdge(a, b)
	cap.Set(ab, 5)
	bt := g.AddEdge(b, t)
	cap.Set(bt, 5)

	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 5, eng.MaxFlow(sNode, t))

	g.DisableEdge(at)
	require.Equal(s.T(), 5, eng.MaxFlow(sNode, t), "flow must reroute through b")
	require.Equal(s.T(), 5, eng.EdgeFlow(ab))
}

func (s *EngineSuite) TestEdgeDeletionPartiallyReroutable() {
	g, cap, s0, t, ids := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))

	g.DisableEdge(ids["at"])
	// s->b->t caps at 5; s->a exists but a has no way to t anymore.
	require.Equal(s.T(), 5, eng.MaxFlow(s0, t))
}

func (s *EngineSuite) TestMinCut() {
	g, cap, s0, t, _ := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	flowVal, cut := eng.MinCut(s0, t)
	require.Equal(s.T(), 10, flowVal)

	var cutCap int
	for _, rec := range cut {
		cutCap += cap.CapacityOf(rec.ID)
	}
	require.Equal(s.T(), flowVal, cutCap)
}

func (s *EngineSuite) TestHistoryClearForcesFullRecompute() {
	g, cap, s0, t, _ := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))

	g.ClearHistory()
	before := eng.BFSInvocations()
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))
	require.Greater(s.T(), eng.BFSInvocations(), before)
}

func (s *EngineSuite) TestDisabledEdgeAccessPanics() {
	g, cap, s0, t, ids := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))

	g.DisableEdge(ids["at"])
	require.Equal(s.T(), 5, eng.MaxFlow(s0, t), "flow through a is lost, leaving only s->b->t")

	require.PanicsWithValue(s.T(), maxflow.ErrDisabledEdge, func() {
		eng.EdgeFlow(ids["at"])
	})
	require.PanicsWithValue(s.T(), maxflow.ErrDisabledEdge, func() {
		eng.EdgeResidualCapacity(ids["at"])
	})
}

func (s *EngineSuite) TestUnknownNodePanics() {
	g, cap, _, _, _ := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))

	require.PanicsWithValue(s.T(), maxflow.ErrUnknownNode, func() {
		eng.MaxFlow(maxflow.NodeID(99), maxflow.NodeID(0))
	})
}

func (s *EngineSuite) TestUnknownEdgePanics() {
	g, cap, s0, t, _ := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))

	require.PanicsWithValue(s.T(), maxflow.ErrUnknownEdge, func() {
		eng.EdgeFlow(maxflow.EdgeID(999))
	})
}

// TestInconsistentCapacityPanics shrinks a carrying edge's capacity below
// the flow already assigned to it, then forces an incremental replay (by
// adding an unrelated edge) so checkInvariants runs and finds the capacity
// violation that a correctly-behaving caller could never produce through
// the public API alone.
func (s *EngineSuite) TestInconsistentCapacityPanics() {
	g := dgraph.New(2)
	cap := dgraph.NewCapacityMap[int](0)
	e1 := g.AddEdge(0, 1)
	cap.Set(e1, 5)

	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 5, eng.MaxFlow(0, 1))

	cap.Set(e1, 1)
	e2 := g.AddEdge(0, 1)
	cap.Set(e2, 0)

	require.PanicsWithValue(s.T(), maxflow.ErrInconsistentState, func() {
		eng.MaxFlow(0, 1)
	})
}

func (s *EngineSuite) TestReEnableAfterDisable() {
	g, cap, s0, t, ids := diamond()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))

	g.DisableEdge(ids["sa"])
	require.Equal(s.T(), 5, eng.MaxFlow(s0, t))

	g.EnableEdge(ids["sa"])
	require.Equal(s.T(), 10, eng.MaxFlow(s0, t))
}
