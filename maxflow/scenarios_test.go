package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/covermax/satflow/dgraph"
	"github.com/covermax/satflow/maxflow"
)

// buildScenarioGraph returns nodes {0,1,2,3} with edges 0->1 (3), 0->2 (2),
// 1->2 (1), 1->3 (2), 2->3 (3).
func buildScenarioGraph() (*dgraph.Graph, *dgraph.CapacityMap[int], map[string]maxflow.EdgeID) {
	g := dgraph.New(4)
	cap := dgraph.NewCapacityMap[int](0)
	ids := map[string]maxflow.EdgeID{}

	ids["01"] = g.AddEdge(0, 1)
	cap.Set(ids["01"], 3)
	ids["02"] = g.AddEdge(0, 2)
	cap.Set(ids["02"], 2)
	ids["12"] = g.AddEdge(1, 2)
	cap.Set(ids["12"], 1)
	ids["13"] = g.AddEdge(1, 3)
	cap.Set(ids["13"], 2)
	ids["23"] = g.AddEdge(2, 3)
	cap.Set(ids["23"], 3)

	return g, cap, ids
}

func TestFlowScenarioA(t *testing.T) {
	g, cap, ids := buildScenarioGraph()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))

	require.Equal(t, 5, eng.MaxFlow(0, 3))

	g.DisableEdge(ids["13"])
	require.Equal(t, 4, eng.MaxFlow(0, 3))
}

func TestFlowScenarioB(t *testing.T) {
	g, cap, ids := buildScenarioGraph()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))

	require.Equal(t, 5, eng.MaxFlow(0, 3))
	g.DisableEdge(ids["13"])
	require.Equal(t, 4, eng.MaxFlow(0, 3))

	g.EnableEdge(ids["13"])
	g.DisableEdge(ids["02"])
	require.Equal(t, 3, eng.MaxFlow(0, 3))
}

func TestFlowScenarioC(t *testing.T) {
	g, cap, ids := buildScenarioGraph()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))

	flowVal, cut := eng.MinCut(0, 3)
	require.Equal(t, 5, flowVal)

	// Both of node 0's outgoing edges are saturated, so nothing else is
	// reachable from 0 in the residual graph and the cut is {0->1, 0->2}.
	want := map[maxflow.EdgeID]bool{ids["01"]: true, ids["02"]: true}
	require.Len(t, cut, len(want))
	var total int
	for _, rec := range cut {
		require.True(t, want[rec.ID], "unexpected edge in cut: %v", rec)
		total += cap.CapacityOf(rec.ID)
	}
	require.Equal(t, 5, total)
}

func TestFlowScenarioD(t *testing.T) {
	g, cap, _ := buildScenarioGraph()
	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](true))

	require.Equal(t, 5, eng.MaxFlow(0, 3))
	before := eng.BFSInvocations()
	require.Equal(t, 5, eng.MaxFlow(0, 3))
	require.Equal(t, before, eng.BFSInvocations())
}
