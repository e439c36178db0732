package dgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/covermax/satflow/dgraph"
	"github.com/covermax/satflow/maxflow"
)

func TestAddEdgeUpdatesAdjacencyAndCounters(t *testing.T) {
	g := dgraph.New(2)
	id := g.AddEdge(0, 1)

	require.Equal(t, 1, g.Edges())
	require.Equal(t, 1, g.Modifications())
	require.Equal(t, 1, g.Additions())
	require.Equal(t, 0, g.Deletions())
	require.True(t, g.EdgeEnabled(id))
	require.Equal(t, 1, g.NIncident(0))
	require.Equal(t, maxflow.AdjEntry{Node: 1, ID: id}, g.Incident(0, 0))
	require.Equal(t, 1, g.NIncoming(1))
	require.Equal(t, maxflow.AdjEntry{Node: 0, ID: id}, g.Incoming(1, 0))
}

func TestDisableEnableRoundTrip(t *testing.T) {
	g := dgraph.New(2)
	id := g.AddEdge(0, 1)

	g.DisableEdge(id)
	require.False(t, g.EdgeEnabled(id))
	require.Equal(t, 1, g.Deletions())

	g.DisableEdge(id) // no-op, must not bump counters again
	require.Equal(t, 1, g.Deletions())

	g.EnableEdge(id)
	require.True(t, g.EdgeEnabled(id))
	require.Equal(t, 2, g.Additions())
}

func TestHistoryAppendsOneEventPerMutation(t *testing.T) {
	g := dgraph.New(2)
	id := g.AddEdge(0, 1)
	g.DisableEdge(id)
	g.EnableEdge(id)

	history := g.History()
	require.Len(t, history, 3)
	require.True(t, history[0].Addition)
	require.False(t, history[1].Addition)
	require.True(t, history[2].Addition)
}

func TestClearHistorySetsChangedLatch(t *testing.T) {
	g := dgraph.New(2)
	g.AddEdge(0, 1)

	require.False(t, g.Changed())
	g.ClearHistory()
	require.True(t, g.Changed())
	require.Empty(t, g.History())

	g.AcknowledgeChange()
	require.False(t, g.Changed())
}

func TestCapacityMapGrowsOnSet(t *testing.T) {
	cm := dgraph.NewCapacityMap[int](0)
	cm.Set(5, 42)
	require.Equal(t, 42, cm.CapacityOf(5))
	require.Equal(t, 0, cm.CapacityOf(0))
}
