package maxflow_test

import (
	"testing"

	"github.com/covermax/satflow/dgraph"
	"github.com/covermax/satflow/maxflow"
)

// buildLayeredGraph returns a graph of `layers` stages of `width` nodes
// each, fully connected stage-to-stage, capacity 1 per edge, plus a single
// source feeding stage 0 and a single sink fed by the last stage.
func buildLayeredGraph(layers, width int) (*dgraph.Graph, *dgraph.CapacityMap[int], maxflow.NodeID, maxflow.NodeID) {
	g := dgraph.New(layers*width + 2)
	cap := dgraph.NewCapacityMap[int](0)
	s := maxflow.NodeID(layers * width)
	t := maxflow.NodeID(layers*width + 1)

	nodeAt := func(layer, i int) maxflow.NodeID { return maxflow.NodeID(layer*width + i) }

	for i := 0; i < width; i++ {
		id := g.AddEdge(s, nodeAt(0, i))
		cap.Set(id, 1)
		id = g.AddEdge(nodeAt(layers-1, i), t)
		cap.Set(id, 1)
	}
	for l := 0; l < layers-1; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				id := g.AddEdge(nodeAt(l, i), nodeAt(l+1, j))
				cap.Set(id, 1)
			}
		}
	}
	return g, cap, s, t
}

// BenchmarkMaxFlowIncremental measures the cost of repeatedly disabling and
// re-enabling a single source-feeding edge and recomputing max flow, exercising
// the incremental-replay path rather than a fresh full recompute each time.
func BenchmarkMaxFlowIncremental(b *testing.B) {
	g, cap, s, t := buildLayeredGraph(8, 6)
	eng := maxflow.NewEngine[int](g, cap)
	toggled := maxflow.EdgeID(6) // one of the source-feeding edges

	eng.MaxFlow(s, t)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.DisableEdge(toggled)
		eng.MaxFlow(s, t)
		g.EnableEdge(toggled)
		eng.MaxFlow(s, t)
	}
}
