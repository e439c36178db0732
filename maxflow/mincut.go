package maxflow

// MinCut returns the current max-flow value together with the set of edges
// forming a minimum s-t cut: edges whose tail is reachable from s in the
// residual graph, whose head is not, and which are saturated.
//
// It first brings the flow up to date via MaxFlow, then does one more BFS
// (over the now-correct residual graph) purely to mark reachability, using
// its own freshly allocated seen and queue slices.
func (e *Engine[W]) MinCut(s, t NodeID) (W, []EdgeRecord) {
	f := e.MaxFlow(s, t)

	seen := make([]bool, e.g.Nodes())
	seen[s] = true
	queue := []NodeID{s}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for i := 0; i < e.g.NIncident(u); i++ {
			adj := e.g.Incident(u, i)
			if !e.edgeEnabled[adj.ID] || seen[adj.Node] {
				continue
			}
			if e.capacity.CapacityOf(adj.ID)-e.flow[adj.ID] > 0 {
				seen[adj.Node] = true
				queue = append(queue, adj.Node)
			}
		}
		for i := 0; i < e.g.NIncoming(u); i++ {
			adj := e.g.Incoming(u, i)
			if !e.edgeEnabled[adj.ID] || seen[adj.Node] {
				continue
			}
			if e.flow[adj.ID] > 0 {
				seen[adj.Node] = true
				queue = append(queue, adj.Node)
			}
		}
	}

	var cut []EdgeRecord
	var cutCapacity W
	for id := 0; id < e.g.Edges(); id++ {
		eid := EdgeID(id)
		if !e.edgeEnabled[eid] {
			continue
		}
		rec := e.g.EdgeAt(eid)
		if seen[rec.From] && !seen[rec.To] && e.capacity.CapacityOf(eid)-e.flow[eid] == 0 {
			cut = append(cut, rec)
			cutCapacity += e.capacity.CapacityOf(eid)
		}
	}

	if e.debug && cutCapacity != f {
		e.logger.Sugar().Errorw("min-cut capacity does not match max flow",
			"cutCapacity", cutCapacity, "flow", f)
		panic(ErrInconsistentState)
	}
	return f, cut
}
