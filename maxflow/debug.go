package maxflow

// checkNode panics with ErrUnknownNode if n is outside [0, Nodes()). Only
// ever called when the engine was constructed with WithDebug(true).
func (e *Engine[W]) checkNode(n NodeID) {
	if n < 0 || int(n) >= e.g.Nodes() {
		e.logger.Sugar().Errorw("unknown node id", "node", n)
		panic(ErrUnknownNode)
	}
}

// checkEdge panics with ErrUnknownEdge if id does not name an edge on the
// collaborator graph, or with ErrDisabledEdge if it names one that is
// currently disabled. Only ever called when the engine was constructed
// with WithDebug(true).
func (e *Engine[W]) checkEdge(id EdgeID) {
	if !e.g.IsEdge(id) {
		e.logger.Sugar().Errorw("unknown edge id", "edge", id)
		panic(ErrUnknownEdge)
	}
	if !e.edgeEnabled[id] {
		panic(ErrDisabledEdge)
	}
}

// checkInvariants reproduces the teacher's validateResult/validateResultOne
// consistency checks: capacity respect, flow conservation at every node
// but s and t, and (implicitly, via MinCut) the max-flow min-cut theorem.
// Only ever run when the engine was constructed with WithDebug(true).
func (e *Engine[W]) checkInvariants(s, t NodeID) {
	inflow := make([]W, e.g.Nodes())
	outflow := make([]W, e.g.Nodes())

	for id := 0; id < e.g.Edges(); id++ {
		eid := EdgeID(id)
		if !e.edgeEnabled[eid] {
			if e.flow[eid] != 0 {
				e.logger.Sugar().Errorw("disabled edge carries flow", "edge", id, "flow", e.flow[eid])
				panic(ErrInconsistentState)
			}
			continue
		}
		f := e.flow[eid]
		cap := e.capacity.CapacityOf(eid)
		if f < 0 || f > cap {
			e.logger.Sugar().Errorw("capacity violated", "edge", id, "flow", f, "capacity", cap)
			panic(ErrInconsistentState)
		}
		rec := e.g.EdgeAt(eid)
		outflow[rec.From] += f
		inflow[rec.To] += f
	}

	for u := 0; u < e.g.Nodes(); u++ {
		node := NodeID(u)
		if node == s || node == t {
			continue
		}
		if inflow[u] != outflow[u] {
			e.logger.Sugar().Errorw("flow conservation violated", "node", u,
				"inflow", inflow[u], "outflow", outflow[u])
			panic(ErrInconsistentState)
		}
	}

	if outflow[s]-inflow[s] != e.f {
		e.logger.Sugar().Errorw("source net outflow does not match cached f",
			"netOutflow", outflow[s]-inflow[s], "f", e.f)
		panic(ErrInconsistentState)
	}
}
