// Package dgraph is the reference DynamicGraph collaborator: a directed,
// arbitrary-capacity multigraph whose edges can be enabled and disabled
// after construction, with an append-only mutation log and the monotone
// version counters maxflow.Engine uses to decide between a cache hit, a
// full recompute, and an incremental replay.
//
// It is a generalization of the teacher's PartitionGraph (undirected,
// unit-capacity, edges never disabled) into the shape maxflow.GraphView
// requires. Nothing in this package knows about flow or max-flow — it is a
// graph container that happens to implement maxflow.GraphView structurally,
// the same separation of concerns PartitionGraph kept from
// EdmondsKarp/DinicMaxFlow.
package dgraph

import "github.com/covermax/satflow/maxflow"

// Graph is the concrete DynamicGraph. All reads are O(1) or O(out-degree);
// AddEdge/EnableEdge/DisableEdge are the edge mutators, each appending to
// history and bumping modifications plus either additions or deletions.
type Graph struct {
	numNodes int
	edges    []maxflow.EdgeRecord
	enabled  []bool

	incident [][]maxflow.AdjEntry // outgoing adjacency, incident[u] = edges u->*
	incoming [][]maxflow.AdjEntry // incoming adjacency, incoming[v] = edges *->v

	history []maxflow.HistoryEvent

	modifications int
	deletions     int
	additions     int
	historyclears int
	changedFlag   bool
}

// New returns an empty graph over n nodes with no edges.
func New(n int) *Graph {
	return &Graph{
		numNodes: n,
		incident: make([][]maxflow.AdjEntry, n),
		incoming: make([][]maxflow.AdjEntry, n),
	}
}

// AddNode appends one node and returns its id.
func (g *Graph) AddNode() maxflow.NodeID {
	id := maxflow.NodeID(g.numNodes)
	g.numNodes++
	g.incident = append(g.incident, nil)
	g.incoming = append(g.incoming, nil)
	return id
}

// Nodes returns the number of nodes.
func (g *Graph) Nodes() int { return g.numNodes }

// Edges returns the number of edges ever added (enabled or not).
func (g *Graph) Edges() int { return len(g.edges) }

// AddEdge appends a new, initially enabled, directed edge u->v and returns
// its id. Bumps modifications and additions, and appends an addition event
// to history.
func (g *Graph) AddEdge(u, v maxflow.NodeID) maxflow.EdgeID {
	id := maxflow.EdgeID(len(g.edges))
	g.edges = append(g.edges, maxflow.EdgeRecord{From: u, To: v, ID: id})
	g.enabled = append(g.enabled, true)

	g.incident[u] = append(g.incident[u], maxflow.AdjEntry{Node: v, ID: id})
	g.incoming[v] = append(g.incoming[v], maxflow.AdjEntry{Node: u, ID: id})

	g.additions++
	g.modifications++
	g.history = append(g.history, maxflow.HistoryEvent{ID: id, Addition: true})
	return id
}

// IsEdge reports whether id names an edge that has been added (regardless
// of current enabled state).
func (g *Graph) IsEdge(id maxflow.EdgeID) bool {
	return id >= 0 && int(id) < len(g.edges)
}

// EdgeEnabled reports the edge's current enabled state.
func (g *Graph) EdgeEnabled(id maxflow.EdgeID) bool {
	return g.enabled[id]
}

// EdgeAt returns the (from, to, id) record for id.
func (g *Graph) EdgeAt(id maxflow.EdgeID) maxflow.EdgeRecord {
	return g.edges[id]
}

// NIncident returns the out-degree of u.
func (g *Graph) NIncident(u maxflow.NodeID) int { return len(g.incident[u]) }

// Incident returns the k-th outgoing adjacency entry of u.
func (g *Graph) Incident(u maxflow.NodeID, k int) maxflow.AdjEntry { return g.incident[u][k] }

// NIncoming returns the in-degree of u.
func (g *Graph) NIncoming(u maxflow.NodeID) int { return len(g.incoming[u]) }

// Incoming returns the k-th incoming adjacency entry of u.
func (g *Graph) Incoming(u maxflow.NodeID, k int) maxflow.AdjEntry { return g.incoming[u][k] }

// History returns the full append-only mutation log.
func (g *Graph) History() []maxflow.HistoryEvent { return g.history }

// Modifications, Deletions, Additions, HistoryClears are the monotone
// version stamps an incremental consumer compares against its own snapshot.
func (g *Graph) Modifications() int { return g.modifications }
func (g *Graph) Deletions() int     { return g.deletions }
func (g *Graph) Additions() int     { return g.additions }
func (g *Graph) HistoryClears() int { return g.historyclears }

// Changed reports whether ClearHistory has run since the latch was last
// acknowledged. It is a single shared latch on the graph itself, not a
// per-consumer version stamp — maxflow.Engine does not consult it, since
// it already detects the same event per-instance by comparing
// HistoryClears() against what it last observed, which works correctly
// even with several Engines sharing one Graph. Changed/AcknowledgeChange
// exist for a caller that wants a one-shot "does anything need a full
// reset" check without keeping its own counter snapshot.
func (g *Graph) Changed() bool { return g.changedFlag }

// AcknowledgeChange clears the Changed() latch.
func (g *Graph) AcknowledgeChange() { g.changedFlag = false }

// EnableEdge flips a previously-disabled edge back on. No-op if already
// enabled. Bumps modifications and additions, appends an addition event.
func (g *Graph) EnableEdge(id maxflow.EdgeID) {
	if g.enabled[id] {
		return
	}
	g.enabled[id] = true
	g.additions++
	g.modifications++
	g.history = append(g.history, maxflow.HistoryEvent{ID: id, Addition: true})
}

// DisableEdge turns an edge off. No-op if already disabled. Bumps
// modifications and deletions, appends a deletion event.
func (g *Graph) DisableEdge(id maxflow.EdgeID) {
	if !g.enabled[id] {
		return
	}
	g.enabled[id] = false
	g.deletions++
	g.modifications++
	g.history = append(g.history, maxflow.HistoryEvent{ID: id, Addition: false})
}

// ClearHistory truncates the mutation log and forces every incremental
// consumer's next call to take the structural-reset path, exactly like the
// teacher rebuilding a fresh PartitionGraph between recursive-bisection
// levels rather than trying to patch one in place.
func (g *Graph) ClearHistory() {
	g.history = g.history[:0]
	g.historyclears++
	g.modifications++
	g.changedFlag = true
}
