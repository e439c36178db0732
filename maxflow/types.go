// Package maxflow implements DynamicMaxFlow: a maximum s-t flow engine
// that keeps its answer current as the edges of a collaborator graph are
// enabled and disabled, replaying the collaborator's mutation history
// instead of recomputing from scratch whenever it safely can.
//
// The engine is generic over a read-only GraphView collaborator and a
// Capacity accessor (see types.go), so it never mutates, and is never
// required to know anything about, the concrete graph container a caller
// uses. dgraph.Graph is the reference GraphView this module ships; callers
// with their own mutable-graph container only need to satisfy GraphView and
// Capacity[W] to reuse the engine unmodified.
package maxflow

import "golang.org/x/exp/constraints"

// NodeID indexes a node in the collaborator graph.
type NodeID int

// EdgeID indexes an edge in the collaborator graph.
type EdgeID int

// EdgeRecord is a directed edge (From, To) identified by ID. Reverse
// direction is implicit: residual edges are derived during BFS, never
// stored.
type EdgeRecord struct {
	From NodeID
	To   NodeID
	ID   EdgeID
}

// AdjEntry is one adjacency-list entry: the neighbor reached and the id of
// the edge used to reach it.
type AdjEntry struct {
	Node NodeID
	ID   EdgeID
}

// HistoryEvent is one entry of the collaborator's append-only mutation log.
type HistoryEvent struct {
	ID       EdgeID
	Addition bool // true: edge was enabled; false: edge was disabled
}

// Weight is the "integer-like weight type with total ordering and exact
// arithmetic" spec's data model calls for. Floating-point capacities are
// deliberately excluded — the engine gives no tolerance for FP error, per
// the package-level Non-goal.
type Weight interface {
	constraints.Integer
}

// Infinity returns a sentinel "unboundedly large" value for W: the
// maximum representable value of the underlying integer type. Used to seed
// the bottleneck of the BFS search at the source, where no edge yet bounds
// the path.
func Infinity[W Weight]() W {
	var zero W
	// Signed types: flip the sign bit off. Unsigned types: all bits set.
	allBits := ^zero
	if allBits < 0 {
		return allBits &^ (W(1) << (bitsOf(zero) - 1))
	}
	return allBits
}

func bitsOf[W Weight](W) int {
	var w W
	switch any(w).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	default:
		return 64
	}
}

// minW returns the smaller of a and b.
func minW[W Weight](a, b W) W {
	if a < b {
		return a
	}
	return b
}

// GraphView is the read-only DynamicGraph collaborator contract (external
// interfaces, DynamicGraph view): everything the engine needs to observe
// about node/edge topology, enabled state, and mutation history, and
// nothing it needs to mutate.
type GraphView interface {
	Nodes() int
	Edges() int
	IsEdge(id EdgeID) bool
	EdgeEnabled(id EdgeID) bool
	EdgeAt(id EdgeID) EdgeRecord
	NIncident(u NodeID) int
	Incident(u NodeID, k int) AdjEntry
	NIncoming(u NodeID) int
	Incoming(u NodeID, k int) AdjEntry
	History() []HistoryEvent
	Modifications() int
	Deletions() int
	Additions() int
	HistoryClears() int
	Changed() bool
}

// Capacity is the read-only capacity accessor collaborator: constant for an
// edge's lifetime.
type Capacity[W Weight] interface {
	CapacityOf(id EdgeID) W
}
