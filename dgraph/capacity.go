package dgraph

import "github.com/covermax/satflow/maxflow"

// CapacityMap is the reference maxflow.Capacity[W] collaborator: a plain
// slice indexed by edge id, owned by the CapacityMap and written only
// through Set, which grows it as needed. maxflow.Engine only reads it.
type CapacityMap[W maxflow.Weight] struct {
	cap []W
}

// NewCapacityMap returns a CapacityMap sized for a graph with the given
// edge count, all capacities initialized to zero.
func NewCapacityMap[W maxflow.Weight](numEdges int) *CapacityMap[W] {
	return &CapacityMap[W]{cap: make([]W, numEdges)}
}

// Set assigns id's capacity. Typically called once per edge right after
// Graph.AddEdge returns its id.
func (c *CapacityMap[W]) Set(id maxflow.EdgeID, capacity W) {
	if int(id) >= len(c.cap) {
		grown := make([]W, int(id)+1)
		copy(grown, c.cap)
		c.cap = grown
	}
	c.cap[id] = capacity
}

// CapacityOf implements maxflow.Capacity[W].
func (c *CapacityMap[W]) CapacityOf(id maxflow.EdgeID) W {
	return c.cap[id]
}
