package maxflow

import "fmt"

// Sentinel errors used as panic values by debug-build checks (engine
// constructed with WithDebug(true)). Release builds elide these checks per the
// package's failure semantics: contract violations are otherwise fatal
// programmer errors, not recoverable conditions.

// ErrUnknownNode is the panic value when a node id is outside [0, Nodes()).
var ErrUnknownNode = fmt.Errorf("maxflow: unknown node")

// ErrUnknownEdge is the panic value when an edge id is not IsEdge() on the
// collaborator graph.
var ErrUnknownEdge = fmt.Errorf("maxflow: unknown edge")

// ErrDisabledEdge is the panic value of EdgeFlow/EdgeResidualCapacity when
// called on a currently-disabled edge, violating their stated precondition.
var ErrDisabledEdge = fmt.Errorf("maxflow: edge is disabled")

// ErrInconsistentState is the panic value of debug-build consistency checks
// (flow conservation, capacity respect, max-flow/min-cut equality) when the
// engine's own invariants have been violated — a bug in the engine, not in
// caller input.
var ErrInconsistentState = fmt.Errorf("maxflow: internal invariant violated")
