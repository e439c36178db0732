package cover

import "github.com/covermax/satflow/cnf"

// SolverView is the read-only SAT-solver collaborator cover.Engine consumes.
// *cnf.Formula paired with *cnf.Assignment implements it directly; nothing
// in this package depends on a concrete solver beyond this shape, the same
// way maxflow.Engine depends only on GraphView rather than a concrete
// graph.
type SolverView interface {
	NVars() int
	Value(l cnf.Lit) cnf.LitValue
	Trail() []cnf.Lit
	TrailLim0() int
	DecisionLevel() int
	NumClauses() int
	Clause(i int) cnf.Clause
	Watches(l cnf.Lit) []cnf.Watcher
}
