// Command satflow-demo wires configuration, logging, the cover engine and
// the dynamic max-flow engine together against small hand-built inputs, in
// the spirit of the teacher's own main.go wiring a parser, a logger and a
// partitioner together end to end.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/covermax/satflow/cnf"
	"github.com/covermax/satflow/cover"
	"github.com/covermax/satflow/dgraph"
	"github.com/covermax/satflow/internal/config"
	"github.com/covermax/satflow/internal/logging"
	"github.com/covermax/satflow/maxflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	demoCover(log, cfg)
	demoMaxFlow(log, cfg)
}

// demoCover builds a tiny formula ((x1 v x2) & (x1 v x3)), assigns
// everything true, and computes its minimal cover.
func demoCover(log *zap.Logger, cfg config.Configuration) {
	f := cnf.NewFormula(3)
	x1, x2, x3 := cnf.Var(0).Lit(), cnf.Var(1).Lit(), cnf.Var(2).Lit()
	f.AddClause(cnf.NewClause([]cnf.Lit{x1, x2}))
	f.AddClause(cnf.NewClause([]cnf.Lit{x1, x3}))

	a := cnf.NewAssignment(3)
	a.Assign(x1)
	a.BeginDecisionLevel()
	a.Assign(x2)
	a.Assign(x3)

	view := struct {
		*cnf.Formula
		*cnf.Assignment
	}{f, a}

	eng := cover.NewEngine(cover.WithFastPartial(cfg.FastPartialCover), cover.WithDebug(cfg.DebugAssertions))
	result, err := eng.GetCover(view)
	if err != nil {
		log.Error("cover computation failed", zap.Error(err))
		return
	}
	for _, l := range result {
		fmt.Printf("cover literal: %d\n", l.Int())
	}
}

// demoMaxFlow builds a 4-node diamond graph, computes max flow, then
// disables the bottleneck edge and recomputes incrementally.
func demoMaxFlow(log *zap.Logger, cfg config.Configuration) {
	g := dgraph.New(4)
	s, a, b, t := maxflow.NodeID(0), maxflow.NodeID(1), maxflow.NodeID(2), maxflow.NodeID(3)
	cap := dgraph.NewCapacityMap[int](4)

	e1 := g.AddEdge(s, a)
	cap.Set(e1, 10)
	e2 := g.AddEdge(a, t)
	cap.Set(e2, 5)
	e3 := g.AddEdge(s, b)
	cap.Set(e3, 5)
	e4 := g.AddEdge(b, t)
	cap.Set(e4, 10)

	eng := maxflow.NewEngine[int](g, cap, maxflow.WithDebug[int](cfg.DebugAssertions), maxflow.WithLogger[int](log))
	flow := eng.MaxFlow(s, t)
	fmt.Printf("max flow before edge disable: %d\n", flow)

	g.DisableEdge(e2)
	flow = eng.MaxFlow(s, t)
	fmt.Printf("max flow after disabling a->t: %d\n", flow)
}
