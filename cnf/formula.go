package cnf

// Formula is the reference read-only CNF collaborator: a fixed set of
// clauses plus, for each literal, the occurrence list of clauses in which
// that literal's negation is a watched position — the same
// negation-indexed convention gophersat's watcherList uses, so that
// cover.Engine's fast-mode walk (which asks "what clauses watch the
// literal opposite v's assigned polarity") finds exactly the clauses
// containing v's true literal.
//
// Unlike a live CDCL solver's two-watched-literal scheme, Formula indexes
// every occurrence rather than just two literals per clause: cover.Engine
// only ever runs after the formula is fully and permanently satisfied, so
// there is no propagation to keep cheap, and a complete index gives the
// fast-mode path the exact clause set the algorithm calls for.
type Formula struct {
	clauses []Clause
	watches [][]Watcher // indexed by Lit
	nVars   int
}

// NewFormula returns an empty formula over nVars variables.
func NewFormula(nVars int) *Formula {
	return &Formula{
		nVars:   nVars,
		watches: make([][]Watcher, nVars*2),
	}
}

// AddClause appends c and indexes its literals, returning c's index.
func (f *Formula) AddClause(c Clause) int {
	idx := len(f.clauses)
	f.clauses = append(f.clauses, c)
	for i := 0; i < c.Len(); i++ {
		l := c.Get(i)
		neg := l.Negation()
		f.watches[neg] = append(f.watches[neg], Watcher{ClauseIdx: idx, Blocker: l})
	}
	return idx
}

// NVars implements cover.SolverView.
func (f *Formula) NVars() int { return f.nVars }

// NumClauses implements cover.SolverView.
func (f *Formula) NumClauses() int { return len(f.clauses) }

// Clause implements cover.SolverView.
func (f *Formula) Clause(i int) Clause { return f.clauses[i] }

// Watches implements cover.SolverView.
func (f *Formula) Watches(l Lit) []Watcher { return f.watches[l] }

// Assignment is the reference read-only truth-assignment collaborator: a
// dense per-variable value vector plus the trail of literals in the order
// they were assigned, and the decision-level-0 boundary within that trail.
type Assignment struct {
	model         []LitValue
	trail         []Lit
	trailLim0     int
	decisionLevel int
}

// NewAssignment returns an unassigned Assignment over nVars variables.
func NewAssignment(nVars int) *Assignment {
	return &Assignment{model: make([]LitValue, nVars)}
}

// Assign records l as true (and its variable as decided) at the current
// decision level, appending it to the trail.
func (a *Assignment) Assign(l Lit) {
	if l.IsPositive() {
		a.model[l.Var()] = True
	} else {
		a.model[l.Var()] = False
	}
	a.trail = append(a.trail, l)
}

// BeginDecisionLevel marks the current trail length as the boundary of
// decision level 0; call this once, immediately after asserting every
// literal forced at level 0 and before any branching literal is assigned.
func (a *Assignment) BeginDecisionLevel() {
	a.trailLim0 = len(a.trail)
	a.decisionLevel = 1
}

// Value implements cover.SolverView.
func (a *Assignment) Value(l Lit) LitValue {
	v := a.model[l.Var()]
	if v == Undef {
		return Undef
	}
	positive := v == True
	if l.IsPositive() == positive {
		return True
	}
	return False
}

// Trail implements cover.SolverView.
func (a *Assignment) Trail() []Lit { return a.trail }

// TrailLim0 implements cover.SolverView.
func (a *Assignment) TrailLim0() int { return a.trailLim0 }

// DecisionLevel implements cover.SolverView.
func (a *Assignment) DecisionLevel() int { return a.decisionLevel }
