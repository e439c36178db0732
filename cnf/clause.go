package cnf

// Clause is an ordered, fixed sequence of literals. Unlike gophersat's
// solver.Clause it carries no LBD, activity, or learned-flag bookkeeping:
// that machinery belongs to a CDCL search loop, which cover.Engine never
// runs — it only ever reads a clause that a satisfying assignment already
// makes true.
type Clause struct {
	lits []Lit
}

// NewClause returns a Clause over the given literals. The slice is kept,
// not copied.
func NewClause(lits []Lit) Clause {
	return Clause{lits: lits}
}

// Len returns the number of literals in the clause.
func (c Clause) Len() int { return len(c.lits) }

// Get returns the i-th literal.
func (c Clause) Get(i int) Lit { return c.lits[i] }

// Watcher pairs a clause reference with a blocker literal, mirroring
// gophersat's watcher{other Lit; clause *Clause}: when walking a watch
// list, checking the blocker first often avoids dereferencing the clause
// at all.
type Watcher struct {
	ClauseIdx int
	Blocker   Lit
}
