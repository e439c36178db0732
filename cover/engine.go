// Package cover computes a locally minimal cover: a set of true literals,
// drawn from a caller-designated subset of variables, such that every
// clause of a satisfied CNF formula is satisfied by either a cover literal
// or an excluded-variable literal.
//
// It is adapted from MonoSAT's Cover.h, generalized from a single global
// Solver to the SolverView collaborator interface so it can run against
// any read-only, fully-assigned CNF view — not just a live solver's own
// trail and watch lists.
package cover

import (
	"go.uber.org/zap"

	"github.com/covermax/satflow/cnf"
)

// Engine computes covers. A single instance is reused across many
// GetCover calls against the same or a growing SolverView; its internal
// buffers grow monotonically with the formula size and are never shrunk.
//
// Not safe for concurrent use by multiple goroutines. Independent Engine
// instances over independent SolverViews may run concurrently.
type Engine struct {
	fastPartial bool
	debug       bool
	logger      *zap.Logger

	excluded []bool // per-variable: true if excluded from cover
	included []bool // per-variable: derived inverse of excluded, rebuilt lazily
	dirty    bool   // true when excluded changed since included was last derived

	inCover []bool // per-variable: currently selected into the cover
	cover   []cnf.Lit

	coverCount  []int     // per-clause
	greedyScore []int     // per-variable
	clauseIndex [][]int   // per-variable: uncovered clause ids it is a candidate for
	candidates  []cnf.Lit // potential cover literals, first-seen order
	scratch     []cnf.Lit // per-clause candidate scratch, reused
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithFastPartial selects the fast watch-list-driven algorithm instead of
// the default full greedy-with-essentiality-pruning algorithm.
func WithFastPartial(enabled bool) Option {
	return func(e *Engine) { e.fastPartial = enabled }
}

// WithDebug enables the precondition check that every cover-eligible
// variable is already assigned, returning ErrUnassignedVariable instead of
// silently reading garbage on violation.
func WithDebug(enabled bool) Option {
	return func(e *Engine) { e.debug = enabled }
}

// WithLogger attaches a logger used for debug-mode diagnostics. Defaults
// to zap.NewNop(); a nil logger is replaced with zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine returns a ready-to-use Engine. Every variable starts included
// in the cover eligibility set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop(), dirty: true}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// SetExcluded sets whether v may be selected into the cover. Variables
// default to included (excluded = false).
func (e *Engine) SetExcluded(v cnf.Var, excluded bool) {
	e.ensureVarCapacity(int(v) + 1)
	e.excluded[v] = excluded
	e.dirty = true
}

func (e *Engine) ensureVarCapacity(n int) {
	if n <= len(e.excluded) {
		return
	}
	grown := make([]bool, n)
	copy(grown, e.excluded)
	e.excluded = grown
	e.dirty = true
}

func (e *Engine) refreshIncluded(nVars int) {
	e.ensureVarCapacity(nVars)
	if len(e.included) < nVars {
		grown := make([]bool, nVars)
		copy(grown, e.included)
		e.included = grown
	}
	if !e.dirty {
		return
	}
	for v := 0; v < nVars; v++ {
		e.included[v] = !e.excluded[v]
	}
	e.dirty = false
}

func (e *Engine) isIncluded(v cnf.Var) bool {
	return e.included[v]
}

func (e *Engine) ensureClauseBuffers(nVars, nClauses int) {
	if len(e.greedyScore) < nVars {
		e.greedyScore = make([]int, nVars)
		e.clauseIndex = make([][]int, nVars)
	}
	if len(e.coverCount) < nClauses {
		e.coverCount = make([]int, nClauses)
	}
}

// GetCover recomputes the cover against s and returns it. The returned
// slice is owned by the Engine and is invalidated by the next call.
//
// Precondition: the current assignment in s satisfies every clause, and
// every cover-eligible variable is assigned. Violating this is a
// programmer error; with WithDebug(true) it surfaces as
// ErrUnassignedVariable instead of undefined behavior.
func (e *Engine) GetCover(s SolverView) ([]cnf.Lit, error) {
	nVars := s.NVars()
	e.refreshIncluded(nVars)

	for i := range e.inCover {
		e.inCover[i] = false
	}
	if len(e.inCover) < nVars {
		e.inCover = make([]bool, nVars)
	}
	e.cover = e.cover[:0]

	if e.debug {
		for v := 0; v < nVars; v++ {
			if !e.isIncluded(cnf.Var(v)) {
				continue
			}
			if s.Value(cnf.Var(v).Lit()) == cnf.Undef {
				e.logger.Sugar().Errorw("cover-eligible variable unassigned", "var", v)
				return nil, ErrUnassignedVariable
			}
		}
	}

	// Literals forced at decision level 0 are free: add every eligible one
	// unconditionally, regardless of algorithm mode.
	bound := s.TrailLim0()
	if s.DecisionLevel() == 0 {
		bound = len(s.Trail())
	}
	trail := s.Trail()
	for i := 0; i < bound; i++ {
		l := trail[i]
		v := l.Var()
		if !e.isIncluded(v) || e.inCover[v] {
			continue
		}
		e.inCover[v] = true
		e.cover = append(e.cover, l)
	}

	if e.fastPartial {
		e.fastCover(s)
	} else {
		e.exactCover(s)
	}

	return e.cover, nil
}

// trueLit returns the literal of v that currently holds under s.
func trueLit(s SolverView, v cnf.Var) cnf.Lit {
	p := v.Lit()
	if s.Value(p) == cnf.False {
		return p.Negation()
	}
	return p
}

// fastCover implements the watch-list-driven partial algorithm: for each
// not-yet-covered eligible variable, walk the clauses that contain its
// true literal and decide each one on the spot. A clause where p is the
// only eligible true literal is forced onto p no matter what else is true
// in it. Otherwise the clause is left alone if some other literal already
// covers it (excluded-and-true, or an eligible literal already selected);
// if not, p is committed anyway — this always decides in favor of the
// variable currently being scanned rather than waiting for a competing
// literal's own turn, which is what guarantees every clause ends up
// covered in a single pass — see DESIGN.md for why the literal "defer"
// reading doesn't.
func (e *Engine) fastCover(s SolverView) {
	for v := 0; v < s.NVars(); v++ {
		cv := cnf.Var(v)
		if !e.isIncluded(cv) || e.inCover[v] {
			continue
		}
		p := trueLit(s, cv)
		for _, w := range s.Watches(p.Negation()) {
			c := s.Clause(w.ClauseIdx)
			sole, coveredByOther := e.classifyClause(s, c, p)
			if !sole && coveredByOther {
				continue
			}
			e.inCover[v] = true
			e.cover = append(e.cover, p)
			break
		}
	}
}

// classifyClause scans c, where p is a true literal of an eligible
// variable. sole reports whether p is the only true literal belonging to
// an eligible variable. coveredByOther reports whether, ignoring p, some
// other literal is true and either belongs to an already-covered eligible
// variable or to an excluded one.
func (e *Engine) classifyClause(s SolverView, c cnf.Clause, p cnf.Lit) (sole, coveredByOther bool) {
	eligibleTrue := 0
	for i := 0; i < c.Len(); i++ {
		l := c.Get(i)
		if s.Value(l) != cnf.True {
			continue
		}
		v := l.Var()
		if !e.isIncluded(v) {
			if l != p {
				coveredByOther = true
			}
			continue
		}
		eligibleTrue++
		if l != p && e.inCover[v] {
			coveredByOther = true
		}
	}
	return eligibleTrue == 1, coveredByOther
}

// exactCover implements the three-pass full greedy algorithm: forced
// single-candidate clauses, then greedy selection by descending
// per-variable score (ties broken by first-seen order), then essentiality
// pruning of cover literals every one of whose clauses is also covered by
// someone else.
func (e *Engine) exactCover(s SolverView) {
	nVars := s.NVars()
	nClauses := s.NumClauses()
	e.ensureClauseBuffers(nVars, nClauses)

	coverCount := e.coverCount[:nClauses]
	for i := range coverCount {
		coverCount[i] = 0
	}
	greedyScore := e.greedyScore[:nVars]
	for i := range greedyScore {
		greedyScore[i] = 0
	}
	for v := 0; v < nVars; v++ {
		if cap(e.clauseIndex[v]) > 0 {
			e.clauseIndex[v] = e.clauseIndex[v][:0]
		}
	}
	e.candidates = e.candidates[:0]

	// pass 1: forced literals. A clause is forced when exactly one of its
	// true literals belongs to an included variable — other true literals
	// belonging to excluded variables don't disqualify this, they're
	// simply not counted: an excluded variable's own true literal can
	// already satisfy the clause under the coverage invariant, but that
	// never stops the single eligible literal from being mandatory too.
	for i := 0; i < nClauses; i++ {
		c := s.Clause(i)
		var sole cnf.Lit
		count := 0
		for q := 0; q < c.Len(); q++ {
			l := c.Get(q)
			if s.Value(l) != cnf.True || !e.isIncluded(l.Var()) {
				continue
			}
			sole = l
			count++
			if count > 1 {
				break
			}
		}
		if count == 1 {
			coverCount[i]++
			v := sole.Var()
			if !e.inCover[v] {
				e.inCover[v] = true
				e.cover = append(e.cover, sole)
			}
		}
	}

	// pass 2: collect greedy candidates for every clause still uncovered.
	for i := 0; i < nClauses; i++ {
		c := s.Clause(i)
		e.scratch = e.scratch[:0]
		sat := false
		for j := 0; j < c.Len(); j++ {
			l := c.Get(j)
			if s.Value(l) != cnf.True {
				continue
			}
			v := l.Var()
			if !e.isIncluded(v) || e.inCover[v] {
				coverCount[i]++
				sat = true
				break
			}
			e.scratch = append(e.scratch, l)
		}
		if sat {
			continue
		}
		for _, l := range e.scratch {
			v := l.Var()
			if greedyScore[v] == 0 {
				e.candidates = append(e.candidates, l)
			}
			greedyScore[v]++
			e.clauseIndex[v] = append(e.clauseIndex[v], i)
		}
	}

	sortCandidatesByScore(e.candidates, greedyScore)

	// pass 3: greedily select candidates, highest score first, until every
	// clause has cover count >= 1. i only ever advances, so the whole
	// sweep is amortized O(clauses).
	i := 0
	rank := 0
	for {
		for ; i < nClauses; i++ {
			if coverCount[i] == 0 {
				break
			}
		}
		if i == nClauses {
			break
		}
		lit := e.candidates[rank]
		rank++
		v := lit.Var()
		newlyCovers := false
		for _, cl := range e.clauseIndex[v] {
			if coverCount[cl] == 0 {
				newlyCovers = true
				break
			}
		}
		if !newlyCovers {
			continue
		}
		e.cover = append(e.cover, lit)
		e.inCover[v] = true
		for _, cl := range e.clauseIndex[v] {
			coverCount[cl]++
		}
	}

	e.pruneInessential(coverCount)
}

// pruneInessential removes cover literals every one of whose clauses is
// also covered by at least one other selected literal. Literals from the
// forced pass (whose per-variable clause index is empty) are skipped —
// they are treated as trivially essential.
func (e *Engine) pruneInessential(coverCount []int) {
	start := 0
	for start < len(e.cover) && len(e.clauseIndex[e.cover[start].Var()]) == 0 {
		start++
	}
	j := start
	for i := start; i < len(e.cover); i++ {
		l := e.cover[i]
		idx := e.clauseIndex[l.Var()]
		essential := false
		for _, cl := range idx {
			if coverCount[cl] == 1 {
				essential = true
				break
			}
		}
		if essential {
			e.cover[j] = l
			j++
			continue
		}
		for _, cl := range idx {
			coverCount[cl]--
		}
	}
	e.cover = e.cover[:j]
}
