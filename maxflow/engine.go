package maxflow

import "go.uber.org/zap"

// predUnvisited and predSource are the sentinel values a predecessor's from
// field takes when a node has not yet been reached by BFS, or is the BFS
// source itself. Keeping the sentinel encoding (rather than a tagged
// variant enum) matches the collaborator's own representation and avoids
// an allocation-per-node variant tag; the encoding is documented here and
// nowhere else in the package.
const (
	predUnvisited NodeID = -1
	predSource    NodeID = -2
)

// noShortcut is passed as shortcutFrom to search when a call has no virtual
// arc — distinct from any real NodeID or from the sentinels above.
const noShortcut NodeID = -3

// predecessor records, for one node reached during a BFS, which edge
// (forward or backward across it) led to it. edge is -1 for the virtual
// step across a shortcut arc; the augmentation walk must not touch F there.
type predecessor struct {
	from     NodeID
	edge     EdgeID
	backward bool
}

// Engine is DynamicMaxFlow: it holds the cached flow, the residual-BFS
// scratch buffers, and the version stamps used to decide, on every
// MaxFlow/MinCut call, whether the collaborator graph changed since the
// last call and if so how cheaply the answer can be brought up to date.
//
// An Engine is not safe for concurrent use — see package maxflow.SolveAll
// for running many independent Engines (one per goroutine) concurrently.
type Engine[W Weight] struct {
	g        GraphView
	capacity Capacity[W]
	debug    bool
	logger   *zap.Logger

	f           W
	flow        []W // F[e]: flow currently assigned to edge e
	prev        []predecessor
	bottleneck  []W // M[node]: path bottleneck found so far during a BFS
	edgeEnabled []bool
	queue       []NodeID

	initialized      bool
	lastModification int
	lastDeletion     int
	lastAddition     int
	lastHistoryClear int
	historyQHead     int

	bfsInvocations int
}

// Option configures an Engine at construction time.
type Option[W Weight] func(*Engine[W])

// WithDebug enables the engine's debug-build consistency checks: flow
// conservation and capacity respect are verified after every MaxFlow call,
// and max-flow/min-cut equality after every MinCut call. A violation is
// logged and then raised as a panic with ErrInconsistentState. Release code
// should leave this off.
func WithDebug[W Weight](debug bool) Option[W] {
	return func(e *Engine[W]) { e.debug = debug }
}

// WithLogger attaches a logger used only for debug-build diagnostics and
// one-line traces of the cache-hit/full-recompute/incremental-replay state
// transition. A nil logger (the default) is replaced with zap.NewNop().
func WithLogger[W Weight](logger *zap.Logger) Option[W] {
	return func(e *Engine[W]) { e.logger = logger }
}

// NewEngine returns a new engine over the given collaborator graph and
// capacity accessor. g and capacity are borrowed read-only for the
// lifetime of every call; the engine never mutates either.
func NewEngine[W Weight](g GraphView, capacity Capacity[W], opts ...Option[W]) *Engine[W] {
	e := &Engine[W]{g: g, capacity: capacity, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// BFSInvocations returns the number of residual-graph BFS searches this
// engine has run over its lifetime. Exists purely so the cache-hit path
// (MaxFlow returning the cached value without doing any search work) is
// mechanically observable in tests.
func (e *Engine[W]) BFSInvocations() int { return e.bfsInvocations }

// ensureSized grows the engine's scratch buffers to match the
// collaborator's current node/edge counts. Buffers only ever grow; shrink
// never happens because graphs in this model don't shrink.
func (e *Engine[W]) ensureSized() {
	n, m := e.g.Nodes(), e.g.Edges()
	for len(e.flow) < m {
		e.flow = append(e.flow, 0)
		e.edgeEnabled = append(e.edgeEnabled, false)
	}
	for len(e.prev) < n {
		e.prev = append(e.prev, predecessor{from: predUnvisited})
		e.bottleneck = append(e.bottleneck, 0)
	}
}

// MaxFlow returns the current maximum s-t flow, bringing the cached answer
// up to date per the collaborator's version stamps: a cache hit returns
// immediately, a structural change triggers a full Edmonds-Karp
// recomputation, and anything in between replays only the history entries
// since the last call.
//
// The structural-reset trigger is e.lastHistoryClear tracked here, not
// g.Changed(): Changed() is a single latch on the collaborator itself, so
// nothing would ever be left to clear it once two or more Engines (or two
// calls with no cheap way to acknowledge in between) observed it. Each
// Engine instead keeps its own copy of HistoryClears(), which is exactly
// the per-consumer version-stamp comparison every other branch here uses.
func (e *Engine[W]) MaxFlow(s, t NodeID) W {
	if e.debug {
		e.checkNode(s)
		e.checkNode(t)
	}
	e.ensureSized()

	switch {
	case e.initialized && e.g.Modifications() == e.lastModification:
		e.logger.Debug("maxflow: cache hit")
		return e.f

	case !e.initialized || e.g.HistoryClears() != e.lastHistoryClear:
		e.logger.Debug("maxflow: full recompute")
		e.fullRecompute(s, t)

	default:
		e.logger.Debug("maxflow: incremental replay")
		e.replay(s, t)
	}

	e.lastModification = e.g.Modifications()
	e.lastDeletion = e.g.Deletions()
	e.lastAddition = e.g.Additions()
	e.historyQHead = len(e.g.History())
	e.lastHistoryClear = e.g.HistoryClears()
	e.initialized = true

	if e.debug {
		e.checkInvariants(s, t)
	}
	return e.f
}

// fullRecompute resizes and zeroes every scratch buffer, snapshots
// edgeEnabled from the collaborator, and runs classical Edmonds-Karp from
// scratch.
func (e *Engine[W]) fullRecompute(s, t NodeID) {
	n, m := e.g.Nodes(), e.g.Edges()
	e.flow = make([]W, m)
	e.prev = make([]predecessor, n)
	e.bottleneck = make([]W, n)
	e.edgeEnabled = make([]bool, m)
	for i := 0; i < m; i++ {
		e.edgeEnabled[i] = e.g.IsEdge(EdgeID(i)) && e.g.EdgeEnabled(EdgeID(i))
	}
	e.f = e.loopAugment(s, t, 0, false)
	e.historyQHead = len(e.g.History())
}

// replay walks the collaborator's history since the last call, enabling
// newly-added edges (deferring augmentation), and repairing flow across
// newly-disabled edges that were carrying it — rerouting as much as
// possible locally and, for whatever can't be rerouted, running a
// shortcut-augmented search before giving up the remainder. After the
// replay, any edge additions get a chance to saturate new augmenting
// paths.
func (e *Engine[W]) replay(s, t NodeID) {
	history := e.g.History()
	addedEdges := false
	needsReflow := false

	for i := e.historyQHead; i < len(history); i++ {
		ev := history[i]
		switch {
		case ev.Addition && e.g.EdgeEnabled(ev.ID):
			e.edgeEnabled[ev.ID] = true
			addedEdges = true

		case !ev.Addition && !e.g.EdgeEnabled(ev.ID):
			e.edgeEnabled[ev.ID] = false
			fv := e.flow[ev.ID]
			if fv == 0 {
				break
			}
			rec := e.g.EdgeAt(ev.ID)
			u, v := rec.From, rec.To
			if fv < 0 {
				u, v = v, u
				fv = -fv
			}
			recovered := e.loopAugment(u, v, fv, true)
			if recovered < fv {
				delta := fv - recovered
				e.loopAugmentShortcut(u, v, s, t, delta)
				needsReflow = true
			}
			e.flow[ev.ID] = 0
		}
	}

	if needsReflow {
		e.f = 0
		for i := 0; i < e.g.NIncident(s); i++ {
			adj := e.g.Incident(s, i)
			if e.edgeEnabled[adj.ID] {
				e.f += e.flow[adj.ID]
			}
		}
	}
	if addedEdges {
		e.f += e.loopAugment(s, t, 0, false)
	}
}

// loopAugment repeatedly finds an augmenting path from s to t in the
// residual graph and applies it, until BFS fails or (when bounded) the
// requested amount has been fully augmented. Returns the total flow added
// by this call.
func (e *Engine[W]) loopAugment(s, t NodeID, bound W, bounded bool) W {
	var added W
	for {
		m := e.search(s, t, noShortcut, 0, 0, 0)
		if bounded {
			if added+m > bound {
				m = bound - added
			}
		}
		if m <= 0 {
			return added
		}
		added += m
		e.augmentWalk(t, s, m, noShortcut)
	}
}

// loopAugmentShortcut repeatedly finds an augmenting path from searchFrom
// to searchTo that may take one hop across a virtual arc shortcutFrom ->
// shortcutTo of capacity bound, until BFS fails or bound is exhausted.
// Used only for post-deletion flow repair (see replay).
func (e *Engine[W]) loopAugmentShortcut(searchFrom, searchTo, shortcutFrom, shortcutTo NodeID, bound W) W {
	var shortcutFlow, added W
	for {
		m := e.search(searchFrom, searchTo, shortcutFrom, shortcutTo, bound, shortcutFlow)
		if added+m > bound {
			m = bound - added
		}
		if m <= 0 {
			return added
		}
		added += m
		if e.augmentWalkTrackShortcut(searchTo, searchFrom, m, shortcutFrom) {
			shortcutFlow += m
		}
	}
}

// search runs one residual-graph BFS from s, optionally treating
// shortcutTo as a virtual neighbor of shortcutFrom with residual capacity
// shortcutCapacity-shortcutFlow. Returns the bottleneck of the path found
// to t, or 0 if t is unreachable.
func (e *Engine[W]) search(s, t, shortcutFrom, shortcutTo NodeID, shortcutCapacity, shortcutFlow W) W {
	e.bfsInvocations++
	for i := range e.prev {
		e.prev[i].from = predUnvisited
	}
	e.prev[s] = predecessor{from: predSource}
	e.bottleneck[s] = Infinity[W]()

	e.queue = e.queue[:0]
	e.queue = append(e.queue, s)
	for qi := 0; qi < len(e.queue); qi++ {
		u := e.queue[qi]

		if shortcutFrom != noShortcut && u == shortcutFrom {
			resid := shortcutCapacity - shortcutFlow
			if resid > 0 && e.prev[shortcutTo].from == predUnvisited {
				e.prev[shortcutTo] = predecessor{from: u, edge: -1}
				e.bottleneck[shortcutTo] = minW(e.bottleneck[u], resid)
				if shortcutTo == t {
					return e.bottleneck[t]
				}
				e.queue = append(e.queue, shortcutTo)
			}
		}

		for i := 0; i < e.g.NIncident(u); i++ {
			adj := e.g.Incident(u, i)
			if !e.edgeEnabled[adj.ID] || e.prev[adj.Node].from != predUnvisited {
				continue
			}
			resid := e.capacity.CapacityOf(adj.ID) - e.flow[adj.ID]
			if resid <= 0 {
				continue
			}
			e.prev[adj.Node] = predecessor{from: u, edge: adj.ID, backward: false}
			e.bottleneck[adj.Node] = minW(e.bottleneck[u], resid)
			if adj.Node == t {
				return e.bottleneck[t]
			}
			e.queue = append(e.queue, adj.Node)
		}

		for i := 0; i < e.g.NIncoming(u); i++ {
			adj := e.g.Incoming(u, i)
			if !e.edgeEnabled[adj.ID] || e.prev[adj.Node].from != predUnvisited {
				continue
			}
			resid := e.flow[adj.ID]
			if resid <= 0 {
				continue
			}
			e.prev[adj.Node] = predecessor{from: u, edge: adj.ID, backward: true}
			e.bottleneck[adj.Node] = minW(e.bottleneck[u], resid)
			if adj.Node == t {
				return e.bottleneck[t]
			}
			e.queue = append(e.queue, adj.Node)
		}
	}
	return 0
}

// augmentWalk follows prev from t back to s, adding m units of flow to
// each forward step and subtracting m from each backward step.
func (e *Engine[W]) augmentWalk(t, s NodeID, m W, shortcutFrom NodeID) {
	v := t
	for v != s {
		p := e.prev[v]
		if p.edge < 0 {
			v = shortcutFrom
			continue
		}
		if p.backward {
			e.flow[p.edge] -= m
		} else {
			e.flow[p.edge] += m
		}
		v = p.from
	}
}

// augmentWalkTrackShortcut behaves like augmentWalk but additionally
// reports whether the path it just applied crossed the shortcut arc, so
// the caller can account for the shortcut's own capacity consumption.
func (e *Engine[W]) augmentWalkTrackShortcut(t, s NodeID, m W, shortcutFrom NodeID) bool {
	usedShortcut := false
	v := t
	for v != s {
		p := e.prev[v]
		if p.edge < 0 {
			usedShortcut = true
			v = shortcutFrom
			continue
		}
		if p.backward {
			e.flow[p.edge] -= m
		} else {
			e.flow[p.edge] += m
		}
		v = p.from
	}
	return usedShortcut
}

// EdgeFlow returns F[id]. Precondition: id names an edge that is currently
// enabled.
func (e *Engine[W]) EdgeFlow(id EdgeID) W {
	if e.debug {
		e.checkEdge(id)
	}
	return e.flow[id]
}

// EdgeResidualCapacity returns capacity[id] - F[id]. Precondition: id
// names an edge that is currently enabled.
func (e *Engine[W]) EdgeResidualCapacity(id EdgeID) W {
	if e.debug {
		e.checkEdge(id)
	}
	return e.capacity.CapacityOf(id) - e.flow[id]
}
