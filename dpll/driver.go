package dpll

import (
	"math/rand"

	"github.com/hashicorp/go-hclog"
)

// frameState tracks which branch of a decision frame's literal has been
// tried.
type frameState int

const (
	tryPositive frameState = iota
	tryNegative
	frameDone
)

// frame is one decision-frame record: the literal branched on, which of its
// two values is next to try, and the snapshots needed to undo everything
// done since the frame was pushed.
type frame struct {
	branchLit Literal
	state     frameState
	assignSt  assignState
	dbSt      dbState
}

// Config holds the options a Solver is built with.
type Config struct {
	Logger hclog.Logger
	Rand   *rand.Rand
}

// Option configures a Solver at construction time.
type Option func(*Config)

// WithLogger attaches a structured logger; decisions, propagated units,
// conflicts, and backtracks are emitted at Trace level. The default is a
// null logger, so logging is opt-in and free when unused.
func WithLogger(l hclog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithRandSource fixes the random source used to build clause skip lists,
// for deterministic tests.
func WithRandSource(r *rand.Rand) Option {
	return func(c *Config) { c.Rand = r }
}

// Solver drives DPLL search over one CNF formula: decision-frame stack,
// branching policy, unit propagation, and all-solutions enumeration. A
// Solver is single-threaded and stateful — call Init once, then Next
// repeatedly until it returns false.
type Solver struct {
	numVars int
	db      *clauseDB
	assign  *assignment
	heap    *litHeap
	frames  []frame
	log     hclog.Logger
}

// New builds a Solver for a formula with numVars variables and the given
// clauses (each a slice of nonzero signed Literal values).
func New(numVars int, clauses [][]Literal, opts ...Option) *Solver {
	cfg := Config{
		Logger: hclog.NewNullLogger(),
		Rand:   rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dedup := make([][]Literal, len(clauses))
	occurrences := make(map[Literal]int)
	for i, cl := range clauses {
		seen := make(map[Literal]bool, len(cl))
		out := make([]Literal, 0, len(cl))
		for _, l := range cl {
			if seen[l] {
				continue
			}
			seen[l] = true
			out = append(out, l)
			occurrences[l]++
		}
		dedup[i] = out
	}

	heap := newLitHeap(numVars, occurrences)
	db := newClauseDB(dedup, cfg.Rand)
	asn := newAssignment(numVars, heap)

	return &Solver{
		numVars: numVars,
		db:      db,
		assign:  asn,
		heap:    heap,
		log:     cfg.Logger,
	}
}

// Init pushes the root decision frame and searches for the first solution.
func (s *Solver) Init() bool {
	s.frames = append(s.frames, frame{
		branchLit: s.assign.request(),
		state:     tryPositive,
		assignSt:  s.assign.state(),
		dbSt:      s.db.state(),
	})
	return s.search()
}

// Next rewinds the most recent frame and searches for the next solution.
func (s *Solver) Next() bool {
	if len(s.frames) > 0 {
		top := &s.frames[len(s.frames)-1]
		s.assign.restoreTo(top.assignSt)
		s.db.restoreTo(top.dbSt)
	}
	return s.search()
}

// Match copies out the current model.
func (s *Solver) Match() []Value {
	return s.assign.match()
}

// search runs the frame state machine until either a complete assignment is
// found (a frame whose branch literal is 0 — every variable has a value) or
// the frame stack empties with none found. A zero-literal frame is popped
// before returning so that a subsequent Next call resumes search from the
// frame's parent rather than re-reporting the same model — this also makes
// the zero-variable formula (root frame already complete) report its one
// vacuous solution correctly, where simply checking "is the stack
// non-empty after popping" would not.
func (s *Solver) search() bool {
	for len(s.frames) > 0 {
		top := &s.frames[len(s.frames)-1]

		if top.branchLit == 0 {
			s.frames = s.frames[:len(s.frames)-1]
			s.log.Trace("dpll: model found", "depth", len(s.frames))
			return true
		}

		if top.state == frameDone {
			s.assign.restoreTo(top.assignSt)
			s.db.restoreTo(top.dbSt)
			s.frames = s.frames[:len(s.frames)-1]
			s.log.Trace("dpll: frame exhausted", "lit", top.branchLit)
			continue
		}

		var propLit Literal
		if top.state == tryPositive {
			propLit = top.branchLit
			top.state = tryNegative
		} else {
			s.assign.restoreTo(top.assignSt)
			s.db.restoreTo(top.dbSt)
			propLit = -top.branchLit
			top.state = frameDone
		}

		s.log.Trace("dpll: try", "lit", propLit)
		if s.propagate(propLit) {
			s.frames = append(s.frames, frame{
				branchLit: s.assign.request(),
				state:     tryPositive,
				assignSt:  s.assign.state(),
				dbSt:      s.db.state(),
			})
		} else {
			s.log.Trace("dpll: conflict", "lit", propLit)
			s.assign.restoreTo(top.assignSt)
			s.db.restoreTo(top.dbSt)
		}
	}
	return false
}

// propagate seeds unit propagation with lit and drains the unit-clause set
// until saturation (lit becomes 0) or a conflict is found. Draining one
// literal at a time — assign, let the database update the unit set, then
// re-read — is required because assign mutates the very set propagate
// reads from next.
func (s *Solver) propagate(lit Literal) bool {
	for lit != 0 {
		if s.db.assign(lit) {
			return false
		}
		s.assign.assign(lit)
		s.log.Trace("dpll: propagated", "lit", lit)

		lit = 0
		if next, ok := s.db.unit.any(); ok {
			lit = next
		}
	}
	return true
}
