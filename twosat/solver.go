package twosat

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/kvesteri/tinysat"
)

// ErrNotTwoSAT is returned by New when a formula contains a clause with more
// than two literals — outside what an implication-graph solver can express.
var ErrNotTwoSAT = errors.New("twosat: formula is not 2-SAT (clause with >2 literals)")

// Option configures a Solver.
type Option func(*config)

type config struct {
	logger hclog.Logger
}

// WithLogger attaches a structured logger; Trace-level entries are emitted
// for the component decomposition and the satisfiability verdict.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Solver decides a 2-SAT formula once at construction time: the
// implication graph is built and decomposed into strongly-connected
// components immediately, so New itself does the solving work.
type Solver struct {
	numVars int
	comp    []int // component id per literal index, length 2*numVars
	sat     bool
	log     hclog.Logger
}

// New builds a Solver for f. It returns ErrNotTwoSAT if any clause has more
// than two literals.
func New(f tinysat.Formula, opts ...Option) (*Solver, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	for _, cl := range f.Clauses {
		if len(cl) > 2 {
			return nil, errors.Wrapf(ErrNotTwoSAT, "clause has %d literals", len(cl))
		}
	}

	g := newImplicationGraph(f.NumVars)
	for _, cl := range f.Clauses {
		if len(cl) == 0 {
			continue
		}
		a := litIndex(cl[0], f.NumVars)
		b := a
		if len(cl) == 2 {
			b = litIndex(cl[1], f.NumVars)
		}
		g.addClause(a, b)
	}

	comp := g.tarjanSCC()
	logger.Trace("twosat: decomposed", "components", componentCount(comp))

	sat := true
	for v := 0; v < f.NumVars; v++ {
		if comp[v] == comp[v+f.NumVars] {
			sat = false
			break
		}
	}
	logger.Trace("twosat: satisfiability", "sat", sat)

	return &Solver{numVars: f.NumVars, comp: comp, sat: sat, log: logger}, nil
}

func componentCount(comp []int) int {
	max := -1
	for _, c := range comp {
		if c > max {
			max = c
		}
	}
	return max + 1
}

// Satisfiable reports whether the formula has a satisfying assignment.
func (s *Solver) Satisfiable() bool { return s.sat }

// match derives the unique canonical assignment the component order
// determines: a variable is true when its positive literal's component
// finishes strictly before its negative literal's (see tarjanSCC's doc for
// why finishing order encodes topological order of the condensation DAG).
func (s *Solver) match() tinysat.Match {
	m := make(tinysat.Match, s.numVars)
	for v := 0; v < s.numVars; v++ {
		if s.comp[v] < s.comp[v+s.numVars] {
			m[v] = tinysat.True
		} else {
			m[v] = tinysat.False
		}
	}
	return m
}

// Iterator enumerates the solutions of a 2-SAT formula. Because the
// component order pins down a single canonical assignment, it yields at
// most one Match.
type Iterator struct {
	solver *Solver
	done   bool
}

// Solve returns an Iterator over s's solutions.
func (s *Solver) Solve() *Iterator {
	return &Iterator{solver: s}
}

// Next returns the formula's unique model on the first call, then (nil,
// false) on every call after.
func (it *Iterator) Next() (tinysat.Match, bool) {
	if it.done || it.solver == nil || !it.solver.sat {
		it.done = true
		return nil, false
	}
	it.done = true
	return it.solver.match(), true
}

// Close releases the iterator. Calling Next after Close always returns
// (nil, false), matching exhaustion rather than panicking — unlike
// tinysat.Iterator, a 2-SAT solution set has no further state to misuse.
func (it *Iterator) Close() {
	it.done = true
	it.solver = nil
}
