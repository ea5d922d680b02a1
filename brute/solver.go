// Package brute enumerates every assignment of a formula by exhaustive
// search — the 2ⁿ-assignment fallback with no propagation or heuristics,
// useful as a ground truth for testing the other two engines.
package brute

import (
	"github.com/hashicorp/go-hclog"

	"github.com/kvesteri/tinysat"
)

// Option configures a Solver.
type Option func(*config)

type config struct {
	logger hclog.Logger
}

// WithLogger attaches a structured logger; Trace-level entries are emitted
// once per Solve call reporting the search space size.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Solver exhaustively enumerates a formula's satisfying assignments.
type Solver struct {
	formula tinysat.Formula
	log     hclog.Logger
}

// New builds a Solver for f. Unlike dpll and twosat, brute never rejects a
// formula — it has no structural requirement beyond what tinysat.Formula
// itself enforces.
func New(f tinysat.Formula, opts ...Option) *Solver {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Solver{formula: f, log: logger}
}

// Iterator walks every assignment of the formula's variables in order,
// treating the match vector as a binary counter (True = 0, False = 1)
// seeded all-True and incremented until it wraps.
type Iterator struct {
	solver  *Solver
	match   tinysat.Match
	started bool
	done    bool
}

// Solve returns an Iterator over s's formula.
func (s *Solver) Solve() *Iterator {
	s.log.Trace("brute: starting enumeration", "search_space", uint64(1)<<uint(s.formula.NumVars))
	m := make(tinysat.Match, s.formula.NumVars)
	for i := range m {
		m[i] = tinysat.True
	}
	return &Iterator{solver: s, match: m}
}

// Next returns the next satisfying assignment, or (nil, false) once every
// assignment has been tried.
func (it *Iterator) Next() (tinysat.Match, bool) {
	if it.done || it.solver == nil {
		return nil, false
	}

	if !it.started {
		it.started = true
		if tinysat.IsMatch(it.solver.formula, it.match) {
			return it.snapshot(), true
		}
	}

	for it.advance() {
		if tinysat.IsMatch(it.solver.formula, it.match) {
			return it.snapshot(), true
		}
	}
	it.done = true
	return nil, false
}

// advance increments the match vector as a binary counter. It returns false
// once the counter wraps (every assignment has now been produced), true
// otherwise.
func (it *Iterator) advance() bool {
	n := len(it.match)
	idx := 0
	for idx < n && it.match[idx] == tinysat.False {
		it.match[idx] = tinysat.True
		idx++
	}
	if idx == n {
		return false
	}
	it.match[idx] = tinysat.False
	return true
}

func (it *Iterator) snapshot() tinysat.Match {
	out := make(tinysat.Match, len(it.match))
	copy(out, it.match)
	return out
}

// Close releases the iterator.
func (it *Iterator) Close() {
	it.done = true
	it.solver = nil
}
