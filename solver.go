package tinysat

import "github.com/kvesteri/tinysat/dpll"

// Iterator enumerates the satisfying models of a Formula one at a time. An
// Iterator borrows its underlying solver exclusively; call Close to release
// it early rather than just dropping the value.
type Iterator struct {
	solver  *dpll.Solver
	started bool
	done    bool
}

// Solve validates f and returns an Iterator over its satisfying models. The
// formula is not solved eagerly — call Next to drive the search.
func Solve(f Formula, opts ...Option) (*Iterator, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	clauses := make([][]dpll.Literal, len(f.Clauses))
	for i, cl := range f.Clauses {
		lits := make([]dpll.Literal, len(cl))
		for j, lit := range cl {
			lits[j] = dpll.Literal(lit)
		}
		clauses[i] = lits
	}

	return &Iterator{solver: dpll.New(f.NumVars, clauses, cfg.dpllOptions()...)}, nil
}

// Next advances to the next satisfying model, returning (nil, false) once
// the search space is exhausted.
func (it *Iterator) Next() (Match, bool) {
	if it.solver == nil {
		panic(ErrProceedPastEnd)
	}
	if it.done {
		return nil, false
	}

	var ok bool
	if !it.started {
		it.started = true
		ok = it.solver.Init()
	} else {
		ok = it.solver.Next()
	}
	if !ok {
		it.done = true
		return nil, false
	}
	return fromDPLLMatch(it.solver.Match()), true
}

// Close releases the iterator's solver. Calling Next after Close panics
// with ErrProceedPastEnd.
func (it *Iterator) Close() {
	it.done = true
	it.solver = nil
}

func fromDPLLMatch(vs []dpll.Value) Match {
	m := make(Match, len(vs))
	for i, v := range vs {
		switch v {
		case dpll.True:
			m[i] = True
		case dpll.False:
			m[i] = False
		default:
			m[i] = Unassigned
		}
	}
	return m
}
