// Package tinysat is a Boolean satisfiability library: given a formula in
// conjunctive normal form, it enumerates the assignments that satisfy every
// clause. Three engines share this façade — dpll (unit propagation plus a
// priority-ordered decision heuristic), twosat (implication-graph SCC
// analysis for 2-clause formulas), and brute (exhaustive enumeration) — but
// Solve always dispatches to dpll; the other two are reached through their
// own packages for callers who know their formula's shape in advance.
package tinysat

import "github.com/pkg/errors"

// Formula is a CNF formula over variables 1..NumVars. Each clause is a
// disjunction of nonzero signed literals; a negative literal is the
// negation of the variable with that absolute value.
type Formula struct {
	NumVars int
	Clauses [][]int
}

func (f Formula) validate() error {
	if f.NumVars < 0 {
		return errors.Wrapf(ErrMalformedFormula, "negative variable count %d", f.NumVars)
	}
	for i, cl := range f.Clauses {
		for _, lit := range cl {
			if lit == 0 {
				return errors.Wrapf(ErrMalformedFormula, "clause %d contains literal 0", i)
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > f.NumVars {
				return errors.Wrapf(ErrMalformedFormula, "clause %d references variable %d outside [1,%d]", i, v, f.NumVars)
			}
		}
	}
	return nil
}
