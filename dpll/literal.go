// Package dpll implements the core DPLL engine: a backtrackable clause
// database, a decaying literal-priority heap, and the search driver that
// composes them into an all-solutions enumerator.
package dpll

// Literal is a signed, nonzero variable reference: positive k means xₖ is
// asserted true, negative k means xₖ is asserted false.
type Literal int32

// Var returns the zero-based variable index |l|-1.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l) - 1
	}
	return int(l) - 1
}

// Negate returns the opposite literal.
func (l Literal) Negate() Literal {
	return -l
}

// Positive reports whether l asserts its variable true.
func (l Literal) Positive() bool {
	return l > 0
}
