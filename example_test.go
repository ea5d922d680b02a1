package tinysat

import "fmt"

func ExampleSolve() {
	// Problem: (¬x1 ∨ x2) ∧ (x2 ∨ x3) ∧ (x1 ∨ ¬x3 ∨ x2) ∧ x2
	f := Formula{
		NumVars: 3,
		Clauses: [][]int{
			{-1, 2},
			{2, 3},
			{1, -3, 2},
			{2},
		},
	}

	it, err := Solve(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, ok := it.Next()
	if !ok {
		fmt.Println("not satisfiable")
		return
	}
	fmt.Println("satisfiable:", IsMatch(f, m))
	// Output: satisfiable: true
}
