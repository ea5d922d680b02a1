package brute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvesteri/tinysat"
)

func TestSolverEnumeratesAllModels(t *testing.T) {
	f := tinysat.Formula{NumVars: 2, Clauses: [][]int{{1, 2}}}
	s := New(f)

	var models []tinysat.Match
	it := s.Solve()
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		require.True(t, tinysat.IsMatch(f, m))
		models = append(models, m)
	}
	assert.Len(t, models, 3)
}

func TestSolverUnsatReportsNoModels(t *testing.T) {
	f := tinysat.Formula{NumVars: 1, Clauses: [][]int{{1}, {-1}}}
	s := New(f)
	_, ok := s.Solve().Next()
	assert.False(t, ok)
}

func TestSolverVacuousFormula(t *testing.T) {
	f := tinysat.Formula{NumVars: 0}
	s := New(f)
	it := s.Solve()

	m, ok := it.Next()
	require.True(t, ok)
	assert.Empty(t, m)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestSolverVisitsEveryAssignmentExactlyOnce(t *testing.T) {
	f := tinysat.Formula{NumVars: 3}
	s := New(f)
	it := s.Solve()

	seen := make(map[string]bool)
	count := 0
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		key := ""
		for _, v := range m {
			if v == tinysat.True {
				key += "1"
			} else {
				key += "0"
			}
		}
		assert.False(t, seen[key])
		seen[key] = true
		count++
	}
	assert.Equal(t, 8, count)
}
