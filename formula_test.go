package tinysat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormulaValidate(t *testing.T) {
	assert.NoError(t, Formula{NumVars: 2, Clauses: [][]int{{1, -2}}}.validate())
	assert.NoError(t, Formula{}.validate())

	assert.Error(t, Formula{NumVars: -1}.validate())
	assert.Error(t, Formula{NumVars: 1, Clauses: [][]int{{0}}}.validate())
	assert.Error(t, Formula{NumVars: 1, Clauses: [][]int{{2}}}.validate())
}
