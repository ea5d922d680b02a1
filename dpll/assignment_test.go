package dpll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRequestAndFull(t *testing.T) {
	heap := newLitHeap(2, map[Literal]int{1: 3, -1: 1, 2: 5, -2: 1})
	a := newAssignment(2, heap)

	assert.False(t, a.full())
	lit := a.request()
	assert.NotZero(t, lit)
}

func TestAssignmentAssignAndRevert(t *testing.T) {
	heap := newLitHeap(2, map[Literal]int{1: 1, -1: 1, 2: 1, -2: 1})
	a := newAssignment(2, heap)

	a.assign(1)
	assert.Equal(t, True, a.values[0])
	assert.Equal(t, Unassigned, a.values[1])

	a.assign(-2)
	assert.Equal(t, False, a.values[1])
	assert.True(t, a.full())

	a.revert(-2)
	assert.Equal(t, Unassigned, a.values[1])
	a.revert(1)
	assert.Equal(t, Unassigned, a.values[0])
}

func TestAssignmentAssignPanicsOnZero(t *testing.T) {
	heap := newLitHeap(1, map[Literal]int{1: 1, -1: 1})
	a := newAssignment(1, heap)
	assert.Panics(t, func() { a.assign(0) })
}

func TestAssignmentAssignPanicsOnReassign(t *testing.T) {
	heap := newLitHeap(1, map[Literal]int{1: 1, -1: 1})
	a := newAssignment(1, heap)
	a.assign(1)
	assert.Panics(t, func() { a.assign(-1) })
}

func TestAssignmentRevertPanicsOnUnassigned(t *testing.T) {
	heap := newLitHeap(1, map[Literal]int{1: 1, -1: 1})
	a := newAssignment(1, heap)
	assert.Panics(t, func() { a.revert(1) })
}

func TestAssignmentStateRestoreToExact(t *testing.T) {
	heap := newLitHeap(3, map[Literal]int{1: 1, -1: 1, 2: 1, -2: 1, 3: 1, -3: 1})
	a := newAssignment(3, heap)

	snap := a.state()
	a.assign(1)
	a.assign(-2)
	require.False(t, a.full())

	a.restoreTo(snap)
	assert.Equal(t, Unassigned, a.values[0])
	assert.Equal(t, Unassigned, a.values[1])
	assert.Equal(t, 0, len(a.log))
}

func TestAssignmentMatchCopiesOut(t *testing.T) {
	heap := newLitHeap(1, map[Literal]int{1: 1, -1: 1})
	a := newAssignment(1, heap)
	a.assign(1)

	m := a.match()
	m[0] = False
	assert.Equal(t, True, a.values[0], "match must return a copy")
}
