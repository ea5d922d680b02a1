package dpll

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clauseLits(db *clauseDB) [][]Literal {
	var out [][]Literal
	db.clauses.forEach(func(_ int, c **clause) bool {
		var cl []Literal
		(*c).lits.forEach(func(_ int, lit Literal) bool {
			cl = append(cl, lit)
			return true
		})
		out = append(out, cl)
		return true
	})
	return out
}

func TestNewClauseDBSeedsUnitSet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	db := newClauseDB([][]Literal{{1}, {2, -3}, {-4}}, rng)

	_, ok := db.unit.any()
	require.True(t, ok)
	assert.Equal(t, 2, len(db.unit.order))
}

func TestClauseDBAssignSatisfiesAndShrinks(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	db := newClauseDB([][]Literal{{1, 2}, {-1, 3}, {-1, -2}}, rng)

	conflict := db.assign(1)
	require.False(t, conflict)

	// clause {1,2} satisfied and removed; {-1,3} shrinks to unit {3};
	// {-1,-2} shrinks to unit {-2}.
	assert.Equal(t, 2, db.clauses.Len())
	lit, ok := db.unit.any()
	assert.True(t, ok)
	assert.Contains(t, []Literal{3, -2}, lit)
}

func TestClauseDBAssignDetectsConflict(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	db := newClauseDB([][]Literal{{1}, {-1}}, rng)

	conflict := db.assign(1)
	assert.True(t, conflict)
}

func TestClauseDBRestoreToExact(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	db := newClauseDB([][]Literal{{1, 2}, {-1, 3}, {2, -3}}, rng)
	before := clauseLits(db)

	snap := db.state()
	db.assign(1)
	require.NotEqual(t, before, clauseLits(db))

	db.restoreTo(snap)
	assert.Equal(t, before, clauseLits(db))
	_, ok := db.unit.any()
	assert.False(t, ok, "restoreTo clears the unit set rather than reconstructing it")
}

func TestClauseDBRestoreToNestedSnapshots(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	db := newClauseDB([][]Literal{{1, 2, 3}, {-1, 2}, {-2, 3}, {-3, 1}}, rng)
	before := clauseLits(db)

	outer := db.state()
	conflict := db.assign(1)
	require.False(t, conflict)

	inner := db.state()
	conflict = db.assign(2)
	require.False(t, conflict)

	db.restoreTo(inner)
	afterInner := clauseLits(db)

	db.restoreTo(outer)
	assert.Equal(t, before, clauseLits(db))
	_ = afterInner
}

func TestLitSetAddRemoveAny(t *testing.T) {
	s := newLitSet()
	_, ok := s.any()
	assert.False(t, ok)

	s.add(1)
	s.add(2)
	s.add(1) // duplicate is a no-op
	assert.Equal(t, 2, len(s.order))

	s.remove(1)
	lit, ok := s.any()
	assert.True(t, ok)
	assert.Equal(t, Literal(2), lit)

	s.clear()
	_, ok = s.any()
	assert.False(t, ok)
}
