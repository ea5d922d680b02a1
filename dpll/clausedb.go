package dpll

import "math/rand"

// clause is one CNF clause: an immutable id (its position in the original
// formula) and a mutable active literal set that only shrinks under
// propagation and is restored exactly under backtrack.
type clause struct {
	id   int
	lits *backtrackSkiplist
}

// litSet is a slice-backed set of literals, used for the unit-clause set:
// it keeps drain order deterministic for tests, which a plain map's
// randomized iteration would not, without claiming any particular drain
// order is meaningful. Elements start in insertion order; remove moves the
// last element into the freed slot.
type litSet struct {
	order []Literal
	pos   map[Literal]int
}

func newLitSet() *litSet {
	return &litSet{pos: make(map[Literal]int)}
}

func (s *litSet) add(l Literal) {
	if _, ok := s.pos[l]; ok {
		return
	}
	s.pos[l] = len(s.order)
	s.order = append(s.order, l)
}

func (s *litSet) remove(l Literal) {
	i, ok := s.pos[l]
	if !ok {
		return
	}
	last := len(s.order) - 1
	s.order[i] = s.order[last]
	s.pos[s.order[i]] = i
	s.order = s.order[:last]
	delete(s.pos, l)
}

func (s *litSet) any() (Literal, bool) {
	if len(s.order) == 0 {
		return 0, false
	}
	return s.order[0], true
}

func (s *litSet) clear() {
	s.order = s.order[:0]
	s.pos = make(map[Literal]int)
}

// dbState is the snapshot pair a caller needs to later restoreTo: the sizes
// of the two change logs at the moment the snapshot was taken.
type dbState struct {
	clauseLogSize   int
	literalLogSize int
}

type literalLogEntry struct {
	clauseID int
	node     skiplistNode
}

// clauseDB is the backtrackable clause database: the ordered list of
// currently-active clauses, an id -> list-handle index, and the two
// append-only change logs (clause removals, literal removals) that make
// restoreTo an exact inverse replay.
type clauseDB struct {
	clauses    *backtrackList[*clause]
	handles    []int
	clauseLog  []listNode[*clause]
	literalLog []literalLogEntry
	unit       *litSet
}

// newClauseDB builds the database from a formula's clause literal lists,
// sharing rng across every clause's skip list so construction is
// deterministic for a given seed.
func newClauseDB(clauseLits [][]Literal, rng *rand.Rand) *clauseDB {
	clauses := make([]*clause, len(clauseLits))
	handles := make([]int, len(clauseLits))
	for i, lits := range clauseLits {
		clauses[i] = &clause{id: i, lits: newBacktrackSkiplist(lits, rng)}
	}

	db := &clauseDB{
		clauses: newBacktrackList(clauses),
		handles: handles,
		unit:    newLitSet(),
	}
	for i := range handles {
		db.handles[i] = i
	}

	db.clauses.forEach(func(idx int, c **clause) bool {
		if (*c).lits.Len() == 1 {
			db.unit.add((*c).lits.only())
		}
		return true
	})

	return db
}

func (db *clauseDB) state() dbState {
	return dbState{
		clauseLogSize:  len(db.clauseLog),
		literalLogSize: len(db.literalLog),
	}
}

// restoreTo first drops the unit-clause set — propagation always reseeds it
// from the branch literal rather than expecting it reconstructed — then
// replays the inverse of every structural edit made after state, clause
// removals before literal removals (the two logs are independent so the
// cross-log order doesn't matter; within each log LIFO order is required
// for exactness).
func (db *clauseDB) restoreTo(state dbState) {
	db.unit.clear()

	for len(db.clauseLog) > state.clauseLogSize {
		n := db.clauseLog[len(db.clauseLog)-1]
		db.clauseLog = db.clauseLog[:len(db.clauseLog)-1]
		db.clauses.restore(n)
	}

	for len(db.literalLog) > state.literalLogSize {
		e := db.literalLog[len(db.literalLog)-1]
		db.literalLog = db.literalLog[:len(db.literalLog)-1]
		c := *db.clauses.at(db.handles[e.clauseID])
		c.lits.restore(e.node)
	}
}

// assign is the unit-propagation primitive for a single literal: every
// clause containing lit is satisfied and removed from the active list;
// every clause containing -lit shrinks by one literal. A clause that
// shrinks to zero literals is a conflict, reported immediately without any
// self-rollback — the caller must restoreTo a prior snapshot. A clause that
// shrinks to exactly one literal is recorded as unit.
func (db *clauseDB) assign(lit Literal) (conflict bool) {
	db.unit.remove(lit)

	neg := lit.Negate()
	db.clauses.forEach(func(idx int, c **clause) bool {
		cl := *c
		if _, ok := cl.lits.find(lit); ok {
			db.clauseLog = append(db.clauseLog, db.clauses.extract(idx))
			return true
		}

		if negIdx, ok := cl.lits.find(neg); ok {
			node := cl.lits.extract(negIdx)
			db.literalLog = append(db.literalLog, literalLogEntry{clauseID: cl.id, node: node})
		}

		switch cl.lits.Len() {
		case 0:
			conflict = true
			return false
		case 1:
			db.unit.add(cl.lits.only())
		}
		return true
	})
	return conflict
}
