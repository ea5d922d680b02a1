package dpll

import "math"

// balanceSum and decayFactor are the VSIDS-like tuning constants: priorities
// are kept with Σ|p| inside [1/balanceSum, balanceSum], and each conflict
// multiplies a literal's priority by decayFactor before re-siphoning it.
const (
	balanceSum  = 16.0
	decayFactor = 0.95
)

// litHeap is a max-heap over the 2n signed literals of an n-variable
// formula. Presence is encoded in the sign of the stored priority (positive
// = present, negative = extracted) rather than by physically removing
// entries, so extract/restore are O(log n) sifts instead of heap rebuilds,
// and an extracted entry's magnitude survives for when it's restored.
type litHeap struct {
	numVars  int
	prior    []float64 // indexed by lit2idx(l); sign encodes presence
	heapVec  []Literal // 1-indexed binary heap of literals (heapVec[0] unused)
	heapMap  []int     // lit2idx(l) -> index into heapVec
	size     int
	priorSum float64
}

// newLitHeap builds the heap from per-literal occurrence counts across the
// formula's clauses, balances if the initial Σ|p| falls outside
// [1/balanceSum, balanceSum], and heapifies.
func newLitHeap(numVars int, occurrences map[Literal]int) *litHeap {
	n := 2 * numVars
	h := &litHeap{
		numVars: numVars,
		prior:   make([]float64, n),
		heapVec: make([]Literal, n+1),
		heapMap: make([]int, n),
		size:    n,
	}

	for v := 1; v <= numVars; v++ {
		for _, lit := range [2]Literal{Literal(v), Literal(-v)} {
			idx := h.lit2idx(lit)
			h.heapVec[idx+1] = lit
			h.heapMap[idx] = idx + 1
		}
	}

	for lit, count := range occurrences {
		h.prior[h.lit2idx(lit)] += float64(count)
		h.priorSum += float64(count)
	}

	if h.priorSum < 1.0/balanceSum || balanceSum < h.priorSum {
		h.balance()
	}
	h.heapify()
	return h
}

func (h *litHeap) lit2idx(lit Literal) int {
	if lit < 0 {
		return h.numVars + int(-lit) - 1
	}
	return int(lit) - 1
}

// get returns the heap top: the present literal with the highest priority.
func (h *litHeap) get() Literal {
	if h.size == 0 {
		return 0
	}
	return h.heapVec[1]
}

// extract flips lit's priority to negative (present -> absent) and sifts it
// down to its logically-lower rank. Idempotent: extracting an
// already-extracted literal is a no-op.
func (h *litHeap) extract(lit Literal) {
	idx := h.lit2idx(lit)
	if h.prior[idx] < 0 {
		return
	}
	h.prior[idx] = -math.Abs(h.prior[idx])

	it := h.heapMap[idx]
	for {
		next := h.siftDown(it)
		if next == it {
			break
		}
		it = next
	}
	h.size--
}

// restore flips lit's priority back to positive and sifts it up.
// Idempotent: restoring an already-present literal is a no-op.
func (h *litHeap) restore(lit Literal) {
	idx := h.lit2idx(lit)
	if h.prior[idx] > 0 {
		return
	}
	h.prior[idx] = math.Abs(h.prior[idx])

	it := h.heapMap[idx]
	for {
		next := h.siftUp(it)
		if next == it {
			break
		}
		it = next
	}
	h.size++
}

// getPrior returns the raw signed priority (negative iff extracted).
func (h *litHeap) getPrior(lit Literal) float64 {
	return h.prior[h.lit2idx(lit)]
}

// decPrior multiplies lit's priority magnitude by decayFactor, re-sifts it,
// and rebalances the whole table if Σ|p| has drifted outside bounds. Used
// by the assignment store on revert to down-weight literals that
// participated in a failed branch.
func (h *litHeap) decPrior(lit Literal) {
	idx := h.lit2idx(lit)
	h.priorSum -= math.Abs(h.prior[idx])
	h.prior[idx] *= decayFactor
	h.priorSum += math.Abs(h.prior[idx])

	it := h.heapMap[idx]
	for {
		next := h.siftUp(it)
		if next == it {
			break
		}
		it = next
	}
	for {
		next := h.siftDown(it)
		if next == it {
			break
		}
		it = next
	}

	if h.priorSum < 1.0/balanceSum || balanceSum < h.priorSum {
		h.balance()
	}
}

// siftUp fixes only a local violation per call; callers must loop it to a
// fixed point. A single pass moves curLit at most one level toward the
// root.
func (h *litHeap) siftUp(it int) int {
	if it < 2 {
		return it
	}
	curLit, upLit := h.heapVec[it], h.heapVec[it/2]
	if h.prior[h.lit2idx(upLit)] < h.prior[h.lit2idx(curLit)] {
		h.swap(it, it/2)
		return it / 2
	}
	return it
}

// siftDown performs one comparison/swap step toward the leaves.
func (h *litHeap) siftDown(it int) int {
	lt := 2 * it
	if lt >= len(h.heapVec) {
		return it
	}
	child := lt
	if rt := lt + 1; rt < len(h.heapVec) && h.prior[h.lit2idx(h.heapVec[lt])] < h.prior[h.lit2idx(h.heapVec[rt])] {
		child = rt
	}
	if h.prior[h.lit2idx(h.heapVec[it])] < h.prior[h.lit2idx(h.heapVec[child])] {
		h.swap(it, child)
		return child
	}
	return it
}

func (h *litHeap) swap(i, j int) {
	h.heapVec[i], h.heapVec[j] = h.heapVec[j], h.heapVec[i]
	h.heapMap[h.lit2idx(h.heapVec[i])] = i
	h.heapMap[h.lit2idx(h.heapVec[j])] = j
}

// heapify repeats back-to-front sift-up passes until a pass moves nothing.
func (h *litHeap) heapify() {
	for moved := true; moved; {
		moved = false
		for it := len(h.heapVec) - 1; it > 0; it-- {
			old := it
			for {
				next := h.siftUp(old)
				if next == old {
					break
				}
				old = next
				moved = true
			}
		}
	}
}

// balance rescales every priority by balanceSum/priorSum so Σ|p| lands back
// at balanceSum, the upper end of the [1/balanceSum, balanceSum] range.
func (h *litHeap) balance() {
	factor := balanceSum / h.priorSum
	h.priorSum = 0
	for i := range h.prior {
		h.prior[i] *= factor
		h.priorSum += math.Abs(h.prior[i])
	}
}

// ok reports whether the heap's bookkeeping invariants currently hold.
func (h *litHeap) ok() bool {
	return h.priorSum >= 1.0/balanceSum &&
		h.priorSum <= balanceSum &&
		len(h.heapVec) == 2*h.numVars+1 &&
		len(h.heapMap) == 2*h.numVars &&
		len(h.prior) == 2*h.numVars
}
