package sat

import "github.com/rhartert/yagh"

// VarOrder is the decision heuristic: a max-priority queue over
// variables keyed by (is_assigned, occurrence score), with suggested
// polarity derived from which sign occurred more often in the original
// formula. It is backed by an indexed binary heap so that arbitrary
// variables can have their priority bumped in O(log n). Scoring is a
// plain occurrence count rather than an exponentially decayed activity:
// simpler and static, recomputed only when the original formula's
// clauses are added.
//
// Assigned variables are not kept in the heap at all rather than merely
// sorted to its bottom: NextDecision pops entries and silently discards
// any that turn out to already be assigned (a lazily-deleted stale
// entry), and Unassign reinserts a variable's entry when a backtrack
// frees it again. This has the same observable behaviour as "assigned
// sinks to the bottom" while keeping the heap small during a long run
// of propagations.
type VarOrder struct {
	heap *yagh.IntMap[float64]

	posOcc []int
	negOcc []int
}

// NewVarOrder returns an empty VarOrder.
func NewVarOrder() *VarOrder {
	return &VarOrder{heap: yagh.New[float64](0)}
}

// AddVar registers a freshly declared variable with zero occurrences.
// It is always unassigned at this point, so it goes straight into the
// heap.
func (vo *VarOrder) AddVar() {
	v := len(vo.posOcc)
	vo.posOcc = append(vo.posOcc, 0)
	vo.negOcc = append(vo.negOcc, 0)
	vo.heap.GrowBy(1)
	vo.heap.Put(v, 0)
}

// NewClause records the literal occurrences of an original (non-learnt)
// clause, bumping each literal's variable score and per-polarity counter. It
// must not be called for learnt clauses: scores reflect occurrences in
// the input formula only.
func (vo *VarOrder) NewClause(literals []Literal) {
	for _, l := range literals {
		v := l.VarID()
		if l.IsPositive() {
			vo.posOcc[v]++
		} else {
			vo.negOcc[v]++
		}
		score := vo.posOcc[v] + vo.negOcc[v]
		if vo.heap.Contains(v) {
			vo.heap.Put(v, -float64(score))
		}
	}
}

// Unassign reinserts v into the set of decision candidates; called by
// the solver whenever v's assignment is undone (backtrack or restart).
func (vo *VarOrder) Unassign(v int) {
	score := vo.posOcc[v] + vo.negOcc[v]
	vo.heap.Put(v, -float64(score))
}

// NextDecision returns the next literal to assign by decision, or false
// if every variable is already assigned (SAT).
func (vo *VarOrder) NextDecision(s *Solver) (Literal, bool) {
	for {
		v, ok := vo.heap.Pop()
		if !ok {
			return 0, false
		}
		if s.VarValue(v.Elem) != Unknown {
			continue // stale entry for a variable assigned since it was pushed
		}
		if vo.posOcc[v.Elem] >= vo.negOcc[v.Elem] {
			return PositiveLiteral(v.Elem), true
		}
		return NegativeLiteral(v.Elem), true
	}
}
