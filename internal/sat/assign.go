package sat

// enqueue is the assignment store's try_assign operation (spec §4.5): it
// attempts to commit lit as true, recording from as its reason (nil for
// a decision). It succeeds as a no-op if the variable already holds that
// value (a stale propagation), fails on a genuine contradiction, and
// otherwise records the assignment on the trail, at the current decision
// level, and enqueues lit for propagation.
func (s *Solver) enqueue(lit Literal, from *Clause) bool {
	switch s.LitValue(lit) {
	case False:
		return false
	case True:
		return true
	default:
		v := lit.VarID()
		s.assigns[lit] = True
		s.assigns[lit.Opposite()] = False
		s.level[v] = s.decisionLevel()
		s.reason[v] = from
		s.trail = append(s.trail, lit)
		s.propQueue.Push(lit)
		return true
	}
}
