package sat

// noLiteral is the sentinel used in place of a real literal when
// explaining the conflicting clause itself, as opposed to explaining why
// some specific literal was forced.
const noLiteral Literal = -1

// explain returns the literals that justify either the conflict clause
// c itself (l == noLiteral) or the assignment of l by reason clause c.
func (s *Solver) explain(c *Clause, l Literal) []Literal {
	if l == noLiteral {
		return c.explainConflict()
	}
	return c.explainAssign()
}

// analyze performs first-UIP conflict analysis (spec §4.6): starting
// from the conflicting clause, it resolves backwards along the trail
// within the current decision level until exactly one literal of the
// derived clause remains at that level — the asserting literal — and
// returns the learned clause (asserting literal first) together with the
// backjump level (the highest level among the clause's other literals,
// or 0 if there are none).
//
// The literal scratch buffer (tmpLearnts) and the seen-variable set
// (seenVar) are both reused across calls rather than freshly allocated,
// per the "resolution as list mutation" design note: a single call to
// analyze performs many resolution steps and allocating fresh slices for
// each would dominate the cost of the hot path.
func (s *Solver) analyze(confl *Clause) ([]Literal, int) {
	d := s.decisionLevel()

	// Number of literals seen so far that belong to the current decision
	// level and still need to be resolved away. It reaches 1 exactly
	// when the remaining frontier is the first UIP.
	pending := 0

	s.tmpLearnts = s.tmpLearnts[:0]
	s.tmpLearnts = append(s.tmpLearnts, noLiteral) // reserved for the UIP

	s.seenVar.Clear()
	backtrackLevel := 0

	nextTrailPos := len(s.trail) - 1
	l := noLiteral

	for {
		if confl.learnt {
			s.bumpClauseActivity(confl)
		}
		for _, q := range s.explain(confl, l) {
			v := q.VarID()
			if s.seenVar.Contains(v) {
				continue
			}
			s.seenVar.Add(v)

			if s.level[v] == d {
				pending++
				continue
			}

			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if lvl := s.level[v]; lvl > backtrackLevel {
				backtrackLevel = lvl
			}
		}

		// Walk back over the trail to the next seen variable that has a
		// reason (i.e. is not itself the decision): that is the next
		// resolution step.
		for {
			l = s.trail[nextTrailPos]
			nextTrailPos--
			v := l.VarID()
			confl = s.reason[v]
			if s.seenVar.Contains(v) {
				break
			}
		}

		pending--
		if pending <= 0 {
			break
		}
	}

	s.tmpLearnts[0] = l.Opposite()
	return s.tmpLearnts, backtrackLevel
}
