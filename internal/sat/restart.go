package sat

// shouldRestart reports whether the restart controller's current budget
// has been exceeded. Per spec §4.7, restarting only makes sense once at
// least one decision has been made (level 0 is already as far back as a
// restart could go).
func (s *Solver) shouldRestart() bool {
	return s.Stats.Conflicts > int64(s.restartLimit) && s.decisionLevel() > 0
}

// restart discards the current search path back to level 0, keeping
// every learned clause, and grows the restart budget. This is the exact
// (inner, outer, limit) scheme of spec §4.7: inner chases outer in steps
// of 10%, and once it catches up outer itself grows by 10% and inner
// resets to 100 — a Luby-like growing-then-reset cadence grounded in
// original_source/src/solver.rs's should_restart/restart pair.
func (s *Solver) restart() {
	if s.restartInner >= s.restartOuter {
		s.restartOuter = int(float64(s.restartOuter) * 1.1)
		s.restartInner = 100
	} else {
		s.restartInner = int(float64(s.restartInner) * 1.1)
	}
	s.restartLimit = int(s.Stats.Conflicts) + s.restartInner
	s.Stats.Restarts++
	s.logTrace("restart", s.state)

	s.cancelUntil(0)
}
