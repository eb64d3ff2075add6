package sat

import "testing"

func TestSolver_ShouldRestart(t *testing.T) {
	s := NewSolver(DefaultOptions)
	v := s.AddVariable()

	if s.shouldRestart() {
		t.Errorf("shouldRestart() = true before any decision, want false")
	}

	s.assume(PositiveLiteral(v))
	s.Stats.Conflicts = int64(s.restartLimit) + 1

	if !s.shouldRestart() {
		t.Errorf("shouldRestart() = false once the conflict budget is exceeded, want true")
	}
}

func TestSolver_Restart_GrowsBudgetAndBacktracksToZero(t *testing.T) {
	s := NewSolver(DefaultOptions)
	v := s.AddVariable()
	s.assume(PositiveLiteral(v))

	// inner starts equal to outer, so restart grows outer and resets inner
	// to 100; the new limit is the current conflict count plus that inner.
	wantLimit := int(s.Stats.Conflicts) + 100
	s.restart()

	if s.decisionLevel() != 0 {
		t.Errorf("decisionLevel() = %d after restart, want 0", s.decisionLevel())
	}
	if s.Stats.Restarts != 1 {
		t.Errorf("Stats.Restarts = %d, want 1", s.Stats.Restarts)
	}
	if s.restartLimit != wantLimit {
		t.Errorf("restartLimit = %d, want %d", s.restartLimit, wantLimit)
	}
}

func TestSolver_Restart_OuterGrowsOnceInnerCatchesUp(t *testing.T) {
	s := NewSolver(DefaultOptions)
	s.restartInner = 100
	s.restartOuter = 100

	s.restart() // inner == outer: outer grows, inner resets to 100

	if s.restartOuter != 110 {
		t.Errorf("restartOuter = %d, want 110", s.restartOuter)
	}
	if s.restartInner != 100 {
		t.Errorf("restartInner = %d, want 100", s.restartInner)
	}
}
