package sat

import "testing"

func TestVarOrder_PolarityFollowsMajorityOccurrence(t *testing.T) {
	s := NewSolver(DefaultOptions)
	v := s.AddVariable()

	// Variable v occurs positively twice and negatively once: the
	// suggested decision should be the positive literal.
	s.order.NewClause([]Literal{PositiveLiteral(v)})
	s.order.NewClause([]Literal{PositiveLiteral(v)})
	s.order.NewClause([]Literal{NegativeLiteral(v)})

	lit, ok := s.order.NextDecision(s)
	if !ok {
		t.Fatalf("NextDecision() returned no decision")
	}
	if !lit.IsPositive() {
		t.Errorf("NextDecision() = %v, want a positive literal", lit)
	}
}

func TestVarOrder_SkipsAssignedVariables(t *testing.T) {
	s := NewSolver(DefaultOptions)
	a := s.AddVariable()
	b := s.AddVariable()
	s.order.NewClause([]Literal{PositiveLiteral(a)})
	s.order.NewClause([]Literal{PositiveLiteral(b)})

	s.assume(PositiveLiteral(a))

	lit, ok := s.order.NextDecision(s)
	if !ok {
		t.Fatalf("NextDecision() returned no decision")
	}
	if lit.VarID() != b {
		t.Errorf("NextDecision() = var %d, want %d (only unassigned variable)", lit.VarID(), b)
	}
}
