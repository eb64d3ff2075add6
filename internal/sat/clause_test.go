package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewClause_SortsAndDedupes(t *testing.T) {
	c := newClause([]Literal{
		PositiveLiteral(2),
		NegativeLiteral(0),
		PositiveLiteral(2),
		PositiveLiteral(1),
	}, false)

	want := []Literal{NegativeLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}
	if diff := cmp.Diff(want, c.Literals()); diff != "" {
		t.Errorf("Literals() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewClause_KeepsTautologies(t *testing.T) {
	c := newClause([]Literal{PositiveLiteral(0), NegativeLiteral(0)}, false)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (tautologies are not simplified away)", c.Len())
	}
}

func TestResolve(t *testing.T) {
	a := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	b := []Literal{NegativeLiteral(0), PositiveLiteral(2)}

	got := Resolve(a, b, 0)
	want := []Literal{PositiveLiteral(1), PositiveLiteral(2)}

	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b Literal) bool { return a < b })); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestClause_ExplainAssignAndConflict(t *testing.T) {
	c := newClause([]Literal{PositiveLiteral(0), NegativeLiteral(1), NegativeLiteral(2)}, false)

	gotAssign := c.explainAssign()
	wantAssign := []Literal{PositiveLiteral(1), PositiveLiteral(2)}
	if diff := cmp.Diff(wantAssign, gotAssign); diff != "" {
		t.Errorf("explainAssign() mismatch (-want +got):\n%s", diff)
	}

	gotConflict := c.explainConflict()
	wantConflict := []Literal{NegativeLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}
	if diff := cmp.Diff(wantConflict, gotConflict); diff != "" {
		t.Errorf("explainConflict() mismatch (-want +got):\n%s", diff)
	}
}
