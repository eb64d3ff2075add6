package sat

import "testing"

func TestLiteral_PositiveNegative(t *testing.T) {
	p := PositiveLiteral(3)
	n := NegativeLiteral(3)

	if !p.IsPositive() {
		t.Errorf("PositiveLiteral(3).IsPositive() = false, want true")
	}
	if n.IsPositive() {
		t.Errorf("NegativeLiteral(3).IsPositive() = true, want false")
	}
	if p.VarID() != 3 || n.VarID() != 3 {
		t.Errorf("VarID() = %d, %d, want 3, 3", p.VarID(), n.VarID())
	}
	if p.Opposite() != n || n.Opposite() != p {
		t.Errorf("Opposite() did not round-trip: %v <-> %v", p, n)
	}
}

func TestLiteral_String(t *testing.T) {
	if got := PositiveLiteral(2).String(); got != "2" {
		t.Errorf("String() = %q, want %q", got, "2")
	}
	if got := NegativeLiteral(2).String(); got != "!2" {
		t.Errorf("String() = %q, want %q", got, "!2")
	}
}
