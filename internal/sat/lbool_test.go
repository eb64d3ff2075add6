package sat

import "testing"

func TestLBool_Opposite(t *testing.T) {
	tests := []struct {
		in   LBool
		want LBool
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, tc := range tests {
		if got := tc.in.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLift(t *testing.T) {
	if Lift(true) != True {
		t.Errorf("Lift(true) != True")
	}
	if Lift(false) != False {
		t.Errorf("Lift(false) != False")
	}
}
