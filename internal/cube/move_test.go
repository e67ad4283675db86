package cube

import "testing"

func TestMoveInverseIdentity(t *testing.T) {
	for _, mov := range AllMoves {
		c := Solved.ApplyMove(mov).ApplyMove(mov.Inverse())
		if c != Solved {
			t.Errorf("move %s then its inverse did not return to solved", mov)
		}
	}
}

func TestSingleMoveOrder4(t *testing.T) {
	for _, f := range faces {
		mov := NewMove(f, Single)
		c := Solved
		for i := 0; i < 4; i++ {
			c = c.ApplyMove(mov)
		}
		if c != Solved {
			t.Errorf("face %s applied 4 times did not return to solved", f)
		}
	}
}

func TestDoubleMoveOrder2(t *testing.T) {
	for _, f := range faces {
		mov := NewMove(f, Double)
		c := Solved.ApplyMove(mov).ApplyMove(mov)
		if c != Solved {
			t.Errorf("face %s double move applied twice did not return to solved", f)
		}
	}
}

func TestSingleThenDoubleEqualsReverse(t *testing.T) {
	for _, f := range faces {
		got := Solved.ApplyMove(NewMove(f, Single)).ApplyMove(NewMove(f, Double))
		want := Solved.ApplyMove(NewMove(f, Reverse))
		if got != want {
			t.Errorf("face %s: single+double != reverse", f)
		}
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	for _, mov := range AllMoves {
		s := mov.String()
		parsed, err := ParseMove(trimMoveSpace(s))
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if parsed != mov {
			t.Errorf("round trip mismatch: %v -> %q -> %v", mov, s, parsed)
		}
	}
}

// trimMoveSpace strips a trailing space from a two-character move string,
// since ParseMove expects a bare face letter for Single-amount moves.
// Move.String already renders those as the bare letter (only Amount.String
// uses the space), so its output passes through unchanged.
func trimMoveSpace(s string) string {
	if len(s) == 2 && s[1] == ' ' {
		return s[:1]
	}
	return s
}

func TestParseAlg(t *testing.T) {
	alg, err := ParseAlg("R U R' U'")
	if err != nil {
		t.Fatalf("ParseAlg: %v", err)
	}
	want := []Move{NewMove(FaceR, Single), NewMove(FaceU, Single), NewMove(FaceR, Reverse), NewMove(FaceU, Reverse)}
	if len(alg) != len(want) {
		t.Fatalf("got %d moves, want %d", len(alg), len(want))
	}
	for i := range want {
		if alg[i] != want[i] {
			t.Errorf("move %d: got %v want %v", i, alg[i], want[i])
		}
	}
}

func TestInverseAlg(t *testing.T) {
	alg, err := ParseAlg("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved.ApplyAlg(alg).ApplyAlg(InverseAlg(alg))
	if c != Solved {
		t.Errorf("alg followed by its inverse did not return to solved")
	}
}
