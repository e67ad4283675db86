package cfen

import (
	"math/rand"
	"testing"

	"github.com/nullstride/cube3/internal/cube"
)

func TestEncodeSolvedCube(t *testing.T) {
	got := Encode(cube.Solved)
	want := "WG|W9/R9/G9/Y9/O9/B9"
	if got != want {
		t.Fatalf("Encode(Solved) = %q, want %q", got, want)
	}
}

func TestDecodeSolvedCube(t *testing.T) {
	c, err := Decode("WG|W9/R9/G9/Y9/O9/B9")
	if err != nil {
		t.Fatal(err)
	}
	if c != cube.Solved {
		t.Fatalf("Decode of solved CFEN did not equal cube.Solved")
	}
}

func TestRoundTripSingleMoves(t *testing.T) {
	for _, mov := range cube.AllMoves {
		state := cube.Solved.ApplyMove(mov)
		encoded := Encode(state)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("move %s: Decode failed: %v", mov, err)
		}
		if decoded != state {
			t.Fatalf("move %s: round trip mismatch, cfen %q", mov, encoded)
		}
	}
}

func TestRoundTripRandomStates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		state := cube.RandomState(rng)
		encoded := Encode(state)
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("iteration %d: Decode failed: %v", i, err)
		}
		if decoded != state {
			t.Fatalf("iteration %d: round trip mismatch, cfen %q", i, encoded)
		}
	}
}

func TestDecodeRejectsWrongFaceCount(t *testing.T) {
	if _, err := Decode("WG|W9/R9/G9/Y9/O9"); err == nil {
		t.Fatal("expected error for missing face")
	}
}

func TestDecodeRejectsBadOrientation(t *testing.T) {
	if _, err := Decode("WX|W9/R9/G9/Y9/O9/B9"); err == nil {
		t.Fatal("expected error for invalid orientation letter")
	}
}

func TestDecodeRejectsWrongStickerCount(t *testing.T) {
	if _, err := Decode("WG|W8/R9/G9/Y9/O9/B9"); err == nil {
		t.Fatal("expected error for a face with too few stickers")
	}
}
