package search

import (
	"math/rand"
	"testing"

	"github.com/nullstride/cube3/internal/cube"
)

func TestSolvedCubeIsInG1(t *testing.T) {
	if !IsInG1(cube.Solved) {
		t.Fatal("solved cube reported as not in G1")
	}
}

func TestG1MovesStayInG1(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	state := cube.Solved
	for i := 0; i < 50; i++ {
		mov := cube.G1Moves[rng.Intn(len(cube.G1Moves))]
		state = state.ApplyMove(mov)
		if !IsInG1(state) {
			t.Fatalf("step %d: state left G1 after a G1-only move", i)
		}
	}
}

func TestSolveScrambleFromSpecExample(t *testing.T) {
	table := Generate()
	alg, err := cube.ParseAlg("R U D F2 R L D2")
	if err != nil {
		t.Fatal(err)
	}
	scrambled := cube.Solved.ApplyAlg(alg)

	sol := SolveWithTable(scrambled, table)
	if len(sol.Moves) > 22 {
		t.Errorf("solution length %d exceeds 22", len(sol.Moves))
	}

	result := scrambled.ApplyAlg(sol.Moves)
	if !result.IsSolved() {
		t.Fatal("applying the solution did not solve the cube")
	}
}

func TestSolveIsReproducibleForSeededState(t *testing.T) {
	table := Generate()
	rng := rand.New(rand.NewSource(99))
	state := cube.RandomState(rng)

	first := SolveWithTable(state, table)
	second := SolveWithTable(state, table)

	if len(first.Moves) != len(second.Moves) {
		t.Fatalf("solve lengths differ across runs: %d vs %d", len(first.Moves), len(second.Moves))
	}
	for i := range first.Moves {
		if first.Moves[i] != second.Moves[i] {
			t.Fatalf("move %d differs across runs: %v vs %v", i, first.Moves[i], second.Moves[i])
		}
	}
}

func TestSolveBestNeverWorse(t *testing.T) {
	table := Generate()
	alg, err := cube.ParseAlg("R U R' U' R' F R2 U' R' U' R U R' F'")
	if err != nil {
		t.Fatal(err)
	}
	scrambled := cube.Solved.ApplyAlg(alg)

	plain := SolveWithTable(scrambled, table)
	best := SolveBest(scrambled, table, 3)

	if len(best.Moves) > len(plain.Moves) {
		t.Fatalf("SolveBest produced a longer solution (%d) than SolveWithTable (%d)", len(best.Moves), len(plain.Moves))
	}
	if !scrambled.ApplyAlg(best.Moves).IsSolved() {
		t.Fatal("SolveBest's solution did not solve the cube")
	}
}
