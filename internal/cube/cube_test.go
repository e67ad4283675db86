package cube

import (
	"math/rand"
	"testing"
)

func TestSexyMoveOrder6(t *testing.T) {
	alg, err := ParseAlg("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved
	for i := 0; i < 6; i++ {
		c = c.ApplyAlg(alg)
	}
	if c != Solved {
		t.Errorf("sexy move repeated 6 times did not return to solved")
	}
}

func TestCheckerPatternOrder2(t *testing.T) {
	alg, err := ParseAlg("R2 L2 U2 D2 F2 B2")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved.ApplyAlg(alg).ApplyAlg(alg)
	if c != Solved {
		t.Errorf("checker pattern applied twice did not return to solved")
	}
}

func TestTPermOrder2(t *testing.T) {
	alg, err := ParseAlg("R U R' U' R' F R2 U' R' U' R U R' F'")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved.ApplyAlg(alg).ApplyAlg(alg)
	if c != Solved {
		t.Errorf("T-perm applied twice did not return to solved")
	}
}

func TestApplyMovePreservesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := Solved
	for step := 0; step < 500; step++ {
		mov := AllMoves[rng.Intn(len(AllMoves))]
		c = c.ApplyMove(mov)
		checkInvariants(t, c, step)
	}
}

func checkInvariants(t *testing.T, c Cube, step int) {
	t.Helper()
	orientSum := 0
	for _, cn := range c.Corners {
		orientSum += int(cn.Orientation().u8())
	}
	if orientSum%3 != 0 {
		t.Fatalf("step %d: corner orientation sum %d not a multiple of 3", step, orientSum)
	}

	edgeXor := 0
	for _, e := range c.Edges {
		if !e.IsOriented() {
			edgeXor ^= 1
		}
	}
	if edgeXor != 0 {
		t.Fatalf("step %d: edge orientation xor-sum is not 0", step)
	}

	cp := permutationSwapParity(cornerPermutation(c.Corners))
	ep := permutationSwapParity(edgePermutation(c.Edges))
	if cp != ep {
		t.Fatalf("step %d: corner/edge permutation parity mismatch", step)
	}
}

func TestCornerTurnDistanceDistribution(t *testing.T) {
	for _, p := range AllCornerPositions {
		var bins [3]int
		for _, other := range AllCornerPositions {
			bins[p.TurnDistance(other)]++
		}
		if bins != [3]int{1, 6, 1} {
			t.Errorf("position %v: turn distance bins %v, want [1 6 1]", p, bins)
		}
	}
}

func TestEdgeTurnDistanceDistribution(t *testing.T) {
	for _, p := range AllEdgePositions {
		var bins [3]int
		for _, other := range AllEdgePositions {
			bins[p.TurnDistance(other)]++
		}
		if bins != [3]int{1, 6, 5} {
			t.Errorf("position %v: turn distance bins %v, want [1 6 5]", p, bins)
		}
	}
}

func TestRandomStateSatisfiesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		c := RandomState(rng)
		checkInvariants(t, c, i)
	}
}

func TestRandomReachableStateSatisfiesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		c := RandomReachableState(rng)
		checkInvariants(t, c, i)
	}
}

func TestNeighborsCount(t *testing.T) {
	n := Solved.Neighbors()
	if len(n) != 18 {
		t.Fatalf("got %d neighbors, want 18", len(n))
	}
}

func TestIsSolved(t *testing.T) {
	if !Solved.IsSolved() {
		t.Fatal("Solved.IsSolved() returned false")
	}
	scrambled := Solved.ApplyMove(NewMove(FaceR, Single))
	if scrambled.IsSolved() {
		t.Fatal("scrambled cube reported as solved")
	}
}

func TestStringDoesNotPanic(t *testing.T) {
	_ = Solved.String()
	_ = Solved.ApplyMove(NewMove(FaceR, Single)).String()
}
