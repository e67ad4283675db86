package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nullstride/cube3/internal/cube"
)

func TestPruneTableSolvedHeuristicsAreZero(t *testing.T) {
	table := Generate()
	if h := table.Phase1Heuristic(cube.Solved); h != 0 {
		t.Errorf("phase1 heuristic of solved cube = %d, want 0", h)
	}
	if h := table.Phase2Heuristic(cube.Solved); h != 0 {
		t.Errorf("phase2 heuristic of solved cube = %d, want 0", h)
	}
}

func TestPruneTableSingleMoveHeuristicAtMostOne(t *testing.T) {
	table := Generate()
	for _, mov := range cube.AllMoves {
		scrambled := cube.Solved.ApplyMove(mov)
		if h := table.Phase1Heuristic(scrambled); h > 1 {
			t.Errorf("move %s: phase1 heuristic %d, want <= 1", mov, h)
		}
	}
}

func TestPruneTableGenerationIsDeterministic(t *testing.T) {
	a := Generate()
	b := Generate()
	if string(a.OrientCorners) != string(b.OrientCorners) ||
		string(a.OrientEdges) != string(b.OrientEdges) ||
		string(a.UDSlicePlacement) != string(b.UDSlicePlacement) ||
		string(a.PermuteCorners) != string(b.PermuteCorners) ||
		string(a.PermuteUDSliceEdges) != string(b.PermuteUDSliceEdges) ||
		string(a.PermuteESliceEdges) != string(b.PermuteESliceEdges) {
		t.Fatal("two from-scratch pruning table builds were not byte-identical")
	}
}

func TestSaveLoadTableRoundTrip(t *testing.T) {
	table := Generate()
	path := filepath.Join(t.TempDir(), "prunetables.bin")

	if err := SaveTable(path, table); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	loaded, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	if string(table.OrientCorners) != string(loaded.OrientCorners) {
		t.Error("OrientCorners mismatch after save/load")
	}
	if string(table.PermuteESliceEdges) != string(loaded.PermuteESliceEdges) {
		t.Error("PermuteESliceEdges mismatch after save/load")
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatal("expected an error loading a missing cache file")
	}
}

func TestLoadOrGenerateFallsBackOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "prunetables.bin")
	table := LoadOrGenerate(path)
	if table.Phase1Heuristic(cube.Solved) != 0 {
		t.Fatal("generated table did not score solved cube as distance 0")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("LoadOrGenerate did not persist the generated table: %v", err)
	}
}
