package search

import "testing"

func TestCornerOrientationRoundTrip(t *testing.T) {
	for i := 0; i < CornerOrientationCount; i++ {
		got := CornerOrientationIndex(CornerOrientationFromIndex(i))
		if got != i {
			t.Fatalf("index %d round trip gave %d", i, got)
		}
	}
}

func TestEdgeOrientationRoundTrip(t *testing.T) {
	for i := 0; i < EdgeOrientationCount; i++ {
		got := EdgeOrientationIndex(EdgeOrientationFromIndex(i))
		if got != i {
			t.Fatalf("index %d round trip gave %d", i, got)
		}
	}
}

func TestUDSlicePlacementRoundTrip(t *testing.T) {
	for i := 0; i < UDSlicePlacementCount; i++ {
		got := UDSlicePlacementIndex(UDSlicePlacementFromIndex(i))
		if got != i {
			t.Fatalf("index %d round trip gave %d", i, got)
		}
	}
}

func TestCornerPermutationRoundTrip(t *testing.T) {
	for i := 0; i < CornerPermutationCount; i++ {
		got := CornerPermutationIndex(CornerPermutationFromIndex(i))
		if got != i {
			t.Fatalf("index %d round trip gave %d", i, got)
		}
	}
}

func TestUDSlicePermutationRoundTrip(t *testing.T) {
	for i := 0; i < UDSlicePermutationCount; i++ {
		got := UDSlicePermutationIndex(UDSlicePermutationFromIndex(i))
		if got != i {
			t.Fatalf("index %d round trip gave %d", i, got)
		}
	}
}

func TestESlicePermutationRoundTrip(t *testing.T) {
	for i := 0; i < ESlicePermutationCount; i++ {
		got := ESlicePermutationIndex(ESlicePermutationFromIndex(i))
		if got != i {
			t.Fatalf("index %d round trip gave %d", i, got)
		}
	}
}
