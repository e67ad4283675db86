package cube

import "testing"

func TestEdgePositionFromFacesRoundTrip(t *testing.T) {
	for _, f1 := range faces {
		for _, f2 := range faces {
			if f1.Axis() == f2.Axis() {
				continue
			}
			pos := EdgePositionFromFaces(f1, f2)
			got := pos.Faces()
			if got != [2]Face{f1, f2} && got != [2]Face{f2, f1} {
				t.Errorf("faces %v,%v -> position -> faces %v", f1, f2, got)
			}
		}
	}
}

func TestSolvedEdgeStickersMatchFace(t *testing.T) {
	for _, pos := range AllEdgePositions {
		edge := pos.Pick(SolvedEdges)
		for _, face := range pos.Faces() {
			if EdgeSticker(edge, pos, face) != face {
				t.Errorf("solved edge at %v: sticker toward %v should be %v", pos, face, face)
			}
		}
	}
}

func TestEdgePositionIndexRoundTrip(t *testing.T) {
	for i := uint8(0); i < 12; i++ {
		if EdgePositionFromIndex(i).Index() != i {
			t.Errorf("index %d round trip failed", i)
		}
	}
}
