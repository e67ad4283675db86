package cube

import "testing"

func TestCornerPositionFromFacesRoundTrip(t *testing.T) {
	for _, dx := range []Direction{Positive, Negative} {
		for _, dy := range []Direction{Positive, Negative} {
			for _, dz := range []Direction{Positive, Negative} {
				faces := [3]Face{NewFace(AxisX, dx), NewFace(AxisY, dy), NewFace(AxisZ, dz)}
				pos := CornerPositionFromFaces(faces[0], faces[1], faces[2])
				got := pos.Faces()
				if got != faces {
					t.Errorf("faces %v -> position -> faces %v", faces, got)
				}
			}
		}
	}
}

func TestSolvedCornerStickersMatchFace(t *testing.T) {
	for _, pos := range AllCornerPositions {
		corner := pos.Pick(SolvedCorners)
		for _, face := range pos.Faces() {
			if CornerSticker(corner, pos, face) != face {
				t.Errorf("solved corner at %v: sticker toward %v should be %v", pos, face, face)
			}
		}
	}
}

func TestCornerPositionIndexRoundTrip(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		if CornerPositionFromIndex(i).Index() != i {
			t.Errorf("index %d round trip failed", i)
		}
	}
}
