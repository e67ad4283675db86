package cube

import "fmt"

// Face identifies one of the six faces of the cube. Values are chosen so
// that axis and direction can be read out of the low three bits: bit 2 is
// direction, bits 0-1 are the axis. 3 is deliberately unused so that
// opposite faces differ only in bit 2.
//
// Grounded on original_source/norcina-cube-n/src/face.rs.
type Face uint8

const (
	FaceR Face = 0
	FaceU Face = 1
	FaceF Face = 2
	FaceL Face = 4
	FaceD Face = 5
	FaceB Face = 6
)

// faces enumerates all six faces in a fixed order, used by AllMoves and by
// iteration helpers throughout the package.
var faces = [6]Face{FaceR, FaceU, FaceF, FaceL, FaceD, FaceB}

func (f Face) u8() uint8 { return uint8(f) }

// NewFace builds the face with the given axis and direction.
func NewFace(axis Axis, dir Direction) Face {
	return faceFromU8(axis.u8() + (dir.u8() << 2))
}

func faceFromU8(index uint8) Face {
	switch index {
	case 0:
		return FaceR
	case 1:
		return FaceU
	case 2:
		return FaceF
	case 4:
		return FaceL
	case 5:
		return FaceD
	case 6:
		return FaceB
	default:
		panic(fmt.Sprintf("cube: invalid face index %d", index))
	}
}

// Axis returns the spatial axis this face's turns rotate around.
func (f Face) Axis() Axis { return Axis(f.u8() & 0b011) }

// Direction returns whether this face sits on the positive or negative
// side of its axis.
func (f Face) Direction() Direction { return directionFromBool(f.u8()&0b100 != 0) }

// Opposite returns the face on the other side of the cube along the same
// axis (R<->L, U<->D, F<->B).
func (f Face) Opposite() Face { return faceFromU8(f.u8() ^ 0b100) }

// Cross returns the face perpendicular to both f and rhs that completes a
// right-handed frame, the same way a 3D cross product picks a third axis
// from two others.
//
// Panics if f and rhs share an axis.
func (f Face) Cross(rhs Face) Face {
	if f.Axis() == rhs.Axis() {
		panic("cube: Face.Cross requires perpendicular faces")
	}
	axis := OtherAxis(f.Axis(), rhs.Axis())
	dir := directionFromBool(boolXor(boolXor(f.Axis().Next() != rhs.Axis(), f.Direction() == Negative), rhs.Direction() == Negative))
	return NewFace(axis, dir)
}

func boolXor(a, b bool) bool { return a != b }

func (f Face) String() string {
	switch f {
	case FaceR:
		return "R"
	case FaceU:
		return "U"
	case FaceF:
		return "F"
	case FaceL:
		return "L"
	case FaceD:
		return "D"
	case FaceB:
		return "B"
	default:
		panic(fmt.Sprintf("cube: invalid face %d", uint8(f)))
	}
}

// FaceFromByte parses a single face letter (R, U, F, L, D, B), case
// sensitive, matching cube notation.
func FaceFromByte(c byte) (Face, error) {
	switch c {
	case 'R':
		return FaceR, nil
	case 'U':
		return FaceU, nil
	case 'F':
		return FaceF, nil
	case 'L':
		return FaceL, nil
	case 'D':
		return FaceD, nil
	case 'B':
		return FaceB, nil
	default:
		return 0, fmt.Errorf("cube: invalid face letter %q", c)
	}
}
