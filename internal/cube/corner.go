package cube

import (
	"fmt"
	"math/rand"
)

// Corner is one of the cube's 8 corner pieces, packed as 000oozyx: bits 0-2
// give the piece's home (solved) position, which identifies the piece (one
// bit per axis, 0 = positive side), bits 3-4 give its twist (0, 1 or 2)
// measured from its U/D (Y-axis) sticker.
//
// Grounded on original_source/norcina-cube-n/src/piece/corner.rs.
type Corner struct {
	data uint8
}

// SolvedCorners is the corner state of a solved cube, indexed by position.
var SolvedCorners = [8]Corner{
	solvedCorner(0), solvedCorner(1), solvedCorner(2), solvedCorner(3),
	solvedCorner(4), solvedCorner(5), solvedCorner(6), solvedCorner(7),
}

func solvedCorner(index uint8) Corner {
	if index >= 8 {
		panic("cube: corner index out of range")
	}
	return Corner{data: index}
}

func (c Corner) x() Direction { return directionFromBool(c.data&0b001 != 0) }
func (c Corner) y() Direction { return directionFromBool(c.data&0b010 != 0) }
func (c Corner) z() Direction { return directionFromBool(c.data&0b100 != 0) }

// Orientation returns the corner's twist as a value 0, 1 or 2 (typed as an
// Axis): 0 when its U/D sticker faces the Y axis. Y-axis (U/D) turns never
// change it.
func (c Corner) Orientation() Axis {
	return Axis((c.data >> 3) & 0b11)
}

// DirectionOnAxis returns the direction (within the current position) the
// corner occupies along axis.
func (c Corner) DirectionOnAxis(axis Axis) Direction {
	return directionFromBool((c.data>>axis.u8())&0b1 != 0)
}

// OnFace reports whether this corner currently touches face.
func (c Corner) OnFace(face Face) bool {
	return c.DirectionOnAxis(face.Axis()) == face.Direction()
}

// Position returns the corner's home position, discarding orientation.
func (c Corner) Position() CornerPosition {
	return CornerPosition{data: c.data & 0b00111}
}

// RandomCorners returns a uniformly shuffled set of 8 corners whose
// orientation sum is a multiple of 3, matching the invariant a reachable
// cube state must satisfy. It does not guarantee the permutation parity
// matches a valid edge permutation; callers combining this with
// RandomEdges must fix that up themselves (see RandomState).
func RandomCorners(rng *rand.Rand) [8]Corner {
	out := SolvedCorners
	rng.Shuffle(8, func(i, j int) { out[i], out[j] = out[j], out[i] })

	total := 0
	for i := 0; i < 7; i++ {
		orientation := uint8(rng.Intn(3))
		out[i].data += orientation << 3
		total += int(orientation)
	}
	fixup := uint8(((3 - total%3) % 3))
	out[7].data += fixup << 3
	return out
}

// CornerPosition names one of the 8 corner slots on the cube by the three
// faces that meet there, packed the same way as Corner but with no
// orientation bits.
type CornerPosition struct {
	data uint8
}

func (p CornerPosition) x() Direction { return directionFromBool(p.data&0b001 != 0) }
func (p CornerPosition) y() Direction { return directionFromBool(p.data&0b010 != 0) }
func (p CornerPosition) z() Direction { return directionFromBool(p.data&0b100 != 0) }

// CornerPositionFromFaces builds the position where the three given
// (pairwise-perpendicular) faces meet.
func CornerPositionFromFaces(a, b, c Face) CornerPosition {
	if a.Axis() == b.Axis() || b.Axis() == c.Axis() || c.Axis() == a.Axis() {
		panic(fmt.Sprintf("cube: faces %v %v %v don't form a corner", a, b, c))
	}
	var index uint8
	for _, f := range [3]Face{a, b, c} {
		index += f.Direction().u8() << f.Axis().u8()
	}
	return CornerPosition{data: index}
}

// Faces returns the three faces that meet at this position, in X, Y, Z
// axis order.
func (p CornerPosition) Faces() [3]Face {
	return [3]Face{
		NewFace(AxisX, p.x()),
		NewFace(AxisY, p.y()),
		NewFace(AxisZ, p.z()),
	}
}

// CornerPositionFromIndex builds the position with the given index (0-7).
func CornerPositionFromIndex(index uint8) CornerPosition {
	if index >= 8 {
		panic("cube: corner position index out of range")
	}
	return CornerPosition{data: index}
}

// Index returns this position's 0-7 index.
func (p CornerPosition) Index() uint8 { return p.data }

// Pick returns the corner currently occupying this position.
func (p CornerPosition) Pick(corners [8]Corner) Corner { return corners[p.data] }

// ContainsFace reports whether this position touches face.
func (p CornerPosition) ContainsFace(face Face) bool {
	return (p.data>>face.Axis().u8())&0b1 == face.Direction().u8()
}

// parity is the xor of all three position bits: 0 or 1.
func (p CornerPosition) parity() uint8 {
	return (p.data ^ (p.data >> 1) ^ (p.data >> 2)) & 0b1
}

// TurnDistance returns the minimum number of quarter/half turns needed to
// move a piece from self to other, ignoring every other piece on the cube.
// Exactly one position is at distance 0 (itself), six at distance 1, and
// one at distance 2 (the diagonally opposite corner).
func (p CornerPosition) TurnDistance(other CornerPosition) uint8 {
	diffCoords := popcount3(p.data ^ other.data)
	return (diffCoords + 1) / 2
}

func popcount3(x uint8) uint8 {
	x &= 0b111
	return (x & 1) + ((x >> 1) & 1) + ((x >> 2) & 1)
}

// AllCornerPositions lists all 8 corner positions by index.
var AllCornerPositions = [8]CornerPosition{
	CornerPositionFromIndex(0), CornerPositionFromIndex(1), CornerPositionFromIndex(2), CornerPositionFromIndex(3),
	CornerPositionFromIndex(4), CornerPositionFromIndex(5), CornerPositionFromIndex(6), CornerPositionFromIndex(7),
}

// WithOrientation returns the Corner occupying this position with the
// given orientation.
func (p CornerPosition) WithOrientation(orientation Axis) Corner {
	return Corner{data: p.data + (orientation.u8() << 3)}
}

// CornerSticker returns which face color shows on the sticker of corner
// (currently at position) that faces face.
func CornerSticker(corner Corner, position CornerPosition, face Face) Face {
	var faceIndex uint8
	if position.parity() == 0 {
		faceIndex = (7 - face.Axis().u8() - corner.Orientation().u8()) % 3
	} else {
		faceIndex = (5 + face.Axis().u8() - corner.Orientation().u8()) % 3
	}

	var axisU8 uint8
	if corner.Position().parity() == 0 {
		axisU8 = (4 - faceIndex) % 3
	} else {
		axisU8 = (1 + faceIndex) % 3
	}
	axis := Axis(axisU8)
	return NewFace(axis, corner.DirectionOnAxis(axis))
}

// MoveCorners returns the corner array that results from applying mov to
// corners.
func MoveCorners(corners [8]Corner, mov Move) [8]Corner {
	var out [8]Corner
	for i := 0; i < 8; i++ {
		position := CornerPositionFromIndex(uint8(i))
		if !position.ContainsFace(mov.Face()) {
			out[i] = position.Pick(corners)
			continue
		}

		axis := mov.Axis().u8()
		var a, b uint8
		switch {
		case mov.Amount() == Double:
			mask := uint8(1) << axis
			out[i] = corners[uint8(i)^(0b111^mask)]
			continue
		case (mov.Amount() == Single && mov.Face().Direction() == Positive) ||
			(mov.Amount() == Reverse && mov.Face().Direction() == Negative):
			a, b = (axis+1)%3, (axis+2)%3
		default:
			a, b = (axis+2)%3, (axis+1)%3
		}

		ii := uint8(i)
		temp := ((ii >> a) ^ (ii >> b)) & 0b1
		ii = ii ^ (((temp ^ 0b1) << a) | (temp << b))

		var isNotOnYAxis uint8
		if axis != AxisY.u8() {
			isNotOnYAxis = 1
		}
		orientationDiff := isNotOnYAxis << (position.parity() ^ (mov.Amount().u8() & 0b1) ^ (axis >> 1))

		piece := corners[ii]
		piece.data = (piece.data + (orientationDiff << 3)) % (3 << 3)
		out[i] = piece
	}
	return out
}

func (c Corner) String() string {
	faces := c.Position().Faces()
	return fmt.Sprintf("%s%s%s (%d)", faces[0], faces[1], faces[2], c.Orientation().u8())
}

func (p CornerPosition) String() string {
	faces := p.Faces()
	return fmt.Sprintf("%s%s%s", faces[0], faces[1], faces[2])
}
