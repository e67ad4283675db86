package cube

import (
	"math/rand"
	"strings"
)

// Cube is the full state of a 3x3x3 Rubik's cube: the current piece and
// orientation occupying each of the 8 corner and 12 edge positions,
// indexed by position.
//
// Grounded on original_source/norcina-cube3/src/cube.rs.
type Cube struct {
	Corners [8]Corner
	Edges   [12]Edge
}

// Solved is the solved cube state.
var Solved = Cube{Corners: SolvedCorners, Edges: SolvedEdges}

// IsSolved reports whether c is in the solved state.
func (c Cube) IsSolved() bool { return c == Solved }

// ApplyMove returns the cube that results from turning mov.
func (c Cube) ApplyMove(mov Move) Cube {
	return Cube{
		Corners: MoveCorners(c.Corners, mov),
		Edges:   MoveEdges(c.Edges, mov),
	}
}

// ApplyAlg returns the cube that results from applying each move of alg in
// order.
func (c Cube) ApplyAlg(alg []Move) Cube {
	for _, mov := range alg {
		c = c.ApplyMove(mov)
	}
	return c
}

// Neighbor is one cube state reachable in a single move from another,
// paired with the move that reaches it.
type Neighbor struct {
	Move Move
	Cube Cube
}

// Neighbors returns every state reachable from c in exactly one move.
func (c Cube) Neighbors() []Neighbor {
	out := make([]Neighbor, 0, len(AllMoves))
	for _, mov := range AllMoves {
		out = append(out, Neighbor{Move: mov, Cube: c.ApplyMove(mov)})
	}
	return out
}

// permutationSwapParity returns the parity (0 or 1) of the permutation
// that maps position i to the solved-index of the piece currently sitting
// there, counted by decomposing the permutation into cycles: a
// permutation of n elements with k cycles has parity (n - k) mod 2. This
// is the standard group-theoretic swap-count used to test whether a
// corner permutation and an edge permutation are compatible (spec's
// parity-matching invariant).
func permutationSwapParity(perm []int) int {
	n := len(perm)
	visited := make([]bool, n)
	cycles := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
		}
	}
	return (n - cycles) % 2
}

func cornerPermutation(corners [8]Corner) []int {
	perm := make([]int, 8)
	for i, c := range corners {
		perm[i] = int(c.Position().Index())
	}
	return perm
}

func edgePermutation(edges [12]Edge) []int {
	perm := make([]int, 12)
	for i, e := range edges {
		perm[i] = int(e.Position().Index())
	}
	return perm
}

// RandomState returns a uniformly shuffled, independently oriented cube,
// with one arbitrary swap applied if needed to make the corner and edge
// permutation parities agree (a necessary condition for the state to be
// reachable by legal turns). This matches the simple fixup the source
// uses; it is not proven to sample uniformly from all reachable states
// (see RandomReachableState for an alternative that is).
func RandomState(rng *rand.Rand) Cube {
	corners := RandomCorners(rng)
	edges := RandomEdges(rng)

	cornerParity := permutationSwapParity(cornerPermutation(corners))
	edgeParity := permutationSwapParity(edgePermutation(edges))

	if cornerParity != edgeParity {
		if rng.Intn(2) == 0 {
			i := rng.Intn(8)
			j := rng.Intn(7)
			if j >= i {
				j++
			}
			corners[i], corners[j] = corners[j], corners[i]
		} else {
			i := rng.Intn(12)
			j := rng.Intn(11)
			if j >= i {
				j++
			}
			edges[i], edges[j] = edges[j], edges[i]
		}
	}

	return Cube{Corners: corners, Edges: edges}
}

// RandomReachableState samples a cube state uniformly from the set of
// states reachable by legal turns. It draws both permutations uniformly
// and, when their parities disagree, swaps the first two entries of the
// edge permutation; that fixed transposition maps the mismatched pairs
// one-to-one onto the matched ones, so the resulting even-total-parity
// pair is uniform. This is the spec's suggested alternative
// construction for callers that need provable uniformity, e.g. a scramble
// generator used for competition-style fairness.
func RandomReachableState(rng *rand.Rand) Cube {
	cornerPerm := rng.Perm(8)
	edgePerm := rng.Perm(12)

	if permutationSwapParity(cornerPerm) != permutationSwapParity(edgePerm) {
		if len(edgePerm) >= 2 {
			edgePerm[0], edgePerm[1] = edgePerm[1], edgePerm[0]
		}
	}

	var corners [8]Corner
	total := 0
	for i := 0; i < 7; i++ {
		o := uint8(rng.Intn(3))
		corners[i] = CornerPositionFromIndex(uint8(cornerPerm[i])).WithOrientation(Axis(o))
		total += int(o)
	}
	fixup := uint8((3 - total%3) % 3)
	corners[7] = CornerPositionFromIndex(uint8(cornerPerm[7])).WithOrientation(Axis(fixup))

	var edges [12]Edge
	parity := false
	for i := 0; i < 11; i++ {
		flip := rng.Intn(2) == 1
		dir := Positive
		if flip {
			dir = Negative
		}
		edges[i] = EdgePositionFromIndex(uint8(edgePerm[i])).WithOrientation(dir)
		parity = parity != flip
	}
	lastDir := Positive
	if parity {
		lastDir = Negative
	}
	edges[11] = EdgePositionFromIndex(uint8(edgePerm[11])).WithOrientation(lastDir)

	return Cube{Corners: corners, Edges: edges}
}

// sticker returns the face shown by the sticker on face at (row, col)
// of the 3x3 facelet grid for face, where up names the face considered
// "up" for that grid's row-0 orientation.
func (c Cube) sticker(face, up Face, col, row int) Face {
	target := NetFacelet(face, up, col, row)
	switch target.Kind {
	case FaceletCenter:
		return target.Face
	case FaceletCorner:
		piece := target.Corner.Pick(c.Corners)
		return CornerSticker(piece, target.Corner, target.Face)
	default:
		piece := target.Edge.Pick(c.Edges)
		return EdgeSticker(piece, target.Edge, target.Face)
	}
}

// FaceletKind distinguishes which kind of piece a net facelet belongs to.
type FaceletKind int

const (
	FaceletCenter FaceletKind = iota
	FaceletCorner
	FaceletEdge
)

// FaceletTarget names which piece position a given net facelet shows a
// sticker of, and which face direction that sticker faces. It carries no
// reference to any particular Cube value: the geometry of a 3x3 net is
// fixed regardless of scramble state, only the color shown there isn't.
type FaceletTarget struct {
	Kind   FaceletKind
	Corner CornerPosition
	Edge   EdgePosition
	Face   Face
}

// NetFacelet computes which piece position (and which of its faces) sits
// at (col, row) of the 3x3 facelet grid drawn for face, when up is treated
// as the face above it in that grid's row-0 orientation.
//
// Grounded on original_source/norcina-cube3/src/cube.rs's sticker_at,
// split out from sticker lookup so both rendering (Cube.String) and
// text-format decoding (the cfen package) share one geometry definition.
func NetFacelet(face, up Face, col, row int) FaceletTarget {
	if col == 1 && row == 1 {
		return FaceletTarget{Kind: FaceletCenter, Face: face}
	}

	side := up.Cross(face)

	if (col+row)%2 == 0 {
		rowFace := up
		if row != 0 {
			rowFace = up.Opposite()
		}
		colFace := side
		if col == 0 {
			colFace = side.Opposite()
		}
		position := CornerPositionFromFaces(face, rowFace, colFace)
		return FaceletTarget{Kind: FaceletCorner, Corner: position, Face: face}
	}

	var otherFace Face
	switch {
	case row == 0 && col == 1:
		otherFace = up
	case row == 1 && col == 0:
		otherFace = side.Opposite()
	case row == 1 && col == 2:
		otherFace = side
	case row == 2 && col == 1:
		otherFace = up.Opposite()
	default:
		panic("cube: invalid edge facelet coordinate")
	}

	position := EdgePositionFromFaces(face, otherFace)
	return FaceletTarget{Kind: FaceletEdge, Edge: position, Face: face}
}

// NetFace pairs a face with the face conventionally drawn "above" it in
// Cube.String's unfolded net, the same six pairs used for both rendering
// and cfen's text encoding.
type NetFace struct {
	Face Face
	Up   Face
}

// NetFaces lists the six faces with their net "up" reference, in the
// conventional U R F D L B reading order used by the cfen text format.
var NetFaces = [6]NetFace{
	{FaceU, FaceB},
	{FaceR, FaceU},
	{FaceF, FaceU},
	{FaceD, FaceF},
	{FaceL, FaceU},
	{FaceB, FaceD},
}

var defaultColorANSI = map[Face]string{
	FaceR: "\x1b[38;2;217;39;39m",
	FaceU: "\x1b[38;2;250;250;250m",
	FaceF: "\x1b[38;2;109;242;116m",
	FaceL: "\x1b[38;2;255;153;12m",
	FaceD: "\x1b[38;2;255;224;0m",
	FaceB: "\x1b[38;2;79;123;212m",
}

const ansiReset = "\x1b[0m"

// String renders c as an ANSI-colored unfolded cube net, in the same
// layout (B, then U, then L/F/R side by side, then D) as a terminal cube
// viewer.
func (c Cube) String() string {
	var b strings.Builder
	block := func(face Face) {
		b.WriteString(defaultColorANSI[face])
		b.WriteString("██")
		b.WriteString(ansiReset)
	}
	pad := func() { b.WriteString("      ") }

	for row := 0; row < 3; row++ {
		pad()
		for col := 0; col < 3; col++ {
			block(c.sticker(FaceB, FaceD, col, row))
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		pad()
		for col := 0; col < 3; col++ {
			block(c.sticker(FaceU, FaceB, col, row))
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			block(c.sticker(FaceL, FaceU, col, row))
		}
		for col := 0; col < 3; col++ {
			block(c.sticker(FaceF, FaceU, col, row))
		}
		for col := 0; col < 3; col++ {
			block(c.sticker(FaceR, FaceU, col, row))
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		pad()
		for col := 0; col < 3; col++ {
			block(c.sticker(FaceD, FaceF, col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
