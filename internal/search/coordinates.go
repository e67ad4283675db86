// Package search implements Kociemba's two-phase algorithm: six pruning
// tables keyed by coordinate, a generic IDA* driver, and the phase
// orchestration that ties them together.
package search

import "github.com/nullstride/cube3/internal/cube"

// Coordinate cardinalities, one per pruning table.
//
// Grounded on original_source/norcina-cube3/src/search/kociemba/prune_table.rs.
const (
	CornerOrientationCount   = 2187 // 3^7
	EdgeOrientationCount     = 2048 // 2^11
	UDSlicePlacementCount    = 495  // C(12,4)
	CornerPermutationCount   = 40320 // 8!
	UDSlicePermutationCount  = 40320 // 8!
	ESlicePermutationCount   = 24    // 4!
)

// CornerOrientationIndex encodes the orientation of the first 7 corners in
// base 3; the 8th is implied by the invariant that all orientations sum to
// 0 mod 3.
func CornerOrientationIndex(corners [8]cube.Corner) int {
	index := 0
	for i := 0; i < 7; i++ {
		index = index*3 + int(corners[i].Orientation())
	}
	return index
}

// CornerOrientationFromIndex is the inverse of CornerOrientationIndex. The
// returned corners are in solved position; only orientation is meaningful.
func CornerOrientationFromIndex(index int) [8]cube.Corner {
	corners := cube.SolvedCorners
	sum := 0
	for i := 6; i >= 0; i-- {
		o := index % 3
		corners[i] = cube.CornerPositionFromIndex(uint8(i)).WithOrientation(cube.Axis(o))
		index /= 3
		sum += o
	}
	corners[7] = cube.CornerPositionFromIndex(7).WithOrientation(cube.Axis((3 - sum%3) % 3))
	return corners
}

// EdgeOrientationIndex encodes the orientation of the first 11 edges in
// base 2; the 12th is implied by the invariant that the orientation
// xor-sum is 0.
func EdgeOrientationIndex(edges [12]cube.Edge) int {
	index := 0
	for i := 0; i < 11; i++ {
		o := 0
		if edges[i].Orientation() == cube.Negative {
			o = 1
		}
		index = index*2 + o
	}
	return index
}

// EdgeOrientationFromIndex is the inverse of EdgeOrientationIndex.
func EdgeOrientationFromIndex(index int) [12]cube.Edge {
	edges := cube.SolvedEdges
	orientedCount := 0
	for i := 10; i >= 0; i-- {
		isOriented := index%2 == 0
		dir := cube.Positive
		if !isOriented {
			dir = cube.Negative
		}
		edges[i] = cube.EdgePositionFromIndex(uint8(i)).WithOrientation(dir)
		index /= 2
		if isOriented {
			orientedCount++
		}
	}
	lastDir := cube.Negative
	if (11-orientedCount)%2 == 0 {
		lastDir = cube.Positive
	}
	edges[11] = cube.EdgePositionFromIndex(11).WithOrientation(lastDir)
	return edges
}

// choose returns the binomial coefficient n choose r, computed the same
// way as the combinatorial-number-system encoder/decoder below expect: as
// an exact integer product/quotient, valid for the small n, r this package
// calls it with.
func choose(n, r int) int {
	if r == 0 {
		return 1
	}
	num := 1
	for i := 0; i < r; i++ {
		num *= n - i
	}
	den := 1
	for i := 0; i < r; i++ {
		den *= r - i
	}
	return num / den
}

// UDSlicePlacementIndex encodes which 4 of the 12 edge slots currently
// hold a Y-normal (UD-slice) edge, using the combinatorial number system:
// order independent, just "which 4 positions".
func UDSlicePlacementIndex(edges [12]cube.Edge) int {
	index := 0
	remaining := 4
	for i := 11; i >= 0; i-- {
		if edges[i].Position().Normal() == cube.AxisY {
			index += choose(i, remaining)
			remaining--
		}
	}
	return index
}

// UDSlicePlacementFromIndex is the inverse of UDSlicePlacementIndex. Only
// each edge's slice membership is meaningful in the result; exact identity
// within the 4 UD-slice (or 8 non-slice) edges is arbitrary but stable.
func UDSlicePlacementFromIndex(index int) [12]cube.Edge {
	edges := cube.SolvedEdges
	remaining := 4
	for i := 11; i >= 0; i-- {
		c := choose(i, remaining)
		if index >= c {
			edges[i] = cube.SolvedEdges[remaining+3]
			index -= c
			remaining--
		} else {
			edges[i] = cube.SolvedEdges[(i+8-remaining)%12]
		}
	}
	return edges
}

// encodeLehmer produces the Lehmer-code (inversion count) index of a
// sequence of distinct, pairwise-comparable values, independent of the
// absolute values involved -- only their relative order matters. This is
// the combinatorial encoding CornerPermutationIndex, UDSlicePermutationIndex
// and ESlicePermutationIndex all share.
func encodeLehmer(values []uint8) int {
	n := len(values)
	index := 0
	for i := 0; i < n; i++ {
		index *= n - i
		for j := i + 1; j < n; j++ {
			if values[i] > values[j] {
				index++
			}
		}
	}
	return index
}

// decodeLehmer is the inverse of encodeLehmer: given an index and the
// sequence length n, returns the unique permutation of {0, ..., n-1} with
// that Lehmer code.
func decodeLehmer(index, n int) []uint8 {
	out := make([]uint8, n)
	for i := n - 2; i >= 0; i-- {
		out[i] = uint8(index % (n - i))
		index /= n - i
		for j := i + 1; j < n; j++ {
			if out[j] >= out[i] {
				out[j]++
			}
		}
	}
	return out
}

// CornerPermutationIndex encodes the permutation of all 8 corners (valid
// once all corners are oriented, i.e. in G1).
func CornerPermutationIndex(corners [8]cube.Corner) int {
	values := make([]uint8, 8)
	for i, c := range corners {
		values[i] = c.Position().Index()
	}
	return encodeLehmer(values)
}

// CornerPermutationFromIndex is the inverse of CornerPermutationIndex. The
// returned corners all have orientation 0.
func CornerPermutationFromIndex(index int) [8]cube.Corner {
	values := decodeLehmer(index, 8)
	var corners [8]cube.Corner
	for i, v := range values {
		corners[i] = cube.CornerPositionFromIndex(v).WithOrientation(cube.AxisX)
	}
	return corners
}

// udSliceEdgeIndices are the 8 edge-array slots that hold a non-Y-normal
// (U/D-face) edge once the cube is in G1: indices 0-3 and 8-11.
var udSliceEdgeIndices = [8]int{0, 1, 2, 3, 8, 9, 10, 11}

// UDSlicePermutationIndex encodes the permutation of the 8 U/D-face edges
// among themselves (valid only once the cube is in G1, so the Y-normal
// edges are already confined to indices 4-7).
func UDSlicePermutationIndex(edges [12]cube.Edge) int {
	values := make([]uint8, 8)
	for i, idx := range udSliceEdgeIndices {
		values[i] = edges[idx].Position().Index()
	}
	return encodeLehmer(values)
}

// UDSlicePermutationFromIndex is the inverse of UDSlicePermutationIndex.
// The 4 Y-normal slots (indices 4-7) are left solved; callers compose this
// with ESlicePermutationFromIndex to get a full edge array.
func UDSlicePermutationFromIndex(index int) [12]cube.Edge {
	values := decodeLehmer(index, 8)
	edges := cube.SolvedEdges
	for i := 0; i < 4; i++ {
		edges[i] = cube.EdgePositionFromIndex(values[i]).WithOrientation(cube.Positive)
	}
	for i := 4; i < 8; i++ {
		edges[i+4] = cube.EdgePositionFromIndex(values[i]).WithOrientation(cube.Positive)
	}
	return edges
}

// ESlicePermutationIndex encodes the permutation of the 4 Y-normal
// (middle slice) edges among themselves (valid only once the cube is in
// G1).
func ESlicePermutationIndex(edges [12]cube.Edge) int {
	values := make([]uint8, 4)
	for i := 0; i < 4; i++ {
		values[i] = edges[4+i].Position().Index()
	}
	return encodeLehmer(values)
}

// ESlicePermutationFromIndex is the inverse of ESlicePermutationIndex.
func ESlicePermutationFromIndex(index int) [12]cube.Edge {
	values := decodeLehmer(index, 4)
	edges := cube.SolvedEdges
	for i := 0; i < 4; i++ {
		edges[i+4] = cube.EdgePositionFromIndex(values[i]).WithOrientation(cube.Positive)
	}
	return edges
}
