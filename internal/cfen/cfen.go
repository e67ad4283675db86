// Package cfen encodes and decodes a Cube as a compact text format: two
// orientation letters, a pipe, then six run-length-encoded 3x3 facelet
// grids in U R F D L B order.
//
// Grounded on the teacher's internal/cfen package, adapted from its flat
// [6][]Color NxN sticker grid to this module's bit-packed Cube, and
// narrowed to this module's 3x3x3-only scope (no wildcard stickers, no
// variable dimension field).
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nullstride/cube3/internal/cube"
)

// letterForFace maps a face (which doubles as a color identity in this
// model, since centers never move) to its CFEN letter, following the
// teacher's WYROGB scheme and this module's own color assignment in
// cube.Cube.String.
func letterForFace(face cube.Face) byte {
	switch face {
	case cube.FaceR:
		return 'R'
	case cube.FaceU:
		return 'W'
	case cube.FaceF:
		return 'G'
	case cube.FaceL:
		return 'O'
	case cube.FaceD:
		return 'Y'
	case cube.FaceB:
		return 'B'
	default:
		panic(fmt.Sprintf("cfen: invalid face %v", face))
	}
}

func faceForLetter(letter byte) (cube.Face, error) {
	switch letter {
	case 'R':
		return cube.FaceR, nil
	case 'W':
		return cube.FaceU, nil
	case 'G':
		return cube.FaceF, nil
	case 'O':
		return cube.FaceL, nil
	case 'Y':
		return cube.FaceD, nil
	case 'B':
		return cube.FaceB, nil
	default:
		return 0, fmt.Errorf("cfen: unknown color letter %q", letter)
	}
}

// faceOrder is the order faces appear in the facelet section of a CFEN
// string, independent of the "up"-reference ordering cube.NetFaces uses
// for rendering: U R F D L B, the conventional Kociemba facelet-string
// order.
var faceOrder = [6]cube.Face{cube.FaceU, cube.FaceR, cube.FaceF, cube.FaceD, cube.FaceL, cube.FaceB}

func upFor(face cube.Face) cube.Face {
	for _, nf := range cube.NetFaces {
		if nf.Face == face {
			return nf.Up
		}
	}
	panic(fmt.Sprintf("cfen: no net reference for face %v", face))
}

// Encode returns the CFEN text representation of c.
func Encode(c cube.Cube) string {
	var b strings.Builder
	b.WriteByte(letterForFace(cube.FaceU))
	b.WriteByte(letterForFace(cube.FaceF))
	b.WriteByte('|')

	for i, face := range faceOrder {
		if i > 0 {
			b.WriteByte('/')
		}
		up := upFor(face)
		var stickers [9]byte
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				target := cube.NetFacelet(face, up, col, row)
				stickers[row*3+col] = letterForFace(stickerColor(c, target))
			}
		}
		b.WriteString(compact(stickers[:]))
	}

	return b.String()
}

func stickerColor(c cube.Cube, target cube.FaceletTarget) cube.Face {
	switch target.Kind {
	case cube.FaceletCenter:
		return target.Face
	case cube.FaceletCorner:
		piece := target.Corner.Pick(c.Corners)
		return cube.CornerSticker(piece, target.Corner, target.Face)
	default:
		piece := target.Edge.Pick(c.Edges)
		return cube.EdgeSticker(piece, target.Edge, target.Face)
	}
}

func compact(stickers []byte) string {
	var b strings.Builder
	i := 0
	for i < len(stickers) {
		j := i + 1
		for j < len(stickers) && stickers[j] == stickers[i] {
			j++
		}
		b.WriteByte(stickers[i])
		if n := j - i; n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
		i = j
	}
	return b.String()
}

var runPattern = regexp.MustCompile(`([WYROGB])(\d*)`)

func expand(faceStr string) ([9]byte, error) {
	var out [9]byte
	matches := runPattern.FindAllStringSubmatch(faceStr, -1)
	if len(matches) == 0 {
		return out, fmt.Errorf("cfen: no color tokens in %q", faceStr)
	}

	reconstructed := ""
	n := 0
	for _, m := range matches {
		reconstructed += m[0]
		count := 1
		if m[2] != "" {
			c, err := strconv.Atoi(m[2])
			if err != nil || c < 1 {
				return out, fmt.Errorf("cfen: invalid run count in %q", m[0])
			}
			count = c
		}
		for k := 0; k < count; k++ {
			if n >= 9 {
				return out, fmt.Errorf("cfen: face %q has more than 9 stickers", faceStr)
			}
			out[n] = m[1][0]
			n++
		}
	}
	if reconstructed != faceStr {
		return out, fmt.Errorf("cfen: could not parse all of %q", faceStr)
	}
	if n != 9 {
		return out, fmt.Errorf("cfen: face %q has %d stickers, want 9", faceStr, n)
	}
	return out, nil
}

// Decode parses a CFEN string back into a Cube. Unlike Encode, this has
// no closed-form inverse: the sticker-to-position geometry (NetFacelet) is
// used to bucket the observed colors by piece position, and each
// position's piece is recovered by brute-force matching against its small
// set of candidate identities and orientations (24 for a corner, 24 for
// an edge).
func Decode(s string) (cube.Cube, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 2 {
		return cube.Cube{}, fmt.Errorf("cfen: expected 'orientation|faces', got %q", s)
	}
	if len(parts[0]) != 2 {
		return cube.Cube{}, fmt.Errorf("cfen: orientation must be 2 characters, got %q", parts[0])
	}
	if _, err := faceForLetter(parts[0][0]); err != nil {
		return cube.Cube{}, err
	}
	if _, err := faceForLetter(parts[0][1]); err != nil {
		return cube.Cube{}, err
	}

	faceStrs := strings.Split(parts[1], "/")
	if len(faceStrs) != 6 {
		return cube.Cube{}, fmt.Errorf("cfen: expected 6 faces separated by '/', got %d", len(faceStrs))
	}

	cornerObserved := map[cube.CornerPosition]map[cube.Face]cube.Face{}
	edgeObserved := map[cube.EdgePosition]map[cube.Face]cube.Face{}

	for i, face := range faceOrder {
		grid, err := expand(faceStrs[i])
		if err != nil {
			return cube.Cube{}, err
		}
		up := upFor(face)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				letter := grid[row*3+col]
				color, err := faceForLetter(letter)
				if err != nil {
					return cube.Cube{}, err
				}
				target := cube.NetFacelet(face, up, col, row)
				switch target.Kind {
				case cube.FaceletCenter:
					if color != target.Face {
						return cube.Cube{}, fmt.Errorf("cfen: center of face %v reported as %v", target.Face, color)
					}
				case cube.FaceletCorner:
					m, ok := cornerObserved[target.Corner]
					if !ok {
						m = map[cube.Face]cube.Face{}
						cornerObserved[target.Corner] = m
					}
					m[target.Face] = color
				case cube.FaceletEdge:
					m, ok := edgeObserved[target.Edge]
					if !ok {
						m = map[cube.Face]cube.Face{}
						edgeObserved[target.Edge] = m
					}
					m[target.Face] = color
				}
			}
		}
	}

	var out cube.Cube
	for _, position := range cube.AllCornerPositions {
		observed, ok := cornerObserved[position]
		if !ok {
			return cube.Cube{}, fmt.Errorf("cfen: no stickers observed for corner position %v", position)
		}
		corner, err := resolveCorner(position, observed)
		if err != nil {
			return cube.Cube{}, err
		}
		out.Corners[position.Index()] = corner
	}
	for _, position := range cube.AllEdgePositions {
		observed, ok := edgeObserved[position]
		if !ok {
			return cube.Cube{}, fmt.Errorf("cfen: no stickers observed for edge position %v", position)
		}
		edge, err := resolveEdge(position, observed)
		if err != nil {
			return cube.Cube{}, err
		}
		out.Edges[position.Index()] = edge
	}

	return out, nil
}

func resolveCorner(position cube.CornerPosition, observed map[cube.Face]cube.Face) (cube.Corner, error) {
	for _, identity := range cube.AllCornerPositions {
		for _, orientation := range []cube.Axis{cube.AxisX, cube.AxisY, cube.AxisZ} {
			candidate := identity.WithOrientation(orientation)
			if matchesCorner(candidate, position, observed) {
				return candidate, nil
			}
		}
	}
	return cube.Corner{}, fmt.Errorf("cfen: no corner matches observed colors at position %v", position)
}

func matchesCorner(candidate cube.Corner, position cube.CornerPosition, observed map[cube.Face]cube.Face) bool {
	for face, color := range observed {
		if cube.CornerSticker(candidate, position, face) != color {
			return false
		}
	}
	return true
}

func resolveEdge(position cube.EdgePosition, observed map[cube.Face]cube.Face) (cube.Edge, error) {
	for _, identity := range cube.AllEdgePositions {
		for _, orientation := range []cube.Direction{cube.Positive, cube.Negative} {
			candidate := identity.WithOrientation(orientation)
			if matchesEdge(candidate, position, observed) {
				return candidate, nil
			}
		}
	}
	return cube.Edge{}, fmt.Errorf("cfen: no edge matches observed colors at position %v", position)
}

func matchesEdge(candidate cube.Edge, position cube.EdgePosition, observed map[cube.Face]cube.Face) bool {
	for face, color := range observed {
		if cube.EdgeSticker(candidate, position, face) != color {
			return false
		}
	}
	return true
}
