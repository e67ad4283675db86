package search

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nullstride/cube3/internal/cube"
)

// subtable is one precomputed pruning table: a coordinate's index/from-index
// pair, how many values that coordinate takes, and whether the table is built
// over all 18 moves (phase 1) or only the 10 G1 moves (phase 2).
//
// Grounded on original_source/norcina-cube3/src/search/kociemba/prune_table.rs's
// generic Subtable<T>.
type subtable[T any] struct {
	index     func(T) int
	fromIndex func(int) T
	max       int
	initial   T
	phase1    bool
	applyMove func(T, cube.Move) T
}

// generateBuffer runs a backward breadth-first sweep from the solved
// coordinate, recording in buffer[i] the minimum number of moves needed to
// reach coordinate i from solved. Because every move in the table's move
// set is invertible and the move graph is undirected in the sense that
// matters here, this equals the minimum number of moves to reach solved
// from i, which is what the pruning heuristic needs.
func (s subtable[T]) generateBuffer() []byte {
	moves := cube.AllMoves[:]
	if !s.phase1 {
		moves = cube.G1Moves
	}

	buffer := make([]byte, s.max)
	for i := range buffer {
		buffer[i] = 0xFF
	}
	buffer[s.index(s.initial)] = 0

	for depth := byte(1); ; depth++ {
		complete := true

		for i := 0; i < s.max; i++ {
			if buffer[i] != depth-1 {
				continue
			}

			state := s.fromIndex(i)
			for _, mov := range moves {
				newState := s.applyMove(state, mov)
				newIndex := s.index(newState)

				if buffer[newIndex] > depth {
					buffer[newIndex] = depth
					complete = false
				}
			}
		}

		if complete {
			break
		}
	}

	return buffer
}

var cornerOrientationTable = subtable[[8]cube.Corner]{
	index:     CornerOrientationIndex,
	fromIndex: CornerOrientationFromIndex,
	max:       CornerOrientationCount,
	initial:   cube.SolvedCorners,
	phase1:    true,
	applyMove: cube.MoveCorners,
}

var edgeOrientationTable = subtable[[12]cube.Edge]{
	index:     EdgeOrientationIndex,
	fromIndex: EdgeOrientationFromIndex,
	max:       EdgeOrientationCount,
	initial:   cube.SolvedEdges,
	phase1:    true,
	applyMove: cube.MoveEdges,
}

var udSlicePlacementTable = subtable[[12]cube.Edge]{
	index:     UDSlicePlacementIndex,
	fromIndex: UDSlicePlacementFromIndex,
	max:       UDSlicePlacementCount,
	initial:   cube.SolvedEdges,
	phase1:    true,
	applyMove: cube.MoveEdges,
}

var cornerPermutationTable = subtable[[8]cube.Corner]{
	index:     CornerPermutationIndex,
	fromIndex: CornerPermutationFromIndex,
	max:       CornerPermutationCount,
	initial:   cube.SolvedCorners,
	phase1:    false,
	applyMove: cube.MoveCorners,
}

var udSlicePermutationTable = subtable[[12]cube.Edge]{
	index:     UDSlicePermutationIndex,
	fromIndex: UDSlicePermutationFromIndex,
	max:       UDSlicePermutationCount,
	initial:   cube.SolvedEdges,
	phase1:    false,
	applyMove: cube.MoveEdges,
}

var eSlicePermutationTable = subtable[[12]cube.Edge]{
	index:     ESlicePermutationIndex,
	fromIndex: ESlicePermutationFromIndex,
	max:       ESlicePermutationCount,
	initial:   cube.SolvedEdges,
	phase1:    false,
	applyMove: cube.MoveEdges,
}

// PruneTable holds the six admissible distance lower bounds the two-phase
// solver's IDA* search uses as its heuristic: three for driving a cube
// into G1 (phase 1), three for solving it from within G1 (phase 2).
type PruneTable struct {
	OrientCorners       []byte
	OrientEdges         []byte
	UDSlicePlacement    []byte
	PermuteCorners      []byte
	PermuteUDSliceEdges []byte
	PermuteESliceEdges  []byte
}

// Generate builds all six pruning tables from scratch via backward BFS.
// On a modern machine this takes well under a second; the corpus's own
// reference measured 40ms.
func Generate() *PruneTable {
	return &PruneTable{
		OrientCorners:       cornerOrientationTable.generateBuffer(),
		OrientEdges:         edgeOrientationTable.generateBuffer(),
		UDSlicePlacement:    udSlicePlacementTable.generateBuffer(),
		PermuteCorners:      cornerPermutationTable.generateBuffer(),
		PermuteUDSliceEdges: udSlicePermutationTable.generateBuffer(),
		PermuteESliceEdges:  eSlicePermutationTable.generateBuffer(),
	}
}

// Phase1Heuristic returns an admissible lower bound on the number of moves
// needed to drive cube into G1.
func (t *PruneTable) Phase1Heuristic(c cube.Cube) byte {
	co := t.OrientCorners[CornerOrientationIndex(c.Corners)]
	eo := t.OrientEdges[EdgeOrientationIndex(c.Edges)]
	ys := t.UDSlicePlacement[UDSlicePlacementIndex(c.Edges)]
	return max3(co, eo, ys)
}

// Phase2Heuristic returns an admissible lower bound on the number of
// G1-only moves needed to solve cube. A cube outside G1 cannot be solved
// with G1-only moves and scores 0xFF, so a phase-2 search that branches
// out of G1 prunes that branch at once.
func (t *PruneTable) Phase2Heuristic(c cube.Cube) byte {
	if !IsInG1(c) {
		return 0xFF
	}
	pc := t.PermuteCorners[CornerPermutationIndex(c.Corners)]
	pu := t.PermuteUDSliceEdges[UDSlicePermutationIndex(c.Edges)]
	pe := t.PermuteESliceEdges[ESlicePermutationIndex(c.Edges)]
	return max3(pc, pu, pe)
}

func max3(a, b, c byte) byte {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// cacheFormatVersion guards the on-disk table format. A mismatch (or any
// read error) is treated as a cache miss, not a fatal error: the caller
// falls back to regenerating the tables in memory.
const cacheFormatVersion byte = 1

// DefaultCachePath returns the path LoadOrGenerate uses when no explicit
// path is given: a file under the user's cache directory.
func DefaultCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("search: resolving cache directory: %w", err)
	}
	return dir + "/cube3/prunetables.bin", nil
}

// LoadOrGenerate loads the pruning tables from path, generating and
// writing them if the file is missing, unreadable, or was written by a
// different format version.
func LoadOrGenerate(path string) *PruneTable {
	if t, err := LoadTable(path); err == nil {
		return t
	}
	t := Generate()
	_ = SaveTable(path, t)
	return t
}

// SaveTable writes t to path as a version byte followed by the six
// tables' bytes, each preceded by a 4-byte little-endian length.
func SaveTable(path string, t *PruneTable) error {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return fmt.Errorf("search: creating cache directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("search: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.Write([]byte{cacheFormatVersion}); err != nil {
		return fmt.Errorf("search: writing cache version: %w", err)
	}
	for _, table := range [][]byte{
		t.OrientCorners, t.OrientEdges, t.UDSlicePlacement,
		t.PermuteCorners, t.PermuteUDSliceEdges, t.PermuteESliceEdges,
	} {
		if err := writeLengthPrefixed(w, table); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadTable reads a pruning table previously written by SaveTable. It
// returns an error if the file is missing, truncated, or stamped with a
// different cacheFormatVersion.
func LoadTable(path string) (*PruneTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("search: opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("search: reading cache version: %w", err)
	}
	if version != cacheFormatVersion {
		return nil, fmt.Errorf("search: cache version %d, want %d", version, cacheFormatVersion)
	}

	tables := make([][]byte, 6)
	for i := range tables {
		table, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}

	return &PruneTable{
		OrientCorners:       tables[0],
		OrientEdges:         tables[1],
		UDSlicePlacement:    tables[2],
		PermuteCorners:      tables[3],
		PermuteUDSliceEdges: tables[4],
		PermuteESliceEdges:  tables[5],
	}, nil
}

func writeLengthPrefixed(w *bufio.Writer, data []byte) error {
	var lenBuf [4]byte
	n := len(data)
	lenBuf[0] = byte(n)
	lenBuf[1] = byte(n >> 8)
	lenBuf[2] = byte(n >> 16)
	lenBuf[3] = byte(n >> 24)
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("search: writing table length: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("search: writing table bytes: %w", err)
	}
	return nil
}

func readLengthPrefixed(r *bufio.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("search: reading table length: %w", err)
	}
	n := int(lenBuf[0]) | int(lenBuf[1])<<8 | int(lenBuf[2])<<16 | int(lenBuf[3])<<24
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("search: reading table bytes: %w", err)
	}
	return data, nil
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
