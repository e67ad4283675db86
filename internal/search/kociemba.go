package search

import "github.com/nullstride/cube3/internal/cube"

// IsInG1 reports whether cube is in the G1 subgroup: all corners and edges
// oriented, and every Y-normal edge confined to a Y-normal position (so
// phase 2 can solve it using only U, D, R2, L2, F2, B2).
//
// Grounded on original_source/norcina-cube3/src/search/kociemba.rs.
func IsInG1(c cube.Cube) bool {
	for _, corner := range c.Corners {
		if corner.Orientation() != cube.AxisX {
			return false
		}
	}
	for _, edge := range c.Edges {
		if !edge.IsOriented() {
			return false
		}
	}
	for i, edge := range c.Edges {
		position := cube.EdgePositionFromIndex(uint8(i))
		if (position.Normal() == cube.AxisY) != (edge.Position().Normal() == cube.AxisY) {
			return false
		}
	}
	return true
}

// Solve finds an optimal-or-near-optimal move sequence that solves c,
// generating pruning tables from scratch. Callers that solve many cubes
// should generate a PruneTable once and call SolveWithTable instead.
func Solve(c cube.Cube) Solution {
	return SolveWithTable(c, Generate())
}

// SolveWithTable finds a move sequence that solves c using precomputed
// pruning tables: first driving c into G1 (phase 1), then solving within
// G1 (phase 2).
func SolveWithTable(c cube.Cube, table *PruneTable) Solution {
	phase1 := SolveToG1(c, table)
	phase2 := SolveFromG1(phase1.FinalState(), table)
	return phase1.Concat(phase2)
}

// SolveToG1 returns the shortest sequence of any of the 18 moves that
// brings c into the G1 subgroup.
func SolveToG1(c cube.Cube, table *PruneTable) Solution {
	return searchIDAStar(c, table.Phase1Heuristic, IsInG1)
}

// SolveFromG1 returns the shortest sequence of G1 moves that solves c,
// which must already be in G1.
func SolveFromG1(c cube.Cube, table *PruneTable) Solution {
	return searchIDAStar(c, table.Phase2Heuristic, cube.Cube.IsSolved)
}

// SolveBest repeats phase 1 with successively looser bounds up to tries
// times, keeping the shortest total solution found across every phase-1
// endpoint tried. The default Solve/SolveWithTable return the first
// phase-1 endpoint IDA* reaches, which is not guaranteed to yield the
// shortest two-phase solution overall; SolveBest trades solve time for a
// shorter result by exploring a few more phase-1 endings.
func SolveBest(c cube.Cube, table *PruneTable, tries int) Solution {
	if tries < 1 {
		tries = 1
	}

	optimalPhase1Len := len(SolveToG1(c, table).Moves)
	best := SolveWithTable(c, table)

	for extra := 1; extra < tries; extra++ {
		bound := optimalPhase1Len + extra
		sol, ok := searchIDAStarWithExactBound(c, table.Phase1Heuristic, IsInG1, bound)
		if !ok {
			break
		}
		full := sol.Concat(SolveFromG1(sol.FinalState(), table))
		if len(full.Moves) < len(best.Moves) {
			best = full
		}
	}

	return best
}

// searchIDAStarWithExactBound runs a single IDA* bounded pass and returns
// the first goal path its depth-first search reaches with f within bound,
// or ok=false if no goal state is within it.
func searchIDAStarWithExactBound(start cube.Cube, heuristic func(cube.Cube) byte, goal func(cube.Cube) bool, bound int) (Solution, bool) {
	path := []cube.Cube{start}
	moves := []cube.Move{}
	_, found := idaBoundedSearch(&path, &moves, 0, bound, heuristic, goal)
	if !found {
		return Solution{}, false
	}
	return Solution{
		Moves:  append([]cube.Move{}, moves...),
		States: append([]cube.Cube{}, path...),
	}, true
}
