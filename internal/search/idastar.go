package search

import (
	"math"

	"github.com/nullstride/cube3/internal/cube"
)

// Solution is a sequence of moves together with every cube state visited
// along the way, start state first and solved (or goal) state last.
//
// Grounded on original_source/norcina-cube3/src/search/mod.rs's
// reconstruct_solution, which keeps the full state path rather than just
// the move list.
type Solution struct {
	Moves  []cube.Move
	States []cube.Cube
}

// FinalState returns the last state in the solution's path.
func (s Solution) FinalState() cube.Cube {
	return s.States[len(s.States)-1]
}

// Concat appends other to s, assuming other.States[0] == s.FinalState().
func (s Solution) Concat(other Solution) Solution {
	moves := make([]cube.Move, 0, len(s.Moves)+len(other.Moves))
	moves = append(moves, s.Moves...)
	moves = append(moves, other.Moves...)

	states := make([]cube.Cube, 0, len(s.States)+len(other.States)-1)
	states = append(states, s.States...)
	states = append(states, other.States[1:]...)

	return Solution{Moves: moves, States: states}
}

// searchIDAStar finds a shortest move sequence from start to a state
// satisfying goal, using heuristic as an admissible distance estimate.
// heuristic must never overestimate the true distance to any goal state,
// or the result is not guaranteed shortest.
//
// Grounded on original_source/norcina-cube3/src/search/mod.rs's
// search_idastar (there delegated to the pathfinding crate; this package
// has no equivalent dependency in the example corpus, so the
// branch-and-bound loop is hand-rolled here).
func searchIDAStar(start cube.Cube, heuristic func(cube.Cube) byte, goal func(cube.Cube) bool) Solution {
	path := []cube.Cube{start}
	moves := []cube.Move{}
	bound := int(heuristic(start))

	for {
		t, found := idaBoundedSearch(&path, &moves, 0, bound, heuristic, goal)
		if found {
			return Solution{
				Moves:  append([]cube.Move{}, moves...),
				States: append([]cube.Cube{}, path...),
			}
		}
		if t == math.MaxInt {
			panic("search: no solution found within reachable search space")
		}
		bound = t
	}
}

func idaBoundedSearch(path *[]cube.Cube, moves *[]cube.Move, g, bound int, heuristic func(cube.Cube) byte, goal func(cube.Cube) bool) (int, bool) {
	current := (*path)[len(*path)-1]
	f := g + int(heuristic(current))
	if f > bound {
		return f, false
	}
	if goal(current) {
		return f, true
	}

	min := math.MaxInt
	for _, n := range current.Neighbors() {
		if containsState(*path, n.Cube) {
			continue
		}

		*path = append(*path, n.Cube)
		*moves = append(*moves, n.Move)

		t, found := idaBoundedSearch(path, moves, g+1, bound, heuristic, goal)
		if found {
			return t, true
		}
		if t < min {
			min = t
		}

		*path = (*path)[:len(*path)-1]
		*moves = (*moves)[:len(*moves)-1]
	}

	return min, false
}

func containsState(path []cube.Cube, c cube.Cube) bool {
	for _, s := range path {
		if s == c {
			return true
		}
	}
	return false
}
