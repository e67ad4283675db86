// Package scramble generates random scrambled cube states. It is kept
// deliberately thin: a scramble generator only needs a random-state
// constructor and apply_move, so it stays a consumer of internal/cube
// rather than a collaborator internal/cube depends on.
//
// Grounded on original_source/norcina-cube3/src/cube.rs's
// Cube::random_with_rng and random.
package scramble

import (
	"math/rand"

	"github.com/nullstride/cube3/internal/cube"
)

// Method selects which construction Generate uses to sample a state.
type Method int

const (
	// Simple shuffles and orients corners and edges independently, then
	// fixes any parity mismatch with one arbitrary swap, matching the
	// source's random_with_rng exactly. Not proven to sample uniformly
	// from reachable states.
	Simple Method = iota
	// Reachable samples an even-total-parity permutation pair directly,
	// for callers that need a provably uniform distribution over
	// reachable states (e.g. competition-style fairness).
	Reachable
)

// Generate returns a scrambled cube state using the given method.
func Generate(rng *rand.Rand, method Method) cube.Cube {
	if method == Reachable {
		return cube.RandomReachableState(rng)
	}
	return cube.RandomState(rng)
}
