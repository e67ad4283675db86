package cli

import (
	"fmt"

	"github.com/nullstride/cube3/internal/cfen"
	"github.com/nullstride/cube3/internal/cube"
)

// startingCube resolves the --start flag to a Cube, defaulting to solved.
func startingCube(startCFEN string) (cube.Cube, error) {
	if startCFEN == "" {
		return cube.Solved, nil
	}
	c, err := cfen.Decode(startCFEN)
	if err != nil {
		return cube.Cube{}, fmt.Errorf("parsing starting CFEN: %w", err)
	}
	return c, nil
}
