package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nullstride/cube3/internal/cfen"
	"github.com/nullstride/cube3/internal/cube"
	"github.com/nullstride/cube3/internal/scramble"
	"github.com/nullstride/cube3/internal/search"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scrambled cube state and print the move sequence
that reaches it from solved, found by inverting the solver's own solution.

Examples:
  cube scramble
  cube scramble --method reachable --seed 42
  cube scramble --cfen`,
	RunE: func(cmd *cobra.Command, args []string) error {
		method, _ := cmd.Flags().GetString("method")
		seed, _ := cmd.Flags().GetInt64("seed")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		cachePath, _ := cmd.Flags().GetString("cache")

		var m scramble.Method
		switch method {
		case "simple":
			m = scramble.Simple
		case "reachable":
			m = scramble.Reachable
		default:
			return fmt.Errorf("unknown method %q, want \"simple\" or \"reachable\"", method)
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		state := scramble.Generate(rng, m)

		if useCfenOutput {
			fmt.Print(cfen.Encode(state))
			return nil
		}

		table := loadTable(cachePath)
		solution := search.SolveWithTable(state, table)
		moves := cube.InverseAlg(solution.Moves)

		fmt.Println(cube.AlgString(moves))
		return nil
	},
}

func init() {
	scrambleCmd.Flags().String("method", "simple", "Scramble method: simple or reachable")
	scrambleCmd.Flags().Int64("seed", 0, "Random seed (default: current time)")
	scrambleCmd.Flags().Bool("cfen", false, "Output the scrambled state as CFEN instead of a move list")
	scrambleCmd.Flags().String("cache", "", "Pruning table cache path (default: OS cache directory)")
}
