package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nullstride/cube3/internal/scramble"
	"github.com/nullstride/cube3/internal/search"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark pruning table generation and solve performance",
	Long: `Bench generates the pruning tables from scratch, timing it, then
solves a number of random scrambles and reports solve time and length
statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		if count < 1 {
			count = 1
		}

		fmt.Println("Generating pruning tables...")
		start := time.Now()
		table := search.Generate()
		fmt.Printf("  done in %v\n\n", time.Since(start))

		rng := rand.New(rand.NewSource(seed))
		var totalTime time.Duration
		minLen, maxLen, totalLen := -1, -1, 0

		fmt.Printf("Solving %d random scrambles...\n", count)
		for i := 0; i < count; i++ {
			state := scramble.Generate(rng, scramble.Simple)

			solveStart := time.Now()
			solution := search.SolveWithTable(state, table)
			totalTime += time.Since(solveStart)

			n := len(solution.Moves)
			totalLen += n
			if minLen < 0 || n < minLen {
				minLen = n
			}
			if n > maxLen {
				maxLen = n
			}
		}

		fmt.Printf("\nSolved %d cubes\n", count)
		fmt.Printf("  total time:   %v\n", totalTime)
		fmt.Printf("  average time: %v\n", totalTime/time.Duration(count))
		fmt.Printf("  move count:   min %d, max %d, avg %.2f\n", minLen, maxLen, float64(totalLen)/float64(count))
	},
}

func init() {
	benchCmd.Flags().Int("count", 100, "Number of random scrambles to solve")
	benchCmd.Flags().Int64("seed", 1, "Random seed")
}
