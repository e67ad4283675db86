package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/nullstride/cube3/internal/cfen"
	"github.com/nullstride/cube3/internal/cube"
	"github.com/nullstride/cube3/internal/search"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube with Kociemba's two-phase algorithm",
	Long: `Solve a scrambled cube, printing the move sequence that returns it
to the solved state.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		cachePath, _ := cmd.Flags().GetString("cache")
		tries, _ := cmd.Flags().GetInt("best")

		c, err := startingCube(startCfen)
		if err != nil {
			fail(headless, err)
		}

		moves, err := cube.ParseAlg(scramble)
		if err != nil {
			fail(headless, fmt.Errorf("parsing scramble: %w", err))
		}
		c = c.ApplyAlg(moves)

		if !headless {
			fmt.Printf("Solving scramble: %s\n\n", scramble)
			fmt.Print(c)
		}

		table := loadTable(cachePath)

		start := time.Now()
		var solution search.Solution
		if tries > 1 {
			solution = search.SolveBest(c, table, tries)
		} else {
			solution = search.SolveWithTable(c, table)
		}
		elapsed := time.Since(start)

		solutionStr := cube.AlgString(solution.Moves)

		switch {
		case useCfenOutput:
			fmt.Print(cfen.Encode(solution.FinalState()))
		case headless:
			fmt.Print(solutionStr)
		default:
			fmt.Printf("\nSolution: %s\n", solutionStr)
			fmt.Printf("Moves:    %d\n", len(solution.Moves))
			fmt.Printf("Time:     %v\n", elapsed)
		}
	},
}

func fail(headless bool, err error) {
	if !headless {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated solution for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output the final cube state as CFEN instead of the move list")
	solveCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
	solveCmd.Flags().String("cache", "", "Pruning table cache path (default: OS cache directory)")
	solveCmd.Flags().Int("best", 1, "Re-run phase 1 up to this many times, keeping the shortest solution")
}
