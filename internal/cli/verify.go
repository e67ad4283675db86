package cli

import (
	"fmt"
	"os"

	"github.com/nullstride/cube3/internal/cfen"
	"github.com/nullstride/cube3/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms a start state into a target state",
	Long: `Verify that an algorithm correctly transforms a cube from a start
state to a target state, both given as CFEN strings (solved by default).

Examples:
  # Verify the sexy move cycles back to solved after six repeats
  cube verify "R U R' U' R U R' U' R U R' U' R U R' U' R U R' U' R U R' U'"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]
		startCFEN, _ := cmd.Flags().GetString("start")
		targetCFEN, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")

		start, err := startingCube(startCFEN)
		if err != nil {
			fail(headless, err)
		}
		target, err := startingCube(targetCFEN)
		if err != nil {
			fail(headless, err)
		}

		if verbose && !headless {
			fmt.Println("Start state:")
			fmt.Println(start)
		}

		moves, err := cube.ParseAlg(algorithm)
		if err != nil {
			fail(headless, fmt.Errorf("parsing algorithm: %w", err))
		}
		result := start.ApplyAlg(moves)

		if verbose && !headless {
			fmt.Printf("After %s:\n", algorithm)
			fmt.Println(result)
		}

		if result == target {
			if !headless {
				fmt.Println("PASS: algorithm transforms start into target")
				fmt.Printf("Move count: %d\n", len(moves))
			}
			return
		}

		if !headless {
			fmt.Println("FAIL: algorithm does not reach the target state")
			fmt.Printf("Target: %s\n", cfen.Encode(target))
			fmt.Printf("Actual: %s\n", cfen.Encode(result))
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting CFEN state (default: solved)")
	verifyCmd.Flags().String("target", "", "Target CFEN state (default: solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show intermediate cube states")
	verifyCmd.Flags().Bool("headless", false, "Exit 0 on pass, 1 on fail, with no output")
}
