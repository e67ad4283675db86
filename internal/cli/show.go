package cli

import (
	"fmt"
	"os"

	"github.com/nullstride/cube3/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [moves]",
	Short: "Show cube state after applying optional moves",
	Long: `Show displays the cube state after applying a move sequence to a
starting state (solved, by default).

Examples:
  cube show
  cube show "R U R' U'"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startCfen, _ := cmd.Flags().GetString("start")

		c, err := startingCube(startCfen)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if len(args) > 0 && args[0] != "" {
			moves, err := cube.ParseAlg(args[0])
			if err != nil {
				fmt.Printf("Error parsing moves: %v\n", err)
				os.Exit(1)
			}
			c = c.ApplyAlg(moves)
			fmt.Printf("Cube state after %s:\n\n", args[0])
		} else {
			fmt.Println("Solved cube state:")
		}

		fmt.Println(c)
	},
}

func init() {
	showCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
}
