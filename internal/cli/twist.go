package cli

import (
	"fmt"
	"os"

	"github.com/nullstride/cube3/internal/cfen"
	"github.com/nullstride/cube3/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube, it just applies the moves and shows
the result.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --start "WG|W9/R9/G9/Y9/O9/B9"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		c, err := startingCube(startCfen)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if !useCfenOutput {
			fmt.Printf("Applying moves: %s\n", args[0])
		}

		moves, err := cube.ParseAlg(args[0])
		if err != nil {
			if !useCfenOutput {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}

		c = c.ApplyAlg(moves)

		if useCfenOutput {
			fmt.Print(cfen.Encode(c))
			return
		}

		fmt.Printf("\nCube state after applying moves:\n%s\n", c)
		fmt.Printf("Moves applied: %d\n", len(moves))
		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().Bool("cfen", false, "Output the final cube state as CFEN")
	twistCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
}
