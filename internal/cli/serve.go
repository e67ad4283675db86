package cli

import (
	"fmt"

	"github.com/nullstride/cube3/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server to provide a browser-based interface
for the cube solver.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		cachePath, _ := cmd.Flags().GetString("cache")

		fmt.Println("Loading pruning tables...")
		table := loadTable(cachePath)

		server := web.NewServer(table)
		addr := host + ":" + port
		fmt.Printf("Starting web server at http://%s\n", addr)
		if err := server.Start(addr); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().String("cache", "", "Pruning table cache path (default: OS cache directory)")
}
