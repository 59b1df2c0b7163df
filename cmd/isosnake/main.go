// isosnake is a turn-based isometric snake game for the terminal.
//
// Usage:
//
//	isosnake play [mode]     - Play (campaign or endless)
//	isosnake menu            - Start menu to pick a mode interactively
//	isosnake levels          - List the built-in levels
//	isosnake serve           - Start SSH server for remote play
//	isosnake scores [mode]   - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.isosnake/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/isosnake/isosnake/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isosnake",
	Short: "Isosnake - Turn-based isometric snake in your terminal",
	Long: `Isosnake is a terminal snake game played on a 3D voxel grid,
drawn with an isometric projection. Blocks support the snake against
gravity; food makes it grow; walls, falls, and your own body end the run.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  levels   - List the built-in levels
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  isosnake play
  isosnake play endless
  isosnake menu
  isosnake serve --ssh :2222
  isosnake scores campaign`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.isosnake/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
