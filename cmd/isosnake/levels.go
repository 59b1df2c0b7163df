package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isosnake/isosnake/internal/sim"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Long:  `Shows the built-in campaign levels in play order.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Built-in levels:")
	fmt.Println()

	fmt.Printf("  %-3s  %-20s  %-6s  %-8s  %s\n", "ID", "Name", "Food", "Cadence", "Size")
	fmt.Printf("  %-3s  %-20s  %-6s  %-8s  %s\n", "--", "----", "----", "-------", "----")

	for i := 0; i < sim.LevelCount(); i++ {
		level := sim.GetLevel(i)
		size := "?"
		if grid, _, err := sim.BuildLevel(level); err == nil {
			d := grid.Dims()
			size = fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
		}
		fmt.Printf("  %-3d  %-20s  %-6d  %-8d  %s\n",
			level.ID, level.Name, level.TargetFood, level.MoveEveryTicks, size)
	}

	fmt.Println()
	fmt.Println("Run 'isosnake play campaign --level <id>' to start at a level.")
}
